package service

import (
	"regexp"
	"strings"
)

// Embedded images inside an article body reference bare file names; before a
// post is stored every <img> src attribute gets the static asset base path
// prepended. RE2 has no backreferences, so the two quoting styles are matched
// by separate expressions. Quote style and surrounding attributes survive the
// rewrite untouched.
var (
	imgSrcDoubleQuoted = regexp.MustCompile(`(<img\b[^>]*?\bsrc=")([^"]*)(")`)
	imgSrcSingleQuoted = regexp.MustCompile(`(<img\b[^>]*?\bsrc=')([^']*)(')`)
)

// rewriteImageSources prepends base to the src attribute value of every img
// tag in body. The returned string differs from body only inside those
// attribute values.
func rewriteImageSources(body, base string) string {
	prefix := strings.TrimRight(base, "/") + "/"

	for _, re := range []*regexp.Regexp{imgSrcDoubleQuoted, imgSrcSingleQuoted} {
		body = re.ReplaceAllStringFunc(body, func(tag string) string {
			parts := re.FindStringSubmatch(tag)
			return parts[1] + prefix + parts[2] + parts[3]
		})
	}

	return body
}
