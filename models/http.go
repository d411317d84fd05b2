package models

// AddPostRequest carries the form fields of a new article submission.
// Validation tags mirror the rules the original site enforced at the form
// level: a meaningful title and a body longer than ten characters.
type AddPostRequest struct {
	// Title is the display title of the article.
	Title string `json:"title" validate:"required,min=5"`

	// Body is the article text. May contain embedded <img> tags whose src
	// attributes are rewritten before the post is stored.
	Body string `json:"body" validate:"required,min=11"`

	// URL is the unique slug the article will be reachable under.
	URL string `json:"url" validate:"required"`
}

// RegisterRequest carries the registration form fields.
type RegisterRequest struct {
	Name     string `json:"name" validate:"required,min=4"`
	Email    string `json:"email" validate:"required,email"`
	Password string `json:"password" validate:"required,min=4"`
}

// LoginRequest carries the login form fields of the public site.
type LoginRequest struct {
	Email    string `json:"email" validate:"required,email"`
	Password string `json:"password" validate:"required"`
}

// AdminLoginRequest carries the credential pair for the admin panel gate.
type AdminLoginRequest struct {
	Username string `json:"username"`
	Password string `json:"password"`
}
