package service

import "errors"

var (
	ErrInvalidDataProvided = errors.New("invalid data provided")
	ErrWrongPassword       = errors.New("wrong password")

	ErrTokenCreationFailed     = errors.New("token creation failed")
	ErrTokenIsExpiredOrInvalid = errors.New("token is expired or invalid")

	ErrEmptyAvatar          = errors.New("empty avatar payload")
	ErrUnsupportedImageType = errors.New("unsupported image type")

	ErrWrongAdminCredentials = errors.New("wrong admin credentials")
)
