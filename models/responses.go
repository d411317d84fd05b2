package models

// FlashResponse is the JSON equivalent of the flash messages the original
// site rendered into its templates. Category is either "success" or "error"
// so the web layer can pick the presentation style.
type FlashResponse struct {
	Message  string `json:"message"`
	Category string `json:"category"`
}

// PostListResponse wraps a listing of post summaries.
// Length is provided for convenience so the caller can validate the
// response without iterating the slice.
type PostListResponse struct {
	Posts  []PostSummary `json:"posts"`
	Length int           `json:"length"`
}

// UserListResponse wraps the admin listing of registered users.
type UserListResponse struct {
	Users  []UserSummary `json:"users"`
	Length int           `json:"length"`
}
