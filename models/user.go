package models

// User represents a registered account of the public site.
// It contains identity attributes and credential-related data.
// Sensitive fields must never be exposed outside trusted boundaries.
type User struct {
	// UserID is the internal unique identifier of the user.
	// It is not exposed via JSON and is used only at the persistence layer.
	UserID int64 `json:"-"`

	// Name is the display name of the user.
	// It is non-sensitive and may be shown in UI.
	Name string `json:"name"`

	// Email is the unique login identifier of the user.
	Email string `json:"email"`

	// PasswordHash stores the bcrypt hash of the user's password.
	// This value MUST be a derived value, never plaintext.
	PasswordHash string `json:"-"`

	// Avatar holds the raw bytes of the user's uploaded avatar image.
	// Nil until the user uploads one; replaced wholesale on every upload.
	Avatar []byte `json:"-"`

	// CreatedAt is the Unix timestamp (seconds) of account creation.
	CreatedAt int64 `json:"created_at"`
}

// UserSummary is the admin-panel projection of a user record.
type UserSummary struct {
	Name  string `json:"name"`
	Email string `json:"email"`
}

// TableName returns the name of the database table
// associated with the User model.
func (u User) TableName() string {
	return "users"
}
