package models

// User represents an account entity used for authentication and authorization.
// It contains identity attributes and credential-related data.
// Sensitive fields must never be exposed outside trusted boundaries.
type User struct {
	// ID is the unique identifier assigned by the store on creation.
	ID int64 `json:"id"`

	// Username is the unique name used to log in.
	Username string `json:"username"`

	// Email is the unique contact address of the user.
	Email string `json:"email"`

	// Password carries the plaintext password of an incoming registration
	// request only. It is replaced by PasswordHash before anything is persisted
	// and is never serialized back to clients.
	Password string `json:"password,omitempty"`

	// PasswordHash is the self-salted digest of the password.
	// It is never exposed via JSON.
	PasswordHash string `json:"-"`
}

// TableName returns the name of the database table
// associated with the User model.
func (u User) TableName() string {
	return "users"
}

// Public returns a copy of the user that is safe to send to clients.
func (u User) Public() User {
	u.Password = ""
	u.PasswordHash = ""
	return u
}

// Credentials is the body of a login request.
type Credentials struct {
	Username string `json:"username"`
	Password string `json:"password"`
}

// UserUpdate describes a partial profile update.
// Only non-nil fields are written.
type UserUpdate struct {
	// ID of the user being updated. Taken from the URL, never from the body.
	ID int64 `json:"-"`

	Username *string `json:"username,omitempty"`
	Email    *string `json:"email,omitempty"`

	// Password is the new plaintext password. The service layer replaces it
	// with PasswordHash before the update reaches the store.
	Password *string `json:"password,omitempty"`

	PasswordHash *string `json:"-"`
}

// IsEmpty reports whether the update carries no fields to write.
func (u UserUpdate) IsEmpty() bool {
	return u.Username == nil && u.Email == nil && u.Password == nil && u.PasswordHash == nil
}
