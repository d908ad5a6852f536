package domain

// User is an authenticated principal on the redten API.
// The token is the bearer credential attached to every
// authenticated request for the lifetime of the session.
type User struct {
	// ID is the numeric account identifier.
	ID int64 `json:"id"`

	// Email is the account email address.
	Email string `json:"email"`

	// State is the account lifecycle state.
	State int `json:"state"`

	// Verified is the account verification flag.
	Verified int `json:"verified"`

	// Role is the account role name.
	Role string `json:"role"`

	// Token is the opaque bearer token returned by login.
	Token string `json:"token"`

	// Msg is a free-form server message, usually empty.
	Msg string `json:"msg,omitempty"`

	// CreatedAt and UpdatedAt are server-formatted timestamps.
	CreatedAt string `json:"created_at,omitempty"`
	UpdatedAt string `json:"updated_at,omitempty"`
}

// IsAuthenticated returns true if the user carries a usable token.
func (u *User) IsAuthenticated() bool {
	return u != nil && u.Token != ""
}

// Credentials is a login triple. Any field may be empty; missing
// values are resolved from configuration before use.
type Credentials struct {
	// Username is only used when auto-creating an account.
	Username string

	// Email identifies the account to log in as.
	Email string

	// Password is the account password.
	Password string
}
