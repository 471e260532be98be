package schema

// User is the profile shape returned by login and /users/me.
type User struct {
	ID        int     `json:"id"`
	Name      string  `json:"name"`
	Email     string  `json:"email"`
	Role      string  `json:"role"`
	CreatedAt *string `json:"created_at,omitempty"`
}

// LoginRequest carries the credentials POSTed to /auth/login.
type LoginRequest struct {
	Email    string `json:"email"`
	Password string `json:"password"`
}

// LoginResult is the /auth/login response: a fresh access token plus the
// authenticated user's profile.
type LoginResult struct {
	Token string `json:"token"`
	User  User   `json:"user"`
}

// RegisterRequest carries the self-registration payload for new students.
type RegisterRequest struct {
	FullName        string `json:"full_name"`
	Email           string `json:"email"`
	Phone           string `json:"phone,omitempty"`
	Password        string `json:"password"`
	PasswordConfirm string `json:"password_confirm"`
}

// RefreshResult is the /auth/refresh response. The long-lived refresh
// credential itself never appears here; it lives in an HttpOnly cookie.
type RefreshResult struct {
	AccessToken string `json:"access_token"`
}

// UserResult wraps the /users/me response.
type UserResult struct {
	User User `json:"user"`
}

// Message is the generic acknowledgement body many mutating endpoints return.
type Message struct {
	Message string `json:"message"`
}
