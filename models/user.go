package models

// User represents the authenticated account holder.
type User struct {
	ID         int64    `json:"id"`
	Email      string   `json:"email"`
	EmotionsKw []string `json:"emotions_kw,omitempty"`
}

// SessionSnapshot is the persisted part of the session state.
// Loading and hydration flags are transient and never stored.
type SessionSnapshot struct {
	User            *User `json:"user"`
	IsAuthenticated bool  `json:"isAuthenticated"`
}

// LoginCredentials is the payload for POST /auth/login.
type LoginCredentials struct {
	Email    string `json:"email"`
	Password string `json:"password"`
}

// RegisterCredentials is the payload for POST /auth/signup.
type RegisterCredentials struct {
	Email      string   `json:"email"`
	Password   string   `json:"password"`
	EmotionsKw []string `json:"emotions_kw,omitempty"`
}

// AuthResponse is what the backend returns for both login and signup.
type AuthResponse struct {
	Message string `json:"message"`
	UserID  int64  `json:"user_id"`
}
