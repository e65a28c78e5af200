package dto

import "net/mail"

type RegisterRequest struct {
	Name     string `json:"name"`
	Email    string `json:"email"`
	Password string `json:"password"`
}

func (r *RegisterRequest) Validate() error {
	var v violations
	if r.Name == "" {
		v.add("name", "Name is required")
	}
	if _, err := mail.ParseAddress(r.Email); err != nil {
		v.add("email", "Please enter a valid email")
	}
	if len(r.Password) < 6 {
		v.add("password", "Password must be at least 6 characters long")
	}
	return v.err()
}

type LoginRequest struct {
	Email    string `json:"email"`
	Password string `json:"password"`
}

func (r *LoginRequest) Validate() error {
	var v violations
	if _, err := mail.ParseAddress(r.Email); err != nil {
		v.add("email", "Please enter a valid email")
	}
	if r.Password == "" {
		v.add("password", "Password is required")
	}
	return v.err()
}

type UserResponse struct {
	ID    string `json:"id"`
	Name  string `json:"name"`
	Email string `json:"email"`
}

type AuthResponse struct {
	Token     string       `json:"token"`
	ExpiresIn int64        `json:"expiresIn"`
	User      UserResponse `json:"user"`
}
