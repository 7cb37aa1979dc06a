package models

import "time"

// User represents a registered account. It is created once the signup OTP
// is verified and is never mutated afterwards.
type User struct {
	// UserID is the opaque identifier placed into the token subject.
	UserID string `json:"user_id"`

	// Name is the trimmed display name given at signup.
	Name string `json:"name"`

	// Email is stored trimmed and lowercased; it is unique across users.
	Email string `json:"email"`

	// PasswordHash is the bcrypt hash of the user's password.
	// It never leaves the server.
	PasswordHash string `json:"-"`

	// CreatedAt is the moment the OTP was verified.
	CreatedAt time.Time `json:"created_at"`
}

// TableName returns the name of the database table
// associated with the User model.
func (u User) TableName() string {
	return "users"
}

// PendingSignup is a signup awaiting OTP confirmation.
// At most one pending record exists per email.
type PendingSignup struct {
	Email        string    `json:"email"`
	Name         string    `json:"name"`
	PasswordHash string    `json:"password_hash"`
	OTPHash      string    `json:"otp_hash"`
	CreatedAt    time.Time `json:"created_at"`
}

// SignupInitRequest is the body of POST /auth/signup/init.
type SignupInitRequest struct {
	Name     string `json:"name"`
	Email    string `json:"email"`
	Password string `json:"password"`
}

// SignupVerifyRequest is the body of POST /auth/signup/verify.
type SignupVerifyRequest struct {
	Email string `json:"email"`
	OTP   string `json:"otp"`
}

// LoginRequest is the body of POST /auth/login.
type LoginRequest struct {
	Email    string `json:"email"`
	Password string `json:"password"`
}

// LoginResponse is returned on a successful login.
type LoginResponse struct {
	AccessToken string `json:"access_token"`
	Name        string `json:"name"`
	UserID      string `json:"user_id"`
}

// Profile is the public view of a User returned by GET /auth/me.
type Profile struct {
	UserID string `json:"user_id"`
	Name   string `json:"name"`
	Email  string `json:"email"`
}

// ProfileFromUser strips credential data from u.
func ProfileFromUser(u User) Profile {
	return Profile{UserID: u.UserID, Name: u.Name, Email: u.Email}
}
