// Package dto defines Data Transfer Objects for authentication.
package dto

// LoginRequest represents the JSON request body for the staff login endpoint.
//
// @Description Request to authenticate a staff member
// @Example {"username": "staff", "password": "password123"}
type LoginRequest struct {
	// Username is the shared staff login name.
	Username string `json:"username" binding:"required" example:"staff"`
	// Password is the staff password.
	Password string `json:"password" binding:"required,min=6" example:"password123"`
} // @name LoginRequest

// LoginResponse represents the JSON response body for the login endpoint.
//
// @Description Successful authentication response with a JWT access token
type LoginResponse struct {
	// Token is the JWT access token.
	Token string `json:"token" example:"eyJhbGciOiJIUzI1NiIsInR5cCI6IkpXVCJ9..."`
	// ExpiresIn is the token lifetime in seconds.
	ExpiresIn int64 `json:"expires_in" example:"28800"`
} // @name LoginResponse

// TokenPair represents an issued access token (kept in dto to avoid import
// cycles between service and middleware).
type TokenPair struct {
	AccessToken string `json:"access_token"`
	ExpiresIn   int64  `json:"expires_in"` // seconds
}

// StaffClaims represents JWT claims for a staff session.
type StaffClaims struct {
	Username string `json:"username"`
	Role     string `json:"role"`
}

// Validate performs custom validation on the login request.
func (r *LoginRequest) Validate() error {
	if r.Username == "" {
		return &ValidationError{
			Field:   "username",
			Message: "username is required",
		}
	}
	if len(r.Password) < 6 {
		return &ValidationError{
			Field:   "password",
			Message: "password must be at least 6 characters",
		}
	}
	return nil
}
