// Package dto defines Data Transfer Objects for authentication.
package dto

// Identity roles. The service knows exactly two callers: the administrator
// and a student identified by a numeric id.
const (
	RoleAdmin   = "admin"
	RoleStudent = "student"
)

// LoginRequest represents the JSON request body for the login endpoint.
//
// The original dashboard semantics are kept: the admin username needs the
// configured password; any all-digit username is a student and needs none.
//
// @Description Request to authenticate as the administrator or a student
// @Example {"username": "42"}
type LoginRequest struct {
	// Username is either the admin username or a numeric student id.
	Username string `json:"username" binding:"required" example:"42"`
	// Password is required for the admin, ignored for students.
	Password string `json:"password,omitempty" example:"admin123"`
} // @name LoginRequest

// Validate performs custom validation on the login request.
func (r *LoginRequest) Validate() error {
	if r.Username == "" {
		return &ValidationError{Field: "username", Message: "username is required"}
	}
	return nil
}

// LoginResponse represents the JSON response body for the login endpoint.
//
// @Description Successful authentication response with a bearer token
type LoginResponse struct {
	// Token is the JWT bearer token.
	Token string `json:"token" example:"eyJhbGciOiJIUzI1NiIsInR5cCI6IkpXVCJ9..."`
	// Role is "admin" or "student".
	Role string `json:"role" example:"student"`
	// Subject is the authenticated identity: the admin username or student id.
	Subject string `json:"subject" example:"42"`
	// ExpiresIn is the token lifetime in seconds.
	ExpiresIn int64 `json:"expires_in" example:"28800"`
} // @name LoginResponse

// Claims represents the identity carried by a token. Defined here rather
// than in the service package to avoid import cycles with middleware.
type Claims struct {
	// Subject is the admin username or the student id.
	Subject string `json:"subject"`
	// Role is "admin" or "student".
	Role string `json:"role"`
}

// IsAdmin reports whether the claims identify the administrator.
func (c *Claims) IsAdmin() bool { return c.Role == RoleAdmin }

// IsStudent reports whether the claims identify a student.
func (c *Claims) IsStudent() bool { return c.Role == RoleStudent }
