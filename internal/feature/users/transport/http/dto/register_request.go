// Package dto defines data transfer objects for the users feature's HTTP transport layer.
package dto

// RegisterReq represents the request body for the /user/register endpoint.
// Name, email, password and phone are mandatory; role is free text and optional.
// Email format is intentionally not validated, only presence.
type RegisterReq struct {
	Name     string `json:"name" binding:"required"`
	Email    string `json:"email" binding:"required"`
	Password string `json:"password" binding:"required"`
	Phone    string `json:"phone" binding:"required"`
	Role     string `json:"role"`
}

// RegisterResp is the response body for a successful registration.
// Only the assigned ID and the email are echoed back, never the hash.
type RegisterResp struct {
	ID    uint   `json:"id"`
	Email string `json:"email"`
}
