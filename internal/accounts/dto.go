package accounts

import "github.com/pharmahub/pharma-backend/pkg/enums"

// SignupRequest is the registration payload. Role is free-form and defaults
// to customer when absent.
type SignupRequest struct {
	FullName string `json:"fullName,omitempty"`
	Email    string `json:"email" validate:"required"`
	Password string `json:"password" validate:"required"`
	Role     string `json:"role,omitempty"`
}

// LoginRequest carries the credentials for an existing account.
type LoginRequest struct {
	Email    string `json:"email" validate:"required"`
	Password string `json:"password" validate:"required"`
}

// AccountSummary is the response shape shared by signup and login. The token
// is an opaque placeholder credential; nothing downstream verifies it.
type AccountSummary struct {
	Message  string           `json:"message"`
	FullName string           `json:"fullName"`
	Role     string           `json:"role"`
	Token    string           `json:"token"`
	Status   enums.UserStatus `json:"status"`
	Email    string           `json:"email"`
}

// StatusResponse is returned by the status lookup endpoint.
type StatusResponse struct {
	Status enums.UserStatus `json:"status"`
	Role   string           `json:"role"`
}
