package response

// AdminStatusResponse reports whether the current caller holds admin access
type AdminStatusResponse struct {
	IsAdmin bool `json:"isAdmin"`
}

// VerifyPasswordResponse is returned by the admin login endpoint. The token
// is present only when verification succeeded.
type VerifyPasswordResponse struct {
	Success bool   `json:"success"`
	Token   string `json:"token,omitempty"`
}

// SuccessResponse acknowledges a mutation that returns no record
type SuccessResponse struct {
	Success bool   `json:"success"`
	Message string `json:"message,omitempty"`
}
