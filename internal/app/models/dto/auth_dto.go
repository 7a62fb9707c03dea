package dto

// LoginRequest is the single-admin login payload
type LoginRequest struct {
	Password string `json:"password" binding:"required"`
}

// LoginUser is the identity block returned on login/verify
type LoginUser struct {
	ID int64 `json:"id"`
}

// LoginResponse carries the issued token
type LoginResponse struct {
	Token string    `json:"token"`
	User  LoginUser `json:"user"`
}

// ChangePasswordRequest rotates the admin password out of band. The
// authorization key historically arrived under either "key" or
// "oldPassword"; both are accepted.
type ChangePasswordRequest struct {
	Key         string `json:"key"`
	OldPassword string `json:"oldPassword"`
	NewPassword string `json:"newPassword" binding:"required,min=8"`
}

// AuthKey returns the caller-supplied authorization key.
func (r *ChangePasswordRequest) AuthKey() string {
	if r.Key != "" {
		return r.Key
	}
	return r.OldPassword
}
