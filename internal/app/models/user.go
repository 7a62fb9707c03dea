package models

// User is the single admin identity. The archive is a single-admin
// application: one row, created by the seed, mutated only by the
// password-change operation.
type User struct {
	ID                int64   `json:"id"`
	Password          string  `json:"-"`
	ChangePasswordKey *string `json:"-"`
}
