package domain

// User is an account in the system. Deactivation is a soft delete:
// IsActive flips to false and the row is never removed.
type User struct {
	ID                 int32  `json:"id"`
	Email              string `json:"email"`
	PasswordHash       string `json:"-"`
	FullName           string `json:"full_name"`
	Phone              string `json:"phone"`
	IsActive           bool   `json:"is_active"`
	RoleID             int32  `json:"role_id"`
	ResetPasswordToken string `json:"-"`
	CreatedOn          string `json:"created_on"`
	UpdatedOn          string `json:"updated_on"`
}

// IsHelper reports whether the user holds the Helper role.
func (u *User) IsHelper() bool {
	return u.RoleID == RoleHelper
}
