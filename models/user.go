package models

const (
	RoleAdmin = "admin"
	RoleUser  = "user"
)

// User is a console login. Password holds whatever was stored: the seeded
// accounts keep plaintext, accounts provisioned later may hold a bcrypt hash.
type User struct {
	Base
	Email    string `json:"email" validate:"required,formemail"`
	Password string `json:"password" validate:"required"`
	Name     string `json:"name" validate:"required"`
	Role     string `json:"role" validate:"required,oneof=admin user"`
}

func (u *User) Normalize() {
	u.Email = clean(u.Email)
	u.Name = clean(u.Name)
	u.Role = lower(u.Role)
}
