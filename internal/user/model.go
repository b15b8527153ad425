package user

import "time"

type Role string

const (
	RoleAdmin    Role = "admin"
	RoleSupplier Role = "supplier"
	RoleCustomer Role = "customer"
)

type User struct {
	ID        uint
	Email     string
	Username  string
	Password  string
	Role      Role
	Phone     string
	Address   string
	CreatedAt time.Time
}

func (u User) IsAdmin() bool    { return u.Role == RoleAdmin }
func (u User) IsSupplier() bool { return u.Role == RoleSupplier }
func (u User) IsCustomer() bool { return u.Role == RoleCustomer }

// RegisterParams carries the registration form. Role decides which of the
// customer/supplier field groups is required.
type RegisterParams struct {
	Role     Role
	Email    string
	Password string

	// customer fields
	Username string
	Phone    string
	Address  string

	// supplier fields
	CompanyName  string
	INN          string
	CompanyPhone string
}
