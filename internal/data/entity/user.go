package entity

type UserRole string

const (
	RoleUser  UserRole = "user"
	RoleAdmin UserRole = "admin"
)

type User struct {
	Base
	Username     string   `db:"username"`
	PasswordHash string   `db:"password"`
	Role         UserRole `db:"role"`
}
