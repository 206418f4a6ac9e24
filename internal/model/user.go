package model

// User is an admin account able to moderate directory submissions.
type User struct {
	Base
	Email        string `db:"email" json:"email"`
	Name         string `db:"name" json:"name"`
	PasswordHash string `db:"password_hash" json:"-"`
	Role         string `db:"role" json:"role"`
}

const RoleAdmin = "admin"
