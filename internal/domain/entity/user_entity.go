package entity

import (
	"time"
)

// User is the aggregate root for the user domain.
// Passwords are stored as bcrypt hashes in Password field.
type User struct {
	ID          string
	Email       string
	FullName    string
	PhoneNumber string
	Password    string
	IsStaff     bool
	CreatedAt   time.Time
	UpdatedAt   time.Time
}

// CanModify reports whether u may mutate a row created by ownerID.
// Staff may mutate anything that carries a creator.
func (u *User) CanModify(ownerID string) bool {
	if u == nil {
		return false
	}
	return u.IsStaff || u.ID == ownerID
}
