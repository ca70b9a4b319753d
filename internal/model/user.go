package model

import (
	"fmt"

	"golang.org/x/crypto/bcrypt"
)

// PasswordCost is the bcrypt work factor used for new password hashes.
const PasswordCost = 10

// User is a registered account. It owns zero or more tasks.
type User struct {
	ID           uint   `json:"id" gorm:"primaryKey"`
	Name         string `json:"name" gorm:"size:80;not null"`
	Email        string `json:"email" gorm:"size:80;not null"`
	PasswordHash string `json:"-" gorm:"size:128;not null"` // Never expose in JSON

	Tasks []Task `json:"-" gorm:"foreignKey:UserID"`
}

// TableName pins the table name to users.
func (User) TableName() string { return "users" }

// SetPassword hashes plain with a fresh salt and replaces any stored hash.
func (u *User) SetPassword(plain string) error {
	hash, err := bcrypt.GenerateFromPassword([]byte(plain), PasswordCost)
	if err != nil {
		return fmt.Errorf("hash password: %w", err)
	}
	u.PasswordHash = string(hash)
	return nil
}

// CheckPassword reports whether plain matches the stored hash.
func (u *User) CheckPassword(plain string) bool {
	if u.PasswordHash == "" {
		return false
	}
	return bcrypt.CompareHashAndPassword([]byte(u.PasswordHash), []byte(plain)) == nil
}
