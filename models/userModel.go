package models

import (
	"encoding/json"
	"time"

	"gorm.io/datatypes"
	"gorm.io/gorm"
)

type User struct {
	gorm.Model
	Name             string         `json:"name"`
	Email            string         `json:"email" gorm:"uniqueIndex;size:191"`
	Password         string         `json:"-"`
	Permissions      datatypes.JSON `json:"permissions"`
	ResetToken       *string        `json:"-"`
	ResetTokenExpiry *time.Time     `json:"-"`
}

// PermissionList decodes the stored permission set. A user with a corrupt
// or empty column simply has no permissions.
func (u *User) PermissionList() []string {
	if len(u.Permissions) == 0 {
		return nil
	}
	var perms []string
	if err := json.Unmarshal(u.Permissions, &perms); err != nil {
		return nil
	}
	return perms
}

// PermissionsJSON encodes a permission set for storage.
func PermissionsJSON(perms []string) datatypes.JSON {
	data, _ := json.Marshal(perms)
	return data
}

type SignupData struct {
	Name     string `json:"name" binding:"required"`
	Email    string `json:"email" binding:"required,email"`
	Password string `json:"password" binding:"required,min=8"`
}

type LoginData struct {
	Email    string `json:"email" binding:"required,email"`
	Password string `json:"password" binding:"required"`
}
