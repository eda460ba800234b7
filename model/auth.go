package model

import (
	"time"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

const RoleAdmin = "admin"

// User is an account of the back office. The id is opaque text.
type User struct {
	ID            string     `gorm:"type:text;primaryKey" json:"id"`
	Name          string     `gorm:"type:text;not null" json:"name"`
	Email         string     `gorm:"type:text;not null;uniqueIndex" json:"email"`
	EmailVerified bool       `gorm:"not null;default:false" json:"emailVerified"`
	Image         *string    `gorm:"type:text" json:"image"`
	Role          string     `gorm:"type:text" json:"role"`
	Banned        bool       `gorm:"default:false" json:"banned"`
	BanReason     *string    `gorm:"type:text" json:"banReason"`
	BanExpires    *time.Time `json:"banExpires"`
	PasswordHash  string     `gorm:"type:text" json:"-"`
	CreatedAt     time.Time  `gorm:"autoCreateTime" json:"createdAt"`
	UpdatedAt     time.Time  `gorm:"autoUpdateTime" json:"updatedAt"`
}

func (u *User) BeforeCreate(tx *gorm.DB) error {
	if u.ID == "" {
		u.ID = uuid.NewString()
	}
	return nil
}

// IsBanned reports whether the ban is still in force at now.
func (u *User) IsBanned(now time.Time) bool {
	if !u.Banned {
		return false
	}
	return u.BanExpires == nil || u.BanExpires.After(now)
}

type SignInRequest struct {
	Email    string `json:"email"`
	Password string `json:"password"`
}

type GoogleSignInRequest struct {
	IDToken string `json:"id_token"`
}

type Session struct {
	Token string `json:"token"`
	User  User   `json:"user"`
}
