package models

import (
	"time"

	"gorm.io/gorm"
)

type User struct {
	gorm.Model
	ProfileImage    string     `gorm:"default:''"`
	Name            string     `gorm:"default:''"`
	Headline        string     `gorm:"default:''"`
	Bio             string     `gorm:"type:text"`
	Email           string     `gorm:"unique;not null"`
	Password        string     `json:"-" gorm:"not null"`
	IsEmailVerified bool       `gorm:"default:false"`
	LastLogin       *time.Time `json:"last_login"`
	IsDeleted       bool       `gorm:"default:false"`
}
