package domain

import (
	"errors"
	"time"
)

// Role identifies what kind of actor a user is.
type Role string

const (
	RoleClient       Role = "client"
	RolePhotographer Role = "photographer"
	RoleAdmin        Role = "admin"
)

// IsValid reports whether the role is one of the three known roles.
func (r Role) IsValid() bool {
	return r == RoleClient || r == RolePhotographer || r == RoleAdmin
}

var ErrUserNotFound = errors.New("user not found")
var ErrUserExists = errors.New("user already exists")
var ErrInvalidRole = errors.New("invalid role")

// Profile holds free-form public details attached to a user.
type Profile struct {
	Bio         string   `json:"bio,omitempty" bson:"bio,omitempty"`
	Phone       string   `json:"phone,omitempty" bson:"phone,omitempty"`
	Specialties []string `json:"specialties,omitempty" bson:"specialties,omitempty"`
	AvatarURL   string   `json:"avatar_url,omitempty" bson:"avatar_url,omitempty"`
}

// User models an authenticated actor in the system.
type User struct {
	ID           string    `json:"id" bson:"_id,omitempty"`
	Name         string    `json:"name" bson:"name"`
	Email        string    `json:"email" bson:"email"`
	PasswordHash string    `json:"-" bson:"password_hash"`
	Role         Role      `json:"role" bson:"role"`
	Profile      Profile   `json:"profile" bson:"profile"`
	CreatedAt    time.Time `json:"created_at" bson:"created_at"`
	UpdatedAt    time.Time `json:"updated_at" bson:"updated_at"`
}
