// Package model defines the database entities of the multidiary blog:
// users, posts, comments and roles.
package model

import "time"

// DefaultRoleId is the role assigned to users created through registration.
const DefaultRoleId = 1

type User struct {
	Id           int       `json:"id" form:"id" gorm:"primaryKey;autoIncrement"`
	Login        string    `json:"login" form:"login" gorm:"uniqueIndex;not null"`
	Password     string    `json:"-" form:"password" gorm:"not null"`
	CreationDate time.Time `json:"creationDate"`
	RoleId       int       `json:"roleId" gorm:"not null;default:1"`

	// Denormalized counters, reconciled by the recount job.
	NumPosts    int `json:"numPosts" gorm:"not null;default:0"`
	NumComments int `json:"numComments" gorm:"not null;default:0"`
}

// IsAuthenticated reports whether the user is a persisted identity rather
// than the anonymous placeholder attached to unauthenticated requests.
func (u *User) IsAuthenticated() bool {
	return u.Id != 0
}

type Post struct {
	Id           int       `json:"id" form:"id" gorm:"primaryKey;autoIncrement"`
	Content      string    `json:"content" form:"content" gorm:"not null"`
	CreationDate time.Time `json:"creationDate"`
	AuthorId     int       `json:"authorId" gorm:"not null;index"`

	NumComments int `json:"numComments" gorm:"not null;default:0"`
}

type Comment struct {
	Id           int       `json:"id" form:"id" gorm:"primaryKey;autoIncrement"`
	Content      string    `json:"content" form:"content" gorm:"not null"`
	CreationDate time.Time `json:"creationDate"`
	AuthorId     int       `json:"authorId" gorm:"not null;index"`
	PostId       int       `json:"postId" gorm:"not null;index"`
}

type Role struct {
	Id   int    `json:"id" gorm:"primaryKey;autoIncrement"`
	Name string `json:"name" gorm:"not null"`
}
