package models

import (
	"time"
)

type User struct {
	ID        int     `json:"id" db:"id"`
	FirstName string  `json:"firstName" db:"first_name"`
	LastName  string  `json:"lastName" db:"last_name"`
	ImageURL  *string `json:"imageUrl" db:"image_url"`
}

// FullName - полное имя для шаблонов и flash-сообщений
func (u *User) FullName() string {
	return u.FirstName + " " + u.LastName
}

type Post struct {
	ID        int       `json:"id" db:"id"`
	Title     string    `json:"title" db:"title"`
	Content   string    `json:"content" db:"content"`
	CreatedAt time.Time `json:"createdAt" db:"created_at"`
	UserID    int       `json:"userId" db:"user_id"`
}
