package models

import "time"

type User struct {
	ID         string    `json:"_id"`
	Name       string    `json:"name"`
	Email      string    `json:"email"`
	Role       string    `json:"role"` // "admin", "user", or server-defined
	Avatar     Avatar    `json:"avatar"`
	Courses    []string  `json:"courses"` // enrolled course ids
	CreatedAt  time.Time `json:"createdAt"`
	LastActive time.Time `json:"lastActive"`
}

type Avatar struct {
	PublicID string `json:"public_id,omitempty"`
	URL      string `json:"url"`
}

func (u User) IsAdmin() bool {
	return u.Role == "admin"
}

func (u User) IsEnrolled(courseID string) bool {
	for _, id := range u.Courses {
		if id == courseID {
			return true
		}
	}
	return false
}
