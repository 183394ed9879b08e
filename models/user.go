package models

import "time"

// User owns a vault. Sessions reference users by UserID; the user's session
// list is derived from them.
type User struct {
	UserID    int64     `json:"userId"`
	Username  string    `json:"username"`
	CreatedAt time.Time `json:"createdAt"`
}

// TableName returns the name of the database table
// associated with the User model.
func (u User) TableName() string {
	return "users"
}
