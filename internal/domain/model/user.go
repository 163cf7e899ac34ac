package model

import "time"

// User describes a user directory record.
type User struct {
	ID         int64
	Name       string
	Email      string
	Department string
	CreatedAt  time.Time
}
