package models

import "time"

// Notification is an in-app message appended to a user document.
type Notification struct {
	ID        string            `bson:"id" json:"id"`
	Type      string            `bson:"type" json:"type"`
	Message   string            `bson:"message" json:"message"`
	Data      map[string]string `bson:"data,omitempty" json:"data,omitempty"`
	CreatedAt time.Time         `bson:"created_at" json:"createdAt"`
	Read      bool              `bson:"read" json:"read"`
}

// User represents a customer account.
type User struct {
	ID            string         `bson:"id" json:"id"`
	Name          string         `bson:"name" json:"name"`
	Email         string         `bson:"email" json:"email"`
	PasswordHash  string         `bson:"password_hash" json:"-"`
	Phone         string         `bson:"phone,omitempty" json:"phone,omitempty"`
	Notifications []Notification `bson:"notifications,omitempty" json:"notifications,omitempty"`
	CreatedAt     time.Time      `bson:"created_at" json:"createdAt"`
	UpdatedAt     time.Time      `bson:"updated_at" json:"updatedAt"`
}
