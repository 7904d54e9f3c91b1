package models

import "time"

// users table
type User struct {
	ID           string    `json:"id"`
	Name         string    `json:"name"`
	Email        string    `json:"email"`
	PasswordHash string    `json:"-"`
	CreatedAt    time.Time `json:"created_at"`
	UpdatedAt    time.Time `json:"updated_at"`
}

// kuu_titles table
type KuuTitle struct {
	ID    int64  `json:"id"`
	Level int    `json:"level"`
	Name  string `json:"name"`
}

// pushed to websocket listeners after every successful count-up
type KuuEvent struct {
	UserID    string `json:"user_id"`
	UserName  string `json:"user_name"`
	KuuCount  int    `json:"kuu_count"`
	Level     int    `json:"level"`
	Title     string `json:"title"`
	LeveledUp bool   `json:"leveled_up"`
	Timestamp int64  `json:"timestamp"`
}
