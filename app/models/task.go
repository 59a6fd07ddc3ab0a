package models

import "time"

// Task represents a single to-do entry.
type Task struct {
	ID          uint64    `json:"id"`
	Title       string    `json:"title"`
	Description string    `json:"description"`
	Completed   bool      `json:"completed"`
	CreatedAt   time.Time `json:"created_at"`
}

// Stats holds the counts derived from a task collection.
type Stats struct {
	Total          int `json:"total"`
	Completed      int `json:"completed"`
	Active         int `json:"active"`
	CompletionRate int `json:"completion_rate"`
}

// Dashboard is what a presentation layer renders after each mutation.
type Dashboard struct {
	Filter Filter `json:"filter"`
	Tasks  []Task `json:"tasks"`
	Stats  Stats  `json:"stats"`
}
