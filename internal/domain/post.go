package domain

import "time"

type Post struct {
	ID          int64      `json:"id"`
	Description string     `json:"description"`
	CreatedAt   time.Time  `json:"created_at"`
	UpdatedAt   *time.Time `json:"updated_at,omitempty"`
	Author      User       `json:"author"`
}

// Edited reports whether the post was changed after creation.
func (p Post) Edited() bool {
	return p.UpdatedAt != nil
}
