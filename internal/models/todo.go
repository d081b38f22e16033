// Package models holds the plain data types shared by the storage, service and
// presentation layers.
package models

import "time"

// Todo represents a single item on the task list
type Todo struct {
	ID        int       `json:"id"`
	Task      string    `json:"task"`
	Done      bool      `json:"done"`
	CreatedAt time.Time `json:"created_at"`
}

// GetID lets output formatters print just the ID in quiet mode
func (t *Todo) GetID() int {
	return t.ID
}

// Status returns "done" or "pending"
func (t *Todo) Status() string {
	if t.Done {
		return StatusDone
	}
	return StatusPending
}

// Stats holds aggregate counts over the todos table.
// Total is always Completed + Pending.
type Stats struct {
	Total     int `json:"total"`
	Completed int `json:"completed"`
	Pending   int `json:"pending"`
}

// TodoPage is one page of a filtered listing plus the metadata needed to
// navigate to the neighbouring pages
type TodoPage struct {
	Todos      []*Todo `json:"todos"`
	Page       int     `json:"page"`
	Limit      int     `json:"limit"`
	Total      int     `json:"total"`
	TotalPages int     `json:"total_pages"`
	HasNext    bool    `json:"has_next_page"`
	HasPrev    bool    `json:"has_prev_page"`
}
