package models

// Task is a single to-do item. UserID is set from the authenticated
// caller at creation and is never accepted as client input afterwards.
// DueDate carries calendar-date semantics and is stored as an ISO date
// string ("2025-01-01").
type Task struct {
	ID       string `json:"id"`
	Name     string `json:"name"`
	DueDate  string `json:"dueDate"`
	Priority int    `json:"priority"`
	UserID   string `json:"userId"`
}

// TaskUpdate is a partial update: nil fields are left untouched.
// UserID is deliberately absent, ownership cannot be reassigned.
type TaskUpdate struct {
	Name     *string
	DueDate  *string
	Priority *int
}
