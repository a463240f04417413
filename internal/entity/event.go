package entity

import "time"

// Event represents a church event shown on the events page. Events are
// immutable once created; there is no update or delete operation.
type Event struct {
	ID          int64     `db:"id" json:"id"`
	Title       string    `db:"title" json:"title"`
	Description string    `db:"description" json:"description"`
	Date        time.Time `db:"date" json:"date"`
	Location    string    `db:"location" json:"location"`
	IsRecurring bool      `db:"is_recurring" json:"isRecurring"`
}
