package repository

import "calendar-tool-service/internal/model"

// InsertEventOptions holds the event to insert.
type InsertEventOptions struct {
	Event model.NewEvent
}
