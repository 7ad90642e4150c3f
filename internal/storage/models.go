package storage

import "time"

// Subject groups tasks under a user-chosen title. IDs are creation-time
// derived millisecond tokens, the same scheme the original frontend used.
type Subject struct {
	ID    int64  `json:"id"`
	Title string `json:"title"`
	Color string `json:"color,omitempty"`
	Tasks []Task `json:"tasks"`
}

type Task struct {
	ID          int64      `json:"id"`
	Content     string     `json:"content"`
	Completed   bool       `json:"completed"`
	CompletedAt *time.Time `json:"completedAt,omitempty"`
	Difficulty  string     `json:"difficulty"`
}

// Item is a shop/inventory entry. Category is serialized as "type" to stay
// wire-compatible with the original inventory payloads.
type Item struct {
	ID          int64  `json:"id"`
	Name        string `json:"name"`
	Category    string `json:"type"`
	Price       int    `json:"price"`
	Description string `json:"description,omitempty"`
	Quantity    int    `json:"quantity"`
}

// XPData is the persisted XP snapshot. Level is denormalized; the engine
// always recomputes it from XP and treats the stored copy as display cache.
type XPData struct {
	XP    int `json:"xp"`
	Level int `json:"level"`
}
