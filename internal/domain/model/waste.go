package model

import (
	"time"
)

// WasteCategory and Location are pre-seeded reference entities. The request
// path looks them up by display name and never creates them.
type WasteCategory struct {
	ID   int64  `json:"id"`
	Name string `json:"name"`
}

type Location struct {
	ID   int64  `json:"id"`
	Name string `json:"name"`
}

// WasteRecord is the persisted row. Immutable once created.
type WasteRecord struct {
	ID         int64     `json:"id"`
	CategoryID int64     `json:"category_id"`
	LocationID int64     `json:"location_id"`
	WeightKg   float64   `json:"weight"`
	RecordedAt time.Time `json:"recorded_at"`
	Notes      string    `json:"notes,omitempty"`
}

// WasteRecordView is the joined, client-facing shape: names instead of ids,
// the timestamp split into date and time strings, weight always numeric.
type WasteRecordView struct {
	ID       int64   `json:"id"`
	Type     string  `json:"type"`
	Location string  `json:"location"`
	Weight   float64 `json:"weight"`
	Date     string  `json:"date"`
	Time     string  `json:"time"`
	Notes    string  `json:"notes,omitempty"`
}
