package entity

import (
	"time"

	"philatelysamaaj/pkg/geo"
)

type Event struct {
	ID          string         `json:"id" firestore:"id"`
	Name        string         `json:"name" firestore:"name"`
	Description string         `json:"description" firestore:"description"`
	Organizer   string         `json:"organizer" firestore:"organizer"`
	Website     string         `json:"website,omitempty" firestore:"website,omitempty"`
	Location    geo.Coordinate `json:"location" firestore:"location"`
	Venue       string         `json:"venue,omitempty" firestore:"venue,omitempty"`
	StartDate   time.Time      `json:"start_date" firestore:"startDate"`
	EndDate     time.Time      `json:"end_date" firestore:"endDate"`
	Price       float64        `json:"price" firestore:"price"`
	CreatedBy   string         `json:"created_by" firestore:"createdBy"`
	CreatedAt   time.Time      `json:"created_at" firestore:"createdAt"`
	UpdatedAt   time.Time      `json:"updated_at" firestore:"updatedAt"`
}

// EventWithDistance pairs an event with its distance from the viewer.
type EventWithDistance struct {
	*Event
	DistanceKm *float64 `json:"distance_km,omitempty"`
}

type Booking struct {
	ID        int64     `json:"id"`
	EventID   string    `json:"event_id"`
	UserID    string    `json:"user_id"`
	Amount    float64   `json:"amount"`
	EntryID   int64     `json:"ledger_entry_id"`
	CreatedAt time.Time `json:"created_at"`
}
