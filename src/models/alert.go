package models

import (
	"time"

	"github.com/google/uuid"
)

// AlertUp signals that the price reached or broke the upside breakeven: the
// advisory is to close the platform-B buy leg.
type AlertUp struct {
	ID          uuid.UUID
	Price       float64
	BreakevenUp float64
	Timestamp   time.Time
}

// AlertDown signals that the price reached or broke the downside breakeven:
// the advisory is to close the platform-A sell leg.
type AlertDown struct {
	ID            uuid.UUID
	Price         float64
	BreakevenDown float64
	Timestamp     time.Time
}

func NewAlertUp(price, breakevenUp float64, ts time.Time) AlertUp {
	return AlertUp{
		ID:          uuid.New(),
		Price:       price,
		BreakevenUp: breakevenUp,
		Timestamp:   ts,
	}
}

func NewAlertDown(price, breakevenDown float64, ts time.Time) AlertDown {
	return AlertDown{
		ID:            uuid.New(),
		Price:         price,
		BreakevenDown: breakevenDown,
		Timestamp:     ts,
	}
}
