package db_models

import (
	"github.com/lib/pq"
)

// Trip wraps a generated itinerary for storage. TripDetail holds the
// serialized itinerary JSON; it is written once and never mutated in place,
// corrections require regeneration. PaymentLink stays nil until the second
// write after payment-link creation succeeds.
type Trip struct {
	BaseModel
	TripDetail  string         `gorm:"type:text"`
	ImageUrls   pq.StringArray `gorm:"type:text[]"`
	UserID      string         `gorm:"index"`
	PaymentLink *string
}
