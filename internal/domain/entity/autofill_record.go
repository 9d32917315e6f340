package entity

import (
	"encoding/json"
	"time"
)

// AutofillRecord is a one-time pairing between a short code and an order
// intent payload. The code is both the primary key and the only credential:
// whoever presents it gets the payload, exactly once. The payload is opaque
// to the server and passed through verbatim.
type AutofillRecord struct {
	Code      string          `gorm:"primaryKey;size:16" json:"code"`
	Payload   json.RawMessage `gorm:"type:jsonb;not null" json:"payload"`
	CreatedAt time.Time       `gorm:"index;autoCreateTime" json:"created_at"`
}

// TableName returns the table name for AutofillRecord
func (AutofillRecord) TableName() string {
	return "autofill_records"
}

// IsExpired reports whether the record is past its TTL relative to now
func (r *AutofillRecord) IsExpired(ttl time.Duration, now time.Time) bool {
	return now.Sub(r.CreatedAt) > ttl
}
