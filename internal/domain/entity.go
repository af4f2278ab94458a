package domain

import (
	"time"
)

// Journal stages. One REQUEST row per attempt, then exactly one
// RESPONSE or ERROR row for its outcome.
const (
	StageRequest  = "REQUEST"
	StageResponse = "RESPONSE"
	StageError    = "ERROR"
)

// Gateway operations as recorded in the journal.
const (
	OpPlace  = "PLACE"
	OpStatus = "STATUS"
	OpCancel = "CANCEL"
)

// OrderEvent is one row of the append-only order journal.
// Rows are inserted and never updated or deleted. OrderID stays 0 until
// the exchange assigns one; Detail carries the request parameters or
// the outcome payload in human-readable form.
type OrderEvent struct {
	ID        uint      `gorm:"primaryKey;autoIncrement" json:"id"`
	At        time.Time `gorm:"index" json:"at"`
	Stage     string    `gorm:"index" json:"stage"`
	Operation string    `json:"operation"`
	Symbol    string    `gorm:"index" json:"symbol"`
	OrderID   int64     `json:"order_id"`
	Detail    string    `json:"detail"`
}
