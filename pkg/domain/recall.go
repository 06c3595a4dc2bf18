package domain

import "time"

// Recall is a manufacturer-issued notice that a batch is unsafe.
type Recall struct {
	ID          int64
	BatchNumber string
	Reason      string
	RecallDate  time.Time
}

// RecallNotice is the event published to downstream subscribers once a
// recall has been recorded.
type RecallNotice struct {
	RecallID    int64       `json:"recall_id"`
	BatchNumber string      `json:"batch_number"`
	Reason      string      `json:"reason"`
	RecallDate  time.Time   `json:"recall_date"`
	ProductIDs  []ProductID `json:"product_ids"`
}
