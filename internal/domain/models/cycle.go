package models

// PondCycle is one production cycle of a pond, from stocking to harvest.
// A pond has at most one active cycle at a time.
type PondCycle struct {
	ID         string `json:"id"`
	PondID     string `json:"pondId"`
	Species    string `json:"species"`
	StockCount int    `json:"stockCount"`
	Status     string `json:"status"`
	StartedAt  string `json:"startedAt"`
	EndedAt    string `json:"endedAt,omitempty"`
}

const (
	CycleStatusActive = "active"
	CycleStatusEnded  = "ended"
)

// CycleCount is the response shape of the cycle-count endpoint.
type CycleCount struct {
	PondID string `json:"pondId"`
	Count  int    `json:"count"`
}
