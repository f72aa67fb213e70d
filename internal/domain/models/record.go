package models

// FarmRecord is one farm activity entry (feeding, water quality, harvest).
type FarmRecord struct {
	ID         string `json:"id"`
	PondID     string `json:"pondId"`
	FarmerID   string `json:"farmerId"`
	RecordType string `json:"recordType"`
	Amount     string `json:"amount,omitempty"`
	Unit       string `json:"unit,omitempty"`
	Note       string `json:"note,omitempty"`
	RecordedAt string `json:"recordedAt"`
	CreatedAt  string `json:"createdAt"`
}

const (
	RecordTypeFeeding      = "feeding"
	RecordTypeWaterQuality = "water_quality"
	RecordTypeHarvest      = "harvest"
	RecordTypeMortality    = "mortality"
)

// FormOption is a selectable value with its localized label.
type FormOption struct {
	Value string `json:"value"`
	Label string `json:"label"`
}

// RecordFormState enumerates the choices the record form offers.
type RecordFormState struct {
	RecordTypes []FormOption `json:"recordTypes"`
	Units       []FormOption `json:"units"`
}
