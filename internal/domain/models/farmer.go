package models

// Farmer is the wire shape of a registered fish farmer.
// Timestamps travel as ISO-8601 strings; coordinates are optional because
// older registrations predate the geolocation field.
type Farmer struct {
	ID           string   `json:"id"`
	Name         string   `json:"name"`
	Phone        string   `json:"phone"`
	Email        string   `json:"email,omitempty"`
	FarmName     string   `json:"farmName"`
	FarmType     string   `json:"farmType"`
	Province     string   `json:"province"`
	Latitude     *float64 `json:"latitude,omitempty"`
	Longitude    *float64 `json:"longitude,omitempty"`
	PondCount    int      `json:"pondCount"`
	RegisteredAt string   `json:"registeredAt"`
}

// Known farm type codes as stored by the platform.
const (
	FarmTypeEarthenPond  = "earthen_pond"
	FarmTypeConcretePond = "concrete_pond"
	FarmTypeCage         = "cage"
	FarmTypeBiofloc      = "biofloc"
)
