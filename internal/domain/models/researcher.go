package models

// Researcher is the wire shape of a platform researcher account.
type Researcher struct {
	ID         string `json:"id"`
	Name       string `json:"name"`
	Email      string `json:"email"`
	Phone      string `json:"phone,omitempty"`
	Department string `json:"department"`
	Specialty  string `json:"specialty,omitempty"`
	CreatedAt  string `json:"createdAt"`
}
