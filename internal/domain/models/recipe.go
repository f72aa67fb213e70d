package models

// FeedFormula is the wire shape of a feed recipe.
// Nutrient percentages travel as strings exactly as entered on the form;
// the forms layer enforces the numeric character allow-list.
type FeedFormula struct {
	ID              string       `json:"id"`
	Name            string       `json:"name"`
	FishType        string       `json:"fishType"`
	Description     string       `json:"description,omitempty"`
	Ingredients     []Ingredient `json:"ingredients"`
	Protein         string       `json:"protein"`
	Fat             string       `json:"fat"`
	Fiber           string       `json:"fiber"`
	Moisture        string       `json:"moisture"`
	Recommendations string       `json:"recommendations"`
	CreatedAt       string       `json:"createdAt"`
	UpdatedAt       string       `json:"updatedAt,omitempty"`
}

// Ingredient is one component of a feed formula. Ratio is free-form
// numeric text such as "2.5" or "1/2".
type Ingredient struct {
	Name  string `json:"name"`
	Ratio string `json:"ratio"`
}
