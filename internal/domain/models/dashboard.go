package models

// Dashboard group types accepted by /dashboard/groups/:groupType.
const (
	DashboardGroupFarmer     = "farmer"
	DashboardGroupResearcher = "researcher"
	DashboardGroupProduction = "production"
)

// MonthlyCount is one month's aggregate within a dashboard year.
type MonthlyCount struct {
	Month int     `json:"month"`
	Count int     `json:"count"`
	Total float64 `json:"total,omitempty"`
}

// RankEntry is one row of a dashboard ranking table.
type RankEntry struct {
	Name  string  `json:"name"`
	Value float64 `json:"value"`
}

// DashboardGroup is the aggregated stats payload for one group type and year.
type DashboardGroup struct {
	GroupType string         `json:"groupType"`
	Year      int            `json:"year"`
	Monthly   []MonthlyCount `json:"monthly"`
	Ranking   []RankEntry    `json:"ranking,omitempty"`
}
