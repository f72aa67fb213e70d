package client

import (
	"context"
	"strconv"

	"github.com/koard/DukeFarm-Admin-sub000/internal/domain/models"
)

// DashboardGroups fetches aggregated stats for one group type. Year 0 means
// let the server default to the current year.
func (c *Client) DashboardGroups(ctx context.Context, groupType string, year int) (models.DashboardGroup, error) {
	endpoint := "/dashboard/groups/" + groupType
	if year > 0 {
		endpoint += "?year=" + strconv.Itoa(year)
	}
	return Get[models.DashboardGroup](ctx, c, endpoint, nil)
}
