package client

import (
	"context"

	"github.com/koard/DukeFarm-Admin-sub000/internal/domain"
	"github.com/koard/DukeFarm-Admin-sub000/internal/domain/models"
	"github.com/koard/DukeFarm-Admin-sub000/internal/forms"
)

// ListFarmers fetches one page of farmers. Supported filters: farmType.
func (c *Client) ListFarmers(ctx context.Context, q domain.ListQuery) (domain.Paginated[models.Farmer], error) {
	return Get[domain.Paginated[models.Farmer]](ctx, c, "/farmers"+listQueryString(q), nil)
}

func (c *Client) GetFarmer(ctx context.Context, id string) (models.Farmer, error) {
	return Get[models.Farmer](ctx, c, "/farmers/"+id, nil)
}

func (c *Client) CreateFarmer(ctx context.Context, req forms.CreateFarmerRequest) (models.Farmer, error) {
	return Post[models.Farmer](ctx, c, "/farmers", req, nil)
}

// UpdateFarmer sends the complete updated record (full-replace semantics).
func (c *Client) UpdateFarmer(ctx context.Context, id string, req forms.UpdateFarmerRequest) (models.Farmer, error) {
	return Put[models.Farmer](ctx, c, "/farmers/"+id, req, nil)
}

func (c *Client) DeleteFarmer(ctx context.Context, id string) error {
	return c.Delete(ctx, "/farmers/"+id, nil)
}
