package client

import (
	"context"

	"github.com/koard/DukeFarm-Admin-sub000/internal/domain"
	"github.com/koard/DukeFarm-Admin-sub000/internal/domain/models"
	"github.com/koard/DukeFarm-Admin-sub000/internal/forms"
)

func (c *Client) ListResearchers(ctx context.Context, q domain.ListQuery) (domain.Paginated[models.Researcher], error) {
	return Get[domain.Paginated[models.Researcher]](ctx, c, "/researchers"+listQueryString(q), nil)
}

func (c *Client) GetResearcher(ctx context.Context, id string) (models.Researcher, error) {
	return Get[models.Researcher](ctx, c, "/researchers/"+id, nil)
}

func (c *Client) CreateResearcher(ctx context.Context, req forms.CreateResearcherRequest) (models.Researcher, error) {
	return Post[models.Researcher](ctx, c, "/researchers", req, nil)
}

func (c *Client) UpdateResearcher(ctx context.Context, id string, req forms.UpdateResearcherRequest) (models.Researcher, error) {
	return Put[models.Researcher](ctx, c, "/researchers/"+id, req, nil)
}

func (c *Client) DeleteResearcher(ctx context.Context, id string) error {
	return c.Delete(ctx, "/researchers/"+id, nil)
}
