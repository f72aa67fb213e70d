package client

import (
	"context"

	"github.com/koard/DukeFarm-Admin-sub000/internal/domain"
	"github.com/koard/DukeFarm-Admin-sub000/internal/domain/models"
	"github.com/koard/DukeFarm-Admin-sub000/internal/forms"
)

func (c *Client) ListFeedFormulas(ctx context.Context, q domain.ListQuery) (domain.Paginated[models.FeedFormula], error) {
	return Get[domain.Paginated[models.FeedFormula]](ctx, c, "/feed-formulas"+listQueryString(q), nil)
}

func (c *Client) GetFeedFormula(ctx context.Context, id string) (models.FeedFormula, error) {
	return Get[models.FeedFormula](ctx, c, "/feed-formulas/"+id, nil)
}

func (c *Client) CreateFeedFormula(ctx context.Context, req forms.CreateRecipeRequest) (models.FeedFormula, error) {
	return Post[models.FeedFormula](ctx, c, "/feed-formulas", req, nil)
}

func (c *Client) UpdateFeedFormula(ctx context.Context, id string, req forms.UpdateRecipeRequest) (models.FeedFormula, error) {
	return Put[models.FeedFormula](ctx, c, "/feed-formulas/"+id, req, nil)
}

func (c *Client) DeleteFeedFormula(ctx context.Context, id string) error {
	return c.Delete(ctx, "/feed-formulas/"+id, nil)
}

// DownloadFeedFormulaSheet fetches the printable PDF sheet for a formula.
func (c *Client) DownloadFeedFormulaSheet(ctx context.Context, id string) ([]byte, error) {
	return c.GetRaw(ctx, "/feed-formulas/"+id+"/sheet", nil)
}
