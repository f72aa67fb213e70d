package client

import (
	"context"

	"github.com/koard/DukeFarm-Admin-sub000/internal/domain/models"
	"github.com/koard/DukeFarm-Admin-sub000/internal/forms"
)

// ActiveCycle returns the pond's currently running cycle, or a not-found
// server error when none is active.
func (c *Client) ActiveCycle(ctx context.Context, pondID string) (models.PondCycle, error) {
	return Get[models.PondCycle](ctx, c, "/ponds/"+pondID+"/active-cycle", nil)
}

func (c *Client) ListCycles(ctx context.Context, pondID string) ([]models.PondCycle, error) {
	return Get[[]models.PondCycle](ctx, c, "/ponds/"+pondID+"/cycles", nil)
}

func (c *Client) CycleCount(ctx context.Context, pondID string) (models.CycleCount, error) {
	return Get[models.CycleCount](ctx, c, "/ponds/"+pondID+"/cycle-count", nil)
}

func (c *Client) StartCycle(ctx context.Context, pondID string, req forms.StartCycleRequest) (models.PondCycle, error) {
	return Post[models.PondCycle](ctx, c, "/ponds/"+pondID+"/start-cycle", req, nil)
}

func (c *Client) EndCycle(ctx context.Context, pondID string) (models.PondCycle, error) {
	return Post[models.PondCycle](ctx, c, "/ponds/"+pondID+"/end-cycle", nil, nil)
}
