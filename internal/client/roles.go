package client

import (
	"context"

	"github.com/koard/DukeFarm-Admin-sub000/internal/domain/models"
	"github.com/koard/DukeFarm-Admin-sub000/internal/forms"
)

// ListRoles returns the full role set; roles are few enough that the
// endpoint is not paginated.
func (c *Client) ListRoles(ctx context.Context) ([]models.Role, error) {
	return Get[[]models.Role](ctx, c, "/roles", nil)
}

func (c *Client) CreateRole(ctx context.Context, req forms.CreateRoleRequest) (models.Role, error) {
	return Post[models.Role](ctx, c, "/roles", req, nil)
}

func (c *Client) UpdateRole(ctx context.Context, id string, req forms.UpdateRoleRequest) (models.Role, error) {
	return Put[models.Role](ctx, c, "/roles/"+id, req, nil)
}

func (c *Client) DeleteRole(ctx context.Context, id string) error {
	return c.Delete(ctx, "/roles/"+id, nil)
}
