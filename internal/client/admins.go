package client

import (
	"context"

	"github.com/koard/DukeFarm-Admin-sub000/internal/domain"
	"github.com/koard/DukeFarm-Admin-sub000/internal/domain/models"
	"github.com/koard/DukeFarm-Admin-sub000/internal/forms"
)

func (c *Client) ListAdmins(ctx context.Context, q domain.ListQuery) (domain.Paginated[models.AdminUser], error) {
	return Get[domain.Paginated[models.AdminUser]](ctx, c, "/admins"+listQueryString(q), nil)
}

func (c *Client) GetAdmin(ctx context.Context, id string) (models.AdminUser, error) {
	return Get[models.AdminUser](ctx, c, "/admins/"+id, nil)
}

func (c *Client) CreateAdmin(ctx context.Context, req forms.CreateAdminRequest) (models.AdminUser, error) {
	return Post[models.AdminUser](ctx, c, "/admins", req, nil)
}

func (c *Client) UpdateAdmin(ctx context.Context, id string, req forms.UpdateAdminRequest) (models.AdminUser, error) {
	return Put[models.AdminUser](ctx, c, "/admins/"+id, req, nil)
}

func (c *Client) DeleteAdmin(ctx context.Context, id string) error {
	return c.Delete(ctx, "/admins/"+id, nil)
}
