package client

import (
	"context"

	"github.com/koard/DukeFarm-Admin-sub000/internal/domain/models"
)

// AdminLogin exchanges credentials for a bearer token. The only call that
// goes out without an Authorization header.
func (c *Client) AdminLogin(ctx context.Context, email, password string) (models.LoginResult, error) {
	body := map[string]string{"email": email, "password": password}
	return Post[models.LoginResult](ctx, c, "/auth/admin/login", body, &Options{SkipAuth: true})
}

// Me fetches the profile behind the current token.
func (c *Client) Me(ctx context.Context) (models.AdminUser, error) {
	return Get[models.AdminUser](ctx, c, "/auth/me", nil)
}
