package client

import (
	"context"

	"github.com/koard/DukeFarm-Admin-sub000/internal/domain"
	"github.com/koard/DukeFarm-Admin-sub000/internal/domain/models"
	"github.com/koard/DukeFarm-Admin-sub000/internal/forms"
)

// ListRecords fetches farm activity records. Supported filters: pondId,
// farmerId, recordType.
func (c *Client) ListRecords(ctx context.Context, q domain.ListQuery) (domain.Paginated[models.FarmRecord], error) {
	return Get[domain.Paginated[models.FarmRecord]](ctx, c, "/records"+listQueryString(q), nil)
}

func (c *Client) GetRecord(ctx context.Context, id string) (models.FarmRecord, error) {
	return Get[models.FarmRecord](ctx, c, "/records/"+id, nil)
}

func (c *Client) CreateRecord(ctx context.Context, req forms.CreateRecordRequest) (models.FarmRecord, error) {
	return Post[models.FarmRecord](ctx, c, "/records", req, nil)
}

func (c *Client) UpdateRecord(ctx context.Context, id string, req forms.UpdateRecordRequest) (models.FarmRecord, error) {
	return Put[models.FarmRecord](ctx, c, "/records/"+id, req, nil)
}

func (c *Client) DeleteRecord(ctx context.Context, id string) error {
	return c.Delete(ctx, "/records/"+id, nil)
}

// RecordFormState fetches the selectable options for the record form.
func (c *Client) RecordFormState(ctx context.Context) (models.RecordFormState, error) {
	return Get[models.RecordFormState](ctx, c, "/records/form-state", nil)
}
