package listing

import (
	"context"
	"sync"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/koard/DukeFarm-Admin-sub000/internal/client"
	"github.com/koard/DukeFarm-Admin-sub000/internal/domain"
)

type recordingNotifier struct {
	mu        sync.Mutex
	successes []string
	errors    []string
}

func (n *recordingNotifier) Success(msg string) {
	n.mu.Lock()
	defer n.mu.Unlock()
	n.successes = append(n.successes, msg)
}

func (n *recordingNotifier) Error(msg string) {
	n.mu.Lock()
	defer n.mu.Unlock()
	n.errors = append(n.errors, msg)
}

func pageOf(items []string, q domain.ListQuery, total int) domain.Paginated[string] {
	return domain.Paginated[string]{
		Items:      items,
		Pagination: domain.NewPagination(q.Page, q.Limit, total),
	}
}

func TestFilterChangeResetsPage(t *testing.T) {
	var queries []domain.ListQuery
	ctrl := NewController(func(ctx context.Context, q domain.ListQuery) (domain.Paginated[string], error) {
		queries = append(queries, q)
		return pageOf([]string{"a"}, q, 1), nil
	}, nil)

	ctx := context.Background()
	ctrl.SetPage(ctx, 4)
	require.Equal(t, 4, ctrl.Query().Page)

	ctrl.SetFilter(ctx, "farmType", "cage")
	assert.Equal(t, 1, ctrl.Query().Page)
	last := queries[len(queries)-1]
	assert.Equal(t, "cage", last.Filters["farmType"])
	assert.Equal(t, 1, last.Page)

	ctrl.SetPage(ctx, 3)
	ctrl.SetSearch(ctx, "สมชาย")
	assert.Equal(t, 1, ctrl.Query().Page)

	// Clearing the filter removes the key entirely.
	ctrl.SetFilter(ctx, "farmType", "")
	last = queries[len(queries)-1]
	_, present := last.Filters["farmType"]
	assert.False(t, present)
}

func TestStaleFetchDropped(t *testing.T) {
	release := make(chan struct{})
	done := make(chan struct{})
	var calls int
	var mu sync.Mutex

	ctrl := NewController(func(ctx context.Context, q domain.ListQuery) (domain.Paginated[string], error) {
		mu.Lock()
		calls++
		n := calls
		mu.Unlock()
		if n == 1 {
			<-release // resolves after the second fetch
			return pageOf([]string{"stale"}, q, 1), nil
		}
		return pageOf([]string{"fresh"}, q, 1), nil
	}, nil)

	ctx := context.Background()
	go func() {
		ctrl.Reload(ctx)
		close(done)
	}()

	// Wait until the first fetch is in flight, then issue a newer one.
	for {
		mu.Lock()
		started := calls >= 1
		mu.Unlock()
		if started {
			break
		}
	}
	ctrl.Reload(ctx)
	assert.Equal(t, []string{"fresh"}, ctrl.Page().Items)

	close(release)
	<-done
	assert.Equal(t, []string{"fresh"}, ctrl.Page().Items, "stale resolution must not overwrite fresher state")
}

func TestFetchFailureDegradesToEmpty(t *testing.T) {
	notify := &recordingNotifier{}
	ctrl := NewController(func(ctx context.Context, q domain.ListQuery) (domain.Paginated[string], error) {
		return domain.Paginated[string]{}, &client.Error{Message: "เกิดข้อผิดพลาดจากเซิร์ฟเวอร์", Status: 500}
	}, notify)

	ctrl.Reload(context.Background())

	page := ctrl.Page()
	assert.Empty(t, page.Items)
	assert.Error(t, ctrl.LastErr())
	require.Len(t, notify.errors, 1)
	assert.Equal(t, "เกิดข้อผิดพลาดจากเซิร์ฟเวอร์", notify.errors[0])
}

func TestLocalFilterRederivesWithoutRefetch(t *testing.T) {
	var fetches int
	ctrl := NewController(func(ctx context.Context, q domain.ListQuery) (domain.Paginated[string], error) {
		fetches++
		return pageOf([]string{"cage-1", "pond-1", "cage-2"}, q, 3), nil
	}, nil)

	ctx := context.Background()
	ctrl.Reload(ctx)
	require.Equal(t, 1, fetches)

	ctrl.SetLocalFilter(func(s string) bool { return s[0] == 'c' })
	assert.Equal(t, 1, fetches, "local filter must not refetch")
	assert.Equal(t, []string{"cage-1", "cage-2"}, ctrl.Page().Items)
	assert.Equal(t, 2, ctrl.Page().Pagination.TotalItems)
	assert.Equal(t, 1, ctrl.Query().Page)

	ctrl.SetLocalFilter(nil)
	assert.Equal(t, []string{"cage-1", "pond-1", "cage-2"}, ctrl.Page().Items)
}

func TestModalHooksBracketEveryOpen(t *testing.T) {
	var opens, closes int
	ctrl := NewController(func(ctx context.Context, q domain.ListQuery) (domain.Paginated[string], error) {
		return pageOf(nil, q, 0), nil
	}, nil).
		OnModalOpen(func() { opens++ }).
		OnModalClose(func() { closes++ })

	ctrl.OpenCreate()
	assert.IsType(t, ModalCreate[string]{}, ctrl.Modal())
	assert.Equal(t, 1, opens)

	// Switching modals while one is up must not re-run the open hook.
	ctrl.OpenEdit("farmer-1")
	assert.Equal(t, 1, opens)

	ctrl.CloseModal()
	assert.IsType(t, ModalClosed[string]{}, ctrl.Modal())
	assert.Equal(t, 1, closes)

	// Shutdown with a modal still open runs the close hook exactly once.
	ctrl.OpenDelete("farmer-2")
	ctrl.Shutdown()
	assert.Equal(t, 2, closes)

	// After shutdown, opens are ignored.
	ctrl.OpenCreate()
	assert.IsType(t, ModalClosed[string]{}, ctrl.Modal())
	assert.Equal(t, 2, opens)
}

func TestMutateAndReloadConvergesOnServerTruth(t *testing.T) {
	notify := &recordingNotifier{}
	items := []string{"สมชาย", "สมหญิง"}
	var fetches int
	ctrl := NewController(func(ctx context.Context, q domain.ListQuery) (domain.Paginated[string], error) {
		fetches++
		return pageOf(items, q, len(items)), nil
	}, notify)

	ctx := context.Background()
	ctrl.Reload(ctx)
	require.Equal(t, 1, fetches)

	ctrl.OpenDelete("สมชาย")
	err := ctrl.MutateAndReload(ctx, func(ctx context.Context) error {
		items = items[1:]
		return nil
	}, `ลบข้อมูล "สมชาย" สำเร็จ!`)
	require.NoError(t, err)

	assert.Equal(t, 2, fetches, "a successful mutation must refetch")
	assert.IsType(t, ModalClosed[string]{}, ctrl.Modal())
	assert.Equal(t, []string{"สมหญิง"}, ctrl.Page().Items)
	require.Len(t, notify.successes, 1)
	assert.Equal(t, `ลบข้อมูล "สมชาย" สำเร็จ!`, notify.successes[0])
}

func TestMutateAndReloadKeepsModalOnFailure(t *testing.T) {
	notify := &recordingNotifier{}
	var fetches int
	ctrl := NewController(func(ctx context.Context, q domain.ListQuery) (domain.Paginated[string], error) {
		fetches++
		return pageOf([]string{"a"}, q, 1), nil
	}, notify)

	ctx := context.Background()
	ctrl.OpenDelete("a")
	err := ctrl.MutateAndReload(ctx, func(ctx context.Context) error {
		return &client.Error{Message: "ไม่พบข้อมูล", Status: 404}
	}, "unused")

	require.Error(t, err)
	assert.IsType(t, ModalDelete[string]{}, ctrl.Modal())
	assert.Zero(t, fetches, "a failed mutation must not refetch")
	require.Len(t, notify.errors, 1)
	assert.Equal(t, "ไม่พบข้อมูล", notify.errors[0])
}
