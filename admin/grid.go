package admin

import (
	"context"
	"sort"

	"github.com/neelammkw/elearning-client/api"
	"github.com/neelammkw/elearning-client/notify"
)

// Grid is one admin back-office table: sortable, paginated rows over a
// getAll query, with View/Edit navigation left to the caller and a
// confirmation-gated Delete.
type Grid[T any] struct {
	Fetch   func(ctx context.Context) ([]T, error)
	Delete  func(ctx context.Context, id string) error
	ID      func(row T) string
	Toaster notify.Toaster

	PageSize int

	rows          []T
	pendingDelete string
	hasPending    bool
}

// Load (re)fetches the rows. Also used as the explicit post-delete refetch:
// cache invalidation alone is not relied upon.
func (g *Grid[T]) Load(ctx context.Context) error {
	rows, err := g.Fetch(ctx)
	if err != nil {
		return err
	}
	g.rows = rows
	return nil
}

func (g *Grid[T]) Rows() []T {
	return g.rows
}

func (g *Grid[T]) SortBy(less func(a, b T) bool) {
	sort.SliceStable(g.rows, func(i, j int) bool {
		return less(g.rows[i], g.rows[j])
	})
}

// Page returns the zero-based page of rows.
func (g *Grid[T]) Page(n int) []T {
	size := g.PageSize
	if size <= 0 {
		size = 10
	}
	start := n * size
	if start < 0 || start >= len(g.rows) {
		return nil
	}
	end := start + size
	if end > len(g.rows) {
		end = len(g.rows)
	}
	return g.rows[start:end]
}

// RequestDelete opens the confirmation dialog for the row. No mutation is
// sent until ConfirmDelete.
func (g *Grid[T]) RequestDelete(id string) {
	g.pendingDelete = id
	g.hasPending = true
}

// PendingDelete reports the row awaiting confirmation, if any.
func (g *Grid[T]) PendingDelete() (string, bool) {
	return g.pendingDelete, g.hasPending
}

// CancelDelete closes the dialog leaving server state unmodified.
func (g *Grid[T]) CancelDelete() {
	g.pendingDelete = ""
	g.hasPending = false
}

// ConfirmDelete fires the delete mutation for the pending row. Failure
// surfaces the server error message verbatim; success always triggers an
// explicit refetch.
func (g *Grid[T]) ConfirmDelete(ctx context.Context) error {
	if !g.hasPending {
		return nil
	}
	id := g.pendingDelete
	g.CancelDelete()

	if err := g.Delete(ctx, id); err != nil {
		g.Toaster.Error(api.ErrorMessage(err, "Delete failed"))
		return err
	}

	g.Toaster.Success("Deleted successfully")
	return g.Load(ctx)
}
