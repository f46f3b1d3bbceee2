package usecase

import (
	"context"
	"errors"
	"fmt"
	"sync"

	"github.com/giovannicg/INMEDT/internal/entity"
	"github.com/giovannicg/INMEDT/internal/logging"
)

var (
	ErrUnsupported  = errors.New("operation not supported")
	ErrRowNotLoaded = errors.New("row is not on the current page")
)

// Modal is the create/edit dialog state.
type Modal[D any] struct {
	Open      bool  `json:"open"`
	EditingID int64 `json:"editingId,omitempty"`
	Draft     D     `json:"draft"`
}

// Screen drives one admin table: a paged listing, a modal draft, and
// delete with confirmation. Every mutation refetches the current page.
type Screen[T, D any] struct {
	mu        sync.Mutex
	name      string
	res       AdminResource[T, D]
	confirm   Confirmer
	idOf      func(T) int64
	toDraft   func(T) D
	canDelete func(T) error
	creatable bool
	pr        entity.PageRequest
	page      entity.Page[T]
	modal     Modal[D]
}

type ScreenOption[T, D any] func(*Screen[T, D])

// WithoutCreate hides the create action (users, orders).
func WithoutCreate[T, D any]() ScreenOption[T, D] {
	return func(s *Screen[T, D]) { s.creatable = false }
}

// WithDeleteGuard rejects a delete before any prompt or call.
func WithDeleteGuard[T, D any](fn func(T) error) ScreenOption[T, D] {
	return func(s *Screen[T, D]) { s.canDelete = fn }
}

func WithSort[T, D any](by, dir string) ScreenOption[T, D] {
	return func(s *Screen[T, D]) { s.pr.SortBy, s.pr.SortDir = by, dir }
}

func WithPageSize[T, D any](n int) ScreenOption[T, D] {
	return func(s *Screen[T, D]) { s.pr.Size = n }
}

func NewScreen[T, D any](name string, res AdminResource[T, D], confirm Confirmer,
	idOf func(T) int64, toDraft func(T) D, opts ...ScreenOption[T, D]) *Screen[T, D] {
	s := &Screen[T, D]{
		name:      name,
		res:       res,
		confirm:   confirm,
		idOf:      idOf,
		toDraft:   toDraft,
		creatable: true,
		pr:        entity.PageRequest{Size: 10},
	}
	for _, opt := range opts {
		opt(s)
	}
	return s
}

func (s *Screen[T, D]) Name() string { return s.name }

func (s *Screen[T, D]) Creatable() bool { return s.creatable }

// Load fetches the given page and makes it current.
func (s *Screen[T, D]) Load(ctx context.Context, page int) error {
	if page < 0 {
		page = 0
	}
	s.mu.Lock()
	pr := s.pr
	s.mu.Unlock()
	pr.Page = page

	p, err := s.res.List(ctx, pr)
	if err != nil {
		return fmt.Errorf("%s list: %w", s.name, err)
	}
	s.mu.Lock()
	s.pr.Page = page
	s.page = p
	s.mu.Unlock()
	return nil
}

// Refresh reloads the current page.
func (s *Screen[T, D]) Refresh(ctx context.Context) error {
	s.mu.Lock()
	page := s.pr.Page
	s.mu.Unlock()
	return s.Load(ctx, page)
}

func (s *Screen[T, D]) Page() entity.Page[T] {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.page
}

func (s *Screen[T, D]) Modal() Modal[D] {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.modal
}

func (s *Screen[T, D]) row(id int64) (T, bool) {
	for _, r := range s.page.Content {
		if s.idOf(r) == id {
			return r, true
		}
	}
	var zero T
	return zero, false
}

func (s *Screen[T, D]) OpenCreate(blank D) error {
	if !s.creatable {
		return ErrUnsupported
	}
	s.mu.Lock()
	s.modal = Modal[D]{Open: true, Draft: blank}
	s.mu.Unlock()
	return nil
}

func (s *Screen[T, D]) OpenEdit(id int64) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	r, ok := s.row(id)
	if !ok {
		return ErrRowNotLoaded
	}
	s.modal = Modal[D]{Open: true, EditingID: id, Draft: s.toDraft(r)}
	return nil
}

func (s *Screen[T, D]) SetDraft(d D) {
	s.mu.Lock()
	s.modal.Draft = d
	s.mu.Unlock()
}

func (s *Screen[T, D]) Close() {
	s.mu.Lock()
	s.modal = Modal[D]{}
	s.mu.Unlock()
}

// Submit sends the modal draft: create when no row is being edited. The page
// is reloaded whether or not the backend accepted it; the modal stays open on
// failure.
func (s *Screen[T, D]) Submit(ctx context.Context) Result {
	s.mu.Lock()
	m := s.modal
	s.mu.Unlock()
	if !m.Open {
		return rejected("Nothing to save")
	}
	if err := entity.Validate(m.Draft); err != nil {
		return invalid(err)
	}

	var err error
	if m.EditingID == 0 {
		if !s.creatable {
			return rejected("Creating " + s.name + " is not supported")
		}
		_, err = s.res.Create(ctx, m.Draft)
	} else {
		_, err = s.res.Update(ctx, m.EditingID, m.Draft)
	}
	if err != nil {
		// an edit may span several backend calls; show whatever landed
		s.refetch(ctx)
		return failed(err, "Could not save "+s.name)
	}
	s.Close()
	s.refetch(ctx)
	if m.EditingID == 0 {
		return ok("Created")
	}
	return ok("Updated")
}

// Delete asks for confirmation and removes the row.
func (s *Screen[T, D]) Delete(ctx context.Context, id int64) Result {
	s.mu.Lock()
	r, loaded := s.row(id)
	s.mu.Unlock()
	if loaded && s.canDelete != nil {
		if err := s.canDelete(r); err != nil {
			return rejected(err.Error())
		}
	}
	if !s.confirm.Confirm(ctx, fmt.Sprintf("Delete this %s? This cannot be undone.", s.name)) {
		return rejected("Cancelled")
	}
	if err := s.res.Delete(ctx, id); err != nil {
		return failed(err, "Could not delete "+s.name)
	}
	s.refetch(ctx)
	return ok("Deleted")
}

func (s *Screen[T, D]) refetch(ctx context.Context) {
	if err := s.Refresh(ctx); err != nil {
		logging.FromCtx(ctx).Warn("admin refetch failed", "screen", s.name, "err", err)
	}
}
