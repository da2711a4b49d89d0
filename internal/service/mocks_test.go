package service_test

import (
	"context"
	"time"

	"github.com/mcandidier/workflow/internal/model"
	"github.com/mcandidier/workflow/internal/store"
)

type mockReportStore struct {
	getByIDFn func(ctx context.Context, id int64) (*model.Report, error)
	listFn    func(ctx context.Context, userID int64, start, end time.Time) ([]model.Report, error)
}

func (m *mockReportStore) GetByID(ctx context.Context, id int64) (*model.Report, error) {
	if m.getByIDFn != nil {
		return m.getByIDFn(ctx, id)
	}
	return nil, store.ErrNotFound
}

func (m *mockReportStore) Create(ctx context.Context, report *model.Report) error {
	return nil
}

func (m *mockReportStore) ListByOwnerInRange(ctx context.Context, userID int64, start, end time.Time) ([]model.Report, error) {
	if m.listFn != nil {
		return m.listFn(ctx, userID, start, end)
	}
	return nil, nil
}

type mockEventStore struct {
	getByIDFn           func(ctx context.Context, id int64) (*model.Event, error)
	getByOrganizerFn    func(ctx context.Context, id, organizerID int64) (*model.Event, error)
	createFn            func(ctx context.Context, event *model.Event) error
	updateFn            func(ctx context.Context, event *model.Event) error
	deleteByOrganizerFn func(ctx context.Context, id, organizerID int64) error
	listCreatedFn       func(ctx context.Context, start, end time.Time) ([]model.Event, error)
	listTriggeredFn     func(ctx context.Context, start, end time.Time) ([]model.Event, error)
}

func (m *mockEventStore) GetByID(ctx context.Context, id int64) (*model.Event, error) {
	if m.getByIDFn != nil {
		return m.getByIDFn(ctx, id)
	}
	return nil, store.ErrNotFound
}

func (m *mockEventStore) GetByIDAndOrganizer(ctx context.Context, id, organizerID int64) (*model.Event, error) {
	if m.getByOrganizerFn != nil {
		return m.getByOrganizerFn(ctx, id, organizerID)
	}
	return nil, store.ErrNotFound
}

func (m *mockEventStore) Create(ctx context.Context, event *model.Event) error {
	if m.createFn != nil {
		return m.createFn(ctx, event)
	}
	return nil
}

func (m *mockEventStore) Update(ctx context.Context, event *model.Event) error {
	if m.updateFn != nil {
		return m.updateFn(ctx, event)
	}
	return nil
}

func (m *mockEventStore) DeleteByOrganizer(ctx context.Context, id, organizerID int64) error {
	if m.deleteByOrganizerFn != nil {
		return m.deleteByOrganizerFn(ctx, id, organizerID)
	}
	return nil
}

func (m *mockEventStore) ListCreatedInRange(ctx context.Context, start, end time.Time) ([]model.Event, error) {
	if m.listCreatedFn != nil {
		return m.listCreatedFn(ctx, start, end)
	}
	return nil, nil
}

func (m *mockEventStore) ListTriggeredBetween(ctx context.Context, start, end time.Time) ([]model.Event, error) {
	if m.listTriggeredFn != nil {
		return m.listTriggeredFn(ctx, start, end)
	}
	return nil, nil
}

type mockBlockerStore struct {
	listPendingByOwnerFn func(ctx context.Context, userID int64) ([]model.Blocker, error)
}

func (m *mockBlockerStore) ListPendingByOwner(ctx context.Context, userID int64) ([]model.Blocker, error) {
	if m.listPendingByOwnerFn != nil {
		return m.listPendingByOwnerFn(ctx, userID)
	}
	return nil, nil
}
