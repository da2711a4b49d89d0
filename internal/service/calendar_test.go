package service_test

import (
	"context"
	"time"

	. "github.com/onsi/ginkgo/v2"
	. "github.com/onsi/gomega"

	"github.com/mcandidier/workflow/internal/model"
	"github.com/mcandidier/workflow/internal/service"
	"github.com/mcandidier/workflow/internal/store"
)

var _ = Describe("CalendarService", func() {
	var (
		events *mockEventStore
		svc    service.CalendarService
	)

	BeforeEach(func() {
		events = &mockEventStore{}
		svc = service.NewCalendarService(events, time.UTC)
	})

	Describe("EventsOnYear", func() {
		It("queries the full calendar year", func() {
			var gotStart, gotEnd time.Time
			events.listTriggeredFn = func(_ context.Context, start, end time.Time) ([]model.Event, error) {
				gotStart, gotEnd = start, end
				return nil, nil
			}

			_, err := svc.EventsOnYear(context.Background(), 2024)
			Expect(err).NotTo(HaveOccurred())

			Expect(gotStart).To(Equal(time.Date(2024, time.January, 1, 0, 0, 0, 0, time.UTC)))
			Expect(gotEnd.Year()).To(Equal(2024))
			Expect(gotEnd.Before(time.Date(2025, time.January, 1, 0, 0, 0, 0, time.UTC))).To(BeTrue())
		})
	})

	Describe("Create", func() {
		It("stamps the requester as organizer and assigns an ID", func() {
			var created *model.Event
			events.createFn = func(_ context.Context, event *model.Event) error {
				created = event
				return nil
			}

			event, err := svc.Create(context.Background(), 7, service.CreateEventParams{
				Title:       "sprint demo",
				TriggeredAt: time.Date(2024, time.June, 1, 10, 0, 0, 0, time.UTC),
			})
			Expect(err).NotTo(HaveOccurred())

			Expect(created).NotTo(BeNil())
			Expect(event.OrganizerID).To(Equal(int64(7)))
			Expect(event.ID).NotTo(BeZero())
			Expect(event.Title).To(Equal("sprint demo"))
		})
	})

	Describe("Update", func() {
		It("merges only the provided fields", func() {
			existing := model.Event{
				ID:          1,
				OrganizerID: 7,
				Title:       "old title",
				Description: "old description",
				TriggeredAt: time.Date(2024, time.June, 1, 10, 0, 0, 0, time.UTC),
			}
			events.getByIDFn = func(_ context.Context, _ int64) (*model.Event, error) {
				e := existing
				return &e, nil
			}
			var updated *model.Event
			events.updateFn = func(_ context.Context, event *model.Event) error {
				updated = event
				return nil
			}

			newTitle := "new title"
			_, err := svc.Update(context.Background(), 1, service.UpdateEventParams{Title: &newTitle})
			Expect(err).NotTo(HaveOccurred())

			Expect(updated.Title).To(Equal("new title"))
			Expect(updated.Description).To(Equal("old description"))
			Expect(updated.TriggeredAt).To(Equal(existing.TriggeredAt))
		})

		It("returns ErrEventNotFound for a missing event", func() {
			_, err := svc.Update(context.Background(), 99, service.UpdateEventParams{})
			Expect(err).To(MatchError(service.ErrEventNotFound))
		})
	})

	Describe("Delete", func() {
		It("echoes the deleted event for its organizer", func() {
			events.getByOrganizerFn = func(_ context.Context, id, organizerID int64) (*model.Event, error) {
				return &model.Event{ID: id, OrganizerID: organizerID, Title: "standup"}, nil
			}
			deleted := false
			events.deleteByOrganizerFn = func(_ context.Context, id, organizerID int64) error {
				deleted = true
				Expect(id).To(Equal(int64(1)))
				Expect(organizerID).To(Equal(int64(7)))
				return nil
			}

			event, err := svc.Delete(context.Background(), 1, 7)
			Expect(err).NotTo(HaveOccurred())
			Expect(deleted).To(BeTrue())
			Expect(event.Title).To(Equal("standup"))
		})

		It("hides existing events from non-organizers", func() {
			events.getByOrganizerFn = func(_ context.Context, _, _ int64) (*model.Event, error) {
				return nil, store.ErrNotFound
			}
			events.deleteByOrganizerFn = func(_ context.Context, _, _ int64) error {
				Fail("delete must not run for a non-organizer")
				return nil
			}

			_, err := svc.Delete(context.Background(), 1, 99)
			Expect(err).To(MatchError(service.ErrEventNotFound))
		})
	})
})
