package service

import (
	"context"
	"errors"
	"strings"
	"testing"

	"github.com/shutterstudio/studio-api/internal/core/domain"
	"github.com/shutterstudio/studio-api/internal/core/ports"
)

// ---------------------------------------------------------------------------
// Fixture
// ---------------------------------------------------------------------------

type bookingFixture struct {
	bookings      *stubBookingRepo
	users         *stubUserRepo
	notifications *stubNotificationRepo
	activity      *stubActivityRepo
	svc           *BookingService
}

func newBookingFixture() *bookingFixture {
	f := &bookingFixture{
		bookings:      newStubBookingRepo(),
		users:         newStubUserRepo(),
		notifications: newStubNotificationRepo(),
		activity:      &stubActivityRepo{},
	}
	f.users.seed("client_1", "Anna Petrova", domain.RoleClient)
	f.users.seed("photo_1", "Marco Reyes", domain.RolePhotographer)
	f.users.seed("admin_1", "Studio Admin", domain.RoleAdmin)

	dispatcher := NewNotificationDispatcher(f.notifications, f.users, nil, nil, discardLogger)
	recorder := NewActivityRecorder(f.activity, discardLogger)
	f.svc = NewBookingService(f.bookings, f.users, dispatcher, recorder, discardLogger)
	return f
}

func (f *bookingFixture) seedBooking(status domain.BookingStatus) *domain.Booking {
	b := &domain.Booking{
		ClientID:       "client_1",
		PhotographerID: "photo_1",
		Date:           "2026-09-12",
		StartTime:      "10:00",
		EndTime:        "12:00",
		Type:           "portrait",
		Location:       "Studio A",
		Status:         status,
	}
	_ = f.bookings.Create(context.Background(), b)
	return b
}

func actorClient() ports.Actor       { return ports.Actor{ID: "client_1", Role: domain.RoleClient} }
func actorPhotographer() ports.Actor { return ports.Actor{ID: "photo_1", Role: domain.RolePhotographer} }
func actorAdmin() ports.Actor        { return ports.Actor{ID: "admin_1", Role: domain.RoleAdmin} }

// ---------------------------------------------------------------------------
// UpdateStatus scenarios
// ---------------------------------------------------------------------------

func TestUpdateStatus_ClientCancelsPending_TwoNotifications(t *testing.T) {
	f := newBookingFixture()
	b := f.seedBooking(domain.StatusPending)

	updated, err := f.svc.UpdateStatus(context.Background(), ports.UpdateStatusInput{
		BookingID: b.ID,
		Status:    domain.StatusCancelled,
		Actor:     actorClient(),
	})
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if updated.Status != domain.StatusCancelled {
		t.Errorf("expected status cancelled, got %s", updated.Status)
	}

	if len(f.notifications.created) != 2 {
		t.Fatalf("client-initiated cancel must emit 2 notifications, got %d", len(f.notifications.created))
	}

	clientMsgs := f.notifications.forUser("client_1")
	if len(clientMsgs) != 1 || !strings.HasPrefix(clientMsgs[0].Message, "You cancelled your booking") {
		t.Errorf("unexpected client notification: %+v", clientMsgs)
	}
	photoMsgs := f.notifications.forUser("photo_1")
	if len(photoMsgs) != 1 || !strings.Contains(photoMsgs[0].Message, "Client Anna Petrova cancelled the booking") {
		t.Errorf("unexpected photographer notification: %+v", photoMsgs)
	}
}

func TestUpdateStatus_PhotographerConfirms_OneClientNotification(t *testing.T) {
	f := newBookingFixture()
	b := f.seedBooking(domain.StatusPending)

	updated, err := f.svc.UpdateStatus(context.Background(), ports.UpdateStatusInput{
		BookingID: b.ID,
		Status:    domain.StatusConfirmed,
		Actor:     actorPhotographer(),
	})
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if updated.Status != domain.StatusConfirmed {
		t.Errorf("expected status confirmed, got %s", updated.Status)
	}

	if len(f.notifications.created) != 1 {
		t.Fatalf("confirm must emit exactly 1 notification, got %d", len(f.notifications.created))
	}
	n := f.notifications.created[0]
	if n.UserID != "client_1" {
		t.Errorf("confirm notification must go to the client, got %s", n.UserID)
	}
	if !strings.Contains(n.Message, "photographer Marco Reyes") || !strings.Contains(n.Message, "2026-09-12 10:00") {
		t.Errorf("unexpected confirm message: %q", n.Message)
	}
}

func TestUpdateStatus_AdminCancel_OneClientNotification(t *testing.T) {
	f := newBookingFixture()
	b := f.seedBooking(domain.StatusConfirmed)

	_, err := f.svc.UpdateStatus(context.Background(), ports.UpdateStatusInput{
		BookingID: b.ID,
		Status:    domain.StatusCancelled,
		Actor:     actorAdmin(),
	})
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	if len(f.notifications.created) != 1 {
		t.Fatalf("admin cancel must emit exactly 1 notification, got %d", len(f.notifications.created))
	}
	n := f.notifications.created[0]
	if n.UserID != "client_1" || !strings.Contains(n.Message, "was cancelled") {
		t.Errorf("unexpected notification: %+v", n)
	}
}

func TestUpdateStatus_ClientCannotComplete(t *testing.T) {
	f := newBookingFixture()
	b := f.seedBooking(domain.StatusConfirmed)

	_, err := f.svc.UpdateStatus(context.Background(), ports.UpdateStatusInput{
		BookingID: b.ID,
		Status:    domain.StatusCompleted,
		Actor:     actorClient(),
	})
	if !errors.Is(err, domain.ErrRoleNotAllowed) {
		t.Fatalf("expected ErrRoleNotAllowed, got: %v", err)
	}
	if !strings.Contains(err.Error(), "role client cannot set status completed") {
		t.Errorf("unexpected error message: %q", err.Error())
	}

	// Booking unchanged, no store write, no notifications.
	stored := f.bookings.byID[b.ID]
	if stored.Status != domain.StatusConfirmed {
		t.Errorf("booking must be unchanged, got %s", stored.Status)
	}
	if f.bookings.updates != 0 {
		t.Errorf("store must not be written on rejection, got %d writes", f.bookings.updates)
	}
	if len(f.notifications.created) != 0 {
		t.Errorf("no notifications on rejection, got %d", len(f.notifications.created))
	}
}

func TestUpdateStatus_AdminCannotLeaveCompleted(t *testing.T) {
	f := newBookingFixture()
	b := f.seedBooking(domain.StatusCompleted)

	_, err := f.svc.UpdateStatus(context.Background(), ports.UpdateStatusInput{
		BookingID: b.ID,
		Status:    domain.StatusConfirmed,
		Actor:     actorAdmin(),
	})
	if !errors.Is(err, domain.ErrInvalidTransition) {
		t.Fatalf("expected ErrInvalidTransition, got: %v", err)
	}
	if !strings.Contains(err.Error(), "invalid transition from completed to confirmed") {
		t.Errorf("unexpected error message: %q", err.Error())
	}
}

func TestUpdateStatus_AdminReopenIsSilent(t *testing.T) {
	f := newBookingFixture()
	b := f.seedBooking(domain.StatusCancelled)

	updated, err := f.svc.UpdateStatus(context.Background(), ports.UpdateStatusInput{
		BookingID: b.ID,
		Status:    domain.StatusPending,
		Actor:     actorAdmin(),
	})
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if updated.Status != domain.StatusPending {
		t.Errorf("expected status pending, got %s", updated.Status)
	}
	if len(f.notifications.created) != 0 {
		t.Errorf("reopen must be silent, got %d notifications", len(f.notifications.created))
	}
}

func TestUpdateStatus_UnknownBooking(t *testing.T) {
	f := newBookingFixture()

	_, err := f.svc.UpdateStatus(context.Background(), ports.UpdateStatusInput{
		BookingID: "bkg_missing",
		Status:    domain.StatusConfirmed,
		Actor:     actorAdmin(),
	})
	if !errors.Is(err, domain.ErrBookingNotFound) {
		t.Fatalf("expected ErrBookingNotFound, got: %v", err)
	}
	if f.bookings.updates != 0 || len(f.notifications.created) != 0 {
		t.Error("unknown booking must cause no writes and no notifications")
	}
}

func TestUpdateStatus_UnrelatedActorForbidden(t *testing.T) {
	f := newBookingFixture()
	f.users.seed("client_2", "Other Client", domain.RoleClient)
	b := f.seedBooking(domain.StatusPending)

	_, err := f.svc.UpdateStatus(context.Background(), ports.UpdateStatusInput{
		BookingID: b.ID,
		Status:    domain.StatusCancelled,
		Actor:     ports.Actor{ID: "client_2", Role: domain.RoleClient},
	})
	if !errors.Is(err, domain.ErrForbidden) {
		t.Fatalf("expected ErrForbidden for unrelated actor, got: %v", err)
	}
	if f.bookings.updates != 0 {
		t.Error("store must not be written for a forbidden actor")
	}
}

func TestUpdateStatus_NoOpIsIdempotent(t *testing.T) {
	f := newBookingFixture()
	b := f.seedBooking(domain.StatusConfirmed)

	updated, err := f.svc.UpdateStatus(context.Background(), ports.UpdateStatusInput{
		BookingID: b.ID,
		Status:    domain.StatusConfirmed,
		Actor:     actorPhotographer(),
	})
	if err != nil {
		t.Fatalf("no-op must succeed, got: %v", err)
	}
	if updated.Status != domain.StatusConfirmed {
		t.Errorf("unexpected status: %s", updated.Status)
	}
	if f.bookings.updates != 0 {
		t.Errorf("no-op must not write the store, got %d writes", f.bookings.updates)
	}
	if len(f.notifications.created) != 0 {
		t.Errorf("no-op must emit zero notifications, got %d", len(f.notifications.created))
	}
}

func TestUpdateStatus_NotificationFailureIsNonFatal(t *testing.T) {
	f := newBookingFixture()
	b := f.seedBooking(domain.StatusPending)
	f.notifications.createErr = errors.New("notifications collection unavailable")

	updated, err := f.svc.UpdateStatus(context.Background(), ports.UpdateStatusInput{
		BookingID: b.ID,
		Status:    domain.StatusConfirmed,
		Actor:     actorPhotographer(),
	})
	if err != nil {
		t.Fatalf("notification failure must not fail the update, got: %v", err)
	}
	if updated.Status != domain.StatusConfirmed {
		t.Errorf("status change must survive notification failure, got %s", updated.Status)
	}
}

func TestUpdateStatus_ActivityLogFailureIsNonFatal(t *testing.T) {
	f := newBookingFixture()
	b := f.seedBooking(domain.StatusPending)
	f.activity.insertErr = errors.New("activity_logs collection unavailable")

	_, err := f.svc.UpdateStatus(context.Background(), ports.UpdateStatusInput{
		BookingID: b.ID,
		Status:    domain.StatusConfirmed,
		Actor:     actorPhotographer(),
	})
	if err != nil {
		t.Fatalf("audit failure must not fail the update, got: %v", err)
	}
}

func TestUpdateStatus_PersistsNotes(t *testing.T) {
	f := newBookingFixture()
	b := f.seedBooking(domain.StatusPending)

	updated, err := f.svc.UpdateStatus(context.Background(), ports.UpdateStatusInput{
		BookingID: b.ID,
		Status:    domain.StatusCancelled,
		Actor:     actorClient(),
		Notes:     "family emergency",
	})
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if updated.Notes != "family emergency" {
		t.Errorf("notes not persisted, got %q", updated.Notes)
	}
}

func TestUpdateStatus_StoreErrorSurfaces(t *testing.T) {
	f := newBookingFixture()
	b := f.seedBooking(domain.StatusPending)
	f.bookings.updateErr = errors.New("write concern failed")

	_, err := f.svc.UpdateStatus(context.Background(), ports.UpdateStatusInput{
		BookingID: b.ID,
		Status:    domain.StatusConfirmed,
		Actor:     actorPhotographer(),
	})
	if err == nil {
		t.Fatal("expected store error to surface")
	}
	if len(f.notifications.created) != 0 {
		t.Error("no notifications when the persist failed")
	}
}

// ---------------------------------------------------------------------------
// Create
// ---------------------------------------------------------------------------

func TestCreate_Pending(t *testing.T) {
	f := newBookingFixture()

	b, err := f.svc.Create(context.Background(), ports.CreateBookingInput{
		ClientID:       "client_1",
		PhotographerID: "photo_1",
		Date:           "2026-10-01",
		StartTime:      "09:00",
		EndTime:        "11:30",
		Type:           "wedding",
		Location:       "City Hall",
	})
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if b.Status != domain.StatusPending {
		t.Errorf("new booking must be pending, got %s", b.Status)
	}
	if b.ID == "" {
		t.Error("booking must get an id")
	}
	if len(f.notifications.created) != 0 {
		t.Errorf("creation must not notify, got %d", len(f.notifications.created))
	}
}

func TestCreate_RejectsBadSchedule(t *testing.T) {
	f := newBookingFixture()

	cases := []struct {
		name                       string
		date, start, end           string
	}{
		{"bad date", "01-10-2026", "09:00", "11:00"},
		{"bad start", "2026-10-01", "9am", "11:00"},
		{"end before start", "2026-10-01", "11:00", "09:00"},
		{"end equals start", "2026-10-01", "09:00", "09:00"},
	}
	for _, tc := range cases {
		_, err := f.svc.Create(context.Background(), ports.CreateBookingInput{
			ClientID:       "client_1",
			PhotographerID: "photo_1",
			Date:           tc.date,
			StartTime:      tc.start,
			EndTime:        tc.end,
		})
		if err == nil {
			t.Errorf("%s: expected error", tc.name)
		}
	}
	if len(f.bookings.byID) != 0 {
		t.Error("rejected creates must not be stored")
	}
}

func TestCreate_RejectsNonPhotographer(t *testing.T) {
	f := newBookingFixture()

	_, err := f.svc.Create(context.Background(), ports.CreateBookingInput{
		ClientID:       "client_1",
		PhotographerID: "client_1", // a client, not a photographer
		Date:           "2026-10-01",
		StartTime:      "09:00",
		EndTime:        "11:00",
	})
	if !errors.Is(err, domain.ErrUserNotFound) {
		t.Fatalf("expected ErrUserNotFound for non-photographer, got: %v", err)
	}
}

// ---------------------------------------------------------------------------
// Reads
// ---------------------------------------------------------------------------

func TestGetByID_RelationshipCheck(t *testing.T) {
	f := newBookingFixture()
	b := f.seedBooking(domain.StatusPending)

	for _, actor := range []ports.Actor{actorClient(), actorPhotographer(), actorAdmin()} {
		if _, err := f.svc.GetByID(context.Background(), b.ID, actor); err != nil {
			t.Errorf("%s must see the booking, got: %v", actor.Role, err)
		}
	}

	_, err := f.svc.GetByID(context.Background(), b.ID, ports.Actor{ID: "stranger", Role: domain.RoleClient})
	if !errors.Is(err, domain.ErrForbidden) {
		t.Errorf("stranger must be forbidden, got: %v", err)
	}
}

func TestList_ScopedByRole(t *testing.T) {
	f := newBookingFixture()
	f.seedBooking(domain.StatusPending)
	f.seedBooking(domain.StatusConfirmed)

	got, err := f.svc.List(context.Background(), ports.ListBookingsInput{Actor: actorClient()})
	if err != nil || len(got) != 2 {
		t.Fatalf("client list: got %d bookings, err %v", len(got), err)
	}

	got, err = f.svc.List(context.Background(), ports.ListBookingsInput{Actor: actorAdmin(), Status: "confirmed"})
	if err != nil || len(got) != 1 {
		t.Fatalf("admin filtered list: got %d bookings, err %v", len(got), err)
	}
}
