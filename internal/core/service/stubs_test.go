package service

import (
	"context"
	"sort"
	"strconv"
	"time"

	"github.com/rs/zerolog"

	"github.com/shutterstudio/studio-api/internal/core/domain"
	"github.com/shutterstudio/studio-api/internal/core/ports"
)

// ---------------------------------------------------------------------------
// In-memory stub repositories shared by the service tests
// ---------------------------------------------------------------------------

var discardLogger = zerolog.Nop()

type stubBookingRepo struct {
	byID      map[string]*domain.Booking
	nextID    int
	getErr    error // if set, GetByID returns this error
	updateErr error // if set, UpdateStatus returns this error
	createErr error // if set, Create returns this error
	updates   int   // number of UpdateStatus calls that reached the store
}

func newStubBookingRepo() *stubBookingRepo {
	return &stubBookingRepo{byID: make(map[string]*domain.Booking)}
}

func (r *stubBookingRepo) Create(_ context.Context, b *domain.Booking) error {
	if r.createErr != nil {
		return r.createErr
	}
	r.nextID++
	b.ID = "bkg_" + strconv.Itoa(r.nextID)
	clone := *b
	r.byID[b.ID] = &clone
	return nil
}

func (r *stubBookingRepo) GetByID(_ context.Context, id string) (*domain.Booking, error) {
	if r.getErr != nil {
		return nil, r.getErr
	}
	b, ok := r.byID[id]
	if !ok {
		return nil, domain.ErrBookingNotFound
	}
	clone := *b
	return &clone, nil
}

func (r *stubBookingRepo) UpdateStatus(_ context.Context, id string, update ports.BookingUpdate) (*domain.Booking, error) {
	if r.updateErr != nil {
		return nil, r.updateErr
	}
	b, ok := r.byID[id]
	if !ok {
		return nil, domain.ErrBookingNotFound
	}
	r.updates++
	b.Status = update.Status
	if update.Notes != "" {
		b.Notes = update.Notes
	}
	b.UpdatedAt = time.Now().UTC()
	clone := *b
	return &clone, nil
}

func (r *stubBookingRepo) list(match func(*domain.Booking) bool) []*domain.Booking {
	var out []*domain.Booking
	for _, b := range r.byID {
		if match(b) {
			clone := *b
			out = append(out, &clone)
		}
	}
	sort.Slice(out, func(i, j int) bool { return out[i].ID < out[j].ID })
	return out
}

func (r *stubBookingRepo) ListByClient(_ context.Context, clientID string) ([]*domain.Booking, error) {
	return r.list(func(b *domain.Booking) bool { return b.ClientID == clientID }), nil
}

func (r *stubBookingRepo) ListByPhotographer(_ context.Context, photographerID string) ([]*domain.Booking, error) {
	return r.list(func(b *domain.Booking) bool { return b.PhotographerID == photographerID }), nil
}

func (r *stubBookingRepo) ListByStatus(_ context.Context, status domain.BookingStatus) ([]*domain.Booking, error) {
	return r.list(func(b *domain.Booking) bool { return b.Status == status }), nil
}

func (r *stubBookingRepo) ListAll(_ context.Context) ([]*domain.Booking, error) {
	return r.list(func(*domain.Booking) bool { return true }), nil
}

func (r *stubBookingRepo) CountByStatus(_ context.Context) (map[domain.BookingStatus]int64, error) {
	out := make(map[domain.BookingStatus]int64)
	for _, b := range r.byID {
		out[b.Status]++
	}
	return out, nil
}

type stubUserRepo struct {
	byID    map[string]*domain.User
	findErr error
}

func newStubUserRepo() *stubUserRepo {
	return &stubUserRepo{byID: make(map[string]*domain.User)}
}

func (r *stubUserRepo) seed(id, name string, role domain.Role) *domain.User {
	u := &domain.User{ID: id, Name: name, Email: id + "@example.com", Role: role}
	r.byID[id] = u
	return u
}

func (r *stubUserRepo) Create(_ context.Context, u *domain.User) (*domain.User, error) {
	for _, existing := range r.byID {
		if existing.Email == u.Email {
			return nil, domain.ErrUserExists
		}
	}
	u.ID = "usr_" + strconv.Itoa(len(r.byID)+1)
	clone := *u
	r.byID[u.ID] = &clone
	return &clone, nil
}

func (r *stubUserRepo) FindByID(_ context.Context, id string) (*domain.User, error) {
	if r.findErr != nil {
		return nil, r.findErr
	}
	u, ok := r.byID[id]
	if !ok {
		return nil, domain.ErrUserNotFound
	}
	clone := *u
	return &clone, nil
}

func (r *stubUserRepo) FindByEmail(_ context.Context, email string) (*domain.User, error) {
	for _, u := range r.byID {
		if u.Email == email {
			clone := *u
			return &clone, nil
		}
	}
	return nil, domain.ErrUserNotFound
}

func (r *stubUserRepo) UpdateProfile(_ context.Context, id string, name string, profile domain.Profile) (*domain.User, error) {
	u, ok := r.byID[id]
	if !ok {
		return nil, domain.ErrUserNotFound
	}
	u.Name = name
	u.Profile = profile
	u.UpdatedAt = time.Now().UTC()
	clone := *u
	return &clone, nil
}

func (r *stubUserRepo) ListByRole(_ context.Context, role domain.Role) ([]*domain.User, error) {
	var out []*domain.User
	for _, u := range r.byID {
		if u.Role == role {
			clone := *u
			out = append(out, &clone)
		}
	}
	return out, nil
}

func (r *stubUserRepo) CountByRole(_ context.Context) (map[domain.Role]int64, error) {
	out := make(map[domain.Role]int64)
	for _, u := range r.byID {
		out[u.Role]++
	}
	return out, nil
}

type stubNotificationRepo struct {
	byID      map[string]*domain.Notification
	created   []domain.Notification
	createErr error // if set, Create returns this error
}

func newStubNotificationRepo() *stubNotificationRepo {
	return &stubNotificationRepo{byID: make(map[string]*domain.Notification)}
}

func (r *stubNotificationRepo) Create(_ context.Context, n *domain.Notification) error {
	if r.createErr != nil {
		return r.createErr
	}
	n.ID = "ntf_" + strconv.Itoa(len(r.created)+1)
	clone := *n
	r.byID[n.ID] = &clone
	r.created = append(r.created, clone)
	return nil
}

func (r *stubNotificationRepo) GetByID(_ context.Context, id string) (*domain.Notification, error) {
	n, ok := r.byID[id]
	if !ok {
		return nil, domain.ErrNotificationNotFound
	}
	clone := *n
	return &clone, nil
}

func (r *stubNotificationRepo) ListByUser(_ context.Context, userID string, page, limit int) ([]*domain.Notification, int64, error) {
	var out []*domain.Notification
	for _, n := range r.byID {
		if n.UserID == userID {
			clone := *n
			out = append(out, &clone)
		}
	}
	return out, int64(len(out)), nil
}

func (r *stubNotificationRepo) MarkRead(_ context.Context, id string) error {
	n, ok := r.byID[id]
	if !ok {
		return domain.ErrNotificationNotFound
	}
	n.IsRead = true
	return nil
}

func (r *stubNotificationRepo) Delete(_ context.Context, id string) error {
	if _, ok := r.byID[id]; !ok {
		return domain.ErrNotificationNotFound
	}
	delete(r.byID, id)
	return nil
}

func (r *stubNotificationRepo) CountUnread(_ context.Context, userID string) (int64, error) {
	var count int64
	for _, n := range r.byID {
		if n.UserID == userID && !n.IsRead {
			count++
		}
	}
	return count, nil
}

// forUser filters persisted notifications by recipient.
func (r *stubNotificationRepo) forUser(userID string) []domain.Notification {
	var out []domain.Notification
	for _, n := range r.created {
		if n.UserID == userID {
			out = append(out, n)
		}
	}
	return out
}

type stubActivityRepo struct {
	entries   []domain.ActivityLog
	insertErr error
}

func (r *stubActivityRepo) Insert(_ context.Context, entry *domain.ActivityLog) error {
	if r.insertErr != nil {
		return r.insertErr
	}
	r.entries = append(r.entries, *entry)
	return nil
}

func (r *stubActivityRepo) List(_ context.Context, page, limit int) ([]*domain.ActivityLog, int64, error) {
	out := make([]*domain.ActivityLog, 0, len(r.entries))
	for i := range r.entries {
		clone := r.entries[i]
		out = append(out, &clone)
	}
	return out, int64(len(out)), nil
}

type stubAlbumRepo struct {
	byID      map[string]*domain.Album
	nextID    int
	createErr error
}

func newStubAlbumRepo() *stubAlbumRepo {
	return &stubAlbumRepo{byID: make(map[string]*domain.Album)}
}

func (r *stubAlbumRepo) Create(_ context.Context, a *domain.Album) error {
	if r.createErr != nil {
		return r.createErr
	}
	r.nextID++
	a.ID = "alb_" + strconv.Itoa(r.nextID)
	clone := *a
	r.byID[a.ID] = &clone
	return nil
}

func (r *stubAlbumRepo) GetByID(_ context.Context, id string) (*domain.Album, error) {
	a, ok := r.byID[id]
	if !ok {
		return nil, domain.ErrAlbumNotFound
	}
	clone := *a
	return &clone, nil
}

func (r *stubAlbumRepo) UpdateStatus(_ context.Context, id string, status domain.AlbumStatus) (*domain.Album, error) {
	a, ok := r.byID[id]
	if !ok {
		return nil, domain.ErrAlbumNotFound
	}
	a.Status = status
	a.UpdatedAt = time.Now().UTC()
	clone := *a
	return &clone, nil
}

func (r *stubAlbumRepo) ListByClient(_ context.Context, clientID string) ([]*domain.Album, error) {
	var out []*domain.Album
	for _, a := range r.byID {
		if a.ClientID == clientID {
			clone := *a
			out = append(out, &clone)
		}
	}
	return out, nil
}

func (r *stubAlbumRepo) ListByPhotographer(_ context.Context, photographerID string) ([]*domain.Album, error) {
	var out []*domain.Album
	for _, a := range r.byID {
		if photographerID == "" || a.PhotographerID == photographerID {
			clone := *a
			out = append(out, &clone)
		}
	}
	return out, nil
}

func (r *stubAlbumRepo) Count(_ context.Context) (int64, error) {
	return int64(len(r.byID)), nil
}

type stubOrderRepo struct {
	byID   map[string]*domain.Order
	nextID int
}

func newStubOrderRepo() *stubOrderRepo {
	return &stubOrderRepo{byID: make(map[string]*domain.Order)}
}

func (r *stubOrderRepo) Create(_ context.Context, o *domain.Order) error {
	r.nextID++
	o.ID = "ord_" + strconv.Itoa(r.nextID)
	clone := *o
	r.byID[o.ID] = &clone
	return nil
}

func (r *stubOrderRepo) GetByID(_ context.Context, id string) (*domain.Order, error) {
	o, ok := r.byID[id]
	if !ok {
		return nil, domain.ErrOrderNotFound
	}
	clone := *o
	return &clone, nil
}

func (r *stubOrderRepo) UpdateStatus(_ context.Context, id string, status domain.OrderStatus) (*domain.Order, error) {
	o, ok := r.byID[id]
	if !ok {
		return nil, domain.ErrOrderNotFound
	}
	o.Status = status
	o.UpdatedAt = time.Now().UTC()
	clone := *o
	return &clone, nil
}

func (r *stubOrderRepo) ListByClient(_ context.Context, clientID string) ([]*domain.Order, error) {
	var out []*domain.Order
	for _, o := range r.byID {
		if o.ClientID == clientID {
			clone := *o
			out = append(out, &clone)
		}
	}
	return out, nil
}

func (r *stubOrderRepo) ListAll(_ context.Context) ([]*domain.Order, error) {
	var out []*domain.Order
	for _, o := range r.byID {
		clone := *o
		out = append(out, &clone)
	}
	return out, nil
}

func (r *stubOrderRepo) CountByStatus(_ context.Context) (map[domain.OrderStatus]int64, error) {
	out := make(map[domain.OrderStatus]int64)
	for _, o := range r.byID {
		out[o.Status]++
	}
	return out, nil
}

type stubReviewRepo struct {
	byBooking map[string]*domain.Review
	nextID    int
}

func newStubReviewRepo() *stubReviewRepo {
	return &stubReviewRepo{byBooking: make(map[string]*domain.Review)}
}

func (r *stubReviewRepo) Create(_ context.Context, rev *domain.Review) error {
	r.nextID++
	rev.ID = "rev_" + strconv.Itoa(r.nextID)
	clone := *rev
	r.byBooking[rev.BookingID] = &clone
	return nil
}

func (r *stubReviewRepo) FindByBooking(_ context.Context, bookingID string) (*domain.Review, error) {
	rev, ok := r.byBooking[bookingID]
	if !ok {
		return nil, domain.ErrReviewNotFound
	}
	clone := *rev
	return &clone, nil
}

func (r *stubReviewRepo) ListByPhotographer(_ context.Context, photographerID string) ([]*domain.Review, error) {
	var out []*domain.Review
	for _, rev := range r.byBooking {
		if rev.PhotographerID == photographerID {
			clone := *rev
			out = append(out, &clone)
		}
	}
	return out, nil
}

func (r *stubReviewRepo) Count(_ context.Context) (int64, error) {
	return int64(len(r.byBooking)), nil
}

type stubUnreadCache struct {
	values map[string]int64
	getErr error
	setErr error
	dels   []string
}

func newStubUnreadCache() *stubUnreadCache {
	return &stubUnreadCache{values: make(map[string]int64)}
}

func (c *stubUnreadCache) Get(_ context.Context, userID string) (int64, bool, error) {
	if c.getErr != nil {
		return 0, false, c.getErr
	}
	v, ok := c.values[userID]
	return v, ok, nil
}

func (c *stubUnreadCache) Set(_ context.Context, userID string, count int64) error {
	if c.setErr != nil {
		return c.setErr
	}
	c.values[userID] = count
	return nil
}

func (c *stubUnreadCache) Invalidate(_ context.Context, userID string) error {
	delete(c.values, userID)
	c.dels = append(c.dels, userID)
	return nil
}
