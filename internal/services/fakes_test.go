package services

import (
	"context"
	"io"
	"log/slog"
	"sync"

	"eventsmanager/internal/domain"
)

// testLogger discards output so tests don't assert on logs.
var testLogger = slog.New(slog.NewTextHandler(io.Discard, &slog.HandlerOptions{Level: slog.LevelError}))

// fakeGeocoder returns fixed coordinates or err and records the cities asked for.
type fakeGeocoder struct {
	coords domain.Coordinates
	err    error
	calls  []string
}

func (f *fakeGeocoder) Locate(ctx context.Context, city string) (domain.Coordinates, error) {
	f.calls = append(f.calls, city)
	if f.err != nil {
		return domain.Coordinates{}, f.err
	}
	return f.coords, nil
}

// fakeEmailService records invitation emails; err, if set, is returned on send.
type fakeEmailService struct {
	mu   sync.Mutex
	sent []*domain.EventInvitationEmailData
	err  error
}

func (f *fakeEmailService) SendEventInvitation(ctx context.Context, data *domain.EventInvitationEmailData) error {
	f.mu.Lock()
	defer f.mu.Unlock()
	if f.err != nil {
		return f.err
	}
	f.sent = append(f.sent, data)
	return nil
}

type fakeRecorder struct {
	created int
	changed []domain.InviteStatus
}

func (f *fakeRecorder) InvitesCreated(n int) { f.created += n }

func (f *fakeRecorder) InviteStatusChanged(status domain.InviteStatus) {
	f.changed = append(f.changed, status)
}

// fakeMailer records the last message sent.
type fakeMailer struct {
	to, subject, html, text string
	err                     error
}

func (f *fakeMailer) Send(ctx context.Context, to, subject, html, text string) error {
	if f.err != nil {
		return f.err
	}
	f.to, f.subject, f.html, f.text = to, subject, html, text
	return nil
}

type fakeRenderer struct {
	data *domain.EventInvitationEmailData
	err  error
}

func (f *fakeRenderer) RenderEventInvitation(data *domain.EventInvitationEmailData) (*domain.RenderedEmail, error) {
	f.data = data
	if f.err != nil {
		return nil, f.err
	}
	return &domain.RenderedEmail{Subject: "subject", HTML: "<p>html</p>", Text: "text"}, nil
}

// failingStore hands out units of work whose reads fail with err.
type failingStore struct{ err error }

func (s failingStore) Begin() domain.UnitOfWork { return failingUnitOfWork(s) }

type failingUnitOfWork struct{ err error }

func (u failingUnitOfWork) Developers() domain.Repository[domain.Developer, string] {
	return failingRepo[domain.Developer, string]{u.err}
}
func (u failingUnitOfWork) Events() domain.Repository[domain.Event, int64] {
	return failingRepo[domain.Event, int64]{u.err}
}
func (u failingUnitOfWork) Invites() domain.InviteRepository {
	return failingInviteRepo{failingRepo[domain.Invite, int64]{u.err}}
}
func (u failingUnitOfWork) Commit(ctx context.Context) (bool, error) { return false, u.err }

type failingRepo[T any, K comparable] struct{ err error }

func (r failingRepo[T, K]) Get(ctx context.Context, key K) (*T, error) { return nil, r.err }
func (r failingRepo[T, K]) FindWhere(ctx context.Context, pred domain.Predicate[T], includes ...domain.Include) ([]*T, error) {
	return nil, r.err
}
func (r failingRepo[T, K]) GetAll(ctx context.Context) ([]*T, error)    { return nil, r.err }
func (r failingRepo[T, K]) Add(ctx context.Context, record *T) error    { return nil }
func (r failingRepo[T, K]) Update(ctx context.Context, record *T) error { return nil }

type failingInviteRepo struct {
	failingRepo[domain.Invite, int64]
}

func (r failingInviteRepo) FindByEventAndDeveloper(ctx context.Context, eventID int64, email string) (*domain.Invite, error) {
	return nil, r.err
}
