package services

import (
	"context"
	"errors"
	"testing"

	"eventsmanager/internal/domain"
	"eventsmanager/internal/repository/memory"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type inviteFixture struct {
	store    *memory.Store
	svc      domain.InviteService
	email    *fakeEmailService
	recorder *fakeRecorder
	eventIDs []int64
}

// newInviteFixture creates two in-person events and the given developers.
func newInviteFixture(t *testing.T, emails ...string) *inviteFixture {
	t.Helper()
	ctx := context.Background()
	store := memory.NewStore()

	events := NewEventService(store, &fakeGeocoder{coords: domain.Coordinates{Latitude: 1, Longitude: 1}}, testLogger)
	var ids []int64
	for range 2 {
		ev, err := events.CreateEvent(ctx, inPersonEvent("Bogotá"))
		require.NoError(t, err)
		ids = append(ids, ev.ID)
	}

	devs := NewDeveloperService(store, testLogger)
	for _, email := range emails {
		_, err := devs.CreateDeveloper(ctx, validDeveloper(email))
		require.NoError(t, err)
	}

	f := &inviteFixture{store: store, email: &fakeEmailService{}, recorder: &fakeRecorder{}, eventIDs: ids}
	f.svc = NewInviteService(store, f.email, f.recorder, testLogger)
	return f
}

func (f *inviteFixture) storedInvites(t *testing.T) []*domain.Invite {
	t.Helper()
	all, err := f.store.Begin().Invites().GetAll(context.Background())
	require.NoError(t, err)
	return all
}

func TestInviteService_CreateInvites(t *testing.T) {
	ctx := context.Background()
	f := newInviteFixture(t, "ada@example.com", "bob@example.com")

	out, err := f.svc.CreateInvites(ctx, domain.SendInvitesInput{
		EventID:         f.eventIDs[0],
		DeveloperEmails: []string{"bob@example.com", "ada@example.com"},
	})
	require.NoError(t, err)
	require.Len(t, out, 2)

	assert.Equal(t, &domain.InviteView{ID: 1, EventID: f.eventIDs[0], DeveloperEmail: "bob@example.com", Status: domain.InviteStatusPending}, out[0])
	assert.Equal(t, &domain.InviteView{ID: 2, EventID: f.eventIDs[0], DeveloperEmail: "ada@example.com", Status: domain.InviteStatusPending}, out[1])
	assert.Len(t, f.storedInvites(t), 2)

	assert.Equal(t, 2, f.recorder.created)
	require.Len(t, f.email.sent, 2)
	assert.Equal(t, "bob@example.com", f.email.sent[0].Email)
	assert.Equal(t, "Ada", f.email.sent[0].DeveloperName)
	assert.Equal(t, "GoLab", f.email.sent[0].EventName)
	assert.Equal(t, "Bogotá", f.email.sent[0].City)
}

func TestInviteService_CreateInvites_DuplicateIsConflict(t *testing.T) {
	ctx := context.Background()
	f := newInviteFixture(t, "ada@example.com")
	in := domain.SendInvitesInput{EventID: f.eventIDs[0], DeveloperEmails: []string{"ada@example.com"}}

	_, err := f.svc.CreateInvites(ctx, in)
	require.NoError(t, err)

	_, err = f.svc.CreateInvites(ctx, in)
	var ce *domain.ConflictError
	require.ErrorAs(t, err, &ce)
	assert.Equal(t, "The invite cannot be created because the developer with email ada@example.com has already been invited to the event with id 1", ce.Message)
	assert.Len(t, f.storedInvites(t), 1)
}

func TestInviteService_CreateInvites_DuplicateWithinBatch(t *testing.T) {
	f := newInviteFixture(t, "ada@example.com")

	_, err := f.svc.CreateInvites(context.Background(), domain.SendInvitesInput{
		EventID:         f.eventIDs[0],
		DeveloperEmails: []string{"ada@example.com", "ada@example.com"},
	})
	var ce *domain.ConflictError
	require.ErrorAs(t, err, &ce)
	assert.Equal(t, "The invite cannot be created because the developer with email ada@example.com has already been invited to the event with id 1", ce.Message)
	assert.Empty(t, f.storedInvites(t))
}

// keyedOnlyStore fails every FindWhere scan so tests can show an operation
// sticks to keyed lookups.
type keyedOnlyStore struct{ domain.Store }

func (s keyedOnlyStore) Begin() domain.UnitOfWork { return keyedOnlyUnitOfWork{s.Store.Begin()} }

type keyedOnlyUnitOfWork struct{ domain.UnitOfWork }

func (u keyedOnlyUnitOfWork) Events() domain.Repository[domain.Event, int64] {
	return keyedOnlyEvents{u.UnitOfWork.Events()}
}

func (u keyedOnlyUnitOfWork) Invites() domain.InviteRepository {
	return keyedOnlyInvites{u.UnitOfWork.Invites()}
}

var errScan = errors.New("unexpected table scan")

type keyedOnlyEvents struct {
	domain.Repository[domain.Event, int64]
}

func (keyedOnlyEvents) FindWhere(context.Context, domain.Predicate[domain.Event], ...domain.Include) ([]*domain.Event, error) {
	return nil, errScan
}

type keyedOnlyInvites struct{ domain.InviteRepository }

func (keyedOnlyInvites) FindWhere(context.Context, domain.Predicate[domain.Invite], ...domain.Include) ([]*domain.Invite, error) {
	return nil, errScan
}

func TestInviteService_CreateInvites_UsesKeyedLookups(t *testing.T) {
	ctx := context.Background()

	tests := []struct {
		name    string
		emails  []string
		wantErr bool
		wantMsg string
	}{
		{
			name:   "new invites",
			emails: []string{"ada@example.com", "bob@example.com"},
		},
		{
			name:    "duplicate within the batch",
			emails:  []string{"bob@example.com", "bob@example.com"},
			wantErr: true,
			wantMsg: "The invite cannot be created because the developer with email bob@example.com has already been invited to the event with id 1",
		},
		{
			name:    "already invited",
			emails:  []string{"carl@example.com"},
			wantErr: true,
			wantMsg: "The invite cannot be created because the developer with email carl@example.com has already been invited to the event with id 1",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			f := newInviteFixture(t, "ada@example.com", "bob@example.com", "carl@example.com")
			_, err := f.svc.CreateInvites(ctx, domain.SendInvitesInput{EventID: f.eventIDs[0], DeveloperEmails: []string{"carl@example.com"}})
			require.NoError(t, err)

			svc := NewInviteService(keyedOnlyStore{f.store}, nil, nil, testLogger)
			out, err := svc.CreateInvites(ctx, domain.SendInvitesInput{EventID: f.eventIDs[0], DeveloperEmails: tt.emails})
			if tt.wantErr {
				require.NotErrorIs(t, err, errScan)
				var ce *domain.ConflictError
				require.ErrorAs(t, err, &ce)
				assert.Equal(t, tt.wantMsg, ce.Message)
				assert.Len(t, f.storedInvites(t), 1)
				return
			}
			require.NoError(t, err)
			require.Len(t, out, len(tt.emails))
			assert.Len(t, f.storedInvites(t), 1+len(tt.emails))
		})
	}
}

func TestInviteService_CreateInvites_StoreErrorsAreWrapped(t *testing.T) {
	boom := errors.New("connection reset")
	svc := NewInviteService(failingStore{err: boom}, nil, nil, testLogger)

	_, err := svc.CreateInvites(context.Background(), domain.SendInvitesInput{EventID: 1, DeveloperEmails: []string{"ada@example.com"}})
	require.ErrorIs(t, err, boom)
	var nf *domain.NotFoundError
	assert.False(t, errors.As(err, &nf))
}

func TestInviteService_CreateInvites_Errors(t *testing.T) {
	ctx := context.Background()

	tests := []struct {
		name    string
		input   func(f *inviteFixture) domain.SendInvitesInput
		check   func(t *testing.T, err error)
		wantMsg string
	}{
		{
			name:  "missing event id",
			input: func(f *inviteFixture) domain.SendInvitesInput { return domain.SendInvitesInput{DeveloperEmails: []string{"ada@example.com"}} },
			check: func(t *testing.T, err error) {
				var ve *domain.ValidationError
				require.ErrorAs(t, err, &ve)
				assert.Equal(t, "eventId", ve.Fields[0].Field)
			},
			wantMsg: "The invite cannot be created because the information provided is invalid",
		},
		{
			name: "unknown event wins over unknown developer",
			input: func(f *inviteFixture) domain.SendInvitesInput {
				return domain.SendInvitesInput{EventID: 99, DeveloperEmails: []string{"ghost@example.com"}}
			},
			check: func(t *testing.T, err error) {
				var nf *domain.NotFoundError
				require.ErrorAs(t, err, &nf)
			},
			wantMsg: "The invite cannot be created because the event with id 99 does not exist",
		},
		{
			name: "unknown developer aborts the whole batch",
			input: func(f *inviteFixture) domain.SendInvitesInput {
				return domain.SendInvitesInput{EventID: f.eventIDs[0], DeveloperEmails: []string{"ada@example.com", "ghost@example.com"}}
			},
			check: func(t *testing.T, err error) {
				var nf *domain.NotFoundError
				require.ErrorAs(t, err, &nf)
			},
			wantMsg: "The invite cannot be created because the developer with email ghost@example.com does not exist",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			f := newInviteFixture(t, "ada@example.com")

			_, err := f.svc.CreateInvites(ctx, tt.input(f))
			require.Error(t, err)
			tt.check(t, err)
			assert.Equal(t, tt.wantMsg, err.Error())
			assert.Empty(t, f.storedInvites(t))
			assert.Empty(t, f.email.sent)
			assert.Zero(t, f.recorder.created)
		})
	}
}

func TestInviteService_CreateInvites_EmailFailureDoesNotFailBatch(t *testing.T) {
	f := newInviteFixture(t, "ada@example.com")
	f.email.err = errors.New("ses throttled")

	out, err := f.svc.CreateInvites(context.Background(), domain.SendInvitesInput{
		EventID:         f.eventIDs[0],
		DeveloperEmails: []string{"ada@example.com"},
	})
	require.NoError(t, err)
	assert.Len(t, out, 1)
	assert.Len(t, f.storedInvites(t), 1)
}

func TestInviteService_Queries(t *testing.T) {
	ctx := context.Background()
	f := newInviteFixture(t, "ada@example.com", "bob@example.com")
	ev1, ev2 := f.eventIDs[0], f.eventIDs[1]

	_, err := f.svc.CreateInvites(ctx, domain.SendInvitesInput{EventID: ev1, DeveloperEmails: []string{"ada@example.com", "bob@example.com"}})
	require.NoError(t, err)
	_, err = f.svc.CreateInvites(ctx, domain.SendInvitesInput{EventID: ev2, DeveloperEmails: []string{"ada@example.com"}})
	require.NoError(t, err)
	_, err = f.svc.UpdateInviteStatus(ctx, ev1, 2, domain.InviteStatusAccepted)
	require.NoError(t, err)

	byEvent, err := f.svc.GetInvitesByEventID(ctx, ev1)
	require.NoError(t, err)
	assert.Len(t, byEvent, 2)

	accepted, err := f.svc.GetInvitesByEventIDAndStatus(ctx, ev1, domain.InviteStatusAccepted)
	require.NoError(t, err)
	require.Len(t, accepted, 1)
	assert.Equal(t, "bob@example.com", accepted[0].DeveloperEmail)

	byDev, err := f.svc.GetInvitesByDeveloperEmail(ctx, "ada@example.com")
	require.NoError(t, err)
	require.Len(t, byDev, 2)
	assert.Equal(t, ev1, byDev[0].EventID)
	assert.Equal(t, ev2, byDev[1].EventID)

	pending, err := f.svc.GetInvitesByDeveloperEmailAndStatus(ctx, "bob@example.com", domain.InviteStatusPending)
	require.NoError(t, err)
	assert.NotNil(t, pending)
	assert.Empty(t, pending)

	none, err := f.svc.GetInvitesByEventID(ctx, 404)
	require.NoError(t, err)
	assert.NotNil(t, none)
	assert.Empty(t, none)
}

func TestInviteService_UpdateInviteStatus(t *testing.T) {
	ctx := context.Background()
	f := newInviteFixture(t, "ada@example.com")
	ev1, ev2 := f.eventIDs[0], f.eventIDs[1]

	created, err := f.svc.CreateInvites(ctx, domain.SendInvitesInput{EventID: ev2, DeveloperEmails: []string{"ada@example.com"}})
	require.NoError(t, err)
	inviteID := created[0].ID

	t.Run("wrong event is a conflict and leaves status unchanged", func(t *testing.T) {
		_, err := f.svc.UpdateInviteStatus(ctx, ev1, inviteID, domain.InviteStatusAccepted)
		var ce *domain.ConflictError
		require.ErrorAs(t, err, &ce)
		assert.Equal(t, "Invite does not belong to the event", ce.Message)

		stored, err := f.store.Begin().Invites().Get(ctx, inviteID)
		require.NoError(t, err)
		assert.Equal(t, domain.InviteStatusPending, stored.Status)
	})

	t.Run("unknown invite", func(t *testing.T) {
		_, err := f.svc.UpdateInviteStatus(ctx, ev2, 999, domain.InviteStatusAccepted)
		var nf *domain.NotFoundError
		require.ErrorAs(t, err, &nf)
		assert.Equal(t, "Invite not found", nf.Message)
	})

	t.Run("invalid status", func(t *testing.T) {
		_, err := f.svc.UpdateInviteStatus(ctx, ev2, inviteID, domain.InviteStatus(9))
		var ve *domain.ValidationError
		require.ErrorAs(t, err, &ve)
	})

	t.Run("any transition is allowed", func(t *testing.T) {
		for _, status := range []domain.InviteStatus{
			domain.InviteStatusAccepted,
			domain.InviteStatusRejected,
			domain.InviteStatusRejected,
			domain.InviteStatusPending,
		} {
			out, err := f.svc.UpdateInviteStatus(ctx, ev2, inviteID, status)
			require.NoError(t, err)
			assert.Equal(t, status, out.Status)

			byEvent, err := f.svc.GetInvitesByEventID(ctx, ev2)
			require.NoError(t, err)
			require.Len(t, byEvent, 1)
			assert.Equal(t, status, byEvent[0].Status)
		}
		assert.Len(t, f.recorder.changed, 4)
	})
}

func TestInviteService_RenderReflectsCurrentDeveloper(t *testing.T) {
	ctx := context.Background()
	f := newInviteFixture(t, "ada@example.com")

	_, err := f.svc.CreateInvites(ctx, domain.SendInvitesInput{EventID: f.eventIDs[0], DeveloperEmails: []string{"ada@example.com"}})
	require.NoError(t, err)

	found, err := f.store.Begin().Invites().FindWhere(ctx, nil, domain.IncludeDeveloper)
	require.NoError(t, err)
	require.Len(t, found, 1)
	require.NotNil(t, found[0].Developer)
	assert.Equal(t, "Ada", found[0].Developer.Name)
}
