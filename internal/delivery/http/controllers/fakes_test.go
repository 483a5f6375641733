package controllers

import (
	"context"
	"encoding/json"
	"io"
	"log/slog"
	"net/http/httptest"
	"testing"

	"eventsmanager/internal/delivery/http/helpers"
	"eventsmanager/internal/domain"

	"github.com/stretchr/testify/require"
)

// testLogger is a no-op logger for controller tests so we don't assert on log output.
var testLogger = slog.New(slog.NewTextHandler(io.Discard, &slog.HandlerOptions{Level: slog.LevelError}))

type fakeDeveloperService struct {
	createResult *domain.DeveloperView
	createErr    error
	getResult    *domain.DeveloperView
	getErr       error
	listResult   []*domain.DeveloperView
	listErr      error

	lastCreateInput domain.DeveloperInput
	lastGetEmail    string
}

func (f *fakeDeveloperService) CreateDeveloper(_ context.Context, in domain.DeveloperInput) (*domain.DeveloperView, error) {
	f.lastCreateInput = in
	if f.createErr != nil {
		return nil, f.createErr
	}
	return f.createResult, nil
}

func (f *fakeDeveloperService) GetDeveloperByEmail(_ context.Context, email string) (*domain.DeveloperView, error) {
	f.lastGetEmail = email
	if f.getErr != nil {
		return nil, f.getErr
	}
	return f.getResult, nil
}

func (f *fakeDeveloperService) GetDevelopers(context.Context) ([]*domain.DeveloperView, error) {
	if f.listErr != nil {
		return nil, f.listErr
	}
	return f.listResult, nil
}

type fakeEventService struct {
	createResult *domain.EventView
	createErr    error
	getResult    *domain.EventView
	getErr       error
	listResult   []*domain.EventView
	listErr      error

	lastCreateInput domain.EventInput
	lastGetID       int64
}

func (f *fakeEventService) CreateEvent(_ context.Context, in domain.EventInput) (*domain.EventView, error) {
	f.lastCreateInput = in
	if f.createErr != nil {
		return nil, f.createErr
	}
	return f.createResult, nil
}

func (f *fakeEventService) GetEventByID(_ context.Context, id int64) (*domain.EventView, error) {
	f.lastGetID = id
	if f.getErr != nil {
		return nil, f.getErr
	}
	return f.getResult, nil
}

func (f *fakeEventService) GetEvents(context.Context) ([]*domain.EventView, error) {
	if f.listErr != nil {
		return nil, f.listErr
	}
	return f.listResult, nil
}

// fakeInviteService records which query ran and with what arguments.
type fakeInviteService struct {
	createResult []*domain.InviteView
	createErr    error
	queryResult  []*domain.InviteView
	queryErr     error
	updateResult *domain.InviteView
	updateErr    error

	lastCall     string
	lastInput    domain.SendInvitesInput
	lastEventID  int64
	lastInviteID int64
	lastEmail    string
	lastStatus   domain.InviteStatus
}

func (f *fakeInviteService) CreateInvites(_ context.Context, in domain.SendInvitesInput) ([]*domain.InviteView, error) {
	f.lastCall = "CreateInvites"
	f.lastInput = in
	if f.createErr != nil {
		return nil, f.createErr
	}
	return f.createResult, nil
}

func (f *fakeInviteService) GetInvitesByEventID(_ context.Context, eventID int64) ([]*domain.InviteView, error) {
	f.lastCall = "GetInvitesByEventID"
	f.lastEventID = eventID
	return f.queryResult, f.queryErr
}

func (f *fakeInviteService) GetInvitesByEventIDAndStatus(_ context.Context, eventID int64, status domain.InviteStatus) ([]*domain.InviteView, error) {
	f.lastCall = "GetInvitesByEventIDAndStatus"
	f.lastEventID = eventID
	f.lastStatus = status
	return f.queryResult, f.queryErr
}

func (f *fakeInviteService) GetInvitesByDeveloperEmail(_ context.Context, email string) ([]*domain.InviteView, error) {
	f.lastCall = "GetInvitesByDeveloperEmail"
	f.lastEmail = email
	return f.queryResult, f.queryErr
}

func (f *fakeInviteService) GetInvitesByDeveloperEmailAndStatus(_ context.Context, email string, status domain.InviteStatus) ([]*domain.InviteView, error) {
	f.lastCall = "GetInvitesByDeveloperEmailAndStatus"
	f.lastEmail = email
	f.lastStatus = status
	return f.queryResult, f.queryErr
}

func (f *fakeInviteService) UpdateInviteStatus(_ context.Context, eventID, inviteID int64, status domain.InviteStatus) (*domain.InviteView, error) {
	f.lastCall = "UpdateInviteStatus"
	f.lastEventID = eventID
	f.lastInviteID = inviteID
	f.lastStatus = status
	if f.updateErr != nil {
		return nil, f.updateErr
	}
	return f.updateResult, nil
}

func decodeError(t *testing.T, rr *httptest.ResponseRecorder) helpers.ErrorResponse {
	t.Helper()
	var resp helpers.ErrorResponse
	require.NoError(t, json.NewDecoder(rr.Body).Decode(&resp), "error response must be valid JSON")
	return resp
}

func ptr[T any](v T) *T { return &v }
