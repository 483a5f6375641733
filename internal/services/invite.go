package services

import (
	"context"
	"errors"
	"fmt"
	"log/slog"

	"eventsmanager/internal/domain"
)

type inviteService struct {
	store        domain.Store
	emailService domain.EmailService
	recorder     domain.InviteRecorder
	logger       *slog.Logger
}

// NewInviteService creates an InviteService. emailService and recorder may be nil.
func NewInviteService(store domain.Store, emailService domain.EmailService, recorder domain.InviteRecorder, logger *slog.Logger) domain.InviteService {
	if logger == nil {
		logger = slog.Default()
	}
	return &inviteService{
		store:        store,
		emailService: emailService,
		recorder:     recorder,
		logger:       logger,
	}
}

// createInvite stages one pending invite on uow. It does not commit.
func (s *inviteService) createInvite(ctx context.Context, uow domain.UnitOfWork, eventID int64, email string) (*domain.Invite, error) {
	event, err := uow.Events().Get(ctx, eventID)
	if err != nil {
		if errors.Is(err, domain.ErrNotFound) {
			return nil, domain.NotFoundf("The invite cannot be created because the event with id %d does not exist", eventID)
		}
		return nil, fmt.Errorf("get event: %w", err)
	}

	developer, err := uow.Developers().Get(ctx, email)
	if err != nil {
		if errors.Is(err, domain.ErrNotFound) {
			return nil, domain.NotFoundf("The invite cannot be created because the developer with email %s does not exist", email)
		}
		return nil, fmt.Errorf("get developer: %w", err)
	}

	_, err = uow.Invites().FindByEventAndDeveloper(ctx, eventID, email)
	switch {
	case err == nil:
		return nil, domain.Conflictf("The invite cannot be created because the developer with email %s has already been invited to the event with id %d", email, eventID)
	case !errors.Is(err, domain.ErrNotFound):
		return nil, fmt.Errorf("find invite: %w", err)
	}

	inv := domain.NewInvite(event, developer)
	if err := uow.Invites().Add(ctx, inv); err != nil {
		return nil, fmt.Errorf("stage invite: %w", err)
	}
	return inv, nil
}

// CreateInvites invites every developer in order and commits once. The first
// failure aborts the whole batch.
func (s *inviteService) CreateInvites(ctx context.Context, in domain.SendInvitesInput) ([]*domain.InviteView, error) {
	if fields := in.Validate(); len(fields) > 0 {
		return nil, domain.NewValidationError("The invite cannot be created because the information provided is invalid", fields)
	}

	uow := s.store.Begin()
	invites := make([]*domain.Invite, 0, len(in.DeveloperEmails))
	for _, email := range in.DeveloperEmails {
		inv, err := s.createInvite(ctx, uow, in.EventID, email)
		if err != nil {
			return nil, err
		}
		invites = append(invites, inv)
	}

	if _, err := uow.Commit(ctx); err != nil {
		if errors.Is(err, domain.ErrDuplicateKey) {
			return nil, domain.Conflictf("The invite cannot be created because a developer has already been invited to the event with id %d", in.EventID)
		}
		return nil, fmt.Errorf("save invites: %w", err)
	}

	if len(invites) > 0 {
		s.logger.InfoContext(ctx, "invites created", "event_id", in.EventID, "count", len(invites))
		if s.recorder != nil {
			s.recorder.InvitesCreated(len(invites))
		}
	}
	s.notify(ctx, invites)
	return domain.NewInviteViews(invites), nil
}

// notify emails each invited developer. Failures are logged and do not
// affect the committed invites.
func (s *inviteService) notify(ctx context.Context, invites []*domain.Invite) {
	if s.emailService == nil {
		return
	}
	for _, inv := range invites {
		if err := s.emailService.SendEventInvitation(ctx, domain.NewEventInvitationEmailData(inv)); err != nil {
			s.logger.WarnContext(ctx, "failed to send event invitation",
				"invite_id", inv.ID, "to", inv.DeveloperEmail, "error", err)
		}
	}
}

func (s *inviteService) findInvites(ctx context.Context, pred domain.Predicate[domain.Invite]) ([]*domain.InviteView, error) {
	invites, err := s.store.Begin().Invites().FindWhere(ctx, pred, domain.IncludeEvent, domain.IncludeDeveloper)
	if err != nil {
		return nil, fmt.Errorf("find invites: %w", err)
	}
	return domain.NewInviteViews(invites), nil
}

func (s *inviteService) GetInvitesByEventID(ctx context.Context, eventID int64) ([]*domain.InviteView, error) {
	return s.findInvites(ctx, func(i *domain.Invite) bool { return i.EventID == eventID })
}

func (s *inviteService) GetInvitesByEventIDAndStatus(ctx context.Context, eventID int64, status domain.InviteStatus) ([]*domain.InviteView, error) {
	return s.findInvites(ctx, func(i *domain.Invite) bool { return i.EventID == eventID && i.Status == status })
}

func (s *inviteService) GetInvitesByDeveloperEmail(ctx context.Context, email string) ([]*domain.InviteView, error) {
	return s.findInvites(ctx, func(i *domain.Invite) bool { return i.DeveloperEmail == email })
}

func (s *inviteService) GetInvitesByDeveloperEmailAndStatus(ctx context.Context, email string, status domain.InviteStatus) ([]*domain.InviteView, error) {
	return s.findInvites(ctx, func(i *domain.Invite) bool { return i.DeveloperEmail == email && i.Status == status })
}

// UpdateInviteStatus records the developer's response. Any status may follow
// any other, including itself.
func (s *inviteService) UpdateInviteStatus(ctx context.Context, eventID, inviteID int64, status domain.InviteStatus) (*domain.InviteView, error) {
	if !status.Valid() {
		return nil, domain.NewValidationError("Invite status is invalid", []domain.FieldError{
			{Field: "status", Message: "Status must be Pending, Accepted or Rejected."},
		})
	}

	uow := s.store.Begin()
	inv, err := uow.Invites().Get(ctx, inviteID)
	if err != nil {
		if errors.Is(err, domain.ErrNotFound) {
			return nil, domain.NotFoundf("Invite not found")
		}
		return nil, fmt.Errorf("get invite: %w", err)
	}
	if inv.EventID != eventID {
		return nil, domain.Conflictf("Invite does not belong to the event")
	}

	inv.Status = status
	if err := uow.Invites().Update(ctx, inv); err != nil {
		return nil, fmt.Errorf("stage invite: %w", err)
	}
	if _, err := uow.Commit(ctx); err != nil {
		if errors.Is(err, domain.ErrNotFound) {
			return nil, domain.NotFoundf("Invite not found")
		}
		return nil, fmt.Errorf("save invite: %w", err)
	}
	s.logger.InfoContext(ctx, "invite status changed", "invite_id", inviteID, "status", status.String())
	if s.recorder != nil {
		s.recorder.InviteStatusChanged(status)
	}

	current, err := s.store.Begin().Invites().Get(ctx, inviteID)
	if err != nil {
		return nil, fmt.Errorf("reload invite: %w", err)
	}
	return domain.NewInviteView(current), nil
}
