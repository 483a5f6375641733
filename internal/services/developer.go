package services

import (
	"context"
	"errors"
	"fmt"
	"log/slog"

	"eventsmanager/internal/domain"
)

type developerService struct {
	store  domain.Store
	logger *slog.Logger
}

// NewDeveloperService creates a DeveloperService backed by the given store.
func NewDeveloperService(store domain.Store, logger *slog.Logger) domain.DeveloperService {
	if logger == nil {
		logger = slog.Default()
	}
	return &developerService{store: store, logger: logger}
}

func (s *developerService) CreateDeveloper(ctx context.Context, in domain.DeveloperInput) (*domain.DeveloperView, error) {
	if fields := in.Validate(); len(fields) > 0 {
		return nil, domain.NewValidationError("Developer information is invalid", fields)
	}

	uow := s.store.Begin()
	if err := uow.Developers().Add(ctx, in.Developer()); err != nil {
		return nil, fmt.Errorf("stage developer: %w", err)
	}
	if _, err := uow.Commit(ctx); err != nil {
		if errors.Is(err, domain.ErrDuplicateKey) {
			return nil, domain.Conflictf("Developer with email %s already exists", in.Email)
		}
		return nil, fmt.Errorf("save developer: %w", err)
	}

	d, err := s.store.Begin().Developers().Get(ctx, in.Email)
	if err != nil {
		return nil, fmt.Errorf("reload developer: %w", err)
	}
	s.logger.InfoContext(ctx, "developer created", "email", d.Email)
	return domain.NewDeveloperView(d), nil
}

func (s *developerService) GetDeveloperByEmail(ctx context.Context, email string) (*domain.DeveloperView, error) {
	d, err := s.store.Begin().Developers().Get(ctx, email)
	if err != nil {
		if errors.Is(err, domain.ErrNotFound) {
			return nil, domain.NotFoundf("Developer with email %s not found", email)
		}
		return nil, fmt.Errorf("get developer: %w", err)
	}
	return domain.NewDeveloperView(d), nil
}

func (s *developerService) GetDevelopers(ctx context.Context) ([]*domain.DeveloperView, error) {
	devs, err := s.store.Begin().Developers().GetAll(ctx)
	if err != nil {
		return nil, fmt.Errorf("list developers: %w", err)
	}
	out := make([]*domain.DeveloperView, 0, len(devs))
	for _, d := range devs {
		out = append(out, domain.NewDeveloperView(d))
	}
	return out, nil
}
