package services

import (
	"context"
	"errors"
	"fmt"
	"log/slog"

	"eventsmanager/internal/domain"
)

type eventService struct {
	store    domain.Store
	geocoder domain.Geocoder
	logger   *slog.Logger
}

// NewEventService creates an EventService. The geocoder is only called for
// in-person events.
func NewEventService(store domain.Store, geocoder domain.Geocoder, logger *slog.Logger) domain.EventService {
	if logger == nil {
		logger = slog.Default()
	}
	return &eventService{store: store, geocoder: geocoder, logger: logger}
}

// CreateEvent validates the input, geocodes in-person events and persists the
// event. Geocoder errors are returned as is.
func (s *eventService) CreateEvent(ctx context.Context, in domain.EventInput) (*domain.EventView, error) {
	if fields := in.Validate(); len(fields) > 0 {
		return nil, domain.NewValidationError("Event information is invalid", fields)
	}

	event := in.Event()
	if event.Type == domain.EventTypeInPerson {
		coords, err := s.geocoder.Locate(ctx, *event.City)
		if err != nil {
			return nil, err
		}
		event.SetCoordinates(coords)
	}

	uow := s.store.Begin()
	if err := uow.Events().Add(ctx, event); err != nil {
		return nil, fmt.Errorf("stage event: %w", err)
	}
	if _, err := uow.Commit(ctx); err != nil {
		return nil, fmt.Errorf("save event: %w", err)
	}
	s.logger.InfoContext(ctx, "event created", "event_id", event.ID, "type", event.Type.String())
	return domain.NewEventView(event), nil
}

func (s *eventService) GetEventByID(ctx context.Context, id int64) (*domain.EventView, error) {
	event, err := s.store.Begin().Events().Get(ctx, id)
	if err != nil {
		if errors.Is(err, domain.ErrNotFound) {
			return nil, domain.NotFoundf("Event with id %d not found", id)
		}
		return nil, fmt.Errorf("get event: %w", err)
	}
	return domain.NewEventView(event), nil
}

func (s *eventService) GetEvents(ctx context.Context) ([]*domain.EventView, error) {
	events, err := s.store.Begin().Events().GetAll(ctx)
	if err != nil {
		return nil, fmt.Errorf("list events: %w", err)
	}
	out := make([]*domain.EventView, 0, len(events))
	for _, e := range events {
		out = append(out, domain.NewEventView(e))
	}
	return out, nil
}
