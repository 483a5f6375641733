package domain

import (
	"context"
	"strings"
	"time"
)

// EventType distinguishes virtual events from in-person ones.
type EventType int

const (
	EventTypeVirtual  EventType = 1
	EventTypeInPerson EventType = 2
)

// Valid reports whether t is a known event type.
func (t EventType) Valid() bool {
	return t == EventTypeVirtual || t == EventTypeInPerson
}

func (t EventType) String() string {
	switch t {
	case EventTypeVirtual:
		return "Virtual"
	case EventTypeInPerson:
		return "InPerson"
	default:
		return "Unknown"
	}
}

// Event is a virtual or in-person event. City, Country, Latitude and
// Longitude are set only for in-person events.
type Event struct {
	ID          int64
	Name        string
	Description string
	Date        time.Time
	Type        EventType
	City        *string
	Country     *string
	Latitude    *float64
	Longitude   *float64
}

// SetCoordinates stores the geocoded position of an in-person event.
func (e *Event) SetCoordinates(c Coordinates) {
	lat, lng := c.Latitude, c.Longitude
	e.Latitude = &lat
	e.Longitude = &lng
}

// Coordinates returns the stored position, if any.
func (e *Event) Coordinates() (Coordinates, bool) {
	if e.Latitude == nil || e.Longitude == nil {
		return Coordinates{}, false
	}
	return Coordinates{Latitude: *e.Latitude, Longitude: *e.Longitude}, true
}

// EventInput is the request body for creating an event.
// EventTypeID is 1 for virtual and 2 for in-person events.
// swagger:model EventInput
type EventInput struct {
	Name        string    `json:"name"`
	Description string    `json:"description"`
	Date        time.Time `json:"date"`
	EventTypeID int       `json:"eventTypeId"`
	City        string    `json:"city,omitempty"`
	Country     string    `json:"country,omitempty"`
}

// Type returns the requested event type.
func (in EventInput) Type() EventType {
	return EventType(in.EventTypeID)
}

// Validate returns the failed field rules; empty means valid.
// City and country are only required for in-person events.
func (in EventInput) Validate() []FieldError {
	var errs []FieldError
	if strings.TrimSpace(in.Name) == "" {
		errs = append(errs, FieldError{Field: "name", Message: "Name of the event is required."})
	}
	if strings.TrimSpace(in.Description) == "" {
		errs = append(errs, FieldError{Field: "description", Message: "Description is required."})
	}
	if in.Date.IsZero() {
		errs = append(errs, FieldError{Field: "date", Message: "Date and time is required."})
	}
	switch {
	case in.EventTypeID == 0:
		errs = append(errs, FieldError{Field: "eventTypeId", Message: "Event type is required."})
	case !in.Type().Valid():
		errs = append(errs, FieldError{Field: "eventTypeId", Message: "Event type is invalid."})
	}
	if in.Type() == EventTypeInPerson {
		if strings.TrimSpace(in.City) == "" {
			errs = append(errs, FieldError{Field: "city", Message: "City is required."})
		}
		if strings.TrimSpace(in.Country) == "" {
			errs = append(errs, FieldError{Field: "country", Message: "Country is required."})
		}
	}
	return errs
}

// Event builds the record for a validated input. Coordinates are filled in
// later by the geocoder.
func (in EventInput) Event() *Event {
	e := &Event{
		Name:        in.Name,
		Description: in.Description,
		Date:        in.Date,
		Type:        in.Type(),
	}
	if e.Type == EventTypeInPerson {
		city, country := in.City, in.Country
		e.City = &city
		e.Country = &country
	}
	return e
}

// EventView is the rendered form of an Event.
// swagger:model EventView
type EventView struct {
	ID          int64     `json:"id"`
	Name        string    `json:"name"`
	Description string    `json:"description"`
	Date        time.Time `json:"date"`
	Type        string    `json:"type"`
	City        *string   `json:"city,omitempty"`
	Country     *string   `json:"country,omitempty"`
	Location    *string   `json:"location,omitempty"`
}

// NewEventView renders e. Location is present only when coordinates are.
func NewEventView(e *Event) *EventView {
	v := &EventView{
		ID:          e.ID,
		Name:        e.Name,
		Description: e.Description,
		Date:        e.Date,
		Type:        e.Type.String(),
		City:        e.City,
		Country:     e.Country,
	}
	if c, ok := e.Coordinates(); ok {
		loc := c.String()
		v.Location = &loc
	}
	return v
}

// EventService creates and looks up events.
type EventService interface {
	CreateEvent(ctx context.Context, in EventInput) (*EventView, error)
	GetEventByID(ctx context.Context, id int64) (*EventView, error)
	GetEvents(ctx context.Context) ([]*EventView, error)
}
