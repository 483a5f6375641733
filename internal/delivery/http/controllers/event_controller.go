package controllers

import (
	"log/slog"
	"net/http"
	"strconv"

	"eventsmanager/internal/delivery/http/helpers"
	"eventsmanager/internal/domain"
)

type EventController struct {
	Logger  *slog.Logger
	Service domain.EventService
}

func NewEventController(logger *slog.Logger, svc domain.EventService) *EventController {
	return &EventController{
		Logger:  logger,
		Service: svc,
	}
}

// GetEvents godoc
// @Summary List events
// @Tags events
// @Produce json
// @Success 200 {array} domain.EventView
// @Failure 500 {object} helpers.ErrorResponse
// @Router /event [get]
func (c *EventController) GetEvents(w http.ResponseWriter, r *http.Request) {
	events, err := c.Service.GetEvents(r.Context())
	if err != nil {
		helpers.WriteServiceError(w, r, c.Logger, err)
		return
	}
	helpers.WriteJSON(w, http.StatusOK, events)
}

// GetEventByID godoc
// @Summary Get an event by id
// @Tags events
// @Produce json
// @Param eventId path int true "Event id"
// @Success 200 {object} domain.EventView
// @Failure 400 {object} helpers.ErrorResponse
// @Failure 404 {object} helpers.ErrorResponse
// @Failure 500 {object} helpers.ErrorResponse
// @Router /event/{eventId} [get]
func (c *EventController) GetEventByID(w http.ResponseWriter, r *http.Request) {
	id, ok := helpers.PathID(w, r, "eventId")
	if !ok {
		return
	}
	event, err := c.Service.GetEventByID(r.Context(), id)
	if err != nil {
		helpers.WriteServiceError(w, r, c.Logger, err)
		return
	}
	helpers.WriteJSON(w, http.StatusOK, event)
}

// CreateEvent godoc
// @Summary Create an event
// @Description eventTypeId is 1 for virtual and 2 for in-person events. In-person events require city and country and are geocoded; the rendered location reads "Latitude: x, Longitude: y".
// @Tags events
// @Accept json
// @Produce json
// @Param event body domain.EventInput true "Event data"
// @Success 201 {object} domain.EventView
// @Failure 400 {object} helpers.ErrorResponse
// @Failure 500 {object} helpers.ErrorResponse "geocoding failed"
// @Router /event [post]
func (c *EventController) CreateEvent(w http.ResponseWriter, r *http.Request) {
	var in domain.EventInput
	if !helpers.DecodeJSON(w, r, &in) {
		return
	}
	event, err := c.Service.CreateEvent(r.Context(), in)
	if err != nil {
		helpers.WriteServiceError(w, r, c.Logger, err)
		return
	}
	w.Header().Set("Location", "/event/"+strconv.FormatInt(event.ID, 10))
	helpers.WriteJSON(w, http.StatusCreated, event)
}
