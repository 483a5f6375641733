package controllers

import (
	"log/slog"
	"net/http"

	"eventsmanager/internal/delivery/http/helpers"
	"eventsmanager/internal/domain"
)

type InvitationController struct {
	Logger  *slog.Logger
	Service domain.InviteService
}

func NewInvitationController(logger *slog.Logger, svc domain.InviteService) *InvitationController {
	return &InvitationController{
		Logger:  logger,
		Service: svc,
	}
}

// SendInvitations godoc
// @Summary Invite developers to an event
// @Description Creates one pending invite per email and commits them together. Any failure aborts the whole batch. eventId in the body is optional and must match the path.
// @Tags invitations
// @Accept json
// @Produce json
// @Param eventId path int true "Event id"
// @Param invites body domain.SendInvitesInput true "Developer emails"
// @Success 201 {array} domain.InviteView
// @Failure 400 {object} helpers.ErrorResponse "validation error or duplicate invite"
// @Failure 404 {object} helpers.ErrorResponse "event or developer not found"
// @Failure 500 {object} helpers.ErrorResponse
// @Router /event/{eventId}/invitation [post]
func (c *InvitationController) SendInvitations(w http.ResponseWriter, r *http.Request) {
	eventID, ok := helpers.PathID(w, r, "eventId")
	if !ok {
		return
	}
	var in domain.SendInvitesInput
	if !helpers.DecodeJSON(w, r, &in) {
		return
	}
	if in.EventID != 0 && in.EventID != eventID {
		helpers.WriteServiceError(w, r, c.Logger, domain.NewValidationError(
			"The invite cannot be created because the information provided is invalid",
			[]domain.FieldError{{Field: "eventId", Message: "Event id does not match the path."}},
		))
		return
	}
	in.EventID = eventID

	invites, err := c.Service.CreateInvites(r.Context(), in)
	if err != nil {
		helpers.WriteServiceError(w, r, c.Logger, err)
		return
	}
	helpers.WriteJSON(w, http.StatusCreated, invites)
}

// GetInvitations godoc
// @Summary List an event's invitations
// @Tags invitations
// @Produce json
// @Param eventId path int true "Event id"
// @Param status query string false "Filter by status" Enums(Pending, Accepted, Rejected)
// @Success 200 {array} domain.InviteView
// @Failure 400 {object} helpers.ErrorResponse
// @Failure 500 {object} helpers.ErrorResponse
// @Router /event/{eventId}/invitation [get]
func (c *InvitationController) GetInvitations(w http.ResponseWriter, r *http.Request) {
	eventID, ok := helpers.PathID(w, r, "eventId")
	if !ok {
		return
	}
	status, filter, valid := helpers.StatusQuery(w, r)
	if !valid {
		return
	}

	var (
		invites []*domain.InviteView
		err     error
	)
	if filter {
		invites, err = c.Service.GetInvitesByEventIDAndStatus(r.Context(), eventID, status)
	} else {
		invites, err = c.Service.GetInvitesByEventID(r.Context(), eventID)
	}
	if err != nil {
		helpers.WriteServiceError(w, r, c.Logger, err)
		return
	}
	helpers.WriteJSON(w, http.StatusOK, invites)
}

// GetAcceptedInvitations godoc
// @Summary List an event's accepted invitations
// @Tags invitations
// @Produce json
// @Param eventId path int true "Event id"
// @Success 200 {array} domain.InviteView
// @Failure 400 {object} helpers.ErrorResponse
// @Failure 500 {object} helpers.ErrorResponse
// @Router /event/{eventId}/invitation/accepted [get]
func (c *InvitationController) GetAcceptedInvitations(w http.ResponseWriter, r *http.Request) {
	eventID, ok := helpers.PathID(w, r, "eventId")
	if !ok {
		return
	}
	invites, err := c.Service.GetInvitesByEventIDAndStatus(r.Context(), eventID, domain.InviteStatusAccepted)
	if err != nil {
		helpers.WriteServiceError(w, r, c.Logger, err)
		return
	}
	helpers.WriteJSON(w, http.StatusOK, invites)
}

// RespondToInvitation godoc
// @Summary Record a developer's response to an invitation
// @Description The body is a bare JSON status, by name ("Accepted") or number (1). Any status may follow any other.
// @Tags invitations
// @Accept json
// @Produce json
// @Param eventId path int true "Event id"
// @Param inviteId path int true "Invite id"
// @Param status body string true "New status" Enums(Pending, Accepted, Rejected)
// @Success 200 {object} domain.InviteView
// @Failure 400 {object} helpers.ErrorResponse "invalid status or invite does not belong to the event"
// @Failure 404 {object} helpers.ErrorResponse
// @Failure 500 {object} helpers.ErrorResponse
// @Router /event/{eventId}/invitation/{inviteId}/response [put]
func (c *InvitationController) RespondToInvitation(w http.ResponseWriter, r *http.Request) {
	eventID, ok := helpers.PathID(w, r, "eventId")
	if !ok {
		return
	}
	inviteID, ok := helpers.PathID(w, r, "inviteId")
	if !ok {
		return
	}
	var status domain.InviteStatus
	if !helpers.DecodeJSON(w, r, &status) {
		return
	}

	invite, err := c.Service.UpdateInviteStatus(r.Context(), eventID, inviteID, status)
	if err != nil {
		helpers.WriteServiceError(w, r, c.Logger, err)
		return
	}
	helpers.WriteJSON(w, http.StatusOK, invite)
}
