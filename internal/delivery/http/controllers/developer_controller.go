package controllers

import (
	"log/slog"
	"net/http"
	"net/url"

	"eventsmanager/internal/delivery/http/helpers"
	"eventsmanager/internal/domain"
)

type DeveloperController struct {
	Logger  *slog.Logger
	Service domain.DeveloperService
	Invites domain.InviteService
}

func NewDeveloperController(logger *slog.Logger, svc domain.DeveloperService, invites domain.InviteService) *DeveloperController {
	return &DeveloperController{
		Logger:  logger,
		Service: svc,
		Invites: invites,
	}
}

// GetDevelopers godoc
// @Summary List developers
// @Tags developers
// @Produce json
// @Success 200 {array} domain.DeveloperView
// @Failure 500 {object} helpers.ErrorResponse
// @Router /developer [get]
func (c *DeveloperController) GetDevelopers(w http.ResponseWriter, r *http.Request) {
	devs, err := c.Service.GetDevelopers(r.Context())
	if err != nil {
		helpers.WriteServiceError(w, r, c.Logger, err)
		return
	}
	helpers.WriteJSON(w, http.StatusOK, devs)
}

// GetDeveloperByEmail godoc
// @Summary Get a developer by email
// @Tags developers
// @Produce json
// @Param email path string true "Developer email"
// @Success 200 {object} domain.DeveloperView
// @Failure 404 {object} helpers.ErrorResponse
// @Failure 500 {object} helpers.ErrorResponse
// @Router /developer/{email} [get]
func (c *DeveloperController) GetDeveloperByEmail(w http.ResponseWriter, r *http.Request) {
	dev, err := c.Service.GetDeveloperByEmail(r.Context(), r.PathValue("email"))
	if err != nil {
		helpers.WriteServiceError(w, r, c.Logger, err)
		return
	}
	helpers.WriteJSON(w, http.StatusOK, dev)
}

// CreateDeveloper godoc
// @Summary Create a developer
// @Description The email is the developer's immutable key.
// @Tags developers
// @Accept json
// @Produce json
// @Param developer body domain.DeveloperInput true "Developer data"
// @Success 201 {object} domain.DeveloperView
// @Failure 400 {object} helpers.ErrorResponse "validation error or duplicate email"
// @Failure 500 {object} helpers.ErrorResponse
// @Router /developer [post]
func (c *DeveloperController) CreateDeveloper(w http.ResponseWriter, r *http.Request) {
	var in domain.DeveloperInput
	if !helpers.DecodeJSON(w, r, &in) {
		return
	}
	dev, err := c.Service.CreateDeveloper(r.Context(), in)
	if err != nil {
		helpers.WriteServiceError(w, r, c.Logger, err)
		return
	}
	w.Header().Set("Location", "/developer/"+url.PathEscape(dev.Email))
	helpers.WriteJSON(w, http.StatusCreated, dev)
}

// GetDeveloperInvitations godoc
// @Summary List a developer's invitations
// @Tags developers
// @Produce json
// @Param email path string true "Developer email"
// @Param status query string false "Filter by status" Enums(Pending, Accepted, Rejected)
// @Success 200 {array} domain.InviteView
// @Failure 400 {object} helpers.ErrorResponse
// @Failure 500 {object} helpers.ErrorResponse
// @Router /developer/{email}/invitation [get]
func (c *DeveloperController) GetDeveloperInvitations(w http.ResponseWriter, r *http.Request) {
	status, filter, valid := helpers.StatusQuery(w, r)
	if !valid {
		return
	}
	email := r.PathValue("email")

	var (
		invites []*domain.InviteView
		err     error
	)
	if filter {
		invites, err = c.Invites.GetInvitesByDeveloperEmailAndStatus(r.Context(), email, status)
	} else {
		invites, err = c.Invites.GetInvitesByDeveloperEmail(r.Context(), email)
	}
	if err != nil {
		helpers.WriteServiceError(w, r, c.Logger, err)
		return
	}
	helpers.WriteJSON(w, http.StatusOK, invites)
}
