package domain

import (
	"context"
	"encoding/json"
	"fmt"
	"strconv"
	"strings"
)

// InviteStatus is the developer's response to an invite.
type InviteStatus int

const (
	InviteStatusPending InviteStatus = iota
	InviteStatusAccepted
	InviteStatusRejected
)

var inviteStatusNames = map[InviteStatus]string{
	InviteStatusPending:  "Pending",
	InviteStatusAccepted: "Accepted",
	InviteStatusRejected: "Rejected",
}

// Valid reports whether s is a known status.
func (s InviteStatus) Valid() bool {
	_, ok := inviteStatusNames[s]
	return ok
}

func (s InviteStatus) String() string {
	if name, ok := inviteStatusNames[s]; ok {
		return name
	}
	return "Unknown"
}

// ParseInviteStatus accepts a status name (case-insensitive) or its numeric id.
func ParseInviteStatus(s string) (InviteStatus, error) {
	s = strings.TrimSpace(s)
	if n, err := strconv.Atoi(s); err == nil {
		if st := InviteStatus(n); st.Valid() {
			return st, nil
		}
		return 0, fmt.Errorf("unknown invite status %d", n)
	}
	for st, name := range inviteStatusNames {
		if strings.EqualFold(name, s) {
			return st, nil
		}
	}
	return 0, fmt.Errorf("unknown invite status %q", s)
}

// MarshalJSON encodes the status by name.
func (s InviteStatus) MarshalJSON() ([]byte, error) {
	return json.Marshal(s.String())
}

// UnmarshalJSON accepts either the status name or its numeric id.
func (s *InviteStatus) UnmarshalJSON(b []byte) error {
	var raw any
	if err := json.Unmarshal(b, &raw); err != nil {
		return err
	}
	var st InviteStatus
	var err error
	switch v := raw.(type) {
	case string:
		st, err = ParseInviteStatus(v)
	case float64:
		st, err = ParseInviteStatus(strconv.FormatFloat(v, 'f', -1, 64))
	default:
		err = fmt.Errorf("invite status must be a string or a number")
	}
	if err != nil {
		return err
	}
	*s = st
	return nil
}

// Invite binds a developer to an event. Event and Developer are attached
// by repositories when the query asks for them.
type Invite struct {
	ID             int64
	EventID        int64
	DeveloperEmail string
	Status         InviteStatus

	Event     *Event
	Developer *Developer
}

// NewInvite returns a pending invite for the developer to the event.
func NewInvite(event *Event, developer *Developer) *Invite {
	return &Invite{
		EventID:        event.ID,
		DeveloperEmail: developer.Email,
		Status:         InviteStatusPending,
		Event:          event,
		Developer:      developer,
	}
}

// SendInvitesInput is the request body for inviting developers to an event.
// swagger:model SendInvitesInput
type SendInvitesInput struct {
	EventID         int64    `json:"eventId"`
	DeveloperEmails []string `json:"developerEmails"`
}

// Validate returns the failed field rules; empty means valid.
func (in SendInvitesInput) Validate() []FieldError {
	var errs []FieldError
	if in.EventID == 0 {
		errs = append(errs, FieldError{Field: "eventId", Message: "Event id is required."})
	}
	return errs
}

// InviteView is the rendered form of an Invite.
// swagger:model InviteView
type InviteView struct {
	ID             int64        `json:"id"`
	EventID        int64        `json:"eventId"`
	DeveloperEmail string       `json:"developerEmail"`
	Status         InviteStatus `json:"status" swaggertype:"string" enums:"Pending,Accepted,Rejected"`
}

// NewInviteView renders inv, preferring the attached event and developer.
func NewInviteView(inv *Invite) *InviteView {
	v := &InviteView{
		ID:             inv.ID,
		EventID:        inv.EventID,
		DeveloperEmail: inv.DeveloperEmail,
		Status:         inv.Status,
	}
	if inv.Event != nil {
		v.EventID = inv.Event.ID
	}
	if inv.Developer != nil {
		v.DeveloperEmail = inv.Developer.Email
	}
	return v
}

// NewInviteViews renders a query result; never nil.
func NewInviteViews(invites []*Invite) []*InviteView {
	out := make([]*InviteView, 0, len(invites))
	for _, inv := range invites {
		out = append(out, NewInviteView(inv))
	}
	return out
}

// InviteService creates invites, queries them and records responses.
type InviteService interface {
	CreateInvites(ctx context.Context, in SendInvitesInput) ([]*InviteView, error)
	GetInvitesByEventID(ctx context.Context, eventID int64) ([]*InviteView, error)
	GetInvitesByEventIDAndStatus(ctx context.Context, eventID int64, status InviteStatus) ([]*InviteView, error)
	GetInvitesByDeveloperEmail(ctx context.Context, email string) ([]*InviteView, error)
	GetInvitesByDeveloperEmailAndStatus(ctx context.Context, email string, status InviteStatus) ([]*InviteView, error)
	UpdateInviteStatus(ctx context.Context, eventID, inviteID int64, status InviteStatus) (*InviteView, error)
}
