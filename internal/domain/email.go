package domain

import (
	"context"
	"time"
)

// Mailer defines the contract for sending emails (infrastructure port).
type Mailer interface {
	Send(ctx context.Context, to, subject, html, text string) error
}

// RenderedEmail is a message ready to hand to a Mailer.
type RenderedEmail struct {
	Subject string
	HTML    string
	Text    string
}

// EmailTemplateRenderer renders one method per email kind so each template
// gets the data type it was written against.
type EmailTemplateRenderer interface {
	RenderEventInvitation(data *EventInvitationEmailData) (*RenderedEmail, error)
}

// EventInvitationEmailData holds data for the event invitation email.
type EventInvitationEmailData struct {
	Email         string
	DeveloperName string
	EventID       int64
	EventName     string
	EventDate     time.Time
	EventType     string
	City          string
	Country       string
}

// EmailService defines the contract for sending domain-level emails.
type EmailService interface {
	SendEventInvitation(ctx context.Context, data *EventInvitationEmailData) error
}

// NewEventInvitationEmailData builds the invitation email data for a
// persisted invite with its event and developer attached.
func NewEventInvitationEmailData(inv *Invite) *EventInvitationEmailData {
	data := &EventInvitationEmailData{
		Email:   inv.DeveloperEmail,
		EventID: inv.EventID,
	}
	if d := inv.Developer; d != nil {
		data.DeveloperName = d.Name
	}
	if e := inv.Event; e != nil {
		data.EventName = e.Name
		data.EventDate = e.Date
		data.EventType = e.Type.String()
		if e.City != nil {
			data.City = *e.City
		}
		if e.Country != nil {
			data.Country = *e.Country
		}
	}
	return data
}
