package email

import (
	"bytes"
	"embed"
	"fmt"
	htmltemplate "html/template"
	"strings"
	texttemplate "text/template"

	"eventsmanager/internal/domain"
)

// Each email kind ships three files under templates/: <kind>_subject.txt,
// <kind>.txt and <kind>.html.
const (
	TemplateEventInvitation = "event_invitation"
)

//go:embed templates/*
var templateFS embed.FS

// The template sets are parsed once; a broken embedded file fails at init.
var (
	htmlTemplates = htmltemplate.Must(htmltemplate.New("").Option("missingkey=error").ParseFS(templateFS, "templates/*.html"))
	textTemplates = texttemplate.Must(texttemplate.New("").Option("missingkey=error").ParseFS(templateFS, "templates/*.txt"))
)

type templateRenderer struct{}

// NewTemplateRenderer returns a domain.EmailTemplateRenderer over the embedded templates.
func NewTemplateRenderer() domain.EmailTemplateRenderer {
	return templateRenderer{}
}

func (templateRenderer) RenderEventInvitation(data *domain.EventInvitationEmailData) (*domain.RenderedEmail, error) {
	if data == nil {
		return nil, fmt.Errorf("render %s: nil data", TemplateEventInvitation)
	}
	return render(TemplateEventInvitation, data)
}

func render(kind string, data any) (*domain.RenderedEmail, error) {
	var subject, text, html bytes.Buffer
	if err := textTemplates.ExecuteTemplate(&subject, kind+"_subject.txt", data); err != nil {
		return nil, fmt.Errorf("render %s subject: %w", kind, err)
	}
	if err := textTemplates.ExecuteTemplate(&text, kind+".txt", data); err != nil {
		return nil, fmt.Errorf("render %s text: %w", kind, err)
	}
	if err := htmlTemplates.ExecuteTemplate(&html, kind+".html", data); err != nil {
		return nil, fmt.Errorf("render %s html: %w", kind, err)
	}
	return &domain.RenderedEmail{
		Subject: strings.TrimSpace(subject.String()),
		HTML:    html.String(),
		Text:    text.String(),
	}, nil
}
