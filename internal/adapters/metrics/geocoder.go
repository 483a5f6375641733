package metrics

import (
	"context"
	"errors"
	"time"

	"eventsmanager/internal/domain"
)

type instrumentedGeocoder struct {
	next domain.Geocoder
	m    *Manager
}

// InstrumentGeocoder records the outcome and latency of every lookup made through next.
func InstrumentGeocoder(next domain.Geocoder, m *Manager) domain.Geocoder {
	return &instrumentedGeocoder{next: next, m: m}
}

func (g *instrumentedGeocoder) Locate(ctx context.Context, city string) (domain.Coordinates, error) {
	start := time.Now()
	c, err := g.next.Locate(ctx, city)
	g.m.RecordGeocode(outcome(err), time.Since(start))
	return c, err
}

func outcome(err error) string {
	if err == nil {
		return OutcomeOK
	}
	var ue *domain.UpstreamServiceError
	if errors.As(err, &ue) {
		return OutcomeUpstreamError
	}
	return OutcomeTransportError
}
