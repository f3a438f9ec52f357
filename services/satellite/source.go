package satellite

import (
	"context"
	"errors"
	"fmt"
	"strings"
	"time"

	"github.com/DIMO-Network/iss-distance/internal/config"
	"github.com/DIMO-Network/iss-distance/services/geo"
	"github.com/DIMO-Network/iss-distance/services/metrics"
)

// ISSNoradID is the NORAD catalog number of the International Space Station.
const ISSNoradID = 25544

// ErrUpstreamFetch is matched by every *UpstreamError.
var ErrUpstreamFetch = errors.New("satellite position fetch failed")

// UpstreamError is returned when the tracking service could not be reached or
// returned something unusable.
type UpstreamError struct {
	URL        string
	StatusCode int
	Err        error
}

func (e *UpstreamError) Error() string {
	if e.StatusCode != 0 {
		return fmt.Sprintf("%s: unexpected status code %d from %s", ErrUpstreamFetch, e.StatusCode, e.URL)
	}
	return fmt.Sprintf("%s: %s: %v", ErrUpstreamFetch, e.URL, e.Err)
}

func (e *UpstreamError) Is(target error) bool {
	return target == ErrUpstreamFetch
}

func (e *UpstreamError) Unwrap() error {
	return e.Err
}

// Source reports where a satellite is right now.
type Source interface {
	Name() string
	Position(ctx context.Context) (geo.Point, error)
}

// Fetch asks src for the satellite position and records the fetch duration.
func Fetch(ctx context.Context, src Source) (geo.Point, error) {
	start := time.Now()
	p, err := src.Position(ctx)
	metrics.ObserveSatelliteFetch(src.Name(), time.Since(start), err)
	return p, err
}

// FromSettings builds the Source named by SATELLITE_SOURCE.
func FromSettings(s *config.Settings) (Source, error) {
	id := s.SatelliteID
	if id == 0 {
		id = ISSNoradID
	}

	switch strings.ToLower(strings.TrimSpace(s.SatelliteSource)) {
	case "", "wheretheiss":
		return NewWhereTheISS(s.WhereTheISSURL, id), nil
	case "tle":
		url := s.TLEURL
		if url == "" {
			url = fmt.Sprintf(celestrakURLFormat, id)
		}
		return NewTLE(url, time.Now), nil
	}
	return nil, fmt.Errorf("unknown satellite source %q", s.SatelliteSource)
}
