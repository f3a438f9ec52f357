package session

import (
	"context"
	"errors"
	"sync"

	"github.com/DIMO-Network/iss-distance/services/distance"
	"github.com/DIMO-Network/iss-distance/services/geo"
	"github.com/DIMO-Network/iss-distance/services/metrics"
	"github.com/DIMO-Network/iss-distance/services/position"
	"github.com/rs/zerolog"
)

// Session is one page load: a satellite position fetched up front, a single
// user position acquisition, and the unit the distance is shown in.
type Session struct {
	logger    *zerolog.Logger
	satellite geo.Point
	provider  *position.Provider
	surface   distance.SurfaceFunc

	mu    sync.Mutex
	state State
}

func New(log *zerolog.Logger, sat geo.Point, provider *position.Provider, surface distance.SurfaceFunc, unit distance.Unit) *Session {
	if surface == nil {
		surface = distance.LegacyHaversine
	}
	return &Session{
		logger:    log,
		satellite: sat,
		provider:  provider,
		surface:   surface,
		state:     NewState(unit),
	}
}

// Satellite returns the satellite position the session was started with.
func (s *Session) Satellite() geo.Point {
	return s.satellite
}

// State returns a copy of the current state.
func (s *Session) State() State {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.state
}

// Load waits for the user's position and settles the state. When ctx ends
// before the environment answers, the state is left loading and ctx's error
// is returned.
func (s *Session) Load(ctx context.Context) (State, error) {
	user, err := s.provider.Acquire(ctx)
	if err != nil && ctx.Err() != nil {
		select {
		case <-s.provider.Settled():
			user, err = s.provider.Acquire(context.Background())
		default:
			metrics.ObserveAcquisition(metrics.OutcomeAborted)
			s.logger.Warn().Err(err).Msg("Stopped waiting for the user position.")
			return s.State(), err
		}
	}

	s.mu.Lock()
	defer s.mu.Unlock()

	if s.state.Settled() {
		return s.state, err
	}

	if err != nil {
		outcome := metrics.OutcomeFailed
		if errors.Is(err, position.ErrCapabilityUnavailable) {
			outcome = metrics.OutcomeUnavailable
		}
		metrics.ObserveAcquisition(outcome)

		s.state = s.state.LocationFailed(err)
		return s.state, err
	}

	km := distance.Round2(distance.SlantDistance(s.satellite, user, s.surface))
	s.state = s.state.located(user, km)

	metrics.ObserveAcquisition(metrics.OutcomeAcquired)
	metrics.SetDistance(km)

	s.logger.Info().
		Float64("user_latitude", user.Latitude).
		Float64("user_longitude", user.Longitude).
		Float64("satellite_latitude", s.satellite.Latitude).
		Float64("satellite_longitude", s.satellite.Longitude).
		Float64("satellite_altitude", s.satellite.Altitude).
		Float64("distance_km", km).
		Msg("Distance computed.")

	return s.state, nil
}

// Toggle switches the displayed unit.
func (s *Session) Toggle(target distance.Unit) State {
	s.mu.Lock()
	defer s.mu.Unlock()

	if target != s.state.Unit {
		metrics.ObserveUnitToggle(string(target))
	}
	s.state = s.state.UnitToggled(target)
	return s.state
}
