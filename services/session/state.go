package session

import (
	"github.com/DIMO-Network/iss-distance/services/distance"
	"github.com/DIMO-Network/iss-distance/services/geo"
)

// State is what the presentation layer renders for one session.
type State struct {
	Location *geo.Point    `json:"location,omitempty"`
	Distance float64       `json:"distance"`
	Loading  bool          `json:"loading"`
	Unit     distance.Unit `json:"unit"`
	Err      error         `json:"-"`
}

// NewState is the state right after the page loads: nothing located yet.
func NewState(unit distance.Unit) State {
	return State{Loading: true, Unit: unit}
}

// Settled reports whether the position acquisition has finished either way.
func (s State) Settled() bool {
	return !s.Loading
}

// LocationAcquired records the user's position and the distance to the
// satellite. It has no effect once the state has settled.
func (s State) LocationAcquired(user, sat geo.Point, surface distance.SurfaceFunc) State {
	if surface == nil {
		surface = distance.LegacyHaversine
	}
	return s.located(user, distance.Round2(distance.SlantDistance(sat, user, surface)))
}

// located settles the state with a distance already computed and rounded in
// kilometers.
func (s State) located(user geo.Point, km float64) State {
	if s.Settled() {
		return s
	}
	s.Location = &user
	s.Distance = distance.Convert(km, s.Unit)
	s.Loading = false
	s.Err = nil
	return s
}

// LocationFailed records a terminal acquisition failure. No distance is ever
// set afterwards.
func (s State) LocationFailed(err error) State {
	if s.Settled() {
		return s
	}
	s.Loading = false
	s.Err = err
	return s
}

// UnitToggled rescales the displayed distance into target. Selecting the
// unit already in use changes nothing.
func (s State) UnitToggled(target distance.Unit) State {
	if target == s.Unit {
		return s
	}
	s.Distance = distance.ToggleUnit(s.Distance, target)
	s.Unit = target
	return s
}
