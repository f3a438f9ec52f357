package report

import (
	"encoding/json"
	"fmt"
	"strconv"
	"time"

	"github.com/DIMO-Network/iss-distance/services/geo"
	"github.com/DIMO-Network/iss-distance/services/session"
	"github.com/DIMO-Network/shared"
	"github.com/segmentio/ksuid"
	"github.com/tidwall/sjson"
)

const (
	EventType   = "dev.iss.distance.session"
	EventSource = "iss-distance"
)

var eventCodec = &shared.JSONCodec[shared.CloudEvent[json.RawMessage]]{}

// FormatDistance renders a distance the way it is shown to the user: no
// trailing zeros, at most two decimals.
func FormatDistance(d float64) string {
	return strconv.FormatFloat(d, 'f', -1, 64)
}

// Sentence is the one-line answer shown once the distance is known.
func Sentence(st session.State) string {
	return fmt.Sprintf("You are %s %s away from the ISS", FormatDistance(st.Distance), st.Unit.Abbrev())
}

// Build renders the state of a session as a JSON document.
func Build(st session.State, sat geo.Point) ([]byte, error) {
	doc := []byte(`{}`)
	var err error
	set := func(path string, value any) {
		if err != nil {
			return
		}
		doc, err = sjson.SetBytes(doc, path, value)
	}

	set("loading", st.Loading)
	set("unit", string(st.Unit))

	set("satellite.name", sat.Name)
	set("satellite.id", sat.ID)
	set("satellite.latitude", sat.Latitude)
	set("satellite.longitude", sat.Longitude)
	set("satellite.altitude", sat.Altitude)
	set("satellite.velocity", sat.Velocity)
	if sat.Visibility != "" {
		set("satellite.visibility", sat.Visibility)
	}
	set("satellite.timestamp", sat.Timestamp)

	if st.Location != nil {
		set("user.latitude", st.Location.Latitude)
		set("user.longitude", st.Location.Longitude)
		set("distance.value", st.Distance)
		set("distance.unit", st.Unit.Abbrev())
		set("message", Sentence(st))
	}
	if st.Err != nil {
		set("error", st.Err.Error())
	}

	if err != nil {
		return nil, fmt.Errorf("building report: %w", err)
	}
	return doc, nil
}

// Event wraps the session report in a CloudEvent.
func Event(st session.State, sat geo.Point, now time.Time) (*shared.CloudEvent[json.RawMessage], error) {
	doc, err := Build(st, sat)
	if err != nil {
		return nil, err
	}
	return &shared.CloudEvent[json.RawMessage]{
		ID:          ksuid.New().String(),
		Source:      EventSource,
		SpecVersion: "1.0",
		Subject:     strconv.Itoa(sat.ID),
		Time:        now.UTC(),
		Type:        EventType,
		Data:        doc,
	}, nil
}

// Encode serializes an event produced by Event.
func Encode(ev *shared.CloudEvent[json.RawMessage]) ([]byte, error) {
	return eventCodec.Encode(ev)
}
