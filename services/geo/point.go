package geo

import "fmt"

// UserName is the label given to the ground observer's point.
const UserName = "user"

// Point is a located entity at one instant. Latitude and longitude are in
// degrees, altitude in kilometers above the reference sphere. The remaining
// fields are telemetry passed through from the tracking provider.
type Point struct {
	Name      string  `json:"name"`
	ID        int     `json:"id"`
	Latitude  float64 `json:"latitude"`
	Longitude float64 `json:"longitude"`
	Altitude  float64 `json:"altitude"`

	Velocity   float64 `json:"velocity"`
	Visibility string  `json:"visibility"`
	Footprint  float64 `json:"footprint"`
	Timestamp  int64   `json:"timestamp"`
	DayNum     float64 `json:"daynum"`
	SolarLat   float64 `json:"solar_lat"`
	SolarLon   float64 `json:"solar_lon"`
	Units      string  `json:"units"`
}

// UserPoint builds the point for a ground observer. Telemetry that does not
// apply to someone standing on the ground carries sentinel values.
func UserPoint(lat, lon float64) Point {
	return Point{
		Name:       UserName,
		ID:         -1,
		Latitude:   lat,
		Longitude:  lon,
		Altitude:   0,
		Velocity:   0,
		Visibility: "string",
		Footprint:  -1,
		Timestamp:  -1,
		DayNum:     -1,
		SolarLat:   -1,
		SolarLon:   -1,
		Units:      "kilometers",
	}
}

func (p Point) String() string {
	return fmt.Sprintf("%s (%f,%f) alt %.2f km", p.Name, p.Latitude, p.Longitude, p.Altitude)
}
