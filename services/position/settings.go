package position

import (
	"fmt"
	"strings"
	"time"

	"github.com/DIMO-Network/iss-distance/internal/config"
)

// LocatorFromSettings picks the environment capability named by GEOLOCATION.
// "none" yields a nil Locator, which the Provider reports as
// ErrCapabilityUnavailable.
func LocatorFromSettings(s *config.Settings) (Locator, error) {
	switch strings.ToLower(strings.TrimSpace(s.Geolocation)) {
	case "", "ip":
		return NewIPLocator(s.GeolocationURL, time.Duration(s.GeolocationWait)*time.Second), nil
	case "static":
		return StaticLocator{Coordinates: Coordinates{Latitude: s.UserLatitude, Longitude: s.UserLongitude}}, nil
	case "none":
		return nil, nil
	}
	return nil, fmt.Errorf("unknown geolocation capability %q", s.Geolocation)
}
