package position

import (
	"context"
	"errors"
	"fmt"
	"io"
	"net"
	"net/http"
	"strconv"
	"strings"
	"time"

	"github.com/tidwall/gjson"
)

const (
	defaultIPLookupURL = "https://ipinfo.io/json"
	maxLookupBytes     = 64 << 10
)

// IPLocator locates the user by geolocating their public IP address. It
// understands the ipinfo.io, ip-api.com and ipapi.co response shapes.
type IPLocator struct {
	lookupURL  string
	httpClient *http.Client
}

// NewIPLocator creates an IPLocator for the given lookup URL.
func NewIPLocator(lookupURL string, timeout time.Duration) *IPLocator {
	if lookupURL == "" {
		lookupURL = defaultIPLookupURL
	}
	if timeout <= 0 {
		timeout = 10 * time.Second
	}
	return &IPLocator{
		lookupURL: lookupURL,
		httpClient: &http.Client{
			Timeout: timeout,
		},
	}
}

// LookupURL returns the configured lookup URL.
func (l *IPLocator) LookupURL() string {
	return l.lookupURL
}

func (l *IPLocator) CurrentPosition(ctx context.Context, onSuccess func(Coordinates), onError func(error)) {
	c, err := l.lookup(ctx)
	if err != nil {
		onError(err)
		return
	}
	onSuccess(c)
}

func (l *IPLocator) lookup(ctx context.Context) (Coordinates, error) {
	req, err := http.NewRequestWithContext(ctx, http.MethodGet, l.lookupURL, nil)
	if err != nil {
		return Coordinates{}, fmt.Errorf("creating request: %w", err)
	}
	req.Header.Set("Accept", "application/json")

	resp, err := l.httpClient.Do(req)
	if err != nil {
		var netErr net.Error
		if errors.As(err, &netErr) && netErr.Timeout() {
			return Coordinates{}, &AcquisitionError{Reason: ReasonTimeout, Message: err.Error(), Err: err}
		}
		return Coordinates{}, &AcquisitionError{Reason: ReasonUnavailable, Message: err.Error(), Err: err}
	}
	defer resp.Body.Close()

	switch {
	case resp.StatusCode == http.StatusUnauthorized || resp.StatusCode == http.StatusForbidden:
		return Coordinates{}, &AcquisitionError{Reason: ReasonDenied, Message: fmt.Sprintf("status code %d from %s", resp.StatusCode, l.lookupURL)}
	case resp.StatusCode != http.StatusOK:
		return Coordinates{}, &AcquisitionError{Reason: ReasonUnavailable, Message: fmt.Sprintf("unexpected status code %d from %s", resp.StatusCode, l.lookupURL)}
	}

	body, err := io.ReadAll(io.LimitReader(resp.Body, maxLookupBytes))
	if err != nil {
		return Coordinates{}, &AcquisitionError{Reason: ReasonUnavailable, Message: fmt.Sprintf("reading response body: %v", err), Err: err}
	}

	return parseLocation(body)
}

func parseLocation(body []byte) (Coordinates, error) {
	if !gjson.ValidBytes(body) {
		return Coordinates{}, &AcquisitionError{Reason: ReasonUnavailable, Message: "malformed geolocation response"}
	}
	res := gjson.ParseBytes(body)

	// ip-api.com
	if status := res.Get("status"); status.Exists() && status.String() != "success" {
		return Coordinates{}, &AcquisitionError{Reason: ReasonUnavailable, Message: res.Get("message").String()}
	}

	// ipinfo.io reports "lat,lon" in a single field.
	if loc := res.Get("loc"); loc.Exists() {
		latStr, lonStr, ok := strings.Cut(loc.String(), ",")
		if !ok {
			return Coordinates{}, &AcquisitionError{Reason: ReasonUnavailable, Message: fmt.Sprintf("invalid loc %q", loc.String())}
		}
		lat, err1 := strconv.ParseFloat(strings.TrimSpace(latStr), 64)
		lon, err2 := strconv.ParseFloat(strings.TrimSpace(lonStr), 64)
		if err := errors.Join(err1, err2); err != nil {
			return Coordinates{}, &AcquisitionError{Reason: ReasonUnavailable, Message: fmt.Sprintf("invalid loc %q", loc.String()), Err: err}
		}
		return Coordinates{Latitude: lat, Longitude: lon}, nil
	}

	lat := firstNumber(res, "lat", "latitude")
	lon := firstNumber(res, "lon", "longitude")
	if !lat.Exists() || !lon.Exists() {
		return Coordinates{}, &AcquisitionError{Reason: ReasonUnavailable, Message: "no coordinates in geolocation response"}
	}
	return Coordinates{Latitude: lat.Float(), Longitude: lon.Float()}, nil
}

func firstNumber(res gjson.Result, paths ...string) gjson.Result {
	for _, p := range paths {
		if v := res.Get(p); v.Type == gjson.Number {
			return v
		}
	}
	return gjson.Result{}
}
