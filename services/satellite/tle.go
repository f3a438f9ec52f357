package satellite

import (
	"bufio"
	"bytes"
	"context"
	"fmt"
	"io"
	"math"
	"net/http"
	"strconv"
	"strings"
	"time"

	"github.com/DIMO-Network/iss-distance/services/geo"
	satellite "github.com/joshuaferrara/go-satellite"
)

const celestrakURLFormat = "https://celestrak.org/NORAD/elements/gp.php?CATNR=%d&FORMAT=tle"

// TLEEntry is one satellite's two-line element set.
type TLEEntry struct {
	NoradID int
	Name    string
	Line1   string
	Line2   string
}

// TLE computes satellite positions locally by propagating a two-line element
// set fetched from a catalog such as CelesTrak.
type TLE struct {
	sourceURL  string
	now        func() time.Time
	httpClient *http.Client
}

// NewTLE creates a TLE source. now supplies the propagation time.
func NewTLE(sourceURL string, now func() time.Time) *TLE {
	if sourceURL == "" {
		sourceURL = fmt.Sprintf(celestrakURLFormat, ISSNoradID)
	}
	if now == nil {
		now = time.Now
	}
	return &TLE{
		sourceURL: sourceURL,
		now:       now,
		httpClient: &http.Client{
			Timeout: 30 * time.Second,
		},
	}
}

func (t *TLE) Name() string {
	return "tle"
}

// SourceURL returns the configured source URL.
func (t *TLE) SourceURL() string {
	return t.sourceURL
}

// Position fetches the element set and propagates it to the current time.
func (t *TLE) Position(ctx context.Context) (geo.Point, error) {
	data, err := t.fetch(ctx)
	if err != nil {
		return geo.Point{}, err
	}

	entry, err := ParseTLE(bytes.NewReader(data))
	if err != nil {
		return geo.Point{}, &UpstreamError{URL: t.sourceURL, Err: err}
	}

	p, err := Propagate(entry, t.now())
	if err != nil {
		return geo.Point{}, &UpstreamError{URL: t.sourceURL, Err: err}
	}
	return p, nil
}

func (t *TLE) fetch(ctx context.Context) ([]byte, error) {
	req, err := http.NewRequestWithContext(ctx, http.MethodGet, t.sourceURL, nil)
	if err != nil {
		return nil, fmt.Errorf("creating request: %w", err)
	}

	resp, err := t.httpClient.Do(req)
	if err != nil {
		return nil, &UpstreamError{URL: t.sourceURL, Err: err}
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusOK {
		return nil, &UpstreamError{URL: t.sourceURL, StatusCode: resp.StatusCode}
	}

	body, err := io.ReadAll(io.LimitReader(resp.Body, maxResponseBytes))
	if err != nil {
		return nil, &UpstreamError{URL: t.sourceURL, Err: fmt.Errorf("reading response body: %w", err)}
	}
	return body, nil
}

// ParseTLE returns the first element set in r. The name line is optional.
func ParseTLE(r io.Reader) (TLEEntry, error) {
	scanner := bufio.NewScanner(r)
	var lines []string
	for scanner.Scan() {
		line := strings.TrimRight(scanner.Text(), "\r\n ")
		if line != "" {
			lines = append(lines, line)
		}
	}
	if err := scanner.Err(); err != nil {
		return TLEEntry{}, fmt.Errorf("reading TLE data: %w", err)
	}

	for i := 0; i+1 < len(lines); i++ {
		if !strings.HasPrefix(lines[i], "1 ") || !strings.HasPrefix(lines[i+1], "2 ") {
			continue
		}
		line1, line2 := lines[i], lines[i+1]
		if len(line1) < 69 || len(line2) < 69 {
			return TLEEntry{}, fmt.Errorf("short TLE lines")
		}

		id, err := strconv.Atoi(strings.TrimSpace(line1[2:7]))
		if err != nil {
			return TLEEntry{}, fmt.Errorf("invalid NORAD id %q: %w", line1[2:7], err)
		}

		var name string
		if i > 0 {
			name = strings.TrimSpace(strings.TrimPrefix(lines[i-1], "0 "))
		}
		return TLEEntry{NoradID: id, Name: name, Line1: line1, Line2: line2}, nil
	}
	return TLEEntry{}, fmt.Errorf("no TLE entry found")
}

// Propagate runs SGP4 for entry at the given time and returns the sub-satellite
// point with the altitude above the WGS-84 ellipsoid in kilometers.
func Propagate(entry TLEEntry, at time.Time) (p geo.Point, err error) {
	defer func() {
		if r := recover(); r != nil {
			err = fmt.Errorf("propagating NORAD %d: %v", entry.NoradID, r)
		}
	}()

	sat := satellite.TLEToSat(entry.Line1, entry.Line2, satellite.GravityWGS84)
	if sat.Error != 0 {
		return geo.Point{}, fmt.Errorf("initializing NORAD %d: %s", entry.NoradID, sat.ErrorStr)
	}

	at = at.UTC()
	year, month, day := at.Date()
	hour, min, sec := at.Clock()

	posECI, velECI := satellite.Propagate(sat, year, int(month), day, hour, min, sec)

	jd := satellite.JDay(year, int(month), day, hour, min, sec)
	gmst := satellite.ThetaG_JD(jd)
	alt, _, llRad := satellite.ECIToLLA(posECI, gmst)
	if math.IsNaN(alt) {
		return geo.Point{}, fmt.Errorf("propagating NORAD %d: orbit decayed or diverged", entry.NoradID)
	}
	ll := satellite.LatLongDeg(llRad)

	speed := math.Sqrt(velECI.X*velECI.X + velECI.Y*velECI.Y + velECI.Z*velECI.Z)

	return geo.Point{
		Name:      entry.Name,
		ID:        entry.NoradID,
		Latitude:  ll.Latitude,
		Longitude: ll.Longitude,
		Altitude:  alt,
		Velocity:  speed * 3600,
		Timestamp: at.Unix(),
		Units:     "kilometers",
	}, nil
}
