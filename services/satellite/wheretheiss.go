package satellite

import (
	"context"
	"fmt"
	"io"
	"net/http"
	"strings"
	"time"

	"github.com/DIMO-Network/iss-distance/services/geo"
	"github.com/tidwall/gjson"
)

const (
	defaultWhereTheISSURL = "https://api.wheretheiss.at"
	maxResponseBytes      = 1 << 20
	milesToKm             = 1.60934
)

// WhereTheISS fetches live positions from the wheretheiss.at REST API.
type WhereTheISS struct {
	baseURL    string
	id         int
	httpClient *http.Client
}

// NewWhereTheISS creates a client for the satellite with the given NORAD id.
func NewWhereTheISS(baseURL string, id int) *WhereTheISS {
	if baseURL == "" {
		baseURL = defaultWhereTheISSURL
	}
	return &WhereTheISS{
		baseURL: strings.TrimRight(baseURL, "/"),
		id:      id,
		httpClient: &http.Client{
			Timeout: 30 * time.Second,
		},
	}
}

func (c *WhereTheISS) Name() string {
	return "wheretheiss"
}

// URL returns the endpoint queried by Position.
func (c *WhereTheISS) URL() string {
	return fmt.Sprintf("%s/v1/satellites/%d?units=kilometers", c.baseURL, c.id)
}

// Position performs an HTTP GET for the current satellite record.
func (c *WhereTheISS) Position(ctx context.Context) (geo.Point, error) {
	url := c.URL()
	req, err := http.NewRequestWithContext(ctx, http.MethodGet, url, nil)
	if err != nil {
		return geo.Point{}, fmt.Errorf("creating request: %w", err)
	}

	resp, err := c.httpClient.Do(req)
	if err != nil {
		return geo.Point{}, &UpstreamError{URL: url, Err: err}
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusOK {
		return geo.Point{}, &UpstreamError{URL: url, StatusCode: resp.StatusCode}
	}

	body, err := io.ReadAll(io.LimitReader(resp.Body, maxResponseBytes))
	if err != nil {
		return geo.Point{}, &UpstreamError{URL: url, Err: fmt.Errorf("reading response body: %w", err)}
	}

	p, err := parseSatellite(body)
	if err != nil {
		return geo.Point{}, &UpstreamError{URL: url, Err: err}
	}
	return p, nil
}

func parseSatellite(body []byte) (geo.Point, error) {
	if !gjson.ValidBytes(body) {
		return geo.Point{}, fmt.Errorf("malformed satellite record")
	}
	res := gjson.ParseBytes(body)

	for _, field := range []string{"latitude", "longitude", "altitude"} {
		if res.Get(field).Type != gjson.Number {
			return geo.Point{}, fmt.Errorf("satellite record has no numeric %s", field)
		}
	}

	p := geo.Point{
		Name:       res.Get("name").String(),
		ID:         int(res.Get("id").Int()),
		Latitude:   res.Get("latitude").Float(),
		Longitude:  res.Get("longitude").Float(),
		Altitude:   res.Get("altitude").Float(),
		Velocity:   res.Get("velocity").Float(),
		Visibility: res.Get("visibility").String(),
		Footprint:  res.Get("footprint").Float(),
		Timestamp:  res.Get("timestamp").Int(),
		DayNum:     res.Get("daynum").Float(),
		SolarLat:   res.Get("solar_lat").Float(),
		SolarLon:   res.Get("solar_lon").Float(),
		Units:      res.Get("units").String(),
	}

	// Distances are computed in kilometers.
	if p.Units == "miles" {
		p.Altitude *= milesToKm
		p.Velocity *= milesToKm
		p.Footprint *= milesToKm
		p.Units = "kilometers"
	}
	return p, nil
}
