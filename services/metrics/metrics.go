package metrics

import (
	"time"

	"github.com/prometheus/client_golang/prometheus"
)

// Acquisition outcomes.
const (
	OutcomeAcquired    = "acquired"
	OutcomeUnavailable = "capability_unavailable"
	OutcomeFailed      = "failed"
	OutcomeAborted     = "aborted"
)

var (
	positionAcquisitionsTotal = prometheus.NewCounterVec(
		prometheus.CounterOpts{
			Name: "iss_position_acquisitions_total",
			Help: "User position acquisitions by outcome.",
		},
		[]string{"outcome"},
	)

	satelliteFetchDurationSeconds = prometheus.NewHistogramVec(
		prometheus.HistogramOpts{
			Name:    "iss_satellite_fetch_duration_seconds",
			Help:    "Satellite position fetch duration in seconds.",
			Buckets: []float64{0.05, 0.1, 0.25, 0.5, 1, 2, 5, 10, 30},
		},
		[]string{"source", "result"},
	)

	distanceKilometers = prometheus.NewGauge(
		prometheus.GaugeOpts{
			Name: "iss_distance_kilometers",
			Help: "Last computed distance between the user and the satellite.",
		},
	)

	unitTogglesTotal = prometheus.NewCounterVec(
		prometheus.CounterOpts{
			Name: "iss_unit_toggles_total",
			Help: "Unit toggles by target unit.",
		},
		[]string{"unit"},
	)
)

func init() {
	prometheus.MustRegister(positionAcquisitionsTotal)
	prometheus.MustRegister(satelliteFetchDurationSeconds)
	prometheus.MustRegister(distanceKilometers)
	prometheus.MustRegister(unitTogglesTotal)
}

// ObserveAcquisition counts one settled or aborted position acquisition.
func ObserveAcquisition(outcome string) {
	positionAcquisitionsTotal.WithLabelValues(outcome).Inc()
}

// ObserveSatelliteFetch records how long fetching the satellite took.
func ObserveSatelliteFetch(source string, d time.Duration, err error) {
	result := "ok"
	if err != nil {
		result = "error"
	}
	satelliteFetchDurationSeconds.WithLabelValues(source, result).Observe(d.Seconds())
}

// SetDistance publishes the computed distance in kilometers.
func SetDistance(km float64) {
	distanceKilometers.Set(km)
}

// ObserveUnitToggle counts a unit change.
func ObserveUnitToggle(unit string) {
	unitTogglesTotal.WithLabelValues(unit).Inc()
}
