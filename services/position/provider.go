package position

import (
	"context"
	"errors"
	"sync"

	"github.com/DIMO-Network/iss-distance/services/geo"
	"github.com/rs/zerolog"
)

// Coordinates is a raw reading from a Locator, in degrees.
type Coordinates struct {
	Latitude  float64
	Longitude float64
}

// Locator is an environment capability that can report where the user is.
// Implementations call exactly one of the callbacks, possibly from another
// goroutine.
type Locator interface {
	CurrentPosition(ctx context.Context, onSuccess func(Coordinates), onError func(error))
}

// LocatorFunc adapts a function to the Locator interface.
type LocatorFunc func(ctx context.Context, onSuccess func(Coordinates), onError func(error))

func (f LocatorFunc) CurrentPosition(ctx context.Context, onSuccess func(Coordinates), onError func(error)) {
	f(ctx, onSuccess, onError)
}

// Provider acquires the user's position once. Every Acquire call shares the
// outcome of the first one; nothing is retried.
type Provider struct {
	locator Locator
	logger  *zerolog.Logger

	once   sync.Once
	future *Future[geo.Point]
}

// NewProvider returns a Provider backed by locator. A nil locator means the
// environment cannot locate the user.
func NewProvider(locator Locator, logger *zerolog.Logger) *Provider {
	return &Provider{
		locator: locator,
		logger:  logger,
		future:  NewFuture[geo.Point](),
	}
}

// Acquire blocks until the position is known, the environment reports an
// error, or ctx is done. ctx only bounds the wait: the acquisition keeps
// running and a later call still gets its outcome.
func (p *Provider) Acquire(ctx context.Context) (geo.Point, error) {
	p.once.Do(func() { p.start(context.WithoutCancel(ctx)) })
	return p.future.Wait(ctx)
}

// Settled is closed once the acquisition has resolved or failed.
func (p *Provider) Settled() <-chan struct{} {
	return p.future.Done()
}

func (p *Provider) start(ctx context.Context) {
	if p.locator == nil {
		p.logger.Error().Err(ErrCapabilityUnavailable).Msg("Geolocation is not supported.")
		p.future.Reject(ErrCapabilityUnavailable)
		return
	}

	onSuccess := func(c Coordinates) {
		if p.future.Resolve(geo.UserPoint(c.Latitude, c.Longitude)) {
			p.logger.Debug().Float64("latitude", c.Latitude).Float64("longitude", c.Longitude).Msg("User position acquired.")
		}
	}
	onError := func(err error) {
		err = asAcquisitionError(err)
		if p.future.Reject(err) {
			p.logger.Error().Err(err).Msg("Error getting location.")
		}
	}

	go p.locator.CurrentPosition(ctx, onSuccess, onError)
}

func asAcquisitionError(err error) error {
	var acqErr *AcquisitionError
	switch {
	case err == nil:
		return &AcquisitionError{Reason: ReasonUnavailable}
	case errors.As(err, &acqErr):
		return err
	case errors.Is(err, context.DeadlineExceeded):
		return &AcquisitionError{Reason: ReasonTimeout, Message: err.Error(), Err: err}
	default:
		return &AcquisitionError{Reason: ReasonUnavailable, Message: err.Error(), Err: err}
	}
}
