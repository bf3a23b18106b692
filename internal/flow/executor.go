package flow

import (
	"context"
	"fmt"
	"time"

	"github.com/MKhiriev/go-login-flow/internal/logger"
	"github.com/MKhiriev/go-login-flow/models"
)

// DefaultResultDelay is the smoothing delay applied before an effect result
// becomes observable. It keeps the spinner from flickering on fast networks.
const DefaultResultDelay = time.Second

// LoginAPI is the network collaborator performing the actual login call.
// It returns an explicit success/failure sum: a populated user or a non-nil
// *APIError, never both. Transport failures must be mapped to an APIError by
// the implementation, so no unclassified error shape can reach the reducer
// boundary.
type LoginAPI interface {
	LoginUser(ctx context.Context, creds models.Credentials) (models.User, *models.APIError)
}

// Executor turns [Effect] requests into asynchronous units of work. Each
// triggered effect emits at most one [FeedbackEvent] and completes; results
// are delayed by the configured smoothing interval regardless of outcome.
//
// The login capability is injected at construction. Executors hold no
// mutable state and are safe for concurrent use.
type Executor struct {
	api   LoginAPI
	delay time.Duration
	log   *logger.Logger
}

// NewExecutor constructs an [Executor] around the given login capability.
// A non-positive delay falls back to [DefaultResultDelay].
func NewExecutor(api LoginAPI, delay time.Duration, log *logger.Logger) *Executor {
	if delay <= 0 {
		delay = DefaultResultDelay
	}

	return &Executor{api: api, delay: delay, log: log}
}

// Trigger begins asynchronous execution of effect and returns the channel
// its resulting feedback event will be delivered on. The channel carries
// zero or one event and is closed when the effect settles or ctx is
// cancelled. Trigger never blocks the caller.
//
// An effect type outside the closed union is a programming error and panics.
func (x *Executor) Trigger(ctx context.Context, effect Effect) <-chan Event {
	out := make(chan Event, 1)

	switch eff := effect.(type) {
	case LoginRequest:
		go x.runLoginRequest(ctx, eff, out)
	default:
		panic(fmt.Sprintf("flow: unknown effect type %T", effect))
	}

	return out
}

func (x *Executor) runLoginRequest(ctx context.Context, eff LoginRequest, out chan<- Event) {
	defer close(out)

	start := time.Now()
	user, apiErr := x.api.LoginUser(ctx, eff.Credentials)

	// The result must not surface earlier than the smoothing delay after
	// the call settles, success and failure alike.
	select {
	case <-time.After(x.delay):
	case <-ctx.Done():
		x.log.Debug().Str("username", eff.Credentials.Username).Msg("login request abandoned: context cancelled")
		return
	}

	if apiErr != nil {
		x.log.Info().
			Str("username", eff.Credentials.Username).
			Str("code", string(apiErr.Code)).
			Dur("duration", time.Since(start)).
			Msg("login request failed")
		out <- LoginRequestFailed{Err: *apiErr}
		return
	}

	x.log.Info().
		Str("username", eff.Credentials.Username).
		Str("user_id", user.UserID).
		Dur("duration", time.Since(start)).
		Msg("login request succeeded")
	out <- LoginRequestSucceeded{User: user}
}
