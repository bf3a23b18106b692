package flow

import "github.com/MKhiriev/go-login-flow/models"

// Effect is a description of a side-effecting operation requested by the
// reducer. Effects are requests, not actions already taken: the [Store] owns
// execution and feeds each result back as a [FeedbackEvent].
//
// All variants are comparable value types so they can be set members.
type Effect interface {
	isEffect()
}

// LoginRequest asks the executor to call the login API with the credentials
// captured at the moment the button was tapped.
type LoginRequest struct {
	Credentials models.Credentials
}

func (LoginRequest) isEffect() {}

// EffectSet is the collection of effects requested by a single reduction.
// It is a set, not a queue: duplicate simultaneous requests collapse, which
// matters because the loop may re-invoke the reducer before prior effects
// settle.
type EffectSet map[Effect]struct{}

// Effects builds an [EffectSet] from its arguments. Effects(nil...) and
// Effects() both return an empty set.
func Effects(effects ...Effect) EffectSet {
	set := make(EffectSet, len(effects))
	for _, e := range effects {
		set[e] = struct{}{}
	}

	return set
}

// Contains reports whether e is a member of the set.
func (s EffectSet) Contains(e Effect) bool {
	_, ok := s[e]
	return ok
}
