package flow

// ViewModel is the read-only projection of [StateModel] consumed by the
// rendering layer. It has no stored identity: it is recomputed from every
// snapshot and is safe to discard.
type ViewModel struct {
	// IsSpinning is true while a login request is in flight.
	IsSpinning bool

	// IsLoginButtonEnabled is true when the credentials validate and no
	// request is in flight.
	IsLoginButtonEnabled bool

	// IsPasswordHidden mirrors the masked-echo toggle.
	IsPasswordHidden bool

	// Phase is the current lifecycle phase, carried through for rendering
	// the success and failure surfaces.
	Phase Phase
}

// Project derives the [ViewModel] for a model snapshot.
func Project(model StateModel) ViewModel {
	performing := model.Phase.Kind == KindPerformingLogin

	return ViewModel{
		IsSpinning:           performing,
		IsLoginButtonEnabled: model.Credentials.Valid() && !performing,
		IsPasswordHidden:     model.IsPasswordHidden,
		Phase:                model.Phase,
	}
}
