package flow

// Reduce is the pure transition function of the login screen: it maps the
// current model and one event to the next model and the set of effects to
// run. It performs no I/O, never blocks and never mutates its input.
//
// The function is total by construction: any (phase, event) pair not listed
// in the transition table falls through to the identity result, so stray UI
// input (e.g. edits while a request is in flight) cannot corrupt the model.
// That fallback also guarantees at most one login request is in flight at a
// time: LoginButtonTapped is ignored while already performing a login.
//
// The only transition that requests an effect is LoggedOut+LoginButtonTapped,
// which moves to PerformingLogin and requests exactly one [LoginRequest]
// carrying the credentials at that instant.
func Reduce(model StateModel, event Event) (StateModel, EffectSet) {
	switch model.Phase.Kind {
	case KindLoggedOut:
		switch ev := event.(type) {
		case PasswordToggled:
			model.IsPasswordHidden = !model.IsPasswordHidden
			return model, nil
		case UsernameChanged:
			model.Credentials.Username = ev.Value
			return model, nil
		case PasswordChanged:
			model.Credentials.Password = ev.Value
			return model, nil
		case LoginButtonTapped:
			model.Phase = PerformingLogin()
			return model, Effects(LoginRequest{Credentials: model.Credentials})
		}

	case KindPerformingLogin:
		switch ev := event.(type) {
		case LoginRequestSucceeded:
			model.Phase = LoggedIn(ev.User)
			return model, nil
		case LoginRequestFailed:
			model.Phase = LoginFailed(ev.Err)
			return model, nil
		}

	case KindLoginFailed:
		if _, ok := event.(ErrorMessageDismissed); ok {
			// back to the editable form, credentials preserved
			model.Phase = LoggedOut()
			return model, nil
		}
	}

	return model, nil
}
