package puzzlebox

import "log"

// Presenter shows response content to the player, typically as a popup.
type Presenter interface {
	Present(kind ContentKind, payload string)
}

// PresenterFunc adapts a function to the Presenter interface.
type PresenterFunc func(kind ContentKind, payload string)

// Present calls f(kind, payload).
func (f PresenterFunc) Present(kind ContentKind, payload string) {
	f(kind, payload)
}

// logPresenter is the default Presenter. It writes content to the scene log.
type logPresenter struct {
	logger *log.Logger
}

func (p logPresenter) Present(kind ContentKind, payload string) {
	p.logger.Printf("present %s: %s", kind, payload)
}
