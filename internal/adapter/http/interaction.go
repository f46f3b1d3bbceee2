package http

import (
	"context"
	"sync"
)

type interactionKey struct{}

// interaction collects what the stores asked of the browser during one
// request: a redirect, and whether a confirmation prompt was shown.
type interaction struct {
	mu        sync.Mutex
	confirmed bool
	redirect  string
	prompt    string
}

func withInteraction(ctx context.Context, confirmed bool) (context.Context, *interaction) {
	in := &interaction{confirmed: confirmed}
	return context.WithValue(ctx, interactionKey{}, in), in
}

func interactionFrom(ctx context.Context) *interaction {
	in, _ := ctx.Value(interactionKey{}).(*interaction)
	return in
}

func (in *interaction) Redirect() string {
	in.mu.Lock()
	defer in.mu.Unlock()
	return in.redirect
}

// Unconfirmed returns the prompt that was declined because the request did
// not carry a confirmation.
func (in *interaction) Unconfirmed() string {
	in.mu.Lock()
	defer in.mu.Unlock()
	if in.confirmed {
		return ""
	}
	return in.prompt
}

// Navigator records the redirect on the current request. Stores hold one
// instance for the whole session.
type Navigator struct{}

func (Navigator) Navigate(ctx context.Context, path string) {
	if in := interactionFrom(ctx); in != nil {
		in.mu.Lock()
		in.redirect = path
		in.mu.Unlock()
	}
}

// Confirmer answers yes only when the request was sent with confirm=true.
// Otherwise the prompt is returned to the browser, which repeats the call.
type Confirmer struct{}

func (Confirmer) Confirm(ctx context.Context, prompt string) bool {
	in := interactionFrom(ctx)
	if in == nil {
		return false
	}
	in.mu.Lock()
	defer in.mu.Unlock()
	in.prompt = prompt
	return in.confirmed
}
