// Package bus is the in-process publish/subscribe seam between the quote
// wizard and page-level components. It replaces the ambient window globals of
// the original site (a CustomEvent for progress broadcasts and a global
// openServiceModal hook) with typed payloads and explicit subscription.
package bus

import "sync"

// ProgressEvent is broadcast every time the wizard completes a new step.
// Achievement is empty unless this completion unlocked a new label.
type ProgressEvent struct {
	Progress    float64
	Achievement string
}

// ServiceModalRequest asks whichever component owns the service modal to open
// it for the given service identifier.
type ServiceModalRequest struct {
	ServiceID string
}

type Bus struct {
	mu       sync.Mutex
	progress []func(ProgressEvent)
	modal    []func(ServiceModalRequest)
}

func New() *Bus {
	return &Bus{}
}

func (b *Bus) SubscribeProgress(fn func(ProgressEvent)) {
	b.mu.Lock()
	defer b.mu.Unlock()
	b.progress = append(b.progress, fn)
}

func (b *Bus) PublishProgress(ev ProgressEvent) {
	b.mu.Lock()
	subs := make([]func(ProgressEvent), len(b.progress))
	copy(subs, b.progress)
	b.mu.Unlock()

	for _, fn := range subs {
		fn(ev)
	}
}

func (b *Bus) SubscribeServiceModal(fn func(ServiceModalRequest)) {
	b.mu.Lock()
	defer b.mu.Unlock()
	b.modal = append(b.modal, fn)
}

func (b *Bus) RequestServiceModal(serviceID string) {
	b.mu.Lock()
	subs := make([]func(ServiceModalRequest), len(b.modal))
	copy(subs, b.modal)
	b.mu.Unlock()

	for _, fn := range subs {
		fn(ServiceModalRequest{ServiceID: serviceID})
	}
}
