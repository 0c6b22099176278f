package bus

import (
	"sync"
	"testing"
)

func TestProgressFanOut(t *testing.T) {
	b := New()

	var first, second []ProgressEvent
	b.SubscribeProgress(func(ev ProgressEvent) { first = append(first, ev) })
	b.SubscribeProgress(func(ev ProgressEvent) { second = append(second, ev) })

	b.PublishProgress(ProgressEvent{Progress: 50, Achievement: "Intermédiaire"})

	if len(first) != 1 || len(second) != 1 {
		t.Fatalf("expected both subscribers notified, got %d and %d", len(first), len(second))
	}
	if first[0].Progress != 50 || first[0].Achievement != "Intermédiaire" {
		t.Fatalf("unexpected event: %+v", first[0])
	}
}

func TestPublishWithoutSubscribers(t *testing.T) {
	b := New()
	b.PublishProgress(ProgressEvent{Progress: 100})
	b.RequestServiceModal("packing")
}

func TestServiceModalRequest(t *testing.T) {
	b := New()

	var got []string
	b.SubscribeServiceModal(func(req ServiceModalRequest) { got = append(got, req.ServiceID) })

	b.RequestServiceModal("storage")
	b.RequestServiceModal("packing")

	if len(got) != 2 || got[0] != "storage" || got[1] != "packing" {
		t.Fatalf("unexpected requests: %v", got)
	}
}

func TestConcurrentSubscribeAndPublish(t *testing.T) {
	b := New()

	var mu sync.Mutex
	count := 0

	var wg sync.WaitGroup
	for i := 0; i < 10; i++ {
		wg.Add(2)
		go func() {
			defer wg.Done()
			b.SubscribeProgress(func(ProgressEvent) {
				mu.Lock()
				count++
				mu.Unlock()
			})
		}()
		go func() {
			defer wg.Done()
			b.PublishProgress(ProgressEvent{Progress: 10})
		}()
	}
	wg.Wait()

	b.PublishProgress(ProgressEvent{Progress: 20})

	mu.Lock()
	defer mu.Unlock()
	if count < 10 {
		t.Fatalf("expected at least one delivery per subscriber, got %d", count)
	}
}
