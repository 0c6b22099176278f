package wizard

import (
	"context"
	"errors"
	"strings"
	"testing"

	"monauxiliaire/internal/domain/entities"
	"monauxiliaire/pkg/bus"
)

type stubSubmitter struct {
	calls int
	fail  bool
	got   entities.Quote
}

func (s *stubSubmitter) SubmitQuote(_ context.Context, q entities.Quote) (entities.Quote, error) {
	s.calls++
	s.got = q
	if s.fail {
		return entities.Quote{}, errors.New("submit failed")
	}
	q.ID = 42
	q.Status = entities.QuoteStatusPending
	return q, nil
}

func completeContactStep(w *Wizard) {
	w.UpdateDraft(Patch{
		FirstName: String("Ali"),
		LastName:  String("K"),
		Email:     String("a@b.com"),
		Phone:     String("0600000000"),
	})
}

func TestWizard_OpenAndClose(t *testing.T) {
	w := New(Config{Submitter: &stubSubmitter{}})

	if w.CurrentStep() != Closed {
		t.Fatalf("expected closed, got %d", w.CurrentStep())
	}

	t.Run("open out of range is ignored", func(t *testing.T) {
		w.Open(-2)
		w.Open(StepCount)
		if w.CurrentStep() != Closed {
			t.Fatalf("expected closed, got %d", w.CurrentStep())
		}
	})

	t.Run("non-linear entry", func(t *testing.T) {
		w.Open(StepSchedule)
		if w.CurrentStep() != StepSchedule {
			t.Fatalf("expected step %d, got %d", StepSchedule, w.CurrentStep())
		}
	})

	t.Run("open while active is ignored", func(t *testing.T) {
		w.Open(StepHousing)
		if w.CurrentStep() != StepSchedule {
			t.Fatalf("expected step %d, got %d", StepSchedule, w.CurrentStep())
		}
	})

	t.Run("close keeps draft", func(t *testing.T) {
		w.UpdateDraft(Patch{FirstName: String("Ali")})
		w.Close()
		if w.CurrentStep() != Closed {
			t.Fatalf("expected closed, got %d", w.CurrentStep())
		}
		if w.Draft().FirstName != "Ali" {
			t.Fatalf("draft lost on close")
		}
	})
}

func TestWizard_IndexBounds(t *testing.T) {
	w := New(Config{Submitter: &stubSubmitter{}})
	w.Open(StepHousing)

	ctx := context.Background()
	// Arbitrary walk; the index must stay in [-1, StepCount-1].
	moves := []func(){
		func() { _ = w.Advance(ctx) },
		func() { w.Retreat() },
		func() { w.Retreat() },
		func() { _ = w.Advance(ctx) },
		func() { _ = w.Advance(ctx) },
		func() { w.Retreat() },
	}
	for i := 0; i < 50; i++ {
		moves[i%len(moves)]()
		if cur := w.CurrentStep(); cur < Closed || cur >= StepCount {
			t.Fatalf("step index out of bounds: %d", cur)
		}
	}
}

func TestWizard_RetreatAtZeroIsNoOp(t *testing.T) {
	w := New(Config{Submitter: &stubSubmitter{}})
	w.Open(0)
	w.Retreat()
	if w.CurrentStep() != 0 {
		t.Fatalf("expected step 0, got %d", w.CurrentStep())
	}
}

func TestWizard_CompletedCountMonotone(t *testing.T) {
	w := New(Config{Submitter: &stubSubmitter{}})
	w.Open(0)

	ctx := context.Background()
	last := 0
	for i := 0; i < 4; i++ {
		if err := w.Advance(ctx); err != nil {
			t.Fatalf("advance: %v", err)
		}
		if w.CompletedCount() < last {
			t.Fatalf("completed count decreased: %d -> %d", last, w.CompletedCount())
		}
		last = w.CompletedCount()
	}

	// Walking back and re-advancing must not shrink or double-count.
	w.Retreat()
	w.Retreat()
	before := w.CompletedCount()
	_ = w.Advance(ctx)
	_ = w.Advance(ctx)
	if w.CompletedCount() != before {
		t.Fatalf("re-completing steps changed count: %d -> %d", before, w.CompletedCount())
	}
}

func TestWizard_AchievementsUnlockOnce(t *testing.T) {
	var events []bus.ProgressEvent
	b := bus.New()
	b.SubscribeProgress(func(ev bus.ProgressEvent) { events = append(events, ev) })

	sub := &stubSubmitter{}
	w := New(Config{Submitter: sub, Bus: b})
	completeContactStep(w)
	w.Open(0)

	ctx := context.Background()
	for i := 0; i < 6; i++ {
		if err := w.Advance(ctx); err != nil {
			t.Fatalf("advance %d: %v", i, err)
		}
	}

	got := w.Achievements()
	want := []string{"Débutant", "Intermédiaire", "Expert"}
	if len(got) != len(want) {
		t.Fatalf("expected %v, got %v", want, got)
	}
	for i := range want {
		if got[i] != want[i] {
			t.Fatalf("expected %v, got %v", want, got)
		}
	}

	// Retreat/advance loops must not re-unlock or re-publish growth events.
	w.Retreat()
	w.Retreat()
	_ = w.Advance(ctx)
	_ = w.Advance(ctx)
	if len(w.Achievements()) != 3 {
		t.Fatalf("achievements re-unlocked: %v", w.Achievements())
	}

	unlocks := 0
	for _, ev := range events {
		if ev.Achievement != "" {
			unlocks++
		}
	}
	if unlocks != 3 {
		t.Fatalf("expected 3 unlock events, got %d", unlocks)
	}

	// Final advance submits; count reaches 7 of 7.
	if err := w.Advance(ctx); err != nil {
		t.Fatalf("submit: %v", err)
	}
	if !w.Submitted() {
		t.Fatalf("expected submitted state")
	}
	if w.CompletedCount() != StepCount {
		t.Fatalf("expected all steps completed, got %d", w.CompletedCount())
	}
	if sub.calls != 1 {
		t.Fatalf("expected one submission, got %d", sub.calls)
	}
}

func TestWizard_AnalyticsRefiresForCompletedSteps(t *testing.T) {
	type event struct{ name, label string }
	var events []event
	w := New(Config{
		Submitter: &stubSubmitter{},
		Track:     func(name, _, label string) { events = append(events, event{name, label}) },
	})
	w.Open(0)

	ctx := context.Background()
	_ = w.Advance(ctx)
	w.Retreat()
	_ = w.Advance(ctx)

	completions := 0
	for _, ev := range events {
		if ev.name == "quote_step_completed" && ev.label == "step_0" {
			completions++
		}
	}
	if completions != 2 {
		t.Fatalf("expected step_0 completion to fire twice, got %d", completions)
	}
	if w.CompletedCount() != 1 {
		t.Fatalf("expected one completed step, got %d", w.CompletedCount())
	}
}

func TestWizard_SubmitFailureStaysOnLastStep(t *testing.T) {
	sub := &stubSubmitter{fail: true}
	w := New(Config{Submitter: sub})
	completeContactStep(w)
	w.Open(StepContact)

	ctx := context.Background()
	if err := w.Advance(ctx); err == nil {
		t.Fatalf("expected submit error")
	}
	if w.CurrentStep() != StepContact {
		t.Fatalf("expected to remain on contact step, got %d", w.CurrentStep())
	}
	if w.Submitted() {
		t.Fatalf("must not be submitted after failure")
	}

	// Retry succeeds and closes the wizard.
	sub.fail = false
	if err := w.Advance(ctx); err != nil {
		t.Fatalf("retry: %v", err)
	}
	if !w.Submitted() || w.CurrentStep() != Closed {
		t.Fatalf("expected submitted+closed, got submitted=%v step=%d", w.Submitted(), w.CurrentStep())
	}
	if w.Draft().ID != 42 {
		t.Fatalf("expected persisted quote in draft, got id=%d", w.Draft().ID)
	}
	if sub.calls != 2 {
		t.Fatalf("expected two submit attempts, got %d", sub.calls)
	}
}

func TestWizard_FlatInventoryFlow(t *testing.T) {
	sub := &stubSubmitter{}
	w := New(Config{Submitter: sub})
	w.Open(StepHousing)

	ctx := context.Background()
	housing := entities.HousingApartment
	w.UpdateDraft(Patch{HousingType: &housing})
	_ = w.Advance(ctx)

	w.UpdateDraft(Patch{Surface: Int(NumberOrZero("80")), Floor: Int(NumberOrZero("2"))})
	_ = w.Advance(ctx)

	w.ToggleFurniture(entities.ItemSofa, true)
	w.ToggleFurniture(entities.ItemBed, true)
	w.ToggleFurniture(entities.ItemSofa, true) // duplicate toggle is a no-op
	_ = w.Advance(ctx)

	for w.CurrentStep() != StepContact {
		_ = w.Advance(ctx)
	}
	completeContactStep(w)
	if err := w.Advance(ctx); err != nil {
		t.Fatalf("submit: %v", err)
	}

	q := sub.got
	if q.HousingType != entities.HousingApartment || q.Surface != 80 || q.Floor != 2 {
		t.Fatalf("unexpected draft: %+v", q)
	}
	if len(q.FurnitureInventory) != 2 || q.FurnitureInventory[0] != entities.ItemSofa || q.FurnitureInventory[1] != entities.ItemBed {
		t.Fatalf("unexpected inventory: %v", q.FurnitureInventory)
	}
	if q.FirstName != "Ali" || q.Email != "a@b.com" {
		t.Fatalf("unexpected contact fields: %+v", q)
	}
}

func TestWizard_RoomInventorySubPhase(t *testing.T) {
	w := New(Config{Submitter: &stubSubmitter{}, RoomInventory: true})
	w.Open(StepInventory)

	ctx := context.Background()
	if w.SubPhase() != SubPhaseRooms {
		t.Fatalf("expected rooms sub-phase on entry, got %s", w.SubPhase())
	}

	t.Run("advance with zero rooms is blocked", func(t *testing.T) {
		_ = w.Advance(ctx)
		if w.CurrentStep() != StepInventory || w.SubPhase() != SubPhaseRooms {
			t.Fatalf("blocked advance changed state: step=%d phase=%s", w.CurrentStep(), w.SubPhase())
		}
		if w.CompletedCount() != 0 {
			t.Fatalf("blocked advance completed a step")
		}
	})

	t.Run("advance with rooms moves to items then outward", func(t *testing.T) {
		w.SetRoomQuantity(entities.RoomBedroom, 2)
		_ = w.Advance(ctx)
		if w.CurrentStep() != StepInventory || w.SubPhase() != SubPhaseItems {
			t.Fatalf("expected items sub-phase, got step=%d phase=%s", w.CurrentStep(), w.SubPhase())
		}

		w.SetItemQuantity(entities.RoomBedroom, entities.ItemBed, 2)
		_ = w.Advance(ctx)
		if w.CurrentStep() != StepAddresses {
			t.Fatalf("expected addresses step, got %d", w.CurrentStep())
		}
	})

	t.Run("retreat into inventory lands on items", func(t *testing.T) {
		w.Retreat()
		if w.CurrentStep() != StepInventory || w.SubPhase() != SubPhaseItems {
			t.Fatalf("expected items sub-phase, got step=%d phase=%s", w.CurrentStep(), w.SubPhase())
		}
	})

	t.Run("retreat from items returns to rooms at same step", func(t *testing.T) {
		w.Retreat()
		if w.CurrentStep() != StepInventory || w.SubPhase() != SubPhaseRooms {
			t.Fatalf("expected rooms sub-phase, got step=%d phase=%s", w.CurrentStep(), w.SubPhase())
		}
	})

	t.Run("item quantity on unselected room is ignored", func(t *testing.T) {
		w.SetItemQuantity(entities.RoomKitchen, entities.ItemFridge, 3)
		for _, line := range w.InventoryLines() {
			if strings.Contains(line.Label, "Cuisine") {
				t.Fatalf("unexpected kitchen line: %+v", line)
			}
		}
	})
}

func TestWizard_ClampingAtSetters(t *testing.T) {
	w := New(Config{Submitter: &stubSubmitter{}, RoomInventory: true})

	w.SetRoomQuantity(entities.RoomBedroom, 99)
	w.SetItemQuantity(entities.RoomBedroom, entities.ItemBoxes, 999)

	inv := w.Draft().RoomInventory
	if got := inv.Rooms[entities.RoomBedroom].Quantity; got != entities.MaxRoomQuantity {
		t.Fatalf("expected room quantity clamp to %d, got %d", entities.MaxRoomQuantity, got)
	}
	if got := inv.Rooms[entities.RoomBedroom].Items[entities.ItemBoxes]; got != entities.MaxRoomItemQuantity {
		t.Fatalf("expected item quantity clamp to %d, got %d", entities.MaxRoomItemQuantity, got)
	}

	w.SetRoomQuantity(entities.RoomBedroom, 0)
	if _, ok := inv.Rooms[entities.RoomBedroom]; ok {
		t.Fatalf("expected zero quantity to deselect the room")
	}
}

func TestNumberOrZero(t *testing.T) {
	cases := map[string]int{
		"":     0,
		"abc":  0,
		" 12 ": 12,
		"80":   80,
		"-3":   -3,
	}
	for in, want := range cases {
		if got := NumberOrZero(in); got != want {
			t.Fatalf("NumberOrZero(%q) = %d, want %d", in, got, want)
		}
	}
}

func TestWizard_PatchMergeLeavesOtherFields(t *testing.T) {
	w := New(Config{Submitter: &stubSubmitter{}})
	housing := entities.HousingVilla
	w.UpdateDraft(Patch{HousingType: &housing, Surface: Int(200)})
	w.UpdateDraft(Patch{FirstName: String("Ali")})

	d := w.Draft()
	if d.HousingType != entities.HousingVilla || d.Surface != 200 || d.FirstName != "Ali" {
		t.Fatalf("merge clobbered fields: %+v", d)
	}
	// Choosing villa never auto-adjusts room counts.
	if d.Bedrooms != 0 || d.LivingRooms != 0 {
		t.Fatalf("unexpected derived mutation: %+v", d)
	}
}
