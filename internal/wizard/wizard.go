// Package wizard drives the multi-step quote funnel: step sequencing, the
// nested room→item inventory sub-flow, draft accumulation, gamified progress
// signals and the final submission hand-off.
package wizard

import (
	"context"
	"fmt"
	"strconv"
	"strings"

	"monauxiliaire/internal/domain/entities"
	"monauxiliaire/pkg/bus"

	"github.com/google/uuid"
	"github.com/sirupsen/logrus"
)

// QuoteSubmitter is the wizard's only outbound port: hand the finished draft
// to whoever persists it.
type QuoteSubmitter interface {
	SubmitQuote(ctx context.Context, q entities.Quote) (entities.Quote, error)
}

// TrackFunc receives analytics events (event, category, label). A nil hook
// disables tracking.
type TrackFunc func(event, category, label string)

// SubPhase is the mode within the inventory step when the two-level
// room→item variant is active.
type SubPhase string

const (
	SubPhaseRooms SubPhase = "rooms"
	SubPhaseItems SubPhase = "items"
)

// Achievement labels, unlocked at completed-step-count thresholds.
const (
	achievementBeginner     = "Débutant"
	achievementIntermediate = "Intermédiaire"
	achievementExpert       = "Expert"
)

// Config wires a wizard session.
type Config struct {
	Submitter QuoteSubmitter
	Bus       *bus.Bus
	Track     TrackFunc
	// RoomInventory selects the two-level room→item inventory variant.
	// When false the inventory step uses the flat furniture toggle set.
	RoomInventory bool
}

// Wizard is one user's quote funnel session. It is driven by discrete user
// actions and is not safe for concurrent use.
type Wizard struct {
	sessionID string
	draft     entities.Quote

	current   int
	completed map[int]bool
	unlocked  []string
	subPhase  SubPhase

	submitting bool
	submitted  bool

	submitter QuoteSubmitter
	bus       *bus.Bus
	track     TrackFunc
}

func New(cfg Config) *Wizard {
	w := &Wizard{
		sessionID: uuid.NewString(),
		current:   Closed,
		completed: make(map[int]bool),
		subPhase:  SubPhaseRooms,
		submitter: cfg.Submitter,
		bus:       cfg.Bus,
		track:     cfg.Track,
	}
	if cfg.RoomInventory {
		w.draft.RoomInventory = entities.NewRoomInventory()
	}
	return w
}

func (w *Wizard) SessionID() string { return w.sessionID }

// CurrentStep returns the displayed step index, or Closed.
func (w *Wizard) CurrentStep() int { return w.current }

func (w *Wizard) Submitted() bool { return w.submitted }

func (w *Wizard) SubPhase() SubPhase { return w.subPhase }

// Draft returns the accumulated quote draft.
func (w *Wizard) Draft() entities.Quote { return w.draft }

func (w *Wizard) CompletedCount() int { return len(w.completed) }

func (w *Wizard) IsCompleted(step int) bool { return w.completed[step] }

// Achievements returns the unlocked labels in unlock order.
func (w *Wizard) Achievements() []string {
	out := make([]string, len(w.unlocked))
	copy(out, w.unlocked)
	return out
}

// Progress is the completion percentage broadcast with progress events.
func (w *Wizard) Progress() float64 {
	return float64(len(w.completed)) / float64(StepCount) * 100
}

// InventoryLines renders the active inventory as human-readable recap lines.
func (w *Wizard) InventoryLines() []entities.LineItem {
	return w.draft.Inventory().LineItems()
}

// Open displays a step from the closed state. Non-linear entry is allowed:
// any step marker may be selected without completing earlier steps.
func (w *Wizard) Open(step int) {
	if w.current != Closed || w.submitted {
		return
	}
	if step < 0 || step >= StepCount {
		return
	}
	w.current = step
	if step == StepInventory {
		w.subPhase = SubPhaseRooms
	}
	w.trackEvent("quote_step_selected", "engagement", fmt.Sprintf("step_%d", step))
}

// Close hides the wizard, keeping the draft and all progress.
func (w *Wizard) Close() {
	if w.current == Closed {
		return
	}
	w.current = Closed
}

// Advance completes the current step and moves forward. On the inventory step
// of the two-level variant it first transitions rooms→items, and is blocked
// while no room is selected. On the last step it submits the draft; a
// submission failure keeps the session on that step so the user can retry.
func (w *Wizard) Advance(ctx context.Context) error {
	if w.current == Closed || w.submitting || w.submitted {
		return nil
	}

	if w.current == StepInventory && w.draft.RoomInventory != nil && w.subPhase == SubPhaseRooms {
		if w.draft.RoomInventory.SelectedRooms() == 0 {
			return nil
		}
		w.subPhase = SubPhaseItems
		return nil
	}

	w.completeStep(w.current)

	if w.current < StepContact {
		w.current++
		if w.current == StepInventory {
			w.subPhase = SubPhaseRooms
		}
		return nil
	}

	return w.submit(ctx)
}

// Retreat moves one step back; at step 0 it is a no-op. In the two-level
// inventory variant, retreating from the items sub-phase returns to rooms at
// the same outer step, and retreating into the inventory step from a later
// one lands on items.
func (w *Wizard) Retreat() {
	if w.current == Closed || w.submitting || w.submitted {
		return
	}
	if w.current == StepInventory && w.draft.RoomInventory != nil && w.subPhase == SubPhaseItems {
		w.subPhase = SubPhaseRooms
		return
	}
	if w.current == 0 {
		return
	}
	w.current--
	if w.current == StepInventory && w.draft.RoomInventory != nil {
		w.subPhase = SubPhaseItems
	}
}

func (w *Wizard) completeStep(step int) {
	// Analytics re-fires even when the step was already completed.
	w.trackEvent("quote_step_completed", "engagement", fmt.Sprintf("step_%d", step))

	if w.completed[step] {
		return
	}
	w.completed[step] = true

	unlocked := ""
	switch len(w.completed) {
	case 2:
		unlocked = achievementBeginner
	case 4:
		unlocked = achievementIntermediate
	case 6:
		unlocked = achievementExpert
	}
	if unlocked != "" && !w.hasAchievement(unlocked) {
		w.unlocked = append(w.unlocked, unlocked)
	} else {
		unlocked = ""
	}

	if w.bus != nil {
		w.bus.PublishProgress(bus.ProgressEvent{Progress: w.Progress(), Achievement: unlocked})
	}
}

func (w *Wizard) hasAchievement(label string) bool {
	for _, a := range w.unlocked {
		if a == label {
			return true
		}
	}
	return false
}

func (w *Wizard) submit(ctx context.Context) error {
	w.submitting = true
	defer func() { w.submitting = false }()

	created, err := w.submitter.SubmitQuote(ctx, w.draft)
	if err != nil {
		logrus.Printf("[wizard] submit failed session=%s err=%v", w.sessionID, err)
		return err
	}

	w.draft = created
	w.submitted = true
	w.current = Closed
	w.trackEvent("quote_submitted", "conversion", "honeycomb_form")
	return nil
}

// SetRoomQuantity records a room count on the two-level inventory. No-op in
// the flat variant.
func (w *Wizard) SetRoomQuantity(room entities.RoomType, quantity int) {
	if w.draft.RoomInventory == nil {
		return
	}
	w.draft.RoomInventory.SetRoomQuantity(room, quantity)
}

// SetItemQuantity records an item count inside a selected room. No-op in the
// flat variant.
func (w *Wizard) SetItemQuantity(room entities.RoomType, item entities.FurnitureItem, quantity int) {
	if w.draft.RoomInventory == nil {
		return
	}
	w.draft.RoomInventory.SetItemQuantity(room, item, quantity)
}

// ToggleFurniture adds or removes a flat-inventory item.
func (w *Wizard) ToggleFurniture(item entities.FurnitureItem, selected bool) {
	if selected {
		for _, it := range w.draft.FurnitureInventory {
			if it == item {
				return
			}
		}
		w.draft.FurnitureInventory = append(w.draft.FurnitureInventory, item)
		return
	}
	kept := w.draft.FurnitureInventory[:0]
	for _, it := range w.draft.FurnitureInventory {
		if it != item {
			kept = append(kept, it)
		}
	}
	w.draft.FurnitureInventory = kept
}

// MailtoLink builds the pre-filled email affordance of the confirmation view.
func (w *Wizard) MailtoLink() string { return MailtoLink(w.draft) }

// WhatsAppLink builds the pre-filled WhatsApp affordance of the confirmation
// view.
func (w *Wizard) WhatsAppLink() string { return WhatsAppLink(w.draft) }

func (w *Wizard) trackEvent(event, category, label string) {
	if w.track != nil {
		w.track(event, category, label)
	}
}

// NumberOrZero coerces numeric text-field input: empty or non-numeric input
// counts as zero, matching the form controls.
func NumberOrZero(s string) int {
	n, err := strconv.Atoi(strings.TrimSpace(s))
	if err != nil {
		return 0
	}
	return n
}
