package ui

import (
	"testing"

	"github.com/cardcodex/codex/codex/database/models"
)

func stageCollection() *models.CardCollection {
	return &models.CardCollection{
		Cards: []*models.Card{
			{ID: "01113a", GroupID: "rhino", Printings: []models.Printing{
				{ArtificialID: "01113a", UniqueArt: true},
				{ArtificialID: "01113a-v2", UniqueArt: true},
				{ArtificialID: "01113a-v3", UniqueArt: true},
			}},
			{ID: "01113b", GroupID: "rhino"},
			{ID: "01114", GroupID: "rhino"},
			{ID: "01115", GroupID: "rhino"},
		},
		Faces: []string{"01113a", "01113b"},
		Elements: []models.Element{
			{CardID: "01113a", Faces: []string{"01113a", "01113b"}},
			{CardID: "01114"},
			{CardID: "01115"},
		},
		Tag: "Stage",
	}
}

func TestTransition_CycleArtIsCyclic(t *testing.T) {
	coll := stageCollection()
	state := NewNavState(coll.Cards[0], coll)

	arts := len(coll.Cards[0].UniqueArts())
	current := state
	for i := 0; i < arts; i++ {
		next := Transition(current, ActionCycleArt, coll)
		if i < arts-1 && next.ArtStyle == state.ArtStyle {
			t.Fatalf("ArtStyle did not advance on step %d", i)
		}
		if next.CardID != current.CardID || next.Face != current.Face ||
			next.Element != current.Element || next.RulesToggle != current.RulesToggle ||
			next.ArtToggle != current.ArtToggle {
			t.Fatalf("cycleArt changed more than ArtStyle: %+v -> %+v", current, next)
		}
		current = next
	}

	if current.ArtStyle != state.ArtStyle {
		t.Errorf("after %d cycles ArtStyle = %d, want %d", arts, current.ArtStyle, state.ArtStyle)
	}
}

func TestTransition_ElementRoundTrip(t *testing.T) {
	coll := stageCollection()

	for start := 0; start < len(coll.Elements); start++ {
		state := NavState{CardID: coll.Elements[start].CardID, Element: start, Face: -1}

		forward := Transition(Transition(state, ActionNextElement, coll), ActionPrevElement, coll)
		if forward.Element != start {
			t.Errorf("next then prev from %d landed on %d", start, forward.Element)
		}

		backward := Transition(Transition(state, ActionPrevElement, coll), ActionNextElement, coll)
		if backward.Element != start {
			t.Errorf("prev then next from %d landed on %d", start, backward.Element)
		}
	}
}

func TestTransition_ElementWrapsAndRecomputesFaces(t *testing.T) {
	coll := stageCollection()
	state := NewNavState(coll.Cards[0], coll)
	state.RulesToggle = true

	next := Transition(state, ActionNextElement, coll)
	if next.Element != 1 {
		t.Fatalf("Element = %d, want 1", next.Element)
	}
	if next.CardID != "01114" {
		t.Errorf("CardID = %s, want 01114", next.CardID)
	}
	if next.Face != -1 {
		t.Errorf("Face = %d, want -1 for a single-faced element", next.Face)
	}
	if next.RulesToggle {
		t.Error("RulesToggle survived an element change")
	}

	// Wrap backwards from the first element onto the last.
	prev := Transition(state, ActionPrevElement, coll)
	if prev.Element != 2 {
		t.Errorf("Element = %d, want 2 after wrapping backwards", prev.Element)
	}

	// Stepping back onto the faced element restores its face list.
	back := Transition(next, ActionPrevElement, coll)
	if back.Face != 0 || back.CardID != "01113a" {
		t.Errorf("returning to faced element: Face = %d CardID = %s, want 0 01113a", back.Face, back.CardID)
	}
}

func TestTransition_CycleFace(t *testing.T) {
	coll := stageCollection()
	state := NewNavState(coll.Cards[0], coll)
	state.ArtStyle = 2
	state.RulesToggle = true

	next := Transition(state, ActionCycleFace, coll)
	if next.Face != 1 || next.CardID != "01113b" {
		t.Fatalf("Face = %d CardID = %s, want 1 01113b", next.Face, next.CardID)
	}
	if next.ArtStyle != 0 {
		t.Error("cycleFace must reset ArtStyle")
	}
	if next.RulesToggle {
		t.Error("cycleFace must clear RulesToggle")
	}

	wrapped := Transition(next, ActionCycleFace, coll)
	if wrapped.Face != 0 || wrapped.CardID != "01113a" {
		t.Errorf("Face = %d CardID = %s, want wrap to 0 01113a", wrapped.Face, wrapped.CardID)
	}
}

func TestTransition_TogglesAreMutuallyExclusive(t *testing.T) {
	coll := stageCollection()
	state := NewNavState(coll.Cards[0], coll)

	rules := Transition(state, ActionToggleRules, coll)
	if !rules.RulesToggle || rules.ArtToggle {
		t.Fatalf("after toggleRules: %+v", rules)
	}

	art := Transition(rules, ActionToggleArt, coll)
	if art.RulesToggle || !art.ArtToggle {
		t.Fatalf("after toggleArt: %+v", art)
	}

	rulesAgain := Transition(art, ActionToggleRules, coll)
	if !rulesAgain.RulesToggle || rulesAgain.ArtToggle {
		t.Fatalf("after second toggleRules: %+v", rulesAgain)
	}

	off := Transition(rulesAgain, ActionToggleRules, coll)
	if off.RulesToggle || off.ArtToggle {
		t.Fatalf("toggleRules must flip off: %+v", off)
	}
}

func TestTransition_UnknownEventIsNoop(t *testing.T) {
	coll := stageCollection()
	state := NewNavState(coll.Cards[0], coll)

	if got := Transition(state, "bogus", coll); got != state {
		t.Errorf("unknown event mutated state: %+v -> %+v", state, got)
	}
}

func TestNewNavState_PositionsOnFace(t *testing.T) {
	coll := stageCollection()

	state := NewNavState(coll.Cards[1], coll)
	if state.Element != 0 || state.Face != 1 || state.CardID != "01113b" {
		t.Errorf("NewNavState on back face = %+v", state)
	}

	state = NewNavState(coll.Cards[2], coll)
	if state.Element != 1 || state.Face != -1 {
		t.Errorf("NewNavState on single-faced stage = %+v", state)
	}
}
