package ui

import (
	"github.com/cardcodex/codex/codex/database/models"
)

// Component actions, embedded in custom ids.
const (
	ActionCycleArt    = "art"
	ActionCycleFace   = "face"
	ActionPrevElement = "prev"
	ActionNextElement = "next"
	ActionToggleRules = "rules"
	ActionToggleArt   = "full"
	ActionClear       = "clear"

	ActionPick    = "pick"
	ActionBrowse  = "browse"
	ActionShowAll = "grid"
	ActionCancel  = "cancel"
)

// NavState is the view state of one navigation session. It is threaded by
// value through Transition so every step is testable without a client.
type NavState struct {
	CardID   string
	ArtStyle int
	// Face indexes the active element's face list, -1 when the card has no
	// flip sides.
	Face        int
	Element     int
	RulesToggle bool
	ArtToggle   bool
}

// NewNavState positions the state on the given card within its collection.
func NewNavState(card *models.Card, coll *models.CardCollection) NavState {
	state := NavState{CardID: card.ID, Face: -1}

	if i := coll.ElementIndexOf(card.ID); i >= 0 {
		state.Element = i
	}

	for i, face := range activeFaces(state, coll) {
		if face == card.ID {
			state.Face = i
			break
		}
	}
	return state
}

// Transition applies one navigation event. It is pure: the collection is
// read-only and the new state is returned by value. Unknown or inapplicable
// events leave the state unchanged.
func Transition(state NavState, action string, coll *models.CardCollection) NavState {
	next := state

	switch action {
	case ActionCycleArt:
		if card := coll.CardByID(state.CardID); card != nil {
			if n := len(card.UniqueArts()); n > 0 {
				next.ArtStyle = (state.ArtStyle + 1) % n
			}
		}

	case ActionCycleFace:
		faces := activeFaces(state, coll)
		if len(faces) == 0 {
			break
		}
		next.ArtStyle = 0
		next.Face = (state.Face + 1) % len(faces)
		next.CardID = faces[next.Face]
		next.RulesToggle = false

	case ActionPrevElement, ActionNextElement:
		n := len(coll.Elements)
		if n == 0 {
			break
		}
		step := 1
		if action == ActionPrevElement {
			step = -1
		}
		next.Element = (state.Element + step + n) % n

		el := coll.Elements[next.Element]
		next.ArtStyle = 0
		next.RulesToggle = false
		if len(el.Faces) > 0 {
			next.Face = 0
			next.CardID = el.Faces[0]
		} else {
			next.Face = -1
			next.CardID = el.CardID
		}

	case ActionToggleRules:
		next.RulesToggle = !state.RulesToggle
		next.ArtToggle = false

	case ActionToggleArt:
		next.RulesToggle = false
		next.ArtToggle = !state.ArtToggle
	}

	return next
}

// activeFaces resolves the face list belonging to the state's element.
func activeFaces(state NavState, coll *models.CardCollection) []string {
	if len(coll.Elements) > 0 {
		if state.Element >= 0 && state.Element < len(coll.Elements) {
			return coll.Elements[state.Element].Faces
		}
		return nil
	}
	return coll.Faces
}
