package models

// CollectionMeta describes a pack or a set: the two kinds of card collection
// a user can browse. Kind is "pack" or "set".
type CollectionMeta struct {
	ID            string `bson:"_id" json:"id"`
	Name          string `bson:"name" json:"name"`
	Kind          string `bson:"kind" json:"kind"`
	Type          string `bson:"type" json:"type"`
	Official      bool   `bson:"official" json:"official"`
	AuthorID      string `bson:"authorId,omitempty" json:"authorId,omitempty"`
	Incomplete    bool   `bson:"incomplete,omitempty" json:"incomplete,omitempty"`
	CouncilNumber int    `bson:"councilNumber,omitempty" json:"councilNumber,omitempty"`
}

// Element is one entry of a navigable sequence of related cards, such as a
// villain's stages. Faces lists the flip sides of the element's card, when it
// has any.
type Element struct {
	CardID string
	Faces  []string
}

// CardCollection is the per-session view-model driving the navigator: every
// card reachable from the initially presented entity, the faces of the
// currently active card, and the higher-level element sequence. Faces is
// re-sliced whenever the active element changes.
type CardCollection struct {
	Cards    []*Card
	Faces    []string
	Elements []Element
	Tag      string
}

// CardByID returns the collection member with the given id, or nil.
func (c *CardCollection) CardByID(id string) *Card {
	for _, card := range c.Cards {
		if card.ID == id {
			return card
		}
	}
	return nil
}

// ElementIndexOf returns the element position holding the given card, either
// as its own card or among its faces, or -1.
func (c *CardCollection) ElementIndexOf(cardID string) int {
	for i, el := range c.Elements {
		if el.CardID == cardID {
			return i
		}
		for _, face := range el.Faces {
			if face == cardID {
				return i
			}
		}
	}
	return -1
}
