package models

// BaseIDLength is the length of an official card's base identity. Unofficial
// cards append "-<authorID>" to the base, and multi-faced cards append a
// single face letter after that.
const BaseIDLength = 5

type Card struct {
	ID             string   `bson:"_id" json:"id"`
	Official       bool     `bson:"official" json:"official"`
	AuthorID       string   `bson:"authorId,omitempty" json:"authorId,omitempty"`
	GroupID        string   `bson:"groupId,omitempty" json:"groupId,omitempty"`
	Name           string   `bson:"name" json:"name"`
	Subname        string   `bson:"subname,omitempty" json:"subname,omitempty"`
	Classification string   `bson:"classification" json:"classification"`
	Type           string   `bson:"type" json:"type"`
	Stage          string   `bson:"stage,omitempty" json:"stage,omitempty"`
	Traits         []string `bson:"traits,omitempty" json:"traits,omitempty"`
	Unique         bool     `bson:"unique,omitempty" json:"unique,omitempty"`

	Cost     string `bson:"cost,omitempty" json:"cost,omitempty"`
	Resource string `bson:"resource,omitempty" json:"resource,omitempty"`
	Boost    string `bson:"boost,omitempty" json:"boost,omitempty"`

	Recover string `bson:"recover,omitempty" json:"recover,omitempty"`
	Scheme  string `bson:"scheme,omitempty" json:"scheme,omitempty"`
	Thwart  string `bson:"thwart,omitempty" json:"thwart,omitempty"`
	Attack  string `bson:"attack,omitempty" json:"attack,omitempty"`
	Defense string `bson:"defense,omitempty" json:"defense,omitempty"`
	// Slash marks schemer cards whose scheme and thwart values are printed as
	// a single SCH/THW pair.
	Slash bool `bson:"slash,omitempty" json:"slash,omitempty"`

	Hand           string `bson:"hand,omitempty" json:"hand,omitempty"`
	Health         string `bson:"health,omitempty" json:"health,omitempty"`
	StartingThreat string `bson:"startingThreat,omitempty" json:"startingThreat,omitempty"`
	TargetThreat   string `bson:"targetThreat,omitempty" json:"targetThreat,omitempty"`
	Acceleration   string `bson:"acceleration,omitempty" json:"acceleration,omitempty"`

	Rules   string `bson:"rules,omitempty" json:"rules,omitempty"`
	Special string `bson:"special,omitempty" json:"special,omitempty"`
	Flavor  string `bson:"flavor,omitempty" json:"flavor,omitempty"`

	Printings  []Printing `bson:"printings" json:"printings"`
	Incomplete bool       `bson:"incomplete,omitempty" json:"incomplete,omitempty"`

	// Normalized index fields maintained by the importer alongside the
	// display fields; queried by the tiered name search.
	TokenizedName    []string `bson:"tokenizedName,omitempty" json:"-"`
	StrippedName     string   `bson:"strippedName,omitempty" json:"-"`
	TokenizedSubname []string `bson:"tokenizedSubname,omitempty" json:"-"`
	StrippedSubname  string   `bson:"strippedSubname,omitempty" json:"-"`
}

// Printing is one physical appearance of a card. The artificial id doubles as
// the art asset key, so reprints with distinct art carry UniqueArt.
type Printing struct {
	ArtificialID string `bson:"artificialId" json:"artificialId"`
	SetID        string `bson:"setId" json:"setId"`
	SetNumber    string `bson:"setNumber,omitempty" json:"setNumber,omitempty"`
	PackID       string `bson:"packId,omitempty" json:"packId,omitempty"`
	PackNumber   string `bson:"packNumber,omitempty" json:"packNumber,omitempty"`
	UniqueArt    bool   `bson:"uniqueArt,omitempty" json:"uniqueArt,omitempty"`
}

// BaseID returns the card's base identity: the shared prefix of all of its
// faces. Unofficial ids embed the author id between the base and the face
// suffix.
func (c *Card) BaseID() string {
	threshold := BaseIDLength
	if !c.Official {
		threshold += len(c.AuthorID) + 1
	}
	if threshold > len(c.ID) {
		return c.ID
	}
	return c.ID[:threshold]
}

// SharesFaceWith reports whether two distinct cards are faces of the same
// physical card.
func (c *Card) SharesFaceWith(other *Card) bool {
	return c.ID != other.ID && c.BaseID() == other.BaseID()
}

// SharesGroupWith reports whether two cards belong to the same stage group.
func (c *Card) SharesGroupWith(other *Card) bool {
	return c.GroupID != "" && other.GroupID != "" && c.GroupID == other.GroupID
}

// UniqueArts returns the artificial ids of every printing with distinct art,
// in printing order.
func (c *Card) UniqueArts() []string {
	var arts []string
	for _, p := range c.Printings {
		if p.UniqueArt {
			arts = append(arts, p.ArtificialID)
		}
	}
	return arts
}

// PrintingByArtificialID returns the printing carrying the given art id, or
// nil if the card was never printed with it.
func (c *Card) PrintingByArtificialID(artificialID string) *Printing {
	for i := range c.Printings {
		if c.Printings[i].ArtificialID == artificialID {
			return &c.Printings[i]
		}
	}
	return nil
}

// Reprints returns every printing other than the card's own.
func (c *Card) Reprints() []Printing {
	var reprints []Printing
	for _, p := range c.Printings {
		if p.ArtificialID != c.ID {
			reprints = append(reprints, p)
		}
	}
	return reprints
}
