package models

// Author attributes unofficial content to its creator.
type Author struct {
	ID   string `bson:"_id" json:"id"`
	Name string `bson:"name" json:"name"`
}

// Rule is a keyword or icon reference entry. Regex may carry the named groups
// quantity, start and type, which are substituted into Description.
type Rule struct {
	Title       string `bson:"title" json:"title"`
	Description string `bson:"description" json:"description"`
	Regex       string `bson:"regex" json:"regex"`
}

// BotConfiguration is operator-managed configuration stored alongside the
// reference data.
type BotConfiguration struct {
	ID string `bson:"_id" json:"id"`
	// UnofficialRestrictions maps a guild id to the channels where
	// unofficial-content queries are allowed. Guilds without an entry are
	// unrestricted.
	UnofficialRestrictions map[string][]string `bson:"unofficialRestrictions,omitempty" json:"unofficialRestrictions,omitempty"`
	// Donors may use the bot while the beta lock is enabled.
	Donors []string `bson:"donors,omitempty" json:"donors,omitempty"`
}
