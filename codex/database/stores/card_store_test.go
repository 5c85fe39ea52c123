package stores

import (
	"testing"

	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/bson/primitive"
)

func TestFilteredQuery_TraitsAreNativeRegexValues(t *testing.T) {
	filter := filteredQuery(CardFilters{Traits: []string{"Avenger", "S.H.I.E.L.D."}})

	clause, ok := filter["traits"].(bson.M)
	if !ok {
		t.Fatalf("traits clause = %T, want bson.M", filter["traits"])
	}
	all, ok := clause["$all"].(bson.A)
	if !ok {
		t.Fatalf("$all = %T, want bson.A", clause["$all"])
	}
	if len(all) != 2 {
		t.Fatalf("$all holds %d values, want 2", len(all))
	}

	// $all rejects embedded operator documents, so every value must be a
	// native regex.
	for i, value := range all {
		re, ok := value.(primitive.Regex)
		if !ok {
			t.Fatalf("$all[%d] = %T, want primitive.Regex", i, value)
		}
		if re.Options != "i" {
			t.Errorf("$all[%d].Options = %q, want i", i, re.Options)
		}
	}

	if got := all[0].(primitive.Regex).Pattern; got != "^Avenger$" {
		t.Errorf("$all[0].Pattern = %q, want anchored literal", got)
	}
	if got := all[1].(primitive.Regex).Pattern; got != `^S\.H\.I\.E\.L\.D\.$` {
		t.Errorf("$all[1].Pattern = %q, want metacharacters quoted", got)
	}
}

func TestFilteredQuery_Conjunction(t *testing.T) {
	filter := filteredQuery(CardFilters{
		Aspect:   "Justice",
		AuthorID: "alice",
		Resource: ResourceNone,
		Text:     "draw",
		Type:     "event",
	})

	for _, key := range []string{"classification", "authorId", "resource", "$or", "type"} {
		if _, ok := filter[key]; !ok {
			t.Errorf("filter missing %q clause: %v", key, filter)
		}
	}
	if filter["authorId"] != "alice" {
		t.Errorf("authorId = %v, want exact match", filter["authorId"])
	}

	if got := len(filteredQuery(CardFilters{})); got != 0 {
		t.Errorf("empty filters produced %d clauses, want 0", got)
	}
}
