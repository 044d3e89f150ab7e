package myths

import (
	"sort"
	"strings"
)

// Category and region vocabularies. Same scoring shape as the report type
// detector: case-insensitive substring presence, each term counted once.
// Ties resolve in the declared order of the tables below, so the order is
// part of the behavior and must stay stable.
var categoryTerms = []struct {
	category Category
	terms    []string
}{
	{CategoryNutrition, []string{
		"eat", "food", "fruit", "egg", "milk", "curd", "diet", "hungry",
		"craving", "drink", "meal", "nutrition", "vitamin", "iron",
	}},
	{CategoryActivity, []string{
		"exercise", "work", "walk", "lift", "bend", "travel", "sport",
		"swim", "rest", "sleep", "farm", "chores",
	}},
	{CategorySymptoms, []string{
		"pain", "heartburn", "nausea", "swelling", "bump", "sick",
		"vomit", "tired", "bleed", "headache", "cramp",
	}},
	{CategoryTraditional, []string{
		"herb", "traditional", "eclipse", "curse", "evil", "ritual",
		"remedy", "elder", "taboo", "charm",
	}},
}

var regionTerms = []struct {
	region Region
	terms  []string
}{
	{RegionEastAfrica, []string{"kenya", "tanzania", "uganda", "ethiopia", "east africa", "swahili"}},
	{RegionWestAfrica, []string{"nigeria", "ghana", "senegal", "west africa", "yoruba", "hausa"}},
	{RegionSouthAsia, []string{"india", "pakistan", "bangladesh", "nepal", "south asia", "desi"}},
}

func countTerms(lower string, terms []string) int {
	n := 0
	for _, term := range terms {
		if strings.Contains(lower, term) {
			n++
		}
	}
	return n
}

// Classify scores the query against every category and region vocabulary.
// A query matching no category vocabulary falls back to CategoryGeneral; a
// query naming no region falls back to RegionGlobal.
func Classify(query string) Classification {
	lower := strings.ToLower(query)

	result := Classification{Category: CategoryGeneral, Region: RegionGlobal}

	best := 0
	for _, entry := range categoryTerms {
		if score := countTerms(lower, entry.terms); score > best {
			best = score
			result.Category = entry.category
		}
	}

	best = 0
	for _, entry := range regionTerms {
		if score := countTerms(lower, entry.terms); score > best {
			best = score
			result.Region = entry.region
		}
	}

	return result
}

// Search classifies the query, then ranks the records of the winning bucket
// by keyword overlap with the query. Records from the classified region and
// global records both qualify; a zero-overlap record is never returned.
// limit caps the result count; limit <= 0 means no cap. Ordering is total:
// score descending, then record ID ascending.
func Search(query string, limit int) (Classification, []Match) {
	class := Classify(query)
	lower := strings.ToLower(query)

	var matches []Match
	for _, rec := range records {
		if class.Category != CategoryGeneral && rec.Category != class.Category {
			continue
		}
		if class.Region != RegionGlobal && rec.Region != class.Region && rec.Region != RegionGlobal {
			continue
		}
		score := countTerms(lower, rec.Keywords)
		if score == 0 {
			continue
		}
		matches = append(matches, Match{Record: rec, Score: score})
	}

	sort.Slice(matches, func(i, j int) bool {
		if matches[i].Score != matches[j].Score {
			return matches[i].Score > matches[j].Score
		}
		return matches[i].Record.ID < matches[j].Record.ID
	})

	if limit > 0 && len(matches) > limit {
		matches = matches[:limit]
	}
	return class, matches
}
