// Package myths classifies free-text questions about pregnancy folklore
// against an embedded reference dataset and ranks the matching records.
// The dataset is inert reference material: the package never mutates it and
// exposes only copies.
package myths

// Category buckets the reference records by topic.
type Category string

const (
	CategoryNutrition   Category = "nutrition"
	CategoryActivity    Category = "activity"
	CategorySymptoms    Category = "symptoms"
	CategoryTraditional Category = "traditional"
	CategoryGeneral     Category = "general"
)

// Region localizes a record; RegionGlobal records apply everywhere.
type Region string

const (
	RegionGlobal     Region = "global"
	RegionEastAfrica Region = "east_africa"
	RegionSouthAsia  Region = "south_asia"
	RegionWestAfrica Region = "west_africa"
)

// Record pairs a commonly held myth with the corresponding fact.
type Record struct {
	ID       string   `json:"id"`
	Category Category `json:"category"`
	Region   Region   `json:"region"`
	Myth     string   `json:"myth"`
	Fact     string   `json:"fact"`
	Keywords []string `json:"keywords"`
}

// Match is one ranked search hit.
type Match struct {
	Record Record `json:"record"`
	Score  int    `json:"score"`
}

// Classification is the outcome of scoring a query against the category and
// region vocabularies.
type Classification struct {
	Category Category `json:"category"`
	Region   Region   `json:"region"`
}
