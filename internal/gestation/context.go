package gestation

import (
	"fmt"
	"strings"
)

// ---------------------------------------------------------------------------
// Trimester
// ---------------------------------------------------------------------------

// Trimester identifies one of the three fixed pregnancy stages.
type Trimester int

const (
	TrimesterFirst  Trimester = 1
	TrimesterSecond Trimester = 2
	TrimesterThird  Trimester = 3
)

// Name returns the human-readable trimester name.
func (t Trimester) Name() string {
	switch t {
	case TrimesterFirst:
		return "first trimester"
	case TrimesterSecond:
		return "second trimester"
	default:
		return "third trimester"
	}
}

// TrimesterFor buckets a (clamped) gestational week into its trimester using
// the fixed boundaries: ≤12 first, 13–27 second, ≥28 third.
func TrimesterFor(week int) Trimester {
	week = ClampWeek(week)
	switch {
	case week <= 12:
		return TrimesterFirst
	case week <= 27:
		return TrimesterSecond
	default:
		return TrimesterThird
	}
}

// ---------------------------------------------------------------------------
// Context
// ---------------------------------------------------------------------------

// Context is the derived per-week bundle handed to downstream consumers.
// It is constructed fresh on every call and never cached across weeks.
type Context struct {
	Week                 int       `json:"week"`
	Trimester            Trimester `json:"trimester"`
	TrimesterName        string    `json:"trimesterName"`
	BabySize             string    `json:"babySize"`
	KeyDevelopments      []string  `json:"keyDevelopments"`
	TypicalSymptoms      []string  `json:"typicalSymptoms"`
	NormalFetalHeartRate string    `json:"normalFetalHeartRate"`
	ExpectedMovements    string    `json:"expectedMovements"`
	WeekDescription      string    `json:"weekDescription"`
}

// weekDescription renders one of three fixed templates keyed by trimester,
// interpolating the week number. Fully deterministic for a given week.
func weekDescription(week int, t Trimester) string {
	switch t {
	case TrimesterFirst:
		return fmt.Sprintf("You are %d weeks along, in the first trimester. Your baby's foundations are forming and early symptoms are common.", week)
	case TrimesterSecond:
		return fmt.Sprintf("You are %d weeks along, in the second trimester. Many people feel their best now as the baby grows steadily.", week)
	default:
		return fmt.Sprintf("You are %d weeks along, in the third trimester. Your baby is gaining weight and preparing for birth.", week)
	}
}

// ContextFor builds the full gestational context for the given week. The week
// is clamped to [MinWeek, MaxWeek] before lookup; out-of-range input never
// fails.
func ContextFor(week int) Context {
	clamped := ClampWeek(week)
	trimester := TrimesterFor(clamped)
	entry := NormsFor(clamped)

	return Context{
		Week:                 clamped,
		Trimester:            trimester,
		TrimesterName:        trimester.Name(),
		BabySize:             entry.BabySize,
		KeyDevelopments:      entry.KeyDevelopments,
		TypicalSymptoms:      entry.TypicalSymptoms,
		NormalFetalHeartRate: entry.Normal.FetalHeartRate,
		ExpectedMovements:    entry.Normal.Movements,
		WeekDescription:      weekDescription(clamped, trimester),
	}
}

// ---------------------------------------------------------------------------
// Clinical context block
// ---------------------------------------------------------------------------

// hemoglobinThreshold returns the minimum normal hemoglobin (g/dL) for the
// trimester. Values follow the standard obstetric anemia cutoffs.
func hemoglobinThreshold(t Trimester) float64 {
	switch t {
	case TrimesterSecond:
		return 10.5
	default:
		return 11.0
	}
}

// BuildClinicalContext renders the gestational context plus fixed clinical
// reference ranges into a plain-text block for consumption by an external
// text-generation service. Purely compositional: no new state, deterministic
// for a given week.
func BuildClinicalContext(week int) string {
	gc := ContextFor(week)

	var sb strings.Builder
	fmt.Fprintf(&sb, "Gestational week: %d (%s)\n", gc.Week, gc.TrimesterName)
	fmt.Fprintf(&sb, "Baby size: about %s\n", gc.BabySize)
	fmt.Fprintf(&sb, "Key developments: %s\n", strings.Join(gc.KeyDevelopments, "; "))
	fmt.Fprintf(&sb, "Typical symptoms: %s\n", strings.Join(gc.TypicalSymptoms, "; "))
	fmt.Fprintf(&sb, "Normal fetal heart rate: %s\n", gc.NormalFetalHeartRate)
	fmt.Fprintf(&sb, "Expected movements: %s\n", gc.ExpectedMovements)
	sb.WriteString("\nReference ranges:\n")
	sb.WriteString("- Blood pressure: normal below 140/90 mmHg; severe range at or above 160/110 mmHg\n")
	sb.WriteString("- Glucose (mg/dL): fasting below 95, 1-hour below 180, 2-hour below 155\n")
	sb.WriteString("- Amniotic fluid index: normal 8-18 cm; low below 5 cm; high above 24 cm\n")
	fmt.Fprintf(&sb, "- Hemoglobin: at least %.1f g/dL for the %s\n", hemoglobinThreshold(gc.Trimester), gc.TrimesterName)

	return sb.String()
}
