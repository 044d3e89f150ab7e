// Package gestation maps a gestational week to trimester, descriptive
// reference data, and a formatted clinical context block for downstream
// consumers. All data here is static reference material; nothing in this
// package holds mutable state.
package gestation

// ---------------------------------------------------------------------------
// Week bounds and trimester boundaries
// ---------------------------------------------------------------------------

const (
	// MinWeek and MaxWeek bound every lookup. Weeks outside the range are
	// clamped, never rejected.
	MinWeek = 4
	MaxWeek = 42

	// FallbackWeek is substituted when the norms table has no entry for a
	// clamped week. This is a documented default policy, not an error.
	FallbackWeek = 20
)

// NormalValues holds the expected clinical reference values for a week.
type NormalValues struct {
	// FetalHeartRate is the expected FHR range in beats per minute,
	// e.g. "110-160 bpm".
	FetalHeartRate string `json:"fetalHeartRate"`

	// Movements describes expected fetal movement at this stage.
	Movements string `json:"movements"`
}

// NormsEntry is the per-week reference bundle: how big the baby is, what is
// developing, what the mother typically feels, and the normal values.
type NormsEntry struct {
	BabySize        string       `json:"babySize"`
	KeyDevelopments []string     `json:"keyDevelopments"`
	TypicalSymptoms []string     `json:"typicalSymptoms"`
	Normal          NormalValues `json:"normalValues"`
}

// clinicalNorms is the authoritative reference table, keyed by gestational
// week. The table is intentionally sparse; NormsFor substitutes the
// FallbackWeek entry for weeks without their own row.
var clinicalNorms = map[int]NormsEntry{
	4: {
		BabySize:        "a poppy seed",
		KeyDevelopments: []string{"Neural tube begins to form", "Implantation completes"},
		TypicalSymptoms: []string{"Missed period", "Mild cramping", "Breast tenderness"},
		Normal:          NormalValues{FetalHeartRate: "not yet detectable", Movements: "None"},
	},
	6: {
		BabySize:        "a lentil",
		KeyDevelopments: []string{"Heart begins to beat", "Facial features start forming"},
		TypicalSymptoms: []string{"Morning sickness", "Fatigue", "Frequent urination"},
		Normal:          NormalValues{FetalHeartRate: "90-110 bpm", Movements: "None"},
	},
	8: {
		BabySize:        "a raspberry",
		KeyDevelopments: []string{"All major organs begin developing", "Fingers and toes forming"},
		TypicalSymptoms: []string{"Nausea", "Food aversions", "Heightened sense of smell"},
		Normal:          NormalValues{FetalHeartRate: "140-170 bpm", Movements: "None felt"},
	},
	10: {
		BabySize:        "a strawberry",
		KeyDevelopments: []string{"Vital organs functioning", "Tooth buds appear"},
		TypicalSymptoms: []string{"Nausea easing for some", "Visible veins", "Mild bloating"},
		Normal:          NormalValues{FetalHeartRate: "140-170 bpm", Movements: "None felt"},
	},
	12: {
		BabySize:        "a lime",
		KeyDevelopments: []string{"Reflexes developing", "Kidneys begin producing urine"},
		TypicalSymptoms: []string{"Nausea subsiding", "Energy returning", "Less frequent urination"},
		Normal:          NormalValues{FetalHeartRate: "120-160 bpm", Movements: "None felt"},
	},
	14: {
		BabySize:        "a lemon",
		KeyDevelopments: []string{"Facial muscles active", "Lanugo hair grows"},
		TypicalSymptoms: []string{"Increased appetite", "Round ligament pain"},
		Normal:          NormalValues{FetalHeartRate: "110-160 bpm", Movements: "Too small to feel"},
	},
	16: {
		BabySize:        "an avocado",
		KeyDevelopments: []string{"Skeleton hardening", "Eyes can perceive light"},
		TypicalSymptoms: []string{"Backache begins", "Glowing skin", "Nasal congestion"},
		Normal:          NormalValues{FetalHeartRate: "110-160 bpm", Movements: "First flutters possible"},
	},
	20: {
		BabySize:        "a banana",
		KeyDevelopments: []string{"Halfway point", "Anatomy scan window", "Baby can hear sounds"},
		TypicalSymptoms: []string{"Visible bump", "Stronger appetite", "Occasional leg cramps"},
		Normal:          NormalValues{FetalHeartRate: "110-160 bpm", Movements: "Flutters and light kicks"},
	},
	24: {
		BabySize:        "an ear of corn",
		KeyDevelopments: []string{"Lungs developing rapidly", "Viability milestone"},
		TypicalSymptoms: []string{"Swollen ankles", "Backache", "Stretch marks"},
		Normal:          NormalValues{FetalHeartRate: "110-160 bpm", Movements: "Regular kicks"},
	},
	28: {
		BabySize:        "an eggplant",
		KeyDevelopments: []string{"Eyes open", "Brain tissue increasing", "Third trimester begins"},
		TypicalSymptoms: []string{"Shortness of breath", "Heartburn", "Trouble sleeping"},
		Normal:          NormalValues{FetalHeartRate: "110-160 bpm", Movements: "Strong, regular movement"},
	},
	32: {
		BabySize:        "a squash",
		KeyDevelopments: []string{"Practicing breathing movements", "Bones fully formed but soft"},
		TypicalSymptoms: []string{"Braxton Hicks contractions", "Frequent urination returns"},
		Normal:          NormalValues{FetalHeartRate: "110-160 bpm", Movements: "10 movements in 2 hours expected"},
	},
	36: {
		BabySize:        "a head of romaine lettuce",
		KeyDevelopments: []string{"Baby usually head-down", "Gaining about 30g a day"},
		TypicalSymptoms: []string{"Pelvic pressure", "Easier breathing after lightening"},
		Normal:          NormalValues{FetalHeartRate: "110-160 bpm", Movements: "10 movements in 2 hours expected"},
	},
	38: {
		BabySize:        "a leek",
		KeyDevelopments: []string{"Full term approaching", "Organs ready for outside life"},
		TypicalSymptoms: []string{"Cervix dilation begins", "Mucus plug may release"},
		Normal:          NormalValues{FetalHeartRate: "110-160 bpm", Movements: "10 movements in 2 hours expected"},
	},
	40: {
		BabySize:        "a small pumpkin",
		KeyDevelopments: []string{"Due date reached", "Baby fully developed"},
		TypicalSymptoms: []string{"Signs of labor", "Strong pelvic pressure", "Restlessness"},
		Normal:          NormalValues{FetalHeartRate: "110-160 bpm", Movements: "Movement continues until birth"},
	},
	42: {
		BabySize:        "a watermelon",
		KeyDevelopments: []string{"Post-term monitoring", "Induction usually discussed"},
		TypicalSymptoms: []string{"Increased monitoring visits", "Impatience is normal"},
		Normal:          NormalValues{FetalHeartRate: "110-160 bpm", Movements: "Movement continues until birth"},
	},
}

// ClampWeek clamps week to [MinWeek, MaxWeek].
func ClampWeek(week int) int {
	if week < MinWeek {
		return MinWeek
	}
	if week > MaxWeek {
		return MaxWeek
	}
	return week
}

// NormsFor returns the reference entry for the given week, clamping the input
// and falling back to the FallbackWeek entry when the table has no row for
// the clamped week.
func NormsFor(week int) NormsEntry {
	if entry, ok := clinicalNorms[ClampWeek(week)]; ok {
		return entry
	}
	return clinicalNorms[FallbackWeek]
}
