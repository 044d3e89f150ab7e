package extraction

import "strings"

// Report-type vocabularies. Scoring is a case-insensitive substring count:
// a term appearing inside a larger word still counts. That is an intentional
// simplification carried over from the original scoring rule: it trades a
// known source of false positives for simplicity, and the fixed tie-break
// order below keeps classification reproducible.
var (
	ultrasoundTerms = []string{
		"ultrasound", "sonogra", "fetal", "fhr", "biometry", "amniotic",
		"afi", "placenta", "cephalic", "breech", "doppler", "efw",
		"gestational sac", "crown rump", "femur length", "biparietal",
	}
	bloodTestTerms = []string{
		"hemoglobin", "haemoglobin", "hb ", "hematocrit", "platelet",
		"wbc", "rbc", "glucose", "ogtt", "hba1c", "serum", "tsh",
		"ferritin", "blood test", "cbc", "complete blood count",
	}
	vitalSignsTerms = []string{
		"blood pressure", "bp ", "pulse", "temperature", "heart rate",
		"respiratory rate", "spo2", "oxygen saturation", "weight",
	}
)

// scoreTerms counts how many vocabulary terms occur as substrings of the
// lowercased text. Each term counts at most once regardless of repetition.
func scoreTerms(lower string, terms []string) int {
	score := 0
	for _, term := range terms {
		if strings.Contains(lower, term) {
			score++
		}
	}
	return score
}

// DetectReportType scores text against the three vocabularies and returns the
// best-matching type. Ties resolve in the fixed priority order
// ultrasound > blood_test > vital_signs; this ordering must be preserved for
// reproducible classification. The detector itself attaches no confidence;
// that is derived later from the acquisition method.
func DetectReportType(text string) ReportType {
	lower := strings.ToLower(text)

	us := scoreTerms(lower, ultrasoundTerms)
	bt := scoreTerms(lower, bloodTestTerms)
	vs := scoreTerms(lower, vitalSignsTerms)

	switch {
	case us >= bt && us >= vs:
		return ReportTypeUltrasound
	case bt >= vs:
		return ReportTypeBloodTest
	default:
		return ReportTypeVitalSigns
	}
}
