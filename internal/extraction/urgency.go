package extraction

import "fmt"

// Absolute urgency thresholds. These are fixed clinical cutoffs, not
// configuration: severe-range blood pressure, oligohydramnios and severe
// anemia each independently flag a report as urgent.
const (
	urgentSystolicMin   = 160 // mmHg, inclusive
	urgentDiastolicMin  = 110 // mmHg, inclusive
	urgentAFIMax        = 5.0 // cm, exclusive lower bound
	urgentHemoglobinMax = 7.0 // g/dL, exclusive lower bound
)

// EvaluateUrgency checks every present value against its threshold and
// collects one reason per breach. The checks are independent: a missing
// value is skipped, never treated as a breach, and one breach never
// short-circuits the others. Urgent is true iff at least one reason was
// collected.
func EvaluateUrgency(data *ReportData) UrgencyVerdict {
	verdict := UrgencyVerdict{Reasons: []string{}}
	if data == nil {
		return verdict
	}

	if bp := data.Values.BloodPressure; bp != nil {
		if bp.Systolic >= urgentSystolicMin || bp.Diastolic >= urgentDiastolicMin {
			verdict.Reasons = append(verdict.Reasons, fmt.Sprintf(
				"Blood pressure is very high (%d/%d mmHg, severe range is ≥%d/%d)",
				bp.Systolic, bp.Diastolic, urgentSystolicMin, urgentDiastolicMin))
		}
	}

	if us := data.Values.Ultrasound; us != nil && us.AFI != nil {
		if *us.AFI < urgentAFIMax {
			verdict.Reasons = append(verdict.Reasons, fmt.Sprintf(
				"Amniotic fluid index is critically low (%.1f cm, below %.0f)",
				*us.AFI, urgentAFIMax))
		}
	}

	if hb := data.Values.Hemoglobin; hb != nil {
		if hb.Value < urgentHemoglobinMax {
			verdict.Reasons = append(verdict.Reasons, fmt.Sprintf(
				"Hemoglobin indicates severe anemia (%.1f g/dL, below %.1f)",
				hb.Value, urgentHemoglobinMax))
		}
	}

	verdict.Urgent = len(verdict.Reasons) > 0
	return verdict
}
