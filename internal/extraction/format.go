package extraction

import (
	"fmt"
	"strings"
)

// FormatReportSummary renders the extracted values as a compact plain-text
// block for a downstream language model. Line order is fixed; absent values
// produce no line at all, so the block never contains placeholder text.
func FormatReportSummary(data *ReportData) string {
	if data == nil {
		return ""
	}

	var b strings.Builder
	fmt.Fprintf(&b, "Report type: %s\n", data.ReportType)

	if data.GestationalAgeReported != "" {
		fmt.Fprintf(&b, "Gestational age: %s\n", data.GestationalAgeReported)
	}
	if data.ReportDate != "" {
		fmt.Fprintf(&b, "Report date: %s\n", data.ReportDate)
	}

	if hb := data.Values.Hemoglobin; hb != nil {
		fmt.Fprintf(&b, "Hemoglobin: %.1f %s\n", hb.Value, hb.Unit)
	}
	if bp := data.Values.BloodPressure; bp != nil {
		fmt.Fprintf(&b, "Blood pressure: %d/%d %s\n", bp.Systolic, bp.Diastolic, bp.Unit)
	}
	if g := data.Values.Glucose; g != nil {
		if g.Fasting != nil {
			fmt.Fprintf(&b, "Glucose (fasting): %.0f %s\n", *g.Fasting, g.Unit)
		}
		if g.OneHour != nil {
			fmt.Fprintf(&b, "Glucose (1 hour): %.0f %s\n", *g.OneHour, g.Unit)
		}
		if g.TwoHour != nil {
			fmt.Fprintf(&b, "Glucose (2 hour): %.0f %s\n", *g.TwoHour, g.Unit)
		}
	}
	if us := data.Values.Ultrasound; us != nil {
		if us.FHR != nil {
			fmt.Fprintf(&b, "Fetal heart rate: %d bpm\n", *us.FHR)
		}
		if us.AFI != nil {
			fmt.Fprintf(&b, "Amniotic fluid index: %.1f cm\n", *us.AFI)
		}
		if us.EFWPercentile != nil {
			fmt.Fprintf(&b, "Estimated fetal weight: %s percentile\n", ordinal(*us.EFWPercentile))
		}
		if us.PlacentaPosition != "" {
			fmt.Fprintf(&b, "Placenta position: %s\n", us.PlacentaPosition)
		}
		if us.CervicalLength != nil {
			fmt.Fprintf(&b, "Cervical length: %.1f cm\n", *us.CervicalLength)
		}
	}

	return strings.TrimRight(b.String(), "\n")
}

// ordinal renders n with its English ordinal suffix (1st, 2nd, 3rd, 11th).
func ordinal(n int) string {
	suffix := "th"
	if n%100 < 11 || n%100 > 13 {
		switch n % 10 {
		case 1:
			suffix = "st"
		case 2:
			suffix = "nd"
		case 3:
			suffix = "rd"
		}
	}
	return fmt.Sprintf("%d%s", n, suffix)
}
