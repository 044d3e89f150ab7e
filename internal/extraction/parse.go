package extraction

import (
	"regexp"
	"strconv"
	"strings"
)

// Pattern priority is encoded as ordered regex lists: for each field the
// patterns are tried in sequence and the first match wins, so more specific
// labeled patterns must precede looser fallbacks. A failed match for one
// field never blocks extraction of any other field; every field is
// independent and best-effort, and nothing in this file can fail.

// ---------------------------------------------------------------------------
// Compiled pattern tables
// ---------------------------------------------------------------------------

var (
	hemoglobinPatterns = []*regexp.Regexp{
		regexp.MustCompile(`(?i)\bh(?:a?emoglobin)\s*(?:level)?\s*[:\-]?\s*(\d{1,2}(?:\.\d+)?)\s*(?:g\s*/?\s*dl)?`),
		regexp.MustCompile(`(?i)\bhb\s*[:\-]?\s*(\d{1,2}(?:\.\d+)?)\s*(?:g\s*/?\s*dl)?`),
	}

	bloodPressurePatterns = []*regexp.Regexp{
		regexp.MustCompile(`(?i)\b(?:blood\s*pressure|bp)\s*[:\-]?\s*(\d{2,3})\s*/\s*(\d{2,3})`),
		regexp.MustCompile(`\b(\d{2,3})\s*/\s*(\d{2,3})\s*(?i:mm\s*hg)`),
	}

	glucoseFastingPatterns = []*regexp.Regexp{
		regexp.MustCompile(`(?i)\bfasting(?:\s+(?:blood\s+)?(?:glucose|sugar))?\s*[:\-]?\s*(\d{2,3}(?:\.\d+)?)`),
		regexp.MustCompile(`(?i)\bfbs\s*[:\-]?\s*(\d{2,3}(?:\.\d+)?)`),
	}
	glucoseOneHourPatterns = []*regexp.Regexp{
		regexp.MustCompile(`(?i)\b(?:1|one)[\s-]*h(?:ou)?r\s*(?:glucose|sugar|ogtt|post)?\s*[:\-]?\s*(\d{2,3}(?:\.\d+)?)`),
	}
	glucoseTwoHourPatterns = []*regexp.Regexp{
		regexp.MustCompile(`(?i)\b(?:2|two)[\s-]*h(?:ou)?r\s*(?:glucose|sugar|ogtt|post)?\s*[:\-]?\s*(\d{2,3}(?:\.\d+)?)`),
		regexp.MustCompile(`(?i)\bpost\s*prandial\s*(?:glucose|sugar)?\s*[:\-]?\s*(\d{2,3}(?:\.\d+)?)`),
	}

	fhrPatterns = []*regexp.Regexp{
		regexp.MustCompile(`(?i)\b(?:fhr|fetal\s*heart\s*(?:rate)?)\s*[:\-]?\s*(\d{2,3})`),
		regexp.MustCompile(`(?i)\b(\d{2,3})\s*bpm\b`),
	}
	afiPatterns = []*regexp.Regexp{
		regexp.MustCompile(`(?i)\bafi\s*[:\-]?\s*(\d{1,2}(?:\.\d+)?)`),
		regexp.MustCompile(`(?i)\bamniotic\s*fluid\s*(?:index)?\s*[:\-]?\s*(\d{1,2}(?:\.\d+)?)`),
	}
	efwPercentilePatterns = []*regexp.Regexp{
		regexp.MustCompile(`(?i)\befw[^%\n]*?(\d{1,3})\s*(?:th|st|nd|rd)?\s*(?:percentile|centile|%ile)`),
		regexp.MustCompile(`(?i)\b(\d{1,3})\s*(?:th|st|nd|rd)?\s*(?:percentile|centile)\b`),
	}
	cervicalLengthPatterns = []*regexp.Regexp{
		regexp.MustCompile(`(?i)\bcervi(?:cal|x)\s*(?:length)?\s*[:\-]?\s*(\d{1,3}(?:\.\d+)?)\s*(?:cm|mm)?`),
	}
	placentaPatterns = []*regexp.Regexp{
		regexp.MustCompile(`(?i)\bplacenta[^.\n]*?\b(anterior|posterior|fundal|lateral|previa|low[\s-]*lying)`),
		regexp.MustCompile(`(?i)\b(anterior|posterior|fundal|lateral|low[\s-]*lying)\s+placenta`),
	}
	gestationalAgePatterns = []*regexp.Regexp{
		regexp.MustCompile(`(?i)\b(?:gestational\s*age|ga)\s*[:\-]?\s*(\d{1,2}\s*(?:weeks?|wks?|w)(?:\s*(?:\+|and)?\s*\d\s*(?:days?|d))?)`),
		regexp.MustCompile(`(?i)\b(\d{1,2}\s*(?:weeks?|wks?)(?:\s*(?:\+|and)?\s*\d\s*(?:days?|d))?)\b`),
	}

	reportDatePatterns = []*regexp.Regexp{
		regexp.MustCompile(`(?i)\bdate\s*[:\-]\s*(\d{1,4}[-/.]\d{1,2}[-/.]\d{1,4})`),
		regexp.MustCompile(`\b(\d{1,2}[-/]\d{1,2}[-/]\d{2,4})\b`),
	}
)

// ---------------------------------------------------------------------------
// Matching helpers
// ---------------------------------------------------------------------------

// firstMatch tries the patterns in order and returns the capture groups of
// the first one that matches; ok is false when none did.
func firstMatch(text string, patterns []*regexp.Regexp) (groups []string, ok bool) {
	for _, re := range patterns {
		if m := re.FindStringSubmatch(text); m != nil {
			return m, true
		}
	}
	return nil, false
}

func matchFloat(text string, patterns []*regexp.Regexp) (float64, bool) {
	m, ok := firstMatch(text, patterns)
	if !ok {
		return 0, false
	}
	v, err := strconv.ParseFloat(m[1], 64)
	if err != nil {
		return 0, false
	}
	return v, true
}

func matchInt(text string, patterns []*regexp.Regexp) (int, bool) {
	m, ok := firstMatch(text, patterns)
	if !ok {
		return 0, false
	}
	v, err := strconv.Atoi(m[1])
	if err != nil {
		return 0, false
	}
	return v, true
}

func matchString(text string, patterns []*regexp.Regexp) (string, bool) {
	m, ok := firstMatch(text, patterns)
	if !ok {
		return "", false
	}
	return strings.TrimSpace(m[1]), true
}

// ---------------------------------------------------------------------------
// ParseReportText
// ---------------------------------------------------------------------------

// ParseReportText runs every field's pattern list against the raw text and
// assembles the structured result. Composite bundles (glucose, ultrasound)
// are attached only when at least one of their sub-values was found; a field
// with no match is entirely absent, never zero-filled. The function is total
// and idempotent: the same text always yields a structurally identical
// result.
func ParseReportText(text string) *ReportData {
	data := &ReportData{
		ReportType: DetectReportType(text),
	}

	if v, ok := matchFloat(text, hemoglobinPatterns); ok {
		data.Values.Hemoglobin = &Hemoglobin{Value: v, Unit: "g/dL"}
	}

	if m, ok := firstMatch(text, bloodPressurePatterns); ok {
		sys, errS := strconv.Atoi(m[1])
		dia, errD := strconv.Atoi(m[2])
		if errS == nil && errD == nil {
			data.Values.BloodPressure = &BloodPressure{Systolic: sys, Diastolic: dia, Unit: "mmHg"}
		}
	}

	glucose := &Glucose{Unit: "mg/dL"}
	glucoseFound := false
	if v, ok := matchFloat(text, glucoseFastingPatterns); ok {
		glucose.Fasting = floatPtr(v)
		glucoseFound = true
	}
	if v, ok := matchFloat(text, glucoseOneHourPatterns); ok {
		glucose.OneHour = floatPtr(v)
		glucoseFound = true
	}
	if v, ok := matchFloat(text, glucoseTwoHourPatterns); ok {
		glucose.TwoHour = floatPtr(v)
		glucoseFound = true
	}
	if glucoseFound {
		data.Values.Glucose = glucose
	}

	us := &Ultrasound{}
	usFound := false
	if v, ok := matchInt(text, fhrPatterns); ok {
		us.FHR = intPtr(v)
		usFound = true
	}
	if v, ok := matchFloat(text, afiPatterns); ok {
		us.AFI = floatPtr(v)
		usFound = true
	}
	if v, ok := matchInt(text, efwPercentilePatterns); ok {
		us.EFWPercentile = intPtr(v)
		usFound = true
	}
	if v, ok := matchFloat(text, cervicalLengthPatterns); ok {
		us.CervicalLength = floatPtr(normalizeCervicalLength(v))
		usFound = true
	}
	if v, ok := matchString(text, placentaPatterns); ok {
		us.PlacentaPosition = strings.ToLower(v)
		usFound = true
	}

	// Gestational age is a top-level fact about the report; it is mirrored
	// into the ultrasound bundle only when actual measurements justified one.
	if v, ok := matchString(text, gestationalAgePatterns); ok {
		data.GestationalAgeReported = v
		if usFound {
			us.GestationalAge = v
		}
	}
	if usFound {
		data.Values.Ultrasound = us
	}

	if v, ok := matchString(text, reportDatePatterns); ok {
		data.ReportDate = v
	}

	return data
}

// normalizeCervicalLength converts a millimeter reading to centimeters using
// the fixed heuristic: values above 10 are assumed to be millimeters and
// divided by 10. A plausible centimeter value (≤ 10) passes through
// unchanged. This rule is part of the pipeline's compatibility contract.
func normalizeCervicalLength(v float64) float64 {
	if v > 10 {
		return v / 10
	}
	return v
}
