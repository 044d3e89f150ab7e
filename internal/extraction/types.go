// Package extraction implements the clinical report pipeline: text
// acquisition from an uploaded PDF or image, report type detection,
// pattern-based extraction of structured clinical values, urgency
// evaluation against fixed thresholds, privacy redaction, and plain-text
// formatting for downstream consumers.
//
// Everything downstream of a successful text acquisition is total: a value
// that no pattern matched is simply absent from the result, never an error.
package extraction

// ---------------------------------------------------------------------------
// ReportType
// ---------------------------------------------------------------------------

// ReportType classifies the kind of clinical report recognised.
type ReportType string

const (
	ReportTypeUltrasound ReportType = "ultrasound"
	ReportTypeBloodTest  ReportType = "blood_test"
	ReportTypeVitalSigns ReportType = "vital_signs"
)

// ---------------------------------------------------------------------------
// Value sub-entities
// ---------------------------------------------------------------------------

// Hemoglobin is a hemoglobin reading in g/dL.
type Hemoglobin struct {
	Value float64 `json:"value"`
	Unit  string  `json:"unit"`
}

// BloodPressure is a systolic/diastolic pair in mmHg.
type BloodPressure struct {
	Systolic  int    `json:"systolic"`
	Diastolic int    `json:"diastolic"`
	Unit      string `json:"unit"`
}

// Glucose bundles up to three glucose readings in mg/dL. Each sub-field is
// present only if its pattern matched; the struct itself is only attached to
// a report when at least one sub-field was found.
type Glucose struct {
	Fasting *float64 `json:"fasting,omitempty"`
	OneHour *float64 `json:"oneHour,omitempty"`
	TwoHour *float64 `json:"twoHour,omitempty"`
	Unit    string   `json:"unit"`
}

// Ultrasound bundles the measurements pulled from an ultrasound report.
// Same presence rule as Glucose: attached only when at least one sub-field
// was found.
type Ultrasound struct {
	// FHR is the fetal heart rate in beats per minute.
	FHR *int `json:"fhr,omitempty"`

	// AFI is the amniotic fluid index in centimeters.
	AFI *float64 `json:"afi,omitempty"`

	// EFWPercentile is the estimated-fetal-weight percentile rank.
	EFWPercentile *int `json:"efwPercentile,omitempty"`

	// CervicalLength is in centimeters after unit normalization.
	CervicalLength *float64 `json:"cervicalLength,omitempty"`

	PlacentaPosition string `json:"placentaPosition,omitempty"`
	GestationalAge   string `json:"gestationalAge,omitempty"`
}

// ReportValues groups the optional extracted value bundles. A nil field means
// no pattern for that bundle matched; absence is never represented by a
// zero-filled struct.
type ReportValues struct {
	Hemoglobin    *Hemoglobin    `json:"hemoglobin,omitempty"`
	BloodPressure *BloodPressure `json:"bloodPressure,omitempty"`
	Glucose       *Glucose       `json:"glucose,omitempty"`
	Ultrasound    *Ultrasound    `json:"ultrasound,omitempty"`
}

// Count returns how many top-level value bundles are present. Zero means no
// pattern matched anything; the orchestrator halves its confidence in that
// case.
func (v ReportValues) Count() int {
	n := 0
	if v.Hemoglobin != nil {
		n++
	}
	if v.BloodPressure != nil {
		n++
	}
	if v.Glucose != nil {
		n++
	}
	if v.Ultrasound != nil {
		n++
	}
	return n
}

// ---------------------------------------------------------------------------
// ReportData
// ---------------------------------------------------------------------------

// ReportData is the central output entity of the pipeline. It is created once
// per extraction call, never mutated afterwards, and owned entirely by the
// caller.
type ReportData struct {
	ReportType             ReportType   `json:"reportType"`
	Values                 ReportValues `json:"values"`
	GestationalAgeReported string       `json:"gestationalAgeReported,omitempty"`
	ReportDate             string       `json:"reportDate,omitempty"`
}

// ---------------------------------------------------------------------------
// UrgencyVerdict
// ---------------------------------------------------------------------------

// UrgencyVerdict is the ephemeral result of threshold evaluation. Urgent is
// true iff Reasons is non-empty.
type UrgencyVerdict struct {
	Urgent  bool     `json:"urgent"`
	Reasons []string `json:"reasons"`
}

// helpers for optional numeric fields

func floatPtr(v float64) *float64 { return &v }
func intPtr(v int) *int           { return &v }
