package extraction

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestParseReportTextHemoglobin(t *testing.T) {
	tests := []struct {
		name string
		text string
		want float64
	}{
		{"full label", "Hemoglobin: 11.5 g/dL", 11.5},
		{"british spelling", "Haemoglobin 10.8 g/dl", 10.8},
		{"short label", "Hb 9.2 g/dL", 9.2},
		{"labeled pattern wins over short form", "Hemoglobin: 11.5 g/dL (prior Hb 9.2)", 11.5},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			data := ParseReportText(tt.text)
			require.NotNil(t, data.Values.Hemoglobin)
			assert.Equal(t, tt.want, data.Values.Hemoglobin.Value)
			assert.Equal(t, "g/dL", data.Values.Hemoglobin.Unit)
		})
	}
}

func TestParseReportTextBloodPressure(t *testing.T) {
	t.Run("labeled reading", func(t *testing.T) {
		data := ParseReportText("BP: 165/70 mmHg")
		require.NotNil(t, data.Values.BloodPressure)
		assert.Equal(t, 165, data.Values.BloodPressure.Systolic)
		assert.Equal(t, 70, data.Values.BloodPressure.Diastolic)
		assert.Equal(t, "mmHg", data.Values.BloodPressure.Unit)
	})

	t.Run("bare reading with unit", func(t *testing.T) {
		data := ParseReportText("today's reading was 120/80 mmHg at rest")
		require.NotNil(t, data.Values.BloodPressure)
		assert.Equal(t, 120, data.Values.BloodPressure.Systolic)
		assert.Equal(t, 80, data.Values.BloodPressure.Diastolic)
	})

	t.Run("bare pair without unit or label is ignored", func(t *testing.T) {
		data := ParseReportText("score 120/80 on the intake form")
		assert.Nil(t, data.Values.BloodPressure)
	})
}

func TestParseReportTextGlucose(t *testing.T) {
	data := ParseReportText("OGTT results. Fasting glucose: 92 mg/dL, 1 hour: 175 mg/dL, 2 hour: 148 mg/dL")
	require.NotNil(t, data.Values.Glucose)
	require.NotNil(t, data.Values.Glucose.Fasting)
	require.NotNil(t, data.Values.Glucose.OneHour)
	require.NotNil(t, data.Values.Glucose.TwoHour)
	assert.Equal(t, 92.0, *data.Values.Glucose.Fasting)
	assert.Equal(t, 175.0, *data.Values.Glucose.OneHour)
	assert.Equal(t, 148.0, *data.Values.Glucose.TwoHour)
	assert.Equal(t, "mg/dL", data.Values.Glucose.Unit)
}

func TestParseReportTextGlucosePartial(t *testing.T) {
	data := ParseReportText("Fasting sugar 88")
	require.NotNil(t, data.Values.Glucose)
	require.NotNil(t, data.Values.Glucose.Fasting)
	assert.Equal(t, 88.0, *data.Values.Glucose.Fasting)
	assert.Nil(t, data.Values.Glucose.OneHour)
	assert.Nil(t, data.Values.Glucose.TwoHour)
}

func TestParseReportTextUltrasound(t *testing.T) {
	text := "Ultrasound at 32 weeks 4 days. FHR: 142 bpm. AFI: 12.5 cm. " +
		"EFW 1900g, 45th percentile. Placenta is posterior, upper segment. Cervical length: 35 mm."
	data := ParseReportText(text)

	us := data.Values.Ultrasound
	require.NotNil(t, us)
	require.NotNil(t, us.FHR)
	require.NotNil(t, us.AFI)
	require.NotNil(t, us.EFWPercentile)
	require.NotNil(t, us.CervicalLength)

	assert.Equal(t, 142, *us.FHR)
	assert.Equal(t, 12.5, *us.AFI)
	assert.Equal(t, 45, *us.EFWPercentile)
	assert.Equal(t, "posterior", us.PlacentaPosition)
	assert.Equal(t, "32 weeks 4 days", us.GestationalAge)
	assert.Equal(t, "32 weeks 4 days", data.GestationalAgeReported)
}

func TestParseReportTextCervicalLengthNormalization(t *testing.T) {
	tests := []struct {
		name string
		text string
		want float64
	}{
		{"millimeters are converted", "Cervical length: 35 mm", 3.5},
		{"centimeters pass through", "Cervix: 2.8 cm", 2.8},
		{"boundary value passes through", "Cervical length: 10", 10.0},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			data := ParseReportText(tt.text)
			require.NotNil(t, data.Values.Ultrasound)
			require.NotNil(t, data.Values.Ultrasound.CervicalLength)
			assert.InDelta(t, tt.want, *data.Values.Ultrasound.CervicalLength, 1e-9)
		})
	}
}

func TestParseReportTextGestationalAgeAlone(t *testing.T) {
	// A gestational age mention on its own is a fact about the report, not
	// an ultrasound measurement, so it must not materialize a bundle.
	data := ParseReportText("Routine visit at 30 weeks")
	assert.Equal(t, "30 weeks", data.GestationalAgeReported)
	assert.Nil(t, data.Values.Ultrasound)
	assert.Equal(t, 0, data.Values.Count())
}

func TestParseReportTextReportDate(t *testing.T) {
	t.Run("labeled date wins over earlier bare date", func(t *testing.T) {
		data := ParseReportText("Printed 01/01/2020. Date: 12/05/2024")
		assert.Equal(t, "12/05/2024", data.ReportDate)
	})

	t.Run("bare date fallback", func(t *testing.T) {
		data := ParseReportText("Visit on 15/03/2024 went well")
		assert.Equal(t, "15/03/2024", data.ReportDate)
	})
}

func TestParseReportTextAbsenceInvariant(t *testing.T) {
	data := ParseReportText("The patient reports feeling well.")
	assert.Nil(t, data.Values.Hemoglobin)
	assert.Nil(t, data.Values.BloodPressure)
	assert.Nil(t, data.Values.Glucose)
	assert.Nil(t, data.Values.Ultrasound)
	assert.Empty(t, data.GestationalAgeReported)
	assert.Empty(t, data.ReportDate)
	assert.Equal(t, 0, data.Values.Count())
}

func TestParseReportTextIdempotent(t *testing.T) {
	text := "BP: 165/70 mmHg, Hb 9.2 g/dL, FHR 145 bpm"
	first := ParseReportText(text)
	second := ParseReportText(text)
	assert.Equal(t, first, second)
}

func TestParseReportTextNeverFails(t *testing.T) {
	inputs := []string{
		"",
		"   \n\n\t  ",
		"////////",
		"Hb: not measured today",
		"BP pending, glucose pending",
	}
	for _, in := range inputs {
		data := ParseReportText(in)
		require.NotNil(t, data)
	}
}
