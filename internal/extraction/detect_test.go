package extraction

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestDetectReportType(t *testing.T) {
	tests := []struct {
		name string
		text string
		want ReportType
	}{
		{
			name: "ultrasound vocabulary dominates",
			text: "Obstetric ultrasound. Placenta anterior, cephalic presentation, normal doppler.",
			want: ReportTypeUltrasound,
		},
		{
			name: "blood test vocabulary dominates",
			text: "Complete blood count. Hemoglobin normal, platelet count normal, glucose pending.",
			want: ReportTypeBloodTest,
		},
		{
			name: "vital signs vocabulary dominates",
			text: "Blood pressure recorded, pulse regular, temperature afebrile.",
			want: ReportTypeVitalSigns,
		},
		{
			name: "three way tie resolves to ultrasound",
			text: "placenta hemoglobin pulse",
			want: ReportTypeUltrasound,
		},
		{
			name: "two way tie resolves to blood test",
			text: "hemoglobin pulse",
			want: ReportTypeBloodTest,
		},
		{
			name: "no vocabulary hits falls back to ultrasound",
			text: "nothing clinical here",
			want: ReportTypeUltrasound,
		},
		{
			name: "case insensitive matching",
			text: "HEMOGLOBIN AND PLATELET COUNTS WITHIN RANGE, GLUCOSE NORMAL",
			want: ReportTypeBloodTest,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, DetectReportType(tt.text))
		})
	}
}

func TestDetectReportTypeDeterministic(t *testing.T) {
	text := "ultrasound hemoglobin blood pressure fetal glucose pulse"
	first := DetectReportType(text)
	for i := 0; i < 10; i++ {
		assert.Equal(t, first, DetectReportType(text))
	}
}
