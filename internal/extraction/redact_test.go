package extraction

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestRedactText(t *testing.T) {
	tests := []struct {
		name string
		in   string
		want string
	}{
		{
			name: "provider name",
			in:   "Reviewed by Dr. Sarah Mwangi before discharge",
			want: "Reviewed by [PROVIDER] before discharge",
		},
		{
			name: "provider without period",
			in:   "Signed: Dr Achieng",
			want: "Signed: [PROVIDER]",
		},
		{
			name: "lowercase provider name",
			in:   "seen by dr. sarah mwangi, follow up in two weeks",
			want: "seen by [PROVIDER], follow up in two weeks",
		},
		{
			name: "patient name label",
			in:   "Patient Name: Jane Doe, 28 years",
			want: "Patient: [PATIENT], 28 years",
		},
		{
			name: "lowercase patient label",
			in:   "patient: jane doe, gravida 2",
			want: "Patient: [PATIENT], gravida 2",
		},
		{
			name: "record number",
			in:   "MRN: AB-123456 admitted today",
			want: "[ID] admitted today",
		},
		{
			name: "phone with country code",
			in:   "Contact: +254 712 345 678",
			want: "Contact: [PHONE]",
		},
		{
			name: "plain phone number",
			in:   "Call 0712345678 to reschedule",
			want: "Call [PHONE] to reschedule",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, RedactText(tt.in))
		})
	}
}

func TestRedactTextNoOpWithoutIdentifiers(t *testing.T) {
	tests := []string{
		"BP: 165/70 mmHg, Hb 9.2 g/dL, FHR 145 bpm",
		"Fasting glucose: 92 mg/dL, AFI 12.5 cm, cephalic presentation.",
		"Gestational age: 32 weeks 4 days. Cervical length 35 mm.",
	}
	for _, in := range tests {
		assert.Equal(t, in, RedactText(in))
	}
}

func TestRedactTextIdempotent(t *testing.T) {
	in := "Patient Name: Jane Doe, seen by Dr. Sarah Mwangi, MRN: AB-123456, phone +254 712 345 678"
	once := RedactText(in)
	twice := RedactText(once)
	assert.Equal(t, once, twice)
}

func TestRedactTextPreservesClinicalValues(t *testing.T) {
	in := "Dr. Sarah Mwangi notes: BP: 165/70 mmHg, Hb 9.2 g/dL, FHR 145 bpm"
	out := RedactText(in)

	assert.NotContains(t, out, "Mwangi")
	assert.Contains(t, out, "[PROVIDER]")

	data := ParseReportText(out)
	require.NotNil(t, data.Values.BloodPressure)
	require.NotNil(t, data.Values.Hemoglobin)
	require.NotNil(t, data.Values.Ultrasound)
	assert.Equal(t, 165, data.Values.BloodPressure.Systolic)
	assert.Equal(t, 9.2, data.Values.Hemoglobin.Value)
	assert.Equal(t, 145, *data.Values.Ultrasound.FHR)
}
