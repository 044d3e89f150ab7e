package extraction

import "regexp"

// The redactor substitutes identifying strings with fixed placeholder tokens
// before the text leaves the trust boundary. It never deletes text outright,
// only replaces matches, so clinical measurements survive redaction intact.

var redactionRules = []struct {
	pattern     *regexp.Regexp
	replacement string
}{
	// Clinician names with an honorific or professional title, matched
	// case-insensitively. The name is bounded at two tokens so prose after
	// a two-word name is never consumed.
	{
		pattern:     regexp.MustCompile(`(?i)\b(?:dr|doctor|prof|professor)\.?\s+[a-z][a-z'\-]+(?:\s+[a-z][a-z'\-]+)?`),
		replacement: "[PROVIDER]",
	},
	// Patient names introduced by an explicit label, up to three tokens.
	{
		pattern:     regexp.MustCompile(`(?i)\b(?:patient\s*name|patient|name)\s*[:\-]\s*[a-z][a-z'\-]+(?:\s+[a-z][a-z'\-]+){0,2}`),
		replacement: "Patient: [PATIENT]",
	},
	// Record / hospital numbers: a labelled alphanumeric identifier.
	{
		pattern:     regexp.MustCompile(`(?i)\b(?:mrn|uhid|patient\s*id|hospital\s*no|reg(?:istration)?\s*no)\.?\s*[:\-]?\s*[A-Za-z0-9\-]{4,}`),
		replacement: "[ID]",
	},
	// Phone numbers: 8+ digits allowing separators and an optional country code.
	{
		pattern:     regexp.MustCompile(`(?:\+\d{1,3}[\s\-]?)?\(?\d{3,5}\)?[\s\-]?\d{3,4}[\s\-]?\d{3,4}\b`),
		replacement: "[PHONE]",
	},
}

// RedactText applies the redaction rules in order and returns the sanitized
// text. The operation is idempotent: placeholder tokens contain no letters or
// digit runs that any rule matches, so a second pass is a no-op.
func RedactText(text string) string {
	for _, rule := range redactionRules {
		text = rule.pattern.ReplaceAllString(text, rule.replacement)
	}
	return text
}
