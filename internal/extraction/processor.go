package extraction

import (
	"context"
	"time"
	"unicode/utf8"

	"github.com/google/uuid"

	"github.com/materna-health/materna/internal/config"
	"github.com/materna-health/materna/internal/infrastructure/monitoring/logging"
	"github.com/materna-health/materna/internal/infrastructure/monitoring/metrics"
	"github.com/materna-health/materna/pkg/errors"
)

// Fixed pipeline confidence constants. Callers compare scores produced by
// different runs, so these are part of the compatibility contract rather
// than tunables: text layers are trusted fully, OCR gets a flat score, and
// a report from which nothing could be extracted keeps only half of its
// acquisition confidence.
const (
	pdfConfidence      = 1.0
	imageOCRConfidence = 0.85
	zeroMatchPenalty   = 0.5
)

// InputFile is an uploaded report document.
type InputFile struct {
	Name string
	MIME string
	Data []byte
}

// Result is the full outcome of one pipeline run.
type Result struct {
	ReportID   string         `json:"reportId"`
	Source     string         `json:"source"`
	Confidence float64        `json:"confidence"`
	RawText    string         `json:"rawText"`
	Data       *ReportData    `json:"data"`
	Urgency    UrgencyVerdict `json:"urgency"`
	Summary    string         `json:"summary"`
}

// Processor orchestrates the pipeline stages. Zero-value is not usable;
// construct with NewProcessor.
type Processor struct {
	logger       logging.Logger
	metrics      metrics.PipelineMetrics
	ocrFactory   OCRFactory
	ocrLanguages []string
	ocrDataPath  string
	maxTextLen   int
}

// Option customizes a Processor.
type Option func(*Processor)

// WithOCRFactory overrides the engine constructor used for image inputs.
func WithOCRFactory(factory OCRFactory) Option {
	return func(p *Processor) { p.ocrFactory = factory }
}

// WithMetrics attaches a metrics sink.
func WithMetrics(m metrics.PipelineMetrics) Option {
	return func(p *Processor) { p.metrics = m }
}

// NewProcessor builds a Processor from configuration.
func NewProcessor(cfg *config.Config, logger logging.Logger, opts ...Option) (*Processor, error) {
	if cfg == nil {
		return nil, errors.New(errors.CodeInvalidParam, "config is required")
	}
	if logger == nil {
		logger = logging.NewNopLogger()
	}
	p := &Processor{
		logger:       logger.Named("extraction"),
		metrics:      metrics.NewNoopMetrics(),
		ocrFactory:   NewTesseractEngine,
		ocrLanguages: cfg.OCR.Languages,
		ocrDataPath:  cfg.OCR.DataPath,
		maxTextLen:   cfg.Extraction.MaxTextLength,
	}
	for _, opt := range opts {
		opt(p)
	}
	return p, nil
}

// Process runs the full pipeline on one uploaded file: acquire text, detect
// and extract values, evaluate urgency and render the summary. Extraction
// itself never fails; only acquisition can return an error.
//
// The returned RawText is the acquired text as-is, for caller-side display
// and audit. Callers pass it through RedactText before persisting or
// transmitting it; redaction is not a pipeline stage because its best-effort
// rules can rewrite clinical digit runs the extractor needs.
func (p *Processor) Process(ctx context.Context, in InputFile) (*Result, error) {
	start := time.Now()
	reportID := uuid.New().String()
	log := p.logger.With(
		logging.String("report_id", reportID),
		logging.String("file", in.Name),
	)

	text, source, confidence, err := p.acquireText(ctx, in)
	if err != nil {
		log.Error("text acquisition failed",
			logging.String("mime", in.MIME),
			logging.Err(err),
		)
		p.metrics.RecordAcquisitionFailure(ctx, source)
		return nil, err
	}
	if p.maxTextLen > 0 && len(text) > p.maxTextLen {
		log.Warn("truncating acquired text",
			logging.Int("length", len(text)),
			logging.Int("max", p.maxTextLen),
		)
		text = truncateToRuneBoundary(text, p.maxTextLen)
	}

	data := ParseReportText(text)
	if data.Values.Count() == 0 {
		confidence *= zeroMatchPenalty
	}
	urgency := EvaluateUrgency(data)

	result := &Result{
		ReportID:   reportID,
		Source:     source,
		Confidence: confidence,
		RawText:    text,
		Data:       data,
		Urgency:    urgency,
		Summary:    FormatReportSummary(data),
	}

	durationMs := float64(time.Since(start).Microseconds()) / 1000
	p.metrics.RecordReport(ctx, &metrics.ReportMetricParams{
		ReportType: string(data.ReportType),
		Source:     source,
		DurationMs: durationMs,
		Confidence: confidence,
		ValueCount: data.Values.Count(),
		Urgent:     urgency.Urgent,
	})
	log.Info("report processed",
		logging.String("report_type", string(data.ReportType)),
		logging.String("source", source),
		logging.Int("values", data.Values.Count()),
		logging.Float64("confidence", confidence),
		logging.Bool("urgent", urgency.Urgent),
	)
	return result, nil
}

// ProcessText runs every stage downstream of acquisition on already-acquired
// text with the given confidence. Useful when the caller obtained the text
// out of band.
func (p *Processor) ProcessText(text string, confidence float64) *Result {
	text = cleanText(text)
	if p.maxTextLen > 0 && len(text) > p.maxTextLen {
		text = truncateToRuneBoundary(text, p.maxTextLen)
	}
	data := ParseReportText(text)
	if data.Values.Count() == 0 {
		confidence *= zeroMatchPenalty
	}
	return &Result{
		ReportID:   uuid.New().String(),
		Source:     "text",
		Confidence: confidence,
		RawText:    text,
		Data:       data,
		Urgency:    EvaluateUrgency(data),
		Summary:    FormatReportSummary(data),
	}
}

// truncateToRuneBoundary cuts s to at most max bytes without splitting a
// multi-byte rune.
func truncateToRuneBoundary(s string, max int) string {
	if max <= 0 || len(s) <= max {
		return s
	}
	cut := max
	for cut > 0 && !utf8.RuneStart(s[cut]) {
		cut--
	}
	return s[:cut]
}
