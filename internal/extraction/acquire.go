package extraction

import (
	"bytes"
	"context"
	"regexp"
	"strings"

	"github.com/ledongthuc/pdf"

	"github.com/materna-health/materna/pkg/errors"
)

// Acquisition source labels, reported alongside the extracted text so the
// caller knows which path produced it.
const (
	SourcePDFText = "pdf_text"
	SourceOCR     = "image_ocr"
)

var (
	collapseSpaces = regexp.MustCompile(`[ \t]+`)
	collapseLines  = regexp.MustCompile(`\n{3,}`)
)

// cleanText normalizes the whitespace noise both PDF text layers and OCR
// output produce: CRLF line endings, runs of spaces and stacked blank lines.
func cleanText(text string) string {
	text = strings.ReplaceAll(text, "\r\n", "\n")
	text = strings.ReplaceAll(text, "\r", "\n")
	text = collapseSpaces.ReplaceAllString(text, " ")
	text = collapseLines.ReplaceAllString(text, "\n\n")
	return strings.TrimSpace(text)
}

// extractPDFText pulls the embedded text layer out of a PDF, page by page in
// document order, joined with newlines.
func extractPDFText(data []byte) (string, error) {
	reader, err := pdf.NewReader(bytes.NewReader(data), int64(len(data)))
	if err != nil {
		return "", errors.Wrap(err, errors.CodeAcquisitionFailure, "opening PDF")
	}

	var pages []string
	for i := 1; i <= reader.NumPage(); i++ {
		page := reader.Page(i)
		if page.V.IsNull() {
			continue
		}
		text, err := page.GetPlainText(nil)
		if err != nil {
			return "", errors.Wrap(err, errors.CodeAcquisitionFailure, "reading PDF page text")
		}
		pages = append(pages, text)
	}
	return strings.Join(pages, "\n"), nil
}

// isPDF and isImage classify the declared content type; anything else is an
// unsupported upload.
func isPDF(mime string) bool {
	return strings.EqualFold(mime, "application/pdf")
}

func isImage(mime string) bool {
	switch strings.ToLower(mime) {
	case "image/png", "image/jpeg", "image/jpg", "image/tiff", "image/bmp", "image/webp":
		return true
	}
	return false
}

// acquireText produces raw text plus an acquisition confidence for the input
// file. A PDF's embedded text layer is trusted fully; OCR output always
// carries the flat OCR confidence regardless of image quality, which keeps
// downstream behavior reproducible for identical inputs.
func (p *Processor) acquireText(ctx context.Context, in InputFile) (text, source string, confidence float64, err error) {
	switch {
	case isPDF(in.MIME):
		text, err = extractPDFText(in.Data)
		if err != nil {
			return "", SourcePDFText, 0, err
		}
		return cleanText(text), SourcePDFText, pdfConfidence, nil

	case isImage(in.MIME):
		engine, err := p.ocrFactory(p.ocrLanguages, p.ocrDataPath)
		if err != nil {
			return "", SourceOCR, 0, err
		}
		defer engine.Close()

		text, err = engine.Recognize(ctx, in.Data)
		if err != nil {
			return "", SourceOCR, 0, errors.Wrap(err, errors.CodeAcquisitionFailure, "recognizing image text")
		}
		return cleanText(text), SourceOCR, imageOCRConfidence, nil

	default:
		return "", "", 0, errors.Newf(errors.CodeUnsupportedFileType,
			"unsupported file type %q for %s", in.MIME, in.Name)
	}
}
