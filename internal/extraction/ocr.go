package extraction

import (
	"context"

	"github.com/otiai10/gosseract/v2"

	"github.com/materna-health/materna/pkg/errors"
)

// OCREngine recognizes text in an image. Implementations own native
// resources and must be closed after use; the processor creates one engine
// per image through an OCRFactory so a failed recognition never poisons
// later calls.
type OCREngine interface {
	Recognize(ctx context.Context, image []byte) (string, error)
	Close() error
}

// OCRFactory creates a ready-to-use engine. languages is a list of
// tesseract language codes, e.g. ["eng"].
type OCRFactory func(languages []string, dataPath string) (OCREngine, error)

// tesseractEngine wraps a gosseract client.
type tesseractEngine struct {
	client *gosseract.Client
}

// NewTesseractEngine creates an engine backed by the system tesseract
// installation.
func NewTesseractEngine(languages []string, dataPath string) (OCREngine, error) {
	client := gosseract.NewClient()
	if len(languages) > 0 {
		if err := client.SetLanguage(languages...); err != nil {
			client.Close()
			return nil, errors.Wrap(err, errors.CodeAcquisitionFailure, "setting OCR languages")
		}
	}
	if dataPath != "" {
		if err := client.SetTessdataPrefix(dataPath); err != nil {
			client.Close()
			return nil, errors.Wrap(err, errors.CodeAcquisitionFailure, "setting OCR data path")
		}
	}
	return &tesseractEngine{client: client}, nil
}

func (e *tesseractEngine) Recognize(ctx context.Context, image []byte) (string, error) {
	if err := ctx.Err(); err != nil {
		return "", err
	}
	if err := e.client.SetImageFromBytes(image); err != nil {
		return "", errors.Wrap(err, errors.CodeAcquisitionFailure, "loading image for OCR")
	}
	text, err := e.client.Text()
	if err != nil {
		return "", errors.Wrap(err, errors.CodeAcquisitionFailure, "running OCR")
	}
	return text, nil
}

func (e *tesseractEngine) Close() error {
	return e.client.Close()
}

// staticEngine returns a canned result; used in tests to exercise the
// pipeline without a tesseract installation.
type staticEngine struct {
	text string
	err  error
}

// NewStaticOCREngine returns an engine whose Recognize always yields the
// given text and error.
func NewStaticOCREngine(text string, err error) OCREngine {
	return &staticEngine{text: text, err: err}
}

func (e *staticEngine) Recognize(context.Context, []byte) (string, error) { return e.text, e.err }
func (e *staticEngine) Close() error                                      { return nil }
