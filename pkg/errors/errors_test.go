package errors

import (
	stderrors "errors"
	"fmt"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestNewAndErrorFormat(t *testing.T) {
	err := New(CodeUnsupportedFileType, "file type is not supported")
	assert.Equal(t, "[ACQ_001] file type is not supported", err.Error())

	withDetail := err.WithDetail("mime=text/plain")
	assert.Equal(t, "[ACQ_001] file type is not supported: mime=text/plain", withDetail.Error())
	// WithDetail must not mutate the original.
	assert.Empty(t, err.Detail)
}

func TestWrapPreservesChain(t *testing.T) {
	cause := stderrors.New("boom")
	err := Wrap(cause, CodeAcquisitionFailure, "failed to read PDF")
	require.NotNil(t, err)

	assert.True(t, stderrors.Is(err, cause))
	assert.Equal(t, CodeAcquisitionFailure, err.Code)
	assert.Nil(t, Wrap(nil, CodeAcquisitionFailure, "ignored"))
}

func TestWrapUnknownKeepsOriginalCode(t *testing.T) {
	inner := New(CodeUnsupportedFileType, "unsupported")
	outer := Wrap(fmt.Errorf("context: %w", inner), CodeUnknown, "processing failed")
	assert.Equal(t, CodeUnsupportedFileType, outer.Code)
}

func TestIsCode(t *testing.T) {
	inner := New(CodeUnsupportedFileType, "unsupported")
	wrapped := fmt.Errorf("outer: %w", inner)

	assert.True(t, IsCode(wrapped, CodeUnsupportedFileType))
	assert.False(t, IsCode(wrapped, CodeAcquisitionFailure))
	assert.False(t, IsCode(nil, CodeUnsupportedFileType))
}

func TestGetCode(t *testing.T) {
	assert.Equal(t, CodeOK, GetCode(nil))
	assert.Equal(t, CodeUnknown, GetCode(stderrors.New("plain")))
	assert.Equal(t, CodeAcquisitionFailure, GetCode(New(CodeAcquisitionFailure, "x")))
}
