package errors

// ErrorCode identifies a specific failure category.
type ErrorCode string

func (c ErrorCode) String() string {
	return string(c)
}

// Common error codes shared by every layer.
const (
	CodeUnknown      ErrorCode = "COMMON_000"
	CodeInternal     ErrorCode = "COMMON_001"
	CodeInvalidParam ErrorCode = "COMMON_002"
	CodeNotFound     ErrorCode = "COMMON_003"
	CodeOK           ErrorCode = "OK"
)

// Acquisition error codes. These are the only errors the extraction pipeline
// surfaces to callers: everything downstream of a successful text acquisition
// is total and degrades to absent fields instead of failing.
const (
	// CodeUnsupportedFileType is returned synchronously when the supplied
	// MIME type is neither application/pdf nor image/*. No extraction work
	// is attempted.
	CodeUnsupportedFileType ErrorCode = "ACQ_001"

	// CodeAcquisitionFailure wraps any failure inside the PDF parser or the
	// OCR engine (corrupt file, engine crash). The pipeline does not retry.
	CodeAcquisitionFailure ErrorCode = "ACQ_002"
)

// Configuration error codes.
const (
	CodeConfigInvalid ErrorCode = "CFG_001"
)
