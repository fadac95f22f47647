package service

import "errors"

// ErrUnsupportedFormat marks content types a TextExtractor cannot read
// (extraction-wise; the file itself is still stored).
var ErrUnsupportedFormat = errors.New("unsupported format for text extraction")

// TextExtractor turns an uploaded resume into plain text for the
// extraction pipeline.
type TextExtractor interface {
	ExtractText(contentType string, data []byte) (string, error)
}
