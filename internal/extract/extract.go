// Package extract pulls plain text out of uploaded project-description
// documents.
package extract

import (
	"bytes"
	"errors"
	"fmt"
	"io"
	"path/filepath"
	"strings"
	"unicode/utf8"
)

// MaxSize caps how much of an upload is read.
const MaxSize = 4 << 20

var (
	// ErrUnsupportedFileType is returned for uploads that are not plain
	// text. PDF extraction requires an external converter and is not
	// built in.
	ErrUnsupportedFileType = errors.New("unsupported file type — upload a plain-text document")

	// ErrEmpty is returned when the extracted text trims to nothing.
	ErrEmpty = errors.New("document contains no text")
)

var textExtensions = map[string]bool{
	"":          true,
	".txt":      true,
	".text":     true,
	".md":       true,
	".markdown": true,
}

// Text reads an uploaded document and returns its contents as a string.
func Text(name string, r io.Reader) (string, error) {
	ext := strings.ToLower(filepath.Ext(name))
	if !textExtensions[ext] {
		return "", fmt.Errorf("%w: %s", ErrUnsupportedFileType, ext)
	}

	data, err := io.ReadAll(io.LimitReader(r, MaxSize))
	if err != nil {
		return "", fmt.Errorf("read document: %w", err)
	}
	if bytes.HasPrefix(data, []byte("%PDF")) {
		return "", fmt.Errorf("%w: PDF", ErrUnsupportedFileType)
	}
	if !utf8.Valid(data) || bytes.IndexByte(data, 0) >= 0 {
		return "", fmt.Errorf("%w: binary content", ErrUnsupportedFileType)
	}

	text := strings.TrimSpace(string(data))
	if text == "" {
		return "", ErrEmpty
	}
	return text, nil
}
