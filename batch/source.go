package batch

import (
	"errors"
	"fmt"
	"io"

	"github.com/Drolfothesgnir/htmlscan/analyzer"
	"golang.org/x/net/html/charset"
)

// ErrDocumentTooLarge is returned when the document exceeds the size limit.
var ErrDocumentTooLarge = errors.New("document is too large")

// Source supplies the text of a single document to a worker.
type Source interface {
	// ID returns the identifier the report is bound to.
	ID() string

	// Load returns the text of the document.
	// An error makes the document's outcome a failure.
	Load() (string, error)
}

type textSource struct {
	doc analyzer.Document
}

func (s textSource) ID() string {
	return s.doc.ID
}

func (s textSource) Load() (string, error) {
	return s.doc.Text, nil
}

// TextSource wraps an already loaded (id, text) pair.
func TextSource(id, text string) Source {
	return textSource{analyzer.Document{ID: id, Text: text}}
}

// FromDocuments wraps each document into a [Source], preserving the order.
func FromDocuments(docs []analyzer.Document) []Source {
	sources := make([]Source, len(docs))
	for i, doc := range docs {
		sources[i] = textSource{doc}
	}
	return sources
}

// OpenFunc opens the raw bytes of a document.
type OpenFunc func() (io.ReadCloser, error)

type readerSource struct {
	id          string
	contentType string
	maxBytes    int64
	open        OpenFunc
}

// ReaderSource creates a [Source] which opens the raw bytes only when a worker loads them
// and decodes them with [Decode].
func ReaderSource(id, contentType string, maxBytes int64, open OpenFunc) Source {
	return readerSource{
		id:          id,
		contentType: contentType,
		maxBytes:    maxBytes,
		open:        open,
	}
}

func (s readerSource) ID() string {
	return s.id
}

func (s readerSource) Load() (string, error) {
	rc, err := s.open()
	if err != nil {
		return "", fmt.Errorf("cannot open document: %w", err)
	}
	defer rc.Close()

	return Decode(rc, s.contentType, s.maxBytes)
}

// Decode reads r and converts its content to UTF-8. The encoding is determined from
// the BOM, the charset of contentType, or a <meta> declaration in the first bytes,
// falling back to UTF-8 and windows-1252 sniffing.
//
// A non-positive maxBytes means no limit. Exceeding the limit returns [ErrDocumentTooLarge].
func Decode(r io.Reader, contentType string, maxBytes int64) (string, error) {
	if maxBytes > 0 {
		// one extra byte tells an exact fit from an overflow
		r = io.LimitReader(r, maxBytes+1)
	}

	raw, err := io.ReadAll(r)
	if err != nil {
		return "", fmt.Errorf("cannot read document: %w", err)
	}

	if maxBytes > 0 && int64(len(raw)) > maxBytes {
		return "", fmt.Errorf("%w: limit is %d bytes", ErrDocumentTooLarge, maxBytes)
	}

	enc, name, _ := charset.DetermineEncoding(raw, contentType)
	if name == "utf-8" {
		return string(raw), nil
	}

	decoded, err := enc.NewDecoder().Bytes(raw)
	if err != nil {
		return "", fmt.Errorf("cannot decode document as %s: %w", name, err)
	}

	return string(decoded), nil
}
