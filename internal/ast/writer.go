package ast

import (
	"strings"

	"github.com/lib/pq"
)

// Writer accumulates SQL text produced by Unparse.
type Writer struct {
	sb          strings.Builder
	quoteAlways bool
}

// WriterOption configures a Writer.
type WriterOption func(*Writer)

// WithQuoteAllIdentifiers quotes every identifier, not only those that
// would otherwise be misread.
func WithQuoteAllIdentifiers() WriterOption {
	return func(w *Writer) {
		w.quoteAlways = true
	}
}

// NewWriter creates an empty writer.
func NewWriter(opts ...WriterOption) *Writer {
	w := &Writer{}
	for _, opt := range opts {
		opt(w)
	}
	return w
}

// Print appends literal text.
func (w *Writer) Print(s string) {
	w.sb.WriteString(s)
}

// Keyword appends a keyword, separated by a space from preceding text.
func (w *Writer) Keyword(kw string) {
	w.space()
	w.sb.WriteString(kw)
}

// Identifier appends a single identifier, quoting it when needed.
func (w *Writer) Identifier(name string) {
	if w.quoteAlways || NeedsQuoting(name) {
		w.sb.WriteString(pq.QuoteIdentifier(name))
		return
	}
	w.sb.WriteString(name)
}

// String returns the text written so far.
func (w *Writer) String() string {
	return w.sb.String()
}

func (w *Writer) space() {
	if w.sb.Len() == 0 {
		return
	}
	s := w.sb.String()
	switch s[len(s)-1] {
	case ' ', '(', '.':
		return
	}
	w.sb.WriteByte(' ')
}
