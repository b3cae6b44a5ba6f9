// Package tagging decodes BIO tag-per-token files into entity spans.
//
// A tagged file holds one token per line. Fields are separated by
// whitespace; the first field is the token and the last is its label:
//
//	Barack B-PER
//	Obama I-PER
//	visited O
//	Paris B-LOC
//
// A blank line ends a sentence. Only the B, I and O markers are recognised.
package tagging

import (
	"bufio"
	"fmt"
	"io"
	"os"
	"strings"
)

// maxLineSize bounds a single line; tagged files with feature columns can
// exceed bufio's 64KiB default.
const maxLineSize = 1 << 20

const (
	markerBegin   = 'B'
	markerInside  = 'I'
	markerOutside = 'O'
)

// Diagnostic describes a malformed label found while decoding. Diagnostics
// never stop decoding.
type Diagnostic struct {
	Path    string
	Line    int // 1-based; 0 when the diagnostic is about the whole file
	Message string
}

func (d Diagnostic) String() string {
	if d.Line <= 0 {
		return fmt.Sprintf("%s: %s", d.Path, d.Message)
	}
	return fmt.Sprintf("%s:%d: %s", d.Path, d.Line, d.Message)
}

// DiagnosticFunc receives decode diagnostics.
type DiagnosticFunc func(Diagnostic)

// Decoder turns tagged lines into a Document.
type Decoder struct {
	path string
	warn DiagnosticFunc
}

// NewDecoder returns a decoder that attributes diagnostics to path and
// sends them to warn. A nil warn discards them.
func NewDecoder(path string, warn DiagnosticFunc) *Decoder {
	if warn == nil {
		warn = func(Diagnostic) {}
	}
	return &Decoder{path: path, warn: warn}
}

// DecodeFile reads and decodes the tagged file at path.
func DecodeFile(path string, warn DiagnosticFunc) (Document, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, fmt.Errorf("open tagged file: %w", err)
	}
	defer func() { _ = f.Close() }()

	doc, err := NewDecoder(path, warn).Decode(f)
	if err != nil {
		return nil, fmt.Errorf("decode %s: %w", path, err)
	}
	return doc, nil
}

// decodeState is the one-token lookback of the marker state machine.
type decodeState struct {
	sent    Sentence
	open    int // index of the open entity in sent, -1 if none
	prev    rune
	openTyp string
}

func (s *decodeState) reset() {
	s.sent = Sentence{}
	s.open = -1
	s.prev = markerOutside
	s.openTyp = ""
}

// Decode reads tagged lines from r. Only read errors are returned; bad
// labels are reported as diagnostics.
func (d *Decoder) Decode(r io.Reader) (Document, error) {
	var doc Document
	var st decodeState
	st.reset()

	scanner := bufio.NewScanner(r)
	scanner.Buffer(make([]byte, 0, 64*1024), maxLineSize)

	lineNo := 0
	for scanner.Scan() {
		lineNo++
		fields := strings.Fields(scanner.Text())
		if len(fields) == 0 {
			doc = append(doc, st.sent)
			st.reset()
			continue
		}

		token := fields[0]
		label := fields[len(fields)-1]
		marker, typ := parseLabel(label)

		switch marker {
		case markerBegin:
			st.sent = append(st.sent, NewEntity(typ, token))
			st.open = len(st.sent) - 1
			st.openTyp = typ
		case markerInside:
			switch {
			case st.prev != markerBegin && st.prev != markerInside:
				d.warnf(lineNo, "'I' follows non-B/I label %q", label)
			case !strings.EqualFold(st.openTyp, typ):
				d.warnf(lineNo, "'I-%s' follows 'B-%s' label", typ, st.openTyp)
			}
			if st.open < 0 {
				st.sent = append(st.sent, NewEntity(typ))
				st.open = len(st.sent) - 1
				st.openTyp = typ
			}
			st.sent[st.open].Tokens = append(st.sent[st.open].Tokens, token)
		case markerOutside:
			st.sent = append(st.sent, NewEntity(typ, token))
			st.open = len(st.sent) - 1
			st.openTyp = typ
		default:
			d.warnf(lineNo, "invalid label %q", label)
		}
		st.prev = marker
	}
	if err := scanner.Err(); err != nil {
		return nil, fmt.Errorf("scan line %d: %w", lineNo+1, err)
	}

	if len(st.sent) > 0 {
		doc = append(doc, st.sent)
	}
	return doc, nil
}

func (d *Decoder) warnf(line int, format string, args ...any) {
	d.warn(Diagnostic{Path: d.path, Line: line, Message: fmt.Sprintf(format, args...)})
}

// parseLabel splits a label into its marker and entity type. Labels of two
// characters or fewer carry no type and map to NoneType.
func parseLabel(label string) (marker rune, typ string) {
	runes := []rune(label)
	if len(runes) == 0 {
		return 0, NoneType
	}
	if len(runes) <= 2 {
		return runes[0], NoneType
	}
	return runes[0], string(runes[2:])
}
