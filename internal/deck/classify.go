package deck

import (
	"strings"
	"unicode"
)

// SpanKind identifies how one span of slide text is styled.
type SpanKind int

const (
	Plain SpanKind = iota
	Heading
	BulletMarker
	BulletText
	CodeLine
)

var spanKindNames = map[SpanKind]string{
	Plain:        "plain",
	Heading:      "heading",
	BulletMarker: "bullet-marker",
	BulletText:   "bullet-text",
	CodeLine:     "code-line",
}

func (k SpanKind) String() string {
	if name, ok := spanKindNames[k]; ok {
		return name
	}
	return "plain"
}

// Span is a run of text rendered with a single style.
type Span struct {
	Text string
	Kind SpanKind
}

// StyledLine is one display line of a formatted slide. Most lines carry a
// single span; bullet lines carry a marker span followed by a text span.
type StyledLine struct {
	Spans []Span
}

// classifyLine maps one content line to its display form. The fenced-code
// flag is threaded by the caller across the lines of a slide; fence
// delimiter lines flip it and emit nothing. Returns the styled line,
// whether a line is emitted at all, and the updated flag.
//
// Earlier rules win even inside a fenced region, so heading- and
// bullet-shaped lines keep their styling there.
func classifyLine(line string, inFence bool) (StyledLine, bool, bool) {
	trimmed := strings.TrimSpace(line)

	if strings.HasPrefix(trimmed, "##") {
		return singleSpan(line, Heading), true, inFence
	}

	if strings.HasPrefix(trimmed, "* ") {
		// Removes every "* " occurrence, not only the leading marker,
		// so a literal "* " inside the bullet text is eaten as well.
		text := strings.TrimSpace(strings.ReplaceAll(line, "* ", ""))
		return StyledLine{Spans: []Span{
			{Text: "* ", Kind: BulletMarker},
			{Text: text, Kind: BulletText},
		}}, true, inFence
	}

	if strings.HasPrefix(strings.TrimRightFunc(line, unicode.IsSpace), "```") {
		return StyledLine{}, false, !inFence
	}

	if inFence {
		return singleSpan(" "+line+" ", CodeLine), true, inFence
	}

	return singleSpan(line, Plain), true, inFence
}

func singleSpan(text string, kind SpanKind) StyledLine {
	return StyledLine{Spans: []Span{{Text: text, Kind: kind}}}
}
