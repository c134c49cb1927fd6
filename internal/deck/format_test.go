package deck

import (
	"reflect"
	"strings"
	"testing"
)

func plainTexts(lines []StyledLine) []string {
	var texts []string
	for _, line := range lines {
		var b strings.Builder
		for _, span := range line.Spans {
			b.WriteString(span.Text)
		}
		texts = append(texts, b.String())
	}
	return texts
}

func TestFormatContent_CollapsesBlankRuns(t *testing.T) {
	lines := FormatContent([]string{"", "", "Foo", "", "", "", "Bar", "", ""})

	want := []string{"Foo", "", "Bar"}
	if got := plainTexts(lines); !reflect.DeepEqual(got, want) {
		t.Errorf("formatted lines = %q, want %q", got, want)
	}
}

func TestFormatContent_SingleInteriorBlankKept(t *testing.T) {
	lines := FormatContent([]string{"Foo", "", "Bar"})

	want := []string{"Foo", "", "Bar"}
	if got := plainTexts(lines); !reflect.DeepEqual(got, want) {
		t.Errorf("formatted lines = %q, want %q", got, want)
	}
}

func TestFormatContent_EmptyContent(t *testing.T) {
	if lines := FormatContent(nil); lines != nil {
		t.Errorf("formatted lines = %v, want none", lines)
	}
	if lines := FormatContent([]string{"", "", ""}); lines != nil {
		t.Errorf("blank-only content formatted to %v, want none", lines)
	}
}

func TestFormatContent_FenceSuppressedCodePadded(t *testing.T) {
	lines := FormatContent([]string{"```", "code here", "```"})

	if len(lines) != 1 {
		t.Fatalf("line count = %d, want 1", len(lines))
	}
	span := lines[0].Spans[0]
	if span.Kind != CodeLine {
		t.Errorf("kind = %v, want %v", span.Kind, CodeLine)
	}
	if span.Text != " code here " {
		t.Errorf("text = %q, want %q", span.Text, " code here ")
	}
}

func TestFormatContent_FenceFlagThreadsAcrossSlideLines(t *testing.T) {
	lines := FormatContent([]string{"before", "```", "a", "b", "```", "after"})

	wantKinds := []SpanKind{Plain, CodeLine, CodeLine, Plain}
	if len(lines) != len(wantKinds) {
		t.Fatalf("line count = %d, want %d", len(lines), len(wantKinds))
	}
	for i, want := range wantKinds {
		if got := lines[i].Spans[0].Kind; got != want {
			t.Errorf("line %d kind = %v, want %v", i, got, want)
		}
	}
}

func TestFormatContent_Idempotent(t *testing.T) {
	content := []string{"", "Foo", "", "", "Bar", "* item", ""}

	once := plainTexts(FormatContent(content))
	twice := plainTexts(FormatContent(once))

	if !reflect.DeepEqual(once, twice) {
		t.Errorf("reformatting changed the output: %q vs %q", once, twice)
	}
}
