package deck

import "testing"

func TestClassifyLine_Heading(t *testing.T) {
	styled, ok, fence := classifyLine("## Section", false)

	if !ok {
		t.Fatal("heading line should be emitted")
	}
	if fence {
		t.Error("heading line should not touch the fence flag")
	}
	if len(styled.Spans) != 1 {
		t.Fatalf("span count = %d, want 1", len(styled.Spans))
	}
	if styled.Spans[0].Kind != Heading {
		t.Errorf("kind = %v, want %v", styled.Spans[0].Kind, Heading)
	}
	if styled.Spans[0].Text != "## Section" {
		t.Errorf("text = %q, want the line verbatim", styled.Spans[0].Text)
	}
}

func TestClassifyLine_IndentedHeadingKeepsIndent(t *testing.T) {
	styled, ok, _ := classifyLine("  ### Deep", false)

	if !ok || styled.Spans[0].Kind != Heading {
		t.Fatalf("indented heading misclassified: %+v", styled)
	}
	if styled.Spans[0].Text != "  ### Deep" {
		t.Errorf("text = %q, want indentation kept", styled.Spans[0].Text)
	}
}

func TestClassifyLine_BulletSplitsMarkerAndText(t *testing.T) {
	styled, ok, _ := classifyLine("  * item one", false)

	if !ok {
		t.Fatal("bullet line should be emitted")
	}
	if len(styled.Spans) != 2 {
		t.Fatalf("span count = %d, want 2", len(styled.Spans))
	}
	if styled.Spans[0].Kind != BulletMarker || styled.Spans[0].Text != "* " {
		t.Errorf("marker span = %+v, want %q marker", styled.Spans[0], "* ")
	}
	if styled.Spans[1].Kind != BulletText || styled.Spans[1].Text != "item one" {
		t.Errorf("text span = %+v, want %q", styled.Spans[1], "item one")
	}
}

func TestClassifyLine_BulletStripsEveryMarkerOccurrence(t *testing.T) {
	// The interior "* " is removed together with the leading marker.
	styled, _, _ := classifyLine("* point * with marker", false)

	if got := styled.Spans[1].Text; got != "point with marker" {
		t.Errorf("bullet text = %q, want %q", got, "point with marker")
	}
}

func TestClassifyLine_FenceTogglesWithoutOutput(t *testing.T) {
	for _, line := range []string{"```", "```go", "``` "} {
		t.Run(line, func(t *testing.T) {
			styled, ok, fence := classifyLine(line, false)
			if ok {
				t.Errorf("fence line emitted output: %+v", styled)
			}
			if !fence {
				t.Error("fence flag should flip on")
			}

			_, ok, fence = classifyLine(line, true)
			if ok {
				t.Error("closing fence line emitted output")
			}
			if fence {
				t.Error("fence flag should flip off")
			}
		})
	}
}

func TestClassifyLine_IndentedFenceIsNotAFence(t *testing.T) {
	styled, ok, fence := classifyLine("  ```", false)

	if !ok {
		t.Fatal("indented backticks should be emitted as content")
	}
	if fence {
		t.Error("indented backticks should not toggle the fence flag")
	}
	if styled.Spans[0].Kind != Plain || styled.Spans[0].Text != "  ```" {
		t.Errorf("span = %+v, want plain verbatim line", styled.Spans[0])
	}
}

func TestClassifyLine_CodeLinePaddedOneSpaceEachSide(t *testing.T) {
	styled, ok, fence := classifyLine("let x = 1", true)

	if !ok {
		t.Fatal("code line should be emitted")
	}
	if !fence {
		t.Error("code line should keep the fence flag on")
	}
	if styled.Spans[0].Kind != CodeLine {
		t.Errorf("kind = %v, want %v", styled.Spans[0].Kind, CodeLine)
	}
	if styled.Spans[0].Text != " let x = 1 " {
		t.Errorf("text = %q, want one-space padding each side", styled.Spans[0].Text)
	}
}

func TestClassifyLine_MarkupKeepsStyleInsideFence(t *testing.T) {
	styled, _, fence := classifyLine("## still a heading", true)
	if styled.Spans[0].Kind != Heading {
		t.Errorf("kind = %v, want %v", styled.Spans[0].Kind, Heading)
	}
	if !fence {
		t.Error("fence flag should survive a heading line")
	}

	styled, _, _ = classifyLine("* still a bullet", true)
	if styled.Spans[0].Kind != BulletMarker {
		t.Errorf("kind = %v, want %v", styled.Spans[0].Kind, BulletMarker)
	}
}

func TestClassifyLine_Plain(t *testing.T) {
	for _, line := range []string{"hello", "", "   ", "1. numbered"} {
		styled, ok, fence := classifyLine(line, false)
		if !ok || fence {
			t.Errorf("plain line %q: emitted=%v fence=%v", line, ok, fence)
			continue
		}
		if styled.Spans[0].Kind != Plain || styled.Spans[0].Text != line {
			t.Errorf("plain line %q classified as %+v", line, styled.Spans[0])
		}
	}
}

func TestSpanKindString(t *testing.T) {
	tests := []struct {
		kind     SpanKind
		expected string
	}{
		{Plain, "plain"},
		{Heading, "heading"},
		{BulletMarker, "bullet-marker"},
		{BulletText, "bullet-text"},
		{CodeLine, "code-line"},
		{SpanKind(99), "plain"},
	}

	for _, tc := range tests {
		if got := tc.kind.String(); got != tc.expected {
			t.Errorf("SpanKind(%d).String() = %q, expected %q", tc.kind, got, tc.expected)
		}
	}
}
