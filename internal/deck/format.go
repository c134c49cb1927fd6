package deck

import (
	"regexp"
	"strings"
)

var (
	reLeadingBlank  = regexp.MustCompile(`^\n*`)
	reTrailingBlank = regexp.MustCompile(`\n*$`)
	reBlankRun      = regexp.MustCompile(`\n\n+`)
)

// FormatContent produces the display lines for a slide's raw content.
// Blank-line runs at the edges of the block are dropped, interior runs are
// capped at one blank line, and the fenced-code flag is threaded through
// classification from the top of the block. The result depends only on the
// content itself.
func FormatContent(content []string) []StyledLine {
	joined := strings.Join(content, "\n")
	joined = reLeadingBlank.ReplaceAllString(joined, "")
	joined = reTrailingBlank.ReplaceAllString(joined, "")
	joined = reBlankRun.ReplaceAllString(joined, "\n\n")
	joined = strings.TrimSpace(joined)
	if joined == "" {
		return nil
	}

	var lines []StyledLine
	inFence := false
	for _, line := range strings.Split(joined, "\n") {
		styled, ok, next := classifyLine(line, inFence)
		inFence = next
		if !ok {
			continue
		}
		lines = append(lines, styled)
	}
	return lines
}
