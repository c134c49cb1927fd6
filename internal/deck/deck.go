package deck

import (
	"strings"

	"github.com/adrg/frontmatter"

	"github.com/okaneko/slidemd/internal/debug"
)

// Presentation is the parsed form of a slideshow document.
type Presentation struct {
	Title  string
	Author string
	Date   string
	Slides []Slide
}

// Slide is one navigable unit of a presentation. Title keeps the raw header
// line including its "# " marker; Content keeps the body lines untouched,
// in source order.
type Slide struct {
	Title   string
	Content []string
}

type metadata struct {
	Title  string `yaml:"title" toml:"title" json:"title"`
	Author string `yaml:"author" toml:"author" json:"author"`
	Date   string `yaml:"date" toml:"date" json:"date"`
}

// Parse builds a Presentation from document text. It never fails: malformed
// markdown still yields a presentation, and there is always at least one
// slide, even for an empty document.
//
// Metadata comes from an optional front matter block and from "%"-prefixed
// lines at positions 0..2 of the remaining text (title, author, date, in
// that order). The positional lines win; front matter only fills slots they
// leave empty.
func Parse(content string) Presentation {
	var meta metadata
	if rest, err := frontmatter.Parse(strings.NewReader(content), &meta); err == nil {
		body := string(rest)
		if len(body) != len(content) {
			// Front matter found: blank lines separating it from the
			// body are not body lines, so position 0 is the first real
			// line after the block.
			body = strings.TrimLeft(body, "\r\n")
		}
		content = body
	} else {
		debug.Log("front matter ignored: %v", err)
	}

	var (
		title        string
		author       string
		date         string
		slides       []Slide
		slideTitle   string
		slideContent []string
	)

	for i, line := range splitLines(content) {
		switch {
		case i == 0 && strings.HasPrefix(line, "%"):
			title = stripMetaPrefix(line)
		case i == 1 && strings.HasPrefix(line, "%"):
			author = stripMetaPrefix(line)
		case i == 2 && strings.HasPrefix(line, "%"):
			date = stripMetaPrefix(line)
		case strings.HasPrefix(line, "# "):
			if slideTitle == "" {
				// First header: nothing to close, content seen so far
				// stays with this slide.
				slideTitle = line
			} else {
				slides = append(slides, Slide{Title: slideTitle, Content: slideContent})
				slideTitle = line
				slideContent = nil
			}
		default:
			slideContent = append(slideContent, line)
		}
	}

	slides = append(slides, Slide{Title: slideTitle, Content: slideContent})

	if title == "" {
		title = meta.Title
	}
	if author == "" {
		author = meta.Author
	}
	if date == "" {
		date = meta.Date
	}

	return Presentation{Title: title, Author: author, Date: date, Slides: slides}
}

// stripMetaPrefix drops the first "% " from a metadata line. A bare "%"
// without the trailing space stays as written.
func stripMetaPrefix(line string) string {
	return strings.Replace(line, "% ", "", 1)
}

// splitLines splits document text into lines. The empty segment left by a
// trailing newline is dropped and each line loses a trailing "\r", so CRLF
// input parses like LF input.
func splitLines(content string) []string {
	lines := strings.Split(content, "\n")
	if len(lines) > 0 && lines[len(lines)-1] == "" {
		lines = lines[:len(lines)-1]
	}
	for i, line := range lines {
		lines[i] = strings.TrimSuffix(line, "\r")
	}
	return lines
}
