package ui

import (
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"github.com/charmbracelet/bubbles/viewport"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"
	"github.com/charmbracelet/x/ansi"
	"github.com/fsnotify/fsnotify"

	"github.com/okaneko/slidemd/internal/deck"
	"github.com/okaneko/slidemd/internal/debug"
)

const (
	footerHeight     = 1
	titleMarginX     = 3
	titleMarginY     = 3
	slideMarginX     = 2
	slideMarginY     = 2
	slideHeaderLines = 2
	minContentWidth  = 10
)

var (
	bannerStyle     = lipgloss.NewStyle().Foreground(lipgloss.Color("11")).Bold(true)
	metaLineStyle   = lipgloss.NewStyle().Bold(true)
	slideTitleStyle = lipgloss.NewStyle().Foreground(lipgloss.Color("11")).Bold(true)
	headingStyle    = lipgloss.NewStyle().Foreground(lipgloss.Color("3"))
	bulletStyle     = lipgloss.NewStyle().Foreground(lipgloss.Color("3"))
	codeStyle       = lipgloss.NewStyle().
			Foreground(lipgloss.Color("14")).
			Background(lipgloss.Color("0"))
	footerLeftStyle = lipgloss.NewStyle().
			Foreground(lipgloss.Color("15")).
			Background(lipgloss.Color("4")).
			Bold(true)
	footerRightStyle = lipgloss.NewStyle().
				Foreground(lipgloss.Color("15")).
				Background(lipgloss.Color("4")).
				Align(lipgloss.Right)
	errorLineStyle = lipgloss.NewStyle().Foreground(lipgloss.Color("#ff6b6b"))
)

// Model implements the Bubble Tea program for the slideshow.
type Model struct {
	pres       deck.Presentation
	nav        *deck.Navigator
	sourcePath string

	contentVP viewport.Model
	ready     bool
	width     int
	height    int
	err       error

	watcher          *fsnotify.Watcher
	watchDir         string
	watchedFile      string
	watchChan        chan tea.Msg
	initialWatchPath string
}

type fileEventMsg struct {
	path string
	op   fsnotify.Op
}

type fileWatchErrMsg struct {
	err error
}

// NewModel constructs the slideshow model with the provided initial state.
func NewModel(state State) *Model {
	contentVP := viewport.New(0, 0)
	contentVP.MouseWheelEnabled = false

	return &Model{
		pres:             state.Presentation,
		nav:              deck.NewNavigator(len(state.Presentation.Slides)),
		sourcePath:       state.SourcePath,
		contentVP:        contentVP,
		initialWatchPath: state.SourcePath,
	}
}

// Init implements tea.Model.
func (m *Model) Init() tea.Cmd {
	if m.initialWatchPath != "" {
		path := m.initialWatchPath
		m.initialWatchPath = ""
		return m.startWatching(path)
	}
	return nil
}

// View implements tea.Model.
func (m *Model) View() string {
	if !m.ready {
		return ""
	}

	var body string
	if m.nav.Current() == 0 {
		body = m.titleView()
	} else {
		body = m.slideView()
	}

	view := lipgloss.JoinVertical(lipgloss.Left, body, m.footerView())
	if m.err != nil {
		view = lipgloss.JoinVertical(lipgloss.Left, errorLineStyle.Render(m.err.Error()), view)
	}
	return view
}

// Update implements tea.Model.
func (m *Model) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case fileEventMsg:
		return m, m.handleFileEvent(msg)
	case fileWatchErrMsg:
		m.err = msg.err
		return m, m.waitForFileEvent()
	case tea.WindowSizeMsg:
		m.resize(msg.Width, msg.Height)
		return m, nil

	case tea.KeyMsg:
		switch msg.String() {
		case "q", "esc", "ctrl+c":
			return m, tea.Quit
		case "left", "h":
			m.moveTo(m.nav.Current() - 1)
			return m, nil
		case "right", "l":
			m.moveTo(m.nav.Current() + 1)
			return m, nil
		}

		// Remaining keys scroll overflowing slide content.
		if m.nav.Current() > 0 {
			var cmd tea.Cmd
			m.contentVP, cmd = m.contentVP.Update(msg)
			return m, cmd
		}
		return m, nil
	}

	return m, nil
}

// moveTo steps the navigator toward target and re-renders the shown slide
// from the top. Steps beyond either bound are no-ops.
func (m *Model) moveTo(target int) {
	before := m.nav.Current()
	if target < before {
		m.nav.StepBack()
	} else if target > before {
		m.nav.StepForward()
	}
	if m.nav.Current() == before {
		return
	}
	m.renderSlide()
	m.contentVP.GotoTop()
}

func (m *Model) resize(width, height int) {
	if width <= 0 || height <= footerHeight {
		return
	}

	m.width = width
	m.height = height
	m.ready = true

	m.contentVP.Width = max(width-2*slideMarginX, minContentWidth)
	m.contentVP.Height = max(m.bodyHeight()-2*slideMarginY-slideHeaderLines, 1)
	m.renderSlide()
}

func (m *Model) bodyHeight() int {
	return max(m.height-footerHeight, 1)
}

// renderSlide recomputes the viewport content for the shown slide. The
// styled lines are rebuilt from the raw slide content on every call; the
// title view has no viewport content.
func (m *Model) renderSlide() {
	index := m.nav.Current()
	if index == 0 || index > len(m.pres.Slides) {
		return
	}
	lines := deck.FormatContent(m.pres.Slides[index-1].Content)
	m.contentVP.SetContent(renderStyledLines(lines))
}

func renderStyledLines(lines []deck.StyledLine) string {
	var b strings.Builder
	for i, line := range lines {
		for _, span := range line.Spans {
			b.WriteString(spanStyle(span.Kind).Render(span.Text))
		}
		if i < len(lines)-1 {
			b.WriteByte('\n')
		}
	}
	return b.String()
}

func spanStyle(kind deck.SpanKind) lipgloss.Style {
	switch kind {
	case deck.Heading:
		return headingStyle
	case deck.BulletMarker:
		return bulletStyle
	case deck.CodeLine:
		return codeStyle
	default:
		return lipgloss.NewStyle()
	}
}

func (m *Model) titleView() string {
	banner := titleBanner(m.pres.Title, max(m.width-2*titleMarginX, minContentWidth))

	block := lipgloss.JoinVertical(lipgloss.Center,
		bannerStyle.Render(banner),
		"",
		metaLineStyle.Render(m.pres.Author),
		"",
		metaLineStyle.Render(m.pres.Date),
	)
	placed := lipgloss.NewStyle().
		Margin(titleMarginY, titleMarginX).
		Width(max(m.width-2*titleMarginX, minContentWidth)).
		Align(lipgloss.Center).
		Render(block)
	return lipgloss.Place(m.width, m.bodyHeight(), lipgloss.Left, lipgloss.Top, placed)
}

func (m *Model) slideView() string {
	slide := m.pres.Slides[m.nav.Current()-1]

	body := lipgloss.JoinVertical(lipgloss.Left,
		slideTitleStyle.Render(slide.Title),
		"",
		m.contentVP.View(),
	)
	placed := lipgloss.NewStyle().Margin(slideMarginY, slideMarginX).Render(body)
	return lipgloss.Place(m.width, m.bodyHeight(), lipgloss.Left, lipgloss.Top, placed)
}

func (m *Model) footerView() string {
	left := m.pres.Title
	if index := m.nav.Current(); index > 0 {
		left = fmt.Sprintf("%s -- %s", m.pres.Title,
			strings.ReplaceAll(m.pres.Slides[index-1].Title, "# ", ""))
	}
	right := fmt.Sprintf("[%d/%d]", m.nav.Current()+1, m.nav.SlideCount()+1)

	leftWidth := m.width / 2
	rightWidth := m.width - leftWidth
	return lipgloss.JoinHorizontal(lipgloss.Top,
		footerLeftStyle.Width(leftWidth).Render(ansi.Truncate(left, leftWidth, "…")),
		footerRightStyle.Width(rightWidth).Render(ansi.Truncate(right, rightWidth, "")),
	)
}

func (m *Model) startWatching(path string) tea.Cmd {
	if path == "" {
		return nil
	}
	path = filepath.Clean(path)
	if err := m.ensureWatcher(); err != nil {
		m.err = err
		return nil
	}

	dir := filepath.Dir(path)
	if dir != m.watchDir {
		if m.watchDir != "" {
			_ = m.watcher.Remove(m.watchDir)
		}
		if err := m.watcher.Add(dir); err != nil {
			m.err = err
			return nil
		}
		m.watchDir = dir
	}

	m.watchedFile = path
	return m.waitForFileEvent()
}

func (m *Model) ensureWatcher() error {
	if m.watcher != nil {
		return nil
	}
	watcher, err := fsnotify.NewWatcher()
	if err != nil {
		return err
	}
	m.watcher = watcher
	m.watchChan = make(chan tea.Msg, 10)

	go m.watchLoop()
	return nil
}

func (m *Model) watchLoop() {
	for {
		select {
		case event, ok := <-m.watcher.Events:
			if !ok {
				return
			}
			if event.Op&(fsnotify.Write|fsnotify.Create|fsnotify.Rename|fsnotify.Remove) == 0 {
				continue
			}
			if m.watchChan != nil {
				m.watchChan <- fileEventMsg{path: event.Name, op: event.Op}
			}
		case err, ok := <-m.watcher.Errors:
			if !ok {
				return
			}
			if m.watchChan != nil {
				m.watchChan <- fileWatchErrMsg{err: err}
			}
		}
	}
}

func (m *Model) waitForFileEvent() tea.Cmd {
	if m.watchChan == nil {
		return nil
	}
	return func() tea.Msg {
		msg, ok := <-m.watchChan
		if !ok {
			return nil
		}
		return msg
	}
}

func (m *Model) handleFileEvent(msg fileEventMsg) tea.Cmd {
	if m.watchedFile == "" || filepath.Clean(msg.path) != filepath.Clean(m.watchedFile) {
		return m.waitForFileEvent()
	}

	m.reloadSource()
	return m.waitForFileEvent()
}

// reloadSource re-reads and re-parses the presentation file, re-bounds the
// navigator, and re-renders the shown slide keeping the scroll offset. A
// failed read surfaces on the error line; the session continues.
func (m *Model) reloadSource() {
	if m.sourcePath == "" {
		return
	}
	data, err := os.ReadFile(m.sourcePath)
	if err != nil {
		m.err = err
		return
	}
	m.err = nil

	offset := m.contentVP.YOffset
	m.pres = deck.Parse(string(data))
	m.nav.SetSlideCount(len(m.pres.Slides))
	m.renderSlide()
	m.contentVP.SetYOffset(offset)
	debug.Log("reloaded %s: %d slides", m.sourcePath, len(m.pres.Slides))
}
