// Package playground provides an interactive TUI for trying highlight
// patterns against a document: type a pattern, see matches styled live.
package playground

import (
	"fmt"
	"os"
	"strings"

	"github.com/charmbracelet/bubbles/textinput"
	"github.com/charmbracelet/bubbles/viewport"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"
	"github.com/charmbracelet/x/ansi"
	"github.com/muesli/reflow/wordwrap"

	"github.com/zjrosen/glimmer/highlight"
	"github.com/zjrosen/glimmer/internal/log"
	"github.com/zjrosen/glimmer/internal/patterncache"
	"github.com/zjrosen/glimmer/internal/ui/styles"
	"github.com/zjrosen/glimmer/internal/watcher"
)

const helpText = "esc/ctrl+c quit · ctrl+r reload file · type to edit the pattern"

// fileReloadedMsg carries fresh document content after a reload.
type fileReloadedMsg struct {
	content string
}

// fileChangedMsg signals that the watched file was modified on disk.
type fileChangedMsg struct{}

// reloadErrMsg carries a failed reload.
type reloadErrMsg struct {
	err error
}

// Model is the playground TUI state.
type Model struct {
	patternInput textinput.Model
	viewport     viewport.Model

	cache *patterncache.Cache
	doc   string
	text  highlight.Text

	compileErr error
	filePath   string
	watch      *watcher.Watcher
	changes    <-chan struct{}

	width  int
	height int
	ready  bool
}

// New creates a playground for doc. Matches are styled with matchStyle
// (per-preset colors arrive here). filePath may be empty (stdin or
// sample input); when set together with w, the document reloads on
// file changes.
func New(doc, filePath, initialPattern string, matchStyle lipgloss.Style, w *watcher.Watcher) Model {
	ti := textinput.New()
	ti.Placeholder = `pattern, e.g. @\w+`
	ti.Prompt = "/"
	ti.SetValue(initialPattern)
	ti.Focus()

	m := Model{
		patternInput: ti,
		cache:        patterncache.New(matchStyle, patterncache.DefaultExpiration, patterncache.DefaultCleanupInterval),
		doc:          doc,
		filePath:     filePath,
		watch:        w,
	}
	if w != nil {
		if ch, err := w.Start(); err == nil {
			m.changes = ch
		} else {
			log.ErrorErr(log.CatWatcher, "starting watcher", err, "path", filePath)
		}
	}
	m.rehighlight()
	return m
}

// Init implements tea.Model.
func (m Model) Init() tea.Cmd {
	cmds := []tea.Cmd{textinput.Blink}
	if m.changes != nil {
		cmds = append(cmds, waitForChange(m.changes))
	}
	return tea.Batch(cmds...)
}

// waitForChange blocks on the watcher channel and converts the signal
// into a message.
func waitForChange(ch <-chan struct{}) tea.Cmd {
	return func() tea.Msg {
		if _, ok := <-ch; !ok {
			return nil
		}
		return fileChangedMsg{}
	}
}

// reloadFile reads the watched file from disk.
func reloadFile(path string) tea.Cmd {
	return func() tea.Msg {
		data, err := os.ReadFile(path) //nolint:gosec // G304: path was given by the user on the command line
		if err != nil {
			return reloadErrMsg{err: err}
		}
		return fileReloadedMsg{content: string(data)}
	}
}

// Update implements tea.Model.
func (m Model) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.WindowSizeMsg:
		m.width = msg.Width
		m.height = msg.Height
		m.resize()
		log.Debug(log.CatUI, "resized", "width", msg.Width, "height", msg.Height)
		return m, nil

	case tea.KeyMsg:
		switch msg.Type {
		case tea.KeyCtrlC, tea.KeyEsc:
			if m.watch != nil {
				_ = m.watch.Stop()
			}
			return m, tea.Quit
		case tea.KeyCtrlR:
			if m.filePath != "" {
				return m, reloadFile(m.filePath)
			}
			return m, nil
		case tea.KeyUp, tea.KeyDown, tea.KeyPgUp, tea.KeyPgDown:
			var cmd tea.Cmd
			m.viewport, cmd = m.viewport.Update(msg)
			return m, cmd
		}

		var cmd tea.Cmd
		m.patternInput, cmd = m.patternInput.Update(msg)
		m.rehighlight()
		m.syncViewport()
		return m, cmd

	case fileChangedMsg:
		log.Info(log.CatWatcher, "file changed", "path", m.filePath)
		return m, tea.Batch(reloadFile(m.filePath), waitForChange(m.changes))

	case fileReloadedMsg:
		m.doc = msg.content
		m.rehighlight()
		m.syncViewport()
		return m, nil

	case reloadErrMsg:
		log.ErrorErr(log.CatWatcher, "reloading file", msg.err, "path", m.filePath)
		return m, nil
	}

	var cmd tea.Cmd
	m.patternInput, cmd = m.patternInput.Update(msg)
	return m, cmd
}

// rehighlight recompiles the current pattern and re-segments the document.
// An invalid in-progress pattern keeps the previous fragments and records
// the error for the status bar instead of failing.
func (m *Model) rehighlight() {
	pattern := m.patternInput.Value()
	if pattern == "" {
		m.text = plainText(m.doc)
		m.compileErr = nil
		return
	}

	h, err := m.cache.Get(pattern)
	if err != nil {
		m.compileErr = err
		return
	}
	m.compileErr = nil
	m.text = h.Text(m.doc)
}

// plainText wraps a document in unstyled lines so the viewport always
// shows content, even before a pattern is typed. Line semantics match
// highlight.Text: a trailing newline produces no empty final line.
func plainText(doc string) highlight.Text {
	if doc == "" {
		return nil
	}
	var t highlight.Text
	for _, line := range strings.Split(strings.TrimSuffix(doc, "\n"), "\n") {
		if line == "" {
			t = append(t, nil)
			continue
		}
		t = append(t, highlight.Line{{Content: line}})
	}
	return t
}

func (m *Model) resize() {
	m.patternInput.Width = m.width - 4
	viewportHeight := m.height - 4 // pattern input, status bar, help footer
	if viewportHeight < 1 {
		viewportHeight = 1
	}
	if !m.ready {
		m.viewport = viewport.New(m.width, viewportHeight)
		m.ready = true
	} else {
		m.viewport.Width = m.width
		m.viewport.Height = viewportHeight
	}
	m.syncViewport()
}

// syncViewport pushes the rendered document into the viewport. Lines
// longer than the viewport are truncated ANSI-aware so a styled match
// never leaks a dangling escape sequence past the right edge.
func (m *Model) syncViewport() {
	if !m.ready {
		return
	}
	lines := strings.Split(m.text.Render(), "\n")
	for i, line := range lines {
		lines[i] = ansi.Truncate(line, m.viewport.Width, "…")
	}
	m.viewport.SetContent(strings.Join(lines, "\n"))
}

// statusLine reports document and match counts, or the compile error for
// an invalid in-progress pattern.
func (m Model) statusLine() string {
	if m.compileErr != nil {
		return styles.ErrorStyle.Render(m.compileErr.Error())
	}
	return styles.StatusBarStyle.Render(
		fmt.Sprintf("%d lines, %d matches", len(m.text), m.text.Matches()))
}

// View implements tea.Model.
func (m Model) View() string {
	if !m.ready {
		return "loading..."
	}

	var b strings.Builder
	b.WriteString(styles.PatternLabelStyle.Render("pattern"))
	b.WriteString(" ")
	b.WriteString(m.patternInput.View())
	b.WriteString("\n")
	b.WriteString(m.viewport.View())
	b.WriteString("\n")
	b.WriteString(m.statusLine())
	b.WriteString("\n")
	b.WriteString(styles.HelpStyle.Render(wordwrap.String(helpText, m.width)))
	return b.String()
}
