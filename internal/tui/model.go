package tui

import (
	"context"
	"fmt"
	"strings"

	"github.com/atotto/clipboard"
	"github.com/charmbracelet/bubbles/textarea"
	"github.com/charmbracelet/bubbles/viewport"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"
	"github.com/jwebster45206/detective-quest/internal/game"
	"github.com/jwebster45206/detective-quest/internal/theme"
	"github.com/jwebster45206/detective-quest/pkg/explore"
	"github.com/jwebster45206/detective-quest/pkg/judge"
	"github.com/muesli/reflow/wordwrap"
)

const PlaceHolderText = "Name the culprit..."

type phase int

const (
	phaseExploring phase = iota
	phaseAccusing
	phaseVerdict
)

var panelStyle = lipgloss.NewStyle().
	PaddingTop(1).
	PaddingLeft(2).
	PaddingRight(2)

// Model is the Bubble Tea front end. It drives the session's controller one
// key press at a time instead of blocking on a reader.
// https://github.com/charmbracelet/bubbletea
type Model struct {
	ctx        context.Context
	session    *game.Session
	transcript *Transcript
	viewport   viewport.Model
	textarea   textarea.Model
	phase      phase
	verdict    *judge.Verdict
	status     string
	width      int
	height     int
	ready      bool

	copyToClipboard func(string) error
}

// New builds the model and enters the first room. transcript must be the
// reporter the session was created with.
func New(ctx context.Context, s *game.Session, transcript *Transcript) Model {
	ta := textarea.New()
	ta.Placeholder = PlaceHolderText
	ta.Prompt = theme.Hint.Render(":: ")
	ta.CharLimit = 49
	ta.SetWidth(50)
	ta.SetHeight(1)
	ta.ShowLineNumbers = false

	vp := viewport.New(60, 20)
	vp.MouseWheelEnabled = true

	s.Controller().Start(ctx)

	m := Model{
		ctx:             ctx,
		session:         s,
		transcript:      transcript,
		viewport:        vp,
		textarea:        ta,
		copyToClipboard: clipboard.WriteAll,
	}
	m.refresh()
	return m
}

func (m Model) Init() tea.Cmd {
	return nil
}

// Verdict returns the verdict once the player has accused someone.
func (m Model) Verdict() *judge.Verdict {
	return m.verdict
}

func (m Model) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	var cmds []tea.Cmd

	switch msg := msg.(type) {
	case tea.WindowSizeMsg:
		m.width = msg.Width
		m.height = msg.Height
		m.viewport.Width = msg.Width - 4
		m.viewport.Height = max(msg.Height-8, 3)
		m.textarea.SetWidth(max(msg.Width-8, 10))
		m.ready = true
		m.refresh()

	case tea.KeyMsg:
		switch msg.Type {
		case tea.KeyCtrlC:
			return m, tea.Quit
		case tea.KeyCtrlY:
			m.copyEvidence()
			return m, nil
		}

		switch m.phase {
		case phaseExploring:
			return m.updateExploring(msg)
		case phaseAccusing:
			if msg.Type == tea.KeyEnter {
				return m.accuse()
			}
			var cmd tea.Cmd
			m.textarea, cmd = m.textarea.Update(msg)
			return m, cmd
		case phaseVerdict:
			switch msg.Type {
			case tea.KeyEnter, tea.KeyEsc:
				return m, tea.Quit
			}
			if msg.String() == "q" {
				return m, tea.Quit
			}
		}
	}

	var cmd tea.Cmd
	m.viewport, cmd = m.viewport.Update(msg)
	cmds = append(cmds, cmd)
	return m, tea.Batch(cmds...)
}

// updateExploring turns a key press into a decision. Only typed characters
// and the arrow and esc shortcuts are decisions; other named keys are ignored.
func (m Model) updateExploring(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	var input string
	switch msg.Type {
	case tea.KeyRunes:
		input = string(msg.Runes)
	case tea.KeyLeft:
		input = "e"
	case tea.KeyRight:
		input = "d"
	case tea.KeyEsc:
		input = "s"
	case tea.KeyUp, tea.KeyDown, tea.KeyPgUp, tea.KeyPgDown:
		var cmd tea.Cmd
		m.viewport, cmd = m.viewport.Update(msg)
		return m, cmd
	default:
		return m, nil
	}

	m.status = ""
	if m.session.Controller().Apply(m.ctx, input) == explore.StateFinished {
		m.phase = phaseAccusing
		m.textarea.Focus()
		m.refresh()
		return m, textarea.Blink
	}
	m.refresh()
	return m, nil
}

func (m Model) accuse() (tea.Model, tea.Cmd) {
	v := m.session.Accuse(m.ctx, m.textarea.Value())
	m.verdict = &v
	m.phase = phaseVerdict
	m.textarea.Blur()
	m.refresh()
	return m, nil
}

func (m *Model) copyEvidence() {
	if err := m.copyToClipboard(evidenceText(m.session)); err != nil {
		m.status = theme.Error.Render("Could not copy: " + err.Error())
		return
	}
	m.status = theme.Info.Render("Evidence copied to clipboard.")
}

func evidenceText(s *game.Session) string {
	var b strings.Builder
	for _, r := range s.Evidence() {
		fmt.Fprintf(&b, "- %s (points to %s)\n", r.Clue, r.Suspect)
	}
	return b.String()
}

// refresh rebuilds the viewport content from the transcript and phase.
func (m *Model) refresh() {
	width := m.viewport.Width
	if width <= 0 {
		width = 60
	}

	var content strings.Builder
	content.WriteString(m.transcript.String())

	if m.phase != phaseExploring {
		content.WriteString("\n\n" + theme.Title.Render("EVIDENCE") + "\n")
		records := m.session.Evidence()
		if len(records) == 0 {
			content.WriteString(theme.Info.Render("(no clues collected)") + "\n")
		}
		for _, r := range records {
			content.WriteString(fmt.Sprintf("• %-25s %s\n", r.Clue, theme.Info.Render("→ "+r.Suspect)))
		}
	}

	if m.verdict != nil {
		content.WriteString("\n" + renderVerdict(*m.verdict) + "\n")
	}

	m.viewport.SetContent(wordwrap.String(content.String(), width))
	m.viewport.GotoBottom()
}

func renderVerdict(v judge.Verdict) string {
	header := fmt.Sprintf("Accused: %s, clues against them: %d of %d needed", v.Accused, v.Evidence, v.Threshold)
	if v.Solved {
		return header + "\n" + theme.Clue.Render("CASE CLOSED! The accusation stands.")
	}
	return header + "\n" + theme.Error.Render("ACCUSATION FAILED. The culprit escaped!")
}

func (m Model) help() string {
	switch m.phase {
	case phaseExploring:
		return "e/← left • d/→ right • s/esc stop and judge • ctrl+y copy evidence • ctrl+c quit"
	case phaseAccusing:
		return "Who do you accuse? " + strings.Join(m.session.Suspects(), ", ") + " • enter to accuse"
	default:
		return "enter/q quit • ctrl+y copy evidence"
	}
}

func (m Model) View() string {
	if !m.ready {
		return "\n  Initializing..."
	}

	sections := []string{
		theme.Title.Render("DETECTIVE QUEST: THE MANSION"),
		m.viewport.View(),
		theme.Hint.Render(strings.Repeat("─", max(m.width-4, 1))),
	}
	if m.phase == phaseAccusing {
		sections = append(sections, m.textarea.View())
	}
	sections = append(sections, theme.Hint.Render(m.help()))
	if m.status != "" {
		sections = append(sections, m.status)
	}

	return panelStyle.Render(lipgloss.JoinVertical(lipgloss.Left, sections...))
}
