package tui

import (
	"context"
	"errors"
	"io"
	"log/slog"
	"strings"
	"testing"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/google/uuid"
	"github.com/jwebster45206/detective-quest/internal/game"
	"github.com/jwebster45206/detective-quest/pkg/casefile"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func newTestModel(t *testing.T) (Model, *game.Session) {
	t.Helper()
	transcript := NewTranscript()
	s, err := game.NewSession(uuid.New(), transcript, slog.New(slog.NewTextHandler(io.Discard, nil)))
	require.NoError(t, err)

	m := New(context.Background(), s, transcript)
	next, _ := m.Update(tea.WindowSizeMsg{Width: 100, Height: 40})
	return next.(Model), s
}

func press(t *testing.T, m Model, keys ...tea.KeyMsg) Model {
	t.Helper()
	for _, k := range keys {
		next, _ := m.Update(k)
		m = next.(Model)
	}
	return m
}

func runes(s string) tea.KeyMsg {
	return tea.KeyMsg{Type: tea.KeyRunes, Runes: []rune(s)}
}

func TestModel_StartsInFirstRoom(t *testing.T) {
	m, s := newTestModel(t)

	assert.Equal(t, phaseExploring, m.phase)
	assert.Len(t, s.Evidence(), 1)
	assert.Contains(t, m.transcript.String(), casefile.CentralHall)
	assert.Contains(t, m.View(), "DETECTIVE QUEST")
}

func TestModel_ExploreAndSolve(t *testing.T) {
	m, s := newTestModel(t)

	m = press(t, m, runes("d"), tea.KeyMsg{Type: tea.KeyLeft}, runes("s"))

	assert.Equal(t, phaseAccusing, m.phase)
	assert.Equal(t, []string{casefile.CentralHall, casefile.DiningRoom, casefile.Study}, s.Controller().Path())
	assert.Contains(t, m.View(), "Who do you accuse?")

	m.textarea.SetValue("lady agatha")
	m = press(t, m, tea.KeyMsg{Type: tea.KeyEnter})

	require.NotNil(t, m.Verdict())
	assert.Equal(t, phaseVerdict, m.phase)
	assert.True(t, m.Verdict().Solved)
	assert.Equal(t, casefile.LadyAgatha, m.Verdict().Accused)
	assert.Contains(t, m.transcript.String(), casefile.Study)
}

func TestModel_InvalidAndBlockedMoves(t *testing.T) {
	m, s := newTestModel(t)

	m = press(t, m, runes("x"), runes("e"), runes("e"), runes("e"))

	assert.Equal(t, phaseExploring, m.phase)
	assert.Equal(t, casefile.MasterBedroom, s.Controller().Current().Name)
	out := m.transcript.String()
	assert.Contains(t, out, `Invalid action "x"`)
	assert.Contains(t, out, "There is no room to the left.")
}

func TestModel_EscStops(t *testing.T) {
	m, _ := newTestModel(t)

	m = press(t, m, tea.KeyMsg{Type: tea.KeyEsc})

	assert.Equal(t, phaseAccusing, m.phase)
}

func TestModel_NamedKeysDoNotMove(t *testing.T) {
	keys := []tea.KeyType{
		tea.KeyEnter,
		tea.KeyDelete,
		tea.KeyShiftTab,
		tea.KeyEnd,
		tea.KeyHome,
		tea.KeyTab,
		tea.KeySpace,
		tea.KeyBackspace,
	}

	for _, k := range keys {
		t.Run(tea.KeyMsg{Type: k}.String(), func(t *testing.T) {
			m, s := newTestModel(t)
			before := m.transcript.String()

			m = press(t, m, tea.KeyMsg{Type: k})

			assert.Equal(t, phaseExploring, m.phase)
			assert.Equal(t, []string{casefile.CentralHall}, s.Controller().Path())
			assert.Equal(t, before, m.transcript.String())
		})
	}
}

func TestModel_NamedKeysThenMove(t *testing.T) {
	m, s := newTestModel(t)

	m = press(t, m,
		tea.KeyMsg{Type: tea.KeyEnter},
		tea.KeyMsg{Type: tea.KeyDelete},
		tea.KeyMsg{Type: tea.KeyShiftTab},
		runes("d"),
	)

	assert.Equal(t, phaseExploring, m.phase)
	assert.Equal(t, []string{casefile.CentralHall, casefile.DiningRoom}, s.Controller().Path())
}

func TestModel_EmptyAccusationFails(t *testing.T) {
	m, _ := newTestModel(t)

	m = press(t, m, runes("s"), tea.KeyMsg{Type: tea.KeyEnter})

	require.NotNil(t, m.Verdict())
	assert.Empty(t, m.Verdict().Accused)
	assert.False(t, m.Verdict().Solved)
}

func TestModel_QuitKeys(t *testing.T) {
	m, _ := newTestModel(t)

	_, cmd := m.Update(tea.KeyMsg{Type: tea.KeyCtrlC})
	require.NotNil(t, cmd)
	assert.IsType(t, tea.QuitMsg{}, cmd())
}

func TestModel_CopyEvidence(t *testing.T) {
	m, _ := newTestModel(t)
	var copied string
	m.copyToClipboard = func(s string) error {
		copied = s
		return nil
	}

	m = press(t, m, runes("e"), tea.KeyMsg{Type: tea.KeyCtrlY})

	assert.Equal(t, "- Grease residue (points to James the Butler)\n- Red silk thread (points to Lady Agatha)\n", copied)
	assert.Contains(t, m.status, "copied")

	m.copyToClipboard = func(string) error { return errors.New("no clipboard") }
	m = press(t, m, tea.KeyMsg{Type: tea.KeyCtrlY})
	assert.True(t, strings.Contains(m.status, "no clipboard"))
}
