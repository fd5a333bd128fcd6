package main

import (
	"testing"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/maelvls/dungeonname/namegen"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// firstEntries always draws index 0, which gives "Zakletá krypta hrůzy".
type firstEntries struct{}

func (firstEntries) IntN(int) int { return 0 }

func update(t *testing.T, m uiModel, msg tea.Msg) (uiModel, tea.Cmd) {
	t.Helper()
	next, cmd := m.Update(msg)
	um, ok := next.(uiModel)
	require.True(t, ok, "Update returned a %T", next)
	return um, cmd
}

func TestUIModel(t *testing.T) {
	g := namegen.MustNew(namegen.DefaultVocabulary(), namegen.WithSource(firstEntries{}))

	t.Run("starts empty with a placeholder", func(t *testing.T) {
		m := newUIModel(g)
		assert.Equal(t, "", m.field.Value())
		assert.True(t, m.field.Focused())
		assert.Contains(t, withoutANSI(m.View()), "Dungeon name")
	})

	t.Run("enter fills the field", func(t *testing.T) {
		m, cmd := update(t, newUIModel(g), tea.KeyMsg{Type: tea.KeyEnter})
		assert.Nil(t, cmd)
		assert.Equal(t, "Zakletá krypta hrůzy", m.field.Value())
		assert.Equal(t, 1, m.generated)
		assert.Contains(t, withoutANSI(m.View()), "1 generated")
	})

	t.Run("ctrl+n replaces the field", func(t *testing.T) {
		m := newUIModel(g)
		m.field.SetValue("something else")
		m, _ = update(t, m, tea.KeyMsg{Type: tea.KeyCtrlN})
		assert.Equal(t, "Zakletá krypta hrůzy", m.field.Value())
	})

	t.Run("typing edits the field", func(t *testing.T) {
		m, _ := update(t, newUIModel(g), tea.KeyMsg{Type: tea.KeyEnter})
		m, _ = update(t, m, tea.KeyMsg{Type: tea.KeyRunes, Runes: []rune("!")})
		assert.Equal(t, "Zakletá krypta hrůzy!", m.field.Value())
	})

	for _, key := range []tea.KeyType{tea.KeyEsc, tea.KeyCtrlC} {
		t.Run("quits on "+key.String(), func(t *testing.T) {
			m, cmd := update(t, newUIModel(g), tea.KeyMsg{Type: key})
			require.NotNil(t, cmd)
			assert.IsType(t, tea.QuitMsg{}, cmd())
			assert.True(t, m.quitting)
			assert.Empty(t, m.View())
		})
	}
}
