package ui

import (
	"testing"
	"unicode/utf8"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"pkm-forge/dex"
)

func typeRunes(model *FormModel, s string) {
	model.Update(tea.KeyMsg{Type: tea.KeyRunes, Runes: []rune(s)})
}

func backspace(model *FormModel) {
	model.Update(tea.KeyMsg{Type: tea.KeyBackspace})
}

func TestFormModel_BackspaceDeletesWholeRunes(t *testing.T) {
	model := CreateFormModel(dex.Default())

	typeRunes(&model, "ニド")
	backspace(&model)

	require.True(t, utf8.ValidString(model.input))
	assert.Equal(t, "ニ", model.input)

	backspace(&model)
	assert.Equal(t, "", model.input)
	// an empty input still handles backspace without panicking
	backspace(&model)
	assert.Equal(t, "", model.input)
}

func TestFormModel_TypedInputCommitsOnEnter(t *testing.T) {
	model := CreateFormModel(dex.Default())
	model.Update(tea.KeyMsg{Type: tea.KeyEnter})

	typeRunes(&model, "Eevee")
	model.Update(tea.KeyMsg{Type: tea.KeyEnter})

	assert.Equal(t, "Eevee", model.entries[1].Value)
	assert.Equal(t, 2, model.index)
	assert.Equal(t, "", model.input)
}
