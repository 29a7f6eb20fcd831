package ui

import (
	tea "github.com/charmbracelet/bubbletea"
	"github.com/pkg/errors"

	"pkm-forge/dex"
)

func Start(d *dex.Dex) error {
	formModel := CreateFormModel(d)
	if err := tea.NewProgram(&formModel).Start(); err != nil {
		return errors.Wrap(err, "ui.Start error")
	}
	return nil
}
