package ui

import (
	"fmt"
	"os"
	"unicode/utf8"

	tea "github.com/charmbracelet/bubbletea"

	"pkm-forge/dex"
	"pkm-forge/form"
	"pkm-forge/pk8"
)

// FormModel walks through the record's fields one prompt at a time. An empty
// answer keeps the prefilled default; the final step encodes the record and
// writes it out.
type FormModel struct {
	dexTable *dex.Dex
	entries  []form.Entry
	index    int
	input    string
	typed    bool
	status   string
	finished bool
}

func CreateFormModel(d *dex.Dex) FormModel {
	return FormModel{
		dexTable: d,
		entries:  form.Entries(pk8.NewDefaults(), d),
	}
}

func (s *FormModel) Init() tea.Cmd {
	return nil
}

func (s *FormModel) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	keyMsg, ok := msg.(tea.KeyMsg)
	if !ok {
		return s, nil
	}
	switch keyMsg.Type {
	case tea.KeyCtrlC, tea.KeyEsc:
		return s, tea.Quit
	}
	if s.finished {
		return s, tea.Quit
	}
	switch keyMsg.Type {
	case tea.KeyEnter:
		if s.typed {
			s.entries[s.index].Value = s.input
		}
		s.input = ""
		s.typed = false
		s.index++
		if s.index == len(s.entries) {
			s.generate()
			s.finished = true
		}
	case tea.KeyBackspace:
		if len(s.input) > 0 {
			_, size := utf8.DecodeLastRuneInString(s.input)
			s.input = s.input[:len(s.input)-size]
		}
	case tea.KeySpace:
		s.input += " "
		s.typed = true
	case tea.KeyRunes:
		s.input += string(keyMsg.Runes)
		s.typed = true
	}
	return s, nil
}

func (s *FormModel) View() string {
	output := "PKM FORGE\n\n"
	for i := 0; i < s.index && i < len(s.entries); i++ {
		entry := s.entries[i]
		output += fmt.Sprintf("%s: %s\n", entry.Label, entry.Value)
	}
	if s.index < len(s.entries) {
		entry := s.entries[s.index]
		output += fmt.Sprintf("%s [%s]: %s", entry.Label, entry.Value, s.input)
	}
	if s.status != "" {
		output += "\n\n" + s.status
	}
	return output
}

func (s *FormModel) generate() {
	out, partial, err := form.Resolve(s.entries, s.dexTable)
	if err != nil {
		s.status = err.Error()
		return
	}
	bs, err := pk8.Encode(partial, pk8.NewDefaults())
	if err != nil {
		s.status = err.Error()
		return
	}
	if err := os.WriteFile(out, bs, 0644); err != nil {
		s.status = err.Error()
		return
	}
	s.status = fmt.Sprintf("Created %s (%d bytes); press any key to exit", out, len(bs))
}
