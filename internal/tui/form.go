package tui

import (
	"strings"

	"github.com/charmbracelet/bubbles/textinput"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"
	"github.com/matheuskafuri/newsmatch/internal/profile"
)

// profileForm holds one text input per editable profile field.
type profileForm struct {
	fields []profile.Field
	inputs []textinput.Model
	focus  int
}

func newProfileForm() profileForm {
	f := profileForm{fields: profile.Fields()}
	for _, field := range f.fields {
		ti := textinput.New()
		ti.Prompt = ""
		ti.CharLimit = 120
		if field == profile.Bio {
			ti.CharLimit = 280
		}
		ti.Placeholder = field.String()
		f.inputs = append(f.inputs, ti)
	}
	return f
}

// load fills the inputs from p and focuses the first field.
func (f *profileForm) load(p profile.Profile) tea.Cmd {
	for i, field := range f.fields {
		f.inputs[i].SetValue(p.Get(field))
		f.inputs[i].CursorEnd()
		f.inputs[i].Blur()
	}
	f.focus = 0
	return f.inputs[0].Focus()
}

func (f *profileForm) move(delta int) tea.Cmd {
	f.inputs[f.focus].Blur()
	f.focus = (f.focus + delta + len(f.inputs)) % len(f.inputs)
	return f.inputs[f.focus].Focus()
}

func (f *profileForm) update(msg tea.Msg) tea.Cmd {
	var cmd tea.Cmd
	f.inputs[f.focus], cmd = f.inputs[f.focus].Update(msg)
	return cmd
}

// apply copies every input into the editor draft.
func (f *profileForm) apply(e *profile.Editor) {
	for i, field := range f.fields {
		e.Set(field, strings.TrimSpace(f.inputs[i].Value()))
	}
}

func (f *profileForm) view(width, height int) string {
	inputWidth := width - 24
	if inputWidth > 60 {
		inputWidth = 60
	}
	if inputWidth < 10 {
		inputWidth = 10
	}

	lines := []string{profileNameStyle.Render("Edit profile"), ""}
	for i, field := range f.fields {
		label := inputLabelStyle
		if i == f.focus {
			label = inputLabelActiveStyle
		}
		f.inputs[i].Width = inputWidth
		lines = append(lines, label.Render(field.String())+f.inputs[i].View())
	}
	lines = append(lines, "", helpDimStyle.Render("tab next field · enter save · esc cancel"))

	card := overlayStyle.Render(strings.Join(lines, "\n"))
	return lipgloss.Place(width, height, lipgloss.Center, lipgloss.Center, card)
}
