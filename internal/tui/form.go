package tui

import (
	"github.com/charmbracelet/bubbles/cursor"
	"github.com/charmbracelet/bubbles/textinput"
	tea "github.com/charmbracelet/bubbletea"

	"github.com/mesh-intelligence/herodex/internal/form"
)

const (
	fieldName = iota
	fieldPower
	fieldDescription
	fieldCount
)

var fieldLabels = [fieldCount]string{"Nombre", "Poder", "Descripción"}

// formView binds three text inputs to a form.State.
type formView struct {
	state   *form.State
	inputs  [fieldCount]textinput.Model
	focus   int
	touched bool
}

func newFormView(state *form.State) formView {
	v := formView{state: state}
	values := [fieldCount]string{state.Name(), state.Power(), state.Description()}
	for i := range v.inputs {
		inp := textinput.New()
		inp.Prompt = ""
		inp.CharLimit = 200
		inp.Cursor.SetMode(cursor.CursorStatic)
		inp.SetValue(values[i])
		v.inputs[i] = inp
	}
	v.inputs[fieldName].Focus()
	return v
}

func (v *formView) move(dir int) {
	v.inputs[v.focus].Blur()
	v.focus = (v.focus + dir + fieldCount) % fieldCount
	v.inputs[v.focus].Focus()
}

// update feeds msg to the focused input and copies the result into the form
// state. The name is written back so the input shows it upper-cased.
func (v *formView) update(msg tea.Msg) tea.Cmd {
	var cmd tea.Cmd
	v.inputs[v.focus], cmd = v.inputs[v.focus].Update(msg)

	value := v.inputs[v.focus].Value()
	switch v.focus {
	case fieldName:
		v.state.SetName(value)
		if v.state.Name() != value {
			v.inputs[fieldName].SetValue(v.state.Name())
		}
	case fieldPower:
		v.state.SetPower(value)
	case fieldDescription:
		v.state.SetDescription(value)
	}
	return cmd
}

func (v *formView) fieldError(i int) string {
	if !v.touched {
		return ""
	}
	switch i {
	case fieldName:
		return v.state.NameError()
	case fieldPower:
		return v.state.PowerError()
	default:
		return v.state.DescriptionError()
	}
}
