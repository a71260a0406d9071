// Package form holds the state of the hero add/edit form: field values,
// per-field validation messages and the submit/cancel events.
package form

import (
	"strings"

	"github.com/mesh-intelligence/herodex/pkg/types"
)

// Mode tells whether the form creates a new hero or edits an existing one.
type Mode int

const (
	ModeCreate Mode = iota
	ModeEdit
)

// Labels and validation messages shown to the user.
const (
	TitleCreate = "Agregar Héroe"
	TitleEdit   = "Editar Héroe"

	SubmitCreate = "Guardar"
	SubmitEdit   = "Actualizar"

	ErrNameRequired        = "El nombre es requerido"
	ErrPowerRequired       = "El poder es requerido"
	ErrDescriptionRequired = "La descripción es requerida"
)

// Submission is the payload of a successful submit. HasID is set in edit
// mode, where ID carries the bound hero's ID.
type Submission struct {
	Draft types.Draft
	ID    int
	HasID bool
}

// Hero returns the submission as a hero. Only meaningful when HasID is set.
func (s Submission) Hero() types.Hero {
	return s.Draft.WithID(s.ID)
}

// State is the form model. The zero value is not usable; call New.
type State struct {
	bound *types.Hero

	name        string
	power       string
	description string

	onSubmit []func(Submission)
	onCancel []func()
}

// New returns an empty form in create mode.
func New() *State {
	return &State{}
}

// Bind loads h into the form and switches to edit mode. A nil hero clears
// the fields and switches to create mode.
func (s *State) Bind(h *types.Hero) {
	if h == nil {
		s.bound = nil
		s.reset()
		return
	}
	bound := *h
	s.bound = &bound
	s.name = strings.ToUpper(h.Name)
	s.power = h.Power
	s.description = h.Description
}

// SetName stores the name upper-cased, as typed input is shown.
func (s *State) SetName(v string) { s.name = strings.ToUpper(v) }

func (s *State) SetPower(v string) { s.power = v }

func (s *State) SetDescription(v string) { s.description = v }

func (s *State) Name() string        { return s.name }
func (s *State) Power() string       { return s.power }
func (s *State) Description() string { return s.description }

// Mode reports whether a hero is bound.
func (s *State) Mode() Mode {
	if s.bound != nil {
		return ModeEdit
	}
	return ModeCreate
}

func (s *State) Title() string {
	if s.Mode() == ModeEdit {
		return TitleEdit
	}
	return TitleCreate
}

func (s *State) SubmitLabel() string {
	if s.Mode() == ModeEdit {
		return SubmitEdit
	}
	return SubmitCreate
}

// NameError returns the validation message for the name, or "" when valid.
func (s *State) NameError() string { return required(s.name, ErrNameRequired) }

func (s *State) PowerError() string { return required(s.power, ErrPowerRequired) }

func (s *State) DescriptionError() string {
	return required(s.description, ErrDescriptionRequired)
}

// IsValid reports whether every field has non-blank content.
func (s *State) IsValid() bool {
	return s.NameError() == "" && s.PowerError() == "" && s.DescriptionError() == ""
}

// Submit emits the current values to the OnSubmit handlers. It does nothing
// and returns false when the form is invalid.
func (s *State) Submit() (Submission, bool) {
	if !s.IsValid() {
		return Submission{}, false
	}
	sub := Submission{Draft: types.Draft{
		Name:        s.name,
		Power:       s.power,
		Description: s.description,
	}}
	if s.bound != nil {
		sub.ID = s.bound.ID
		sub.HasID = true
	}
	for _, fn := range s.onSubmit {
		fn(sub)
	}
	return sub, true
}

// Cancel clears the fields and emits to the OnCancel handlers. The bound
// hero, if any, is kept.
func (s *State) Cancel() {
	s.reset()
	for _, fn := range s.onCancel {
		fn()
	}
}

// OnSubmit registers fn to receive each successful submission.
func (s *State) OnSubmit(fn func(Submission)) { s.onSubmit = append(s.onSubmit, fn) }

// OnCancel registers fn to run on each Cancel.
func (s *State) OnCancel(fn func()) { s.onCancel = append(s.onCancel, fn) }

func (s *State) reset() {
	s.name, s.power, s.description = "", "", ""
}

func required(v, msg string) string {
	if strings.TrimSpace(v) == "" {
		return msg
	}
	return ""
}
