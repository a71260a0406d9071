package form

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/mesh-intelligence/herodex/pkg/types"
)

func TestNewIsCreateMode(t *testing.T) {
	s := New()
	assert.Equal(t, ModeCreate, s.Mode())
	assert.Equal(t, "Agregar Héroe", s.Title())
	assert.Equal(t, "Guardar", s.SubmitLabel())
	assert.False(t, s.IsValid())
}

func TestBind(t *testing.T) {
	s := New()
	s.Bind(&types.Hero{ID: 4, Name: "flash", Power: "Velocidad", Description: "Rápido"})

	assert.Equal(t, ModeEdit, s.Mode())
	assert.Equal(t, "Editar Héroe", s.Title())
	assert.Equal(t, "Actualizar", s.SubmitLabel())
	assert.Equal(t, "FLASH", s.Name())
	assert.Equal(t, "Velocidad", s.Power())
	assert.Equal(t, "Rápido", s.Description())

	s.Bind(nil)
	assert.Equal(t, ModeCreate, s.Mode())
	assert.Empty(t, s.Name())
	assert.Empty(t, s.Power())
	assert.Empty(t, s.Description())
}

func TestSetNameUppercases(t *testing.T) {
	s := New()
	s.SetName("iron man")
	assert.Equal(t, "IRON MAN", s.Name())
}

func TestValidation(t *testing.T) {
	tests := []struct {
		name                string
		hero, power, descr  string
		wantName, wantPower string
		wantDescr           string
		wantValid           bool
	}{
		{
			name:      "all empty",
			wantName:  ErrNameRequired,
			wantPower: ErrPowerRequired,
			wantDescr: ErrDescriptionRequired,
		},
		{
			name:      "whitespace only",
			hero:      "   ",
			power:     "\t",
			descr:     " \n ",
			wantName:  "El nombre es requerido",
			wantPower: "El poder es requerido",
			wantDescr: "La descripción es requerida",
		},
		{
			name:      "missing description",
			hero:      "thor",
			power:     "Rayos",
			wantDescr: ErrDescriptionRequired,
		},
		{
			name:      "complete",
			hero:      "thor",
			power:     "Rayos",
			descr:     "Dios del trueno",
			wantValid: true,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			s := New()
			s.SetName(tt.hero)
			s.SetPower(tt.power)
			s.SetDescription(tt.descr)

			assert.Equal(t, tt.wantName, s.NameError())
			assert.Equal(t, tt.wantPower, s.PowerError())
			assert.Equal(t, tt.wantDescr, s.DescriptionError())
			assert.Equal(t, tt.wantValid, s.IsValid())
		})
	}
}

func TestSubmitInvalidEmitsNothing(t *testing.T) {
	s := New()
	called := false
	s.OnSubmit(func(Submission) { called = true })

	_, ok := s.Submit()
	assert.False(t, ok)
	assert.False(t, called)
}

func TestSubmitCreate(t *testing.T) {
	s := New()
	var got []Submission
	s.OnSubmit(func(sub Submission) { got = append(got, sub) })

	s.SetName("new hero")
	s.SetPower("P")
	s.SetDescription("D")

	sub, ok := s.Submit()
	require.True(t, ok)
	assert.Equal(t, Submission{Draft: types.Draft{Name: "NEW HERO", Power: "P", Description: "D"}}, sub)
	assert.Equal(t, []Submission{sub}, got)
}

func TestSubmitEdit(t *testing.T) {
	s := New()
	s.Bind(&types.Hero{ID: 7, Name: "THOR", Power: "Rayos", Description: "Dios"})
	s.SetDescription("Dios del trueno")

	sub, ok := s.Submit()
	require.True(t, ok)
	assert.True(t, sub.HasID)
	assert.Equal(t, 7, sub.ID)
	assert.Equal(t, types.Hero{ID: 7, Name: "THOR", Power: "Rayos", Description: "Dios del trueno"}, sub.Hero())
}

func TestCancel(t *testing.T) {
	s := New()
	s.Bind(&types.Hero{ID: 1, Name: "X", Power: "Y", Description: "Z"})

	cancelled := 0
	s.OnCancel(func() { cancelled++ })
	s.Cancel()

	assert.Equal(t, 1, cancelled)
	assert.Empty(t, s.Name())
	assert.Empty(t, s.Power())
	assert.Empty(t, s.Description())
}
