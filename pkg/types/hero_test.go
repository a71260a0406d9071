package types

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestHeroCanonical(t *testing.T) {
	h := Hero{ID: 3, Name: "wonder Woman", Power: "Fuerza amazona", Description: "Princesa"}

	got := h.Canonical()

	assert.Equal(t, "WONDER WOMAN", got.Name)
	assert.Equal(t, "Fuerza amazona", got.Power, "power is kept verbatim")
	assert.Equal(t, "Princesa", got.Description, "description is kept verbatim")
	assert.Equal(t, "wonder Woman", h.Name, "receiver must not change")
}

func TestDraftWithID(t *testing.T) {
	d := Draft{Name: "lowercase hero", Power: "P", Description: "D"}

	got := d.WithID(1)

	assert.Equal(t, Hero{ID: 1, Name: "LOWERCASE HERO", Power: "P", Description: "D"}, got)
	assert.Equal(t, Draft{Name: "LOWERCASE HERO", Power: "P", Description: "D"}, got.Draft())
}
