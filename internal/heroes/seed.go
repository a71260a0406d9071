package heroes

import "github.com/mesh-intelligence/herodex/pkg/types"

// sampleHeroes is the dataset a fresh store starts with.
var sampleHeroes = []types.Hero{
	{
		ID:          1,
		Name:        "SUPERMAN",
		Power:       "Superfuerza",
		Description: "El último hijo de Krypton con poderes extraordinarios",
	},
	{
		ID:          2,
		Name:        "BATMAN",
		Power:       "Inteligencia",
		Description: "Detective millonario que lucha contra el crimen en Gotham",
	},
	{
		ID:          3,
		Name:        "WONDER WOMAN",
		Power:       "Fuerza amazona",
		Description: "Princesa guerrera de Themyscira",
	},
	{
		ID:          4,
		Name:        "SPIDERMAN",
		Power:       "Agilidad y sentido arácnido",
		Description: "Joven héroe con poderes de araña que protege Nueva York",
	},
	{
		ID:          5,
		Name:        "IRON MAN",
		Power:       "Tecnología avanzada",
		Description: "Genio millonario con una armadura de alta tecnología",
	},
	{
		ID:          6,
		Name:        "FLASH",
		Power:       "Supervelocidad",
		Description: "El hombre más rápido del mundo capaz de viajar en el tiempo",
	},
	{
		ID:          7,
		Name:        "LINTERNA VERDE",
		Power:       "Anillo de poder",
		Description: "Protector galáctico con un anillo que materializa su voluntad",
	},
	{
		ID:          8,
		Name:        "AQUAMAN",
		Power:       "Control de los océanos",
		Description: "Rey de Atlantis con poder sobre todos los seres marinos",
	},
	{
		ID:          9,
		Name:        "CAPITAN AMERICA",
		Power:       "Fuerza sobrehumana",
		Description: "Super soldado con escudo de vibranium que representa la justicia",
	},
}

// SampleHeroes returns a copy of the built-in sample dataset.
func SampleHeroes() []types.Hero {
	out := make([]types.Hero, len(sampleHeroes))
	copy(out, sampleHeroes)
	return out
}
