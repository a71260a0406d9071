package types

import "strings"

// Hero is the managed record. ID is assigned by the store; Name is always
// stored upper-cased.
type Hero struct {
	ID          int    `json:"id" yaml:"id"`
	Name        string `json:"name" yaml:"name"`
	Power       string `json:"power" yaml:"power"`
	Description string `json:"description" yaml:"description"`
}

// Draft is a hero payload without an assigned ID, used only for creation.
type Draft struct {
	Name        string `json:"name" yaml:"name"`
	Power       string `json:"power" yaml:"power"`
	Description string `json:"description" yaml:"description"`
}

// Canonical returns a copy of h with the name upper-cased.
func (h Hero) Canonical() Hero {
	h.Name = strings.ToUpper(h.Name)
	return h
}

// Draft returns the hero payload without its ID.
func (h Hero) Draft() Draft {
	return Draft{Name: h.Name, Power: h.Power, Description: h.Description}
}

// WithID turns the draft into a canonical Hero carrying id.
func (d Draft) WithID(id int) Hero {
	return Hero{
		ID:          id,
		Name:        d.Name,
		Power:       d.Power,
		Description: d.Description,
	}.Canonical()
}
