package model

import (
	"golang.org/x/text/cases"
	"golang.org/x/text/language"
)

// Container holds a name and an ordered, growable sequence of text items.
//
// The name is fixed at construction. Items can only be appended; nothing
// is ever removed or replaced, so insertion order is preserved for the
// lifetime of the container.
type Container struct {
	name string
	data []string
}

// NewContainer creates an empty container with the given name.
// Any text is accepted as a name, including the empty string.
func NewContainer(name string) *Container {
	return &Container{
		name: name,
		data: []string{},
	}
}

// Name returns the name the container was created with.
func (c *Container) Name() string {
	return c.name
}

// Append adds items to the end of the sequence, in argument order.
func (c *Container) Append(items ...string) {
	c.data = append(c.data, items...)
}

// Items returns a copy of the sequence in insertion order.
// Mutating the returned slice does not affect the container.
func (c *Container) Items() []string {
	out := make([]string, len(c.data))
	copy(out, c.data)
	return out
}

// Count returns the number of items currently in the container.
// It is computed from the sequence on every call.
func (c *Container) Count() int {
	return len(c.data)
}

// upperTag selects language-neutral case mapping. A cases.Caser keeps
// internal state, so UtilityFunction builds a fresh one per call.
var upperTag = language.Und

// UtilityFunction returns value with every letter mapped to upper case.
//
// Full Unicode case mapping is applied, so characters whose upper-case form
// is longer than one rune expand (for example "ß" becomes "SS"). Applying
// it to its own output returns the same string.
func UtilityFunction(value string) string {
	return cases.Upper(upperTag).String(value)
}
