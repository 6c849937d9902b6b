package dom

import (
	"iter"
	"maps"
)

// Attr is a single key/value attribute entry.
type Attr struct {
	Key   string
	Value string
}

// Attributes is an ordered attribute table. Keys are unique; iteration
// follows first-insertion order.
type Attributes struct {
	entries []Attr
	index   map[string]int
}

// NewAttributes creates an empty attribute table.
func NewAttributes() *Attributes {
	return &Attributes{}
}

// Set inserts key at the end of the table, or overwrites its value in
// place if the key is already present.
func (a *Attributes) Set(key, value string) {
	if i, ok := a.index[key]; ok {
		a.entries[i].Value = value
		return
	}
	if a.index == nil {
		a.index = make(map[string]int)
	}
	a.index[key] = len(a.entries)
	a.entries = append(a.entries, Attr{Key: key, Value: value})
}

// Get returns the value for key.
func (a *Attributes) Get(key string) (string, bool) {
	if a == nil {
		return "", false
	}
	i, ok := a.index[key]
	if !ok {
		return "", false
	}
	return a.entries[i].Value, true
}

// Has reports whether key is present.
func (a *Attributes) Has(key string) bool {
	_, ok := a.Get(key)
	return ok
}

// Len returns the number of attributes.
func (a *Attributes) Len() int {
	if a == nil {
		return 0
	}
	return len(a.entries)
}

// All returns the attributes in insertion order. The sequence can be
// ranged over any number of times.
func (a *Attributes) All() iter.Seq2[string, string] {
	return func(yield func(string, string) bool) {
		if a == nil {
			return
		}
		for _, e := range a.entries {
			if !yield(e.Key, e.Value) {
				return
			}
		}
	}
}

// Clone returns an independent copy of the table.
func (a *Attributes) Clone() *Attributes {
	c := &Attributes{}
	if a == nil || len(a.entries) == 0 {
		return c
	}
	c.entries = make([]Attr, len(a.entries))
	copy(c.entries, a.entries)
	c.index = maps.Clone(a.index)
	return c
}
