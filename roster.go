package settle

import (
	"fmt"
	"slices"
	"strings"
)

// Person is a participant, identified by a unique case-normalized name.
// The display form (as first declared) is preserved; matching is
// case-insensitive.
type Person string

// fold normalizes a raw name for matching: trimmed and case-folded.
func fold(name string) string {
	return strings.ToLower(strings.TrimSpace(name))
}

// Roster is the fixed, ordered, deduplicated set of participants for a run.
//
// The declaration order matters: it is the tie-break authority for the
// netting phase and the order in which leftover minor units are assigned
// when splitting an expense.
type Roster struct {
	people []Person
	index  map[string]int // folded name to declaration position
}

// NewRoster creates a roster from the given names, in order.
func NewRoster(names ...string) (*Roster, error) {
	r := &Roster{index: make(map[string]int)}
	if err := r.Add(names...); err != nil {
		return nil, err
	}
	return r, nil
}

// Add appends new participants to the roster, preserving order.
// Empty names and duplicates (after normalization) are rejected.
func (r *Roster) Add(names ...string) error {
	if r.index == nil {
		r.index = make(map[string]int)
	}
	for _, name := range names {
		display := strings.TrimSpace(name)
		key := fold(name)
		if key == "" {
			return fmt.Errorf("empty participant name")
		}
		if _, ok := r.index[key]; ok {
			return fmt.Errorf("duplicate participant %q", display)
		}
		r.index[key] = len(r.people)
		r.people = append(r.people, Person(display))
	}
	return nil
}

// Lookup resolves a raw name to its roster Person.
func (r *Roster) Lookup(name string) (Person, bool) {
	i, ok := r.index[fold(name)]
	if !ok {
		return "", false
	}
	return r.people[i], true
}

// Index returns the declaration position of p, or -1 if p is not a member.
func (r *Roster) Index(p Person) int {
	if i, ok := r.index[fold(string(p))]; ok {
		return i
	}
	return -1
}

// People returns the participants in declaration order.
func (r *Roster) People() []Person { return slices.Clone(r.people) }

// Names returns the participant names in declaration order.
func (r *Roster) Names() []string {
	names := make([]string, len(r.people))
	for i, p := range r.people {
		names[i] = string(p)
	}
	return names
}

// Len returns the number of participants.
func (r *Roster) Len() int { return len(r.people) }

// sortByIndex orders people by roster declaration order, in place.
func (r *Roster) sortByIndex(people []Person) {
	slices.SortStableFunc(people, func(a, b Person) int {
		return r.Index(a) - r.Index(b)
	})
}
