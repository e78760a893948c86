// Package editor holds the pure collection operations behind every list step
// of the wizard. Nothing here mutates its inputs.
package editor

import (
	"slices"

	"github.com/khoahotran/portfolio-builder/pkg/idgen"
)

// Entry is a list element that carries its own identifier.
type Entry interface {
	EntryID() string
}

// List creates, updates and removes entries of one collection type.
type List[T Entry] struct {
	ids   idgen.Generator
	blank func(id string) T
}

func NewList[T Entry](ids idgen.Generator, blank func(id string) T) *List[T] {
	return &List[T]{ids: ids, blank: blank}
}

// Create appends a blank entry with an id not already used in items.
func (l *List[T]) Create(items []T) ([]T, T) {
	id := l.ids.NewID()
	for contains(items, id) {
		id = l.ids.NewID()
	}
	entry := l.blank(id)
	out := make([]T, 0, len(items)+1)
	out = append(out, items...)
	return append(out, entry), entry
}

// Remove drops the entry with the given id. An unknown id returns an
// unchanged copy.
func (l *List[T]) Remove(items []T, id string) []T {
	out := make([]T, 0, len(items))
	for _, it := range items {
		if it.EntryID() != id {
			out = append(out, it)
		}
	}
	return out
}

// Update rewrites the entry with the given id through apply. Other entries
// are copied as-is; an unknown id is a no-op.
func (l *List[T]) Update(items []T, id string, apply func(T) T) []T {
	out := slices.Clone(items)
	if out == nil {
		out = []T{}
	}
	for i, it := range out {
		if it.EntryID() == id {
			out[i] = apply(it)
		}
	}
	return out
}

// Initial is what an editor shows on mount: the items themselves, or a single
// blank entry when there are none.
func (l *List[T]) Initial(items []T) []T {
	if len(items) > 0 {
		return slices.Clone(items)
	}
	return []T{l.blank(l.ids.NewID())}
}

// Find reports the entry with the given id.
func Find[T Entry](items []T, id string) (T, bool) {
	for _, it := range items {
		if it.EntryID() == id {
			return it, true
		}
	}
	var zero T
	return zero, false
}

func contains[T Entry](items []T, id string) bool {
	_, ok := Find(items, id)
	return ok
}
