package jsonfilestore

import (
	"github.com/HiDeoo/hideoo.dev/internal/content"
)

type readTx struct {
	state state
}

var _ content.ReadTx = &readTx{}

// Entries returns the entries of the collection in insertion order. The data
// of each entry is its JSON encoding.
func (tx *readTx) Entries(collection content.Collection) []content.Entry {
	stored := tx.state.collections[collection]
	entries := make([]content.Entry, 0, len(stored))
	for _, e := range stored {
		entries = append(entries, content.Entry{ID: e.ID, Data: e.Data})
	}
	return entries
}

func (tx *readTx) Entry(collection content.Collection, id string) (content.Entry, bool) {
	if id == "" {
		panic("invariant error: cannot read content entry with an empty id")
	}
	for _, e := range tx.state.collections[collection] {
		if e.ID == id {
			return content.Entry{ID: e.ID, Data: e.Data}, true
		}
	}
	return content.Entry{}, false
}
