package jsonfilestore

import (
	"encoding/json"

	"emperror.dev/errors"
	"github.com/HiDeoo/hideoo.dev/internal/content"
	"github.com/HiDeoo/hideoo.dev/internal/utils/sliceutils"
)

type writeTx struct {
	readTx
	dirty   []content.Collection
	aborted bool
	err     error
}

func (tx *writeTx) Clear(collection content.Collection) {
	tx.state.collections[collection] = []storedEntry{}
	tx.dirty = sliceutils.AppendIfNotContains(tx.dirty, collection)
}

// Set inserts the entry or replaces the entry with the same id in place.
func (tx *writeTx) Set(collection content.Collection, entry content.Entry) {
	if tx.err != nil {
		return
	}
	data, err := marshalData(entry.Data)
	if err != nil {
		tx.err = errors.WrapIff(err, "failed to encode entry %q of %q", entry.ID, collection)
		return
	}
	stored := storedEntry{ID: entry.ID, Data: data}
	entries := tx.state.collections[collection]
	replaced := false
	for i := range entries {
		if entries[i].ID == entry.ID {
			entries[i] = stored
			replaced = true
			break
		}
	}
	if !replaced {
		entries = append(entries, stored)
	}
	tx.state.collections[collection] = entries
	tx.dirty = sliceutils.AppendIfNotContains(tx.dirty, collection)
}

func (tx *writeTx) Abort() {
	tx.aborted = true
}

func marshalData(data any) (json.RawMessage, error) {
	if raw, ok := data.(json.RawMessage); ok {
		return raw, nil
	}
	return json.Marshal(data)
}

var _ content.WriteTx = &writeTx{}
