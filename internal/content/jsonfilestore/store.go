// Package jsonfilestore implements a content.Store that persists each
// collection to its own JSON file.
package jsonfilestore

import (
	"github.com/HiDeoo/hideoo.dev/internal/content"
)

type Store struct {
	readTx
	dir string
}

// Open opens a JSON file store rooted at the given directory.
// If the directory does not exist, it is created on the first write.
func Open(dir string) (*Store, error) {
	state, err := readState(dir)
	if err != nil {
		return nil, err
	}
	return &Store{readTx{state}, dir}, nil
}

func (s *Store) WithTx(fn func(tx content.WriteTx)) error {
	// Make a copy of the state so that an aborted or failed transaction
	// leaves the store untouched.
	tx := &writeTx{readTx: readTx{s.state.copy()}}
	fn(tx)
	if tx.aborted {
		return nil
	}
	if tx.err != nil {
		return tx.err
	}
	if err := tx.state.write(s.dir, tx.dirty); err != nil {
		return err
	}
	s.state = tx.state
	return nil
}

var (
	_ content.Store = &Store{}
)
