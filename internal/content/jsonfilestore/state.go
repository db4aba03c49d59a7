package jsonfilestore

import (
	"encoding/json"
	"os"
	"path/filepath"
	"slices"
	"strings"

	"emperror.dev/errors"
	"github.com/HiDeoo/hideoo.dev/internal/content"
	"github.com/HiDeoo/hideoo.dev/internal/utils/maputils"
)

const fileExt = ".json"

type storedEntry struct {
	ID   string          `json:"id"`
	Data json.RawMessage `json:"data"`
}

type state struct {
	collections map[content.Collection][]storedEntry
}

func readState(dir string) (state, error) {
	s := state{collections: make(map[content.Collection][]storedEntry)}
	files, err := filepath.Glob(filepath.Join(dir, "*"+fileExt))
	if err != nil {
		return s, errors.WrapIff(err, "failed to list content files in %q", dir)
	}
	for _, file := range files {
		collection := content.Collection(strings.TrimSuffix(filepath.Base(file), fileExt))
		if !collection.IsKnown() {
			continue
		}
		data, err := os.ReadFile(file)
		if err != nil {
			return s, errors.WrapIff(err, "failed to read content file %q", file)
		}
		var entries []storedEntry
		if err := json.Unmarshal(data, &entries); err != nil {
			return s, errors.WrapIff(err, "failed to parse content file %q", file)
		}
		s.collections[collection] = entries
	}
	return s, nil
}

func (s state) copy() state {
	collections := maputils.Copy(s.collections)
	for name, entries := range collections {
		collections[name] = slices.Clone(entries)
	}
	return state{collections}
}

func (s state) write(dir string, collections []content.Collection) error {
	if len(collections) == 0 {
		return nil
	}
	if err := os.MkdirAll(dir, 0755); err != nil {
		return errors.WrapIff(err, "failed to create content directory %q", dir)
	}
	for _, collection := range collections {
		entries := s.collections[collection]
		if entries == nil {
			entries = []storedEntry{}
		}
		if err := writeFile(filepath.Join(dir, string(collection)+fileExt), entries); err != nil {
			return err
		}
	}
	return nil
}

func writeFile(path string, entries []storedEntry) error {
	f, err := os.OpenFile(path, os.O_WRONLY|os.O_CREATE|os.O_TRUNC, 0644)
	if err != nil {
		return errors.WrapIff(err, "failed to write content file %q", path)
	}
	enc := json.NewEncoder(f)
	enc.SetIndent("", "  ")
	if err := enc.Encode(entries); err != nil {
		_ = f.Close()
		return errors.WrapIff(err, "failed to write content file %q", path)
	}
	return f.Close()
}
