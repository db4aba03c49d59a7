package content

import (
	"context"
	"slices"

	"emperror.dev/errors"
	"github.com/sirupsen/logrus"
)

type Collection string

const (
	CollectionRepos               Collection = "repos"
	CollectionRecentRepos         Collection = "recentRepos"
	CollectionRecentContributions Collection = "recentContributions"
	CollectionLanguages           Collection = "languages"
	CollectionNotes               Collection = "notes"
	CollectionNotebooks           Collection = "notebooks"
)

var collections = []Collection{
	CollectionRepos,
	CollectionRecentRepos,
	CollectionRecentContributions,
	CollectionLanguages,
	CollectionNotes,
	CollectionNotebooks,
}

// Collections returns every collection the site produces.
func Collections() []Collection {
	return slices.Clone(collections)
}

// IsKnown reports whether c is one of the collections the site produces.
func (c Collection) IsKnown() bool {
	return slices.Contains(collections, c)
}

// Entry is a single record of a collection.
type Entry struct {
	ID   string
	Data any
}

// Validator is implemented by entry data that can check its own shape.
type Validator interface {
	Validate() error
}

// Loader produces the entries of a collection.
type Loader interface {
	Name() string
	Collection() Collection
	Load(ctx context.Context) ([]Entry, error)
}

type loaderFunc struct {
	name       string
	collection Collection
	load       func(ctx context.Context) ([]Entry, error)
}

func (l loaderFunc) Name() string           { return l.name }
func (l loaderFunc) Collection() Collection { return l.collection }
func (l loaderFunc) Load(ctx context.Context) ([]Entry, error) {
	return l.load(ctx)
}

// NewLoader returns a Loader backed by the given function.
func NewLoader(name string, collection Collection, load func(ctx context.Context) ([]Entry, error)) Loader {
	return loaderFunc{name, collection, load}
}

// ReadTx is a read-only view of the store.
type ReadTx interface {
	Entries(collection Collection) []Entry
	Entry(collection Collection, id string) (Entry, bool)
}

// WriteTx buffers changes to the store until the transaction function
// returns.
type WriteTx interface {
	ReadTx
	Clear(collection Collection)
	Set(collection Collection, entry Entry)
	Abort()
}

type Store interface {
	ReadTx
	WithTx(fn func(tx WriteTx)) error
}

// Load runs every loader in order and replaces the content of its collection
// with the loaded entries. Entries are validated before the collection is
// touched: a single invalid entry aborts the whole load and leaves the
// collection as it was.
func Load(ctx context.Context, store Store, loaders ...Loader) error {
	for _, loader := range loaders {
		log := logrus.WithFields(logrus.Fields{
			"loader":     loader.Name(),
			"collection": loader.Collection(),
		})
		entries, err := loader.Load(ctx)
		if err != nil {
			return errors.WrapIff(err, "loader %q failed", loader.Name())
		}
		if err := validateEntries(loader.Collection(), entries); err != nil {
			return err
		}

		err = store.WithTx(func(tx WriteTx) {
			tx.Clear(loader.Collection())
			for _, entry := range entries {
				tx.Set(loader.Collection(), entry)
			}
		})
		if err != nil {
			return errors.WrapIff(err, "failed to store collection %q", loader.Collection())
		}
		log.WithField("entries", len(entries)).Debug("loaded collection")
	}
	return nil
}

func validateEntries(collection Collection, entries []Entry) error {
	seen := make(map[string]bool, len(entries))
	for _, entry := range entries {
		if entry.ID == "" {
			return InvariantViolation{Collection: collection, Field: "id", Reason: "missing entry id"}
		}
		if seen[entry.ID] {
			return InvariantViolation{Collection: collection, ID: entry.ID, Field: "id", Reason: "duplicate entry id"}
		}
		seen[entry.ID] = true

		v, ok := entry.Data.(Validator)
		if !ok {
			continue
		}
		if err := v.Validate(); err != nil {
			var violation InvariantViolation
			if errors.As(err, &violation) {
				violation.Collection = collection
				violation.ID = entry.ID
				return violation
			}
			return InvariantViolation{Collection: collection, ID: entry.ID, Reason: err.Error()}
		}
	}
	return nil
}
