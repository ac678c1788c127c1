package catalog

import (
	"github.com/dgraph-io/badger/v3"

	"github.com/2x3systems/gogroup/gogroup"
)

// SignatureSet accumulates group signatures and reports whether a given
// signature was added before, e.g. while enumerating a family of groups and
// skipping invariant-equivalent repeats.
type SignatureSet interface {

	// TryAdd adds the given signature if it is not already present.
	//
	// If sig is already in this set, TryAdd() returns false and has no effect.
	//
	// After one or more calls to TryAdd(), call Close() for cleanup.
	TryAdd(sig gogroup.Signature) bool

	// Close removes all previously added items from this set.
	Close()
}

func NewSignatureSet() SignatureSet {
	return &sigSet{}
}

type sigSet struct {
	lsmSet
}

func (set *sigSet) TryAdd(sig gogroup.Signature) bool {
	return set.tryAdd(sig)
}

// lsmSet is a badger-backed in-memory set keyed by raw bytes.
type lsmSet struct {
	db *badger.DB
}

func (set *lsmSet) autoOpen() {
	if set.db == nil {
		dbOpts := badger.DefaultOptions("").WithInMemory(true)
		dbOpts.Logger = nil
		dbOpts.MetricsEnabled = false

		var err error
		set.db, err = badger.Open(dbOpts)
		if err != nil {
			panic(err)
		}
	}
}

func (set *lsmSet) tryAdd(key []byte) bool {
	set.autoOpen()

	txn := set.db.NewTransaction(true)
	defer txn.Commit()

	added := false
	_, err := txn.Get(key)
	if err == nil {
		// no-op since the key is already in the db
	} else if err == badger.ErrKeyNotFound {
		err = txn.Set(key, nil)
		added = true
	}

	if err != nil {
		panic(err)
	}

	return added
}

func (set *lsmSet) Close() {
	if set.db != nil {
		set.db.Close()
		set.db = nil
	}
}
