package catalog

import (
	"runtime"
	"sync"

	"github.com/dgraph-io/badger/v3"
	"github.com/emirpasic/gods/trees/redblacktree"
	"github.com/pkg/errors"
	"github.com/plan-systems/klog"

	"github.com/2x3systems/gogroup/gogroup"
	"github.com/2x3systems/gogroup/libgroup"
)

/***

Catalog database format:

	Signature => designation (utf8)

The key is the canonical varint encoding of a group's invariant bundle (see
gogroup.Signature): group order, abelian/dihedral flag byte, then the element
count per divisor of the order.

Known limits:
	- The invariant bundle does not separate every pair of isomorphism
	  classes (the first collisions appear at order 16), so the stock seed
	  list only carries classes the bundle discriminates. Seeding logs and
	  skips any expression whose signature is already bound.
	- Identification answers "which cataloged class has these invariants",
	  not "is this group isomorphic to it"; a proof of isomorphism is out of
	  reach of the bundle by design.

***/

// Opts configures OpenCatalog.
type Opts struct {

	// DBPath is the badger directory; empty means an in-memory catalog.
	DBPath string

	// ReadOnly opens an existing catalog without seeding it.
	ReadOnly bool

	// Seeds are built and stored on open when their signature is unbound.
	// Nil means DefaultSeeds.
	Seeds []Seed
}

// Seed binds a generator expression to the designation of the isomorphism
// class it generates.
type Seed struct {
	Desig string
	Expr  string
}

type catalog struct {
	db       *badger.DB
	readOnly bool

	// cache fronts the db on the Identify path; guarded since badger
	// writers from other handles can miss it.
	cacheMu sync.RWMutex
	cache   *redblacktree.Tree // string(Signature) => desig
}

// OpenCatalog opens a group catalog and, unless it is read-only, seeds it.
// The returned Identifier is safe for concurrent use.
func OpenCatalog(opts Opts) (gogroup.Identifier, error) {
	dbOpts := badger.DefaultOptions(opts.DBPath)
	dbOpts.ReadOnly = opts.ReadOnly
	dbOpts.DetectConflicts = false // not needed so disable for performance
	dbOpts.Logger = nil
	dbOpts.MetricsEnabled = false

	// Badger for windows currently does not support read-only mode
	if runtime.GOOS == "windows" {
		dbOpts.ReadOnly = false
	}

	if len(opts.DBPath) == 0 {
		if opts.ReadOnly {
			return nil, errors.Wrap(gogroup.ErrBadCatalogParam, "DBPath must be specified for a read-only catalog")
		}
		dbOpts.InMemory = true
	}

	db, err := badger.Open(dbOpts)
	if err != nil {
		return nil, err
	}

	cat := &catalog{
		db:       db,
		readOnly: opts.ReadOnly,
		cache:    redblacktree.NewWithStringComparator(),
	}

	if err := cat.loadCache(); err != nil {
		cat.Close()
		return nil, err
	}

	if !opts.ReadOnly {
		seeds := opts.Seeds
		if seeds == nil {
			seeds = DefaultSeeds
		}
		if err := cat.seed(seeds); err != nil {
			cat.Close()
			return nil, err
		}
	}

	return cat, nil
}

// loadCache pulls every stored entry into the read cache.
func (cat *catalog) loadCache() error {
	return cat.db.View(func(txn *badger.Txn) error {
		itr := txn.NewIterator(badger.DefaultIteratorOptions)
		defer itr.Close()

		for itr.Rewind(); itr.Valid(); itr.Next() {
			item := itr.Item()
			sig := string(item.Key())
			err := item.Value(func(val []byte) error {
				cat.cache.Put(sig, string(val))
				return nil
			})
			if err != nil {
				return err
			}
		}
		return nil
	})
}

// seed builds each seed expression into a full Group and stores its
// signature. A SignatureSet dedupes within the run; a signature already
// bound by an earlier open wins over a reseed.
func (cat *catalog) seed(seeds []Seed) error {
	sigSet := NewSignatureSet()
	defer sigSet.Close()

	return cat.db.Update(func(txn *badger.Txn) error {
		for _, seed := range seeds {
			G, err := libgroup.NewGroupFromExpr(seed.Expr)
			if err != nil {
				return errors.Wrapf(err, "building catalog seed %q", seed.Desig)
			}
			info := G.Info()
			sig := info.AppendSignatureTo(nil)

			if !sigSet.TryAdd(sig) {
				klog.Warningf("catalog seed %q shares a signature with an earlier seed; skipping", seed.Desig)
				continue
			}
			cat.cacheMu.RLock()
			bound, found := cat.cache.Get(string(sig))
			cat.cacheMu.RUnlock()
			if found {
				if bound.(string) != seed.Desig {
					klog.Warningf("catalog seed %q: signature already bound to %q; keeping the stored entry", seed.Desig, bound)
				}
				continue
			}

			if err := txn.Set([]byte(sig), []byte(seed.Desig)); err != nil {
				return err
			}
			cat.cacheMu.Lock()
			cat.cache.Put(string(sig), seed.Desig)
			cat.cacheMu.Unlock()
		}
		return nil
	})
}

// Identify resolves info to the designation of a cataloged isomorphism
// class. A miss returns found == false, not an error.
func (cat *catalog) Identify(info *gogroup.GroupInfo) (string, bool, error) {
	var buf gogroup.SignatureBuf
	sig := info.AppendSignatureTo(buf[:0])

	cat.cacheMu.RLock()
	desig, found := cat.cache.Get(string(sig))
	cat.cacheMu.RUnlock()
	if found {
		return desig.(string), true, nil
	}

	// Entries written through another handle bypass the cache, so fall
	// through to the store before reporting a miss.
	var stored string
	hit := false
	err := cat.db.View(func(txn *badger.Txn) error {
		item, err := txn.Get([]byte(sig))
		if err == badger.ErrKeyNotFound {
			return nil
		} else if err != nil {
			return err
		}
		return item.Value(func(val []byte) error {
			stored = string(val)
			hit = true
			return nil
		})
	})
	if err != nil || !hit {
		return "", false, err
	}

	cat.cacheMu.Lock()
	cat.cache.Put(string(sig), stored)
	cat.cacheMu.Unlock()
	return stored, true, nil
}

func (cat *catalog) Close() error {
	if cat.db == nil {
		return nil
	}
	err := cat.db.Close()
	cat.db = nil
	return err
}
