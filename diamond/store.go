package diamond

import (
	"context"
	"sort"
	"sync"

	"github.com/dagbelief/dagbelief/dagbelieterr"
	"github.com/dagbelief/dagbelief/graphidx"
	"github.com/dagbelief/dagbelief/prob"
	"github.com/dagbelief/dagbelief/topo"
	"github.com/sourcegraph/conc/pool"
	"go.uber.org/multierr"
	"golang.org/x/sync/semaphore"
)

// Entry is one unique diamond sub-problem: the Descriptor plus its
// precomputed sub-DAG analysis and any nested diamonds discovered within it.
type Entry struct {
	Descriptor  *Descriptor
	SubIndex    *graphidx.Index
	SubLayers   *topo.Layers
	SubClosures *topo.Closures
	SubForkJoin *topo.ForkJoin

	// Nested holds, for every join strictly inside this diamond (excluding
	// Descriptor.Join itself), the Entry of its own diamond, keyed by join id.
	Nested map[graphidx.NodeID]*Entry
}

// Store is a concurrent, insert-once, content-addressed cache of diamond
// Entries (C5, spec.md §4.4). A Store is keyed by the Key fingerprint alone:
// a cache hit is returned without comparing the stored Descriptor to the
// requested one. The zero value is an empty, ready-to-use Store.
type Store struct {
	entries sync.Map // Key -> *Entry
}

// NewStore constructs an empty Store.
func NewStore() *Store {
	return &Store{}
}

// Resolve returns the Entry for root, building (and recursively exploring)
// it on first encounter and reusing the cached Entry on any later call whose
// Descriptor has the same structural Key — even if root is a distinct
// *Descriptor value reached via a different parent join (spec.md §4.4).
func (s *Store) Resolve(
	ctx context.Context,
	priors map[graphidx.NodeID]prob.Value,
	root *Descriptor,
	parallelism int64,
) (*Entry, error) {
	return s.resolve(ctx, priors, root, newSemaphore(parallelism))
}

func (s *Store) resolve(
	ctx context.Context,
	priors map[graphidx.NodeID]prob.Value,
	root *Descriptor,
	sem *semaphore.Weighted,
) (*Entry, error) {
	key := KeyOf(root)
	if cached, ok := s.entries.Load(key); ok {
		return cached.(*Entry), nil
	}

	subIdx, err := graphidx.Build(root.EdgeList)
	if err != nil {
		return nil, err
	}
	subLayers, subClosures, err := topo.Analyze(subIdx)
	if err != nil {
		return nil, err
	}
	subForkJoin := topo.ForkJoinOf(subIdx)

	nestedDescriptors, err := identifyNested(subIdx, subClosures, subForkJoin, priors, root.Join)
	if err != nil {
		return nil, err
	}

	entry := &Entry{
		Descriptor:  root,
		SubIndex:    subIdx,
		SubLayers:   subLayers,
		SubClosures: subClosures,
		SubForkJoin: subForkJoin,
		Nested:      make(map[graphidx.NodeID]*Entry, len(nestedDescriptors)),
	}

	if len(nestedDescriptors) > 0 {
		nested, err := s.resolveConcurrently(ctx, priors, nestedDescriptors, sem)
		if err != nil {
			return nil, err
		}
		entry.Nested = nested
	}

	actual, _ := s.entries.LoadOrStore(key, entry)
	return actual.(*Entry), nil
}

// resolveConcurrently resolves independent nested diamonds in parallel using
// a work-stealing pool (spec.md §4.4, §5). When sem is non-nil each worker
// holds one unit of it; the diamonds nested inside a worker's descriptor are
// then resolved with a nil sem, so recursion never waits on a unit its own
// call chain is still holding.
func (s *Store) resolveConcurrently(
	ctx context.Context,
	priors map[graphidx.NodeID]prob.Value,
	descriptors []*Descriptor,
	sem *semaphore.Weighted,
) (map[graphidx.NodeID]*Entry, error) {
	results := make(map[graphidx.NodeID]*Entry, len(descriptors))
	var mu sync.Mutex
	var errs error

	p := pool.New().WithMaxGoroutines(len(descriptors))
	for _, d := range descriptors {
		d := d
		p.Go(func() {
			if sem != nil {
				if err := sem.Acquire(ctx, 1); err != nil {
					mu.Lock()
					errs = multierr.Append(errs, dagbelieterr.ErrCancelled)
					mu.Unlock()
					return
				}
				defer sem.Release(1)
			}

			entry, err := s.resolve(ctx, priors, d, nil)
			mu.Lock()
			defer mu.Unlock()
			if err != nil {
				errs = multierr.Append(errs, err)
				return
			}
			results[d.Join] = entry
		})
	}
	p.Wait()

	if errs != nil {
		return nil, errs
	}
	return results, nil
}

func identifyNested(
	subIdx *graphidx.Index,
	subClosures *topo.Closures,
	subForkJoin *topo.ForkJoin,
	priors map[graphidx.NodeID]prob.Value,
	rootJoin graphidx.NodeID,
) ([]*Descriptor, error) {
	joins := make([]graphidx.NodeID, 0, len(subForkJoin.Joins))
	for j := range subForkJoin.Joins {
		if j == rootJoin {
			continue
		}
		joins = append(joins, j)
	}
	sort.Slice(joins, func(i, j int) bool { return joins[i] < joins[j] })

	var out []*Descriptor
	for _, j := range joins {
		d, ok, err := Identify(subIdx, subClosures, subForkJoin, priors, j)
		if err != nil {
			return nil, err
		}
		if ok {
			out = append(out, d)
		}
	}
	return out, nil
}

func newSemaphore(parallelism int64) *semaphore.Weighted {
	if parallelism <= 0 {
		parallelism = 1
	}
	return semaphore.NewWeighted(parallelism)
}

// ResolveAll resolves every root Descriptor concurrently (independent root
// joins may be built concurrently, spec.md §4.4) and returns a map keyed by
// join id.
func ResolveAll(
	ctx context.Context,
	store *Store,
	priors map[graphidx.NodeID]prob.Value,
	roots []*Descriptor,
	parallelism int64,
) (map[graphidx.NodeID]*Entry, error) {
	sem := newSemaphore(parallelism)
	return store.resolveConcurrently(ctx, priors, roots, sem)
}
