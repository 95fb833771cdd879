package deltastep

import "sync"

// buckets is the growable sequence B[0], B[1], ... of vertex sets, indexed
// by ⌊dist[v]/Δ⌋. A single mutex guards the whole structure: a drain round
// touches one bucket's full membership at a time, so finer-grained locking
// would not buy any real parallelism here (the actual contention this
// module is built for lives in the per-vertex dist/pred state, not bucket
// bookkeeping).
type buckets struct {
	mu   sync.Mutex
	bkts []map[int32]struct{}
}

func newBuckets() *buckets { return &buckets{} }

func (b *buckets) ensure(i int64) {
	for int64(len(b.bkts)) <= i {
		b.bkts = append(b.bkts, make(map[int32]struct{}))
	}
}

// add puts v in bucket i. Callers hold v's per-vertex lock across the
// remove/add pair that moves v, so membership always matches the stored
// bucket; the lock order is per-vertex lock first, bucket lock second, and
// no buckets method ever takes a per-vertex lock.
func (b *buckets) add(i int64, v int32) {
	b.mu.Lock()
	defer b.mu.Unlock()
	b.ensure(i)
	b.bkts[i][v] = struct{}{}
}

func (b *buckets) remove(i int64, v int32) {
	b.mu.Lock()
	defer b.mu.Unlock()
	if i < 0 || int64(len(b.bkts)) <= i {
		return
	}
	delete(b.bkts[i], v)
}

// drainSnapshot returns i's current members and empties it, so a caller can
// relax them and let any re-insertions (vertices moved back into i)
// accumulate for the next drainSnapshot call.
func (b *buckets) drainSnapshot(i int64) []int32 {
	b.mu.Lock()
	defer b.mu.Unlock()
	if i < 0 || int64(len(b.bkts)) <= i || len(b.bkts[i]) == 0 {
		return nil
	}
	members := make([]int32, 0, len(b.bkts[i]))
	for v := range b.bkts[i] {
		members = append(members, v)
	}
	b.bkts[i] = make(map[int32]struct{})

	return members
}

// firstNonEmptyFrom scans forward from i for the lowest non-empty bucket,
// returning -1 once none remain (including buckets not yet allocated).
func (b *buckets) firstNonEmptyFrom(i int64) int64 {
	b.mu.Lock()
	defer b.mu.Unlock()
	for ; i < int64(len(b.bkts)); i++ {
		if len(b.bkts[i]) > 0 {
			return i
		}
	}

	return -1
}
