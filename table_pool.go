package lz4

import "sync"

// fastTable maps a 4-byte hash to the last input position seen plus one (0 = empty).
type fastTable [1 << fastHashLog]uint32

// hcTable holds the hash heads and chain deltas for the high-ratio parser.
// chain is indexed by position&hcChainMask and stores the distance to the
// previous position with the same hash, capped at maxDistance.
type hcTable struct {
	head  [1 << hcHashLog]uint32
	chain [hcChainSize]uint16
}

// fastTablePool is a pool of greedy parser hash tables.
var fastTablePool = sync.Pool{
	New: func() any {
		return new(fastTable)
	},
}

// hcTablePool is a pool of hash chain tables.
var hcTablePool = sync.Pool{
	New: func() any {
		return new(hcTable)
	},
}

// scratchPool is a pool of bound-sized output buffers for compressors whose
// primitive cannot write into a short destination directly.
var scratchPool = sync.Pool{
	New: func() any {
		return new([]byte)
	},
}

// acquireFastTable acquires a cleared greedy hash table from the pool.
func acquireFastTable() *fastTable {
	t := fastTablePool.Get().(*fastTable)
	clear(t[:])
	return t
}

// releaseFastTable releases a greedy hash table to the pool.
func releaseFastTable(t *fastTable) {
	if t == nil {
		return
	}

	fastTablePool.Put(t)
}

// acquireHCTable acquires a cleared hash chain table from the pool.
func acquireHCTable() *hcTable {
	t := hcTablePool.Get().(*hcTable)
	clear(t.head[:])
	clear(t.chain[:])
	return t
}

// releaseHCTable releases a hash chain table to the pool.
func releaseHCTable(t *hcTable) {
	if t == nil {
		return
	}

	hcTablePool.Put(t)
}

// acquireScratch returns a pooled buffer of exactly n bytes. Its contents are undefined.
func acquireScratch(n int) *[]byte {
	p := scratchPool.Get().(*[]byte)
	if cap(*p) < n {
		*p = make([]byte, n)
	}

	*p = (*p)[:n]
	return p
}

// releaseScratch releases a scratch buffer to the pool.
func releaseScratch(p *[]byte) {
	if p == nil {
		return
	}

	scratchPool.Put(p)
}
