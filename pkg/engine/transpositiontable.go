package engine

const (
	boundLower = 1 << iota
	boundUpper
)

const boundExact = boundLower | boundUpper

type transEntry struct {
	score int
	depth int
	bound int
}

// TransTable caches subtree scores by position fingerprint. It lives for one
// move decision, grows without bound and overwrites on every update.
type TransTable struct {
	entries map[uint64]transEntry
}

func NewTransTable() *TransTable {
	return &TransTable{entries: make(map[uint64]transEntry, 1<<14)}
}

func (tt *TransTable) Read(key uint64) (depth, score, bound int, ok bool) {
	var entry, found = tt.entries[key]
	if !found {
		return 0, 0, 0, false
	}
	return entry.depth, entry.score, entry.bound, true
}

func (tt *TransTable) Update(key uint64, depth, score, bound int) {
	tt.entries[key] = transEntry{score: score, depth: depth, bound: bound}
}

func (tt *TransTable) Len() int {
	return len(tt.entries)
}
