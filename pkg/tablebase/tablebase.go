package tablebase

// Tablebase bundles the Zobrist key table and the per-configuration tables
// into a single context object owned by the caller, with Init (NewTablebase)
// and Cleanup forming a scoped lifecycle (spec.md §9). It is process-wide
// state in the simplest deployment, but nothing here prevents a caller from
// holding several independent instances.
type Tablebase struct {
	keys      *keys
	tables    [NumConfigs]*table
	generated [NumConfigs]bool

	Capacity int
	SweepCap int
}

// NewTablebase returns an empty Tablebase. No table is generated until
// GenerateIfNeeded or Probe asks for one (lazy, per-configuration
// generation). seed fixes the Zobrist key PRNG so repeated runs hash
// identically.
func NewTablebase(seed uint64) *Tablebase {
	return &Tablebase{
		keys:     newKeys(seed),
		Capacity: DefaultCapacity,
		SweepCap: 200,
	}
}

// Cleanup releases all generated tables. Generation is idempotent and
// lazy, so a later probe simply regenerates whatever configuration it
// needs next.
func (tb *Tablebase) Cleanup() {
	for i := range tb.tables {
		tb.tables[i] = nil
		tb.generated[i] = false
	}
}

// Stats summarizes one GenerateIfNeeded call.
type Stats struct {
	Sweeps int
	Win    int
	Draw   int
	Loss   int
}
