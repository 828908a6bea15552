package inmemory

import "sync"

type Snapshot struct {
	BattleTotal     uint64            `json:"battle_total"`
	BattleResolved  uint64            `json:"battle_resolved"`
	BattleConflict  uint64            `json:"battle_conflict"`
	BattleFailure   uint64            `json:"battle_failure"`
	ByOutcome       map[string]uint64 `json:"by_outcome"`
	PathFound       uint64            `json:"path_found"`
	PathUnreachable uint64            `json:"path_unreachable"`
}

type Recorder struct {
	mu          sync.Mutex
	resolved    uint64
	conflict    uint64
	failure     uint64
	byOutcome   map[string]uint64
	found       uint64
	unreachable uint64
}

func NewRecorder() *Recorder {
	return &Recorder{
		byOutcome: map[string]uint64{},
	}
}

func (r *Recorder) RecordBattle(outcome string) {
	r.mu.Lock()
	defer r.mu.Unlock()
	r.resolved++
	r.byOutcome[outcome]++
}

func (r *Recorder) RecordConflict() {
	r.mu.Lock()
	defer r.mu.Unlock()
	r.conflict++
}

func (r *Recorder) RecordFailure() {
	r.mu.Lock()
	defer r.mu.Unlock()
	r.failure++
}

func (r *Recorder) RecordPath(found bool) {
	r.mu.Lock()
	defer r.mu.Unlock()
	if found {
		r.found++
	} else {
		r.unreachable++
	}
}

func (r *Recorder) Snapshot() Snapshot {
	r.mu.Lock()
	defer r.mu.Unlock()

	out := Snapshot{
		BattleResolved:  r.resolved,
		BattleConflict:  r.conflict,
		BattleFailure:   r.failure,
		BattleTotal:     r.resolved + r.conflict + r.failure,
		ByOutcome:       make(map[string]uint64, len(r.byOutcome)),
		PathFound:       r.found,
		PathUnreachable: r.unreachable,
	}
	for k, v := range r.byOutcome {
		out.ByOutcome[k] = v
	}
	return out
}

func (r *Recorder) SnapshotAny() any {
	return r.Snapshot()
}
