package inmemory

import (
	"testing"

	"newworld/internal/domain/combat"
)

func TestRecorderSnapshot(t *testing.T) {
	r := NewRecorder()
	r.RecordBattle(string(combat.Win))
	r.RecordBattle(string(combat.NoResult))
	r.RecordConflict()
	r.RecordFailure()
	r.RecordPath(true)
	r.RecordPath(false)
	r.RecordPath(false)

	s := r.Snapshot()
	if s.BattleTotal != 4 {
		t.Fatalf("expected total 4, got %d", s.BattleTotal)
	}
	if s.BattleResolved != 2 {
		t.Fatalf("expected resolved 2, got %d", s.BattleResolved)
	}
	if s.BattleConflict != 1 || s.BattleFailure != 1 {
		t.Fatalf("expected one conflict and one failure, got %+v", s)
	}
	if s.ByOutcome[string(combat.Win)] != 1 || s.ByOutcome[string(combat.NoResult)] != 1 {
		t.Fatalf("unexpected outcome counts %+v", s.ByOutcome)
	}
	if s.PathFound != 1 || s.PathUnreachable != 2 {
		t.Fatalf("unexpected path counts found=%d unreachable=%d", s.PathFound, s.PathUnreachable)
	}
}

func TestRecorderSnapshotIsCopy(t *testing.T) {
	r := NewRecorder()
	r.RecordBattle("WIN")
	s := r.Snapshot()
	s.ByOutcome["WIN"] = 99
	if r.Snapshot().ByOutcome["WIN"] != 1 {
		t.Fatalf("snapshot must not alias recorder state")
	}
}
