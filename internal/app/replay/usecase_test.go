package replay

import (
	"context"
	"errors"
	"testing"
	"time"

	"github.com/google/go-cmp/cmp"

	"newworld/internal/app/ports"
	"newworld/internal/platform/rng"
)

func TestUseCase_ListsAndCountsOutcomes(t *testing.T) {
	repo := &fakeRepo{battles: []ports.BattleReport{
		{ID: "b-1", GameID: "g-1", Results: []string{"WIN", "SLAUGHTER_UNIT"}, OccurredAt: time.Unix(10, 0)},
		{ID: "b-2", GameID: "g-1", Results: []string{"LOSE", "LOSE_EQUIP"}, OccurredAt: time.Unix(20, 0)},
		{ID: "b-3", GameID: "g-1", Results: []string{"WIN", "CAPTURE_UNIT"}, OccurredAt: time.Unix(30, 0)},
	}}

	out, err := UseCase{Battles: repo}.Execute(context.Background(), Request{GameID: "g-1"})
	if err != nil {
		t.Fatalf("Execute error: %v", err)
	}
	if len(out.Battles) != 3 {
		t.Fatalf("expected 3 battles, got %d", len(out.Battles))
	}
	if diff := cmp.Diff(map[string]int{"WIN": 2, "LOSE": 1}, out.Outcomes); diff != "" {
		t.Fatalf("outcomes mismatch (-want +got):\n%s", diff)
	}
	if repo.limit != DefaultLimit {
		t.Fatalf("expected default limit %d, got %d", DefaultLimit, repo.limit)
	}
}

func TestUseCase_TimeWindow(t *testing.T) {
	repo := &fakeRepo{battles: []ports.BattleReport{
		{ID: "b-1", Results: []string{"WIN"}, OccurredAt: time.Unix(10, 0)},
		{ID: "b-2", Results: []string{"LOSE"}, OccurredAt: time.Unix(20, 0)},
		{ID: "b-3", Results: []string{"WIN"}, OccurredAt: time.Unix(30, 0)},
	}}

	out, err := UseCase{Battles: repo}.Execute(context.Background(), Request{GameID: "g-1", Limit: 5, OccurredFrom: 15, OccurredTo: 25})
	if err != nil {
		t.Fatalf("Execute error: %v", err)
	}
	if len(out.Battles) != 1 || out.Battles[0].ID != "b-2" {
		t.Fatalf("expected only b-2, got %+v", out.Battles)
	}
	if repo.limit != 5 {
		t.Fatalf("expected limit passed through")
	}
}

func TestUseCase_InvalidRequest(t *testing.T) {
	uc := UseCase{Battles: &fakeRepo{}}
	if _, err := uc.Execute(context.Background(), Request{GameID: " "}); !errors.Is(err, ErrInvalidRequest) {
		t.Fatalf("expected invalid request, got %v", err)
	}
	if _, err := uc.Execute(context.Background(), Request{GameID: "g-1", OccurredFrom: 30, OccurredTo: 10}); !errors.Is(err, ErrInvalidRequest) {
		t.Fatalf("expected invalid window, got %v", err)
	}
}

func TestVerify(t *testing.T) {
	r := ports.BattleReport{Seed: 99, Draw: rng.Draw(99)}
	if !Verify(r) {
		t.Fatalf("expected stored draw to verify")
	}
	r.Draw += 0.01
	if Verify(r) {
		t.Fatalf("expected tampered draw to fail")
	}
}

type fakeRepo struct {
	battles []ports.BattleReport
	limit   int
}

func (r *fakeRepo) GetByIdempotencyKey(_ context.Context, _, _ string) (*ports.BattleReport, error) {
	return nil, ports.ErrNotFound
}

func (r *fakeRepo) Save(_ context.Context, b ports.BattleReport) error {
	r.battles = append(r.battles, b)
	return nil
}

func (r *fakeRepo) ListByGameID(_ context.Context, _ string, limit int) ([]ports.BattleReport, error) {
	r.limit = limit
	return r.battles, nil
}
