package plants

import (
	"context"
	"encoding/json"
	"errors"
	"strconv"
	"testing"
	"time"
)

// -------------------------
// Test repo (in-memory)
// -------------------------

type testRepo struct {
	stored  []byte
	saves   int
	saveErr error
}

func (r *testRepo) Load(ctx context.Context) ([]Plant, bool, error) {
	if r.stored == nil {
		return nil, false, nil
	}
	var out []Plant
	if err := json.Unmarshal(r.stored, &out); err != nil {
		return nil, false, err
	}
	return out, true, nil
}

func (r *testRepo) Save(ctx context.Context, items []Plant) error {
	r.saves++
	if r.saveErr != nil {
		return r.saveErr
	}
	b, err := json.Marshal(items)
	if err != nil {
		return err
	}
	r.stored = b
	return nil
}

func counterIDs() func() string {
	n := 0
	return func() string {
		n++
		return "id-" + strconv.Itoa(n)
	}
}

// clock avanza un paso fijo por llamada.
type clock struct {
	t    time.Time
	step time.Duration
}

func (c *clock) now() time.Time {
	cur := c.t
	c.t = c.t.Add(c.step)
	return cur
}

func newTestService(t *testing.T, repo *testRepo) (*Service, *clock) {
	t.Helper()
	c := &clock{t: time.Date(2026, 3, 1, 12, 0, 0, 0, time.UTC), step: time.Minute}
	svc := NewService(context.Background(), repo, Options{})
	svc.now = c.now
	svc.newID = counterIDs()
	return svc, c
}

func ptr[T any](v T) *T { return &v }

// -------------------------
// Tests
// -------------------------

func TestCreate_AppliesDefaults(t *testing.T) {
	ctx := context.Background()
	repo := &testRepo{stored: []byte(`[]`)}
	svc, _ := newTestService(t, repo)

	p, err := svc.Create(ctx, CreateInput{GrowSpaceID: "1", Name: "Glookies #2"})
	if err != nil {
		t.Fatalf("create: %v", err)
	}
	if p.Strain != DefaultStrain || p.SeedBank != DefaultSeedBank {
		t.Fatalf("defaults not applied: %#v", p)
	}
	if p.Genetics != GeneticsPhoto {
		t.Fatalf("expected Photoperiod default, got %q", p.Genetics)
	}
	if p.CurrentStage != StageGermination {
		t.Fatalf("expected Germination, got %q", p.CurrentStage)
	}
	if p.Logs == nil || len(p.Logs) != 0 {
		t.Fatalf("expected empty logs, got %#v", p.Logs)
	}
	if repo.saves != 1 {
		t.Fatalf("expected 1 save, got %d", repo.saves)
	}

	var persisted []map[string]any
	if err := json.Unmarshal(repo.stored, &persisted); err != nil {
		t.Fatalf("stored json: %v", err)
	}
	if len(persisted) != 1 || persisted[0]["growSpaceId"] != "1" || persisted[0]["currentStage"] != "Germination" {
		t.Fatalf("unexpected persisted shape: %s", repo.stored)
	}
}

func TestCreate_RequiresNameAndSpace(t *testing.T) {
	ctx := context.Background()
	repo := &testRepo{stored: []byte(`[]`)}
	svc, _ := newTestService(t, repo)

	for _, in := range []CreateInput{
		{GrowSpaceID: "1", Name: "  "},
		{GrowSpaceID: "", Name: "Sem espaço"},
	} {
		if _, err := svc.Create(ctx, in); !errors.Is(err, ErrInvalidInput) {
			t.Fatalf("expected ErrInvalidInput for %#v, got %v", in, err)
		}
	}
	if repo.saves != 0 {
		t.Fatalf("invalid creates must not persist, saves=%d", repo.saves)
	}
}

func TestCreate_ExplicitStartDate(t *testing.T) {
	ctx := context.Background()
	svc, _ := newTestService(t, &testRepo{stored: []byte(`[]`)})

	start := time.Date(2026, 1, 1, 0, 0, 0, 0, time.UTC)
	p, err := svc.Create(ctx, CreateInput{
		GrowSpaceID: "1",
		Name:        "Auto #1",
		Genetics:    GeneticsAuto,
		StartDate:   &start,
	})
	if err != nil {
		t.Fatalf("create: %v", err)
	}
	if !p.StartTime().Equal(start) {
		t.Fatalf("start date: got %v want %v", p.StartTime(), start)
	}
	if p.Genetics != GeneticsAuto {
		t.Fatalf("genetics: got %q", p.Genetics)
	}
}

func TestAppendLog_NewestFirst(t *testing.T) {
	ctx := context.Background()
	svc, _ := newTestService(t, &testRepo{stored: []byte(`[]`)})

	p, _ := svc.Create(ctx, CreateInput{GrowSpaceID: "1", Name: "Planta"})

	for _, typ := range []LogType{LogWatering, LogFeeding, LogTraining, LogPhoto} {
		if _, err := svc.AppendLog(ctx, p.ID, LogInput{Type: typ}); err != nil {
			t.Fatalf("append %s: %v", typ, err)
		}
	}

	logs, err := svc.ListLogs(ctx, p.ID)
	if err != nil {
		t.Fatalf("list logs: %v", err)
	}
	if len(logs) != 4 {
		t.Fatalf("expected 4 logs, got %d", len(logs))
	}
	if logs[0].Type != LogPhoto || logs[3].Type != LogWatering {
		t.Fatalf("expected newest first, got %s..%s", logs[0].Type, logs[3].Type)
	}
	for i := 1; i < len(logs); i++ {
		if logs[i-1].Date < logs[i].Date {
			t.Fatalf("dates not descending at %d: %d < %d", i, logs[i-1].Date, logs[i].Date)
		}
	}

	seen := map[string]bool{}
	for _, l := range logs {
		if seen[l.ID] {
			t.Fatalf("duplicate log id %q", l.ID)
		}
		seen[l.ID] = true
	}

	filtered, _ := svc.ListLogs(ctx, p.ID, LogWatering, LogTraining)
	if len(filtered) != 2 || filtered[0].Type != LogTraining || filtered[1].Type != LogWatering {
		t.Fatalf("unexpected filtered logs: %#v", filtered)
	}
}

func TestAppendLog_WateringOnPlantWithHistory(t *testing.T) {
	ctx := context.Background()
	repo := &testRepo{stored: []byte(`[]`)}
	svc, _ := newTestService(t, repo)

	p, _ := svc.Create(ctx, CreateInput{GrowSpaceID: "1", Name: "Glookies #1"})
	if _, err := svc.AppendLog(ctx, p.ID, LogInput{Type: LogPhoto, Notes: "primeira foto"}); err != nil {
		t.Fatalf("first log: %v", err)
	}

	l, err := svc.AppendLog(ctx, p.ID, LogInput{
		Type:         LogWatering,
		PH:           ptr(6.2),
		ECPPM:        ptr(1.4),
		VolumeLiters: ptr(1.5),
	})
	if err != nil {
		t.Fatalf("watering: %v", err)
	}

	got, _ := svc.GetByID(ctx, p.ID)
	if len(got.Logs) != 2 || got.Logs[0].ID != l.ID {
		t.Fatalf("watering should be first of 2 logs, got %#v", got.Logs)
	}
	w := got.Logs[0]
	if *w.PH != 6.2 || *w.ECPPM != 1.4 || *w.VolumeLiters != 1.5 {
		t.Fatalf("measurements lost: %#v", w)
	}

	var persisted []Plant
	if err := json.Unmarshal(repo.stored, &persisted); err != nil {
		t.Fatalf("stored json: %v", err)
	}
	if len(persisted[0].Logs) != 2 || persisted[0].Logs[0].Type != LogWatering {
		t.Fatalf("persisted logs out of date: %s", repo.stored)
	}
}

func TestAppendLog_ClockWentBackwards(t *testing.T) {
	ctx := context.Background()
	svc, c := newTestService(t, &testRepo{stored: []byte(`[]`)})

	p, _ := svc.Create(ctx, CreateInput{GrowSpaceID: "1", Name: "Planta"})
	first, _ := svc.AppendLog(ctx, p.ID, LogInput{Type: LogWatering})

	c.t = c.t.Add(-48 * time.Hour)
	second, _ := svc.AppendLog(ctx, p.ID, LogInput{Type: LogFeeding})

	if second.Date != first.Date {
		t.Fatalf("expected clamped date %d, got %d", first.Date, second.Date)
	}
	logs, _ := svc.ListLogs(ctx, p.ID)
	if logs[0].ID != second.ID {
		t.Fatalf("newest entry must stay first")
	}
}

func TestAppendLog_Errors(t *testing.T) {
	ctx := context.Background()
	repo := &testRepo{stored: []byte(`[]`)}
	svc, _ := newTestService(t, repo)

	if _, err := svc.AppendLog(ctx, "nope", LogInput{Type: LogWatering}); !errors.Is(err, ErrNotFound) {
		t.Fatalf("expected ErrNotFound, got %v", err)
	}

	p, _ := svc.Create(ctx, CreateInput{GrowSpaceID: "1", Name: "Planta"})
	if _, err := svc.AppendLog(ctx, p.ID, LogInput{}); !errors.Is(err, ErrInvalidInput) {
		t.Fatalf("expected ErrInvalidInput, got %v", err)
	}
	if repo.saves != 1 {
		t.Fatalf("failed appends must not persist, saves=%d", repo.saves)
	}
}

func TestAppendLog_TrainingTypesAreASet(t *testing.T) {
	ctx := context.Background()
	svc, _ := newTestService(t, &testRepo{stored: []byte(`[]`)})

	p, _ := svc.Create(ctx, CreateInput{GrowSpaceID: "1", Name: "Planta"})
	l, err := svc.AppendLog(ctx, p.ID, LogInput{
		Type:          LogTraining,
		TrainingTypes: []TrainingType{TrainingLST, TrainingTopping, TrainingLST},
	})
	if err != nil {
		t.Fatalf("append: %v", err)
	}
	if len(l.TrainingTypes) != 2 || l.TrainingTypes[0] != TrainingLST || l.TrainingTypes[1] != TrainingTopping {
		t.Fatalf("unexpected training types: %#v", l.TrainingTypes)
	}
}

func TestUpdate_MergesAndUnknownIsNoop(t *testing.T) {
	ctx := context.Background()
	repo := &testRepo{stored: []byte(`[]`)}
	svc, _ := newTestService(t, repo)

	p, _ := svc.Create(ctx, CreateInput{GrowSpaceID: "1", Name: "Planta", Strain: "Gelato"})

	// cualquier transición de etapa es válida, incluso hacia atrás
	updated, err := svc.Update(ctx, p.ID, UpdateInput{CurrentStage: ptr(StageFlowering)})
	if err != nil {
		t.Fatalf("update: %v", err)
	}
	if updated.CurrentStage != StageFlowering || updated.Strain != "Gelato" || updated.Name != "Planta" {
		t.Fatalf("unexpected merge: %#v", updated)
	}
	updated, _ = svc.Update(ctx, p.ID, UpdateInput{CurrentStage: ptr(StageSeedling)})
	if updated.CurrentStage != StageSeedling {
		t.Fatalf("backwards transition rejected: %#v", updated)
	}

	before := append([]byte(nil), repo.stored...)
	saves := repo.saves
	if _, err := svc.Update(ctx, "missing", UpdateInput{Name: ptr("x")}); !errors.Is(err, ErrNotFound) {
		t.Fatalf("expected ErrNotFound, got %v", err)
	}
	if repo.saves != saves || string(repo.stored) != string(before) {
		t.Fatalf("unknown id must leave collection unchanged")
	}
}

func TestDelete_RemovesPlantAndLogs(t *testing.T) {
	ctx := context.Background()
	repo := &testRepo{stored: []byte(`[]`)}
	svc, _ := newTestService(t, repo)

	a, _ := svc.Create(ctx, CreateInput{GrowSpaceID: "1", Name: "A"})
	b, _ := svc.Create(ctx, CreateInput{GrowSpaceID: "2", Name: "B"})
	_, _ = svc.AppendLog(ctx, a.ID, LogInput{Type: LogWatering})

	if err := svc.Delete(ctx, a.ID); err != nil {
		t.Fatalf("delete: %v", err)
	}
	if _, err := svc.GetByID(ctx, a.ID); !errors.Is(err, ErrNotFound) {
		t.Fatalf("deleted plant still visible")
	}
	if _, err := svc.ListLogs(ctx, a.ID); !errors.Is(err, ErrNotFound) {
		t.Fatalf("logs of deleted plant still visible")
	}
	if err := svc.Delete(ctx, a.ID); !errors.Is(err, ErrNotFound) {
		t.Fatalf("second delete: expected ErrNotFound, got %v", err)
	}

	items, _ := svc.List(ctx)
	if len(items) != 1 || items[0].ID != b.ID {
		t.Fatalf("unexpected remaining plants: %#v", items)
	}
	bySpace, _ := svc.ListBySpace(ctx, "2")
	if len(bySpace) != 1 {
		t.Fatalf("expected 1 plant in space 2, got %d", len(bySpace))
	}
}

func TestPersistFailure_KeepsMemoryState(t *testing.T) {
	ctx := context.Background()
	repo := &testRepo{stored: []byte(`[]`), saveErr: errors.New("disk full")}
	svc, _ := newTestService(t, repo)

	p, err := svc.Create(ctx, CreateInput{GrowSpaceID: "1", Name: "Planta"})
	if err != nil {
		t.Fatalf("persist failure must not surface: %v", err)
	}
	if _, err := svc.GetByID(ctx, p.ID); err != nil {
		t.Fatalf("memory state lost: %v", err)
	}

	// la próxima escritura exitosa reconcilia el almacenamiento
	repo.saveErr = nil
	_, _ = svc.AppendLog(ctx, p.ID, LogInput{Type: LogWatering})
	var persisted []Plant
	_ = json.Unmarshal(repo.stored, &persisted)
	if len(persisted) != 1 || len(persisted[0].Logs) != 1 {
		t.Fatalf("expected reconciled store, got %s", repo.stored)
	}
}

func TestSeed_GlookiesIsThirtyDaysOldVegetative(t *testing.T) {
	ctx := context.Background()
	now := time.Date(2026, 3, 1, 12, 0, 0, 0, time.UTC)

	svc := NewService(ctx, &testRepo{}, Options{Seed: DefaultSeed(now)})
	p, ok := svc.First(ctx)
	if !ok || p.ID != "p1" || p.Name != "Glookies #1" {
		t.Fatalf("expected seed plant, got %#v", p)
	}
	if got := AgeDays(p, now); got != 30 {
		t.Fatalf("age days: got %d want 30", got)
	}
	if got := StageProgress(p.CurrentStage); got != 50 {
		t.Fatalf("stage progress: got %d want 50", got)
	}
}

func TestReturnedValuesAreCopies(t *testing.T) {
	ctx := context.Background()
	svc, _ := newTestService(t, &testRepo{stored: []byte(`[]`)})

	p, _ := svc.Create(ctx, CreateInput{GrowSpaceID: "1", Name: "Planta"})
	_, _ = svc.AppendLog(ctx, p.ID, LogInput{Type: LogWatering, PH: ptr(6.0)})

	got, _ := svc.GetByID(ctx, p.ID)
	*got.Logs[0].PH = 9.9
	got.Logs[0].Notes = "mutated"

	again, _ := svc.GetByID(ctx, p.ID)
	if *again.Logs[0].PH != 6.0 || again.Logs[0].Notes != "" {
		t.Fatalf("caller mutation leaked into service state: %#v", again.Logs[0])
	}
}
