package advisory

import (
	"context"
	"errors"
	"testing"
	"time"

	"growbraz/internal/adapters/storage"
	"growbraz/internal/adapters/storage/memory"
	"growbraz/internal/domain/plants"
	"growbraz/internal/ports/advisor"
)

type fakeAdvisor struct {
	text  string
	err   error
	calls int
	last  advisor.Snapshot
	q     string
}

func (f *fakeAdvisor) Advise(ctx context.Context, p advisor.Snapshot, question string) (string, error) {
	f.calls++
	f.last = p
	f.q = question
	return f.text, f.err
}

var fixedNow = time.Date(2026, 3, 1, 12, 0, 0, 0, time.UTC)

func newPlants(t *testing.T, seed []plants.Plant) *plants.Service {
	t.Helper()
	repo := storage.NewCollection[plants.Plant](memory.NewKV(), storage.KeyPlants)
	return plants.NewService(context.Background(), repo, plants.Options{Seed: seed})
}

func newAdvisory(adv advisor.Advisor, ps *plants.Service) *Service {
	s := NewService(adv, ps, Options{})
	s.now = func() time.Time { return fixedNow }
	return s
}

func TestGetAdvice_PassesSnapshot(t *testing.T) {
	ctx := context.Background()
	fake := &fakeAdvisor{text: "Mantenha o pH entre 6.0 e 6.5."}
	svc := newAdvisory(fake, newPlants(t, nil))

	p := plants.DefaultSeed(fixedNow)[0]
	got := svc.GetAdvice(ctx, &p, "Quando trocar o fotoperíodo?")
	if got != fake.text {
		t.Fatalf("got %q want %q", got, fake.text)
	}

	want := advisor.Snapshot{
		Name:     "Glookies #1",
		Strain:   "Glookies",
		Genetics: "Photoperiod",
		Stage:    "Vegetative",
		AgeDays:  30,
	}
	if fake.last != want {
		t.Fatalf("snapshot: got %#v want %#v", fake.last, want)
	}
	if fake.q != "Quando trocar o fotoperíodo?" {
		t.Fatalf("question not forwarded: %q", fake.q)
	}
}

func TestGetAdvice_Fallbacks(t *testing.T) {
	ctx := context.Background()
	p := plants.DefaultSeed(fixedNow)[0]

	failing := newAdvisory(&fakeAdvisor{err: errors.New("network down")}, newPlants(t, nil))
	if got := failing.GetAdvice(ctx, &p, "oi"); got != OfflineText {
		t.Fatalf("advisor error: got %q", got)
	}

	blank := newAdvisory(&fakeAdvisor{text: "   "}, newPlants(t, nil))
	if got := blank.GetAdvice(ctx, &p, "oi"); got != EmptyText {
		t.Fatalf("blank text: got %q", got)
	}

	noAdvisor := newAdvisory(nil, newPlants(t, nil))
	if got := noAdvisor.GetAdvice(ctx, &p, "oi"); got != OfflineText {
		t.Fatalf("nil advisor: got %q", got)
	}

	fake := &fakeAdvisor{text: "ok"}
	noPlant := newAdvisory(fake, newPlants(t, nil))
	if got := noPlant.GetAdvice(ctx, nil, "oi"); got != OfflineText {
		t.Fatalf("nil plant: got %q", got)
	}
	if fake.calls != 0 {
		t.Fatalf("advisor must not be called without a plant")
	}
}

func TestAsk_DefaultsToFirstPlant(t *testing.T) {
	ctx := context.Background()
	fake := &fakeAdvisor{text: "Regue menos."}
	svc := newAdvisory(fake, newPlants(t, plants.DefaultSeed(fixedNow)))

	a, err := svc.Ask(ctx, "", "  Está amarelando?  ")
	if err != nil {
		t.Fatalf("ask: %v", err)
	}
	if a.PlantID != "p1" || a.Answer != "Regue menos." || a.Question != "Está amarelando?" {
		t.Fatalf("unexpected advice: %#v", a)
	}
	if fake.last.Name != "Glookies #1" {
		t.Fatalf("expected first plant as context, got %#v", fake.last)
	}
}

func TestAsk_Errors(t *testing.T) {
	ctx := context.Background()
	fake := &fakeAdvisor{text: "x"}
	svc := newAdvisory(fake, newPlants(t, plants.DefaultSeed(fixedNow)))

	if _, err := svc.Ask(ctx, "p1", "   "); !errors.Is(err, ErrInvalidInput) {
		t.Fatalf("blank question: expected ErrInvalidInput, got %v", err)
	}
	if _, err := svc.Ask(ctx, "nope", "oi"); !errors.Is(err, ErrNotFound) {
		t.Fatalf("unknown plant: expected ErrNotFound, got %v", err)
	}
	if fake.calls != 0 {
		t.Fatalf("advisor called on invalid requests: %d", fake.calls)
	}
}

func TestAsk_EmptyCollectionFallsBackOffline(t *testing.T) {
	ctx := context.Background()
	fake := &fakeAdvisor{text: "x"}
	svc := newAdvisory(fake, newPlants(t, nil))

	a, err := svc.Ask(ctx, "", "oi")
	if err != nil {
		t.Fatalf("ask: %v", err)
	}
	if a.PlantID != "" || a.Answer != OfflineText {
		t.Fatalf("unexpected advice: %#v", a)
	}
}
