package storage_test

import (
	"context"
	"errors"
	"testing"
	"time"

	"github.com/google/go-cmp/cmp"

	"growbraz/internal/adapters/storage"
	"growbraz/internal/adapters/storage/memory"
	"growbraz/internal/domain/growspaces"
	"growbraz/internal/domain/plants"
	"growbraz/internal/ports/kv"
)

func f(v float64) *float64 { return &v }

func TestCollection_AbsentKeyIsNotFound(t *testing.T) {
	ctx := context.Background()
	c := storage.NewCollection[growspaces.GrowSpace](memory.NewKV(), storage.KeySpaces)

	items, found, err := c.Load(ctx)
	if err != nil || found || items != nil {
		t.Fatalf("expected (nil, false, nil), got (%v, %v, %v)", items, found, err)
	}
}

func TestCollection_EmptyArrayIsFound(t *testing.T) {
	ctx := context.Background()
	store := memory.NewKV()
	if err := store.Put(ctx, storage.KeyPlants, []byte(`[]`)); err != nil {
		t.Fatalf("put: %v", err)
	}
	c := storage.NewCollection[plants.Plant](store, storage.KeyPlants)

	items, found, err := c.Load(ctx)
	if err != nil || !found || len(items) != 0 {
		t.Fatalf("expected empty found collection, got (%v, %v, %v)", items, found, err)
	}
}

func TestCollection_PlantsRoundTrip(t *testing.T) {
	ctx := context.Background()
	c := storage.NewCollection[plants.Plant](memory.NewKV(), storage.KeyPlants)

	start := time.Date(2026, 2, 1, 0, 0, 0, 0, time.UTC).UnixMilli()
	want := []plants.Plant{
		{
			ID:           "p1",
			GrowSpaceID:  "1",
			Name:         "Glookies #1",
			Strain:       "Glookies",
			Genetics:     plants.GeneticsPhoto,
			SeedBank:     "Barney's Farm",
			StartDate:    start,
			CurrentStage: plants.StageFlowering,
			Logs: []plants.MaintenanceLog{
				{
					ID:            "l2",
					Date:          start + 2000,
					Type:          plants.LogTraining,
					TrainingTypes: []plants.TrainingType{plants.TrainingLST, plants.TrainingSuperCropping},
				},
				{
					ID:           "l1",
					Date:         start + 1000,
					Type:         plants.LogWatering,
					PH:           f(6.2),
					ECPPM:        f(1.4),
					VolumeLiters: f(1.5),
					Notes:        "água da chuva",
				},
			},
		},
		{
			ID:           "p2",
			GrowSpaceID:  "deleted-space",
			Name:         "Auto sem espaço",
			Strain:       plants.DefaultStrain,
			Genetics:     plants.GeneticsAuto,
			SeedBank:     plants.DefaultSeedBank,
			StartDate:    start,
			CurrentStage: plants.StageGermination,
			Logs:         []plants.MaintenanceLog{},
		},
	}

	if err := c.Save(ctx, want); err != nil {
		t.Fatalf("save: %v", err)
	}
	got, found, err := c.Load(ctx)
	if err != nil || !found {
		t.Fatalf("load: found=%v err=%v", found, err)
	}
	if diff := cmp.Diff(want, got); diff != "" {
		t.Fatalf("round trip mismatch (-want +got):\n%s", diff)
	}
}

type brokenStore struct{}

func (brokenStore) Get(context.Context, string) ([]byte, error) { return nil, errors.New("io error") }
func (brokenStore) Put(context.Context, string, []byte) error   { return errors.New("io error") }

func TestCollection_PropagatesStoreErrors(t *testing.T) {
	ctx := context.Background()
	var store kv.Store = brokenStore{}
	c := storage.NewCollection[plants.Plant](store, storage.KeyPlants)

	if _, _, err := c.Load(ctx); err == nil {
		t.Fatalf("expected load error")
	}
	if err := c.Save(ctx, nil); err == nil {
		t.Fatalf("expected save error")
	}
}

func TestCollection_CorruptPayload(t *testing.T) {
	ctx := context.Background()
	store := memory.NewKV()
	_ = store.Put(ctx, storage.KeySpaces, []byte(`{not json`))
	c := storage.NewCollection[growspaces.GrowSpace](store, storage.KeySpaces)

	if _, _, err := c.Load(ctx); err == nil {
		t.Fatalf("expected decode error")
	}
}

func TestCollection_MistypedFieldKeepsOtherRecords(t *testing.T) {
	ctx := context.Background()
	store := memory.NewKV()
	_ = store.Put(ctx, storage.KeySpaces, []byte(`[
		{"id":"a","name":"Tenda A","lightPower":300},
		{"id":"b","name":"Tenda B","lightPower":"600"},
		{"id":"c","name":"Tenda C","lightPower":150}
	]`))
	c := storage.NewCollection[growspaces.GrowSpace](store, storage.KeySpaces)

	got, found, err := c.Load(ctx)
	if err != nil || !found {
		t.Fatalf("load: found=%v err=%v", found, err)
	}
	want := []growspaces.GrowSpace{
		{ID: "a", Name: "Tenda A", LightPower: 300},
		{ID: "b", Name: "Tenda B"},
		{ID: "c", Name: "Tenda C", LightPower: 150},
	}
	if diff := cmp.Diff(want, got); diff != "" {
		t.Fatalf("decoded records mismatch (-want +got):\n%s", diff)
	}
}

func TestCollection_NonArrayRootIsAnError(t *testing.T) {
	ctx := context.Background()
	store := memory.NewKV()
	_ = store.Put(ctx, storage.KeyPlants, []byte(`{"id":"p1"}`))
	c := storage.NewCollection[plants.Plant](store, storage.KeyPlants)

	if _, _, err := c.Load(ctx); err == nil {
		t.Fatalf("expected decode error for non-array payload")
	}
}
