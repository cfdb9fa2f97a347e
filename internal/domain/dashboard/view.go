package dashboard

import (
	"context"
	"time"

	"growbraz/internal/domain/growspaces"
	"growbraz/internal/domain/plants"
)

// View es el resumen del inicio: espacios con sus plantas y plantas activas.
type View struct {
	Spaces       []SpaceSummary `json:"spaces"`
	ActivePlants []PlantSummary `json:"active_plants"`
}

type SpaceSummary struct {
	ID         string         `json:"id"`
	Name       string         `json:"name"`
	Dimensions string         `json:"dimensions"`
	LightType  string         `json:"light_type"`
	LightPower int            `json:"light_power"`
	Plants     []PlantSummary `json:"plants"`
}

type PlantSummary struct {
	ID            string       `json:"id"`
	GrowSpaceID   string       `json:"grow_space_id"`
	Name          string       `json:"name"`
	Strain        string       `json:"strain"`
	Stage         plants.Stage `json:"current_stage"`
	StageLabel    string       `json:"stage_label"`
	StageProgress int          `json:"stage_progress"`
	AgeDays       int          `json:"age_days"`
}

// Builder lee de ambos servicios; no guarda estado propio.
type Builder struct {
	spaces *growspaces.Service
	plants *plants.Service
	now    func() time.Time
}

func NewBuilder(spacesSvc *growspaces.Service, plantsSvc *plants.Service) *Builder {
	return &Builder{spaces: spacesSvc, plants: plantsSvc, now: time.Now}
}

// Build agrupa por growSpaceId. Las plantas cuyo espacio ya no existe
// solo aparecen en ActivePlants.
func (b *Builder) Build(ctx context.Context) (View, error) {
	spaces, err := b.spaces.List(ctx)
	if err != nil {
		return View{}, err
	}
	all, err := b.plants.List(ctx)
	if err != nil {
		return View{}, err
	}

	now := b.now()
	bySpace := make(map[string][]PlantSummary, len(spaces))
	active := make([]PlantSummary, 0, len(all))
	for _, p := range all {
		sum := summarize(p, now)
		bySpace[p.GrowSpaceID] = append(bySpace[p.GrowSpaceID], sum)
		if p.CurrentStage != plants.StageHarvested {
			active = append(active, sum)
		}
	}

	out := View{
		Spaces:       make([]SpaceSummary, 0, len(spaces)),
		ActivePlants: active,
	}
	for _, g := range spaces {
		ps := bySpace[g.ID]
		if ps == nil {
			ps = []PlantSummary{}
		}
		out.Spaces = append(out.Spaces, SpaceSummary{
			ID:         g.ID,
			Name:       g.Name,
			Dimensions: g.Dimensions,
			LightType:  g.LightType,
			LightPower: g.LightPower,
			Plants:     ps,
		})
	}
	return out, nil
}

func summarize(p plants.Plant, now time.Time) PlantSummary {
	return PlantSummary{
		ID:            p.ID,
		GrowSpaceID:   p.GrowSpaceID,
		Name:          p.Name,
		Strain:        p.Strain,
		Stage:         p.CurrentStage,
		StageLabel:    plants.StageLabel(p.CurrentStage),
		StageProgress: plants.StageProgress(p.CurrentStage),
		AgeDays:       plants.AgeDays(p, now),
	}
}
