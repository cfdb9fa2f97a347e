package plants

import (
	"context"
	"errors"
	"strings"
	"sync"
	"time"

	"github.com/google/uuid"

	"growbraz/internal/platform/logger"
	"growbraz/internal/ports/telemetry"
)

const collection = "growbraz_plants"

var (
	ErrInvalidInput = errors.New("invalid input")
	ErrNotFound     = errors.New("not found")
	// ErrUnavailable: el store no pudo leerse todavía; no se escribe nada
	// para no pisar lo guardado.
	ErrUnavailable = errors.New("store unavailable")
)

// DefaultSeed es la planta de ejemplo del primer arranque, ligada al espacio "1".
func DefaultSeed(now time.Time) []Plant {
	return []Plant{
		{
			ID:           "p1",
			GrowSpaceID:  "1",
			Name:         "Glookies #1",
			Strain:       "Glookies",
			Genetics:     GeneticsPhoto,
			SeedBank:     "Barney's Farm",
			StartDate:    now.Add(-30 * 24 * time.Hour).UnixMilli(),
			CurrentStage: StageVegetative,
			Logs:         []MaintenanceLog{},
		},
	}
}

// Service mantiene las plantas en memoria y reescribe la colección completa
// en el repositorio tras cada mutación exitosa.
type Service struct {
	mu    sync.RWMutex
	items []Plant

	repo  Repository
	log   logger.Logger
	rec   telemetry.Recorder
	now   func() time.Time
	newID func() string

	seed   []Plant
	loaded bool
}

type Options struct {
	Logger   logger.Logger
	Recorder telemetry.Recorder

	// Seed se usa solo si el repositorio no tiene datos guardados.
	Seed []Plant
}

func NewService(ctx context.Context, repo Repository, opts Options) *Service {
	s := &Service{
		repo:  repo,
		log:   opts.Logger,
		rec:   opts.Recorder,
		now:   time.Now,
		newID: uuid.NewString,
	}
	if s.log == nil {
		s.log = logger.NewNop()
	}
	if s.rec == nil {
		s.rec = telemetry.Nop{}
	}

	for _, p := range opts.Seed {
		s.seed = append(s.seed, p.clone())
	}
	s.items = []Plant{}

	if err := s.loadLocked(ctx); err != nil {
		s.log.Error("load plants failed, writes disabled until the store answers", map[string]any{"err": err})
	}
	return s
}

// loadLocked adopta lo guardado, o el seed si la clave no existe.
func (s *Service) loadLocked(ctx context.Context) error {
	items, found, err := s.repo.Load(ctx)
	if err != nil {
		return err
	}
	if !found {
		items = make([]Plant, 0, len(s.seed))
		for _, p := range s.seed {
			items = append(items, p.clone())
		}
	}
	if items == nil {
		items = []Plant{}
	}
	s.items = items
	s.loaded = true
	return nil
}

// readyLocked reintenta la carga si el arranque no pudo leer el store.
func (s *Service) readyLocked(ctx context.Context, op string) error {
	if s.loaded {
		return nil
	}
	if err := s.loadLocked(ctx); err != nil {
		s.rec.Mutation(collection, op, telemetry.ResultError)
		s.log.Warn("plants store still unavailable, mutation rejected", map[string]any{
			"op":  op,
			"err": err,
		})
		return ErrUnavailable
	}
	s.log.Info("plants loaded on retry", map[string]any{"count": len(s.items)})
	return nil
}

type CreateInput struct {
	GrowSpaceID string
	Name        string
	Strain      string
	Genetics    Genetics
	SeedBank    string
	StartDate   *time.Time // nil = ahora
}

// Create completa defaults; la etapa inicial siempre es Germination y sin logs.
func (s *Service) Create(ctx context.Context, in CreateInput) (Plant, error) {
	name := strings.TrimSpace(in.Name)
	spaceID := strings.TrimSpace(in.GrowSpaceID)
	if name == "" || spaceID == "" {
		s.rec.Mutation(collection, "create", telemetry.ResultInvalid)
		return Plant{}, ErrInvalidInput
	}

	strain := strings.TrimSpace(in.Strain)
	if strain == "" {
		strain = DefaultStrain
	}
	seedBank := strings.TrimSpace(in.SeedBank)
	if seedBank == "" {
		seedBank = DefaultSeedBank
	}
	genetics := in.Genetics
	if genetics == "" {
		genetics = GeneticsPhoto
	}

	s.mu.Lock()
	defer s.mu.Unlock()

	if err := s.readyLocked(ctx, "create"); err != nil {
		return Plant{}, err
	}

	start := s.now()
	if in.StartDate != nil && !in.StartDate.IsZero() {
		start = *in.StartDate
	}

	p := Plant{
		ID:           s.freshIDLocked(),
		GrowSpaceID:  spaceID,
		Name:         name,
		Strain:       strain,
		Genetics:     genetics,
		SeedBank:     seedBank,
		StartDate:    start.UnixMilli(),
		CurrentStage: StageGermination,
		Logs:         []MaintenanceLog{},
	}
	s.items = append(s.items, p)
	s.persistLocked(ctx, "create")
	return p.clone(), nil
}

func (s *Service) List(ctx context.Context) ([]Plant, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	out := make([]Plant, 0, len(s.items))
	for _, p := range s.items {
		out = append(out, p.clone())
	}
	return out, nil
}

// ListBySpace filtra por growSpaceId (incluye referencias colgantes).
func (s *Service) ListBySpace(ctx context.Context, growSpaceID string) ([]Plant, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	out := make([]Plant, 0)
	for _, p := range s.items {
		if p.GrowSpaceID == growSpaceID {
			out = append(out, p.clone())
		}
	}
	return out, nil
}

func (s *Service) GetByID(ctx context.Context, id string) (Plant, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	i := s.indexLocked(id)
	if i < 0 {
		return Plant{}, ErrNotFound
	}
	return s.items[i].clone(), nil
}

// First devuelve la primera planta de la colección, si hay.
func (s *Service) First(ctx context.Context) (Plant, bool) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	if len(s.items) == 0 {
		return Plant{}, false
	}
	return s.items[0].clone(), true
}

// UpdateInput: nil = no tocar. La etapa acepta cualquier transición.
type UpdateInput struct {
	GrowSpaceID  *string
	Name         *string
	Strain       *string
	Genetics     *Genetics
	SeedBank     *string
	StartDate    *time.Time
	CurrentStage *Stage
}

func (s *Service) Update(ctx context.Context, id string, in UpdateInput) (Plant, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	if err := s.readyLocked(ctx, "update"); err != nil {
		return Plant{}, err
	}

	i := s.indexLocked(id)
	if i < 0 {
		s.rec.Mutation(collection, "update", telemetry.ResultNotFound)
		return Plant{}, ErrNotFound
	}

	p := s.items[i]
	if in.GrowSpaceID != nil {
		p.GrowSpaceID = strings.TrimSpace(*in.GrowSpaceID)
	}
	if in.Name != nil {
		p.Name = strings.TrimSpace(*in.Name)
	}
	if in.Strain != nil {
		p.Strain = strings.TrimSpace(*in.Strain)
	}
	if in.Genetics != nil {
		p.Genetics = *in.Genetics
	}
	if in.SeedBank != nil {
		p.SeedBank = strings.TrimSpace(*in.SeedBank)
	}
	if in.StartDate != nil {
		p.StartDate = in.StartDate.UnixMilli()
	}
	if in.CurrentStage != nil {
		p.CurrentStage = *in.CurrentStage
	}
	s.items[i] = p

	s.persistLocked(ctx, "update")
	return p.clone(), nil
}

// Delete descarta la planta junto con sus logs.
func (s *Service) Delete(ctx context.Context, id string) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	if err := s.readyLocked(ctx, "delete"); err != nil {
		return err
	}

	i := s.indexLocked(id)
	if i < 0 {
		s.rec.Mutation(collection, "delete", telemetry.ResultNotFound)
		return ErrNotFound
	}

	next := make([]Plant, 0, len(s.items)-1)
	next = append(next, s.items[:i]...)
	next = append(next, s.items[i+1:]...)
	s.items = next

	s.persistLocked(ctx, "delete")
	return nil
}

type LogInput struct {
	Type          LogType
	PH            *float64
	ECPPM         *float64
	VolumeLiters  *float64
	Nutrients     string
	TrainingTypes []TrainingType
	Notes         string
	ImageURL      string
}

// AppendLog antepone un log con fecha "ahora". Si el reloj retrocedió respecto
// del log más nuevo, se usa la fecha de ese log para no romper el orden.
func (s *Service) AppendLog(ctx context.Context, plantID string, in LogInput) (MaintenanceLog, error) {
	if in.Type == "" {
		s.rec.Mutation(collection, "append_log", telemetry.ResultInvalid)
		return MaintenanceLog{}, ErrInvalidInput
	}

	s.mu.Lock()
	defer s.mu.Unlock()

	if err := s.readyLocked(ctx, "append_log"); err != nil {
		return MaintenanceLog{}, err
	}

	i := s.indexLocked(plantID)
	if i < 0 {
		s.rec.Mutation(collection, "append_log", telemetry.ResultNotFound)
		return MaintenanceLog{}, ErrNotFound
	}
	p := s.items[i]

	date := s.now().UnixMilli()
	if len(p.Logs) > 0 && p.Logs[0].Date > date {
		date = p.Logs[0].Date
	}

	l := MaintenanceLog{
		ID:            s.freshLogIDLocked(p.Logs),
		Date:          date,
		Type:          in.Type,
		PH:            copyFloat(in.PH),
		ECPPM:         copyFloat(in.ECPPM),
		VolumeLiters:  copyFloat(in.VolumeLiters),
		Nutrients:     strings.TrimSpace(in.Nutrients),
		TrainingTypes: dedupTraining(in.TrainingTypes),
		Notes:         strings.TrimSpace(in.Notes),
		ImageURL:      strings.TrimSpace(in.ImageURL),
	}

	logs := make([]MaintenanceLog, 0, len(p.Logs)+1)
	logs = append(logs, l)
	logs = append(logs, p.Logs...)
	p.Logs = logs
	s.items[i] = p

	s.persistLocked(ctx, "append_log")
	return l.clone(), nil
}

// ListLogs devuelve los logs (más reciente primero), opcionalmente por tipo.
func (s *Service) ListLogs(ctx context.Context, plantID string, types ...LogType) ([]MaintenanceLog, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	i := s.indexLocked(plantID)
	if i < 0 {
		return nil, ErrNotFound
	}

	out := make([]MaintenanceLog, 0, len(s.items[i].Logs))
	for _, l := range s.items[i].Logs {
		if len(types) > 0 && !containsType(types, l.Type) {
			continue
		}
		out = append(out, l.clone())
	}
	return out, nil
}

func containsType(types []LogType, t LogType) bool {
	for _, x := range types {
		if x == t {
			return true
		}
	}
	return false
}

// dedupTraining: las técnicas son un conjunto; se conserva el orden de llegada.
func dedupTraining(in []TrainingType) []TrainingType {
	if len(in) == 0 {
		return nil
	}
	seen := make(map[TrainingType]struct{}, len(in))
	out := make([]TrainingType, 0, len(in))
	for _, t := range in {
		if _, ok := seen[t]; ok {
			continue
		}
		seen[t] = struct{}{}
		out = append(out, t)
	}
	return out
}

func (s *Service) indexLocked(id string) int {
	id = strings.TrimSpace(id)
	if id == "" {
		return -1
	}
	for i := range s.items {
		if s.items[i].ID == id {
			return i
		}
	}
	return -1
}

func (s *Service) freshIDLocked() string {
	for {
		id := s.newID()
		if id != "" && s.indexLocked(id) < 0 {
			return id
		}
	}
}

func (s *Service) freshLogIDLocked(logs []MaintenanceLog) string {
	for {
		id := s.newID()
		if id == "" {
			continue
		}
		taken := false
		for _, l := range logs {
			if l.ID == id {
				taken = true
				break
			}
		}
		if !taken {
			return id
		}
	}
}

func (s *Service) persistLocked(ctx context.Context, op string) {
	snapshot := make([]Plant, 0, len(s.items))
	for _, p := range s.items {
		snapshot = append(snapshot, p.clone())
	}

	if err := s.repo.Save(ctx, snapshot); err != nil {
		s.rec.PersistFailure(collection)
		s.log.Warn("persist plants failed", map[string]any{
			"op":    op,
			"count": len(snapshot),
			"err":   err,
		})
	}
	s.rec.Mutation(collection, op, telemetry.ResultOK)
}
