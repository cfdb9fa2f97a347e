package growspaces

import (
	"context"
	"errors"
	"strings"
	"sync"

	"github.com/google/uuid"

	"growbraz/internal/platform/logger"
	"growbraz/internal/ports/telemetry"
)

const collection = "growbraz_spaces"

var (
	ErrInvalidInput = errors.New("invalid input")
	ErrNotFound     = errors.New("not found")
	// ErrUnavailable: el store no pudo leerse todavía; no se escribe nada
	// para no pisar lo guardado.
	ErrUnavailable = errors.New("store unavailable")
)

// Service mantiene la colección en memoria y la reescribe entera en el
// repositorio después de cada mutación exitosa.
type Service struct {
	mu    sync.RWMutex
	items []GrowSpace

	repo  Repository
	log   logger.Logger
	rec   telemetry.Recorder
	newID func() string

	seed   []GrowSpace
	loaded bool
}

type Options struct {
	Logger   logger.Logger
	Recorder telemetry.Recorder

	// Seed se usa solo si el repositorio no tiene datos guardados.
	Seed []GrowSpace
}

// NewService carga la colección. Un fallo de carga no es fatal: se loguea,
// se arranca vacío y cada mutación reintenta la carga antes de escribir.
func NewService(ctx context.Context, repo Repository, opts Options) *Service {
	s := &Service{
		repo:  repo,
		log:   opts.Logger,
		rec:   opts.Recorder,
		newID: uuid.NewString,
	}
	if s.log == nil {
		s.log = logger.NewNop()
	}
	if s.rec == nil {
		s.rec = telemetry.Nop{}
	}

	s.seed = append([]GrowSpace(nil), opts.Seed...)
	s.items = []GrowSpace{}

	if err := s.loadLocked(ctx); err != nil {
		s.log.Error("load grow spaces failed, writes disabled until the store answers", map[string]any{"err": err})
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
		items = append([]GrowSpace(nil), s.seed...)
	}
	if items == nil {
		items = []GrowSpace{}
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
		s.log.Warn("grow spaces store still unavailable, mutation rejected", map[string]any{
			"op":  op,
			"err": err,
		})
		return ErrUnavailable
	}
	s.log.Info("grow spaces loaded on retry", map[string]any{"count": len(s.items)})
	return nil
}

type CreateInput struct {
	Name       string
	Dimensions string
	LightType  string
	LightPower int
}

func (s *Service) Create(ctx context.Context, in CreateInput) (GrowSpace, error) {
	name := strings.TrimSpace(in.Name)
	if name == "" {
		s.rec.Mutation(collection, "create", telemetry.ResultInvalid)
		return GrowSpace{}, ErrInvalidInput
	}

	s.mu.Lock()
	defer s.mu.Unlock()

	if err := s.readyLocked(ctx, "create"); err != nil {
		return GrowSpace{}, err
	}

	g := GrowSpace{
		ID:         s.freshIDLocked(),
		Name:       name,
		Dimensions: strings.TrimSpace(in.Dimensions),
		LightType:  strings.TrimSpace(in.LightType),
		LightPower: in.LightPower,
	}
	s.items = append(s.items, g)
	s.persistLocked(ctx, "create")
	return g, nil
}

func (s *Service) List(ctx context.Context) ([]GrowSpace, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	out := make([]GrowSpace, len(s.items))
	copy(out, s.items)
	return out, nil
}

func (s *Service) GetByID(ctx context.Context, id string) (GrowSpace, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	i := s.indexLocked(id)
	if i < 0 {
		return GrowSpace{}, ErrNotFound
	}
	return s.items[i], nil
}

// UpdateInput: punteros para PATCH real, nil = no tocar.
// No hay forma de "limpiar" un campo.
type UpdateInput struct {
	Name       *string
	Dimensions *string
	LightType  *string
	LightPower *int
}

func (s *Service) Update(ctx context.Context, id string, in UpdateInput) (GrowSpace, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	if err := s.readyLocked(ctx, "update"); err != nil {
		return GrowSpace{}, err
	}

	i := s.indexLocked(id)
	if i < 0 {
		s.rec.Mutation(collection, "update", telemetry.ResultNotFound)
		return GrowSpace{}, ErrNotFound
	}

	g := s.items[i]
	if in.Name != nil {
		g.Name = strings.TrimSpace(*in.Name)
	}
	if in.Dimensions != nil {
		g.Dimensions = strings.TrimSpace(*in.Dimensions)
	}
	if in.LightType != nil {
		g.LightType = strings.TrimSpace(*in.LightType)
	}
	if in.LightPower != nil {
		g.LightPower = *in.LightPower
	}
	s.items[i] = g

	s.persistLocked(ctx, "update")
	return g, nil
}

// Delete no toca las plantas que referencian el espacio.
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

	next := make([]GrowSpace, 0, len(s.items)-1)
	next = append(next, s.items[:i]...)
	next = append(next, s.items[i+1:]...)
	s.items = next

	s.persistLocked(ctx, "delete")
	return nil
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

// persistLocked reescribe la colección. Un fallo deja la memoria por delante
// del store; el próximo Save exitoso reconcilia.
func (s *Service) persistLocked(ctx context.Context, op string) {
	snapshot := make([]GrowSpace, len(s.items))
	copy(snapshot, s.items)

	if err := s.repo.Save(ctx, snapshot); err != nil {
		s.rec.PersistFailure(collection)
		s.log.Warn("persist grow spaces failed", map[string]any{
			"op":    op,
			"count": len(snapshot),
			"err":   err,
		})
	}
	s.rec.Mutation(collection, op, telemetry.ResultOK)
}
