package advisory

import (
	"context"
	"errors"
	"strings"
	"time"

	"growbraz/internal/domain/plants"
	"growbraz/internal/platform/logger"
	"growbraz/internal/ports/advisor"
	"growbraz/internal/ports/telemetry"
)

const (
	// OfflineText se devuelve cuando el asesor falla o no está configurado.
	OfflineText = "O assistente de IA está offline no momento. Por favor, verifique sua conexão."
	// EmptyText se devuelve cuando el asesor responde sin texto.
	EmptyText = "Desculpe, não consegui processar o conselho agora."
)

var (
	ErrInvalidInput = errors.New("invalid input")
	ErrNotFound     = errors.New("not found")
)

// Service arma el contexto de la planta y consulta al asesor. Nunca devuelve error
// por fallas del asesor: las convierte en texto de fallback.
type Service struct {
	advisor advisor.Advisor
	plants  *plants.Service
	log     logger.Logger
	rec     telemetry.Recorder
	now     func() time.Time
}

type Options struct {
	Logger   logger.Logger
	Recorder telemetry.Recorder
}

// NewService acepta adv == nil (sin API key): todas las respuestas serán OfflineText.
func NewService(adv advisor.Advisor, plantsSvc *plants.Service, opts Options) *Service {
	s := &Service{
		advisor: adv,
		plants:  plantsSvc,
		log:     opts.Logger,
		rec:     opts.Recorder,
		now:     time.Now,
	}
	if s.log == nil {
		s.log = logger.NewNop()
	}
	if s.rec == nil {
		s.rec = telemetry.Nop{}
	}
	return s
}

// SnapshotOf reduce la planta a lo que ve el asesor; la edad se calcula con now.
func SnapshotOf(p plants.Plant, now time.Time) advisor.Snapshot {
	return advisor.Snapshot{
		Name:     p.Name,
		Strain:   p.Strain,
		Genetics: string(p.Genetics),
		Stage:    string(p.CurrentStage),
		AgeDays:  plants.AgeDays(p, now),
	}
}

// GetAdvice siempre devuelve un texto. p == nil equivale a "sin planta".
func (s *Service) GetAdvice(ctx context.Context, p *plants.Plant, question string) string {
	if p == nil || s.advisor == nil {
		s.rec.Advice(telemetry.ResultFallback)
		return OfflineText
	}

	text, err := s.advisor.Advise(ctx, SnapshotOf(*p, s.now()), question)
	if err != nil {
		s.rec.Advice(telemetry.ResultError)
		s.log.Warn("advisor call failed", map[string]any{
			"plant_id": p.ID,
			"err":      err,
		})
		return OfflineText
	}
	if strings.TrimSpace(text) == "" {
		s.rec.Advice(telemetry.ResultFallback)
		return EmptyText
	}

	s.rec.Advice(telemetry.ResultOK)
	return text
}

// Advice es la respuesta expuesta por HTTP.
type Advice struct {
	PlantID  string // vacío si no había planta
	Question string
	Answer   string
}

// Ask resuelve la planta (plantID vacío = primera de la colección) y pide el consejo.
// Un plantID explícito inexistente es ErrNotFound; una colección vacía da OfflineText.
func (s *Service) Ask(ctx context.Context, plantID, question string) (Advice, error) {
	question = strings.TrimSpace(question)
	if question == "" {
		s.rec.Advice(telemetry.ResultInvalid)
		return Advice{}, ErrInvalidInput
	}

	var target *plants.Plant
	switch id := strings.TrimSpace(plantID); {
	case id != "":
		p, err := s.plants.GetByID(ctx, id)
		if err != nil {
			s.rec.Advice(telemetry.ResultNotFound)
			return Advice{}, ErrNotFound
		}
		target = &p
	default:
		if p, ok := s.plants.First(ctx); ok {
			target = &p
		}
	}

	out := Advice{Question: question}
	if target != nil {
		out.PlantID = target.ID
	}
	out.Answer = s.GetAdvice(ctx, target, question)
	return out, nil
}
