package telemetry

// Resultados usados como label en las métricas.
const (
	ResultOK       = "ok"
	ResultInvalid  = "invalid"
	ResultNotFound = "not_found"
	ResultError    = "error"
	ResultFallback = "fallback"
)

// Recorder recibe eventos de los servicios de dominio.
// La implementación real vive en platform/metrics.
type Recorder interface {
	Mutation(collection, op, result string)
	PersistFailure(collection string)
	Advice(result string)
}

// Nop descarta todo. Útil en tests.
type Nop struct{}

func (Nop) Mutation(string, string, string) {}
func (Nop) PersistFailure(string)           {}
func (Nop) Advice(string)                   {}
