package advisor

import "context"

// Snapshot es la vista reducida de una planta que se envía al asesor.
type Snapshot struct {
	Name     string
	Strain   string
	Genetics string
	Stage    string
	AgeDays  int
}

// Advisor produce un consejo de texto para una planta y una pregunta libre.
type Advisor interface {
	Advise(ctx context.Context, plant Snapshot, question string) (string, error)
}
