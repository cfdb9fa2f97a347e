package dashboard

import (
	"encoding/json"
	"net/http"

	"github.com/go-chi/chi/v5"
)

func RegisterRoutes(r chi.Router, b *Builder) {
	r.Get("/dashboard", getDashboardHandler(b))
}

// getDashboardHandler godoc
// @Summary Resumen del cultivo
// @Description Espacios con sus plantas y lista de plantas activas (etapa distinta de Harvested).
// @Tags dashboard
// @Produce json
// @Success 200 {object} View
// @Router /dashboard [get]
func getDashboardHandler(b *Builder) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		v, err := b.Build(r.Context())
		if err != nil {
			http.Error(w, "internal error", http.StatusInternalServerError)
			return
		}
		w.Header().Set("Content-Type", "application/json")
		w.WriteHeader(http.StatusOK)
		_ = json.NewEncoder(w).Encode(v)
	}
}
