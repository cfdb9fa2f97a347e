package advisory

import (
	"encoding/json"
	"errors"
	"net/http"

	"github.com/go-chi/chi/v5"
)

func RegisterRoutes(r chi.Router, svc *Service) {
	r.Post("/advice", askHandler(svc))

	r.Route("/plants/{plantID}/advice", func(ar chi.Router) {
		ar.Post("/", askForPlantHandler(svc))
	})
}

type adviceRequest struct {
	PlantID  string `json:"plant_id"` // opcional en /advice
	Question string `json:"question"`
}

type adviceResponse struct {
	PlantID  string `json:"plant_id,omitempty"`
	Question string `json:"question"`
	Answer   string `json:"answer"`
}

// askHandler godoc
// @Summary Consultar al asistente de cultivo
// @Description Si no se envía plant_id se usa la primera planta. Fallas del asistente devuelven un texto de fallback con 200.
// @Tags advisory
// @Accept json
// @Produce json
// @Param payload body adviceRequest true "Pregunta y planta opcional"
// @Success 200 {object} adviceResponse
// @Failure 400 {string} string "invalid json / question required"
// @Failure 404 {string} string "plant not found"
// @Router /advice [post]
func askHandler(svc *Service) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		var req adviceRequest
		if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
			http.Error(w, "invalid json", http.StatusBadRequest)
			return
		}
		respond(w, r, svc, req.PlantID, req.Question)
	}
}

// askForPlantHandler godoc
// @Summary Consultar al asistente sobre una planta
// @Tags advisory
// @Accept json
// @Produce json
// @Param plantID path string true "ID de la planta"
// @Param payload body adviceRequest true "Pregunta (plant_id se ignora)"
// @Success 200 {object} adviceResponse
// @Failure 400 {string} string "invalid json / question required"
// @Failure 404 {string} string "plant not found"
// @Router /plants/{plantID}/advice [post]
func askForPlantHandler(svc *Service) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		var req adviceRequest
		if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
			http.Error(w, "invalid json", http.StatusBadRequest)
			return
		}
		respond(w, r, svc, chi.URLParam(r, "plantID"), req.Question)
	}
}

func respond(w http.ResponseWriter, r *http.Request, svc *Service, plantID, question string) {
	a, err := svc.Ask(r.Context(), plantID, question)
	if err != nil {
		switch {
		case errors.Is(err, ErrInvalidInput):
			http.Error(w, "question required", http.StatusBadRequest)
		case errors.Is(err, ErrNotFound):
			http.Error(w, "plant not found", http.StatusNotFound)
		default:
			http.Error(w, "internal error", http.StatusInternalServerError)
		}
		return
	}

	writeJSON(w, http.StatusOK, adviceResponse{
		PlantID:  a.PlantID,
		Question: a.Question,
		Answer:   a.Answer,
	})
}

func writeJSON(w http.ResponseWriter, status int, v any) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	_ = json.NewEncoder(w).Encode(v)
}
