package growspaces

import (
	"encoding/json"
	"errors"
	"net/http"
	"strings"

	"github.com/go-chi/chi/v5"
)

func RegisterRoutes(r chi.Router, svc *Service) {
	r.Route("/spaces", func(sr chi.Router) {
		sr.Post("/", createSpaceHandler(svc))
		sr.Get("/", listSpacesHandler(svc))

		sr.Get("/{spaceID}", getSpaceHandler(svc))
		sr.Patch("/{spaceID}", updateSpaceHandler(svc))
		sr.Delete("/{spaceID}", deleteSpaceHandler(svc))
	})
}

// createSpaceRequest es el cuerpo para registrar un ambiente de cultivo.
type createSpaceRequest struct {
	Name       string `json:"name"`
	Dimensions string `json:"dimensions"`
	LightType  string `json:"light_type"`
	LightPower int    `json:"light_power"`
}

// updateSpaceRequest: punteros, nil = no tocar.
type updateSpaceRequest struct {
	Name       *string `json:"name"`
	Dimensions *string `json:"dimensions"`
	LightType  *string `json:"light_type"`
	LightPower *int    `json:"light_power"`
}

// spaceResponse representa un ambiente de cultivo devuelto por la API.
type spaceResponse struct {
	ID         string `json:"id"`
	Name       string `json:"name"`
	Dimensions string `json:"dimensions"`
	LightType  string `json:"light_type"`
	LightPower int    `json:"light_power"`
}

// createSpaceHandler godoc
// @Summary Crear ambiente de cultivo
// @Tags spaces
// @Accept json
// @Produce json
// @Param payload body createSpaceRequest true "Datos del ambiente; name es obligatorio"
// @Success 201 {object} spaceResponse
// @Failure 400 {string} string "invalid json / name required / light_power must be >= 0"
// @Failure 503 {string} string "storage unavailable"
// @Router /spaces [post]
func createSpaceHandler(svc *Service) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		var req createSpaceRequest
		if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
			http.Error(w, "invalid json", http.StatusBadRequest)
			return
		}
		if strings.TrimSpace(req.Name) == "" {
			http.Error(w, "name required", http.StatusBadRequest)
			return
		}
		if req.LightPower < 0 {
			http.Error(w, "light_power must be >= 0", http.StatusBadRequest)
			return
		}

		g, err := svc.Create(r.Context(), CreateInput{
			Name:       req.Name,
			Dimensions: req.Dimensions,
			LightType:  req.LightType,
			LightPower: req.LightPower,
		})
		if err != nil {
			switch {
			case errors.Is(err, ErrUnavailable):
				http.Error(w, "storage unavailable", http.StatusServiceUnavailable)
			default:
				http.Error(w, err.Error(), http.StatusBadRequest)
			}
			return
		}

		writeJSON(w, http.StatusCreated, toSpaceResponse(g))
	}
}

// listSpacesHandler godoc
// @Summary Listar ambientes de cultivo
// @Tags spaces
// @Produce json
// @Success 200 {array} spaceResponse
// @Router /spaces [get]
func listSpacesHandler(svc *Service) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		items, err := svc.List(r.Context())
		if err != nil {
			http.Error(w, "internal error", http.StatusInternalServerError)
			return
		}

		out := make([]spaceResponse, 0, len(items))
		for _, g := range items {
			out = append(out, toSpaceResponse(g))
		}
		writeJSON(w, http.StatusOK, out)
	}
}

// getSpaceHandler godoc
// @Summary Obtener ambiente de cultivo
// @Tags spaces
// @Produce json
// @Param spaceID path string true "ID del ambiente"
// @Success 200 {object} spaceResponse
// @Failure 404 {string} string "space not found"
// @Router /spaces/{spaceID} [get]
func getSpaceHandler(svc *Service) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		g, err := svc.GetByID(r.Context(), chi.URLParam(r, "spaceID"))
		if err != nil {
			http.Error(w, "space not found", http.StatusNotFound)
			return
		}
		writeJSON(w, http.StatusOK, toSpaceResponse(g))
	}
}

// updateSpaceHandler godoc
// @Summary Actualizar ambiente de cultivo (parcial)
// @Description Solo se sobreescriben los campos enviados. No se pueden limpiar campos.
// @Tags spaces
// @Accept json
// @Produce json
// @Param spaceID path string true "ID del ambiente"
// @Param payload body updateSpaceRequest true "Campos a modificar"
// @Success 200 {object} spaceResponse
// @Failure 400 {string} string "invalid json / name cannot be empty / light_power must be >= 0"
// @Failure 404 {string} string "space not found"
// @Failure 503 {string} string "storage unavailable"
// @Router /spaces/{spaceID} [patch]
func updateSpaceHandler(svc *Service) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		dec := json.NewDecoder(r.Body)
		dec.DisallowUnknownFields()

		var req updateSpaceRequest
		if err := dec.Decode(&req); err != nil {
			http.Error(w, "invalid json", http.StatusBadRequest)
			return
		}
		if req.Name != nil && strings.TrimSpace(*req.Name) == "" {
			http.Error(w, "name cannot be empty", http.StatusBadRequest)
			return
		}
		if req.LightPower != nil && *req.LightPower < 0 {
			http.Error(w, "light_power must be >= 0", http.StatusBadRequest)
			return
		}

		g, err := svc.Update(r.Context(), chi.URLParam(r, "spaceID"), UpdateInput{
			Name:       req.Name,
			Dimensions: req.Dimensions,
			LightType:  req.LightType,
			LightPower: req.LightPower,
		})
		if err != nil {
			switch {
			case errors.Is(err, ErrNotFound):
				http.Error(w, "space not found", http.StatusNotFound)
			case errors.Is(err, ErrUnavailable):
				http.Error(w, "storage unavailable", http.StatusServiceUnavailable)
			default:
				http.Error(w, "internal error", http.StatusInternalServerError)
			}
			return
		}

		writeJSON(w, http.StatusOK, toSpaceResponse(g))
	}
}

// deleteSpaceHandler godoc
// @Summary Eliminar ambiente de cultivo
// @Description No elimina ni modifica las plantas que lo referencian.
// @Tags spaces
// @Param spaceID path string true "ID del ambiente"
// @Success 204
// @Failure 404 {string} string "space not found"
// @Failure 503 {string} string "storage unavailable"
// @Router /spaces/{spaceID} [delete]
func deleteSpaceHandler(svc *Service) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		if err := svc.Delete(r.Context(), chi.URLParam(r, "spaceID")); err != nil {
			switch {
			case errors.Is(err, ErrUnavailable):
				http.Error(w, "storage unavailable", http.StatusServiceUnavailable)
			default:
				http.Error(w, "space not found", http.StatusNotFound)
			}
			return
		}
		w.WriteHeader(http.StatusNoContent)
	}
}

func toSpaceResponse(g GrowSpace) spaceResponse {
	return spaceResponse{
		ID:         g.ID,
		Name:       g.Name,
		Dimensions: g.Dimensions,
		LightType:  g.LightType,
		LightPower: g.LightPower,
	}
}

func writeJSON(w http.ResponseWriter, status int, v any) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	_ = json.NewEncoder(w).Encode(v)
}
