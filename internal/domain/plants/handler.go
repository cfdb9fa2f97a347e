package plants

import (
	"encoding/json"
	"errors"
	"net/http"
	"strings"
	"time"

	"growbraz/internal/domain/growspaces"

	"github.com/go-chi/chi/v5"
)

// UnknownSpaceName se muestra cuando growSpaceId no corresponde a ningún espacio.
const UnknownSpaceName = "Desconhecido"

func RegisterRoutes(r chi.Router, svc *Service, spacesSvc *growspaces.Service) {
	r.Route("/plants", func(pr chi.Router) {
		pr.Post("/", createPlantHandler(svc, spacesSvc))
		pr.Get("/", listPlantsHandler(svc, spacesSvc))

		pr.Get("/{plantID}", getPlantHandler(svc, spacesSvc))
		pr.Patch("/{plantID}", updatePlantHandler(svc, spacesSvc))
		pr.Delete("/{plantID}", deletePlantHandler(svc))

		// Registros de mantenimiento (embebidos en la planta)
		pr.Post("/{plantID}/logs", appendLogHandler(svc))
		pr.Get("/{plantID}/logs", listLogsHandler(svc))
	})
}

// createPlantRequest es el cuerpo para registrar una planta.
type createPlantRequest struct {
	GrowSpaceID string   `json:"grow_space_id"`
	Name        string   `json:"name"`
	Strain      string   `json:"strain"`   // opcional, default "Strain Desconhecida"
	Genetics    Genetics `json:"genetics"` // Auto | Photoperiod, default Photoperiod
	SeedBank    string   `json:"seed_bank"`
	StartDate   string   `json:"start_date"` // RFC3339 opcional, default ahora
}

// updatePlantRequest: punteros, nil = no tocar.
type updatePlantRequest struct {
	GrowSpaceID  *string   `json:"grow_space_id"`
	Name         *string   `json:"name"`
	Strain       *string   `json:"strain"`
	Genetics     *Genetics `json:"genetics"`
	SeedBank     *string   `json:"seed_bank"`
	StartDate    *string   `json:"start_date"`
	CurrentStage *Stage    `json:"current_stage"`
}

// createLogRequest es el cuerpo para registrar riego, fertilización, treino o foto.
type createLogRequest struct {
	Type          LogType        `json:"type" enums:"Watering,Feeding,Training,Photo"`
	PH            *float64       `json:"ph"`
	ECPPM         *float64       `json:"ec_ppm"`
	VolumeLiters  *float64       `json:"volume_liters"`
	Nutrients     string         `json:"nutrients"`
	TrainingTypes []TrainingType `json:"training_types"`
	Notes         string         `json:"notes"`
	ImageURL      string         `json:"image_url"`
}

type logResponse struct {
	ID            string         `json:"id"`
	Date          time.Time      `json:"date"`
	Type          LogType        `json:"type"`
	PH            *float64       `json:"ph,omitempty"`
	ECPPM         *float64       `json:"ec_ppm,omitempty"`
	VolumeLiters  *float64       `json:"volume_liters,omitempty"`
	Nutrients     string         `json:"nutrients,omitempty"`
	TrainingTypes []TrainingType `json:"training_types,omitempty"`
	Notes         string         `json:"notes,omitempty"`
	ImageURL      string         `json:"image_url,omitempty"`
}

// plantResponse incluye los derivados (edad, progreso, etiqueta) calculados al vuelo.
type plantResponse struct {
	ID            string        `json:"id"`
	GrowSpaceID   string        `json:"grow_space_id"`
	GrowSpaceName string        `json:"grow_space_name"`
	Name          string        `json:"name"`
	Strain        string        `json:"strain"`
	Genetics      Genetics      `json:"genetics"`
	SeedBank      string        `json:"seed_bank"`
	StartDate     time.Time     `json:"start_date"`
	CurrentStage  Stage         `json:"current_stage"`
	StageLabel    string        `json:"stage_label"`
	StageProgress int           `json:"stage_progress"`
	AgeDays       int           `json:"age_days"`
	Logs          []logResponse `json:"logs"`
}

// createPlantHandler godoc
// @Summary Crear planta
// @Description Crea una planta en etapa Germination y sin registros. grow_space_id no se valida contra los espacios.
// @Tags plants
// @Accept json
// @Produce json
// @Param payload body createPlantRequest true "Datos de la planta; name y grow_space_id obligatorios"
// @Success 201 {object} plantResponse
// @Failure 400 {string} string "invalid json / name and grow_space_id required / genetics inválida / start_date inválida"
// @Failure 503 {string} string "storage unavailable"
// @Router /plants [post]
func createPlantHandler(svc *Service, spacesSvc *growspaces.Service) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		var req createPlantRequest
		if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
			http.Error(w, "invalid json", http.StatusBadRequest)
			return
		}
		if strings.TrimSpace(req.Name) == "" || strings.TrimSpace(req.GrowSpaceID) == "" {
			http.Error(w, "name and grow_space_id required", http.StatusBadRequest)
			return
		}
		if req.Genetics != "" && !req.Genetics.Valid() {
			http.Error(w, "genetics must be Auto or Photoperiod", http.StatusBadRequest)
			return
		}

		var start *time.Time
		if strings.TrimSpace(req.StartDate) != "" {
			t, err := time.Parse(time.RFC3339, req.StartDate)
			if err != nil {
				http.Error(w, "start_date must be RFC3339", http.StatusBadRequest)
				return
			}
			start = &t
		}

		p, err := svc.Create(r.Context(), CreateInput{
			GrowSpaceID: req.GrowSpaceID,
			Name:        req.Name,
			Strain:      req.Strain,
			Genetics:    req.Genetics,
			SeedBank:    req.SeedBank,
			StartDate:   start,
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

		writeJSON(w, http.StatusCreated, toPlantResponse(p, spaceName(r, spacesSvc, p.GrowSpaceID), svc.now()))
	}
}

// listPlantsHandler godoc
// @Summary Listar plantas
// @Tags plants
// @Produce json
// @Param space_id query string false "Filtra por grow_space_id"
// @Success 200 {array} plantResponse
// @Router /plants [get]
func listPlantsHandler(svc *Service, spacesSvc *growspaces.Service) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		var (
			items []Plant
			err   error
		)
		if spaceID := strings.TrimSpace(r.URL.Query().Get("space_id")); spaceID != "" {
			items, err = svc.ListBySpace(r.Context(), spaceID)
		} else {
			items, err = svc.List(r.Context())
		}
		if err != nil {
			http.Error(w, "internal error", http.StatusInternalServerError)
			return
		}

		now := svc.now()
		out := make([]plantResponse, 0, len(items))
		for _, p := range items {
			out = append(out, toPlantResponse(p, spaceName(r, spacesSvc, p.GrowSpaceID), now))
		}
		writeJSON(w, http.StatusOK, out)
	}
}

// getPlantHandler godoc
// @Summary Detalle de planta
// @Description Incluye edad en días, progreso de etapa y nombre del espacio ("Desconhecido" si la referencia quedó colgando).
// @Tags plants
// @Produce json
// @Param plantID path string true "ID de la planta"
// @Success 200 {object} plantResponse
// @Failure 404 {string} string "plant not found"
// @Router /plants/{plantID} [get]
func getPlantHandler(svc *Service, spacesSvc *growspaces.Service) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		p, err := svc.GetByID(r.Context(), chi.URLParam(r, "plantID"))
		if err != nil {
			http.Error(w, "plant not found", http.StatusNotFound)
			return
		}
		writeJSON(w, http.StatusOK, toPlantResponse(p, spaceName(r, spacesSvc, p.GrowSpaceID), svc.now()))
	}
}

// updatePlantHandler godoc
// @Summary Actualizar planta (parcial)
// @Description Sobreescribe solo los campos enviados. La etapa admite cualquier transición.
// @Tags plants
// @Accept json
// @Produce json
// @Param plantID path string true "ID de la planta"
// @Param payload body updatePlantRequest true "Campos a modificar"
// @Success 200 {object} plantResponse
// @Failure 400 {string} string "invalid json / valores de enum inválidos"
// @Failure 404 {string} string "plant not found"
// @Failure 503 {string} string "storage unavailable"
// @Router /plants/{plantID} [patch]
func updatePlantHandler(svc *Service, spacesSvc *growspaces.Service) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		dec := json.NewDecoder(r.Body)
		dec.DisallowUnknownFields()

		var req updatePlantRequest
		if err := dec.Decode(&req); err != nil {
			http.Error(w, "invalid json", http.StatusBadRequest)
			return
		}
		if req.Name != nil && strings.TrimSpace(*req.Name) == "" {
			http.Error(w, "name cannot be empty", http.StatusBadRequest)
			return
		}
		if req.GrowSpaceID != nil && strings.TrimSpace(*req.GrowSpaceID) == "" {
			http.Error(w, "grow_space_id cannot be empty", http.StatusBadRequest)
			return
		}
		if req.Genetics != nil && !req.Genetics.Valid() {
			http.Error(w, "genetics must be Auto or Photoperiod", http.StatusBadRequest)
			return
		}
		if req.CurrentStage != nil && !req.CurrentStage.Valid() {
			http.Error(w, "current_stage must be one of Germination, Seedling, Vegetative, Flowering, Harvested", http.StatusBadRequest)
			return
		}

		var start *time.Time
		if req.StartDate != nil {
			t, err := time.Parse(time.RFC3339, *req.StartDate)
			if err != nil {
				http.Error(w, "start_date must be RFC3339", http.StatusBadRequest)
				return
			}
			start = &t
		}

		p, err := svc.Update(r.Context(), chi.URLParam(r, "plantID"), UpdateInput{
			GrowSpaceID:  req.GrowSpaceID,
			Name:         req.Name,
			Strain:       req.Strain,
			Genetics:     req.Genetics,
			SeedBank:     req.SeedBank,
			StartDate:    start,
			CurrentStage: req.CurrentStage,
		})
		if err != nil {
			switch {
			case errors.Is(err, ErrNotFound):
				http.Error(w, "plant not found", http.StatusNotFound)
			case errors.Is(err, ErrUnavailable):
				http.Error(w, "storage unavailable", http.StatusServiceUnavailable)
			default:
				http.Error(w, "internal error", http.StatusInternalServerError)
			}
			return
		}

		writeJSON(w, http.StatusOK, toPlantResponse(p, spaceName(r, spacesSvc, p.GrowSpaceID), svc.now()))
	}
}

// deletePlantHandler godoc
// @Summary Eliminar planta
// @Description Elimina la planta y todos sus registros.
// @Tags plants
// @Param plantID path string true "ID de la planta"
// @Success 204
// @Failure 404 {string} string "plant not found"
// @Failure 503 {string} string "storage unavailable"
// @Router /plants/{plantID} [delete]
func deletePlantHandler(svc *Service) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		if err := svc.Delete(r.Context(), chi.URLParam(r, "plantID")); err != nil {
			switch {
			case errors.Is(err, ErrUnavailable):
				http.Error(w, "storage unavailable", http.StatusServiceUnavailable)
			default:
				http.Error(w, "plant not found", http.StatusNotFound)
			}
			return
		}
		w.WriteHeader(http.StatusNoContent)
	}
}

// appendLogHandler godoc
// @Summary Registrar mantenimiento
// @Description Agrega un registro con fecha actual al inicio de la lista (más reciente primero).
// @Tags logs
// @Accept json
// @Produce json
// @Param plantID path string true "ID de la planta"
// @Param payload body createLogRequest true "Tipo y campos del registro"
// @Success 201 {object} logResponse
// @Failure 400 {string} string "invalid json / type inválido / training_types inválido"
// @Failure 404 {string} string "plant not found"
// @Failure 503 {string} string "storage unavailable"
// @Router /plants/{plantID}/logs [post]
func appendLogHandler(svc *Service) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		var req createLogRequest
		if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
			http.Error(w, "invalid json", http.StatusBadRequest)
			return
		}
		if !req.Type.Valid() {
			http.Error(w, "type must be one of Watering, Feeding, Training, Photo", http.StatusBadRequest)
			return
		}
		for _, t := range req.TrainingTypes {
			if !t.Valid() {
				http.Error(w, "training_types must be Topping, LST, Defoliation or Super Cropping", http.StatusBadRequest)
				return
			}
		}

		l, err := svc.AppendLog(r.Context(), chi.URLParam(r, "plantID"), LogInput{
			Type:          req.Type,
			PH:            req.PH,
			ECPPM:         req.ECPPM,
			VolumeLiters:  req.VolumeLiters,
			Nutrients:     req.Nutrients,
			TrainingTypes: req.TrainingTypes,
			Notes:         req.Notes,
			ImageURL:      req.ImageURL,
		})
		if err != nil {
			switch {
			case errors.Is(err, ErrNotFound):
				http.Error(w, "plant not found", http.StatusNotFound)
			case errors.Is(err, ErrUnavailable):
				http.Error(w, "storage unavailable", http.StatusServiceUnavailable)
			case errors.Is(err, ErrInvalidInput):
				http.Error(w, err.Error(), http.StatusBadRequest)
			default:
				http.Error(w, "internal error", http.StatusInternalServerError)
			}
			return
		}

		writeJSON(w, http.StatusCreated, toLogResponse(l))
	}
}

// listLogsHandler godoc
// @Summary Listar registros de mantenimiento
// @Tags logs
// @Produce json
// @Param plantID path string true "ID de la planta"
// @Param type query string false "Lista CSV de tipos (ej: Watering,Training)"
// @Success 200 {array} logResponse
// @Failure 400 {string} string "type inválido"
// @Failure 404 {string} string "plant not found"
// @Router /plants/{plantID}/logs [get]
func listLogsHandler(svc *Service) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		var types []LogType
		if v := strings.TrimSpace(r.URL.Query().Get("type")); v != "" {
			for _, part := range strings.Split(v, ",") {
				t := LogType(strings.TrimSpace(part))
				if t == "" {
					continue
				}
				if !t.Valid() {
					http.Error(w, "unknown log type "+string(t), http.StatusBadRequest)
					return
				}
				types = append(types, t)
			}
		}

		items, err := svc.ListLogs(r.Context(), chi.URLParam(r, "plantID"), types...)
		if err != nil {
			http.Error(w, "plant not found", http.StatusNotFound)
			return
		}

		out := make([]logResponse, 0, len(items))
		for _, l := range items {
			out = append(out, toLogResponse(l))
		}
		writeJSON(w, http.StatusOK, out)
	}
}

func spaceName(r *http.Request, spacesSvc *growspaces.Service, id string) string {
	if spacesSvc == nil {
		return UnknownSpaceName
	}
	g, err := spacesSvc.GetByID(r.Context(), id)
	if err != nil {
		return UnknownSpaceName
	}
	return g.Name
}

func toPlantResponse(p Plant, space string, now time.Time) plantResponse {
	logs := make([]logResponse, 0, len(p.Logs))
	for _, l := range p.Logs {
		logs = append(logs, toLogResponse(l))
	}
	return plantResponse{
		ID:            p.ID,
		GrowSpaceID:   p.GrowSpaceID,
		GrowSpaceName: space,
		Name:          p.Name,
		Strain:        p.Strain,
		Genetics:      p.Genetics,
		SeedBank:      p.SeedBank,
		StartDate:     p.StartTime(),
		CurrentStage:  p.CurrentStage,
		StageLabel:    StageLabel(p.CurrentStage),
		StageProgress: StageProgress(p.CurrentStage),
		AgeDays:       AgeDays(p, now),
		Logs:          logs,
	}
}

func toLogResponse(l MaintenanceLog) logResponse {
	return logResponse{
		ID:            l.ID,
		Date:          l.Time(),
		Type:          l.Type,
		PH:            l.PH,
		ECPPM:         l.ECPPM,
		VolumeLiters:  l.VolumeLiters,
		Nutrients:     l.Nutrients,
		TrainingTypes: l.TrainingTypes,
		Notes:         l.Notes,
		ImageURL:      l.ImageURL,
	}
}

// writeJSON duplicado por módulo, igual que en growspaces.
func writeJSON(w http.ResponseWriter, status int, v any) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	_ = json.NewEncoder(w).Encode(v)
}
