package plants

// Genetics define cómo se dispara la floración.
type Genetics string

const (
	GeneticsAuto  Genetics = "Auto"
	GeneticsPhoto Genetics = "Photoperiod"
)

// Stage es la fase actual del ciclo. Orden: germinación → cosecha.
type Stage string

const (
	StageGermination Stage = "Germination"
	StageSeedling    Stage = "Seedling"
	StageVegetative  Stage = "Vegetative"
	StageFlowering   Stage = "Flowering"
	StageHarvested   Stage = "Harvested"
)

// Stages en orden de ciclo.
var Stages = []Stage{StageGermination, StageSeedling, StageVegetative, StageFlowering, StageHarvested}

type LogType string

const (
	LogWatering LogType = "Watering"
	LogFeeding  LogType = "Feeding"
	LogTraining LogType = "Training"
	LogPhoto    LogType = "Photo"
)

type TrainingType string

const (
	TrainingTopping       TrainingType = "Topping"
	TrainingLST           TrainingType = "LST"
	TrainingDefoliation   TrainingType = "Defoliation"
	TrainingSuperCropping TrainingType = "Super Cropping"
)

// Defaults de creación.
const (
	DefaultStrain   = "Strain Desconhecida"
	DefaultSeedBank = "N/A"
)

func (g Genetics) Valid() bool {
	return g == GeneticsAuto || g == GeneticsPhoto
}

func (s Stage) Valid() bool {
	for _, st := range Stages {
		if s == st {
			return true
		}
	}
	return false
}

func (t LogType) Valid() bool {
	switch t {
	case LogWatering, LogFeeding, LogTraining, LogPhoto:
		return true
	}
	return false
}

func (t TrainingType) Valid() bool {
	switch t {
	case TrainingTopping, TrainingLST, TrainingDefoliation, TrainingSuperCropping:
		return true
	}
	return false
}

// MaintenanceLog es un registro de mantenimiento embebido en una planta.
// Los campos opcionales dependen del tipo (riego: ph/ec/volumen, treino: técnicas, foto: imagen).
type MaintenanceLog struct {
	ID            string         `json:"id"`
	Date          int64          `json:"date"` // epoch ms
	Type          LogType        `json:"type"`
	PH            *float64       `json:"ph,omitempty"`
	ECPPM         *float64       `json:"ecPpm,omitempty"`
	VolumeLiters  *float64       `json:"volumeLiters,omitempty"`
	Nutrients     string         `json:"nutrients,omitempty"`
	TrainingTypes []TrainingType `json:"trainingTypes,omitempty"`
	Notes         string         `json:"notes,omitempty"`
	ImageURL      string         `json:"imageUrl,omitempty"`
}

// Plant es una planta en seguimiento. GrowSpaceID no se valida contra los
// espacios existentes y puede quedar colgando.
// Logs siempre va del más reciente al más viejo.
type Plant struct {
	ID           string           `json:"id"`
	GrowSpaceID  string           `json:"growSpaceId"`
	Name         string           `json:"name"`
	Strain       string           `json:"strain"`
	Genetics     Genetics         `json:"genetics"`
	SeedBank     string           `json:"seedBank"`
	StartDate    int64            `json:"startDate"` // epoch ms
	CurrentStage Stage            `json:"currentStage"`
	Logs         []MaintenanceLog `json:"logs"`
}

// clone copia profunda: los servicios nunca devuelven slices compartidos.
func (p Plant) clone() Plant {
	out := p
	out.Logs = make([]MaintenanceLog, len(p.Logs))
	for i, l := range p.Logs {
		out.Logs[i] = l.clone()
	}
	return out
}

func (l MaintenanceLog) clone() MaintenanceLog {
	out := l
	out.PH = copyFloat(l.PH)
	out.ECPPM = copyFloat(l.ECPPM)
	out.VolumeLiters = copyFloat(l.VolumeLiters)
	if l.TrainingTypes != nil {
		out.TrainingTypes = append([]TrainingType(nil), l.TrainingTypes...)
	}
	return out
}

func copyFloat(f *float64) *float64 {
	if f == nil {
		return nil
	}
	v := *f
	return &v
}
