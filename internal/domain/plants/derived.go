package plants

import "time"

const msPerDay = int64(24 * time.Hour / time.Millisecond)

// AgeDays = floor((now - startDate) / día). Se calcula siempre, nunca se guarda.
func AgeDays(p Plant, now time.Time) int {
	diff := now.UnixMilli() - p.StartDate
	days := diff / msPerDay
	// floor también para negativos (startDate en el futuro)
	if diff%msPerDay != 0 && diff < 0 {
		days--
	}
	return int(days)
}

// StageProgress devuelve el porcentaje visual de avance de la etapa.
func StageProgress(s Stage) int {
	switch s {
	case StageGermination:
		return 10
	case StageSeedling:
		return 25
	case StageVegetative:
		return 50
	case StageFlowering:
		return 85
	case StageHarvested:
		return 100
	default:
		return 0
	}
}

// StageLabel es el nombre que ve el usuario (pt-BR).
func StageLabel(s Stage) string {
	switch s {
	case StageGermination:
		return "Germinação"
	case StageSeedling:
		return "Plântula"
	case StageVegetative:
		return "Vegetativo"
	case StageFlowering:
		return "Floração"
	case StageHarvested:
		return "Colhida"
	default:
		return string(s)
	}
}

// StartTime convierte startDate (epoch ms) a time.Time.
func (p Plant) StartTime() time.Time {
	return time.UnixMilli(p.StartDate).UTC()
}

func (l MaintenanceLog) Time() time.Time {
	return time.UnixMilli(l.Date).UTC()
}
