package growspaces

// GrowSpace es un ambiente físico de cultivo (carpa o sala).
// Los tags json son el formato persistido; no cambiar los nombres.
type GrowSpace struct {
	ID         string `json:"id"`
	Name       string `json:"name"`
	Dimensions string `json:"dimensions"` // texto libre, ej. "60x60x160"
	LightType  string `json:"lightType"`
	LightPower int    `json:"lightPower"` // watts
}

// DefaultSeed es el espacio de ejemplo para el primer arranque.
func DefaultSeed() []GrowSpace {
	return []GrowSpace{
		{ID: "1", Name: "Grow Alpha", Dimensions: "60x60x160", LightType: "LED Full Spectrum", LightPower: 240},
	}
}
