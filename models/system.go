package models

type AppMode string

const (
	ModeBarber AppMode = "BARBER"
	ModeClinic AppMode = "CLINIC"
)

// SystemConfig is a process-wide singleton edited from the settings screen.
type SystemConfig struct {
	Name    string `json:"name"`
	LogoURL string `json:"logoUrl,omitempty"`
}
