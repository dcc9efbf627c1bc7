package dto

import (
	"github.com/LeitoBarrera/estudios_mid/models/requestresponse"
)

// APIResponseDTO reutiliza el DTO estándar expuesto por requestresponse.
// Alias para mantener compatibilidad con consumidores existentes.
type APIResponseDTO = requestresponse.APIResponseDTO

// OkDTO es la respuesta mínima de acciones del core ({"ok": true}).
type OkDTO struct {
	Ok      bool `json:"ok"`
	Updated int  `json:"updated,omitempty"`
}
