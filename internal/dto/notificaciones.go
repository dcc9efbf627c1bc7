package dto

import (
	"github.com/LeitoBarrera/estudios_mid/models"
)

// NotificacionesDTO es la vista del panel de notificaciones.
type NotificacionesDTO struct {
	Notificaciones []models.Notificacion `json:"notificaciones"`
	NoLeidas       int                   `json:"no_leidas"`
	ActualizadoEn  string                `json:"actualizado_en"`
}

// AbrirNotificacionResp resuelve el enlace profundo de una notificación.
type AbrirNotificacionResp struct {
	Notificacion models.Notificacion `json:"notificacion"`
	SolicitudID  *int64              `json:"solicitud_id,omitempty"`
	Ruta         string              `json:"ruta"`
}
