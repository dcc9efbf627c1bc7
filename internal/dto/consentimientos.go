package dto

// Pasos del asistente de consentimiento, en orden estricto.
const (
	PasoFirma    = 1
	PasoHabeas   = 2
	PasoTerminos = 3
)

// ConsentimientoEstado resume el avance del asistente para un estudio.
type ConsentimientoEstado struct {
	EstudioID     int64   `json:"estudio_id"`
	PasoActual    int     `json:"paso_actual"`
	Firmado       bool    `json:"firmado"`
	FirmaFecha    *string `json:"firma_fecha,omitempty"`
	FirmaRecibo   string  `json:"firma_recibo,omitempty"`
	Habeas        bool    `json:"habeas"`
	HabeasFecha   *string `json:"habeas_fecha,omitempty"`
	Terminos      bool    `json:"terminos"`
	TerminosFecha *string `json:"terminos_fecha,omitempty"`
	Completado    bool    `json:"completado"`
}

// FirmaReq es el cuerpo del paso 1: la firma manuscrita como data URL.
type FirmaReq struct {
	FirmaBase64 string `json:"firma_base64"`
	UserAgent   string `json:"user_agent,omitempty"`
}

// AceptacionReq es el cuerpo de los pasos 2 y 3.
type AceptacionReq struct {
	Aceptado bool `json:"aceptado"`
}
