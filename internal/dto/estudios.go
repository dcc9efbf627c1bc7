package dto

// ValidarItemReq es el cuerpo para validar un ítem individual.
type ValidarItemReq struct {
	Puntaje    float64 `json:"puntaje"`
	Comentario string  `json:"comentario,omitempty"`
}

// HallazgoReq marca un ítem con hallazgo.
type HallazgoReq struct {
	Comentario string  `json:"comentario"`
	Puntaje    float64 `json:"puntaje,omitempty"`
}

// ItemMasivo es una entrada de la validación masiva.
type ItemMasivo struct {
	ID         int64   `json:"id"`
	Estado     string  `json:"estado,omitempty"`
	Puntaje    float64 `json:"puntaje"`
	Comentario string  `json:"comentario,omitempty"`
}

// ValidacionMasivaReq agrupa los ítems a validar en una sola llamada.
type ValidacionMasivaReq struct {
	Items []ItemMasivo `json:"items"`
}

// AgregarItemReq crea un ítem nuevo en el checklist del estudio.
type AgregarItemReq struct {
	Tipo string `json:"tipo"`
}
