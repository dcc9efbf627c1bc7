package models

// Modelos del dominio tal como los entrega el API core. El core es dueño de los
// datos; el MID mantiene copias transitorias por petición y nunca los persiste
// (con la única excepción del registro de consentimientos).

// Documento es un soporte subido por el candidato o adjunto a un ítem.
type Documento struct {
	ID         int64  `json:"id"`
	Nombre     string `json:"nombre"`
	Tipo       string `json:"tipo"`
	ArchivoURL string `json:"archivo_url"`
	Estado     string `json:"estado,omitempty"`
	Comentario string `json:"comentario,omitempty"`
	ItemID     *int64 `json:"item,omitempty"`
	CreatedAt  string `json:"created_at,omitempty"`
}

// EstudioItem es una entrada del checklist de verificación de un estudio.
type EstudioItem struct {
	ID         int64       `json:"id"`
	Tipo       string      `json:"tipo"`
	Estado     string      `json:"estado"`
	Puntaje    float64     `json:"puntaje"`
	Comentario string      `json:"comentario,omitempty"`
	CreatedAt  string      `json:"created_at,omitempty"`
	Documentos []Documento `json:"documentos"`
}

// Estudio es un caso de verificación de antecedentes ligado a un candidato.
// Los campos de score pueden venir vacíos: el core los recorta según el rol.
type Estudio struct {
	ID                  int64         `json:"id"`
	SolicitudID         int64         `json:"solicitud_id"`
	AutorizacionFirmada bool          `json:"autorizacion_firmada"`
	AutorizacionFecha   *string       `json:"autorizacion_fecha,omitempty"`
	Progreso            float64       `json:"progreso"`
	ScoreCuantitativo   *float64      `json:"score_cuantitativo,omitempty"`
	NivelCualitativo    string        `json:"nivel_cualitativo,omitempty"`
	Items               []EstudioItem `json:"items"`
	CandidatoNombre     string        `json:"candidato_nombre,omitempty"`
	CandidatoCedula     string        `json:"candidato_cedula,omitempty"`
}

// ResumenEstudio es la vista agregada que expone /api/estudios/{id}/resumen/.
type ResumenEstudio struct {
	EstudioID         int64                     `json:"estudio_id"`
	Progreso          float64                   `json:"progreso"`
	ScoreCuantitativo *float64                  `json:"score_cuantitativo,omitempty"`
	NivelCualitativo  string                    `json:"nivel_cualitativo,omitempty"`
	Totales           ResumenTotales            `json:"totales"`
	Secciones         map[string]ResumenSeccion `json:"secciones"`
	Autorizacion      ResumenAutorizacion       `json:"autorizacion"`
}

type ResumenTotales struct {
	Items     int `json:"items"`
	Validados int `json:"validados"`
	Hallazgos int `json:"hallazgos"`
}

type ResumenSeccion struct {
	Estado    []string `json:"estado"`
	Validados int      `json:"validados"`
	Hallazgos int      `json:"hallazgos"`
}

type ResumenAutorizacion struct {
	Firmada bool    `json:"firmada"`
	Fecha   *string `json:"fecha,omitempty"`
}

// Notificacion llega por sondeo; is_read es consultivo, no estructural.
type Notificacion struct {
	ID          int64  `json:"id"`
	Tipo        string `json:"tipo"`
	Titulo      string `json:"titulo"`
	Cuerpo      string `json:"cuerpo"`
	Leida       bool   `json:"is_read"`
	CreatedAt   string `json:"created_at"`
	SolicitudID *int64 `json:"solicitud"`
}

// PerfilUsuario es la respuesta de /api/auth/me/ que decide el enrutamiento.
type PerfilUsuario struct {
	ID            int64  `json:"id"`
	Username      string `json:"username"`
	Email         string `json:"email"`
	Rol           string `json:"rol"`
	EmpresaID     *int64 `json:"empresa_id,omitempty"`
	EmpresaNombre string `json:"empresa_nombre,omitempty"`
}

// GeoLugar normaliza departamentos y municipios del servicio geográfico.
type GeoLugar struct {
	ID     string `json:"id"`
	Nombre string `json:"nombre"`
}
