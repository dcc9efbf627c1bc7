package dto

// CandidatoNuevo son los datos mínimos del candidato al crear una solicitud.
type CandidatoNuevo struct {
	Nombre           string `json:"nombre"`
	Apellido         string `json:"apellido"`
	Cedula           string `json:"cedula"`
	Email            string `json:"email"`
	Celular          string `json:"celular,omitempty"`
	CiudadResidencia string `json:"ciudad_residencia,omitempty"`
}

// SolicitudCreateReq crea una solicitud de estudio para un candidato.
type SolicitudCreateReq struct {
	Candidato CandidatoNuevo `json:"candidato"`
	Analista  *int64         `json:"analista,omitempty"`
}

// SolicitudDTO es la solicitud tal como la devuelve el core.
type SolicitudDTO struct {
	ID        int64                  `json:"id"`
	Empresa   int64                  `json:"empresa"`
	Candidato map[string]interface{} `json:"candidato"`
	Analista  *int64                 `json:"analista,omitempty"`
	Estado    string                 `json:"estado"`
	CreatedAt string                 `json:"created_at"`
}

// InvitacionResp es la respuesta de invitar_candidato.
type InvitacionResp struct {
	Ok      bool   `json:"ok"`
	Email   string `json:"email,omitempty"`
	Mensaje string `json:"mensaje,omitempty"`
}
