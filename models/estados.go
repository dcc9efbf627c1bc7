package models

// Roles de usuario entregados por el API core en /api/auth/me/.
const (
	RolAdmin     = "ADMIN"
	RolCliente   = "CLIENTE"
	RolAnalista  = "ANALISTA"
	RolCandidato = "CANDIDATO"
)

// Estados de un ítem de verificación dentro de un estudio.
const (
	EstadoPendiente    = "PENDIENTE"
	EstadoEnValidacion = "EN_VALIDACION"
	EstadoValidado     = "VALIDADO"
	EstadoHallazgo     = "HALLAZGO"
	EstadoCerrado      = "CERRADO"
)

// Tipos de ítem que el core genera para cada estudio.
const (
	ItemListasRestrictivas = "LISTAS_RESTRICTIVAS"
	ItemTitulosAcademicos  = "TITULOS_ACADEMICOS"
	ItemCertLaborales      = "CERT_LABORALES"
	ItemVisitaDomiciliaria = "VISITA_DOMICILIARIA"
)

// Niveles cualitativos calculados por el core según el score del estudio.
const (
	NivelBajo    = "BAJO"
	NivelMedio   = "MEDIO"
	NivelAlto    = "ALTO"
	NivelCritico = "CRITICO"
)

// EsEstadoItem valida que un estado pertenezca a la enumeración conocida.
func EsEstadoItem(s string) bool {
	switch s {
	case EstadoPendiente, EstadoEnValidacion, EstadoValidado, EstadoHallazgo, EstadoCerrado:
		return true
	}
	return false
}

// EsTipoItem valida que un tipo de ítem pertenezca a la enumeración conocida.
func EsTipoItem(s string) bool {
	switch s {
	case ItemListasRestrictivas, ItemTitulosAcademicos, ItemCertLaborales, ItemVisitaDomiciliaria:
		return true
	}
	return false
}
