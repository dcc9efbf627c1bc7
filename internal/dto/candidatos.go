package dto

// CandidatoBioPatch es la carga útil tipada del PATCH de hoja de vida. Todo es
// opcional: solo los campos presentes viajan al core. Los campos que el core no
// admite quedan fuera del tipo y por tanto nunca se reenvían.
type CandidatoBioPatch struct {
	Nombre             *string           `json:"nombre,omitempty"`
	Apellido           *string           `json:"apellido,omitempty"`
	Cedula             *string           `json:"cedula,omitempty"`
	Email              *string           `json:"email,omitempty"`
	Celular            *string           `json:"celular,omitempty"`
	CiudadResidencia   *string           `json:"ciudad_residencia,omitempty"`
	TipoDocumento      *string           `json:"tipo_documento,omitempty"`
	FechaNacimiento    *string           `json:"fecha_nacimiento,omitempty"`
	EstaturaCm         *int              `json:"estatura_cm,omitempty"`
	GrupoSanguineo     *string           `json:"grupo_sanguineo,omitempty"`
	Sexo               *string           `json:"sexo,omitempty"`
	FechaExpedicion    *string           `json:"fecha_expedicion,omitempty"`
	Direccion          *string           `json:"direccion,omitempty"`
	Barrio             *string           `json:"barrio,omitempty"`
	DepartamentoID     *string           `json:"departamento_id,omitempty"`
	DepartamentoNombre *string           `json:"departamento_nombre,omitempty"`
	MunicipioID        *string           `json:"municipio_id,omitempty"`
	MunicipioNombre    *string           `json:"municipio_nombre,omitempty"`
	Comuna             *string           `json:"comuna,omitempty"`
	Estrato            *string           `json:"estrato,omitempty"`
	TipoZona           *string           `json:"tipo_zona,omitempty"`
	Telefono           *string           `json:"telefono,omitempty"`
	EPS                *string           `json:"eps,omitempty"`
	CajaCompensacion   *string           `json:"caja_compensacion,omitempty"`
	PensionFondo       *string           `json:"pension_fondo,omitempty"`
	CesantiasFondo     *string           `json:"cesantias_fondo,omitempty"`
	Sisben             *string           `json:"sisben,omitempty"`
	PerfilAspirante    *string           `json:"perfil_aspirante,omitempty"`
	RedesSociales      map[string]string `json:"redes_sociales,omitempty"`
	EstudiaActualmente *bool             `json:"estudia_actualmente,omitempty"`
}

// Payload arma el cuerpo final para el core. Las fechas vacías se envían como
// null explícito para que el campo pueda limpiarse sin que el core rechace el tipo.
func (p *CandidatoBioPatch) Payload() map[string]interface{} {
	out := map[string]interface{}{}
	putStr := func(key string, v *string) {
		if v != nil {
			out[key] = *v
		}
	}
	putStr("nombre", p.Nombre)
	putStr("apellido", p.Apellido)
	putStr("cedula", p.Cedula)
	putStr("email", p.Email)
	putStr("celular", p.Celular)
	putStr("ciudad_residencia", p.CiudadResidencia)
	putStr("tipo_documento", p.TipoDocumento)
	putDate(out, "fecha_nacimiento", p.FechaNacimiento)
	if p.EstaturaCm != nil {
		out["estatura_cm"] = *p.EstaturaCm
	}
	putStr("grupo_sanguineo", p.GrupoSanguineo)
	putStr("sexo", p.Sexo)
	putDate(out, "fecha_expedicion", p.FechaExpedicion)
	putStr("direccion", p.Direccion)
	putStr("barrio", p.Barrio)
	putStr("departamento_id", p.DepartamentoID)
	putStr("departamento_nombre", p.DepartamentoNombre)
	putStr("municipio_id", p.MunicipioID)
	putStr("municipio_nombre", p.MunicipioNombre)
	putStr("comuna", p.Comuna)
	putStr("estrato", p.Estrato)
	putStr("tipo_zona", p.TipoZona)
	putStr("telefono", p.Telefono)
	putStr("eps", p.EPS)
	putStr("caja_compensacion", p.CajaCompensacion)
	putStr("pension_fondo", p.PensionFondo)
	putStr("cesantias_fondo", p.CesantiasFondo)
	putStr("sisben", p.Sisben)
	putStr("perfil_aspirante", p.PerfilAspirante)
	if p.RedesSociales != nil {
		out["redes_sociales"] = p.RedesSociales
	}
	if p.EstudiaActualmente != nil {
		out["estudia_actualmente"] = *p.EstudiaActualmente
	}
	return out
}

// putDate inserta fechas normalizando la cadena vacía a null.
func putDate(out map[string]interface{}, key string, v *string) {
	if v == nil {
		return
	}
	if *v == "" {
		out[key] = nil
		return
	}
	out[key] = *v
}
