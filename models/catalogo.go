package models

// TipoDocumento describe una entrada del catálogo fijo de soportes del candidato.
// Requerido controla el aviso de faltantes; Unico es consultivo (la UI advierte
// duplicados pero el core no los rechaza).
type TipoDocumento struct {
	Clave     string `json:"clave"`
	Etiqueta  string `json:"etiqueta"`
	Requerido bool   `json:"requerido"`
	Unico     bool   `json:"unico"`
}

// CatalogoDocumentos es el catálogo de tipos de soporte aceptados, en el orden
// en que se presentan al candidato.
var CatalogoDocumentos = []TipoDocumento{
	{Clave: "CC_FRENTE", Etiqueta: "Cédula – Frente", Requerido: true, Unico: true},
	{Clave: "CC_DORSO", Etiqueta: "Cédula – Dorso", Requerido: true, Unico: true},
	{Clave: "FOTO", Etiqueta: "Foto tipo documento", Unico: true},
	{Clave: "HOJA_VIDA", Etiqueta: "Hoja de vida", Unico: true},
	{Clave: "RUT", Etiqueta: "RUT", Unico: true},
	{Clave: "RECIBO_SERVICIO", Etiqueta: "Recibo de servicio (dirección)", Unico: true},
	{Clave: "ANTECEDENTES_PEN", Etiqueta: "Certificado antecedentes (PNAL)", Unico: true},
	{Clave: "PROCURADURIA", Etiqueta: "Certificado Procuraduría", Unico: true},
	{Clave: "CONTRALORIA", Etiqueta: "Certificado Contraloría", Unico: true},
	{Clave: "OTRO", Etiqueta: "Otro soporte"},
}

// TipoDocumentoValido indica si la clave existe en el catálogo.
func TipoDocumentoValido(clave string) bool {
	for _, t := range CatalogoDocumentos {
		if t.Clave == clave {
			return true
		}
	}
	return false
}
