package dto

import (
	"fmt"
	"strconv"
)

// Cargas útiles tipadas de los registros académicos y laborales. El conjunto de
// campos admitidos difiere entre crear y actualizar: el update nunca reenvía la
// llave foránea al estudio.

// AcademicoReq es la carga útil de un registro académico.
type AcademicoReq struct {
	Titulo           *string `json:"titulo,omitempty"`
	Institucion      *string `json:"institucion,omitempty"`
	FechaGraduacion  *string `json:"fecha_graduacion,omitempty"`
	Ciudad           *string `json:"ciudad,omitempty"`
	PresentaOriginal *bool   `json:"presenta_original,omitempty"`
	Grado            *string `json:"grado,omitempty"`
	ActaNumero       *string `json:"acta_numero,omitempty"`
	FolioNumero      *string `json:"folio_numero,omitempty"`
	LibroRegistro    *string `json:"libro_registro,omitempty"`
	Rector           *string `json:"rector,omitempty"`
	Secretario       *string `json:"secretario,omitempty"`
	Concepto         *string `json:"concepto,omitempty"`
}

// Payload arma el cuerpo para el core. Con estudioID > 0 incluye la llave al
// estudio (solo en creación); fecha_graduacion vacía viaja como null.
func (r *AcademicoReq) Payload(estudioID int64) map[string]interface{} {
	out := map[string]interface{}{}
	if estudioID > 0 {
		out["estudio"] = estudioID
	}
	putOpt(out, "titulo", r.Titulo)
	putOpt(out, "institucion", r.Institucion)
	putDate(out, "fecha_graduacion", r.FechaGraduacion)
	putOpt(out, "ciudad", r.Ciudad)
	if r.PresentaOriginal != nil {
		out["presenta_original"] = *r.PresentaOriginal
	}
	putOpt(out, "grado", r.Grado)
	putOpt(out, "acta_numero", r.ActaNumero)
	putOpt(out, "folio_numero", r.FolioNumero)
	putOpt(out, "libro_registro", r.LibroRegistro)
	putOpt(out, "rector", r.Rector)
	putOpt(out, "secretario", r.Secretario)
	putOpt(out, "concepto", r.Concepto)
	return out
}

// LaboralReq es la carga útil de una experiencia laboral.
type LaboralReq struct {
	Empresa           *string `json:"empresa,omitempty"`
	Cargo             *string `json:"cargo,omitempty"`
	Telefono          *string `json:"telefono,omitempty"`
	EmailContacto     *string `json:"email_contacto,omitempty"`
	Direccion         *string `json:"direccion,omitempty"`
	Ingreso           *string `json:"ingreso,omitempty"`
	Retiro            *string `json:"retiro,omitempty"`
	MotivoRetiro      *string `json:"motivo_retiro,omitempty"`
	TipoContrato      *string `json:"tipo_contrato,omitempty"`
	JefeInmediato     *string `json:"jefe_inmediato,omitempty"`
	VerificadaCamara  *bool   `json:"verificada_camara,omitempty"`
	VolveriaContratar *bool   `json:"volveria_contratar,omitempty"`
	Concepto          *string `json:"concepto,omitempty"`
}

// Payload arma el cuerpo para el core; ingreso y retiro vacíos viajan como null.
func (r *LaboralReq) Payload(estudioID int64) map[string]interface{} {
	out := map[string]interface{}{}
	if estudioID > 0 {
		out["estudio"] = estudioID
	}
	putOpt(out, "empresa", r.Empresa)
	putOpt(out, "cargo", r.Cargo)
	putOpt(out, "telefono", r.Telefono)
	putOpt(out, "email_contacto", r.EmailContacto)
	putOpt(out, "direccion", r.Direccion)
	putDate(out, "ingreso", r.Ingreso)
	putDate(out, "retiro", r.Retiro)
	putOpt(out, "motivo_retiro", r.MotivoRetiro)
	putOpt(out, "tipo_contrato", r.TipoContrato)
	putOpt(out, "jefe_inmediato", r.JefeInmediato)
	if r.VerificadaCamara != nil {
		out["verificada_camara"] = *r.VerificadaCamara
	}
	if r.VolveriaContratar != nil {
		out["volveria_contratar"] = *r.VolveriaContratar
	}
	putOpt(out, "concepto", r.Concepto)
	return out
}

func putOpt(out map[string]interface{}, key string, v *string) {
	if v != nil {
		out[key] = *v
	}
}

// FormFields aplana un payload a campos multipart. Los null se omiten: en
// multipart no hay forma de expresar null y el core interpreta ausencia.
func FormFields(payload map[string]interface{}) map[string]string {
	fields := make(map[string]string, len(payload))
	for k, v := range payload {
		if v == nil {
			continue
		}
		switch val := v.(type) {
		case string:
			fields[k] = val
		case bool:
			fields[k] = strconv.FormatBool(val)
		case int64:
			fields[k] = strconv.FormatInt(val, 10)
		case int:
			fields[k] = strconv.Itoa(val)
		case float64:
			fields[k] = strconv.FormatFloat(val, 'f', -1, 64)
		default:
			fields[k] = fmt.Sprintf("%v", val)
		}
	}
	return fields
}
