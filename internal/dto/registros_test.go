package dto

import "testing"

func strp(s string) *string { return &s }
func boolp(b bool) *bool    { return &b }

func TestAcademicoPayloadCreacionIncluyeEstudio(t *testing.T) {
	req := AcademicoReq{
		Titulo:      strp("Ingeniería"),
		Institucion: strp("U. Distrital"),
	}
	payload := req.Payload(42)
	if payload["estudio"] != int64(42) {
		t.Fatalf("estudio = %v", payload["estudio"])
	}
	if payload["titulo"] != "Ingeniería" {
		t.Fatalf("titulo = %v", payload["titulo"])
	}
}

func TestAcademicoPayloadUpdateExcluyeEstudio(t *testing.T) {
	req := AcademicoReq{Titulo: strp("Ingeniería")}
	payload := req.Payload(0)
	if _, ok := payload["estudio"]; ok {
		t.Fatalf("el update no debe reenviar la llave al estudio")
	}
}

func TestAcademicoPayloadFechaVaciaEsNull(t *testing.T) {
	req := AcademicoReq{FechaGraduacion: strp("")}
	payload := req.Payload(0)
	v, ok := payload["fecha_graduacion"]
	if !ok {
		t.Fatalf("fecha_graduacion debe viajar para poder limpiarse")
	}
	if v != nil {
		t.Fatalf("fecha_graduacion = %v, quiere null", v)
	}
}

func TestAcademicoPayloadOmiteCamposAusentes(t *testing.T) {
	req := AcademicoReq{Titulo: strp("X")}
	payload := req.Payload(0)
	if _, ok := payload["concepto"]; ok {
		t.Fatalf("concepto no vino y no debe viajar")
	}
	if len(payload) != 1 {
		t.Fatalf("payload = %v", payload)
	}
}

func TestLaboralPayloadFechas(t *testing.T) {
	req := LaboralReq{
		Empresa: strp("Acme"),
		Ingreso: strp("2023-01-10"),
		Retiro:  strp(""),
	}
	payload := req.Payload(9)
	if payload["ingreso"] != "2023-01-10" {
		t.Fatalf("ingreso = %v", payload["ingreso"])
	}
	if v, ok := payload["retiro"]; !ok || v != nil {
		t.Fatalf("retiro = %v (presente=%v), quiere null explícito", v, ok)
	}
	if payload["estudio"] != int64(9) {
		t.Fatalf("estudio = %v", payload["estudio"])
	}
}

func TestLaboralPayloadBooleanos(t *testing.T) {
	req := LaboralReq{
		VerificadaCamara:  boolp(true),
		VolveriaContratar: boolp(false),
	}
	payload := req.Payload(0)
	if payload["verificada_camara"] != true {
		t.Fatalf("verificada_camara = %v", payload["verificada_camara"])
	}
	if payload["volveria_contratar"] != false {
		t.Fatalf("volveria_contratar = %v", payload["volveria_contratar"])
	}
}

func TestFormFieldsOmiteNulls(t *testing.T) {
	payload := map[string]interface{}{
		"titulo":           "X",
		"fecha_graduacion": nil,
		"estudio":          int64(42),
		"presenta":         true,
	}
	fields := FormFields(payload)
	if _, ok := fields["fecha_graduacion"]; ok {
		t.Fatalf("null no tiene representación multipart y debe omitirse")
	}
	if fields["estudio"] != "42" || fields["titulo"] != "X" || fields["presenta"] != "true" {
		t.Fatalf("fields = %v", fields)
	}
}

func TestCandidatoBioPatchFechasYOmitidos(t *testing.T) {
	patch := CandidatoBioPatch{
		Nombre:          strp("Ana"),
		FechaNacimiento: strp(""),
	}
	payload := patch.Payload()
	if payload["nombre"] != "Ana" {
		t.Fatalf("nombre = %v", payload["nombre"])
	}
	if v, ok := payload["fecha_nacimiento"]; !ok || v != nil {
		t.Fatalf("fecha_nacimiento = %v (presente=%v), quiere null", v, ok)
	}
	if _, ok := payload["email"]; ok {
		t.Fatalf("email no vino y no debe viajar")
	}
}
