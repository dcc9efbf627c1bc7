package store

import (
	"testing"
)

func TestGetSinRegistroDevuelveVacio(t *testing.T) {
	st, err := NewConsentStore(t.TempDir())
	if err != nil {
		t.Fatalf("NewConsentStore: %v", err)
	}
	reg, err := st.Get(42)
	if err != nil {
		t.Fatalf("Get: %v", err)
	}
	if reg.EstudioID != 42 || reg.Habeas || reg.Terminos || reg.FirmaRecibo != "" {
		t.Fatalf("registro inicial inesperado: %+v", reg)
	}
}

func TestPasosPersistenEntreInstancias(t *testing.T) {
	dir := t.TempDir()
	st, err := NewConsentStore(dir)
	if err != nil {
		t.Fatalf("NewConsentStore: %v", err)
	}

	if _, err := st.GuardarFirma(7, "abc123", "PanelWeb/1.0"); err != nil {
		t.Fatalf("GuardarFirma: %v", err)
	}
	if _, err := st.AceptarHabeas(7); err != nil {
		t.Fatalf("AceptarHabeas: %v", err)
	}
	if _, err := st.AceptarTerminos(7); err != nil {
		t.Fatalf("AceptarTerminos: %v", err)
	}

	// Reabrir simula un reinicio del proceso.
	st2, err := NewConsentStore(dir)
	if err != nil {
		t.Fatalf("NewConsentStore: %v", err)
	}
	reg, err := st2.Get(7)
	if err != nil {
		t.Fatalf("Get: %v", err)
	}
	if reg.FirmaRecibo != "abc123" || !reg.Habeas || !reg.Terminos {
		t.Fatalf("registro no persistió: %+v", reg)
	}
	if reg.UserAgent != "PanelWeb/1.0" {
		t.Fatalf("user agent no persistió: %+v", reg)
	}
	if reg.FirmaFecha == nil || reg.HabeasFecha == nil || reg.TerminosFecha == nil {
		t.Fatalf("faltan fechas: %+v", reg)
	}
}

func TestRegistrosIndependientesPorEstudio(t *testing.T) {
	st, err := NewConsentStore(t.TempDir())
	if err != nil {
		t.Fatalf("NewConsentStore: %v", err)
	}
	if _, err := st.AceptarHabeas(1); err != nil {
		t.Fatalf("AceptarHabeas: %v", err)
	}
	reg, err := st.Get(2)
	if err != nil {
		t.Fatalf("Get: %v", err)
	}
	if reg.Habeas {
		t.Fatalf("el estudio 2 no debería verse afectado")
	}
}
