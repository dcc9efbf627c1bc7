package store

import (
	"encoding/json"
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"strconv"
	"sync"
	"time"
)

// ConsentStore persiste el avance del asistente de consentimiento que el core
// no guarda todavía (habeas data y términos). Un archivo JSON por estudio; el
// mutex serializa las escrituras del proceso.

// RegistroConsentimiento es el estado persistido por estudio.
type RegistroConsentimiento struct {
	EstudioID     int64   `json:"estudio_id"`
	FirmaRecibo   string  `json:"firma_recibo,omitempty"`
	FirmaFecha    *string `json:"firma_fecha,omitempty"`
	UserAgent     string  `json:"user_agent,omitempty"`
	Habeas        bool    `json:"habeas"`
	HabeasFecha   *string `json:"habeas_fecha,omitempty"`
	Terminos      bool    `json:"terminos"`
	TerminosFecha *string `json:"terminos_fecha,omitempty"`
}

type ConsentStore struct {
	dir string
	mu  sync.Mutex
}

// NewConsentStore abre (creando si hace falta) el directorio de registros.
func NewConsentStore(dir string) (*ConsentStore, error) {
	if dir == "" {
		return nil, errors.New("directorio de consentimientos vacío")
	}
	if err := os.MkdirAll(dir, 0o755); err != nil {
		return nil, fmt.Errorf("creando %s: %w", dir, err)
	}
	return &ConsentStore{dir: dir}, nil
}

func (s *ConsentStore) path(estudioID int64) string {
	return filepath.Join(s.dir, strconv.FormatInt(estudioID, 10)+".json")
}

// Get devuelve el registro del estudio; si no existe, uno vacío.
func (s *ConsentStore) Get(estudioID int64) (*RegistroConsentimiento, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.load(estudioID)
}

func (s *ConsentStore) load(estudioID int64) (*RegistroConsentimiento, error) {
	data, err := os.ReadFile(s.path(estudioID))
	if errors.Is(err, os.ErrNotExist) {
		return &RegistroConsentimiento{EstudioID: estudioID}, nil
	}
	if err != nil {
		return nil, err
	}
	var reg RegistroConsentimiento
	if err := json.Unmarshal(data, &reg); err != nil {
		return nil, fmt.Errorf("registro corrupto para estudio %d: %w", estudioID, err)
	}
	reg.EstudioID = estudioID
	return &reg, nil
}

func (s *ConsentStore) save(reg *RegistroConsentimiento) error {
	data, err := json.MarshalIndent(reg, "", "  ")
	if err != nil {
		return err
	}
	tmp := s.path(reg.EstudioID) + ".tmp"
	if err := os.WriteFile(tmp, data, 0o644); err != nil {
		return err
	}
	return os.Rename(tmp, s.path(reg.EstudioID))
}

// GuardarFirma registra el recibo de la firma manuscrita (paso 1) junto con el
// user agent desde el que se firmó.
func (s *ConsentStore) GuardarFirma(estudioID int64, recibo, userAgent string) (*RegistroConsentimiento, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	reg, err := s.load(estudioID)
	if err != nil {
		return nil, err
	}
	ahora := time.Now().UTC().Format(time.RFC3339)
	reg.FirmaRecibo = recibo
	reg.FirmaFecha = &ahora
	reg.UserAgent = userAgent
	if err := s.save(reg); err != nil {
		return nil, err
	}
	return reg, nil
}

// AceptarHabeas registra el paso 2.
func (s *ConsentStore) AceptarHabeas(estudioID int64) (*RegistroConsentimiento, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	reg, err := s.load(estudioID)
	if err != nil {
		return nil, err
	}
	ahora := time.Now().UTC().Format(time.RFC3339)
	reg.Habeas = true
	reg.HabeasFecha = &ahora
	if err := s.save(reg); err != nil {
		return nil, err
	}
	return reg, nil
}

// AceptarTerminos registra el paso 3.
func (s *ConsentStore) AceptarTerminos(estudioID int64) (*RegistroConsentimiento, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	reg, err := s.load(estudioID)
	if err != nil {
		return nil, err
	}
	ahora := time.Now().UTC().Format(time.RFC3339)
	reg.Terminos = true
	reg.TerminosFecha = &ahora
	if err := s.save(reg); err != nil {
		return nil, err
	}
	return reg, nil
}
