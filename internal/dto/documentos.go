package dto

import (
	"github.com/LeitoBarrera/estudios_mid/models"
)

// DocumentosEstado agrupa los soportes del candidato junto con los tipos
// requeridos que aún faltan y los tipos únicos repetidos, calculados contra el
// catálogo fijo. Duplicados es consultivo: el core no los rechaza.
type DocumentosEstado struct {
	Documentos []models.Documento     `json:"documentos"`
	Catalogo   []models.TipoDocumento `json:"catalogo"`
	Faltantes  []models.TipoDocumento `json:"faltantes"`
	Duplicados []models.TipoDocumento `json:"duplicados"`
}
