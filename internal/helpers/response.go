package helpers

import (
	"net/http"

	internaldto "github.com/LeitoBarrera/estudios_mid/internal/dto"
	"github.com/LeitoBarrera/estudios_mid/models/requestresponse"
)

// Ok construye la respuesta estándar exitosa con el status indicado.
func Ok(status int, message string, data interface{}) internaldto.APIResponseDTO {
	if status <= 0 {
		status = http.StatusOK
	}
	return requestresponse.NewSuccess(status, message, data)
}

// Fail construye la respuesta estándar de error.
func Fail(status int, message string) internaldto.APIResponseDTO {
	if status <= 0 {
		status = http.StatusInternalServerError
	}
	return requestresponse.NewError(status, message, nil)
}
