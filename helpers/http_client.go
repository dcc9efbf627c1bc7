// helpers/http_client.go
package helpers

import (
	"bytes"
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"mime/multipart"
	"net/http"
	"strings"
	"time"
)

// Cliente JSON contra el API core. A diferencia de otros MID no hay reintentos:
// toda acción de usuario es terminal y el error se muestra de inmediato; el
// usuario decide si vuelve a intentar.

// HTTPError envuelve códigos de estado no exitosos para permitir un manejo granular.
type HTTPError struct {
	Status int
	Body   string
}

// Error imprime el estado y cuerpo asociado.
func (e *HTTPError) Error() string {
	return fmt.Sprintf("HTTP %d: %s", e.Status, e.Body)
}

// IsHTTPError permite consultar si el error corresponde a un status específico.
func IsHTTPError(err error, status int) bool {
	if err == nil {
		return false
	}
	var he *HTTPError
	if errors.As(err, &he) {
		return he.Status == status
	}
	return false
}

// DoJSON ejecuta method sobre url serializando in (si existe) y decodificando la
// respuesta en out (si se provee). Un 400 con cuerpo JSON se traduce a
// ValidationError; el resto de no-2xx a HTTPError.
func DoJSON(method, url string, headers map[string]string, in, out any, timeout time.Duration) error {
	var reader io.Reader
	if in != nil {
		body, err := json.Marshal(in)
		if err != nil {
			return err
		}
		reader = bytes.NewReader(body)
	}

	req, err := http.NewRequest(method, url, reader)
	if err != nil {
		return err
	}
	if in != nil {
		req.Header.Set("Content-Type", "application/json")
	}
	req.Header.Set("Accept", "application/json")
	for k, v := range headers {
		if v != "" {
			req.Header.Set(k, v)
		}
	}

	client := &http.Client{Timeout: timeout}
	resp, err := client.Do(req)
	if err != nil {
		return err
	}
	defer resp.Body.Close()

	if resp.StatusCode < 200 || resp.StatusCode > 299 {
		return errorFromResponse(resp)
	}

	if out == nil {
		_, _ = io.Copy(io.Discard, resp.Body)
		return nil
	}

	bodyBytes, err := io.ReadAll(resp.Body)
	if err != nil {
		return err
	}
	if len(bodyBytes) == 0 {
		return nil
	}
	return json.Unmarshal(bodyBytes, out)
}

// DoMultipart envía fields + un archivo como multipart/form-data. Se usa solo
// cuando la operación adjunta archivo; sin archivo el contrato es JSON plano.
func DoMultipart(method, url string, headers map[string]string, fields map[string]string, fileField, fileName string, file io.Reader, out any, timeout time.Duration) error {
	var buf bytes.Buffer
	writer := multipart.NewWriter(&buf)
	for k, v := range fields {
		if err := writer.WriteField(k, v); err != nil {
			return err
		}
	}
	if file != nil {
		part, err := writer.CreateFormFile(fileField, fileName)
		if err != nil {
			return err
		}
		if _, err := io.Copy(part, file); err != nil {
			return err
		}
	}
	if err := writer.Close(); err != nil {
		return err
	}

	req, err := http.NewRequest(method, url, &buf)
	if err != nil {
		return err
	}
	req.Header.Set("Content-Type", writer.FormDataContentType())
	req.Header.Set("Accept", "application/json")
	for k, v := range headers {
		if v != "" {
			req.Header.Set(k, v)
		}
	}

	client := &http.Client{Timeout: timeout}
	resp, err := client.Do(req)
	if err != nil {
		return err
	}
	defer resp.Body.Close()

	if resp.StatusCode < 200 || resp.StatusCode > 299 {
		return errorFromResponse(resp)
	}
	if out == nil {
		_, _ = io.Copy(io.Discard, resp.Body)
		return nil
	}
	return json.NewDecoder(resp.Body).Decode(out)
}

// DoBinary descarga un recurso binario (ej. resumen_pdf) y retorna cuerpo y
// content-type para reenviarlos sin interpretar.
func DoBinary(url string, headers map[string]string, timeout time.Duration) ([]byte, string, error) {
	req, err := http.NewRequest(http.MethodGet, url, nil)
	if err != nil {
		return nil, "", err
	}
	for k, v := range headers {
		if v != "" {
			req.Header.Set(k, v)
		}
	}

	client := &http.Client{Timeout: timeout}
	resp, err := client.Do(req)
	if err != nil {
		return nil, "", err
	}
	defer resp.Body.Close()

	if resp.StatusCode < 200 || resp.StatusCode > 299 {
		return nil, "", errorFromResponse(resp)
	}
	body, err := io.ReadAll(resp.Body)
	if err != nil {
		return nil, "", err
	}
	return body, resp.Header.Get("Content-Type"), nil
}

// errorFromResponse distingue errores de validación (400 con mapa campo→mensajes
// o {"detail": ...}) del resto de fallos HTTP.
func errorFromResponse(resp *http.Response) error {
	body, _ := io.ReadAll(resp.Body)
	trimmed := strings.TrimSpace(string(body))

	if resp.StatusCode == http.StatusBadRequest && len(trimmed) > 0 {
		if verr := parseValidationBody([]byte(trimmed)); verr != nil {
			return verr
		}
	}
	return &HTTPError{Status: resp.StatusCode, Body: trimmed}
}

func parseValidationBody(body []byte) *ValidationError {
	var raw map[string]json.RawMessage
	if err := json.Unmarshal(body, &raw); err != nil || len(raw) == 0 {
		return nil
	}

	verr := &ValidationError{Fields: FieldErrors{}}
	for field, msg := range raw {
		if field == "detail" {
			var detail string
			if json.Unmarshal(msg, &detail) == nil {
				verr.Detail = detail
			}
			continue
		}
		var list []string
		if json.Unmarshal(msg, &list) == nil {
			verr.Fields[field] = list
			continue
		}
		var single string
		if json.Unmarshal(msg, &single) == nil {
			verr.Fields[field] = []string{single}
			continue
		}
		// Errores anidados (ej. candidato: {email: [...]}) se aplanan un nivel.
		var nested map[string][]string
		if json.Unmarshal(msg, &nested) == nil {
			for sub, msgs := range nested {
				verr.Fields[field+"."+sub] = msgs
			}
		}
	}
	if verr.Detail == "" && len(verr.Fields) == 0 {
		return nil
	}
	return verr
}
