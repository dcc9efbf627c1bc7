package controllers

import (
	"net/http"
	"net/url"
	"strings"
)

const maxMemoriaForm = 32 << 20

// esMultipart detecta si la petición trae archivo adjunto. El contrato con los
// clientes es el mismo que con el core: JSON plano sin archivo, multipart con él.
func esMultipart(r *http.Request) bool {
	return strings.HasPrefix(r.Header.Get("Content-Type"), "multipart/form-data")
}

// valoresForm parsea el multipart y devuelve los campos de texto.
func valoresForm(r *http.Request) (url.Values, error) {
	if r.MultipartForm == nil {
		if err := r.ParseMultipartForm(maxMemoriaForm); err != nil {
			return nil, err
		}
	}
	values := url.Values{}
	if r.MultipartForm != nil {
		for k, v := range r.MultipartForm.Value {
			values[k] = v
		}
	}
	return values, nil
}

// strPtr devuelve el valor del campo solo si vino en el formulario.
func strPtr(values url.Values, key string) *string {
	if _, ok := values[key]; !ok {
		return nil
	}
	v := values.Get(key)
	return &v
}

// boolPtr interpreta los booleanos del formulario ("true"/"false"/"1"/"0").
func boolPtr(values url.Values, key string) *bool {
	if _, ok := values[key]; !ok {
		return nil
	}
	v := strings.ToLower(strings.TrimSpace(values.Get(key)))
	b := v == "true" || v == "1" || v == "si"
	return &b
}
