// Package httpjson holds the JSON response helpers shared by the handlers.
package httpjson

import (
	"encoding/json"
	"net/http"
)

type errorBody struct {
	Error   string            `json:"error"`
	Details map[string]string `json:"details,omitempty"`
}

func Write(w http.ResponseWriter, status int, v any) {
	w.Header().Set("Content-Type", "application/json; charset=utf-8")
	w.WriteHeader(status)
	_ = json.NewEncoder(w).Encode(v)
}

func Error(w http.ResponseWriter, status int, msg string) {
	Write(w, status, errorBody{Error: msg})
}

// ValidationError reports a 400 with one message per offending field.
func ValidationError(w http.ResponseWriter, msg string, details map[string]string) {
	Write(w, http.StatusBadRequest, errorBody{Error: msg, Details: details})
}

// Decode reads a JSON body into v, rejecting unknown fields.
func Decode(r *http.Request, v any) error {
	dec := json.NewDecoder(r.Body)
	dec.DisallowUnknownFields()
	return dec.Decode(v)
}
