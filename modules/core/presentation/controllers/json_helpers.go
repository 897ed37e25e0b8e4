package controllers

import (
	"encoding/json"
	"net/http"
)

type jsonError struct {
	Code    string            `json:"code"`
	Message string            `json:"message"`
	Meta    map[string]string `json:"meta,omitempty"`
}

func writeJSONError(w http.ResponseWriter, status int, code, message string, meta map[string]string) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	_ = json.NewEncoder(w).Encode(jsonError{
		Code:    code,
		Message: message,
		Meta:    meta,
	})
}
