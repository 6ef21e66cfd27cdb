package handlers

import (
	"encoding/json"
	"net/http"
)

// errorBody is the error envelope: a human-readable message plus the
// opaque underlying detail under "erreur" (original wire contract).
type errorBody struct {
	Message string `json:"message"`
	Erreur  string `json:"erreur,omitempty"`
}

func writeJSON(w http.ResponseWriter, status int, v interface{}) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	json.NewEncoder(w).Encode(v)
}

func writeError(w http.ResponseWriter, status int, message string, err error) {
	body := errorBody{Message: message}
	if err != nil {
		body.Erreur = err.Error()
	}
	writeJSON(w, status, body)
}
