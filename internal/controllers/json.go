package controllers

import (
	"encoding/json"
	"log"
	"net/http"
)

// maxJSONBodyBytes caps request bodies on the JSON API.
const maxJSONBodyBytes = 1 << 20 // 1 MiB

func sendJSON(w http.ResponseWriter, status int, payload any) {
	w.Header().Set("Content-Type", "application/json; charset=utf-8")
	w.WriteHeader(status)
	if err := json.NewEncoder(w).Encode(payload); err != nil {
		log.Printf("Failed to encode JSON response: %v", err)
	}
}

func sendJSONError(w http.ResponseWriter, status int, message string) {
	sendJSON(w, status, map[string]string{"error": message})
}
