package httpx

import (
	"encoding/json"
	"net/http"
)

func writeJSON(w http.ResponseWriter, code int, v any) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(code)
	_ = json.NewEncoder(w).Encode(v)
}

type dataResponse struct {
	Success bool `json:"success"`
	Data    any  `json:"data"`
}

type listResponse struct {
	Success bool `json:"success"`
	Data    any  `json:"data"`
	Count   int  `json:"count"`
}

type errorResponse struct {
	Success bool   `json:"success"`
	Message string `json:"message"`
}

func ok(w http.ResponseWriter, data any) {
	writeJSON(w, http.StatusOK, dataResponse{Success: true, Data: data})
}

func created(w http.ResponseWriter, data any) {
	writeJSON(w, http.StatusCreated, dataResponse{Success: true, Data: data})
}

func okList(w http.ResponseWriter, data any, count int) {
	writeJSON(w, http.StatusOK, listResponse{Success: true, Data: data, Count: count})
}

func fail(w http.ResponseWriter, code int, message string) {
	writeJSON(w, code, errorResponse{Success: false, Message: message})
}
