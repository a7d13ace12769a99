package helpers

import (
	"encoding/json"
	"net/http"

	"pressroom/internal/apperror"
)

type Response struct {
	Data  interface{} `json:"data,omitempty"`
	Error string      `json:"error,omitempty"`
}

func JSON(w http.ResponseWriter, status int, data interface{}) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	err := json.NewEncoder(w).Encode(Response{Data: data, Error: ""})
	if err != nil {
		return
	}
}

func Error(w http.ResponseWriter, status int, errMsg string) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	err := json.NewEncoder(w).Encode(Response{Data: nil, Error: errMsg})
	if err != nil {
		return
	}
}

// Problem отдаёт ошибку доменной таксономии: статус по виду,
// текст провайдера — без правок.
func Problem(w http.ResponseWriter, err error) {
	Error(w, apperror.Status(err), err.Error())
}
