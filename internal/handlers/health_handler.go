package handlers

import (
	"net/http"

	"github.com/redis/go-redis/v9"
)

type HealthHandler struct {
	rdb *redis.Client
}

func NewHealthHandler(rdb *redis.Client) *HealthHandler {
	return &HealthHandler{rdb: rdb}
}

func (handler *HealthHandler) HealthzHandler(writer http.ResponseWriter, request *http.Request) {
	writer.WriteHeader(http.StatusOK)
	writer.Write([]byte("ok"))
}

// ReadyzHandler verifies the store connection.
func (handler *HealthHandler) ReadyzHandler(writer http.ResponseWriter, request *http.Request) {
	if handler.rdb != nil {
		if err := handler.rdb.Ping(request.Context()).Err(); err != nil {
			writer.WriteHeader(http.StatusServiceUnavailable)
			writer.Write([]byte("store unavailable"))
			return
		}
	}
	writer.WriteHeader(http.StatusOK)
	writer.Write([]byte("ready"))
}
