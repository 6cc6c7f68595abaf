package handlers

import (
	"net/http"

	"github.com/baechuer/mail-relay/internal/transport/http/dto"
	"github.com/baechuer/mail-relay/internal/transport/http/response"
)

type HealthHandler struct{}

func NewHealthHandler() *HealthHandler { return &HealthHandler{} }

func (h *HealthHandler) Health(w http.ResponseWriter, r *http.Request) {
	response.JSON(w, r, http.StatusOK, dto.HealthResponse{
		Status:  "UP",
		Message: "Service is running",
	})
}
