package handlers

import (
	"errors"
	"log/slog"
	"net/http"

	"cardoctor/pkg/carservice"

	"github.com/gorilla/mux"
)

type ServiceHandler struct {
	Repo   carservice.Repository
	Logger *slog.Logger
}

func NewServiceHandler(repo carservice.Repository, logger *slog.Logger) *ServiceHandler {
	return &ServiceHandler{
		Repo:   repo,
		Logger: logger,
	}
}

func (h *ServiceHandler) GetAllServices(w http.ResponseWriter, r *http.Request) {
	services, err := h.Repo.GetAll(r.Context())
	if err != nil {
		writeStorageError(w, h.Logger, "GetAllServices", err)
		return
	}

	writeJSON(w, h.Logger, services)
}

func (h *ServiceHandler) GetServiceByID(w http.ResponseWriter, r *http.Request) {
	id, ok := mux.Vars(r)[muxVarID]
	if !ok || len(id) != lenID {
		writeError(w, http.StatusBadRequest, typeMessage, "invalid service id")
		return
	}

	service, err := h.Repo.GetByID(r.Context(), id)
	switch {
	case errors.Is(err, carservice.ErrInvalidID):
		writeError(w, http.StatusBadRequest, typeMessage, "invalid service id")
		return
	case errors.Is(err, carservice.ErrNotFound):
		writeError(w, http.StatusNotFound, typeMessage, err.Error())
		return
	case err != nil:
		writeStorageError(w, h.Logger, "GetServiceByID", err)
		return
	}

	writeJSON(w, h.Logger, service)
}
