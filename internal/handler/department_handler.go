package handler

import (
	"encoding/json"
	"errors"
	"log/slog"
	"net/http"

	"github.com/staff-admin-api/internal/domain"
	"github.com/staff-admin-api/internal/dto"
	"github.com/staff-admin-api/internal/service"
)

type DepartmentHandler struct {
	deptService service.DepartmentService
	logger      *slog.Logger
}

func NewDepartmentHandler(deptService service.DepartmentService, logger *slog.Logger) *DepartmentHandler {
	return &DepartmentHandler{
		deptService: deptService,
		logger:      logger,
	}
}

func (h *DepartmentHandler) List(w http.ResponseWriter, r *http.Request) {
	pageNumber, pageSize := parsePageParams(r)

	page, err := h.deptService.List(r.Context(), pageNumber, pageSize)
	if err != nil {
		h.handleServiceError(w, err)
		return
	}

	h.respondJSON(w, http.StatusOK, page)
}

func (h *DepartmentHandler) ListAll(w http.ResponseWriter, r *http.Request) {
	depts, err := h.deptService.ListAll(r.Context())
	if err != nil {
		h.handleServiceError(w, err)
		return
	}

	resp := make([]dto.DepartmentResponse, 0, len(depts))
	for i := range depts {
		resp = append(resp, h.toDepartmentResponse(&depts[i]))
	}

	h.respondJSON(w, http.StatusOK, resp)
}

func (h *DepartmentHandler) GetByID(w http.ResponseWriter, r *http.Request, id int64) {
	dept, err := h.deptService.GetByID(r.Context(), id)
	if err != nil {
		h.handleServiceError(w, err)
		return
	}

	h.respondJSON(w, http.StatusOK, h.toDepartmentResponse(dept))
}

func (h *DepartmentHandler) Create(w http.ResponseWriter, r *http.Request) {
	var req dto.DepartmentRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		h.respondJSON(w, http.StatusBadRequest, dto.ErrorsResponse{Errors: []string{"Invalid request body."}})
		return
	}

	dept, err := h.deptService.Create(r.Context(), &req)
	if err != nil {
		h.handleServiceError(w, err)
		return
	}

	h.respondJSON(w, http.StatusOK, h.toDepartmentResponse(dept))
}

func (h *DepartmentHandler) Update(w http.ResponseWriter, r *http.Request, id int64) {
	var req dto.DepartmentRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		h.respondJSON(w, http.StatusBadRequest, dto.ErrorsResponse{Errors: []string{"Invalid request body."}})
		return
	}

	dept, err := h.deptService.Update(r.Context(), id, &req)
	if err != nil {
		h.handleServiceError(w, err)
		return
	}

	h.respondJSON(w, http.StatusOK, h.toDepartmentResponse(dept))
}

func (h *DepartmentHandler) Delete(w http.ResponseWriter, r *http.Request, id int64) {
	if err := h.deptService.Delete(r.Context(), id); err != nil {
		h.handleServiceError(w, err)
		return
	}

	h.respondJSON(w, http.StatusOK, dto.MessageResponse{Message: "Department deleted successfully."})
}

func (h *DepartmentHandler) toDepartmentResponse(dept *domain.Department) dto.DepartmentResponse {
	return dto.DepartmentResponse{
		ID:     dept.ID,
		Name:   dept.Name,
		Code:   dept.Code,
		HeadID: dept.HeadID,
	}
}

// handleServiceError переводит ошибки сервиса в ответы API.
// ErrDepartmentUpdateConflict здесь сознательно не перехватывается
// и уходит в ветку по умолчанию как внутренняя ошибка
func (h *DepartmentHandler) handleServiceError(w http.ResponseWriter, err error) {
	var verr *domain.ValidationError

	switch {
	case errors.As(err, &verr):
		h.respondJSON(w, http.StatusBadRequest, dto.ErrorsResponse{Errors: verr.Messages})
	case errors.Is(err, domain.ErrDepartmentNotFound):
		h.respondJSON(w, http.StatusNotFound, dto.ErrorsResponse{Errors: []string{"Department not found."}})
	default:
		h.logger.Error("internal error", slog.Any("error", err))
		h.respondJSON(w, http.StatusInternalServerError, dto.ErrorResponse{Error: "internal server error"})
	}
}

func (h *DepartmentHandler) respondJSON(w http.ResponseWriter, status int, data any) {
	w.WriteHeader(status)
	if err := json.NewEncoder(w).Encode(data); err != nil {
		h.logger.Error("failed to encode response", slog.Any("error", err))
	}
}
