package handler

import (
	"encoding/json"
	"errors"
	"log/slog"
	"net/http"
	"strconv"

	"github.com/staff-admin-api/internal/domain"
	"github.com/staff-admin-api/internal/dto"
	"github.com/staff-admin-api/internal/service"
)

type EmployeeHandler struct {
	empService service.EmployeeService
	logger     *slog.Logger
}

func NewEmployeeHandler(empService service.EmployeeService, logger *slog.Logger) *EmployeeHandler {
	return &EmployeeHandler{
		empService: empService,
		logger:     logger,
	}
}

func (h *EmployeeHandler) List(w http.ResponseWriter, r *http.Request) {
	pageNumber, pageSize := parsePageParams(r)

	page, err := h.empService.List(r.Context(), pageNumber, pageSize)
	if err != nil {
		h.handleServiceError(w, err)
		return
	}

	h.respondJSON(w, http.StatusOK, page)
}

func (h *EmployeeHandler) ListByDepartment(w http.ResponseWriter, r *http.Request) {
	departmentID, _ := strconv.ParseInt(r.URL.Query().Get("department"), 10, 64)
	pageNumber, pageSize := parsePageParams(r)

	page, err := h.empService.ListByDepartment(r.Context(), departmentID, pageNumber, pageSize)
	if err != nil {
		// У фильтра по подразделению собственная форма 404 с ключом message
		if errors.Is(err, domain.ErrDepartmentNotFound) {
			h.respondJSON(w, http.StatusNotFound, dto.MessageResponse{Message: "Department not found."})
			return
		}
		h.handleServiceError(w, err)
		return
	}

	h.respondJSON(w, http.StatusOK, page)
}

func (h *EmployeeHandler) GetByID(w http.ResponseWriter, r *http.Request, id int64) {
	emp, err := h.empService.GetByID(r.Context(), id)
	if err != nil {
		h.handleServiceError(w, err)
		return
	}

	h.respondJSON(w, http.StatusOK, h.toEmployeeResponse(emp))
}

func (h *EmployeeHandler) Create(w http.ResponseWriter, r *http.Request) {
	var req dto.EmployeeRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		h.respondJSON(w, http.StatusBadRequest, dto.ErrorsResponse{Errors: []string{"Invalid request body."}})
		return
	}

	emp, err := h.empService.Create(r.Context(), &req)
	if err != nil {
		h.handleServiceError(w, err)
		return
	}

	h.respondJSON(w, http.StatusOK, h.toEmployeeResponse(emp))
}

func (h *EmployeeHandler) Update(w http.ResponseWriter, r *http.Request, id int64) {
	var req dto.EmployeeRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		h.respondJSON(w, http.StatusBadRequest, dto.ErrorsResponse{Errors: []string{"Invalid request body."}})
		return
	}

	emp, err := h.empService.Update(r.Context(), id, &req)
	if err != nil {
		h.handleServiceError(w, err)
		return
	}

	h.respondJSON(w, http.StatusOK, h.toEmployeeResponse(emp))
}

func (h *EmployeeHandler) Delete(w http.ResponseWriter, r *http.Request, id int64) {
	if err := h.empService.Delete(r.Context(), id); err != nil {
		h.handleServiceError(w, err)
		return
	}

	h.respondJSON(w, http.StatusOK, dto.MessageResponse{Message: "Employee deleted successfully."})
}

func (h *EmployeeHandler) toEmployeeResponse(emp *domain.Employee) dto.EmployeeResponse {
	return dto.EmployeeResponse{
		ID:           emp.ID,
		FirstName:    emp.FirstName,
		LastName:     emp.LastName,
		Salary:       emp.Salary,
		DepartmentID: emp.DepartmentID,
	}
}

func (h *EmployeeHandler) handleServiceError(w http.ResponseWriter, err error) {
	var verr *domain.ValidationError

	switch {
	case errors.As(err, &verr):
		h.respondJSON(w, http.StatusBadRequest, dto.ErrorsResponse{Errors: verr.Messages})
	case errors.Is(err, domain.ErrEmployeeIDMismatch):
		h.respondJSON(w, http.StatusBadRequest, dto.ErrorsResponse{Errors: []string{"Employee ID mismatch."}})
	case errors.Is(err, domain.ErrEmployeeNotFound):
		h.respondJSON(w, http.StatusNotFound, dto.ErrorsResponse{Errors: []string{"Employee not found."}})
	default:
		h.logger.Error("internal error", slog.Any("error", err))
		h.respondJSON(w, http.StatusInternalServerError, dto.ErrorResponse{Error: "internal server error"})
	}
}

func (h *EmployeeHandler) respondJSON(w http.ResponseWriter, status int, data any) {
	w.WriteHeader(status)
	if err := json.NewEncoder(w).Encode(data); err != nil {
		h.logger.Error("failed to encode response", slog.Any("error", err))
	}
}

// parsePageParams читает pageNumber и pageSize из строки запроса;
// отсутствующие или некорректные значения нормализует сервис
func parsePageParams(r *http.Request) (int, int) {
	pageNumber, _ := strconv.Atoi(r.URL.Query().Get("pageNumber"))
	pageSize, _ := strconv.Atoi(r.URL.Query().Get("pageSize"))
	return pageNumber, pageSize
}
