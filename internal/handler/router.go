package handler

import (
	"log/slog"
	"net/http"
	"strconv"
	"strings"

	"github.com/staff-admin-api/internal/middleware"
)

// Router настраивает маршруты API
type Router struct {
	mux         *http.ServeMux
	logger      *slog.Logger
	empHandler  *EmployeeHandler
	deptHandler *DepartmentHandler
}

// NewRouter создаёт новый роутер
func NewRouter(empHandler *EmployeeHandler, deptHandler *DepartmentHandler, logger *slog.Logger) *Router {
	return &Router{
		mux:         http.NewServeMux(),
		logger:      logger,
		empHandler:  empHandler,
		deptHandler: deptHandler,
	}
}

// Setup настраивает все маршруты
func (r *Router) Setup() http.Handler {
	// Страницы-заглушки (не API)
	r.mux.HandleFunc("/employees", r.employeesView)
	r.mux.HandleFunc("/departments", r.departmentsView)

	// API-маршруты: точное совпадение - список, остальное - суброутеры
	r.mux.HandleFunc("/api/employees", r.exactGet(r.empHandler.List))
	r.mux.HandleFunc("/api/employees/", r.employeesRouter)
	r.mux.HandleFunc("/api/departments", r.exactGet(r.deptHandler.List))
	r.mux.HandleFunc("/api/departments/", r.departmentsRouter)

	// Health check
	r.mux.HandleFunc("/health", func(w http.ResponseWriter, req *http.Request) {
		w.WriteHeader(http.StatusOK)
		w.Write([]byte(`{"status":"ok"}`))
	})

	// Применяем middleware
	handler := middleware.ContentType(r.mux)
	handler = middleware.Logger(r.logger)(handler)
	handler = middleware.Recoverer(r.logger)(handler)

	return handler
}

// employeesRouter обрабатывает все запросы к /api/employees/
func (r *Router) employeesRouter(w http.ResponseWriter, req *http.Request) {
	path := strings.TrimPrefix(req.URL.Path, "/api/employees")
	path = strings.Trim(path, "/")
	parts := strings.Split(path, "/")

	switch {
	// GET /api/employees/by-department?department=&pageNumber=&pageSize=
	case len(parts) == 1 && parts[0] == "by-department":
		if req.Method != http.MethodGet {
			methodNotAllowed(w)
			return
		}
		r.empHandler.ListByDepartment(w, req)

	// POST /api/employees/add
	case len(parts) == 1 && parts[0] == "add":
		if req.Method != http.MethodPost {
			methodNotAllowed(w)
			return
		}
		r.empHandler.Create(w, req)

	// PUT /api/employees/edit/{id}
	case len(parts) == 2 && parts[0] == "edit":
		if req.Method != http.MethodPut {
			methodNotAllowed(w)
			return
		}
		id, err := parseID(parts[1])
		if err != nil {
			notFound(w)
			return
		}
		r.empHandler.Update(w, req, id)

	// DELETE /api/employees/delete/{id}
	case len(parts) == 2 && parts[0] == "delete":
		if req.Method != http.MethodDelete {
			methodNotAllowed(w)
			return
		}
		id, err := parseID(parts[1])
		if err != nil {
			notFound(w)
			return
		}
		r.empHandler.Delete(w, req, id)

	// GET /api/employees/{id}
	case len(parts) == 1 && parts[0] != "":
		id, err := parseID(parts[0])
		if err != nil {
			notFound(w)
			return
		}
		if req.Method != http.MethodGet {
			methodNotAllowed(w)
			return
		}
		r.empHandler.GetByID(w, req, id)

	default:
		notFound(w)
	}
}

// departmentsRouter обрабатывает все запросы к /api/departments/
func (r *Router) departmentsRouter(w http.ResponseWriter, req *http.Request) {
	path := strings.TrimPrefix(req.URL.Path, "/api/departments")
	path = strings.Trim(path, "/")
	parts := strings.Split(path, "/")

	switch {
	// GET /api/departments/all - полный список без пагинации
	case len(parts) == 1 && parts[0] == "all":
		if req.Method != http.MethodGet {
			methodNotAllowed(w)
			return
		}
		r.deptHandler.ListAll(w, req)

	// POST /api/departments/add
	case len(parts) == 1 && parts[0] == "add":
		if req.Method != http.MethodPost {
			methodNotAllowed(w)
			return
		}
		r.deptHandler.Create(w, req)

	// PUT /api/departments/edit/{id}
	case len(parts) == 2 && parts[0] == "edit":
		if req.Method != http.MethodPut {
			methodNotAllowed(w)
			return
		}
		id, err := parseID(parts[1])
		if err != nil {
			notFound(w)
			return
		}
		r.deptHandler.Update(w, req, id)

	// DELETE /api/departments/delete/{id}
	case len(parts) == 2 && parts[0] == "delete":
		if req.Method != http.MethodDelete {
			methodNotAllowed(w)
			return
		}
		id, err := parseID(parts[1])
		if err != nil {
			notFound(w)
			return
		}
		r.deptHandler.Delete(w, req, id)

	// GET /api/departments/{id}
	case len(parts) == 1 && parts[0] != "":
		id, err := parseID(parts[0])
		if err != nil {
			notFound(w)
			return
		}
		if req.Method != http.MethodGet {
			methodNotAllowed(w)
			return
		}
		r.deptHandler.GetByID(w, req, id)

	default:
		notFound(w)
	}
}

func (r *Router) exactGet(fn http.HandlerFunc) http.HandlerFunc {
	return func(w http.ResponseWriter, req *http.Request) {
		if req.Method != http.MethodGet {
			methodNotAllowed(w)
			return
		}
		fn(w, req)
	}
}

func parseID(s string) (int64, error) {
	return strconv.ParseInt(s, 10, 64)
}

func notFound(w http.ResponseWriter) {
	http.Error(w, `{"error":"not found"}`, http.StatusNotFound)
}

func methodNotAllowed(w http.ResponseWriter) {
	http.Error(w, `{"error":"method not allowed"}`, http.StatusMethodNotAllowed)
}
