package dto

import (
	"github.com/staff-admin-api/internal/domain"
)

// EmployeeRequest - тело запроса на создание/обновление сотрудника
type EmployeeRequest struct {
	ID           int64   `json:"id"`
	FirstName    string  `json:"firstName" validate:"notblank"`
	LastName     string  `json:"lastName" validate:"notblank"`
	Salary       float64 `json:"salary" validate:"gt=0"`
	DepartmentID *int64  `json:"departmentId"`
}

// DepartmentRequest - тело запроса на создание/обновление подразделения
type DepartmentRequest struct {
	ID     int64  `json:"id"`
	Name   string `json:"name" validate:"notblank"`
	Code   string `json:"code" validate:"notblank"`
	HeadID *int64 `json:"headId"`
}

// EmployeeResponse - сотрудник как он хранится, без вычисляемых полей
type EmployeeResponse struct {
	ID           int64   `json:"id"`
	FirstName    string  `json:"firstName"`
	LastName     string  `json:"lastName"`
	Salary       float64 `json:"salary"`
	DepartmentID *int64  `json:"departmentId"`
}

// DepartmentResponse - подразделение как оно хранится, без вычисляемых полей
type DepartmentResponse struct {
	ID     int64  `json:"id"`
	Name   string `json:"name"`
	Code   string `json:"code"`
	HeadID *int64 `json:"headId"`
}

// EmployeePageResponse - страница общего списка сотрудников
type EmployeePageResponse struct {
	TotalRecords int64                    `json:"totalRecords"`
	PageNumber   int                      `json:"pageNumber"`
	PageSize     int                      `json:"pageSize"`
	TotalPages   int                      `json:"totalPages"`
	Data         []domain.EmployeeListRow `json:"data"`
}

// EmployeesByDepartmentResponse - страница списка сотрудников подразделения.
// Набор и имена ключей отличаются от общего списка (totalCount вместо
// totalRecords) - это наблюдаемое поведение API, не унифицировать
type EmployeesByDepartmentResponse struct {
	Data       []domain.EmployeeListRow `json:"data"`
	PageNumber int                      `json:"pageNumber"`
	PageSize   int                      `json:"pageSize"`
	TotalPages int                      `json:"totalPages"`
	TotalCount int64                    `json:"totalCount"`
}

// DepartmentPageResponse - страница списка подразделений
type DepartmentPageResponse struct {
	TotalRecords int64                      `json:"totalRecords"`
	PageNumber   int                        `json:"pageNumber"`
	PageSize     int                        `json:"pageSize"`
	TotalPages   int                        `json:"totalPages"`
	Data         []domain.DepartmentListRow `json:"data"`
}

// ErrorsResponse - ответ с накопленными сообщениями об ошибках
type ErrorsResponse struct {
	Errors []string `json:"errors"`
}

// MessageResponse - ответ с одиночным сообщением
type MessageResponse struct {
	Message string `json:"message"`
}

// ErrorResponse - стандартный ответ с внутренней ошибкой
type ErrorResponse struct {
	Error string `json:"error"`
}
