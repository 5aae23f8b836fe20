package service

import (
	"context"

	"github.com/go-playground/validator/v10"
	"github.com/staff-admin-api/internal/domain"
	"github.com/staff-admin-api/internal/dto"
	"github.com/staff-admin-api/internal/pagination"
	"github.com/staff-admin-api/internal/repository"
)

// Размеры страниц заданы отдельными константами на операцию:
// общий список и список по подразделению используют разные
// значения по умолчанию, и эта асимметрия видна снаружи
const (
	employeeListDefaultPageSize          = 10
	employeesByDepartmentDefaultPageSize = 5
)

// EmployeeService определяет интерфейс бизнес-логики для сотрудников
type EmployeeService interface {
	List(ctx context.Context, pageNumber, pageSize int) (*dto.EmployeePageResponse, error)
	ListByDepartment(ctx context.Context, departmentID int64, pageNumber, pageSize int) (*dto.EmployeesByDepartmentResponse, error)
	GetByID(ctx context.Context, id int64) (*domain.Employee, error)
	Create(ctx context.Context, req *dto.EmployeeRequest) (*domain.Employee, error)
	Update(ctx context.Context, id int64, req *dto.EmployeeRequest) (*domain.Employee, error)
	Delete(ctx context.Context, id int64) error
}

type employeeService struct {
	empRepo  repository.EmployeeRepository
	deptRepo repository.DepartmentRepository
	validate *validator.Validate
}

// NewEmployeeService создаёт новый экземпляр сервиса
func NewEmployeeService(empRepo repository.EmployeeRepository, deptRepo repository.DepartmentRepository) EmployeeService {
	return &employeeService{
		empRepo:  empRepo,
		deptRepo: deptRepo,
		validate: newRequestValidator(),
	}
}

func (s *employeeService) List(ctx context.Context, pageNumber, pageSize int) (*dto.EmployeePageResponse, error) {
	p := pagination.Normalize(pageNumber, pageSize, employeeListDefaultPageSize)

	rows, total, err := s.empRepo.List(ctx, p)
	if err != nil {
		return nil, err
	}

	return &dto.EmployeePageResponse{
		TotalRecords: total,
		PageNumber:   p.Number,
		PageSize:     p.Size,
		TotalPages:   pagination.TotalPages(total, p.Size),
		Data:         rows,
	}, nil
}

func (s *employeeService) ListByDepartment(ctx context.Context, departmentID int64, pageNumber, pageSize int) (*dto.EmployeesByDepartmentResponse, error) {
	exists, err := s.deptRepo.Exists(ctx, departmentID)
	if err != nil {
		return nil, err
	}
	if !exists {
		return nil, domain.ErrDepartmentNotFound
	}

	p := pagination.Normalize(pageNumber, pageSize, employeesByDepartmentDefaultPageSize)

	rows, total, err := s.empRepo.ListByDepartment(ctx, departmentID, p)
	if err != nil {
		return nil, err
	}

	return &dto.EmployeesByDepartmentResponse{
		Data:       rows,
		PageNumber: p.Number,
		PageSize:   p.Size,
		TotalPages: pagination.TotalPages(total, p.Size),
		TotalCount: total,
	}, nil
}

func (s *employeeService) GetByID(ctx context.Context, id int64) (*domain.Employee, error) {
	return s.empRepo.GetByID(ctx, id)
}

func (s *employeeService) Create(ctx context.Context, req *dto.EmployeeRequest) (*domain.Employee, error) {
	errs, err := s.collectValidationErrors(ctx, req)
	if err != nil {
		return nil, err
	}
	if len(errs) > 0 {
		return nil, &domain.ValidationError{Messages: errs}
	}

	emp := &domain.Employee{
		FirstName:    req.FirstName,
		LastName:     req.LastName,
		Salary:       req.Salary,
		DepartmentID: req.DepartmentID,
	}

	if err := s.empRepo.Create(ctx, emp); err != nil {
		return nil, err
	}

	return emp, nil
}

func (s *employeeService) Update(ctx context.Context, id int64, req *dto.EmployeeRequest) (*domain.Employee, error) {
	// Несовпадение идентификаторов проверяется до валидации полей
	if id != req.ID {
		return nil, domain.ErrEmployeeIDMismatch
	}

	errs, err := s.collectValidationErrors(ctx, req)
	if err != nil {
		return nil, err
	}
	if len(errs) > 0 {
		return nil, &domain.ValidationError{Messages: errs}
	}

	emp, err := s.empRepo.GetByID(ctx, id)
	if err != nil {
		return nil, err
	}

	emp.FirstName = req.FirstName
	emp.LastName = req.LastName
	emp.DepartmentID = req.DepartmentID
	emp.Salary = req.Salary

	if err := s.empRepo.Update(ctx, emp); err != nil {
		return nil, err
	}

	return emp, nil
}

func (s *employeeService) Delete(ctx context.Context, id int64) error {
	_, err := s.empRepo.GetByID(ctx, id)
	if err != nil {
		return err
	}

	return s.empRepo.Delete(ctx, id)
}

// collectValidationErrors выполняет все проверки и накапливает сообщения;
// порядок сообщений фиксирован и не зависит от порядка срабатывания правил
func (s *employeeService) collectValidationErrors(ctx context.Context, req *dto.EmployeeRequest) ([]string, error) {
	failed := failedFields(s.validate, req)

	var errs []string
	if failed["FirstName"] {
		errs = append(errs, "First Name is required.")
	}
	if failed["LastName"] {
		errs = append(errs, "Last Name is required.")
	}
	if req.DepartmentID != nil && *req.DepartmentID == 0 {
		errs = append(errs, "Please select a Department.")
	}
	if failed["Salary"] {
		errs = append(errs, "Salary must be greater than 0.")
	}

	// Проверка существования выполняется всегда, в том числе когда
	// подразделение не задано: отсутствие ссылки считается ошибкой
	exists := false
	if req.DepartmentID != nil {
		var err error
		exists, err = s.deptRepo.Exists(ctx, *req.DepartmentID)
		if err != nil {
			return nil, err
		}
	}
	if !exists {
		errs = append(errs, "Selected Department does not exist.")
	}

	return errs, nil
}
