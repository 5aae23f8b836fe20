package service

import (
	"context"

	"github.com/go-playground/validator/v10"
	"github.com/staff-admin-api/internal/domain"
	"github.com/staff-admin-api/internal/dto"
	"github.com/staff-admin-api/internal/pagination"
	"github.com/staff-admin-api/internal/repository"
)

const departmentListDefaultPageSize = 10

// DepartmentService определяет интерфейс бизнес-логики для подразделений.
// Create/Update/Delete идут через хранимые процедуры, чтение - через
// обычные запросы
type DepartmentService interface {
	List(ctx context.Context, pageNumber, pageSize int) (*dto.DepartmentPageResponse, error)
	ListAll(ctx context.Context) ([]domain.Department, error)
	GetByID(ctx context.Context, id int64) (*domain.Department, error)
	Create(ctx context.Context, req *dto.DepartmentRequest) (*domain.Department, error)
	Update(ctx context.Context, id int64, req *dto.DepartmentRequest) (*domain.Department, error)
	Delete(ctx context.Context, id int64) error
}

type departmentService struct {
	deptRepo repository.DepartmentRepository
	empRepo  repository.EmployeeRepository
	validate *validator.Validate
}

// NewDepartmentService создаёт новый экземпляр сервиса
func NewDepartmentService(deptRepo repository.DepartmentRepository, empRepo repository.EmployeeRepository) DepartmentService {
	return &departmentService{
		deptRepo: deptRepo,
		empRepo:  empRepo,
		validate: newRequestValidator(),
	}
}

func (s *departmentService) List(ctx context.Context, pageNumber, pageSize int) (*dto.DepartmentPageResponse, error) {
	p := pagination.Normalize(pageNumber, pageSize, departmentListDefaultPageSize)

	rows, total, err := s.deptRepo.List(ctx, p)
	if err != nil {
		return nil, err
	}

	return &dto.DepartmentPageResponse{
		TotalRecords: total,
		PageNumber:   p.Number,
		PageSize:     p.Size,
		TotalPages:   pagination.TotalPages(total, p.Size),
		Data:         rows,
	}, nil
}

func (s *departmentService) ListAll(ctx context.Context) ([]domain.Department, error) {
	return s.deptRepo.ListAll(ctx)
}

func (s *departmentService) GetByID(ctx context.Context, id int64) (*domain.Department, error) {
	return s.deptRepo.GetByID(ctx, id)
}

func (s *departmentService) Create(ctx context.Context, req *dto.DepartmentRequest) (*domain.Department, error) {
	errs, err := s.collectValidationErrors(ctx, req)
	if err != nil {
		return nil, err
	}
	if len(errs) > 0 {
		return nil, &domain.ValidationError{Messages: errs}
	}

	id, err := s.deptRepo.InsertViaProcedure(ctx, req.Name, req.Code, req.HeadID)
	if err != nil {
		return nil, err
	}

	return &domain.Department{
		ID:     id,
		Name:   req.Name,
		Code:   req.Code,
		HeadID: req.HeadID,
	}, nil
}

func (s *departmentService) Update(ctx context.Context, id int64, req *dto.DepartmentRequest) (*domain.Department, error) {
	errs, err := s.collectValidationErrors(ctx, req)
	if err != nil {
		return nil, err
	}
	if len(errs) > 0 {
		return nil, &domain.ValidationError{Messages: errs}
	}

	if _, err := s.deptRepo.GetByID(ctx, id); err != nil {
		return nil, err
	}

	affected, err := s.deptRepo.UpdateViaProcedure(ctx, id, req.Name, req.Code, req.HeadID)
	if err != nil {
		return nil, err
	}
	// Запись существовала на момент проверки, поэтому ноль строк
	// не переводится в NotFound, а уходит наверх как фатальный сбой
	if affected == 0 {
		return nil, domain.ErrDepartmentUpdateConflict
	}

	return &domain.Department{
		ID:     id,
		Name:   req.Name,
		Code:   req.Code,
		HeadID: req.HeadID,
	}, nil
}

func (s *departmentService) Delete(ctx context.Context, id int64) error {
	affected, err := s.deptRepo.DeleteViaProcedure(ctx, id)
	if err != nil {
		return err
	}
	if affected == 0 {
		return domain.ErrDepartmentNotFound
	}
	return nil
}

// collectValidationErrors накапливает сообщения всех проверок подразделения
func (s *departmentService) collectValidationErrors(ctx context.Context, req *dto.DepartmentRequest) ([]string, error) {
	failed := failedFields(s.validate, req)

	var errs []string
	if failed["Name"] {
		errs = append(errs, "Name is required.")
	}
	if failed["Code"] {
		errs = append(errs, "Code is required.")
	}

	// Руководитель необязателен, но если задан - должен существовать
	if req.HeadID != nil {
		exists, err := s.empRepo.Exists(ctx, *req.HeadID)
		if err != nil {
			return nil, err
		}
		if !exists {
			errs = append(errs, "Selected Head Employee does not exist.")
		}
	}

	return errs, nil
}
