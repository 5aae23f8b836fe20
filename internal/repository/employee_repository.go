package repository

import (
	"context"

	"github.com/staff-admin-api/internal/domain"
	"github.com/staff-admin-api/internal/pagination"
	"gorm.io/gorm"
)

// EmployeeRepository определяет интерфейс для работы с сотрудниками
type EmployeeRepository interface {
	List(ctx context.Context, p pagination.Params) ([]domain.EmployeeListRow, int64, error)
	ListByDepartment(ctx context.Context, departmentID int64, p pagination.Params) ([]domain.EmployeeListRow, int64, error)
	GetByID(ctx context.Context, id int64) (*domain.Employee, error)
	Exists(ctx context.Context, id int64) (bool, error)
	Create(ctx context.Context, emp *domain.Employee) error
	Update(ctx context.Context, emp *domain.Employee) error
	Delete(ctx context.Context, id int64) error
}

type employeeRepository struct {
	db *gorm.DB
}

// NewEmployeeRepository создаёт новый экземпляр репозитория
func NewEmployeeRepository(db *gorm.DB) EmployeeRepository {
	return &employeeRepository{db: db}
}

func (r *employeeRepository) List(ctx context.Context, p pagination.Params) ([]domain.EmployeeListRow, int64, error) {
	var total int64
	err := r.db.WithContext(ctx).Model(&domain.Employee{}).Count(&total).Error
	if err != nil {
		return nil, 0, err
	}

	rows := []domain.EmployeeListRow{}
	err = r.db.WithContext(ctx).
		Table("employees e").
		Select("e.id, e.first_name, e.last_name, e.salary, COALESCE(d.name, 'N/A') AS department_name").
		Joins("LEFT JOIN departments d ON d.id = e.department_id").
		Order("e.id ASC").
		Offset(p.Offset()).
		Limit(p.Size).
		Scan(&rows).Error
	if err != nil {
		return nil, 0, err
	}

	return rows, total, nil
}

func (r *employeeRepository) ListByDepartment(ctx context.Context, departmentID int64, p pagination.Params) ([]domain.EmployeeListRow, int64, error) {
	var total int64
	err := r.db.WithContext(ctx).
		Model(&domain.Employee{}).
		Where("department_id = ?", departmentID).
		Count(&total).Error
	if err != nil {
		return nil, 0, err
	}

	rows := []domain.EmployeeListRow{}
	err = r.db.WithContext(ctx).
		Table("employees e").
		Select("e.id, e.first_name, e.last_name, e.salary, COALESCE(d.name, 'N/A') AS department_name").
		Joins("LEFT JOIN departments d ON d.id = e.department_id").
		Where("e.department_id = ?", departmentID).
		Order("e.id ASC").
		Offset(p.Offset()).
		Limit(p.Size).
		Scan(&rows).Error
	if err != nil {
		return nil, 0, err
	}

	return rows, total, nil
}

func (r *employeeRepository) GetByID(ctx context.Context, id int64) (*domain.Employee, error) {
	var emp domain.Employee
	err := r.db.WithContext(ctx).First(&emp, id).Error
	if err != nil {
		if err == gorm.ErrRecordNotFound {
			return nil, domain.ErrEmployeeNotFound
		}
		return nil, err
	}
	return &emp, nil
}

func (r *employeeRepository) Exists(ctx context.Context, id int64) (bool, error) {
	var count int64
	err := r.db.WithContext(ctx).
		Model(&domain.Employee{}).
		Where("id = ?", id).
		Count(&count).Error
	return count > 0, err
}

func (r *employeeRepository) Create(ctx context.Context, emp *domain.Employee) error {
	return r.db.WithContext(ctx).Create(emp).Error
}

func (r *employeeRepository) Update(ctx context.Context, emp *domain.Employee) error {
	return r.db.WithContext(ctx).Save(emp).Error
}

func (r *employeeRepository) Delete(ctx context.Context, id int64) error {
	result := r.db.WithContext(ctx).Delete(&domain.Employee{}, id)
	if result.Error != nil {
		return result.Error
	}
	if result.RowsAffected == 0 {
		return domain.ErrEmployeeNotFound
	}
	return nil
}
