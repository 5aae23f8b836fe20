package repository

import (
	"context"

	"github.com/staff-admin-api/internal/domain"
	"github.com/staff-admin-api/internal/pagination"
	"gorm.io/gorm"
)

// DepartmentRepository определяет интерфейс для работы с подразделениями.
// Чтение идёт через обычные запросы GORM, запись - через три именованные
// хранимые процедуры
type DepartmentRepository interface {
	List(ctx context.Context, p pagination.Params) ([]domain.DepartmentListRow, int64, error)
	ListAll(ctx context.Context) ([]domain.Department, error)
	GetByID(ctx context.Context, id int64) (*domain.Department, error)
	Exists(ctx context.Context, id int64) (bool, error)
	InsertViaProcedure(ctx context.Context, name, code string, headID *int64) (int64, error)
	UpdateViaProcedure(ctx context.Context, id int64, name, code string, headID *int64) (int64, error)
	DeleteViaProcedure(ctx context.Context, id int64) (int64, error)
}

type departmentRepository struct {
	db *gorm.DB
}

// NewDepartmentRepository создаёт новый экземпляр репозитория
func NewDepartmentRepository(db *gorm.DB) DepartmentRepository {
	return &departmentRepository{db: db}
}

func (r *departmentRepository) List(ctx context.Context, p pagination.Params) ([]domain.DepartmentListRow, int64, error) {
	var total int64
	err := r.db.WithContext(ctx).Model(&domain.Department{}).Count(&total).Error
	if err != nil {
		return nil, 0, err
	}

	rows := []domain.DepartmentListRow{}
	err = r.db.WithContext(ctx).
		Table("departments d").
		Select("d.id, d.name, d.code, d.head_id, COALESCE(e.first_name || ' ' || e.last_name, 'Not Assigned') AS head_name").
		Joins("LEFT JOIN employees e ON e.id = d.head_id").
		Order("d.id ASC").
		Offset(p.Offset()).
		Limit(p.Size).
		Scan(&rows).Error
	if err != nil {
		return nil, 0, err
	}

	return rows, total, nil
}

func (r *departmentRepository) ListAll(ctx context.Context) ([]domain.Department, error) {
	depts := []domain.Department{}
	err := r.db.WithContext(ctx).Order("id ASC").Find(&depts).Error
	return depts, err
}

func (r *departmentRepository) GetByID(ctx context.Context, id int64) (*domain.Department, error) {
	var dept domain.Department
	err := r.db.WithContext(ctx).First(&dept, id).Error
	if err != nil {
		if err == gorm.ErrRecordNotFound {
			return nil, domain.ErrDepartmentNotFound
		}
		return nil, err
	}
	return &dept, nil
}

func (r *departmentRepository) Exists(ctx context.Context, id int64) (bool, error) {
	var count int64
	err := r.db.WithContext(ctx).
		Model(&domain.Department{}).
		Where("id = ?", id).
		Count(&count).Error
	return count > 0, err
}

// InsertViaProcedure вызывает insert_department на выделенном соединении
// и возвращает сгенерированный идентификатор
func (r *departmentRepository) InsertViaProcedure(ctx context.Context, name, code string, headID *int64) (int64, error) {
	sqlDB, err := r.db.DB()
	if err != nil {
		return 0, err
	}

	conn, err := sqlDB.Conn(ctx)
	if err != nil {
		return 0, err
	}
	defer conn.Close()

	var id int64
	err = conn.QueryRowContext(ctx, "SELECT insert_department($1, $2, $3)", name, code, headID).Scan(&id)
	if err != nil {
		return 0, err
	}

	return id, nil
}

// UpdateViaProcedure вызывает update_department и возвращает число
// затронутых строк
func (r *departmentRepository) UpdateViaProcedure(ctx context.Context, id int64, name, code string, headID *int64) (int64, error) {
	sqlDB, err := r.db.DB()
	if err != nil {
		return 0, err
	}

	conn, err := sqlDB.Conn(ctx)
	if err != nil {
		return 0, err
	}
	defer conn.Close()

	var affected int64
	err = conn.QueryRowContext(ctx, "SELECT update_department($1, $2, $3, $4)", id, name, code, headID).Scan(&affected)
	if err != nil {
		return 0, err
	}

	return affected, nil
}

// DeleteViaProcedure вызывает delete_department и возвращает число
// затронутых строк
func (r *departmentRepository) DeleteViaProcedure(ctx context.Context, id int64) (int64, error) {
	sqlDB, err := r.db.DB()
	if err != nil {
		return 0, err
	}

	conn, err := sqlDB.Conn(ctx)
	if err != nil {
		return 0, err
	}
	defer conn.Close()

	var affected int64
	err = conn.QueryRowContext(ctx, "SELECT delete_department($1)", id).Scan(&affected)
	if err != nil {
		return 0, err
	}

	return affected, nil
}
