package domain

// Employee представляет сотрудника
type Employee struct {
	ID           int64   `json:"id" gorm:"primaryKey;autoIncrement"`
	FirstName    string  `json:"firstName" gorm:"type:varchar(200);not null"`
	LastName     string  `json:"lastName" gorm:"type:varchar(200);not null"`
	Salary       float64 `json:"salary" gorm:"type:numeric(18,2);not null"`
	DepartmentID *int64  `json:"departmentId" gorm:"index"`

	Department *Department `json:"-" gorm:"foreignKey:DepartmentID"`
}

// TableName задаёт имя таблицы для GORM
func (Employee) TableName() string {
	return "employees"
}

// Department представляет подразделение
type Department struct {
	ID     int64  `json:"id" gorm:"primaryKey;autoIncrement"`
	Name   string `json:"name" gorm:"type:varchar(200);not null"`
	Code   string `json:"code" gorm:"type:varchar(50);not null"`
	HeadID *int64 `json:"headId" gorm:"uniqueIndex"`

	Head *Employee `json:"-" gorm:"foreignKey:HeadID"`
}

// TableName задаёт имя таблицы для GORM
func (Department) TableName() string {
	return "departments"
}

// EmployeeListRow - строка списка сотрудников с именем подразделения
// из LEFT JOIN; если подразделения нет, подставляется "N/A"
type EmployeeListRow struct {
	ID             int64   `json:"id"`
	FirstName      string  `json:"firstName"`
	LastName       string  `json:"lastName"`
	Salary         float64 `json:"salary"`
	DepartmentName string  `json:"departmentName"`
}

// DepartmentListRow - строка списка подразделений с именем руководителя
// из LEFT JOIN; если руководитель не назначен, подставляется "Not Assigned"
type DepartmentListRow struct {
	ID       int64  `json:"id"`
	Name     string `json:"name"`
	Code     string `json:"code"`
	HeadID   *int64 `json:"headId"`
	HeadName string `json:"headName"`
}
