package domain

import (
	"errors"
	"strings"
)

// Определение бизнес-ошибок
var (
	ErrEmployeeNotFound   = errors.New("employee not found")
	ErrDepartmentNotFound = errors.New("department not found")
	ErrEmployeeIDMismatch = errors.New("employee id mismatch")

	// ErrDepartmentUpdateConflict возвращается, когда процедура обновления
	// подразделения сообщила о нуле затронутых строк. Намеренно не
	// маппится на NotFound: запись проверяется до вызова процедуры,
	// поэтому ноль строк означает гонку, а не отсутствие записи.
	ErrDepartmentUpdateConflict = errors.New("department update affected no rows")
)

// ValidationError накапливает все сообщения серверной валидации;
// проверки не прерываются на первой ошибке
type ValidationError struct {
	Messages []string
}

func (e *ValidationError) Error() string {
	return strings.Join(e.Messages, "; ")
}
