package service

import (
	"errors"

	"github.com/go-playground/validator/v10"
	"github.com/go-playground/validator/v10/non-standard/validators"
)

// newRequestValidator настраивает валидатор тел запросов;
// notblank отвергает строки из одних пробелов
func newRequestValidator() *validator.Validate {
	v := validator.New()
	// регистрация не может упасть для обычной функции-правила
	_ = v.RegisterValidation("notblank", validators.NotBlank)
	return v
}

// failedFields прогоняет структуру через валидатор и возвращает
// множество имён полей, не прошедших проверку. Сообщения для
// пользователя собираются на стороне сервиса в фиксированном порядке
func failedFields(v *validator.Validate, req any) map[string]bool {
	fields := make(map[string]bool)

	err := v.Struct(req)
	if err == nil {
		return fields
	}

	var verrs validator.ValidationErrors
	if errors.As(err, &verrs) {
		for _, fe := range verrs {
			fields[fe.Field()] = true
		}
	}

	return fields
}
