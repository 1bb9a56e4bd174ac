package repository

import (
	"errors"
	"fmt"
)

// NotFoundError - запрошенная сущность с таким ID не существует
type NotFoundError struct {
	Entity string
	ID     int
}

func (e *NotFoundError) Error() string {
	return fmt.Sprintf("%s с ID %d не найден", e.Entity, e.ID)
}

// ValidationError - обязательное поле пустое или ссылка не разрешается
type ValidationError struct {
	Message string
}

func (e *ValidationError) Error() string {
	return e.Message
}

func IsNotFound(err error) bool {
	var nf *NotFoundError
	return errors.As(err, &nf)
}

func IsValidation(err error) bool {
	var ve *ValidationError
	return errors.As(err, &ve)
}
