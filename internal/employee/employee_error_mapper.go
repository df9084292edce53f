package employee

import (
	"errors"

	employeeerrors "go-leave/internal/employee/errors"
	"go-leave/internal/shared/apperror"

	"gorm.io/gorm"
)

func mapRepositoryError(err error) error {
	if err == nil {
		return nil
	}

	if errors.Is(err, gorm.ErrRecordNotFound) {
		return employeeerrors.ErrEmployeeNotFound
	}

	return apperror.StorageUnavailable(err)
}
