package balance

import (
	"errors"

	balanceerrors "go-leave/internal/balance/errors"
	"go-leave/internal/shared/apperror"

	"gorm.io/gorm"
)

func mapRepositoryError(err error) error {
	if err == nil {
		return nil
	}

	if errors.Is(err, gorm.ErrRecordNotFound) {
		return balanceerrors.ErrBalanceNotFound
	}

	var appErr *apperror.AppError
	if errors.As(err, &appErr) {
		return err
	}

	return apperror.StorageUnavailable(err)
}
