package leavetype

import (
	"errors"
	"strings"

	leavetypeerrors "go-leave/internal/leavetype/errors"
	"go-leave/internal/shared/apperror"

	"github.com/jackc/pgx/v5/pgconn"
	"gorm.io/gorm"
)

func mapRepositoryError(err error) error {
	if err == nil {
		return nil
	}

	if errors.Is(err, gorm.ErrRecordNotFound) {
		return leavetypeerrors.ErrLeaveTypeNotFound
	}

	var pgErr *pgconn.PgError
	if errors.As(err, &pgErr) && pgErr.Code == "23505" && pgErr.ConstraintName == "uq_leave_type_name" {
		return leavetypeerrors.ErrLeaveTypeNameExists
	}

	errMsg := strings.ToLower(err.Error())
	if strings.Contains(errMsg, "duplicate key value") && strings.Contains(errMsg, "uq_leave_type_name") {
		return leavetypeerrors.ErrLeaveTypeNameExists
	}

	return apperror.StorageUnavailable(err)
}
