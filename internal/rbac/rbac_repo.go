package rbac

import (
	"context"

	"gorm.io/gorm"
)

//go:generate mockgen -source=rbac_repo.go -destination=mock/rbac_repo_mock.go -package=mock
type Repository interface {
	GetEmployeeRoles(ctx context.Context) ([]EmployeeRoleRow, error)
	GetRolePermissions(ctx context.Context) ([]RolePermissionRow, error)
}

type repository struct {
	db *gorm.DB
}

func NewRepository(db *gorm.DB) Repository {
	return &repository{db: db}
}

func (r *repository) GetEmployeeRoles(ctx context.Context) ([]EmployeeRoleRow, error) {
	var result []EmployeeRoleRow

	err := r.db.WithContext(ctx).
		Table("employees").
		Select("employees.id AS employee_id, employees.role").
		Where("employees.deleted_at IS NULL").
		Scan(&result).Error

	return result, err
}

// GetRolePermissions returns grants stored on top of DefaultPermissions.
func (r *repository) GetRolePermissions(ctx context.Context) ([]RolePermissionRow, error) {
	var result []RolePermissionRow

	err := r.db.WithContext(ctx).
		Table("role_permissions").
		Select("role_permissions.role, role_permissions.resource, role_permissions.action").
		Scan(&result).Error

	return result, err
}
