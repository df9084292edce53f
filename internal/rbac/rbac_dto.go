package rbac

type EmployeeRoleRow struct {
	EmployeeID string
	Role       string
}

type RolePermissionRow struct {
	Role     string
	Resource string
	Action   string
}

type PermissionResponse struct {
	Resource string `json:"resource"`
	Action   string `json:"action"`
}
