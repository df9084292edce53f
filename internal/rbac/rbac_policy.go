package rbac

import (
	"go-leave/internal/domain"
	"go-leave/internal/employee"
)

// DefaultPermissions is the built-in policy for the four directory roles.
// Managers approve their own reports; approve_any is the HR-wide capability.
var DefaultPermissions = []RolePermissionRow{
	{Role: employee.RoleEmployee, Resource: domain.ResourceLeave, Action: domain.ActionCreate},
	{Role: employee.RoleEmployee, Resource: domain.ResourceLeave, Action: domain.ActionRead},
	{Role: employee.RoleEmployee, Resource: domain.ResourceBalance, Action: domain.ActionRead},
	{Role: employee.RoleEmployee, Resource: domain.ResourceLeaveType, Action: domain.ActionRead},
	{Role: employee.RoleEmployee, Resource: domain.ResourceHoliday, Action: domain.ActionRead},
	{Role: employee.RoleEmployee, Resource: domain.ResourceEmployee, Action: domain.ActionRead},

	{Role: employee.RoleManager, Resource: domain.ResourceLeave, Action: domain.ActionApprove},

	{Role: employee.RoleHR, Resource: domain.ResourceLeave, Action: domain.ActionApprove},
	{Role: employee.RoleHR, Resource: domain.ResourceLeave, Action: domain.ActionApproveAny},
	{Role: employee.RoleHR, Resource: domain.ResourceBalance, Action: domain.ActionManage},
	{Role: employee.RoleHR, Resource: domain.ResourceLeaveType, Action: domain.ActionManage},
	{Role: employee.RoleHR, Resource: domain.ResourceHoliday, Action: domain.ActionManage},
}

// RoleInheritance lists role -> inherited role groupings.
var RoleInheritance = [][2]string{
	{employee.RoleManager, employee.RoleEmployee},
	{employee.RoleHR, employee.RoleEmployee},
	{employee.RoleAdmin, employee.RoleHR},
}
