package employee

type EmployeeResponse struct {
	ID        string  `json:"id"`
	FullName  string  `json:"full_name"`
	Email     string  `json:"email"`
	Role      string  `json:"role"`
	ManagerID *string `json:"manager_id,omitempty"`
}

func mapToResponse(e Employee) EmployeeResponse {
	resp := EmployeeResponse{
		ID:       e.ID.String(),
		FullName: e.FullName,
		Email:    e.Email,
		Role:     e.Role,
	}
	if e.ManagerID != nil {
		id := e.ManagerID.String()
		resp.ManagerID = &id
	}
	return resp
}
