package domain

// ApproverScope lists whose leave requests an approver may decide on.
// All is set for holders of leave:approve_any.
type ApproverScope struct {
	All         bool
	EmployeeIDs []string
}
