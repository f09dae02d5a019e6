package placement

import (
	"fmt"

	"github.com/ogurasousui/staffing-workflow/internal/core/employee"
)

// BuildAssignment は承認済みの入社連絡票から、雇用形態に対応する配属情報を 1 件だけ組み立てます。
// 副作用はなく、永続化は呼び出し側が行います。
func BuildAssignment(emp *employee.Employee, n *JoiningNotice) (employee.Assignment, error) {
	if emp == nil || n == nil {
		return nil, fmt.Errorf("build assignment: %w", ErrPreconditionFailed)
	}
	if emp.EmploymentType != n.EmploymentType {
		return nil, preconditionf("employee employment type %q differs from notice %q", emp.EmploymentType, n.EmploymentType)
	}

	// 入居日を就業開始日として扱う。
	startDate := cloneTime(n.MoveInDate)

	switch n.EmploymentType {
	case employee.EmploymentTypeHaken:
		return &employee.HakenAssignment{
			EmployeeID:      emp.ID,
			ClientCompanyID: cloneString(n.AssignmentCompanyID),
			ClientCompany:   n.AssignmentCompany,
			Location:        n.AssignmentLocation,
			Line:            n.AssignmentLine,
			JobDescription:  n.JobDescription,
			HourlyRate:      cloneInt64(n.HourlyRate),
			BillingRate:     cloneInt64(n.BillingRate),
			MoveInDate:      cloneTime(n.MoveInDate),
			StartDate:       startDate,
			Status:          employee.AssignmentActive,
			CreatedAt:       emp.CreatedAt,
			UpdatedAt:       emp.CreatedAt,
		}, nil
	case employee.EmploymentTypeUkeoi:
		return &employee.UkeoiAssignment{
			EmployeeID:      emp.ID,
			JobType:         n.JobDescription,
			HourlyRate:      cloneInt64(n.HourlyRate),
			MoveInDate:      cloneTime(n.MoveInDate),
			StartDate:       startDate,
			BankAccountName: n.BankAccountName,
			BankName:        n.BankName,
			BranchNumber:    n.BranchNumber,
			BranchName:      n.BranchName,
			AccountNumber:   n.AccountNumber,
			Status:          employee.AssignmentActive,
			CreatedAt:       emp.CreatedAt,
			UpdatedAt:       emp.CreatedAt,
		}, nil
	default:
		return nil, ErrInvalidEmploymentType
	}
}
