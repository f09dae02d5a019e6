package placement

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"strconv"

	"github.com/ogurasousui/staffing-workflow/internal/core/apartment"
	"github.com/ogurasousui/staffing-workflow/internal/core/employee"
)

// ApproveNotice は承認待ちの入社連絡票を承認し、社員と配属情報を作成します。
// 社員番号の採番、社宅の入居枠確保、社員・配属の作成、連絡票と候補者の更新は 1 つのトランザクションで行われ、
// いずれかが失敗した場合はすべて取り消されます。
func (s *Service) ApproveNotice(ctx context.Context, in ApproveNoticeInput) (*ApprovalResult, error) {
	id, err := normalizeID(in.ID)
	if err != nil {
		return nil, err
	}
	approver, err := normalizeActor(in.Actor)
	if err != nil {
		return nil, err
	}

	var result *ApprovalResult
	if err := s.withinReadWrite(ctx, "approve_notice", func(txCtx context.Context) error {
		n, err := s.notices.FindByIDForUpdate(txCtx, id)
		if err != nil {
			return err
		}
		next, err := Advance(KindJoiningNotice, string(n.Status), TransitionApprove)
		if err != nil {
			return err
		}
		if !n.EmploymentType.Valid() {
			return ErrInvalidEmploymentType
		}

		c, err := s.candidates.FindByIDForUpdate(txCtx, n.CandidateID)
		if err != nil {
			return err
		}
		if err := advanceCandidate(c, TransitionHire); err != nil {
			return fmt.Errorf("%w: %w", ErrPreconditionFailed, err)
		}

		existing, err := s.employees.FindByCandidateID(txCtx, c.ID)
		switch {
		case err == nil:
			return preconditionf("candidate %s is already employee %d", c.ID, existing.EmployeeNumber)
		case !errors.Is(err, employee.ErrEmployeeNotFound):
			return err
		}

		if n.HousingType == employee.HousingShataku {
			if n.ApartmentID == nil {
				return preconditionf("shataku notice %s has no apartment", n.ID)
			}
			if _, err := s.apartments.Occupy(txCtx, *n.ApartmentID); err != nil {
				if errors.Is(err, apartment.ErrNoVacancy) {
					return preconditionf("apartment %s has no vacancy", *n.ApartmentID)
				}
				return fmt.Errorf("occupy apartment: %w", err)
			}
		}

		number, err := s.numbers.NextEmployeeNumber(txCtx)
		if err != nil {
			return fmt.Errorf("allocate employee number: %w", err)
		}

		now := s.clock.Now()
		hireDate := normalizeDate(n.MoveInDate)
		if hireDate == nil {
			hireDate = normalizeDate(&now)
		}

		noticeID := n.ID
		candidateID := c.ID
		emp, err := s.employees.Create(txCtx, &employee.Employee{
			EmployeeNumber:  number,
			JoiningNoticeID: &noticeID,
			CandidateID:     &candidateID,
			FullName:        n.FullName,
			NameKana:        n.NameKana,
			Gender:          n.Gender,
			Nationality:     n.Nationality,
			BirthDate:       cloneTime(n.BirthDate),
			PostalCode:      n.PostalCode,
			Address:         n.Address,
			BuildingName:    n.BuildingName,
			VisaType:        n.VisaType,
			VisaExpiry:      cloneTime(n.VisaExpiry),
			EmploymentType:  n.EmploymentType,
			HousingType:     n.HousingType,
			ApartmentID:     cloneString(n.ApartmentID),
			Status:          employee.StatusActive,
			HireDate:        hireDate,
			CreatedAt:       now,
			UpdatedAt:       now,
		})
		if err != nil {
			return err
		}

		built, err := BuildAssignment(emp, n)
		if err != nil {
			return err
		}
		assignment, err := s.assignments.CreateAssignment(txCtx, built)
		if err != nil {
			return err
		}

		n.Status = NoticeStatus(next)
		n.ApprovedAt = &now
		n.ApprovedBy = &approver
		n.UpdatedAt = now
		approved, err := s.notices.Update(txCtx, n)
		if err != nil {
			return err
		}

		c.UpdatedAt = now
		hired, err := s.candidates.Update(txCtx, c)
		if err != nil {
			return err
		}

		result = &ApprovalResult{
			Notice:     approved,
			Candidate:  hired,
			Employee:   emp,
			Assignment: assignment,
		}
		return nil
	}); err != nil {
		return nil, err
	}

	s.logger.InfoContext(ctx, "joining notice approved",
		slog.String("notice_id", result.Notice.ID),
		slog.String("employee_id", result.Employee.ID),
		slog.Int64("employee_number", result.Employee.EmployeeNumber),
		slog.String("approver", approver),
	)
	s.publish(ctx, EventNoticeApproved, approver, map[string]string{
		"notice_id":       result.Notice.ID,
		"candidate_id":    result.Candidate.ID,
		"employee_id":     result.Employee.ID,
		"employee_number": strconv.FormatInt(result.Employee.EmployeeNumber, 10),
		"employment_type": string(result.Employee.EmploymentType),
	})

	return result, nil
}
