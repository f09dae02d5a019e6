package postgres

import (
	"context"
	"errors"
	"regexp"
	"testing"
	"time"

	"github.com/jackc/pgx/v5/pgconn"
	pgxmock "github.com/pashagolub/pgxmock/v4"

	"github.com/ogurasousui/staffing-workflow/internal/core/apartment"
	"github.com/ogurasousui/staffing-workflow/internal/core/employee"
	"github.com/ogurasousui/staffing-workflow/internal/core/placement"
)

func noticeRow(id string, status placement.NoticeStatus, now time.Time) []any {
	moveIn := time.Date(2025, 4, 1, 0, 0, 0, 0, time.UTC)
	return []any{
		id, "cand-1", "app-1", string(employee.EmploymentTypeHaken),
		"NGUYEN VAN A", "", "male", "Vietnam", nil, "技能実習", nil,
		"444-0000", "愛知県岡崎市", "",
		string(employee.HousingShataku), "apt-1", moveIn,
		"company-1", "トヨタ紡織", "刈谷工場", "2ライン", "組立",
		int64(1500), int64(2100),
		"NGUYEN VAN A", "三菱UFJ銀行", "123", "岡崎支店", "1234567",
		string(status), now, nil, nil, nil,
		"staff-1", now, now,
	}
}

func TestScanNotice_ViaFindByID(t *testing.T) {
	t.Parallel()

	mock, err := pgxmock.NewPool()
	if err != nil {
		t.Fatalf("failed to create mock pool: %v", err)
	}
	defer mock.Close()

	repo := NewNoticeRepository(mock)
	now := time.Now().UTC()

	mock.ExpectQuery(regexp.QuoteMeta(`FROM joining_notices WHERE id = $1`)).
		WithArgs("notice-1").
		WillReturnRows(pgxmock.NewRows(columnsOf(noticeColumns)).AddRow(noticeRow("notice-1", placement.NoticePending, now)...))

	n, err := repo.FindByID(context.Background(), "notice-1")
	if err != nil {
		t.Fatalf("FindByID returned error: %v", err)
	}

	if n.EmploymentType != employee.EmploymentTypeHaken || n.HousingType != employee.HousingShataku {
		t.Fatalf("unexpected notice types %+v", n)
	}
	if n.ApartmentID == nil || *n.ApartmentID != "apt-1" || n.MoveInDate == nil || n.MoveInDate.Day() != 1 {
		t.Fatalf("unexpected housing %+v", n.NoticeFields)
	}
	if n.HourlyRate == nil || *n.HourlyRate != 1500 || n.BillingRate == nil || *n.BillingRate != 2100 {
		t.Fatalf("unexpected rates %+v", n.NoticeFields)
	}
	if n.SubmittedAt == nil || n.ApprovedAt != nil || n.RejectionReason != nil {
		t.Fatalf("unexpected workflow fields %+v", n)
	}

	if err := mock.ExpectationsWereMet(); err != nil {
		t.Fatalf("unmet expectations: %v", err)
	}
}

func TestNoticeRepository_Update_ArgumentCount(t *testing.T) {
	t.Parallel()

	mock, err := pgxmock.NewPool()
	if err != nil {
		t.Fatalf("failed to create mock pool: %v", err)
	}
	defer mock.Close()

	repo := NewNoticeRepository(mock)
	now := time.Now().UTC()

	mock.ExpectQuery(regexp.QuoteMeta(`UPDATE joining_notices`)).
		WithArgs(anyArgs(32)...).
		WillReturnRows(pgxmock.NewRows(columnsOf(noticeColumns)).AddRow(noticeRow("notice-1", placement.NoticeApproved, now)...))

	updated, err := repo.Update(context.Background(), &placement.JoiningNotice{ID: "notice-1", Status: placement.NoticeApproved, UpdatedAt: now})
	if err != nil {
		t.Fatalf("Update returned error: %v", err)
	}
	if updated.Status != placement.NoticeApproved {
		t.Fatalf("unexpected status %s", updated.Status)
	}
}

func TestNoticeRepository_Create_UnknownApartment(t *testing.T) {
	t.Parallel()

	mock, err := pgxmock.NewPool()
	if err != nil {
		t.Fatalf("failed to create mock pool: %v", err)
	}
	defer mock.Close()

	repo := NewNoticeRepository(mock)

	mock.ExpectQuery(regexp.QuoteMeta(`INSERT INTO joining_notices`)).
		WithArgs(anyArgs(36)...).
		WillReturnError(&pgconn.PgError{Code: foreignKeyViolationCode, ConstraintName: "joining_notices_apartment_id_fkey"})

	_, err = repo.Create(context.Background(), &placement.JoiningNotice{CandidateID: "cand-1", EmploymentType: employee.EmploymentTypeHaken, Status: placement.NoticeDraft})
	if !errors.Is(err, apartment.ErrApartmentNotFound) {
		t.Fatalf("expected ErrApartmentNotFound, got %v", err)
	}
}

func TestNoticeRepository_List_ByStatus(t *testing.T) {
	t.Parallel()

	mock, err := pgxmock.NewPool()
	if err != nil {
		t.Fatalf("failed to create mock pool: %v", err)
	}
	defer mock.Close()

	repo := NewNoticeRepository(mock)
	pending := placement.NoticePending
	now := time.Now().UTC()

	mock.ExpectQuery(regexp.QuoteMeta(`FROM joining_notices WHERE status = $1 ORDER BY created_at DESC, id DESC LIMIT $2 OFFSET $3`)).
		WithArgs(string(pending), 2, 0).
		WillReturnRows(pgxmock.NewRows(columnsOf(noticeColumns)).
			AddRow(noticeRow("notice-2", pending, now)...).
			AddRow(noticeRow("notice-1", pending, now)...))

	notices, nextToken, err := repo.List(context.Background(), placement.ListNoticesFilter{Status: &pending, Limit: 1})
	if err != nil {
		t.Fatalf("List returned error: %v", err)
	}
	if len(notices) != 1 || notices[0].ID != "notice-2" || nextToken != "1" {
		t.Fatalf("unexpected page: %+v token %q", notices, nextToken)
	}
}
