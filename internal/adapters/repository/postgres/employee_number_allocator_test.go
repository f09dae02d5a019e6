package postgres

import (
	"context"
	"errors"
	"regexp"
	"testing"

	pgxmock "github.com/pashagolub/pgxmock/v4"
)

func TestEmployeeNumberAllocator_NextEmployeeNumber(t *testing.T) {
	t.Parallel()

	mock, err := pgxmock.NewPool()
	if err != nil {
		t.Fatalf("failed to create mock pool: %v", err)
	}
	defer mock.Close()

	allocator := NewEmployeeNumberAllocator(mock)

	mock.ExpectQuery(regexp.QuoteMeta(`INSERT INTO employee_number_counters`)).
		WillReturnRows(pgxmock.NewRows([]string{"last_value"}).AddRow(int64(42)))

	next, err := allocator.NextEmployeeNumber(context.Background())
	if err != nil {
		t.Fatalf("NextEmployeeNumber returned error: %v", err)
	}
	if next != 42 {
		t.Fatalf("expected 42, got %d", next)
	}

	if err := mock.ExpectationsWereMet(); err != nil {
		t.Fatalf("unmet expectations: %v", err)
	}
}

func TestEmployeeNumberAllocator_PropagatesError(t *testing.T) {
	t.Parallel()

	mock, err := pgxmock.NewPool()
	if err != nil {
		t.Fatalf("failed to create mock pool: %v", err)
	}
	defer mock.Close()

	allocator := NewEmployeeNumberAllocator(mock)
	boom := errors.New("boom")

	mock.ExpectQuery(regexp.QuoteMeta(`INSERT INTO employee_number_counters`)).
		WillReturnError(boom)

	if _, err := allocator.NextEmployeeNumber(context.Background()); !errors.Is(err, boom) {
		t.Fatalf("expected wrapped error, got %v", err)
	}
}
