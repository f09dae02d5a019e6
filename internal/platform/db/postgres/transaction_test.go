package postgres

import (
	"context"
	"errors"
	"testing"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgconn"
	pgxmock "github.com/pashagolub/pgxmock/v4"
)

func mockPool(t *testing.T) pgxmock.PgxPoolIface {
	t.Helper()
	mock, err := pgxmock.NewPool()
	if err != nil {
		t.Fatalf("failed to create mock pool: %v", err)
	}
	t.Cleanup(func() {
		if err := mock.ExpectationsWereMet(); err != nil {
			t.Errorf("unmet expectations: %v", err)
		}
		mock.Close()
	})
	return mock
}

func TestTransactionManager_ReadWriteCommit(t *testing.T) {
	t.Parallel()

	mock := mockPool(t)

	tm := NewTransactionManager(mock)

	mock.ExpectBeginTx(pgx.TxOptions{AccessMode: pgx.ReadWrite})
	mock.ExpectCommit()

	err := tm.WithinReadWrite(context.Background(), func(ctx context.Context) error {
		if _, ok := txFromContext(ctx); !ok {
			t.Fatalf("transaction not injected into context")
		}
		return nil
	})

	if err != nil {
		t.Fatalf("WithinReadWrite returned error: %v", err)
	}
}

func TestTransactionManager_ReadOnlyRollbackOnError(t *testing.T) {
	t.Parallel()

	mock := mockPool(t)

	tm := NewTransactionManager(mock)

	mock.ExpectBeginTx(pgx.TxOptions{AccessMode: pgx.ReadOnly})
	mock.ExpectRollback()

	expectedErr := errors.New("usecase error")
	err := tm.WithinReadOnly(context.Background(), func(ctx context.Context) error {
		if _, ok := txFromContext(ctx); !ok {
			t.Fatalf("transaction not injected into context")
		}
		return expectedErr
	})

	if !errors.Is(err, expectedErr) {
		t.Fatalf("expected %v, got %v", expectedErr, err)
	}
}

func TestTransactionManager_NestedReuse(t *testing.T) {
	t.Parallel()

	mock := mockPool(t)

	tm := NewTransactionManager(mock)

	mock.ExpectBeginTx(pgx.TxOptions{AccessMode: pgx.ReadWrite})
	mock.ExpectCommit()

	err := tm.WithinReadWrite(context.Background(), func(ctx context.Context) error {
		return tm.WithinReadOnly(ctx, func(inner context.Context) error {
			if _, ok := txFromContext(inner); !ok {
				t.Fatalf("nested transaction lost context")
			}
			return nil
		})
	})

	if err != nil {
		t.Fatalf("nested transaction returned error: %v", err)
	}
}

func TestTransactionManager_WrapsConflictError(t *testing.T) {
	t.Parallel()

	mock := mockPool(t)

	errConflict := errors.New("conflict")
	tm := NewTransactionManager(mock, WithConflictError(errConflict), WithIsolation(pgx.Serializable))

	mock.ExpectBeginTx(pgx.TxOptions{AccessMode: pgx.ReadWrite, IsoLevel: pgx.Serializable})
	mock.ExpectRollback()

	pgErr := &pgconn.PgError{Code: serializationFailureCode}
	err := tm.WithinReadWrite(context.Background(), func(ctx context.Context) error {
		return pgErr
	})

	if !errors.Is(err, errConflict) {
		t.Fatalf("expected conflict error, got %v", err)
	}
	var got *pgconn.PgError
	if !errors.As(err, &got) || got.Code != serializationFailureCode {
		t.Fatalf("expected original pg error to be preserved, got %v", err)
	}
}

func TestTransactionManager_LeavesOtherErrorsUntouched(t *testing.T) {
	t.Parallel()

	mock := mockPool(t)

	errConflict := errors.New("conflict")
	tm := NewTransactionManager(mock, WithConflictError(errConflict))

	mock.ExpectBeginTx(pgx.TxOptions{AccessMode: pgx.ReadWrite})
	mock.ExpectRollback()

	uniqueErr := &pgconn.PgError{Code: "23505"}
	err := tm.WithinReadWrite(context.Background(), func(ctx context.Context) error {
		return uniqueErr
	})

	if errors.Is(err, errConflict) {
		t.Fatalf("unique violation must not be reported as conflict")
	}
	if !errors.Is(err, uniqueErr) {
		t.Fatalf("expected original error, got %v", err)
	}
}

func TestIsConflict(t *testing.T) {
	t.Parallel()

	cases := []struct {
		name string
		err  error
		want bool
	}{
		{name: "serialization", err: &pgconn.PgError{Code: "40001"}, want: true},
		{name: "deadlock", err: &pgconn.PgError{Code: "40P01"}, want: true},
		{name: "unique", err: &pgconn.PgError{Code: "23505"}, want: false},
		{name: "plain", err: errors.New("boom"), want: false},
	}

	for _, tc := range cases {
		if got := IsConflict(tc.err); got != tc.want {
			t.Errorf("%s: IsConflict = %v, want %v", tc.name, got, tc.want)
		}
	}
}

func TestTransactionManager_CommitConflictIsMarked(t *testing.T) {
	t.Parallel()

	mock := mockPool(t)

	errConflict := errors.New("conflict")
	tm := NewTransactionManager(mock, WithConflictError(errConflict), WithIsolation(pgx.Serializable))

	mock.ExpectBeginTx(pgx.TxOptions{AccessMode: pgx.ReadWrite, IsoLevel: pgx.Serializable})
	mock.ExpectCommit().WillReturnError(&pgconn.PgError{Code: serializationFailureCode})

	err := tm.WithinReadWrite(context.Background(), func(context.Context) error { return nil })
	if !errors.Is(err, errConflict) {
		t.Fatalf("serialization failure at commit must be reported as conflict, got %v", err)
	}
}

func TestTransactionManager_RollsBackOnPanic(t *testing.T) {
	t.Parallel()

	mock := mockPool(t)

	tm := NewTransactionManager(mock)

	mock.ExpectBeginTx(pgx.TxOptions{AccessMode: pgx.ReadWrite})
	mock.ExpectRollback()

	func() {
		defer func() {
			if recover() == nil {
				t.Errorf("expected panic to propagate")
			}
		}()
		_ = tm.WithinReadWrite(context.Background(), func(context.Context) error {
			panic("boom")
		})
	}()
}

func TestTransactionManager_NilManagerRunsDirectly(t *testing.T) {
	t.Parallel()

	var tm *TransactionManager
	called := false
	if err := tm.WithinReadWrite(context.Background(), func(ctx context.Context) error {
		called = true
		if _, ok := txFromContext(ctx); ok {
			t.Errorf("nil manager must not inject a transaction")
		}
		return nil
	}); err != nil || !called {
		t.Fatalf("expected fn to run without error, called=%v err=%v", called, err)
	}
}
