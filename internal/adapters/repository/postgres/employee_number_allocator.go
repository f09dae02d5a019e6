package postgres

import (
	"context"
	"fmt"

	pgdb "github.com/ogurasousui/staffing-workflow/internal/platform/db/postgres"
)

// EmployeeNumberAllocator は employee_number_counters の単一行で社員番号を採番します。
// UPSERT が取得する行ロックはコミットまで保持されるため、同時に承認されても同じ番号は払い出されません。
// ロールバックされた番号は再利用されますが、コミット済みの番号は社員が削除されても再利用されません。
type EmployeeNumberAllocator struct {
	pool pgdb.Queryer
}

// NewEmployeeNumberAllocator は EmployeeNumberAllocator を生成します。
func NewEmployeeNumberAllocator(pool pgdb.Queryer) *EmployeeNumberAllocator {
	return &EmployeeNumberAllocator{pool: pool}
}

const nextEmployeeNumberQuery = `
        INSERT INTO employee_number_counters AS c (id, last_value)
        SELECT 1, COALESCE(MAX(employee_number), 0) + 1 FROM employees
        ON CONFLICT (id) DO UPDATE
           SET last_value = GREATEST(c.last_value, (SELECT COALESCE(MAX(employee_number), 0) FROM employees)) + 1
        RETURNING last_value
    `

// NextEmployeeNumber は次の社員番号を返します。呼び出し元のトランザクション内で実行してください。
func (a *EmployeeNumberAllocator) NextEmployeeNumber(ctx context.Context) (int64, error) {
	exec := pgdb.QueryerFromContext(ctx, a.pool)

	var next int64
	if err := exec.QueryRow(ctx, nextEmployeeNumberQuery).Scan(&next); err != nil {
		return 0, fmt.Errorf("next employee number: %w", err)
	}
	return next, nil
}
