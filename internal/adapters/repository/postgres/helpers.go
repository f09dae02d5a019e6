package postgres

import (
	"database/sql"
	"strconv"
	"strings"
	"time"

	"github.com/jackc/pgx/v5"
)

const (
	uniqueViolationCode     = "23505"
	foreignKeyViolationCode = "23503"
	checkViolationCode      = "23514"
)

func nullableString(value *string) any {
	if value == nil {
		return nil
	}
	return *value
}

func nullableInt64(value *int64) any {
	if value == nil {
		return nil
	}
	return *value
}

// nullableTime は DATE 列向けに時刻部分を切り捨てた値を返します。
func nullableTime(value *time.Time) any {
	if value == nil {
		return nil
	}
	return time.Date(value.Year(), value.Month(), value.Day(), 0, 0, 0, 0, time.UTC)
}

func nullableTimestamp(value *time.Time) any {
	if value == nil {
		return nil
	}
	return *value
}

func stringPtr(value sql.NullString) *string {
	if !value.Valid {
		return nil
	}
	s := value.String
	return &s
}

func int64Ptr(value sql.NullInt64) *int64 {
	if !value.Valid {
		return nil
	}
	v := value.Int64
	return &v
}

func datePtr(value sql.NullTime) *time.Time {
	if !value.Valid {
		return nil
	}
	t := value.Time.UTC()
	date := time.Date(t.Year(), t.Month(), t.Day(), 0, 0, 0, 0, time.UTC)
	return &date
}

func timestampPtr(value sql.NullTime) *time.Time {
	if !value.Valid {
		return nil
	}
	t := value.Time
	return &t
}

// listQuery は一覧取得用の WHERE 句とプレースホルダを組み立てます。
type listQuery struct {
	args       []any
	conditions []string
}

// where は "column = $n" 条件を追加します。
func (q *listQuery) where(column string, value any) {
	q.args = append(q.args, value)
	q.conditions = append(q.conditions, column+" = $"+strconv.Itoa(len(q.args)))
}

// whereRaw は引数を伴わない条件を追加します。
func (q *listQuery) whereRaw(condition string) {
	q.conditions = append(q.conditions, condition)
}

// whereSearch は columns のいずれかに term を部分一致 (大文字小文字を区別しない) で含む条件を追加します。
// term 中の LIKE メタ文字はエスケープし、文字どおりに照合します。
func (q *listQuery) whereSearch(term string, columns ...string) {
	q.args = append(q.args, "%"+likeEscaper.Replace(term)+"%")
	placeholder := "$" + strconv.Itoa(len(q.args))

	matches := make([]string, len(columns))
	for i, column := range columns {
		matches[i] = column + " ILIKE " + placeholder
	}
	q.conditions = append(q.conditions, "("+strings.Join(matches, " OR ")+")")
}

var likeEscaper = strings.NewReplacer(`\`, `\\`, `%`, `\%`, `_`, `\_`)

// build は limit+1 件を取得するクエリを返します。
func (q *listQuery) build(selectFrom, orderBy string, limit, offset int) string {
	var b strings.Builder
	b.WriteString(selectFrom)
	if len(q.conditions) > 0 {
		b.WriteString(" WHERE ")
		b.WriteString(strings.Join(q.conditions, " AND "))
	}
	b.WriteString(" ORDER BY ")
	b.WriteString(orderBy)

	q.args = append(q.args, limit+1)
	b.WriteString(" LIMIT $" + strconv.Itoa(len(q.args)))
	q.args = append(q.args, offset)
	b.WriteString(" OFFSET $" + strconv.Itoa(len(q.args)))
	return b.String()
}

// collectPage は rows を走査し、limit を超えた分があれば次ページのトークンを返します。
func collectPage[T any](rows pgx.Rows, scan func(pgx.Row) (T, error), limit, offset int) ([]T, string, error) {
	defer rows.Close()

	var items []T
	for rows.Next() {
		item, err := scan(rows)
		if err != nil {
			return nil, "", err
		}
		items = append(items, item)
	}
	if err := rows.Err(); err != nil {
		return nil, "", err
	}

	var nextToken string
	if len(items) > limit {
		nextToken = strconv.Itoa(offset + limit)
		items = items[:limit]
	}
	return items, nextToken, nil
}
