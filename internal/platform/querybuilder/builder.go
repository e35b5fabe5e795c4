package querybuilder

import (
	"fmt"
	"strconv"
	"strings"
)

// stmt accumulates SQL text and bound args, handing out $n placeholders.
type stmt struct {
	sql  strings.Builder
	args []any
}

func (s *stmt) write(text string) {
	s.sql.WriteString(text)
}

// bind registers v as the next argument and returns its placeholder.
func (s *stmt) bind(v any) string {
	s.args = append(s.args, v)
	return "$" + strconv.Itoa(len(s.args))
}

// expand rewrites each ? in expr to the next bound placeholder.
func (s *stmt) expand(expr string, vals []any) string {
	if len(vals) == 0 {
		return expr
	}
	var out strings.Builder
	next := 0
	for i := 0; i < len(expr); i++ {
		if expr[i] == '?' && next < len(vals) {
			out.WriteString(s.bind(vals[next]))
			next++
			continue
		}
		out.WriteByte(expr[i])
	}
	return out.String()
}

// Condition writes one WHERE predicate into the statement.
type Condition func(s *stmt)

func Eq(column string, value any) Condition {
	return func(s *stmt) {
		s.write(column)
		s.write(" = ")
		s.write(s.bind(value))
	}
}

func In(column string, values []any) Condition {
	return func(s *stmt) {
		// An empty IN list matches nothing rather than erroring.
		if len(values) == 0 {
			s.write("1=0")
			return
		}
		s.write(column)
		s.write(" IN (")
		for i, v := range values {
			if i > 0 {
				s.write(", ")
			}
			s.write(s.bind(v))
		}
		s.write(")")
	}
}

func IsNull(column string) Condition {
	return func(s *stmt) {
		s.write(column)
		s.write(" IS NULL")
	}
}

func Expr(expr string, args ...any) Condition {
	return func(s *stmt) {
		s.write(s.expand(expr, args))
	}
}

func (s *stmt) writeWhere(conditions []Condition) {
	if len(conditions) == 0 {
		return
	}
	s.write(" WHERE ")
	for i, c := range conditions {
		if i > 0 {
			s.write(" AND ")
		}
		c(s)
	}
}

type SelectBuilder struct {
	columns []string
	table   string
	where   []Condition
	orderBy []string
}

func Select(columns ...string) *SelectBuilder {
	return &SelectBuilder{columns: append([]string(nil), columns...)}
}

func (b *SelectBuilder) From(table string) *SelectBuilder {
	b.table = table
	return b
}

func (b *SelectBuilder) Where(conditions ...Condition) *SelectBuilder {
	b.where = append(b.where, conditions...)
	return b
}

func (b *SelectBuilder) OrderBy(parts ...string) *SelectBuilder {
	b.orderBy = append(b.orderBy, parts...)
	return b
}

func (b *SelectBuilder) ToSQL() (string, []any, error) {
	if len(b.columns) == 0 {
		return "", nil, fmt.Errorf("select columns are required")
	}
	if strings.TrimSpace(b.table) == "" {
		return "", nil, fmt.Errorf("select table is required")
	}

	var s stmt
	s.write("SELECT ")
	s.write(strings.Join(b.columns, ", "))
	s.write(" FROM ")
	s.write(b.table)
	s.writeWhere(b.where)
	if len(b.orderBy) > 0 {
		s.write(" ORDER BY ")
		s.write(strings.Join(b.orderBy, ", "))
	}

	return s.sql.String(), s.args, nil
}

type InsertBuilder struct {
	table   string
	columns []string
	rows    [][]any
	suffix  string
}

func InsertInto(table string) *InsertBuilder {
	return &InsertBuilder{table: table}
}

func (b *InsertBuilder) Columns(columns ...string) *InsertBuilder {
	b.columns = append([]string(nil), columns...)
	return b
}

func (b *InsertBuilder) Values(values ...any) *InsertBuilder {
	b.rows = append(b.rows, append([]any(nil), values...))
	return b
}

func (b *InsertBuilder) Suffix(sql string) *InsertBuilder {
	b.suffix = strings.TrimSpace(sql)
	return b
}

func (b *InsertBuilder) ToSQL() (string, []any, error) {
	if strings.TrimSpace(b.table) == "" {
		return "", nil, fmt.Errorf("insert table is required")
	}
	if len(b.columns) == 0 {
		return "", nil, fmt.Errorf("insert columns are required")
	}
	if len(b.rows) == 0 {
		return "", nil, fmt.Errorf("insert values are required")
	}

	var s stmt
	s.write("INSERT INTO ")
	s.write(b.table)
	s.write(" (")
	s.write(strings.Join(b.columns, ", "))
	s.write(") VALUES ")

	for rowIdx, row := range b.rows {
		if len(row) != len(b.columns) {
			return "", nil, fmt.Errorf("insert row %d has %d values, expected %d", rowIdx, len(row), len(b.columns))
		}
		if rowIdx > 0 {
			s.write(", ")
		}
		s.write("(")
		for colIdx, value := range row {
			if colIdx > 0 {
				s.write(", ")
			}
			s.write(s.bind(value))
		}
		s.write(")")
	}

	if b.suffix != "" {
		s.write(" ")
		s.write(s.expand(b.suffix, nil))
	}

	return s.sql.String(), s.args, nil
}

type setClause struct {
	column string
	write  func(s *stmt)
}

type UpdateBuilder struct {
	table string
	sets  []setClause
	where []Condition
}

func Update(table string) *UpdateBuilder {
	return &UpdateBuilder{table: table}
}

func (b *UpdateBuilder) Set(column string, value any) *UpdateBuilder {
	b.sets = append(b.sets, setClause{
		column: column,
		write:  func(s *stmt) { s.write(s.bind(value)) },
	})
	return b
}

func (b *UpdateBuilder) SetExpr(column, expr string, args ...any) *UpdateBuilder {
	b.sets = append(b.sets, setClause{
		column: column,
		write:  func(s *stmt) { s.write(s.expand(expr, args)) },
	})
	return b
}

func (b *UpdateBuilder) Where(conditions ...Condition) *UpdateBuilder {
	b.where = append(b.where, conditions...)
	return b
}

func (b *UpdateBuilder) ToSQL() (string, []any, error) {
	if strings.TrimSpace(b.table) == "" {
		return "", nil, fmt.Errorf("update table is required")
	}
	if len(b.sets) == 0 {
		return "", nil, fmt.Errorf("update sets are required")
	}

	var s stmt
	s.write("UPDATE ")
	s.write(b.table)
	s.write(" SET ")
	for i, set := range b.sets {
		if i > 0 {
			s.write(", ")
		}
		s.write(set.column)
		s.write(" = ")
		set.write(&s)
	}
	s.writeWhere(b.where)

	return s.sql.String(), s.args, nil
}
