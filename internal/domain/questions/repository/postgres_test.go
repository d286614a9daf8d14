package repository

import (
	"context"
	"errors"
	"testing"

	"github.com/IT-Nick/promo-quiz/internal/domain/model"
	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgconn"
	"github.com/stretchr/testify/require"
)

type fakeRows struct {
	data   []model.Question
	pos    int
	closed bool
}

func (r *fakeRows) Close()                                       { r.closed = true }
func (r *fakeRows) Err() error                                   { return nil }
func (r *fakeRows) CommandTag() pgconn.CommandTag                { return pgconn.CommandTag{} }
func (r *fakeRows) FieldDescriptions() []pgconn.FieldDescription { return nil }
func (r *fakeRows) Values() ([]any, error)                       { return nil, nil }
func (r *fakeRows) RawValues() [][]byte                          { return nil }
func (r *fakeRows) Conn() *pgx.Conn                              { return nil }

func (r *fakeRows) Next() bool {
	if r.pos >= len(r.data) {
		return false
	}
	r.pos++
	return true
}

func (r *fakeRows) Scan(dest ...any) error {
	q := r.data[r.pos-1]
	*dest[0].(*int) = q.ID
	*dest[1].(*string) = q.Text
	*dest[2].(*[]string) = q.Options
	*dest[3].(*int) = q.AnswerIndex
	return nil
}

type fakeQuerier struct {
	rows  *fakeRows
	err   error
	query string
}

func (q *fakeQuerier) Query(_ context.Context, sql string, _ ...any) (pgx.Rows, error) {
	q.query = sql
	if q.err != nil {
		return nil, q.err
	}
	return q.rows, nil
}

func TestPostgresQuestionRepositoryLoad(t *testing.T) {
	rows := &fakeRows{data: []model.Question{
		{ID: 10, Text: "Первый", Options: []string{"a", "b"}, AnswerIndex: 1},
		{ID: 20, Text: "Второй", Options: []string{"a", "b"}, AnswerIndex: 0},
	}}
	db := &fakeQuerier{rows: rows}

	questions, err := NewPostgresQuestionRepository(db).Load(context.Background())
	require.NoError(t, err)
	require.Equal(t, rows.data, questions)
	require.Equal(t, selectQuestions, db.query)
	require.True(t, rows.closed)
}

func TestPostgresQuestionRepositoryQueryError(t *testing.T) {
	db := &fakeQuerier{err: errors.New("connection refused")}

	_, err := NewPostgresQuestionRepository(db).Load(context.Background())
	require.ErrorContains(t, err, "connection refused")
}
