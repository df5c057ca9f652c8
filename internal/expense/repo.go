package expense

import (
	"context"
	"errors"
	"fmt"
	"strings"
	"time"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"
)

// Repository is the persistence surface for expenses. Get and Update return
// (nil, nil) when no row matches; Delete reports whether a row was removed.
type Repository interface {
	Insert(ctx context.Context, exp *Expense) (*Expense, error)
	List(ctx context.Context) ([]Expense, error)
	Get(ctx context.Context, id int) (*Expense, error)
	Update(ctx context.Context, id int, p Patch) (*Expense, error)
	Delete(ctx context.Context, id int) (bool, error)
	MonthlySummary(ctx context.Context, userID int, from, to time.Time) (*MonthlySummary, error)
}

const expenseColumns = "id, user_id, amount, category, description, date, created_at"

type PGRepository struct {
	Pool *pgxpool.Pool
}

func NewRepository(pool *pgxpool.Pool) *PGRepository {
	return &PGRepository{Pool: pool}
}

func (r *PGRepository) Insert(ctx context.Context, exp *Expense) (*Expense, error) {
	row := r.Pool.QueryRow(
		ctx,
		`INSERT INTO expenses (user_id, amount, category, description, date)
         VALUES ($1, $2, $3, $4, $5)
         RETURNING `+expenseColumns,
		exp.UserID, exp.Amount, exp.Category, exp.Description, exp.Date,
	)
	return scanExpense(row)
}

func (r *PGRepository) List(ctx context.Context) ([]Expense, error) {
	rows, err := r.Pool.Query(ctx, `SELECT `+expenseColumns+` FROM expenses`)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	out := make([]Expense, 0)
	for rows.Next() {
		var e Expense
		if err := rows.Scan(
			&e.ID, &e.UserID, &e.Amount, &e.Category,
			&e.Description, &e.Date, &e.CreatedAt,
		); err != nil {
			return nil, err
		}
		out = append(out, e)
	}
	return out, rows.Err()
}

func (r *PGRepository) Get(ctx context.Context, id int) (*Expense, error) {
	row := r.Pool.QueryRow(ctx, `SELECT `+expenseColumns+` FROM expenses WHERE id = $1`, id)
	exp, err := scanExpense(row)
	if errors.Is(err, pgx.ErrNoRows) {
		return nil, nil
	}
	return exp, err
}

func (r *PGRepository) Update(ctx context.Context, id int, p Patch) (*Expense, error) {
	sets := make([]string, 0, 4)
	args := make([]any, 0, 5)
	set := func(col string, v any) {
		args = append(args, v)
		sets = append(sets, fmt.Sprintf("%s = $%d", col, len(args)))
	}

	if p.Amount != nil {
		set("amount", *p.Amount)
	}
	if p.Category != nil {
		set("category", *p.Category)
	}
	if p.Description != nil {
		set("description", *p.Description)
	}
	if p.Date != nil {
		set("date", *p.Date)
	}

	if len(sets) == 0 {
		return r.Get(ctx, id)
	}

	args = append(args, id)
	query := fmt.Sprintf(
		`UPDATE expenses SET %s WHERE id = $%d RETURNING %s`,
		strings.Join(sets, ", "), len(args), expenseColumns,
	)
	exp, err := scanExpense(r.Pool.QueryRow(ctx, query, args...))
	if errors.Is(err, pgx.ErrNoRows) {
		return nil, nil
	}
	return exp, err
}

func (r *PGRepository) Delete(ctx context.Context, id int) (bool, error) {
	tag, err := r.Pool.Exec(ctx, `DELETE FROM expenses WHERE id = $1`, id)
	if err != nil {
		return false, err
	}
	return tag.RowsAffected() > 0, nil
}

func (r *PGRepository) MonthlySummary(ctx context.Context, userID int, from, to time.Time) (*MonthlySummary, error) {
	rows, err := r.Pool.Query(
		ctx,
		`SELECT category, SUM(amount)::bigint
         FROM expenses
         WHERE user_id = $1 AND date >= $2 AND date < $3
         GROUP BY category
         ORDER BY SUM(amount) DESC`,
		userID, from, to,
	)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	sum := &MonthlySummary{
		UserID:     userID,
		Month:      from.Format("2006-01"),
		Categories: make([]CategoryTotal, 0),
	}
	for rows.Next() {
		var ct CategoryTotal
		if err := rows.Scan(&ct.Category, &ct.Total); err != nil {
			return nil, err
		}
		sum.Total += ct.Total
		sum.Categories = append(sum.Categories, ct)
	}
	return sum, rows.Err()
}

func scanExpense(row pgx.Row) (*Expense, error) {
	var e Expense
	if err := row.Scan(
		&e.ID, &e.UserID, &e.Amount, &e.Category,
		&e.Description, &e.Date, &e.CreatedAt,
	); err != nil {
		return nil, err
	}
	return &e, nil
}
