package income

import (
	"context"
	"errors"
	"fmt"
	"strings"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"
)

// Repository is the persistence surface for incomes. Get and Update return
// (nil, nil) when no row matches; Delete reports whether a row was removed.
type Repository interface {
	Insert(ctx context.Context, inc *Income) (*Income, error)
	List(ctx context.Context) ([]Income, error)
	Get(ctx context.Context, id int) (*Income, error)
	Update(ctx context.Context, id int, p Patch) (*Income, error)
	Delete(ctx context.Context, id int) (bool, error)
}

const incomeColumns = "id, user_id, amount, source, date, is_recurring, frequency, created_at"

type PGRepository struct {
	Pool *pgxpool.Pool
}

func NewRepository(pool *pgxpool.Pool) *PGRepository {
	return &PGRepository{Pool: pool}
}

func (r *PGRepository) Insert(ctx context.Context, inc *Income) (*Income, error) {
	row := r.Pool.QueryRow(
		ctx,
		`INSERT INTO incomes (user_id, amount, source, date, is_recurring, frequency)
         VALUES ($1, $2, $3, $4, $5, $6)
         RETURNING `+incomeColumns,
		inc.UserID, inc.Amount, inc.Source, inc.Date, inc.IsRecurring, inc.Frequency,
	)
	return scanIncome(row)
}

func (r *PGRepository) List(ctx context.Context) ([]Income, error) {
	rows, err := r.Pool.Query(ctx, `SELECT `+incomeColumns+` FROM incomes`)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	out := make([]Income, 0)
	for rows.Next() {
		var inc Income
		if err := rows.Scan(
			&inc.ID, &inc.UserID, &inc.Amount, &inc.Source,
			&inc.Date, &inc.IsRecurring, &inc.Frequency, &inc.CreatedAt,
		); err != nil {
			return nil, err
		}
		out = append(out, inc)
	}
	return out, rows.Err()
}

func (r *PGRepository) Get(ctx context.Context, id int) (*Income, error) {
	row := r.Pool.QueryRow(ctx, `SELECT `+incomeColumns+` FROM incomes WHERE id = $1`, id)
	inc, err := scanIncome(row)
	if errors.Is(err, pgx.ErrNoRows) {
		return nil, nil
	}
	return inc, err
}

func (r *PGRepository) Update(ctx context.Context, id int, p Patch) (*Income, error) {
	sets := make([]string, 0, 5)
	args := make([]any, 0, 6)
	set := func(col string, v any) {
		args = append(args, v)
		sets = append(sets, fmt.Sprintf("%s = $%d", col, len(args)))
	}

	if p.Amount != nil {
		set("amount", *p.Amount)
	}
	if p.Source != nil {
		set("source", *p.Source)
	}
	if p.Date != nil {
		set("date", *p.Date)
	}
	if p.IsRecurring != nil {
		set("is_recurring", *p.IsRecurring)
	}
	if p.Frequency != nil {
		set("frequency", *p.Frequency)
	}

	// Nothing to change: report the current row so the caller still gets
	// its 200-or-404 answer.
	if len(sets) == 0 {
		return r.Get(ctx, id)
	}

	args = append(args, id)
	query := fmt.Sprintf(
		`UPDATE incomes SET %s WHERE id = $%d RETURNING %s`,
		strings.Join(sets, ", "), len(args), incomeColumns,
	)
	inc, err := scanIncome(r.Pool.QueryRow(ctx, query, args...))
	if errors.Is(err, pgx.ErrNoRows) {
		return nil, nil
	}
	return inc, err
}

func (r *PGRepository) Delete(ctx context.Context, id int) (bool, error) {
	tag, err := r.Pool.Exec(ctx, `DELETE FROM incomes WHERE id = $1`, id)
	if err != nil {
		return false, err
	}
	return tag.RowsAffected() > 0, nil
}

func scanIncome(row pgx.Row) (*Income, error) {
	var inc Income
	if err := row.Scan(
		&inc.ID, &inc.UserID, &inc.Amount, &inc.Source,
		&inc.Date, &inc.IsRecurring, &inc.Frequency, &inc.CreatedAt,
	); err != nil {
		return nil, err
	}
	return &inc, nil
}
