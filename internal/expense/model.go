package expense

import "time"

// Expense is a single spent amount, stored in the smallest currency unit.
// Description is optional and serializes as null when absent.
type Expense struct {
	ID          int       `db:"id" json:"id"`
	UserID      int       `db:"user_id" json:"userId"`
	Amount      int64     `db:"amount" json:"amount"`
	Category    string    `db:"category" json:"category"`
	Description *string   `db:"description" json:"description"`
	Date        time.Time `db:"date" json:"date"`
	CreatedAt   time.Time `db:"created_at" json:"createdAt"`
}

type CreateRequest struct {
	UserID      int     `json:"userId" validate:"required"`
	Amount      int64   `json:"amount" validate:"required,gt=0"`
	Category    string  `json:"category" validate:"required"`
	Description *string `json:"description"`
	Date        string  `json:"date" validate:"required,datetime=2006-01-02T15:04:05Z07:00"`
}

type UpdateRequest struct {
	Amount      *int64  `json:"amount" validate:"omitempty,gt=0"`
	Category    *string `json:"category" validate:"omitempty,min=1"`
	Description *string `json:"description"`
	Date        *string `json:"date" validate:"omitempty,datetime=2006-01-02T15:04:05Z07:00"`
}

// Patch carries the fields an update actually applies; nil means untouched.
type Patch struct {
	Amount      *int64
	Category    *string
	Description *string
	Date        *time.Time
}

// CategoryTotal is one line of a monthly report.
type CategoryTotal struct {
	Category string `json:"category"`
	Total    int64  `json:"total"`
}

// MonthlySummary aggregates a user's expenses for one calendar month.
type MonthlySummary struct {
	UserID     int             `json:"userId"`
	Month      string          `json:"month"` // YYYY-MM
	Total      int64           `json:"total"`
	Categories []CategoryTotal `json:"categories"`
}
