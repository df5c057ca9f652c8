package income

import "time"

// Recurrence frequencies accepted for an income; mirrors the frequency
// enum in the database.
const (
	FrequencyDaily   = "daily"
	FrequencyWeekly  = "weekly"
	FrequencyMonthly = "monthly"
	FrequencyYearly  = "yearly"
	FrequencyOneTime = "one-time"
)

// Income is a single earned amount, stored in the smallest currency unit.
type Income struct {
	ID          int       `db:"id" json:"id"`
	UserID      int       `db:"user_id" json:"userId"`
	Amount      int64     `db:"amount" json:"amount"`
	Source      string    `db:"source" json:"source"`
	Date        time.Time `db:"date" json:"date"`
	IsRecurring bool      `db:"is_recurring" json:"isRecurring"`
	Frequency   string    `db:"frequency" json:"frequency"`
	CreatedAt   time.Time `db:"created_at" json:"createdAt"`
}

type CreateRequest struct {
	UserID      int     `json:"userId" validate:"required"`
	Amount      int64   `json:"amount" validate:"required,gt=0"`
	Source      string  `json:"source" validate:"required"`
	Date        string  `json:"date" validate:"required,datetime=2006-01-02T15:04:05Z07:00"`
	IsRecurring *bool   `json:"isRecurring"`
	Frequency   *string `json:"frequency" validate:"omitempty,oneof=daily weekly monthly yearly one-time"`
}

type UpdateRequest struct {
	Amount      *int64  `json:"amount" validate:"omitempty,gt=0"`
	Source      *string `json:"source" validate:"omitempty,min=1"`
	Date        *string `json:"date" validate:"omitempty,datetime=2006-01-02T15:04:05Z07:00"`
	IsRecurring *bool   `json:"isRecurring"`
	Frequency   *string `json:"frequency" validate:"omitempty,oneof=daily weekly monthly yearly one-time"`
}

// Patch carries the fields an update actually applies; nil means untouched.
type Patch struct {
	Amount      *int64
	Source      *string
	Date        *time.Time
	IsRecurring *bool
	Frequency   *string
}
