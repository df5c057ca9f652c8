package expense

import (
	"bytes"
	"fmt"
	"strconv"
	"time"

	"github.com/gofiber/fiber/v2"
	"github.com/phpdave11/gofpdf"

	"github.com/hmanriquer/expensi-server/internal/respond"
)

// MonthlyReport renders a PDF report of one user's expenses for a calendar
// month. Query parameters: userId (integer) and month (YYYY-MM).
func (h *Handler) MonthlyReport(c *fiber.Ctx) error {
	userID, err := strconv.Atoi(c.Query("userId"))
	if err != nil || userID <= 0 {
		return respond.Fail(c, fiber.StatusBadRequest, "userId must be a positive integer")
	}

	from, err := time.Parse("2006-01", c.Query("month"))
	if err != nil {
		return respond.Fail(c, fiber.StatusBadRequest, "month must be formatted YYYY-MM")
	}
	to := from.AddDate(0, 1, 0)

	sum, err := h.Repo.MonthlySummary(c.Context(), userID, from, to)
	if err != nil {
		return err
	}

	pdf, err := buildMonthlyPDF(sum)
	if err != nil {
		return err
	}

	c.Set(fiber.HeaderContentType, "application/pdf")
	c.Set(fiber.HeaderContentDisposition,
		fmt.Sprintf("attachment; filename=expenses-%s.pdf", sum.Month))
	return c.Send(pdf)
}

func buildMonthlyPDF(sum *MonthlySummary) ([]byte, error) {
	pdf := gofpdf.New("P", "mm", "A4", "")
	pdf.SetTitle("Expendi Monthly Expense Report", false)
	pdf.AddPage()

	pdf.SetFont("Helvetica", "B", 18)
	pdf.Cell(0, 10, "Expendi Expense Report")
	pdf.Ln(10)

	pdf.SetFont("Helvetica", "", 12)
	pdf.Cell(0, 8, fmt.Sprintf("Month: %s", sum.Month))
	pdf.Ln(6)
	pdf.Cell(0, 8, fmt.Sprintf("User: %d", sum.UserID))
	pdf.Ln(10)

	pdf.SetFont("Helvetica", "B", 14)
	pdf.Cell(0, 8, fmt.Sprintf("Total Spend: %s", formatAmount(sum.Total)))
	pdf.Ln(10)

	pdf.SetFont("Helvetica", "B", 13)
	pdf.Cell(0, 8, "Category Breakdown")
	pdf.Ln(8)

	pdf.SetFont("Helvetica", "B", 11)
	pdf.Cell(80, 7, "Category")
	pdf.Cell(50, 7, "Amount")
	pdf.Cell(30, 7, "%")
	pdf.Ln(7)

	pdf.SetFont("Helvetica", "", 11)
	for _, ct := range sum.Categories {
		percent := 0.0
		if sum.Total > 0 {
			percent = float64(ct.Total) / float64(sum.Total) * 100
		}
		pdf.Cell(80, 7, ct.Category)
		pdf.Cell(50, 7, formatAmount(ct.Total))
		pdf.Cell(30, 7, fmt.Sprintf("%.1f%%", percent))
		pdf.Ln(7)
	}

	var buf bytes.Buffer
	if err := pdf.Output(&buf); err != nil {
		return nil, err
	}
	return buf.Bytes(), nil
}

// formatAmount renders a smallest-unit amount with two decimal places.
func formatAmount(units int64) string {
	return fmt.Sprintf("%d.%02d", units/100, units%100)
}
