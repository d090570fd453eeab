package loans

import (
	"time"

	"github.com/loanledger/loanledger/pkg/errcodes"
	"github.com/loanledger/loanledger/pkg/models"
)

// FinePerDay is the amount charged per whole day a return is overdue.
const FinePerDay = 10

// CalculateFine maps an issue date and a return date (both YYYY-MM-DD) to a
// fine amount. Same-day or early returns cost nothing; anything later costs
// FinePerDay per whole day. There is no grace period and no cap.
func CalculateFine(dateIssued, dateReturned string) (int, error) {
	issued, err := time.Parse(models.DateFormat, dateIssued)
	if err != nil {
		return 0, errcodes.InvalidDate(dateIssued)
	}
	returned, err := time.Parse(models.DateFormat, dateReturned)
	if err != nil {
		return 0, errcodes.InvalidDate(dateReturned)
	}

	daysOverdue := int(returned.Sub(issued).Hours() / 24)
	if daysOverdue > 0 {
		return daysOverdue * FinePerDay, nil
	}
	return 0, nil
}
