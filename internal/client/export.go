package client

import (
	"fmt"
	"time"

	"github.com/hodamousavipour/banking-dashboard-front/internal/core/domain"
	"github.com/hodamousavipour/banking-dashboard-front/internal/csvio"
)

// Export is a ready-to-save CSV download.
type Export struct {
	Filename    string
	ContentType string
	Data        []byte
}

// BuildExport serializes the given transactions, preserving their order,
// into a dated download. The filename uses the UTC day.
func BuildExport(transactions []domain.Transaction, now time.Time) Export {
	return Export{
		Filename:    fmt.Sprintf("transactions-%s.csv", now.UTC().Format("2006-01-02")),
		ContentType: "text/csv",
		Data:        []byte(csvio.BuildTransactionsCSV(transactions)),
	}
}
