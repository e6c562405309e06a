package client

import (
	"context"
	"fmt"
	"io"
	"mime"
	"strings"

	"github.com/hodamousavipour/banking-dashboard-front/internal/csvio"
)

// maxReportedErrors caps how many per-line CSV errors the toast shows.
const maxReportedErrors = 3

// Importer drives the CSV upload flow: accept check, decode against the
// session mirror, create the new rows, and report the outcome through the
// notifier with the same messages for every path.
type Importer struct {
	session  *Session
	notifier Notifier
}

// NewImporter wires the importer to a session and a notifier.
func NewImporter(session *Session, notifier Notifier) *Importer {
	return &Importer{session: session, notifier: notifier}
}

// ImportFile decodes the upload and creates every accepted row. Decode
// errors abort the whole import: nothing is created when any line is
// invalid. The returned count is the number of created transactions.
func (i *Importer) ImportFile(ctx context.Context, filename, mediaType string, r io.Reader) (int, error) {
	if !IsCSVUpload(filename, mediaType) {
		i.notifier.Error("Please upload a .csv file.")
		return 0, fmt.Errorf("unsupported upload %q", filename)
	}

	raw, err := io.ReadAll(r)
	if err != nil {
		i.notifier.Error("Failed to read the file.")
		return 0, fmt.Errorf("failed to read upload: %w", err)
	}

	result := csvio.ParseTransactionsCSV(string(raw), i.session.Transactions())

	if len(result.Errors) > 0 {
		shown := result.Errors
		if len(shown) > maxReportedErrors {
			shown = shown[:maxReportedErrors]
		}
		i.notifier.Error("Invalid CSV: " + strings.Join(shown, " | "))
		return 0, fmt.Errorf("csv rejected with %d error(s)", len(result.Errors))
	}

	if len(result.ToCreate) == 0 {
		if result.DuplicateCount > 0 {
			i.notifier.Info(fmt.Sprintf("No new transactions to import. %d duplicate record(s) were skipped.", result.DuplicateCount))
			return 0, nil
		}
		i.notifier.Info("No transactions found in the file.")
		return 0, nil
	}

	created := 0
	for _, input := range result.ToCreate {
		if _, err := i.session.Create(ctx, input); err != nil {
			i.notifier.Error(fmt.Sprintf("Import stopped after %d transaction(s): %v", created, err))
			return created, err
		}
		created++
	}

	message := fmt.Sprintf("Imported %d transaction(s).", created)
	if result.DuplicateCount > 0 {
		message += fmt.Sprintf(" %d duplicate(s) skipped.", result.DuplicateCount)
	}
	i.notifier.Success(message)
	return created, nil
}

// IsCSVUpload accepts a file by its .csv extension or a text/csv media
// type, whichever the upload carries.
func IsCSVUpload(filename, mediaType string) bool {
	if strings.HasSuffix(strings.ToLower(filename), ".csv") {
		return true
	}
	parsed, _, err := mime.ParseMediaType(mediaType)
	if err != nil {
		return false
	}
	return parsed == "text/csv"
}
