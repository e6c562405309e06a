package handlers

import (
	"fmt"
	"io"
	"log/slog"
	"net/http"
	"strings"
	"time"

	"github.com/gin-gonic/gin"

	"github.com/hodamousavipour/banking-dashboard-front/internal/csvio"
	"github.com/hodamousavipour/banking-dashboard-front/internal/dto"
	"github.com/hodamousavipour/banking-dashboard-front/internal/middleware"
	"github.com/hodamousavipour/banking-dashboard-front/internal/utils/listview"
)

// maxImportErrors caps how many line errors an import response reports.
const maxImportErrors = 3

// exportTransactions godoc
// @Summary Export transactions as CSV
// @Description Streams the collection, most recent first, as a downloadable CSV file
// @Tags transactions
// @Produce  text/csv
// @Success 200 {string} string "CSV document"
// @Failure 500 {object} map[string]string "Failed to export transactions"
// @Router /transactions/export [get]
func (h *transactionHandler) exportTransactions(c *gin.Context) {
	logger := middleware.GetLoggerFromCtx(c.Request.Context())

	txs, _, err := h.txService.ListTransactions(c.Request.Context())
	if err != nil {
		logger.Error("Failed to list transactions for export", slog.String("error", err.Error()))
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to export transactions"})
		return
	}

	// Export the full collection most recent first, the same ordering the
	// transactions page shows without filters.
	view := listview.Derive(txs, listview.Filters{}, 1, len(txs)+1)
	body := csvio.BuildTransactionsCSV(view.Items)

	filename := fmt.Sprintf("transactions-%s.csv", time.Now().UTC().Format("2006-01-02"))
	c.Header("Content-Disposition", fmt.Sprintf("attachment; filename=%q", filename))
	c.Data(http.StatusOK, "text/csv", []byte(body))
}

// importTransactions godoc
// @Summary Import transactions from a CSV file
// @Description Accepts a multipart .csv upload; creation is all-or-nothing when any line has an error, duplicates are skipped silently
// @Tags transactions
// @Accept  multipart/form-data
// @Produce  json
// @Param   file formData file true "CSV file (Date,Amount,Description,Type)"
// @Success 200 {object} dto.ImportTransactionsResponse
// @Failure 400 {object} map[string]string "Not a CSV file or invalid content"
// @Failure 500 {object} map[string]string "Failed to import transactions"
// @Router /transactions/import [post]
func (h *transactionHandler) importTransactions(c *gin.Context) {
	logger := middleware.GetLoggerFromCtx(c.Request.Context())

	fileHeader, err := c.FormFile("file")
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Missing \"file\" upload"})
		return
	}

	if !isCSVUpload(fileHeader.Filename, fileHeader.Header.Get("Content-Type")) {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Please upload a .csv file."})
		return
	}

	file, err := fileHeader.Open()
	if err != nil {
		logger.Error("Failed to open uploaded file", slog.String("error", err.Error()))
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to read uploaded file"})
		return
	}
	defer file.Close()

	text, err := io.ReadAll(file)
	if err != nil {
		logger.Error("Failed to read uploaded file", slog.String("error", err.Error()))
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to read uploaded file"})
		return
	}

	existing, _, err := h.txService.ListTransactions(c.Request.Context())
	if err != nil {
		logger.Error("Failed to list transactions for import", slog.String("error", err.Error()))
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to import transactions"})
		return
	}

	result := csvio.ParseTransactionsCSV(string(text), existing)

	// Any line error suppresses creation entirely; duplicates alone do not.
	if len(result.Errors) > 0 {
		errs := result.Errors
		if len(errs) > maxImportErrors {
			errs = errs[:maxImportErrors]
		}
		logger.Warn("CSV import rejected", slog.Int("errors", len(result.Errors)))
		c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid CSV: " + strings.Join(errs, " | ")})
		return
	}

	created := 0
	for _, input := range result.ToCreate {
		if _, err := h.txService.CreateTransaction(c.Request.Context(), input); err != nil {
			logger.Error("Failed to create imported transaction", slog.String("error", err.Error()))
			c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to import transactions"})
			return
		}
		created++
	}

	logger.Info("CSV import finished", slog.Int("created", created), slog.Int("duplicates", result.DuplicateCount))
	c.JSON(http.StatusOK, dto.ImportTransactionsResponse{
		Created:        created,
		DuplicateCount: result.DuplicateCount,
	})
}

// isCSVUpload mirrors the file picker acceptance rule: the name must end in
// .csv or the declared media type must be text/csv.
func isCSVUpload(filename, contentType string) bool {
	if strings.HasSuffix(strings.ToLower(filename), ".csv") {
		return true
	}
	mediaType := contentType
	if idx := strings.Index(mediaType, ";"); idx >= 0 {
		mediaType = mediaType[:idx]
	}
	return strings.TrimSpace(mediaType) == "text/csv"
}
