// pkg/tabular/load.go
// Loads CSV files following the Assess → Intervene → Evaluate pattern.

package tabular

import (
	"encoding/csv"
	"os"
	"path/filepath"
	"strings"

	"github.com/CodeMonkeyCybersecurity/hermes/pkg/hermes_err"
	"github.com/CodeMonkeyCybersecurity/hermes/pkg/hermes_io"
	"github.com/CodeMonkeyCybersecurity/hermes/pkg/shared"
	"github.com/CodeMonkeyCybersecurity/hermes/pkg/xdg"
	cerr "github.com/cockroachdb/errors"
	"github.com/uptrace/opentelemetry-go-extra/otelzap"
	"go.uber.org/zap"
)

// Load reads a CSV file into a Table. The first record is the header row;
// leading BOM and surrounding whitespace are stripped from header names.
func Load(rc *hermes_io.RuntimeContext, path string) (*Table, error) {
	logger := otelzap.Ctx(rc.Ctx)

	// ASSESS - Check file prerequisites
	logger.Info("Assessing CSV file", zap.String("path", path))

	if path == "" {
		return nil, hermes_err.NewValidationError("CSV file path is required")
	}
	if !filepath.IsAbs(path) {
		if abs, err := filepath.Abs(path); err == nil {
			path = abs
		}
	}

	// INTERVENE - Load and parse the file
	logger.Info("Loading CSV data from file")

	f, err := os.Open(path)
	if err != nil {
		return nil, cerr.Wrapf(err, "open CSV file %s", path)
	}
	defer func() { _ = f.Close() }()

	reader := csv.NewReader(f)
	records, err := reader.ReadAll()
	if err != nil {
		return nil, cerr.Wrapf(err, "parse CSV file %s", path)
	}

	// EVALUATE - Validate shape and build the table
	if len(records) == 0 {
		return nil, hermes_err.NewValidationError("CSV file has no header row",
			"The first line of the file must name the columns")
	}

	headers := make([]string, len(records[0]))
	for i, h := range records[0] {
		if i == 0 {
			h = strings.TrimPrefix(h, "\uFEFF")
		}
		headers[i] = strings.TrimSpace(h)
	}

	table := NewTable(path, headers)
	table.Rows = make([]Row, 0, len(records)-1)
	for _, rec := range records[1:] {
		table.Rows = append(table.Rows, Row(rec))
	}

	logger.Info("CSV data loaded",
		zap.Int("rows", len(table.Rows)),
		zap.Strings("headers", table.Headers))

	return table, nil
}

// Write exports a table to a CSV file, header row first, creating the
// parent directory when needed.
func Write(rc *hermes_io.RuntimeContext, path string, table *Table) error {
	logger := otelzap.Ctx(rc.Ctx)

	// ASSESS
	logger.Info("Assessing CSV export target", zap.String("path", path))

	if path == "" {
		return hermes_err.NewValidationError("CSV export path is required")
	}
	if table == nil || len(table.Headers) == 0 {
		return hermes_err.NewValidationError("table has no columns to export")
	}

	// INTERVENE
	if err := xdg.EnsureDir(path); err != nil {
		return cerr.Wrapf(err, "create directory for %s", path)
	}
	f, err := os.OpenFile(path, os.O_WRONLY|os.O_CREATE|os.O_TRUNC, shared.FilePermStandard)
	if err != nil {
		return cerr.Wrapf(err, "create CSV file %s", path)
	}
	defer func() { _ = f.Close() }()

	writer := csv.NewWriter(f)
	if err := writer.Write(table.Headers); err != nil {
		return cerr.Wrap(err, "write CSV header")
	}
	for i, row := range table.Rows {
		if err := writer.Write(row); err != nil {
			return cerr.Wrapf(err, "write CSV row %d", i+1)
		}
	}
	writer.Flush()
	if err := writer.Error(); err != nil {
		return cerr.Wrap(err, "flush CSV writer")
	}

	// EVALUATE
	logger.Info("CSV data exported",
		zap.String("path", path),
		zap.Int("rows", len(table.Rows)))

	return nil
}
