package dataset

import (
	"encoding/csv"
	"errors"
	"fmt"
	"io"
	"log/slog"
	"os"
	"path/filepath"
	"strings"

	"github.com/xuri/excelize/v2"
	"golang.org/x/text/encoding/unicode"
	"golang.org/x/text/transform"
)

// ErrNoHeader is returned when the input has no header row.
var ErrNoHeader = errors.New("no header row")

// Extensions lists the file extensions Load reads. Anything else is read as CSV.
var Extensions = []string{".csv", ".xlsx", ".xlsm"}

// Load reads path into a Dataset, choosing the reader by file extension.
// .xlsx and .xlsm files are read from their first sheet, everything else is
// treated as CSV.
func Load(path string, logger *slog.Logger) (*Dataset, error) {
	switch strings.ToLower(filepath.Ext(path)) {
	case ".xlsx", ".xlsm":
		return LoadXLSX(path, logger)
	default:
		return LoadCSV(path, logger)
	}
}

// LoadCSV opens path and reads it with ReadCSV.
func LoadCSV(path string, logger *slog.Logger) (*Dataset, error) {
	f, err := os.Open(path) //nolint:gosec // path comes from the command line
	if err != nil {
		return nil, fmt.Errorf("open %s: %w", path, err)
	}
	defer func() { _ = f.Close() }()

	ds, err := ReadCSV(f, logger)
	if err != nil {
		return nil, fmt.Errorf("read %s: %w", path, err)
	}
	return ds, nil
}

// ReadCSV reads a whole CSV document. A leading UTF-8 byte order mark is
// dropped. Records that fail to parse are skipped and logged at debug level.
func ReadCSV(r io.Reader, logger *slog.Logger) (*Dataset, error) {
	if logger == nil {
		logger = slog.New(slog.DiscardHandler)
	}

	cr := csv.NewReader(transform.NewReader(r, unicode.BOMOverride(unicode.UTF8.NewDecoder())))
	cr.FieldsPerRecord = -1
	cr.LazyQuotes = true

	header, err := cr.Read()
	if errors.Is(err, io.EOF) {
		return nil, ErrNoHeader
	}
	if err != nil {
		return nil, fmt.Errorf("read header: %w", err)
	}

	var records [][]string
	for {
		rec, err := cr.Read()
		if errors.Is(err, io.EOF) {
			break
		}
		if err != nil {
			var perr *csv.ParseError
			if errors.As(err, &perr) {
				logger.Debug("skipping malformed record", "line", perr.StartLine, "error", perr.Err)
				continue
			}
			return nil, err
		}
		if blank(rec) {
			continue
		}
		records = append(records, rec)
	}

	logger.Debug("loaded csv", "columns", len(header), "rows", len(records))
	return New(header, records), nil
}

// LoadXLSX reads the first sheet of a workbook. The first non-empty row is
// the header.
func LoadXLSX(path string, logger *slog.Logger) (*Dataset, error) {
	if logger == nil {
		logger = slog.New(slog.DiscardHandler)
	}

	f, err := excelize.OpenFile(path)
	if err != nil {
		return nil, fmt.Errorf("open %s: %w", path, err)
	}
	defer func() { _ = f.Close() }()

	sheets := f.GetSheetList()
	if len(sheets) == 0 {
		return nil, fmt.Errorf("read %s: %w", path, ErrNoHeader)
	}

	rows, err := f.GetRows(sheets[0])
	if err != nil {
		return nil, fmt.Errorf("read sheet %q: %w", sheets[0], err)
	}

	for len(rows) > 0 && blank(rows[0]) {
		rows = rows[1:]
	}
	if len(rows) == 0 {
		return nil, fmt.Errorf("read %s: %w", path, ErrNoHeader)
	}

	records := make([][]string, 0, len(rows)-1)
	for _, rec := range rows[1:] {
		if blank(rec) {
			continue
		}
		records = append(records, rec)
	}

	logger.Debug("loaded xlsx", "sheet", sheets[0], "columns", len(rows[0]), "rows", len(records))
	return New(rows[0], records), nil
}

func blank(rec []string) bool {
	for _, v := range rec {
		if strings.TrimSpace(v) != "" {
			return false
		}
	}
	return true
}
