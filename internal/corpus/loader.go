package corpus

import (
	"encoding/csv"
	"fmt"
	"io"
	"os"
	"strings"

	"github.com/google/uuid"
	"github.com/mitchellh/mapstructure"
	"go.uber.org/zap"

	"github.com/skillradar/skillradar/internal/errors"
)

var requiredColumns = []string{"title", "company", "location", "description"}

var idNamespace = uuid.MustParse("6ba7b810-9dad-11d1-80b4-00c04fd430c8")

// RowError describes a single rejected record. Rejected rows are reported,
// not silently dropped; the rest of the file still loads.
type RowError struct {
	Line   int
	Reason string
}

func (e RowError) Error() string {
	return fmt.Sprintf("row %d: %s", e.Line, e.Reason)
}

// LoadFile reads a corpus from a CSV file. A missing file or a header
// without a required column is a CorpusLoad error; callers are expected to
// fall back to Sample() and continue in degraded mode.
func LoadFile(path string, logger *zap.Logger) (*Corpus, []RowError, error) {
	file, err := os.Open(path)
	if err != nil {
		return nil, nil, errors.CorpusLoad(fmt.Sprintf("opening jobs file %q", path), err)
	}
	defer file.Close()

	return Load(file, logger)
}

// Load reads a corpus from CSV data with a header row of
// title,company,location,description and optional url,closing_date,salary_range.
func Load(r io.Reader, logger *zap.Logger) (*Corpus, []RowError, error) {
	reader := csv.NewReader(r)
	reader.TrimLeadingSpace = true

	header, err := reader.Read()
	if err != nil {
		return nil, nil, errors.CorpusLoad("reading csv header", err)
	}

	columns := make([]string, len(header))
	for i, name := range header {
		columns[i] = strings.ToLower(strings.TrimSpace(name))
	}

	for _, required := range requiredColumns {
		if !contains(columns, required) {
			return nil, nil, errors.CorpusLoad(fmt.Sprintf("missing required column %q", required), nil)
		}
	}

	var (
		items     []*JobPosting
		rowErrors []RowError
	)

	for line := 2; ; line++ {
		record, err := reader.Read()
		if err == io.EOF {
			break
		}
		if err != nil {
			rowErrors = append(rowErrors, reportRow(logger, line, err.Error()))
			continue
		}

		row := make(map[string]string, len(columns))
		for i, value := range record {
			if i < len(columns) {
				row[columns[i]] = strings.TrimSpace(value)
			}
		}

		if missing := missingRequired(row); missing != "" {
			rowErrors = append(rowErrors, reportRow(logger, line, fmt.Sprintf("empty required field %q", missing)))
			continue
		}

		posting, err := decodeRow(row)
		if err != nil {
			rowErrors = append(rowErrors, reportRow(logger, line, err.Error()))
			continue
		}

		if posting.ID == "" {
			posting.ID = uuid.NewSHA1(idNamespace, []byte(strings.Join(record, "|"))).String()
		}
		posting.Skills = ExtractSkills(posting.Description)

		items = append(items, posting)
	}

	return &Corpus{Items: items}, rowErrors, nil
}

func decodeRow(row map[string]string) (*JobPosting, error) {
	var posting JobPosting

	cfg := &mapstructure.DecoderConfig{
		Result:  &posting,
		TagName: "json",
	}
	decoder, err := mapstructure.NewDecoder(cfg)
	if err != nil {
		return nil, err
	}
	if err := decoder.Decode(row); err != nil {
		return nil, err
	}

	return &posting, nil
}

func missingRequired(row map[string]string) string {
	for _, required := range requiredColumns {
		if row[required] == "" {
			return required
		}
	}
	return ""
}

func reportRow(logger *zap.Logger, line int, reason string) RowError {
	rowErr := RowError{Line: line, Reason: reason}
	if logger != nil {
		logger.Warn("rejecting corpus row",
			zap.Int("line", line),
			zap.String("reason", reason),
		)
	}
	return rowErr
}

func contains(values []string, target string) bool {
	for _, value := range values {
		if value == target {
			return true
		}
	}
	return false
}
