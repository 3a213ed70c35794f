package tournament

import (
	"encoding/csv"
	"errors"
	"fmt"
	"io"
	"os"
	"path/filepath"
	"slices"

	"github.com/sirupsen/logrus"
)

var ErrSchemaMismatch = errors.New("tournament: log records have different columns")

// WriteLog writes the given records as csv rows to w. The header is taken
// from the first record, and every other record must have the same columns.
// Nothing is written if there are no records.
func WriteLog(w io.Writer, records []Record) error {
	if len(records) == 0 {
		return nil
	}

	header := records[0].Columns()

	writer := csv.NewWriter(w)
	if err := writer.Write(header); err != nil {
		return err
	}

	for i, record := range records {
		if !slices.Equal(header, record.Columns()) {
			return fmt.Errorf("%w: record %d", ErrSchemaMismatch, i+1)
		}

		if err := writer.Write(record.Values()); err != nil {
			return err
		}
	}

	writer.Flush()
	return writer.Error()
}

// SaveLog writes the given records to the named csv file, creating its
// directory if needed.
func SaveLog(filename string, records []Record) error {
	if len(records) == 0 {
		logrus.Warn("Tournament history is empty, not saving a log")
		return nil
	}

	if err := os.MkdirAll(filepath.Dir(filename), 0755); err != nil {
		return err
	}

	file, err := os.Create(filename)
	if err != nil {
		return err
	}

	if err := WriteLog(file, records); err != nil {
		_ = file.Close()
		return err
	}

	logrus.WithField("file", filename).Infof("Saved %d log records", len(records))
	return file.Close()
}
