package volby

import (
	"encoding/csv"
	"io"
	"os"
	"path/filepath"
	"volby-scrapper/models/results"

	"github.com/pkg/errors"
)

// WriteCSV writes the header and one record per row, UTF-8 with "\n" line
// endings on every platform.
func WriteCSV(w io.Writer, table results.Table) error {
	writer := csv.NewWriter(w)
	writer.UseCRLF = false

	if err := writer.Write(table.Header()); err != nil {
		return errors.Wrap(err, "writing header")
	}
	for _, row := range table.Rows {
		if err := writer.Write(row.Record()); err != nil {
			return errors.Wrapf(err, "writing municipality %s", row.Code)
		}
	}

	writer.Flush()
	return errors.Wrap(writer.Error(), "flushing csv")
}

// WriteCSVFile writes the table next to path and renames it into place, so an
// interrupted write never leaves a partial file behind.
func WriteCSVFile(path string, table results.Table) error {
	tmp, err := os.CreateTemp(filepath.Dir(path), ".volby-*.csv")
	if err != nil {
		return errors.Wrap(err, "creating temporary file")
	}
	defer os.Remove(tmp.Name())

	if err := WriteCSV(tmp, table); err != nil {
		tmp.Close()
		return err
	}
	if err := tmp.Close(); err != nil {
		return errors.Wrap(err, "closing temporary file")
	}
	if err := os.Chmod(tmp.Name(), 0644); err != nil {
		return errors.Wrap(err, "setting file permissions")
	}

	return errors.Wrapf(os.Rename(tmp.Name(), path), "moving results to %s", path)
}
