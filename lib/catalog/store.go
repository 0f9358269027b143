package catalog

import (
	"encoding/csv"
	"fmt"
	"log/slog"
	"os"
)

var storeHeader = []string{"maker", "model", "maker code", "model code"}

// WriteStore writes the records to a CSV file at path. An existing file
// at the destination is deleted first; failing to delete it aborts the
// write so a stale store is never partially overwritten.
func WriteStore(path string, records []Record) error {
	_, err := os.Stat(path)
	if err == nil {
		slog.Info("deleting previous store", "path", path)
		err = os.Remove(path)
		if err != nil {
			return fmt.Errorf("delete previous store: %w", err)
		}
	} else if !os.IsNotExist(err) {
		return err
	}

	f, err := os.Create(path)
	if err != nil {
		return err
	}
	defer f.Close()

	w := csv.NewWriter(f)
	err = w.Write(storeHeader)
	if err != nil {
		return err
	}
	for _, r := range records {
		err = w.Write([]string{r.Maker, r.Model, r.MakerCode, r.ModelCode})
		if err != nil {
			return err
		}
	}
	w.Flush()
	if err := w.Error(); err != nil {
		return err
	}

	slog.Info("wrote maker/model codes", "records", len(records), "path", path)
	return nil
}

func ReadStore(path string) ([]Record, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, err
	}
	defer f.Close()

	r := csv.NewReader(f)
	rows, err := r.ReadAll()
	if err != nil {
		return nil, err
	}
	if len(rows) == 0 {
		return nil, fmt.Errorf("store %q has no header row", path)
	}
	header := rows[0]
	if len(header) != len(storeHeader) {
		return nil, fmt.Errorf("store %q has %d columns, want %d", path, len(header), len(storeHeader))
	}
	for i, col := range storeHeader {
		if header[i] != col {
			return nil, fmt.Errorf("store %q column %d is %q, want %q", path, i, header[i], col)
		}
	}

	records := make([]Record, 0, len(rows)-1)
	for _, row := range rows[1:] {
		records = append(records, Record{
			Maker:     row[0],
			Model:     row[1],
			MakerCode: row[2],
			ModelCode: row[3],
		})
	}
	return records, nil
}

// BuildOrLoad returns the records in the store at storePath, extracting
// them from the nested dataset at datasetPath first if the store does not
// exist yet. An existing store is trusted blindly: there is no staleness
// check, delete the file to force a rebuild.
func BuildOrLoad(storePath, datasetPath string) ([]Record, error) {
	_, err := os.Stat(storePath)
	if os.IsNotExist(err) {
		ds, err := ReadDataset(datasetPath)
		if err != nil {
			return nil, fmt.Errorf("read dataset: %w", err)
		}
		err = WriteStore(storePath, Extract(ds))
		if err != nil {
			return nil, fmt.Errorf("build store: %w", err)
		}
	} else if err != nil {
		return nil, err
	}
	return ReadStore(storePath)
}
