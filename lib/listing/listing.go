// Package listing holds the car listing row model, the listings CSV
// writer and the filename convention used for listing exports.
package listing

import (
	"encoding/csv"
	"fmt"
	"log/slog"
	"os"
	"path/filepath"
	"strconv"
	"strings"
)

// Listing is one scraped car listing.
type Listing struct {
	Title   string
	Price   int
	Mileage int
	Dealer  string
	Url     string
}

var csvHeader = []string{"title", "price", "mileage", "dealer", "url"}

// WriteCSV writes listings to a CSV file at path, deleting any previous
// file with the same name first. A file that exists but cannot be deleted
// is an error.
func WriteCSV(path string, listings []Listing) error {
	_, err := os.Stat(path)
	if err == nil {
		slog.Info("deleting previous listings file", "path", path)
		err = os.Remove(path)
		if err != nil {
			return fmt.Errorf("delete previous listings file: %w", err)
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
	err = w.Write(csvHeader)
	if err != nil {
		return err
	}
	for _, l := range listings {
		err = w.Write([]string{
			l.Title,
			strconv.Itoa(l.Price),
			strconv.Itoa(l.Mileage),
			l.Dealer,
			l.Url,
		})
		if err != nil {
			return err
		}
	}
	w.Flush()
	if err := w.Error(); err != nil {
		return err
	}

	slog.Info("wrote car listings", "cars", len(listings), "path", path)
	return nil
}

// CarInfo is the metadata a listings filename encodes.
type CarInfo struct {
	Maker     string
	Model     string
	Condition string
}

// ParseFilename recovers maker, model and condition from a listings
// filename of the form <maker>-<model>-...-<condition>.csv. Only the
// first two and the last hyphen-delimited segments carry meaning, the
// rest (zip, radius, ...) are ignored. Values come back upper-cased.
func ParseFilename(name string) (CarInfo, error) {
	base := filepath.Base(name)
	stem := strings.TrimSuffix(base, filepath.Ext(base))

	parts := strings.Split(stem, "-")
	if len(parts) < 3 {
		return CarInfo{}, fmt.Errorf("filename %q does not follow <maker>-<model>-...-<condition>", name)
	}
	return CarInfo{
		Maker:     strings.ToUpper(parts[0]),
		Model:     strings.ToUpper(parts[1]),
		Condition: strings.ToUpper(parts[len(parts)-1]),
	}, nil
}

// Filename is the inverse of ParseFilename for a search query.
func Filename(q Query) string {
	return fmt.Sprintf(
		"%s-%s-%d-%d-%s.csv",
		strings.ToLower(q.Maker),
		strings.ToLower(q.Model),
		q.Zip,
		q.Radius,
		strings.ToLower(q.Condition),
	)
}
