// Package report serializes a batch's results into a timestamped CSV file
// inside the scanned directory, and knows how to open the file with the
// platform's default application.
package report

import (
	"encoding/csv"
	"fmt"
	"os"
	"path/filepath"
	"strconv"
	"time"

	"github.com/ryanezv/scan-qr-files/internal/scan"
)

// Filename pieces: ScanResults_QRScan_<timestamp>.csv, timestamped to the
// second. Two runs against the same directory within the same second
// collide; last write wins.
const (
	filePrefix      = "ScanResults_QRScan_"
	fileExt         = ".csv"
	timestampLayout = "2006-01-02 15-04-05"
)

// header is the first row of every report, present even for empty batches.
var header = []string{"file", "status", "page", "code", "payload"}

// Writer writes CSV reports. The zero value is ready to use; Now is
// overridable for tests and defaults to time.Now.
type Writer struct {
	Now func() time.Time
}

// Write serializes one row per result into a timestamped CSV inside dir and
// returns the report path. A write failure is terminal for the report step
// only — the results the caller holds stay valid.
func (w Writer) Write(results []scan.Result, dir string) (string, error) {
	now := time.Now
	if w.Now != nil {
		now = w.Now
	}
	path := filepath.Join(dir, filePrefix+now().Format(timestampLayout)+fileExt)

	f, err := os.Create(path)
	if err != nil {
		return "", fmt.Errorf("create report %s: %w", path, err)
	}
	defer f.Close()

	cw := csv.NewWriter(f)
	if err := cw.Write(header); err != nil {
		return "", fmt.Errorf("write report header: %w", err)
	}
	for _, res := range results {
		row := []string{
			filepath.Base(res.Path),
			string(res.Status),
			strconv.Itoa(res.Page),
			res.Code,
			res.Payload,
		}
		if err := cw.Write(row); err != nil {
			return "", fmt.Errorf("write report row for %s: %w", res.Path, err)
		}
	}
	cw.Flush()
	if err := cw.Error(); err != nil {
		return "", fmt.Errorf("flush report %s: %w", path, err)
	}
	if err := f.Close(); err != nil {
		return "", fmt.Errorf("close report %s: %w", path, err)
	}
	return path, nil
}
