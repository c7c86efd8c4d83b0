package report

import (
	"encoding/csv"
	"os"
	"path/filepath"
	"reflect"
	"strings"
	"testing"
	"time"

	"github.com/ryanezv/scan-qr-files/internal/scan"
)

func readRows(t *testing.T, path string) [][]string {
	t.Helper()
	f, err := os.Open(path)
	if err != nil {
		t.Fatalf("open report: %v", err)
	}
	defer f.Close()
	rows, err := csv.NewReader(f).ReadAll()
	if err != nil {
		t.Fatalf("parse report: %v", err)
	}
	return rows
}

func TestWrite_RoundTrip(t *testing.T) {
	dir := t.TempDir()
	results := []scan.Result{
		{Path: "/in/a.pdf", Status: scan.StatusCodeFound, Page: 2, Code: "ABC123", Payload: "hello"},
		{Path: "/in/sub/b.pdf", Status: scan.StatusNoCodeFound, Page: 2},
		{Path: "/in/c.pdf", Status: scan.StatusNoFileAccess, Page: 2},
	}

	path, err := Writer{}.Write(results, dir)
	if err != nil {
		t.Fatalf("Write: %v", err)
	}

	rows := readRows(t, path)
	want := [][]string{
		{"file", "status", "page", "code", "payload"},
		{"a.pdf", "CODE_FOUND", "2", "ABC123", "hello"},
		{"b.pdf", "NO_CODE_FOUND", "2", "", ""},
		{"c.pdf", "NO_FILE_ACCESS", "2", "", ""},
	}
	if !reflect.DeepEqual(rows, want) {
		t.Errorf("rows = %v, want %v", rows, want)
	}
}

func TestWrite_EmptyBatchIsHeaderOnly(t *testing.T) {
	dir := t.TempDir()
	path, err := Writer{}.Write(nil, dir)
	if err != nil {
		t.Fatalf("Write: %v", err)
	}
	rows := readRows(t, path)
	if len(rows) != 1 || rows[0][0] != "file" {
		t.Errorf("rows = %v, want the header row alone", rows)
	}
}

func TestWrite_FilenameCarriesTimestamp(t *testing.T) {
	dir := t.TempDir()
	fixed := time.Date(2024, 3, 15, 9, 30, 45, 0, time.UTC)
	w := Writer{Now: func() time.Time { return fixed }}

	path, err := w.Write(nil, dir)
	if err != nil {
		t.Fatalf("Write: %v", err)
	}
	if want := "ScanResults_QRScan_2024-03-15 09-30-45.csv"; filepath.Base(path) != want {
		t.Errorf("filename = %q, want %q", filepath.Base(path), want)
	}
	if filepath.Dir(path) != dir {
		t.Errorf("report landed in %q, want the scanned directory %q", filepath.Dir(path), dir)
	}
}

func TestWrite_UnwritableDir(t *testing.T) {
	_, err := Writer{}.Write(nil, filepath.Join(t.TempDir(), "missing"))
	if err == nil {
		t.Fatal("Write into a nonexistent directory should fail")
	}
	if !strings.Contains(err.Error(), "create report") {
		t.Errorf("error %q should name the create step", err)
	}
}
