package scan

import (
	"io/fs"
	"path/filepath"
	"sort"
	"strings"

	"github.com/ryanezv/scan-qr-files/internal/logging"
)

// documentExt is the recognized document extension (matched case-insensitively).
const documentExt = ".pdf"

// Discover walks inputDir, collects every PDF beneath it, and returns the
// handles sorted lexicographically by path for deterministic processing
// order. Traversal failures on individual entries or subtrees are logged
// and skipped; an unreadable root yields an empty set rather than an error,
// so callers detect it by batch size.
func Discover(inputDir string, log *logging.Logger) []*Document {
	return discover(inputDir, log.Warn)
}

// DiscoverQuiet is Discover without the logging side effect; diagnostics
// use it when only the batch size matters.
func DiscoverQuiet(inputDir string) []*Document {
	return discover(inputDir, func(string, ...interface{}) {})
}

func discover(inputDir string, warn func(string, ...interface{})) []*Document {
	var docs []*Document
	// The callback swallows every error, so WalkDir itself cannot fail: an
	// unreadable root is logged once and produces an empty batch.
	_ = filepath.WalkDir(inputDir, func(path string, d fs.DirEntry, err error) error {
		if err != nil {
			warn("Skipping unreadable entry %s: %v", path, err)
			if d != nil && d.IsDir() {
				return filepath.SkipDir
			}
			return nil
		}
		if d.IsDir() {
			return nil
		}
		if strings.EqualFold(filepath.Ext(path), documentExt) {
			docs = append(docs, &Document{Path: path})
		}
		return nil
	})
	sort.Slice(docs, func(i, j int) bool { return docs[i].Path < docs[j].Path })
	return docs
}
