// Package attrs stores decoded codes as user extended attributes on the
// scanned files, so later runs can skip decoding entirely.
//
// Two attributes are kept per file: the code itself and the 1-based page it
// was decoded from. A cached code is only trustworthy for the page it was
// recorded with; callers compare pages before reuse.
package attrs

import (
	"fmt"
	"os"
	"path/filepath"
	"strconv"

	"github.com/pkg/xattr"
)

const (
	codeAttr = "user.qrscan.code"
	pageAttr = "user.qrscan.page"
)

// Store reads and writes the qrscan attribute pair. The zero value is ready
// to use.
type Store struct{}

// ReadCode returns the cached code and its page for path. ok is false when
// either attribute is missing, unreadable, or malformed; absence of a cache
// is not an error, the caller just decodes.
func (Store) ReadCode(path string) (code string, page int, ok bool) {
	raw, err := xattr.Get(path, codeAttr)
	if err != nil || len(raw) == 0 {
		return "", 0, false
	}
	rawPage, err := xattr.Get(path, pageAttr)
	if err != nil {
		return "", 0, false
	}
	page, err = strconv.Atoi(string(rawPage))
	if err != nil || page < 1 {
		return "", 0, false
	}
	return string(raw), page, true
}

// WriteCode persists code and page onto path. Both attributes are written;
// a failure on the second leaves the first in place, which ReadCode treats
// as no cache.
func (Store) WriteCode(path string, page int, code string) error {
	if err := xattr.Set(path, codeAttr, []byte(code)); err != nil {
		return fmt.Errorf("set %s: %w", codeAttr, err)
	}
	if err := xattr.Set(path, pageAttr, []byte(strconv.Itoa(page))); err != nil {
		return fmt.Errorf("set %s: %w", pageAttr, err)
	}
	return nil
}

// Remove deletes the attribute pair from path. Missing attributes are not
// an error.
func (Store) Remove(path string) error {
	for _, name := range []string{codeAttr, pageAttr} {
		if err := xattr.Remove(path, name); err != nil {
			// The remove errno for a missing attribute differs across
			// platforms; probe existence instead of matching it.
			if _, gerr := xattr.Get(path, name); gerr != nil {
				continue
			}
			return fmt.Errorf("remove %s: %w", name, err)
		}
	}
	return nil
}

// Supported reports whether the filesystem holding dir accepts user extended
// attributes, determined by a write/read/remove probe on a temp file.
func Supported(dir string) bool {
	f, err := os.CreateTemp(dir, ".qrscan-attr-probe-*")
	if err != nil {
		return false
	}
	path := f.Name()
	f.Close()
	defer os.Remove(path)

	const probe = "user.qrscan.probe"
	if err := xattr.Set(path, probe, []byte("1")); err != nil {
		return false
	}
	if _, err := xattr.Get(path, probe); err != nil {
		return false
	}
	_ = xattr.Remove(path, probe)
	return true
}

// SupportedForFile probes the directory containing path.
func SupportedForFile(path string) bool {
	return Supported(filepath.Dir(path))
}
