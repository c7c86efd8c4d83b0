package scan

// Document is the per-file handle carried through one batch: the path is
// its identity, the cached fields mirror what the attribute store held (or
// was just told) for it. A document lives for exactly one scan pass.
type Document struct {
	// Path is the absolute (or root-relative) location of the PDF.
	Path string

	// CachedCode and CachedPage hold the attribute-store value once read or
	// written. A cached code is only trusted for the page it was recorded
	// with; a page mismatch invalidates it implicitly.
	CachedCode string
	CachedPage int
}

// CachedFor returns the cached code when it was recorded for page, and
// false otherwise.
func (d *Document) CachedFor(page int) (string, bool) {
	if d.CachedCode == "" || d.CachedPage != page {
		return "", false
	}
	return d.CachedCode, true
}

// SetCached records a freshly read or written attribute pair on the handle.
func (d *Document) SetCached(page int, code string) {
	d.CachedPage = page
	d.CachedCode = code
}
