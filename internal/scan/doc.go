// Package scan orchestrates PDF discovery, per-file QR extraction and
// classification, progress reporting, and batch summary aggregation.
package scan
