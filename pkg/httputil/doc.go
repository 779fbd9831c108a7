// Package httputil provides HTTP helpers shared by the back-office clients:
// retry with exponential backoff and a file-based response cache.
//
// The back office is the single upstream of labelpress, so every read that
// feeds a label document flows through this package. Transient failures
// (timeouts, 5xx) are wrapped in [RetryableError] by the caller and retried;
// terminal failures (404, 4xx) are returned immediately.
package httputil
