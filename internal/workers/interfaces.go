// Package workers runs the background jobs of the issuer. Each worker
// loops until its context is cancelled; Workers starts them together and
// waits for all of them to return.
package workers

import "context"

// Worker is a long-running background job. Run blocks until ctx is
// cancelled.
type Worker interface {
	Run(ctx context.Context)
}
