package particles

import (
	"context"
	"time"
)

// RunLoop calls frame every interval until ctx is done. It is the explicit
// loop used where no host frame callback exists. Frames never overlap: a slow
// frame delays the next tick instead of queueing more.
func RunLoop(ctx context.Context, interval time.Duration, frame func()) error {
	ticker := time.NewTicker(interval)
	defer ticker.Stop()

	for {
		select {
		case <-ctx.Done():
			return ctx.Err()
		case <-ticker.C:
			if err := ctx.Err(); err != nil {
				return err
			}
			frame()
		}
	}
}
