package obs

import (
	"context"
	"time"

	"github.com/rs/zerolog"
)

// Time logs the duration of the named operation through the context logger.
// Use as: defer obs.Time(ctx, "op")(&err)
func Time(ctx context.Context, name string) func(errp *error) {
	start := time.Now()
	logger := zerolog.Ctx(ctx)

	return func(errp *error) {
		dur := time.Since(start)

		if errp != nil && *errp != nil {
			logger.Debug().Str("op", name).Dur("dur", dur).Err(*errp).Msg("operation failed")
			return
		}
		logger.Debug().Str("op", name).Dur("dur", dur).Msg("operation done")
	}
}
