package modkit

import (
	"commentsweep/internal/platform/config"
	"commentsweep/internal/platform/logger"
	"commentsweep/internal/platform/metrics"
)

// Deps are the process wide dependencies every module receives.
// The zero value is usable, Metrics may be nil
type Deps struct {
	Log     logger.Logger
	Cfg     config.Conf
	Metrics *metrics.Registry
}
