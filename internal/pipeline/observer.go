package pipeline

import "go.uber.org/zap"

// Observer receives advisory progress updates at pipeline checkpoints.
// Values are monotonically increasing in [0.0, 1.0] within a run and have no
// effect on control flow.
type Observer interface {
	Progress(value float64, status string)
}

// ObserverFunc adapts a function to the Observer interface.
type ObserverFunc func(value float64, status string)

func (f ObserverFunc) Progress(value float64, status string) {
	f(value, status)
}

// NopObserver discards all updates.
type NopObserver struct{}

func (NopObserver) Progress(float64, string) {}

// LogObserver writes progress updates to the global zap logger.
type LogObserver struct{}

func (LogObserver) Progress(value float64, status string) {
	zap.L().Info("pipeline progress",
		zap.Float64("progress", value),
		zap.String("status", status),
	)
}
