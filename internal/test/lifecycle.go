package test

import (
	"go.uber.org/fx"
)

// LifecycleRecorder collects lifecycle hooks registered during tests.
type LifecycleRecorder struct {
	Hooks []fx.Hook
}

// Append stores the hook so a test can invoke it directly.
func (l *LifecycleRecorder) Append(h fx.Hook) {
	l.Hooks = append(l.Hooks, h)
}

// ShutdownerStub signals on the Called channel when shutdown is requested.
type ShutdownerStub struct {
	Called chan struct{}
}

// Shutdown records the shutdown request.
func (s *ShutdownerStub) Shutdown(...fx.ShutdownOption) error {
	if s.Called != nil {
		select {
		case s.Called <- struct{}{}:
		default:
		}
	}
	return nil
}
