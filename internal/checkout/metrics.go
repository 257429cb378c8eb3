package checkout

// MetricsSink receives validation counters. Implementations must be safe for concurrent use.
type MetricsSink interface {
	ValidationPassed()
	ValidationFailed(field string)
	TotalsMismatch(field string)
}

type NopSink struct{}

func (NopSink) ValidationPassed() {}
func (NopSink) ValidationFailed(string) {}
func (NopSink) TotalsMismatch(string) {}
