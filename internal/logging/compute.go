package logging

import "log/slog"

// ComputeMeter reports the compute units left in the current budget.
type ComputeMeter interface {
	RemainingUnits() uint64
}

// MeasureCU runs fn between two compute-unit samples. Both samples are
// logged at debug level so production handlers can drop them.
func MeasureCU(logger *slog.Logger, meter ComputeMeter, name string, fn func() error) error {
	if logger == nil || meter == nil {
		return fn()
	}
	before := meter.RemainingUnits()
	logger.Debug(name+": CU before", "remaining", before)
	err := fn()
	after := meter.RemainingUnits()
	var used uint64
	if before > after {
		used = before - after
	}
	logger.Debug(name+": CU after", "remaining", after, "used", used)
	return err
}

// StaticMeter is a ComputeMeter over a fixed budget. Consume draws it down.
type StaticMeter struct {
	Remaining uint64
}

func (m *StaticMeter) RemainingUnits() uint64 { return m.Remaining }

func (m *StaticMeter) Consume(units uint64) {
	if units > m.Remaining {
		m.Remaining = 0
		return
	}
	m.Remaining -= units
}
