package ui

import "forest-ca/internal/core"

// adjustedValue applies one step in direction, clamping to the control
// bounds. It reports false when the value is already at the bound.
func adjustedValue(ctrl core.ParameterControl, value, direction int) (int, bool) {
	step := ctrl.Step
	if step <= 0 {
		step = 1
	}
	target := value + direction*step
	if ctrl.HasMin && target < ctrl.Min {
		if value <= ctrl.Min {
			return value, false
		}
		target = ctrl.Min
	}
	if ctrl.HasMax && target > ctrl.Max {
		if value >= ctrl.Max {
			return value, false
		}
		target = ctrl.Max
	}
	return target, true
}
