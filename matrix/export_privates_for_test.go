// SPDX-License-Identifier: MIT

package matrix

// Test-Bridge (White-Box) for the options snapshot.
//
// Purpose:
//   - Expose a read-only view of the resolved Options to matrix_test without
//     widening the production API beyond this one file.
//
// Maintenance:
//   - Keep OptionsSnapshot in sync with Options. If a field is added, mirror
//     it in snapshotOf (the defaults test will catch drift).

// OptionsSnapshot is a stable copy of the unexported Options fields.
type OptionsSnapshot struct {
	ValidateNaNInf bool
}

func snapshotOf(o Options) OptionsSnapshot {
	return OptionsSnapshot{ValidateNaNInf: o.validateNaNInf}
}

// DefaultOptionsSnapshot_TestOnly returns the defaults as a snapshot.
func DefaultOptionsSnapshot_TestOnly() OptionsSnapshot { return snapshotOf(defaultOptions()) }

// GatherOptionsSnapshot_TestOnly applies opts over the defaults.
func GatherOptionsSnapshot_TestOnly(opts ...Option) OptionsSnapshot {
	return snapshotOf(gatherOptions(opts...))
}
