package aspect

import (
	"fmt"

	"github.com/sjquinney/lcfg-core/metrics"
	"github.com/sjquinney/lcfg-core/types"
)

var _ types.MergeAspect = (*MergeValidator)(nil)

// MergeValidator is a built-in MergeAspect that reports every merge
// outcome to the prometheus counters in the metrics package, and
// specifically flags equal-priority conflicts. It never vetoes a merge
// itself — BeforeMerge always returns nil — because a CONFLICT is already
// going to be reported to the caller as an error by the merge policy
// (spec.md §4.5); this aspect only observes.
//
// Grounded on the teacher's ChainValidator/ChainAggregationValidator
// (builtin/aspect/chain_validator_aspect.go), which likewise hook
// before/after execution to reject or record outcomes without altering
// normal chain flow.
type MergeValidator struct {
	// ComponentName, if set, is reported alongside conflicts. Left empty
	// when the validator isn't scoped to a single component.
	ComponentName string
}

// Order runs the validator before the debug aspect so the debug log line
// can reflect metrics already recorded for this merge.
func (v *MergeValidator) Order() int { return 0 }

// New returns a fresh MergeValidator so per-Config state never leaks
// across independently configured merges.
func (v *MergeValidator) New() types.Aspect {
	return &MergeValidator{ComponentName: v.ComponentName}
}

// BeforeMerge never vetoes; it exists to satisfy the MergeAspect contract
// symmetrically with AfterMerge.
func (v *MergeValidator) BeforeMerge(componentName, resourceName string, targetPriority, incomingPriority int) error {
	return nil
}

// AfterMerge records the outcome. Conflicts are attributed to
// componentName (falling back to v.ComponentName, then "unknown").
func (v *MergeValidator) AfterMerge(componentName, resourceName string, result types.ChangeCode) {
	name := componentName
	if name == "" {
		name = v.ComponentName
	}
	if name == "" {
		name = "unknown"
	}
	metrics.ObserveMerge(fmt.Sprintf("%s", result), name, result == types.ChangeError)
}
