package aspect

import (
	"github.com/sjquinney/lcfg-core/types"
)

var _ types.MergeAspect = (*MergeDebug)(nil)

// MergeDebug is a debug logging aspect that writes one line per merge
// decision through a types.Logger, covering both the before (what's being
// attempted) and after (what happened) halves of the merge.
//
// Grounded on the teacher's ChainDebug (builtin/aspect/chain_debug_aspect.go),
// which logs message flow in/out of node execution; here the "message" is
// a single resource merge rather than a rule-engine message.
type MergeDebug struct {
	Logger types.Logger
}

// Order runs the debug aspect after MergeValidator so its log line can
// reflect any metrics already recorded.
func (d *MergeDebug) Order() int { return 10 }

// New returns a fresh MergeDebug sharing the same Logger; the Logger
// itself carries no per-merge state so sharing it across instances is safe.
func (d *MergeDebug) New() types.Aspect {
	return &MergeDebug{Logger: d.Logger}
}

func (d *MergeDebug) logger() types.Logger {
	if d.Logger != nil {
		return d.Logger
	}
	return types.DefaultLogger()
}

// BeforeMerge logs the priority comparison about to be made.
func (d *MergeDebug) BeforeMerge(componentName, resourceName string, targetPriority, incomingPriority int) error {
	d.logger().Printf("merge: %s.%s target_priority=%d incoming_priority=%d",
		componentName, resourceName, targetPriority, incomingPriority)
	return nil
}

// AfterMerge logs the outcome of a completed merge decision.
func (d *MergeDebug) AfterMerge(componentName, resourceName string, result types.ChangeCode) {
	d.logger().Printf("merge: %s.%s result=%s", componentName, resourceName, result)
}
