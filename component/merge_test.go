package component

import (
	"strings"
	"testing"

	"github.com/sjquinney/lcfg-core/builtin/aspect"
	"github.com/sjquinney/lcfg-core/types"
)

func TestMergeResourceHigherPriorityWins(t *testing.T) {
	target := mustResource(t, "eth0", "down")
	incoming := mustResource(t, "eth0", "up")
	incoming.SetPriority(5)

	result, err := MergeResource(target, incoming)
	if err != nil {
		t.Fatal(err)
	}
	if result != types.ChangeReplaced {
		t.Errorf("result = %v, want ChangeReplaced", result)
	}
	v, _ := target.Value()
	if v != "up" {
		t.Errorf("target value = %q, want \"up\"", v)
	}
}

func TestMergeResourceLowerPriorityLoses(t *testing.T) {
	target := mustResource(t, "eth0", "down")
	target.SetPriority(5)
	incoming := mustResource(t, "eth0", "up")

	result, err := MergeResource(target, incoming)
	if err != nil {
		t.Fatal(err)
	}
	if result != types.ChangeNone {
		t.Errorf("result = %v, want ChangeNone", result)
	}
	v, _ := target.Value()
	if v != "down" {
		t.Errorf("target value = %q, want \"down\" (unchanged)", v)
	}
}

func TestMergeResourceEqualPrioritySameValueReplaced(t *testing.T) {
	target := mustResource(t, "eth0", "up")
	incoming := mustResource(t, "eth0", "up")

	result, err := MergeResource(target, incoming)
	if err != nil {
		t.Fatal(err)
	}
	if result != types.ChangeReplaced {
		t.Errorf("result = %v, want ChangeReplaced", result)
	}
}

func TestMergeResourceEqualPriorityDifferingValueConflict(t *testing.T) {
	target := mustResource(t, "eth0", "up")
	incoming := mustResource(t, "eth0", "down")

	result, err := MergeResource(target, incoming)
	if err == nil {
		t.Fatal("expected a conflict error")
	}
	if result != types.ChangeError {
		t.Errorf("result = %v, want ChangeError", result)
	}
	v, _ := target.Value()
	if v != "up" {
		t.Errorf("target must not be mutated on conflict, value = %q", v)
	}
}

func TestComponentMergeTakeNew(t *testing.T) {
	a, _ := New("net")
	a.Append(mustResource(t, "eth0", "up"))

	b, _ := New("net")
	b.Append(mustResource(t, "eth0", "up"))
	b.Append(mustResource(t, "dns", "8.8.8.8"))

	a.MergeRules.TakeNew = true
	result, err := a.Merge(b)
	if err != nil {
		t.Fatal(err)
	}
	if result != types.ChangeModified {
		t.Errorf("result = %v, want ChangeModified", result)
	}
	if !a.Has("dns") {
		t.Error("expected dns to be taken from incoming side with TakeNew set")
	}
}

func TestComponentMergeIgnoresNewWithoutTakeNew(t *testing.T) {
	a, _ := New("net")
	b, _ := New("net")
	b.Append(mustResource(t, "dns", "8.8.8.8"))

	result, err := a.Merge(b)
	if err != nil {
		t.Fatal(err)
	}
	if result != types.ChangeNone {
		t.Errorf("result = %v, want ChangeNone", result)
	}
	if a.Has("dns") {
		t.Error("expected dns to be ignored without TakeNew")
	}
}

func TestComponentMergeStopsOnFirstConflict(t *testing.T) {
	a, _ := New("net")
	a.Append(mustResource(t, "aaa", "up"))
	a.Append(mustResource(t, "zzz", "up"))

	b, _ := New("net")
	aaa := mustResource(t, "aaa", "down")
	aaa.SetPriority(5)
	b.Append(aaa)
	b.Append(mustResource(t, "zzz", "down"))

	_, err := a.Merge(b)
	if err == nil {
		t.Fatal("expected conflict error")
	}
	r, _ := a.Find("aaa")
	val, _ := r.Value()
	if val != "down" {
		t.Errorf("expected the first (aaa) resource to have already committed its merge, value = %q", val)
	}
}

func TestApplyOverrides(t *testing.T) {
	a, _ := New("net")
	a.Append(mustResource(t, "eth0", "down"))

	b, _ := New("net")
	b.Append(mustResource(t, "eth0", "up"))
	b.Append(mustResource(t, "dns", "8.8.8.8"))

	changed := a.ApplyOverrides(b, true)
	if changed != types.ChangeModified {
		t.Errorf("changed = %v, want ChangeModified", changed)
	}
	r, _ := a.Find("eth0")
	val, _ := r.Value()
	if val != "up" {
		t.Errorf("eth0 value = %q, want overridden to \"up\"", val)
	}
	if !a.Has("dns") {
		t.Error("expected dns appended with takeNew=true")
	}
}

func TestTransplant(t *testing.T) {
	a, _ := New("net")
	b, _ := New("net")
	if changed := a.Transplant(b); changed != types.ChangeNone {
		t.Errorf("Transplant of empty other = %v, want ChangeNone", changed)
	}

	b.Append(mustResource(t, "eth0", "up"))
	if changed := a.Transplant(b); changed != types.ChangeModified {
		t.Errorf("Transplant = %v, want ChangeModified", changed)
	}
	if !a.Has("eth0") {
		t.Error("expected eth0 transplanted into a")
	}
}

func TestMergeWithConfigNilBehavesLikePlainMerge(t *testing.T) {
	a, _ := New("net")
	a.Append(mustResource(t, "eth0", "down"))
	b, _ := New("net")
	r := mustResource(t, "eth0", "up")
	r.SetPriority(5)
	b.Append(r)

	result, err := a.MergeWithConfig(b, nil)
	if err != nil {
		t.Fatal(err)
	}
	if result != types.ChangeModified {
		t.Errorf("result = %v, want ChangeModified", result)
	}
}

type recordingLogger struct {
	lines []string
}

func (l *recordingLogger) Printf(format string, v ...any) {
	l.lines = append(l.lines, format)
}

func TestMergeWithConfigRunsAspects(t *testing.T) {
	a, _ := New("net")
	a.Append(mustResource(t, "eth0", "down"))
	b, _ := New("net")
	r := mustResource(t, "eth0", "up")
	r.SetPriority(5)
	b.Append(r)

	logger := &recordingLogger{}
	cfg := &types.Config{
		Aspects: []types.MergeAspect{
			&aspect.MergeValidator{ComponentName: "net"},
			&aspect.MergeDebug{Logger: logger},
		},
	}

	result, err := a.MergeWithConfig(b, cfg)
	if err != nil {
		t.Fatal(err)
	}
	if result != types.ChangeModified {
		t.Errorf("result = %v, want ChangeModified", result)
	}
	if len(logger.lines) != 2 {
		t.Fatalf("expected 2 debug log lines (before+after), got %d", len(logger.lines))
	}
	if !strings.Contains(logger.lines[0], "merge:") {
		t.Errorf("unexpected before-merge log format %q", logger.lines[0])
	}
}

type vetoingAspect struct{}

func (vetoingAspect) Order() int       { return -1 }
func (vetoingAspect) New() types.Aspect { return vetoingAspect{} }
func (vetoingAspect) BeforeMerge(componentName, resourceName string, targetPriority, incomingPriority int) error {
	return types.NewError(types.Conflict, "vetoed by policy", nil)
}
func (vetoingAspect) AfterMerge(componentName, resourceName string, result types.ChangeCode) {}

func TestMergeWithConfigBeforeMergeVeto(t *testing.T) {
	a, _ := New("net")
	a.Append(mustResource(t, "eth0", "down"))
	b, _ := New("net")
	r := mustResource(t, "eth0", "up")
	r.SetPriority(5)
	b.Append(r)

	cfg := &types.Config{Aspects: []types.MergeAspect{vetoingAspect{}}}

	_, err := a.MergeWithConfig(b, cfg)
	if err == nil {
		t.Fatal("expected veto to surface as an error")
	}
	existing, _ := a.Find("eth0")
	v, _ := existing.Value()
	if v != "down" {
		t.Errorf("expected vetoed merge to leave target unmutated, value = %q", v)
	}
}
