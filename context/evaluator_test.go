package context

import "testing"

func TestEvaluateBooleanExpression(t *testing.T) {
	ev := NewEvaluator()
	p, err := ev.Evaluate(`Has("site-a") && !Has("maintenance")`, []string{"site-a"})
	if err != nil {
		t.Fatalf("Evaluate error: %v", err)
	}
	if p != 0 {
		t.Errorf("Evaluate(true) = %d, want 0 (active)", p)
	}

	p, err = ev.Evaluate(`Has("site-a") && !Has("maintenance")`, []string{"site-a", "maintenance"})
	if err != nil {
		t.Fatalf("Evaluate error: %v", err)
	}
	if p >= 0 {
		t.Errorf("Evaluate(false) = %d, want negative (inactive)", p)
	}
}

func TestEvaluateIntegerExpression(t *testing.T) {
	ev := NewEvaluator()
	p, err := ev.Evaluate(`10`, nil)
	if err != nil {
		t.Fatalf("Evaluate error: %v", err)
	}
	if p != 10 {
		t.Errorf("Evaluate(10) = %d, want 10", p)
	}
}

func TestEvaluateCachesCompilation(t *testing.T) {
	ev := NewEvaluator()
	src := `Has("a")`
	if _, err := ev.Evaluate(src, []string{"a"}); err != nil {
		t.Fatal(err)
	}
	if _, ok := ev.programs[src]; !ok {
		t.Error("expected compiled program to be cached")
	}
	if _, err := ev.Evaluate(src, []string{}); err != nil {
		t.Fatal(err)
	}
}

func TestEvaluateInvalidExpression(t *testing.T) {
	ev := NewEvaluator()
	if _, err := ev.Evaluate(`this is not valid expr syntax +++`, nil); err == nil {
		t.Error("expected error compiling invalid expression")
	}
}
