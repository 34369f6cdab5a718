package diff

import (
	"time"

	"github.com/sjquinney/lcfg-core/component"
	"github.com/sjquinney/lcfg-core/componentset"
	"github.com/sjquinney/lcfg-core/metrics"
	"github.com/sjquinney/lcfg-core/types"
)

// Profile is a flat list of component diffs between two component sets.
// Unlike Component, it carries no cached aggregate classification
// (spec.md §4.6: "No cached aggregate").
type Profile struct {
	Components []*Component
}

// DiffProfile compares s1 (old) against s2 (new) component-by-component,
// via DiffComponent, for every component name present on either side.
func DiffProfile(s1, s2 *componentset.Set) (*Profile, error) {
	start := time.Now()
	defer func() { metrics.ObserveDiffDuration("profile", time.Since(start).Seconds()) }()

	p := &Profile{}
	seen := make(map[string]bool)

	for _, c1 := range s1.Components() {
		seen[c1.Name()] = true
		c2, ok := s2.Find(c1.Name())
		if !ok {
			c2, _ = componentEmpty(c1.Name())
		}
		cd, err := DiffComponent(c1, c2)
		if err != nil {
			return nil, err
		}
		if cd.Change != types.ChangeNone {
			p.Components = append(p.Components, cd)
		}
	}
	for _, c2 := range s2.Components() {
		if seen[c2.Name()] {
			continue
		}
		c1, _ := componentEmpty(c2.Name())
		cd, err := DiffComponent(c1, c2)
		if err != nil {
			return nil, err
		}
		if cd.Change != types.ChangeNone {
			p.Components = append(p.Components, cd)
		}
	}
	return p, nil
}

// componentEmpty returns a fresh, empty component named name, standing in
// for the absent side of a profile-level diff.
func componentEmpty(name string) (*component.Component, error) {
	return component.New(name)
}
