package match

import "fmt"

// Finding reports an arm which can never be selected.
type Finding struct {
	Arm    int    // position of the arm, starting at 0
	Name   string // pattern name of the arm
	Reason string
}

func (f Finding) String() string {
	return fmt.Sprintf("arm %d (%s) is unreachable: %s", f.Arm, f.Name, f.Reason)
}

// Lint statically checks the arms of e for arms which can never be selected,
// because every value they accept is taken by an earlier arm.
//
// Lint does not evaluate guards. A guarded arm is never reported, and never
// shadows later arms.
func (e *Expr[T, R]) Lint() []Finding {
	var findings []Finding
	seen := make(map[string]bool)
	values := make(map[any]bool)
	caughtBy := -1
	for i, a := range e.arms {
		if caughtBy >= 0 {
			findings = append(findings, Finding{i, a.name,
				fmt.Sprintf("arm %d (%s) catches every value", caughtBy, e.arms[caughtBy].name)})
			continue
		}
		switch a.kind {
		case variantArm:
			if e.allSeen(seen, a.tags) {
				findings = append(findings, Finding{i, a.name, "variant is handled by an earlier arm"})
			} else if !e.inDomain(a.tags) {
				findings = append(findings, Finding{i, a.name, "variant is not part of the domain"})
			}
			for _, tag := range a.tags {
				seen[tag] = true
			}
		case valueArm:
			if values[a.key] {
				findings = append(findings, Finding{i, a.name, "value is handled by an earlier arm"})
			}
			values[a.key] = true
		case bindArm, wildcardArm:
			if e.domain != nil && e.allSeen(seen, e.domain) {
				findings = append(findings, Finding{i, a.name, "all variants are handled by earlier arms"})
			}
			caughtBy = i
		}
	}
	return findings
}

func (e *Expr[T, R]) allSeen(seen map[string]bool, tags []string) bool {
	for _, tag := range tags {
		if !seen[tag] {
			return false
		}
	}
	return true
}

func (e *Expr[T, R]) inDomain(tags []string) bool {
	if e.domain == nil {
		return true
	}
	for _, tag := range tags {
		found := false
		for _, d := range e.domain {
			if d == tag {
				found = true
				break
			}
		}
		if !found {
			return false
		}
	}
	return true
}
