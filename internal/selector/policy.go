package selector

// Policy controls how many candidate fragments each ancestor level keeps.
type Policy int

const (
	// PolicyAll keeps every admissible fragment plus position-qualified clones.
	PolicyAll Policy = iota
	// PolicyTwo keeps the best fragment and its position-qualified clone.
	PolicyTwo
	// PolicyOne keeps only the best fragment, position-qualified when possible.
	PolicyOne
	// PolicyNone keeps only the position-qualified wildcard.
	PolicyNone
)

// policyTransitions is the fallback order. PolicyNone has no successor.
var policyTransitions = map[Policy]Policy{
	PolicyAll: PolicyTwo,
	PolicyTwo: PolicyOne,
	PolicyOne: PolicyNone,
}

// next returns the policy to retry with after p failed.
func (p Policy) next() (Policy, bool) {
	n, ok := policyTransitions[p]
	return n, ok
}

func (p Policy) String() string {
	switch p {
	case PolicyAll:
		return "all"
	case PolicyTwo:
		return "two"
	case PolicyOne:
		return "one"
	case PolicyNone:
		return "none"
	default:
		return "unknown"
	}
}
