package device

// Outcome classifies what happened to one device during one invocation.
type Outcome int

const (
	Applied          Outcome = iota // command written successfully
	NotFound                        // device not enumerated; expected absence
	PermissionDenied                // transport open refused; operator must elevate
	TransportError                  // open/write I/O failure
)

func (o Outcome) String() string {
	switch o {
	case Applied:
		return "applied"
	case NotFound:
		return "not found"
	case PermissionDenied:
		return "permission denied"
	case TransportError:
		return "error"
	}
	return "unknown"
}

// Result is the outcome for a single registry entry. Err carries detail for
// PermissionDenied and TransportError; it is nil otherwise.
type Result struct {
	Name    string
	Outcome Outcome
	Err     error
}

// Exit codes reported by the process. Stable; scripts depend on them.
const (
	ExitOK       = 0 // every device applied
	ExitUsage    = 1 // bad verb or argument
	ExitDegraded = 2 // one or more devices absent, nothing else failed
	ExitFailure  = 3 // any transport or permission failure
)

// Results is one invocation's outcomes, in registry order.
type Results []Result

// Code computes the process exit code. Any operational failure dominates
// absence; absence dominates success.
func (rs Results) Code() int {
	code := ExitOK
	for _, r := range rs {
		switch r.Outcome {
		case PermissionDenied, TransportError:
			return ExitFailure
		case NotFound:
			code = ExitDegraded
		}
	}
	return code
}

// Summary describes the run as a whole: "fully applied", "partially
// applied", or "failed".
func (rs Results) Summary() string {
	applied, failed := 0, 0
	for _, r := range rs {
		switch r.Outcome {
		case Applied:
			applied++
		case PermissionDenied, TransportError:
			failed++
		}
	}
	switch {
	case failed > 0:
		return "failed"
	case applied == len(rs):
		return "fully applied"
	default:
		return "partially applied"
	}
}
