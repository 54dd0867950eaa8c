package report

import (
	"fmt"
	"io"
	"sync"

	"github.com/sirkon/cxcursor/internal/cx"
	"github.com/sirkon/cxcursor/internal/cxrules"
)

// Reporter collects issues. It is safe for concurrent use.
type Reporter struct {
	mu      sync.Mutex
	reports []Report
}

// Report represents a single issue entry.
type Report struct {
	Phase    Phase
	RuleCode cxrules.Rule
	Loc      cx.SourceLocation
	Message  string
}

// Phase marks the stage where a report was generated.
type Phase int

const (
	phaseInvalid Phase = iota
	PhaseMaterialize   // wrapping cursors into typed nodes
	PhaseVerify        // discriminant checks
	PhaseIndex         // span index construction
)

func (p Phase) String() string {
	switch p {
	case PhaseMaterialize:
		return "materialize"
	case PhaseVerify:
		return "verify"
	case PhaseIndex:
		return "index"
	default:
		return fmt.Sprintf("unknown-phase(%d)", p)
	}
}

// PhaseReporter binds a Reporter to a fixed phase.
type PhaseReporter struct {
	parent *Reporter
	phase  Phase
}

// Phase returns a reporter that sets the given phase for all reports
// produced through it.
func (r *Reporter) Phase(p Phase) *PhaseReporter {
	return &PhaseReporter{parent: r, phase: p}
}

// Report adds a new record to the reporter.
func (r *Reporter) Report(rep Report) {
	r.mu.Lock()
	r.reports = append(r.reports, rep)
	r.mu.Unlock()
}

// Report records an issue under the bound phase. An empty message is
// replaced with the rule description.
func (rp *PhaseReporter) Report(rule cxrules.Rule, message string, loc cx.SourceLocation) {
	if rp == nil {
		return
	}
	if message == "" {
		message = rule.Description()
	}

	rp.parent.Report(Report{
		Phase:    rp.phase,
		RuleCode: rule,
		Message:  message,
		Loc:      loc,
	})
}

// Reports returns a snapshot of all collected records.
func (r *Reporter) Reports() []Report {
	r.mu.Lock()
	defer r.mu.Unlock()

	out := make([]Report, len(r.reports))
	copy(out, r.reports)
	return out
}

// Len returns the number of collected records.
func (r *Reporter) Len() int {
	r.mu.Lock()
	defer r.mu.Unlock()

	return len(r.reports)
}

// PrintSummary writes all collected reports in a compact, human-readable form.
func (r *Reporter) PrintSummary(w io.Writer) error {
	for _, rep := range r.Reports() {
		if _, err := fmt.Fprintf(w, "[%s] %s: %s (%s)\n", rep.Phase, rep.RuleCode, rep.Message, rep.Loc); err != nil {
			return fmt.Errorf("write report: %w", err)
		}
	}

	return nil
}
