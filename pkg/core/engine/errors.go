package engine

import "fmt"

// AssignmentEngineError reports a malformed rule or roster entry that
// prevented any progress. It is fatal to the generation call only; the
// offending id is attached so the caller can render an actionable message.
type AssignmentEngineError struct {
	RuleID  string
	ShiftID string
	Err     error
}

func (e *AssignmentEngineError) Error() string {
	switch {
	case e.RuleID != "":
		return fmt.Sprintf("generation aborted by rule %s: %v", e.RuleID, e.Err)
	case e.ShiftID != "":
		return fmt.Sprintf("generation aborted by shift %s: %v", e.ShiftID, e.Err)
	}
	return fmt.Sprintf("generation aborted: %v", e.Err)
}

func (e *AssignmentEngineError) Unwrap() error {
	return e.Err
}
