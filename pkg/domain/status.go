package domain

import "encoding/json"

// StatusCode is the closed set of execution states the dashboard understands.
type StatusCode int

const (
	// StatusOther covers every code the dashboard does not know about.
	StatusOther StatusCode = iota
	StatusInProgress
	StatusFailed
	StatusSucceeded
)

// Raw status strings as reported by pipeline sources.
const (
	RawInProgress = "InProgress"
	RawFailed     = "Failed"
	RawSucceeded  = "Succeeded"
)

// ExecutionStatus is the status of a stage's latest execution.
// Raw keeps the original string so unknown codes can still be shown.
type ExecutionStatus struct {
	Code StatusCode
	Raw  string
}

// ParseExecutionStatus maps a raw status string onto a known code.
// Matching is exact; anything else is StatusOther.
func ParseExecutionStatus(raw string) ExecutionStatus {
	switch raw {
	case RawInProgress:
		return ExecutionStatus{Code: StatusInProgress, Raw: raw}
	case RawFailed:
		return ExecutionStatus{Code: StatusFailed, Raw: raw}
	case RawSucceeded:
		return ExecutionStatus{Code: StatusSucceeded, Raw: raw}
	default:
		return ExecutionStatus{Code: StatusOther, Raw: raw}
	}
}

func (s ExecutionStatus) String() string {
	return s.Raw
}

// MarshalJSON encodes the status as its raw string.
func (s ExecutionStatus) MarshalJSON() ([]byte, error) {
	return json.Marshal(s.Raw)
}

// UnmarshalJSON decodes a raw status string.
func (s *ExecutionStatus) UnmarshalJSON(data []byte) error {
	var raw string
	if err := json.Unmarshal(data, &raw); err != nil {
		return err
	}
	*s = ParseExecutionStatus(raw)
	return nil
}
