package domain

// Pipeline is a read-only snapshot of a pipeline as reported by a source.
type Pipeline struct {
	Name   string  `json:"name"`
	Stages []Stage `json:"stages"`
}

// Stage is a pipeline stage and its latest execution, if any.
// A nil Latest means the stage has never been executed.
type Stage struct {
	Name   string           `json:"name"`
	Latest *ExecutionStatus `json:"latest,omitempty"`
}

// NewStage creates a stage from a raw status string.
// An empty status produces a stage without a recorded execution.
func NewStage(name, status string) Stage {
	stage := Stage{Name: name}
	if status != "" {
		s := ParseExecutionStatus(status)
		stage.Latest = &s
	}
	return stage
}

// StatusText returns the raw status of the latest execution, or "" when there is none.
func (s Stage) StatusText() string {
	if s.Latest == nil {
		return ""
	}
	return s.Latest.String()
}

// Displayable reports whether the stage can be drawn.
func (s Stage) Displayable() bool {
	return s.Name != ""
}
