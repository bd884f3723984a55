package backlog

// WorkStatus is the shared workflow state for tasks and bugs.
type WorkStatus string

const (
	StatusTodo       WorkStatus = "todo"
	StatusInProgress WorkStatus = "in_progress"
	StatusDone       WorkStatus = "done"
)

func (s WorkStatus) IsValid() bool {
	switch s {
	case StatusTodo, StatusInProgress, StatusDone:
		return true
	}
	return false
}

func (s WorkStatus) String() string {
	return string(s)
}

// Severity classifies how damaging a bug is.
type Severity string

const (
	SeverityLow      Severity = "low"
	SeverityMedium   Severity = "medium"
	SeverityHigh     Severity = "high"
	SeverityCritical Severity = "critical"
)

func (s Severity) IsValid() bool {
	switch s {
	case SeverityLow, SeverityMedium, SeverityHigh, SeverityCritical:
		return true
	}
	return false
}

func (s Severity) String() string {
	return string(s)
}
