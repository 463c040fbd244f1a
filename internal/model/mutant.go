package model

// MutantStatus is the lifecycle state of a mutant.
type MutantStatus int

const (
	// Pending mutants wait for the execution stage.
	Pending MutantStatus = iota
	// Ignored mutants were filtered by configuration or directives; they are reported, never run.
	Ignored
)

func (s MutantStatus) String() string {
	switch s {
	case Pending:
		return "pending"
	case Ignored:
		return "ignored"
	default:
		return "unknown"
	}
}

// Mutant is an accepted mutation together with its registry metadata.
type Mutant struct {
	ID            int
	Mutation      Mutation
	Mutagen       string
	Status        MutantStatus
	Static        bool
	IgnoredReason string
}
