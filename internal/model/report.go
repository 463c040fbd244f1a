package model

// Report is the flattened, printable view of one mutant of a source file.
type Report struct {
	ID          int          `yaml:"id"`
	File        Path         `yaml:"file"`
	Line        int          `yaml:"line"`
	Column      int          `yaml:"column"`
	Kind        MutationKind `yaml:"kind"`
	Mutagen     string       `yaml:"mutagen"`
	Description string       `yaml:"description"`
	Status      string       `yaml:"status"`
	Static      bool         `yaml:"static"`
	Reason      string       `yaml:"reason,omitempty"`
	Diff        string       `yaml:"diff,omitempty"`
}

// FileResult groups the reports of a single source file.
type FileResult struct {
	Source  Source
	Reports []Report
	Err     error
}
