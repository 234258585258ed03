package model

// Summary aggregates the per-file outcomes of one validation run. Errors
// and Warnings keep discovery order.
type Summary struct {
	FilesChecked int      `yaml:"files_checked"`
	Errors       []string `yaml:"errors"`
	Warnings     []string `yaml:"warnings"`
}

// Success reports whether the run passed. Warnings never affect it.
func (s Summary) Success() bool {
	return len(s.Errors) == 0
}
