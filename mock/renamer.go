package mock

import "github.com/terokarvinen/hoto"

// Ensure Renamer implements hoto.Renamer at compile time.
var _ hoto.Renamer = (*Renamer)(nil)

// Renamer is a mock implementation of hoto.Renamer.
type Renamer struct {
	PlanFn  func(src *hoto.Source, formatted string) (*hoto.RenamePlan, error)
	ApplyFn func(plan *hoto.RenamePlan, dryRun bool) error
}

func (m *Renamer) Plan(src *hoto.Source, formatted string) (*hoto.RenamePlan, error) {
	return m.PlanFn(src, formatted)
}

func (m *Renamer) Apply(plan *hoto.RenamePlan, dryRun bool) error {
	return m.ApplyFn(plan, dryRun)
}
