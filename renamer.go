package hoto

// RenamePlan pairs an original path with its proposed destination.
type RenamePlan struct {
	OldPath string
	NewPath string
}

// Renamer plans and applies file renames.
type Renamer interface {
	// Plan sanitizes formatted into a filesystem-legal name next to the
	// source file. Returns EINVALID when nothing usable survives
	// sanitization.
	Plan(src *Source, formatted string) (*RenamePlan, error)

	// Apply performs the rename. A dry run validates the plan without
	// touching the filesystem. Returns ECONFLICT when the destination
	// exists and is a different file, ENOTFOUND when the source is gone.
	Apply(plan *RenamePlan, dryRun bool) error
}
