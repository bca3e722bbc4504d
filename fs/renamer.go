package fs

import (
	"io"
	"os"
	"path/filepath"

	"github.com/cespare/xxhash/v2"

	"github.com/terokarvinen/hoto"
)

// Ensure Renamer implements hoto.Renamer at compile time.
var _ hoto.Renamer = (*Renamer)(nil)

// Renamer renames files in place on the local filesystem.
type Renamer struct{}

// NewRenamer creates a new Renamer.
func NewRenamer() *Renamer {
	return &Renamer{}
}

// Plan sanitizes formatted into a destination path in the source's
// directory, preserving the source suffix.
func (r *Renamer) Plan(src *hoto.Source, formatted string) (*hoto.RenamePlan, error) {
	name := CleanFilename(formatted, src.Ext())
	if name == "" {
		return nil, hoto.Errorf(hoto.EINVALID, "formatted name for %q is empty after sanitizing", src.Path)
	}
	return &hoto.RenamePlan{
		OldPath: src.Path,
		NewPath: filepath.Join(filepath.Dir(src.Path), name),
	}, nil
}

// Apply performs the rename, or only validates the plan when dryRun is
// set. An existing destination is never overwritten; renaming a file to
// its current name is a no-op.
func (r *Renamer) Apply(plan *hoto.RenamePlan, dryRun bool) error {
	srcInfo, err := os.Stat(plan.OldPath)
	if err != nil {
		return hoto.Errorf(hoto.ENOTFOUND, "source %q no longer exists", plan.OldPath)
	}
	if dstInfo, err := os.Stat(plan.NewPath); err == nil {
		if os.SameFile(srcInfo, dstInfo) {
			return nil
		}
		return conflictError(plan)
	}
	if dryRun {
		return nil
	}
	if err := os.Rename(plan.OldPath, plan.NewPath); err != nil {
		return hoto.Errorf(hoto.EINTERNAL, "renaming %q: %v", plan.OldPath, err)
	}
	return nil
}

// conflictError reports an existing destination, noting whether its
// content already matches the source so a re-run is distinguishable
// from a genuine clash.
func conflictError(plan *hoto.RenamePlan) error {
	if same, err := sameContent(plan.OldPath, plan.NewPath); err == nil && same {
		return hoto.Errorf(hoto.ECONFLICT,
			"%q already exists with identical content; not renaming %q", plan.NewPath, plan.OldPath)
	}
	return hoto.Errorf(hoto.ECONFLICT,
		"%q already exists; not renaming %q", plan.NewPath, plan.OldPath)
}

// sameContent compares two files by xxhash digest.
func sameContent(a, b string) (bool, error) {
	ha, err := hashFile(a)
	if err != nil {
		return false, err
	}
	hb, err := hashFile(b)
	if err != nil {
		return false, err
	}
	return ha == hb, nil
}

func hashFile(path string) (uint64, error) {
	f, err := os.Open(path)
	if err != nil {
		return 0, err
	}
	defer f.Close()

	h := xxhash.New()
	if _, err := io.Copy(h, f); err != nil {
		return 0, err
	}
	return h.Sum64(), nil
}
