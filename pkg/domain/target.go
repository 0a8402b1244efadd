package domain

import (
	"path/filepath"
	"strings"
)

// Target identifies the application package to process by its filesystem path.
// It is an immutable input to a run.
type Target string

// Path returns the filesystem path of the target as given by the caller.
func (t Target) Path() string { return string(t) }

// Name returns the target's base name without its final extension, e.g.
// "/tmp/app-release.apk" becomes "app-release". It is used to namespace the
// decompiled tree of each target.
func (t Target) Name() string {
	base := filepath.Base(string(t))
	if ext := filepath.Ext(base); ext != "" && ext != base {
		base = strings.TrimSuffix(base, ext)
	}

	return base
}
