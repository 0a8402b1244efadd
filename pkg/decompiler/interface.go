// Package decompiler defines the abstraction over external tools that unpack
// an application package into a browsable source tree.
package decompiler

import (
	"context"
	"xurl/pkg/domain"
)

// Decompiler unpacks a target into destination, replacing whatever was there.
//
//go:generate mockgen -package mockdecompiler -source=interface.go -destination=mock/mockdecompiler.go *
type Decompiler interface {
	// Decompile blocks until the tool finishes. A tool that exits unsuccessfully
	// yields an error of kind serrors.ErrExternalTool; partial output left in
	// destination is not cleaned up.
	Decompile(ctx context.Context, target domain.Target, destination string) error
}
