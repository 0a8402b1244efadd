// Package console prints the human-facing progress lines of a run. Diagnostic
// logging goes through pkg/logger instead and never mixes with these lines.
package console

import (
	"io"
	"os"
	"xurl/pkg/serrors"

	"github.com/fatih/color"
	"github.com/go-faster/errors"
	"github.com/mattn/go-isatty"
)

// Reporter writes status lines to out and failures to errOut. Colour is only
// emitted when the destination is a terminal.
type Reporter struct {
	out    io.Writer
	errOut io.Writer

	info  *color.Color
	ok    *color.Color
	saved *color.Color
	warn  *color.Color
}

// New creates a Reporter writing to the given streams.
func New(out, errOut io.Writer) *Reporter {
	r := &Reporter{
		out:    out,
		errOut: errOut,
		info:   color.New(color.FgCyan),
		ok:     color.New(color.FgGreen),
		saved:  color.New(color.FgGreen, color.Bold),
		warn:   color.New(color.FgYellow),
	}

	if !isTerminal(out) {
		r.info.DisableColor()
		r.ok.DisableColor()
		r.saved.DisableColor()
	}
	if !isTerminal(out) || !isTerminal(errOut) {
		r.warn.DisableColor()
	}

	return r
}

// Stdio returns a Reporter bound to the process's stdout and stderr.
func Stdio() *Reporter { return New(os.Stdout, os.Stderr) }

func isTerminal(w io.Writer) bool {
	f, ok := w.(*os.File)
	if !ok {
		return false
	}

	return isatty.IsTerminal(f.Fd()) || isatty.IsCygwinTerminal(f.Fd())
}

// Decompiling announces that target is being decompiled.
func (r *Reporter) Decompiling(target string) {
	_, _ = r.info.Fprintf(r.out, "[*] decompiling %s ...\n", target)
}

// Decompiled reports where the decompiled tree was written.
func (r *Reporter) Decompiled(dir string) {
	_, _ = r.ok.Fprintf(r.out, "[+] apk source code are in: %s\n", dir)
}

// Saved reports the path of the written URL list.
func (r *Reporter) Saved(path string) {
	_, _ = r.saved.Fprintf(r.out, "[-] urls saved on: %s\n", path)
}

// NothingFound reports an empty result.
func (r *Reporter) NothingFound() {
	_, _ = r.warn.Fprintln(r.out, "[!] no urls found")
}

// Failed reports a fatal error on errOut. Decompiler failures get the fixed
// "error in decompilation" line; anything else is printed as is.
func (r *Reporter) Failed(err error) {
	if err == nil {
		return
	}

	if errors.Is(err, serrors.ErrExternalTool) {
		_, _ = r.warn.Fprintln(r.errOut, "[!] error in decompilation")

		return
	}

	_, _ = r.warn.Fprintf(r.errOut, "[!] %s\n", err)
}
