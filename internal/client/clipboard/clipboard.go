// Package clipboard copies text to the user's clipboard. The primary path
// uses the system clipboard; when none is reachable (headless or remote
// sessions) it falls back to the OSC 52 escape sequence, asking the hosting
// terminal to perform the copy. Callers cannot tell the paths apart: both
// report success identically.
package clipboard

import (
	"encoding/base64"
	"fmt"
	"io"
	"os"

	sysclip "github.com/atotto/clipboard"
	"github.com/dmitrijs2005/docshare/internal/common"
	"golang.org/x/term"
)

// Test seams.
var (
	writeAll = sysclip.WriteAll

	stdoutIsTerminal = func() bool {
		return term.IsTerminal(int(os.Stdout.Fd()))
	}
)

// Copy places value on the clipboard. w is the terminal's output stream,
// used only by the OSC 52 fallback.
func Copy(value string, w io.Writer) error {
	if err := writeAll(value); err == nil {
		return nil
	}
	if !stdoutIsTerminal() {
		return common.ErrClipboardUnavailable
	}
	return writeOSC52(w, value)
}

func writeOSC52(w io.Writer, value string) error {
	encoded := base64.StdEncoding.EncodeToString([]byte(value))
	if _, err := fmt.Fprintf(w, "\x1b]52;c;%s\x07", encoded); err != nil {
		return fmt.Errorf("clipboard fallback failed: %w", err)
	}
	return nil
}
