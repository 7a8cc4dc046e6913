// Package clipboard copies text to the system clipboard through the
// platform's native utility. Copying is strictly best effort: a missing
// utility or a failed invocation is reported to the caller and never
// treated as fatal.
package clipboard

import (
	"fmt"
	"os/exec"
	"runtime"
	"strings"
)

// Writer copies text to a clipboard.
type Writer interface {
	Copy(text string) error
}

type tool struct {
	name string
	args []string
}

// candidates lists the utilities to probe, in preference order.
func candidates() []tool {
	switch runtime.GOOS {
	case "darwin":
		return []tool{{name: "pbcopy"}}
	case "windows":
		return []tool{{name: "clip"}}
	default:
		return []tool{
			{name: "wl-copy"},
			{name: "xclip", args: []string{"-selection", "clipboard"}},
			{name: "xsel", args: []string{"--clipboard", "--input"}},
		}
	}
}

var lookPath = exec.LookPath

// System returns a Writer backed by the first clipboard utility found
// in PATH, or an error when none is installed.
func System() (Writer, error) {
	for _, t := range candidates() {
		if _, err := lookPath(t.name); err == nil {
			return &systemWriter{tool: t}, nil
		}
	}
	return nil, fmt.Errorf("no clipboard utility found in PATH")
}

type systemWriter struct {
	tool tool
}

func (w *systemWriter) Copy(text string) error {
	cmd := exec.Command(w.tool.name, w.tool.args...)
	cmd.Stdin = strings.NewReader(text)
	if err := cmd.Run(); err != nil {
		return fmt.Errorf("%s: %w", w.tool.name, err)
	}
	return nil
}
