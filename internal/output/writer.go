package output

import (
	"bufio"
	"fmt"
	"os"
)

// WriteHosts writes hosts to path, one per line, each newline-terminated.
// Nothing is created or truncated when hosts is empty; the returned bool
// reports whether the file was written.
func WriteHosts(path string, hosts []string) (bool, error) {
	if len(hosts) == 0 {
		return false, nil
	}

	f, err := os.OpenFile(path, os.O_WRONLY|os.O_CREATE|os.O_TRUNC, 0o644)
	if err != nil {
		return false, fmt.Errorf("open output %q: %w", path, err)
	}

	w := bufio.NewWriter(f)
	for _, h := range hosts {
		if _, err := w.WriteString(h + "\n"); err != nil {
			_ = f.Close()
			return false, fmt.Errorf("write output %q: %w", path, err)
		}
	}
	if err := w.Flush(); err != nil {
		_ = f.Close()
		return false, fmt.Errorf("write output %q: %w", path, err)
	}
	if err := f.Close(); err != nil {
		return false, fmt.Errorf("close output %q: %w", path, err)
	}
	return true, nil
}
