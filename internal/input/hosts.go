package input

import (
	"bufio"
	"fmt"
	"io"
	"os"
	"strings"
)

// ReadHosts reads one host per line from path. Surrounding whitespace is
// stripped and blank lines are skipped. Duplicates are kept.
func ReadHosts(path string) ([]string, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, fmt.Errorf("open input %q: %w", path, err)
	}
	defer f.Close()

	hosts, err := Parse(f)
	if err != nil {
		return nil, fmt.Errorf("read input %q: %w", path, err)
	}
	return hosts, nil
}

func Parse(r io.Reader) ([]string, error) {
	var hosts []string

	sc := bufio.NewScanner(r)
	sc.Buffer(make([]byte, 0, 64*1024), 1024*1024)
	for sc.Scan() {
		h := strings.TrimSpace(sc.Text())
		if h == "" {
			continue
		}
		hosts = append(hosts, h)
	}
	return hosts, sc.Err()
}
