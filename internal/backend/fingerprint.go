package backend

import (
	"os"
	"strings"

	"github.com/cespare/xxhash/v2"
)

// fingerprint hashes the visible entry names of dir together with their
// types. Content changes to existing files leave it unchanged.
func fingerprint(dir string) (uint64, error) {
	entries, err := os.ReadDir(dir)
	if err != nil {
		return 0, err
	}
	d := xxhash.New()
	for _, entry := range entries {
		name := entry.Name()
		if strings.HasPrefix(name, ".") {
			continue
		}
		_, _ = d.WriteString(name)
		_, _ = d.WriteString("\x00")
		_, _ = d.WriteString(entry.Type().String())
		_, _ = d.WriteString("\n")
	}
	return d.Sum64(), nil
}
