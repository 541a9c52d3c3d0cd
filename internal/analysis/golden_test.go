package analysis

import (
	"os"
	"path/filepath"
	"sort"
	"strings"
	"testing"

	"golang.org/x/tools/txtar"
)

// TestGoldenFixtures runs every testdata/*.txtar archive through
// ValidateDocument and compares the sorted set of diagnostic codes against
// the archive's "diagnostics" file, one code per line.
func TestGoldenFixtures(t *testing.T) {
	paths, err := filepath.Glob("testdata/*.txtar")
	if err != nil {
		t.Fatalf("glob testdata: %v", err)
	}
	if len(paths) == 0 {
		t.Fatalf("no golden fixtures found under testdata/")
	}

	for _, path := range paths {
		path := path
		t.Run(filepath.Base(path), func(t *testing.T) {
			arc := txtar.Parse(mustReadFile(t, path))
			input := fileData(t, arc, "input.card")
			want := splitLines(fileData(t, arc, "diagnostics"))

			result := ValidateDocument(string(input))
			got := make([]string, 0, len(result.Diagnostics))
			for _, d := range result.Diagnostics {
				got = append(got, string(d.Code))
			}
			sort.Strings(got)
			sort.Strings(want)

			if !equalSlices(got, want) {
				t.Fatalf("got diagnostic codes %v, want %v (source:\n%s)", got, want, input)
			}
		})
	}
}

func mustReadFile(t *testing.T, path string) []byte {
	t.Helper()
	data, err := os.ReadFile(path)
	if err != nil {
		t.Fatalf("reading %s: %v", path, err)
	}
	return data
}

func fileData(t *testing.T, arc *txtar.Archive, name string) []byte {
	t.Helper()
	for _, f := range arc.Files {
		if f.Name == name {
			return f.Data
		}
	}
	t.Fatalf("archive missing %q section", name)
	return nil
}

func splitLines(data []byte) []string {
	var out []string
	for _, line := range strings.Split(string(data), "\n") {
		line = strings.TrimSpace(line)
		if line != "" {
			out = append(out, line)
		}
	}
	return out
}

func equalSlices(a, b []string) bool {
	if len(a) != len(b) {
		return false
	}
	for i := range a {
		if a[i] != b[i] {
			return false
		}
	}
	return true
}
