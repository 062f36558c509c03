package testutil

import (
	"encoding/json"
	"fmt"
	"math"
	"os"
	"path/filepath"
	"sort"
	"strings"
	"testing"
)

// LoadJSON loads a JSON fixture from testdata relative to the repo root.
func LoadJSON(t *testing.T, rel string, v any) {
	t.Helper()
	data := readTestdata(t, rel)
	if err := json.Unmarshal(data, v); err != nil {
		t.Fatalf("decode %s: %v", rel, err)
	}
}

// LoadHex returns a trimmed hex string from testdata relative path.
func LoadHex(t *testing.T, rel string) string {
	t.Helper()
	data := readTestdata(t, rel)
	return strings.TrimSpace(string(data))
}

// Fixtures lists the base names of the .hex files in a testdata directory.
func Fixtures(t *testing.T, dir string) []string {
	t.Helper()
	for _, root := range roots {
		matches, err := filepath.Glob(filepath.Join(root, dir, "*.hex"))
		if err != nil || len(matches) == 0 {
			continue
		}
		names := make([]string, 0, len(matches))
		for _, m := range matches {
			names = append(names, strings.TrimSuffix(filepath.Base(m), ".hex"))
		}
		sort.Strings(names)
		return names
	}
	t.Fatalf("no fixtures under testdata/%s", dir)
	return nil
}

// DiffMaps compares a decoded property map with one read from JSON. Numbers
// are compared with a small tolerance; other values by their printed form.
// It returns "" when both match.
func DiffMaps(expected, actual map[string]any) string {
	if len(expected) != len(actual) {
		return fmt.Sprintf("len mismatch expected %d actual %d (expected keys %v, actual keys %v)",
			len(expected), len(actual), sortedKeys(expected), sortedKeys(actual))
	}
	for k, v := range expected {
		av, ok := actual[k]
		if !ok {
			return fmt.Sprintf("missing key %s", k)
		}
		if !sameValue(v, av) {
			return fmt.Sprintf("key %s mismatch expected %v got %v", k, v, av)
		}
	}
	return ""
}

func sameValue(expected, actual any) bool {
	switch ev := expected.(type) {
	case float64:
		af, ok := actual.(float64)
		return ok && math.Abs(ev-af) <= 1e-6
	case []any:
		as, ok := actual.([]float64)
		if !ok || len(as) != len(ev) {
			return false
		}
		for i := range ev {
			if !sameValue(ev[i], as[i]) {
				return false
			}
		}
		return true
	default:
		return fmt.Sprintf("%v", expected) == fmt.Sprintf("%v", actual)
	}
}

func sortedKeys(m map[string]any) []string {
	keys := make([]string, 0, len(m))
	for k := range m {
		keys = append(keys, k)
	}
	sort.Strings(keys)
	return keys
}

var roots = []string{
	"testdata",
	filepath.Join("..", "testdata"),
	filepath.Join("..", "..", "testdata"),
}

func readTestdata(t *testing.T, rel string) []byte {
	t.Helper()
	for _, root := range roots {
		if data, err := os.ReadFile(filepath.Join(root, rel)); err == nil {
			return data
		}
	}
	t.Fatalf("unable to locate testdata file %s", rel)
	return nil
}
