// internal/config/wordlists.go
package config

import (
	"embed"
	"encoding/json"
	"errors"
	"fmt"
	"io/fs"
	"os"
	"path/filepath"
	"sort"
	"strings"

	"gopkg.in/yaml.v3"
)

//go:embed data/*.yaml
var embedded embed.FS

// wordListExts are tried in order when looking for a list in a data dir.
var wordListExts = []string{".json", ".yaml", ".yml"}

// EmbeddedListNames returns the names of the builtin word lists.
func EmbeddedListNames() []string {
	entries, err := fs.ReadDir(embedded, "data")
	if err != nil {
		return nil
	}
	names := make([]string, 0, len(entries))
	for _, e := range entries {
		names = append(names, strings.TrimSuffix(e.Name(), ".yaml"))
	}
	sort.Strings(names)
	return names
}

// EmbeddedList returns a builtin word list.
func EmbeddedList(name string) ([]string, error) {
	b, err := embedded.ReadFile("data/" + name + ".yaml")
	if err != nil {
		return nil, fmt.Errorf("no builtin word list %q: %w", name, err)
	}
	return decodeList(name+".yaml", b)
}

// LoadWordList reads a word list file. JSON files must hold an array of
// strings; YAML files a sequence of strings.
func LoadWordList(path string) ([]string, error) {
	b, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("could not read word list: %w", err)
	}
	return decodeList(path, b)
}

// findWordList looks for name in dir. It reports false when no file exists.
func findWordList(dir, name string) ([]string, bool, error) {
	for _, ext := range wordListExts {
		path := filepath.Join(dir, name+ext)
		values, err := LoadWordList(path)
		if errors.Is(err, fs.ErrNotExist) {
			continue
		}
		if err != nil {
			return nil, false, err
		}
		return values, true, nil
	}
	return nil, false, nil
}

func decodeList(path string, b []byte) ([]string, error) {
	var values []string
	var err error
	if strings.EqualFold(filepath.Ext(path), ".json") {
		err = json.Unmarshal(b, &values)
	} else {
		err = yaml.Unmarshal(b, &values)
	}
	if err != nil {
		return nil, fmt.Errorf("%w: %s is not a list of strings: %v", ErrInvalidConfig, path, err)
	}
	if len(values) == 0 {
		return nil, fmt.Errorf("%w: %s is empty", ErrInvalidConfig, path)
	}
	return values, nil
}
