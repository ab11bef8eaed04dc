// Package prompts holds the model prompt templates, embedded from JSON files
// keyed by prompt name.
package prompts

import (
	"embed"
	"encoding/json"
	"fmt"
	"regexp"
	"sort"
	"strings"
	"sync"
)

//go:embed *.json
var promptFiles embed.FS

var (
	files   = make(map[string]map[string]string)
	filesMu sync.Mutex
)

// placeholder matches {{.Name}} template slots.
var placeholder = regexp.MustCompile(`\{\{\.(\w+)\}\}`)

// Get returns the raw template stored under key in filename (e.g. "analysis.json").
func Get(filename, key string) (string, error) {
	templates, err := load(filename)
	if err != nil {
		return "", err
	}

	tmpl, ok := templates[key]
	if !ok {
		return "", fmt.Errorf("prompt key %q not found in %s", key, filename)
	}
	return tmpl, nil
}

// Render fills the {{.Name}} slots of a template from data. A slot with no
// value is an error, so a renamed key cannot silently reach the model.
func Render(filename, key string, data map[string]string) (string, error) {
	tmpl, err := Get(filename, key)
	if err != nil {
		return "", err
	}

	var missing []string
	out := placeholder.ReplaceAllStringFunc(tmpl, func(slot string) string {
		name := placeholder.FindStringSubmatch(slot)[1]
		value, ok := data[name]
		if !ok {
			missing = append(missing, name)
			return slot
		}
		return value
	})

	if len(missing) > 0 {
		sort.Strings(missing)
		return "", fmt.Errorf("prompt %s/%s: no value for %s", filename, key, strings.Join(missing, ", "))
	}
	return out, nil
}

func load(filename string) (map[string]string, error) {
	filesMu.Lock()
	defer filesMu.Unlock()

	if templates, ok := files[filename]; ok {
		return templates, nil
	}

	data, err := promptFiles.ReadFile(filename)
	if err != nil {
		return nil, fmt.Errorf("failed to read prompt file %s: %w", filename, err)
	}

	var templates map[string]string
	if err := json.Unmarshal(data, &templates); err != nil {
		return nil, fmt.Errorf("failed to parse prompt file %s: %w", filename, err)
	}

	files[filename] = templates
	return templates, nil
}
