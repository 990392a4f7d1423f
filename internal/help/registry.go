package help

import (
	"fmt"
	"os"
	"path/filepath"
	"sort"
	"strings"
	"sync"

	"gopkg.in/yaml.v3"
)

// Registry handles loading and caching help topics from YAML files
type Registry struct {
	dir     string
	cache   map[string]*Topic
	cacheMu sync.RWMutex
	loaded  bool
}

// NewRegistry creates a new help registry
func NewRegistry(dir string) *Registry {
	return &Registry{
		dir:   dir,
		cache: make(map[string]*Topic),
	}
}

// Load reads all YAML topic files from the directory.
// Topics are keyed by their lowercased name, falling back to the file name.
func (r *Registry) Load() error {
	r.cacheMu.Lock()
	defer r.cacheMu.Unlock()
	return r.loadLocked()
}

// Reload re-reads the directory so edited or removed files take effect.
func (r *Registry) Reload() error {
	return r.Load()
}

func (r *Registry) loadLocked() error {
	entries, err := os.ReadDir(r.dir)
	if err != nil {
		return fmt.Errorf("failed to read help directory: %w", err)
	}

	cache := make(map[string]*Topic)
	for _, entry := range entries {
		if entry.IsDir() || !strings.HasSuffix(entry.Name(), ".yaml") {
			continue
		}

		name := strings.TrimSuffix(entry.Name(), ".yaml")
		path := filepath.Join(r.dir, entry.Name())

		topic, err := r.loadTopicFile(path)
		if err != nil {
			return fmt.Errorf("failed to load topic %s: %w", name, err)
		}
		if topic.Name != "" {
			name = topic.Name
		}

		cache[strings.ToLower(name)] = topic
	}

	r.cache = cache
	r.loaded = true
	return nil
}

// loadTopicFile loads a single YAML topic file
func (r *Registry) loadTopicFile(path string) (*Topic, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("failed to read file: %w", err)
	}

	var topic Topic
	if err := yaml.Unmarshal(data, &topic); err != nil {
		return nil, fmt.Errorf("failed to parse YAML: %w", err)
	}

	return &topic, nil
}

// GetTopic returns a topic by name, matching ignoring case.
func (r *Registry) GetTopic(name string) (*Topic, bool) {
	r.cacheMu.RLock()
	defer r.cacheMu.RUnlock()

	// Lazy load if not already loaded
	if !r.loaded {
		r.cacheMu.RUnlock()
		if err := r.Load(); err != nil {
			r.cacheMu.RLock()
			return nil, false
		}
		r.cacheMu.RLock()
	}

	topic, ok := r.cache[strings.ToLower(name)]
	return topic, ok
}

// TopicNames returns the names of all loaded topics in sorted order.
func (r *Registry) TopicNames() []string {
	r.cacheMu.RLock()
	defer r.cacheMu.RUnlock()

	if !r.loaded {
		r.cacheMu.RUnlock()
		_ = r.Load()
		r.cacheMu.RLock()
	}

	names := make([]string, 0, len(r.cache))
	for name := range r.cache {
		names = append(names, name)
	}
	sort.Strings(names)
	return names
}
