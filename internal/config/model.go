package config

import (
	"context"
	"sort"
)

// Site describes one managed deployment target.
type Site struct {
	Name        string `hcl:"name,label" json:"name"`
	URL         string `hcl:"url" json:"url"`
	Environment string `hcl:"environment,optional" json:"environment,omitempty"`
}

// Events describes the endpoint commands subscribe to for the grid event
// stream.
type Events struct {
	URL                string `hcl:"url" json:"url"`
	Namespace          string `hcl:"namespace,optional" json:"namespace,omitempty"`
	InsecureSkipVerify bool   `hcl:"insecure_skip_verify,optional" json:"insecure_skip_verify,omitempty"`
}

// Model is the merged configuration handed to command modules. A zero Model
// is valid; commands that need a missing section fail at invocation time.
type Model struct {
	Sites  []Site
	Events *Events
	Vars   map[string]string
}

// Site returns the site with the given name, if configured.
func (m *Model) Site(name string) (Site, bool) {
	for _, s := range m.Sites {
		if s.Name == name {
			return s, true
		}
	}
	return Site{}, false
}

// SortSites orders the site inventory by name for deterministic output.
func (m *Model) SortSites() {
	sort.Slice(m.Sites, func(i, j int) bool { return m.Sites[i].Name < m.Sites[j].Name })
}

// Loader reads and merges configuration from a path. Implementations decide
// the on-disk format; the rest of the application only sees the Model.
type Loader interface {
	Load(ctx context.Context, path string) (*Model, error)
}
