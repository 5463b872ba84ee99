package config

import (
	"context"
	"fmt"
	"os"

	"github.com/hashicorp/hcl/v2"
	"github.com/hashicorp/hcl/v2/gohcl"
	"github.com/hashicorp/hcl/v2/hclparse"
	"github.com/zclconf/go-cty/cty"
	"github.com/zclconf/go-cty/cty/convert"

	"github.com/vk/gridctl/internal/ctxlog"
	"github.com/vk/gridctl/internal/fsutil"
)

// hclLoader reads gridctl configuration from .hcl files.
type hclLoader struct{}

// NewLoader creates the HCL-backed configuration loader.
func NewLoader() Loader { return &hclLoader{} }

// fileModel mirrors the schema of one configuration file.
type fileModel struct {
	Sites  []Site     `hcl:"site,block"`
	Events *Events    `hcl:"events,block"`
	Vars   *varsBlock `hcl:"vars,block"`
}

// varsBlock defers decoding so arbitrary attribute names can be accepted.
type varsBlock struct {
	Body hcl.Body `hcl:",remain"`
}

// Load reads the file or directory at path and merges everything into a
// single Model. An empty path yields an empty model.
func (l *hclLoader) Load(ctx context.Context, path string) (*Model, error) {
	logger := ctxlog.FromContext(ctx)

	model := &Model{Vars: make(map[string]string)}
	if path == "" {
		logger.Debug("No configuration path provided, starting with an empty model.")
		return model, nil
	}

	paths, err := configFiles(path)
	if err != nil {
		return nil, err
	}
	if len(paths) == 0 {
		logger.Warn("No .hcl configuration files found in path.", "path", path)
		return model, nil
	}
	logger.Debug("Found configuration files to load.", "files", paths)

	parser := hclparse.NewParser()
	seen := make(map[string]string) // site name -> file that defined it

	for _, filePath := range paths {
		file, diags := parser.ParseHCLFile(filePath)
		if diags.HasErrors() {
			return nil, fmt.Errorf("failed to parse %s: %w", filePath, diags)
		}

		var fm fileModel
		if diags := gohcl.DecodeBody(file.Body, nil, &fm); diags.HasErrors() {
			return nil, fmt.Errorf("failed to decode %s: %w", filePath, diags)
		}

		for _, site := range fm.Sites {
			if prev, dup := seen[site.Name]; dup {
				return nil, fmt.Errorf("site %q in %s already defined in %s", site.Name, filePath, prev)
			}
			seen[site.Name] = filePath
			model.Sites = append(model.Sites, site)
		}
		if fm.Events != nil {
			model.Events = fm.Events
		}
		if fm.Vars != nil {
			if err := decodeVars(fm.Vars.Body, model.Vars); err != nil {
				return nil, fmt.Errorf("failed to read vars in %s: %w", filePath, err)
			}
		}
		logger.Debug("Loaded configuration file.", "file", filePath)
	}

	model.SortSites()
	logger.Info("Configuration loaded.", "sites", len(model.Sites), "vars", len(model.Vars))
	return model, nil
}

// configFiles expands path into the ordered list of files to merge.
func configFiles(path string) ([]string, error) {
	info, err := os.Stat(path)
	if err != nil {
		return nil, fmt.Errorf("configuration path %s: %w", path, err)
	}
	if info.IsDir() {
		return fsutil.FindFilesByExtension(path, ".hcl")
	}
	return []string{path}, nil
}

// decodeVars evaluates every attribute of a vars block and stores it as a
// string, converting scalar values (numbers, bools) along the way.
func decodeVars(body hcl.Body, into map[string]string) error {
	attrs, diags := body.JustAttributes()
	if diags.HasErrors() {
		return diags
	}
	for name, attr := range attrs {
		val, diags := attr.Expr.Value(nil)
		if diags.HasErrors() {
			return diags
		}
		strVal, err := convert.Convert(val, cty.String)
		if err != nil {
			return fmt.Errorf("var %q: cannot represent %s as a string: %w", name, val.Type().FriendlyName(), err)
		}
		into[name] = strVal.AsString()
	}
	return nil
}
