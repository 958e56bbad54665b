// SPDX-License-Identifier: MIT
// Copyright (c) 2025 Vladyslav Kazantsev

package hcl

import (
	"context"
	"fmt"
	"sync"

	"github.com/hashicorp/hcl/v2/gohcl"
	"github.com/hashicorp/hcl/v2/hclparse"
	"golang.org/x/sync/errgroup"

	"github.com/vk/contentsync/internal/content"
	"github.com/vk/contentsync/internal/ctxlog"
	"github.com/vk/contentsync/internal/fsutil"
)

// contentExtension is the suffix definition files must carry.
const contentExtension = ".hcl"

// Loader parses HCL definition files into content records.
type Loader struct{}

// compile-time check that Loader satisfies the format-agnostic interface.
var _ content.Loader = (*Loader)(nil)

// NewLoader creates a new HCL content loader.
func NewLoader() *Loader {
	return &Loader{}
}

// Load discovers every definition file under the given paths, parses them
// concurrently, and merges the records into one Set. Duplicate record names
// anywhere in the content tree fail the load.
func (l *Loader) Load(ctx context.Context, paths ...string) (*content.Set, error) {
	logger := ctxlog.FromContext(ctx)

	var files []string
	for _, path := range paths {
		found, err := fsutil.FindFilesByExtension(path, contentExtension)
		if err != nil {
			return nil, fmt.Errorf("failed to discover content files under %s: %w", path, err)
		}
		files = append(files, found...)
	}
	if len(files) == 0 {
		logger.Warn("No content definition files found.", "paths", paths)
		return content.NewSet(), nil
	}
	logger.Debug("Found content definition files.", "count", len(files))

	// Files are independent, so parse them concurrently. Each goroutine gets
	// its own parser; hclparse.Parser is not safe for concurrent use.
	set := content.NewSet()
	var mu sync.Mutex
	g, gctx := errgroup.WithContext(ctx)
	for _, file := range files {
		g.Go(func() error {
			parsed, err := l.loadFile(gctx, file)
			if err != nil {
				return err
			}

			mu.Lock()
			defer mu.Unlock()
			for name, h := range parsed.Hulls {
				if _, exists := set.Hulls[name]; exists {
					return fmt.Errorf("duplicate hull %q in %s", name, file)
				}
				set.Hulls[name] = h
			}
			for name, p := range parsed.Parts {
				if _, exists := set.Parts[name]; exists {
					return fmt.Errorf("duplicate part %q in %s", name, file)
				}
				set.Parts[name] = p
			}
			return nil
		})
	}
	if err := g.Wait(); err != nil {
		return nil, err
	}

	logger.Info("Content loaded.", "hulls", len(set.Hulls), "parts", len(set.Parts))
	return set, nil
}

// loadFile parses a single definition file into its own Set.
func (l *Loader) loadFile(ctx context.Context, path string) (*content.Set, error) {
	logger := ctxlog.FromContext(ctx)

	parser := hclparse.NewParser()
	hclFile, diags := parser.ParseHCLFile(path)
	if diags.HasErrors() {
		return nil, fmt.Errorf("failed to parse content file %s: %w", path, diags)
	}

	var parsed contentFile
	diags = gohcl.DecodeBody(hclFile.Body, nil, &parsed)
	if diags.HasErrors() {
		return nil, fmt.Errorf("failed to decode content file %s: %w", path, diags)
	}

	set := content.NewSet()
	for _, hb := range parsed.Hulls {
		h, err := translateHull(hb)
		if err != nil {
			return nil, fmt.Errorf("%s: %w", path, err)
		}
		if _, exists := set.Hulls[h.Name]; exists {
			return nil, fmt.Errorf("duplicate hull %q in %s", h.Name, path)
		}
		set.Hulls[h.Name] = h
	}
	for _, pb := range parsed.Parts {
		p, err := translatePart(pb)
		if err != nil {
			return nil, fmt.Errorf("%s: %w", path, err)
		}
		if _, exists := set.Parts[p.Name]; exists {
			return nil, fmt.Errorf("duplicate part %q in %s", p.Name, path)
		}
		set.Parts[p.Name] = p
	}

	logger.Debug("Parsed content file.", "file", path, "hulls", len(set.Hulls), "parts", len(set.Parts))
	return set, nil
}
