package app

import (
	"context"
	"fmt"
	"io"
	"log/slog"
	"os"
	"path/filepath"
	"strings"

	"github.com/vk/bagwalk/internal/config"
	"github.com/vk/bagwalk/internal/ctxlog"
	"github.com/vk/bagwalk/internal/fsutil"
	"github.com/vk/bagwalk/internal/hcl"
	"github.com/vk/bagwalk/internal/yamlconfig"
)

// format ties a set of file extensions to the loader that reads them.
type format struct {
	name       string
	extensions []string
	loader     config.Loader
}

var defaultFormats = []format{
	{name: "hcl", extensions: []string{hcl.Extension}, loader: hcl.NewLoader()},
	{name: "yaml", extensions: yamlconfig.Extensions, loader: yamlconfig.NewLoader()},
}

// App encapsulates the application's dependencies, configuration, and lifecycle.
type App struct {
	outW   io.Writer
	logger *slog.Logger
	model  *config.Model
}

// NewApp is the constructor for the main application. Results are written to
// outW and logs to logW. Configuration files are loaded eagerly, so any
// configuration problem surfaces here rather than during Run.
func NewApp(outW, logW io.Writer, cfg *Config) (*App, error) {
	logger := newLogger(cfg.LogLevel, cfg.LogFormat, logW)
	ctx := ctxlog.WithLogger(context.Background(), logger)
	logger.Debug("Logger configured successfully.")

	model, err := loadModel(ctx, cfg, defaultFormats)
	if err != nil {
		return nil, fmt.Errorf("failed to load configuration: %w", err)
	}
	logger.Debug("Configuration loaded.", "puzzles", len(model.Puzzles))

	return &App{
		outW:   outW,
		logger: logger,
		model:  model,
	}, nil
}

// Puzzles returns the puzzles the app will solve. This is primarily for testing.
func (a *App) Puzzles() []*config.Puzzle {
	return a.model.Puzzles
}

// loadModel builds the run model either from the single input path given on
// the command line or from the configured files.
func loadModel(ctx context.Context, cfg *Config, formats []format) (*config.Model, error) {
	if cfg.InputPath != "" {
		model := &config.Model{Puzzles: []*config.Puzzle{{
			Name:        filepath.Base(cfg.InputPath),
			Input:       cfg.InputPath,
			Target:      cfg.Target,
			Workers:     cfg.Workers,
			CheckCycles: cfg.CheckCycles,
		}}}
		return model, model.Validate()
	}

	byFormat, err := partitionFiles(cfg.ConfigPaths, formats)
	if err != nil {
		return nil, err
	}

	model := &config.Model{}
	for i, f := range formats {
		files := byFormat[i]
		if len(files) == 0 {
			continue
		}
		ctxlog.FromContext(ctx).Debug("Loading configuration files.", "format", f.name, "count", len(files))
		m, err := f.loader.Load(ctx, files...)
		if err != nil {
			return nil, err
		}
		model.Puzzles = append(model.Puzzles, m.Puzzles...)
	}
	return model, model.Validate()
}

// partitionFiles expands the configured paths and groups the resulting files
// by format, indexed like formats. A file given explicitly must have a known
// extension.
func partitionFiles(paths []string, formats []format) ([][]string, error) {
	var all []string
	for _, f := range formats {
		all = append(all, f.extensions...)
	}

	for _, p := range paths {
		info, err := os.Stat(p)
		if err != nil {
			return nil, fmt.Errorf("error accessing path %s: %w", p, err)
		}
		if !info.IsDir() && formatIndex(p, formats) < 0 {
			return nil, fmt.Errorf("unsupported config file %s: expected one of %s", p, strings.Join(all, ", "))
		}
	}

	files, err := fsutil.CollectFiles(paths, all...)
	if err != nil {
		return nil, err
	}

	out := make([][]string, len(formats))
	for _, file := range files {
		i := formatIndex(file, formats)
		out[i] = append(out[i], file)
	}
	return out, nil
}

func formatIndex(path string, formats []format) int {
	for i, f := range formats {
		for _, ext := range f.extensions {
			if strings.HasSuffix(path, ext) {
				return i
			}
		}
	}
	return -1
}
