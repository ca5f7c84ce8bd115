package runner

import (
	"context"
	"errors"
	"fmt"
	"os"
	"path/filepath"

	"gopkg.in/yaml.v3"

	"github.com/yaklabco/luaoutline/pkg/fsutil"
	"github.com/yaklabco/luaoutline/pkg/symbols"
)

// ErrInvalidManifest is returned for manifests that cannot be turned into requests.
var ErrInvalidManifest = errors.New("invalid manifest")

// Manifest lists the files of a batch run.
type Manifest struct {
	Files []ManifestFile `yaml:"files"`
}

// ManifestFile is one manifest entry. Symbols may be listed inline, loaded
// from SymbolsFile, or both.
type ManifestFile struct {
	Path        string          `yaml:"path"`
	SymbolsFile string          `yaml:"symbols_file,omitempty"`
	Symbols     []symbols.Entry `yaml:"symbols,omitempty"`
}

// LoadManifest reads a manifest file. Relative paths inside it resolve
// against the manifest's directory.
func LoadManifest(ctx context.Context, path string) ([]Request, error) {
	if err := ctx.Err(); err != nil {
		return nil, err
	}

	data, err := fsutil.ReadFile(ctx, path)
	if err != nil {
		return nil, fmt.Errorf("read manifest: %w", err)
	}

	baseDir, err := resolveWorkDir(filepath.Dir(path))
	if err != nil {
		return nil, err
	}

	requests, err := ParseManifest(data, baseDir)
	if err != nil {
		return nil, fmt.Errorf("%s: %w", path, err)
	}

	return requests, nil
}

// ParseManifest converts manifest YAML into requests, resolving relative paths
// against baseDir.
func ParseManifest(data []byte, baseDir string) ([]Request, error) {
	var manifest Manifest
	if err := yaml.Unmarshal(data, &manifest); err != nil {
		return nil, fmt.Errorf("%w: %w", ErrInvalidManifest, err)
	}

	requests := make([]Request, 0, len(manifest.Files))
	for idx, file := range manifest.Files {
		if file.Path == "" {
			return nil, fmt.Errorf("%w: files[%d]: missing path", ErrInvalidManifest, idx)
		}
		if file.SymbolsFile == "" && len(file.Symbols) == 0 {
			return nil, fmt.Errorf("%w: files[%d]: no symbols or symbols_file for %s", ErrInvalidManifest, idx, file.Path)
		}

		syms, err := symbols.EntriesToSymbols(file.Symbols)
		if err != nil {
			return nil, fmt.Errorf("files[%d]: %w", idx, err)
		}

		req := Request{
			Path:    resolvePath(baseDir, file.Path),
			Symbols: syms,
		}
		if file.SymbolsFile != "" {
			req.SymbolsFile = resolvePath(baseDir, file.SymbolsFile)
		}
		requests = append(requests, req)
	}

	return requests, nil
}

// resolveWorkDir resolves a directory to an absolute path, defaulting to os.Getwd().
func resolveWorkDir(workDir string) (string, error) {
	if workDir == "" {
		wd, err := os.Getwd()
		if err != nil {
			return "", fmt.Errorf("get working directory: %w", err)
		}
		return wd, nil
	}
	absPath, err := filepath.Abs(workDir)
	if err != nil {
		return "", fmt.Errorf("resolve absolute path: %w", err)
	}
	return absPath, nil
}

func resolvePath(baseDir, path string) string {
	if filepath.IsAbs(path) {
		return filepath.Clean(path)
	}
	return filepath.Join(baseDir, path)
}
