package workspacefinder

import (
	"errors"
	"os"
	"path/filepath"

	"github.com/VakaruGIT/NSMS/internal/domain"
	"github.com/VakaruGIT/NSMS/internal/ports"
)

// Finder locates a NSMS workspace root by searching for nsms.yaml upward.
type Finder struct {
	ConfigFile string // defaults to nsms.yaml
}

var _ ports.WorkspaceLocator = (*Finder)(nil)

func NewFinder() *Finder {
	return &Finder{ConfigFile: ConfigFile}
}

func (f *Finder) FindRoot(startDir string) (string, error) {
	if startDir == "" {
		return "", &domain.OpError{
			Op:   "workspacefinder.findroot",
			Kind: domain.KindInvalidConfig,
			Err:  errors.New("startDir is empty"),
		}
	}

	abs, err := filepath.Abs(startDir)
	if err != nil {
		return "", &domain.OpError{
			Op:   "workspacefinder.findroot",
			Kind: domain.KindExecution,
			Err:  err,
		}
	}

	// If user passes a file path, use its directory.
	info, statErr := os.Stat(abs)
	if statErr == nil && !info.IsDir() {
		abs = filepath.Dir(abs)
	}

	cur := filepath.Clean(abs)
	for {
		cfgPath := filepath.Join(cur, f.ConfigFile)
		if _, err := os.Stat(cfgPath); err == nil {
			return cur, nil
		}

		parent := filepath.Dir(cur)
		if parent == cur {
			// Reached filesystem root.
			return "", &domain.OpError{
				Op:   "workspacefinder.findroot",
				Kind: domain.KindNotFound,
				Err:  domain.ErrNotFound,
			}
		}
		cur = parent
	}
}

// Workspace is a located workspace root with its effective configuration.
type Workspace struct {
	Root   string
	Config domain.Config
	// Found reports whether a config file was located; when false Root is
	// the start directory and Config holds the defaults.
	Found bool
}

// Resolve finds the workspace containing startDir and loads its config.
// A missing config file is not an error: the service runs on defaults.
func (f *Finder) Resolve(startDir string) (Workspace, error) {
	root, err := f.FindRoot(startDir)
	if err != nil {
		if !domain.IsKind(err, domain.KindNotFound) {
			return Workspace{}, err
		}
		abs, aerr := filepath.Abs(startDir)
		if aerr != nil {
			abs = startDir
		}
		return Workspace{Root: abs, Config: domain.DefaultConfig()}, nil
	}

	cfg, err := LoadConfig(root)
	if err != nil {
		return Workspace{}, err
	}
	return Workspace{Root: root, Config: cfg, Found: true}, nil
}
