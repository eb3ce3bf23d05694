package cli

import (
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"github.com/VakaruGIT/NSMS/internal/domain"
	"github.com/VakaruGIT/NSMS/internal/infra/workspacefinder"
)

type workspaceCtx struct {
	root  string
	cfg   domain.Config
	found bool

	// seedExplicit is set when --seed was given; a missing file is then an error.
	seedExplicit bool
}

// loadWorkspace resolves the workspace and applies flag overrides on top of
// the file configuration.
func loadWorkspace(g *globalFlags) (*workspaceCtx, error) {
	start, err := resolveWorkspaceRoot(g.configDir)
	if err != nil {
		return nil, err
	}

	ws, err := workspacefinder.NewFinder().Resolve(start)
	if err != nil {
		return nil, err
	}

	ctx := &workspaceCtx{root: ws.Root, cfg: ws.Config, found: ws.Found}
	if a := strings.TrimSpace(g.addr); a != "" {
		ctx.cfg.Server.Addr = a
	}
	if s := strings.TrimSpace(g.seed); s != "" {
		ctx.cfg.Seed.File = s
		ctx.seedExplicit = true
	}
	if g.debug {
		ctx.cfg.Logging.Debug = true
	}
	return ctx, nil
}

// seedPath is the seed file resolved against the workspace root.
func (ws *workspaceCtx) seedPath() string {
	p := strings.TrimSpace(ws.cfg.Seed.File)
	if p == "" {
		return ""
	}
	if !filepath.IsAbs(p) {
		p = filepath.Join(ws.root, p)
	}
	return filepath.Clean(p)
}

// requireSeed returns the seed path, failing when it does not exist.
func (ws *workspaceCtx) requireSeed() (string, error) {
	p := ws.seedPath()
	if p == "" {
		return "", fmt.Errorf("no seed file configured (use --seed)")
	}
	if !fileExists(p) {
		return "", fmt.Errorf("seed file %q not found", p)
	}
	return p, nil
}

func resolveWorkspaceRoot(dirFlag string) (string, error) {
	d := strings.TrimSpace(dirFlag)
	if d != "" {
		abs, err := filepath.Abs(d)
		if err != nil {
			return "", fmt.Errorf("invalid config dir: %w", err)
		}
		return abs, nil
	}

	wd, err := os.Getwd()
	if err != nil {
		return "", fmt.Errorf("get working directory: %w", err)
	}
	return wd, nil
}

func fileExists(path string) bool {
	st, err := os.Stat(path)
	return err == nil && !st.IsDir()
}
