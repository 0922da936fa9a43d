package npmpath

import (
	"path/filepath"

	"github.com/arthur-debert/npmpath/pkg/errors"
)

// manifestFile marks a directory as an installed package
const manifestFile = "package.json"

// resolveRoot finds the npm installation whose bundled tools are added to
// the search path. Explicit roots are trusted; detected roots must contain a
// package manifest.
func (c *Composer) resolveRoot(cwd, override string) (string, error) {
	for _, explicit := range []struct{ value, origin string }{
		{override, "option"},
		{c.cfg.Root.Path, "config"},
	} {
		if explicit.value == "" {
			continue
		}
		root := explicit.value
		if !filepath.IsAbs(root) {
			root = filepath.Join(cwd, root)
		}
		root = filepath.Clean(root)
		c.logger.Debug().Str("root", root).Str("origin", explicit.origin).Msg("using npm root")
		return root, nil
	}

	if name := c.cfg.Root.ExecPathEnv; name != "" {
		if execPath := c.env.Getenv(name); execPath != "" {
			if root, ok := c.rootFromExecPath(execPath); ok {
				c.logger.Debug().Str("root", root).Str("origin", name).Msg("using npm root")
				return root, nil
			}
			c.logger.Debug().Str("env", name).Str("value", execPath).Msg("exec path hint did not lead to a package")
		}
	}

	tool := c.cfg.Root.Tool
	toolPath, err := LookPath(c.fs, tool, c.env.Getenv(PathKey(c.env)), c.env.Getenv("PATHEXT"))
	if err != nil {
		return "", errors.Wrapf(err, errors.ErrRootNotFound, "%s not found on the search path", tool)
	}
	if root, ok := c.rootFromTool(toolPath); ok {
		c.logger.Debug().Str("root", root).Str("tool", toolPath).Msg("using npm root")
		return root, nil
	}
	return "", errors.Newf(errors.ErrRootNotFound, "no package directory found for %s", toolPath).
		WithDetail("tool", toolPath)
}

// rootFromExecPath handles the script path npm exports to lifecycle
// scripts, <root>/bin/npm-cli.js
func (c *Composer) rootFromExecPath(execPath string) (string, bool) {
	resolved, err := c.fs.EvalSymlinks(execPath)
	if err != nil {
		return "", false
	}
	return c.firstPackage(filepath.Dir(filepath.Dir(resolved)))
}

// rootFromTool handles both a launcher linked into <root>/bin and a shim
// placed next to node_modules/<tool>, as the Windows installer does
func (c *Composer) rootFromTool(toolPath string) (string, bool) {
	resolved, err := c.fs.EvalSymlinks(toolPath)
	if err != nil {
		resolved = toolPath
	}
	dir := filepath.Dir(resolved)
	return c.firstPackage(
		filepath.Dir(dir),
		filepath.Join(dir, c.cfg.Layout.MarkerDir, c.cfg.Root.Tool),
	)
}

func (c *Composer) firstPackage(candidates ...string) (string, bool) {
	for _, dir := range candidates {
		if info, err := c.fs.Stat(filepath.Join(dir, manifestFile)); err == nil && !info.IsDir() {
			return dir, true
		}
	}
	return "", false
}
