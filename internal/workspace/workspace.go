// Package workspace carries the directory layout of an SDE tree. It is
// constructed once at process start and passed explicitly; there is no
// process-wide current workspace.
package workspace

import (
	"path/filepath"

	"github.com/spf13/viper"
)

// Workspace locates the SDE tree and its derived directories.
type Workspace struct {
	Root          string
	ProfilesDir   string
	BuildDir      string
	DownloadsDir  string
	InstallPrefix string
}

// New derives the standard layout from an SDE root directory.
func New(root string) *Workspace {
	return &Workspace{
		Root:          root,
		ProfilesDir:   filepath.Join(root, "profiles"),
		BuildDir:      filepath.Join(root, "build"),
		DownloadsDir:  filepath.Join(root, "downloads"),
		InstallPrefix: filepath.Join(root, "install"),
	}
}

// FromViper builds a workspace from configuration, falling back to the
// standard layout under the configured (or given default) root.
func FromViper(v *viper.Viper, defaultRoot string) *Workspace {
	root := v.GetString("sde-root")
	if root == "" {
		root = defaultRoot
	}
	ws := New(root)
	if dir := v.GetString("profiles-dir"); dir != "" {
		ws.ProfilesDir = dir
	}
	if prefix := v.GetString("install-prefix"); prefix != "" {
		ws.InstallPrefix = prefix
	}
	return ws
}
