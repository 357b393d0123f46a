package main

import (
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/sdefoundry/sdectl/internal/options"
	"github.com/sdefoundry/sdectl/internal/profile"
)

func resetCreateFlags() {
	createConfigure = ""
	createSwitchProfile = ""
	createP4Examples = "tna_exact_match"
	createBSPPath = ""
	createInteractive = false
}

func TestRunProfileCreate_Defaults(t *testing.T) {
	resetCreateFlags()
	t.Cleanup(resetCreateFlags)

	path := filepath.Join(t.TempDir(), "default.yaml")
	require.NoError(t, runProfileCreate(path))

	prof, err := profile.Load(path, options.DefaultCatalog())
	require.NoError(t, err)

	// Catalog defaults with the two main components forced on.
	assert.True(t, prof.IsEnabled("switch"))
	assert.True(t, prof.IsEnabled("bf-diags"))
	assert.True(t, prof.IsEnabled("bf-drivers"))
	assert.False(t, prof.IsEnabled("asic"))
	assert.Equal(t, []string{"tna_exact_match"}, prof.P4Examples)
}

func TestRunProfileCreate_ConfigureList(t *testing.T) {
	resetCreateFlags()
	t.Cleanup(resetCreateFlags)

	createConfigure = "switch,^bf-diags,asic"
	createSwitchProfile = "x1_tofino"
	createP4Examples = "tna_exact_match,tna_counter"
	path := filepath.Join(t.TempDir(), "custom.yaml")
	require.NoError(t, runProfileCreate(path))

	prof, err := profile.Load(path, options.DefaultCatalog())
	require.NoError(t, err)

	assert.Equal(t, []string{"switch", "asic"}, prof.ConfigArgs())
	assert.Equal(t, "x1_tofino", prof.SwitchProfile)
	assert.Equal(t, []string{"tna_exact_match", "tna_counter"}, prof.P4Examples)
}

func TestRunProfileCreate_InvalidOption(t *testing.T) {
	resetCreateFlags()
	t.Cleanup(resetCreateFlags)

	createConfigure = "nosuch"
	err := runProfileCreate(filepath.Join(t.TempDir(), "bad.yaml"))
	require.Error(t, err)
	assert.Contains(t, err.Error(), "nosuch")
}

func TestDefaultSelections_ForcesMainComponents(t *testing.T) {
	catalog := options.DefaultCatalog()

	for _, sel := range defaultSelections(catalog) {
		switch sel.Option.Name {
		case "switch", "bf-diags":
			assert.True(t, sel.Enabled, sel.Option.Name)
		case "asic":
			assert.False(t, sel.Enabled)
		}
	}
}

func TestApplyOverrides(t *testing.T) {
	catalog := options.DefaultCatalog()
	prof := profile.New(catalog)

	// Enabling a child pulls in its parent chain.
	require.NoError(t, applyOverrides(prof, []string{"p4rt"}))
	assert.True(t, prof.IsEnabled("p4rt"))
	assert.True(t, prof.IsEnabled("grpc"))

	// Disabling a parent with an enabled dependent is rejected.
	err := applyOverrides(prof, []string{"^grpc"})
	require.Error(t, err)
	assert.True(t, prof.IsEnabled("grpc"))
}

func TestApplyOverrides_ParenthoodOrder(t *testing.T) {
	catalog := options.DefaultCatalog()
	prof := profile.New(catalog)

	// Child listed before parent; ordering promotes the parent first.
	require.NoError(t, applyOverrides(prof, []string{"sai", "switch"}))
	settings := prof.Settings()
	require.NotEmpty(t, settings)
	assert.Equal(t, "switch", settings[0].Name)
}
