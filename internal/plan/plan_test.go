package plan

import (
	"bytes"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/sdefoundry/sdectl/internal/options"
	"github.com/sdefoundry/sdectl/internal/profile"
)

func testProfile(t *testing.T) *profile.Profile {
	t.Helper()
	catalog, err := options.NewCatalog([]options.Option{
		{Name: "switch", Disableable: true},
		{Name: "bf-diags", Disableable: true},
		{Name: "asic", Disableable: true},
	})
	require.NoError(t, err)
	return profile.New(catalog)
}

func TestNew_BSPOverrideWins(t *testing.T) {
	prof := testProfile(t)
	prof.BSPPath = "/from/profile"

	assert.Equal(t, "/override", New(prof, "/override", 2).BSPPath)
	assert.Equal(t, "/from/profile", New(prof, "", 2).BSPPath)
}

func TestConfigureArgs_EnabledOptionsOnly(t *testing.T) {
	prof := testProfile(t)
	require.NoError(t, prof.SetOption("switch", true))
	require.NoError(t, prof.SetOption("bf-diags", true))
	prof.SwitchProfile = "x1_tofino"
	prof.AddP4Program("tna_exact_match")

	args := New(prof, "", 4).ConfigureArgs()

	assert.Equal(t, []string{"switch", "bf-diags"}, args.Options)
	assert.NotContains(t, args.Options, "asic")
	assert.Equal(t, "x1_tofino", args.SwitchProfile)
	assert.Equal(t, []string{"tna_exact_match"}, args.P4Examples)
}

func TestDependenciesInstallArgs(t *testing.T) {
	prof := testProfile(t)

	args := New(prof, "/opt/bsp", 4).DependenciesInstallArgs()
	assert.Equal(t, 4, args.Jobs)
	assert.Equal(t, "/opt/bsp", args.BSPPath)
}

func TestBuildArgs_TargetsAndDedup(t *testing.T) {
	prof := testProfile(t)
	require.NoError(t, prof.SetOption("switch", true))
	prof.AddP4Program("tna_exact_match")
	prof.AddP4Program("tna_counter")
	prof.AddP4Program("tna_exact_match")

	args := New(prof, "", 3).BuildArgs()
	assert.Equal(t, 3, args.Jobs)
	assert.Equal(t, []string{"switch", "tna_exact_match", "tna_counter"}, args.Targets)
}

func TestDescribeProfile(t *testing.T) {
	prof := testProfile(t)
	require.NoError(t, prof.SetOption("switch", true))
	require.NoError(t, prof.SetOption("asic", false))
	prof.SwitchProfile = "x1_tofino"

	var buf bytes.Buffer
	New(prof, "/opt/bsp", 2).DescribeProfile(&buf)

	out := buf.String()
	assert.Contains(t, out, "switch")
	assert.Contains(t, out, "asic")
	assert.Contains(t, out, "Switch profile: x1_tofino")
	assert.Contains(t, out, "BSP path: /opt/bsp")
	assert.Contains(t, out, "Jobs: 2")
}

func TestShowCommands(t *testing.T) {
	prof := testProfile(t)
	require.NoError(t, prof.SetOption("switch", true))
	require.NoError(t, prof.SetOption("asic", false))
	prof.AddP4Program("tna_exact_match")

	var buf bytes.Buffer
	New(prof, "", 2).ShowCommands(&buf)

	out := buf.String()
	assert.Contains(t, out, "sdectl dependencies install --jobs=2")
	assert.Contains(t, out, "sdectl configure switch ^asic")
	assert.Contains(t, out, "sdectl build --jobs=2 switch tna_exact_match")
}
