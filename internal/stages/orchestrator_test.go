package stages

import (
	"bytes"
	"context"
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/sdefoundry/sdectl/internal/apperrors"
	"github.com/sdefoundry/sdectl/internal/options"
	"github.com/sdefoundry/sdectl/internal/plan"
	"github.com/sdefoundry/sdectl/internal/profile"
	"github.com/sdefoundry/sdectl/internal/ui"
)

type stageRecorder struct {
	order *[]string
	fail  string
}

func (s stageRecorder) record(name string) error {
	*s.order = append(*s.order, name)
	if s.fail == name {
		return errors.New(name + " blew up")
	}
	return nil
}

func (s stageRecorder) Install(context.Context, plan.InstallArgs) error {
	return s.record("install")
}

func (s stageRecorder) Configure(context.Context, plan.ConfigureArgs) error {
	return s.record("configure")
}

func (s stageRecorder) Build(context.Context, plan.BuildArgs) error {
	return s.record("build")
}

func testPlan(t *testing.T) *plan.Plan {
	t.Helper()
	catalog, err := options.NewCatalog([]options.Option{
		{Name: "switch", Disableable: true},
	})
	require.NoError(t, err)
	prof := profile.New(catalog)
	require.NoError(t, prof.SetOption("switch", true))
	return plan.New(prof, "", 2)
}

func newOrchestrator(rec stageRecorder, buf *bytes.Buffer) *Orchestrator {
	return &Orchestrator{
		Installer:    rec,
		Configurator: rec,
		Builder:      rec,
		Printer:      ui.Printer{W: buf},
	}
}

func TestOrchestrator_RunsStagesInOrder(t *testing.T) {
	var order []string
	var buf bytes.Buffer
	o := newOrchestrator(stageRecorder{order: &order}, &buf)

	err := o.Execute(context.Background(), testPlan(t), false)
	require.NoError(t, err)
	assert.Equal(t, []string{"install", "configure", "build"}, order)
	assert.Contains(t, buf.String(), "Installing dependencies")
	assert.Contains(t, buf.String(), "Configuring build")
	assert.Contains(t, buf.String(), "Building")
}

func TestOrchestrator_SkipDependencies(t *testing.T) {
	var order []string
	var buf bytes.Buffer
	o := newOrchestrator(stageRecorder{order: &order}, &buf)

	err := o.Execute(context.Background(), testPlan(t), true)
	require.NoError(t, err)
	assert.Equal(t, []string{"configure", "build"}, order)
}

func TestOrchestrator_AbortsOnFirstFailure(t *testing.T) {
	var order []string
	var buf bytes.Buffer
	o := newOrchestrator(stageRecorder{order: &order, fail: "configure"}, &buf)

	err := o.Execute(context.Background(), testPlan(t), false)
	require.Error(t, err)

	var stageErr *apperrors.StageError
	require.ErrorAs(t, err, &stageErr)
	assert.Equal(t, "configure", stageErr.Stage)
	// The build stage never ran.
	assert.Equal(t, []string{"install", "configure"}, order)
}

func TestOrchestrator_InstallFailureStopsSequence(t *testing.T) {
	var order []string
	var buf bytes.Buffer
	o := newOrchestrator(stageRecorder{order: &order, fail: "install"}, &buf)

	err := o.Execute(context.Background(), testPlan(t), false)
	require.Error(t, err)

	var stageErr *apperrors.StageError
	require.ErrorAs(t, err, &stageErr)
	assert.Equal(t, "dependencies", stageErr.Stage)
	assert.Equal(t, []string{"install"}, order)
}
