package main

import (
	"fmt"
	"log/slog"
	"os"
	"slices"
	"strings"

	"github.com/google/uuid"
	"github.com/spf13/cobra"

	"github.com/sdefoundry/sdectl/internal/stages"
	"github.com/sdefoundry/sdectl/internal/syscheck"
)

var (
	applyOverrideOptions []string
	applyJobs            int
	applyBSPPath         string
	applySkipDeps        bool
	applySkipSysCheck    bool
)

// profileApplyCmd implements "profile apply".
var profileApplyCmd = &cobra.Command{
	Use:   "apply <file>",
	Short: "Build and install the SDE using existing profile",
	Args:  cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		return runProfileApply(cmd, args[0])
	},
}

func init() {
	profileCmd.AddCommand(profileApplyCmd)

	profileApplyCmd.Flags().StringArrayVar(&applyOverrideOptions, "override-option", nil, "Override any option in a profile (CONFIG or ^CONFIG)")
	profileApplyCmd.Flags().IntVar(&applyJobs, "jobs", 0, "Allow specific number of jobs to be used")
	profileApplyCmd.Flags().StringVar(&applyBSPPath, "bsp-path", "", "BSP to be used and installed")
	profileApplyCmd.Flags().BoolVar(&applySkipDeps, "skip-dependencies", false, "Do not install dependencies")
	profileApplyCmd.Flags().BoolVar(&applySkipSysCheck, "skip-system-check", false, "Do not check system")
}

func runProfileApply(cmd *cobra.Command, fileArg string) error {
	runID := uuid.NewString()
	log := slog.With("run_id", runID)
	log.Info("applying profile", "profile", fileArg)

	jobs, err := resolveJobs(applyJobs)
	if err != nil {
		return err
	}

	pl, err := createPlan(fileArg, applyBSPPath, jobs, applyOverrideOptions)
	if err != nil {
		return err
	}

	if !applySkipSysCheck {
		if err := checkSystem(pl.Profile.ConfigArgs(), pl.Profile.KernelDir, !applySkipDeps); err != nil {
			return err
		}
	}

	ws := currentWorkspace()
	runner := stages.ExecRunner{Stdout: os.Stdout, Stderr: os.Stderr}
	orchestrator := &stages.Orchestrator{
		Installer: &stages.Installer{
			Runner:    runner,
			Workspace: ws,
			Sudo:      os.Geteuid() != 0,
		},
		Configurator: &stages.Configurator{Runner: runner, Workspace: ws},
		Builder:      &stages.Builder{Runner: runner, Workspace: ws},
		Printer:      stdoutPrinter(),
	}

	if err := orchestrator.Execute(cmd.Context(), pl, applySkipDeps); err != nil {
		log.Error("profile apply failed", "error", err)
		return err
	}
	log.Info("profile apply finished")
	return nil
}

// checkSystem validates host prerequisites for the resolved option set.
func checkSystem(configArgs []string, kernelDir string, installDeps bool) error {
	result := syscheck.Check(syscheck.Config{
		ASIC:        slices.Contains(configArgs, "asic"),
		KernelDir:   kernelDir,
		RequireRoot: installDeps,
	}, nil)
	if !result.Passed {
		return fmt.Errorf("system check failed:\n  %s", strings.Join(result.Issues, "\n  "))
	}
	return nil
}
