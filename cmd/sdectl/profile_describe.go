package main

import (
	"os"

	"github.com/spf13/cobra"

	"github.com/sdefoundry/sdectl/internal/sysinfo"
)

var (
	describeBSPPath string
	describeJobs    int
)

// profileDescribeCmd implements "profile describe".
var profileDescribeCmd = &cobra.Command{
	Use:   "describe <file>",
	Short: "Describe existing profile",
	Args:  cobra.ExactArgs(1),
	RunE: func(_ *cobra.Command, args []string) error {
		return runProfileDescribe(args[0])
	},
}

func init() {
	profileCmd.AddCommand(profileDescribeCmd)

	profileDescribeCmd.Flags().StringVar(&describeBSPPath, "bsp-path", "", "BSP to be used and installed")
	profileDescribeCmd.Flags().IntVar(&describeJobs, "jobs", 0, "Allow specific number of jobs to be used")
}

func runProfileDescribe(fileArg string) error {
	jobs := displayJobs(describeJobs, sysinfo.Host{})

	pl, err := createPlan(fileArg, describeBSPPath, jobs, nil)
	if err != nil {
		return err
	}

	pl.DescribeProfile(os.Stdout)
	pl.ShowCommands(os.Stdout)
	return nil
}
