package main

import (
	"fmt"
	"strings"

	"github.com/charmbracelet/huh"
	"github.com/spf13/cobra"

	"github.com/sdefoundry/sdectl/internal/options"
	"github.com/sdefoundry/sdectl/internal/profile"
)

var (
	createConfigure     string
	createSwitchProfile string
	createP4Examples    string
	createBSPPath       string
	createInteractive   bool
)

// profileCreateCmd implements "profile create".
var profileCreateCmd = &cobra.Command{
	Use:   "create <file>",
	Short: "Create new profile",
	Args:  cobra.ExactArgs(1),
	RunE: func(_ *cobra.Command, args []string) error {
		return runProfileCreate(args[0])
	},
}

func init() {
	profileCmd.AddCommand(profileCreateCmd)

	profileCreateCmd.Flags().StringVar(&createConfigure, "configure", "", "Configure profile with comma separated list of options")
	profileCreateCmd.Flags().StringVar(&createSwitchProfile, "switch-profile", "", "Switch profile")
	profileCreateCmd.Flags().StringVar(&createP4Examples, "p4-examples", "tna_exact_match", "Comma separated list of P4 programs")
	profileCreateCmd.Flags().StringVar(&createBSPPath, "bsp-path", "", "BSP to be used and installed")
	profileCreateCmd.Flags().BoolVarP(&createInteractive, "interactive", "i", false, "Pick options interactively")
}

func runProfileCreate(file string) error {
	catalog := options.DefaultCatalog()
	prof := profile.New(catalog)

	if createBSPPath != "" {
		prof.BSPPath = createBSPPath
	}

	selections, err := createSelections(catalog)
	if err != nil {
		return err
	}
	if err := applySelections(prof, selections); err != nil {
		return err
	}

	if createSwitchProfile != "" {
		prof.SwitchProfile = createSwitchProfile
	}
	if createP4Examples != "" {
		for _, program := range strings.Split(createP4Examples, ",") {
			prof.AddP4Program(program)
		}
	}

	return profile.Save(prof, file)
}

// createSelections decides the option set for a new profile: the explicit
// --configure list, an interactive pick, or the catalog defaults.
func createSelections(catalog *options.Catalog) ([]options.Selection, error) {
	if createConfigure != "" {
		return catalog.ParseSelections(createConfigure)
	}
	if createInteractive {
		return pickSelections(catalog)
	}
	return defaultSelections(catalog), nil
}

// pickSelections offers a multi-select over the whole catalog, with the
// default profile preselected.
func pickSelections(catalog *options.Catalog) ([]options.Selection, error) {
	var picked []string
	opts := make([]huh.Option[string], 0, len(catalog.Options()))
	for _, sel := range defaultSelections(catalog) {
		label := sel.Option.Name
		if sel.Option.Parent != "" {
			label = fmt.Sprintf("%s (requires %s)", sel.Option.Name, sel.Option.Parent)
		}
		opts = append(opts, huh.NewOption(label, sel.Option.Name).Selected(sel.Enabled))
	}

	err := huh.NewMultiSelect[string]().
		Title("Select SDE build options").
		Options(opts...).
		Value(&picked).
		Run()
	if err != nil {
		return nil, err
	}

	pickedSet := map[string]bool{}
	for _, name := range picked {
		pickedSet[name] = true
	}
	selections := make([]options.Selection, 0, len(catalog.Options()))
	for _, opt := range catalog.Options() {
		selections = append(selections, options.Selection{Option: opt, Enabled: pickedSet[opt.Name]})
	}
	return selections, nil
}
