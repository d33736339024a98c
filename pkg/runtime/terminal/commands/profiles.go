package commands

import (
	"fmt"

	"github.com/de-tools/sales-atlas/pkg/services/config"
	"github.com/spf13/cobra"
)

type ProfilesCmd struct {
	profilesPath string
	settings     func() *config.Settings
}

func NewProfilesCmd(settings func() *config.Settings) *cobra.Command {
	pc := &ProfilesCmd{settings: settings}
	cmd := &cobra.Command{
		Use:   "profiles",
		Short: "List configured data source profiles",
		RunE:  pc.run,
	}

	cmd.Flags().StringVar(&pc.profilesPath, "profiles", "", "Path to the profiles file (default is $HOME/.salesatlascfg)")

	return cmd
}

func (pc *ProfilesCmd) run(cmd *cobra.Command, _ []string) error {
	ctx := cmd.Context()

	path := firstNonEmpty(pc.profilesPath, pc.settings().ProfilesPath, config.DefaultProfilesPath())
	registry, err := config.NewProfileRegistry(path)
	if err != nil {
		return err
	}

	profiles, err := registry.GetProfiles(ctx)
	if err != nil {
		return err
	}

	if len(profiles) == 0 {
		fmt.Fprintf(cmd.OutOrStdout(), "No profiles found in %s\n", path)
		return nil
	}

	fmt.Fprintf(cmd.OutOrStdout(), "Profiles in %s:\n", path)
	for _, p := range profiles {
		fmt.Fprintf(cmd.OutOrStdout(), "  %s\n", p)
	}
	return nil
}
