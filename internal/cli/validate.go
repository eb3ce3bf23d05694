package cli

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/VakaruGIT/NSMS/internal/agency"
	"github.com/VakaruGIT/NSMS/internal/infra/config"
	"github.com/VakaruGIT/NSMS/internal/ports"
	"github.com/VakaruGIT/NSMS/internal/usecase"
)

func validateCmd(g *globalFlags) *cobra.Command {
	return &cobra.Command{
		Use:   "validate",
		Short: "Validate the seed file without starting the server",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			ws, err := loadWorkspace(g)
			if err != nil {
				return err
			}
			path, err := ws.requireSeed()
			if err != nil {
				return err
			}

			uc := usecase.NewValidateSeed(config.SeedLoader{}, func() ports.AgencyWriter { return agency.New() })
			sum, err := uc.Execute(path)
			if err != nil {
				return err
			}

			fmt.Fprintf(cmd.OutOrStdout(), "OK: %d newspaper(s), %d issue(s), %d editor(s), %d subscriber(s)\n",
				sum.Newspapers, sum.Issues, sum.Editors, sum.Subscribers)
			return nil
		},
	}
}
