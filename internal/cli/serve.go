package cli

import (
	"os"
	"os/signal"
	"syscall"

	"github.com/spf13/cobra"

	"github.com/VakaruGIT/NSMS/internal/agency"
	"github.com/VakaruGIT/NSMS/internal/httpapi"
	"github.com/VakaruGIT/NSMS/internal/infra/config"
	"github.com/VakaruGIT/NSMS/internal/infra/idgen"
	"github.com/VakaruGIT/NSMS/internal/infra/logger"
	"github.com/VakaruGIT/NSMS/internal/usecase"
)

func serveCmd(g *globalFlags) *cobra.Command {
	return &cobra.Command{
		Use:   "serve",
		Short: "Serve the agency API over HTTP",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			ws, err := loadWorkspace(g)
			if err != nil {
				return err
			}

			cleanup, err := logger.Setup(logger.Config{
				Root:   ws.root,
				Dir:    ws.cfg.Logging.Dir,
				Debug:  ws.cfg.Logging.Debug,
				Format: ws.cfg.Logging.Format,
			})
			if err != nil {
				return err
			}
			if cleanup != nil {
				defer func() { _ = cleanup() }()
			}
			log := logger.L()

			a := agency.New(
				agency.WithIDGenerator(idgen.NewUUID()),
				agency.WithLogger(log),
			)

			seedPath := ws.seedPath()
			switch {
			case seedPath != "" && fileExists(seedPath):
				sum, err := usecase.NewSeedAgency(config.SeedLoader{}, a).Execute(seedPath)
				if err != nil {
					log.Error("seed.failed", "path", seedPath, "err", err)
					return err
				}
				log.Info("seed.applied",
					"path", seedPath,
					"newspapers", sum.Newspapers,
					"issues", sum.Issues,
					"editors", sum.Editors,
					"subscribers", sum.Subscribers,
				)
			case ws.seedExplicit:
				_, err := ws.requireSeed()
				return err
			default:
				log.Info("seed.skipped", "path", seedPath)
			}

			ctx, stop := signal.NotifyContext(commandContext(cmd), os.Interrupt, syscall.SIGTERM)
			defer stop()

			log.Info("serve.start",
				"root", ws.root,
				"config_found", ws.found,
				"addr", ws.cfg.Server.Addr,
				"log_file", logger.Path(),
			)
			return httpapi.NewServer(a, httpapi.WithLogger(log)).Run(ctx, ws.cfg.Server)
		},
	}
}
