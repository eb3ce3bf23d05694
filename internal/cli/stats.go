package cli

import (
	"fmt"
	"io"
	"strings"

	"github.com/spf13/cobra"

	"github.com/VakaruGIT/NSMS/internal/domain"
	"github.com/VakaruGIT/NSMS/internal/infra/httpclient"
	"github.com/VakaruGIT/NSMS/internal/ports"
	"github.com/VakaruGIT/NSMS/internal/usecase"
	ucextract "github.com/VakaruGIT/NSMS/internal/usecase/extract"
)

func statsCmd(g *globalFlags) *cobra.Command {
	var server string
	var fieldArgs []string
	var raw bool

	c := &cobra.Command{
		Use:       "stats newspaper|subscriber <id>",
		Short:     "Fetch statistics from a running server",
		Args:      cobra.ExactArgs(2),
		ValidArgs: []string{string(ports.NewspaperStats), string(ports.SubscriberStats)},
		RunE: func(cmd *cobra.Command, args []string) error {
			kind, err := parseStatsKind(args[0])
			if err != nil {
				return err
			}
			id, err := domain.ParseID(args[1])
			if err != nil {
				return fmt.Errorf("invalid id %q: must be a positive integer", args[1])
			}
			fields, err := parseFields(fieldArgs)
			if err != nil {
				return err
			}

			ws, err := loadWorkspace(g)
			if err != nil {
				return err
			}
			base := strings.TrimSpace(server)
			if base == "" {
				base = serverURL(ws.cfg.Server.Addr)
			}

			hc := httpclient.ConfigFor(ws.cfg.Server)
			exec := httpclient.NewExecutor(
				httpclient.WithClient(httpclient.New(hc)),
				httpclient.WithTimeout(hc.Timeout),
			)
			client := httpclient.NewAPIClient(base, exec)
			out, err := usecase.NewFetchStats(client).Execute(commandContext(cmd), kind, id, fields)
			if err != nil {
				return err
			}

			if raw {
				_, err := cmd.OutOrStdout().Write(out.Raw)
				return err
			}
			return printStats(cmd.OutOrStdout(), out, defaultTheme())
		},
	}

	c.Flags().StringVar(&server, "server", "", "Server base URL (default: derived from server.addr or --addr)")
	c.Flags().StringArrayVar(&fieldArgs, "field", nil, "Field to show instead of the defaults, as name=$.jsonpath (repeatable)")
	c.Flags().BoolVar(&raw, "raw", false, "Print the raw JSON response")
	return c
}

func parseStatsKind(s string) (ports.StatsKind, error) {
	switch k := ports.StatsKind(strings.ToLower(strings.TrimSpace(s))); k {
	case ports.NewspaperStats, ports.SubscriberStats:
		return k, nil
	default:
		return "", fmt.Errorf("unknown stats target %q (expected newspaper|subscriber)", s)
	}
}

func parseFields(in []string) ([]ucextract.Field, error) {
	out := make([]ucextract.Field, 0, len(in))
	for _, s := range in {
		f, err := ucextract.ParseField(s)
		if err != nil {
			return nil, err
		}
		out = append(out, f)
	}
	return out, nil
}

// serverURL turns a listen address such as ":8080" into a client base URL.
func serverURL(addr string) string {
	addr = strings.TrimSpace(addr)
	switch {
	case addr == "":
		return "http://localhost:8080"
	case strings.HasPrefix(addr, "http://"), strings.HasPrefix(addr, "https://"):
		return addr
	case strings.HasPrefix(addr, ":"):
		return "http://localhost" + addr
	default:
		return "http://" + addr
	}
}

func printStats(w io.Writer, out usecase.StatsOutput, th theme) error {
	fmt.Fprintln(w, th.Title.Render(fmt.Sprintf("%s %d", out.Kind, out.ID)))

	failed := 0
	for _, f := range out.Fields {
		if !f.Success {
			failed++
			fmt.Fprintln(w, th.Label.Render(f.Name+":")+th.Fail.Render(f.Message))
			continue
		}
		fmt.Fprintln(w, th.Label.Render(f.Name+":")+f.Value)
	}
	if failed > 0 {
		return fmt.Errorf("%d field(s) could not be extracted", failed)
	}
	return nil
}
