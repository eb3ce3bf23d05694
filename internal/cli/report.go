package cli

import (
	"encoding/json"
	"fmt"
	"io"
	"strings"
	"time"

	"github.com/dustin/go-humanize"
	"github.com/spf13/cobra"

	"github.com/VakaruGIT/NSMS/internal/agency"
	"github.com/VakaruGIT/NSMS/internal/domain"
	"github.com/VakaruGIT/NSMS/internal/infra/config"
	"github.com/VakaruGIT/NSMS/internal/infra/reportstore"
	"github.com/VakaruGIT/NSMS/internal/usecase"
)

func reportCmd(g *globalFlags) *cobra.Command {
	var format string
	var noSave bool
	var redact bool

	c := &cobra.Command{
		Use:   "report",
		Short: "Load the seed file and export an agency report",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			if format != "pretty" && format != "json" && format != "" {
				return fmt.Errorf("unsupported format %q (expected pretty|json)", format)
			}

			ws, err := loadWorkspace(g)
			if err != nil {
				return err
			}
			path, err := ws.requireSeed()
			if err != nil {
				return err
			}

			a := agency.New()
			if _, err := usecase.NewSeedAgency(config.SeedLoader{}, a).Execute(path); err != nil {
				return err
			}

			store := reportstore.NewJSONStore(ws.root, ws.cfg,
				reportstore.WithIndex(true),
				reportstore.WithRedaction(redact),
			)
			report, err := usecase.NewExportReport(a, store).Execute(!noSave)
			if err != nil {
				// the report itself was built; show it before failing
				_ = printReport(cmd.OutOrStdout(), report, format)
				return err
			}
			return printReport(cmd.OutOrStdout(), report, format)
		},
	}

	c.Flags().StringVar(&format, "format", "pretty", "Output format: pretty|json")
	c.Flags().BoolVar(&noSave, "no-save", false, "Do not save the report under the reports directory")
	c.Flags().BoolVar(&redact, "redact", false, "Mask subscriber names in the saved report")
	return c
}

func printReport(w io.Writer, report domain.AgencyReport, format string) error {
	switch format {
	case "json":
		enc := json.NewEncoder(w)
		enc.SetIndent("", "  ")
		return enc.Encode(report)
	case "pretty", "":
		printPrettyReport(w, report, defaultTheme())
		return nil
	default:
		return fmt.Errorf("unsupported format %q (expected pretty|json)", format)
	}
}

func printPrettyReport(w io.Writer, report domain.AgencyReport, th theme) {
	fmt.Fprintln(w, th.Title.Render("Agency report"))
	fmt.Fprintln(w, th.Label.Render("Generated:")+report.GeneratedAt.UTC().Format(time.RFC3339))
	if report.ID != "" {
		fmt.Fprintln(w, th.Label.Render("Report ID:")+report.ID)
	}
	fmt.Fprintln(w, th.Label.Render("Editors:")+humanize.Comma(int64(report.Editors)))
	fmt.Fprintln(w, th.Label.Render("Issues:")+humanize.Comma(int64(report.Issues)))
	fmt.Fprintln(w, th.Label.Render("Monthly revenue:")+money(report.TotalMonthlyRevenue))
	fmt.Fprintln(w, th.Label.Render("Annual revenue:")+money(report.TotalAnnualRevenue))
	fmt.Fprintln(w)

	fmt.Fprintln(w, th.Title.Render(fmt.Sprintf("Newspapers (%d)", len(report.Newspapers))))
	if len(report.Newspapers) == 0 {
		fmt.Fprintln(w, th.Muted.Render("(none)"))
	}
	for _, p := range report.Newspapers {
		var b strings.Builder
		fmt.Fprintf(&b, "%s  #%d\n", p.Name, p.PaperID)
		fmt.Fprintf(&b, "issues: %s (%s released)\n", humanize.Comma(int64(p.Issues)), humanize.Comma(int64(p.Released)))
		fmt.Fprintf(&b, "subscribers: %s\n", humanize.Comma(int64(p.Subscribers)))
		fmt.Fprintf(&b, "revenue: %s / month, %s / year", money(p.MonthlyRevenue), money(p.AnnualRevenue))
		fmt.Fprintln(w, th.Section.Render(b.String()))
	}
	fmt.Fprintln(w)

	fmt.Fprintln(w, th.Title.Render(fmt.Sprintf("Subscribers (%d)", len(report.Subscribers))))
	if len(report.Subscribers) == 0 {
		fmt.Fprintln(w, th.Muted.Render("(none)"))
	}
	for _, s := range report.Subscribers {
		missing := th.OK.Render("none missing")
		if s.Missing > 0 {
			missing = th.Fail.Render(humanize.Comma(int64(s.Missing)) + " missing")
		}
		var b strings.Builder
		fmt.Fprintf(&b, "%s  #%d\n", s.Name, s.SubscriberID)
		fmt.Fprintf(&b, "subscriptions: %s, cost %s / month\n", humanize.Comma(int64(s.Subscriptions)), money(s.MonthlyCost))
		fmt.Fprintf(&b, "delivered: %s, %s", humanize.Comma(int64(s.Delivered)), missing)
		fmt.Fprintln(w, th.Section.Render(b.String()))
	}
}

func money(v float64) string {
	return humanize.FormatFloat("#,###.##", v)
}
