// Command report prints the referral program rollups for the seed snapshot.
package main

import (
	"context"
	"flag"
	"fmt"
	"io"
	"os"
	"text/tabwriter"
	"time"

	"github.com/shopspring/decimal"
	"golang.org/x/text/language"
	"golang.org/x/text/message"
	"golang.org/x/text/number"

	"github.com/olimpo/referrals/internal/config"
	"github.com/olimpo/referrals/internal/domain"
	"github.com/olimpo/referrals/internal/repository"
	"github.com/olimpo/referrals/internal/seed"
	"github.com/olimpo/referrals/internal/service"
)

func main() {
	cfg, err := config.Load()
	if err != nil {
		fmt.Fprintf(os.Stderr, "report: %v\n", err)
		os.Exit(1)
	}
	if err := run(os.Args[1:], cfg, os.Stdout); err != nil {
		fmt.Fprintf(os.Stderr, "report: %v\n", err)
		os.Exit(2)
	}
}

type options struct {
	clientType string
	program    string
	from       string
	to         string
	lang       string
}

func run(args []string, cfg *config.Config, out io.Writer) error {
	var opts options
	fs := flag.NewFlagSet("report", flag.ContinueOnError)
	fs.SetOutput(out)
	fs.StringVar(&opts.clientType, "client-type", "all", "client type filter (vip, standard, all)")
	fs.StringVar(&opts.program, "program", "all", "program filter (empresa_eb1, empresa_eb2, all)")
	fs.StringVar(&opts.from, "from", "", "first day to include, YYYY-MM-DD")
	fs.StringVar(&opts.to, "to", "", "last day to include, YYYY-MM-DD")
	fs.StringVar(&opts.lang, "lang", "es-MX", "BCP 47 tag used for number formatting")
	if err := fs.Parse(args); err != nil {
		return err
	}

	filter, err := opts.filter()
	if err != nil {
		return err
	}
	tag, err := language.Parse(opts.lang)
	if err != nil {
		return fmt.Errorf("invalid -lang %q: %w", opts.lang, err)
	}
	p := message.NewPrinter(tag)

	store, err := repository.NewStore(seed.Dataset(), service.NewCommissionPolicy(cfg.Commission.BoundaryMonth))
	if err != nil {
		return err
	}
	stats := service.NewStatsService(service.StatsDependencies{
		Source:  store,
		Windows: service.CalendarWindows(cfg.Metrics.FirstMonth, cfg.Metrics.WindowCount),
	})

	writeGlobal(p, out, stats.GlobalStats(context.Background(), filter))

	tw := tabwriter.NewWriter(out, 0, 4, 2, ' ', 0)
	fmt.Fprintln(tw, "agente\treferidos\tactivos\tfondeo\tcomision\tpagada")
	for _, agent := range store.ListAgents() {
		s := stats.AgentStats(agent.ID)
		fmt.Fprintf(tw, "%s\t%d\t%d\t%s\t%s\t%s\n",
			agent.ID, s.TotalReferrals, s.Active,
			money(p, s.TotalFunding), money(p, s.CommissionGenerated), money(p, s.CommissionPaid))
	}
	return tw.Flush()
}

func (o options) filter() (service.DashboardFilter, error) {
	var f service.DashboardFilter
	if o.clientType != "" && o.clientType != "all" {
		ct := domain.ClientType(o.clientType)
		if !ct.Valid() {
			return f, fmt.Errorf("invalid -client-type %q", o.clientType)
		}
		f.ClientType = &ct
	}
	if o.program != "" && o.program != "all" {
		program := domain.Program(o.program)
		if !program.Valid() {
			return f, fmt.Errorf("invalid -program %q", o.program)
		}
		f.Program = &program
	}
	if o.from != "" {
		from, err := time.ParseInLocation(time.DateOnly, o.from, time.UTC)
		if err != nil {
			return f, fmt.Errorf("invalid -from: %w", err)
		}
		f.DateFrom = &from
	}
	if o.to != "" {
		to, err := time.ParseInLocation(time.DateOnly, o.to, time.UTC)
		if err != nil {
			return f, fmt.Errorf("invalid -to: %w", err)
		}
		// inclusive of the whole day
		to = to.AddDate(0, 0, 1).Add(-time.Nanosecond)
		f.DateTo = &to
	}
	return f, nil
}

func writeGlobal(p *message.Printer, out io.Writer, g service.GlobalStats) {
	p.Fprintf(out, "Referidos: %d (invitados %d, registrados %d, activos %d, bajas %d)\n",
		g.TotalReferrals, g.StatusBreakdown.Invited, g.StatusBreakdown.Registered, g.StatusBreakdown.Active, g.StatusBreakdown.Churn)
	p.Fprintf(out, "Agentes con referidos: %d\n", g.ActiveAgents)
	p.Fprintf(out, "Fondeo: %s  Compras: %s  Volumen: %s\n",
		money(p, g.TotalFunding), money(p, g.TotalPurchases), money(p, g.TotalTransactionVolume))
	p.Fprintf(out, "Comisiones: %s (pagadas %s, pendientes %s)\n",
		money(p, g.CommissionGenerated), money(p, g.CommissionPaid), money(p, g.CommissionPending))
	p.Fprintf(out, "Conversion: %s%%  Fondeo promedio: %s\n\n",
		percent(p, g.ConversionRate), money(p, decimal.NewFromInt(g.AvgFundingPerProspect)))
}

func money(p *message.Printer, d decimal.Decimal) string {
	return p.Sprint("$", number.Decimal(d.InexactFloat64(), number.Scale(2)))
}

func percent(p *message.Printer, d decimal.Decimal) string {
	return p.Sprint(number.Decimal(d.InexactFloat64(), number.MaxFractionDigits(2)))
}
