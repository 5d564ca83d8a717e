package main

import (
	"fmt"
	"os"
	"time"

	"github.com/GiGurra/boa/pkg/boa"
	"github.com/joho/godotenv"

	"github.com/PilgrimMatthias/FinanList/internal"
)

type Params struct {
	Profile  string `descr:"Path to the user_settings.json profile file"`
	Analysis string `descr:"Analysis type to run" alts:"Categorical,Aggregate,Prognosis" strict:"true"`
	From     string `descr:"First month of the analysis window (YYYY-MM)"`
	To       string `descr:"Last month of the analysis window (YYYY-MM)"`
	Category string `descr:"Top-level category filter (Categorical analysis only)"`
	Output   string `descr:"Output format: table or json" alts:"table,json" strict:"true"`
	Export   string `descr:"Export the result table to a .csv or .xlsx file"`
	Config   string `descr:"Path to the config file (default: ~/.finanlist/config.yaml)"`
}

func main() {
	boa.NewCmdT[Params]("finanlist").
		WithShort("Analyze FinanList personal-finance profiles").
		WithLong("Runs a categorical, aggregate or prognosis analysis over the transaction, upcoming-operation and category files of a FinanList profile, and renders the result as a table, JSON, or a CSV/XLSX export.").
		WithRunFunc(func(params *Params) {
			if err := run(params); err != nil {
				fmt.Fprintf(os.Stderr, "Error: %v\n", err)
				os.Exit(1)
			}
		}).
		Run()
}

func run(params *Params) error {
	// Local .env files may carry FINANLIST_PROFILE; absence is fine.
	_ = godotenv.Load()

	configPath := params.Config
	if configPath == "" {
		configPath = internal.DefaultConfigPath()
	}
	cfg, err := internal.LoadConfig(configPath)
	if err != nil {
		return err
	}

	profilePath := firstNonEmpty(params.Profile, os.Getenv("FINANLIST_PROFILE"), cfg.Profile)
	if profilePath == "" {
		return fmt.Errorf("no profile given (use --profile, FINANLIST_PROFILE or the config file)")
	}

	profile, err := internal.LoadProfile(profilePath)
	if err != nil {
		return err
	}

	analysisName := firstNonEmpty(params.Analysis, cfg.DefaultAnalysis, profile.Settings.DefaultAnalysis, string(internal.Aggregate))
	if !internal.IsKnownAnalysisType(analysisName) {
		return fmt.Errorf("unknown analysis type %q (available: %v)", analysisName, internal.AnalysisTypes)
	}
	analysisType := internal.AnalysisType(analysisName)

	from, to, err := resolveWindow(params, cfg, analysisType, profile)
	if err != nil {
		return err
	}

	result, err := internal.Run(profile.AnalysisRequest(analysisType, from, to, params.Category))
	if err != nil {
		return err
	}

	if params.Export != "" {
		if err := internal.ExportTable(result, params.Export); err != nil {
			return err
		}
		fmt.Printf("Exported %s analysis to %s\n", analysisName, params.Export)
	}

	if params.Output == "json" {
		return internal.PrintTableJSON(os.Stdout, result)
	}

	fmt.Printf("Loaded %d transactions and %d upcoming operations\n",
		len(profile.Transactions), len(profile.Upcomings))
	fmt.Printf("%s analysis, %s to %s\n\n", analysisName, internal.MonthKey(from), internal.MonthKey(to))

	internal.RenderTable(os.Stdout, result)
	printSummary(result, displayCurrency(cfg, profile))
	return nil
}

// resolveWindow turns the flag values into the inclusive month window,
// normalized to the first day of the from-month and the last day of the
// to-month. Defaults: the past window_months for categorical/aggregate, and
// window_months ahead of the last operation for a prognosis.
func resolveWindow(params *Params, cfg *internal.Config, analysisType internal.AnalysisType, profile *internal.Profile) (time.Time, time.Time, error) {
	months := cfg.WindowMonths
	if months <= 0 {
		months = internal.DefaultWindowMonths
	}
	now := time.Now()

	var from, to time.Time
	if analysisType == internal.Prognosis {
		anchor := now
		if last, ok := profile.LastOperationDate(); ok {
			anchor = last
		}
		from = internal.MonthStart(anchor)
		to = internal.MonthEnd(anchor.AddDate(0, months, 0))
	} else {
		from = internal.MonthStart(now).AddDate(0, -(months - 1), 0)
		to = internal.MonthEnd(now)
	}

	if params.From != "" {
		t, err := internal.ParseMonth(params.From)
		if err != nil {
			return time.Time{}, time.Time{}, err
		}
		from = t
	}
	if params.To != "" {
		t, err := internal.ParseMonth(params.To)
		if err != nil {
			return time.Time{}, time.Time{}, err
		}
		to = internal.MonthEnd(t)
	}

	if to.Before(from) {
		return time.Time{}, time.Time{}, fmt.Errorf("analysis window ends (%s) before it starts (%s)",
			internal.MonthKey(to), internal.MonthKey(from))
	}
	return from, to, nil
}

func displayCurrency(cfg *internal.Config, profile *internal.Profile) internal.Currency {
	code := firstNonEmpty(cfg.Currency, profile.Settings.Currency, internal.DetectSystemCurrency(), "EUR")
	return internal.GetCurrency(code)
}

func printSummary(result *internal.Table, cur internal.Currency) {
	if len(result.Rows) == 0 {
		fmt.Println("\nNo records in the selected window.")
		return
	}

	switch result.Type {
	case internal.Categorical:
		total := 0.0
		for _, r := range result.Rows {
			total += r.Values[internal.ColSummary]
		}
		fmt.Printf("\nTotal spent: %s over %d months\n", cur.Format(total), len(result.Rows))
	case internal.Aggregate:
		income, expense := 0.0, 0.0
		for _, r := range result.Rows {
			income += r.Values[internal.ColIncome]
			expense += r.Values[internal.ColExpense]
		}
		fmt.Printf("\nTotal income: %s  Total expenses: %s  Net: %s\n",
			cur.Format(income), cur.Format(expense), cur.Format(income-expense))
	case internal.Prognosis:
		last := result.Rows[len(result.Rows)-1]
		fmt.Printf("\nProjected balance in %s: %s\n",
			last.YearMonth, cur.Format(last.Values[internal.ColBalance]))
	}
}

func firstNonEmpty(values ...string) string {
	for _, v := range values {
		if v != "" {
			return v
		}
	}
	return ""
}
