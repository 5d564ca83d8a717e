package internal

import (
	"encoding/json"
	"fmt"
	"os"
	"path/filepath"
	"time"
)

// Settings mirrors user_settings.json as written by the desktop app.
type Settings struct {
	UserName              string  `json:"USER_NAME"`
	CurrentAccountBalance float64 `json:"CURRENT_ACCOUNT_BALANCE"`
	MonthlyGrossSalary    float64 `json:"MONTHLY_GROSS_SALARY"`
	MonthlyNetSalary      float64 `json:"MONTHLY_NET_SALARY"`
	AverageMonthlyExpense float64 `json:"AVERAGE_MONTHLY_EXPENSE"`
	Currency              string  `json:"CURRENCY"`
	UserFolder            string  `json:"USER_FOLDER"`
	DefaultAnalysis       string  `json:"DEFAULT_ANALYSIS"`
}

// LoadSettings reads a user_settings.json file.
func LoadSettings(path string) (*Settings, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("reading settings file: %w", err)
	}
	var s Settings
	if err := json.Unmarshal(data, &s); err != nil {
		return nil, fmt.Errorf("parsing settings file: %w", err)
	}
	return &s, nil
}

// Save rewrites the whole settings file.
func (s *Settings) Save(path string) error {
	data, err := json.MarshalIndent(s, "", "    ")
	if err != nil {
		return fmt.Errorf("marshaling settings: %w", err)
	}
	if err := os.WriteFile(path, data, 0644); err != nil {
		return fmt.Errorf("writing settings file: %w", err)
	}
	return nil
}

// Profile bundles the user settings with the data files from the user folder.
type Profile struct {
	Settings     *Settings
	Categories   []Category
	Transactions []Record
	Upcomings    []Record
}

// LoadProfile reads the settings file and every data file in the folder it
// points at. Missing data files load as empty collections.
func LoadProfile(settingsPath string) (*Profile, error) {
	settings, err := LoadSettings(settingsPath)
	if err != nil {
		return nil, err
	}

	folder := settings.UserFolder
	categories, err := LoadCategories(filepath.Join(folder, CategoriesFile))
	if err != nil {
		return nil, err
	}
	transactions, err := LoadRecords(filepath.Join(folder, TransactionsFile))
	if err != nil {
		return nil, err
	}
	upcomings, err := LoadRecords(filepath.Join(folder, UpcomingsFile))
	if err != nil {
		return nil, err
	}

	return &Profile{
		Settings:     settings,
		Categories:   categories,
		Transactions: transactions,
		Upcomings:    upcomings,
	}, nil
}

// EffectiveBalance is the stored baseline balance plus the net cashflow of
// every recorded transaction, rounded to 2 decimals.
func (p *Profile) EffectiveBalance() float64 {
	income, expense := 0.0, 0.0
	for _, r := range p.Transactions {
		switch r.Type {
		case TypeIncome:
			income += r.Amount
		case TypeExpense:
			expense += r.Amount
		}
	}
	return round2(p.Settings.CurrentAccountBalance + income - expense)
}

// LastOperationDate returns the date of the last stored transaction in
// storage order, or false when there are none.
func (p *Profile) LastOperationDate() (time.Time, bool) {
	if len(p.Transactions) == 0 {
		return time.Time{}, false
	}
	return p.Transactions[len(p.Transactions)-1].Date, true
}

// MainCategories lists the distinct top-level category names in storage
// order. These are the valid filter tokens for a categorical analysis.
func (p *Profile) MainCategories() []string {
	seen := make(map[string]bool)
	var names []string
	for _, c := range p.Categories {
		if c.MainCategory == "" || seen[c.MainCategory] {
			continue
		}
		seen[c.MainCategory] = true
		names = append(names, c.MainCategory)
	}
	return names
}

// AnalysisRequest builds a core analysis request from the profile: the
// effective balance as the prognosis baseline, the net salary as average
// revenue and the configured monthly expense as average spendings.
func (p *Profile) AnalysisRequest(typ AnalysisType, from, to time.Time, category string) Request {
	balance := p.EffectiveBalance()
	revenue := p.Settings.MonthlyNetSalary
	spendings := p.Settings.AverageMonthlyExpense
	return Request{
		Type:             typ,
		From:             from,
		To:               to,
		Transactions:     p.Transactions,
		Upcomings:        p.Upcomings,
		Category:         category,
		AccountBalance:   &balance,
		AverageRevenue:   &revenue,
		AverageSpendings: &spendings,
	}
}
