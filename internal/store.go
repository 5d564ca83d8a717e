package internal

import (
	"encoding/json"
	"errors"
	"fmt"
	"io/fs"
	"os"
	"path/filepath"
	"sort"
	"strconv"
)

// Data file names inside a profile folder, as written by the desktop app.
const (
	SettingsFile     = "user_settings.json"
	CategoriesFile   = "categories.json"
	TransactionsFile = "transactions.json"
	UpcomingsFile    = "upcomings.json"
)

// storedRecord mirrors the on-disk record object. Dates are dd.mm.yyyy
// strings and amounts use a decimal comma, optionally with space thousands
// separators.
type storedRecord struct {
	Name     string `json:"1_name"`
	Date     string `json:"2_date"`
	Vendor   string `json:"3_vendor,omitempty"`
	Type     string `json:"4_type"`
	Category string `json:"5_category"`
	Amount   string `json:"6_amount"`
}

// storedCategory mirrors the on-disk category object.
type storedCategory struct {
	MainCategory string `json:"1_Main Category"`
	Subcategory  string `json:"2_Subcategory"`
	DefaultType  string `json:"3_Default Operation Type"`
	Name         string `json:"Name"`
}

func (s storedRecord) toRecord() (Record, error) {
	date, err := ParseDate(s.Date)
	if err != nil {
		return Record{}, err
	}
	amount, err := ParseAmount(s.Amount)
	if err != nil {
		return Record{}, err
	}
	return Record{
		Name:     s.Name,
		Date:     date,
		Vendor:   s.Vendor,
		Type:     RecordType(s.Type),
		Category: s.Category,
		Amount:   amount,
	}, nil
}

func toStoredRecord(r Record) storedRecord {
	return storedRecord{
		Name:     r.Name,
		Date:     r.Date.Format(DateFormat),
		Vendor:   r.Vendor,
		Type:     string(r.Type),
		Category: r.Category,
		Amount:   DisplayNumber(r.Amount),
	}
}

// orderedKeys sorts object keys numerically, restoring the insertion order
// the desktop app encodes as stringified indices ("0", "1", ...).
func orderedKeys[V any](m map[string]V) []string {
	keys := make([]string, 0, len(m))
	for k := range m {
		keys = append(keys, k)
	}
	sort.Slice(keys, func(i, j int) bool {
		a, errA := strconv.Atoi(keys[i])
		b, errB := strconv.Atoi(keys[j])
		if errA != nil || errB != nil {
			return keys[i] < keys[j]
		}
		return a < b
	})
	return keys
}

// LoadRecords reads a whole transactions/upcomings file, preserving storage
// order. A missing file means an empty collection, not an error.
func LoadRecords(path string) ([]Record, error) {
	data, err := os.ReadFile(path)
	if errors.Is(err, fs.ErrNotExist) {
		return nil, nil
	}
	if err != nil {
		return nil, fmt.Errorf("reading %s: %w", filepath.Base(path), err)
	}

	var raw map[string]storedRecord
	if err := json.Unmarshal(data, &raw); err != nil {
		return nil, fmt.Errorf("parsing %s: %w", filepath.Base(path), err)
	}

	var records []Record
	for _, key := range orderedKeys(raw) {
		rec, err := raw[key].toRecord()
		if err != nil {
			return nil, fmt.Errorf("record %s in %s: %w", key, filepath.Base(path), err)
		}
		records = append(records, rec)
	}
	return records, nil
}

// SaveRecords rewrites the whole file, assigning sequential indices in
// storage order.
func SaveRecords(path string, records []Record) error {
	out := make(map[string]storedRecord, len(records))
	for i, r := range records {
		out[strconv.Itoa(i)] = toStoredRecord(r)
	}
	data, err := json.MarshalIndent(out, "", "    ")
	if err != nil {
		return fmt.Errorf("marshaling records: %w", err)
	}
	if err := os.WriteFile(path, data, 0644); err != nil {
		return fmt.Errorf("writing %s: %w", filepath.Base(path), err)
	}
	return nil
}

// LoadCategories reads a whole categories file in storage order. A missing
// file means an empty collection.
func LoadCategories(path string) ([]Category, error) {
	data, err := os.ReadFile(path)
	if errors.Is(err, fs.ErrNotExist) {
		return nil, nil
	}
	if err != nil {
		return nil, fmt.Errorf("reading %s: %w", filepath.Base(path), err)
	}

	var raw map[string]storedCategory
	if err := json.Unmarshal(data, &raw); err != nil {
		return nil, fmt.Errorf("parsing %s: %w", filepath.Base(path), err)
	}

	var categories []Category
	for _, key := range orderedKeys(raw) {
		c := raw[key]
		categories = append(categories, Category{
			MainCategory:         c.MainCategory,
			Subcategory:          c.Subcategory,
			DefaultOperationType: RecordType(c.DefaultType),
			Name:                 c.Name,
		})
	}
	return categories, nil
}

// SaveCategories rewrites the whole categories file in storage order.
func SaveCategories(path string, categories []Category) error {
	out := make(map[string]storedCategory, len(categories))
	for i, c := range categories {
		out[strconv.Itoa(i)] = storedCategory{
			MainCategory: c.MainCategory,
			Subcategory:  c.Subcategory,
			DefaultType:  string(c.DefaultOperationType),
			Name:         c.Name,
		}
	}
	data, err := json.MarshalIndent(out, "", "    ")
	if err != nil {
		return fmt.Errorf("marshaling categories: %w", err)
	}
	if err := os.WriteFile(path, data, 0644); err != nil {
		return fmt.Errorf("writing %s: %w", filepath.Base(path), err)
	}
	return nil
}
