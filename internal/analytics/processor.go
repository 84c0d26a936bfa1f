// Package analytics derives partner KPIs from the raw performance table
// and exposes the processed insights to consumers.
package analytics

import (
	"encoding/csv"
	"errors"
	"fmt"
	"math"
	"os"
	"path/filepath"
	"sort"
	"strconv"
	"time"
)

const dateLayout = "2006-01-02"

// Performance is one row of the raw partner performance table.
type Performance struct {
	PartnerID           string
	Industry            string
	Region              string
	Revenue             float64
	Deals               int
	EngagementFrequency int
	GrowthPotential     float64
	LastActive          time.Time
}

// Insight is a performance row enriched with derived KPIs.
type Insight struct {
	Performance
	AvgDealValue    float64
	EngagementScore float64
	PartnerTier     string
}

// Summary aggregates the processed insights for display.
type Summary struct {
	Partners      int
	AvgRevenue    float64
	AvgEngagement float64
	AvgGrowth     float64
}

var rawHeader = []string{"partner_id", "industry", "region", "revenue", "deals", "engagement_frequency", "growth_potential", "last_active"}

var processedHeader = append(append([]string{}, rawHeader...), "avg_deal_value", "engagement_score", "partner_tier")

// Process reads the raw performance CSV, derives the KPI columns, and
// writes the processed insights CSV. Rows with missing or unparseable
// fields are dropped. A missing source file is an error: the ETL has
// nothing to degrade to.
func Process(rawPath, processedPath string) ([]Insight, error) {
	rows, err := LoadRaw(rawPath)
	if err != nil {
		return nil, err
	}

	insights := make([]Insight, len(rows))
	median := revenueMedian(rows)
	for i, row := range rows {
		insights[i] = Insight{
			Performance:     row,
			AvgDealValue:    round2(row.Revenue / float64(row.Deals)),
			EngagementScore: round2(float64(row.EngagementFrequency)*10 + row.GrowthPotential*100),
			PartnerTier:     "Silver",
		}
		if row.Revenue > median {
			insights[i].PartnerTier = "Gold"
		}
	}

	if err := writeProcessed(processedPath, insights); err != nil {
		return nil, err
	}
	return insights, nil
}

// LoadRaw parses the raw performance table, dropping incomplete rows.
func LoadRaw(path string) ([]Performance, error) {
	f, err := os.Open(path)
	if err != nil {
		if errors.Is(err, os.ErrNotExist) {
			return nil, fmt.Errorf("source data not found: %s", path)
		}
		return nil, err
	}
	defer f.Close()

	reader := csv.NewReader(f)
	reader.FieldsPerRecord = -1
	records, err := reader.ReadAll()
	if err != nil {
		return nil, err
	}
	if len(records) == 0 {
		return nil, nil
	}

	var rows []Performance
	for _, rec := range records[1:] {
		row, ok := parseRow(rec)
		if !ok {
			continue
		}
		rows = append(rows, row)
	}
	return rows, nil
}

// LoadInsights reads the processed insights CSV. A missing file yields
// an empty dataset so consumers can render a "no data" state.
func LoadInsights(path string) ([]Insight, error) {
	f, err := os.Open(path)
	if err != nil {
		if errors.Is(err, os.ErrNotExist) {
			return nil, nil
		}
		return nil, err
	}
	defer f.Close()

	reader := csv.NewReader(f)
	reader.FieldsPerRecord = -1
	records, err := reader.ReadAll()
	if err != nil {
		return nil, err
	}
	if len(records) == 0 {
		return nil, nil
	}

	var insights []Insight
	for _, rec := range records[1:] {
		if len(rec) != len(processedHeader) {
			continue
		}
		row, ok := parseRow(rec[:len(rawHeader)])
		if !ok {
			continue
		}
		adv, err1 := strconv.ParseFloat(rec[8], 64)
		score, err2 := strconv.ParseFloat(rec[9], 64)
		if err1 != nil || err2 != nil {
			continue
		}
		insights = append(insights, Insight{
			Performance:     row,
			AvgDealValue:    adv,
			EngagementScore: score,
			PartnerTier:     rec[10],
		})
	}
	return insights, nil
}

// Summarize aggregates the headline KPI figures.
func Summarize(insights []Insight) Summary {
	s := Summary{Partners: len(insights)}
	if len(insights) == 0 {
		return s
	}
	for _, in := range insights {
		s.AvgRevenue += in.Revenue
		s.AvgEngagement += float64(in.EngagementFrequency)
		s.AvgGrowth += in.GrowthPotential
	}
	n := float64(len(insights))
	s.AvgRevenue /= n
	s.AvgEngagement /= n
	s.AvgGrowth /= n
	return s
}

// WriteRaw writes rows as the raw performance table, creating the
// parent directory as needed.
func WriteRaw(path string, rows []Performance) error {
	records := make([][]string, 0, len(rows)+1)
	records = append(records, rawHeader)
	for _, row := range rows {
		records = append(records, rawRecord(row))
	}
	return writeCSV(path, records)
}

func writeProcessed(path string, insights []Insight) error {
	records := make([][]string, 0, len(insights)+1)
	records = append(records, processedHeader)
	for _, in := range insights {
		rec := rawRecord(in.Performance)
		rec = append(rec,
			formatFloat(in.AvgDealValue),
			formatFloat(in.EngagementScore),
			in.PartnerTier,
		)
		records = append(records, rec)
	}
	return writeCSV(path, records)
}

func writeCSV(path string, records [][]string) error {
	if err := os.MkdirAll(filepath.Dir(path), 0o755); err != nil {
		return err
	}
	f, err := os.Create(path)
	if err != nil {
		return err
	}
	writer := csv.NewWriter(f)
	if err := writer.WriteAll(records); err != nil {
		f.Close()
		return err
	}
	writer.Flush()
	if err := writer.Error(); err != nil {
		f.Close()
		return err
	}
	return f.Close()
}

func rawRecord(row Performance) []string {
	return []string{
		row.PartnerID,
		row.Industry,
		row.Region,
		formatFloat(row.Revenue),
		strconv.Itoa(row.Deals),
		strconv.Itoa(row.EngagementFrequency),
		formatFloat(row.GrowthPotential),
		row.LastActive.Format(dateLayout),
	}
}

func parseRow(rec []string) (Performance, bool) {
	if len(rec) < len(rawHeader) {
		return Performance{}, false
	}
	for _, field := range rec[:len(rawHeader)] {
		if field == "" {
			return Performance{}, false
		}
	}
	revenue, err1 := strconv.ParseFloat(rec[3], 64)
	deals, err2 := strconv.Atoi(rec[4])
	freq, err3 := strconv.Atoi(rec[5])
	growth, err4 := strconv.ParseFloat(rec[6], 64)
	lastActive, err5 := time.Parse(dateLayout, rec[7])
	if err1 != nil || err2 != nil || err3 != nil || err4 != nil || err5 != nil || deals == 0 {
		return Performance{}, false
	}
	return Performance{
		PartnerID:           rec[0],
		Industry:            rec[1],
		Region:              rec[2],
		Revenue:             revenue,
		Deals:               deals,
		EngagementFrequency: freq,
		GrowthPotential:     growth,
		LastActive:          lastActive,
	}, true
}

func revenueMedian(rows []Performance) float64 {
	if len(rows) == 0 {
		return 0
	}
	values := make([]float64, len(rows))
	for i, row := range rows {
		values[i] = row.Revenue
	}
	sort.Float64s(values)
	mid := len(values) / 2
	if len(values)%2 == 0 {
		return (values[mid-1] + values[mid]) / 2
	}
	return values[mid]
}

func round2(v float64) float64 {
	return math.Round(v*100) / 100
}

func formatFloat(v float64) string {
	return strconv.FormatFloat(v, 'f', -1, 64)
}
