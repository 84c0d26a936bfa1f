// Package seeds generates the synthetic partner fixtures: a raw
// performance table and one markdown profile per partner. The profiles
// contain the growth and manufacturing phrases the retrieval engine's
// answer heuristics key on.
package seeds

import (
	"fmt"
	"math"
	"math/rand"
	"os"
	"path/filepath"
	"time"

	"partnerinsights/internal/analytics"
)

var industries = []string{"Financial Services", "Retail", "Healthcare", "Manufacturing", "Telecommunications"}

var regions = []string{"North America", "EMEA", "Asia Pacific", "Latin America"}

// Options configures fixture generation. Seed fixes the random draws
// for reproducible corpora; zero means seed from the clock.
type Options struct {
	Partners int
	Seed     int64
	RawPath  string
	DocsDir  string
}

// Generate writes the performance CSV and the profile documents and
// returns the generated rows.
func Generate(opts Options) ([]analytics.Performance, error) {
	if opts.Partners <= 0 {
		opts.Partners = 25
	}
	seed := opts.Seed
	if seed == 0 {
		seed = time.Now().UnixNano()
	}
	rng := rand.New(rand.NewSource(seed))

	rows := make([]analytics.Performance, opts.Partners)
	now := time.Now()
	for i := range rows {
		rows[i] = analytics.Performance{
			PartnerID:           fmt.Sprintf("Partner_%03d", i+1),
			Industry:            industries[rng.Intn(len(industries))],
			Region:              regions[rng.Intn(len(regions))],
			Revenue:             round2(50000 + rng.Float64()*(1000000-50000)),
			Deals:               5 + rng.Intn(46),
			EngagementFrequency: 1 + rng.Intn(10),
			GrowthPotential:     round2(0.05 + rng.Float64()*0.25),
			LastActive:          now.AddDate(0, 0, -rng.Intn(61)),
		}
	}

	if err := analytics.WriteRaw(opts.RawPath, rows); err != nil {
		return nil, err
	}
	if err := writeProfiles(opts.DocsDir, rows); err != nil {
		return nil, err
	}
	return rows, nil
}

func writeProfiles(dir string, rows []analytics.Performance) error {
	if err := os.MkdirAll(dir, 0o755); err != nil {
		return err
	}
	for _, row := range rows {
		path := filepath.Join(dir, row.PartnerID+".md")
		if err := os.WriteFile(path, []byte(Profile(row)), 0o644); err != nil {
			return err
		}
	}
	return nil
}

// Profile renders the markdown profile document for one partner.
func Profile(row analytics.Performance) string {
	engagementNote := "below average"
	if row.EngagementFrequency > 5 {
		engagementNote = "adequate"
	}
	priority := "Steady State"
	if row.GrowthPotential > 0.2 {
		priority = "High Growth"
	}
	return fmt.Sprintf(`# Partner Profile: %[1]s
**Industry:** %[2]s
**Region:** %[3]s

## Business Summary
%[1]s has been a key partner in the %[2]s sector within %[3]s. Their focus is on digital transformation and AI adoption.

## Recent Feedback
- "Partner shows high interest in Partner Insights & GenAI integration."
- "Engagement frequency is %[4]d times per month, which is %[5]s."
- "Revenue growth of %.1[6]f%% expected next fiscal year."

## Challenges
- Some integration delays reported in the last quarter.
- Requires more enablement on GenAI RAG workflows.

## Strategic Priority
%[7]s - Focus on scaling %[2]s solutions.
`,
		row.PartnerID,
		row.Industry,
		row.Region,
		row.EngagementFrequency,
		engagementNote,
		row.GrowthPotential*100,
		priority,
	)
}

func round2(v float64) float64 {
	return math.Round(v*100) / 100
}
