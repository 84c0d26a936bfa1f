package seeds

import (
	"os"
	"path/filepath"
	"regexp"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"partnerinsights/internal/analytics"
)

func testOptions(t *testing.T, partners int) Options {
	t.Helper()
	dir := t.TempDir()
	return Options{
		Partners: partners,
		Seed:     42,
		RawPath:  filepath.Join(dir, "raw", "partner_performance.csv"),
		DocsDir:  filepath.Join(dir, "docs"),
	}
}

func TestGenerate(t *testing.T) {
	opts := testOptions(t, 10)
	rows, err := Generate(opts)
	require.NoError(t, err)
	require.Len(t, rows, 10)

	t.Run("writes the raw table", func(t *testing.T) {
		loaded, err := analytics.LoadRaw(opts.RawPath)
		require.NoError(t, err)
		assert.Len(t, loaded, 10)
	})

	t.Run("writes one profile per partner", func(t *testing.T) {
		entries, err := os.ReadDir(opts.DocsDir)
		require.NoError(t, err)
		assert.Len(t, entries, 10)
		_, err = os.Stat(filepath.Join(opts.DocsDir, "Partner_001.md"))
		assert.NoError(t, err)
	})

	t.Run("values stay in their ranges", func(t *testing.T) {
		for _, row := range rows {
			assert.GreaterOrEqual(t, row.Revenue, 50000.0)
			assert.LessOrEqual(t, row.Revenue, 1000000.0)
			assert.GreaterOrEqual(t, row.Deals, 5)
			assert.LessOrEqual(t, row.Deals, 50)
			assert.GreaterOrEqual(t, row.EngagementFrequency, 1)
			assert.LessOrEqual(t, row.EngagementFrequency, 10)
			assert.GreaterOrEqual(t, row.GrowthPotential, 0.05)
			assert.LessOrEqual(t, row.GrowthPotential, 0.30)
			assert.False(t, row.LastActive.After(time.Now()))
			assert.Contains(t, industries, row.Industry)
			assert.Contains(t, regions, row.Region)
		}
	})

	t.Run("partner ids are zero padded and sequential", func(t *testing.T) {
		assert.Equal(t, "Partner_001", rows[0].PartnerID)
		assert.Equal(t, "Partner_010", rows[9].PartnerID)
	})
}

func TestGenerate_Deterministic(t *testing.T) {
	a, err := Generate(testOptions(t, 5))
	require.NoError(t, err)
	b, err := Generate(testOptions(t, 5))
	require.NoError(t, err)
	for i := range a {
		assert.Equal(t, a[i].PartnerID, b[i].PartnerID)
		assert.Equal(t, a[i].Industry, b[i].Industry)
		assert.Equal(t, a[i].Revenue, b[i].Revenue)
		assert.Equal(t, a[i].GrowthPotential, b[i].GrowthPotential)
	}
}

func TestProfile(t *testing.T) {
	row := analytics.Performance{
		PartnerID:           "Partner_007",
		Industry:            "Manufacturing",
		Region:              "EMEA",
		EngagementFrequency: 7,
		GrowthPotential:     0.25,
	}
	doc := Profile(row)

	assert.Contains(t, doc, "# Partner Profile: Partner_007")
	assert.Contains(t, doc, "**Industry:** Manufacturing")
	assert.Contains(t, doc, "Engagement frequency is 7 times per month, which is adequate.")
	assert.Contains(t, doc, `"Revenue growth of 25.0% expected next fiscal year."`)
	assert.Contains(t, doc, "High Growth - Focus on scaling Manufacturing solutions.")

	// the retrieval engine's growth sub-grammar must match the rendered phrase
	assert.Regexp(t, regexp.MustCompile(`Revenue growth of [\d.]+%`), doc)
}

func TestProfile_LowEnd(t *testing.T) {
	row := analytics.Performance{
		PartnerID:           "Partner_008",
		Industry:            "Retail",
		Region:              "EMEA",
		EngagementFrequency: 3,
		GrowthPotential:     0.1,
	}
	doc := Profile(row)
	assert.Contains(t, doc, "which is below average.")
	assert.Contains(t, doc, "Steady State - Focus on scaling Retail solutions.")
	assert.Contains(t, doc, `"Revenue growth of 10.0% expected next fiscal year."`)
}
