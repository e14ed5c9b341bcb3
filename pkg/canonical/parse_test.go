package canonical

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestParseBudget(t *testing.T) {
	t.Run("plain number", func(t *testing.T) {
		max, flexible := parseBudget("45000")
		assert.Equal(t, 45000.0, max)
		assert.False(t, flexible)
	})

	t.Run("range takes the upper bound", func(t *testing.T) {
		max, flexible := parseBudget("20k-40k")
		assert.Equal(t, 40000.0, max)
		assert.False(t, flexible)
	})

	t.Run("k suffix multiplies by thousand", func(t *testing.T) {
		max, _ := parseBudget("45k")
		assert.Equal(t, 45000.0, max)
	})

	t.Run("plus marks flexible", func(t *testing.T) {
		max, flexible := parseBudget("50k+")
		assert.Equal(t, 50000.0, max)
		assert.True(t, flexible)
	})

	t.Run("flexible keyword", func(t *testing.T) {
		max, flexible := parseBudget("Flexible")
		assert.Equal(t, 0.0, max)
		assert.True(t, flexible)
	})

	t.Run("currency noise is ignored", func(t *testing.T) {
		max, flexible := parseBudget("$30,000 per year")
		assert.Equal(t, 30000.0, max)
		assert.False(t, flexible)
	})

	t.Run("range with grouped digits", func(t *testing.T) {
		max, flexible := parseBudget("25,000 - 30,000")
		assert.Equal(t, 30000.0, max)
		assert.False(t, flexible)
	})

	t.Run("double grouping", func(t *testing.T) {
		max, _ := parseBudget("1,200,000")
		assert.Equal(t, 1200000.0, max)
	})

	t.Run("unparseable yields zero hard ceiling", func(t *testing.T) {
		max, flexible := parseBudget("whatever it takes")
		assert.Equal(t, 0.0, max)
		assert.False(t, flexible)
	})
}

func TestParseMoney(t *testing.T) {
	tests := []struct {
		name  string
		input string
		want  float64
	}{
		{"dollar amount", "$45,000", 45000},
		{"k suffix", "€60k", 60000},
		{"decimal with k", "12.5k", 12500},
		{"plain", "30000", 30000},
		{"empty", "", 0},
		{"no digits", "free", 0},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, parseMoney(tt.input))
		})
	}
}

func TestParseRate(t *testing.T) {
	t.Run("percentage string", func(t *testing.T) {
		v, ok := parseRate("12%")
		assert.True(t, ok)
		assert.Equal(t, 12.0, v)
	})

	t.Run("decimal", func(t *testing.T) {
		v, ok := parseRate("4.5")
		assert.True(t, ok)
		assert.Equal(t, 4.5, v)
	})

	t.Run("unparseable reports false", func(t *testing.T) {
		_, ok := parseRate("N/A")
		assert.False(t, ok)
	})

	t.Run("explicit zero is still parseable", func(t *testing.T) {
		v, ok := parseRate("0%")
		assert.True(t, ok)
		assert.Equal(t, 0.0, v)
	})
}

func TestParseCountryList(t *testing.T) {
	t.Run("valid json array", func(t *testing.T) {
		assert.Equal(t, []string{"Canada", "Germany"}, parseCountryList(`["Canada","Germany"]`))
	})

	t.Run("empty string", func(t *testing.T) {
		assert.Nil(t, parseCountryList(""))
	})

	t.Run("malformed json", func(t *testing.T) {
		assert.Nil(t, parseCountryList("Canada, Germany"))
	})
}

func TestClamp01(t *testing.T) {
	assert.Equal(t, 0.0, clamp01(-0.5))
	assert.Equal(t, 1.0, clamp01(1.5))
	assert.Equal(t, 0.75, clamp01(0.75))
}
