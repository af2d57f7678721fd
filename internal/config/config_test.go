package config_test

import (
	"math"
	"testing"

	"github.com/stretchr/testify/assert"
	"go.uber.org/multierr"

	"github.com/katalvlaran/pathfill/internal/config"
)

func valid() config.Config {
	return config.Config{
		Log:    config.LogConfig{Level: "info", Format: "console"},
		Fill:   config.FillConfig{Mode: "bfs", Connectivity: 4},
		Search: config.SearchConfig{MinProbability: 0},
	}
}

func TestValidate(t *testing.T) {
	cases := []struct {
		name   string
		mutate func(c *config.Config)
		ok     bool
	}{
		{"Valid", func(c *config.Config) {}, true},
		{"UpperCaseLevel", func(c *config.Config) { c.Log.Level = "DEBUG" }, true},
		{"Conn8", func(c *config.Config) { c.Fill.Connectivity = 8 }, true},
		{"ThresholdOne", func(c *config.Config) { c.Search.MinProbability = 1 }, true},
		{"BadLevel", func(c *config.Config) { c.Log.Level = "trace" }, false},
		{"BadFormat", func(c *config.Config) { c.Log.Format = "xml" }, false},
		{"NegativeRotation", func(c *config.Config) { c.Log.MaxBackups = -1 }, false},
		{"BadMode", func(c *config.Config) { c.Fill.Mode = "scanline" }, false},
		{"BadConnectivity", func(c *config.Config) { c.Fill.Connectivity = 6 }, false},
		{"ThresholdAboveOne", func(c *config.Config) { c.Search.MinProbability = 1.5 }, false},
		{"ThresholdNaN", func(c *config.Config) { c.Search.MinProbability = math.NaN() }, false},
	}
	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			c := valid()
			tc.mutate(&c)
			err := c.Validate()
			if tc.ok {
				assert.NoError(t, err)
			} else {
				assert.ErrorIs(t, err, config.ErrInvalidConfig)
			}
		})
	}
}

func TestValidate_ReportsAllFaults(t *testing.T) {
	c := valid()
	c.Log.Level = "loud"
	c.Fill.Mode = "flood"
	c.Fill.Connectivity = 3

	assert.Len(t, multierr.Errors(c.Validate()), 3)
}
