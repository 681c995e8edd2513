package analysis

import (
	"errors"
	"testing"

	"github.com/Veraticus/nestegg/internal/common"
	"github.com/Veraticus/nestegg/internal/statement"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestConfig_Validate(t *testing.T) {
	tests := []struct {
		name    string
		mutate  func(*Config)
		wantErr bool
	}{
		{name: "defaults", mutate: func(*Config) {}},
		{name: "month first", mutate: func(c *Config) { c.DateOrder = statement.MonthFirst }},
		{name: "empty date order", mutate: func(c *Config) { c.DateOrder = "" }},
		{name: "no hotspots", mutate: func(c *Config) { c.LeakageTopN = 0 }},
		{name: "bad date order", mutate: func(c *Config) { c.DateOrder = "sideways" }, wantErr: true},
		{name: "zero transactions", mutate: func(c *Config) { c.RecurringMinTransactions = 0 }, wantErr: true},
		{name: "zero months", mutate: func(c *Config) { c.RecurringMinMonths = 0 }, wantErr: true},
		{name: "negative top n", mutate: func(c *Config) { c.LeakageTopN = -1 }, wantErr: true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			cfg := DefaultConfig()
			tt.mutate(&cfg)

			err := cfg.Validate()
			if tt.wantErr {
				require.Error(t, err)
				assert.True(t, errors.Is(err, common.ErrInvalidConfig))
				return
			}
			assert.NoError(t, err)
		})
	}
}

func TestNewAnalyzer(t *testing.T) {
	a, err := NewAnalyzer(DefaultConfig(), Deps{})
	require.NoError(t, err)
	assert.NotNil(t, a.classifier)
	assert.NotNil(t, a.logger)

	cfg := DefaultConfig()
	cfg.RecurringMinMonths = 0
	_, err = NewAnalyzer(cfg, Deps{})
	assert.Error(t, err)
}
