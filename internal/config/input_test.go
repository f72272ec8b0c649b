package config

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/mcscylla/portfolio-simulator/internal/domain"
)

func TestNewInputParser(t *testing.T) {
	parser := NewInputParser()
	assert.NotNil(t, parser)
}

func writeTempConfig(t *testing.T, content string) string {
	t.Helper()
	path := filepath.Join(t.TempDir(), "params.yaml")
	require.NoError(t, os.WriteFile(path, []byte(content), 0644))
	return path
}

func TestLoadFromFile_Success(t *testing.T) {
	testConfig := "initial_investment: 750000\n" +
		"annual_mean_return: 0.06\n" +
		"annual_volatility: 0.16\n" +
		"years: 40\n" +
		"num_simulations: 5000\n" +
		"inflation_rate: 0.025\n" +
		"withdrawal_rate: 0.04\n" +
		"withdrawal_policy: \"dynamic\"\n"

	parser := NewInputParser()
	cfg, err := parser.LoadFromFile(writeTempConfig(t, testConfig))
	require.NoError(t, err)
	require.NotNil(t, cfg)

	assert.Equal(t, 750000.0, cfg.InitialInvestment)
	assert.Equal(t, 0.06, cfg.AnnualMeanReturn)
	assert.Equal(t, 0.16, cfg.AnnualVolatility)
	assert.Equal(t, 40, cfg.Years)
	assert.Equal(t, 5000, cfg.NumSimulations)
	assert.Equal(t, 0.025, cfg.InflationRate)
	assert.Equal(t, 0.04, cfg.WithdrawalRate)
	assert.Equal(t, domain.WithdrawalDynamic, cfg.Policy())
}

func TestLoadFromFile_PartialOverridesKeepDefaults(t *testing.T) {
	testConfig := "years: 25\nwithdrawal_rate: 0.05\n"

	parser := NewInputParser()
	cfg, err := parser.LoadFromFile(writeTempConfig(t, testConfig))
	require.NoError(t, err)

	defaults := domain.DefaultConfig()
	assert.Equal(t, 25, cfg.Years)
	assert.Equal(t, 0.05, cfg.WithdrawalRate)
	assert.Equal(t, defaults.InitialInvestment, cfg.InitialInvestment)
	assert.Equal(t, defaults.NumSimulations, cfg.NumSimulations)
	assert.Equal(t, domain.WithdrawalConstant, cfg.Policy())
}

func TestLoadFromFile_MissingFile(t *testing.T) {
	parser := NewInputParser()
	_, err := parser.LoadFromFile(filepath.Join(t.TempDir(), "does-not-exist.yaml"))
	require.Error(t, err)
	assert.Contains(t, err.Error(), "failed to read file")
}

func TestLoadFromFile_MalformedYAML(t *testing.T) {
	parser := NewInputParser()
	_, err := parser.LoadFromFile(writeTempConfig(t, "years: [unclosed\n"))
	require.Error(t, err)
	assert.Contains(t, err.Error(), "failed to parse YAML")
}

func TestLoadFromFile_InvalidValuesRejected(t *testing.T) {
	parser := NewInputParser()
	_, err := parser.LoadFromFile(writeTempConfig(t, "withdrawal_rate: 1.2\n"))
	require.Error(t, err)
	assert.Contains(t, err.Error(), "configuration validation failed")
}

func TestValidateConfiguration_Nil(t *testing.T) {
	parser := NewInputParser()
	require.Error(t, parser.ValidateConfiguration(nil))
}

func TestWriteExampleFileRoundTrip(t *testing.T) {
	parser := NewInputParser()
	path := filepath.Join(t.TempDir(), "example.yaml")
	require.NoError(t, parser.WriteExampleFile(path))

	cfg, err := parser.LoadFromFile(path)
	require.NoError(t, err)
	assert.Equal(t, *parser.CreateExampleConfiguration(), *cfg)
}
