package config

import (
	"os"
	"path/filepath"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestApplyDefaults(t *testing.T) {
	cfg := &Config{}
	applyDefaults(cfg)

	require.NotNil(t, cfg.Aggregation)
	assert.Equal(t, defaultMaxRequestBodySize, cfg.HTTP.MaxRequestBodySize)
	assert.Equal(t, defaultClusterZoomThreshold, cfg.Aggregation.ClusterZoomThreshold)
	assert.Equal(t, defaultMaxStores, cfg.Aggregation.MaxStores)
	assert.Equal(t, defaultQueryTimeout, cfg.Aggregation.QueryTimeout)
}

func TestApplyDefaults_KeepsExplicitValues(t *testing.T) {
	cfg := &Config{Aggregation: &AggregationConfig{ClusterZoomThreshold: 11, MaxStores: 50, QueryTimeout: time.Second}}
	cfg.HTTP.MaxRequestBodySize = "1MB"
	applyDefaults(cfg)

	assert.Equal(t, "1MB", cfg.HTTP.MaxRequestBodySize)
	assert.Equal(t, 11, cfg.Aggregation.ClusterZoomThreshold)
	assert.Equal(t, 50, cfg.Aggregation.MaxStores)
	assert.Equal(t, time.Second, cfg.Aggregation.QueryTimeout)
}

func TestApplyDefaults_WorkerListensNextToAPI(t *testing.T) {
	cfg := &Config{}
	cfg.HTTP.Port = 9000
	applyDefaults(cfg)

	require.NotNil(t, cfg.Worker)
	assert.Equal(t, 9001, cfg.Worker.Port)
	assert.Equal(t, defaultWorkerBodySize, cfg.Worker.MaxRequestBodySize)
}

func TestLoadWithEnv_OverridesYAMLWithEnvironment(t *testing.T) {
	dir := t.TempDir()
	yamlBody := []byte(`
env:
  env: test
  log:
    level: info
aggregation:
  clusterZoomThreshold: 12
  queryTimeout: 2s
`)
	require.NoError(t, os.WriteFile(filepath.Join(dir, "locator.yaml"), yamlBody, 0o600))

	wd, err := os.Getwd()
	require.NoError(t, err)
	rel, err := filepath.Rel(wd, dir)
	require.NoError(t, err)

	t.Setenv("AGGREGATION_CLUSTERZOOMTHRESHOLD", "10")

	cfg, err := LoadWithEnv[Config]("locator", rel)
	require.NoError(t, err)
	require.NotNil(t, cfg.Aggregation)
	assert.Equal(t, "test", cfg.Env.Env)
	assert.Equal(t, 10, cfg.Aggregation.ClusterZoomThreshold)
	assert.Equal(t, 2*time.Second, cfg.Aggregation.QueryTimeout)
}

func TestLoadWithEnv_MissingFile(t *testing.T) {
	_, err := LoadWithEnv[Config]("does-not-exist")
	assert.Error(t, err)
}
