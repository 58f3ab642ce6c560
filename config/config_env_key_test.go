package config

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
)

func TestCanonicalizeEnvKey_UsesExistingCamelCaseKeys(t *testing.T) {
	existing := map[string]any{
		"postgres": map[string]any{
			"sslMode": "disable",
			"master": map[string]any{
				"userName": "user",
			},
		},
		"search": map[string]any{
			"defaultCount": 15,
			"maxCount":     100,
		},
		"nutrition": map[string]any{
			"maxRecipeDepth": 32,
		},
		"secretKey": map[string]any{
			"access": "",
		},
	}

	tests := []struct {
		envKey string
		want   string
	}{
		{envKey: "POSTGRES_SSLMODE", want: "postgres.sslMode"},
		{envKey: "POSTGRES_MASTER_USERNAME", want: "postgres.master.userName"},
		{envKey: "SEARCH_MAXCOUNT", want: "search.maxCount"},
		{envKey: "NUTRITION_MAXRECIPEDEPTH", want: "nutrition.maxRecipeDepth"},
		{envKey: "SECRETKEY_ACCESS", want: "secretKey.access"},
		{envKey: "NEW_FEATURE_FLAG", want: "new.feature.flag"},
	}

	for _, tt := range tests {
		t.Run(tt.envKey, func(t *testing.T) {
			assert.Equal(t, tt.want, canonicalizeEnvKey(tt.envKey, existing))
		})
	}
}

func TestApplyDefaults(t *testing.T) {
	cfg := &Config{}
	cfg.applyDefaults()

	assert.Equal(t, defaultMaxRequestBodySize, cfg.HTTP.MaxRequestBodySize)
	assert.Equal(t, 15, cfg.Search.DefaultCount)
	assert.Equal(t, 100, cfg.Search.MaxCount)
	assert.Equal(t, 32, cfg.Nutrition.MaxRecipeDepth)
	assert.Equal(t, 200*time.Millisecond, cfg.Database.SlowQueryThreshold)
	if assert.NotNil(t, cfg.QRCode) {
		assert.Equal(t, 256, cfg.QRCode.Size)
		assert.Equal(t, "M", cfg.QRCode.ErrorCorrectionLevel)
	}
}

func TestApplyDefaults_ClampsDefaultCountToMax(t *testing.T) {
	cfg := &Config{}
	cfg.Search.DefaultCount = 50
	cfg.Search.MaxCount = 20
	cfg.applyDefaults()

	assert.Equal(t, 20, cfg.Search.DefaultCount)
}
