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
		"webPush": map[string]any{
			"vapidPrivateKey": "",
		},
		"dispatch": map[string]any{
			"sendTimeout": "10s",
			"scheduler": map[string]any{
				"enabled": false,
			},
		},
	}

	tests := []struct {
		envKey string
		want   string
	}{
		{envKey: "POSTGRES_SSLMODE", want: "postgres.sslMode"},
		{envKey: "POSTGRES_MASTER_USERNAME", want: "postgres.master.userName"},
		{envKey: "WEBPUSH_VAPIDPRIVATEKEY", want: "webPush.vapidPrivateKey"},
		{envKey: "DISPATCH_SENDTIMEOUT", want: "dispatch.sendTimeout"},
		{envKey: "DISPATCH_SCHEDULER_ENABLED", want: "dispatch.scheduler.enabled"},
		{envKey: "NEW_FEATURE_FLAG", want: "new.feature.flag"},
	}

	for _, tt := range tests {
		t.Run(tt.envKey, func(t *testing.T) {
			if got := canonicalizeEnvKey(tt.envKey, existing); got != tt.want {
				t.Fatalf("canonicalizeEnvKey(%q) = %q, want %q", tt.envKey, got, tt.want)
			}
		})
	}
}

func TestApplyDefaults(t *testing.T) {
	cfg := &Config{WebPush: &WebPushConfig{}}
	cfg.applyDefaults()

	assert.Equal(t, defaultMaxRequestBodySize, cfg.HTTP.MaxRequestBodySize)
	assert.Equal(t, "UTC", cfg.Dispatch.Timezone)
	assert.Equal(t, 10*time.Second, cfg.Dispatch.SendTimeout)
	assert.Equal(t, 2*time.Minute, cfg.Dispatch.InvocationTimeout)
	assert.Equal(t, defaultMaxConcurrency, cfg.Dispatch.MaxConcurrency)
	assert.Equal(t, defaultSweepInterval, cfg.Dispatch.Scheduler.Interval)
	assert.Equal(t, defaultWebPushTTL, cfg.WebPush.TTL)
}

func TestApplyDefaults_KeepsExplicitValues(t *testing.T) {
	cfg := &Config{}
	cfg.Dispatch.Timezone = "Asia/Taipei"
	cfg.Dispatch.MaxConcurrency = 4
	cfg.applyDefaults()

	assert.Equal(t, "Asia/Taipei", cfg.Dispatch.Timezone)
	assert.Equal(t, 4, cfg.Dispatch.MaxConcurrency)
	assert.Nil(t, cfg.WebPush)
}

func TestDispatchConfig_Location(t *testing.T) {
	assert.Equal(t, time.UTC, DispatchConfig{Timezone: "UTC"}.Location())
	assert.Equal(t, time.UTC, DispatchConfig{Timezone: "Not/AZone"}.Location())
}
