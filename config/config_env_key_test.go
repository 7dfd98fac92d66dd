package config

import (
	"testing"
	"time"
)

func TestCanonicalizeEnvKey_UsesExistingCamelCaseKeys(t *testing.T) {
	existing := map[string]any{
		"postgres": map[string]any{
			"sslMode": "disable",
			"master": map[string]any{
				"userName": "user",
			},
		},
		"dispatch": map[string]any{
			"maxConcurrency": 8,
			"auditFallback":  false,
		},
		"location": map[string]any{
			"minDistanceMeters": 10,
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
		{envKey: "DISPATCH_MAXCONCURRENCY", want: "dispatch.maxConcurrency"},
		{envKey: "DISPATCH_AUDITFALLBACK", want: "dispatch.auditFallback"},
		{envKey: "LOCATION_MINDISTANCEMETERS", want: "location.minDistanceMeters"},
		{envKey: "SECRETKEY_ACCESS", want: "secretKey.access"},
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

func TestApplyDefaults_FillsMissingSections(t *testing.T) {
	cfg := &Config{}
	applyDefaults(cfg)

	if cfg.Dispatch.MaxConcurrency != defaultDispatchConcurrency {
		t.Fatalf("MaxConcurrency = %d, want %d", cfg.Dispatch.MaxConcurrency, defaultDispatchConcurrency)
	}
	if cfg.Dispatch.SMSPreamble != defaultSMSPreamble {
		t.Fatalf("SMSPreamble = %q, want %q", cfg.Dispatch.SMSPreamble, defaultSMSPreamble)
	}
	if cfg.Location.MaxAge != defaultLocationMaxAge {
		t.Fatalf("MaxAge = %s, want %s", cfg.Location.MaxAge, defaultLocationMaxAge)
	}
	if cfg.Timer.MaxDurationMinutes != defaultTimerMaxMinutes {
		t.Fatalf("MaxDurationMinutes = %d, want %d", cfg.Timer.MaxDurationMinutes, defaultTimerMaxMinutes)
	}
	if cfg.Timer.SweepSchedule != defaultTimerSweepSchedule {
		t.Fatalf("SweepSchedule = %q, want %q", cfg.Timer.SweepSchedule, defaultTimerSweepSchedule)
	}
	if cfg.Push == nil || cfg.SMS == nil || cfg.Geocoding == nil || cfg.Redis == nil {
		t.Fatal("optional sections must never be nil")
	}
}

func TestApplyDefaults_KeepsConfiguredValues(t *testing.T) {
	cfg := &Config{
		Dispatch: &DispatchConfig{MaxConcurrency: 3, Timeout: time.Minute, SMSPreamble: "HELP"},
		Location: &LocationConfig{MaxAge: time.Minute, MinDistanceMeters: 25, HistorySize: 5},
	}
	applyDefaults(cfg)

	if cfg.Dispatch.MaxConcurrency != 3 || cfg.Dispatch.Timeout != time.Minute || cfg.Dispatch.SMSPreamble != "HELP" {
		t.Fatalf("dispatch overridden: %+v", cfg.Dispatch)
	}
	if cfg.Location.MinDistanceMeters != 25 || cfg.Location.HistorySize != 5 {
		t.Fatalf("location overridden: %+v", cfg.Location)
	}
}
