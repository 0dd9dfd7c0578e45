package config

import "testing"

func TestCanonicalizeEnvKey_UsesExistingCamelCaseKeys(t *testing.T) {
	existing := map[string]any{
		"geocoding": map[string]any{
			"baseUrl": "https://nominatim.openstreetmap.org",
			"timeout": "10s",
		},
		"directory": map[string]any{
			"displayCap": 3,
		},
		"pubsub": map[string]any{
			"topicId": "",
		},
		"scheduler": map[string]any{
			"pollInterval": "1m",
		},
	}

	tests := []struct {
		envKey string
		want   string
	}{
		{envKey: "GEOCODING_BASEURL", want: "geocoding.baseUrl"},
		{envKey: "DIRECTORY_DISPLAYCAP", want: "directory.displayCap"},
		{envKey: "PUBSUB_TOPICID", want: "pubsub.topicId"},
		{envKey: "SCHEDULER_POLLINTERVAL", want: "scheduler.pollInterval"},
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
	cfg := &Config{}
	applyDefaults(cfg)

	if cfg.Directory.DisplayCap != defaultDisplayCap {
		t.Fatalf("DisplayCap = %d, want %d", cfg.Directory.DisplayCap, defaultDisplayCap)
	}
	if !cfg.Directory.SortGroupsByDistance {
		t.Fatal("SortGroupsByDistance should default to true")
	}
	if cfg.Scheduler.PollInterval != defaultPollInterval {
		t.Fatalf("PollInterval = %v, want %v", cfg.Scheduler.PollInterval, defaultPollInterval)
	}
	if !cfg.Scheduler.AlarmsEnabled {
		t.Fatal("AlarmsEnabled should default to true")
	}
}
