package config

import "testing"

func TestFromEnvDefaults(t *testing.T) {
	t.Setenv("AIVE_PORT", "")
	t.Setenv("AIVE_DATA_DIR", "")
	t.Setenv("AIVE_LOG_LEVEL", "")

	cfg, err := FromEnv()
	if err != nil {
		t.Fatalf("FromEnv: %v", err)
	}
	if cfg.Port != 8000 || cfg.DataDir != "data" || cfg.LogLevel != "info" {
		t.Errorf("defaults = %+v", cfg)
	}
}

func TestFromEnvOverrides(t *testing.T) {
	t.Setenv("AIVE_PORT", "9090")
	t.Setenv("AIVE_DATA_DIR", "/var/aive")
	t.Setenv("AIVE_LOG_LEVEL", "debug")
	t.Setenv("AIVE_STYLES", "/etc/aive/styles.yaml")
	t.Setenv("OPENROUTER_API_KEY", "sk-test")

	cfg, err := FromEnv()
	if err != nil {
		t.Fatalf("FromEnv: %v", err)
	}
	if cfg.Port != 9090 || cfg.DataDir != "/var/aive" || cfg.LogLevel != "debug" {
		t.Errorf("overrides = %+v", cfg)
	}
	if cfg.StylesPath != "/etc/aive/styles.yaml" {
		t.Errorf("styles path = %q", cfg.StylesPath)
	}
	if cfg.OpenRouterAPIKey != "sk-test" {
		t.Errorf("api key = %q", cfg.OpenRouterAPIKey)
	}
}

func TestFromEnvBadPort(t *testing.T) {
	for _, raw := range []string{"nope", "0", "70000", "-1"} {
		t.Setenv("AIVE_PORT", raw)
		if _, err := FromEnv(); err == nil {
			t.Errorf("AIVE_PORT=%q: want error", raw)
		}
	}
}
