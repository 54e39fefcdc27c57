package config

import "testing"

type testConfig struct {
	Addr string `env:"GAME_BACKEND_TEST_ADDR" envDefault:":9090"`
}

func TestParseEnvDefaults(t *testing.T) {
	var cfg testConfig
	if err := ParseEnv(&cfg); err != nil {
		t.Fatalf("parse env: %v", err)
	}
	if cfg.Addr != ":9090" {
		t.Fatalf("addr = %q, want %q", cfg.Addr, ":9090")
	}
}

func TestParseEnvOverride(t *testing.T) {
	t.Setenv("GAME_BACKEND_TEST_ADDR", ":7070")
	var cfg testConfig
	if err := ParseEnv(&cfg); err != nil {
		t.Fatalf("parse env: %v", err)
	}
	if cfg.Addr != ":7070" {
		t.Fatalf("addr = %q, want %q", cfg.Addr, ":7070")
	}
}
