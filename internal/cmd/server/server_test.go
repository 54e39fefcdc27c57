package server

import "testing"

func TestParseConfigDefaults(t *testing.T) {
	cfg, err := parseConfig(nil)
	if err != nil {
		t.Fatalf("parse config: %v", err)
	}
	if cfg.HTTPAddr != ":8080" || cfg.HealthAddr != ":8081" || cfg.DBPath != "game.db" {
		t.Fatalf("cfg = %+v", cfg)
	}
}

func TestParseConfigEnvAndFlags(t *testing.T) {
	t.Setenv("GAME_BACKEND_HTTP_ADDR", ":9090")
	t.Setenv("GAME_BACKEND_DB_PATH", "/tmp/test.db")

	cfg, err := parseConfig(nil)
	if err != nil {
		t.Fatalf("parse config: %v", err)
	}
	if cfg.HTTPAddr != ":9090" || cfg.DBPath != "/tmp/test.db" {
		t.Fatalf("cfg = %+v", cfg)
	}

	// Flags override the environment.
	cfg, err = parseConfig([]string{"-http-addr", ":7070"})
	if err != nil {
		t.Fatalf("parse config: %v", err)
	}
	if cfg.HTTPAddr != ":7070" {
		t.Fatalf("http addr = %q, want :7070", cfg.HTTPAddr)
	}
	if cfg.DBPath != "/tmp/test.db" {
		t.Fatalf("db path = %q, env default should survive", cfg.DBPath)
	}
}
