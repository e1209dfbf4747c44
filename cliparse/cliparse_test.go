// Copyright (c) 2025 Daniel Kuo.
// Source-available; no permission granted to use, copy, modify, or distribute. See LICENSE.

package cliparse

import (
	"os"
	"testing"
)

func TestParseFlags_EnvVars(t *testing.T) {
	os.Clearenv()
	defer os.Clearenv()

	os.Setenv("PORT", "8080")
	os.Setenv("DATABASE_URL", "file:game.db")
	os.Setenv("DATABASE_TYPE", "sqlite")
	os.Setenv("MODERATOR_KEY_SALT", "env-salt")

	cfg, err := ParseFlags([]string{})
	if err != nil {
		t.Fatalf("ParseFlags failed: %v", err)
	}

	if cfg.Port != 8080 {
		t.Errorf("Expected port 8080, got %d", cfg.Port)
	}
	if cfg.DatabaseURL != "file:game.db" {
		t.Errorf("Expected database URL 'file:game.db', got '%s'", cfg.DatabaseURL)
	}
	if cfg.DatabaseType != "sqlite" {
		t.Errorf("Expected database type 'sqlite', got '%s'", cfg.DatabaseType)
	}
	if cfg.ModeratorKeySalt != "env-salt" {
		t.Errorf("Expected moderator salt 'env-salt', got '%s'", cfg.ModeratorKeySalt)
	}
}

func TestParseFlags_CLIOverridesEnv(t *testing.T) {
	os.Clearenv()
	defer os.Clearenv()

	os.Setenv("PORT", "8080")
	os.Setenv("DATABASE_URL", "file:env.db")
	os.Setenv("MODERATOR_KEY_SALT", "env-salt")

	cfg, err := ParseFlags([]string{
		"-p", "9090",
		"-d", "postgres://localhost/game",
		"-t", "postgres",
		"-moderator-salt", "cli-salt",
	})
	if err != nil {
		t.Fatalf("ParseFlags failed: %v", err)
	}

	if cfg.Port != 9090 {
		t.Errorf("Expected CLI port 9090, got %d", cfg.Port)
	}
	if cfg.DatabaseURL != "postgres://localhost/game" {
		t.Errorf("Expected CLI database URL, got '%s'", cfg.DatabaseURL)
	}
	if cfg.DatabaseType != "postgres" {
		t.Errorf("Expected CLI database type 'postgres', got '%s'", cfg.DatabaseType)
	}
	if cfg.ModeratorKeySalt != "cli-salt" {
		t.Errorf("Expected CLI moderator salt, got '%s'", cfg.ModeratorKeySalt)
	}
}

func TestParseFlags_Defaults(t *testing.T) {
	os.Clearenv()
	defer os.Clearenv()

	os.Setenv("DATABASE_URL", "file:game.db")
	os.Setenv("MODERATOR_KEY_SALT", "salt")

	cfg, err := ParseFlags([]string{})
	if err != nil {
		t.Fatalf("ParseFlags failed: %v", err)
	}

	if cfg.Port != 3319 {
		t.Errorf("Expected default port 3319, got %d", cfg.Port)
	}
	if cfg.DatabaseType != "sqlite" {
		t.Errorf("Expected default database type 'sqlite', got '%s'", cfg.DatabaseType)
	}
}

func TestParseFlags_MissingRequired(t *testing.T) {
	testCases := []struct {
		name string
		env  map[string]string
	}{
		{
			name: "missing database URL",
			env:  map[string]string{"MODERATOR_KEY_SALT": "salt"},
		},
		{
			name: "missing moderator salt",
			env:  map[string]string{"DATABASE_URL": "file:game.db"},
		},
	}

	for _, tc := range testCases {
		t.Run(tc.name, func(t *testing.T) {
			os.Clearenv()
			defer os.Clearenv()

			for k, v := range tc.env {
				os.Setenv(k, v)
			}

			if _, err := ParseFlags([]string{}); err == nil {
				t.Error("Expected error, got nil")
			}
		})
	}
}

func TestParseFlags_InvalidPort(t *testing.T) {
	os.Clearenv()
	defer os.Clearenv()

	os.Setenv("PORT", "not-a-number")
	os.Setenv("DATABASE_URL", "file:game.db")
	os.Setenv("MODERATOR_KEY_SALT", "salt")

	if _, err := ParseFlags([]string{}); err == nil {
		t.Error("Expected error for invalid PORT, got nil")
	}
}
