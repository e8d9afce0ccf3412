package config

import (
	"os"
	"path/filepath"
	"testing"
	"time"
)

func TestLoadDefaults(t *testing.T) {
	c, err := Load("")
	if err != nil {
		t.Fatalf("load: %v", err)
	}
	if c.DB.Host != "localhost" || c.DB.Port != 5432 {
		t.Errorf("unexpected db defaults %+v", c.DB)
	}
	if c.DB.Name != "supply_chain_db" || c.DB.User != "postgres" || c.DB.Password != "" {
		t.Errorf("unexpected db defaults %+v", c.DB)
	}
	if c.DB.ConnectTimeout != 10*time.Second {
		t.Errorf("unexpected connect timeout %v", c.DB.ConnectTimeout)
	}
	if c.HTTP.Addr != ":8080" {
		t.Errorf("unexpected http addr %q", c.HTTP.Addr)
	}
	if c.Redis.Addr != "" {
		t.Error("redis must be disabled by default")
	}
	if !c.Metrics.Enabled {
		t.Error("metrics must be enabled by default")
	}
}

func TestLoadEnvOverride(t *testing.T) {
	t.Setenv("SCD_DB_HOST", "db.internal")
	t.Setenv("SCD_DB_PORT", "6432")
	t.Setenv("SCD_HTTP_ADDR", ":9090")

	c, err := Load("")
	if err != nil {
		t.Fatalf("load: %v", err)
	}
	if c.DB.Host != "db.internal" || c.DB.Port != 6432 {
		t.Errorf("env override not applied: %+v", c.DB)
	}
	if c.HTTP.Addr != ":9090" {
		t.Errorf("env override not applied: %q", c.HTTP.Addr)
	}
}

func TestLoadFile(t *testing.T) {
	dir := t.TempDir()
	path := filepath.Join(dir, "config.yaml")
	content := "db:\n  name: staging_db\nredis:\n  addr: localhost:6379\n  ttl: 45s\n"
	if err := os.WriteFile(path, []byte(content), 0o600); err != nil {
		t.Fatal(err)
	}

	c, err := Load(path)
	if err != nil {
		t.Fatalf("load: %v", err)
	}
	if c.DB.Name != "staging_db" {
		t.Errorf("file value not applied: %q", c.DB.Name)
	}
	if c.Redis.Addr != "localhost:6379" || c.Redis.TTL != 45*time.Second {
		t.Errorf("file value not applied: %+v", c.Redis)
	}
	// Keys the file omits keep their defaults.
	if c.DB.Host != "localhost" {
		t.Errorf("default lost: %q", c.DB.Host)
	}
}

func TestLoadMissingFileFails(t *testing.T) {
	if _, err := Load(filepath.Join(t.TempDir(), "absent.yaml")); err == nil {
		t.Fatal("expected an error for a missing config file")
	}
}
