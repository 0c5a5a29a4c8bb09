package config

import (
	"os"
	"path/filepath"
	"testing"
	"time"
)

func TestLoad(t *testing.T) {
	t.Run("missing file yields defaults", func(t *testing.T) {
		s, err := Load(filepath.Join(t.TempDir(), "config.yaml"))
		if err != nil {
			t.Fatalf("Load() error = %v", err)
		}
		if s.Host != DefaultHost {
			t.Errorf("Host = %q, want %q", s.Host, DefaultHost)
		}
		if s.Port != DefaultPort {
			t.Errorf("Port = %d, want %d", s.Port, DefaultPort)
		}
		if s.TimeoutSeconds != DefaultTimeoutSeconds {
			t.Errorf("TimeoutSeconds = %d, want %d", s.TimeoutSeconds, DefaultTimeoutSeconds)
		}
		if s.RestartScript != DefaultRestartScript {
			t.Errorf("RestartScript = %q, want %q", s.RestartScript, DefaultRestartScript)
		}
	})

	t.Run("file values override defaults", func(t *testing.T) {
		path := filepath.Join(t.TempDir(), "config.yaml")
		content := "host: proxy.local\nport: 41000\ntimeout_seconds: 10\nrestart_script: /usr/local/bin/restart.sh\n"
		if err := os.WriteFile(path, []byte(content), 0644); err != nil {
			t.Fatalf("write config: %v", err)
		}

		s, err := Load(path)
		if err != nil {
			t.Fatalf("Load() error = %v", err)
		}
		if s.Host != "proxy.local" {
			t.Errorf("Host = %q, want %q", s.Host, "proxy.local")
		}
		if s.Port != 41000 {
			t.Errorf("Port = %d, want 41000", s.Port)
		}
		if s.Timeout() != 10*time.Second {
			t.Errorf("Timeout() = %v, want 10s", s.Timeout())
		}
		if s.RestartScript != "/usr/local/bin/restart.sh" {
			t.Errorf("RestartScript = %q, want the configured path", s.RestartScript)
		}
	})

	t.Run("partial file keeps defaults for the rest", func(t *testing.T) {
		path := filepath.Join(t.TempDir(), "config.yaml")
		if err := os.WriteFile(path, []byte("port: 41001\n"), 0644); err != nil {
			t.Fatalf("write config: %v", err)
		}

		s, err := Load(path)
		if err != nil {
			t.Fatalf("Load() error = %v", err)
		}
		if s.Port != 41001 {
			t.Errorf("Port = %d, want 41001", s.Port)
		}
		if s.Host != DefaultHost {
			t.Errorf("Host = %q, want %q", s.Host, DefaultHost)
		}
	})

	t.Run("invalid yaml is an error", func(t *testing.T) {
		path := filepath.Join(t.TempDir(), "config.yaml")
		if err := os.WriteFile(path, []byte("host: [unclosed\n"), 0644); err != nil {
			t.Fatalf("write config: %v", err)
		}

		if _, err := Load(path); err == nil {
			t.Error("Load() expected error for invalid yaml")
		}
	})
}

func TestSettings_Addr(t *testing.T) {
	s := &Settings{Host: "127.0.0.1", Port: 40005}
	if got := s.Addr(); got != "127.0.0.1:40005" {
		t.Errorf("Addr() = %q, want %q", got, "127.0.0.1:40005")
	}
}

func TestPaths_EnsureDirectories(t *testing.T) {
	tmpDir := t.TempDir()
	p := &Paths{
		Home: filepath.Join(tmpDir, ".xmproxyctl"),
		Logs: filepath.Join(tmpDir, ".xmproxyctl", "logs"),
	}

	if err := p.EnsureDirectories(); err != nil {
		t.Fatalf("EnsureDirectories() error = %v", err)
	}
	for _, dir := range []string{p.Home, p.Logs} {
		info, err := os.Stat(dir)
		if err != nil || !info.IsDir() {
			t.Errorf("directory %s was not created", dir)
		}
	}
}
