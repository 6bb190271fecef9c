package config

import (
	"os"
	"path/filepath"
	"testing"
	"time"

	"github.com/google/go-cmp/cmp"
	"github.com/stretchr/testify/require"
)

func TestMustInitConfig_Closure(t *testing.T) {
	initRequest := func(envFile string, env map[string]string, want Config) func(t *testing.T) {
		return func(t *testing.T) {
			for key, value := range env {
				t.Setenv(key, value)
			}

			got := MustInitConfig(envFile)
			if diff := cmp.Diff(want, got); diff != "" {
				t.Fatalf("MustInitConfig() mismatch (-want +got):\n%s", diff)
			}
		}
	}

	dir := t.TempDir()
	envFile := filepath.Join(dir, ".env")
	require.NoError(t, os.WriteFile(envFile, []byte(
		"LOG_LEVEL=debug\nHTTP_PORT=9090\nREDIS_ADDR=localhost:6379\n"), 0o600))

	t.Run("defaults_without_file", initRequest(filepath.Join(dir, "missing.env"), nil, Config{
		LogLevel: "info",
		HTTP:     HTTP{Port: 8080, Timeout: 10 * time.Second, RateLimitRPS: 20},
	}))

	t.Run("file_and_sources_from_env", initRequest(envFile, map[string]string{
		"SOURCES": `[{"name":"via_3","path":"data/RS_Via-3.xml"},{"name":"via_ow","path":"data/RS_ViaOW.xml"}]`,
	}, Config{
		LogLevel: "debug",
		HTTP:     HTTP{Port: 9090, Timeout: 10 * time.Second, RateLimitRPS: 20},
		Redis:    Redis{Addr: "localhost:6379"},
		Sources: Sources{Files: []SourceFile{
			{Name: "via_3", Path: "data/RS_Via-3.xml"},
			{Name: "via_ow", Path: "data/RS_ViaOW.xml"},
		}},
	}))
}
