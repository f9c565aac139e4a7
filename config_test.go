package main

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestConfigValidate(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name    string
		cfg     Config
		wantErr bool
	}{
		{"defaults", Config{port: 8080}, false},
		{"tls pair", Config{port: 443, tlsCert: "c.pem", tlsKey: "k.pem"}, false},
		{"cert without key", Config{port: 443, tlsCert: "c.pem"}, true},
		{"port too low", Config{port: 0}, true},
		{"port too high", Config{port: 65536}, true},
		{"pinned date", Config{port: 8080, date: "2026-03-01"}, false},
		{"bad date", Config{port: 8080, date: "March 1st"}, true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			err := tt.cfg.validate()
			if tt.wantErr {
				assert.Error(t, err)
			} else {
				assert.NoError(t, err)
			}
		})
	}
}

func TestConfigScheme(t *testing.T) {
	t.Parallel()

	assert.Equal(t, "http", (&Config{}).scheme())
	assert.Equal(t, "https", (&Config{tlsCert: "c", tlsKey: "k"}).scheme())
}

func TestConfigPuzzleDate(t *testing.T) {
	t.Parallel()

	assert.Equal(t, "2026-03-01", (&Config{date: "2026-03-01"}).puzzleDate())
	assert.Len(t, (&Config{}).puzzleDate(), len("2006-01-02"))
}

func TestConfigLoadCatalog(t *testing.T) {
	t.Parallel()

	c, err := (&Config{}).loadCatalog()
	require.NoError(t, err)
	assert.Positive(t, c.Len())

	_, err = (&Config{catalog: "/nonexistent/movies.json"}).loadCatalog()
	assert.Error(t, err)
}

func TestNewCmd_EnvOverrides(t *testing.T) {
	t.Setenv("CLAPBOARD_PORT", "9090")
	t.Setenv("CLAPBOARD_DATE", "2026-05-05")
	t.Setenv("CLAPBOARD_VERBOSE", "true")

	cfg := &Config{}
	cmd := newCmd(cfg)

	assert.Equal(t, 9090, cfg.port)
	assert.Equal(t, "2026-05-05", cfg.date)
	assert.True(t, cfg.verbose)
	assert.Equal(t, "0.0.0.0", cfg.bind)

	sub, _, err := cmd.Find([]string{"enrich-oscars"})
	require.NoError(t, err)
	assert.Equal(t, "enrich-oscars", sub.Name())
}
