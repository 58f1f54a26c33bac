package cmd

import (
	"bytes"
	"path/filepath"
	"testing"

	cobra "github.com/spf13/cobra"
	pflag "github.com/spf13/pflag"
	assert "github.com/stretchr/testify/assert"
	require "github.com/stretchr/testify/require"

	domain "github.com/inference-gateway/touchbridge/internal/domain"
)

// resetFlags restores subcommand flags between runs of the shared rootCmd
func resetFlags(c *cobra.Command) {
	for _, sub := range c.Commands() {
		sub.LocalNonPersistentFlags().VisitAll(func(f *pflag.Flag) {
			_ = f.Value.Set(f.DefValue)
			f.Changed = false
		})
		resetFlags(sub)
	}
}

func executeCommand(t *testing.T, args ...string) (string, error) {
	t.Helper()

	t.Setenv("TOUCHBRIDGE_STORAGE_SQLITE_PATH", filepath.Join(t.TempDir(), "devices.db"))
	resetFlags(rootCmd)

	var out bytes.Buffer
	rootCmd.SetOut(&out)
	rootCmd.SetErr(&out)
	rootCmd.SetArgs(append([]string{"--config", filepath.Join(t.TempDir(), "config.yaml")}, args...))

	err := rootCmd.Execute()
	return out.String(), err
}

func TestParseHelpers(t *testing.T) {
	w, h, err := parseSize("1080x2400")
	require.NoError(t, err)
	assert.Equal(t, 1080.0, w)
	assert.Equal(t, 2400.0, h)

	_, _, err = parseSize("1080,2400")
	assert.Error(t, err)

	p, err := parsePoint(" 12.5, 40 ")
	require.NoError(t, err)
	assert.Equal(t, domain.Point{X: 12.5, Y: 40}, p)

	_, err = parsePoint("12;40")
	assert.Error(t, err)

	s, err := parseSample("1,2@350")
	require.NoError(t, err)
	assert.Equal(t, domain.PointerSample{Position: domain.Point{X: 1, Y: 2}, TimestampMs: 350}, s)

	_, err = parseSample("1,2")
	assert.Error(t, err)
	_, err = parseSample("1,2@soon")
	assert.Error(t, err)
}

func TestVersionCommand(t *testing.T) {
	out, err := executeCommand(t, "version")
	require.NoError(t, err)
	assert.Contains(t, out, "touchbridge version")
}

func TestClassifyCommand(t *testing.T) {
	tests := []struct {
		name string
		args []string
		want string
	}{
		{name: "tap", args: []string{"100,100@0", "100,100@120"}, want: "tap at (100, 100)"},
		{name: "touch and hold", args: []string{"100,100@0", "100,100@500"}, want: "touch_and_hold at (100, 100)"},
		{name: "swipe", args: []string{"100,100@0", "300,100@200"}, want: "swipe (100, 100) -> (300, 100)"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			out, err := executeCommand(t, append([]string{"classify"}, tt.args...)...)
			require.NoError(t, err)
			assert.Contains(t, out, tt.want)
		})
	}
}

func TestMapCommand(t *testing.T) {
	tests := []struct {
		name    string
		args    []string
		want    []string
		wantErr bool
	}{
		{
			name: "android landscape",
			args: []string{"--os", "android", "--device", "1080x2400", "--surface", "800x400", "--orientation", "landscape", "400,200"},
			want: []string{"(400, 200) -> (540, 1200)"},
		},
		{
			name: "ios standard landscape",
			args: []string{"--os", "ios", "--ios-convention", "standard", "--device", "1080x2400", "--surface", "800x400", "--orientation", "landscape", "400,200"},
			want: []string{"(400, 200) -> (1200, 540)"},
		},
		{
			name: "portrait swipe",
			args: []string{"--os", "android", "--device", "1080x2400", "--surface", "800x400", "100,100", "300,100"},
			want: []string{"(100, 100) -> (135, 600)", "(300, 100) -> (405, 600)"},
		},
		{
			name:    "ios without convention",
			args:    []string{"--os", "ios", "--device", "1080x2400", "--surface", "800x400", "400,200"},
			wantErr: true,
		},
		{
			name:    "zero surface",
			args:    []string{"--os", "android", "--device", "1080x2400", "--surface", "0x400", "400,200"},
			wantErr: true,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			out, err := executeCommand(t, append([]string{"map"}, tt.args...)...)
			if tt.wantErr {
				assert.ErrorIs(t, err, domain.ErrInvalidDisplayContext)
				return
			}
			require.NoError(t, err)
			for _, want := range tt.want {
				assert.Contains(t, out, want)
			}
		})
	}
}

func TestConfigCommands(t *testing.T) {
	path := filepath.Join(t.TempDir(), "nested", "config.yaml")

	resetFlags(rootCmd)
	var out bytes.Buffer
	rootCmd.SetOut(&out)
	rootCmd.SetErr(&out)

	rootCmd.SetArgs([]string{"--config", path, "config", "init"})
	require.NoError(t, rootCmd.Execute())
	assert.FileExists(t, path)

	resetFlags(rootCmd)
	rootCmd.SetArgs([]string{"--config", path, "config", "init"})
	assert.ErrorContains(t, rootCmd.Execute(), "already exists")

	resetFlags(rootCmd)
	out.Reset()
	rootCmd.SetArgs([]string{"--config", path, "config", "show"})
	require.NoError(t, rootCmd.Execute())
	assert.Contains(t, out.String(), "hold_threshold_ms: 500")
	assert.Contains(t, out.String(), "movement_tolerance: 0.1")
}

func TestDevicesCommands(t *testing.T) {
	dbPath := filepath.Join(t.TempDir(), "devices.db")
	configPath := filepath.Join(t.TempDir(), "config.yaml")

	run := func(args ...string) (string, error) {
		t.Setenv("TOUCHBRIDGE_STORAGE_SQLITE_PATH", dbPath)
		resetFlags(rootCmd)

		var out bytes.Buffer
		rootCmd.SetOut(&out)
		rootCmd.SetErr(&out)
		rootCmd.SetArgs(append([]string{"--config", configPath}, args...))
		err := rootCmd.Execute()
		return out.String(), err
	}

	out, err := run("devices", "list")
	require.NoError(t, err)
	assert.Contains(t, out, "No devices registered.")

	out, err = run("devices", "add", "pixel-7", "--os", "android", "--device", "1080x2400", "--name", "Pixel 7", "--session", "s-1")
	require.NoError(t, err)
	assert.Contains(t, out, "Saved device pixel-7")

	_, err = run("devices", "add", "iphone", "--os", "ios", "--device", "1179x2556")
	assert.ErrorIs(t, err, domain.ErrInvalidDisplayContext)

	out, err = run("devices", "list")
	require.NoError(t, err)
	assert.Contains(t, out, "pixel-7")
	assert.Contains(t, out, "Pixel 7")
	assert.NotContains(t, out, "iphone")

	out, err = run("map", "--device-id", "pixel-7", "--surface", "800x400", "400,200")
	require.NoError(t, err)
	assert.Contains(t, out, "-> (540, 1200)")

	out, err = run("devices", "remove", "pixel-7")
	require.NoError(t, err)
	assert.Contains(t, out, "Removed device pixel-7")

	_, err = run("devices", "remove", "pixel-7")
	assert.ErrorIs(t, err, domain.ErrDeviceNotFound)
}
