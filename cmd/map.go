package cmd

import (
	"context"
	"fmt"
	"strconv"
	"strings"
	"time"

	cobra "github.com/spf13/cobra"

	display "github.com/inference-gateway/touchbridge/internal/display"
	domain "github.com/inference-gateway/touchbridge/internal/domain"
	storage "github.com/inference-gateway/touchbridge/internal/infra/storage"
)

var mapCmd = &cobra.Command{
	Use:   "map X,Y [X2,Y2]",
	Short: "Map surface coordinates to device coordinates",
	Long: `Map one point, or a swipe between two points, from surface pixels to the
device's native pixels without sending anything to the device.

The device is either a stored profile (--device-id) or described inline
(--os, --device, --ios-convention).`,
	Example: `  touchbridge map --os android --device 1080x2400 --surface 800x400 --orientation landscape 400,200
  touchbridge map --device-id iphone-15 --surface 400x800 100,700 100,100`,
	Args: cobra.RangeArgs(1, 2),
	RunE: runMap,
}

func init() {
	mapCmd.Flags().String("device-id", "", "Stored device profile to map for")
	mapCmd.Flags().String("os", "", "Device platform: android or ios")
	mapCmd.Flags().String("device", "", "Native device size as WIDTHxHEIGHT")
	mapCmd.Flags().String("ios-convention", "", "iOS landscape convention: standard or custom_agent")
	mapCmd.Flags().String("surface", "", "Surface size as WIDTHxHEIGHT")
	mapCmd.Flags().String("orientation", "portrait", "Surface orientation: portrait or landscape")
	_ = mapCmd.MarkFlagRequired("surface")

	rootCmd.AddCommand(mapCmd)
}

func runMap(cmd *cobra.Command, args []string) error {
	surfaceW, surfaceH, err := parseSize(mustGetString(cmd, "surface"))
	if err != nil {
		return fmt.Errorf("invalid --surface: %w", err)
	}

	orientation, err := domain.ParseOrientation(mustGetString(cmd, "orientation"))
	if err != nil {
		return err
	}

	profile, err := profileFromFlags(cmd)
	if err != nil {
		return err
	}

	dc := profile.DisplayContext(surfaceW, surfaceH, orientation)
	out := cmd.OutOrStdout()

	from, err := parsePoint(args[0])
	if err != nil {
		return err
	}

	if len(args) == 1 {
		p, err := display.MapPoint(from, dc)
		if err != nil {
			return err
		}
		fmt.Fprintf(out, "%s -> %s\n", from, p)
		return nil
	}

	to, err := parsePoint(args[1])
	if err != nil {
		return err
	}

	mappedFrom, mappedTo, err := display.MapSwipe(from, to, dc)
	if err != nil {
		return err
	}
	fmt.Fprintf(out, "%s -> %s\n", from, mappedFrom)
	fmt.Fprintf(out, "%s -> %s\n", to, mappedTo)
	return nil
}

// profileFromFlags loads --device-id from storage or builds a profile from
// the inline device flags
func profileFromFlags(cmd *cobra.Command) (domain.DeviceProfile, error) {
	if deviceID := mustGetString(cmd, "device-id"); deviceID != "" {
		cfg, err := getConfigFromViper()
		if err != nil {
			return domain.DeviceProfile{}, fmt.Errorf("failed to load config: %w", err)
		}

		devices, err := storage.NewDeviceStore(cfg.Storage)
		if err != nil {
			return domain.DeviceProfile{}, fmt.Errorf("failed to open device storage: %w", err)
		}
		defer func() { _ = devices.Close() }()

		ctx, cancel := context.WithTimeout(cmd.Context(), 10*time.Second)
		defer cancel()
		return devices.GetDevice(ctx, deviceID)
	}

	platform, err := domain.ParsePlatform(mustGetString(cmd, "os"))
	if err != nil {
		return domain.DeviceProfile{}, err
	}

	width, height, err := parseSize(mustGetString(cmd, "device"))
	if err != nil {
		return domain.DeviceProfile{}, fmt.Errorf("invalid --device: %w", err)
	}

	profile := domain.DeviceProfile{
		ID:           "inline",
		OS:           platform,
		NativeWidth:  width,
		NativeHeight: height,
	}

	if raw := mustGetString(cmd, "ios-convention"); raw != "" {
		convention, err := domain.ParseIOSConvention(raw)
		if err != nil {
			return domain.DeviceProfile{}, err
		}
		profile.IOSConvention = &convention
	}

	return profile, nil
}

func mustGetString(cmd *cobra.Command, name string) string {
	v, _ := cmd.Flags().GetString(name)
	return v
}

// parseSize parses WIDTHxHEIGHT
func parseSize(s string) (float64, float64, error) {
	w, h, ok := strings.Cut(strings.ToLower(strings.TrimSpace(s)), "x")
	if !ok {
		return 0, 0, fmt.Errorf("expected WIDTHxHEIGHT, got %q", s)
	}
	return parsePair(w, h)
}

// parsePoint parses X,Y
func parsePoint(s string) (domain.Point, error) {
	x, y, ok := strings.Cut(strings.TrimSpace(s), ",")
	if !ok {
		return domain.Point{}, fmt.Errorf("expected X,Y, got %q", s)
	}
	px, py, err := parsePair(x, y)
	if err != nil {
		return domain.Point{}, err
	}
	return domain.Point{X: px, Y: py}, nil
}

func parsePair(a, b string) (float64, float64, error) {
	x, err := strconv.ParseFloat(strings.TrimSpace(a), 64)
	if err != nil {
		return 0, 0, fmt.Errorf("invalid number %q", a)
	}
	y, err := strconv.ParseFloat(strings.TrimSpace(b), 64)
	if err != nil {
		return 0, 0, fmt.Errorf("invalid number %q", b)
	}
	return x, y, nil
}
