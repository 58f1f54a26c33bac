package cmd

import (
	"context"
	"encoding/json"
	"fmt"
	"time"

	cobra "github.com/spf13/cobra"

	storage "github.com/inference-gateway/touchbridge/internal/infra/storage"
)

var devicesCmd = &cobra.Command{
	Use:   "devices",
	Short: "Manage device profiles",
	Long:  `List, add and remove the device profiles stored in the configured storage backend.`,
}

var devicesListCmd = &cobra.Command{
	Use:   "list",
	Short: "List device profiles",
	RunE: func(cmd *cobra.Command, args []string) error {
		return withDeviceStore(cmd, func(ctx context.Context, devices storage.DeviceStore) error {
			profiles, err := devices.ListDevices(ctx)
			if err != nil {
				return fmt.Errorf("failed to list devices: %w", err)
			}

			out := cmd.OutOrStdout()
			if asJSON, _ := cmd.Flags().GetBool("json"); asJSON {
				encoder := json.NewEncoder(out)
				encoder.SetIndent("", "  ")
				return encoder.Encode(profiles)
			}

			if len(profiles) == 0 {
				fmt.Fprintln(out, "No devices registered.")
				return nil
			}

			for _, p := range profiles {
				convention := "-"
				if p.IOSConvention != nil {
					convention = string(*p.IOSConvention)
				}
				fmt.Fprintf(out, "%-20s %-8s %5gx%-5g %-13s %s\n", p.ID, p.OS, p.NativeWidth, p.NativeHeight, convention, p.Name)
			}
			return nil
		})
	},
}

var devicesAddCmd = &cobra.Command{
	Use:   "add ID",
	Short: "Add or update a device profile",
	Example: `  touchbridge devices add pixel-7 --os android --device 1080x2400 --session 6f1c...
  touchbridge devices add iphone-15 --os ios --device 1179x2556 --ios-convention standard`,
	Args: cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		profile, err := profileFromFlags(cmd)
		if err != nil {
			return err
		}
		profile.ID = args[0]
		profile.Name = mustGetString(cmd, "name")
		profile.SessionID = mustGetString(cmd, "session")

		if err := profile.Validate(); err != nil {
			return err
		}

		return withDeviceStore(cmd, func(ctx context.Context, devices storage.DeviceStore) error {
			if err := devices.SaveDevice(ctx, profile); err != nil {
				return fmt.Errorf("failed to save device: %w", err)
			}
			fmt.Fprintf(cmd.OutOrStdout(), "Saved device %s\n", profile.ID)
			return nil
		})
	},
}

var devicesRemoveCmd = &cobra.Command{
	Use:     "remove ID",
	Aliases: []string{"rm"},
	Short:   "Remove a device profile",
	Args:    cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		return withDeviceStore(cmd, func(ctx context.Context, devices storage.DeviceStore) error {
			if err := devices.DeleteDevice(ctx, args[0]); err != nil {
				return fmt.Errorf("failed to remove device %s: %w", args[0], err)
			}
			fmt.Fprintf(cmd.OutOrStdout(), "Removed device %s\n", args[0])
			return nil
		})
	},
}

func init() {
	devicesListCmd.Flags().Bool("json", false, "Output as JSON")

	devicesAddCmd.Flags().String("name", "", "Human readable device name")
	devicesAddCmd.Flags().String("os", "", "Device platform: android or ios")
	devicesAddCmd.Flags().String("device", "", "Native device size as WIDTHxHEIGHT")
	devicesAddCmd.Flags().String("ios-convention", "", "iOS landscape convention: standard or custom_agent")
	devicesAddCmd.Flags().String("session", "", "Appium session ID commands are sent to")
	_ = devicesAddCmd.MarkFlagRequired("os")
	_ = devicesAddCmd.MarkFlagRequired("device")

	devicesCmd.AddCommand(devicesListCmd)
	devicesCmd.AddCommand(devicesAddCmd)
	devicesCmd.AddCommand(devicesRemoveCmd)
	rootCmd.AddCommand(devicesCmd)
}

func withDeviceStore(cmd *cobra.Command, fn func(ctx context.Context, devices storage.DeviceStore) error) error {
	cfg, err := getConfigFromViper()
	if err != nil {
		return fmt.Errorf("failed to load config: %w", err)
	}

	devices, err := storage.NewDeviceStore(cfg.Storage)
	if err != nil {
		return fmt.Errorf("failed to open device storage: %w", err)
	}
	defer func() { _ = devices.Close() }()

	ctx, cancel := context.WithTimeout(cmd.Context(), 30*time.Second)
	defer cancel()

	return fn(ctx, devices)
}
