package main

import (
	"context"
	"encoding/json"
	"fmt"
	"midcar/internal/config"
	"midcar/internal/inventory"
	"midcar/pkg/domain"
	"midcar/pkg/logger"
	"os"

	"github.com/google/uuid"
	"github.com/spf13/cobra"
	"go.uber.org/zap"
)

// vinCommand groups the VIN helpers: decoding a VIN on the spot and queueing
// the background decode of a stored vehicle.
func vinCommand(cfg *config.Config) *cobra.Command {
	cmd := &cobra.Command{
		Use:   "vin",
		Short: "VIN decoding tools",
	}

	cmd.AddCommand(&cobra.Command{
		Use:   "decode <VIN>",
		Short: "Decodes a VIN and prints the vehicle attributes as JSON",
		Args:  cobra.ExactArgs(1),
		Run: func(cmd *cobra.Command, args []string) {
			ctx := context.Background()

			decoded, err := newVINDecoder(cfg).Decode(ctx, args[0])
			if err != nil {
				logger.Fatal(ctx, "could not decode vin", zap.String("vin", args[0]), zap.Error(err))
			}

			enc := json.NewEncoder(os.Stdout)
			enc.SetIndent("", "  ")
			if err := enc.Encode(decoded); err != nil {
				logger.Fatal(ctx, "could not print decoded vin", zap.Error(err))
			}
		},
	})

	cmd.AddCommand(&cobra.Command{
		Use:   "enqueue <vehicle-id>",
		Short: "Queues the background VIN decode of a vehicle",
		Args:  cobra.ExactArgs(1),
		Run: func(cmd *cobra.Command, args []string) {
			ctx := context.Background()

			id, err := uuid.Parse(args[0])
			if err != nil {
				logger.Fatal(ctx, "invalid vehicle id", zap.String("id", args[0]), zap.Error(err))
			}

			strg, closeStrg := getPostgres(ctx, cfg)
			defer closeStrg()

			// photos are never touched when queueing a decode
			inv := inventory.New(strg, newVINDecoder(cfg), nil, nil, inventory.NewOptions(cfg))
			added, err := inv.EnqueueVINDecode(ctx, domain.VehicleID(id))
			if err != nil {
				logger.Fatal(ctx, "could not enqueue vin decode", zap.Error(err))
			}

			if added {
				fmt.Println("vin decode queued")
			} else {
				fmt.Println("vin decode already pending")
			}
		},
	})

	return cmd
}
