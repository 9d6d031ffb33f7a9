// Package client provides commands that call the Toon Tailor gRPC service
package client

import (
	"fmt"
	"sort"
	"strings"
	"time"

	"github.com/spf13/cobra"
	"google.golang.org/grpc"
	"google.golang.org/grpc/credentials/insecure"

	apiv1alpha1 "github.com/KirkDiggler/toon-tailor/internal/api/toontailor/v1alpha1"
	"github.com/KirkDiggler/toon-tailor/internal/entities"
)

var (
	// Connection flags
	serverAddr string
	timeout    time.Duration
)

// ClientCmd is the root command for all client commands
var ClientCmd = &cobra.Command{
	Use:   "client",
	Short: "Client commands for the Toon Tailor API",
	Long:  `Client commands call a running Toon Tailor server over gRPC.`,
}

func init() {
	ClientCmd.PersistentFlags().StringVar(&serverAddr, "server", "localhost:50051", "gRPC server address")
	ClientCmd.PersistentFlags().DurationVar(&timeout, "timeout", 30*time.Second, "Request timeout")

	ClientCmd.AddCommand(catalogCmd)

	// Collection commands
	ClientCmd.AddCommand(newCharacterCmd)
	ClientCmd.AddCommand(listCharactersCmd)
	ClientCmd.AddCommand(getCharacterCmd)
	ClientCmd.AddCommand(deleteCharacterCmd)

	// Edit commands
	ClientCmd.AddCommand(setOriginCmd)
	ClientCmd.AddCommand(setAttributeCmd)
	ClientCmd.AddCommand(rollAttributesCmd)
	ClientCmd.AddCommand(setAppearanceCmd)
	ClientCmd.AddCommand(setEquipmentCmd)
	ClientCmd.AddCommand(toggleAbilityCmd)

	// Generation and files
	ClientCmd.AddCommand(generateCmd)
	ClientCmd.AddCommand(importCmd)
	ClientCmd.AddCommand(exportCmd)
}

// createConnection creates a gRPC connection to the server
func createConnection() (*grpc.ClientConn, error) {
	conn, err := grpc.NewClient(serverAddr,
		grpc.WithTransportCredentials(insecure.NewCredentials()),
	)
	if err != nil {
		return nil, fmt.Errorf("failed to connect to server: %w", err)
	}

	return conn, nil
}

// createCharacterClient creates a character service client
func createCharacterClient() (*apiv1alpha1.Client, func(), error) {
	conn, err := createConnection()
	if err != nil {
		return nil, nil, err
	}

	cleanup := func() {
		_ = conn.Close() // nolint:errcheck // safe to ignore in cleanup
	}

	return apiv1alpha1.NewClient(conn), cleanup, nil
}

func printCharacter(c *entities.Character) {
	if c == nil {
		return
	}
	name := c.Name
	if name == "" {
		name = "(unnamed)"
	}
	fmt.Printf("%s (ID: %s)\n", name, c.ID)
	fmt.Printf("   %s %s, %s, level %d\n", c.Race, c.Class, c.Gender, c.Level)

	if len(c.Attributes) > 0 {
		keys := make([]string, 0, len(c.Attributes))
		for k := range c.Attributes {
			keys = append(keys, k)
		}
		sort.Strings(keys)
		parts := make([]string, 0, len(keys))
		for _, k := range keys {
			parts = append(parts, fmt.Sprintf("%s %d", k, c.Attributes[k]))
		}
		fmt.Printf("   Attributes: %s\n", strings.Join(parts, ", "))
	}

	a := c.Appearance
	fmt.Printf("   Appearance: hair %s, eyes %s, skin %s, height %d\n", a.HairColor, a.EyeColor, a.SkinTone, a.Height)

	if len(c.SelectedAbilities) > 0 {
		fmt.Printf("   Abilities: %s\n", strings.Join(c.SelectedAbilities, ", "))
	}
}
