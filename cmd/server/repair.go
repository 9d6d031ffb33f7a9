package main

import (
	"context"
	"encoding/json"
	"fmt"

	"github.com/spf13/cobra"

	"github.com/KirkDiggler/toon-tailor/internal/config"
	"github.com/KirkDiggler/toon-tailor/internal/errors"
	characterrepo "github.com/KirkDiggler/toon-tailor/internal/repositories/character"
	"github.com/KirkDiggler/toon-tailor/internal/storage/backend"
)

var applyRepair bool

var repairCmd = &cobra.Command{
	Use:   "repair",
	Short: "Find and drop corrupted stored characters",
	Long: `Scan the stored character collection and report entries that cannot be
loaded. With --apply the collection is rewritten without them.`,
	RunE: runRepair,
}

func init() {
	repairCmd.Flags().BoolVar(&applyRepair, "apply", false, "Rewrite the collection without the corrupted entries")
	repairCmd.Flags().StringVar(&storage, "storage", "", "storage backend (overrides TOON_TAILOR_STORAGE)")
	repairCmd.Flags().StringVar(&envFile, "env-file", config.DefaultEnvFile, "env file to load when present")
	rootCmd.AddCommand(repairCmd)
}

func runRepair(_ *cobra.Command, _ []string) error {
	cfg, err := loadConfig()
	if err != nil {
		return fmt.Errorf("failed to load config: %w", err)
	}

	ctx := context.Background()
	store, err := backend.Open(ctx, cfg.BackendConfig())
	if err != nil {
		return fmt.Errorf("failed to open %s storage: %w", cfg.Storage, err)
	}
	defer func() {
		_ = store.Close() // nolint:errcheck // safe to ignore in cleanup
	}()

	key := cfg.RepositoryKey()
	data, err := store.Get(ctx, key)
	if err != nil {
		if errors.IsNotFound(err) {
			fmt.Printf("No characters stored under %s\n", key)
			return nil
		}
		return fmt.Errorf("failed to read %s: %w", key, err)
	}

	fmt.Printf("Scanning %s (%s)...\n", key, cfg.Storage)
	report := characterrepo.Inspect(data)

	if report.Unreadable {
		fmt.Printf("✗ Stored value is not a character list: %s\n", report.Detail)
	} else {
		fmt.Printf("Checked %d entries, kept %d\n", report.Entries, len(report.Kept))
		for _, d := range report.Dropped {
			if d.ID != "" {
				fmt.Printf("✗ Entry %d (%s): %s\n", d.Index, d.ID, d.Reason)
			} else {
				fmt.Printf("✗ Entry %d: %s\n", d.Index, d.Reason)
			}
		}
	}

	if report.Clean() {
		fmt.Println("No corrupted data found!")
		return nil
	}
	if !applyRepair {
		fmt.Println("\nRun again with --apply to rewrite the collection")
		return nil
	}

	repaired, err := json.Marshal(report.Kept)
	if err != nil {
		return fmt.Errorf("failed to encode characters: %w", err)
	}
	if err := store.Set(ctx, key, repaired); err != nil {
		return fmt.Errorf("failed to write %s: %w", key, err)
	}

	fmt.Printf("\nCleanup complete, %d characters remain\n", len(report.Kept))
	return nil
}
