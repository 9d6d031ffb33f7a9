package client

import (
	"context"
	"fmt"
	"os"
	"path/filepath"

	"github.com/spf13/cobra"

	apiv1alpha1 "github.com/KirkDiggler/toon-tailor/internal/api/toontailor/v1alpha1"
)

var (
	generatePrompt string
	generateSave   bool

	importFile string
	importMode string
	importSave bool

	exportID  string
	exportDir string
)

var generateCmd = &cobra.Command{
	Use:   "generate",
	Short: "Generate a character from a description",
	Long:  `Ask the AI service for a character matching a free-text description.`,
	RunE:  runGenerate,
}

var importCmd = &cobra.Command{
	Use:   "import",
	Short: "Import a character file",
	RunE:  runImport,
}

var exportCmd = &cobra.Command{
	Use:   "export",
	Short: "Export a character to a JSON file",
	RunE:  runExport,
}

func init() {
	generateCmd.Flags().StringVar(&generatePrompt, "prompt", "", "Character description (required)")
	generateCmd.Flags().BoolVar(&generateSave, "save", false, "Save the generated character")
	_ = generateCmd.MarkFlagRequired("prompt") // nolint:errcheck // safe to ignore in init

	importCmd.Flags().StringVar(&importFile, "file", "", "Character file (required)")
	importCmd.Flags().StringVar(&importMode, "mode", "", "Import mode: strict or lenient (server default when empty)")
	importCmd.Flags().BoolVar(&importSave, "save", true, "Save the imported character")
	_ = importCmd.MarkFlagRequired("file") // nolint:errcheck // safe to ignore in init

	exportCmd.Flags().StringVar(&exportID, "id", "", "Character ID (required)")
	exportCmd.Flags().StringVar(&exportDir, "dir", ".", "Directory to write the file to")
	_ = exportCmd.MarkFlagRequired("id") // nolint:errcheck // safe to ignore in init
}

func runGenerate(_ *cobra.Command, _ []string) error {
	client, cleanup, err := createCharacterClient()
	if err != nil {
		return err
	}
	defer cleanup()

	ctx, cancel := context.WithTimeout(context.Background(), timeout)
	defer cancel()

	resp, err := client.GenerateCharacter(ctx, &apiv1alpha1.GenerateCharacterRequest{
		Prompt: generatePrompt,
		Save:   generateSave,
	})
	if err != nil {
		return fmt.Errorf("failed to generate character: %w", err)
	}

	fmt.Printf("✨ Generated by %s\n\n", resp.Model)
	printCharacter(resp.Character)
	return nil
}

func runImport(_ *cobra.Command, _ []string) error {
	data, err := os.ReadFile(importFile)
	if err != nil {
		return fmt.Errorf("failed to read %s: %w", importFile, err)
	}

	client, cleanup, err := createCharacterClient()
	if err != nil {
		return err
	}
	defer cleanup()

	ctx, cancel := context.WithTimeout(context.Background(), timeout)
	defer cancel()

	resp, err := client.ImportCharacter(ctx, &apiv1alpha1.ImportCharacterRequest{
		Data: string(data),
		Mode: importMode,
		Save: importSave,
	})
	if err != nil {
		return fmt.Errorf("failed to import character: %w", err)
	}

	fmt.Printf("✅ Imported %s\n\n", importFile)
	printCharacter(resp.Character)
	return nil
}

func runExport(_ *cobra.Command, _ []string) error {
	client, cleanup, err := createCharacterClient()
	if err != nil {
		return err
	}
	defer cleanup()

	ctx, cancel := context.WithTimeout(context.Background(), timeout)
	defer cancel()

	resp, err := client.ExportCharacter(ctx, &apiv1alpha1.ExportCharacterRequest{CharacterID: exportID})
	if err != nil {
		return fmt.Errorf("failed to export character: %w", err)
	}

	path := filepath.Join(exportDir, filepath.Base(resp.Filename))
	if err := os.WriteFile(path, []byte(resp.Data), 0o600); err != nil {
		return fmt.Errorf("failed to write %s: %w", path, err)
	}

	fmt.Printf("💾 Wrote %s\n", path)
	return nil
}
