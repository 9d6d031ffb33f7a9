package client

import (
	"context"
	"fmt"

	"github.com/spf13/cobra"

	apiv1alpha1 "github.com/KirkDiggler/toon-tailor/internal/api/toontailor/v1alpha1"
)

var (
	newCharacterName string
	newCharacterSave bool
	characterID      string
)

var newCharacterCmd = &cobra.Command{
	Use:   "new",
	Short: "Create a default character",
	Long:  `Create a character with the default choices.`,
	RunE:  runNewCharacter,
}

var listCharactersCmd = &cobra.Command{
	Use:   "list",
	Short: "List saved characters",
	RunE:  runListCharacters,
}

var getCharacterCmd = &cobra.Command{
	Use:   "get",
	Short: "Show a saved character",
	RunE:  runGetCharacter,
}

var deleteCharacterCmd = &cobra.Command{
	Use:   "delete",
	Short: "Delete a saved character",
	RunE:  runDeleteCharacter,
}

func init() {
	newCharacterCmd.Flags().StringVar(&newCharacterName, "name", "", "Character name")
	newCharacterCmd.Flags().BoolVar(&newCharacterSave, "save", true, "Save the character")

	for _, cmd := range []*cobra.Command{getCharacterCmd, deleteCharacterCmd} {
		cmd.Flags().StringVar(&characterID, "id", "", "Character ID (required)")
		_ = cmd.MarkFlagRequired("id") // nolint:errcheck // safe to ignore in init
	}
}

func runNewCharacter(_ *cobra.Command, _ []string) error {
	client, cleanup, err := createCharacterClient()
	if err != nil {
		return err
	}
	defer cleanup()

	ctx, cancel := context.WithTimeout(context.Background(), timeout)
	defer cancel()

	resp, err := client.NewCharacter(ctx, &apiv1alpha1.NewCharacterRequest{
		Name: newCharacterName,
		Save: newCharacterSave,
	})
	if err != nil {
		return fmt.Errorf("failed to create character: %w", err)
	}

	fmt.Printf("✅ Character created\n\n")
	printCharacter(resp.Character)
	return nil
}

func runListCharacters(_ *cobra.Command, _ []string) error {
	client, cleanup, err := createCharacterClient()
	if err != nil {
		return err
	}
	defer cleanup()

	ctx, cancel := context.WithTimeout(context.Background(), timeout)
	defer cancel()

	resp, err := client.ListCharacters(ctx, &apiv1alpha1.ListCharactersRequest{})
	if err != nil {
		return fmt.Errorf("failed to list characters: %w", err)
	}

	fmt.Printf("Found %d characters:\n\n", len(resp.Characters))
	for _, c := range resp.Characters {
		printCharacter(c)
		fmt.Println()
	}
	return nil
}

func runGetCharacter(_ *cobra.Command, _ []string) error {
	client, cleanup, err := createCharacterClient()
	if err != nil {
		return err
	}
	defer cleanup()

	ctx, cancel := context.WithTimeout(context.Background(), timeout)
	defer cancel()

	resp, err := client.GetCharacter(ctx, &apiv1alpha1.GetCharacterRequest{CharacterID: characterID})
	if err != nil {
		return fmt.Errorf("failed to get character: %w", err)
	}

	printCharacter(resp.Character)
	if resp.Abilities != nil {
		fmt.Printf("\n   Class abilities: %v\n", resp.Abilities.Class)
		fmt.Printf("   Race abilities:  %v\n", resp.Abilities.Race)
	}
	return nil
}

func runDeleteCharacter(_ *cobra.Command, _ []string) error {
	client, cleanup, err := createCharacterClient()
	if err != nil {
		return err
	}
	defer cleanup()

	ctx, cancel := context.WithTimeout(context.Background(), timeout)
	defer cancel()

	resp, err := client.DeleteCharacter(ctx, &apiv1alpha1.DeleteCharacterRequest{CharacterID: characterID})
	if err != nil {
		return fmt.Errorf("failed to delete character: %w", err)
	}

	if resp.Deleted {
		fmt.Printf("🗑️  Deleted %s\n", characterID)
	} else {
		fmt.Printf("No character with ID %s\n", characterID)
	}
	return nil
}
