package client

import (
	"context"
	"fmt"
	"sort"
	"strings"

	"github.com/spf13/cobra"

	apiv1alpha1 "github.com/KirkDiggler/toon-tailor/internal/api/toontailor/v1alpha1"
)

var catalogCmd = &cobra.Command{
	Use:   "catalog",
	Short: "Show the character options",
	Long:  `Show races, classes, genders, attributes, hair colours, and equipment offered by the server.`,
	RunE:  runCatalog,
}

func runCatalog(_ *cobra.Command, _ []string) error {
	client, cleanup, err := createCharacterClient()
	if err != nil {
		return err
	}
	defer cleanup()

	ctx, cancel := context.WithTimeout(context.Background(), timeout)
	defer cancel()

	resp, err := client.GetCatalog(ctx, &apiv1alpha1.GetCatalogRequest{})
	if err != nil {
		return fmt.Errorf("failed to get catalog: %w", err)
	}

	data := resp.Catalog
	fmt.Printf("Races:   %s\n", strings.Join(data.Races, ", "))
	fmt.Printf("Classes: %s\n", strings.Join(data.Classes, ", "))
	fmt.Printf("Genders: %s\n", strings.Join(data.Genders, ", "))

	fmt.Printf("\nAttributes:\n")
	for _, attr := range data.Attributes {
		fmt.Printf("  %-14s %s\n", attr.Name, attr.Description)
	}

	fmt.Printf("\nHair colours:\n")
	for _, hc := range data.HairColors {
		fmt.Printf("  %-4s %s\n", hc.Code, hc.Name)
	}

	slots := make([]string, 0, len(data.Equipment))
	for slot := range data.Equipment {
		slots = append(slots, slot)
	}
	sort.Strings(slots)

	fmt.Printf("\nEquipment:\n")
	for _, slot := range slots {
		keys := make([]string, 0, len(data.Equipment[slot]))
		for _, opt := range data.Equipment[slot] {
			keys = append(keys, opt.Key)
		}
		fmt.Printf("  %-10s %s\n", slot, strings.Join(keys, ", "))
	}

	return nil
}
