package client

import (
	"context"
	"fmt"

	"github.com/spf13/cobra"

	apiv1alpha1 "github.com/KirkDiggler/toon-tailor/internal/api/toontailor/v1alpha1"
	"github.com/KirkDiggler/toon-tailor/internal/entities"
)

var (
	editID string

	originName   string
	originRace   string
	originClass  string
	originGender string

	attributeName string
	attributeBase int

	appearance entities.Appearance

	equipmentSlot string
	equipmentKey  string

	abilityName string
)

var setOriginCmd = &cobra.Command{
	Use:   "set-origin",
	Short: "Change name, race, class, or gender",
	Long:  `Change a character's origin. Attributes are recalculated and abilities the new origin does not offer are dropped.`,
	RunE:  runSetOrigin,
}

var setAttributeCmd = &cobra.Command{
	Use:   "set-attribute",
	Short: "Set the base value of an attribute",
	RunE:  runSetAttribute,
}

var rollAttributesCmd = &cobra.Command{
	Use:   "roll-attributes",
	Short: "Roll new base attributes (3d6 each)",
	RunE:  runRollAttributes,
}

var setAppearanceCmd = &cobra.Command{
	Use:   "set-appearance",
	Short: "Replace a character's appearance",
	RunE:  runSetAppearance,
}

var setEquipmentCmd = &cobra.Command{
	Use:   "set-equipment",
	Short: "Equip an item in a slot",
	Long:  `Equip an item in a slot. An empty key clears the slot.`,
	RunE:  runSetEquipment,
}

var toggleAbilityCmd = &cobra.Command{
	Use:   "toggle-ability",
	Short: "Select or deselect an ability",
	RunE:  runToggleAbility,
}

func init() {
	for _, cmd := range []*cobra.Command{
		setOriginCmd, setAttributeCmd, rollAttributesCmd,
		setAppearanceCmd, setEquipmentCmd, toggleAbilityCmd,
	} {
		cmd.Flags().StringVar(&editID, "id", "", "Character ID (required)")
		_ = cmd.MarkFlagRequired("id") // nolint:errcheck // safe to ignore in init
	}

	setOriginCmd.Flags().StringVar(&originName, "name", "", "Character name")
	setOriginCmd.Flags().StringVar(&originRace, "race", "", "Race")
	setOriginCmd.Flags().StringVar(&originClass, "class", "", "Class")
	setOriginCmd.Flags().StringVar(&originGender, "gender", "", "Gender")

	setAttributeCmd.Flags().StringVar(&attributeName, "attribute", "", "Attribute key (required)")
	setAttributeCmd.Flags().IntVar(&attributeBase, "base", 0, "Base value before class and race bonuses (required)")
	_ = setAttributeCmd.MarkFlagRequired("attribute") // nolint:errcheck // safe to ignore in init
	_ = setAttributeCmd.MarkFlagRequired("base")      // nolint:errcheck // safe to ignore in init

	f := setAppearanceCmd.Flags()
	f.StringVar(&appearance.HairColor, "hair-color", entities.DefaultHairColor, "Hair colour code")
	f.StringVar(&appearance.EyeColor, "eye-color", entities.DefaultEyeColor, "Eye colour (#RRGGBB)")
	f.StringVar(&appearance.SkinTone, "skin-tone", entities.DefaultSkinTone, "Skin tone (#RRGGBB)")
	f.IntVar(&appearance.Height, "height", entities.DefaultHeight, "Height in centimetres")
	f.StringVar(&appearance.HairStyle, "hair-style", entities.DefaultHairStyle, "Hair style key")
	f.BoolVar(&appearance.Beard, "beard", false, "Beard")
	f.BoolVar(&appearance.Scars, "scars", false, "Scars")
	f.BoolVar(&appearance.Tattoos, "tattoos", false, "Tattoos")
	f.BoolVar(&appearance.Earrings, "earrings", false, "Earrings")

	setEquipmentCmd.Flags().StringVar(&equipmentSlot, "slot", "", "Equipment slot (required)")
	setEquipmentCmd.Flags().StringVar(&equipmentKey, "key", "", "Item key")
	_ = setEquipmentCmd.MarkFlagRequired("slot") // nolint:errcheck // safe to ignore in init

	toggleAbilityCmd.Flags().StringVar(&abilityName, "ability", "", "Ability name (required)")
	_ = toggleAbilityCmd.MarkFlagRequired("ability") // nolint:errcheck // safe to ignore in init
}

func runSetOrigin(cmd *cobra.Command, _ []string) error {
	client, cleanup, err := createCharacterClient()
	if err != nil {
		return err
	}
	defer cleanup()

	ctx, cancel := context.WithTimeout(context.Background(), timeout)
	defer cancel()

	req := &apiv1alpha1.UpdateOriginRequest{
		CharacterID: editID,
		Race:        originRace,
		Class:       originClass,
		Gender:      originGender,
	}
	if cmd.Flags().Changed("name") {
		req.Name = &originName
	}

	resp, err := client.UpdateOrigin(ctx, req)
	if err != nil {
		return fmt.Errorf("failed to update origin: %w", err)
	}

	fmt.Printf("✅ Origin updated\n\n")
	printCharacter(resp.Character)
	if resp.Abilities != nil {
		fmt.Printf("\n   Available: %v %v\n", resp.Abilities.Class, resp.Abilities.Race)
	}
	return nil
}

func runSetAttribute(_ *cobra.Command, _ []string) error {
	client, cleanup, err := createCharacterClient()
	if err != nil {
		return err
	}
	defer cleanup()

	ctx, cancel := context.WithTimeout(context.Background(), timeout)
	defer cancel()

	resp, err := client.UpdateAttribute(ctx, &apiv1alpha1.UpdateAttributeRequest{
		CharacterID: editID,
		Attribute:   attributeName,
		Base:        attributeBase,
	})
	if err != nil {
		return fmt.Errorf("failed to update attribute: %w", err)
	}

	printCharacter(resp.Character)
	return nil
}

func runRollAttributes(_ *cobra.Command, _ []string) error {
	client, cleanup, err := createCharacterClient()
	if err != nil {
		return err
	}
	defer cleanup()

	ctx, cancel := context.WithTimeout(context.Background(), timeout)
	defer cancel()

	resp, err := client.RollAttributes(ctx, &apiv1alpha1.RollAttributesRequest{CharacterID: editID})
	if err != nil {
		return fmt.Errorf("failed to roll attributes: %w", err)
	}

	fmt.Printf("🎲 Rolled: %v\n\n", resp.Rolled)
	printCharacter(resp.Character)
	return nil
}

func runSetAppearance(_ *cobra.Command, _ []string) error {
	client, cleanup, err := createCharacterClient()
	if err != nil {
		return err
	}
	defer cleanup()

	ctx, cancel := context.WithTimeout(context.Background(), timeout)
	defer cancel()

	resp, err := client.UpdateAppearance(ctx, &apiv1alpha1.UpdateAppearanceRequest{
		CharacterID: editID,
		Appearance:  appearance,
	})
	if err != nil {
		return fmt.Errorf("failed to update appearance: %w", err)
	}

	printCharacter(resp.Character)
	return nil
}

func runSetEquipment(_ *cobra.Command, _ []string) error {
	client, cleanup, err := createCharacterClient()
	if err != nil {
		return err
	}
	defer cleanup()

	ctx, cancel := context.WithTimeout(context.Background(), timeout)
	defer cancel()

	resp, err := client.SetEquipment(ctx, &apiv1alpha1.SetEquipmentRequest{
		CharacterID: editID,
		Slot:        equipmentSlot,
		Key:         equipmentKey,
	})
	if err != nil {
		return fmt.Errorf("failed to set equipment: %w", err)
	}

	eq := resp.Character.Equipment
	fmt.Printf("Equipment: top=%q foot=%q hair=%q hat=%q accessory=%q pant=%q bag=%q\n",
		eq.Top, eq.Foot, eq.Hair, eq.Hat, eq.Accessory, eq.Pant, eq.Bag)
	return nil
}

func runToggleAbility(_ *cobra.Command, _ []string) error {
	client, cleanup, err := createCharacterClient()
	if err != nil {
		return err
	}
	defer cleanup()

	ctx, cancel := context.WithTimeout(context.Background(), timeout)
	defer cancel()

	resp, err := client.ToggleAbility(ctx, &apiv1alpha1.ToggleAbilityRequest{
		CharacterID: editID,
		Ability:     abilityName,
	})
	if err != nil {
		return fmt.Errorf("failed to toggle ability: %w", err)
	}

	if resp.Selected {
		fmt.Printf("✅ Selected %s\n", abilityName)
	} else {
		fmt.Printf("Deselected %s\n", abilityName)
	}
	fmt.Printf("Selected abilities: %v\n", resp.Character.SelectedAbilities)
	return nil
}
