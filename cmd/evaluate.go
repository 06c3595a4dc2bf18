package main

import (
	"encoding/json"
	"fmt"
	"os"

	"foodtrace/pkg/domain"
	"foodtrace/pkg/healthrisk"

	"github.com/spf13/cobra"
)

// evaluateProduct is the part of a product record the health evaluator reads.
type evaluateProduct struct {
	ID        domain.ProductID  `json:"id"`
	Allergens *domain.Allergens `json:"allergens"`
	Nutrition *domain.Nutrition `json:"nutrition"`
	Recalls   []struct {
		Reason string `json:"reason"`
	} `json:"recalls"`
}

func readJSONFile(path string, v any) error {
	f, err := os.Open(path)
	if err != nil {
		return fmt.Errorf("could not open %s: %w", path, err)
	}
	defer f.Close()

	if err := json.NewDecoder(f).Decode(v); err != nil {
		return fmt.Errorf("could not decode %s: %w", path, err)
	}

	return nil
}

// evaluateCommand runs the health evaluator offline on a profile and a
// product read from JSON files, and prints the issues as JSON.
func evaluateCommand() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "evaluate",
		Short: "Evaluates a product record against a health profile",
		RunE: func(cmd *cobra.Command, args []string) error {
			profilePath, _ := cmd.Flags().GetString("profile")
			productPath, _ := cmd.Flags().GetString("product")

			var profile domain.HealthProfile
			if err := readJSONFile(profilePath, &profile); err != nil {
				return err
			}
			var in evaluateProduct
			if err := readJSONFile(productPath, &in); err != nil {
				return err
			}

			product := domain.Product{ID: in.ID, Allergens: in.Allergens, Nutrition: in.Nutrition}
			for _, r := range in.Recalls {
				product.Recalls = append(product.Recalls, domain.Recall{Reason: r.Reason})
			}

			issues, err := healthrisk.Evaluate(profile, product)
			if err != nil {
				return err //nolint: wrapcheck
			}

			enc := json.NewEncoder(cmd.OutOrStdout())
			enc.SetIndent("", "  ")

			return enc.Encode(issues) //nolint: wrapcheck
		},
	}

	cmd.Flags().String("profile", "", "Path to a health profile JSON file")
	cmd.Flags().String("product", "", "Path to a product record JSON file")
	_ = cmd.MarkFlagRequired("profile")
	_ = cmd.MarkFlagRequired("product")

	return cmd
}
