package main

import (
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"os"
	"time"

	"github.com/spf13/cobra"
	"gopkg.in/yaml.v3"

	"github.com/yashrajoria/classroom-shop/catalog"
	"github.com/yashrajoria/classroom-shop/loyalty"
	"github.com/yashrajoria/classroom-shop/models"
	"github.com/yashrajoria/classroom-shop/subscription"
)

var (
	productsSeed  uint64
	productsCount int
	outputYAML    bool
)

var productsCmd = &cobra.Command{
	Use:   "products",
	Short: "Print a deterministic fake catalogue",
	Args:  cobra.NoArgs,
	RunE:  runProducts,
}

var loyaltyCmd = &cobra.Command{
	Use:   "loyalty <cart.yaml>",
	Short: "Compute loyalty points for a cart file",
	Long: `Reads a YAML or JSON file of the form

  cart:
    - type: premium
      price: 30

and prints the points earned and whether the bonus applied.`,
	Args: cobra.ExactArgs(1),
	RunE: runLoyalty,
}

var renewalCmd = &cobra.Command{
	Use:   "renewal <subscription.yaml>",
	Short: "Check whether a subscription can be renewed",
	Long: `Reads a YAML or JSON file of the form

  subscription:
    status: active
    endDate: 2026-12-31
  currentDate: 2026-06-01   # optional, defaults to today

and prints the decision with the gate that produced it.`,
	Args: cobra.ExactArgs(1),
	RunE: runRenewal,
}

func init() {
	productsCmd.Flags().Uint64Var(&productsSeed, "seed", catalog.DefaultSeed, "faker seed (0 picks a random one)")
	productsCmd.Flags().IntVar(&productsCount, "count", catalog.DefaultCount, "number of products")
	rootCmd.PersistentFlags().BoolVar(&outputYAML, "yaml", false, "print YAML instead of JSON")
}

func runProducts(cmd *cobra.Command, _ []string) error {
	if productsCount < 0 {
		return errors.New("count must not be negative")
	}
	return render(cmd.OutOrStdout(), catalog.GenerateProducts(productsSeed, productsCount))
}

func runLoyalty(cmd *cobra.Command, args []string) error {
	var req models.LoyaltyRequest
	if err := decodeFile(args[0], &req); err != nil {
		return err
	}
	items, ok := req.Items()
	if !ok {
		return errors.New("cart must be an array")
	}
	return render(cmd.OutOrStdout(), loyalty.Analyze(items))
}

func runRenewal(cmd *cobra.Command, args []string) error {
	var req models.RenewalRequest
	if err := decodeFile(args[0], &req); err != nil {
		return err
	}

	now := time.Now()
	if req.CurrentDate != "" {
		parsed, ok := subscription.ParseDate(req.CurrentDate)
		if !ok {
			return fmt.Errorf("invalid currentDate %q", req.CurrentDate)
		}
		now = parsed
	}
	return render(cmd.OutOrStdout(), subscription.Check(req.Subscription, now))
}

// decodeFile reads YAML (or JSON, which is YAML) and decodes it through the
// JSON tags of v so files and HTTP bodies share one schema.
func decodeFile(path string, v any) error {
	data, err := os.ReadFile(path)
	if err != nil {
		return err
	}
	var doc any
	if err := yaml.Unmarshal(data, &doc); err != nil {
		return fmt.Errorf("parse %s: %w", path, err)
	}
	raw, err := json.Marshal(doc)
	if err != nil {
		return fmt.Errorf("parse %s: %w", path, err)
	}
	if err := json.Unmarshal(raw, v); err != nil {
		return fmt.Errorf("decode %s: %w", path, err)
	}
	return nil
}

func render(w io.Writer, v any) error {
	if outputYAML {
		enc := yaml.NewEncoder(w)
		enc.SetIndent(2)
		defer enc.Close()
		return enc.Encode(v)
	}
	enc := json.NewEncoder(w)
	enc.SetIndent("", "  ")
	return enc.Encode(v)
}
