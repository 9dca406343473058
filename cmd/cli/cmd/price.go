// Package cmd - price command
package cmd

import (
	"encoding/json"
	"fmt"
	"io"
	"os"

	"github.com/shopspring/decimal"
	"github.com/spf13/cobra"

	"github.com/glasor/glazing-backend/internal/domain"
	"github.com/glasor/glazing-backend/internal/usecase/pricing"
)

var outputFormat string

// priceCmd represents the price command
var priceCmd = &cobra.Command{
	Use:   "price [file]",
	Short: "Price one item from a request file",
	Long: `Read a self-contained pricing request from a JSON file (or stdin when
the argument is "-") and print the itemized breakdown. The file carries the
catalog data inline, so no database is needed.

Example request:
  {
    "model": {
      "base_price": 100,
      "cost_per_mm_width": 0.5,
      "cost_per_mm_height": 0.3,
      "min_width_mm": 500,
      "min_height_mm": 500
    },
    "width_mm": 1500,
    "height_mm": 1200,
    "glass_type": {"price_per_sqm": 50},
    "color": {"surcharge_percent": 10},
    "services": [{"name": "Install", "unit": "sqm", "rate": 20}],
    "adjustments": [{"concept": "Promo", "unit": "unit", "value": 15, "is_positive": false}]
  }`,
	Args: cobra.ExactArgs(1),
	RunE: runPrice,
}

func init() {
	priceCmd.Flags().StringVarP(&outputFormat, "format", "f", "cli", "output format (cli, json)")
}

type priceFileModel struct {
	BasePrice       float64  `json:"base_price"`
	CostPerMmWidth  float64  `json:"cost_per_mm_width"`
	CostPerMmHeight float64  `json:"cost_per_mm_height"`
	AccessoryPrice  *float64 `json:"accessory_price,omitempty"`
	MinWidthMm      int      `json:"min_width_mm"`
	MinHeightMm     int      `json:"min_height_mm"`
}

type priceFileGlass struct {
	PricePerSqm      float64 `json:"price_per_sqm"`
	DiscountWidthMm  int     `json:"discount_width_mm"`
	DiscountHeightMm int     `json:"discount_height_mm"`
}

type priceFileColor struct {
	SurchargePercent float64 `json:"surcharge_percent"`
}

// Quantities are json.Number so the decimal text in the file is parsed
// exactly, never through a float64 intermediate.
type priceFileService struct {
	Name               string       `json:"name"`
	Unit               string       `json:"unit"`
	Rate               float64      `json:"rate"`
	MinimumBillingUnit *json.Number `json:"minimum_billing_unit,omitempty"`
	QuantityOverride   *json.Number `json:"quantity_override,omitempty"`
}

type priceFileAdjustment struct {
	Concept    string  `json:"concept"`
	Unit       string  `json:"unit"`
	Value      float64 `json:"value"`
	IsPositive bool    `json:"is_positive"`
}

type priceFileRequest struct {
	Model         priceFileModel        `json:"model"`
	WidthMm       int                   `json:"width_mm"`
	HeightMm      int                   `json:"height_mm"`
	WithAccessory bool                  `json:"with_accessory"`
	GlassType     *priceFileGlass       `json:"glass_type,omitempty"`
	Color         *priceFileColor       `json:"color,omitempty"`
	Services      []priceFileService    `json:"services,omitempty"`
	Adjustments   []priceFileAdjustment `json:"adjustments,omitempty"`
}

func runPrice(cmd *cobra.Command, args []string) error {
	var reader io.Reader
	if args[0] == "-" {
		reader = os.Stdin
	} else {
		f, err := os.Open(args[0])
		if err != nil {
			return fmt.Errorf("open request file: %w", err)
		}
		defer f.Close()
		reader = f
	}

	var req priceFileRequest
	if err := json.NewDecoder(reader).Decode(&req); err != nil {
		return fmt.Errorf("decode request file: %w", err)
	}

	input, err := buildCalculationInput(req)
	if err != nil {
		return err
	}

	result, err := pricing.Calculate(input)
	if err != nil {
		return err
	}

	if outputFormat == "json" {
		return json.NewEncoder(os.Stdout).Encode(result)
	}

	printBreakdown(result)
	return nil
}

func buildCalculationInput(req priceFileRequest) (pricing.PriceCalculationInput, error) {
	dims, err := domain.NewDimensions(req.WidthMm, req.HeightMm, req.Model.MinWidthMm, req.Model.MinHeightMm)
	if err != nil {
		return pricing.PriceCalculationInput{}, err
	}

	base, err := domain.NewMoney(req.Model.BasePrice)
	if err != nil {
		return pricing.PriceCalculationInput{}, err
	}
	perW, err := domain.NewMoney(req.Model.CostPerMmWidth)
	if err != nil {
		return pricing.PriceCalculationInput{}, err
	}
	perH, err := domain.NewMoney(req.Model.CostPerMmHeight)
	if err != nil {
		return pricing.PriceCalculationInput{}, err
	}

	input := pricing.PriceCalculationInput{
		Dims:            dims,
		BasePrice:       base,
		CostPerMmWidth:  perW,
		CostPerMmHeight: perH,
		WithAccessory:   req.WithAccessory,
		ColorMultiplier: decimal.NewFromInt(1),
	}

	if req.Model.AccessoryPrice != nil {
		accessory, err := domain.NewMoney(*req.Model.AccessoryPrice)
		if err != nil {
			return pricing.PriceCalculationInput{}, err
		}
		input.AccessoryPrice = &accessory
	}

	if req.Color != nil {
		color := domain.ColorOption{SurchargePercent: decimal.NewFromFloat(req.Color.SurchargePercent)}
		input.ColorMultiplier = color.Multiplier()
	}

	if req.GlassType != nil {
		price, err := domain.NewMoney(req.GlassType.PricePerSqm)
		if err != nil {
			return pricing.PriceCalculationInput{}, err
		}
		input.Glass = &pricing.GlassPricing{
			PricePerSqm:      price,
			DiscountWidthMm:  req.GlassType.DiscountWidthMm,
			DiscountHeightMm: req.GlassType.DiscountHeightMm,
		}
	}

	for _, svc := range req.Services {
		unit, err := domain.ParseBillingUnit(svc.Unit)
		if err != nil {
			return pricing.PriceCalculationInput{}, err
		}
		rate, err := domain.NewMoney(svc.Rate)
		if err != nil {
			return pricing.PriceCalculationInput{}, err
		}
		svcInput := pricing.ServiceAmountInput{
			Name: svc.Name,
			Unit: unit,
			Rate: rate,
		}
		if svc.MinimumBillingUnit != nil {
			m, err := decimal.NewFromString(svc.MinimumBillingUnit.String())
			if err != nil {
				return pricing.PriceCalculationInput{}, fmt.Errorf("invalid minimum_billing_unit for %q: %w", svc.Name, err)
			}
			svcInput.MinimumBillingUnit = &m
		}
		if svc.QuantityOverride != nil {
			q, err := decimal.NewFromString(svc.QuantityOverride.String())
			if err != nil {
				return pricing.PriceCalculationInput{}, fmt.Errorf("invalid quantity_override for %q: %w", svc.Name, err)
			}
			svcInput.QuantityOverride = &q
		}
		input.Services = append(input.Services, svcInput)
	}

	for _, adj := range req.Adjustments {
		unit, err := domain.ParseBillingUnit(adj.Unit)
		if err != nil {
			return pricing.PriceCalculationInput{}, err
		}
		value, err := domain.NewMoney(adj.Value)
		if err != nil {
			return pricing.PriceCalculationInput{}, err
		}
		input.Adjustments = append(input.Adjustments, pricing.AdjustmentInput{
			Concept:    adj.Concept,
			Unit:       unit,
			Value:      value,
			IsPositive: adj.IsPositive,
		})
	}

	return input, nil
}

func printBreakdown(result *pricing.PriceCalculationResult) {
	fmt.Printf("%-40s %12s\n", "Profile", result.ProfileCost.String())
	if !result.GlassCost.IsZero() {
		fmt.Printf("%-40s %12s\n", "Glass", result.GlassCost.String())
	}
	if !result.AccessoryCost.IsZero() {
		fmt.Printf("%-40s %12s\n", "Accessory", result.AccessoryCost.String())
	}
	for _, svc := range result.Services {
		label := fmt.Sprintf("%s (%s x %s)", svc.Name, svc.Quantity.String(), svc.Unit)
		fmt.Printf("%-40s %12s\n", label, svc.Amount.String())
	}
	for _, adj := range result.Adjustments {
		fmt.Printf("%-40s %12s\n", adj.Concept, adj.Amount.String())
	}
	fmt.Printf("%-40s %12s\n", "TOTAL", result.Subtotal.String())
}
