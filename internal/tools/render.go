package tools

import (
	"fmt"
	"strconv"
	"strings"

	"github.com/airfreightlabs/uld-load-planner/internal/calculator"
	"github.com/airfreightlabs/uld-load-planner/internal/uldspec"
)

// Report text markers. These are part of the tool output contract: the
// orchestrating agent keys off them when summarising results.
const (
	markerValid   = "✅"
	markerInvalid = "❌"
	markerBest    = "🏆"
)

func renderUnknownType(code string) string {
	return fmt.Sprintf("%s ERROR: Unknown ULD type '%s'. Valid types: %s", markerInvalid, code, uldspec.CodeList())
}

func renderWeightTotal(result calculator.WeightTotal) string {
	var b strings.Builder
	fmt.Fprintf(&b, "Total Weight: %s kg\nBreakdown:", num(result.TotalKg))
	for _, line := range result.Lines {
		fmt.Fprintf(&b, "\n  - %d items @ %skg = %skg", line.Quantity, num(line.WeightKg), num(line.TotalKg))
	}
	return b.String()
}

func renderVolumeTotal(result calculator.VolumeTotal) string {
	var b strings.Builder
	fmt.Fprintf(&b, "Total Volume: %.2f cubic meters\nBreakdown:", result.TotalM3)
	for _, line := range result.Lines {
		fmt.Fprintf(&b, "\n  - %d items @ %sx%sx%scm = %.2fm³",
			line.Quantity, num(line.LengthCm), num(line.WidthCm), num(line.HeightCm), line.TotalM3)
	}
	return b.String()
}

func renderWeightValidation(result calculator.WeightValidation) string {
	capacityLabel := "Max net weight"
	comparedLabel := "Cargo weight"
	if result.IncludeTare {
		capacityLabel = "Max gross weight"
		comparedLabel = "Total weight (with tare)"
	}

	var b strings.Builder
	if result.Valid {
		fmt.Fprintf(&b, "%s VALID: Cargo weight %skg fits in %s (%s)\n", markerValid, num(result.CargoKg), result.Spec.Code, result.Spec.Name)
		fmt.Fprintf(&b, "  - %s: %skg\n", capacityLabel, num(result.CapacityKg))
		fmt.Fprintf(&b, "  - %s: %skg\n", comparedLabel, num(result.ComparedKg))
		fmt.Fprintf(&b, "  - Remaining capacity: %skg\n", num(result.RemainingKg))
		fmt.Fprintf(&b, "  - Utilization: %.2f%%", result.UtilizationPct)
	} else {
		fmt.Fprintf(&b, "%s INVALID: Cargo weight %skg EXCEEDS %s (%s) capacity\n", markerInvalid, num(result.CargoKg), result.Spec.Code, result.Spec.Name)
		fmt.Fprintf(&b, "  - %s: %skg\n", capacityLabel, num(result.CapacityKg))
		fmt.Fprintf(&b, "  - %s: %skg\n", comparedLabel, num(result.ComparedKg))
		fmt.Fprintf(&b, "  - Excess weight: %skg\n", num(result.ExcessKg))
		b.WriteString("  - Recommendation: Use larger ULD type or split cargo")
	}
	return b.String()
}

func renderRequirement(result calculator.Requirement) string {
	var b strings.Builder
	fmt.Fprintf(&b, "ULDs Required: %d x %s (%s) containers\n", result.Required, result.Spec.Code, result.Spec.Name)
	fmt.Fprintf(&b, "  - Limiting factor: %s\n", result.LimitingFactor)
	fmt.Fprintf(&b, "  - By weight: %.2f ULDs (%skg ÷ %skg)\n", result.ByWeight, num(result.TotalWeightKg), num(result.Spec.MaxNetKg))
	fmt.Fprintf(&b, "  - By volume: %.2f ULDs (%sm³ ÷ %sm³)\n", result.ByVolume, num(result.TotalVolumeM3), num(result.Spec.InternalVolumeM3))
	fmt.Fprintf(&b, "  - Weight utilization: %.2f%%\n", result.WeightUtilization)
	fmt.Fprintf(&b, "  - Volume utilization: %.2f%%", result.VolumeUtilization)
	return b.String()
}

func renderFit(result calculator.FitResult) string {
	spec := result.Spec
	cargo := fmt.Sprintf("%sx%sx%scm", num(result.Length.CargoCm), num(result.Width.CargoCm), num(result.Height.CargoCm))
	internal := fmt.Sprintf("%sx%sx%scm", num(spec.InternalLengthCm), num(spec.InternalWidthCm), num(spec.InternalHeightCm))

	var b strings.Builder
	if result.Fits {
		fmt.Fprintf(&b, "%s FITS: Cargo %s fits in %s (%s)\n", markerValid, cargo, spec.Code, spec.Name)
		fmt.Fprintf(&b, "  - ULD internal dimensions: %s\n", internal)
		fmt.Fprintf(&b, "  - Length clearance: %scm\n", num(result.Length.LimitCm-result.Length.CargoCm))
		fmt.Fprintf(&b, "  - Width clearance: %scm\n", num(result.Width.LimitCm-result.Width.CargoCm))
		fmt.Fprintf(&b, "  - Height clearance: %scm (%dcm overhang allowed)", num(result.Height.LimitCm-result.Height.CargoCm), uldspec.HeightOverhangCm)
	} else {
		fmt.Fprintf(&b, "%s DOES NOT FIT: Cargo %s EXCEEDS %s (%s) dimensions\n", markerInvalid, cargo, spec.Code, spec.Name)
		fmt.Fprintf(&b, "  - ULD internal dimensions: %s (+ %dcm overhang)\n", internal, uldspec.HeightOverhangCm)
		for _, axis := range []calculator.AxisCheck{result.Length, result.Width, result.Height} {
			label := strings.ToUpper(axis.Axis[:1]) + axis.Axis[1:]
			if axis.Fits {
				fmt.Fprintf(&b, "  - %s %s: %scm ≤ %scm\n", markerValid, label, num(axis.CargoCm), num(axis.LimitCm))
			} else {
				fmt.Fprintf(&b, "  - %s %s: %scm > %scm (excess: %scm)\n", markerInvalid, label, num(axis.CargoCm), num(axis.LimitCm), num(axis.ExcessCm))
			}
		}
		b.WriteString("  - Recommendation: Use larger ULD type or reorient cargo")
	}
	return b.String()
}

func renderComparison(result calculator.Comparison) string {
	var b strings.Builder
	b.WriteString("ULD Options Comparison:\n")
	for idx, opt := range result.Options {
		marker := fmt.Sprintf("  Option %d", idx+1)
		if idx == 0 {
			marker = markerBest + " RECOMMENDED"
		}
		fmt.Fprintf(&b, "\n%s: %d x %s (%s)\n", marker, opt.Required, opt.Spec.Code, opt.Spec.Name)
		fmt.Fprintf(&b, "  - Weight utilization: %.2f%%\n", opt.WeightUtilization)
		fmt.Fprintf(&b, "  - Volume utilization: %.2f%%\n", opt.VolumeUtilization)
		fmt.Fprintf(&b, "  - Average utilization: %.2f%%\n", opt.AvgUtilization)
	}
	best := result.Recommended()
	fmt.Fprintf(&b, "\nRecommendation: Use %d x %s (%s) for optimal utilization", best.Required, best.Spec.Code, best.Spec.Name)
	return b.String()
}

// num renders a quantity with the minimal number of digits, so whole-number
// weights and dimensions print without a trailing ".0".
func num(f float64) string {
	return strconv.FormatFloat(f, 'f', -1, 64)
}
