package calculator

import (
	"fmt"
	"sort"

	"github.com/airfreightlabs/uld-load-planner/internal/uldspec"
)

// cm3PerM3 converts cubic centimeters to cubic meters.
const cm3PerM3 = 1_000_000

type uldCalculator struct{}

// New creates the ULD sizing and fit-validation engine.
func New() Calculator {
	return &uldCalculator{}
}

func (c *uldCalculator) TotalWeight(items []CargoItem) WeightTotal {
	result := WeightTotal{Lines: make([]WeightLine, 0, len(items))}
	for _, item := range items {
		qty := quantityOrOne(item.Quantity)
		lineTotal := item.Weight * float64(qty)
		result.TotalKg += lineTotal
		result.Lines = append(result.Lines, WeightLine{
			Quantity: qty,
			WeightKg: item.Weight,
			TotalKg:  lineTotal,
		})
	}
	return result
}

func (c *uldCalculator) TotalVolume(items []CargoItem) VolumeTotal {
	result := VolumeTotal{Lines: make([]VolumeLine, 0, len(items))}
	totalCm3 := 0.0
	for _, item := range items {
		qty := quantityOrOne(item.Quantity)
		itemCm3 := item.LengthCm * item.WidthCm * item.HeightCm
		totalCm3 += itemCm3 * float64(qty)
		result.Lines = append(result.Lines, VolumeLine{
			Quantity: qty,
			LengthCm: item.LengthCm,
			WidthCm:  item.WidthCm,
			HeightCm: item.HeightCm,
			TotalM3:  itemCm3 / cm3PerM3 * float64(qty),
		})
	}
	result.TotalM3 = totalCm3 / cm3PerM3
	return result
}

func (c *uldCalculator) ValidateWeight(uldType string, cargoKg float64, includeTare bool) (WeightValidation, error) {
	spec, ok := uldspec.Lookup(uldType)
	if !ok {
		return WeightValidation{}, fmt.Errorf("%w: %q", ErrUnknownULDType, uldType)
	}

	result := WeightValidation{
		Spec:        spec,
		CargoKg:     cargoKg,
		IncludeTare: includeTare,
	}
	if includeTare {
		result.ComparedKg = cargoKg + spec.TareKg
		result.CapacityKg = spec.MaxGrossKg
	} else {
		result.ComparedKg = cargoKg
		result.CapacityKg = spec.MaxNetKg
	}

	// Inclusive comparison: a load exactly at capacity is valid.
	if result.ComparedKg <= result.CapacityKg {
		result.Valid = true
		result.RemainingKg = result.CapacityKg - result.ComparedKg
		result.UtilizationPct = result.ComparedKg / result.CapacityKg * 100
	} else {
		result.ExcessKg = result.ComparedKg - result.CapacityKg
	}
	return result, nil
}

func (c *uldCalculator) CheckFit(lengthCm, widthCm, heightCm float64, uldType string) (FitResult, error) {
	spec, ok := uldspec.Lookup(uldType)
	if !ok {
		return FitResult{}, fmt.Errorf("%w: %q", ErrUnknownULDType, uldType)
	}

	result := FitResult{
		Spec:   spec,
		Length: checkAxis("length", lengthCm, spec.InternalLengthCm),
		Width:  checkAxis("width", widthCm, spec.InternalWidthCm),
		Height: checkAxis("height", heightCm, spec.InternalHeightCm+uldspec.HeightOverhangCm),
	}
	result.Fits = result.Length.Fits && result.Width.Fits && result.Height.Fits
	return result, nil
}

func (c *uldCalculator) Requirements(totalWeightKg, totalVolumeM3 float64, uldType string) (Requirement, error) {
	if uldType == "" {
		uldType = uldspec.DefaultCode
	}
	spec, ok := uldspec.Lookup(uldType)
	if !ok {
		return Requirement{}, fmt.Errorf("%w: %q", ErrUnknownULDType, uldType)
	}
	return sizeFor(spec, totalWeightKg, totalVolumeM3), nil
}

func (c *uldCalculator) CompareOptions(cargoWeightKg, cargoVolumeM3 float64) Comparison {
	comparison := Comparison{
		CargoWeightKg: cargoWeightKg,
		CargoVolumeM3: cargoVolumeM3,
		Options:       make([]Option, 0, len(uldspec.Codes())),
	}
	for _, spec := range uldspec.All() {
		req := sizeFor(spec, cargoWeightKg, cargoVolumeM3)
		comparison.Options = append(comparison.Options, Option{
			Spec:              spec,
			Required:          req.Required,
			WeightUtilization: req.WeightUtilization,
			VolumeUtilization: req.VolumeUtilization,
			AvgUtilization:    (req.WeightUtilization + req.VolumeUtilization) / 2,
		})
	}

	// Descending by average utilization; equal averages rank by code so the
	// ordering stays deterministic regardless of table order.
	sort.SliceStable(comparison.Options, func(i, j int) bool {
		a, b := comparison.Options[i], comparison.Options[j]
		if a.AvgUtilization != b.AvgUtilization {
			return a.AvgUtilization > b.AvgUtilization
		}
		return a.Spec.Code < b.Spec.Code
	})
	return comparison
}

func sizeFor(spec uldspec.Spec, totalWeightKg, totalVolumeM3 float64) Requirement {
	req := Requirement{
		Spec:          spec,
		TotalWeightKg: totalWeightKg,
		TotalVolumeM3: totalVolumeM3,
		ByWeight:      totalWeightKg / spec.MaxNetKg,
		ByVolume:      totalVolumeM3 / spec.InternalVolumeM3,
	}
	req.ByWeightCount = ceilCount(req.ByWeight)
	req.ByVolumeCount = ceilCount(req.ByVolume)

	req.Required = req.ByWeightCount
	if req.ByVolumeCount > req.Required {
		req.Required = req.ByVolumeCount
	}

	// Ties deliberately resolve to volume.
	if req.ByWeightCount > req.ByVolumeCount {
		req.LimitingFactor = "weight"
	} else {
		req.LimitingFactor = "volume"
	}

	if req.Required > 0 {
		req.WeightUtilization = totalWeightKg / (float64(req.Required) * spec.MaxNetKg) * 100
		req.VolumeUtilization = totalVolumeM3 / (float64(req.Required) * spec.InternalVolumeM3) * 100
	}
	return req
}

// ceilCount rounds a fractional container count up to a whole container,
// without adding an extra unit on exact integer division.
func ceilCount(ratio float64) int {
	n := int(ratio)
	if ratio > float64(n) {
		n++
	}
	return n
}

func checkAxis(axis string, cargoCm, limitCm float64) AxisCheck {
	check := AxisCheck{
		Axis:    axis,
		CargoCm: cargoCm,
		LimitCm: limitCm,
		Fits:    cargoCm <= limitCm,
	}
	if !check.Fits {
		check.ExcessCm = cargoCm - limitCm
	}
	return check
}

func quantityOrOne(quantity int) int {
	if quantity <= 0 {
		return 1
	}
	return quantity
}
