package uldspec

import (
	"slices"
	"testing"
)

func TestLookupIsCaseInsensitive(t *testing.T) {
	t.Parallel()

	for _, code := range []string{"AKE", "ake", " Ake ", "aKe"} {
		code := code
		t.Run(code, func(t *testing.T) {
			spec, ok := Lookup(code)
			if !ok {
				t.Fatalf("expected %q to resolve", code)
			}
			if spec.Code != "AKE" || spec.Name != "LD3" {
				t.Fatalf("unexpected spec %+v", spec)
			}
		})
	}
}

func TestLookupUnknownCode(t *testing.T) {
	t.Parallel()

	if _, ok := Lookup("XYZ"); ok {
		t.Fatalf("expected unknown code to miss")
	}
	if _, ok := Lookup(""); ok {
		t.Fatalf("expected empty code to miss")
	}
}

func TestTableValues(t *testing.T) {
	t.Parallel()

	ake, ok := Lookup("AKE")
	if !ok {
		t.Fatalf("AKE missing from table")
	}
	if ake.MaxGrossKg != 1588 || ake.TareKg != 85 || ake.MaxNetKg != 1503 {
		t.Fatalf("unexpected AKE weights: %+v", ake)
	}
	if ake.InternalLengthCm != 150 || ake.InternalWidthCm != 147 || ake.InternalHeightCm != 157 {
		t.Fatalf("unexpected AKE dimensions: %+v", ake)
	}
	if ake.InternalVolumeM3 != 3.5 {
		t.Fatalf("unexpected AKE volume: %v", ake.InternalVolumeM3)
	}

	ama, ok := Lookup("AMA")
	if !ok {
		t.Fatalf("AMA missing from table")
	}
	if ama.MaxNetKg != 6624 || ama.InternalVolumeM3 != 11.6 {
		t.Fatalf("unexpected AMA spec: %+v", ama)
	}
}

func TestNetCapacityConsistentWithGrossAndTare(t *testing.T) {
	t.Parallel()

	// Net limits are stored as published, but for every current entry they
	// equal gross minus tare; a mismatch would indicate a transcription error.
	for _, spec := range All() {
		if spec.MaxNetKg != spec.MaxGrossKg-spec.TareKg {
			t.Fatalf("net capacity inconsistent for %s: %+v", spec.Code, spec)
		}
	}
}

func TestCodesDeclarationOrder(t *testing.T) {
	t.Parallel()

	want := []string{"AKE", "AAA", "AKN", "AAP", "AMA"}
	if got := Codes(); !slices.Equal(got, want) {
		t.Fatalf("expected codes %v, got %v", want, got)
	}
	if got := CodeList(); got != "AKE, AAA, AKN, AAP, AMA" {
		t.Fatalf("unexpected code list %q", got)
	}
}

func TestAllReturnsDefensiveCopy(t *testing.T) {
	t.Parallel()

	all := All()
	if len(all) != 5 {
		t.Fatalf("expected 5 specs, got %d", len(all))
	}
	all[0].Code = "MUTATED"

	again := All()
	if again[0].Code != "AKE" {
		t.Fatalf("expected table to be immutable, got %q", again[0].Code)
	}
}

func TestDefaultCodeIsKnown(t *testing.T) {
	t.Parallel()

	if _, ok := Lookup(DefaultCode); !ok {
		t.Fatalf("default code %q must exist in the table", DefaultCode)
	}
}
