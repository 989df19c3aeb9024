package flight

import (
	"testing"

	"github.com/google/go-cmp/cmp"
	"github.com/stretchr/testify/assert"
)

func TestFindFlights(t *testing.T) {
	findRequest := func(departure, arrival string, wantFlightNos []string) func(t *testing.T) {
		return func(t *testing.T) {
			got := FindFlights(departure, arrival)

			gotFlightNos := make([]string, len(got))
			for i, record := range got {
				gotFlightNos[i] = record.FlightNo
			}

			diff := cmp.Diff(wantFlightNos, gotFlightNos)
			if diff != "" {
				t.Fatalf("FindFlights result mismatch (-want +got):\n%s", diff)
			}
		}
	}

	t.Run("exact_case", findRequest("Karachi", "Islamabad", []string{"PK301"}))
	t.Run("lower_and_upper_case", findRequest("karachi", "ISLAMABAD", []string{"PK301"}))
	t.Run("mixed_case", findRequest("kArAcHi", "iSlAmAbAd", []string{"PK301"}))
	t.Run("unknown_route", findRequest("Lahore", "Lahore", []string{}))
	t.Run("unknown_city", findRequest("Multan", "Karachi", []string{}))
}

func TestFindFlights_CaseFoldEquivalence(t *testing.T) {
	folded := FindFlights("karachi", "ISLAMABAD")
	exact := FindFlights("Karachi", "Islamabad")

	diff := cmp.Diff(exact, folded)
	if diff != "" {
		t.Fatalf("FindFlights case fold mismatch (-exact +folded):\n%s", diff)
	}
}

func TestFindFlights_KnownRecord(t *testing.T) {
	got := FindFlights("Karachi", "Islamabad")

	assert.Len(t, got, 1)
	assert.Equal(t, "PK301", got[0].FlightNo)
	assert.Equal(t, "08:00 AM", got[0].Time)
	assert.Equal(t, 15000, got[0].Price)
}

func TestFindFlights_Idempotent(t *testing.T) {
	first := FindFlights("Karachi", "Dubai")
	second := FindFlights("Karachi", "Dubai")

	diff := cmp.Diff(first, second)
	if diff != "" {
		t.Fatalf("FindFlights not idempotent (-first +second):\n%s", diff)
	}
}

func TestCatalog_ReadOnly(t *testing.T) {
	records := Catalog()
	assert.Len(t, records, 12)

	records[0].FlightNo = "mutated"

	assert.Equal(t, "PK301", Catalog()[0].FlightNo)
}
