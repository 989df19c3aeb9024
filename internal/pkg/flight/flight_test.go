package flight

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestRecord_Rendering(t *testing.T) {
	record := Record{
		FlightNo:  "PK303",
		Departure: "Karachi",
		Arrival:   "Dubai",
		Time:      "06:00 AM",
		Price:     78000,
	}

	assert.Equal(t, "PK303 - 06:00 AM - Rs 78000", record.DisplayString())
	assert.Equal(t, "PK303: 06:00 AM - Rs 78000", record.SummaryLine())
}
