package attendance

import (
	"testing"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
)

func TestStatusForHours(t *testing.T) {
	cases := []struct {
		hours string
		want  Status
	}{
		{"12", StatusFullDay},
		{"8", StatusFullDay},
		{"8.01", StatusFullDay},
		{"7.99", StatusHalfDay},
		{"4", StatusHalfDay},
		{"3.99", StatusAbsent},
		{"0.5", StatusAbsent},
		{"0", StatusAbsent},
	}
	for _, c := range cases {
		got := StatusForHours(decimal.RequireFromString(c.hours))
		assert.Equal(t, c.want, got, "hours=%s", c.hours)
	}
}
