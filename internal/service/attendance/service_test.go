package attendance

import (
	"testing"
	"time"

	"github.com/emsuite/ems-backend-go/internal/domain/attendance"
	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func openSlot(checkIn time.Time) *attendance.Attendance {
	return &attendance.Attendance{
		ID:         "att-1",
		EmployeeID: "e1",
		Date:       time.Date(2024, 4, 15, 0, 0, 0, 0, time.UTC),
		CheckIn:    checkIn,
		Status:     attendance.StatusFullDay,
	}
}

func closedSlot(checkIn time.Time) *attendance.Attendance {
	out := checkIn.Add(8 * time.Hour)
	hours := decimal.NewFromInt(8)
	a := openSlot(checkIn)
	a.CheckOut = &out
	a.HoursWorked = &hours
	return a
}

func TestApplyToDaySlot(t *testing.T) {
	checkIn := time.Date(2024, 4, 15, 9, 0, 0, 0, time.UTC)
	checkOut := checkIn.Add(7 * time.Hour)
	hours := decimal.NewFromInt(7)
	incoming := attendance.Attendance{
		EmployeeID:  "e1",
		Date:        time.Date(2024, 4, 15, 0, 0, 0, 0, time.UTC),
		CheckIn:     checkIn,
		CheckOut:    &checkOut,
		HoursWorked: &hours,
		Status:      attendance.StatusHalfDay,
	}

	t.Run("no slot creates a new record", func(t *testing.T) {
		record, update, err := applyToDaySlot(nil, incoming)
		require.NoError(t, err)
		assert.False(t, update)
		assert.Equal(t, incoming, record)
	})

	t.Run("open slot is overwritten in place", func(t *testing.T) {
		existing := openSlot(checkIn.Add(-time.Hour))
		record, update, err := applyToDaySlot(existing, incoming)
		require.NoError(t, err)
		assert.True(t, update)
		assert.Equal(t, existing.ID, record.ID)
		assert.Equal(t, existing.Date, record.Date)
		assert.Equal(t, incoming.CheckIn, record.CheckIn)
		assert.Equal(t, incoming.CheckOut, record.CheckOut)
		assert.Equal(t, attendance.StatusHalfDay, record.Status)
	})

	t.Run("closed slot conflicts", func(t *testing.T) {
		_, _, err := applyToDaySlot(closedSlot(checkIn), incoming)
		assert.ErrorIs(t, err, attendance.ErrDayAlreadyClosed)
	})

	t.Run("closed slot conflicts even for a check-in only mark", func(t *testing.T) {
		checkInOnly := attendance.Attendance{
			EmployeeID: "e1",
			CheckIn:    checkIn,
			Status:     attendance.StatusFullDay,
		}
		_, _, err := applyToDaySlot(closedSlot(checkIn), checkInOnly)
		assert.ErrorIs(t, err, attendance.ErrDayAlreadyClosed)
	})

	t.Run("repeated open-day mark converges on one row", func(t *testing.T) {
		checkInOnly := attendance.Attendance{
			EmployeeID: "e1",
			Date:       incoming.Date,
			CheckIn:    checkIn,
			Status:     attendance.StatusFullDay,
		}

		first, update, err := applyToDaySlot(openSlot(checkIn.Add(-time.Hour)), checkInOnly)
		require.NoError(t, err)
		require.True(t, update)

		// Retrying against the still-open persisted row updates the same
		// record again instead of creating a second one.
		second, update, err := applyToDaySlot(&first, checkInOnly)
		require.NoError(t, err)
		assert.True(t, update)
		assert.Equal(t, first, second)
	})
}
