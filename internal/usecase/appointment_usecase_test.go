package usecase

import (
	"testing"

	"salon-booking-api/internal/domain/entity"
	"salon-booking-api/pkg/apperror"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestBuildBookingPlan(t *testing.T) {
	service := func(price float64, duration int) entity.Service {
		return entity.Service{Price: decimal.NewFromFloat(price), DurationMin: duration}
	}

	t.Run("single service", func(t *testing.T) {
		plan, err := buildBookingPlan("09:30", []entity.Service{service(45000, 30)})
		require.NoError(t, err)

		assert.Equal(t, "10:00", plan.EndTime)
		assert.Equal(t, 30, plan.TotalDurationMin)
		assert.True(t, plan.TotalPrice.Equal(decimal.NewFromInt(45000)))
		assert.Equal(t, entity.TimeRange{StartMin: 570, EndMin: 600}, plan.Window)
	})

	t.Run("aggregates price and duration over services", func(t *testing.T) {
		services := []entity.Service{
			service(45000, 30),
			service(80000, 90),
			service(25000.50, 15),
		}

		plan, err := buildBookingPlan("10:00", services)
		require.NoError(t, err)

		assert.Equal(t, "12:15", plan.EndTime)
		assert.Equal(t, 135, plan.TotalDurationMin)
		assert.True(t, plan.TotalPrice.Equal(decimal.NewFromFloat(150000.50)), plan.TotalPrice.String())
	})

	t.Run("invalid start time", func(t *testing.T) {
		_, err := buildBookingPlan("9am", []entity.Service{service(45000, 30)})
		assert.True(t, apperror.IsKind(err, apperror.KindInvalidArgument))
	})

	t.Run("rejects window past midnight", func(t *testing.T) {
		_, err := buildBookingPlan("23:00", []entity.Service{service(45000, 90)})
		assert.True(t, apperror.IsKind(err, apperror.KindInvalidArgument))
	})

	t.Run("rejects window ending exactly at midnight", func(t *testing.T) {
		_, err := buildBookingPlan("23:00", []entity.Service{service(45000, 60)})
		assert.True(t, apperror.IsKind(err, apperror.KindInvalidArgument))
	})

	t.Run("window ending the minute before midnight is allowed", func(t *testing.T) {
		plan, err := buildBookingPlan("23:00", []entity.Service{service(45000, 59)})
		require.NoError(t, err)
		assert.Equal(t, "23:59", plan.EndTime)
	})
}
