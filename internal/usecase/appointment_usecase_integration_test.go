//go:build integration

package usecase

import (
	"context"
	"fmt"
	"os"
	"sync"
	"testing"

	"salon-booking-api/config"
	"salon-booking-api/internal/delivery/dto"
	"salon-booking-api/internal/domain/entity"
	"salon-booking-api/internal/infrastructure/database"
	"salon-booking-api/internal/repository"
	"salon-booking-api/internal/service"
	"salon-booking-api/pkg/apperror"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
	"github.com/sirupsen/logrus"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func testDBConfig(t *testing.T) config.DBConfig {
	t.Helper()

	host := os.Getenv("TEST_DB_HOST")
	if host == "" {
		t.Skip("TEST_DB_HOST not set, skipping database tests")
	}
	getenv := func(key, fallback string) string {
		if v := os.Getenv(key); v != "" {
			return v
		}
		return fallback
	}
	return config.DBConfig{
		Host:          host,
		Port:          getenv("TEST_DB_PORT", "5432"),
		User:          getenv("TEST_DB_USER", "postgres"),
		Password:      os.Getenv("TEST_DB_PASSWORD"),
		Name:          getenv("TEST_DB_NAME", "salon_booking_test"),
		SSLMode:       getenv("TEST_DB_SSLMODE", "disable"),
		MigrationsDir: getenv("TEST_DB_MIGRATIONS_DIR", "../../db/migrations"),
	}
}

// Two requests racing for the same specialist window must end with
// exactly one booked appointment. Both can pass the in-transaction
// availability check at the same time; the exclusion constraint on the
// occupied window turns the loser's insert into a conflict.
func TestConcurrentBookingSingleWinner(t *testing.T) {
	cfg := testDBConfig(t)
	require.NoError(t, database.RunMigrations(cfg))
	db, err := database.NewPostgresConnection(cfg)
	require.NoError(t, err)

	log := logrus.New()

	userRepo := repository.NewUserRepository()
	clientRepo := repository.NewClientRepository()
	serviceRepo := repository.NewServiceRepository()

	specialist := &entity.User{
		FullName: "Racing Specialist",
		Email:    fmt.Sprintf("specialist-%s@example.com", uuid.NewString()),
		Password: "irrelevant",
		Role:     entity.RoleSpecialist,
	}
	require.NoError(t, userRepo.Create(db, specialist))

	client := &entity.Client{
		FirstName: "Racing",
		LastName:  "Client",
		Phone:     "555-0100",
	}
	require.NoError(t, clientRepo.Create(db, client))

	active := true
	svc := &entity.Service{
		Name:        fmt.Sprintf("Haircut %s", uuid.NewString()),
		Price:       decimal.NewFromInt(25),
		DurationMin: 30,
		Active:      &active,
	}
	require.NoError(t, serviceRepo.Create(db, svc))

	uc := NewAppointmentUsecase(
		db,
		log,
		repository.NewAppointmentRepository(),
		clientRepo,
		userRepo,
		serviceRepo,
		service.NewAuditService(log, repository.NewAuditLogRepository()),
	)

	req := &dto.BookAppointmentRequest{
		ClientID:     client.ID,
		SpecialistID: specialist.ID,
		Date:         "2030-06-01",
		StartTime:    "09:00",
		ServiceIDs:   []int{svc.ID},
	}

	errs := make([]error, 2)
	var wg sync.WaitGroup
	for i := range errs {
		wg.Add(1)
		go func(i int) {
			defer wg.Done()
			_, errs[i] = uc.BookAppointment(context.Background(), req)
		}(i)
	}
	wg.Wait()

	var booked, conflicts int
	for _, bookErr := range errs {
		switch {
		case bookErr == nil:
			booked++
		case apperror.KindOf(bookErr) == apperror.KindConflict:
			conflicts++
		default:
			t.Fatalf("unexpected booking error: %+v", bookErr)
		}
	}
	assert.Equal(t, 1, booked)
	assert.Equal(t, 1, conflicts)

	var count int64
	require.NoError(t, db.Model(&entity.Appointment{}).
		Where("specialist_id = ? AND status <> ?", specialist.ID, entity.AppointmentStatusCancelled).
		Count(&count).Error)
	assert.EqualValues(t, 1, count)
}
