package usecase

import (
	"context"
	"time"

	"salon-booking-api/internal/converter"
	"salon-booking-api/internal/delivery/dto"
	"salon-booking-api/internal/delivery/http/middleware"
	"salon-booking-api/internal/domain/entity"
	"salon-booking-api/internal/domain/repository"
	"salon-booking-api/internal/service"
	"salon-booking-api/pkg/apperror"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
	"github.com/sirupsen/logrus"
	"gorm.io/gorm"
)

const dateLayout = "2006-01-02"

type AppointmentUsecase interface {
	BookAppointment(ctx context.Context, req *dto.BookAppointmentRequest) (*dto.AppointmentResponse, error)
	UpdateStatus(ctx context.Context, appointmentID uuid.UUID, newStatus string) (*dto.AppointmentResponse, error)
	CheckAvailability(ctx context.Context, req *dto.CheckAvailabilityRequest) (bool, error)
	GetAppointment(ctx context.Context, appointmentID uuid.UUID) (*dto.AppointmentResponse, error)
	GetAllAppointments(ctx context.Context) (*dto.AppointmentListResponse, error)
	GetAppointmentsByDate(ctx context.Context, date string) (*dto.AppointmentListResponse, error)
	GetAppointmentsByStatus(ctx context.Context, status string) (*dto.AppointmentListResponse, error)
}

type appointmentUsecase struct {
	db              *gorm.DB
	log             *logrus.Logger
	appointmentRepo repository.AppointmentRepository
	clientRepo      repository.ClientRepository
	userRepo        repository.UserRepository
	serviceRepo     repository.ServiceRepository
	auditService    service.AuditService
}

func NewAppointmentUsecase(
	db *gorm.DB,
	log *logrus.Logger,
	appointmentRepo repository.AppointmentRepository,
	clientRepo repository.ClientRepository,
	userRepo repository.UserRepository,
	serviceRepo repository.ServiceRepository,
	auditService service.AuditService,
) AppointmentUsecase {
	return &appointmentUsecase{
		db:              db,
		log:             log,
		appointmentRepo: appointmentRepo,
		clientRepo:      clientRepo,
		userRepo:        userRepo,
		serviceRepo:     serviceRepo,
		auditService:    auditService,
	}
}

// bookingPlan holds the values derived from the chosen services: the
// computed end time and the aggregated price and duration. These are
// fixed at booking time and never recomputed.
type bookingPlan struct {
	Window           entity.TimeRange
	EndTime          string
	TotalPrice       decimal.Decimal
	TotalDurationMin int
}

// buildBookingPlan aggregates price and duration over the resolved
// services and computes the end time with minute precision. Fails when
// the appointment would run past midnight.
func buildBookingPlan(startTime string, services []entity.Service) (bookingPlan, error) {
	startMin, err := entity.ParseClock(startTime)
	if err != nil {
		return bookingPlan{}, apperror.InvalidArgument("invalid start time format, use HH:MM")
	}

	totalPrice := decimal.Zero
	totalDuration := 0
	for _, svc := range services {
		totalPrice = totalPrice.Add(svc.Price)
		totalDuration += svc.DurationMin
	}

	endMin := startMin + totalDuration
	if endMin >= entity.MinutesPerDay {
		return bookingPlan{}, apperror.InvalidArgument("duration exceeds single-day window")
	}

	return bookingPlan{
		Window:           entity.TimeRange{StartMin: startMin, EndMin: endMin},
		EndTime:          entity.FormatClock(endMin),
		TotalPrice:       totalPrice,
		TotalDurationMin: totalDuration,
	}, nil
}

// BookAppointment validates the request, aggregates the service set
// into price/duration/end-time, verifies the specialist's availability
// and commits the appointment plus its price-snapshot lines as one
// transaction. A Postgres exclusion constraint on the occupied window
// backs up the check against concurrent bookings; a violation surfaces
// as a conflict.
func (u *appointmentUsecase) BookAppointment(ctx context.Context, req *dto.BookAppointmentRequest) (*dto.AppointmentResponse, error) {
	if req.ClientID <= 0 {
		return nil, apperror.InvalidArgument("client id must be positive")
	}
	if req.SpecialistID <= 0 {
		return nil, apperror.InvalidArgument("specialist id must be positive")
	}
	if len(req.ServiceIDs) == 0 {
		return nil, apperror.InvalidArgument("at least one service must be selected")
	}

	date, err := time.Parse(dateLayout, req.Date)
	if err != nil {
		return nil, apperror.InvalidArgument("invalid date format, use YYYY-MM-DD")
	}

	tx := u.db.WithContext(ctx).Begin()
	defer tx.Rollback()

	client, err := u.clientRepo.FindByID(tx, req.ClientID)
	if err != nil {
		u.log.Warnf("Failed to find client %d: %+v", req.ClientID, err)
		return nil, err
	}
	if client == nil {
		return nil, apperror.NotFound("client with id %d not found", req.ClientID)
	}

	specialist, err := u.userRepo.FindByID(tx, req.SpecialistID)
	if err != nil {
		u.log.Warnf("Failed to find specialist %d: %+v", req.SpecialistID, err)
		return nil, err
	}
	if specialist == nil {
		return nil, apperror.NotFound("specialist with id %d not found", req.SpecialistID)
	}

	services := make([]entity.Service, 0, len(req.ServiceIDs))
	for _, serviceID := range req.ServiceIDs {
		svc, err := u.serviceRepo.FindByID(tx, serviceID)
		if err != nil {
			u.log.Warnf("Failed to find service %d: %+v", serviceID, err)
			return nil, err
		}
		if svc == nil {
			return nil, apperror.NotFound("service with id %d not found", serviceID)
		}
		if !svc.IsActive() {
			return nil, apperror.InvalidState("service %q is not active", svc.Name)
		}
		services = append(services, *svc)
	}

	plan, err := buildBookingPlan(req.StartTime, services)
	if err != nil {
		return nil, err
	}

	existing, err := u.appointmentRepo.FindBySpecialistAndDate(tx, req.SpecialistID, date, nil)
	if err != nil {
		u.log.Warnf("Failed to load appointments for specialist %d on %s: %+v", req.SpecialistID, req.Date, err)
		return nil, err
	}
	conflict, err := entity.FirstConflict(plan.Window, existing)
	if err != nil {
		return nil, err
	}
	if conflict != nil {
		window, _ := conflict.Window()
		return nil, apperror.Conflict("specialist already booked in requested window %s", window)
	}

	appointment := &entity.Appointment{
		ClientID:         req.ClientID,
		SpecialistID:     req.SpecialistID,
		AppointmentDate:  date,
		StartTime:        entity.Clock(entity.FormatClock(plan.Window.StartMin)),
		EndTime:          entity.Clock(plan.EndTime),
		Status:           entity.AppointmentStatusPending,
		TotalPrice:       plan.TotalPrice,
		TotalDurationMin: plan.TotalDurationMin,
		Notes:            req.Notes,
	}
	for _, svc := range services {
		appointment.Lines = append(appointment.Lines, entity.AppointmentServiceLine{
			ServiceID:          svc.ID,
			UnitPriceAtBooking: svc.Price,
		})
	}

	if err := u.appointmentRepo.Create(tx, appointment); err != nil {
		if isExclusionViolation(err) {
			return nil, apperror.Conflict("specialist already booked in requested window %s", plan.Window)
		}
		u.log.Warnf("Failed to create appointment: %+v", err)
		return nil, err
	}

	if actorID, ok := middleware.GetUserIDFromContext(ctx); ok {
		detail := entity.JSON{
			"specialist_id": req.SpecialistID,
			"date":          req.Date,
			"window":        plan.Window.String(),
		}
		if err := u.auditService.Record(tx, &actorID, entity.AuditActionAppointmentCreate, "appointment", appointment.ID.String(), detail); err != nil {
			return nil, err
		}
	}

	if err := tx.Commit().Error; err != nil {
		if isExclusionViolation(err) {
			return nil, apperror.Conflict("specialist already booked in requested window %s", plan.Window)
		}
		u.log.Warnf("Failed to commit booking transaction: %+v", err)
		return nil, err
	}

	full, err := u.appointmentRepo.FindByID(u.db.WithContext(ctx), appointment.ID)
	if err != nil || full == nil {
		u.log.Warnf("Failed to reload appointment %s: %+v", appointment.ID, err)
		return converter.AppointmentToResponse(appointment), nil
	}

	u.log.Infof("Appointment booked: id=%s, specialist=%d, date=%s, window=%s",
		appointment.ID, req.SpecialistID, req.Date, plan.Window)
	return converter.AppointmentToResponse(full), nil
}

// UpdateStatus applies a lifecycle transition. Unknown status names and
// transitions outside the lifecycle graph are rejected.
func (u *appointmentUsecase) UpdateStatus(ctx context.Context, appointmentID uuid.UUID, newStatus string) (*dto.AppointmentResponse, error) {
	status, ok := entity.ParseAppointmentStatus(newStatus)
	if !ok {
		return nil, apperror.InvalidArgument("unknown status %q", newStatus)
	}

	tx := u.db.WithContext(ctx).Begin()
	defer tx.Rollback()

	appointment, err := u.appointmentRepo.FindByID(tx, appointmentID)
	if err != nil {
		u.log.Warnf("Failed to find appointment %s: %+v", appointmentID, err)
		return nil, err
	}
	if appointment == nil {
		return nil, apperror.NotFound("appointment with id %s not found", appointmentID)
	}

	if !appointment.Status.CanTransitionTo(status) {
		return nil, apperror.InvalidArgument("cannot transition appointment from %s to %s", appointment.Status, status)
	}

	previous := appointment.Status
	appointment.Status = status

	if err := u.appointmentRepo.Update(tx, appointment); err != nil {
		u.log.Warnf("Failed to update appointment %s: %+v", appointmentID, err)
		return nil, err
	}

	if actorID, ok := middleware.GetUserIDFromContext(ctx); ok {
		detail := entity.JSON{"from": string(previous), "to": string(status)}
		if err := u.auditService.Record(tx, &actorID, entity.AuditActionAppointmentStatusUpdate, "appointment", appointmentID.String(), detail); err != nil {
			return nil, err
		}
	}

	if err := tx.Commit().Error; err != nil {
		u.log.Warnf("Failed to commit status update: %+v", err)
		return nil, err
	}

	u.log.Infof("Appointment status updated: id=%s, %s -> %s", appointmentID, previous, status)
	return converter.AppointmentToResponse(appointment), nil
}

// CheckAvailability reports whether the candidate window is free for
// the specialist on the date, optionally ignoring one appointment
// (used when re-checking a reschedule).
func (u *appointmentUsecase) CheckAvailability(ctx context.Context, req *dto.CheckAvailabilityRequest) (bool, error) {
	date, err := time.Parse(dateLayout, req.Date)
	if err != nil {
		return false, apperror.InvalidArgument("invalid date format, use YYYY-MM-DD")
	}
	candidate, err := entity.NewTimeRange(req.StartTime, req.EndTime)
	if err != nil {
		return false, apperror.InvalidArgument("invalid time format, use HH:MM")
	}

	var excludeID *uuid.UUID
	if req.ExcludeAppointmentID != "" {
		id, err := uuid.Parse(req.ExcludeAppointmentID)
		if err != nil {
			return false, apperror.InvalidArgument("invalid exclude appointment id")
		}
		excludeID = &id
	}

	existing, err := u.appointmentRepo.FindBySpecialistAndDate(u.db.WithContext(ctx), req.SpecialistID, date, excludeID)
	if err != nil {
		u.log.Warnf("Failed to load appointments for specialist %d: %+v", req.SpecialistID, err)
		return false, err
	}

	conflict, err := entity.FirstConflict(candidate, existing)
	if err != nil {
		return false, err
	}
	return conflict == nil, nil
}

func (u *appointmentUsecase) GetAppointment(ctx context.Context, appointmentID uuid.UUID) (*dto.AppointmentResponse, error) {
	appointment, err := u.appointmentRepo.FindByID(u.db.WithContext(ctx), appointmentID)
	if err != nil {
		u.log.Warnf("Failed to find appointment %s: %+v", appointmentID, err)
		return nil, err
	}
	if appointment == nil {
		return nil, apperror.NotFound("appointment with id %s not found", appointmentID)
	}
	return converter.AppointmentToResponse(appointment), nil
}

func (u *appointmentUsecase) GetAllAppointments(ctx context.Context) (*dto.AppointmentListResponse, error) {
	appointments, err := u.appointmentRepo.FindAll(u.db.WithContext(ctx))
	if err != nil {
		u.log.Warnf("Failed to list appointments: %+v", err)
		return nil, err
	}
	return &dto.AppointmentListResponse{
		Appointments: converter.AppointmentsToResponses(appointments),
		Total:        len(appointments),
	}, nil
}

func (u *appointmentUsecase) GetAppointmentsByDate(ctx context.Context, dateStr string) (*dto.AppointmentListResponse, error) {
	date, err := time.Parse(dateLayout, dateStr)
	if err != nil {
		return nil, apperror.InvalidArgument("invalid date format, use YYYY-MM-DD")
	}

	appointments, err := u.appointmentRepo.FindByDate(u.db.WithContext(ctx), date)
	if err != nil {
		u.log.Warnf("Failed to list appointments for date %s: %+v", dateStr, err)
		return nil, err
	}
	return &dto.AppointmentListResponse{
		Appointments: converter.AppointmentsToResponses(appointments),
		Total:        len(appointments),
	}, nil
}

func (u *appointmentUsecase) GetAppointmentsByStatus(ctx context.Context, statusStr string) (*dto.AppointmentListResponse, error) {
	status, ok := entity.ParseAppointmentStatus(statusStr)
	if !ok {
		return nil, apperror.InvalidArgument("unknown status %q", statusStr)
	}

	appointments, err := u.appointmentRepo.FindByStatus(u.db.WithContext(ctx), status)
	if err != nil {
		u.log.Warnf("Failed to list appointments with status %s: %+v", status, err)
		return nil, err
	}
	return &dto.AppointmentListResponse{
		Appointments: converter.AppointmentsToResponses(appointments),
		Total:        len(appointments),
	}, nil
}
