package usecase

import (
	"context"
	"strconv"
	"time"

	"salon-booking-api/internal/converter"
	"salon-booking-api/internal/delivery/dto"
	"salon-booking-api/internal/delivery/http/middleware"
	"salon-booking-api/internal/domain/entity"
	"salon-booking-api/internal/domain/repository"
	"salon-booking-api/internal/service"
	"salon-booking-api/pkg/apperror"

	"github.com/google/uuid"
	"github.com/sirupsen/logrus"
	"gorm.io/gorm"
)

type PaymentUsecase interface {
	RegisterPayment(ctx context.Context, req *dto.RegisterPaymentRequest) (*dto.PaymentResponse, error)
	GetPaymentsByAppointment(ctx context.Context, appointmentID uuid.UUID) (*dto.PaymentListResponse, error)
	GetDailyTotal(ctx context.Context, date string) (*dto.DailyTotalResponse, error)
	SummarizeByPeriod(ctx context.Context, start, end time.Time) (*dto.PaymentReportResponse, error)
}

type paymentUsecase struct {
	db              *gorm.DB
	log             *logrus.Logger
	paymentRepo     repository.PaymentRepository
	appointmentRepo repository.AppointmentRepository
	auditService    service.AuditService
}

func NewPaymentUsecase(
	db *gorm.DB,
	log *logrus.Logger,
	paymentRepo repository.PaymentRepository,
	appointmentRepo repository.AppointmentRepository,
	auditService service.AuditService,
) PaymentUsecase {
	return &paymentUsecase{
		db:              db,
		log:             log,
		paymentRepo:     paymentRepo,
		appointmentRepo: appointmentRepo,
		auditService:    auditService,
	}
}

func (u *paymentUsecase) RegisterPayment(ctx context.Context, req *dto.RegisterPaymentRequest) (*dto.PaymentResponse, error) {
	if !req.Amount.IsPositive() {
		return nil, apperror.InvalidArgument("amount must be greater than 0")
	}
	method, ok := entity.ParsePaymentMethod(req.Method)
	if !ok {
		return nil, apperror.InvalidArgument("payment method %q is not valid", req.Method)
	}

	tx := u.db.WithContext(ctx).Begin()
	defer tx.Rollback()

	appointment, err := u.appointmentRepo.FindByID(tx, req.AppointmentID)
	if err != nil {
		u.log.Warnf("Failed to find appointment %s: %+v", req.AppointmentID, err)
		return nil, err
	}
	if appointment == nil {
		return nil, apperror.NotFound("appointment with id %s not found", req.AppointmentID)
	}

	// PaidAt is recorded in UTC; daily totals and period reports
	// bucket by UTC calendar day.
	payment := &entity.Payment{
		AppointmentID: req.AppointmentID,
		Method:        method,
		Amount:        req.Amount,
		PaidAt:        time.Now().UTC(),
		Reference:     req.Reference,
	}

	if err := u.paymentRepo.Create(tx, payment); err != nil {
		u.log.Warnf("Failed to create payment: %+v", err)
		return nil, err
	}

	if actorID, ok := middleware.GetUserIDFromContext(ctx); ok {
		detail := entity.JSON{"method": string(method), "amount": req.Amount.String()}
		if err := u.auditService.Record(tx, &actorID, entity.AuditActionPaymentCreate, "payment", strconv.FormatInt(payment.ID, 10), detail); err != nil {
			return nil, err
		}
	}

	if err := tx.Commit().Error; err != nil {
		u.log.Warnf("Failed to commit payment: %+v", err)
		return nil, err
	}

	u.log.Infof("Payment registered: id=%d, appointment=%s, method=%s", payment.ID, req.AppointmentID, method)
	return converter.PaymentToResponse(payment), nil
}

func (u *paymentUsecase) GetPaymentsByAppointment(ctx context.Context, appointmentID uuid.UUID) (*dto.PaymentListResponse, error) {
	db := u.db.WithContext(ctx)

	appointment, err := u.appointmentRepo.FindByID(db, appointmentID)
	if err != nil {
		u.log.Warnf("Failed to find appointment %s: %+v", appointmentID, err)
		return nil, err
	}
	if appointment == nil {
		return nil, apperror.NotFound("appointment with id %s not found", appointmentID)
	}

	payments, err := u.paymentRepo.FindByAppointmentID(db, appointmentID)
	if err != nil {
		u.log.Warnf("Failed to list payments for appointment %s: %+v", appointmentID, err)
		return nil, err
	}
	return &dto.PaymentListResponse{
		Payments: converter.PaymentsToResponses(payments),
		Total:    len(payments),
	}, nil
}

// dayWindow returns the inclusive instant range covering one UTC
// calendar day.
func dayWindow(date time.Time) (start, end time.Time) {
	start = date.UTC()
	return start, start.Add(24*time.Hour - time.Nanosecond)
}

// GetDailyTotal sums all payments received on one UTC calendar day.
func (u *paymentUsecase) GetDailyTotal(ctx context.Context, dateStr string) (*dto.DailyTotalResponse, error) {
	date, err := time.Parse(dateLayout, dateStr)
	if err != nil {
		return nil, apperror.InvalidArgument("invalid date format, use YYYY-MM-DD")
	}

	start, end := dayWindow(date)

	payments, err := u.paymentRepo.FindByPaidAtRange(u.db.WithContext(ctx), start, end)
	if err != nil {
		u.log.Warnf("Failed to list payments for date %s: %+v", dateStr, err)
		return nil, err
	}

	summary := entity.SummarizePayments(payments)
	return &dto.DailyTotalResponse{
		Date:  dateStr,
		Total: summary.Total,
	}, nil
}

// SummarizeByPeriod folds payments in [start, end] inclusive into a
// total, fixed per-method subtotals and a count. Read-only; no lock
// beyond the snapshot read.
func (u *paymentUsecase) SummarizeByPeriod(ctx context.Context, start, end time.Time) (*dto.PaymentReportResponse, error) {
	if end.Before(start) {
		return nil, apperror.InvalidArgument("report end must not precede start")
	}

	payments, err := u.paymentRepo.FindByPaidAtRange(u.db.WithContext(ctx), start, end)
	if err != nil {
		u.log.Warnf("Failed to list payments between %s and %s: %+v", start, end, err)
		return nil, err
	}

	report := converter.PaymentSummaryToReport(entity.SummarizePayments(payments))
	report.Start = start
	report.End = end
	return report, nil
}
