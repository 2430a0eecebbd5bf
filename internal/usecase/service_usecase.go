package usecase

import (
	"context"
	"strconv"

	"salon-booking-api/internal/converter"
	"salon-booking-api/internal/delivery/dto"
	"salon-booking-api/internal/delivery/http/middleware"
	"salon-booking-api/internal/domain/entity"
	"salon-booking-api/internal/domain/repository"
	"salon-booking-api/internal/service"
	"salon-booking-api/pkg/apperror"

	"github.com/shopspring/decimal"
	"github.com/sirupsen/logrus"
	"gorm.io/gorm"
)

type ServiceUsecase interface {
	CreateService(ctx context.Context, req *dto.CreateServiceRequest) (*dto.ServiceResponse, error)
	GetService(ctx context.Context, serviceID int) (*dto.ServiceResponse, error)
	GetAllServices(ctx context.Context) (*dto.ServiceListResponse, error)
	GetActiveServices(ctx context.Context) (*dto.ServiceListResponse, error)
	UpdateService(ctx context.Context, serviceID int, req *dto.UpdateServiceRequest) (*dto.ServiceResponse, error)
	UpdatePrice(ctx context.Context, serviceID int, newPrice decimal.Decimal) (*dto.ServiceResponse, error)
}

type serviceUsecase struct {
	db           *gorm.DB
	log          *logrus.Logger
	serviceRepo  repository.ServiceRepository
	auditService service.AuditService
}

func NewServiceUsecase(
	db *gorm.DB,
	log *logrus.Logger,
	serviceRepo repository.ServiceRepository,
	auditService service.AuditService,
) ServiceUsecase {
	return &serviceUsecase{
		db:           db,
		log:          log,
		serviceRepo:  serviceRepo,
		auditService: auditService,
	}
}

func validateServiceFields(price decimal.Decimal, durationMin int) error {
	if !price.IsPositive() {
		return apperror.InvalidArgument("price must be greater than 0")
	}
	if durationMin <= 0 {
		return apperror.InvalidArgument("estimated duration must be greater than 0")
	}
	return nil
}

func (u *serviceUsecase) CreateService(ctx context.Context, req *dto.CreateServiceRequest) (*dto.ServiceResponse, error) {
	if err := validateServiceFields(req.Price, req.DurationMin); err != nil {
		return nil, err
	}

	active := true
	if req.Active != nil {
		active = *req.Active
	}

	svc := &entity.Service{
		Name:        req.Name,
		Description: req.Description,
		Price:       req.Price,
		DurationMin: req.DurationMin,
		Category:    req.Category,
		Active:      &active,
	}

	tx := u.db.WithContext(ctx).Begin()
	defer tx.Rollback()

	if err := u.serviceRepo.Create(tx, svc); err != nil {
		u.log.Warnf("Failed to create service: %+v", err)
		return nil, err
	}

	if actorID, ok := middleware.GetUserIDFromContext(ctx); ok {
		if err := u.auditService.Record(tx, &actorID, entity.AuditActionServiceCreate, "service", strconv.Itoa(svc.ID), entity.JSON{"name": svc.Name}); err != nil {
			return nil, err
		}
	}

	if err := tx.Commit().Error; err != nil {
		u.log.Warnf("Failed to commit service creation: %+v", err)
		return nil, err
	}

	return converter.ServiceToResponse(svc), nil
}

func (u *serviceUsecase) GetService(ctx context.Context, serviceID int) (*dto.ServiceResponse, error) {
	svc, err := u.serviceRepo.FindByID(u.db.WithContext(ctx), serviceID)
	if err != nil {
		u.log.Warnf("Failed to find service %d: %+v", serviceID, err)
		return nil, err
	}
	if svc == nil {
		return nil, apperror.NotFound("service with id %d not found", serviceID)
	}
	return converter.ServiceToResponse(svc), nil
}

func (u *serviceUsecase) GetAllServices(ctx context.Context) (*dto.ServiceListResponse, error) {
	services, err := u.serviceRepo.FindAll(u.db.WithContext(ctx))
	if err != nil {
		u.log.Warnf("Failed to list services: %+v", err)
		return nil, err
	}
	return &dto.ServiceListResponse{
		Services: converter.ServicesToResponses(services),
		Total:    len(services),
	}, nil
}

func (u *serviceUsecase) GetActiveServices(ctx context.Context) (*dto.ServiceListResponse, error) {
	services, err := u.serviceRepo.FindActive(u.db.WithContext(ctx))
	if err != nil {
		u.log.Warnf("Failed to list active services: %+v", err)
		return nil, err
	}
	return &dto.ServiceListResponse{
		Services: converter.ServicesToResponses(services),
		Total:    len(services),
	}, nil
}

func (u *serviceUsecase) UpdateService(ctx context.Context, serviceID int, req *dto.UpdateServiceRequest) (*dto.ServiceResponse, error) {
	if err := validateServiceFields(req.Price, req.DurationMin); err != nil {
		return nil, err
	}

	tx := u.db.WithContext(ctx).Begin()
	defer tx.Rollback()

	svc, err := u.serviceRepo.FindByID(tx, serviceID)
	if err != nil {
		u.log.Warnf("Failed to find service %d: %+v", serviceID, err)
		return nil, err
	}
	if svc == nil {
		return nil, apperror.NotFound("service with id %d not found", serviceID)
	}

	svc.Name = req.Name
	svc.Description = req.Description
	svc.Price = req.Price
	svc.DurationMin = req.DurationMin
	svc.Category = req.Category
	if req.Active != nil {
		svc.Active = req.Active
	}

	if err := u.serviceRepo.Update(tx, svc); err != nil {
		u.log.Warnf("Failed to update service %d: %+v", serviceID, err)
		return nil, err
	}

	if actorID, ok := middleware.GetUserIDFromContext(ctx); ok {
		if err := u.auditService.Record(tx, &actorID, entity.AuditActionServiceUpdate, "service", strconv.Itoa(svc.ID), entity.JSON{"name": svc.Name}); err != nil {
			return nil, err
		}
	}

	if err := tx.Commit().Error; err != nil {
		u.log.Warnf("Failed to commit service update: %+v", err)
		return nil, err
	}

	return converter.ServiceToResponse(svc), nil
}

// UpdatePrice reprices a catalog entry. Appointments already booked
// keep their snapshot line prices; only future bookings see the new
// price.
func (u *serviceUsecase) UpdatePrice(ctx context.Context, serviceID int, newPrice decimal.Decimal) (*dto.ServiceResponse, error) {
	if !newPrice.IsPositive() {
		return nil, apperror.InvalidArgument("price must be greater than 0")
	}

	tx := u.db.WithContext(ctx).Begin()
	defer tx.Rollback()

	svc, err := u.serviceRepo.FindByID(tx, serviceID)
	if err != nil {
		u.log.Warnf("Failed to find service %d: %+v", serviceID, err)
		return nil, err
	}
	if svc == nil {
		return nil, apperror.NotFound("service with id %d not found", serviceID)
	}

	oldPrice := svc.Price
	svc.Price = newPrice

	if err := u.serviceRepo.Update(tx, svc); err != nil {
		u.log.Warnf("Failed to reprice service %d: %+v", serviceID, err)
		return nil, err
	}

	if actorID, ok := middleware.GetUserIDFromContext(ctx); ok {
		detail := entity.JSON{"old_price": oldPrice.String(), "new_price": newPrice.String()}
		if err := u.auditService.Record(tx, &actorID, entity.AuditActionServiceReprice, "service", strconv.Itoa(svc.ID), detail); err != nil {
			return nil, err
		}
	}

	if err := tx.Commit().Error; err != nil {
		u.log.Warnf("Failed to commit service repricing: %+v", err)
		return nil, err
	}

	return converter.ServiceToResponse(svc), nil
}
