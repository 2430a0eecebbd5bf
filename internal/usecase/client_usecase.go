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

	"github.com/sirupsen/logrus"
	"gorm.io/gorm"
)

type ClientUsecase interface {
	CreateClient(ctx context.Context, req *dto.CreateClientRequest) (*dto.ClientResponse, error)
	GetClient(ctx context.Context, clientID int) (*dto.ClientResponse, error)
	GetAllClients(ctx context.Context) (*dto.ClientListResponse, error)
	UpdateClient(ctx context.Context, clientID int, req *dto.UpdateClientRequest) (*dto.ClientResponse, error)
	GetAppointmentHistory(ctx context.Context, clientID int) (*dto.AppointmentListResponse, error)
}

type clientUsecase struct {
	db              *gorm.DB
	log             *logrus.Logger
	clientRepo      repository.ClientRepository
	appointmentRepo repository.AppointmentRepository
	auditService    service.AuditService
}

func NewClientUsecase(
	db *gorm.DB,
	log *logrus.Logger,
	clientRepo repository.ClientRepository,
	appointmentRepo repository.AppointmentRepository,
	auditService service.AuditService,
) ClientUsecase {
	return &clientUsecase{
		db:              db,
		log:             log,
		clientRepo:      clientRepo,
		appointmentRepo: appointmentRepo,
		auditService:    auditService,
	}
}

// nationalIDValue maps a blank national id to NULL so the unique
// index only applies when an id is present.
func nationalIDValue(s string) *string {
	if s == "" {
		return nil
	}
	return &s
}

func (u *clientUsecase) CreateClient(ctx context.Context, req *dto.CreateClientRequest) (*dto.ClientResponse, error) {
	client := &entity.Client{
		FirstName:  req.FirstName,
		LastName:   req.LastName,
		Phone:      req.Phone,
		Email:      req.Email,
		Alias:      req.Alias,
		NationalID: nationalIDValue(req.NationalID),
	}

	tx := u.db.WithContext(ctx).Begin()
	defer tx.Rollback()

	if err := u.clientRepo.Create(tx, client); err != nil {
		if isUniqueViolation(err, "national_id") {
			return nil, apperror.Conflict("a client with national id %s already exists", req.NationalID)
		}
		u.log.Warnf("Failed to create client: %+v", err)
		return nil, err
	}

	if actorID, ok := middleware.GetUserIDFromContext(ctx); ok {
		if err := u.auditService.Record(tx, &actorID, entity.AuditActionClientCreate, "client", strconv.Itoa(client.ID), nil); err != nil {
			return nil, err
		}
	}

	if err := tx.Commit().Error; err != nil {
		u.log.Warnf("Failed to commit client creation: %+v", err)
		return nil, err
	}

	return converter.ClientToResponse(client), nil
}

func (u *clientUsecase) GetClient(ctx context.Context, clientID int) (*dto.ClientResponse, error) {
	client, err := u.clientRepo.FindByID(u.db.WithContext(ctx), clientID)
	if err != nil {
		u.log.Warnf("Failed to find client %d: %+v", clientID, err)
		return nil, err
	}
	if client == nil {
		return nil, apperror.NotFound("client with id %d not found", clientID)
	}
	return converter.ClientToResponse(client), nil
}

func (u *clientUsecase) GetAllClients(ctx context.Context) (*dto.ClientListResponse, error) {
	clients, err := u.clientRepo.FindAll(u.db.WithContext(ctx))
	if err != nil {
		u.log.Warnf("Failed to list clients: %+v", err)
		return nil, err
	}
	return &dto.ClientListResponse{
		Clients: converter.ClientsToResponses(clients),
		Total:   len(clients),
	}, nil
}

func (u *clientUsecase) UpdateClient(ctx context.Context, clientID int, req *dto.UpdateClientRequest) (*dto.ClientResponse, error) {
	tx := u.db.WithContext(ctx).Begin()
	defer tx.Rollback()

	client, err := u.clientRepo.FindByID(tx, clientID)
	if err != nil {
		u.log.Warnf("Failed to find client %d: %+v", clientID, err)
		return nil, err
	}
	if client == nil {
		return nil, apperror.NotFound("client with id %d not found", clientID)
	}

	client.FirstName = req.FirstName
	client.LastName = req.LastName
	client.Phone = req.Phone
	client.Email = req.Email
	client.Alias = req.Alias
	client.NationalID = nationalIDValue(req.NationalID)

	if err := u.clientRepo.Update(tx, client); err != nil {
		if isUniqueViolation(err, "national_id") {
			return nil, apperror.Conflict("another client with national id %s already exists", req.NationalID)
		}
		u.log.Warnf("Failed to update client %d: %+v", clientID, err)
		return nil, err
	}

	if actorID, ok := middleware.GetUserIDFromContext(ctx); ok {
		if err := u.auditService.Record(tx, &actorID, entity.AuditActionClientUpdate, "client", strconv.Itoa(client.ID), nil); err != nil {
			return nil, err
		}
	}

	if err := tx.Commit().Error; err != nil {
		u.log.Warnf("Failed to commit client update: %+v", err)
		return nil, err
	}

	return converter.ClientToResponse(client), nil
}

// GetAppointmentHistory lists a client's appointments, most recent
// first.
func (u *clientUsecase) GetAppointmentHistory(ctx context.Context, clientID int) (*dto.AppointmentListResponse, error) {
	db := u.db.WithContext(ctx)

	client, err := u.clientRepo.FindByID(db, clientID)
	if err != nil {
		u.log.Warnf("Failed to find client %d: %+v", clientID, err)
		return nil, err
	}
	if client == nil {
		return nil, apperror.NotFound("client with id %d not found", clientID)
	}

	appointments, err := u.appointmentRepo.FindByClientID(db, clientID)
	if err != nil {
		u.log.Warnf("Failed to load appointment history for client %d: %+v", clientID, err)
		return nil, err
	}
	return &dto.AppointmentListResponse{
		Appointments: converter.AppointmentsToResponses(appointments),
		Total:        len(appointments),
	}, nil
}
