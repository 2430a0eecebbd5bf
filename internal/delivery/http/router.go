package http

import (
	"net/http"

	"salon-booking-api/internal/delivery/http/handler"
	"salon-booking-api/internal/delivery/http/middleware"

	"github.com/gorilla/mux"
)

type Router struct {
	router             *mux.Router
	authHandler        *handler.AuthHandler
	appointmentHandler *handler.AppointmentHandler
	serviceHandler     *handler.ServiceHandler
	clientHandler      *handler.ClientHandler
	paymentHandler     *handler.PaymentHandler
	auditLogHandler    *handler.AuditLogHandler
	authMiddleware     *middleware.AuthMiddleware
	corsMiddleware     *middleware.CORSMiddleware
}

func NewRouter(
	authHandler *handler.AuthHandler,
	appointmentHandler *handler.AppointmentHandler,
	serviceHandler *handler.ServiceHandler,
	clientHandler *handler.ClientHandler,
	paymentHandler *handler.PaymentHandler,
	auditLogHandler *handler.AuditLogHandler,
	authMiddleware *middleware.AuthMiddleware,
	corsMiddleware *middleware.CORSMiddleware,
) *Router {
	return &Router{
		router:             mux.NewRouter(),
		authHandler:        authHandler,
		appointmentHandler: appointmentHandler,
		serviceHandler:     serviceHandler,
		clientHandler:      clientHandler,
		paymentHandler:     paymentHandler,
		auditLogHandler:    auditLogHandler,
		authMiddleware:     authMiddleware,
		corsMiddleware:     corsMiddleware,
	}
}

func (r *Router) Setup() *mux.Router {
	// API versioning
	api := r.router.PathPrefix("/api/v1").Subrouter()

	// Health check
	api.HandleFunc("/health", r.healthCheck).Methods(http.MethodGet)

	// Auth routes (public)
	auth := api.PathPrefix("/auth").Subrouter()
	auth.HandleFunc("/register", r.authHandler.Register).Methods(http.MethodPost)
	auth.HandleFunc("/login", r.authHandler.Login).Methods(http.MethodPost)
	auth.HandleFunc("/refresh-token", r.authHandler.RefreshToken).Methods(http.MethodPost)

	// Auth routes (protected)
	authProtected := api.PathPrefix("/auth").Subrouter()
	authProtected.Use(r.authMiddleware.Authenticate)
	authProtected.HandleFunc("/logout", r.authHandler.Logout).Methods(http.MethodPost)
	authProtected.HandleFunc("/me", r.authHandler.Me).Methods(http.MethodGet)
	authProtected.HandleFunc("/change-password", r.authHandler.ChangePassword).Methods(http.MethodPost)

	// Protected routes (any authenticated staff)
	protected := api.PathPrefix("").Subrouter()
	protected.Use(r.authMiddleware.Authenticate)

	// Appointments (only the administrator schedules)
	protected.Handle("/appointments", middleware.RequireAdmin(http.HandlerFunc(r.appointmentHandler.BookAppointment))).Methods(http.MethodPost)
	protected.HandleFunc("/appointments", r.appointmentHandler.GetAllAppointments).Methods(http.MethodGet)
	protected.HandleFunc("/appointments/availability", r.appointmentHandler.CheckAvailability).Methods(http.MethodPost)
	protected.HandleFunc("/appointments/by-date/{date}", r.appointmentHandler.GetAppointmentsByDate).Methods(http.MethodGet)
	protected.HandleFunc("/appointments/by-status/{status}", r.appointmentHandler.GetAppointmentsByStatus).Methods(http.MethodGet)
	protected.HandleFunc("/appointments/{id}", r.appointmentHandler.GetAppointment).Methods(http.MethodGet)
	protected.HandleFunc("/appointments/{id}/status", r.appointmentHandler.UpdateStatus).Methods(http.MethodPatch)

	// Services (catalog reads open to staff, mutations admin only)
	protected.HandleFunc("/services", r.serviceHandler.GetAllServices).Methods(http.MethodGet)
	protected.HandleFunc("/services/active", r.serviceHandler.GetActiveServices).Methods(http.MethodGet)
	protected.HandleFunc("/services/{id}", r.serviceHandler.GetService).Methods(http.MethodGet)

	// Clients
	protected.HandleFunc("/clients", r.clientHandler.CreateClient).Methods(http.MethodPost)
	protected.HandleFunc("/clients", r.clientHandler.GetAllClients).Methods(http.MethodGet)
	protected.HandleFunc("/clients/{id}", r.clientHandler.GetClient).Methods(http.MethodGet)
	protected.HandleFunc("/clients/{id}", r.clientHandler.UpdateClient).Methods(http.MethodPut)
	protected.HandleFunc("/clients/{id}/appointments", r.clientHandler.GetAppointmentHistory).Methods(http.MethodGet)

	// Payments
	protected.HandleFunc("/payments", r.paymentHandler.RegisterPayment).Methods(http.MethodPost)
	protected.HandleFunc("/payments/daily-total", r.paymentHandler.GetDailyTotal).Methods(http.MethodGet)
	protected.HandleFunc("/payments/report", r.paymentHandler.GetPaymentReport).Methods(http.MethodGet)
	protected.HandleFunc("/appointments/{appointment_id}/payments", r.paymentHandler.GetPaymentsByAppointment).Methods(http.MethodGet)

	// Admin routes (protected - admin only)
	admin := api.PathPrefix("/admin").Subrouter()
	admin.Use(r.authMiddleware.Authenticate)
	admin.Use(middleware.RequireAdmin)

	// Service catalog management (admin)
	admin.HandleFunc("/services", r.serviceHandler.CreateService).Methods(http.MethodPost)
	admin.HandleFunc("/services/{id}", r.serviceHandler.UpdateService).Methods(http.MethodPut)
	admin.HandleFunc("/services/{id}/price", r.serviceHandler.UpdatePrice).Methods(http.MethodPatch)

	// Audit logs (admin)
	admin.HandleFunc("/audit-logs", r.auditLogHandler.GetAllAuditLogs).Methods(http.MethodGet)
	admin.HandleFunc("/audit-logs/{id}", r.auditLogHandler.GetAuditLog).Methods(http.MethodGet)

	// Add CORS middleware
	r.router.Use(r.corsMiddleware.Handle)

	return r.router
}

func (r *Router) healthCheck(w http.ResponseWriter, req *http.Request) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(http.StatusOK)
	w.Write([]byte(`{"status": "ok"}`))
}
