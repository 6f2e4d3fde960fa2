package http

import (
	"net/http"

	"clinic-booking/internal/delivery/http/handler"
	"clinic-booking/internal/delivery/http/middleware"

	"github.com/gorilla/mux"
)

type Router struct {
	router                *mux.Router
	authHandler           *handler.AuthHandler
	userHandler           *handler.UserHandler
	scheduleHandler       *handler.ScheduleHandler
	dentistServiceHandler *handler.DentistServiceHandler
	appointmentHandler    *handler.AppointmentHandler
	reminderHandler       *handler.ReminderHandler
	catalogHandler        *handler.CatalogHandler
	activityLogHandler    *handler.ActivityLogHandler
	authMiddleware        *middleware.AuthMiddleware
	corsMiddleware        *middleware.CORSMiddleware
}

func NewRouter(
	authHandler *handler.AuthHandler,
	userHandler *handler.UserHandler,
	scheduleHandler *handler.ScheduleHandler,
	dentistServiceHandler *handler.DentistServiceHandler,
	appointmentHandler *handler.AppointmentHandler,
	reminderHandler *handler.ReminderHandler,
	catalogHandler *handler.CatalogHandler,
	activityLogHandler *handler.ActivityLogHandler,
	authMiddleware *middleware.AuthMiddleware,
	corsMiddleware *middleware.CORSMiddleware,
) *Router {
	return &Router{
		router:                mux.NewRouter(),
		authHandler:           authHandler,
		userHandler:           userHandler,
		scheduleHandler:       scheduleHandler,
		dentistServiceHandler: dentistServiceHandler,
		appointmentHandler:    appointmentHandler,
		reminderHandler:       reminderHandler,
		catalogHandler:        catalogHandler,
		activityLogHandler:    activityLogHandler,
		authMiddleware:        authMiddleware,
		corsMiddleware:        corsMiddleware,
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

	// Everything below requires a valid access token
	protected := api.NewRoute().Subrouter()
	protected.Use(r.authMiddleware.Authenticate)

	protected.HandleFunc("/auth/logout", r.authHandler.Logout).Methods(http.MethodPost)
	protected.HandleFunc("/auth/me", r.authHandler.GetCurrentUser).Methods(http.MethodGet)
	protected.HandleFunc("/auth/password", r.authHandler.ChangePassword).Methods(http.MethodPut)

	// Directory and catalog reads
	protected.HandleFunc("/dentists", r.userHandler.GetDentists).Methods(http.MethodGet)
	protected.HandleFunc("/dentists/{id}", r.userHandler.GetDentist).Methods(http.MethodGet)
	protected.HandleFunc("/dentists/{id}/schedules", r.scheduleHandler.GetDentistSchedules).Methods(http.MethodGet)
	protected.HandleFunc("/dentists/{id}/services", r.dentistServiceHandler.GetDentistServices).Methods(http.MethodGet)
	protected.HandleFunc("/services", r.catalogHandler.GetServices).Methods(http.MethodGet)
	protected.HandleFunc("/appointment-types", r.catalogHandler.GetAppointmentTypes).Methods(http.MethodGet)

	// Appointments
	protected.HandleFunc("/appointments", r.appointmentHandler.ListMyAppointments).Methods(http.MethodGet)
	protected.HandleFunc("/appointments/{id}", r.appointmentHandler.GetAppointment).Methods(http.MethodGet)
	protected.HandleFunc("/appointments/{id}/reminder", r.reminderHandler.GetReminder).Methods(http.MethodGet)
	protected.HandleFunc("/appointments/{id}/reminder/viewed", r.reminderHandler.MarkViewed).Methods(http.MethodPost)

	booking := api.PathPrefix("/appointments").Subrouter()
	booking.Use(r.authMiddleware.Authenticate)
	booking.Use(middleware.RequirePatient)
	booking.HandleFunc("", r.appointmentHandler.BookAppointment).Methods(http.MethodPost)
	booking.HandleFunc("/{id}", r.appointmentHandler.UpdateAppointment).Methods(http.MethodPut)
	booking.HandleFunc("/{id}", r.appointmentHandler.DeleteAppointment).Methods(http.MethodDelete)

	// Dentist workspace
	dentist := api.PathPrefix("/dentist").Subrouter()
	dentist.Use(r.authMiddleware.Authenticate)
	dentist.Use(middleware.RequireDentistOrAdmin)
	dentist.HandleFunc("/schedules", r.scheduleHandler.ReconcileSchedules).Methods(http.MethodPut)
	dentist.HandleFunc("/services", r.dentistServiceHandler.ReconcileServices).Methods(http.MethodPut)
	dentist.HandleFunc("/appointments/{id}/status", r.appointmentHandler.UpdateAppointmentStatus).Methods(http.MethodPut)
	dentist.HandleFunc("/appointments/{id}/reminder", r.reminderHandler.SaveReminder).Methods(http.MethodPut)

	// Admin routes (protected - admin only)
	admin := api.PathPrefix("/admin").Subrouter()
	admin.Use(r.authMiddleware.Authenticate)
	admin.Use(middleware.RequireAdmin)

	admin.HandleFunc("/roles", r.catalogHandler.GetRoles).Methods(http.MethodGet)
	admin.HandleFunc("/roles", r.catalogHandler.CreateRole).Methods(http.MethodPost)
	admin.HandleFunc("/roles/{id}", r.catalogHandler.UpdateRole).Methods(http.MethodPut)
	admin.HandleFunc("/roles/{id}", r.catalogHandler.DeleteRole).Methods(http.MethodDelete)

	admin.HandleFunc("/service-types", r.catalogHandler.GetServiceTypes).Methods(http.MethodGet)
	admin.HandleFunc("/service-types", r.catalogHandler.CreateServiceType).Methods(http.MethodPost)
	admin.HandleFunc("/service-types/{id}", r.catalogHandler.UpdateServiceType).Methods(http.MethodPut)
	admin.HandleFunc("/service-types/{id}", r.catalogHandler.DeleteServiceType).Methods(http.MethodDelete)

	admin.HandleFunc("/services", r.catalogHandler.CreateService).Methods(http.MethodPost)
	admin.HandleFunc("/services/{id}", r.catalogHandler.UpdateService).Methods(http.MethodPut)
	admin.HandleFunc("/services/{id}", r.catalogHandler.DeleteService).Methods(http.MethodDelete)

	admin.HandleFunc("/appointment-types", r.catalogHandler.CreateAppointmentType).Methods(http.MethodPost)
	admin.HandleFunc("/appointment-types/{id}", r.catalogHandler.UpdateAppointmentType).Methods(http.MethodPut)
	admin.HandleFunc("/appointment-types/{id}", r.catalogHandler.DeleteAppointmentType).Methods(http.MethodDelete)

	admin.HandleFunc("/users", r.userHandler.GetUsers).Methods(http.MethodGet)
	admin.HandleFunc("/users", r.userHandler.CreateUser).Methods(http.MethodPost)
	admin.HandleFunc("/users/{id}", r.userHandler.GetUser).Methods(http.MethodGet)
	admin.HandleFunc("/users/{id}", r.userHandler.UpdateUser).Methods(http.MethodPut)
	admin.HandleFunc("/users/{id}", r.userHandler.DeleteUser).Methods(http.MethodDelete)

	admin.HandleFunc("/schedules", r.scheduleHandler.GetAllSchedules).Methods(http.MethodGet)
	admin.HandleFunc("/schedules", r.scheduleHandler.CreateSchedule).Methods(http.MethodPost)
	admin.HandleFunc("/schedules/{id}", r.scheduleHandler.GetSchedule).Methods(http.MethodGet)
	admin.HandleFunc("/schedules/{id}", r.scheduleHandler.UpdateSchedule).Methods(http.MethodPut)
	admin.HandleFunc("/schedules/{id}", r.scheduleHandler.DeleteSchedule).Methods(http.MethodDelete)

	admin.HandleFunc("/dentist-services", r.dentistServiceHandler.GetAllAssignments).Methods(http.MethodGet)

	admin.HandleFunc("/reminders", r.reminderHandler.ListReminders).Methods(http.MethodGet)
	admin.HandleFunc("/reminders/{id}", r.reminderHandler.DeleteReminder).Methods(http.MethodDelete)

	admin.HandleFunc("/activity-logs", r.activityLogHandler.GetActivityLogs).Methods(http.MethodGet)
	admin.HandleFunc("/activity-logs/{id}", r.activityLogHandler.GetActivityLog).Methods(http.MethodGet)

	// Add CORS middleware
	r.router.Use(r.corsMiddleware.Handle)

	return r.router
}

func (r *Router) healthCheck(w http.ResponseWriter, req *http.Request) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(http.StatusOK)
	w.Write([]byte(`{"status": "ok"}`))
}
