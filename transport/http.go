package transport

import (
	"net/http"

	"github.com/go-chi/cors"
	"github.com/gorilla/mux"
	adoptionapp "github.com/petlove/backend/application/adoption"
	appointmentapp "github.com/petlove/backend/application/appointment"
	orderapp "github.com/petlove/backend/application/order"
	petapp "github.com/petlove/backend/application/pet"
	userapp "github.com/petlove/backend/application/user"
	visitapp "github.com/petlove/backend/application/visit"
	"github.com/petlove/backend/cmd/config"
	httpSwagger "github.com/swaggo/http-swagger"
)

type RestHandler struct {
	UserApp        userapp.UserApp
	PetApp         petapp.PetApp
	OrderApp       orderapp.OrderApp
	AdoptionApp    adoptionapp.AdoptionApp
	AppointmentApp appointmentapp.AppointmentApp
	VisitApp       visitapp.VisitApp
}

func NewTransport(cfg *config.Config, rh *RestHandler) http.Handler {
	router := mux.NewRouter()

	// Swagger UI
	router.PathPrefix("/swagger/").Handler(httpSwagger.WrapHandler)

	router.HandleFunc("/health", rh.Health).Methods(http.MethodGet)
	router.HandleFunc("/api", rh.Root).Methods(http.MethodGet)

	// Users
	router.HandleFunc("/api/users", rh.ListUsers).Methods(http.MethodGet)
	router.HandleFunc("/api/users", rh.Register).Methods(http.MethodPost)
	router.HandleFunc("/api/users/register", rh.Register).Methods(http.MethodPost)
	router.HandleFunc("/api/users/login", rh.Login).Methods(http.MethodPost)

	// Pets
	router.HandleFunc("/api/pets", rh.ListPets).Methods(http.MethodGet)
	router.HandleFunc("/api/pets", rh.CreatePet).Methods(http.MethodPost)
	router.HandleFunc("/api/pets/{id}", rh.GetPet).Methods(http.MethodGet)
	router.HandleFunc("/api/pets/{id}", rh.UpdatePet).Methods(http.MethodPut)

	// Orders
	router.HandleFunc("/api/orders", rh.ListOrders).Methods(http.MethodGet)
	router.HandleFunc("/api/orders", rh.CreateOrder).Methods(http.MethodPost)
	router.HandleFunc("/api/orders/{id}", rh.GetOrder).Methods(http.MethodGet)
	router.HandleFunc("/api/orders/{id}/status", rh.UpdateOrderStatus).Methods(http.MethodPut)

	// Adoptions
	router.HandleFunc("/api/adoptions", rh.ListAdoptions).Methods(http.MethodGet)
	router.HandleFunc("/api/adoptions", rh.ApplyAdoption).Methods(http.MethodPost)
	router.HandleFunc("/api/adoptions/{id}", rh.GetAdoption).Methods(http.MethodGet)
	router.HandleFunc("/api/adoptions/{id}/complete", rh.CompleteAdoption).Methods(http.MethodPost)
	router.HandleFunc("/api/adoptions/{id}/cancel", rh.CancelAdoption).Methods(http.MethodPost)

	// Appointments
	router.HandleFunc("/api/appointments", rh.ListAppointments).Methods(http.MethodGet)
	router.HandleFunc("/api/appointments", rh.ScheduleAppointment).Methods(http.MethodPost)
	router.HandleFunc("/api/appointments/{id}", rh.GetAppointment).Methods(http.MethodGet)
	router.HandleFunc("/api/appointments/{id}/status", rh.UpdateAppointmentStatus).Methods(http.MethodPut)

	// Visits
	router.HandleFunc("/api/visits", rh.ListVisits).Methods(http.MethodGet)
	router.HandleFunc("/api/visits", rh.RecordVisit).Methods(http.MethodPost)
	router.HandleFunc("/api/visits/{id}", rh.GetVisit).Methods(http.MethodGet)

	// Internal routes, callable by workers with a signed service token
	internal := router.PathPrefix("/internal/v1").Subrouter()
	internal.Use(InternalMiddleware(cfg.Internal.ServiceSecret))
	internal.HandleFunc("/adoptions/{id}/expire", rh.ExpireAdoption).Methods(http.MethodPost)

	// middleware
	router.Use(RequestIDMiddleware())
	router.Use(LoggingMiddleware())

	// CORS wraps the router so preflight requests are answered even though
	// no OPTIONS routes are registered.
	return cors.Handler(cors.Options{
		AllowedOrigins: []string{"*"},
		AllowedMethods: []string{"GET", "POST", "PUT", "DELETE", "OPTIONS"},
		AllowedHeaders: []string{"*"},
	})(router)
}

// Health handler
// @Summary Health check
// @Tags Misc
// @Produce json
// @Success 200 {object} map[string]string
// @Router /health [get]
func (s *RestHandler) Health(w http.ResponseWriter, r *http.Request) {
	writeSuccess(w, map[string]string{
		"status":  "healthy",
		"message": "Server is running",
	})
}

// Root handler
// @Summary API root
// @Tags Misc
// @Produce json
// @Success 200 {object} map[string]string
// @Router /api [get]
func (s *RestHandler) Root(w http.ResponseWriter, r *http.Request) {
	writeSuccess(w, map[string]string{
		"message": "PetLove API Running!",
	})
}
