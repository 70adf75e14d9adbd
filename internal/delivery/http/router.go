package http

import (
	"net/http"

	"hospital-booking-api/internal/delivery/http/handler"
	"hospital-booking-api/internal/delivery/http/middleware"

	"github.com/gorilla/mux"
)

type Router struct {
	router          *mux.Router
	authHandler     *handler.AuthHandler
	hospitalHandler *handler.HospitalHandler
	doctorHandler   *handler.DoctorHandler
	catalogHandler  *handler.CatalogHandler
	searchHandler   *handler.SearchHandler
	scheduleHandler *handler.ScheduleHandler
	visitHandler    *handler.VisitHandler
	bookingHandler  *handler.BookingHandler
	reviewHandler   *handler.ReviewHandler
	feedbackHandler *handler.FeedbackHandler
	likeHandler     *handler.LikeHandler
	authMiddleware  *middleware.AuthMiddleware
	corsMiddleware  *middleware.CORSMiddleware
}

func NewRouter(
	authHandler *handler.AuthHandler,
	hospitalHandler *handler.HospitalHandler,
	doctorHandler *handler.DoctorHandler,
	catalogHandler *handler.CatalogHandler,
	searchHandler *handler.SearchHandler,
	scheduleHandler *handler.ScheduleHandler,
	visitHandler *handler.VisitHandler,
	bookingHandler *handler.BookingHandler,
	reviewHandler *handler.ReviewHandler,
	feedbackHandler *handler.FeedbackHandler,
	likeHandler *handler.LikeHandler,
	authMiddleware *middleware.AuthMiddleware,
	corsMiddleware *middleware.CORSMiddleware,
) *Router {
	return &Router{
		router:          mux.NewRouter(),
		authHandler:     authHandler,
		hospitalHandler: hospitalHandler,
		doctorHandler:   doctorHandler,
		catalogHandler:  catalogHandler,
		searchHandler:   searchHandler,
		scheduleHandler: scheduleHandler,
		visitHandler:    visitHandler,
		bookingHandler:  bookingHandler,
		reviewHandler:   reviewHandler,
		feedbackHandler: feedbackHandler,
		likeHandler:     likeHandler,
		authMiddleware:  authMiddleware,
		corsMiddleware:  corsMiddleware,
	}
}

func (r *Router) Setup() *mux.Router {
	// API versioning
	api := r.router.PathPrefix("/api/v1").Subrouter()

	// Health check
	api.HandleFunc("/health", r.healthCheck).Methods(http.MethodGet)

	// Auth routes (public)
	auth := api.PathPrefix("/auth").Subrouter()
	auth.HandleFunc("/register/client", r.authHandler.RegisterClient).Methods(http.MethodPost)
	auth.HandleFunc("/register/doctor", r.authHandler.RegisterDoctor).Methods(http.MethodPost)
	auth.HandleFunc("/register/hospital-admin", r.authHandler.RegisterHospitalAdmin).Methods(http.MethodPost)
	auth.HandleFunc("/login", r.authHandler.Login).Methods(http.MethodPost)
	auth.HandleFunc("/refresh-token", r.authHandler.RefreshToken).Methods(http.MethodPost)

	// Auth routes (protected)
	authProtected := api.PathPrefix("/auth").Subrouter()
	authProtected.Use(r.authMiddleware.Authenticate)
	authProtected.HandleFunc("/logout", r.authHandler.Logout).Methods(http.MethodPost)
	authProtected.HandleFunc("/me", r.authHandler.GetCurrentUser).Methods(http.MethodGet)

	// Public catalog routes
	api.HandleFunc("/hospitals", r.hospitalHandler.List).Methods(http.MethodGet)
	api.HandleFunc("/hospitals/{id:[0-9]+}", r.hospitalHandler.Get).Methods(http.MethodGet)
	api.HandleFunc("/hospitals/{id:[0-9]+}/doctors", r.doctorHandler.ListByHospital).Methods(http.MethodGet)
	api.HandleFunc("/doctors/{id}", r.doctorHandler.Get).Methods(http.MethodGet)
	api.HandleFunc("/doctors/{id}/visits", r.visitHandler.ListOpen).Methods(http.MethodGet)
	api.HandleFunc("/services", r.catalogHandler.ListServices).Methods(http.MethodGet)
	api.HandleFunc("/services/{url}/hospitals", r.hospitalHandler.ListByService).Methods(http.MethodGet)
	api.HandleFunc("/specializations", r.catalogHandler.ListSpecializations).Methods(http.MethodGet)
	api.HandleFunc("/specializations/{url}/doctors", r.doctorHandler.ListBySpecialization).Methods(http.MethodGet)
	api.HandleFunc("/search/{q}", r.searchHandler.Search).Methods(http.MethodGet)
	api.HandleFunc("/visits/{id:[0-9]+}", r.visitHandler.Get).Methods(http.MethodGet)

	// Hospital management (hospital admin only)
	admin := api.PathPrefix("").Subrouter()
	admin.Use(r.authMiddleware.Authenticate)
	admin.Use(middleware.RequireHospitalAdmin)
	admin.HandleFunc("/hospitals", r.hospitalHandler.Create).Methods(http.MethodPost)
	admin.HandleFunc("/hospitals/{id:[0-9]+}", r.hospitalHandler.Update).Methods(http.MethodPut)
	admin.HandleFunc("/hospitals/{id:[0-9]+}", r.hospitalHandler.Delete).Methods(http.MethodDelete)

	// Doctor self-service (doctor only)
	doctor := api.PathPrefix("").Subrouter()
	doctor.Use(r.authMiddleware.Authenticate)
	doctor.Use(middleware.RequireDoctor)
	doctor.HandleFunc("/doctors/me", r.doctorHandler.UpdateMe).Methods(http.MethodPut)
	doctor.HandleFunc("/doctors/me/bookings", r.bookingHandler.ListForDoctor).Methods(http.MethodGet)
	doctor.HandleFunc("/schedules", r.scheduleHandler.Create).Methods(http.MethodPost)
	doctor.HandleFunc("/schedules", r.scheduleHandler.ListMine).Methods(http.MethodGet)
	doctor.HandleFunc("/schedules/{id:[0-9]+}", r.scheduleHandler.Delete).Methods(http.MethodDelete)
	doctor.HandleFunc("/visits/{id:[0-9]+}", r.visitHandler.Delete).Methods(http.MethodDelete)

	// Client routes (client only)
	client := api.PathPrefix("").Subrouter()
	client.Use(r.authMiddleware.Authenticate)
	client.Use(middleware.RequireClient)
	client.HandleFunc("/bookings", r.bookingHandler.Create).Methods(http.MethodPost)
	client.HandleFunc("/bookings", r.bookingHandler.ListMine).Methods(http.MethodGet)
	client.HandleFunc("/bookings/{id}", r.bookingHandler.Get).Methods(http.MethodGet)
	client.HandleFunc("/bookings/{id}", r.bookingHandler.Delete).Methods(http.MethodDelete)
	client.HandleFunc("/hospitals/{id:[0-9]+}/reviews", r.reviewHandler.Create).Methods(http.MethodPost)
	client.HandleFunc("/reviews/{id:[0-9]+}", r.reviewHandler.Delete).Methods(http.MethodDelete)
	client.HandleFunc("/doctors/{id}/feedbacks", r.feedbackHandler.Create).Methods(http.MethodPost)
	client.HandleFunc("/feedbacks/{id:[0-9]+}", r.feedbackHandler.Delete).Methods(http.MethodDelete)
	client.HandleFunc("/hospitals/{id:[0-9]+}/like", r.likeHandler.LikeHospital).Methods(http.MethodPost)
	client.HandleFunc("/hospitals/{id:[0-9]+}/like", r.likeHandler.UnlikeHospital).Methods(http.MethodDelete)
	client.HandleFunc("/doctors/{id}/like", r.likeHandler.LikeDoctor).Methods(http.MethodPost)
	client.HandleFunc("/doctors/{id}/like", r.likeHandler.UnlikeDoctor).Methods(http.MethodDelete)

	// Add CORS middleware
	r.router.Use(r.corsMiddleware.Handle)

	return r.router
}

func (r *Router) healthCheck(w http.ResponseWriter, req *http.Request) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(http.StatusOK)
	w.Write([]byte(`{"status": "ok"}`))
}
