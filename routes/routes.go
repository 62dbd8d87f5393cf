package routes

import (
	"net/http"

	"github.com/gorilla/mux"
	"p9e.in/salescrm/handlers"
	"p9e.in/salescrm/middleware"
)

// RegisterRoutes sets up all application routes
func RegisterRoutes() http.Handler {
	r := mux.NewRouter()

	// =====================================================
	// Public Routes (no authentication)
	// =====================================================
	r.HandleFunc("/register", handlers.Register).Methods("POST")
	r.HandleFunc("/login", handlers.Login).Methods("POST")
	r.PathPrefix("/uploads/").Handler(
		http.StripPrefix("/uploads/", http.FileServer(http.Dir("./uploads"))),
	)

	// =====================================================
	// Protected Routes (require JWT authentication)
	// =====================================================
	api := r.NewRoute().Subrouter()
	api.Use(middleware.JWTMiddleware)

	api.HandleFunc("/", handlers.OwnerDashboard).Methods("GET")
	api.HandleFunc("/enquiry/{id}", handlers.GetEnquiry).Methods("GET")
	api.HandleFunc("/get-entry/{id}", handlers.GetEntry).Methods("GET")
	api.HandleFunc("/save-entry", handlers.SaveEntry).Methods("POST")
	api.HandleFunc("/update-entry/{id}", handlers.UpdateEntry).Methods("PUT")
	api.HandleFunc("/enquiry-inline/{id}", handlers.EnquiryInline).Methods("POST")

	// =====================================================
	// Admin Routes (require admin role)
	// =====================================================
	adminOnly := []string{"admin"}
	api.Handle("/admin-dashboard",
		middleware.RequireRole(adminOnly, http.HandlerFunc(handlers.AdminDashboard))).Methods("GET")
	api.Handle("/admin-dashboard/export",
		middleware.RequireRole(adminOnly, http.HandlerFunc(handlers.ExportEnquiriesToExcel))).Methods("GET")

	return r
}
