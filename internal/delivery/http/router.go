package http

import (
	"net/http"

	"petcare-facility-api/internal/delivery/http/handler"
	"petcare-facility-api/internal/delivery/http/middleware"

	"github.com/gorilla/mux"
)

type Router struct {
	router            *mux.Router
	authHandler       *handler.AuthHandler
	roomTypeHandler   *handler.RoomTypeHandler
	roomHandler       *handler.RoomHandler
	serviceTypeHandler *handler.ServiceTypeHandler
	serviceHandler    *handler.ServiceHandler
	variantHandler    *handler.ServiceVariantHandler
	cameraHandler     *handler.CameraHandler
	historyHandler    *handler.RoomHistoryHandler
	medicineHandler   *handler.MedicineHandler
	treatmentHandler  *handler.TreatmentHandler
	healthBookHandler *handler.PetHealthBookHandler
	reportHandler     *handler.ReportHandler
	authMiddleware    *middleware.AuthMiddleware
	corsMiddleware    *middleware.CORSMiddleware
	uploadDir         string
}

func NewRouter(
	authHandler *handler.AuthHandler,
	roomTypeHandler *handler.RoomTypeHandler,
	roomHandler *handler.RoomHandler,
	serviceTypeHandler *handler.ServiceTypeHandler,
	serviceHandler *handler.ServiceHandler,
	variantHandler *handler.ServiceVariantHandler,
	cameraHandler *handler.CameraHandler,
	historyHandler *handler.RoomHistoryHandler,
	medicineHandler *handler.MedicineHandler,
	treatmentHandler *handler.TreatmentHandler,
	healthBookHandler *handler.PetHealthBookHandler,
	reportHandler *handler.ReportHandler,
	authMiddleware *middleware.AuthMiddleware,
	corsMiddleware *middleware.CORSMiddleware,
	uploadDir string,
) *Router {
	return &Router{
		router:             mux.NewRouter(),
		authHandler:        authHandler,
		roomTypeHandler:    roomTypeHandler,
		roomHandler:        roomHandler,
		serviceTypeHandler: serviceTypeHandler,
		serviceHandler:     serviceHandler,
		variantHandler:     variantHandler,
		cameraHandler:      cameraHandler,
		historyHandler:     historyHandler,
		medicineHandler:    medicineHandler,
		treatmentHandler:   treatmentHandler,
		healthBookHandler:  healthBookHandler,
		reportHandler:      reportHandler,
		authMiddleware:     authMiddleware,
		corsMiddleware:     corsMiddleware,
		uploadDir:          uploadDir,
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
	authProtected.HandleFunc("/me", r.authHandler.GetCurrentUser).Methods(http.MethodGet)

	// Management routes: admin and staff mutate the catalog and facility.
	manage := api.PathPrefix("").Subrouter()
	manage.Use(r.authMiddleware.Authenticate)
	manage.Use(middleware.RequireAdminOrStaff)

	// Read routes: customers may browse too.
	read := api.PathPrefix("").Subrouter()
	read.Use(r.authMiddleware.Authenticate)
	read.Use(middleware.RequireAdminOrStaffOrUser)

	// Room types
	manage.HandleFunc("/room-types", r.roomTypeHandler.CreateRoomType).Methods(http.MethodPost)
	read.HandleFunc("/room-types", r.roomTypeHandler.GetAllRoomTypes).Methods(http.MethodGet)
	read.HandleFunc("/room-types/{id}", r.roomTypeHandler.GetRoomType).Methods(http.MethodGet)
	manage.HandleFunc("/room-types/{id}", r.roomTypeHandler.UpdateRoomType).Methods(http.MethodPut)
	manage.HandleFunc("/room-types/{id}", r.roomTypeHandler.DeleteRoomType).Methods(http.MethodDelete)

	// Rooms
	manage.HandleFunc("/rooms", r.roomHandler.CreateRoom).Methods(http.MethodPost)
	read.HandleFunc("/rooms", r.roomHandler.GetAllRooms).Methods(http.MethodGet)
	read.HandleFunc("/rooms/available", r.roomHandler.GetAvailableRooms).Methods(http.MethodGet)
	read.HandleFunc("/rooms/{id}", r.roomHandler.GetRoom).Methods(http.MethodGet)
	manage.HandleFunc("/rooms/{id}", r.roomHandler.UpdateRoom).Methods(http.MethodPut)
	manage.HandleFunc("/rooms/{id}/image", r.roomHandler.UploadRoomImage).Methods(http.MethodPost)
	manage.HandleFunc("/rooms/{id}", r.roomHandler.DeleteRoom).Methods(http.MethodDelete)

	// Service types
	manage.HandleFunc("/service-types", r.serviceTypeHandler.CreateServiceType).Methods(http.MethodPost)
	read.HandleFunc("/service-types", r.serviceTypeHandler.GetAllServiceTypes).Methods(http.MethodGet)
	read.HandleFunc("/service-types/{id}", r.serviceTypeHandler.GetServiceType).Methods(http.MethodGet)
	manage.HandleFunc("/service-types/{id}", r.serviceTypeHandler.UpdateServiceType).Methods(http.MethodPut)
	manage.HandleFunc("/service-types/{id}", r.serviceTypeHandler.DeleteServiceType).Methods(http.MethodDelete)

	// Services
	manage.HandleFunc("/services", r.serviceHandler.CreateService).Methods(http.MethodPost)
	read.HandleFunc("/services", r.serviceHandler.GetAllServices).Methods(http.MethodGet)
	read.HandleFunc("/services/{id}", r.serviceHandler.GetService).Methods(http.MethodGet)
	manage.HandleFunc("/services/{id}", r.serviceHandler.UpdateService).Methods(http.MethodPut)
	manage.HandleFunc("/services/{id}/image", r.serviceHandler.UploadServiceImage).Methods(http.MethodPost)
	manage.HandleFunc("/services/{id}", r.serviceHandler.DeleteService).Methods(http.MethodDelete)
	read.HandleFunc("/services/{serviceId}/variants", r.variantHandler.GetVariantsByService).Methods(http.MethodGet)

	// Service variants
	manage.HandleFunc("/service-variants", r.variantHandler.CreateVariant).Methods(http.MethodPost)
	read.HandleFunc("/service-variants", r.variantHandler.GetAllVariants).Methods(http.MethodGet)
	read.HandleFunc("/service-variants/{id}", r.variantHandler.GetVariant).Methods(http.MethodGet)
	manage.HandleFunc("/service-variants/{id}", r.variantHandler.UpdateVariant).Methods(http.MethodPut)
	manage.HandleFunc("/service-variants/{id}", r.variantHandler.DeleteVariant).Methods(http.MethodDelete)

	// Cameras (staff-only surface)
	manage.HandleFunc("/cameras", r.cameraHandler.CreateCamera).Methods(http.MethodPost)
	manage.HandleFunc("/cameras", r.cameraHandler.GetAllCameras).Methods(http.MethodGet)
	manage.HandleFunc("/cameras/available", r.cameraHandler.GetAvailableCameras).Methods(http.MethodGet)
	manage.HandleFunc("/cameras/{id}", r.cameraHandler.GetCamera).Methods(http.MethodGet)
	manage.HandleFunc("/cameras/{id}", r.cameraHandler.UpdateCamera).Methods(http.MethodPut)
	manage.HandleFunc("/cameras/{id}", r.cameraHandler.DeleteCamera).Methods(http.MethodDelete)

	// Room histories (check-in / check-out)
	manage.HandleFunc("/room-histories/check-in", r.historyHandler.CheckIn).Methods(http.MethodPost)
	manage.HandleFunc("/room-histories/{id}/check-out", r.historyHandler.CheckOut).Methods(http.MethodPost)
	manage.HandleFunc("/room-histories/open", r.historyHandler.GetOpenOccupancies).Methods(http.MethodGet)
	manage.HandleFunc("/room-histories/{id}", r.historyHandler.GetHistory).Methods(http.MethodGet)
	manage.HandleFunc("/rooms/{roomId}/histories", r.historyHandler.GetHistoriesByRoom).Methods(http.MethodGet)

	// Medicines
	manage.HandleFunc("/medicines", r.medicineHandler.CreateMedicine).Methods(http.MethodPost)
	manage.HandleFunc("/medicines", r.medicineHandler.GetAllMedicines).Methods(http.MethodGet)
	manage.HandleFunc("/medicines/{id}", r.medicineHandler.GetMedicine).Methods(http.MethodGet)
	manage.HandleFunc("/medicines/{id}", r.medicineHandler.UpdateMedicine).Methods(http.MethodPut)
	manage.HandleFunc("/medicines/{id}", r.medicineHandler.DeleteMedicine).Methods(http.MethodDelete)

	// Treatments
	manage.HandleFunc("/treatments", r.treatmentHandler.CreateTreatment).Methods(http.MethodPost)
	read.HandleFunc("/treatments", r.treatmentHandler.GetAllTreatments).Methods(http.MethodGet)
	read.HandleFunc("/treatments/{id}", r.treatmentHandler.GetTreatment).Methods(http.MethodGet)
	manage.HandleFunc("/treatments/{id}", r.treatmentHandler.UpdateTreatment).Methods(http.MethodPut)
	manage.HandleFunc("/treatments/{id}", r.treatmentHandler.DeleteTreatment).Methods(http.MethodDelete)

	// Pet health books
	manage.HandleFunc("/health-books", r.healthBookHandler.CreateHealthBook).Methods(http.MethodPost)
	read.HandleFunc("/health-books", r.healthBookHandler.GetAllHealthBooks).Methods(http.MethodGet)
	read.HandleFunc("/health-books/{id}", r.healthBookHandler.GetHealthBook).Methods(http.MethodGet)
	read.HandleFunc("/booking-items/{itemId}/health-books", r.healthBookHandler.GetHealthBooksByBookingItem).Methods(http.MethodGet)
	manage.HandleFunc("/health-books/{id}", r.healthBookHandler.UpdateHealthBook).Methods(http.MethodPut)
	manage.HandleFunc("/health-books/{id}", r.healthBookHandler.DeleteHealthBook).Methods(http.MethodDelete)

	// Reports
	manage.HandleFunc("/reports/room-status", r.reportHandler.GetRoomStatusReport).Methods(http.MethodGet)
	manage.HandleFunc("/reports/occupancy", r.reportHandler.GetOccupancyReport).Methods(http.MethodGet)
	manage.HandleFunc("/reports/revenue", r.reportHandler.GetRevenueReport).Methods(http.MethodGet)

	// Static uploads (room and service images)
	r.router.PathPrefix("/uploads/").Handler(
		http.StripPrefix("/uploads/", http.FileServer(http.Dir(r.uploadDir))),
	).Methods(http.MethodGet)

	// Add CORS middleware
	r.router.Use(r.corsMiddleware.Handle)

	return r.router
}

func (r *Router) healthCheck(w http.ResponseWriter, req *http.Request) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(http.StatusOK)
	w.Write([]byte(`{"status": "ok"}`))
}
