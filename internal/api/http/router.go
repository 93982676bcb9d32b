package http

import (
	"net/http"

	"github.com/gorilla/mux"

	"ayudame3d-backend/internal/security"
	"ayudame3d-backend/internal/service"
)

// Router wires the HTTP surface to the services.
type Router struct {
	*mux.Router
	auth      service.AuthService
	users     service.UserService
	orders    service.OrderService
	documents service.DocumentService
	tokens    security.TokenManager
}

func NewRouter(
	auth service.AuthService,
	users service.UserService,
	orders service.OrderService,
	documents service.DocumentService,
	tokens security.TokenManager,
) *Router {
	rt := &Router{
		Router:    mux.NewRouter(),
		auth:      auth,
		users:     users,
		orders:    orders,
		documents: documents,
		tokens:    tokens,
	}

	rt.HandleFunc("/health", rt.healthCheck).Methods("GET")

	// Public routes: login, the password reset flow and order creation.
	rt.HandleFunc("/login", rt.login).Methods("POST")
	rt.HandleFunc("/forgot-password", rt.forgotPassword).Methods("POST")
	rt.HandleFunc("/reset-password", rt.resetPassword).Methods("POST")
	rt.HandleFunc("/orders", rt.createOrder).Methods("POST")

	// Everything else requires a bearer token.
	api := rt.PathPrefix("/").Subrouter()
	api.Use(rt.requireAuth)

	api.HandleFunc("/get-user-authenticated", rt.getAuthenticatedUser).Methods("GET")

	api.HandleFunc("/users", rt.listUsers).Methods("GET")
	api.HandleFunc("/users/create", rt.createUser).Methods("POST")
	api.HandleFunc("/users/{id}", rt.getUser).Methods("GET")
	api.HandleFunc("/users/{id}", rt.updateUser).Methods("PUT")
	api.HandleFunc("/users/{id}", rt.deactivateUser).Methods("DELETE")
	api.HandleFunc("/helpers", rt.listHelpers).Methods("GET")
	api.HandleFunc("/roles", rt.listRoles).Methods("GET")
	api.HandleFunc("/status", rt.listStatuses).Methods("GET")

	api.HandleFunc("/orders", rt.listOrders).Methods("GET")
	api.HandleFunc("/orders/{id}", rt.getOrder).Methods("GET")
	api.HandleFunc("/orders/{id}", rt.updateOrder).Methods("PUT")
	api.HandleFunc("/orders/{id}", rt.deleteOrder).Methods("DELETE")
	api.HandleFunc("/orders/{id}/accept", rt.acceptOrder).Methods("POST")
	api.HandleFunc("/orders/{id}/reject", rt.rejectOrder).Methods("POST")
	api.HandleFunc("/orders/{id}/set-ready", rt.setOrderReady).Methods("POST")
	api.HandleFunc("/orders/{id}/set-approved", rt.completeOrder).Methods("POST")
	api.HandleFunc("/orders/{id}/save-video", rt.saveVideo).Methods("POST")
	api.HandleFunc("/orders/{id}/save-files", rt.saveFiles).Methods("POST")
	api.HandleFunc("/orders/{id}/addresses/save", rt.saveOrderAddress).Methods("POST")
	api.HandleFunc("/orders/{id}/documents", rt.listOrderDocuments).Methods("GET")

	api.HandleFunc("/documents/{id}", rt.deleteDocument).Methods("DELETE")

	return rt
}

func (rt *Router) healthCheck(w http.ResponseWriter, r *http.Request) {
	respondJSON(w, http.StatusOK, map[string]string{"status": "ok"})
}
