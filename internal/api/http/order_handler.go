package http

import (
	"context"
	"net/http"

	"ayudame3d-backend/internal/domain"
	"ayudame3d-backend/internal/service"
)

const maxUploadBytes = 32 << 20 // 32 MB across a multipart request

func (rt *Router) createOrder(w http.ResponseWriter, r *http.Request) {
	var req struct {
		Description     string `json:"description"`
		LongDescription string `json:"long_description"`
		HelperID        int32  `json:"helper_id"`
	}
	if err := decodeJSON(r, &req); err != nil {
		respondMsg(w, http.StatusBadRequest, "Missing JSON in request")
		return
	}
	if req.HelperID == 0 {
		respondMsg(w, http.StatusBadRequest, "Missing helper_id parameter")
		return
	}
	if req.Description == "" {
		respondMsg(w, http.StatusBadRequest, "Missing description parameter")
		return
	}

	order, err := rt.orders.CreateOrder(r.Context(), req.HelperID, req.Description, req.LongDescription)
	if err != nil {
		respondError(w, err)
		return
	}
	respondJSON(w, http.StatusCreated, order)
}

func (rt *Router) listOrders(w http.ResponseWriter, r *http.Request) {
	requester, err := rt.users.GetUser(r.Context(), currentUserID(r))
	if err != nil {
		respondMsg(w, http.StatusUnauthorized, "unknown user")
		return
	}

	orders, err := rt.orders.ListOrders(r.Context(), requester)
	if err != nil {
		respondError(w, err)
		return
	}
	respondJSON(w, http.StatusOK, orders)
}

func (rt *Router) getOrder(w http.ResponseWriter, r *http.Request) {
	id, ok := pathID(r)
	if !ok {
		respondMsg(w, http.StatusBadRequest, "invalid order id")
		return
	}
	order, err := rt.orders.GetOrder(r.Context(), id)
	if err != nil {
		respondError(w, err)
		return
	}
	respondJSON(w, http.StatusOK, order)
}

func (rt *Router) updateOrder(w http.ResponseWriter, r *http.Request) {
	id, ok := pathID(r)
	if !ok {
		respondMsg(w, http.StatusBadRequest, "invalid order id")
		return
	}

	var req struct {
		Description     string `json:"description"`
		LongDescription string `json:"long_description"`
		HelperID        int32  `json:"helper_id"`
	}
	if err := decodeJSON(r, &req); err != nil {
		respondMsg(w, http.StatusBadRequest, "Missing JSON in request")
		return
	}

	order, err := rt.orders.UpdateOrder(r.Context(), id, req.HelperID, req.Description, req.LongDescription)
	if err != nil {
		respondError(w, err)
		return
	}
	respondJSON(w, http.StatusOK, order)
}

func (rt *Router) deleteOrder(w http.ResponseWriter, r *http.Request) {
	id, ok := pathID(r)
	if !ok {
		respondMsg(w, http.StatusBadRequest, "invalid order id")
		return
	}
	if err := rt.orders.DeleteOrder(r.Context(), id); err != nil {
		respondError(w, err)
		return
	}
	respondJSON(w, http.StatusOK, map[string]string{"status": "ok"})
}

func (rt *Router) acceptOrder(w http.ResponseWriter, r *http.Request) {
	rt.transition(w, r, rt.orders.AcceptOrder)
}

func (rt *Router) rejectOrder(w http.ResponseWriter, r *http.Request) {
	rt.transition(w, r, rt.orders.RejectOrder)
}

func (rt *Router) setOrderReady(w http.ResponseWriter, r *http.Request) {
	rt.transition(w, r, rt.orders.SetOrderReady)
}

func (rt *Router) completeOrder(w http.ResponseWriter, r *http.Request) {
	rt.transition(w, r, rt.orders.CompleteOrder)
}

func (rt *Router) transition(w http.ResponseWriter, r *http.Request, fn func(ctx context.Context, id int32) (*domain.Order, error)) {
	id, ok := pathID(r)
	if !ok {
		respondMsg(w, http.StatusBadRequest, "invalid order id")
		return
	}
	order, err := fn(r.Context(), id)
	if err != nil {
		respondError(w, err)
		return
	}
	respondJSON(w, http.StatusOK, order)
}

func (rt *Router) saveVideo(w http.ResponseWriter, r *http.Request) {
	id, ok := pathID(r)
	if !ok {
		respondMsg(w, http.StatusBadRequest, "invalid order id")
		return
	}

	var req struct {
		Name string `json:"name"`
		URL  string `json:"url"`
	}
	if err := decodeJSON(r, &req); err != nil || req.URL == "" {
		respondMsg(w, http.StatusBadRequest, "Missing url parameter")
		return
	}
	if req.Name == "" {
		req.Name = "video"
	}

	doc, err := rt.orders.SaveVideo(r.Context(), id, currentUserID(r), req.Name, req.URL)
	if err != nil {
		respondError(w, err)
		return
	}
	respondJSON(w, http.StatusCreated, doc)
}

func (rt *Router) saveFiles(w http.ResponseWriter, r *http.Request) {
	id, ok := pathID(r)
	if !ok {
		respondMsg(w, http.StatusBadRequest, "invalid order id")
		return
	}

	if err := r.ParseMultipartForm(maxUploadBytes); err != nil {
		respondMsg(w, http.StatusBadRequest, "expected multipart form upload")
		return
	}

	var files []service.UploadFile
	for _, headers := range r.MultipartForm.File {
		for _, fh := range headers {
			f, err := fh.Open()
			if err != nil {
				respondMsg(w, http.StatusBadRequest, "unreadable file in upload")
				return
			}
			defer f.Close()
			files = append(files, service.UploadFile{
				Name:        fh.Filename,
				ContentType: fh.Header.Get("Content-Type"),
				Body:        f,
			})
		}
	}
	if len(files) == 0 {
		respondMsg(w, http.StatusBadRequest, "no files in upload")
		return
	}

	docs, err := rt.orders.SaveFiles(r.Context(), id, currentUserID(r), files)
	if err != nil {
		respondError(w, err)
		return
	}
	respondJSON(w, http.StatusCreated, docs)
}

func (rt *Router) saveOrderAddress(w http.ResponseWriter, r *http.Request) {
	id, ok := pathID(r)
	if !ok {
		respondMsg(w, http.StatusBadRequest, "invalid order id")
		return
	}

	var req struct {
		Kind       string `json:"kind"`
		Address    string `json:"address"`
		City       string `json:"city"`
		Country    string `json:"country"`
		PostalCode string `json:"postal_code"`
	}
	if err := decodeJSON(r, &req); err != nil {
		respondMsg(w, http.StatusBadRequest, "Missing JSON in request")
		return
	}
	if req.Address == "" || req.City == "" {
		respondMsg(w, http.StatusBadRequest, "Missing address or city parameter")
		return
	}

	kind := domain.AddressKindDelivery
	if req.Kind == string(domain.AddressKindPickup) {
		kind = domain.AddressKindPickup
	}

	addr := &domain.Address{
		Address:    req.Address,
		City:       req.City,
		Country:    req.Country,
		PostalCode: req.PostalCode,
	}
	order, err := rt.orders.SaveOrderAddress(r.Context(), id, currentUserID(r), kind, addr)
	if err != nil {
		respondError(w, err)
		return
	}
	respondJSON(w, http.StatusOK, order)
}
