package service

import (
	"context"

	"ayudame3d-backend/internal/domain"
	"ayudame3d-backend/internal/logger"
	"ayudame3d-backend/internal/repository"
	"ayudame3d-backend/internal/storage"
)

type orderService struct {
	orderRepo  repository.OrderRepository
	docRepo    repository.DocumentRepository
	userRepo   repository.UserRepository
	statusRepo repository.StatusRepository
	emailSvc   EmailService
	store      storage.ObjectStorage
	tx         repository.TxRunner
}

func NewOrderService(
	orderRepo repository.OrderRepository,
	docRepo repository.DocumentRepository,
	userRepo repository.UserRepository,
	statusRepo repository.StatusRepository,
	emailSvc EmailService,
	store storage.ObjectStorage,
	tx repository.TxRunner,
) OrderService {
	return &orderService{
		orderRepo:  orderRepo,
		docRepo:    docRepo,
		userRepo:   userRepo,
		statusRepo: statusRepo,
		emailSvc:   emailSvc,
		store:      store,
		tx:         tx,
	}
}

func (s *orderService) CreateOrder(ctx context.Context, helperID int32, description, longDescription string) (*domain.Order, error) {
	helper, err := s.userRepo.GetByID(ctx, helperID)
	if err != nil {
		return nil, err
	}

	order := &domain.Order{
		Description:     description,
		LongDescription: longDescription,
		HelperID:        helper.ID,
		StatusID:        domain.StatusPending,
		Active:          true,
	}
	if err := s.orderRepo.Create(ctx, order); err != nil {
		return nil, err
	}

	if err := s.emailSvc.SendNewOrder(ctx, helper.Email, order.ID); err != nil {
		logger.Error("failed to send new order mail", "order_id", order.ID, "helper_id", helper.ID, "error", err)
	}

	return order, nil
}

// GetOrder resolves archived orders too; only listings filter on active.
func (s *orderService) GetOrder(ctx context.Context, id int32) (*domain.Order, error) {
	return s.orderRepo.GetByID(ctx, id)
}

func (s *orderService) ListOrders(ctx context.Context, requester *domain.User) ([]domain.Order, error) {
	if requester.IsHelper() {
		return s.orderRepo.ListForHelper(ctx, requester.ID)
	}
	return s.orderRepo.ListActive(ctx)
}

// UpdateOrder edits the descriptive fields and, when helperID names a
// different helper or the order sits in Rejected, reassigns it: the status
// resets to Pending and the new helper gets the new-order mail.
func (s *orderService) UpdateOrder(ctx context.Context, id, helperID int32, description, longDescription string) (*domain.Order, error) {
	order, err := s.orderRepo.GetByID(ctx, id)
	if err != nil {
		return nil, err
	}

	if description != "" {
		order.Description = description
	}
	if longDescription != "" {
		order.LongDescription = longDescription
	}

	reassigned := helperID != 0 && (helperID != order.HelperID || order.StatusID == domain.StatusRejected)
	var helper *domain.User
	if reassigned {
		helper, err = s.userRepo.GetByID(ctx, helperID)
		if err != nil {
			return nil, err
		}
		order.HelperID = helper.ID
		order.StatusID = domain.StatusPending
	}

	if err := s.orderRepo.Update(ctx, order); err != nil {
		return nil, err
	}

	if reassigned {
		if err := s.emailSvc.SendNewOrder(ctx, helper.Email, order.ID); err != nil {
			logger.Error("failed to send new order mail", "order_id", order.ID, "helper_id", helper.ID, "error", err)
		}
	}

	return order, nil
}

func (s *orderService) AcceptOrder(ctx context.Context, id int32) (*domain.Order, error) {
	order, err := s.transition(ctx, id, domain.StatusProcessing)
	if err != nil {
		return nil, err
	}
	if err := s.emailSvc.SendOrderAccepted(ctx, order.ID); err != nil {
		logger.Error("failed to send acceptance mail", "order_id", order.ID, "error", err)
	}
	return order, nil
}

func (s *orderService) RejectOrder(ctx context.Context, id int32) (*domain.Order, error) {
	order, err := s.transition(ctx, id, domain.StatusRejected)
	if err != nil {
		return nil, err
	}
	if err := s.emailSvc.SendOrderRejected(ctx, order.ID); err != nil {
		logger.Error("failed to send rejection mail", "order_id", order.ID, "error", err)
	}
	return order, nil
}

func (s *orderService) SetOrderReady(ctx context.Context, id int32) (*domain.Order, error) {
	order, err := s.transition(ctx, id, domain.StatusReady)
	if err != nil {
		return nil, err
	}
	if err := s.emailSvc.SendOrderStatusChanged(ctx, order.ID, s.statusName(ctx, order.StatusID)); err != nil {
		logger.Error("failed to send status change mail", "order_id", order.ID, "error", err)
	}
	return order, nil
}

// CompleteOrder is the set-approved transition; Approved and Completed are
// one status and the helper gets the completion mail.
func (s *orderService) CompleteOrder(ctx context.Context, id int32) (*domain.Order, error) {
	order, err := s.transition(ctx, id, domain.StatusCompleted)
	if err != nil {
		return nil, err
	}

	helper, err := s.userRepo.GetByID(ctx, order.HelperID)
	if err != nil {
		logger.Error("completed order has no resolvable helper", "order_id", order.ID, "helper_id", order.HelperID, "error", err)
		return order, nil
	}
	if err := s.emailSvc.SendOrderCompleted(ctx, helper.Email, order.ID); err != nil {
		logger.Error("failed to send completion mail", "order_id", order.ID, "error", err)
	}
	return order, nil
}

// DeleteOrder archives the order; documents and references stay intact.
func (s *orderService) DeleteOrder(ctx context.Context, id int32) error {
	return s.orderRepo.Deactivate(ctx, id)
}

func (s *orderService) SaveVideo(ctx context.Context, orderID, userID int32, name, url string) (*domain.Document, error) {
	order, err := s.orderRepo.GetByID(ctx, orderID)
	if err != nil {
		return nil, err
	}

	doc := &domain.Document{
		Name:    name,
		URL:     url,
		OrderID: order.ID,
		UserID:  userID,
	}
	if err := s.docRepo.Create(ctx, doc); err != nil {
		return nil, err
	}

	s.sendNewDataMail(ctx, order)
	return doc, nil
}

// SaveFiles uploads each file to object storage and records the resulting
// URLs as documents in one staged transaction. A failed upload is logged and
// that file is skipped; it never produces a document and never fails the
// request on its own.
func (s *orderService) SaveFiles(ctx context.Context, orderID, userID int32, files []UploadFile) ([]domain.Document, error) {
	order, err := s.orderRepo.GetByID(ctx, orderID)
	if err != nil {
		return nil, err
	}

	var uploaded []domain.Document
	for _, f := range files {
		url, err := s.store.Upload(ctx, f.Body, f.Name, f.ContentType)
		if err != nil {
			logger.Error("upload failed, skipping document", "order_id", order.ID, "file", f.Name, "error", err)
			continue
		}
		uploaded = append(uploaded, domain.Document{
			Name:    f.Name,
			URL:     url,
			OrderID: order.ID,
			UserID:  userID,
		})
	}

	if len(uploaded) == 0 {
		return nil, nil
	}

	docs := make([]domain.Document, 0, len(uploaded))
	err = s.tx.WithinTx(ctx, func(a repository.Atomic) error {
		for _, d := range uploaded {
			doc := d
			if err := a.Documents.Create(ctx, &doc); err != nil {
				return err
			}
			docs = append(docs, doc)
		}
		return nil
	})
	if err != nil {
		return nil, err
	}

	s.sendNewDataMail(ctx, order)
	return docs, nil
}

func (s *orderService) SaveOrderAddress(ctx context.Context, orderID, userID int32, kind domain.AddressKind, addr *domain.Address) (*domain.Order, error) {
	order, err := s.orderRepo.GetByID(ctx, orderID)
	if err != nil {
		return nil, err
	}

	addr.UserID = userID
	err = s.tx.WithinTx(ctx, func(a repository.Atomic) error {
		if err := a.Addresses.Create(ctx, addr); err != nil {
			return err
		}
		if kind == domain.AddressKindPickup {
			order.PickupAddressID = &addr.ID
		} else {
			order.DeliveryAddressID = &addr.ID
		}
		return a.Orders.Update(ctx, order)
	})
	if err != nil {
		return nil, err
	}
	return order, nil
}

func (s *orderService) ListStatuses(ctx context.Context) ([]domain.Status, error) {
	return s.statusRepo.List(ctx)
}

func (s *orderService) SendPendingReminders(ctx context.Context, olderThanDays int) (int, error) {
	orders, err := s.orderRepo.ListPendingOlderThan(ctx, olderThanDays)
	if err != nil {
		return 0, err
	}

	sent := 0
	for _, order := range orders {
		helper, err := s.userRepo.GetByID(ctx, order.HelperID)
		if err != nil {
			logger.Error("pending order has no resolvable helper", "order_id", order.ID, "helper_id", order.HelperID, "error", err)
			continue
		}
		if err := s.emailSvc.SendNewOrder(ctx, helper.Email, order.ID); err != nil {
			logger.Error("failed to send pending reminder", "order_id", order.ID, "error", err)
			continue
		}
		sent++
	}
	return sent, nil
}

// transition loads the order, writes the new status and returns the updated
// record. Each caller fires exactly one notification afterwards.
func (s *orderService) transition(ctx context.Context, id, statusID int32) (*domain.Order, error) {
	order, err := s.orderRepo.GetByID(ctx, id)
	if err != nil {
		return nil, err
	}

	order.StatusID = statusID
	if err := s.orderRepo.Update(ctx, order); err != nil {
		return nil, err
	}
	return order, nil
}

func (s *orderService) sendNewDataMail(ctx context.Context, order *domain.Order) {
	if err := s.emailSvc.SendOrderNewData(ctx, order.ID, s.statusName(ctx, order.StatusID)); err != nil {
		logger.Error("failed to send new data mail", "order_id", order.ID, "error", err)
	}
}

func (s *orderService) statusName(ctx context.Context, statusID int32) string {
	st, err := s.statusRepo.GetByID(ctx, statusID)
	if err != nil {
		return ""
	}
	return st.Name
}
