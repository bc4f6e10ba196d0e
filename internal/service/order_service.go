package service

import (
	"fmt"

	"github.com/google/uuid"

	"storefront-backend/internal/models"
	"storefront-backend/internal/repository"
	"storefront-backend/internal/webhook"
	"storefront-backend/pkg/logger"
)

// OrderService ingests payment processor webhooks and backs the admin
// order screens.
type OrderService struct {
	orderRepo     repository.OrderRepository
	productRepo   repository.ProductRepository
	inventoryRepo repository.InventoryRepository
	eventRepo     repository.EventRepository
}

func NewOrderService(
	orderRepo repository.OrderRepository,
	productRepo repository.ProductRepository,
	inventoryRepo repository.InventoryRepository,
	eventRepo repository.EventRepository,
) *OrderService {
	return &OrderService{
		orderRepo:     orderRepo,
		productRepo:   productRepo,
		inventoryRepo: inventoryRepo,
		eventRepo:     eventRepo,
	}
}

// ProcessOrderEvent applies a verified webhook event. Non-payment
// statuses are acknowledged without side effects (processed=false).
// Payment events upsert the order, decrement stock with an audit log
// entry, and enqueue a server-side Purchase conversion event. Retried
// deliveries are idempotent: the order upserts by external id and the
// conversion queue drops duplicate event ids.
func (s *OrderService) ProcessOrderEvent(event *webhook.OrderEvent) (*models.Order, bool, error) {
	if !event.Processable() {
		logger.Info("Ignoring webhook event", map[string]interface{}{
			"order_id": event.OrderID,
			"status":   event.Status,
		})
		return nil, false, nil
	}

	eventID := event.EventID
	if eventID == "" {
		eventID = uuid.NewString()
	}

	firstDelivery := true
	if _, err := s.orderRepo.GetByExternalID(event.OrderID); err == nil {
		firstDelivery = false
	}

	order := &models.Order{
		ExternalID:    event.OrderID,
		CustomerName:  event.Customer.Name,
		CustomerEmail: event.Customer.Email,
		Total:         event.Total,
		Status:        event.Status,
		EventID:       eventID,
	}
	// Item rows are created once; redeliveries update the order header only.
	if firstDelivery {
		for _, line := range event.Items {
			order.Items = append(order.Items, models.OrderItem{
				ProductID: line.ProductID,
				Title:     line.Title,
				Size:      line.Size,
				Quantity:  line.Quantity,
				Price:     line.Price,
			})
		}
	}

	if err := s.orderRepo.Upsert(order); err != nil {
		return nil, false, fmt.Errorf("failed to store order: %w", err)
	}

	if firstDelivery {
		s.applyStockChanges(order, event.Items)
	}

	payload := models.JSONMap{
		"order_id": event.OrderID,
		"value":    event.Total,
		"currency": "BRL",
		"email":    event.Customer.Email,
	}
	if err := s.eventRepo.Enqueue(&models.ServerEvent{
		EventName: "Purchase",
		EventID:   eventID,
		Status:    "pending",
		Payload:   payload,
	}); err != nil {
		logger.Error(err, "Failed to enqueue conversion event", map[string]interface{}{"event_id": eventID})
	}

	logger.Info("Processed order webhook", map[string]interface{}{
		"order_id": event.OrderID,
		"total":    event.Total,
		"items":    len(event.Items),
	})

	return order, true, nil
}

// applyStockChanges decrements stock per line and records the change.
// A line whose product id is unknown is logged and skipped; the order
// itself is already stored.
func (s *OrderService) applyStockChanges(order *models.Order, lines []webhook.OrderLine) {
	for _, line := range lines {
		quantity := line.Quantity
		if quantity <= 0 {
			quantity = 1
		}

		product, err := s.productRepo.GetByExternalID(line.ProductID)
		if err != nil {
			logger.Warn("Order line references unknown product", map[string]interface{}{
				"order_id":   order.ExternalID,
				"product_id": line.ProductID,
			})
			continue
		}

		if err := s.productRepo.AdjustStock(product.ID, -quantity); err != nil {
			logger.Error(err, "Failed to decrement stock", map[string]interface{}{"product_id": product.ID})
			continue
		}

		orderID := order.ID
		if err := s.inventoryRepo.Log(&models.InventoryLog{
			ProductID:    product.ID,
			ChangeAmount: -quantity,
			Reason:       "order",
			OrderID:      &orderID,
		}); err != nil {
			logger.Error(err, "Failed to record inventory change", map[string]interface{}{"product_id": product.ID})
		}
	}
}

func (s *OrderService) GetAll(limit, offset int) ([]models.Order, int64, error) {
	if limit <= 0 || limit > 100 {
		limit = 20
	}
	if offset < 0 {
		offset = 0
	}
	return s.orderRepo.GetAll(limit, offset)
}

func (s *OrderService) GetByID(id uint) (*models.Order, error) {
	return s.orderRepo.GetByID(id)
}

func (s *OrderService) UpdateTracking(id uint, req models.UpdateTrackingRequest) (*models.Order, error) {
	order, err := s.orderRepo.GetByID(id)
	if err != nil {
		return nil, err
	}

	order.TrackingCode = req.TrackingCode
	if order.Status == "paid" || order.Status == "approved" {
		order.Status = "shipped"
	}

	if err := s.orderRepo.Update(order); err != nil {
		return nil, fmt.Errorf("failed to update order: %w", err)
	}
	return order, nil
}
