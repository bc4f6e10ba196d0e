package service

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"net/http"
	"time"

	"storefront-backend/internal/models"
	"storefront-backend/internal/repository"
	"storefront-backend/pkg/logger"
)

const dispatchBatchSize = 25

// EventService drains the server-side conversion event queue. Events are
// POSTed to the configured conversions endpoint; with no endpoint set the
// queue drains as sent so local and staging runs do not accumulate rows.
type EventService struct {
	eventRepo   repository.EventRepository
	endpoint    string
	accessToken string
	client      *http.Client
}

func NewEventService(eventRepo repository.EventRepository, endpoint, accessToken string) *EventService {
	return &EventService{
		eventRepo:   eventRepo,
		endpoint:    endpoint,
		accessToken: accessToken,
		client:      &http.Client{Timeout: 10 * time.Second},
	}
}

// DispatchPending delivers up to one batch of pending events. Delivery
// failures mark the event failed with the error recorded; the row keeps
// its attempt count for the admin to inspect.
func (s *EventService) DispatchPending(ctx context.Context) error {
	events, err := s.eventRepo.GetPending(dispatchBatchSize)
	if err != nil {
		return fmt.Errorf("failed to load pending events: %w", err)
	}

	for _, event := range events {
		select {
		case <-ctx.Done():
			return ctx.Err()
		default:
		}

		if err := s.deliver(ctx, &event); err != nil {
			logger.Error(err, "Conversion event delivery failed", map[string]interface{}{
				"event_id": event.EventID,
				"attempts": event.Attempts + 1,
			})
			if markErr := s.eventRepo.MarkFailed(event.ID, err.Error()); markErr != nil {
				return markErr
			}
			continue
		}

		if err := s.eventRepo.MarkSent(event.ID); err != nil {
			return err
		}
	}

	return nil
}

func (s *EventService) deliver(ctx context.Context, event *models.ServerEvent) error {
	if s.endpoint == "" {
		logger.Debug("No conversions endpoint configured, marking event sent", map[string]interface{}{
			"event_id": event.EventID,
		})
		return nil
	}

	body, err := json.Marshal(map[string]interface{}{
		"event_name": event.EventName,
		"event_id":   event.EventID,
		"data":       event.Payload,
	})
	if err != nil {
		return fmt.Errorf("failed to encode event: %w", err)
	}

	req, err := http.NewRequestWithContext(ctx, http.MethodPost, s.endpoint, bytes.NewReader(body))
	if err != nil {
		return err
	}
	req.Header.Set("Content-Type", "application/json")
	if s.accessToken != "" {
		req.Header.Set("Authorization", "Bearer "+s.accessToken)
	}

	resp, err := s.client.Do(req)
	if err != nil {
		return err
	}
	defer resp.Body.Close()

	if resp.StatusCode >= 300 {
		return fmt.Errorf("conversions endpoint returned %d", resp.StatusCode)
	}

	return nil
}
