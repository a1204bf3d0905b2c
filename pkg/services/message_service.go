package services

import (
	"context"
	"errors"

	"github.com/daybreakhq/daybreak/pkg/domain"
	"github.com/daybreakhq/daybreak/pkg/models"
	"github.com/daybreakhq/daybreak/pkg/store"
	"github.com/daybreakhq/daybreak/pkg/uow"
)

// MessageService handles inbound communications: SMS receipt and brain
// dump capture. Both persist immediately and defer the heavy lifting to
// background jobs flushed after commit.
type MessageService struct {
	uow   *uow.Factory
	store *store.Store
}

// NewMessageService creates a MessageService.
func NewMessageService(uowf *uow.Factory, st *store.Store) *MessageService {
	return &MessageService{uow: uowf, store: st}
}

// ReceiveSMS persists the inbound text as a USER message and defers
// process_inbound_sms, which runs the LLM reply use case.
func (s *MessageService) ReceiveSMS(ctx context.Context, req models.ReceiveSMSRequest) (*domain.Message, error) {
	if req.Body == "" {
		return nil, NewValidationError("body", "required")
	}
	if req.FromNumber == "" {
		return nil, NewValidationError("from_number", "required")
	}
	user, err := s.store.UserByPhone(ctx, req.FromNumber)
	if err != nil {
		return nil, mapStoreErr(err)
	}

	msg := domain.NewMessage(user.ID, domain.RoleUser, req.Body)
	msg.Meta["from_number"] = req.FromNumber
	msg.Meta["to_number"] = req.ToNumber
	if req.Provider != "" {
		msg.Meta["provider"] = req.Provider
	}

	u, ctx, err := s.uow.Begin(ctx)
	if err != nil {
		return nil, err
	}
	defer u.Rollback()

	u.Add(msg)
	u.Defer(uow.JobRequest{
		UserID: user.ID,
		Kind:   JobProcessInboundSMS,
		Payload: map[string]any{
			"message_id": msg.ID.String(),
		},
	})
	if err := u.Commit(ctx); err != nil {
		return nil, err
	}
	return msg, nil
}

// CaptureBrainDump appends raw items to the date's capture list and defers
// one process_brain_dump_item job per item. Concurrent captures converge
// on the same row through the deterministic brain-dump identity.
func (s *MessageService) CaptureBrainDump(ctx context.Context, req models.CaptureBrainDumpRequest) (*domain.BrainDump, error) {
	if len(req.Items) == 0 {
		return nil, NewValidationError("items", "required")
	}
	date, err := domain.ParseDate(req.Date)
	if err != nil {
		return nil, NewValidationError("date", err.Error())
	}

	dump, err := s.store.BrainDumpByDate(ctx, req.UserID, date)
	if errors.Is(err, store.ErrNotFound) {
		dump = domain.NewBrainDump(req.UserID, date)
	} else if err != nil {
		return nil, err
	}

	u, ctx, err := s.uow.Begin(ctx)
	if err != nil {
		return nil, err
	}
	defer u.Rollback()

	for _, text := range req.Items {
		if text == "" {
			continue
		}
		itemID := dump.AddItem(text)
		u.Defer(uow.JobRequest{
			UserID: req.UserID,
			Kind:   JobProcessBrainDumpItem,
			Payload: map[string]any{
				"day_date": string(date),
				"item_id":  itemID.String(),
			},
		})
	}
	u.Add(dump)
	if err := u.Commit(ctx); err != nil {
		return nil, err
	}
	return dump, nil
}
