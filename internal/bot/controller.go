package bot

import (
	"context"
	"errors"
	"log/slog"

	"github.com/google/uuid"

	"github.com/khmershop/labelbot/constants"
	"github.com/khmershop/labelbot/internal/common"
	"github.com/khmershop/labelbot/internal/extract"
	"github.com/khmershop/labelbot/internal/label"
	"github.com/khmershop/labelbot/internal/order"
)

// Controller wires the extractor and renderer to the messaging gateway.
// It owns the success/failure contract: a handled event either produces its
// single side effect (attach action, deliver document) or degrades to a
// logged no-op. Handler errors never propagate; one bad message must not
// take down the event loop.
type Controller struct {
	gw        Gateway
	extractor *extract.Extractor
	log       *slog.Logger
}

func NewController(gw Gateway, ex *extract.Extractor, log *slog.Logger) *Controller {
	if log == nil {
		log = slog.Default()
	}
	return &Controller{gw: gw, extractor: ex, log: log}
}

// HandleMessage runs extraction on one inbound message and, on success,
// attaches the print action carrying the encoded fields to that message.
func (c *Controller) HandleMessage(ctx context.Context, msg Message) {
	if !msg.FromBot {
		return
	}
	eventID := uuid.NewString()
	ctx = common.WithEventID(ctx, eventID)

	fields, err := c.extractor.Extract(msg.Text)
	switch {
	case errors.Is(err, common.ErrIgnorableInput):
		return
	case errors.Is(err, common.ErrMalformedOrder):
		c.log.Warn("order.extract.malformed",
			"event_id", eventID, "chat_id", msg.ChatID, "message_id", msg.MessageID, "err", err)
		return
	case err != nil:
		c.log.Error("order.extract.failed",
			"event_id", eventID, "chat_id", msg.ChatID, "err", err)
		return
	}

	payload := order.EncodePayload(order.FieldsFromMap(fields))
	action := Action{Label: constants.PrintButtonLabel, Payload: payload}
	if err := c.gw.AttachAction(ctx, msg.ChatID, msg.MessageID, action); err != nil {
		c.log.Error("order.action.attach_failed",
			"event_id", eventID, "chat_id", msg.ChatID, "message_id", msg.MessageID,
			"err", common.WrapError(err, common.ErrDeliveryFailure.Error()))
		return
	}
	c.log.Info("order.action.attached",
		"event_id", eventID, "chat_id", msg.ChatID, "message_id", msg.MessageID,
		"payload_bytes", len(payload))
}

// HandleActivation decodes the print-action payload, renders the label, and
// delivers it to the chat. The activation is acknowledged only after the
// delivery call returns, so the UI never shows "done" before the document has
// been handed to the gateway — but it is acknowledged even on failure so the
// button does not stall.
func (c *Controller) HandleActivation(ctx context.Context, act Activation) {
	eventID := uuid.NewString()
	ctx = common.WithEventID(ctx, eventID)

	fields, err := order.DecodePayload(act.Payload)
	if err != nil {
		c.log.Warn("order.payload.decode_failed",
			"event_id", eventID, "chat_id", act.ChatID, "err", err)
		c.ack(ctx, act.ID, constants.PrintFailAckText, eventID)
		return
	}

	doc, err := label.RenderPDF(fields)
	if err != nil {
		// should be unreachable given all-or-nothing extraction
		c.log.Error("label.render.failed", "event_id", eventID, "chat_id", act.ChatID, "err", err)
		c.ack(ctx, act.ID, constants.PrintFailAckText, eventID)
		return
	}

	err = c.gw.SendDocument(ctx, act.ChatID, Document{
		Name:  constants.LabelFilename,
		Bytes: doc,
	})
	if err != nil {
		c.log.Error("label.deliver.failed",
			"event_id", eventID, "chat_id", act.ChatID,
			"err", common.WrapError(err, common.ErrDeliveryFailure.Error()))
		c.ack(ctx, act.ID, constants.PrintFailAckText, eventID)
		return
	}

	c.ack(ctx, act.ID, constants.PrintedAckText, eventID)
	c.log.Info("label.delivered",
		"event_id", eventID, "chat_id", act.ChatID, "bytes", len(doc))
}

func (c *Controller) ack(ctx context.Context, activationID, text, eventID string) {
	if err := c.gw.Acknowledge(ctx, activationID, text); err != nil {
		c.log.Warn("activation.ack_failed", "event_id", eventID, "err", err)
	}
}
