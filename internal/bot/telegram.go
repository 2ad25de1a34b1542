package bot

import (
	"context"
	"fmt"
	"log/slog"
	"time"

	tgbotapi "github.com/go-telegram-bot-api/telegram-bot-api/v5"
)

// Telegram caps callback data at 64 bytes; a payload past that cannot ride on
// an inline button and the attach is refused outright.
const maxCallbackPayload = 64

// TelegramGateway adapts the Telegram Bot API to the Gateway capability.
type TelegramGateway struct {
	api         *tgbotapi.BotAPI
	pollTimeout time.Duration
	log         *slog.Logger
}

func NewTelegramGateway(token string, pollTimeout time.Duration, log *slog.Logger) (*TelegramGateway, error) {
	if log == nil {
		log = slog.Default()
	}
	api, err := tgbotapi.NewBotAPI(token)
	if err != nil {
		return nil, fmt.Errorf("telegram session: %w", err)
	}
	return &TelegramGateway{api: api, pollTimeout: pollTimeout, log: log}, nil
}

// Username returns the authenticated bot account name.
func (g *TelegramGateway) Username() string {
	return g.api.Self.UserName
}

func (g *TelegramGateway) AttachAction(ctx context.Context, chatID int64, messageID int, a Action) error {
	if err := ctx.Err(); err != nil {
		return err
	}
	if len(a.Payload) > maxCallbackPayload {
		return fmt.Errorf("action payload is %d bytes, telegram allows %d", len(a.Payload), maxCallbackPayload)
	}
	markup := tgbotapi.NewInlineKeyboardMarkup(
		tgbotapi.NewInlineKeyboardRow(
			tgbotapi.NewInlineKeyboardButtonData(a.Label, a.Payload),
		),
	)
	edit := tgbotapi.NewEditMessageReplyMarkup(chatID, messageID, markup)
	if _, err := g.api.Request(edit); err != nil {
		return fmt.Errorf("edit reply markup: %w", err)
	}
	return nil
}

func (g *TelegramGateway) SendDocument(ctx context.Context, chatID int64, d Document) error {
	if err := ctx.Err(); err != nil {
		return err
	}
	doc := tgbotapi.NewDocument(chatID, tgbotapi.FileBytes{Name: d.Name, Bytes: d.Bytes})
	doc.Caption = d.Caption
	if _, err := g.api.Send(doc); err != nil {
		return fmt.Errorf("send document: %w", err)
	}
	return nil
}

func (g *TelegramGateway) Acknowledge(ctx context.Context, activationID, text string) error {
	if err := ctx.Err(); err != nil {
		return err
	}
	cb := tgbotapi.NewCallback(activationID, text)
	if _, err := g.api.Request(cb); err != nil {
		return fmt.Errorf("answer callback: %w", err)
	}
	return nil
}

// Run long-polls the gateway and dispatches events to the controller until
// ctx is cancelled. Events are handled sequentially; handlers share no
// mutable state, each activation payload is self-contained.
func (g *TelegramGateway) Run(ctx context.Context, c *Controller) {
	u := tgbotapi.NewUpdate(0)
	u.Timeout = int(g.pollTimeout.Seconds())
	updates := g.api.GetUpdatesChan(u)

	g.log.Info("telegram.polling", "bot", g.Username(), "timeout_s", u.Timeout)
	for {
		select {
		case <-ctx.Done():
			g.api.StopReceivingUpdates()
			return
		case upd, ok := <-updates:
			if !ok {
				return
			}
			g.dispatch(ctx, c, upd)
		}
	}
}

func (g *TelegramGateway) dispatch(ctx context.Context, c *Controller, upd tgbotapi.Update) {
	switch {
	case upd.Message != nil && upd.Message.Chat != nil:
		m := upd.Message
		c.HandleMessage(ctx, Message{
			ChatID:    m.Chat.ID,
			MessageID: m.MessageID,
			FromBot:   m.From != nil && m.From.IsBot,
			Text:      m.Text,
		})
	case upd.CallbackQuery != nil && upd.CallbackQuery.Message != nil && upd.CallbackQuery.Message.Chat != nil:
		q := upd.CallbackQuery
		c.HandleActivation(ctx, Activation{
			ID:        q.ID,
			ChatID:    q.Message.Chat.ID,
			MessageID: q.Message.MessageID,
			Payload:   q.Data,
		})
	}
}
