package controller

import (
	"context"
	"fmt"
	"html"

	"github.com/Freeeeeet/pousada_bot/internal/controller/callbacks/common"
	"github.com/Freeeeeet/pousada_bot/internal/kitchen"
	"github.com/go-telegram/bot"
	"github.com/go-telegram/bot/models"
)

// SendKitchenTicket отправляет чек в чат кухни: текстом и PDF для печати
func (c *BotController) SendKitchenTicket(ctx context.Context, chatID int64, ticket *kitchen.Ticket) error {
	_, err := c.bot.SendMessage(ctx, &bot.SendMessageParams{
		ChatID:    chatID,
		Text:      "<pre>" + html.EscapeString(ticket.Text()) + "</pre>",
		ParseMode: models.ParseModeHTML,
	})
	if err != nil {
		return fmt.Errorf("send ticket text: %w", err)
	}

	if ticket.Orders == 0 {
		return nil
	}

	data, err := ticket.PDF()
	if err != nil {
		return fmt.Errorf("render ticket pdf: %w", err)
	}
	if err := common.SendFile(ctx, c.bot, chatID, "cozinha.pdf", data, "🍳 "+ticket.Title+" "+ticket.Date); err != nil {
		return fmt.Errorf("send ticket pdf: %w", err)
	}
	return nil
}
