package ticket

import (
	"context"
	"fmt"
	"html"

	"github.com/Freeeeeet/pousada_bot/internal/controller/callbacks/callbacktypes"
	"github.com/Freeeeeet/pousada_bot/internal/controller/callbacks/common"
	"github.com/Freeeeeet/pousada_bot/internal/controller/callbacks/common/keyboard"
	"github.com/Freeeeeet/pousada_bot/internal/kitchen"
	"github.com/go-telegram/bot"
	"github.com/go-telegram/bot/models"
	"go.uber.org/zap"
)

// BuildTicketScreen - чек кухни моноширинным текстом и кнопки PDF/назад
func BuildTicketScreen(ticket *kitchen.Ticket, dateKey string) (string, *models.InlineKeyboardMarkup) {
	text := "<pre>" + html.EscapeString(ticket.Text()) + "</pre>"

	kb := keyboard.NewBuilder()
	kb.Row(keyboard.Button("📄 PDF para impressão", common.CallbackData(common.ActionKitchenPDF, dateKey)))
	kb.AddBackToBoardButton(dateKey)
	return text, kb.Build()
}

// HandleTicket показывает чек кухни на дату
func HandleTicket(ctx context.Context, b *bot.Bot, callback *models.CallbackQuery, h *callbacktypes.Handler) {
	common.WithAdmin(ctx, b, callback, h, func(hc *common.HandlerContext) {
		date, err := hc.Date()
		if err != nil {
			common.HandleError(hc, common.ErrInvalidFormat, "kitchen ticket")
			return
		}

		ticket, err := hc.Handler.KitchenService.Ticket(hc.Ctx, date)
		if err != nil {
			common.HandleError(hc, err, "kitchen ticket")
			return
		}

		text, kb := BuildTicketScreen(ticket, hc.Args.Date)
		if err := hc.EditMessage(text, kb); err != nil {
			common.HandleError(hc, err, "kitchen ticket")
			return
		}
		hc.Answer("")
	})
}

// HandleTicketPDF отправляет чек кухни PDF-документом
func HandleTicketPDF(ctx context.Context, b *bot.Bot, callback *models.CallbackQuery, h *callbacktypes.Handler) {
	common.WithAdmin(ctx, b, callback, h, func(hc *common.HandlerContext) {
		date, err := hc.Date()
		if err != nil {
			common.HandleError(hc, common.ErrInvalidFormat, "kitchen pdf")
			return
		}

		ticket, err := hc.Handler.KitchenService.Ticket(hc.Ctx, date)
		if err != nil {
			common.HandleError(hc, err, "kitchen pdf")
			return
		}

		data, err := ticket.PDF()
		if err != nil {
			common.HandleError(hc, err, "kitchen pdf")
			return
		}

		filename := fmt.Sprintf("cozinha-%s.pdf", hc.Args.Date)
		if err := hc.SendDocument(filename, data, "🍳 "+ticket.Title); err != nil {
			common.HandleError(hc, err, "send kitchen pdf")
			return
		}

		hc.Handler.Logger.Info("Kitchen PDF sent",
			zap.String("date", hc.Args.Date),
			zap.Int64("chat_id", hc.ChatID))
		hc.Answer("")
	})
}
