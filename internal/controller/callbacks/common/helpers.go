package common

import (
	"bytes"
	"context"
	"fmt"
	"hash/fnv"
	"strconv"
	"strings"
	"time"

	"github.com/go-telegram/bot"
	"github.com/go-telegram/bot/models"
)

// Helper functions для всех callback handlers

// AnswerCallback отвечает на callback query (без alert)
func AnswerCallback(ctx context.Context, b *bot.Bot, callbackID string, text string) {
	b.AnswerCallbackQuery(ctx, &bot.AnswerCallbackQueryParams{
		CallbackQueryID: callbackID,
		Text:            text,
		ShowAlert:       false,
	})
}

// AnswerCallbackAlert отвечает на callback query с alert (всплывающее окно)
func AnswerCallbackAlert(ctx context.Context, b *bot.Bot, callbackID string, text string) {
	b.AnswerCallbackQuery(ctx, &bot.AnswerCallbackQueryParams{
		CallbackQueryID: callbackID,
		Text:            text,
		ShowAlert:       true,
	})
}

// GetMessageFromCallback извлекает сообщение из callback query
func GetMessageFromCallback(callback *models.CallbackQuery) *models.Message {
	if callback.Message.Message != nil {
		return callback.Message.Message
	}
	return nil
}

// CallbackArgs - разобранные данные кнопки "action:YYYY-MM-DD[:index[:stamp]]".
// Stamp - отпечаток объекта под индексом на момент отрисовки.
type CallbackArgs struct {
	Action   string
	Date     string
	Index    int
	HasIndex bool
	Stamp    string
}

// ParseCallbackArgs разбирает callback data
func ParseCallbackArgs(data string) (CallbackArgs, error) {
	parts := strings.Split(data, ":")
	if len(parts) < 2 || len(parts) > 4 || parts[0] == "" {
		return CallbackArgs{}, fmt.Errorf("%w: %q", ErrInvalidFormat, data)
	}

	args := CallbackArgs{Action: parts[0], Date: parts[1]}
	if _, err := time.Parse("2006-01-02", args.Date); err != nil {
		return CallbackArgs{}, fmt.Errorf("%w: bad date in %q", ErrInvalidFormat, data)
	}

	if len(parts) >= 3 {
		index, err := strconv.Atoi(parts[2])
		if err != nil || index < 0 {
			return CallbackArgs{}, fmt.Errorf("%w: bad index in %q", ErrInvalidFormat, data)
		}
		args.Index = index
		args.HasIndex = true
	}
	if len(parts) == 4 {
		if parts[3] == "" {
			return CallbackArgs{}, fmt.Errorf("%w: empty stamp in %q", ErrInvalidFormat, data)
		}
		args.Stamp = parts[3]
	}

	return args, nil
}

// Matches проверяет, что под индексом всё ещё тот же объект, что был при отрисовке
func (a CallbackArgs) Matches(identity string) bool {
	return a.Stamp != "" && a.Stamp == Stamp(identity)
}

// CallbackData собирает callback data; обратная операция к ParseCallbackArgs
func CallbackData(action, date string, index ...int) string {
	if len(index) > 0 {
		return fmt.Sprintf("%s:%s:%d", action, date, index[0])
	}
	return action + ":" + date
}

// ItemCallbackData - кнопка для элемента списка: индекс плюс отпечаток его идентичности
func ItemCallbackData(action, date string, index int, identity string) string {
	return fmt.Sprintf("%s:%s:%d:%s", action, date, index, Stamp(identity))
}

// Stamp - короткий отпечаток (FNV-1a, 8 hex) для callback data
func Stamp(identity string) string {
	h := fnv.New32a()
	h.Write([]byte(identity))
	return fmt.Sprintf("%08x", h.Sum32())
}

// IsMessageNotModifiedError - Telegram отвечает так, когда текст и клавиатура не изменились
func IsMessageNotModifiedError(err error) bool {
	return err != nil && strings.Contains(err.Error(), "message is not modified")
}

// SendFile отправляет PNG как фото, остальное - документом
func SendFile(ctx context.Context, b *bot.Bot, chatID int64, filename string, data []byte, caption string) error {
	upload := &models.InputFileUpload{Filename: filename, Data: bytes.NewReader(data)}

	if strings.HasSuffix(filename, ".png") {
		_, err := b.SendPhoto(ctx, &bot.SendPhotoParams{
			ChatID:    chatID,
			Photo:     upload,
			Caption:   caption,
			ParseMode: models.ParseModeHTML,
		})
		return err
	}

	_, err := b.SendDocument(ctx, &bot.SendDocumentParams{
		ChatID:    chatID,
		Document:  upload,
		Caption:   caption,
		ParseMode: models.ParseModeHTML,
	})
	return err
}
