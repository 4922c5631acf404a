package bot

import (
	"context"
	"errors"
	"fmt"
	"html"
	"strconv"
	"strings"

	tgbotapi "github.com/go-telegram-bot-api/telegram-bot-api/v5"
	log "github.com/sirupsen/logrus"

	"ahorro-bot/internal/repository"
	"ahorro-bot/internal/service"
)

const (
	accountPesosID   uint = 1
	accountDolaresID uint = 2
)

const (
	cbAccountPrefix  = "cuenta:"
	cbPurchasePrefix = "gasto:"
	cbDepositPrefix  = "cargar:"
)

const (
	msgUnexpectedDebit  = "Ocurrió un error inesperado al procesar el gasto."
	msgUnexpectedCredit = "Ocurrió un error inesperado al procesar la carga."
	msgNoData           = "No hay datos de esa cuenta."
	msgNoFunds          = "¡No tiene dinero suficiente en su cuenta para realizar esta compra!"
	msgAIFailure        = "Lo siento, ocurrió un error inesperado al procesar tu mensaje con la IA.\nIntenta de nuevo más tarde o usa /help."
)

// Bot aggregates the Telegram API with the ledger, registry and AI services.
type Bot struct {
	api          *tgbotapi.BotAPI
	ledgerSvc    *service.LedgerService
	registrySvc  *service.RegistryService
	summarySvc   *service.SummaryService
	assistantSvc *service.AssistantService
}

func New(token string, ledgerSvc *service.LedgerService, registrySvc *service.RegistryService, summarySvc *service.SummaryService, assistantSvc *service.AssistantService) (*Bot, error) {
	api, err := tgbotapi.NewBotAPI(token)
	if err != nil {
		return nil, fmt.Errorf("create bot api: %w", err)
	}

	log.WithField("account", api.Self.UserName).Info("bot authorized")

	return &Bot{
		api:          api,
		ledgerSvc:    ledgerSvc,
		registrySvc:  registrySvc,
		summarySvc:   summarySvc,
		assistantSvc: assistantSvc,
	}, nil
}

// Start begins polling updates until ctx is cancelled.
func (b *Bot) Start(ctx context.Context) error {
	updateConfig := tgbotapi.NewUpdate(0)
	updateConfig.Timeout = 60
	updates := b.api.GetUpdatesChan(updateConfig)

	log.Info("start polling updates")

	go func() {
		<-ctx.Done()
		b.api.StopReceivingUpdates()
	}()

	for update := range updates {
		switch {
		case update.CallbackQuery != nil:
			if err := b.handleCallback(ctx, update.CallbackQuery); err != nil {
				log.WithError(err).Error("handle callback")
			}
		case update.Message != nil:
			if update.Message.Chat == nil || !update.Message.Chat.IsPrivate() {
				continue
			}
			if err := b.handleMessage(ctx, update.Message); err != nil {
				log.WithError(err).Error("handle message")
			}
		}
	}

	return nil
}

func (b *Bot) handleMessage(ctx context.Context, msg *tgbotapi.Message) error {
	if msg.From == nil {
		return nil
	}

	if msg.IsCommand() {
		log.WithFields(log.Fields{
			"user":    msg.From.ID,
			"command": msg.Command(),
		}).Info("command received")
		return b.handleCommand(ctx, msg)
	}

	return b.handleFreeText(ctx, msg)
}

func (b *Bot) handleCommand(ctx context.Context, msg *tgbotapi.Message) error {
	switch msg.Command() {
	case "start":
		return b.handleStart(msg)
	case "help":
		return b.handleHelp(msg)
	case "cuenta":
		return b.handleAccounts(msg)
	case "gasto":
		return b.handlePurchases(msg)
	case "cargar":
		return b.handleDeposits(msg)
	case "resumen":
		return b.handleSummary(ctx, msg)
	case "save":
		return b.handleSave(ctx, msg)
	case "leave":
		return b.handleLeave(ctx, msg)
	default:
		return b.sendText(msg.Chat.ID, "Comando no soportado. Mira /help para la lista completa.")
	}
}

func (b *Bot) handleStart(msg *tgbotapi.Message) error {
	name := strings.TrimSpace(msg.From.FirstName)
	if name == "" {
		name = "amigo"
	}
	return b.sendText(msg.Chat.ID, fmt.Sprintf("¡Hola %s! Soy un bot asistente. Puedes usar /help para ver mis comandos.", html.EscapeString(name)))
}

func (b *Bot) handleHelp(msg *tgbotapi.Message) error {
	text := "Aquí tienes los comandos que entiendo:\n" +
		"/start - Inicia la conversación.\n" +
		"/help - Muestra esta ayuda.\n" +
		"/cuenta - Puedes acceder a tus cajas de ahorro.\n" +
		"/gasto - Ingresar un nuevo gasto a una de tus cajas de ahorro.\n" +
		"/cargar - Carga un monto de dinero a tus cajas de ahorro.\n" +
		"/resumen - Muestra el saldo de todas tus cajas de ahorro.\n" +
		"/save - Puedes guardar tu id de telegram y nombre de usuario en nuestra base de datos.\n" +
		"/leave - Elimina tus datos guardados con /save de nuestra base de datos.\n\n" +
		"Si me escribes cualquier otra cosa, intentaré ayudarte usando IA y te recordaré los comandos si es relevante."
	return b.sendText(msg.Chat.ID, text)
}

func (b *Bot) handleAccounts(msg *tgbotapi.Message) error {
	markup := tgbotapi.NewInlineKeyboardMarkup(
		tgbotapi.NewInlineKeyboardRow(
			tgbotapi.NewInlineKeyboardButtonData("Pesos", cbAccountPrefix+strconv.FormatUint(uint64(accountPesosID), 10)),
			tgbotapi.NewInlineKeyboardButtonData("Dolares", cbAccountPrefix+strconv.FormatUint(uint64(accountDolaresID), 10)),
		),
	)
	return b.sendWithInlineKeyboard(msg.Chat.ID, "¿A que caja de ahorro desea acceder?", markup)
}

func (b *Bot) handlePurchases(msg *tgbotapi.Message) error {
	return b.sendWithInlineKeyboard(msg.Chat.ID, "¿Que desea comprar actualmente?", catalogKeyboard(purchaseCatalog, cbPurchasePrefix))
}

func (b *Bot) handleDeposits(msg *tgbotapi.Message) error {
	return b.sendWithInlineKeyboard(msg.Chat.ID, "¿Cuanto dinero desea cargar?", catalogKeyboard(depositCatalog, cbDepositPrefix))
}

func (b *Bot) handleSummary(ctx context.Context, msg *tgbotapi.Message) error {
	text, err := b.summarySvc.BalanceSummary(ctx)
	if err != nil {
		log.WithError(err).Error("build balance summary")
		return b.sendText(msg.Chat.ID, msgNoData)
	}
	return b.sendText(msg.Chat.ID, text)
}

func (b *Bot) handleSave(ctx context.Context, msg *tgbotapi.Message) error {
	user, err := b.registrySvc.Register(ctx, msg.From.ID, msg.From.FirstName)
	if err != nil {
		log.WithError(err).WithField("user", msg.From.ID).Error("register user")
		return b.sendText(msg.Chat.ID, "Ocurrió un error inesperado al guardar tus datos.")
	}
	return b.sendText(msg.Chat.ID, fmt.Sprintf("¡Bienvenido %s! Tu información fue guardada con exito.", html.EscapeString(user.Name)))
}

func (b *Bot) handleLeave(ctx context.Context, msg *tgbotapi.Message) error {
	err := b.registrySvc.Unregister(ctx, msg.From.ID)
	switch {
	case err == nil:
		return b.sendText(msg.Chat.ID, "¡Tu información fue eliminada con exito!")
	case errors.Is(err, repository.ErrUserNotFound):
		return b.sendText(msg.Chat.ID, "No se encontró un usuario con tu ID.\nNo hay nada para borrar.")
	default:
		log.WithError(err).WithField("user", msg.From.ID).Error("unregister user")
		return b.sendText(msg.Chat.ID, "Ocurrió un error inesperado al eliminar tus datos.")
	}
}

func (b *Bot) handleFreeText(ctx context.Context, msg *tgbotapi.Message) error {
	if strings.TrimSpace(msg.Text) == "" {
		return nil
	}

	log.WithFields(log.Fields{
		"user": msg.From.ID,
		"text": msg.Text,
	}).Info("free text received")

	reply, err := b.assistantSvc.Reply(ctx, msg.Text)
	if err != nil {
		log.WithError(err).WithField("user", msg.From.ID).Error("assistant reply")
		return b.sendPlain(msg.Chat.ID, msgAIFailure)
	}
	return b.sendPlain(msg.Chat.ID, reply)
}

func (b *Bot) handleCallback(ctx context.Context, cb *tgbotapi.CallbackQuery) error {
	if cb == nil || cb.From == nil || cb.Message == nil {
		return nil
	}

	data := cb.Data
	log.WithFields(log.Fields{
		"user": cb.From.ID,
		"data": data,
	}).Info("callback received")

	var response string
	switch {
	case strings.HasPrefix(data, cbAccountPrefix):
		response = b.accountOverview(ctx, strings.TrimPrefix(data, cbAccountPrefix))
	case strings.HasPrefix(data, cbPurchasePrefix):
		response = b.applyPurchase(ctx, strings.TrimPrefix(data, cbPurchasePrefix))
	case strings.HasPrefix(data, cbDepositPrefix):
		response = b.applyDeposit(ctx, strings.TrimPrefix(data, cbDepositPrefix))
	default:
		if _, err := b.api.Request(tgbotapi.NewCallback(cb.ID, "")); err != nil {
			log.WithError(err).Warn("callback ack")
		}
		return nil
	}

	if _, err := b.api.Request(tgbotapi.NewCallback(cb.ID, response)); err != nil {
		log.WithError(err).Warn("callback ack")
	}

	edit := tgbotapi.NewEditMessageText(cb.Message.Chat.ID, cb.Message.MessageID, response)
	_, err := b.api.Send(edit)
	return err
}

func (b *Bot) accountOverview(ctx context.Context, rawID string) string {
	id, err := strconv.ParseUint(rawID, 10, 32)
	if err != nil {
		return msgNoData
	}

	account, err := b.ledgerSvc.GetAccount(ctx, uint(id))
	switch {
	case err == nil:
		return fmt.Sprintf("Selecciono su %s con un total de %s", account.Name, service.FormatMoney(*account, account.Balance))
	case errors.Is(err, repository.ErrAccountNotFound):
		return msgNoData
	default:
		log.WithError(err).WithField("account", id).Error("get account")
		return msgNoData
	}
}

func (b *Bot) applyPurchase(ctx context.Context, key string) string {
	item, ok := findCatalogItem(purchaseCatalog, key)
	if !ok {
		return msgUnexpectedDebit
	}

	result, err := b.ledgerSvc.Debit(ctx, item.AccountID, item.Amount)
	switch {
	case err == nil:
		log.WithFields(log.Fields{
			"account": item.AccountID,
			"amount":  item.Amount,
			"balance": result.NewBalance,
		}).Info("purchase registered")
		return fmt.Sprintf("Compra realizada %s.\nNuevo saldo en %s es de %s",
			service.FormatMoney(result.Account, result.Amount),
			result.Account.Name,
			service.FormatMoney(result.Account, result.NewBalance))
	case errors.Is(err, repository.ErrInsufficientFunds):
		return msgNoFunds
	case errors.Is(err, repository.ErrAccountNotFound):
		return msgNoData
	default:
		log.WithError(err).WithField("account", item.AccountID).Error("process purchase")
		return msgUnexpectedDebit
	}
}

func (b *Bot) applyDeposit(ctx context.Context, key string) string {
	item, ok := findCatalogItem(depositCatalog, key)
	if !ok {
		return msgUnexpectedCredit
	}

	result, err := b.ledgerSvc.Credit(ctx, item.AccountID, item.Amount)
	switch {
	case err == nil:
		log.WithFields(log.Fields{
			"account": item.AccountID,
			"amount":  item.Amount,
			"balance": result.NewBalance,
		}).Info("deposit registered")
		return fmt.Sprintf("Carga realizada %s.\nNuevo saldo en %s es de %s",
			service.FormatMoney(result.Account, result.Amount),
			result.Account.Name,
			service.FormatMoney(result.Account, result.NewBalance))
	case errors.Is(err, repository.ErrAccountNotFound):
		return msgNoData
	default:
		log.WithError(err).WithField("account", item.AccountID).Error("process deposit")
		return msgUnexpectedCredit
	}
}

// SendBalanceSummaries broadcasts the account overview to every registered user.
func (b *Bot) SendBalanceSummaries(ctx context.Context) error {
	users, err := b.registrySvc.ListRegistered(ctx)
	if err != nil {
		return err
	}
	if len(users) == 0 {
		return nil
	}

	text, err := b.summarySvc.BalanceSummary(ctx)
	if err != nil {
		return err
	}

	for _, user := range users {
		select {
		case <-ctx.Done():
			return ctx.Err()
		default:
		}
		if err := b.sendText(user.TelegramID, text); err != nil {
			log.WithError(err).WithField("user", user.TelegramID).Warn("send summary")
		}
	}
	return nil
}

func (b *Bot) sendText(chatID int64, text string) error {
	msg := tgbotapi.NewMessage(chatID, text)
	msg.ParseMode = tgbotapi.ModeHTML
	_, err := b.api.Send(msg)
	return err
}

// sendPlain skips parse mode so model output cannot break the message markup.
func (b *Bot) sendPlain(chatID int64, text string) error {
	msg := tgbotapi.NewMessage(chatID, text)
	_, err := b.api.Send(msg)
	return err
}

func (b *Bot) sendWithInlineKeyboard(chatID int64, text string, markup tgbotapi.InlineKeyboardMarkup) error {
	msg := tgbotapi.NewMessage(chatID, text)
	msg.ReplyMarkup = markup
	_, err := b.api.Send(msg)
	return err
}

func catalogKeyboard(catalog []CatalogItem, prefix string) tgbotapi.InlineKeyboardMarkup {
	var buttons [][]tgbotapi.InlineKeyboardButton
	for i := 0; i < len(catalog); i += 2 {
		row := []tgbotapi.InlineKeyboardButton{
			tgbotapi.NewInlineKeyboardButtonData(catalog[i].Label, prefix+catalog[i].Key),
		}
		if i+1 < len(catalog) {
			row = append(row, tgbotapi.NewInlineKeyboardButtonData(catalog[i+1].Label, prefix+catalog[i+1].Key))
		}
		buttons = append(buttons, row)
	}
	return tgbotapi.NewInlineKeyboardMarkup(buttons...)
}
