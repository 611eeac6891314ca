package telegram

import (
	"context"
	"errors"
	"fmt"
	"log"
	"net/http"
	"strings"
	"time"

	tgbotapi "github.com/go-telegram-bot-api/telegram-bot-api/v5"

	"fitfeast/internal/app"
	"fitfeast/internal/catalog"
	"fitfeast/internal/config"
	"fitfeast/internal/cookbook"
	"fitfeast/internal/metrics"
	"fitfeast/internal/pantry"
)

const requestTimeout = 30 * time.Second

// Bot wraps the Telegram API around the pantry application.
type Bot struct {
	api *tgbotapi.BotAPI
	app *app.App
	cfg *config.Config
}

// NewBot initializes the Telegram Bot and sets the Webhook.
func NewBot(cfg *config.Config, a *app.App) (*Bot, error) {
	bot, err := tgbotapi.NewBotAPI(cfg.TelegramBotToken)
	if err != nil {
		return nil, fmt.Errorf("failed to init telegram api: %w", err)
	}

	log.Printf("Authorized on account %s", bot.Self.UserName)

	webhookURL := cfg.TelegramWebhookURL
	wh, err := tgbotapi.NewWebhook(webhookURL)
	if err != nil {
		return nil, fmt.Errorf("invalid webhook url %s: %w", webhookURL, err)
	}
	resp, err := bot.Request(wh)
	if err != nil {
		return nil, fmt.Errorf("failed to set webhook to %s: %w", webhookURL, err)
	}
	log.Printf("Webhook set response: %s", resp.Description)

	return &Bot{api: bot, app: a, cfg: cfg}, nil
}

// HandleWebhook parses one update from Telegram and dispatches it.
func (b *Bot) HandleWebhook(w http.ResponseWriter, r *http.Request) {
	update, err := b.api.HandleUpdate(r)
	if err != nil {
		log.Printf("Error parsing update: %v", err)
		return
	}

	if update.CallbackQuery != nil {
		if !b.isAllowed(update.CallbackQuery.From) {
			return
		}
		go b.handleCallbackQuery(update.CallbackQuery)
		return
	}

	if update.Message == nil || update.Message.From == nil {
		return
	}

	if !b.isAllowed(update.Message.From) {
		log.Printf("⚠️ Unauthorized access attempt from UserID: %d (@%s)", update.Message.From.ID, update.Message.From.UserName)
		return
	}

	go b.processMessage(update.Message)
}

func (b *Bot) isAllowed(u *tgbotapi.User) bool {
	if u == nil {
		return false
	}
	for _, id := range b.cfg.TelegramAllowedUserIDs {
		if u.ID == id {
			return true
		}
	}
	return false
}

func ownerOf(u *tgbotapi.User) string {
	return fmt.Sprintf("%d", u.ID)
}

func (b *Bot) processMessage(msg *tgbotapi.Message) {
	ctx, cancel := context.WithTimeout(context.Background(), requestTimeout)
	defer cancel()

	if strings.HasPrefix(msg.Text, "http://") || strings.HasPrefix(msg.Text, "https://") {
		b.handleImport(ctx, msg)
		return
	}

	owner := ownerOf(msg.From)
	switch msg.Command() {
	case "pantry":
		b.handlePantry(ctx, msg.Chat.ID, owner)
	case "add":
		b.handleAdd(ctx, msg.Chat.ID, owner, msg.CommandArguments())
	case "recipes":
		b.handleRecipes(ctx, msg.Chat.ID, owner)
	case "units":
		b.handleUnits(ctx, msg.Chat.ID, msg.CommandArguments())
	case "saved":
		b.handleSaved(ctx, msg.Chat.ID, owner)
	case "metrics":
		if msg.From.ID != b.cfg.AdminTelegramID {
			b.reply(msg.Chat.ID, "⛔ *Access Denied*: Admin only.")
			return
		}
		b.handleMetrics(ctx, msg.Chat.ID)
	default:
		b.reply(msg.Chat.ID, helpText)
	}
}

const helpText = "🥗 *FitFeast*\n\n" +
	"/pantry - show your pantry\n" +
	"/add <qty> <unit> <name> - add an ingredient\n" +
	"/recipes - what can I cook?\n" +
	"/units <name> - units for an ingredient\n" +
	"/saved - your saved recipes\n\n" +
	"Send a recipe link to import it."

func (b *Bot) handlePantry(ctx context.Context, chatID int64, owner string) {
	report, err := b.app.PantryReport(ctx, owner)
	if err != nil {
		b.replyError(chatID, "loading pantry", err)
		return
	}
	msg := tgbotapi.NewMessage(chatID, formatPantry(report))
	msg.ParseMode = tgbotapi.ModeMarkdown
	if kb, ok := pantryKeyboard(report.Items); ok {
		msg.ReplyMarkup = kb
	}
	b.send(msg)
}

func (b *Bot) handleAdd(ctx context.Context, chatID int64, owner, args string) {
	cmd, err := parseAddCommand(args)
	if err != nil {
		b.reply(chatID, "Usage: /add <qty> <unit> <name>")
		return
	}
	entry, err := b.app.AddToPantryByName(ctx, owner, cmd.Name, pantry.AddRequest{
		Quantity: cmd.Quantity,
		Unit:     cmd.Unit,
	})
	if err != nil {
		b.replyError(chatID, "adding ingredient", err)
		return
	}
	b.reply(chatID, fmt.Sprintf("✅ *%s*: %s %s", escape(entry.Ingredient.Name), formatQuantity(entry.Quantity), escape(entry.Unit)))
}

func (b *Bot) handleRecipes(ctx context.Context, chatID int64, owner string) {
	s, err := b.app.Suggestions(ctx, owner)
	if err != nil {
		b.replyError(chatID, "computing suggestions", err)
		return
	}
	msg := tgbotapi.NewMessage(chatID, formatSuggestions(s.Makeable, s.NearMiss))
	msg.ParseMode = tgbotapi.ModeMarkdown

	var rows [][]tgbotapi.InlineKeyboardButton
	for _, r := range s.Makeable {
		rows = append(rows, tgbotapi.NewInlineKeyboardRow(
			tgbotapi.NewInlineKeyboardButtonData("💾 Save "+r.Name, "save|"+r.ID),
		))
	}
	if len(rows) > 0 {
		msg.ReplyMarkup = tgbotapi.NewInlineKeyboardMarkup(rows...)
	}
	b.send(msg)
}

func (b *Bot) handleUnits(ctx context.Context, chatID int64, name string) {
	name = strings.TrimSpace(name)
	if name == "" {
		b.reply(chatID, "Usage: /units <name>")
		return
	}
	opts, err := b.app.UnitOptionsByName(ctx, name)
	if err != nil {
		b.replyError(chatID, "loading units", err)
		return
	}
	labels := make([]string, len(opts))
	for i, o := range opts {
		labels[i] = o.Label
	}
	b.reply(chatID, fmt.Sprintf("📏 *%s*: %s", escape(catalog.NormalizeName(name)), escape(strings.Join(labels, ", "))))
}

func (b *Bot) handleSaved(ctx context.Context, chatID int64, owner string) {
	saved, err := b.app.Cookbook().List(ctx, owner)
	if err != nil {
		b.replyError(chatID, "loading saved recipes", err)
		return
	}
	b.reply(chatID, formatSaved(saved))
}

func (b *Bot) handleImport(ctx context.Context, msg *tgbotapi.Message) {
	sent, err := b.api.Send(tgbotapi.NewMessage(msg.Chat.ID, "✂️ Importing recipe..."))
	if err != nil {
		log.Printf("Failed to send initial reply: %v", err)
		return
	}

	var finalText string
	rec, err := b.app.ImportRecipe(ctx, msg.Text)
	if err != nil {
		log.Printf("Error importing recipe: %v", err)
		finalText = fmt.Sprintf("❌ *Error importing recipe:* %s", escape(err.Error()))
	} else {
		finalText = fmt.Sprintf("✅ *Recipe imported!*\n\n*%s*\n%d ingredients, %d servings",
			escape(rec.Name), len(rec.Requirements), rec.Servings)
	}
	edit := tgbotapi.NewEditMessageText(msg.Chat.ID, sent.MessageID, finalText)
	edit.ParseMode = tgbotapi.ModeMarkdown
	b.send(edit)
}

func (b *Bot) handleCallbackQuery(query *tgbotapi.CallbackQuery) {
	ctx, cancel := context.WithTimeout(context.Background(), requestTimeout)
	defer cancel()

	action, id, ok := strings.Cut(query.Data, "|")
	if !ok || id == "" {
		return
	}
	owner := ownerOf(query.From)

	var notice string
	var err error
	switch action {
	case "used":
		var entry *pantry.Entry
		if entry, err = b.app.EntryForOwner(ctx, owner, id); err == nil {
			if entry, err = b.app.Pantry().MarkAsUsed(ctx, entry.ID); err == nil {
				notice = "Marked " + entry.Ingredient.Name + " as used"
			}
		}
	case "remove":
		var entry *pantry.Entry
		if entry, err = b.app.EntryForOwner(ctx, owner, id); err == nil {
			if err = b.app.Pantry().Remove(ctx, entry.ID); err == nil {
				notice = "Removed " + entry.Ingredient.Name
			}
		}
	case "save":
		if err = b.app.Cookbook().Save(ctx, owner, id); err == nil {
			notice = "Recipe saved"
		}
	default:
		return
	}
	if err != nil {
		notice = callbackError(err)
		if notice == "" {
			log.Printf("Error handling callback %q: %v", query.Data, err)
			notice = "Something went wrong"
		}
	}

	// Answer callback to remove spinner
	if _, err := b.api.Request(tgbotapi.NewCallback(query.ID, notice)); err != nil {
		log.Printf("Warning: failed to answer callback: %v", err)
	}

	if action != "save" && query.Message != nil {
		report, err := b.app.PantryReport(ctx, owner)
		if err != nil {
			log.Printf("Warning: failed to refresh pantry for %s: %v", owner, err)
			return
		}
		edit := tgbotapi.NewEditMessageText(query.Message.Chat.ID, query.Message.MessageID, formatPantry(report))
		edit.ParseMode = tgbotapi.ModeMarkdown
		if kb, ok := pantryKeyboard(report.Items); ok {
			edit.ReplyMarkup = &kb
		}
		b.send(edit)
	}
}

// callbackError turns expected failures into a short notice. Unexpected
// errors return "".
func callbackError(err error) string {
	switch {
	case errors.Is(err, pantry.ErrNotFound):
		return "That item is no longer in your pantry"
	case errors.Is(err, pantry.ErrInvalidTransition):
		return "Already used"
	case errors.Is(err, cookbook.ErrAlreadySaved):
		return "Already saved"
	case errors.Is(err, catalog.ErrNotFound):
		return "Recipe not found"
	}
	return ""
}

func (b *Bot) handleMetrics(ctx context.Context, chatID int64) {
	usage, err := b.app.Metrics().GetDailyUsage(ctx, 7)
	if err != nil {
		log.Printf("Error fetching metrics: %v", err)
		b.api.Send(tgbotapi.NewMessage(chatID, "❌ Error fetching metrics."))
		return
	}
	b.reply(chatID, formatMetrics(usage, metrics.GetSysHealth(b.cfg.DataDir())))
}

func (b *Bot) reply(chatID int64, text string) {
	msg := tgbotapi.NewMessage(chatID, text)
	msg.ParseMode = tgbotapi.ModeMarkdown
	b.send(msg)
}

func (b *Bot) replyError(chatID int64, doing string, err error) {
	log.Printf("Error %s: %v", doing, err)
	b.reply(chatID, fmt.Sprintf("❌ *Error %s:* %s", doing, escape(err.Error())))
}

func (b *Bot) send(c tgbotapi.Chattable) {
	if _, err := b.api.Send(c); err != nil {
		log.Printf("Warning: failed to send telegram message: %v", err)
	}
}
