package bot

import (
	"context"
	"fmt"
	"log/slog"
	"strings"
	"unicode/utf16"

	tgbotapi "github.com/go-telegram-bot-api/telegram-bot-api/v5"
)

// maxMessageLength is Telegram's limit in UTF-16 code units.
const maxMessageLength = 4096

type TelegramBot struct {
	bot     *tgbotapi.BotAPI
	handler *Handler
	chatID  int64
}

func NewTelegramBot(token string, chatID int64, capService CapService) (*TelegramBot, error) {
	bot, err := tgbotapi.NewBotAPI(token)
	if err != nil {
		return nil, err
	}

	return &TelegramBot{
		bot:     bot,
		handler: NewHandler(capService),
		chatID:  chatID,
	}, nil
}

// Start polls for updates and answers commands until ctx is done.
func (t *TelegramBot) Start(ctx context.Context) error {
	slog.Info("Authorized on account", "username", t.bot.Self.UserName)
	u := tgbotapi.NewUpdate(0)
	u.Timeout = 60

	updates := t.bot.GetUpdatesChan(u)
	defer t.bot.StopReceivingUpdates()

	for {
		select {
		case update := <-updates:
			for _, msg := range t.replies(ctx, update) {
				if err := t.send(msg); err != nil {
					break
				}
			}
		case <-ctx.Done():
			return nil
		}
	}
}

// replies answers a command update. Anything that is not a command gets
// no reply.
func (t *TelegramBot) replies(ctx context.Context, update tgbotapi.Update) []tgbotapi.MessageConfig {
	message := update.Message
	if message == nil || !message.IsCommand() {
		return nil
	}

	command, args := message.Command(), message.CommandArguments()
	slog.Info("Command received",
		"command", command,
		"args", args,
		"chat", message.Chat.ID,
		"from", sender(message),
	)
	return markdownMessages(message.Chat.ID, t.handler.Reply(ctx, command, args))
}

// SendMessage posts text to the configured chat, split over as many
// messages as it takes.
func (t *TelegramBot) SendMessage(text string) error {
	if t.chatID == 0 {
		slog.Error("Chat ID not set")
		return fmt.Errorf("chat ID not set")
	}

	for _, msg := range markdownMessages(t.chatID, text) {
		if err := t.send(msg); err != nil {
			return err
		}
	}
	return nil
}

func (t *TelegramBot) send(msg tgbotapi.MessageConfig) error {
	if _, err := t.bot.Send(msg); err != nil {
		slog.Error("Error sending message", "chat", msg.ChatID, "error", err)
		return err
	}
	return nil
}

func sender(message *tgbotapi.Message) string {
	if message.From == nil {
		return ""
	}
	return message.From.UserName
}

func markdownMessages(chatID int64, text string) []tgbotapi.MessageConfig {
	chunks := splitMessage(text, maxMessageLength)
	msgs := make([]tgbotapi.MessageConfig, 0, len(chunks))
	for _, chunk := range chunks {
		msg := tgbotapi.NewMessage(chatID, chunk)
		msg.ParseMode = "Markdown"
		msgs = append(msgs, msg)
	}
	return msgs
}

// splitMessage breaks text into chunks of at most limit UTF-16 code units,
// cutting between lines. Joining the chunks with newlines restores text
// unless a single line had to be cut.
func splitMessage(text string, limit int) []string {
	if limit <= 0 || utf16Len(text) <= limit {
		return []string{text}
	}

	var (
		chunks  []string
		current strings.Builder
		size    int
		started bool
	)
	flush := func() {
		if started {
			chunks = append(chunks, current.String())
		}
		current.Reset()
		size = 0
		started = false
	}

	for _, line := range strings.Split(text, "\n") {
		for utf16Len(line) > limit {
			flush()
			head, rest := cutUTF16(line, limit)
			chunks = append(chunks, head)
			line = rest
		}

		n := utf16Len(line)
		if started && size+1+n > limit {
			flush()
		}
		if started {
			current.WriteByte('\n')
			size++
		}
		current.WriteString(line)
		size += n
		started = true
	}
	flush()
	return chunks
}

func utf16Len(s string) int {
	n := 0
	for _, r := range s {
		n += utf16.RuneLen(r)
	}
	return n
}

// cutUTF16 splits s after the last rune that fits in limit code units,
// keeping at least one rune in the head.
func cutUTF16(s string, limit int) (string, string) {
	n := 0
	for i, r := range s {
		if i > 0 && n+utf16.RuneLen(r) > limit {
			return s[:i], s[i:]
		}
		n += utf16.RuneLen(r)
	}
	return s, ""
}
