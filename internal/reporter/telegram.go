package reporter

import (
	"fmt"
	"html"
	"strings"
	"time"

	"go-lever-e2e/internal/checks"
	"go-lever-e2e/internal/config"

	tgbotapi "github.com/go-telegram-bot-api/telegram-bot-api/v5"
)

// maxMessageLen is Telegram's limit for one text message.
const maxMessageLen = 4096

type TelegramReporter struct {
	bot    *tgbotapi.BotAPI
	chatID int64
}

func NewTelegramReporter(cfg *config.Config) (*TelegramReporter, error) {
	if !cfg.TelegramEnabled() {
		return nil, fmt.Errorf("telegram reporting needs TELEGRAM_BOT_TOKEN and TELEGRAM_CHAT_ID")
	}
	bot, err := tgbotapi.NewBotAPI(cfg.TelegramToken)
	if err != nil {
		return nil, fmt.Errorf("failed to init telegram bot: %w", err)
	}

	//turn this on in case of debug
	//bot.Debug = true

	return &TelegramReporter{
		bot:    bot,
		chatID: cfg.TelegramChatID,
	}, nil
}

func (t *TelegramReporter) SendMessage(text string) error {
	msg := tgbotapi.NewMessage(t.chatID, text)
	msg.ParseMode = tgbotapi.ModeHTML
	msg.DisableWebPagePreview = true
	_, err := t.bot.Send(msg)
	return err
}

// SendSummary posts the outcome of a smoke run.
func (t *TelegramReporter) SendSummary(s checks.Summary, site config.SiteConfig) error {
	return t.SendMessage(FormatSummary(s, site))
}

func (t *TelegramReporter) SendError(errReq error) error {
	text := fmt.Sprintf("⚠️ <b>Lever smoke error</b>:\n%s", html.EscapeString(errReq.Error()))
	return t.SendMessage(text)
}

// FormatSummary renders s as a Telegram HTML message. Failures are listed
// first; the text is cut to fit a single message.
func FormatSummary(s checks.Summary, site config.SiteConfig) string {
	var b strings.Builder

	status := "✅ <b>Lever smoke passed</b>"
	if !s.OK() {
		status = "❌ <b>Lever smoke failed</b>"
	}
	fmt.Fprintf(&b, "%s\n", status)
	fmt.Fprintf(&b, "🏢 %s\n", html.EscapeString(site.Org))
	fmt.Fprintf(&b, "📊 %d passed, %d failed in %s\n", s.Passed(), s.Failed(), s.Duration().Round(time.Second))
	fmt.Fprintf(&b, "🆔 <code>%s</code>\n", s.RunID)

	for _, r := range s.Results {
		if r.Passed {
			continue
		}
		fmt.Fprintf(&b, "\n🔴 <b>%s</b>\n%s\n", html.EscapeString(r.Name), html.EscapeString(r.Error))
	}

	if s.Failed() > 0 {
		fmt.Fprintf(&b, "\n🔗 <a href=\"%s\">Posting</a> · <a href=\"%s\">Application</a>",
			html.EscapeString(site.JobURL(site.OverviewJobID)),
			html.EscapeString(site.ApplyURL(site.ApplicationJobID)))
	}

	return truncate(b.String(), maxMessageLen)
}

// truncate cuts s to at most n runes on a line boundary so no tag or
// entity is split.
func truncate(s string, n int) string {
	r := []rune(s)
	if len(r) <= n {
		return s
	}
	cut := string(r[:n-1])
	if i := strings.LastIndex(cut, "\n"); i > 0 {
		cut = cut[:i+1]
	}
	return cut + "…"
}
