package telegram

import (
	"crypto/sha256"
	"encoding/json"
	"fmt"
	"io"
	"net/http"

	"github.com/Tareq669/bot-sub000/internal/logging"

	"github.com/gin-gonic/gin"
)

// Bot wires the configured bot token to the webhook endpoint and hands
// updates to the handler.
type Bot struct {
	client        *Client
	handler       *UpdateHandler
	secret        string
	webhookBase   string
	webhookSecret string
}

func NewBot(token, webhookBase, webhookSecret string, handler *UpdateHandler, client *Client) *Bot {
	h := sha256.Sum256([]byte(token))
	return &Bot{
		client:        client,
		handler:       handler,
		secret:        fmt.Sprintf("%x", h[:16]),
		webhookBase:   webhookBase,
		webhookSecret: webhookSecret,
	}
}

func (b *Bot) Start() error {
	url := fmt.Sprintf("%s/webhook/bot/%s", b.webhookBase, b.secret)
	if err := b.client.SetWebhook(url, b.webhookSecret); err != nil {
		return fmt.Errorf("set webhook: %w", err)
	}
	logging.Log.Infof("bot webhook registered: %s", url)
	return nil
}

func (b *Bot) Stop() {
	if err := b.client.DeleteWebhook(); err != nil {
		logging.Log.WithError(err).Warn("delete webhook failed")
	}
	logging.Log.Info("bot stopped")
}

func (b *Bot) HandleWebhook(c *gin.Context) {
	if c.Param("secret") != b.secret {
		c.Status(http.StatusNotFound)
		return
	}

	if b.webhookSecret != "" {
		if c.GetHeader("X-Telegram-Bot-Api-Secret-Token") != b.webhookSecret {
			c.Status(http.StatusUnauthorized)
			return
		}
	}

	body, err := io.ReadAll(c.Request.Body)
	if err != nil {
		c.Status(http.StatusBadRequest)
		return
	}

	var upd Update
	if err := json.Unmarshal(body, &upd); err != nil {
		c.Status(http.StatusBadRequest)
		return
	}

	go b.handler.Handle(upd)

	c.Status(http.StatusOK)
}
