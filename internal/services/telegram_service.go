package services

import (
	"bytes"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"strings"

	"github.com/loydmilligan/leadoff/internal/logger"
	"github.com/loydmilligan/leadoff/internal/models"
)

// TelegramService pushes follow-up digests to a Telegram chat via the Bot
// API. With an empty token or chat id it degrades to a no-op.
type TelegramService struct {
	token   string
	chatID  int64
	baseURL string
	client  *http.Client
	log     logger.Logger
}

func NewTelegramService(botToken string, chatID int64, log logger.Logger) *TelegramService {
	return &TelegramService{
		token:   botToken,
		chatID:  chatID,
		baseURL: fmt.Sprintf("https://api.telegram.org/bot%s", botToken),
		client:  &http.Client{},
		log:     log,
	}
}

type tgResp struct {
	Ok          bool   `json:"ok"`
	Description string `json:"description"`
}

func (t *TelegramService) SendMessage(text string) error {
	if t == nil || t.token == "" || t.chatID == 0 {
		return nil
	}
	body := map[string]any{
		"chat_id":                  t.chatID,
		"text":                     text,
		"parse_mode":               "HTML",
		"disable_web_page_preview": true,
	}
	b, _ := json.Marshal(body)
	req, _ := http.NewRequest("POST", t.baseURL+"/sendMessage", bytes.NewReader(b))
	req.Header.Set("Content-Type", "application/json")

	resp, err := t.client.Do(req)
	if err != nil {
		t.log.Error("telegram send failed", "error", err)
		return err
	}
	defer resp.Body.Close()

	respBody, _ := io.ReadAll(resp.Body)
	var api tgResp
	_ = json.Unmarshal(respBody, &api)
	if resp.StatusCode != http.StatusOK || !api.Ok {
		return fmt.Errorf("telegram sendMessage failed: status=%d ok=%v desc=%s", resp.StatusCode, api.Ok, api.Description)
	}
	return nil
}

// SendFollowUpDigest formats the digest for a chat message.
func (t *TelegramService) SendFollowUpDigest(overdue, today []*models.Lead) error {
	var b strings.Builder
	b.WriteString(fmt.Sprintf("<b>Follow-up digest</b>\n\nOverdue: %d\n", len(overdue)))
	for _, l := range overdue {
		b.WriteString(fmt.Sprintf("  %s (%s)\n", l.CompanyName, l.CurrentStage))
	}
	b.WriteString(fmt.Sprintf("\nDue today: %d\n", len(today)))
	for _, l := range today {
		b.WriteString(fmt.Sprintf("  %s (%s)\n", l.CompanyName, l.CurrentStage))
	}
	return t.SendMessage(b.String())
}
