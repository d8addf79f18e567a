package push

import (
	"fmt"
	"os"

	"github.com/line/line-bot-sdk-go/v7/linebot"

	"studysync/internal/pkg/logger"
)

// LineClient delivers fired notifications as LINE push messages.
type LineClient struct {
	bot       *linebot.Client
	recipient string
	log       logger.Logger
}

// NewLineClient creates a LINE-backed Pusher from environment
// credentials (CHANNEL_SECRET, CHANNEL_ACCESS_TOKEN, PUSH_RECIPIENT_ID).
func NewLineClient(log logger.Logger) (*LineClient, error) {
	channelSecret := os.Getenv("CHANNEL_SECRET")
	channelToken := os.Getenv("CHANNEL_ACCESS_TOKEN")
	recipient := os.Getenv("PUSH_RECIPIENT_ID")

	if channelSecret == "" || channelToken == "" || recipient == "" {
		return nil, fmt.Errorf("CHANNEL_SECRET, CHANNEL_ACCESS_TOKEN and PUSH_RECIPIENT_ID must be set")
	}

	bot, err := linebot.New(channelSecret, channelToken)
	if err != nil {
		return nil, fmt.Errorf("failed to create LINE client: %w", err)
	}
	log.Info("LINE push client created.")
	return &LineClient{
		bot:       bot,
		recipient: recipient,
		log:       log,
	}, nil
}

// Push sends the notification as a LINE push message.
func (c *LineClient) Push(title, body string, metadata map[string]string) error {
	message := linebot.NewTextMessage(fmt.Sprintf("%s\n%s", title, body))
	if _, err := c.bot.PushMessage(c.recipient, message).Do(); err != nil {
		return fmt.Errorf("failed to push message: %w", err)
	}
	c.log.Debug("Successfully sent push message.")
	return nil
}
