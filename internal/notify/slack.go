package notify

import (
	"context"
	"fmt"

	"github.com/slack-go/slack"
)

// slackPoster is the slice of the slack client we use.
type slackPoster interface {
	PostMessageContext(ctx context.Context, channelID string, options ...slack.MsgOption) (string, string, error)
}

// SlackNotifier posts messages to a channel through the Slack Web API.
type SlackNotifier struct {
	client  slackPoster
	channel string
}

// NewSlackNotifier creates a SlackNotifier from a bot token.
func NewSlackNotifier(token, channel string) *SlackNotifier {
	return &SlackNotifier{
		client:  slack.New(token),
		channel: channel,
	}
}

// Send posts a message to the configured channel.
func (s *SlackNotifier) Send(ctx context.Context, message string) error {
	channel := s.channel
	if channel == "" {
		channel = "#benchmarks"
	}

	_, _, err := s.client.PostMessageContext(ctx, channel, slack.MsgOptionText(message, false))
	if err != nil {
		return fmt.Errorf("failed to post slack message: %w", err)
	}
	return nil
}
