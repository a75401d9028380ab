package notify

import (
	"context"
	"fmt"
	"strings"

	"github.com/spf13/viper"

	"benchgate/internal/config"
	"benchgate/internal/report"
	"benchgate/internal/telemetry"
)

// maxAlertRows bounds how many regressed rows a message lists.
const maxAlertRows = 5

// Manager decides whether a comparison warrants a notification and
// delivers it. It stays inert unless Slack is enabled and a token exists.
type Manager struct {
	notifier Notifier
}

// NewManager wires the configured provider.
func NewManager() *Manager {
	m := &Manager{}

	if !viper.GetBool("notify.slack.enabled") {
		return m
	}

	token := config.SlackToken()
	if token == "" {
		telemetry.LogWarn("SLACK_BOT_USER_TOKEN not set, slack notifications disabled")
		return m
	}

	m.notifier = NewSlackNotifier(token, viper.GetString("notify.slack.channel"))
	return m
}

// RegressionAlert sends a summary of the regressed rows. It is a no-op
// when no provider is wired or nothing regressed; delivery failures are
// logged, never returned, so a flaky webhook cannot fail a CI run.
func (m *Manager) RegressionAlert(ctx context.Context, c report.Comparison) {
	if m.notifier == nil {
		return
	}

	regs := c.Regressions()
	if len(regs) == 0 {
		return
	}

	if err := m.notifier.Send(ctx, formatAlert(c, regs)); err != nil {
		telemetry.LogWarn("failed to send regression alert", "error", err)
	}
}

func formatAlert(c report.Comparison, regs []report.Row) string {
	var b strings.Builder
	fmt.Fprintf(&b, "🐌 benchmark regression: %s vs %s\n", report.ShortRev(c.BaseRev), report.ShortRev(c.HeadRev))

	improved, regressed, neutral, incomparable := c.Counts()
	fmt.Fprintf(&b, "%d regressed, %d improved, %d neutral, %d incomparable\n", regressed, improved, neutral, incomparable)

	for i, r := range regs {
		if i == maxAlertRows {
			fmt.Fprintf(&b, "(and %d more)\n", len(regs)-maxAlertRows)
			break
		}
		fmt.Fprintf(&b, "• %s: %s -> %s (%+.2f%%)\n", r.Name, report.FormatNs(r.BaseMean), report.FormatNs(r.HeadMean), r.Diff*100)
	}

	return strings.TrimRight(b.String(), "\n")
}
