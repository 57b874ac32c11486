package messagingadapter

import (
	"context"
	"strings"

	"stablecoin/internal/platform/messaging"
	"stablecoin/internal/shared/events"
)

const topicPrefix = "ledger.account."

// Notifier fans ledger notifications out over the in-process bus. Each
// account has its own topic, mirroring the per-recipient signal of the
// ledger: observers subscribe to the accounts they care about.
type Notifier struct {
	Bus *messaging.Bus
}

func NewNotifier(bus *messaging.Bus) Notifier {
	return Notifier{Bus: bus}
}

func (n Notifier) Notify(ctx context.Context, account string, event events.Envelope) {
	if n.Bus == nil {
		return
	}
	n.Bus.Publish(ctx, Topic(account), event)
}

// Topic returns the bus topic carrying one account's notifications.
func Topic(account string) string {
	return topicPrefix + strings.TrimSpace(account)
}
