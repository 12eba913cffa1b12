/* handlers_gamble.go
 * Contains the gamble command handler. The bet is debited before any draw; the
 * payout engine decides what fraction comes back. A per-actor cooldown keeps the
 * command from being spammed.
 */

package bot

import (
	"context"
	"errors"
	"fmt"
	"strings"
	"time"

	"coinbot/api/store"
)

func (b *Bot) cmdGamble(ctx context.Context, inv Invocation) Reply {
	amount, err := amountFromArgs(inv.Args)
	if err != nil {
		return text("Invalid bet. Use a positive whole number.")
	}

	game := "coin"
	if len(inv.Args) > 1 {
		game = strings.ToLower(inv.Args[len(inv.Args)-1])
	}
	switch game {
	case "coin", "slots", "poker":
	default:
		game = "coin"
	}

	if remaining, ok := b.checkGambleCooldown(inv.User.UserId, time.Now()); !ok {
		return text(fmt.Sprintf("Slow down! You can gamble again in %s.", remaining.Round(time.Second)))
	}

	switch game {
	case "slots":
		return b.gambleSlots(inv, amount)
	case "poker":
		return b.gamblePoker(inv, amount)
	default:
		return b.gambleCoin(inv, amount)
	}
}

func (b *Bot) gambleCoin(inv Invocation, bet int64) Reply {
	res, err := b.ApiPtr.GambleCoin(inv.User.UserId, bet)
	if reply, failed := gambleError(b, inv, err); failed {
		return reply
	}

	if res.Won {
		return text(fmt.Sprintf("🪙 Heads! You won %d coins. Balance: %d", bet, res.NewBalance))
	}
	return text(fmt.Sprintf("🪙 Tails! You lost %d coins. Balance: %d", bet, res.NewBalance))
}

func (b *Bot) gambleSlots(inv Invocation, bet int64) Reply {
	res, err := b.ApiPtr.GambleSlots(inv.User.UserId, bet)
	if reply, failed := gambleError(b, inv, err); failed {
		return reply
	}

	reels := strings.Join(res.Spin.Symbols[:], " | ")
	embed := &Embed{
		Title:       "🎰 Slots",
		Description: fmt.Sprintf("[ %s ]", reels),
		Fields: []EmbedField{
			{Name: "Bet", Value: fmt.Sprintf("%d", bet), Inline: true},
			{Name: "Payout", Value: fmt.Sprintf("%d", res.Payout), Inline: true},
			{Name: "Balance", Value: fmt.Sprintf("%d", res.NewBalance), Inline: true},
		},
	}
	return Reply{Embed: embed}
}

func (b *Bot) gamblePoker(inv Invocation, bet int64) Reply {
	res, err := b.ApiPtr.GamblePoker(inv.User.UserId, bet)
	if reply, failed := gambleError(b, inv, err); failed {
		return reply
	}

	cards := make([]string, len(res.Hand))
	for i, c := range res.Hand {
		cards[i] = c.String()
	}
	embed := &Embed{
		Title:       "🃏 Five Card Draw",
		Description: strings.Join(cards, "  "),
		Fields: []EmbedField{
			{Name: "Hand", Value: res.Eval.Label, Inline: true},
			{Name: "Bet", Value: fmt.Sprintf("%d", bet), Inline: true},
			{Name: "Payout", Value: fmt.Sprintf("%d", res.Payout), Inline: true},
			{Name: "Balance", Value: fmt.Sprintf("%d", res.NewBalance), Inline: true},
		},
	}
	return Reply{Embed: embed}
}

// gambleError maps settlement errors to replies. The second return is true
// when the gamble did not happen.
func gambleError(b *Bot, inv Invocation, err error) (Reply, bool) {
	switch {
	case err == nil:
		return Reply{}, false
	case errors.Is(err, store.ErrInsufficientFunds):
		return text("Not enough coins for that bet."), true
	case errors.Is(err, store.ErrInvalidAmount):
		return text("Invalid bet. Use a positive whole number."), true
	default:
		b.Log.Error("gamble failed", "user", inv.User.UserId, "err", err)
		return text("The gamble failed. Please try again."), true
	}
}
