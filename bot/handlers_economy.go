/* handlers_economy.go
 * Contains the command handlers that read or mutate the ledger: balances, daily
 * claims, payments, the shop and the leaderboard. Every store error is mapped to
 * a single user-facing reply here; nothing propagates past the handler boundary.
 */

package bot

import (
	"context"
	"errors"
	"fmt"
	"strings"
	"time"

	"coinbot/api"
	"coinbot/api/store"
)

func (b *Bot) cmdBalance(ctx context.Context, inv Invocation) Reply {
	target := inv.User
	if mention, ok := inv.TargetUser(); ok {
		target = mention
	}
	acct := b.ApiPtr.Balance(target.UserId)
	return text(fmt.Sprintf("%s has %d coins.", target.Username, acct.Balance))
}

func (b *Bot) cmdDaily(ctx context.Context, inv Invocation) Reply {
	balance, remaining, err := b.ApiPtr.Daily(inv.User.UserId, time.Now())
	if errors.Is(err, store.ErrCooldownActive) {
		return text(fmt.Sprintf("You already claimed your daily reward. Try again in %s.", remaining.Round(time.Second)))
	}
	if err != nil {
		b.Log.Error("daily claim failed", "user", inv.User.UserId, "err", err)
		return text("Couldn't claim your daily reward. Please try again.")
	}
	return text(fmt.Sprintf("You claimed %d coins! You now have %d.", b.ApiPtr.Config.DailyReward, balance))
}

func (b *Bot) cmdPay(ctx context.Context, inv Invocation) Reply {
	target, ok := inv.TargetUser()
	if !ok {
		return text("You need to mention someone to pay.")
	}
	amount, err := amountFromArgs(inv.Args)
	if err != nil {
		return text("Invalid amount. Use a positive whole number.")
	}

	switch err := b.ApiPtr.Pay(inv.User.UserId, target.UserId, amount); {
	case errors.Is(err, store.ErrInvalidTarget):
		return text("You can't pay yourself.")
	case errors.Is(err, store.ErrInsufficientFunds):
		return text("Not enough coins.")
	case errors.Is(err, store.ErrInvalidAmount):
		return text("Invalid amount. Use a positive whole number.")
	case err != nil:
		b.Log.Error("pay failed", "from", inv.User.UserId, "to", target.UserId, "err", err)
		return text("Payment failed. Please try again.")
	}
	return text(fmt.Sprintf("Paid %d coins to %s.", amount, target.Username))
}

func (b *Bot) cmdShop(ctx context.Context, inv Invocation) Reply {
	embed := &Embed{Title: "🛒 Shop"}
	for _, item := range b.ApiPtr.Shop() {
		embed.Fields = append(embed.Fields, EmbedField{
			Name:  fmt.Sprintf("%s — %d coins", item.Name, item.Price),
			Value: fmt.Sprintf("id: `%s`", item.Id),
		})
	}
	return Reply{Embed: embed}
}

func (b *Bot) cmdBuy(ctx context.Context, inv Invocation) Reply {
	query := strings.Join(inv.Args, " ")
	item, err := b.ApiPtr.Buy(inv.User.UserId, query)
	switch {
	case errors.Is(err, api.ErrUnknownItem):
		return text("Item not found. Check `shop` for what's available.")
	case errors.Is(err, store.ErrInsufficientFunds):
		return text("Not enough coins.")
	case err != nil:
		b.Log.Error("buy failed", "user", inv.User.UserId, "item", query, "err", err)
		return text("Purchase failed. Please try again.")
	}
	return text(fmt.Sprintf("You bought %s!", item.Name))
}

func (b *Bot) cmdUse(ctx context.Context, inv Invocation) Reply {
	query := strings.Join(inv.Args, " ")
	item, err := b.ApiPtr.UseItem(inv.User.UserId, query)
	switch {
	case errors.Is(err, api.ErrUnknownItem):
		return text("Item not found. Check `shop` for what's available.")
	case errors.Is(err, store.ErrItemNotOwned):
		return text("You don't own that item.")
	case err != nil:
		b.Log.Error("use failed", "user", inv.User.UserId, "item", query, "err", err)
		return text("Couldn't use that item. Please try again.")
	}
	return text(fmt.Sprintf("You used %s!", item.Name))
}

func (b *Bot) cmdInventory(ctx context.Context, inv Invocation) Reply {
	items := b.ApiPtr.Inventory(inv.User.UserId)
	if len(items) == 0 {
		return text("Your inventory is empty. Visit the `shop`!")
	}

	var res strings.Builder
	res.WriteString("Your inventory:\n")
	for _, id := range items {
		res.WriteString(fmt.Sprintf("- %s\n", id))
	}
	return text(res.String())
}

func (b *Bot) cmdTrade(ctx context.Context, inv Invocation) Reply {
	target, ok := inv.TargetUser()
	if !ok {
		return text("You need to mention someone to trade with.")
	}
	query := itemQueryFromArgs(inv.Args)
	if query == "" {
		return text("Which item do you want to trade?")
	}

	item, err := b.ApiPtr.Trade(inv.User.UserId, target.UserId, query)
	switch {
	case errors.Is(err, api.ErrUnknownItem):
		return text("Item not found. Check `shop` for what's available.")
	case errors.Is(err, store.ErrItemNotOwned):
		return text("You don't own that item.")
	case errors.Is(err, store.ErrInvalidTarget):
		return text("You can't trade with yourself.")
	case err != nil:
		b.Log.Error("trade failed", "from", inv.User.UserId, "to", target.UserId, "err", err)
		return text("Trade failed. Please try again.")
	}
	return text(fmt.Sprintf("Traded %s to %s.", item.Name, target.Username))
}

func (b *Bot) cmdLeaderboard(ctx context.Context, inv Invocation) Reply {
	entries := b.ApiPtr.Leaderboard(10)
	if len(entries) == 0 {
		return text("Nobody has any coins yet.")
	}

	var res strings.Builder
	res.WriteString("🏆 Top balances:\n")
	for i, entry := range entries {
		res.WriteString(fmt.Sprintf("%d. <@%s> — %d coins\n", i+1, entry.UserId, entry.Balance))
	}
	return text(res.String())
}

func (b *Bot) cmdGiveMoney(ctx context.Context, inv Invocation) Reply {
	if !b.isOwner(inv.User.UserId) {
		return text("Only the bot owner can do that.")
	}
	target, ok := inv.TargetUser()
	if !ok {
		return text("You need to mention someone.")
	}
	amount, err := amountFromArgs(inv.Args)
	if err != nil {
		return text("Invalid amount. Use a positive whole number.")
	}

	if err := b.ApiPtr.Give(target.UserId, amount); err != nil {
		return text("Invalid amount. Use a positive whole number.")
	}
	return text(fmt.Sprintf("Gave %d coins to %s.", amount, target.Username))
}

func (b *Bot) cmdTakeMoney(ctx context.Context, inv Invocation) Reply {
	if !b.isOwner(inv.User.UserId) {
		return text("Only the bot owner can do that.")
	}
	target, ok := inv.TargetUser()
	if !ok {
		return text("You need to mention someone.")
	}
	amount, err := amountFromArgs(inv.Args)
	if err != nil {
		return text("Invalid amount. Use a positive whole number.")
	}

	switch err := b.ApiPtr.Take(target.UserId, amount); {
	case errors.Is(err, store.ErrInsufficientFunds):
		return text(fmt.Sprintf("%s doesn't have that many coins.", target.Username))
	case err != nil:
		return text("Invalid amount. Use a positive whole number.")
	}
	return text(fmt.Sprintf("Took %d coins from %s.", amount, target.Username))
}

// isOwner reduces the permission oracle to the configured owner id.
func (b *Bot) isOwner(userId string) bool {
	return b.ApiPtr.Config.OwnerID != "" && userId == b.ApiPtr.Config.OwnerID
}

// amountFromArgs returns the first arg that parses as a positive amount,
// skipping mention tokens so `pay @user 100` and `pay 100 @user` both work.
func amountFromArgs(args []string) (int64, error) {
	for _, arg := range args {
		if _, isMention := mentionUserID(arg); isMention {
			continue
		}
		if n, err := parseAmount(arg); err == nil {
			return n, nil
		}
	}
	return 0, fmt.Errorf("no amount in args")
}

// itemQueryFromArgs joins the non-mention args into one item query.
func itemQueryFromArgs(args []string) string {
	var parts []string
	for _, arg := range args {
		if _, isMention := mentionUserID(arg); isMention {
			continue
		}
		parts = append(parts, arg)
	}
	return strings.Join(parts, " ")
}
