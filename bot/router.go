/* router.go
 * Contains the command registry and dispatcher. Inbound events from both the
 * prefix and slash paths are normalized into an Invocation before they reach
 * this file, so routing behaves identically for either surface.
 */

package bot

import (
	"context"
	"fmt"
	"strconv"
	"strings"
	"time"

	"coinbot/api/shared"

	"github.com/lithammer/fuzzysearch/fuzzy"
)

// Invocation is one normalized command event: who issued it, the command
// name, positional string args, and any user references in arg order.
type Invocation struct {
	User     shared.User
	GuildID  string
	Command  string
	Args     []string
	Mentions []shared.User
}

// TargetUser returns the first mentioned user, if any.
func (inv Invocation) TargetUser() (shared.User, bool) {
	if len(inv.Mentions) == 0 {
		return shared.User{}, false
	}
	return inv.Mentions[0], true
}

// command is one registry entry. minArgs is validated by the router before
// the handler runs, so a shortfall can never mutate the ledger.
type command struct {
	name        string
	minArgs     int
	usage       string
	description string
	run         func(ctx context.Context, inv Invocation) Reply
}

const unknownCommandReply = "Unknown command. Try `help`."

// buildCommands assembles the registry. Called once from NewBot.
func (b *Bot) buildCommands() {
	b.commands = []command{
		// Utility
		{name: "ping", usage: "ping", description: "Check bot latency", run: b.cmdPing},
		{name: "help", usage: "help", description: "Show all commands and usage", run: b.cmdHelp},
		{name: "userinfo", usage: "userinfo [@user]", description: "Get user info", run: b.cmdUserInfo},
		{name: "avatar", usage: "avatar [@user]", description: "Get user avatar", run: b.cmdAvatar},
		// Economy
		{name: "balance", usage: "balance [@user]", description: "Check balance", run: b.cmdBalance},
		{name: "daily", usage: "daily", description: "Claim daily coins", run: b.cmdDaily},
		{name: "pay", minArgs: 2, usage: "pay @user <amount>", description: "Send coins", run: b.cmdPay},
		{name: "shop", usage: "shop", description: "Show the shop", run: b.cmdShop},
		{name: "buy", minArgs: 1, usage: "buy <item>", description: "Buy an item", run: b.cmdBuy},
		{name: "use", minArgs: 1, usage: "use <item>", description: "Use an item", run: b.cmdUse},
		{name: "inventory", usage: "inventory", description: "Show your inventory", run: b.cmdInventory},
		{name: "trade", minArgs: 2, usage: "trade @user <item>", description: "Trade an item", run: b.cmdTrade},
		{name: "leaderboard", usage: "leaderboard", description: "Top balances", run: b.cmdLeaderboard},
		{name: "givemoney", minArgs: 2, usage: "givemoney @user <amount>", description: "(Owner) Give money", run: b.cmdGiveMoney},
		{name: "takemoney", minArgs: 2, usage: "takemoney @user <amount>", description: "(Owner) Take money", run: b.cmdTakeMoney},
		// Gamble
		{name: "gamble", minArgs: 1, usage: "gamble <amount> [coin|slots|poker]", description: "Gamble coins", run: b.cmdGamble},
		// Fun
		{name: "joke", usage: "joke", description: "Get a random joke", run: b.cmdJoke},
		{name: "meme", usage: "meme", description: "Get a random meme", run: b.cmdMeme},
		{name: "cat", usage: "cat", description: "Get a random cat picture", run: b.cmdCat},
		{name: "dog", usage: "dog", description: "Get a random dog picture", run: b.cmdDog},
		{name: "gif", minArgs: 1, usage: "gif <keyword>", description: "Search a gif", run: b.cmdGif},
		{name: "fact", usage: "fact", description: "Get a random fact", run: b.cmdFact},
		{name: "quote", usage: "quote", description: "Get a random quote", run: b.cmdQuote},
		{name: "8ball", minArgs: 1, usage: "8ball <question>", description: "Ask the magic 8ball", run: b.cmd8Ball},
		{name: "coinflip", usage: "coinflip", description: "Flip a coin", run: b.cmdCoinFlip},
		{name: "roll", usage: "roll", description: "Roll a dice", run: b.cmdRoll},
		{name: "pick", minArgs: 1, usage: "pick a | b | c", description: "Pick an option", run: b.cmdPick},
		// Interactions
		{name: "hug", minArgs: 1, usage: "hug @user", description: "Hug a user", run: b.interaction("hug")},
		{name: "slap", minArgs: 1, usage: "slap @user", description: "Slap a user", run: b.interaction("slap")},
		{name: "highfive", minArgs: 1, usage: "highfive @user", description: "Highfive a user", run: b.interaction("highfive")},
		{name: "touch", minArgs: 1, usage: "touch @user", description: "Touch a user", run: b.interaction("touch")},
	}

	b.names = make([]string, len(b.commands))
	for i, cmd := range b.commands {
		b.names[i] = cmd.name
	}
}

// dispatch routes one invocation to its handler and always comes back with
// exactly one reply. Handler panics are recovered here so a bad command can
// never take the process down.
// Preconditions: Receives a context and a normalized invocation
// Postconditions: Returns exactly one Reply; the ledger is untouched on unknown commands and usage errors
func (b *Bot) dispatch(ctx context.Context, inv Invocation) (reply Reply) {
	defer func() {
		if r := recover(); r != nil {
			b.Log.Error("handler panicked", "command", inv.Command, "panic", r)
			reply = text("An unexpected error occurred. Please try again.")
		}
	}()

	name := strings.ToLower(inv.Command)
	for _, cmd := range b.commands {
		if cmd.name != name {
			continue
		}
		if len(inv.Args) < cmd.minArgs {
			return text(fmt.Sprintf("Usage: `%s%s`", b.Prefix, cmd.usage))
		}
		return cmd.run(ctx, inv)
	}

	if suggestion := b.suggestCommand(name); suggestion != "" {
		return text(fmt.Sprintf("%s Did you mean `%s`?", unknownCommandReply, suggestion))
	}
	return text(unknownCommandReply)
}

// suggestCommand fuzzy-matches an unknown name against the registry.
func (b *Bot) suggestCommand(name string) string {
	results := fuzzy.RankFind(name, b.names)
	if len(results) == 0 {
		return ""
	}
	best := results[0]
	for _, r := range results[1:] {
		if r.Distance < best.Distance {
			best = r
		}
	}
	return best.Target
}

// checkGambleCooldown enforces the per-actor gamble window. The map is
// process-local and resets on restart.
// Postconditions: Returns zero and true when the actor may gamble (stamping the attempt),
// or the remaining wait and false
func (b *Bot) checkGambleCooldown(userId string, now time.Time) (time.Duration, bool) {
	b.mu.Lock()
	defer b.mu.Unlock()

	if last, ok := b.cooldowns[userId]; ok {
		if elapsed := now.Sub(last); elapsed < b.ApiPtr.Config.GambleCooldown {
			return b.ApiPtr.Config.GambleCooldown - elapsed, false
		}
	}
	b.cooldowns[userId] = now
	return 0, true
}

// parseAmount parses a positive bet or payment amount.
func parseAmount(s string) (int64, error) {
	n, err := strconv.ParseInt(strings.TrimSpace(s), 10, 64)
	if err != nil || n <= 0 {
		return 0, fmt.Errorf("invalid amount %q", s)
	}
	return n, nil
}

// mentionUserID extracts the user id from a raw mention token like <@123>
// or <@!123>.
func mentionUserID(token string) (string, bool) {
	if !strings.HasPrefix(token, "<@") || !strings.HasSuffix(token, ">") {
		return "", false
	}
	id := strings.TrimSuffix(strings.TrimPrefix(token, "<@"), ">")
	id = strings.TrimPrefix(id, "!")
	if id == "" {
		return "", false
	}
	for _, r := range id {
		if r < '0' || r > '9' {
			return "", false
		}
	}
	return id, true
}
