/* handlers_fun.go
 * Contains the fun, content and interaction command handlers. Content commands
 * call the external client with a bounded timeout and degrade to a fixed
 * fallback line when a third party API is down.
 */

package bot

import (
	"context"
	"fmt"
	"math/rand/v2"
	"strings"
	"time"

	"coinbot/api/external"
)

func (b *Bot) cmdPing(ctx context.Context, inv Invocation) Reply {
	if b.session != nil {
		return text(fmt.Sprintf("Pong! %dms", b.session.HeartbeatLatency().Milliseconds()))
	}
	return text("Pong!")
}

func (b *Bot) cmdHelp(ctx context.Context, inv Invocation) Reply {
	var res strings.Builder
	res.WriteString("coinbot commands:\n")
	for _, cmd := range b.commands {
		res.WriteString(fmt.Sprintf("`%s%s` — %s\n", b.Prefix, cmd.usage, cmd.description))
	}
	return text(res.String())
}

// fetchContent wraps one external call with the per-command fallback line.
func (b *Bot) fetchContent(ctx context.Context, kind external.Kind, keyword, fallback string) (string, bool) {
	if b.ApiPtr.Content == nil {
		return fallback, false
	}
	content, err := b.ApiPtr.Content.Fetch(ctx, kind, keyword)
	if err != nil {
		b.Log.Warn("content fetch failed", "kind", kind, "err", err)
		return fallback, false
	}
	return content, true
}

func (b *Bot) cmdJoke(ctx context.Context, inv Invocation) Reply {
	content, _ := b.fetchContent(ctx, external.KindJoke, "", "The joke machine is napping. Try again later.")
	return text(content)
}

func (b *Bot) cmdFact(ctx context.Context, inv Invocation) Reply {
	content, _ := b.fetchContent(ctx, external.KindFact, "", "No facts available right now. Try again later.")
	return text(content)
}

func (b *Bot) cmdQuote(ctx context.Context, inv Invocation) Reply {
	content, _ := b.fetchContent(ctx, external.KindQuote, "", "The muses are quiet right now. Try again later.")
	return text(content)
}

func (b *Bot) cmdMeme(ctx context.Context, inv Invocation) Reply {
	content, ok := b.fetchContent(ctx, external.KindMeme, "", "No memes right now. Try again later.")
	if !ok {
		return text(content)
	}
	return Reply{Embed: &Embed{Title: "Fresh meme", ImageURL: content}}
}

func (b *Bot) cmdCat(ctx context.Context, inv Invocation) Reply {
	content, ok := b.fetchContent(ctx, external.KindCat, "", "The cats are hiding. Try again later.")
	if !ok {
		return text(content)
	}
	return Reply{Embed: &Embed{Title: "🐱", ImageURL: content}}
}

func (b *Bot) cmdDog(ctx context.Context, inv Invocation) Reply {
	content, ok := b.fetchContent(ctx, external.KindDog, "", "The dogs are out for a walk. Try again later.")
	if !ok {
		return text(content)
	}
	return Reply{Embed: &Embed{Title: "🐶", ImageURL: content}}
}

func (b *Bot) cmdGif(ctx context.Context, inv Invocation) Reply {
	keyword := strings.Join(inv.Args, " ")
	content, ok := b.fetchContent(ctx, external.KindGif, keyword, fmt.Sprintf("No gifs found for %q.", keyword))
	if !ok {
		return text(content)
	}
	return Reply{Embed: &Embed{Title: keyword, ImageURL: content}}
}

func (b *Bot) cmd8Ball(ctx context.Context, inv Invocation) Reply {
	return text(fmt.Sprintf("🎱 %s", pickLine(eightBalls)))
}

func (b *Bot) cmdCoinFlip(ctx context.Context, inv Invocation) Reply {
	if rand.IntN(2) == 0 {
		return text("🪙 Heads!")
	}
	return text("🪙 Tails!")
}

func (b *Bot) cmdRoll(ctx context.Context, inv Invocation) Reply {
	return text(fmt.Sprintf("🎲 You rolled a %d!", rand.IntN(6)+1))
}

func (b *Bot) cmdPick(ctx context.Context, inv Invocation) Reply {
	options := strings.Split(strings.Join(inv.Args, " "), "|")
	var cleaned []string
	for _, opt := range options {
		if opt = strings.TrimSpace(opt); opt != "" {
			cleaned = append(cleaned, opt)
		}
	}
	if len(cleaned) == 0 {
		return text("Give me options separated by `|`.")
	}
	return text(fmt.Sprintf("I pick: %s", cleaned[rand.IntN(len(cleaned))]))
}

// interaction builds the handler for a hug/slap style command. The flavor
// line comes from the verb's weighted table; a matching gif is attached
// when Tenor has one.
func (b *Bot) interaction(verb string) func(ctx context.Context, inv Invocation) Reply {
	return func(ctx context.Context, inv Invocation) Reply {
		target, ok := inv.TargetUser()
		if !ok {
			return text(fmt.Sprintf("You need to mention someone to %s.", verb))
		}
		if target.UserId == inv.User.UserId {
			return text(fmt.Sprintf("You %s yourself. It's not the same.", verb))
		}

		line := fmt.Sprintf(pickLine(interactionLines[verb]), target.Username, inv.User.Username)
		if b.ApiPtr.Content == nil {
			return text(line)
		}
		gifURL, err := b.ApiPtr.Content.Fetch(ctx, external.KindGif, "anime "+verb)
		if err != nil {
			return text(line)
		}
		return Reply{Embed: &Embed{Description: line, ImageURL: gifURL}}
	}
}

func (b *Bot) cmdUserInfo(ctx context.Context, inv Invocation) Reply {
	target := inv.User
	if mention, ok := inv.TargetUser(); ok {
		target = mention
	}
	acct := b.ApiPtr.Balance(target.UserId)

	embed := &Embed{
		Title: fmt.Sprintf("%s's profile", target.Username),
		Fields: []EmbedField{
			{Name: "User ID", Value: target.UserId, Inline: true},
			{Name: "Balance", Value: fmt.Sprintf("%d coins", acct.Balance), Inline: true},
			{Name: "Items owned", Value: fmt.Sprintf("%d", len(acct.Inventory)), Inline: true},
		},
	}
	if acct.LastDaily != 0 {
		embed.Fields = append(embed.Fields, EmbedField{
			Name:  "Last daily claim",
			Value: time.UnixMilli(acct.LastDaily).UTC().Format(time.RFC1123),
		})
	}
	return Reply{Embed: embed}
}

func (b *Bot) cmdAvatar(ctx context.Context, inv Invocation) Reply {
	target := inv.User
	if mention, ok := inv.TargetUser(); ok {
		target = mention
	}
	if b.session == nil {
		return text("Couldn't fetch that avatar right now.")
	}

	user, err := b.session.User(target.UserId)
	if err != nil {
		b.Log.Warn("avatar lookup failed", "user", target.UserId, "err", err)
		return text("Couldn't fetch that avatar right now.")
	}
	return Reply{Embed: &Embed{
		Title:    fmt.Sprintf("%s's avatar", user.Username),
		ImageURL: user.AvatarURL("512"),
	}}
}
