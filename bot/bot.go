/* bot.go
 * Contains logic used for creating and running the bot. Requires a discord bot token and
 * ApiPtr, both of which are passed in from main.go
 */

package bot

import (
	"context"
	"fmt"
	"log/slog"
	"os"
	"os/signal"
	"regexp"
	"strings"
	"sync"
	"syscall"
	"time"

	"coinbot/api"
	"coinbot/api/shared"

	"github.com/bwmarrin/discordgo"
	"github.com/go-andiamo/splitter"
)

// Bot wires the discord gateway to the command registry. The ledger and
// content client are reached through ApiPtr; nothing in this package keeps
// its own economy state beyond the process-local gamble cooldown map.
type Bot struct {
	BotToken string
	ApiPtr   *api.API
	Prefix   string
	Log      *slog.Logger

	session  *discordgo.Session
	commands []command
	names    []string

	mu        sync.Mutex
	cooldowns map[string]time.Time
}

var (
	morningPattern = regexp.MustCompile(`(?i)good morning`)
	welcomePattern = regexp.MustCompile(`(?i)\bwelcome\b`)
)

// NewBot validates configuration and assembles the command registry.
// Preconditions: Receives a discord bot token, API pointer, command prefix and logger
// Postconditions: Returns a pointer to the Bot, or an error when the token or API is missing
func NewBot(botToken string, apiPtr *api.API, prefix string, log *slog.Logger) (*Bot, error) {
	if botToken == "" {
		return nil, fmt.Errorf("botToken is required but none was provided")
	}
	if apiPtr == nil {
		return nil, fmt.Errorf("apiPtr is required but none was provided")
	}
	if prefix == "" {
		prefix = "]"
	}
	if log == nil {
		log = slog.Default()
	}

	b := &Bot{
		BotToken:  botToken,
		ApiPtr:    apiPtr,
		Prefix:    prefix,
		Log:       log,
		cooldowns: make(map[string]time.Time),
	}
	b.buildCommands()
	return b, nil
}

// Run opens the gateway session and blocks until SIGINT/SIGTERM.
func (b *Bot) Run() error {
	discord, err := discordgo.New("Bot " + b.BotToken)
	if err != nil {
		return err
	}
	b.session = discord

	discord.Identify.Intents = discordgo.IntentsGuilds |
		discordgo.IntentsGuildMessages |
		discordgo.IntentMessageContent

	discord.AddHandler(b.onReady)
	discord.AddHandler(b.newMessage)
	discord.AddHandler(b.onInteractionCreate)

	if err := discord.Open(); err != nil {
		return fmt.Errorf("failed to open discord connection: %w", err)
	}
	defer discord.Close()

	b.Log.Info("bot running, press ctrl+c to exit")
	c := make(chan os.Signal, 1)
	signal.Notify(c, syscall.SIGINT, syscall.SIGTERM, os.Interrupt)
	<-c

	b.Log.Info("shutting down")
	return nil
}

func (b *Bot) onReady(s *discordgo.Session, event *discordgo.Ready) {
	b.Log.Info("logged in", "username", event.User.Username, "id", event.User.ID)
	if err := b.registerSlashCommands(s); err != nil {
		b.Log.Error("slash registration failed", "err", err)
	}
}

// newMessage is the gateway entry point for the prefix command surface.
func (b *Bot) newMessage(discord *discordgo.Session, message *discordgo.MessageCreate) {
	// Never respond to ourselves or to other bots
	if message.Author == nil || message.Author.Bot {
		return
	}
	if discord.State != nil && discord.State.User != nil && message.Author.ID == discord.State.User.ID {
		return
	}
	b.handleMessage(discord, message.Message)
}

// handleMessage runs auto-replies and prefix commands for one message. It
// takes the narrow session interface so tests can capture the outbound
// traffic.
func (b *Bot) handleMessage(s DiscordSession, message *discordgo.Message) {
	content := message.Content

	// Keyword auto-replies fire on plain chatter, not on commands.
	if !strings.HasPrefix(content, b.Prefix) {
		switch {
		case morningPattern.MatchString(content):
			b.send(s, message.ChannelID, text(pickLine(mornings)))
		case welcomePattern.MatchString(content):
			b.send(s, message.ChannelID, text(pickLine(welcomes)))
		}
		return
	}

	inv, err := b.parsePrefixCommand(message)
	if err != nil {
		b.Log.Warn("failed to parse command", "content", content, "err", err)
		b.send(s, message.ChannelID, text(unknownCommandReply))
		return
	}
	if inv.Command == "" {
		return
	}

	ctx := context.Background()
	b.send(s, message.ChannelID, b.dispatch(ctx, inv))
}

// parsePrefixCommand tokenizes a prefix message into an Invocation. Double
// quotes keep multi-word args together, so `buy "role color"` is one arg.
func (b *Bot) parsePrefixCommand(message *discordgo.Message) (Invocation, error) {
	trimmed := strings.TrimSpace(strings.TrimPrefix(message.Content, b.Prefix))
	if trimmed == "" {
		return Invocation{}, nil
	}

	spaceSplitter, err := splitter.NewSplitter(' ', splitter.DoubleQuotes)
	if err != nil {
		return Invocation{}, err
	}
	tokens, err := spaceSplitter.Split(trimmed)
	if err != nil {
		return Invocation{}, err
	}

	var fields []string
	for _, tok := range tokens {
		tok = strings.Trim(strings.TrimSpace(tok), `"`)
		if tok != "" {
			fields = append(fields, tok)
		}
	}
	if len(fields) == 0 {
		return Invocation{}, nil
	}

	inv := Invocation{
		User:    shared.User{UserId: message.Author.ID, Username: message.Author.Username},
		GuildID: message.GuildID,
		Command: strings.ToLower(fields[0]),
		Args:    fields[1:],
	}

	// Resolve mention tokens in arg order against the message mention list.
	byID := make(map[string]*discordgo.User, len(message.Mentions))
	for _, u := range message.Mentions {
		byID[u.ID] = u
	}
	for _, arg := range inv.Args {
		id, ok := mentionUserID(arg)
		if !ok {
			continue
		}
		mention := shared.User{UserId: id, Username: id}
		if u, found := byID[id]; found {
			mention.Username = u.Username
		}
		inv.Mentions = append(inv.Mentions, mention)
	}
	return inv, nil
}

// send delivers one reply, logging delivery failures.
func (b *Bot) send(s DiscordSession, channelID string, reply Reply) {
	var err error
	if reply.Embed != nil {
		_, err = s.ChannelMessageSendComplex(channelID, reply.toMessageSend())
	} else {
		_, err = s.ChannelMessageSend(channelID, reply.Content)
	}
	if err != nil {
		b.Log.Error("failed to send reply", "channel", channelID, "err", err)
	}
}
