/* slash.go
 * Contains the slash command surface. Definitions are registered on ready and
 * incoming interactions are normalized into the same Invocation the prefix
 * path produces, so both surfaces share one dispatcher.
 */

package bot

import (
	"context"
	"strconv"

	"coinbot/api/shared"

	"github.com/bwmarrin/discordgo"
)

func userOption(name, description string, required bool) *discordgo.ApplicationCommandOption {
	return &discordgo.ApplicationCommandOption{
		Type:        discordgo.ApplicationCommandOptionUser,
		Name:        name,
		Description: description,
		Required:    required,
	}
}

func intOption(name, description string, required bool) *discordgo.ApplicationCommandOption {
	minValue := float64(1)
	return &discordgo.ApplicationCommandOption{
		Type:        discordgo.ApplicationCommandOptionInteger,
		Name:        name,
		Description: description,
		Required:    required,
		MinValue:    &minValue,
	}
}

func stringOption(name, description string, required bool) *discordgo.ApplicationCommandOption {
	return &discordgo.ApplicationCommandOption{
		Type:        discordgo.ApplicationCommandOptionString,
		Name:        name,
		Description: description,
		Required:    required,
	}
}

// slashDefinitions returns the application command list mirrored from the
// registry. Options are ordered the way the prefix usage strings read, so
// the option values can be flattened straight into Invocation.Args.
func (b *Bot) slashDefinitions() []*discordgo.ApplicationCommand {
	gameChoices := []*discordgo.ApplicationCommandOptionChoice{
		{Name: "Coin flip", Value: "coin"},
		{Name: "Slots", Value: "slots"},
		{Name: "Five card draw", Value: "poker"},
	}

	perCommand := map[string][]*discordgo.ApplicationCommandOption{
		"userinfo":    {userOption("user", "User to inspect", false)},
		"avatar":      {userOption("user", "User whose avatar to show", false)},
		"balance":     {userOption("user", "User whose balance to check", false)},
		"pay":         {userOption("user", "Recipient", true), intOption("amount", "Coins to send", true)},
		"buy":         {stringOption("item", "Item to buy", true)},
		"use":         {stringOption("item", "Item to use", true)},
		"trade":       {userOption("user", "Recipient", true), stringOption("item", "Item to trade", true)},
		"givemoney":   {userOption("user", "Recipient", true), intOption("amount", "Coins to give", true)},
		"takemoney":   {userOption("user", "Target", true), intOption("amount", "Coins to take", true)},
		"gamble": {
			intOption("amount", "Coins to bet", true),
			{
				Type:        discordgo.ApplicationCommandOptionString,
				Name:        "game",
				Description: "Which game to play",
				Choices:     gameChoices,
			},
		},
		"gif":      {stringOption("keyword", "What to search for", true)},
		"8ball":    {stringOption("question", "Your question", true)},
		"pick":     {stringOption("options", "Options separated by |", true)},
		"hug":      {userOption("user", "Who to hug", true)},
		"slap":     {userOption("user", "Who to slap", true)},
		"highfive": {userOption("user", "Who to highfive", true)},
		"touch":    {userOption("user", "Who to touch", true)},
	}

	defs := make([]*discordgo.ApplicationCommand, 0, len(b.commands))
	for _, cmd := range b.commands {
		defs = append(defs, &discordgo.ApplicationCommand{
			Name:        cmd.name,
			Description: cmd.description,
			Options:     perCommand[cmd.name],
		})
	}
	return defs
}

// registerSlashCommands bulk-overwrites the global application commands so
// removed commands disappear from the picker.
func (b *Bot) registerSlashCommands(s *discordgo.Session) error {
	if s.State == nil || s.State.User == nil {
		return nil
	}
	_, err := s.ApplicationCommandBulkOverwrite(s.State.User.ID, "", b.slashDefinitions())
	return err
}

// onInteractionCreate normalizes a slash invocation and dispatches it.
func (b *Bot) onInteractionCreate(s *discordgo.Session, i *discordgo.InteractionCreate) {
	if i.Type != discordgo.InteractionApplicationCommand {
		return
	}

	var author *discordgo.User
	if i.Member != nil {
		author = i.Member.User
	} else {
		author = i.User
	}
	if author == nil || author.Bot {
		return
	}

	data := i.ApplicationCommandData()
	inv := Invocation{
		User:    shared.User{UserId: author.ID, Username: author.Username},
		GuildID: i.GuildID,
		Command: data.Name,
	}

	// Flatten options in declaration order so minArgs and the positional
	// parsing in handlers line up with the prefix surface.
	for _, opt := range data.Options {
		switch opt.Type {
		case discordgo.ApplicationCommandOptionUser:
			id, _ := opt.Value.(string)
			inv.Args = append(inv.Args, "<@"+id+">")
			mention := shared.User{UserId: id, Username: id}
			if data.Resolved != nil {
				if u, ok := data.Resolved.Users[id]; ok {
					mention.Username = u.Username
				}
			}
			inv.Mentions = append(inv.Mentions, mention)
		case discordgo.ApplicationCommandOptionInteger:
			n, _ := opt.Value.(float64)
			inv.Args = append(inv.Args, strconv.FormatInt(int64(n), 10))
		default:
			v, _ := opt.Value.(string)
			inv.Args = append(inv.Args, v)
		}
	}

	reply := b.dispatch(context.Background(), inv)

	response := &discordgo.InteractionResponseData{Content: reply.Content}
	if reply.Embed != nil {
		response.Embeds = []*discordgo.MessageEmbed{reply.Embed.toMessageEmbed()}
	}
	err := s.InteractionRespond(i.Interaction, &discordgo.InteractionResponse{
		Type: discordgo.InteractionResponseChannelMessageWithSource,
		Data: response,
	})
	if err != nil {
		b.Log.Error("failed to respond to interaction", "command", data.Name, "err", err)
	}
}
