/* replies.go
 * Contains the platform-agnostic reply payload types, the weighted phrase tables
 * used by the 8ball / interaction / auto-reply commands, and the rendering of a
 * Reply into a discord message
 */

package bot

import (
	"math/rand/v2"

	"github.com/bwmarrin/discordgo"
	"gitlab.com/zephyrtronium/pick"
)

// Reply is what a handler produces: plain text, a rich embed, or both.
// Handlers never touch platform types directly; the adapter renders this.
type Reply struct {
	Content string
	Embed   *Embed
}

// Embed is a platform-agnostic rich message.
type Embed struct {
	Title       string
	Description string
	ImageURL    string
	Fields      []EmbedField
}

// EmbedField is one name/value row in an embed.
type EmbedField struct {
	Name   string
	Value  string
	Inline bool
}

func text(content string) Reply {
	return Reply{Content: content}
}

const embedColor = 0x5865F2

// toMessageEmbed renders an Embed into the discordgo type.
func (e *Embed) toMessageEmbed() *discordgo.MessageEmbed {
	embed := &discordgo.MessageEmbed{
		Title:       e.Title,
		Description: e.Description,
		Color:       embedColor,
	}
	if e.ImageURL != "" {
		embed.Image = &discordgo.MessageEmbedImage{URL: e.ImageURL}
	}
	for _, f := range e.Fields {
		embed.Fields = append(embed.Fields, &discordgo.MessageEmbedField{
			Name:   f.Name,
			Value:  f.Value,
			Inline: f.Inline,
		})
	}
	return embed
}

// toMessageSend converts a Reply into the discordgo payload.
func (r Reply) toMessageSend() *discordgo.MessageSend {
	msg := &discordgo.MessageSend{Content: r.Content}
	if r.Embed != nil {
		msg.Embeds = []*discordgo.MessageEmbed{r.Embed.toMessageEmbed()}
	}
	return msg
}

var eightBalls = pick.New([]pick.Case[string]{
	{E: "It is certain.", W: 10},
	{E: "Without a doubt.", W: 10},
	{E: "Yes, definitely.", W: 10},
	{E: "Most likely.", W: 10},
	{E: "Signs point to yes.", W: 10},
	{E: "Reply hazy, try again.", W: 8},
	{E: "Ask again later.", W: 8},
	{E: "Better not tell you now.", W: 8},
	{E: "Don't count on it.", W: 10},
	{E: "My reply is no.", W: 10},
	{E: "My sources say no.", W: 10},
	{E: "Very doubtful.", W: 10},
	{E: "Outlook not so good.", W: 5},
	{E: "The 8ball has seen things you wouldn't believe.", W: 1},
})

var mornings = pick.New([]pick.Case[string]{
	{E: "Good morning! ☀️", W: 20},
	{E: "mornin'", W: 5},
	{E: "Rise and shine! ☀️", W: 5},
})

var welcomes = pick.New([]pick.Case[string]{
	{E: "Welcome! 🎉", W: 20},
	{E: "Welcome welcome welcome!", W: 5},
	{E: "A new face! Welcome 🎉", W: 5},
})

// interaction verb -> flavor lines; the mention gets substituted in by the
// handler.
var interactionLines = map[string]*pick.Dist[string]{
	"hug": pick.New([]pick.Case[string]{
		{E: "%s gets a big warm hug from %s 🤗", W: 20},
		{E: "%s is wrapped in a bear hug by %s 🐻", W: 10},
		{E: "%s receives the world's gentlest hug from %s", W: 5},
	}),
	"slap": pick.New([]pick.Case[string]{
		{E: "%s gets slapped by %s! 👋", W: 20},
		{E: "%s is slapped into next week by %s 💫", W: 10},
		{E: "%s catches a dramatic soap-opera slap from %s", W: 5},
	}),
	"highfive": pick.New([]pick.Case[string]{
		{E: "%s high-fives %s! ✋", W: 20},
		{E: "%s and %s nail a perfect high-five ✋✨", W: 10},
	}),
	"touch": pick.New([]pick.Case[string]{
		{E: "%s is gently booped by %s", W: 20},
		{E: "%s gets poked by %s 👉", W: 10},
	}),
}

func pickLine(d *pick.Dist[string]) string {
	return d.Pick(rand.Uint32())
}
