/* bot_test.go
 * Unit tests for bot construction and the message handling path
 */

package bot

import (
	"io"
	"log/slog"
	"testing"

	"github.com/bwmarrin/discordgo"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func message(authorID, username, content string, mentions ...*discordgo.User) *discordgo.Message {
	return &discordgo.Message{
		ChannelID: "channel-1",
		Content:   content,
		Author:    &discordgo.User{ID: authorID, Username: username},
		Mentions:  mentions,
	}
}

// region NewBot tests

func TestNewBotRequiresToken(t *testing.T) {
	_, err := NewBot("", nil, "]", nil)
	assert.Error(t, err)
	assert.Contains(t, err.Error(), "botToken")
}

func TestNewBotRequiresApi(t *testing.T) {
	_, err := NewBot("token", nil, "]", nil)
	assert.Error(t, err)
	assert.Contains(t, err.Error(), "apiPtr")
}

func TestNewBotDefaultPrefix(t *testing.T) {
	b := newTestBot(t)
	log := slog.New(slog.NewTextHandler(io.Discard, nil))

	withDefault, err := NewBot("token", b.ApiPtr, "", log)
	require.NoError(t, err)
	assert.Equal(t, "]", withDefault.Prefix)
}

// endregion

// region handleMessage tests

func TestHandleMessageAutoReplyMorning(t *testing.T) {
	b := newTestBot(t)
	mock := NewMockDiscordSession()

	b.handleMessage(mock, message("1", "alice", "good morning everyone"))

	require.Len(t, mock.SentMessages, 1)
	assert.NotEmpty(t, mock.GetLastMessage().Content)
}

func TestHandleMessageIgnoresPlainChatter(t *testing.T) {
	b := newTestBot(t)
	mock := NewMockDiscordSession()

	b.handleMessage(mock, message("1", "alice", "nothing interesting here"))

	assert.Empty(t, mock.SentMessages)
}

func TestHandleMessagePrefixDispatch(t *testing.T) {
	b := newTestBot(t)
	mock := NewMockDiscordSession()

	b.handleMessage(mock, message("1", "alice", "]balance"))

	require.Len(t, mock.SentMessages, 1)
	assert.Contains(t, mock.GetLastMessage().Content, "alice has 0 coins")
}

func TestHandleMessageBarePrefixIsSilent(t *testing.T) {
	b := newTestBot(t)
	mock := NewMockDiscordSession()

	b.handleMessage(mock, message("1", "alice", "]"))

	assert.Empty(t, mock.SentMessages)
}

func TestHandleMessageQuotedArgs(t *testing.T) {
	b := newTestBot(t)
	require.NoError(t, b.ApiPtr.Give("1", 1000))
	mock := NewMockDiscordSession()

	b.handleMessage(mock, message("1", "alice", `]buy "role color"`))

	require.Len(t, mock.SentMessages, 1)
	assert.Contains(t, mock.GetLastMessage().Content, "You bought")
	assert.Equal(t, int64(500), b.ApiPtr.Balance("1").Balance)
	assert.Equal(t, []string{"rolecolor"}, b.ApiPtr.Inventory("1"))
}

func TestHandleMessageResolvesMentions(t *testing.T) {
	b := newTestBot(t)
	require.NoError(t, b.ApiPtr.Give("1", 200))
	mock := NewMockDiscordSession()

	bob := &discordgo.User{ID: "2", Username: "bob"}
	b.handleMessage(mock, message("1", "alice", "]pay <@2> 50", bob))

	require.Len(t, mock.SentMessages, 1)
	assert.Contains(t, mock.GetLastMessage().Content, "Paid 50 coins to bob")
	assert.Equal(t, int64(150), b.ApiPtr.Balance("1").Balance)
	assert.Equal(t, int64(50), b.ApiPtr.Balance("2").Balance)
}

func TestHandleMessageEmbedReply(t *testing.T) {
	b := newTestBot(t)
	mock := NewMockDiscordSession()

	b.handleMessage(mock, message("1", "alice", "]shop"))

	require.Len(t, mock.SentMessages, 1)
	last := mock.GetLastMessage()
	require.Len(t, last.Embeds, 1)
	assert.Equal(t, "🛒 Shop", last.Embeds[0].Title)
	assert.Len(t, last.Embeds[0].Fields, 3)
}

func TestHandleMessageSendFailureIsSwallowed(t *testing.T) {
	b := newTestBot(t)
	mock := NewMockDiscordSession()
	mock.ErrorToReturn = assert.AnError

	assert.NotPanics(t, func() {
		b.handleMessage(mock, message("1", "alice", "]balance"))
	})
}

// endregion
