package discord

import (
	"fmt"
	"strings"
	"time"

	"github.com/bwmarrin/discordgo"
	"go.uber.org/zap"

	"github.com/agnijaravdo/discord-bot/metrics"
)

// Notifier owns the single process-wide bot session. It is opened once at
// startup and closed at shutdown, never re-established per request.
type Notifier struct {
	session *discordgo.Session
	log     *zap.Logger
}

func NewNotifier(token string, log *zap.Logger) (*Notifier, error) {
	session, err := discordgo.New("Bot " + token)
	if err != nil {
		return nil, err
	}
	session.Identify.Intents = discordgo.IntentGuilds |
		discordgo.IntentGuildMessages |
		discordgo.IntentMessageContent |
		discordgo.IntentGuildMembers

	session.AddHandler(func(s *discordgo.Session, r *discordgo.Ready) {
		log.Info("Discord bot is online")
	})

	return &Notifier{session: session, log: log}, nil
}

func (n *Notifier) Start() error {
	return n.session.Open()
}

func (n *Notifier) Stop() error {
	return n.session.Close()
}

// SendCongratulationMessage resolves the target server and channel from the
// session state, substitutes the user mention when the member is cached, and
// delivers the message with the gif attached.
func (n *Notifier) SendCongratulationMessage(serverID, channelID, message, gifURL, username string) error {
	guild, err := n.session.State.Guild(serverID)
	if err != nil {
		return fmt.Errorf("Bot is not added to server with ID %s", serverID)
	}

	channel, err := n.session.State.Channel(channelID)
	if err != nil || channel.GuildID != serverID || !isTextBased(channel.Type) {
		return fmt.Errorf("Channel %s not found in server %s or channel is not text-based", channelID, serverID)
	}

	// Only the already-cached member list is searched. Fetching the full
	// member list per message is expensive and rate-limited; an uncached
	// user simply keeps the literal @username text.
	member := findUserInServer(guild, username)
	userID := ""
	if member != nil {
		userID = member.User.ID
	}
	finalMessage := CreateUserMention(message, username, userID)

	start := time.Now()
	_, err = n.session.ChannelMessageSendComplex(channelID, &discordgo.MessageSend{
		Content: finalMessage,
		Embeds: []*discordgo.MessageEmbed{
			{Image: &discordgo.MessageEmbedImage{URL: gifURL}},
		},
	})
	metrics.ExternalAPIDuration.WithLabelValues("discord", "send").Observe(time.Since(start).Seconds())
	if err != nil {
		metrics.ExternalAPIFailureTotal.WithLabelValues("discord", "send").Inc()
		return err
	}
	metrics.ExternalAPISuccessTotal.WithLabelValues("discord", "send").Inc()
	return nil
}

// CreateUserMention replaces the first @username occurrence with a platform
// mention token. With an empty userID the message is returned unchanged.
func CreateUserMention(message, username, userID string) string {
	if userID == "" {
		return message
	}
	return strings.Replace(message, "@"+username, "<@"+userID+">", 1)
}

func findUserInServer(guild *discordgo.Guild, username string) *discordgo.Member {
	for _, member := range guild.Members {
		if member.User != nil && member.User.Username == username {
			return member
		}
	}
	return nil
}

func isTextBased(t discordgo.ChannelType) bool {
	switch t {
	case discordgo.ChannelTypeGuildText,
		discordgo.ChannelTypeGuildNews,
		discordgo.ChannelTypeGuildNewsThread,
		discordgo.ChannelTypeGuildPublicThread,
		discordgo.ChannelTypeGuildPrivateThread:
		return true
	}
	return false
}
