package bot

import (
	"fmt"
	"math"

	"github.com/bwmarrin/discordgo"

	"github.com/tristan-derez/distance-leaderboards/internal/distance"
	"github.com/tristan-derez/distance-leaderboards/internal/utils"
)

func commandDefinitions(defaultMode distance.GameMode) []*discordgo.ApplicationCommand {
	minScore := float64(math.MinInt32)
	modeDescription := fmt.Sprintf("Game mode (defaults to %s)", defaultMode)

	return []*discordgo.ApplicationCommand{
		{
			Name:        "score",
			Description: "Format a raw Steam leaderboard score the way Distance shows it",
			Options: []*discordgo.ApplicationCommandOption{
				{
					Type:        discordgo.ApplicationCommandOptionInteger,
					Name:        "score",
					Description: "Raw score: milliseconds for Sprint and Challenge, points for Stunt",
					Required:    true,
					MinValue:    &minScore,
					MaxValue:    math.MaxInt32,
				},
				modeOption(modeDescription, false),
			},
		},
		{
			Name:        "leaderboard",
			Description: "Build the Steam leaderboard key of a level",
			Options: []*discordgo.ApplicationCommandOption{
				{
					Type:        discordgo.ApplicationCommandOptionString,
					Name:        "level",
					Description: "Official level name, or workshop file name without .bytes",
					Required:    true,
				},
				modeOption(modeDescription, false),
				{
					Type:        discordgo.ApplicationCommandOptionString,
					Name:        "author",
					Description: "Steam id of the author, for workshop levels only",
				},
			},
		},
		{
			Name:        "levels",
			Description: "List the official levels of a game mode with their leaderboard keys",
			Options: []*discordgo.ApplicationCommandOption{
				modeOption("Game mode", true),
			},
		},
		{
			Name:        "ping",
			Description: "Check that the bot is alive",
		},
	}
}

func modeOption(description string, required bool) *discordgo.ApplicationCommandOption {
	choices := make([]*discordgo.ApplicationCommandOptionChoice, 0, len(distance.GameModes()))
	for _, mode := range distance.GameModes() {
		choices = append(choices, &discordgo.ApplicationCommandOptionChoice{
			Name:  mode.Name(),
			Value: mode.Name(),
		})
	}

	return &discordgo.ApplicationCommandOption{
		Type:        discordgo.ApplicationCommandOptionString,
		Name:        "mode",
		Description: description,
		Required:    required,
		Choices:     choices,
	}
}

func (b *Bot) handleInteraction(s *discordgo.Session, i *discordgo.InteractionCreate) {
	if i.Type != discordgo.InteractionApplicationCommand {
		return
	}

	data := i.ApplicationCommandData()
	userID := interactionUserID(i)
	log := b.logger.With().Str("command", data.Name).Str("user_id", userID).Logger()

	if !b.limiter.Allow(userID) {
		log.Debug().Msg("command rate limited")
		respondWithError(s, i, "You're sending commands too fast. Please wait a moment.")
		return
	}

	options := optionMap(data.Options)

	mode := b.cfg.DefaultMode
	if opt, ok := options["mode"]; ok {
		parsed, err := distance.ParseGameMode(opt.StringValue())
		if err != nil {
			respondWithError(s, i, userMessage(err))
			return
		}
		mode = parsed
	}

	switch data.Name {
	case "score":
		b.handleScore(s, i, options, mode)
	case "leaderboard":
		b.handleLeaderboard(s, i, options, mode)
	case "levels":
		b.handleLevels(s, i, mode)
	case "ping":
		respond(s, i, "pong!")
	default:
		log.Warn().Msg("unknown command")
	}
}

func (b *Bot) handleScore(s *discordgo.Session, i *discordgo.InteractionCreate, options map[string]*discordgo.ApplicationCommandInteractionDataOption, mode distance.GameMode) {
	opt, ok := options["score"]
	if !ok {
		respondWithError(s, i, "Please provide a score.")
		return
	}

	content, err := scoreReply(opt.IntValue(), mode)
	if err != nil {
		b.logger.Debug().Err(err).Int64("score", opt.IntValue()).Stringer("mode", mode).Msg("score rejected")
		respondWithError(s, i, userMessage(err))
		return
	}

	respond(s, i, content)
}

func (b *Bot) handleLeaderboard(s *discordgo.Session, i *discordgo.InteractionCreate, options map[string]*discordgo.ApplicationCommandInteractionDataOption, mode distance.GameMode) {
	opt, ok := options["level"]
	if !ok {
		respondWithError(s, i, "Please provide a level name.")
		return
	}

	var author string
	if a, ok := options["author"]; ok {
		author = a.StringValue()
	}

	content, err := leaderboardReply(opt.StringValue(), mode, author)
	if err != nil {
		b.logger.Info().Err(err).Str("level", opt.StringValue()).Stringer("mode", mode).Msg("leaderboard key rejected")
		respondWithError(s, i, userMessage(err))
		return
	}

	respond(s, i, content)
}

// The first chunk answers the interaction, the rest are sent as follow-ups.
func (b *Bot) handleLevels(s *discordgo.Session, i *discordgo.InteractionCreate, mode distance.GameMode) {
	chunks := levelsReply(mode)
	color := utils.GetModeColor(mode)
	title := fmt.Sprintf("Official %s levels", mode)

	err := s.InteractionRespond(i.Interaction, &discordgo.InteractionResponse{
		Type: discordgo.InteractionResponseChannelMessageWithSource,
		Data: &discordgo.InteractionResponseData{
			Embeds: []*discordgo.MessageEmbed{{Title: title, Description: chunks[0], Color: color}},
		},
	})
	if err != nil {
		b.logger.Error().Err(err).Msg("failed to respond to levels command")
		return
	}

	for _, chunk := range chunks[1:] {
		_, err := s.FollowupMessageCreate(i.Interaction, true, &discordgo.WebhookParams{
			Embeds: []*discordgo.MessageEmbed{{Description: chunk, Color: color}},
		})
		if err != nil {
			b.logger.Error().Err(err).Msg("failed to send levels follow-up")
			return
		}
	}
}

func optionMap(options []*discordgo.ApplicationCommandInteractionDataOption) map[string]*discordgo.ApplicationCommandInteractionDataOption {
	m := make(map[string]*discordgo.ApplicationCommandInteractionDataOption, len(options))
	for _, opt := range options {
		m[opt.Name] = opt
	}
	return m
}

// Guild interactions carry the user in Member, direct messages in User.
func interactionUserID(i *discordgo.InteractionCreate) string {
	if i.Member != nil && i.Member.User != nil {
		return i.Member.User.ID
	}
	if i.User != nil {
		return i.User.ID
	}
	return ""
}

func respond(s *discordgo.Session, i *discordgo.InteractionCreate, content string) {
	s.InteractionRespond(i.Interaction, &discordgo.InteractionResponse{
		Type: discordgo.InteractionResponseChannelMessageWithSource,
		Data: &discordgo.InteractionResponseData{
			Content: content,
		},
	})
}

// generate an ephemeral error message that is only shown to the user that typed a command
func respondWithError(s *discordgo.Session, i *discordgo.InteractionCreate, message string) {
	s.InteractionRespond(i.Interaction, &discordgo.InteractionResponse{
		Type: discordgo.InteractionResponseChannelMessageWithSource,
		Data: &discordgo.InteractionResponseData{
			Content: message,
			Flags:   discordgo.MessageFlagsEphemeral,
		},
	})
}
