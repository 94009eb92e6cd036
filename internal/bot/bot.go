package bot

import (
	"errors"
	"fmt"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/bwmarrin/discordgo"
	"github.com/cenkalti/backoff/v4"
	"github.com/rs/zerolog"

	"github.com/tristan-derez/distance-leaderboards/internal/config"
)

// Bot struct represents the Discord bot and holds references to its dependencies
type Bot struct {
	session *discordgo.Session
	cfg     *config.Config
	logger  zerolog.Logger
	limiter *RateLimiter
}

// New creates and initializes a new Bot instance
func New(cfg *config.Config, logger zerolog.Logger) (*Bot, error) {
	session, err := discordgo.New("Bot " + cfg.DiscordToken)
	if err != nil {
		return nil, fmt.Errorf("error creating Discord session: %w", err)
	}

	return &Bot{
		session: session,
		cfg:     cfg,
		logger:  logger,
		limiter: NewRateLimiter(cfg.CommandRate, cfg.CommandBurst),
	}, nil
}

// Run opens the Discord session, registers slash commands and blocks until
// the process receives SIGINT or SIGTERM.
func (b *Bot) Run() error {
	b.session.AddHandler(func(s *discordgo.Session, r *discordgo.Ready) {
		b.logger.Info().Str("user", r.User.Username).Int("guilds", len(r.Guilds)).Msg("bot is now ready")
	})
	b.session.AddHandler(b.handleInteraction)

	if err := backoff.Retry(b.session.Open, newBackOff()); err != nil {
		return fmt.Errorf("error opening Discord session: %w", err)
	}

	if err := b.registerCommands(); err != nil {
		b.session.Close()
		return err
	}

	stop := make(chan os.Signal, 1)
	signal.Notify(stop, syscall.SIGINT, syscall.SIGTERM)
	<-stop

	return b.Shutdown()
}

// registerCommands overwrites the application's slash commands, globally or
// for the configured guild only.
func (b *Bot) registerCommands() error {
	commands := commandDefinitions(b.cfg.DefaultMode)

	operation := func() error {
		_, err := b.session.ApplicationCommandBulkOverwrite(b.session.State.User.ID, b.cfg.DiscordGuildID, commands)
		if err != nil && !isRetryable(err) {
			return backoff.Permanent(err)
		}
		return err
	}

	notify := func(err error, next time.Duration) {
		b.logger.Warn().Err(err).Dur("retry_in", next).Msg("failed to register commands")
	}

	if err := backoff.RetryNotify(operation, newBackOff(), notify); err != nil {
		return fmt.Errorf("error registering commands: %w", err)
	}

	b.logger.Info().Int("count", len(commands)).Str("guild_id", b.cfg.DiscordGuildID).Msg("commands registered")
	return nil
}

// Shutdown closes the Discord session.
func (b *Bot) Shutdown() error {
	b.logger.Info().Msg("shutting down")

	if err := b.session.Close(); err != nil {
		return fmt.Errorf("error closing Discord session: %w", err)
	}
	return nil
}

func newBackOff() backoff.BackOff {
	bo := backoff.NewExponentialBackOff()
	bo.InitialInterval = 500 * time.Millisecond
	bo.MaxInterval = 5 * time.Second
	bo.MaxElapsedTime = 30 * time.Second
	return bo
}

// isRetryable reports whether a Discord REST failure may succeed on retry:
// rate limits, server errors and transport errors.
func isRetryable(err error) bool {
	var restErr *discordgo.RESTError
	if !errors.As(err, &restErr) || restErr.Response == nil {
		return true
	}

	code := restErr.Response.StatusCode
	return code == http.StatusTooManyRequests || code >= http.StatusInternalServerError
}
