package chat

import (
	"bufio"
	"context"
	"errors"
	"fmt"
	"io"
	"log/slog"
	"strings"

	"github.com/google/uuid"

	"krk/internal/catalog"
	"krk/internal/logging"
	"krk/internal/pipeline"
	"krk/internal/prefs"
	"krk/internal/services"
	"krk/internal/vocab"
)

const (
	speaker = "KRK"
	banner  = "KRK ready. Type natural language preferences. Type 'recommend' to fetch movies. 'exit' to quit."
)

// Processor resolves one utterance against the session.
type Processor interface {
	Process(ctx context.Context, text string, session *prefs.Session) (pipeline.Turn, error)
}

// Recommender queries the catalog.
type Recommender interface {
	Recommend(ctx context.Context, s prefs.Session) ([]catalog.Recommendation, error)
}

// Store persists preferences between conversations.
type Store interface {
	Load(ctx context.Context, user string) (prefs.Session, bool, error)
	Save(ctx context.Context, user string, session prefs.Session) error
}

// Options configures a Chat. Processor is required; a nil Recommender makes
// "recommend" report that the catalog is unavailable and a nil Store keeps
// preferences in memory only.
type Options struct {
	In              io.Reader
	Out             io.Writer
	Processor       Processor
	Recommender     Recommender
	Store           Store
	Vocabulary      *vocab.Vocabulary
	Defaults        prefs.Session
	User            string
	ShowModelOutput bool
	Color           bool
	Logger          *slog.Logger
}

// Chat is one interactive conversation.
type Chat struct {
	opts    Options
	out     io.Writer
	styles  styles
	logger  *slog.Logger
	session prefs.Session
}

// New builds a chat from opts.
func New(opts Options) *Chat {
	out := opts.Out
	if out == nil {
		out = io.Discard
	}
	return &Chat{
		opts:    opts,
		out:     out,
		styles:  newStyles(out, opts.Color),
		logger:  logging.NewComponentLogger(opts.Logger, "chat"),
		session: opts.Defaults,
	}
}

// Session returns the current preferences.
func (c *Chat) Session() prefs.Session {
	return c.session
}

// Run reads lines until exit, end of input, or cancellation. End of input and
// exit commands return nil.
func (c *Chat) Run(ctx context.Context) error {
	if c.opts.Processor == nil {
		return services.Wrap(services.ErrConfiguration, "chat", "run", "no preference pipeline configured", nil)
	}
	in := c.opts.In
	if in == nil {
		return services.Wrap(services.ErrConfiguration, "chat", "run", "no input configured", nil)
	}
	ctx = services.WithSessionID(ctx, uuid.NewString())
	logger := logging.WithContext(ctx, c.logger)
	scanner := bufio.NewScanner(in)

	fmt.Fprintln(c.out, banner)

	user := strings.TrimSpace(c.opts.User)
	if user == "" {
		fmt.Fprint(c.out, "Enter your name: ")
		if !scanner.Scan() {
			fmt.Fprintln(c.out)
			return scanner.Err()
		}
		user = strings.TrimSpace(scanner.Text())
	}
	if user == "" {
		user = "You"
	}
	c.restore(ctx, user)
	logger.Info("chat started",
		logging.String(logging.FieldEventType, "chat_started"),
		logging.Bool("persist", c.opts.Store != nil),
		logging.Bool("catalog", c.opts.Recommender != nil),
	)

	turn := 0
	for {
		if err := ctx.Err(); err != nil {
			return err
		}
		fmt.Fprint(c.out, c.styles.prompt.Render(user+":")+" ")
		if !scanner.Scan() {
			fmt.Fprintln(c.out)
			if err := scanner.Err(); err != nil {
				return fmt.Errorf("read input: %w", err)
			}
			logger.Info("chat ended", logging.String(logging.FieldEventType, "chat_ended"), logging.String("reason", "eof"), logging.Int("turns", turn))
			return nil
		}
		line := strings.TrimSpace(scanner.Text())
		if line == "" {
			continue
		}

		switch Classify(line) {
		case CommandExit:
			c.say("Goodbye.")
			logger.Info("chat ended", logging.String(logging.FieldEventType, "chat_ended"), logging.String("reason", "exit"), logging.Int("turns", turn))
			return nil
		case CommandRecommend:
			c.recommend(ctx)
			continue
		}

		turn++
		if err := c.handleUtterance(services.WithTurn(ctx, turn), user, line); err != nil {
			return err
		}
	}
}

// handleUtterance only returns an error when the conversation must stop.
func (c *Chat) handleUtterance(ctx context.Context, user, line string) error {
	result, err := c.opts.Processor.Process(ctx, line, &c.session)
	if err != nil {
		if errors.Is(err, context.Canceled) && ctx.Err() != nil {
			return ctx.Err()
		}
		c.fail(services.UserMessage(err))
		return nil
	}

	if c.opts.ShowModelOutput && result.UsedFallback {
		fmt.Fprintln(c.out)
		fmt.Fprintln(c.out, c.styles.muted.Render("["+speaker+" internal]:"))
		fmt.Fprintln(c.out, c.styles.muted.Render(strings.TrimSpace(result.RawOutput)))
		fmt.Fprintln(c.out)
	}

	c.say("Preferences updated")
	c.printPreferences()
	c.persist(ctx, user)
	return nil
}

func (c *Chat) recommend(ctx context.Context) {
	if c.opts.Recommender == nil {
		c.fail("recommendations unavailable: set tmdb.api_key or TMDB_API_KEY")
		return
	}
	c.say("querying TMDb...")
	recs, err := c.opts.Recommender.Recommend(ctx, c.session)
	if err != nil {
		c.fail(services.UserMessage(err))
		return
	}
	if len(recs) == 0 {
		c.say("No results found with current preferences.")
		fmt.Fprintln(c.out)
		return
	}
	fmt.Fprintln(c.out, RecommendationTable(recs))
	fmt.Fprintln(c.out)
}

func (c *Chat) restore(ctx context.Context, user string) {
	if c.opts.Store == nil {
		return
	}
	stored, ok, err := c.opts.Store.Load(ctx, user)
	if err != nil {
		logging.WarnWithContext(logging.WithContext(ctx, c.logger), "session restore failed; starting from defaults", "session_restore_failed",
			logging.Error(err),
			logging.String(logging.FieldErrorHint, "check paths.state_dir permissions"),
			logging.String(logging.FieldImpact, "saved preferences were not loaded"),
		)
		c.fail("could not load saved preferences; starting fresh")
		return
	}
	if !ok {
		return
	}
	c.session = stored
	c.say(fmt.Sprintf("Welcome back, %s. Restored your saved preferences.", user))
	c.printPreferences()
}

func (c *Chat) persist(ctx context.Context, user string) {
	if c.opts.Store == nil {
		return
	}
	if err := c.opts.Store.Save(ctx, user, c.session); err != nil {
		logging.WarnWithContext(logging.WithContext(ctx, c.logger), "session save failed", "session_save_failed",
			logging.Error(err),
			logging.String(logging.FieldErrorHint, "check paths.state_dir permissions and free space"),
			logging.String(logging.FieldImpact, "preferences apply to this chat only"),
		)
		c.fail("could not save preferences")
	}
}

func (c *Chat) printPreferences() {
	for _, row := range PreferenceRows(prefs.Describe(c.session, c.opts.Vocabulary)) {
		fmt.Fprintf(c.out, "  %s %s\n", c.styles.label.Render(fmt.Sprintf("%-9s", row[0]+":")), row[1])
	}
}

func (c *Chat) say(msg string) {
	fmt.Fprintln(c.out, c.styles.speaker.Render(speaker+":")+" "+msg)
}

func (c *Chat) fail(msg string) {
	fmt.Fprintln(c.out, c.styles.speaker.Render(speaker+":")+" "+c.styles.err.Render(msg))
}
