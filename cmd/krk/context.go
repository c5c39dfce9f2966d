package main

import (
	"context"
	"fmt"
	"io"
	"log/slog"
	"strings"
	"sync"
	"time"

	"github.com/spf13/cobra"

	"krk/internal/catalog"
	"krk/internal/config"
	"krk/internal/fallback"
	"krk/internal/inference"
	"krk/internal/logging"
	"krk/internal/pipeline"
	"krk/internal/prefs"
	"krk/internal/sessionstore"
	"krk/internal/tmdb"
	"krk/internal/vocab"
)

type commandContext struct {
	configFlag *string

	configOnce   sync.Once
	config       *config.Config
	configPath   string
	configExists bool
	configErr    error

	cleanupOnce sync.Once
}

func newCommandContext(configFlag *string) *commandContext {
	return &commandContext{configFlag: configFlag}
}

func (c *commandContext) ensureConfig() (*config.Config, error) {
	c.configOnce.Do(func() {
		cfg, path, exists, err := config.Load(c.configFlagValue())
		if err != nil {
			c.configErr = err
			return
		}
		if err := cfg.EnsureDirectories(); err != nil {
			c.configErr = err
			return
		}
		c.config = cfg
		c.configPath = path
		c.configExists = exists
	})
	return c.config, c.configErr
}

func (c *commandContext) configFlagValue() string {
	if c.configFlag == nil {
		return ""
	}
	return strings.TrimSpace(*c.configFlag)
}

// logger opens the file logger and prunes expired logs on first use.
func (c *commandContext) logger() (*slog.Logger, error) {
	cfg, err := c.ensureConfig()
	if err != nil {
		return nil, err
	}
	logger, err := logging.NewFromConfig(cfg, "")
	if err != nil {
		return nil, fmt.Errorf("init logger: %w", err)
	}
	c.cleanupOnce.Do(func() {
		logging.PruneLogs(logger, cfg.Paths.LogDir, cfg.Logging.RetentionDays, cfg.LogPath())
	})
	return logger, nil
}

func (c *commandContext) loadVocabulary() (*vocab.Vocabulary, error) {
	cfg, err := c.ensureConfig()
	if err != nil {
		return nil, err
	}
	return vocab.LoadDir(cfg.Paths.VocabDir)
}

func (c *commandContext) catalogClient() (*tmdb.Client, error) {
	cfg, err := c.ensureConfig()
	if err != nil {
		return nil, err
	}
	if err := cfg.RequireTMDB(); err != nil {
		return nil, err
	}
	return tmdb.New(cfg.TMDB.APIKey, cfg.TMDB.BaseURL, cfg.TMDB.Language,
		tmdb.WithTimeout(time.Duration(cfg.TMDB.TimeoutSeconds)*time.Second))
}

func (c *commandContext) recommender(logger *slog.Logger) (*catalog.Recommender, error) {
	client, err := c.catalogClient()
	if err != nil {
		return nil, err
	}
	return catalog.NewRecommender(client, c.config.TMDB.ResultLimit, logger), nil
}

// buildPipeline wires local inference and, unless localOnly is set or the
// provider is unusable, the model fallback. Backend problems are reported on
// warn and the pipeline runs local-only.
func (c *commandContext) buildPipeline(ctx context.Context, v *vocab.Vocabulary, logger *slog.Logger, localOnly bool, warn io.Writer) *pipeline.Pipeline {
	engine := inference.New(v, logger)
	if localOnly {
		return pipeline.New(engine, nil, logger)
	}

	backend, err := newModelBackend(ctx, c.config)
	if err != nil {
		fmt.Fprintf(warn, "model fallback disabled: %v\n", err)
		logging.WarnWithContext(logger, "model fallback disabled", "llm_unavailable",
			logging.Error(err),
			logging.String("provider", c.config.LLM.Provider),
			logging.String(logging.FieldErrorHint, "set llm credentials or llm.provider = \"none\""),
			logging.String(logging.FieldImpact, "sentences the vocabulary misses leave preferences unchanged"),
		)
		return pipeline.New(engine, nil, logger)
	}
	if backend == nil {
		return pipeline.New(engine, nil, logger)
	}

	adapter := fallback.NewAdapter(backend, v,
		fallback.WithMaxTokens(c.config.LLM.MaxTokens),
		fallback.WithLogger(logger),
	)
	return pipeline.New(engine, adapter, logger)
}

func (c *commandContext) openStore(ctx context.Context) (*sessionstore.Store, error) {
	cfg, err := c.ensureConfig()
	if err != nil {
		return nil, err
	}
	return sessionstore.Open(ctx, cfg.Paths.StateDir)
}

// startingSession returns the saved preferences for user when persistence is
// enabled, otherwise the configured defaults.
func (c *commandContext) startingSession(ctx context.Context, user string) (prefs.Session, bool, error) {
	cfg, err := c.ensureConfig()
	if err != nil {
		return prefs.Session{}, false, err
	}
	defaults := cfg.SessionDefaults()
	if !cfg.Session.Persist || strings.TrimSpace(user) == "" {
		return defaults, false, nil
	}
	store, err := c.openStore(ctx)
	if err != nil {
		return prefs.Session{}, false, err
	}
	defer store.Close()
	saved, ok, err := store.Load(ctx, user)
	if err != nil {
		return prefs.Session{}, false, err
	}
	if !ok {
		return defaults, false, nil
	}
	return saved, true, nil
}

func shouldSkipConfig(cmd *cobra.Command) bool {
	for c := cmd; c != nil; c = c.Parent() {
		if c.Annotations != nil && c.Annotations["skipConfigLoad"] == "true" {
			return true
		}
	}
	return false
}

func yesNo(value bool) string {
	if value {
		return "yes"
	}
	return "no"
}
