package pkg

import (
	"fmt"

	"github.com/andrejsstepanovs/madlibs/pkg/config"
	"github.com/andrejsstepanovs/madlibs/pkg/console"
	"github.com/andrejsstepanovs/madlibs/pkg/story"
	"github.com/spf13/afero"
	"github.com/spf13/cobra"
	"github.com/spf13/viper"
	"go.uber.org/zap"
	"go.uber.org/zap/zapcore"
)

type app struct {
	fs        afero.Fs
	viper     *viper.Viper
	newLogger func(cfg config.Config) (*zap.Logger, error)

	cfg    config.Config
	logger *zap.Logger

	storiesFile string
	seed        uint64
	verbose     bool
	noColor     bool
}

// NewCommand returns the madlibs root command. Run without a subcommand it
// plays one round.
func NewCommand() *cobra.Command {
	return newRootCommand(&app{
		fs:        afero.NewOsFs(),
		viper:     viper.GetViper(),
		newLogger: buildLogger,
	})
}

func buildLogger(cfg config.Config) (*zap.Logger, error) {
	zapCfg := zap.NewProductionConfig()
	zapCfg.Level = zap.NewAtomicLevelAt(zapcore.WarnLevel)
	if cfg.Verbose {
		zapCfg.Level = zap.NewAtomicLevelAt(zapcore.DebugLevel)
	}
	zapCfg.OutputPaths = []string{"stderr"}
	return zapCfg.Build()
}

func newRootCommand(a *app) *cobra.Command {
	playCmd := newPlayCommand(a)

	root := &cobra.Command{
		Use:               "madlibs",
		Short:             "Mad Libs Story Generator",
		SilenceUsage:      true,
		PersistentPreRunE: a.setup,
		PersistentPostRun: func(_ *cobra.Command, _ []string) {
			if a.logger != nil {
				_ = a.logger.Sync()
			}
		},
		RunE: playCmd.RunE,
	}
	root.Flags().AddFlagSet(playCmd.Flags())

	root.PersistentFlags().StringVar(&a.storiesFile, "stories", "", "story catalog file (json or yaml)")
	root.PersistentFlags().Uint64Var(&a.seed, "seed", 0, "random seed, 0 picks one")
	root.PersistentFlags().BoolVarP(&a.verbose, "verbose", "v", false, "debug logging on stderr")
	root.PersistentFlags().BoolVar(&a.noColor, "no-color", false, "disable colored output")

	root.AddCommand(
		playCmd,
		newGenresCommand(a),
		newCheckCommand(a),
	)
	return root
}

func (a *app) setup(cmd *cobra.Command, _ []string) error {
	file, err := config.ReadFile(a.viper)
	if err != nil {
		return err
	}

	cfg, err := config.Load(a.viper)
	if err != nil {
		return err
	}
	flags := cmd.Flags()
	if flags.Changed("stories") {
		cfg.StoriesFile = a.storiesFile
	}
	if flags.Changed("seed") {
		cfg.Seed = a.seed
	}
	if flags.Changed("verbose") {
		cfg.Verbose = a.verbose
	}
	if flags.Changed("no-color") {
		cfg.Color = !a.noColor
	}
	a.cfg = cfg

	a.logger, err = a.newLogger(cfg)
	if err != nil {
		return fmt.Errorf("failed to initialize logger: %w", err)
	}
	if file != "" {
		a.logger.Debug("Config file loaded", zap.String("file", file))
	}
	return nil
}

func (a *app) loadCatalog() (*story.Catalog, error) {
	c, err := story.LoadCatalog(a.fs, a.cfg.StoriesFile)
	if err != nil {
		return nil, err
	}
	a.logger.Debug("Catalog loaded", zap.String("file", a.cfg.StoriesFile), zap.Any("stories", c.Counts()))
	return c, nil
}

func newPlayCommand(a *app) *cobra.Command {
	var asJSON bool

	cmd := &cobra.Command{
		Use:   "play",
		Short: "Pick a random story for a genre and fill in its blanks",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			catalog, err := a.loadCatalog()
			if err != nil {
				return err
			}

			rng, seed := story.NewRand(a.cfg.Seed)
			a.logger.Debug("Random source ready", zap.Uint64("seed", seed))

			presenter := console.New(cmd.InOrStdin(), cmd.OutOrStdout(), a.cfg.Color)
			p := &player{
				catalog:          catalog,
				presenter:        presenter,
				rng:              rng,
				genreAttempts:    a.cfg.GenreAttempts,
				echoReplacements: a.cfg.EchoReplacements,
				logger:           a.logger,
			}

			round, err := p.play()
			if err != nil {
				return err
			}
			if asJSON {
				return presenter.ShowJSON(round.summary())
			}
			return nil
		},
	}
	cmd.Flags().BoolVar(&asJSON, "json", false, "print a JSON summary of the round after the story")
	return cmd
}

func newGenresCommand(a *app) *cobra.Command {
	var asJSON bool

	cmd := &cobra.Command{
		Use:   "genres",
		Short: "List genres and how many stories each has",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			catalog, err := a.loadCatalog()
			if err != nil {
				return err
			}

			presenter := console.New(cmd.InOrStdin(), cmd.OutOrStdout(), a.cfg.Color)
			if asJSON {
				return presenter.ShowJSON(catalog.Counts())
			}
			for _, g := range story.Genres {
				if err := presenter.Printf("%s (%d)\n", g.Title(), len(catalog.Stories(g))); err != nil {
					return err
				}
			}
			return nil
		},
	}
	cmd.Flags().BoolVar(&asJSON, "json", false, "print counts as JSON")
	return cmd
}

func newCheckCommand(a *app) *cobra.Command {
	return &cobra.Command{
		Use:   "check",
		Short: "Validate the story catalog",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			catalog, err := a.loadCatalog()
			if err != nil {
				return err
			}

			presenter := console.New(cmd.InOrStdin(), cmd.OutOrStdout(), a.cfg.Color)
			for _, g := range story.Genres {
				placeholders := 0
				for _, s := range catalog.Stories(g) {
					placeholders += len(story.FindPlaceholders(s))
				}
				if err := presenter.Printf("%s: %d stories, %d placeholders\n", g, len(catalog.Stories(g)), placeholders); err != nil {
					return err
				}
			}
			return presenter.Printf("catalog ok: %s\n", a.cfg.StoriesFile)
		},
	}
}
