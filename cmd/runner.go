package main

import (
	"encoding/json"
	"fmt"
	"io"
	"os"

	"github.com/charmbracelet/log"
	"github.com/prittywoman/harmonyctl/internal/catalog"
	"github.com/prittywoman/harmonyctl/internal/session"
	"github.com/prittywoman/harmonyctl/internal/shared"
	"github.com/urfave/cli/v3"
)

// Runner holds all dependencies for CLI commands and provides methods for each command action.
type Runner struct {
	config  *shared.Config
	client  *catalog.Client
	session *session.Session
	store   session.TokenStore
	logger  *log.Logger
	output  io.Writer
}

// RunnerOpts contains configuration options for creating a Runner.
type RunnerOpts struct {
	Config  *shared.Config
	Client  *catalog.Client
	Session *session.Session
	Store   session.TokenStore
	Logger  *log.Logger
	Output  io.Writer
}

// NewRunner creates a new Runner with the provided configuration
func NewRunner(opts RunnerOpts) *Runner {
	if opts.Config == nil {
		opts.Config = shared.DefaultConfig()
	}
	if opts.Logger == nil {
		opts.Logger = shared.NewLogger(nil)
	}
	if opts.Output == nil {
		opts.Output = os.Stdout
	}
	if opts.Session == nil {
		opts.Session = session.New("")
	}
	if opts.Client == nil {
		opts.Client = catalog.NewClient(catalog.ClientOpts{
			BaseURL: opts.Config.API.BaseURL,
			Tokens:  opts.Session,
			Logger:  opts.Logger,
		})
	}

	return &Runner{
		config:  opts.Config,
		client:  opts.Client,
		session: opts.Session,
		store:   opts.Store,
		logger:  opts.Logger,
		output:  opts.Output,
	}
}

// SetLogger swaps the runner's logger (used when the TUI redirects logs to a file).
func (r *Runner) SetLogger(l *log.Logger) {
	r.logger = l
}

func (r *Runner) register() []*cli.Command {
	commands := []*cli.Command{}
	for _, fn := range [](func(*Runner) *cli.Command){
		setupCommand, loginCommand, logoutCommand, profileCommand,
		artistsCommand, genresCommand, albumsCommand, songsCommand, playlistsCommand,
		browseCommand,
	} {
		commands = append(commands, fn(r))
	}

	return commands
}

// pageSize resolves the effective page size for a listing: the --page-size
// flag when set, then the configured default.
func (r *Runner) pageSize(cmd *cli.Command) int {
	if size := int(cmd.Int("page-size")); size > 0 {
		return size
	}
	if r.config.API.PageSize > 0 {
		return r.config.API.PageSize
	}
	return 10
}

func (r *Runner) writeJSON(data any, pretty bool) error {
	var output []byte
	var err error

	if pretty {
		output, err = json.MarshalIndent(data, "", "  ")
	} else {
		output, err = json.Marshal(data)
	}

	if err != nil {
		return fmt.Errorf("failed to marshal JSON: %w", err)
	}

	if _, err := r.output.Write(output); err != nil {
		return fmt.Errorf("failed to write output: %w", err)
	}

	if _, err := r.output.Write([]byte("\n")); err != nil {
		return fmt.Errorf("failed to write newline: %w", err)
	}

	return nil
}

func (r *Runner) writePlain(format string, args ...any) error {
	text := fmt.Sprintf(format, args...)
	if _, err := r.output.Write([]byte(text)); err != nil {
		return fmt.Errorf("failed to write output: %w", err)
	}
	return nil
}

func (r *Runner) writePlainln(format string, args ...any) error {
	text := "\n" + fmt.Sprintf(format, args...) + "\n"
	if _, err := r.output.Write([]byte(text)); err != nil {
		return fmt.Errorf("failed to write output: %w", err)
	}
	return nil
}
