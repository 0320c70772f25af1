package cli

import (
	"bufio"
	"context"
	"errors"
	"fmt"
	"io"
	"os"

	"golang.org/x/text/language"
	"golang.org/x/text/message"

	"github.com/dmitrijs2005/questkeeper/internal/common"
	"github.com/dmitrijs2005/questkeeper/internal/config"
	"github.com/dmitrijs2005/questkeeper/internal/core"
	"github.com/dmitrijs2005/questkeeper/internal/credentials"
	"github.com/dmitrijs2005/questkeeper/internal/logging"
	"github.com/dmitrijs2005/questkeeper/internal/persist"
	"github.com/dmitrijs2005/questkeeper/internal/progression"
	"github.com/dmitrijs2005/questkeeper/internal/storage"
	"github.com/dmitrijs2005/questkeeper/internal/timex"
)

type App struct {
	config   *config.Config
	svc      *core.Service
	backend  io.Closer
	reader   *bufio.Reader
	out      io.Writer
	notifier *Notifier
	render   *Renderer
	log      logging.Logger

	// lastQuests holds the ids shown by the most recent quest listing so
	// commands can refer to quests by their row number.
	lastQuests []string
}

// NewApp opens the configured storage backend and wires the core service
// to the terminal.
func NewApp(ctx context.Context, c *config.Config) (*App, error) {
	level, err := logging.ParseLevel(c.LogLevel)
	if err != nil {
		return nil, err
	}
	log := logging.NewTextLogger(os.Stderr, level)

	hasher, err := credentials.ForScheme(c.CredentialScheme)
	if err != nil {
		return nil, err
	}

	backend, err := storage.Open(ctx, storage.Options{
		Kind:            c.Backend,
		Dir:             c.DataDir,
		BoltOpenTimeout: c.BoltOpenTimeout,
	})
	if err != nil {
		log.Error(ctx, "error opening storage", "backend", c.Backend, "dir", c.DataDir, "error", err)
		return nil, err
	}

	a := newApp(c, os.Stdin, os.Stdout, log)
	a.backend = backend
	a.svc = core.New(core.Deps{
		Store:     persist.New(backend, c.DocumentKey, log),
		Notifier:  a.notifier,
		Confirmer: NewConfirmer(a.reader, a.out),
		Hasher:    hasher,
		Clock:     timex.SystemClock,
		Log:       log.With("component", "core"),
	})
	return a, nil
}

// newApp builds the terminal half of an App; svc is attached by the caller.
func newApp(c *config.Config, in io.Reader, out io.Writer, log logging.Logger) *App {
	return &App{
		config:   c,
		reader:   bufio.NewReader(in),
		out:      out,
		notifier: NewNotifier(out),
		render:   NewRenderer(out, timex.SystemClock),
		log:      log,
	}
}

// Run boots the service, greets a returning user and blocks in the REPL
// until the user exits or input ends.
func (a *App) Run(ctx context.Context) error {
	if a.backend != nil {
		defer a.backend.Close()
	}
	if err := a.svc.Boot(ctx); err != nil {
		return err
	}

	fmt.Fprintln(a.out, "Welcome to QuestKeeper (type 'help' for commands)")
	a.greet(ctx)
	runREPL(ctx, a, a.getStatus, a.reader)
	return nil
}

func (a *App) isLoggedIn() bool {
	_, ok := a.svc.CurrentUser()
	return ok
}

func (a *App) getStatus() string {
	u, ok := a.svc.CurrentUser()
	if !ok {
		return ""
	}
	p := message.NewPrinter(language.English)
	return p.Sprintf("(%s Lv%d %d🪙)", u.Username, progression.LevelFromXP(u.XP), u.Coins)
}

func (a *App) greet(ctx context.Context) {
	if _, _, err := a.svc.Greeting(ctx); err != nil {
		a.fail(ctx, err)
	}
}

// fail reports err to the user and returns it. Cancelled confirmations
// are reported as information.
func (a *App) fail(ctx context.Context, err error) error {
	switch {
	case errors.Is(err, common.ErrCancelled):
		a.notifier.Notify("Cancelled.", core.NoticeInfo, "")
	case common.Kind(err) != nil && !errors.Is(err, common.ErrPersistence):
		a.notifier.Notify(err.Error(), core.NoticeError, "")
	default:
		a.log.Error(ctx, "command failed", "error", err)
		a.notifier.Notify("Something went wrong.", core.NoticeError, err.Error())
	}
	return err
}
