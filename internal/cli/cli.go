package cli

import (
	"context"
	"errors"
	"fmt"
	"io"
	"sync"
	"toolcrib/internal/app"
	syncController "toolcrib/internal/controllers/sync"
	"toolcrib/internal/state"

	logger "github.com/Bparsons0904/goLogger"
	"github.com/spf13/cobra"
)

var (
	ErrNotAuthenticated = errors.New("não autenticado: use \"toolcrib login <usuário> <senha>\"")
	ErrAdminRequired    = errors.New("permissão de administrador necessária")
)

// CLI renders the application state for one process. In shell mode the same
// CLI runs many command lines so the session and drafts carry over.
type CLI struct {
	app *app.App
	in  io.Reader
	out io.Writer
	err io.Writer
	log logger.Logger

	// mu guards the fields below and serializes notice output between
	// commands and the background notice listener.
	mu sync.Mutex
	// noticeSeq is the last notice sequence number already printed.
	noticeSeq uint64
	shell     bool
	busy      bool
	listening bool
}

func New(app *app.App, in io.Reader, out, errOut io.Writer) *CLI {
	return &CLI{
		app:       app,
		in:        in,
		out:       out,
		err:       errOut,
		log:       logger.New("cli"),
		noticeSeq: app.Store.Snapshot().Notice.Seq,
	}
}

// Execute runs one command line. Notices written while it ran are printed
// afterwards. Validation failures are silent and never reported as errors.
func (c *CLI) Execute(ctx context.Context, args []string) error {
	root := c.newRootCommand()
	root.SetArgs(args)
	root.SetOut(c.out)
	root.SetErr(c.err)

	c.mu.Lock()
	c.busy = true
	c.mu.Unlock()

	err := root.ExecuteContext(ctx)

	c.mu.Lock()
	c.busy = false
	c.flushNotices()
	c.mu.Unlock()

	if errors.Is(err, syncController.ErrIncomplete) {
		return nil
	}
	return err
}

// PrintNotices flushes notices produced outside Execute, for example by the
// startup probe or a scheduled refresh.
func (c *CLI) PrintNotices() {
	c.printNotices()
}

func (c *CLI) printNotices() {
	c.mu.Lock()
	defer c.mu.Unlock()
	c.flushNotices()
}

func (c *CLI) hasPendingNotice() bool {
	return c.app.Store.Snapshot().Notice.Seq != c.noticeSeq
}

// flushNotices must be called with mu held.
func (c *CLI) flushNotices() {
	notice := c.app.Store.Snapshot().Notice
	if notice.Seq == c.noticeSeq {
		return
	}

	if notice.SuccessSeq > c.noticeSeq && notice.Success != "" {
		fmt.Fprintln(c.out, "✓", notice.Success)
	}
	if notice.ErrorSeq > c.noticeSeq && notice.Error != "" {
		fmt.Fprintln(c.err, "✗", notice.Error)
	}
	c.noticeSeq = notice.Seq
}

func (c *CLI) snapshot() state.State {
	return c.app.Store.Snapshot()
}

func (c *CLI) requireSession(cmd *cobra.Command, args []string) error {
	if !c.snapshot().Authenticated() {
		return ErrNotAuthenticated
	}
	return nil
}

func (c *CLI) requireAdmin(cmd *cobra.Command, args []string) error {
	if err := c.requireSession(cmd, args); err != nil {
		return err
	}
	if !c.snapshot().IsAdmin() {
		return ErrAdminRequired
	}
	return nil
}

// Bootstrap restores a server session if one exists, otherwise logs in with
// the configured credentials when both are set.
func (c *CLI) Bootstrap(ctx context.Context) error {
	log := c.log.Function("Bootstrap")

	if err := c.app.Controllers.Session.Probe(ctx); err == nil {
		return nil
	}

	if !c.app.Config.HasCredentials() {
		log.Debug("No session and no configured credentials")
		return nil
	}

	err := c.app.Controllers.Session.Login(ctx, c.app.Config.APIUsername, c.app.Config.APIPassword)
	c.printNotices()
	if err != nil {
		return log.Err("automatic login failed", err, "username", c.app.Config.APIUsername)
	}
	return nil
}

// NeedsBackend reports whether a command line talks to the backend, so that
// help and version output work offline.
func NeedsBackend(args []string) bool {
	if len(args) == 0 {
		return false
	}
	for _, arg := range args {
		if arg == "-h" || arg == "--help" {
			return false
		}
	}
	switch args[0] {
	case "help", "version", "login":
		return false
	}
	return true
}
