package cli

import (
	"bufio"
	"context"
	"errors"
	"fmt"
	"toolcrib/internal/events"

	"github.com/google/shlex"
	"github.com/spf13/cobra"
)

const prompt = "toolcrib> "

var errMalformedLine = errors.New("aspas ou escape incompletos")

func (c *CLI) newShellCommand() *cobra.Command {
	return &cobra.Command{
		Use:   "shell",
		Short: "Sessão interativa; sessão e rascunhos persistem entre comandos",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			return c.RunShell(cmd.Context())
		},
	}
}

// RunShell reads command lines until EOF, "exit" or ctx is cancelled. Command
// errors are printed and the loop continues. Notices raised in the background
// while the prompt is idle are printed as they arrive.
func (c *CLI) RunShell(ctx context.Context) error {
	log := c.log.Function("RunShell")

	c.setShell(true)
	defer c.setShell(false)
	c.listenForNotices()

	scheduler := c.app.Services.Scheduler
	if err := scheduler.Start(); err != nil {
		return log.Err("failed to start scheduler", err)
	}
	defer func() {
		if err := scheduler.Stop(); err != nil {
			log.Er("failed to stop scheduler", err)
		}
	}()

	done := make(chan struct{})
	defer close(done)
	lines, readErr := c.readLines(done)

	for {
		c.mu.Lock()
		c.busy = false
		c.flushNotices()
		fmt.Fprint(c.out, prompt)
		c.mu.Unlock()

		var line string
		select {
		case <-ctx.Done():
			fmt.Fprintln(c.out)
			return nil
		case next, ok := <-lines:
			if !ok {
				fmt.Fprintln(c.out)
				return <-readErr
			}
			line = next
		}

		args, err := splitLine(line)
		if err != nil {
			fmt.Fprintln(c.err, "erro:", err)
			continue
		}
		if len(args) == 0 {
			continue
		}
		if args[0] == "exit" || args[0] == "quit" {
			return nil
		}

		if err := c.Execute(ctx, args); err != nil {
			fmt.Fprintln(c.err, "erro:", err)
		}
	}
}

// readLines scans c.in on its own goroutine. The goroutine stays parked in
// Scan until the next line or EOF even after done is closed.
func (c *CLI) readLines(done <-chan struct{}) (<-chan string, <-chan error) {
	lines := make(chan string)
	readErr := make(chan error, 1)

	go func() {
		defer close(lines)
		scanner := bufio.NewScanner(c.in)
		for scanner.Scan() {
			select {
			case lines <- scanner.Text():
			case <-done:
				return
			}
		}
		readErr <- scanner.Err()
	}()

	return lines, readErr
}

func (c *CLI) setShell(on bool) {
	c.mu.Lock()
	c.shell = on
	c.mu.Unlock()
}

func (c *CLI) listenForNotices() {
	c.mu.Lock()
	defer c.mu.Unlock()

	if c.listening || c.app.EventBus == nil {
		return
	}
	c.listening = true
	c.app.EventBus.Subscribe(events.NOTICE_CHANNEL, c.onNotice)
}

// onNotice prints notices raised while the shell sits at an idle prompt, for
// example by the scheduled refresh. Notices raised by a running command are
// left for Execute.
func (c *CLI) onNotice(events.Event) error {
	c.mu.Lock()
	defer c.mu.Unlock()

	if !c.shell || c.busy || !c.hasPendingNotice() {
		return nil
	}

	fmt.Fprintln(c.out)
	c.flushNotices()
	fmt.Fprint(c.out, prompt)
	return nil
}

// splitLine breaks a shell line into arguments with POSIX-style quoting.
func splitLine(line string) ([]string, error) {
	args, err := shlex.Split(line)
	if err != nil {
		return nil, fmt.Errorf("%w: %v", errMalformedLine, err)
	}
	if len(args) == 0 {
		return nil, nil
	}
	return args, nil
}
