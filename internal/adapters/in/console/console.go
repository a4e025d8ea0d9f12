// Package console is the interactive front end of the maintenance system.
// It reads one answer per line, turns answers into commands and queries and
// prints the results. Handler errors are printed and the menu is shown again.
package console

import (
	"bufio"
	"context"
	"errors"
	"fmt"
	"io"
	"strconv"
	"strings"
	"sync"

	"maintenance/internal/core/application/usecases/commands"
	"maintenance/internal/core/application/usecases/queries"

	"go.uber.org/zap"
)

var errInputClosed = errors.New("input closed")

// Handlers groups the use cases the console can reach.
type Handlers struct {
	RegisterAdmin      commands.RegisterAdminCommandHandler
	RegisterSupervisor commands.RegisterSupervisorCommandHandler
	RegisterTechnician commands.RegisterTechnicianCommandHandler
	UpdateSupervisor   commands.UpdateSupervisorCommandHandler
	SetUserActive      commands.SetUserActiveCommandHandler
	CreateAsset        commands.CreateAssetCommandHandler
	UpdateAsset        commands.UpdateAssetCommandHandler
	CreateWorkOrder    commands.CreateWorkOrderCommandHandler
	AssignTechnician   commands.AssignTechnicianCommandHandler
	ResolveWorkOrder   commands.ResolveWorkOrderCommandHandler
	DeleteWorkOrder    commands.DeleteWorkOrderCommandHandler

	Authenticate           queries.AuthenticateQueryHandler
	GetUser                queries.GetUserQueryHandler
	ListUsers              queries.ListUsersQueryHandler
	GetAsset               queries.GetAssetQueryHandler
	ListAssets             queries.ListAssetsQueryHandler
	GetWorkOrder           queries.GetWorkOrderQueryHandler
	ListWorkOrders         queries.ListWorkOrdersQueryHandler
	ListAssignedWorkOrders queries.ListAssignedWorkOrdersQueryHandler
}

// Console runs the menus over an input and an output stream.
//
// Input is read by a single goroutine started on the first prompt, so a
// prompt returns as soon as its context is cancelled even while the reader
// is still blocked on the stream.
type Console struct {
	handlers Handlers
	in       *bufio.Scanner
	out      io.Writer
	logger   *zap.Logger
	session  queries.Session

	readOnce sync.Once
	lines    chan string
	readErr  error
}

// NewConsole builds a console over in and out. A nil logger disables logging.
func NewConsole(handlers Handlers, in io.Reader, out io.Writer, logger *zap.Logger) *Console {
	if logger == nil {
		logger = zap.NewNop()
	}
	return &Console{
		handlers: handlers,
		in:       bufio.NewScanner(in),
		out:      out,
		logger:   logger.Named("console"),
		lines:    make(chan string),
	}
}

// Run shows the main menu until the user exits, the input ends or ctx is done.
func (c *Console) Run(ctx context.Context) error {
	c.logger.Info("console started")
	defer c.logger.Info("console stopped")

	err := c.menu(ctx, "Main menu", c.mainActions())
	if errors.Is(err, errInputClosed) {
		return nil
	}
	return err
}

type action struct {
	label string
	run   func(ctx context.Context) error
}

// menu loops over one menu; option 0 leaves it.
func (c *Console) menu(ctx context.Context, title string, actions []action) error {
	for {
		if err := ctx.Err(); err != nil {
			return err
		}

		c.printf("\n== %s ==\n", title)
		for i, a := range actions {
			c.printf("%d. %s\n", i+1, a.label)
		}
		c.printf("0. %s\n", exitLabel(title))

		choice, err := c.ask(ctx, "Option")
		if err != nil {
			return err
		}
		if choice == "0" {
			return nil
		}

		n, convErr := strconv.Atoi(choice)
		if convErr != nil || n < 1 || n > len(actions) {
			c.printf("Unknown option %q\n", choice)
			continue
		}

		if err = actions[n-1].run(ctx); err != nil {
			if errors.Is(err, errInputClosed) || ctx.Err() != nil {
				return err
			}
			c.report(actions[n-1].label, err)
		}
	}
}

func exitLabel(title string) string {
	if title == "Main menu" {
		return "Exit"
	}
	return "Log out"
}

func (c *Console) report(operation string, err error) {
	c.logger.Info("operation failed", zap.String("operation", operation), zap.Error(err))
	c.printf("Error: %v\n", err)
}

func (c *Console) printf(format string, args ...any) {
	_, _ = fmt.Fprintf(c.out, format, args...)
}

// readLines feeds c.lines until the input ends. readErr is written before the
// channel is closed, so receivers observing the close may read it.
func (c *Console) readLines() {
	defer close(c.lines)
	for c.in.Scan() {
		c.lines <- c.in.Text()
	}
	c.readErr = c.in.Err()
}

// ask prints a prompt and returns the trimmed answer. It gives up with the
// context's error once ctx is done.
func (c *Console) ask(ctx context.Context, prompt string) (string, error) {
	c.readOnce.Do(func() { go c.readLines() })

	c.printf("%s: ", prompt)
	select {
	case <-ctx.Done():
		c.printf("\n")
		return "", ctx.Err()
	case line, ok := <-c.lines:
		if !ok {
			if c.readErr != nil {
				return "", c.readErr
			}
			return "", errInputClosed
		}
		return strings.TrimSpace(line), nil
	}
}

// form asks every prompt in turn.
func (c *Console) form(ctx context.Context, prompts ...string) ([]string, error) {
	answers := make([]string, 0, len(prompts))
	for _, p := range prompts {
		answer, err := c.ask(ctx, p)
		if err != nil {
			return nil, err
		}
		answers = append(answers, answer)
	}
	return answers, nil
}
