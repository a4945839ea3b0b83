// Package shell implements the interactive console menus: the welcome
// screen, the shopper menu, and the admin panel. It is a thin layer over
// the services; all rules live there.
package shell

import (
	"bufio"
	"context"
	"errors"
	"fmt"
	"io"

	"github.com/fatih/color"
	"github.com/google/uuid"

	"github.com/shashiranjanraj/dukaan/app/repositories"
	"github.com/shashiranjanraj/dukaan/app/services"
	"github.com/shashiranjanraj/dukaan/pkg/logger"
)

var (
	headline = color.New(color.FgHiCyan, color.Bold)
	menu     = color.New(color.FgYellow)
	prompt   = color.New(color.FgHiGreen)
	success  = color.New(color.FgHiGreen)
	failure  = color.New(color.FgHiRed)
	accent   = color.New(color.FgHiMagenta)
)

// Shell drives one interactive session over in/out.
type Shell struct {
	in  *bufio.Scanner
	out io.Writer

	accounts *services.AccountService
	catalog  *services.CatalogService
	history  *services.HistoryService
	checkout *services.CheckoutService
	admins   *repositories.AdminRepository
}

// New wires a Shell over the given reader/writer and services.
func New(in io.Reader, out io.Writer,
	accounts *services.AccountService,
	catalog *services.CatalogService,
	history *services.HistoryService,
	checkout *services.CheckoutService,
	admins *repositories.AdminRepository,
) *Shell {
	return &Shell{
		in:       bufio.NewScanner(in),
		out:      out,
		accounts: accounts,
		catalog:  catalog,
		history:  history,
		checkout: checkout,
		admins:   admins,
	}
}

// Run shows the welcome screen and loops on the top menu until the user
// exits or input ends. Every log line of the session carries the same
// session_id.
func (s *Shell) Run(ctx context.Context) error {
	session := uuid.NewString()[:8]
	log := logger.L.With("session_id", session)
	ctx = logger.InjectLogger(ctx, log)

	headline.Fprintln(s.out, "===============================================")
	headline.Fprintln(s.out, "          WELCOME TO THE SHOPPING APP")
	headline.Fprintln(s.out, "===============================================")
	accent.Fprintln(s.out, "Your one-stop shop for everything!")
	fmt.Fprintln(s.out)

	for {
		menu.Fprintln(s.out, "1. Register")
		menu.Fprintln(s.out, "2. Login")
		menu.Fprintln(s.out, "3. Admin Login")
		menu.Fprintln(s.out, "4. Exit")

		choice, ok := s.promptInt("Enter your choice: ")
		if !ok {
			return nil // input exhausted
		}

		switch choice {
		case 1:
			s.register(ctx)
		case 2:
			s.login(ctx)
		case 3:
			s.adminLogin(ctx)
		case 4:
			return nil
		default:
			failure.Fprintln(s.out, "Invalid choice entered.")
		}
	}
}

func (s *Shell) register(ctx context.Context) {
	username, ok := s.promptLine("Enter new username: ")
	if !ok {
		return
	}
	if err := s.accounts.ValidateUsername(username); err != nil {
		failure.Fprintf(s.out, "Error: %s\n", err)
		return
	}

	password, ok := s.promptLine("Enter password: ")
	if !ok {
		return
	}
	if err := s.accounts.ValidatePassword(password); err != nil {
		failure.Fprintf(s.out, "Error: %s\n", err)
		return
	}

	firstName, _ := s.promptLine("Enter your first name: ")
	lastName, _ := s.promptLine("Enter your last name: ")
	address, ok := s.promptLine("Enter your address: ")
	if !ok {
		return
	}

	user, err := s.accounts.Register(username, password, firstName, lastName, address)
	if err != nil {
		failure.Fprintf(s.out, "Error: %s\n", err)
		return
	}
	logger.WithCtx(ctx).Info("user registered", "username", user.Username)
	success.Fprintln(s.out, "Registration successful.")
}

func (s *Shell) login(ctx context.Context) {
	username, _ := s.promptLine("Enter username: ")
	password, ok := s.promptLine("Enter password: ")
	if !ok {
		return
	}

	user, err := s.accounts.Authenticate(username, password)
	if err != nil {
		if errors.Is(err, services.ErrInvalidCredentials) {
			failure.Fprintln(s.out, "Invalid username or password.")
		} else {
			failure.Fprintf(s.out, "Error: %s\n", err)
		}
		return
	}

	logger.WithCtx(ctx).Info("user logged in", "username", user.Username)
	success.Fprintln(s.out, "Login successful.")
	s.shopMenu(ctx, user)
}

func (s *Shell) adminLogin(ctx context.Context) {
	username, _ := s.promptLine("Enter admin username: ")
	password, ok := s.promptLine("Enter admin password: ")
	if !ok {
		return
	}

	authed, err := s.admins.Authenticate(username, password)
	if err != nil {
		failure.Fprintf(s.out, "Error: %s\n", err)
		return
	}
	if !authed {
		failure.Fprintln(s.out, "Invalid admin username or password.")
		return
	}

	logger.WithCtx(ctx).Info("admin logged in", "username", username)
	success.Fprintln(s.out, "Admin login successful.")
	s.adminMenu(ctx)
}
