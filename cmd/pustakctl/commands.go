package main

import (
	"context"
	"errors"
	"fmt"
	"strings"
	"syscall"
	"time"

	"github.com/spf13/cobra"
	"golang.org/x/term"

	"pustakdhaan/internal/app"
	"pustakdhaan/internal/config"
	"pustakdhaan/internal/models"
	"pustakdhaan/internal/pkg/logger"
	"pustakdhaan/internal/storage"
)

const commandTimeout = 30 * time.Second

type options struct {
	databaseURI string
	logLevel    string
}

func newRootCmd() *cobra.Command {
	opts := &options{}
	root := &cobra.Command{
		Use:           "pustakctl",
		Short:         "Operate the PustakDhaan book donation service",
		SilenceUsage:  true,
		SilenceErrors: true,
	}
	root.PersistentFlags().StringVar(&opts.databaseURI, "database-uri", config.DatabaseURI, "PostgreSQL connection string")
	root.PersistentFlags().StringVar(&opts.logLevel, "log-level", "warn", "log level")

	root.AddCommand(newMigrateCmd(opts), newSetRoleCmd(opts), newCreateAdminCmd(opts))
	return root
}

// session holds what a command needs to talk to the database.
type session struct {
	db  *storage.PostgreSQL
	log *logger.Logger
}

// close releases the database pool and flushes the logger.
func (s *session) close() {
	s.db.Close()
	s.log.Sync()
}

// connect opens the database; the caller must close the returned session.
// On error nothing is left open.
func (opts *options) connect() (*session, error) {
	l, err := logger.CreateLogger(opts.logLevel)
	if err != nil {
		return nil, fmt.Errorf("create logger: %w", err)
	}
	db, err := storage.NewPostgreSQL(opts.databaseURI, l)
	if err != nil {
		db.Close()
		l.Sync()
		return nil, fmt.Errorf("connect to database: %w", err)
	}
	return &session{db: db, log: l}, nil
}

func newMigrateCmd(opts *options) *cobra.Command {
	return &cobra.Command{
		Use:   "migrate",
		Short: "Create or upgrade the database schema",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			sess, err := opts.connect()
			if err != nil {
				return err
			}
			defer sess.close()

			ctx, cancel := context.WithTimeout(cmd.Context(), commandTimeout)
			defer cancel()
			if err := sess.db.Migrate(ctx); err != nil {
				return err
			}
			fmt.Fprintln(cmd.OutOrStdout(), "Schema is up to date.")
			return nil
		},
	}
}

func newSetRoleCmd(opts *options) *cobra.Command {
	return &cobra.Command{
		Use:   "set-role <email> <donor|coordinator|admin>",
		Short: "Change the role of an account",
		Long:  "Change the role of an account. Role-gated actions use the new role immediately; the login token carries it from the next login.",
		Args:  cobra.ExactArgs(2),
		RunE: func(cmd *cobra.Command, args []string) error {
			role := models.Role(strings.ToLower(args[1]))
			if !role.Valid() {
				return fmt.Errorf("unknown role %q", args[1])
			}

			sess, err := opts.connect()
			if err != nil {
				return err
			}
			defer sess.close()

			ctx, cancel := context.WithTimeout(cmd.Context(), commandTimeout)
			defer cancel()
			user, err := app.NewApp(sess.db, sess.log).AssignRole(ctx, args[0], role)
			if err != nil {
				return err
			}
			fmt.Fprintf(cmd.OutOrStdout(), "%s (%s) is now %s.\n", user.Name, user.Email, user.Role)
			return nil
		},
	}
}

func newCreateAdminCmd(opts *options) *cobra.Command {
	var name, email, phone string
	cmd := &cobra.Command{
		Use:   "create-admin",
		Short: "Create an admin account, prompting for its password",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			password, err := readPassword(cmd, "Password: ")
			if err != nil {
				return err
			}
			confirm, err := readPassword(cmd, "Repeat password: ")
			if err != nil {
				return err
			}
			if password != confirm {
				return errors.New("passwords do not match")
			}

			sess, err := opts.connect()
			if err != nil {
				return err
			}
			defer sess.close()

			ctx, cancel := context.WithTimeout(cmd.Context(), commandTimeout)
			defer cancel()
			user, err := app.NewApp(sess.db, sess.log).CreateAccount(ctx, models.RegisterRequest{
				Name: name, Email: email, Phone: phone, Password: password,
			}, models.RoleAdmin)
			if err != nil {
				return err
			}
			fmt.Fprintf(cmd.OutOrStdout(), "Created admin %s (%s).\n", user.Email, user.ID)
			return nil
		},
	}
	cmd.Flags().StringVar(&name, "name", "", "display name")
	cmd.Flags().StringVar(&email, "email", "", "login email")
	cmd.Flags().StringVar(&phone, "phone", "", "contact phone")
	cmd.MarkFlagRequired("name")
	cmd.MarkFlagRequired("email")
	return cmd
}

// readPassword reads a password from the terminal without echoing it.
func readPassword(cmd *cobra.Command, prompt string) (string, error) {
	fmt.Fprint(cmd.OutOrStdout(), prompt)
	bytePassword, err := term.ReadPassword(int(syscall.Stdin))
	fmt.Fprintln(cmd.OutOrStdout())
	if err != nil {
		return "", fmt.Errorf("failed to read password: %w", err)
	}
	return strings.TrimSpace(string(bytePassword)), nil
}
