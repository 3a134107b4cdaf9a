package main

import (
	"bufio"
	"context"
	"database/sql"
	"errors"
	"flag"
	"fmt"
	"io"
	"log/slog"
	"net"
	"os"
	"os/signal"
	"path/filepath"
	"sort"
	"strings"
	"syscall"
	"text/tabwriter"
	"time"

	"golang.org/x/term"

	"github.com/ugochukwu16henry/henryUgochukwu-Porfolio/config"
	"github.com/ugochukwu16henry/henryUgochukwu-Porfolio/internal/admin"
	"github.com/ugochukwu16henry/henryUgochukwu-Porfolio/internal/bootstrap"
	"github.com/ugochukwu16henry/henryUgochukwu-Porfolio/internal/devseed"
)

type commandFn func(ctx *commandContext, args []string) error

type command struct {
	name        string
	description string
	run         commandFn
}

type commandContext struct {
	Ctx    context.Context
	Logger *slog.Logger
	Config config.AppConfig
}

const defaultMigrationTimeout = 5 * time.Minute

// readPassword is a test seam for term.ReadPassword.
var readPassword = term.ReadPassword

func main() {
	logger := bootstrap.InitLogger()

	if len(os.Args) < 2 {
		if err := printUsage(); err != nil {
			logger.Error("print usage failed", "error", err)
		}
		os.Exit(2) //nolint:forbidigo // CLI must exit with failure status when no command is provided
	}

	cmdName := os.Args[1]
	cmd, ok := commands()[cmdName]
	if !ok {
		if err := writef(os.Stderr, "unknown command %q\n\n", cmdName); err != nil {
			logger.Error("print unknown command message failed", "error", err)
		}
		if err := printUsage(); err != nil {
			logger.Error("print usage failed", "error", err)
		}
		os.Exit(2) //nolint:forbidigo // CLI must exit with failure status when command is unknown
	}

	cfg, err := bootstrap.LoadConfig()
	if err != nil {
		logger.ErrorContext(context.Background(), "load config", "error", err)
		os.Exit(1) //nolint:forbidigo // CLI must signal configuration load failure to shell scripts
	}

	cmdCtx := &commandContext{
		Ctx:    context.Background(),
		Logger: logger,
		Config: cfg,
	}
	if runErr := cmd.run(cmdCtx, os.Args[2:]); runErr != nil {
		logger.ErrorContext(cmdCtx.Ctx, "command failed", "command", cmdName, "error", runErr)
		os.Exit(1) //nolint:forbidigo // CLI must propagate command execution failure to callers
	}
}

func commands() map[string]command {
	return map[string]command{
		"login": {
			name:        "login",
			description: "Authenticate against the portfolio API and store the session token",
			run:         runLogin,
		},
		"logout": {
			name:        "logout",
			description: "Clear the stored session token",
			run:         runLogout,
		},
		"status": {
			name:        "status",
			description: "Check whether the stored session token is still valid",
			run:         runStatus,
		},
		"profile": {
			name:        "profile",
			description: "Show the stored profile content",
			run:         runProfile,
		},
		"list-projects": {
			name:        "list-projects",
			description: "List projects with pagination and search",
			run:         runListProjects,
		},
		"list-certificates": {
			name:        "list-certificates",
			description: "List certificates with pagination and search",
			run:         runListCertificates,
		},
		"list-media": {
			name:        "list-media",
			description: "List media assets with pagination and search",
			run:         runListMedia,
		},
		"list-resumes": {
			name:        "list-resumes",
			description: "List resume assets with pagination and search",
			run:         runListResumes,
		},
		"delete-project": {
			name:        "delete-project",
			description: "Delete a project by ID",
			run:         deleteCommand("/api/projects", func(d *admin.Dashboard) deleter { return d.ProjectForm }),
		},
		"delete-certificate": {
			name:        "delete-certificate",
			description: "Delete a certificate by ID",
			run:         deleteCommand("/api/certificates", func(d *admin.Dashboard) deleter { return d.CertificateForm }),
		},
		"delete-media": {
			name:        "delete-media",
			description: "Delete a media asset by ID",
			run:         deleteCommand("/api/media", func(d *admin.Dashboard) deleter { return d.MediaForm }),
		},
		"delete-resume": {
			name:        "delete-resume",
			description: "Delete a resume asset by ID",
			run:         deleteCommand("/api/resumes", func(d *admin.Dashboard) deleter { return d.ResumeForm }),
		},
		"add-project": {
			name:        "add-project",
			description: "Create a project from flag values",
			run:         runAddProject,
		},
		"edit-project": {
			name:        "edit-project",
			description: "Update a project; unset flags keep their stored values",
			run:         runEditProject,
		},
		"add-certificate": {
			name:        "add-certificate",
			description: "Create a certificate from flag values",
			run:         runAddCertificate,
		},
		"edit-certificate": {
			name:        "edit-certificate",
			description: "Update a certificate; unset flags keep their stored values",
			run:         runEditCertificate,
		},
		"add-media": {
			name:        "add-media",
			description: "Create a media asset from flag values",
			run:         runAddMedia,
		},
		"edit-media": {
			name:        "edit-media",
			description: "Update a media asset; unset flags keep their stored values",
			run:         runEditMedia,
		},
		"add-resume": {
			name:        "add-resume",
			description: "Create a resume asset from flag values",
			run:         runAddResume,
		},
		"edit-resume": {
			name:        "edit-resume",
			description: "Update a resume asset; unset flags keep their stored values",
			run:         runEditResume,
		},
		"edit-profile": {
			name:        "edit-profile",
			description: "Update profile fields; unset flags keep their stored values",
			run:         runEditProfile,
		},
		"upload": {
			name:        "upload",
			description: "Upload a file and print its stored URL",
			run:         runUpload,
		},
		"migrate": {
			name:        "migrate",
			description: "Run database migrations",
			run:         runMigrate,
		},
		"db-seed": {
			name:        "db-seed",
			description: "Run database migrations and seed development data",
			run:         runDBSeed,
		},
		"db-reset": {
			name:        "db-reset",
			description: "Drop the database schema, run migrations, and optionally seed data",
			run:         runDBReset,
		},
	}
}

func printUsage() error {
	if err := writef(os.Stdout, "Usage: portfolio-admin <command> [flags]\n\n"); err != nil {
		return err
	}
	if err := writef(os.Stdout, "Available commands:\n"); err != nil {
		return err
	}
	cmds := commands()
	names := make([]string, 0, len(cmds))
	for name := range cmds {
		names = append(names, name)
	}
	sort.Strings(names)
	for _, name := range names {
		if err := writef(os.Stdout, "  %-20s %s\n", name, cmds[name].description); err != nil {
			return err
		}
	}
	return nil
}

func writef(w io.Writer, format string, args ...any) error {
	_, err := fmt.Fprintf(w, format, args...)
	return err
}

func writeln(w io.Writer, args ...any) error {
	_, err := fmt.Fprintln(w, args...)
	return err
}

// newDashboard builds the admin control layer against the configured API base
// URL, with the session token persisted under the user's home directory.
func newDashboard(cfg *config.AppConfig) (*admin.Dashboard, error) {
	home, err := os.UserHomeDir()
	if err != nil {
		return nil, fmt.Errorf("resolve home directory: %w", err)
	}

	client := admin.NewClient(cfg.HTTP.BaseURL, nil)
	tokens := admin.NewFileTokenStore(filepath.Join(home, ".portfolio-admin", "token"))
	notifier := admin.NotifierFunc(func(message string) {
		fmt.Fprintln(os.Stderr, message) //nolint:errcheck // notices are best effort
	})

	return admin.NewDashboard(admin.DashboardOptions{
		Client:   client,
		Tokens:   tokens,
		Notifier: notifier,
	}), nil
}

type loginOptions struct {
	Email string
}

func runLogin(cmdCtx *commandContext, args []string) error {
	fs := flag.NewFlagSet("login", flag.ContinueOnError)
	fs.SetOutput(os.Stderr)

	var opts loginOptions
	fs.StringVar(&opts.Email, "email", "", "Admin email address (required)")
	if err := fs.Parse(args); err != nil {
		return err
	}
	opts.Email = strings.TrimSpace(opts.Email)
	if opts.Email == "" {
		return errors.New("--email is required")
	}

	if err := writef(os.Stderr, "Password: "); err != nil {
		return err
	}
	password, err := readPassword(int(os.Stdin.Fd()))
	if writeErr := writeln(os.Stderr); writeErr != nil {
		return writeErr
	}
	if err != nil {
		return fmt.Errorf("read password: %w", err)
	}

	d, err := newDashboard(&cmdCtx.Config)
	if err != nil {
		return err
	}

	ctx, cancel := context.WithTimeout(cmdCtx.Ctx, time.Minute)
	defer cancel()

	if loginErr := d.Session.Login(ctx, opts.Email, string(password)); loginErr != nil {
		return fmt.Errorf("login: %w", loginErr)
	}

	return writef(os.Stdout, "Logged in as %s\n", opts.Email)
}

func runLogout(cmdCtx *commandContext, _ []string) error {
	d, err := newDashboard(&cmdCtx.Config)
	if err != nil {
		return err
	}
	d.Session.Logout()
	return nil
}

func runStatus(cmdCtx *commandContext, _ []string) error {
	d, err := newDashboard(&cmdCtx.Config)
	if err != nil {
		return err
	}

	ctx, cancel := context.WithTimeout(cmdCtx.Ctx, time.Minute)
	defer cancel()

	if restoreErr := d.Session.Restore(ctx); restoreErr != nil {
		return fmt.Errorf("restore session: %w", restoreErr)
	}

	if !d.Session.Authenticated() {
		return writeln(os.Stdout, "Not signed in")
	}
	return writeln(os.Stdout, "Session is active")
}

func runProfile(cmdCtx *commandContext, _ []string) error {
	d, err := restoredDashboard(cmdCtx)
	if err != nil {
		return err
	}

	ctx, cancel := context.WithTimeout(cmdCtx.Ctx, time.Minute)
	defer cancel()

	d.Profile.Load(ctx)
	draft := d.Profile.Draft()

	w := tabwriter.NewWriter(os.Stdout, 0, 4, 2, ' ', 0)
	rows := []struct{ label, value string }{
		{"Full Name", draft.FullName},
		{"Title", draft.Title},
		{"Headline", draft.Headline},
		{"Email", draft.Email},
		{"Location", draft.Location},
		{"Current Role", draft.CurrentRole},
		{"LinkedIn", draft.LinkedInURL},
		{"GitHub", draft.GithubURL},
	}
	for _, row := range rows {
		if err := writef(w, "%s\t%s\n", row.label, row.value); err != nil {
			return fmt.Errorf("write profile row: %w", err)
		}
	}
	if err := w.Flush(); err != nil {
		return fmt.Errorf("flush profile table: %w", err)
	}
	return nil
}

type listCLIOptions struct {
	Page     int
	PageSize int
	Search   string
}

func parseListCLIFlags(name string, args []string) (listCLIOptions, error) {
	fs := flag.NewFlagSet(name, flag.ContinueOnError)
	fs.SetOutput(os.Stderr)

	var opts listCLIOptions
	fs.IntVar(&opts.Page, "page", 1, "Page number to fetch")
	fs.IntVar(&opts.PageSize, "page-size", 0, "Rows per page (5, 10, 20, or 50)")
	fs.StringVar(&opts.Search, "search", "", "Filter rows by search term")

	if err := fs.Parse(args); err != nil {
		return listCLIOptions{}, err
	}
	return opts, nil
}

// restoredDashboard builds the dashboard and restores the stored session.
// Commands that need authentication fail fast when no session is active.
func restoredDashboard(cmdCtx *commandContext) (*admin.Dashboard, error) {
	d, err := newDashboard(&cmdCtx.Config)
	if err != nil {
		return nil, err
	}

	ctx, cancel := context.WithTimeout(cmdCtx.Ctx, time.Minute)
	defer cancel()

	if restoreErr := d.Session.Restore(ctx); restoreErr != nil {
		return nil, fmt.Errorf("restore session: %w", restoreErr)
	}
	if !d.Session.Authenticated() {
		return nil, errors.New("not signed in; run `portfolio-admin login` first")
	}
	return d, nil
}

func applyListOptions[T any](ctx context.Context, c *admin.ListController[T], opts listCLIOptions) {
	if opts.Search != "" {
		c.SetSearch(ctx, opts.Search)
	}
	if opts.PageSize > 0 {
		c.SetPageSize(ctx, opts.PageSize)
	}
	c.SetPage(ctx, opts.Page)
}

func printListFooter[T any](c *admin.ListController[T]) error {
	return writef(os.Stdout, "\nPage %d (%d rows of %d total)\n", c.Page(), len(c.Items()), c.Total())
}

func runListProjects(cmdCtx *commandContext, args []string) error {
	opts, err := parseListCLIFlags("list-projects", args)
	if err != nil {
		return err
	}
	d, err := restoredDashboard(cmdCtx)
	if err != nil {
		return err
	}

	ctx, cancel := context.WithTimeout(cmdCtx.Ctx, time.Minute)
	defer cancel()

	applyListOptions(ctx, d.Projects, opts)

	w := tabwriter.NewWriter(os.Stdout, 0, 4, 2, ' ', 0)
	if err := writeln(w, "ID\tTitle\tSlug\tFeatured\tOrder"); err != nil {
		return fmt.Errorf("write project header: %w", err)
	}
	for _, p := range d.Projects.Items() {
		if err := writef(w, "%s\t%s\t%s\t%t\t%d\n", p.ID, p.Title, p.Slug, p.Featured, p.DisplayOrder); err != nil {
			return fmt.Errorf("write project row: %w", err)
		}
	}
	if err := w.Flush(); err != nil {
		return fmt.Errorf("flush project table: %w", err)
	}
	return printListFooter(d.Projects)
}

func runListCertificates(cmdCtx *commandContext, args []string) error {
	opts, err := parseListCLIFlags("list-certificates", args)
	if err != nil {
		return err
	}
	d, err := restoredDashboard(cmdCtx)
	if err != nil {
		return err
	}

	ctx, cancel := context.WithTimeout(cmdCtx.Ctx, time.Minute)
	defer cancel()

	applyListOptions(ctx, d.Certificates, opts)

	w := tabwriter.NewWriter(os.Stdout, 0, 4, 2, ' ', 0)
	if err := writeln(w, "ID\tTitle\tIssuer\tIssued"); err != nil {
		return fmt.Errorf("write certificate header: %w", err)
	}
	for _, c := range d.Certificates.Items() {
		if err := writef(w, "%s\t%s\t%s\t%s\n", c.ID, c.Title, c.Issuer, strOrDash(c.IssuedDate)); err != nil {
			return fmt.Errorf("write certificate row: %w", err)
		}
	}
	if err := w.Flush(); err != nil {
		return fmt.Errorf("flush certificate table: %w", err)
	}
	return printListFooter(d.Certificates)
}

func runListMedia(cmdCtx *commandContext, args []string) error {
	opts, err := parseListCLIFlags("list-media", args)
	if err != nil {
		return err
	}
	d, err := restoredDashboard(cmdCtx)
	if err != nil {
		return err
	}

	ctx, cancel := context.WithTimeout(cmdCtx.Ctx, time.Minute)
	defer cancel()

	applyListOptions(ctx, d.Media, opts)

	w := tabwriter.NewWriter(os.Stdout, 0, 4, 2, ' ', 0)
	if err := writeln(w, "ID\tTitle\tCategory"); err != nil {
		return fmt.Errorf("write media header: %w", err)
	}
	for _, m := range d.Media.Items() {
		if err := writef(w, "%s\t%s\t%s\n", m.ID, m.Title, m.Category); err != nil {
			return fmt.Errorf("write media row: %w", err)
		}
	}
	if err := w.Flush(); err != nil {
		return fmt.Errorf("flush media table: %w", err)
	}
	return printListFooter(d.Media)
}

func runListResumes(cmdCtx *commandContext, args []string) error {
	opts, err := parseListCLIFlags("list-resumes", args)
	if err != nil {
		return err
	}
	d, err := restoredDashboard(cmdCtx)
	if err != nil {
		return err
	}

	ctx, cancel := context.WithTimeout(cmdCtx.Ctx, time.Minute)
	defer cancel()

	applyListOptions(ctx, d.Resumes, opts)

	w := tabwriter.NewWriter(os.Stdout, 0, 4, 2, ' ', 0)
	if err := writeln(w, "ID\tTitle\tType\tPrimary"); err != nil {
		return fmt.Errorf("write resume header: %w", err)
	}
	for _, a := range d.Resumes.Items() {
		if err := writef(w, "%s\t%s\t%s\t%t\n", a.ID, a.Title, a.Type, a.IsPrimary); err != nil {
			return fmt.Errorf("write resume row: %w", err)
		}
	}
	if err := w.Flush(); err != nil {
		return fmt.Errorf("flush resume table: %w", err)
	}
	return printListFooter(d.Resumes)
}

type deleter interface {
	Delete(ctx context.Context, id string) bool
}

// deleteCommand builds a delete command bound to one collection's form
// controller, so the CLI and the dashboard share confirmation and refresh
// behavior.
func deleteCommand(path string, pick func(*admin.Dashboard) deleter) commandFn {
	return func(cmdCtx *commandContext, args []string) error {
		fs := flag.NewFlagSet("delete", flag.ContinueOnError)
		fs.SetOutput(os.Stderr)

		var id string
		var yes bool
		fs.StringVar(&id, "id", "", "Record ID to delete (required)")
		fs.BoolVar(&yes, "yes", false, "Skip confirmation prompt")
		if err := fs.Parse(args); err != nil {
			return err
		}
		id = strings.TrimSpace(id)
		if id == "" {
			return errors.New("--id is required")
		}

		d, err := restoredDashboard(cmdCtx)
		if err != nil {
			return err
		}

		confirm := func() bool { return true }
		if !yes {
			confirm = func() bool { return promptConfirm("Delete " + id + "?") }
		}
		switch form := pick(d).(type) {
		case *admin.FormController[admin.ProjectDraft]:
			form.Confirm = confirm
		case *admin.FormController[admin.CertificateDraft]:
			form.Confirm = confirm
		case *admin.FormController[admin.MediaDraft]:
			form.Confirm = confirm
		case *admin.FormController[admin.ResumeDraft]:
			form.Confirm = confirm
		}

		ctx, cancel := context.WithTimeout(cmdCtx.Ctx, time.Minute)
		defer cancel()

		if !pick(d).Delete(ctx, id) {
			return fmt.Errorf("delete %s/%s failed", path, id)
		}
		return writef(os.Stdout, "Deleted %s\n", id)
	}
}

func promptConfirm(message string) bool {
	if err := writef(os.Stderr, "%s [y/N]: ", message); err != nil {
		return false
	}
	reader := bufio.NewReader(os.Stdin)
	resp, err := reader.ReadString('\n')
	if err != nil {
		return false
	}
	resp = strings.ToLower(strings.TrimSpace(resp))
	return resp == "y" || resp == "yes"
}

func strOrDash(p *string) string {
	if p == nil || *p == "" {
		return "-"
	}
	return *p
}

type migrateOptions struct {
	Timeout time.Duration
}

func parseMigrateFlags(args []string) (migrateOptions, error) {
	fs := flag.NewFlagSet("migrate", flag.ContinueOnError)
	fs.SetOutput(os.Stderr)

	opts := migrateOptions{Timeout: defaultMigrationTimeout}
	fs.DurationVar(&opts.Timeout, "timeout", defaultMigrationTimeout,
		"Maximum duration to wait for migrations to complete")

	if err := fs.Parse(args); err != nil {
		return migrateOptions{}, err
	}
	if opts.Timeout <= 0 {
		return migrateOptions{}, errors.New("--timeout must be greater than zero")
	}
	return opts, nil
}

func runMigrate(cmdCtx *commandContext, args []string) error {
	opts, err := parseMigrateFlags(args)
	if err != nil {
		return err
	}

	return withDatabase(cmdCtx, opts.Timeout, func(ctx context.Context, db *sql.DB) error {
		cmdCtx.Logger.Info("running database migrations")
		if migrateErr := bootstrap.RunMigrations(ctx, db, cmdCtx.Logger); migrateErr != nil {
			return fmt.Errorf("run migrations: %w", migrateErr)
		}
		cmdCtx.Logger.Info("migrations completed successfully")
		return nil
	})
}

type dbSeedOptions struct {
	Timeout     time.Duration
	AllowRemote bool
}

func parseDBSeedFlags(args []string) (dbSeedOptions, error) {
	fs := flag.NewFlagSet("db-seed", flag.ContinueOnError)
	fs.SetOutput(os.Stderr)

	opts := dbSeedOptions{Timeout: defaultMigrationTimeout}
	fs.DurationVar(&opts.Timeout, "timeout", defaultMigrationTimeout,
		"Maximum duration to wait for seeding to complete")
	fs.BoolVar(&opts.AllowRemote, "allow-remote", false,
		"Permit running against database hosts that do not look local")

	if err := fs.Parse(args); err != nil {
		return dbSeedOptions{}, err
	}
	if opts.Timeout <= 0 {
		return dbSeedOptions{}, errors.New("--timeout must be greater than zero")
	}
	return opts, nil
}

func runDBSeed(cmdCtx *commandContext, args []string) error {
	opts, err := parseDBSeedFlags(args)
	if err != nil {
		return err
	}

	if guardErr := guardRemoteHost(cmdCtx, opts.AllowRemote, "seed development data on the configured database"); guardErr != nil {
		return guardErr
	}

	return withDatabase(cmdCtx, opts.Timeout, func(ctx context.Context, db *sql.DB) error {
		cmdCtx.Logger.Info("ensuring database migrations are current")
		if migrateErr := bootstrap.RunMigrations(ctx, db, cmdCtx.Logger); migrateErr != nil {
			return fmt.Errorf("run migrations: %w", migrateErr)
		}

		cmdCtx.Logger.Info("seeding development data")
		if seedErr := devseed.Run(ctx, db, cmdCtx.Logger); seedErr != nil {
			return fmt.Errorf("seed data: %w", seedErr)
		}

		cmdCtx.Logger.Info("database seeding completed successfully")
		return nil
	})
}

type dbResetOptions struct {
	Timeout     time.Duration
	Yes         bool
	Seed        bool
	AllowRemote bool
}

func parseDBResetFlags(args []string) (dbResetOptions, error) {
	fs := flag.NewFlagSet("db-reset", flag.ContinueOnError)
	fs.SetOutput(os.Stderr)

	opts := dbResetOptions{Timeout: defaultMigrationTimeout}
	fs.DurationVar(&opts.Timeout, "timeout", defaultMigrationTimeout,
		"Maximum duration to wait for reset operations to complete")
	fs.BoolVar(&opts.Yes, "yes", false, "Skip confirmation prompt")
	fs.BoolVar(&opts.Seed, "seed", false, "Run database seeding after reset completes")
	fs.BoolVar(&opts.AllowRemote, "allow-remote", false,
		"Permit running against database hosts that do not look local")

	if err := fs.Parse(args); err != nil {
		return dbResetOptions{}, err
	}
	if opts.Timeout <= 0 {
		return dbResetOptions{}, errors.New("--timeout must be greater than zero")
	}
	return opts, nil
}

func runDBReset(cmdCtx *commandContext, args []string) error {
	opts, err := parseDBResetFlags(args)
	if err != nil {
		return err
	}

	if guardErr := guardRemoteHost(cmdCtx, opts.AllowRemote, "drop and recreate the public schema"); guardErr != nil {
		return guardErr
	}

	if !opts.Yes {
		target := fmt.Sprintf("database %q on %s:%d",
			cmdCtx.Config.Postgres.Name,
			cmdCtx.Config.Postgres.Host,
			cmdCtx.Config.Postgres.Port)
		if !promptConfirm("Reset " + target + "?") {
			return errors.New("aborted by user")
		}
	}

	return withDatabase(cmdCtx, opts.Timeout, func(ctx context.Context, db *sql.DB) error {
		cmdCtx.Logger.Info("dropping public schema", "database", cmdCtx.Config.Postgres.Name)
		if resetErr := resetDatabase(ctx, db, &cmdCtx.Config.Postgres); resetErr != nil {
			return resetErr
		}

		cmdCtx.Logger.Info("re-running database migrations")
		if migrateErr := bootstrap.RunMigrations(ctx, db, cmdCtx.Logger); migrateErr != nil {
			return fmt.Errorf("run migrations: %w", migrateErr)
		}

		if opts.Seed {
			cmdCtx.Logger.Info("seeding development data after reset")
			if seedErr := devseed.Run(ctx, db, cmdCtx.Logger); seedErr != nil {
				return fmt.Errorf("seed data: %w", seedErr)
			}
		}

		cmdCtx.Logger.Info("database reset completed successfully")
		return nil
	})
}

func withDatabase(
	cmdCtx *commandContext,
	timeout time.Duration,
	f func(context.Context, *sql.DB) error,
) error {
	ctx, stop := signal.NotifyContext(cmdCtx.Ctx, os.Interrupt, syscall.SIGTERM)
	defer stop()

	ctx, cancel := context.WithTimeout(ctx, timeout)
	defer cancel()

	db, err := bootstrap.ConnectDB(cmdCtx.Config.Postgres, cmdCtx.Logger)
	if err != nil {
		return fmt.Errorf("connect db: %w", err)
	}
	defer func() {
		if cerr := db.Close(); cerr != nil {
			cmdCtx.Logger.Warn("db close failed", "error", cerr)
		}
	}()

	return f(ctx, db)
}

func guardRemoteHost(cmdCtx *commandContext, allow bool, action string) error {
	if !isLikelyRemoteHost(cmdCtx.Config.Postgres.Host) {
		return nil
	}
	if !allow {
		return fmt.Errorf(
			"refusing to run against potentially remote database host %q; re-run with --allow-remote if this is intentional",
			cmdCtx.Config.Postgres.Host,
		)
	}
	if !promptConfirm(fmt.Sprintf("Host %q does not look local. This operation will %s. Continue?",
		cmdCtx.Config.Postgres.Host, action)) {
		return errors.New("aborted by user")
	}
	return nil
}

func isLikelyRemoteHost(host string) bool {
	h := strings.ToLower(strings.TrimSpace(host))
	if h == "" {
		return false
	}
	if h == "localhost" || h == "127.0.0.1" || h == "::1" {
		return false
	}
	if strings.HasSuffix(h, ".local") {
		return false
	}
	if ip := net.ParseIP(host); ip != nil {
		return !ip.IsLoopback()
	}
	return true
}

func resetDatabase(ctx context.Context, db *sql.DB, cfg *config.DBConfig) error {
	statements := []string{
		"DROP SCHEMA public CASCADE",
		"CREATE SCHEMA public",
		"GRANT ALL ON SCHEMA public TO public",
	}
	if user := strings.TrimSpace(cfg.User); user != "" && !strings.EqualFold(user, "public") {
		statements = append(statements, "GRANT ALL ON SCHEMA public TO "+quoteIdentifier(user))
	}

	for _, stmt := range statements {
		if _, err := db.ExecContext(ctx, stmt); err != nil {
			return fmt.Errorf("exec %q: %w", stmt, err)
		}
	}
	return nil
}

func quoteIdentifier(s string) string {
	return `"` + strings.ReplaceAll(s, `"`, `""`) + `"`
}
