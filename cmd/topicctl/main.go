// Command topicctl manages campus board topics from the command line.
//
// Usage:
//
//	topicctl [-config path] [-user id|email] [-request-id id] <command> [args]
//
// Topic commands run as the user given by -user:
//
//	create              JSON payload on stdin
//	update <id>         JSON patch on stdin
//	delete <id>
//	get <id>
//	query [-type t] [-status s] [-search q] [-page n] [-limit n]
//	save <id>
//	unsave <id>
//	saved [-page n] [-limit n]
//	history <id> [-limit n]   (admin only)
//
// Bootstrap commands need no -user:
//
//	dept-add -name n -code c
//	dept-list
//	user-add -email e -name n -role r [-dept id]
//
// Exit codes: 0 = success, 1 = error, 2 = usage.
package main

import (
	"context"
	"errors"
	"flag"
	"fmt"
	"io"
	"log"
	"os"
	"os/signal"
	"strings"
	"syscall"

	"github.com/google/uuid"

	"github.com/heartmarshall/campusboard-backend/internal/app"
	"github.com/heartmarshall/campusboard-backend/internal/config"
	"github.com/heartmarshall/campusboard-backend/internal/domain"
	"github.com/heartmarshall/campusboard-backend/internal/service/bookmark"
	"github.com/heartmarshall/campusboard-backend/internal/service/topic"
	"github.com/heartmarshall/campusboard-backend/pkg/ctxutil"
)

var errUsage = errors.New("usage")

type globalFlags struct {
	config    string
	user      string
	requestID string
}

func main() {
	var g globalFlags
	flag.StringVar(&g.config, "config", "", "path to YAML config file (default: $CONFIG_PATH or ./config.yaml)")
	flag.StringVar(&g.user, "user", "", "acting user id or email")
	flag.StringVar(&g.requestID, "request-id", "", "request id attached to logs")
	flag.Usage = func() {
		fmt.Fprintln(os.Stderr, "usage: topicctl [-config path] [-user id|email] [-request-id id] <command> [args]")
		fmt.Fprintln(os.Stderr, "commands: create update delete get query save unsave saved history dept-add dept-list user-add")
		flag.PrintDefaults()
	}
	flag.Parse()

	if flag.NArg() < 1 {
		flag.Usage()
		os.Exit(2)
	}

	path := g.config
	if path == "" {
		path = os.Getenv("CONFIG_PATH")
	}
	cfg, err := config.LoadFrom(path)
	if err != nil {
		log.Fatalf("load config: %v", err)
	}

	ctx, stop := signal.NotifyContext(context.Background(), syscall.SIGINT, syscall.SIGTERM)
	defer stop()

	err = run(ctx, cfg, g, flag.Args(), os.Stdin, os.Stdout)
	switch {
	case err == nil:
	case errors.Is(err, errUsage):
		fmt.Fprintln(os.Stderr, err)
		os.Exit(2)
	default:
		fmt.Fprintln(os.Stderr, "error:", describeError(err))
		os.Exit(1)
	}
}

func run(ctx context.Context, cfg *config.Config, g globalFlags, args []string, stdin io.Reader, stdout io.Writer) error {
	logger := app.NewLogger(cfg.Log)

	a, err := app.New(ctx, cfg, logger)
	if err != nil {
		return err
	}
	defer a.Close()

	if g.requestID != "" {
		ctx = ctxutil.WithRequestID(ctx, g.requestID)
	}

	cmd, rest := args[0], args[1:]
	switch cmd {
	case "dept-add":
		return deptAdd(ctx, a, rest, stdout)
	case "dept-list":
		return deptList(ctx, a, stdout)
	case "user-add":
		return userAdd(ctx, a, rest, stdout)
	}

	if g.user == "" {
		return fmt.Errorf("%w: -user is required for %s", errUsage, cmd)
	}
	u, err := lookupUser(ctx, a, g.user)
	if err != nil {
		return err
	}
	ctx = ctxutil.WithActor(ctx, u.Actor())

	switch cmd {
	case "create":
		in, err := decodeTopicInput(stdin)
		if err != nil {
			return err
		}
		t, err := a.Topics.CreateTopic(ctx, in)
		if err != nil {
			return err
		}
		return writeJSON(stdout, toTopicJSON(t))

	case "update":
		id, err := topicID(rest)
		if err != nil {
			return err
		}
		patch, err := decodeTopicInput(stdin)
		if err != nil {
			return err
		}
		t, err := a.Topics.UpdateTopic(ctx, topic.UpdateTopicInput{TopicID: id, Patch: patch})
		if err != nil {
			return err
		}
		return writeJSON(stdout, toTopicJSON(t))

	case "delete":
		id, err := topicID(rest)
		if err != nil {
			return err
		}
		return a.Topics.DeleteTopic(ctx, topic.DeleteTopicInput{TopicID: id})

	case "get":
		id, err := topicID(rest)
		if err != nil {
			return err
		}
		v, err := a.Topics.GetTopic(ctx, id)
		if err != nil {
			return err
		}
		return writeJSON(stdout, toViewJSON(*v))

	case "query":
		in, err := parseQuery(rest)
		if err != nil {
			return err
		}
		page, err := a.Topics.QueryTopics(ctx, in)
		if err != nil {
			return err
		}
		return writeJSON(stdout, toPageJSON(page))

	case "save", "unsave":
		id, err := topicID(rest)
		if err != nil {
			return err
		}
		if cmd == "save" {
			return a.Bookmarks.Save(ctx, bookmark.SaveInput{TopicID: id})
		}
		return a.Bookmarks.Unsave(ctx, bookmark.SaveInput{TopicID: id})

	case "saved":
		in, err := parseSaved(rest)
		if err != nil {
			return err
		}
		page, err := a.Bookmarks.ListSaved(ctx, in)
		if err != nil {
			return err
		}
		return writeJSON(stdout, toPageJSON(page))

	case "history":
		return history(ctx, a, u, rest, stdout)
	}

	return fmt.Errorf("%w: unknown command %q", errUsage, cmd)
}

func lookupUser(ctx context.Context, a *app.App, ref string) (*domain.User, error) {
	if id, err := uuid.Parse(ref); err == nil {
		return a.Users.GetByID(ctx, id)
	}
	return a.Users.GetByEmail(ctx, strings.ToLower(strings.TrimSpace(ref)))
}

func topicID(args []string) (uuid.UUID, error) {
	if len(args) != 1 {
		return uuid.Nil, fmt.Errorf("%w: expected exactly one topic id", errUsage)
	}
	id, err := uuid.Parse(args[0])
	if err != nil {
		return uuid.Nil, fmt.Errorf("%w: invalid topic id %q", errUsage, args[0])
	}
	return id, nil
}

// optionalInt registers an int flag that stays nil when not given.
type optionalInt struct{ v *int }

func (o *optionalInt) String() string {
	if o.v == nil {
		return ""
	}
	return fmt.Sprint(*o.v)
}

func (o *optionalInt) Set(s string) error {
	var n int
	if _, err := fmt.Sscan(s, &n); err != nil {
		return fmt.Errorf("not an integer: %q", s)
	}
	o.v = &n
	return nil
}

func parseQuery(args []string) (topic.QueryTopicsInput, error) {
	fs := flag.NewFlagSet("query", flag.ContinueOnError)
	var (
		in          topic.QueryTopicsInput
		page, limit optionalInt
	)
	fs.StringVar(&in.Type, "type", "", "topic type or all")
	fs.StringVar(&in.Status, "status", "", "upcoming, ongoing, ended, expired, indefinite or all")
	fs.StringVar(&in.Search, "search", "", "case-insensitive substring of title or description")
	fs.Var(&page, "page", "1-based page number")
	fs.Var(&limit, "limit", "page size")
	if err := fs.Parse(args); err != nil {
		return in, fmt.Errorf("%w: %v", errUsage, err)
	}
	in.Page, in.Limit = page.v, limit.v
	return in, nil
}

func parseSaved(args []string) (bookmark.ListSavedInput, error) {
	fs := flag.NewFlagSet("saved", flag.ContinueOnError)
	var page, limit optionalInt
	fs.Var(&page, "page", "1-based page number")
	fs.Var(&limit, "limit", "page size")
	if err := fs.Parse(args); err != nil {
		return bookmark.ListSavedInput{}, fmt.Errorf("%w: %v", errUsage, err)
	}
	return bookmark.ListSavedInput{Page: page.v, Limit: limit.v}, nil
}

func history(ctx context.Context, a *app.App, u *domain.User, args []string, stdout io.Writer) error {
	fs := flag.NewFlagSet("history", flag.ContinueOnError)
	limit := fs.Int("limit", 50, "maximum number of records")
	if err := fs.Parse(args); err != nil {
		return fmt.Errorf("%w: %v", errUsage, err)
	}
	if !u.Role.IsAdmin() {
		return domain.ErrForbidden
	}
	id, err := topicID(fs.Args())
	if err != nil {
		return err
	}

	records, err := a.Audit.GetByEntity(ctx, domain.EntityTypeTopic, id, *limit)
	if err != nil {
		return err
	}
	out := make([]auditJSON, len(records))
	for i, r := range records {
		out[i] = toAuditJSON(r)
	}
	return writeJSON(stdout, out)
}

func deptAdd(ctx context.Context, a *app.App, args []string, stdout io.Writer) error {
	fs := flag.NewFlagSet("dept-add", flag.ContinueOnError)
	name := fs.String("name", "", "department name")
	code := fs.String("code", "", "short unique code")
	if err := fs.Parse(args); err != nil {
		return fmt.Errorf("%w: %v", errUsage, err)
	}
	if strings.TrimSpace(*name) == "" || strings.TrimSpace(*code) == "" {
		return fmt.Errorf("%w: -name and -code are required", errUsage)
	}
	d, err := a.Departments.Create(ctx, strings.TrimSpace(*name), strings.ToUpper(strings.TrimSpace(*code)))
	if err != nil {
		return err
	}
	return writeJSON(stdout, departmentJSON{ID: d.ID.String(), Name: d.Name, Code: d.Code})
}

func deptList(ctx context.Context, a *app.App, stdout io.Writer) error {
	depts, err := a.Departments.List(ctx)
	if err != nil {
		return err
	}
	out := make([]departmentJSON, len(depts))
	for i, d := range depts {
		out[i] = departmentJSON{ID: d.ID.String(), Name: d.Name, Code: d.Code}
	}
	return writeJSON(stdout, out)
}

func userAdd(ctx context.Context, a *app.App, args []string, stdout io.Writer) error {
	fs := flag.NewFlagSet("user-add", flag.ContinueOnError)
	email := fs.String("email", "", "login email")
	name := fs.String("name", "", "display name")
	role := fs.String("role", string(domain.UserRoleStudent), "student, coordinator or admin")
	dept := fs.String("dept", "", "department id")
	if err := fs.Parse(args); err != nil {
		return fmt.Errorf("%w: %v", errUsage, err)
	}

	u := &domain.User{
		Email: strings.ToLower(strings.TrimSpace(*email)),
		Name:  strings.TrimSpace(*name),
		Role:  domain.UserRole(strings.ToLower(*role)),
	}
	if u.Email == "" || u.Name == "" {
		return fmt.Errorf("%w: -email and -name are required", errUsage)
	}
	if !u.Role.IsValid() {
		return fmt.Errorf("%w: invalid role %q", errUsage, *role)
	}
	if *dept != "" {
		id, err := uuid.Parse(*dept)
		if err != nil {
			return fmt.Errorf("%w: invalid department id %q", errUsage, *dept)
		}
		u.DepartmentID = &id
	}

	created, err := a.Users.Create(ctx, u)
	if err != nil {
		return err
	}
	return writeJSON(stdout, userJSON{
		ID:           created.ID.String(),
		Email:        created.Email,
		Name:         created.Name,
		Role:         string(created.Role),
		DepartmentID: uuidString(created.DepartmentID),
	})
}

// describeError renders validation failures one field per line.
func describeError(err error) string {
	var ve *domain.ValidationError
	if errors.As(err, &ve) {
		var b strings.Builder
		b.WriteString("validation failed")
		for _, fe := range ve.Errors {
			fmt.Fprintf(&b, "\n  %s: %s (%s)", fe.Field, fe.Message, fe.Code)
		}
		return b.String()
	}
	return err.Error()
}
