// Command charmss-admin is a CLI client for the Charmss admin backend.
package main

import (
	"context"
	"encoding/json"
	"errors"
	"flag"
	"fmt"
	"net/http"
	"os"
	"time"

	"github.com/fatih/color"
	"go.uber.org/zap"

	"github.com/charmss/admin-client/internal/api"
	"github.com/charmss/admin-client/internal/config"
	"github.com/charmss/admin-client/internal/guard"
	"github.com/charmss/admin-client/internal/model"
	"github.com/charmss/admin-client/internal/output"
	"github.com/charmss/admin-client/internal/service"
	"github.com/charmss/admin-client/internal/session"
)

var (
	version   = "dev"
	buildDate = "unknown"
)

type app struct {
	sessions   *session.Store
	auth       service.AuthService
	performers service.PerformerService
	guard      *guard.Guard
}

// stderrNavigator surfaces guard redirect intents on the terminal.
type stderrNavigator struct{}

func (stderrNavigator) NavigateTo(route string) {
	fmt.Fprintf(os.Stderr, "-> %s\n", route)
}

func buildApp(logger *zap.Logger) (*app, error) {
	cfg, err := config.Load()
	if err != nil {
		return nil, err
	}

	var sessions *session.Store
	client, err := api.New(api.Config{
		BaseURL:         cfg.BaseURL,
		SendEmptyBearer: cfg.SendEmptyBearer,
		HTTPClient:      &http.Client{Timeout: cfg.HTTPTimeout},
	}, func() string {
		if sessions == nil {
			return ""
		}
		return sessions.State().Credential
	}, logger)
	if err != nil {
		return nil, err
	}
	sessions = session.New(session.NewFileStore(), client, cfg.OAuthProviders, logger)

	authSvc := service.NewAuthService(client, sessions, logger)
	perfSvc := service.NewPerformerService(client, logger)
	g := guard.New(sessions, authSvc, stderrNavigator{}, logger)

	return &app{sessions: sessions, auth: authSvc, performers: perfSvc, guard: g}, nil
}

func usage() {
	fmt.Fprintf(os.Stderr, `charmss-admin
Usage:
  charmss-admin <cmd> [args]

Commands:
  version
  login      -user-id <external id> -provider <google|twitter> [-role admin]
  logout
  whoami
  performers [-page N] [-limit N] [-sort field] [-order asc|desc] [-search term] [-status st]
  profile    -id <performer id>
  albums     -id <performer profile id>

Configuration via environment (or .env): CHARMSS_API_BASE_URL (required),
CHARMSS_SEND_EMPTY_BEARER, CHARMSS_HTTP_TIMEOUT, CHARMSS_OAUTH_PROVIDERS.
`)
	os.Exit(2)
}

func printJSON(v any) {
	enc := json.NewEncoder(os.Stdout)
	enc.SetIndent("", "  ")
	_ = enc.Encode(v)
}

func fail(err error) {
	fmt.Fprintln(os.Stderr, color.RedString("error:"), err)
	os.Exit(1)
}

// requireView routes an authenticated command through the guard, mirroring
// the dashboard's per-navigation session check.
func (a *app) requireView(ctx context.Context, path string) {
	if a.guard.Check(ctx, guard.Route{Path: path}) != guard.ShowView {
		fail(errors.New("login required"))
	}
}

func buildListQuery(page, limit int, sort, order, search, status string) model.ListQuery {
	dir := model.SortAsc
	if order == string(model.SortDesc) {
		dir = model.SortDesc
	}
	return model.ListQuery{
		Page:    page,
		Limit:   limit,
		OrderBy: sort,
		Order:   dir,
		Search:  search,
		Status:  model.ParseStatus(status),
	}
}

func main() {
	flag.Usage = usage
	flag.Parse()
	if flag.NArg() < 1 {
		usage()
	}
	cmd := flag.Arg(0)

	if cmd == "version" {
		fmt.Printf("charmss-admin %s (%s)\n", version, buildDate)
		return
	}

	logger, _ := zap.NewProduction()
	defer func() { _ = logger.Sync() }()

	ctx, cancel := context.WithTimeout(context.Background(), 60*time.Second)
	defer cancel()

	a, err := buildApp(logger)
	if err != nil {
		fail(err)
	}

	switch cmd {

	case "login":
		fs := flag.NewFlagSet("login", flag.ExitOnError)
		userID := fs.String("user-id", "", "external user id from the provider redirect")
		provider := fs.String("provider", "", "oauth provider")
		role := fs.String("role", "admin", "requested role")
		_ = fs.Parse(flag.Args()[1:])
		if *userID == "" || *provider == "" {
			fmt.Fprintln(os.Stderr, "need -user-id and -provider")
			os.Exit(1)
		}

		route := guard.Route{Path: guard.CallbackRoute, Callback: &guard.Callback{
			ExternalUserID: *userID,
			Provider:       *provider,
			Role:           *role,
		}}
		if a.guard.Check(ctx, route) != guard.ShowView {
			fail(errors.New("callback validation failed"))
		}
		st := a.sessions.State()
		fmt.Println("ok", st.User.Identity.ID)

	case "logout":
		a.auth.Logout(ctx)
		fmt.Println("ok")

	case "whoami":
		a.requireView(ctx, "/account")
		printJSON(a.sessions.State().User)

	case "performers":
		fs := flag.NewFlagSet("performers", flag.ExitOnError)
		page := fs.Int("page", 1, "page (1-indexed)")
		limit := fs.Int("limit", 10, "page size")
		sort := fs.String("sort", "", "order-by field")
		order := fs.String("order", "asc", "asc|desc")
		search := fs.String("search", "", "free-text search over names/email")
		status := fs.String("status", "all", "status filter")
		_ = fs.Parse(flag.Args()[1:])

		a.requireView(ctx, "/performers")
		pageOut, err := a.performers.FetchPage(ctx, buildListQuery(*page, *limit, *sort, *order, *search, *status))
		if err != nil {
			fail(err)
		}
		output.WritePerformers(os.Stdout, pageOut)

	case "profile":
		fs := flag.NewFlagSet("profile", flag.ExitOnError)
		id := fs.String("id", "", "performer id")
		_ = fs.Parse(flag.Args()[1:])
		if *id == "" {
			fmt.Fprintln(os.Stderr, "need -id")
			os.Exit(1)
		}

		a.requireView(ctx, "/performers/"+*id)
		prof, err := a.performers.Profile(ctx, *id)
		if err != nil {
			fail(err)
		}
		printJSON(prof)

	case "albums":
		fs := flag.NewFlagSet("albums", flag.ExitOnError)
		id := fs.String("id", "", "performer profile id")
		_ = fs.Parse(flag.Args()[1:])
		if *id == "" {
			fmt.Fprintln(os.Stderr, "need -id")
			os.Exit(1)
		}

		a.requireView(ctx, "/performers/"+*id+"/albums")
		albums, err := a.performers.Albums(ctx, *id)
		if err != nil {
			fail(err)
		}
		output.WriteAlbums(os.Stdout, albums)

	default:
		usage()
	}
}
