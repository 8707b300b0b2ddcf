package client

import (
	"context"
	"errors"
	"fmt"
	"io"
	"os"
	"sort"
	"strconv"
	"strings"
	"text/tabwriter"

	"github.com/MKhiriev/go-novel-hub/internal/adapter"
	"github.com/MKhiriev/go-novel-hub/internal/app"
	"github.com/MKhiriev/go-novel-hub/internal/logger"
	"github.com/MKhiriev/go-novel-hub/models"
)

var (
	ErrUnknownCommand = errors.New("unknown command")
	ErrUsage          = errors.New("wrong arguments")
)

type command struct {
	usage   string
	minArgs int
	auth    bool
	run     func(ctx context.Context, args []string) error
}

// App runs a single CLI command against the server.
type App struct {
	api     adapter.NovelAPI
	session Session

	out          io.Writer
	readPassword PasswordReader
	readFile     func(name string) ([]byte, error)
	build        models.BuildInfo

	commands map[string]command

	logger *logger.Logger
}

func NewApp(api adapter.NovelAPI, session Session, out io.Writer, readPassword PasswordReader, build models.BuildInfo, logger *logger.Logger) *App {
	a := &App{
		api:          api,
		session:      session,
		out:          out,
		readPassword: readPassword,
		readFile:     os.ReadFile,
		build:        build,
		logger:       logger,
	}

	a.commands = map[string]command{
		"register":   {usage: "register <username> <email>", minArgs: 2, run: a.register},
		"login":      {usage: "login <username>", minArgs: 1, run: a.login},
		"user":       {usage: "user <id>", minArgs: 1, run: a.user},
		"email":      {usage: "email <new email>", minArgs: 1, auth: true, run: a.changeEmail},
		"passwd":     {usage: "passwd", auth: true, run: a.changePassword},
		"unregister": {usage: "unregister", auth: true, run: a.unregister},

		"novels": {usage: "novels [user id]", run: a.novels},
		"novel":  {usage: "novel <id>", minArgs: 1, run: a.novel},
		"search": {usage: "search <title>", minArgs: 1, run: a.search},
		"upload": {usage: "upload <title> <content file> [description]", minArgs: 2, auth: true, run: a.upload},
		"update": {usage: "update <id> <title> <content file> [description]", minArgs: 3, auth: true, run: a.update},
		"delete": {usage: "delete <id>", minArgs: 1, auth: true, run: a.deleteNovel},

		"like":     {usage: "like <id>", minArgs: 1, auth: true, run: a.like},
		"likes":    {usage: "likes <id>", minArgs: 1, run: a.likes},
		"comment":  {usage: "comment <id> <text>", minArgs: 2, auth: true, run: a.comment},
		"comments": {usage: "comments <id>", minArgs: 1, run: a.comments},
		"wish":     {usage: "wish <id>", minArgs: 1, auth: true, run: a.wish},
		"unwish":   {usage: "unwish <id>", minArgs: 1, auth: true, run: a.unwish},
		"wishlist": {usage: "wishlist [user id]", run: a.wishlist},

		"version": {usage: "version", run: a.version},
	}

	return a
}

// Run executes the command named by args[0].
func (a *App) Run(ctx context.Context, args []string) error {
	if len(args) == 0 {
		a.printUsage()
		return ErrUsage
	}

	name, rest := args[0], args[1:]
	cmd, ok := a.commands[name]
	if !ok {
		a.printUsage()
		return fmt.Errorf("%w: %q", ErrUnknownCommand, name)
	}
	if len(rest) < cmd.minArgs {
		return fmt.Errorf("%w: usage: %s", ErrUsage, cmd.usage)
	}
	if cmd.auth && !a.session.Authenticated() {
		return fmt.Errorf("%s: %w", app.MsgLoginRequired, ErrNoSession)
	}

	a.logger.Debug().Str("command", name).Int64("user_id", a.session.UserID).Msg("running command")

	if err := cmd.run(ctx, rest); err != nil {
		return describeError(err)
	}
	return nil
}

func (a *App) printUsage() {
	names := make([]string, 0, len(a.commands))
	for name := range a.commands {
		names = append(names, name)
	}
	sort.Strings(names)

	fmt.Fprintln(a.out, "commands:")
	for _, name := range names {
		fmt.Fprintf(a.out, "  %s\n", a.commands[name].usage)
	}
}

// describeError prefixes err with the user-facing message of its kind.
func describeError(err error) error {
	var msg string
	switch {
	case errors.Is(err, adapter.ErrBadRequest):
		msg = app.MsgInvalidDataProvided
	case errors.Is(err, adapter.ErrUnauthorized):
		msg = app.MsgLoginRequired
	case errors.Is(err, adapter.ErrForbidden):
		msg = app.MsgAccessDenied
	case errors.Is(err, adapter.ErrNotFound):
		msg = app.MsgNotFound
	case errors.Is(err, adapter.ErrConflict):
		msg = app.MsgAlreadyExists
	case errors.Is(err, adapter.ErrInternalServerError), errors.Is(err, adapter.ErrBadGateway):
		msg = app.MsgInternalServerError
	default:
		return err
	}

	return fmt.Errorf("%s: %w", msg, err)
}

func parseID(raw string) (int64, error) {
	id, err := strconv.ParseInt(raw, 10, 64)
	if err != nil || id <= 0 {
		return 0, fmt.Errorf("%w: invalid id %q", ErrUsage, raw)
	}
	return id, nil
}

// optionalUserID returns the id in args or, when absent, the session user.
func (a *App) optionalUserID(args []string) (int64, error) {
	if len(args) > 0 {
		return parseID(args[0])
	}
	if !a.session.Authenticated() {
		return 0, fmt.Errorf("%w: user id is required without a session", ErrUsage)
	}
	return a.session.UserID, nil
}

func (a *App) register(ctx context.Context, args []string) error {
	password, err := a.readPassword("Password: ")
	if err != nil {
		return err
	}

	id, err := a.api.Register(ctx, models.User{Username: args[0], Email: args[1], Password: password})
	if err != nil {
		return err
	}

	fmt.Fprintf(a.out, "User created successfully, id %d\n", id)
	return nil
}

// login prints the token so it can be passed to later invocations.
func (a *App) login(ctx context.Context, args []string) error {
	password, err := a.readPassword("Password: ")
	if err != nil {
		return err
	}

	token, err := a.api.Login(ctx, models.Credentials{Username: args[0], Password: password})
	if err != nil {
		if errors.Is(err, adapter.ErrUnauthorized) {
			return fmt.Errorf("%s: %w", app.MsgInvalidLoginPassword, err)
		}
		return err
	}
	a.session = sessionFromToken(token)

	fmt.Fprintf(a.out, "Logged in as user %d\n", a.session.UserID)
	fmt.Fprintf(a.out, "export NOVEL_TOKEN=%s\n", a.session.Token)
	return nil
}

func (a *App) user(ctx context.Context, args []string) error {
	id, err := parseID(args[0])
	if err != nil {
		return err
	}

	user, err := a.api.GetUser(ctx, id)
	if err != nil {
		return err
	}

	fmt.Fprintf(a.out, "id: %d\nusername: %s\nemail: %s\n", user.ID, user.Username, user.Email)
	return nil
}

func (a *App) changeEmail(ctx context.Context, args []string) error {
	email := args[0]
	if err := a.api.UpdateUser(ctx, a.session.Token, models.UserUpdate{ID: a.session.UserID, Email: &email}); err != nil {
		return err
	}

	fmt.Fprintln(a.out, "Profile updated successfully")
	return nil
}

func (a *App) changePassword(ctx context.Context, _ []string) error {
	password, err := a.readPassword("New password: ")
	if err != nil {
		return err
	}

	if err = a.api.UpdateUser(ctx, a.session.Token, models.UserUpdate{ID: a.session.UserID, Password: &password}); err != nil {
		return err
	}

	fmt.Fprintln(a.out, "Profile updated successfully")
	return nil
}

func (a *App) unregister(ctx context.Context, _ []string) error {
	if err := a.api.DeleteUser(ctx, a.session.Token, a.session.UserID); err != nil {
		return err
	}

	fmt.Fprintln(a.out, "User deleted")
	return nil
}

func (a *App) novels(ctx context.Context, args []string) error {
	var (
		novels []models.Novel
		err    error
	)
	if len(args) > 0 {
		userID, parseErr := parseID(args[0])
		if parseErr != nil {
			return parseErr
		}
		novels, err = a.api.ListUserNovels(ctx, userID)
	} else {
		novels, err = a.api.ListNovels(ctx)
	}
	if err != nil {
		return err
	}

	return a.printNovels(novels)
}

func (a *App) novel(ctx context.Context, args []string) error {
	id, err := parseID(args[0])
	if err != nil {
		return err
	}

	novel, err := a.api.GetNovel(ctx, id)
	if err != nil {
		return err
	}

	fmt.Fprintf(a.out, "%s (id %d, owner %d)\n", novel.Title, novel.ID, novel.UserID)
	if novel.Description != "" {
		fmt.Fprintf(a.out, "%s\n", novel.Description)
	}
	fmt.Fprintf(a.out, "\n%s\n", novel.Content)
	return nil
}

func (a *App) search(ctx context.Context, args []string) error {
	novels, err := a.api.SearchNovels(ctx, strings.Join(args, " "))
	if err != nil {
		return err
	}

	return a.printNovels(novels)
}

func (a *App) upload(ctx context.Context, args []string) error {
	content, err := a.readFile(args[1])
	if err != nil {
		return fmt.Errorf("error reading content file: %w", err)
	}

	novel := models.Novel{
		Title:       args[0],
		Content:     string(content),
		Description: strings.Join(args[2:], " "),
	}
	id, err := a.api.UploadNovel(ctx, a.session.Token, novel)
	if err != nil {
		return err
	}

	fmt.Fprintf(a.out, "Novel uploaded successfully, id %d\n", id)
	return nil
}

func (a *App) update(ctx context.Context, args []string) error {
	id, err := parseID(args[0])
	if err != nil {
		return err
	}

	content, err := a.readFile(args[2])
	if err != nil {
		return fmt.Errorf("error reading content file: %w", err)
	}

	update := models.NovelUpdate{
		ID:          id,
		Title:       args[1],
		Content:     string(content),
		Description: strings.Join(args[3:], " "),
	}
	if err = a.api.UpdateNovel(ctx, a.session.Token, update); err != nil {
		return err
	}

	fmt.Fprintln(a.out, "Novel updated successfully")
	return nil
}

func (a *App) deleteNovel(ctx context.Context, args []string) error {
	id, err := parseID(args[0])
	if err != nil {
		return err
	}

	if err = a.api.DeleteNovel(ctx, a.session.Token, id); err != nil {
		return err
	}

	fmt.Fprintln(a.out, "Novel deleted successfully")
	return nil
}

func (a *App) like(ctx context.Context, args []string) error {
	id, err := parseID(args[0])
	if err != nil {
		return err
	}

	if err = a.api.LikeNovel(ctx, a.session.Token, id); err != nil {
		return err
	}

	fmt.Fprintln(a.out, "Liked the novel")
	return nil
}

func (a *App) likes(ctx context.Context, args []string) error {
	id, err := parseID(args[0])
	if err != nil {
		return err
	}

	count, err := a.api.CountLikes(ctx, id)
	if err != nil {
		return err
	}

	fmt.Fprintf(a.out, "%d\n", count)
	return nil
}

func (a *App) comment(ctx context.Context, args []string) error {
	id, err := parseID(args[0])
	if err != nil {
		return err
	}

	if err = a.api.CommentNovel(ctx, a.session.Token, id, strings.Join(args[1:], " ")); err != nil {
		return err
	}

	fmt.Fprintln(a.out, "Comment added")
	return nil
}

func (a *App) comments(ctx context.Context, args []string) error {
	id, err := parseID(args[0])
	if err != nil {
		return err
	}

	comments, err := a.api.ListComments(ctx, id)
	if err != nil {
		return err
	}

	for _, c := range comments {
		fmt.Fprintf(a.out, "[user %d] %s\n", c.UserID, c.Text)
	}
	return nil
}

func (a *App) wish(ctx context.Context, args []string) error {
	id, err := parseID(args[0])
	if err != nil {
		return err
	}

	if err = a.api.AddToWishlist(ctx, a.session.Token, id); err != nil {
		return err
	}

	fmt.Fprintln(a.out, "Added to wishlist")
	return nil
}

func (a *App) unwish(ctx context.Context, args []string) error {
	id, err := parseID(args[0])
	if err != nil {
		return err
	}

	if err = a.api.RemoveFromWishlist(ctx, a.session.Token, id); err != nil {
		return err
	}

	fmt.Fprintln(a.out, "Novel removed from wishlist")
	return nil
}

func (a *App) wishlist(ctx context.Context, args []string) error {
	userID, err := a.optionalUserID(args)
	if err != nil {
		return err
	}

	novels, err := a.api.ListWishlist(ctx, userID)
	if err != nil {
		return err
	}

	return a.printNovels(novels)
}

func (a *App) version(ctx context.Context, _ []string) error {
	version, err := a.api.Version(ctx)
	if err != nil {
		return err
	}

	fmt.Fprintf(a.out, "Server version: %s\n%s\n", version, a.build)
	return nil
}

func (a *App) printNovels(novels []models.Novel) error {
	if len(novels) == 0 {
		fmt.Fprintln(a.out, "no novels found")
		return nil
	}

	tw := tabwriter.NewWriter(a.out, 0, 4, 2, ' ', 0)
	fmt.Fprintln(tw, "ID\tTITLE\tOWNER\tDESCRIPTION")
	for _, n := range novels {
		fmt.Fprintf(tw, "%d\t%s\t%d\t%s\n", n.ID, n.Title, n.UserID, n.Description)
	}
	return tw.Flush()
}
