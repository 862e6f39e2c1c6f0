package main

import (
	"context"
	"fmt"
	"strconv"
	"strings"

	"github.com/preston-bernstein/warlight-go/pkg/warlight"
)

func runToken(ctx context.Context, a *app, args []string) error {
	fs := newFlagSet(a, "token")
	email := fs.String("email", a.cfg.Warlight.Email, "account email")
	password := fs.String("password", a.cfg.Warlight.Password, "account password")
	if err := parseFlags(fs, args); err != nil {
		return err
	}
	if *email == "" {
		return required("email")
	}

	token, err := warlight.GetAPIToken(ctx, a.clientConfig(), *email, *password)
	if err != nil {
		return err
	}
	return a.print(map[string]string{"apiToken": token})
}

func runQuery(ctx context.Context, a *app, args []string) error {
	fs := newFlagSet(a, "query")
	gameID := fs.Int64("game", 0, "game id")
	history := fs.Bool("history", false, "include turn history")
	settings := fs.Bool("settings", false, "include game settings")
	if err := parseFlags(fs, args); err != nil {
		return err
	}
	if *gameID <= 0 {
		return required("game")
	}

	client, err := a.client(ctx)
	if err != nil {
		return err
	}
	feed, err := client.QueryGame(ctx, *gameID, warlight.QueryOptions{History: *history, Settings: *settings})
	if err != nil {
		return err
	}
	var out map[string]any
	if err := json.Unmarshal(feed.Raw, &out); err != nil {
		return err
	}
	return a.print(out)
}

func runCreate(ctx context.Context, a *app, args []string) error {
	fs := newFlagSet(a, "create")
	templateID := fs.Int64("template", 0, "template id")
	name := fs.String("name", "", "game name")
	message := fs.String("message", "", "personal message sent with invites")
	teamSpec := fs.String("teams", "", `team specification, e.g. "[1,2] [3,4]" or "1 2 3"`)
	teamless := fs.Bool("teamless", false, "create without teams when no team has more than one player")
	settingsFile := fs.String("settings", "", "YAML or JSON file with setting overrides")
	var bonuses []warlight.Bonus
	fs.Func("bonus", "bonus override as name=value (repeatable)", func(raw string) error {
		b, err := parseBonus(raw)
		if err != nil {
			return err
		}
		bonuses = append(bonuses, b)
		return nil
	})
	if err := parseFlags(fs, args); err != nil {
		return err
	}
	if *teamSpec == "" {
		return required("teams")
	}

	teams, err := warlight.ParseTeams(*teamSpec)
	if err != nil {
		return usageError{err: err}
	}
	settings, err := loadSettings(*settingsFile)
	if err != nil {
		return err
	}

	client, err := a.client(ctx)
	if err != nil {
		return err
	}
	id, err := client.CreateGame(ctx, warlight.CreateGameRequest{
		TemplateID: *templateID,
		Name:       *name,
		Message:    *message,
		Teams:      teams,
		Teamless:   *teamless,
		Settings:   settings,
		Bonuses:    bonuses,
	})
	if err != nil {
		return err
	}
	return a.print(map[string]int64{"gameID": id})
}

func runDelete(ctx context.Context, a *app, args []string) error {
	fs := newFlagSet(a, "delete")
	gameID := fs.Int64("game", 0, "game id")
	if err := parseFlags(fs, args); err != nil {
		return err
	}
	if *gameID <= 0 {
		return required("game")
	}

	client, err := a.client(ctx)
	if err != nil {
		return err
	}
	if err := client.DeleteGame(ctx, *gameID); err != nil {
		return err
	}
	return a.print(map[string]int64{"deleted": *gameID})
}

func runGameIDs(ctx context.Context, a *app, args []string) error {
	fs := newFlagSet(a, "gameids")
	fs.Usage = func() {
		fmt.Fprintln(fs.Output(), "usage: wlctl gameids <ladder|tournament> <id>")
	}
	if err := parseFlags(fs, args); err != nil {
		return err
	}
	src, err := warlight.ParseGameSource(fs.Args()...)
	if err != nil {
		return err
	}

	client, err := a.client(ctx)
	if err != nil {
		return err
	}
	ids, err := client.GameIDs(ctx, src)
	if err != nil {
		return err
	}
	return a.print(map[string][]int64{"gameIDs": ids})
}

func runValidate(ctx context.Context, a *app, args []string) error {
	fs := newFlagSet(a, "validate")
	token := fs.String("token", "", "invite token")
	templates := fs.String("templates", "", "comma separated template ids")
	if err := parseFlags(fs, args); err != nil {
		return err
	}
	if *token == "" {
		return required("token")
	}
	templateIDs, err := parseIDList(*templates)
	if err != nil {
		return usageError{err: err}
	}

	client, err := a.client(ctx)
	if err != nil {
		return err
	}
	out, err := client.ValidateInviteToken(ctx, *token, templateIDs...)
	if err != nil {
		return err
	}
	return a.print(out)
}

func runMapDetails(ctx context.Context, a *app, args []string) error {
	fs := newFlagSet(a, "mapdetails")
	mapID := fs.Int64("map", 0, "map id")
	commandsFile := fs.String("commands", "", "YAML or JSON file with a list of commands")
	if err := parseFlags(fs, args); err != nil {
		return err
	}
	if *mapID <= 0 {
		return required("map")
	}
	if *commandsFile == "" {
		return required("commands")
	}
	cmds, err := loadMapCommands(*commandsFile)
	if err != nil {
		return err
	}

	client, err := a.client(ctx)
	if err != nil {
		return err
	}
	if err := client.SetMapDetails(ctx, *mapID, cmds...); err != nil {
		return err
	}
	return a.print(map[string]int64{"mapID": *mapID, "commands": int64(len(cmds))})
}

func parseBonus(raw string) (warlight.Bonus, error) {
	name, value, ok := strings.Cut(raw, "=")
	name = strings.TrimSpace(name)
	if !ok || name == "" {
		return warlight.Bonus{}, fmt.Errorf("bonus %q must look like name=value", raw)
	}
	n, err := strconv.Atoi(strings.TrimSpace(value))
	if err != nil {
		return warlight.Bonus{}, fmt.Errorf("bonus %q value must be an integer", raw)
	}
	return warlight.Bonus{Name: name, Value: n}, nil
}

func parseIDList(raw string) ([]int64, error) {
	if strings.TrimSpace(raw) == "" {
		return nil, nil
	}
	parts := strings.Split(raw, ",")
	ids := make([]int64, 0, len(parts))
	for _, part := range parts {
		id, err := strconv.ParseInt(strings.TrimSpace(part), 10, 64)
		if err != nil {
			return nil, fmt.Errorf("template id %q is not an integer", part)
		}
		ids = append(ids, id)
	}
	return ids, nil
}
