package main

import (
	"bytes"
	"context"
	"os"
	"path/filepath"
	"strconv"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/preston-bernstein/warlight-go/internal/fixture"
	"github.com/preston-bernstein/warlight-go/internal/testutil"
)

type result struct {
	code   int
	stdout string
	stderr string
}

func setupEnv(t *testing.T) *fixture.Server {
	t.Helper()
	api := fixture.New()
	srv := testutil.StartServer(t, api)

	t.Setenv(envFileVar, filepath.Join(t.TempDir(), "none.env"))
	t.Setenv("WARLIGHT_BASE_URL", srv.URL+"/API")
	t.Setenv("WARLIGHT_EMAIL", fixture.Email)
	t.Setenv("WARLIGHT_API_TOKEN", fixture.Token)
	t.Setenv("WARLIGHT_PASSWORD", "")
	t.Setenv("METRICS_ENABLED", "false")
	t.Setenv("METRICS_TEXTFILE", "")
	return api
}

func runCLI(args ...string) result {
	var stdout, stderr bytes.Buffer
	code := run(context.Background(), args, &stdout, &stderr)
	return result{code: code, stdout: stdout.String(), stderr: stderr.String()}
}

func decode(t *testing.T, r result) map[string]any {
	t.Helper()
	var out map[string]any
	testutil.DecodeJSON(t, strings.NewReader(r.stdout), &out)
	return out
}

func itoa(id int64) string { return strconv.FormatInt(id, 10) }

func TestUsage(t *testing.T) {
	r := runCLI()
	assert.Equal(t, exitUsage, r.code)
	assert.Contains(t, r.stderr, "usage: wlctl")
	assert.Contains(t, r.stderr, "mapdetails")

	r = runCLI("help")
	assert.Equal(t, exitOK, r.code)

	r = runCLI("bogus")
	assert.Equal(t, exitUsage, r.code)
	assert.Contains(t, r.stderr, `unknown command "bogus"`)
}

func TestCreateQueryDelete(t *testing.T) {
	api := setupEnv(t)
	settings := testutil.WriteFile(t, "settings.yaml", "Fog: NoFog\nPace: RealTime\n")

	r := runCLI("create", "-template", "12", "-name", "cli game", "-teams", "[1,2] [3,4]",
		"-settings", settings, "-bonus", "Asia=5", "-bonus", "Europe=-2")
	require.Equal(t, exitOK, r.code, r.stderr)
	id := int64(decode(t, r)["gameID"].(float64))

	game, ok := api.Game(id)
	require.True(t, ok)
	assert.Equal(t, "cli game", game.Name)
	assert.Equal(t, "NoFog", game.Settings["Fog"])
	assert.Equal(t, []fixture.Bonus{{BonusName: "Asia", Value: 5}, {BonusName: "Europe", Value: -2}}, game.Bonuses)
	require.Len(t, game.Players, 4)
	assert.Equal(t, game.Players[0].Team, game.Players[1].Team)
	assert.Equal(t, "1", game.Players[2].Team)

	r = runCLI("query", "-game", itoa(id), "-settings")
	require.Equal(t, exitOK, r.code, r.stderr)
	feed := decode(t, r)
	assert.Equal(t, "cli game", feed["name"])
	assert.Contains(t, feed, "settings")

	r = runCLI("delete", "-game", itoa(id))
	require.Equal(t, exitOK, r.code, r.stderr)
	_, ok = api.Game(id)
	assert.False(t, ok)

	r = runCLI("query", "-game", itoa(id))
	assert.Equal(t, exitError, r.code)
	assert.Contains(t, r.stderr, "ServerGameKeyNotFound")
}

func TestCreateTeamless(t *testing.T) {
	api := setupEnv(t)

	r := runCLI("create", "-template", "1", "-name", "ffa", "-teams", "1 2 3", "-teamless")
	require.Equal(t, exitOK, r.code, r.stderr)
	game, _ := api.Game(int64(decode(t, r)["gameID"].(float64)))
	for _, p := range game.Players {
		assert.Equal(t, "None", p.Team)
	}
}

func TestCreateUsageErrors(t *testing.T) {
	api := setupEnv(t)

	assert.Equal(t, exitUsage, runCLI("create", "-template", "1", "-name", "x").code)
	assert.Equal(t, exitUsage, runCLI("create", "-template", "1", "-name", "x", "-teams", "[1,2").code)
	assert.Equal(t, exitUsage, runCLI("create", "-template", "1", "-name", "x", "-teams", "1", "-bonus", "nope").code)
	assert.Equal(t, exitUsage, runCLI("create", "-name", "x", "-teams", "1").code, "missing template is rejected by the client")
	assert.Equal(t, exitUsage, runCLI("create", "-unknown").code)
	assert.Empty(t, api.Requests())
}

func TestGameIDs(t *testing.T) {
	setupEnv(t)

	r := runCLI("gameids", "ladder", "4")
	require.Equal(t, exitOK, r.code, r.stderr)
	ids := decode(t, r)["gameIDs"].([]any)
	assert.Len(t, ids, 1)

	r = runCLI("gameids", "Tournament", "7")
	require.Equal(t, exitOK, r.code, r.stderr)

	r = runCLI("gameids", "ladder")
	assert.Equal(t, exitUsage, r.code)
	assert.Contains(t, r.stderr, "need both source type and id")

	r = runCLI("gameids", "league", "4")
	assert.Equal(t, exitUsage, r.code)
}

func TestValidate(t *testing.T) {
	api := setupEnv(t)

	r := runCLI("validate", "-token", fixture.InviteToken, "-templates", "1, 2")
	require.Equal(t, exitOK, r.code, r.stderr)
	assert.Equal(t, true, decode(t, r)["tokenIsValid"])

	req, _ := api.LastRequest()
	assert.Equal(t, "1,2", req.Query.Get("TemplateIDs"))

	assert.Equal(t, exitUsage, runCLI("validate").code)
	assert.Equal(t, exitUsage, runCLI("validate", "-token", "x", "-templates", "a").code)
}

func TestMapDetails(t *testing.T) {
	api := setupEnv(t)
	file := testutil.WriteFile(t, "commands.yaml", `
- command: setTerritoryName
  id: 1
  name: Alaska
- command: addBonus
  name: North America
  armies: 5
  color: "#ff0000"
`)

	r := runCLI("mapdetails", "-map", "50", "-commands", file)
	require.Equal(t, exitOK, r.code, r.stderr)
	assert.Equal(t, float64(2), decode(t, r)["commands"])

	cmds := api.MapCommands(fixture.MapID)
	require.Len(t, cmds, 2)
	assert.Equal(t, "Alaska", cmds[0]["name"])
	assert.Equal(t, float64(5), cmds[1]["armies"])

	bad := testutil.WriteFile(t, "bad.yaml", "- id: 1\n")
	assert.Equal(t, exitUsage, runCLI("mapdetails", "-map", "50", "-commands", bad).code)
	assert.Equal(t, exitUsage, runCLI("mapdetails", "-map", "50").code)
}

func TestTokenAndPasswordLogin(t *testing.T) {
	setupEnv(t)

	r := runCLI("token", "-password", fixture.Password)
	require.Equal(t, exitOK, r.code, r.stderr)
	assert.Equal(t, fixture.Token, decode(t, r)["apiToken"])

	r = runCLI("token", "-password", "wrong")
	assert.Equal(t, exitError, r.code)

	t.Setenv("WARLIGHT_API_TOKEN", "")
	t.Setenv("WARLIGHT_PASSWORD", fixture.Password)
	r = runCLI("gameids", "ladder", "4")
	require.Equal(t, exitOK, r.code, r.stderr)

	t.Setenv("WARLIGHT_PASSWORD", "")
	r = runCLI("gameids", "ladder", "4")
	assert.Equal(t, exitError, r.code)
	assert.Contains(t, r.stderr, "WARLIGHT_API_TOKEN")
}

func TestDotEnvFileIsLoaded(t *testing.T) {
	api := fixture.New()
	srv := testutil.StartServer(t, api)
	envFile := testutil.WriteFile(t, "test.env", strings.Join([]string{
		"WARLIGHT_BASE_URL=" + srv.URL,
		"WARLIGHT_EMAIL=" + fixture.Email,
		"WARLIGHT_API_TOKEN=" + fixture.Token,
	}, "\n")+"\n")
	t.Setenv(envFileVar, envFile)
	for _, key := range []string{"WARLIGHT_BASE_URL", "WARLIGHT_EMAIL", "WARLIGHT_API_TOKEN"} {
		t.Setenv(key, "")
		os.Unsetenv(key)
	}

	r := runCLI("gameids", "ladder", "4")
	require.Equal(t, exitOK, r.code, r.stderr)
	assert.NotEmpty(t, api.Requests())
}

func TestMetricsTextfileIsWritten(t *testing.T) {
	setupEnv(t)
	path := filepath.Join(t.TempDir(), "wlctl.prom")
	t.Setenv("METRICS_ENABLED", "true")
	t.Setenv("METRICS_TEXTFILE", path)

	r := runCLI("gameids", "ladder", "4")
	require.Equal(t, exitOK, r.code, r.stderr)

	data, err := os.ReadFile(path)
	require.NoError(t, err)
	assert.Contains(t, string(data), `warlight_client_calls_total{operation="game_ids",outcome="ok"} 1`)
}
