package cli

import (
	"bufio"
	"context"
	"fmt"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
)

type fakeExec struct {
	loggedIn bool

	calls []string
	args  [][]string
}

func (f *fakeExec) record(name string, args []string) error {
	f.calls = append(f.calls, name)
	f.args = append(f.args, args)
	return nil
}

func (f *fakeExec) isLoggedIn() bool { return f.loggedIn }

func (f *fakeExec) Register(ctx context.Context, args []string) error {
	f.loggedIn = true
	return f.record("register", args)
}
func (f *fakeExec) Login(ctx context.Context, args []string) error {
	f.loggedIn = true
	return f.record("login", args)
}
func (f *fakeExec) Forgot(ctx context.Context, args []string) error { return f.record("forgot", args) }
func (f *fakeExec) Logout(ctx context.Context, args []string) error {
	f.loggedIn = false
	return f.record("logout", args)
}
func (f *fakeExec) Dashboard(ctx context.Context, args []string) error {
	return f.record("dashboard", args)
}
func (f *fakeExec) Quests(ctx context.Context, args []string) error { return f.record("quests", args) }
func (f *fakeExec) AddQuest(ctx context.Context, args []string) error {
	return f.record("add", args)
}
func (f *fakeExec) AddExamples(ctx context.Context, args []string) error {
	return f.record("examples", args)
}
func (f *fakeExec) Complete(ctx context.Context, args []string) error {
	return f.record("complete", args)
}
func (f *fakeExec) Undo(ctx context.Context, args []string) error   { return f.record("undo", args) }
func (f *fakeExec) Edit(ctx context.Context, args []string) error   { return f.record("edit", args) }
func (f *fakeExec) Delete(ctx context.Context, args []string) error { return f.record("delete", args) }
func (f *fakeExec) Shop(ctx context.Context, args []string) error   { return f.record("shop", args) }
func (f *fakeExec) Buy(ctx context.Context, args []string) error    { return f.record("buy", args) }
func (f *fakeExec) Inventory(ctx context.Context, args []string) error {
	return f.record("inventory", args)
}
func (f *fakeExec) Equip(ctx context.Context, args []string) error { return f.record("equip", args) }
func (f *fakeExec) Unequip(ctx context.Context, args []string) error {
	return f.record("unequip", args)
}
func (f *fakeExec) Achievements(ctx context.Context, args []string) error {
	return f.record("achievements", args)
}
func (f *fakeExec) Leaderboard(ctx context.Context, args []string) error {
	return f.record("leaderboard", args)
}
func (f *fakeExec) Profile(ctx context.Context, args []string) error { return f.record("profile", args) }
func (f *fakeExec) EditProfile(ctx context.Context, args []string) error {
	return f.record("edit-profile", args)
}
func (f *fakeExec) SetAvatar(ctx context.Context, args []string) error {
	return f.record("avatar", args)
}
func (f *fakeExec) ClearAvatar(ctx context.Context, args []string) error {
	return f.record("clear-avatar", args)
}
func (f *fakeExec) Export(ctx context.Context, args []string) error { return f.record("export", args) }
func (f *fakeExec) Import(ctx context.Context, args []string) error { return f.record("import", args) }
func (f *fakeExec) ResetAccount(ctx context.Context, args []string) error {
	return f.record("reset-account", args)
}
func (f *fakeExec) DeleteAccount(ctx context.Context, args []string) error {
	return f.record("delete-account", args)
}
func (f *fakeExec) FactoryReset(ctx context.Context, args []string) error {
	return f.record("factory-reset", args)
}

// capturePrintln swaps printlnFn for a recorder for the duration of the test.
func capturePrintln(t *testing.T) *[]string {
	t.Helper()
	var lines []string
	orig := printlnFn
	printlnFn = func(a ...any) (int, error) {
		lines = append(lines, strings.TrimSuffix(fmt.Sprintln(a...), "\n"))
		return 0, nil
	}
	t.Cleanup(func() { printlnFn = orig })
	return &lines
}

func TestRunREPL_LoginFlowAndCommands(t *testing.T) {
	out := capturePrintln(t)

	input := strings.Join([]string{
		"help",
		"quests",
		"login",
		"help",
		"q active walk",
		"done 2",
		"buy frame_glow",
		"equip frame frame-glow",
		"top",
		"login",
		"foobar",
		"logout",
		"exit",
		"quests",
	}, "\n")

	exec := &fakeExec{}
	runREPL(context.Background(), exec, func() string { return "status" }, bufio.NewReader(strings.NewReader(input)))

	assert.Equal(t, []string{"login", "quests", "complete", "buy", "equip", "leaderboard", "logout"}, exec.calls)
	assert.Equal(t, []string{"active", "walk"}, exec.args[1])
	assert.Equal(t, []string{"2"}, exec.args[2])
	assert.Equal(t, []string{"frame", "frame-glow"}, exec.args[4])

	assert.Contains(t, *out, "Please log in first.")
	assert.Contains(t, *out, "Log out first.")
	assert.Contains(t, *out, "Unknown command: foobar")
	assert.Contains(t, *out, "Bye!")
	assert.Contains(t, *out, "qk status> ")
}

func TestRunREPL_StopsAtEOF(t *testing.T) {
	capturePrintln(t)
	exec := &fakeExec{loggedIn: true}

	runREPL(context.Background(), exec, func() string { return "" }, bufio.NewReader(strings.NewReader("\n\nshop")))

	assert.Equal(t, []string{"shop"}, exec.calls)
}

func TestRunREPL_StopsWhenContextCancelled(t *testing.T) {
	capturePrintln(t)
	ctx, cancel := context.WithCancel(context.Background())
	exec := &cancelExec{fakeExec: fakeExec{loggedIn: true}, cancel: cancel}

	runREPL(ctx, exec, func() string { return "" }, bufio.NewReader(strings.NewReader("shop\nshop\nshop\n")))

	assert.Equal(t, []string{"shop"}, exec.calls)
}

type cancelExec struct {
	fakeExec
	cancel context.CancelFunc
}

func (c *cancelExec) Shop(ctx context.Context, args []string) error {
	c.cancel()
	return c.record("shop", args)
}

func TestHelpText(t *testing.T) {
	out := helpText(false)
	assert.Contains(t, out, "register")
	assert.Contains(t, out, "leaderboard")
	assert.NotContains(t, out, "shop")

	in := helpText(true)
	assert.Contains(t, in, "shop")
	assert.Contains(t, in, "logout")
	assert.NotContains(t, in, "register")
	assert.True(t, strings.HasSuffix(in, "help, exit"))
}

func TestLookup_Aliases(t *testing.T) {
	for alias, name := range map[string]string{"d": "dashboard", "q": "quests", "done": "complete", "inv": "inventory", "ach": "achievements", "top": "leaderboard"} {
		c, ok := lookup(alias)
		if assert.True(t, ok, alias) {
			assert.Equal(t, name, c.names[0])
		}
	}
	_, ok := lookup("nope")
	assert.False(t, ok)
}
