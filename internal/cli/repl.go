package cli

import (
	"bufio"
	"context"
	"fmt"
	"strings"
)

// printlnFn is a test seam for user-facing output. In tests, replace it with a stub.
var printlnFn = fmt.Println

// execIface defines the command surface the REPL dispatches to. The real
// App satisfies it; tests provide a lightweight stub. Every handler gets
// the words typed after the command.
type execIface interface {
	isLoggedIn() bool

	Register(ctx context.Context, args []string) error
	Login(ctx context.Context, args []string) error
	Forgot(ctx context.Context, args []string) error
	Logout(ctx context.Context, args []string) error

	Dashboard(ctx context.Context, args []string) error
	Quests(ctx context.Context, args []string) error
	AddQuest(ctx context.Context, args []string) error
	AddExamples(ctx context.Context, args []string) error
	Complete(ctx context.Context, args []string) error
	Undo(ctx context.Context, args []string) error
	Edit(ctx context.Context, args []string) error
	Delete(ctx context.Context, args []string) error

	Shop(ctx context.Context, args []string) error
	Buy(ctx context.Context, args []string) error
	Inventory(ctx context.Context, args []string) error
	Equip(ctx context.Context, args []string) error
	Unequip(ctx context.Context, args []string) error

	Achievements(ctx context.Context, args []string) error
	Leaderboard(ctx context.Context, args []string) error
	Profile(ctx context.Context, args []string) error
	EditProfile(ctx context.Context, args []string) error
	SetAvatar(ctx context.Context, args []string) error
	ClearAvatar(ctx context.Context, args []string) error

	Export(ctx context.Context, args []string) error
	Import(ctx context.Context, args []string) error
	ResetAccount(ctx context.Context, args []string) error
	DeleteAccount(ctx context.Context, args []string) error
	FactoryReset(ctx context.Context, args []string) error
}

// availability says when a command may run.
type availability int

const (
	always availability = iota
	signedOutOnly
	signedInOnly
)

type command struct {
	names []string
	when  availability
	run   func(e execIface, ctx context.Context, args []string) error
}

var commands = []command{
	{[]string{"register"}, signedOutOnly, execIface.Register},
	{[]string{"login"}, signedOutOnly, execIface.Login},
	{[]string{"forgot"}, signedOutOnly, execIface.Forgot},
	{[]string{"leaderboard", "top"}, always, execIface.Leaderboard},
	{[]string{"import"}, always, execIface.Import},
	{[]string{"factory-reset"}, always, execIface.FactoryReset},

	{[]string{"dashboard", "d"}, signedInOnly, execIface.Dashboard},
	{[]string{"quests", "q"}, signedInOnly, execIface.Quests},
	{[]string{"add"}, signedInOnly, execIface.AddQuest},
	{[]string{"examples"}, signedInOnly, execIface.AddExamples},
	{[]string{"complete", "done"}, signedInOnly, execIface.Complete},
	{[]string{"undo"}, signedInOnly, execIface.Undo},
	{[]string{"edit"}, signedInOnly, execIface.Edit},
	{[]string{"delete"}, signedInOnly, execIface.Delete},
	{[]string{"shop"}, signedInOnly, execIface.Shop},
	{[]string{"buy"}, signedInOnly, execIface.Buy},
	{[]string{"inventory", "inv"}, signedInOnly, execIface.Inventory},
	{[]string{"equip"}, signedInOnly, execIface.Equip},
	{[]string{"unequip"}, signedInOnly, execIface.Unequip},
	{[]string{"achievements", "ach"}, signedInOnly, execIface.Achievements},
	{[]string{"profile"}, signedInOnly, execIface.Profile},
	{[]string{"edit-profile"}, signedInOnly, execIface.EditProfile},
	{[]string{"avatar"}, signedInOnly, execIface.SetAvatar},
	{[]string{"clear-avatar"}, signedInOnly, execIface.ClearAvatar},
	{[]string{"export"}, signedInOnly, execIface.Export},
	{[]string{"reset-account"}, signedInOnly, execIface.ResetAccount},
	{[]string{"delete-account"}, signedInOnly, execIface.DeleteAccount},
	{[]string{"logout"}, signedInOnly, execIface.Logout},
}

func lookup(name string) (command, bool) {
	for _, c := range commands {
		for _, n := range c.names {
			if n == name {
				return c, true
			}
		}
	}
	return command{}, false
}

func (c command) allowed(loggedIn bool) bool {
	switch c.when {
	case signedOutOnly:
		return !loggedIn
	case signedInOnly:
		return loggedIn
	}
	return true
}

func helpText(loggedIn bool) string {
	var names []string
	for _, c := range commands {
		if c.allowed(loggedIn) {
			names = append(names, c.names[0])
		}
	}
	return "Available commands: " + strings.Join(append(names, "help", "exit"), ", ")
}

// runREPL starts a simple read–eval–print loop for the QuestKeeper CLI.
//
// It reads a line from reader, parses the first token as the command and
// dispatches to methods on 'a' with the remaining tokens. Unknown commands
// are reported back to the user, as are signed-in commands issued while
// signed out. The loop exits on EOF or when the user types "exit" or
// "quit".
//
// Signed out, the user can register, login, recover a password (forgot),
// look at the device leaderboard, import a save or factory-reset. Signed
// in, everything but register, login and forgot is available.
//
// Errors returned by command handlers are ignored here; handlers report
// their own errors. The reader is shared with prompts issued by handlers.
func runREPL(ctx context.Context, a execIface, statusFn func() string, reader *bufio.Reader) {
	for {
		printlnFn(fmt.Sprintf("qk %s> ", statusFn()))
		line, err := readLine(reader)
		if err != nil {
			return
		}
		parts := strings.Fields(line)
		if len(parts) == 0 {
			continue
		}
		cmd, args := parts[0], parts[1:]

		switch cmd {
		case "help":
			printlnFn(helpText(a.isLoggedIn()))
			continue
		case "exit", "quit":
			printlnFn("Bye!")
			return
		}

		c, ok := lookup(cmd)
		if !ok {
			printlnFn("Unknown command:", cmd)
			continue
		}
		if !c.allowed(a.isLoggedIn()) {
			if c.when == signedInOnly {
				printlnFn("Please log in first.")
			} else {
				printlnFn("Log out first.")
			}
			continue
		}
		_ = c.run(a, ctx, args)

		if ctx.Err() != nil {
			return
		}
	}
}
