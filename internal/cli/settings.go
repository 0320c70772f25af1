package cli

import (
	"context"
	"os"
	"strings"

	"github.com/dmitrijs2005/questkeeper/internal/common"
	"github.com/dmitrijs2005/questkeeper/internal/core"
	"github.com/dmitrijs2005/questkeeper/internal/filex"
	"github.com/dmitrijs2005/questkeeper/internal/saves"
)

// Export writes the save file. Usage: export [path]; the default is the
// standard file name inside the data directory.
func (a *App) Export(ctx context.Context, args []string) error {
	path := strings.Join(args, " ")
	if path == "" {
		p, err := filex.PathIn(a.config.DataDir, saves.FileName)
		if err != nil {
			return a.fail(ctx, err)
		}
		path = p
	}

	raw, err := a.svc.Export()
	if err != nil {
		return a.fail(ctx, err)
	}
	if err := os.WriteFile(path, raw, 0o600); err != nil {
		return a.fail(ctx, err)
	}
	a.notifier.Notify("Save exported.", core.NoticeInfo, path)
	return nil
}

// Import loads a save file over the current document. Usage: import <path>.
func (a *App) Import(ctx context.Context, args []string) error {
	path := strings.Join(args, " ")
	if path == "" {
		var err error
		if path, err = GetSimpleText(a.reader, "Path to save file", a.out); err != nil {
			return err
		}
	}
	raw, err := os.ReadFile(path)
	if err != nil {
		return a.fail(ctx, common.Import("Could not import save file."))
	}
	if err := a.svc.Import(ctx, raw); err != nil {
		return a.fail(ctx, err)
	}
	a.lastQuests = nil
	a.greet(ctx)
	return nil
}

func (a *App) ResetAccount(ctx context.Context, _ []string) error {
	if err := a.svc.ResetAccount(ctx); err != nil {
		return a.fail(ctx, err)
	}
	a.lastQuests = nil
	return nil
}

func (a *App) DeleteAccount(ctx context.Context, _ []string) error {
	if err := a.svc.DeleteAccount(ctx); err != nil {
		return a.fail(ctx, err)
	}
	a.lastQuests = nil
	return nil
}

func (a *App) FactoryReset(ctx context.Context, _ []string) error {
	if err := a.svc.FactoryReset(ctx); err != nil {
		return a.fail(ctx, err)
	}
	a.lastQuests = nil
	return nil
}
