package cli

import (
	"context"
	"io"
	"os"
	"strings"

	"github.com/dmitrijs2005/questkeeper/internal/avatar"
	"github.com/dmitrijs2005/questkeeper/internal/common"
)

func (a *App) Achievements(ctx context.Context, _ []string) error {
	list, err := a.svc.Achievements()
	if err != nil {
		return a.fail(ctx, err)
	}
	a.render.Achievements(list)
	return nil
}

func (a *App) Leaderboard(ctx context.Context, _ []string) error {
	a.render.Leaderboard(a.svc.Leaderboard())
	return nil
}

func (a *App) Profile(ctx context.Context, _ []string) error {
	u, ok := a.svc.CurrentUser()
	if !ok {
		return a.fail(ctx, common.State("You are not logged in."))
	}
	a.render.Profile(u)
	return nil
}

// EditProfile prompts for a new username and bio. An empty username keeps
// the current one.
func (a *App) EditProfile(ctx context.Context, _ []string) error {
	u, ok := a.svc.CurrentUser()
	if !ok {
		return a.fail(ctx, common.State("You are not logged in."))
	}
	name, err := GetSimpleText(a.reader, "Username ["+u.Username+"]", a.out)
	if err != nil {
		return err
	}
	if name == "" {
		name = u.Username
	}
	bio, err := GetMultiline(a.reader, "Bio (max 140 characters)", a.out)
	if err != nil {
		return err
	}
	if err := a.svc.UpdateProfile(ctx, name, bio); err != nil {
		return a.fail(ctx, err)
	}
	return nil
}

// SetAvatar reads an image file. Usage: avatar <path>.
func (a *App) SetAvatar(ctx context.Context, args []string) error {
	path := strings.Join(args, " ")
	if path == "" {
		var err error
		if path, err = GetSimpleText(a.reader, "Path to a PNG, JPEG, GIF, WebP or BMP image", a.out); err != nil {
			return err
		}
	}

	f, err := os.Open(path)
	if err != nil {
		return a.fail(ctx, common.Validation("Could not read %s.", path))
	}
	defer f.Close()

	// one byte over the limit is enough for the pipeline to reject it
	raw, err := io.ReadAll(io.LimitReader(f, avatar.MaxInputBytes+1))
	if err != nil {
		return a.fail(ctx, common.Validation("Could not read %s.", path))
	}

	if err := a.svc.SetAvatar(ctx, raw); err != nil {
		return a.fail(ctx, err)
	}
	return nil
}

func (a *App) ClearAvatar(ctx context.Context, _ []string) error {
	if err := a.svc.ClearAvatar(ctx); err != nil {
		return a.fail(ctx, err)
	}
	return nil
}
