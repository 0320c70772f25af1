package cli

import (
	"context"

	"github.com/dmitrijs2005/questkeeper/internal/common"
	"github.com/dmitrijs2005/questkeeper/internal/economy"
)

func (a *App) Shop(ctx context.Context, _ []string) error {
	items, err := a.svc.Shop()
	if err != nil {
		return a.fail(ctx, err)
	}
	u, _ := a.svc.CurrentUser()
	a.render.Shop(items, u.Coins)
	return nil
}

// Buy purchases a catalog item. Usage: buy <item id>.
func (a *App) Buy(ctx context.Context, args []string) error {
	if len(args) == 0 {
		return a.fail(ctx, common.Validation("Usage: buy <item id> (see 'shop')"))
	}
	if _, err := a.svc.Purchase(ctx, args[0]); err != nil {
		return a.fail(ctx, err)
	}
	return nil
}

func (a *App) Inventory(ctx context.Context, _ []string) error {
	items, err := a.svc.Inventory()
	if err != nil {
		return a.fail(ctx, err)
	}
	a.render.Inventory(items)
	return nil
}

// Equip usage: equip <frame|theme> <key>.
func (a *App) Equip(ctx context.Context, args []string) error {
	if len(args) < 2 {
		return a.fail(ctx, common.Validation("Usage: equip <frame|theme> <key> (see 'inventory')"))
	}
	kind, err := economy.ParseKind(args[0])
	if err != nil {
		return a.fail(ctx, err)
	}
	if err := a.svc.Equip(ctx, kind, args[1]); err != nil {
		return a.fail(ctx, err)
	}
	return nil
}

// Unequip usage: unequip <frame|theme>.
func (a *App) Unequip(ctx context.Context, args []string) error {
	if len(args) < 1 {
		return a.fail(ctx, common.Validation("Usage: unequip <frame|theme>"))
	}
	kind, err := economy.ParseKind(args[0])
	if err != nil {
		return a.fail(ctx, err)
	}
	if err := a.svc.Unequip(ctx, kind); err != nil {
		return a.fail(ctx, err)
	}
	return nil
}
