package cli

import (
	"context"
	"fmt"
	"strconv"
	"strings"

	"github.com/dmitrijs2005/questkeeper/internal/common"
	"github.com/dmitrijs2005/questkeeper/internal/models"
	"github.com/dmitrijs2005/questkeeper/internal/progression"
)

var difficulties = []string{models.DifficultyEasy, models.DifficultyMedium, models.DifficultyHard, models.DifficultyEpic}

func (a *App) Dashboard(ctx context.Context, _ []string) error {
	d, err := a.svc.Dashboard()
	if err != nil {
		return a.fail(ctx, err)
	}
	a.render.Dashboard(d)
	return nil
}

// Quests lists quests. Usage: quests [all|active|completed] [search words].
func (a *App) Quests(ctx context.Context, args []string) error {
	filter := progression.FilterAll
	if len(args) > 0 {
		switch args[0] {
		case progression.FilterAll, progression.FilterActive, progression.FilterCompleted:
			filter, args = args[0], args[1:]
		}
	}

	list, err := a.svc.Quests(filter, strings.Join(args, " "))
	if err != nil {
		return a.fail(ctx, err)
	}
	a.lastQuests = a.lastQuests[:0]
	for _, q := range list {
		a.lastQuests = append(a.lastQuests, q.ID)
	}
	a.render.Quests(list)
	return nil
}

// AddQuest prompts for a new quest. Words after the command become the
// title.
func (a *App) AddQuest(ctx context.Context, args []string) error {
	title := strings.Join(args, " ")
	var err error
	if title == "" {
		if title, err = GetSimpleText(a.reader, "Quest title", a.out); err != nil {
			return err
		}
	}
	diff, err := GetChoice(a.reader, "Difficulty", difficulties, models.DifficultyMedium, a.out)
	if err != nil {
		return err
	}
	notes, err := GetSimpleText(a.reader, "Notes (optional)", a.out)
	if err != nil {
		return err
	}

	if _, err := a.svc.AddQuest(ctx, title, diff, notes); err != nil {
		return a.fail(ctx, err)
	}
	return nil
}

func (a *App) AddExamples(ctx context.Context, _ []string) error {
	if _, err := a.svc.AddExampleQuests(ctx); err != nil {
		return a.fail(ctx, err)
	}
	return nil
}

// questRef resolves a row number from the last listing, or a raw id.
func (a *App) questRef(args []string) (string, error) {
	ref := ""
	if len(args) > 0 {
		ref = args[0]
	} else {
		var err error
		if ref, err = GetSimpleText(a.reader, "Quest number (from 'quests') or id", a.out); err != nil {
			return "", err
		}
	}
	if ref == "" {
		return "", common.Validation("No quest given.")
	}
	if n, err := strconv.Atoi(ref); err == nil {
		if n < 1 || n > len(a.lastQuests) {
			return "", common.State("No quest #%d in the last listing. Run 'quests' first.", n)
		}
		return a.lastQuests[n-1], nil
	}
	return ref, nil
}

func (a *App) Complete(ctx context.Context, args []string) error {
	id, err := a.questRef(args)
	if err != nil {
		return a.fail(ctx, err)
	}
	_, ok, err := a.svc.CompleteQuest(ctx, id)
	if err != nil {
		return a.fail(ctx, err)
	}
	if !ok {
		fmt.Fprintln(a.out, "Nothing to complete.")
	}
	return nil
}

func (a *App) Undo(ctx context.Context, args []string) error {
	id, err := a.questRef(args)
	if err != nil {
		return a.fail(ctx, err)
	}
	ok, err := a.svc.UndoQuest(ctx, id)
	if err != nil {
		return a.fail(ctx, err)
	}
	if !ok {
		fmt.Fprintln(a.out, "Nothing to reopen.")
	}
	return nil
}

// Edit re-prompts title and notes. An empty answer keeps the current value.
func (a *App) Edit(ctx context.Context, args []string) error {
	id, err := a.questRef(args)
	if err != nil {
		return a.fail(ctx, err)
	}
	list, err := a.svc.Quests(progression.FilterAll, "")
	if err != nil {
		return a.fail(ctx, err)
	}
	var cur *models.Quest
	for _, q := range list {
		if q.ID == id {
			cur = q
		}
	}
	if cur == nil {
		return a.fail(ctx, common.State("Quest not found."))
	}

	title, err := GetSimpleText(a.reader, "Title ["+cur.Title+"]", a.out)
	if err != nil {
		return err
	}
	if title == "" {
		title = cur.Title
	}
	notes, err := GetSimpleText(a.reader, "Notes ["+cur.Notes+"] (type - to clear)", a.out)
	if err != nil {
		return err
	}
	switch notes {
	case "":
		notes = cur.Notes
	case "-":
		notes = ""
	}

	if _, err := a.svc.EditQuest(ctx, id, title, notes); err != nil {
		return a.fail(ctx, err)
	}
	return nil
}

func (a *App) Delete(ctx context.Context, args []string) error {
	id, err := a.questRef(args)
	if err != nil {
		return a.fail(ctx, err)
	}
	if err := a.svc.DeleteQuest(ctx, id); err != nil {
		return a.fail(ctx, err)
	}
	a.lastQuests = nil
	return nil
}
