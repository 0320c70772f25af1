package cli

import (
	"context"

	"github.com/dmitrijs2005/questkeeper/internal/core"
)

// Register walks through the sign-up form and signs the new account in.
func (a *App) Register(ctx context.Context, _ []string) error {
	var r core.Registration
	var err error

	if r.Username, err = GetSimpleText(a.reader, "Username", a.out); err != nil {
		return err
	}
	if r.Email, err = GetSimpleText(a.reader, "Email", a.out); err != nil {
		return err
	}
	if r.Password, err = GetPassword(a.reader, "Password (min 6 characters)", a.out); err != nil {
		return err
	}
	if r.ConfirmPassword, err = GetPassword(a.reader, "Repeat password", a.out); err != nil {
		return err
	}
	if r.Question, err = GetSimpleText(a.reader, "Security question (used for password reset)", a.out); err != nil {
		return err
	}
	if r.Answer, err = GetSimpleText(a.reader, "Security answer", a.out); err != nil {
		return err
	}

	if _, err := a.svc.Register(ctx, r); err != nil {
		return a.fail(ctx, err)
	}
	a.greet(ctx)
	return nil
}

func (a *App) Login(ctx context.Context, _ []string) error {
	email, err := GetSimpleText(a.reader, "Email", a.out)
	if err != nil {
		return err
	}
	password, err := GetPassword(a.reader, "Password", a.out)
	if err != nil {
		return err
	}
	if _, err := a.svc.Login(ctx, email, password); err != nil {
		return a.fail(ctx, err)
	}
	a.lastQuests = nil
	a.greet(ctx)
	return nil
}

// Forgot resets a password through the security question.
func (a *App) Forgot(ctx context.Context, _ []string) error {
	email, err := GetSimpleText(a.reader, "Email", a.out)
	if err != nil {
		return err
	}
	question, err := a.svc.SecurityQuestion(email)
	if err != nil {
		return a.fail(ctx, err)
	}

	answer, err := GetSimpleText(a.reader, "Security question: "+question, a.out)
	if err != nil {
		return err
	}
	password, err := GetPassword(a.reader, "New password (min 6 characters)", a.out)
	if err != nil {
		return err
	}
	if err := a.svc.ResetPassword(ctx, email, answer, password); err != nil {
		return a.fail(ctx, err)
	}
	return nil
}

func (a *App) Logout(ctx context.Context, _ []string) error {
	if err := a.svc.Logout(ctx); err != nil {
		return a.fail(ctx, err)
	}
	a.lastQuests = nil
	return nil
}
