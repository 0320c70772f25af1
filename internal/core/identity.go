package core

import (
	"context"
	"strings"
	"unicode/utf8"

	"github.com/dmitrijs2005/questkeeper/internal/common"
	"github.com/dmitrijs2005/questkeeper/internal/models"
)

const (
	MinUsername = 2
	MaxUsername = 24
	MinEmail    = 6
	MinPassword = 6
	MinQuestion = 8
	MinAnswer   = 2
)

// Registration is the sign-up form.
type Registration struct {
	Username        string
	Email           string
	Password        string
	ConfirmPassword string
	Question        string
	Answer          string
}

func normalizeEmail(email string) string {
	return strings.ToLower(strings.TrimSpace(email))
}

func normalizeAnswer(answer string) string {
	return strings.ToLower(strings.TrimSpace(answer))
}

func validateUsername(name string, short, long string) error {
	n := utf8.RuneCountInString(name)
	if n < MinUsername {
		return common.Validation("%s", short)
	}
	if n > MaxUsername {
		return common.Validation("%s", long)
	}
	return nil
}

// Register creates an account and signs it in.
func (s *Service) Register(ctx context.Context, r Registration) (*models.User, error) {
	username := strings.TrimSpace(r.Username)
	email := normalizeEmail(r.Email)
	question := strings.TrimSpace(r.Question)
	answer := strings.TrimSpace(r.Answer)

	if err := validateUsername(username,
		"Username must be at least 2 characters.",
		"Username must be at most 24 characters."); err != nil {
		return nil, err
	}
	if !strings.Contains(email, "@") || utf8.RuneCountInString(email) < MinEmail {
		return nil, common.Validation("Enter a valid email.")
	}
	if utf8.RuneCountInString(r.Password) < MinPassword {
		return nil, common.Validation("Password must be at least 6 characters.")
	}
	if r.Password != r.ConfirmPassword {
		return nil, common.Validation("Passwords do not match.")
	}
	if utf8.RuneCountInString(question) < MinQuestion {
		return nil, common.Validation("Security question is too short.")
	}
	if utf8.RuneCountInString(answer) < MinAnswer {
		return nil, common.Validation("Security answer is too short.")
	}

	var created *models.User
	err := s.commit(ctx, "register", func(doc *models.Document) (*models.User, error) {
		for _, u := range doc.Users {
			if strings.EqualFold(u.Email, email) {
				return nil, common.Conflict("That email is already registered.")
			}
		}

		today := s.today()
		u := models.NewUser(s.newID(), today)
		u.Username = username
		u.Email = email
		u.PassHash = s.hasher.Hash(r.Password)
		u.Security = models.Security{Question: question, AnswerHash: s.hasher.Hash(normalizeAnswer(answer))}
		u.LastLoginDate = models.Ptr(today)
		u.LogActivity(today, "Created an account.")

		doc.Users = append(doc.Users, u)
		doc.Session.CurrentUserID = models.Ptr(u.ID)
		doc.Session.LastHelloForUserID = nil
		created = u
		return u, nil
	})
	if err != nil {
		return nil, err
	}

	s.notify.Notify("Account created! Welcome!", NoticeInfo, "")
	return created.Clone(), nil
}

// Login signs in the account registered under email.
func (s *Service) Login(ctx context.Context, email, password string) (*models.User, error) {
	email = normalizeEmail(email)

	var signedIn *models.User
	err := s.commit(ctx, "login", func(doc *models.Document) (*models.User, error) {
		u := doc.UserByEmail(email)
		if u == nil {
			return nil, common.Auth("No account found for that email.")
		}
		if !s.hasher.Verify(password, u.PassHash) {
			return nil, common.Auth("Incorrect password.")
		}

		today := s.today()
		doc.Session.CurrentUserID = models.Ptr(u.ID)
		doc.Session.LastHelloForUserID = nil
		u.LastLoginDate = models.Ptr(today)
		u.LogActivity(today, "Logged in.")
		signedIn = u
		return u, nil
	})
	if err != nil {
		return nil, err
	}

	s.notify.Notify("Logged in!", NoticeInfo, "")
	return signedIn.Clone(), nil
}

// Logout clears the session. It succeeds when nobody is signed in.
func (s *Service) Logout(ctx context.Context) error {
	err := s.commit(ctx, "logout", func(doc *models.Document) (*models.User, error) {
		doc.Session.CurrentUserID = nil
		return nil, nil
	})
	if err != nil {
		return err
	}
	s.notify.Notify("Logged out.", NoticeInfo, "")
	return nil
}

// SecurityQuestion returns the recovery question for email. The answer is
// never exposed.
func (s *Service) SecurityQuestion(email string) (string, error) {
	u := s.doc.UserByEmail(normalizeEmail(email))
	if u == nil {
		return "", common.Auth("No account found for that email.")
	}
	return u.Security.Question, nil
}

// ResetPassword replaces the password when answer matches the stored
// security answer, ignoring case and surrounding space.
func (s *Service) ResetPassword(ctx context.Context, email, answer, newPassword string) error {
	email = normalizeEmail(email)

	err := s.commit(ctx, "reset password", func(doc *models.Document) (*models.User, error) {
		u := doc.UserByEmail(email)
		if u == nil {
			return nil, common.Auth("No account found for that email.")
		}
		if utf8.RuneCountInString(newPassword) < MinPassword {
			return nil, common.Validation("New password must be at least 6 characters.")
		}
		if !s.hasher.Verify(normalizeAnswer(answer), u.Security.AnswerHash) {
			return nil, common.Auth("Security answer is wrong.")
		}

		u.PassHash = s.hasher.Hash(newPassword)
		u.LogActivity(s.today(), "Reset password using security question.")
		return u, nil
	})
	if err != nil {
		return err
	}

	s.notify.Notify("Password reset! You can log in now.", NoticeInfo, "")
	return nil
}

// Greeting returns the welcome-back message once per sign-in. The second
// result is false when there is nothing to say.
func (s *Service) Greeting(ctx context.Context) (string, bool, error) {
	u := s.doc.CurrentUser()
	if u == nil {
		return "", false, nil
	}
	if hello := s.doc.Session.LastHelloForUserID; hello != nil && *hello == u.ID {
		return "", false, nil
	}

	err := s.commit(ctx, "greeting", func(doc *models.Document) (*models.User, error) {
		doc.Session.LastHelloForUserID = models.Ptr(u.ID)
		return nil, nil
	})
	if err != nil {
		return "", false, err
	}

	msg := "Hello again, " + u.Username + "!"
	s.notify.Notify(msg, NoticeInfo, "Your quests are waiting.")
	return msg, true, nil
}
