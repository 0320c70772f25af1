// Package models defines the persisted application document: users, their
// quests, progression counters and cosmetics. JSON field names match the
// saved-document format so exports stay interchangeable.
package models

// CurrentVersion is written into Meta.Version for new documents.
const CurrentVersion = 1

type Meta struct {
	Version int `json:"version"`
}

// Session tracks who is logged in on this device. LastHelloForUserID
// remembers which user has already seen the welcome-back greeting.
type Session struct {
	CurrentUserID      *string `json:"currentUserId"`
	LastHelloForUserID *string `json:"lastHelloForUserId"`
}

// Document is the whole application state held in one key/value slot.
type Document struct {
	Meta    Meta    `json:"meta"`
	Session Session `json:"session"`
	Users   []*User `json:"users"`
}

// NewDocument returns the structurally-defaulted empty document.
func NewDocument() *Document {
	return &Document{
		Meta:  Meta{Version: CurrentVersion},
		Users: []*User{},
	}
}

// Normalize fills structural defaults so the rest of the code never has to
// nil-check collections. It does not validate field values.
func (d *Document) Normalize() {
	if d.Meta.Version == 0 {
		d.Meta.Version = CurrentVersion
	}
	if d.Users == nil {
		d.Users = []*User{}
	}
	users := d.Users[:0]
	for _, u := range d.Users {
		if u == nil {
			continue
		}
		u.Normalize()
		users = append(users, u)
	}
	d.Users = users
}

// UserByID returns nil when no user has id.
func (d *Document) UserByID(id string) *User {
	for _, u := range d.Users {
		if u.ID == id {
			return u
		}
	}
	return nil
}

// UserByEmail matches the stored (lower-cased) email exactly.
func (d *Document) UserByEmail(email string) *User {
	for _, u := range d.Users {
		if u.Email == email {
			return u
		}
	}
	return nil
}

// CurrentUser resolves the session user, or nil.
func (d *Document) CurrentUser() *User {
	if d.Session.CurrentUserID == nil {
		return nil
	}
	return d.UserByID(*d.Session.CurrentUserID)
}

// RemoveUser drops the user with id and reports whether one was removed.
func (d *Document) RemoveUser(id string) bool {
	for i, u := range d.Users {
		if u.ID == id {
			d.Users = append(d.Users[:i], d.Users[i+1:]...)
			return true
		}
	}
	return false
}

// Clone returns a deep copy; mutations on it never reach d.
func (d *Document) Clone() *Document {
	c := &Document{
		Meta: d.Meta,
		Session: Session{
			CurrentUserID:      cloneString(d.Session.CurrentUserID),
			LastHelloForUserID: cloneString(d.Session.LastHelloForUserID),
		},
		Users: make([]*User, 0, len(d.Users)),
	}
	for _, u := range d.Users {
		c.Users = append(c.Users, u.Clone())
	}
	return c
}

// Ptr returns a pointer to s, for the nullable string fields.
func Ptr(s string) *string {
	return &s
}

func cloneString(s *string) *string {
	if s == nil {
		return nil
	}
	v := *s
	return &v
}
