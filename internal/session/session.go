// Package session models the page navigation of the FitStack client as an
// explicit finite-state store. It owns the only mutable UI-side state
// (current page, the page to return to from the profile) and is fully
// decoupled from the analytics engine, which stays stateless.
package session

import "fmt"

// Page is a named navigation state.
type Page string

const (
	PageLogin    Page = "login"
	PageSignup   Page = "signup"
	PageHome     Page = "home"
	PageHistory  Page = "history"
	PageAnalysis Page = "analysis"
	PageProfile  Page = "profile"
	PageChat     Page = "chat"
)

// tabPages are the pages reachable from the bottom navigation bar once
// logged in.
var tabPages = map[Page]bool{
	PageHome:     true,
	PageHistory:  true,
	PageAnalysis: true,
	PageChat:     true,
}

// Store is the single-owner page state machine. Not safe for concurrent
// use; the driving UI thread owns it.
type Store struct {
	current Page
	prev    Page // page to return to when leaving the profile
}

// NewStore starts a session on the login page.
func NewStore() *Store {
	return &Store{current: PageLogin, prev: PageHome}
}

// Current returns the active page.
func (s *Store) Current() Page {
	return s.current
}

// LoginSucceeded moves from login to home.
func (s *Store) LoginSucceeded() error {
	if s.current != PageLogin {
		return s.invalid("login-succeeded")
	}
	s.current = PageHome
	return nil
}

// StartSignup moves from login to the signup form.
func (s *Store) StartSignup() error {
	if s.current != PageLogin {
		return s.invalid("start-signup")
	}
	s.current = PageSignup
	return nil
}

// SignupFinished returns to login, both on success and on cancel.
func (s *Store) SignupFinished() error {
	if s.current != PageSignup {
		return s.invalid("signup-finished")
	}
	s.current = PageLogin
	return nil
}

// SelectTab switches between the bottom-bar pages. Only valid while logged
// in (i.e. on a tab page) and only toward a tab page.
func (s *Store) SelectTab(p Page) error {
	if !tabPages[s.current] || !tabPages[p] {
		return s.invalid(fmt.Sprintf("select-tab(%s)", p))
	}
	s.current = p
	return nil
}

// OpenProfile opens the profile page, remembering where to come back to.
func (s *Store) OpenProfile() error {
	if !tabPages[s.current] {
		return s.invalid("open-profile")
	}
	s.prev = s.current
	s.current = PageProfile
	return nil
}

// CloseProfile returns to the page the profile was opened from.
func (s *Store) CloseProfile() error {
	if s.current != PageProfile {
		return s.invalid("close-profile")
	}
	s.current = s.prev
	return nil
}

// Logout ends the session from any logged-in page.
func (s *Store) Logout() error {
	if s.current == PageLogin || s.current == PageSignup {
		return s.invalid("logout")
	}
	s.current = PageLogin
	s.prev = PageHome
	return nil
}

func (s *Store) invalid(event string) error {
	return fmt.Errorf("session: event %s not allowed in state %s", event, s.current)
}
