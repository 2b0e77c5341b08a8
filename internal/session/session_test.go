package session_test

import (
	"testing"

	"alcyxob/fitstack/internal/session"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestLoginFlow(t *testing.T) {
	s := session.NewStore()
	assert.Equal(t, session.PageLogin, s.Current())

	require.NoError(t, s.StartSignup())
	assert.Equal(t, session.PageSignup, s.Current())

	require.NoError(t, s.SignupFinished())
	assert.Equal(t, session.PageLogin, s.Current())

	require.NoError(t, s.LoginSucceeded())
	assert.Equal(t, session.PageHome, s.Current())
}

func TestTabNavigation(t *testing.T) {
	s := session.NewStore()
	require.NoError(t, s.LoginSucceeded())

	require.NoError(t, s.SelectTab(session.PageHistory))
	assert.Equal(t, session.PageHistory, s.Current())

	require.NoError(t, s.SelectTab(session.PageAnalysis))
	require.NoError(t, s.SelectTab(session.PageChat))
	assert.Equal(t, session.PageChat, s.Current())

	// profile is not a tab
	assert.Error(t, s.SelectTab(session.PageProfile))
	assert.Equal(t, session.PageChat, s.Current())
}

func TestProfileRemembersPreviousPage(t *testing.T) {
	s := session.NewStore()
	require.NoError(t, s.LoginSucceeded())
	require.NoError(t, s.SelectTab(session.PageAnalysis))

	require.NoError(t, s.OpenProfile())
	assert.Equal(t, session.PageProfile, s.Current())

	// tabs are unreachable while the profile is open
	assert.Error(t, s.SelectTab(session.PageHome))

	require.NoError(t, s.CloseProfile())
	assert.Equal(t, session.PageAnalysis, s.Current())
}

func TestInvalidEvents(t *testing.T) {
	s := session.NewStore()

	assert.Error(t, s.SelectTab(session.PageHome)) // not logged in
	assert.Error(t, s.OpenProfile())
	assert.Error(t, s.CloseProfile())
	assert.Error(t, s.Logout())
	assert.Error(t, s.SignupFinished())
	assert.Equal(t, session.PageLogin, s.Current())
}

func TestLogout(t *testing.T) {
	s := session.NewStore()
	require.NoError(t, s.LoginSucceeded())
	require.NoError(t, s.OpenProfile())

	require.NoError(t, s.Logout())
	assert.Equal(t, session.PageLogin, s.Current())

	// after logging back in, the profile back-target is reset to home
	require.NoError(t, s.LoginSucceeded())
	require.NoError(t, s.SelectTab(session.PageHistory))
	require.NoError(t, s.OpenProfile())
	require.NoError(t, s.CloseProfile())
	assert.Equal(t, session.PageHistory, s.Current())
}
