package session

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestState_Authenticated(t *testing.T) {
	assert.False(t, StateUnresolved.Authenticated())
	assert.False(t, StateAnonymous.Authenticated())
	assert.True(t, StateIncomplete.Authenticated())
	assert.True(t, StateComplete.Authenticated())
}

func TestDecodeSession_RejectsNonSessionJSON(t *testing.T) {
	_, err := decodeSession([]byte(`{"username":"alice"}`))
	require.ErrorIs(t, err, errMissingFields)
}

func TestDecodeSession_RoundTrip(t *testing.T) {
	in := &Session{ID: "42", Email: "a@x.com", Username: "alice", CompletedSurvey: true}
	record, err := encodeSession(in)
	require.NoError(t, err)

	out, err := decodeSession(record)
	require.NoError(t, err)
	require.Equal(t, in, out)
}

func TestClone_IsIndependentCopy(t *testing.T) {
	in := &Session{ID: "42", Email: "a@x.com", Username: "alice"}
	c := in.clone()
	c.Username = "bob"
	assert.Equal(t, "alice", in.Username)

	var nilSession *Session
	assert.Nil(t, nilSession.clone())
}
