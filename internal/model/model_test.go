package model

import (
	"encoding/json"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestRole(t *testing.T) {
	role, err := ParseRole(" Supervisor ")
	require.NoError(t, err)
	assert.Equal(t, RoleSupervisor, role)

	_, err = ParseRole("owner")
	require.ErrorIs(t, err, ErrValidation)

	assert.False(t, Role(0).Valid())
	assert.Equal(t, "role(9)", Role(9).String())

	var decoded struct {
		Role Role `json:"role"`
	}
	require.NoError(t, json.Unmarshal([]byte(`{"role":"admin"}`), &decoded))
	assert.Equal(t, RoleAdmin, decoded.Role)
	require.Error(t, json.Unmarshal([]byte(`{"role":"root"}`), &decoded))

	var scanned Role
	require.NoError(t, scanned.Scan(int64(5)))
	assert.Equal(t, RoleGuest, scanned)
	require.ErrorIs(t, scanned.Scan(int64(6)), ErrValidation)
	require.Error(t, scanned.Scan("5"))
}

func TestPermissions(t *testing.T) {
	perms := Permissions()
	require.Len(t, perms, 5)
	assert.Equal(t, Permission{Level: 1, Title: "dev"}, perms[0])
	assert.Equal(t, Permission{Level: 5, Title: "guest"}, perms[4])
}

func TestSession(t *testing.T) {
	start := time.Date(2024, time.May, 1, 9, 0, 0, 0, time.Local)
	stop := start.Add(90 * time.Minute)

	open := Session{ID: 1, PersonID: 2, Start: start}
	assert.True(t, open.Open())
	assert.Equal(t, int64(0), open.Duration())

	js, err := json.Marshal(open)
	require.NoError(t, err)
	assert.JSONEq(t,
		`{"id":1,"personId":2,"dateTimeStart":"2024-05-01 09:00:00","dateTimeStop":null,"breakSeconds":0}`,
		string(js))

	closed := Session{ID: 1, PersonID: 2, Start: start, Stop: &stop}
	assert.False(t, closed.Open())
	assert.Equal(t, int64(5400), closed.Duration())

	entry := SessionEntry{Session: closed, FirstName: "Ada", LastName: "Lovelace"}
	js, err = json.Marshal(entry)
	require.NoError(t, err)
	assert.JSONEq(t,
		`{"id":1,"personId":2,"dateTimeStart":"2024-05-01 09:00:00","dateTimeStop":"2024-05-01 10:30:00",
		"breakSeconds":0,"firstName":"Ada","lastName":"Lovelace"}`,
		string(js))
}

func TestErrors(t *testing.T) {
	err := NewDetailedError("Session", ErrConflict, "session already open")
	assert.EqualError(t, err, "session: conflict: session already open")
	assert.ErrorIs(t, err, ErrConflict)
	assert.True(t, IsDomain(err))
	assert.False(t, IsDomain(ErrStore))
	assert.Equal(t, "Ada", Person{FirstName: "Ada"}.DisplayName())
}
