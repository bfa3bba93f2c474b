package schema

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/tidwall/gjson"
)

func TestProfileFlattensAvatar(t *testing.T) {
	raw := `{
		"name": "ola",
		"email": "ola@stud.noroff.no",
		"venueManager": true,
		"avatar": {"url": "https://img/a.png", "alt": "ola's avatar"},
		"banner": {"url": "https://img/b.png", "alt": ""}
	}`

	u, err := Profile(gjson.Parse(raw))
	require.NoError(t, err)

	assert.Equal(t, "ola", u.Name)
	assert.Equal(t, "ola@stud.noroff.no", u.Email)
	assert.True(t, u.VenueManager)
	assert.Equal(t, "https://img/a.png", u.AvatarURL)
	assert.Equal(t, "ola's avatar", u.AvatarAlt)
}

func TestProfileWithoutAvatar(t *testing.T) {
	for _, raw := range []string{
		`{"name":"kari","email":"kari@stud.noroff.no","venueManager":false}`,
		`{"name":"kari","email":"kari@stud.noroff.no","venueManager":false,"avatar":null}`,
	} {
		u, err := Profile(gjson.Parse(raw))
		require.NoError(t, err)
		assert.Empty(t, u.AvatarURL)
		assert.Empty(t, u.AvatarAlt)
	}
}

func TestProfileRejections(t *testing.T) {
	tests := []struct {
		name string
		raw  string
		path string
	}{
		{"missing name", `{"email":"a@b.no"}`, "name"},
		{"missing email", `{"name":"x"}`, "email"},
		{"venueManager as string", `{"name":"x","email":"a@b.no","venueManager":"yes"}`, "venueManager"},
		{"avatar as string", `{"name":"x","email":"a@b.no","avatar":"https://img/a.png"}`, "avatar"},
		{"avatar missing url", `{"name":"x","email":"a@b.no","avatar":{"alt":"a"}}`, "avatar.url"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := Profile(gjson.Parse(tt.raw))
			var ve *ValidationError
			require.ErrorAs(t, err, &ve)
			assert.Equal(t, tt.path, ve.Path)
		})
	}
}

func TestSession(t *testing.T) {
	raw := `{
		"name": "ola",
		"email": "ola@stud.noroff.no",
		"venueManager": false,
		"accessToken": "jwt-token"
	}`

	s, err := Session(gjson.Parse(raw))
	require.NoError(t, err)
	assert.Equal(t, "jwt-token", s.AccessToken)
	assert.Equal(t, "ola", s.User.Name)
}

func TestSessionNeverSucceedsWithEmptyToken(t *testing.T) {
	tests := []struct {
		name string
		raw  string
	}{
		{"missing token", `{"name":"x","email":"a@stud.noroff.no"}`},
		{"empty token", `{"name":"x","email":"a@stud.noroff.no","accessToken":""}`},
		{"null token", `{"name":"x","email":"a@stud.noroff.no","accessToken":null}`},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := Session(gjson.Parse(tt.raw))
			var ve *ValidationError
			require.ErrorAs(t, err, &ve)
			assert.Equal(t, "accessToken", ve.Path)
		})
	}
}
