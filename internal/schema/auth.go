package schema

import (
	"github.com/tidwall/gjson"

	"github.com/holidaze/client-go/internal/model"
)

// Profile validates a registration response: profile fields only, no
// token. The avatar media object ({url, alt} or null) is flattened into
// the user's AvatarURL/AvatarAlt; an absent avatar is not an error.
func Profile(v gjson.Result) (model.User, error) {
	var out model.User

	if !v.IsObject() {
		return out, errAt("$", "object")
	}

	var err error
	if out.Name, err = requiredString(v, "name"); err != nil {
		return out, err
	}
	if out.Email, err = requiredString(v, "email"); err != nil {
		return out, err
	}
	if out.VenueManager, err = optionalBool(v, "venueManager"); err != nil {
		return out, err
	}

	if out.AvatarURL, out.AvatarAlt, err = avatar(v.Get("avatar")); err != nil {
		return out, err
	}

	return out, nil
}

// Session validates a login response: the same profile fields plus a
// non-empty accessToken. A success response with an empty or missing
// token is rejected.
func Session(v gjson.Result) (model.Session, error) {
	var out model.Session

	user, err := Profile(v)
	if err != nil {
		return out, err
	}

	token, err := requiredString(v, "accessToken")
	if err != nil {
		return out, err
	}
	if token == "" {
		return out, errAt("accessToken", "non-empty string")
	}

	out.User = user
	out.AccessToken = token
	return out, nil
}

// avatar flattens the server's avatar media object. null and absence
// both yield empty fields.
func avatar(v gjson.Result) (url, alt string, err error) {
	if !v.Exists() || v.Type == gjson.Null {
		return "", "", nil
	}
	if !v.IsObject() {
		return "", "", errAt("avatar", "object or null")
	}

	if url, err = requiredString(v, "url"); err != nil {
		return "", "", prefixPath(err, "avatar")
	}
	if alt, err = optionalString(v, "alt"); err != nil {
		return "", "", prefixPath(err, "avatar")
	}
	return url, alt, nil
}
