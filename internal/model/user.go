package model

// User is the internal profile model, normalized from the richer server
// profile. The server's structured avatar media object is flattened into
// AvatarURL/AvatarAlt; both are empty when the profile has no avatar.
type User struct {
	Name         string `json:"name"`
	Email        string `json:"email"`
	VenueManager bool   `json:"venueManager"`
	AvatarURL    string `json:"avatarUrl,omitempty"`
	AvatarAlt    string `json:"avatarAlt,omitempty"`
}
