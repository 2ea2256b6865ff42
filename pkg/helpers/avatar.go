package helpers

import "net/url"

// DefaultAvatarURL builds the placeholder avatar for a username. The scheme
// is a replaceable policy: services take it as an injected function and only
// fall back to this one.
func DefaultAvatarURL(username string) string {
	return "https://ui-avatars.com/api/?name=" + url.QueryEscape(username) + "&background=random"
}
