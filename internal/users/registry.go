// Package users maps external user ids to display names for pick
// attribution. The registry is an explicit object owned by the caller;
// duplicate usernames are disambiguated by external id, never by a mutable
// counter.
package users

import (
	"fmt"

	"draft-companion/internal/domain/picks"
)

// User is one resolved member of the league.
type User struct {
	UserID      string `json:"userId"`
	Username    string `json:"username"`
	DisplayName string `json:"displayName"`
}

// Registry resolves external user ids to usernames.
type Registry struct {
	byID    map[string]User
	claimed map[string]string // username -> first claiming user id
}

// NewRegistry returns an empty registry.
func NewRegistry() *Registry {
	return &Registry{
		byID:    make(map[string]User),
		claimed: make(map[string]string),
	}
}

// Add registers a user. When the username is already claimed by a different
// id, the new entry's display name is qualified with its id so both users
// stay distinguishable. Re-adding the same id updates it in place.
func (r *Registry) Add(userID, username string) User {
	display := username
	if owner, taken := r.claimed[username]; taken && owner != userID {
		display = fmt.Sprintf("%s (%s)", username, userID)
	} else {
		r.claimed[username] = userID
	}

	user := User{UserID: userID, Username: username, DisplayName: display}
	r.byID[userID] = user
	return user
}

// Username resolves the display name for an external user id. Empty or
// unknown ids resolve to the bot sentinel so autopicks are attributed
// consistently.
func (r *Registry) Username(userID string) string {
	if userID == "" {
		return picks.BotUsername
	}
	if user, ok := r.byID[userID]; ok {
		return user.DisplayName
	}
	return picks.BotUsername
}

// Lookup returns the user for an id when present.
func (r *Registry) Lookup(userID string) (User, bool) {
	user, ok := r.byID[userID]
	return user, ok
}

// Users returns every registered user.
func (r *Registry) Users() []User {
	out := make([]User, 0, len(r.byID))
	for _, u := range r.byID {
		out = append(out, u)
	}
	return out
}

// Len returns the number of registered users.
func (r *Registry) Len() int {
	return len(r.byID)
}
