package entity

import "time"

// Follow is a directed edge in the social graph: FollowerID follows
// FollowedID. Edges are immutable once created and keyed by the pair.
type Follow struct {
	FollowerID string
	FollowedID string
	CreatedAt  time.Time
}

func NewFollow(followerID, followedID string) Follow {
	return Follow{
		FollowerID: followerID,
		FollowedID: followedID,
		CreatedAt:  time.Now().UTC(),
	}
}
