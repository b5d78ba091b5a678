package models

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestFriendRequestTransitions(t *testing.T) {
	pending := FriendRequest{Status: FriendRequestPending}
	assert.True(t, pending.CanTransition(FriendRequestAccepted))
	assert.True(t, pending.CanTransition(FriendRequestRejected))
	assert.True(t, pending.CanTransition(FriendRequestCancelled))
	assert.False(t, pending.CanTransition(FriendRequestPending))

	// Accepted, rejected and cancelled are terminal
	for _, from := range []FriendRequestStatus{
		FriendRequestAccepted, FriendRequestRejected, FriendRequestCancelled,
	} {
		r := FriendRequest{Status: from}
		for _, to := range []FriendRequestStatus{
			FriendRequestPending, FriendRequestAccepted,
			FriendRequestRejected, FriendRequestCancelled,
		} {
			assert.False(t, r.CanTransition(to), "%s -> %s should be blocked", from, to)
		}
	}
}

func TestFriendRequestActive(t *testing.T) {
	assert.True(t, (&FriendRequest{Status: FriendRequestPending}).Active())
	assert.True(t, (&FriendRequest{Status: FriendRequestAccepted}).Active())
	assert.False(t, (&FriendRequest{Status: FriendRequestRejected}).Active())
	assert.False(t, (&FriendRequest{Status: FriendRequestCancelled}).Active())
}

func TestTeamRequestTransitions(t *testing.T) {
	pending := TeamRequest{Status: TeamRequestPending}
	assert.True(t, pending.CanTransition(TeamRequestAccepted))
	assert.True(t, pending.CanTransition(TeamRequestRejected))
	assert.False(t, pending.CanTransition(TeamRequestRemoved))

	// Only an accepted member can be removed
	accepted := TeamRequest{Status: TeamRequestAccepted}
	assert.True(t, accepted.CanTransition(TeamRequestRemoved))
	assert.False(t, accepted.CanTransition(TeamRequestPending))
	assert.False(t, accepted.CanTransition(TeamRequestRejected))

	// Rejected and removed are terminal
	for _, from := range []TeamRequestStatus{TeamRequestRejected, TeamRequestRemoved} {
		r := TeamRequest{Status: from}
		for _, to := range []TeamRequestStatus{
			TeamRequestPending, TeamRequestAccepted,
			TeamRequestRejected, TeamRequestRemoved,
		} {
			assert.False(t, r.CanTransition(to), "%s -> %s should be blocked", from, to)
		}
	}
}

func TestTeamRequestActive(t *testing.T) {
	assert.True(t, (&TeamRequest{Status: TeamRequestPending}).Active())
	assert.True(t, (&TeamRequest{Status: TeamRequestAccepted}).Active())
	assert.False(t, (&TeamRequest{Status: TeamRequestRejected}).Active())
	assert.False(t, (&TeamRequest{Status: TeamRequestRemoved}).Active())
}
