package models

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestResolveRelationshipSelf(t *testing.T) {
	status := ResolveRelationship(7, 7, nil)
	assert.Equal(t, RelationshipSelf, status)

	// Self wins even when stale records exist for the pair
	status = ResolveRelationship(7, 7, []FriendRequest{
		{RequesterID: 7, TargetID: 7, Status: FriendRequestPending},
	})
	assert.Equal(t, RelationshipSelf, status)
}

func TestResolveRelationshipFriend(t *testing.T) {
	// Accepted request counts regardless of direction
	status := ResolveRelationship(1, 2, []FriendRequest{
		{RequesterID: 1, TargetID: 2, Status: FriendRequestAccepted},
	})
	assert.Equal(t, RelationshipFriend, status)

	status = ResolveRelationship(1, 2, []FriendRequest{
		{RequesterID: 2, TargetID: 1, Status: FriendRequestAccepted},
	})
	assert.Equal(t, RelationshipFriend, status)
}

func TestResolveRelationshipPending(t *testing.T) {
	// Target sent the request: incoming for the viewer
	status := ResolveRelationship(1, 2, []FriendRequest{
		{RequesterID: 2, TargetID: 1, Status: FriendRequestPending},
	})
	assert.Equal(t, RelationshipPendingIncoming, status)

	// Viewer sent the request: outgoing
	status = ResolveRelationship(1, 2, []FriendRequest{
		{RequesterID: 1, TargetID: 2, Status: FriendRequestPending},
	})
	assert.Equal(t, RelationshipPendingOutgoing, status)
}

func TestResolveRelationshipNone(t *testing.T) {
	assert.Equal(t, RelationshipNone, ResolveRelationship(1, 2, nil))

	// Rejected and cancelled requests leave no trace on the relationship
	status := ResolveRelationship(1, 2, []FriendRequest{
		{RequesterID: 1, TargetID: 2, Status: FriendRequestRejected},
		{RequesterID: 2, TargetID: 1, Status: FriendRequestCancelled},
	})
	assert.Equal(t, RelationshipNone, status)
}

func TestResolveRelationshipPrecedence(t *testing.T) {
	// An accepted record outranks a stale pending one
	status := ResolveRelationship(1, 2, []FriendRequest{
		{RequesterID: 1, TargetID: 2, Status: FriendRequestPending},
		{RequesterID: 2, TargetID: 1, Status: FriendRequestAccepted},
	})
	assert.Equal(t, RelationshipFriend, status)

	// Incoming outranks outgoing when both are pending
	status = ResolveRelationship(1, 2, []FriendRequest{
		{RequesterID: 1, TargetID: 2, Status: FriendRequestPending},
		{RequesterID: 2, TargetID: 1, Status: FriendRequestPending},
	})
	assert.Equal(t, RelationshipPendingIncoming, status)
}

func TestResolveRelationshipIgnoresOtherPairs(t *testing.T) {
	// Rows for unrelated users never leak into the answer
	status := ResolveRelationship(1, 2, []FriendRequest{
		{RequesterID: 3, TargetID: 4, Status: FriendRequestAccepted},
		{RequesterID: 1, TargetID: 3, Status: FriendRequestAccepted},
	})
	assert.Equal(t, RelationshipNone, status)
}
