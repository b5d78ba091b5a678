package models

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func testPost(maxMembers int) TeamPost {
	return TeamPost{
		ID:         10,
		Title:      "Hackathon crew",
		MaxMembers: maxMembers,
		OwnerID:    1,
		Owner:      User{ID: 1, Name: "Owner", Email: "owner@example.com"},
	}
}

func TestTeamRosterOwnerOnly(t *testing.T) {
	roster := TeamRoster(testPost(4), nil)

	assert.Equal(t, 1, roster.CurrentMembers())
	assert.Equal(t, TeamRoleOwner, roster.Members[0].Role)
	assert.Equal(t, uint(1), roster.Members[0].ID)
	assert.False(t, roster.IsFull())
}

func TestTeamRosterDerivation(t *testing.T) {
	requests := []TeamRequest{
		{PostID: 10, RequesterID: 2, Status: TeamRequestAccepted, Requester: User{ID: 2, Name: "A"}},
		{PostID: 10, RequesterID: 3, Status: TeamRequestPending, Requester: User{ID: 3, Name: "B"}},
		{PostID: 10, RequesterID: 4, Status: TeamRequestRejected, Requester: User{ID: 4, Name: "C"}},
		{PostID: 10, RequesterID: 5, Status: TeamRequestRemoved, Requester: User{ID: 5, Name: "D"}},
		{PostID: 99, RequesterID: 6, Status: TeamRequestAccepted, Requester: User{ID: 6, Name: "E"}},
	}

	roster := TeamRoster(testPost(4), requests)

	// Owner plus the single accepted requester for this post
	assert.Equal(t, 2, roster.CurrentMembers())
	assert.Equal(t, TeamRoleOwner, roster.Members[0].Role)
	assert.Equal(t, uint(2), roster.Members[1].ID)
	assert.Equal(t, TeamRoleMember, roster.Members[1].Role)
}

func TestRosterCapacity(t *testing.T) {
	requests := []TeamRequest{
		{PostID: 10, RequesterID: 2, Status: TeamRequestAccepted, Requester: User{ID: 2}},
		{PostID: 10, RequesterID: 3, Status: TeamRequestAccepted, Requester: User{ID: 3}},
	}

	// max_members 3: owner + 2 accepted fills the team
	roster := TeamRoster(testPost(3), requests)
	assert.Equal(t, 3, roster.CurrentMembers())
	assert.True(t, roster.IsFull())

	roster = TeamRoster(testPost(4), requests)
	assert.False(t, roster.IsFull())
}

func TestRosterMembership(t *testing.T) {
	requests := []TeamRequest{
		{PostID: 10, RequesterID: 2, Status: TeamRequestAccepted, Requester: User{ID: 2}},
	}
	roster := TeamRoster(testPost(4), requests)

	assert.True(t, roster.IsMember(1))
	assert.True(t, roster.IsMember(2))
	assert.False(t, roster.IsMember(3))

	role, ok := roster.RoleOf(1)
	assert.True(t, ok)
	assert.Equal(t, TeamRoleOwner, role)

	role, ok = roster.RoleOf(2)
	assert.True(t, ok)
	assert.Equal(t, TeamRoleMember, role)

	_, ok = roster.RoleOf(3)
	assert.False(t, ok)
}
