package models

import "errors"

// ErrTeamFull is returned when accepting a request would push the roster
// past the post's max_members cap.
var ErrTeamFull = errors.New("team is already full")

type TeamRole string

const (
	TeamRoleOwner  TeamRole = "owner"
	TeamRoleMember TeamRole = "member"
)

type TeamMember struct {
	UserSummary
	Role TeamRole `json:"role"`
}

// Roster is the derived membership of a team: the post owner plus every
// user whose request for that post is accepted. It is never stored;
// recompute it from the request records whenever it is needed.
type Roster struct {
	Post    TeamPost
	Members []TeamMember
}

// TeamRoster derives the roster for a post. Requests for other posts and
// requests in any non-accepted state are ignored. The owner is always
// first in the member list.
func TeamRoster(post TeamPost, requests []TeamRequest) Roster {
	members := []TeamMember{{UserSummary: post.Owner.Summary(), Role: TeamRoleOwner}}
	for _, r := range requests {
		if r.PostID != post.ID || r.Status != TeamRequestAccepted {
			continue
		}
		members = append(members, TeamMember{UserSummary: r.Requester.Summary(), Role: TeamRoleMember})
	}
	return Roster{Post: post, Members: members}
}

func (r Roster) CurrentMembers() int {
	return len(r.Members)
}

// IsFull reports whether accepting one more request would exceed capacity.
func (r Roster) IsFull() bool {
	return r.CurrentMembers() >= r.Post.MaxMembers
}

func (r Roster) IsMember(userID uint) bool {
	for _, m := range r.Members {
		if m.ID == userID {
			return true
		}
	}
	return false
}

// RoleOf returns the user's role in the team, if any.
func (r Roster) RoleOf(userID uint) (TeamRole, bool) {
	for _, m := range r.Members {
		if m.ID == userID {
			return m.Role, true
		}
	}
	return "", false
}
