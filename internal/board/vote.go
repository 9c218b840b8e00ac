package board

import (
	"slices"

	"github.com/scoop-api/internal/models"
)

// The vote engine. Both operations are idempotent for a given voter and
// keep the mutual-exclusion invariant: a voter sits in at most one of
// the two lists. Casting the same vote twice is a no-op; only the
// opposite operation moves a voter across.

func upvote(v *models.VoteSets, voter string) {
	v.DownvotedBy = removeVoter(v.DownvotedBy, voter)
	if !slices.Contains(v.UpvotedBy, voter) {
		v.UpvotedBy = append(v.UpvotedBy, voter)
	}
}

func downvote(v *models.VoteSets, voter string) {
	v.UpvotedBy = removeVoter(v.UpvotedBy, voter)
	if !slices.Contains(v.DownvotedBy, voter) {
		v.DownvotedBy = append(v.DownvotedBy, voter)
	}
}

func removeVoter(voters []string, voter string) []string {
	for i, candidate := range voters {
		if candidate == voter {
			return append(voters[:i], voters[i+1:]...)
		}
	}
	return voters
}
