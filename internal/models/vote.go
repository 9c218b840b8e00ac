package models

// VoteSets records who has voted on an item. A username appears in at
// most one of the two lists at any time; the board's vote engine is the
// only writer and maintains that invariant.
type VoteSets struct {
	UpvotedBy   []string `json:"upvotedBy" yaml:"upvotedBy"`
	DownvotedBy []string `json:"downvotedBy" yaml:"downvotedBy"`
}

// NewVoteSets returns empty vote lists, allocated so they serialize as
// [] rather than null.
func NewVoteSets() VoteSets {
	return VoteSets{
		UpvotedBy:   []string{},
		DownvotedBy: []string{},
	}
}

// Clone returns a detached copy of both lists.
func (v VoteSets) Clone() VoteSets {
	return VoteSets{
		UpvotedBy:   cloneStrings(v.UpvotedBy),
		DownvotedBy: cloneStrings(v.DownvotedBy),
	}
}

// The clone helpers always allocate, so copies stay non-nil and keep
// serializing as [] when empty.

func cloneInts(ids []int) []int {
	out := make([]int, len(ids))
	copy(out, ids)
	return out
}

func cloneStrings(values []string) []string {
	out := make([]string, len(values))
	copy(out, values)
	return out
}
