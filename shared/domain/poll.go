package domain

// PollOption invariant: Votes always equals len(Voters) and a voter id
// appears at most once across all options of the same poll.
type PollOption struct {
	Id     PostId   `json:"id"`
	Text   string   `json:"text"`
	Votes  int      `json:"votes"`
	Voters []UserId `json:"voters"`
}

func (o PollOption) HasVoter(voter UserId) bool {
	for _, v := range o.Voters {
		if v == voter {
			return true
		}
	}
	return false
}

func (o PollOption) Clone() PollOption {
	out := o
	out.Voters = append([]UserId(nil), o.Voters...)
	return out
}
