package domain

// to iterate thru layers: handler -> service -> storage
type ForumCreationData struct {
	Name        string
	Description string
	Tags        Tags
}

// ForumPatch is a shallow merge of scalar forum fields. Nested state
// (pins, votes, poll votes) goes through the narrow store operations.
type ForumPatch struct {
	Name        *string
	Description *string
	Tags        *Tags
	Rating      *float64
}

type Forum struct {
	Id          ForumId      `json:"id"`
	Name        string       `json:"name"`
	Description string       `json:"description"`
	Tags        Tags         `json:"tags"`
	Rating      float64      `json:"rating"`
	Notes       []Note       `json:"notes"`
	Discussions []Discussion `json:"discussions"`
}

// Clone returns a deep copy so callers can read and mutate freely
// without aliasing store-internal slices.
func (f Forum) Clone() Forum {
	out := f
	out.Tags = append(Tags(nil), f.Tags...)
	out.Notes = make([]Note, len(f.Notes))
	for i, n := range f.Notes {
		out.Notes[i] = n.Clone()
	}
	out.Discussions = make([]Discussion, len(f.Discussions))
	for i, d := range f.Discussions {
		out.Discussions[i] = d.Clone()
	}
	return out
}
