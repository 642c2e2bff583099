package api

// Request DTOs

type VoteRequest struct {
	Vote string `json:"vote" validate:"required,oneof=like dislike"`
}

type PinRequest struct {
	Pinned *bool `json:"pinned" validate:"required"`
}

// Response DTOs

type VoteResponse struct {
	Likes    int `json:"likes"`
	Dislikes int `json:"dislikes"`
}

type PollOptionResponse struct {
	Id    string `json:"id"`
	Text  string `json:"text"`
	Votes int    `json:"votes"`
}

type PollResponse struct {
	Options []PollOptionResponse `json:"options"`
}
