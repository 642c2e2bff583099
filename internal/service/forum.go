package service

import (
	"github.com/suraksha-dev/suraksha/shared/domain"
)

// to mock service in tests
type ForumService interface {
	Create(data domain.ForumCreationData) (domain.Forum, error)
	All() []domain.Forum
	Get(id domain.ForumId) (domain.Forum, error)
	Patch(id domain.ForumId, patch domain.ForumPatch) (domain.Forum, error)
	Rate(id domain.ForumId, stars float64) (float64, error)
}

type Forum struct {
	storage   ForumStorage
	validator ForumValidator
}

type ForumStorage interface {
	CreateForum(data domain.ForumCreationData) (domain.Forum, error)
	Forums() []domain.Forum
	Forum(id domain.ForumId) (domain.Forum, error)
	PatchForum(id domain.ForumId, patch domain.ForumPatch) (domain.Forum, error)
	RateForum(id domain.ForumId, stars float64) (float64, error)
}

type ForumValidator interface {
	Name(name string) error
	Description(description string) error
	Tags(tags domain.Tags) error
}

func NewForum(storage ForumStorage, validator ForumValidator) ForumService {
	return &Forum{storage, validator}
}

func (f *Forum) Create(data domain.ForumCreationData) (domain.Forum, error) {
	if err := f.validator.Name(data.Name); err != nil {
		return domain.Forum{}, err
	}
	if err := f.validator.Description(data.Description); err != nil {
		return domain.Forum{}, err
	}
	if err := f.validator.Tags(data.Tags); err != nil {
		return domain.Forum{}, err
	}
	return f.storage.CreateForum(data)
}

func (f *Forum) All() []domain.Forum {
	forums := f.storage.Forums()
	for i := range forums {
		domain.SortNotesForDisplay(forums[i].Notes)
		domain.SortDiscussionsForDisplay(forums[i].Discussions)
	}
	return forums
}

func (f *Forum) Get(id domain.ForumId) (domain.Forum, error) {
	forum, err := f.storage.Forum(id)
	if err != nil {
		return domain.Forum{}, err
	}
	domain.SortNotesForDisplay(forum.Notes)
	domain.SortDiscussionsForDisplay(forum.Discussions)
	return forum, nil
}

func (f *Forum) Patch(id domain.ForumId, patch domain.ForumPatch) (domain.Forum, error) {
	if patch.Name != nil {
		if err := f.validator.Name(*patch.Name); err != nil {
			return domain.Forum{}, err
		}
	}
	if patch.Description != nil {
		if err := f.validator.Description(*patch.Description); err != nil {
			return domain.Forum{}, err
		}
	}
	if patch.Tags != nil {
		if err := f.validator.Tags(*patch.Tags); err != nil {
			return domain.Forum{}, err
		}
	}
	return f.storage.PatchForum(id, patch)
}

func (f *Forum) Rate(id domain.ForumId, stars float64) (float64, error) {
	return f.storage.RateForum(id, stars)
}
