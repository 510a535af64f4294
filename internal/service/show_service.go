package service

import (
	"context"
	"errors"
	"strings"

	"gorm.io/gorm"

	"diary/internal/model"
	"diary/internal/repository"
)

// ShowInput represents data required to start tracking a show.
type ShowInput struct {
	Title             string `json:"title"`
	Season            int    `json:"season"`
	Episode           int    `json:"episode"`
	EpisodesPerSeason int    `json:"episodes_per_season"`
}

// ShowUpdate carries optional field changes; nil pointers mean "leave as is".
type ShowUpdate struct {
	Title             *string `json:"title"`
	EpisodesPerSeason *int    `json:"episodes_per_season"`
}

// ShowService wraps show-tracking business logic.
type ShowService struct {
	repo *repository.ShowRepository
}

func NewShowService(repo *repository.ShowRepository) *ShowService {
	return &ShowService{repo: repo}
}

func (s *ShowService) Create(ctx context.Context, input ShowInput) (*model.Show, error) {
	title := strings.TrimSpace(input.Title)
	if title == "" {
		return nil, validationErr("title", "must not be empty")
	}
	if input.Season < 0 || input.Episode < 0 || input.EpisodesPerSeason < 0 {
		return nil, validationErr("progress", "must not be negative")
	}

	season := input.Season
	if season == 0 {
		season = 1
	}

	show := model.Show{
		Title:                title,
		Season:               season,
		Episode:              input.Episode,
		EpisodesPerSeason:    input.EpisodesPerSeason,
		TotalWatchedEpisodes: input.Episode,
	}
	if err := s.repo.Create(ctx, &show); err != nil {
		return nil, err
	}
	return &show, nil
}

func (s *ShowService) Get(ctx context.Context, id uint) (*model.Show, error) {
	return s.repo.FindByID(ctx, id)
}

func (s *ShowService) List(ctx context.Context) ([]model.Show, error) {
	return s.repo.List(ctx)
}

// Update applies the non-nil fields. A missing id is a silent no-op.
func (s *ShowService) Update(ctx context.Context, id uint, update ShowUpdate) (*model.Show, error) {
	show, err := s.repo.FindByID(ctx, id)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, nil
		}
		return nil, err
	}

	if update.Title != nil {
		title := strings.TrimSpace(*update.Title)
		if title == "" {
			return nil, validationErr("title", "must not be empty")
		}
		show.Title = title
	}
	if update.EpisodesPerSeason != nil {
		if *update.EpisodesPerSeason < 0 {
			return nil, validationErr("episodes_per_season", "must not be negative")
		}
		show.EpisodesPerSeason = *update.EpisodesPerSeason
	}

	if err := s.repo.Save(ctx, show); err != nil {
		return nil, err
	}
	return show, nil
}

// AdvanceEpisode records one more watched episode: the in-season counter and
// the lifetime counter move together or not at all.
func (s *ShowService) AdvanceEpisode(ctx context.Context, id uint) (*model.Show, error) {
	if err := s.repo.AdvanceEpisode(ctx, id); err != nil {
		return nil, err
	}
	show, err := s.repo.FindByID(ctx, id)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, nil
		}
		return nil, err
	}
	return show, nil
}

// StartNewSeason moves to the next season and resets the episode counter.
func (s *ShowService) StartNewSeason(ctx context.Context, id uint) (*model.Show, error) {
	if err := s.repo.StartNewSeason(ctx, id); err != nil {
		return nil, err
	}
	show, err := s.repo.FindByID(ctx, id)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, nil
		}
		return nil, err
	}
	return show, nil
}

func (s *ShowService) Delete(ctx context.Context, id uint) error {
	return s.repo.Delete(ctx, id)
}
