package mocks

import (
	"context"

	"cinema-screening/internal/data/entity"
	"cinema-screening/internal/data/repository"

	"github.com/google/uuid"
	"github.com/stretchr/testify/mock"
)

type MockMovieRepo struct {
	mock.Mock
	repository.MovieRepository
}

func (m *MockMovieRepo) Create(ctx context.Context, movie *entity.Movie) error {
	args := m.Called(ctx, movie)
	return args.Error(0)
}

func (m *MockMovieRepo) FindByID(ctx context.Context, id uuid.UUID) (*entity.Movie, error) {
	args := m.Called(ctx, id)
	movie, _ := args.Get(0).(*entity.Movie)
	return movie, args.Error(1)
}

func (m *MockMovieRepo) Update(ctx context.Context, movie *entity.Movie) error {
	args := m.Called(ctx, movie)
	return args.Error(0)
}

func (m *MockMovieRepo) Delete(ctx context.Context, id uuid.UUID) error {
	args := m.Called(ctx, id)
	return args.Error(0)
}

func (m *MockMovieRepo) FindAll(ctx context.Context, limit, offset int, titleFilter *string) ([]*entity.Movie, error) {
	args := m.Called(ctx, limit, offset, titleFilter)
	movies, _ := args.Get(0).([]*entity.Movie)
	return movies, args.Error(1)
}

func (m *MockMovieRepo) CountAll(ctx context.Context, titleFilter *string) (int64, error) {
	args := m.Called(ctx, titleFilter)
	return args.Get(0).(int64), args.Error(1)
}
