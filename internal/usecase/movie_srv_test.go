package usecase_test

import (
	"context"
	"testing"

	"cinema-screening/internal/data/entity"
	"cinema-screening/internal/data/repository"
	"cinema-screening/internal/dto/request"
	"cinema-screening/internal/mocks"
	"cinema-screening/internal/usecase"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"
)

func TestGetMovies_Paginates(t *testing.T) {
	movieRepo := new(mocks.MockMovieRepo)
	svc := usecase.NewMovieService(&repository.Repository{Movie: movieRepo}, zap.NewNop())

	title := "film"
	movies := []*entity.Movie{
		{Base: entity.Base{ID: uuid.New()}, Title: "Film A", DurationInMinutes: 120},
		{Base: entity.Base{ID: uuid.New()}, Title: "Film B", DurationInMinutes: 95},
	}
	movieRepo.On("FindAll", mock.Anything, 2, 2, &title).Return(movies, nil)
	movieRepo.On("CountAll", mock.Anything, &title).Return(int64(5), nil)

	resp, err := svc.GetMovies(context.Background(), &request.PaginatedRequest{Page: 2, PerPage: 2}, &title)

	require.NoError(t, err)
	require.Len(t, resp.Data, 2)
	assert.Equal(t, "Film A", resp.Data[0].Title)
	assert.Equal(t, int64(5), resp.Pagination.Total)
	assert.Equal(t, 3, resp.Pagination.TotalPages)
}

func TestCreateMovie(t *testing.T) {
	movieRepo := new(mocks.MockMovieRepo)
	svc := usecase.NewMovieService(&repository.Repository{Movie: movieRepo}, zap.NewNop())

	movieRepo.On("Create", mock.Anything, mock.AnythingOfType("*entity.Movie")).Return(nil)

	resp, err := svc.CreateMovie(context.Background(), &request.MovieRequest{
		Title:             "Film A",
		DurationInMinutes: 120,
	})

	require.NoError(t, err)
	assert.Equal(t, "Film A", resp.Title)
	assert.Equal(t, 120, resp.DurationInMinutes)
	movieRepo.AssertExpectations(t)
}

func TestCreateMovie_RejectsZeroDuration(t *testing.T) {
	movieRepo := new(mocks.MockMovieRepo)
	svc := usecase.NewMovieService(&repository.Repository{Movie: movieRepo}, zap.NewNop())

	_, err := svc.CreateMovie(context.Background(), &request.MovieRequest{Title: "Film A"})

	require.ErrorIs(t, err, usecase.ErrValidation)
	movieRepo.AssertNotCalled(t, "Create", mock.Anything, mock.Anything)
}

func TestGetMovieByID_Errors(t *testing.T) {
	movieRepo := new(mocks.MockMovieRepo)
	svc := usecase.NewMovieService(&repository.Repository{Movie: movieRepo}, zap.NewNop())

	_, err := svc.GetMovieByID(context.Background(), "nope")
	assert.ErrorIs(t, err, usecase.ErrValidation)

	id := uuid.New()
	movieRepo.On("FindByID", mock.Anything, id).Return(nil, nil)

	_, err = svc.GetMovieByID(context.Background(), id.String())
	assert.ErrorIs(t, err, usecase.ErrNotFound)
}

func TestDeleteMovie_NotFound(t *testing.T) {
	movieRepo := new(mocks.MockMovieRepo)
	svc := usecase.NewMovieService(&repository.Repository{Movie: movieRepo}, zap.NewNop())

	id := uuid.New()
	movieRepo.On("Delete", mock.Anything, id).Return(repository.ErrNotFound)

	err := svc.DeleteMovie(context.Background(), id.String())

	assert.ErrorIs(t, err, usecase.ErrNotFound)
}
