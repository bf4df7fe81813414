package service

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/abhi1440/RateMyMovieAPP/internal/dto"
)

func TestGenreService_Create(t *testing.T) {
	svc := NewGenreService(newMockGenreRepository())

	genre, err := svc.Create(context.Background(), &dto.CreateGenreRequest{Name: "Horror"})
	assert.NoError(t, err)
	assert.NotEmpty(t, genre.ID)
	assert.Equal(t, "Horror", genre.Name)

	_, err = svc.Create(context.Background(), &dto.CreateGenreRequest{Name: "Horror"})
	assert.ErrorIs(t, err, ErrGenreAlreadyExists)
}

func TestGenreService_Update(t *testing.T) {
	repo := newMockGenreRepository()
	svc := NewGenreService(repo)

	horror, _ := svc.Create(context.Background(), &dto.CreateGenreRequest{Name: "Horror"})
	_, _ = svc.Create(context.Background(), &dto.CreateGenreRequest{Name: "Comedy"})

	t.Run("rename", func(t *testing.T) {
		genre, err := svc.Update(context.Background(), horror.ID, &dto.UpdateGenreRequest{Name: "Thriller"})
		assert.NoError(t, err)
		assert.Equal(t, "Thriller", genre.Name)
		assert.Equal(t, "Thriller", repo.genres[horror.ID].Name)
	})

	t.Run("rename to existing name", func(t *testing.T) {
		_, err := svc.Update(context.Background(), horror.ID, &dto.UpdateGenreRequest{Name: "Comedy"})
		assert.ErrorIs(t, err, ErrGenreAlreadyExists)
	})

	t.Run("unknown genre", func(t *testing.T) {
		_, err := svc.Update(context.Background(), "missing", &dto.UpdateGenreRequest{Name: "Anything"})
		assert.ErrorIs(t, err, ErrGenreNotFound)
	})
}

func TestGenreService_Delete(t *testing.T) {
	svc := NewGenreService(newMockGenreRepository())

	genre, _ := svc.Create(context.Background(), &dto.CreateGenreRequest{Name: "Horror"})

	assert.NoError(t, svc.Delete(context.Background(), genre.ID))
	assert.ErrorIs(t, svc.Delete(context.Background(), genre.ID), ErrGenreNotFound)
}

func TestGenreService_List(t *testing.T) {
	svc := NewGenreService(newMockGenreRepository())

	_, _ = svc.Create(context.Background(), &dto.CreateGenreRequest{Name: "Horror"})
	_, _ = svc.Create(context.Background(), &dto.CreateGenreRequest{Name: "Comedy"})

	genres, err := svc.List(context.Background())
	assert.NoError(t, err)
	assert.Len(t, genres, 2)
	assert.Equal(t, "Comedy", genres[0].Name)
}
