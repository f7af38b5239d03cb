package command

import (
	"fmt"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/sardorbek/bozor/internal/likes/domain"
)

// fakeLikeRepo is an in-memory LikeRepository for tests
type fakeLikeRepo struct {
	likes  map[uint]*domain.Like
	nextID uint
}

func newFakeLikeRepo() *fakeLikeRepo {
	return &fakeLikeRepo{likes: make(map[uint]*domain.Like), nextID: 1}
}

func (f *fakeLikeRepo) FindByUser(userID uint) ([]domain.Like, error) {
	var out []domain.Like
	for _, like := range f.likes {
		if like.UserID == userID {
			out = append(out, *like)
		}
	}
	return out, nil
}

func (f *fakeLikeRepo) FindByUserAndProduct(userID, productID uint) (*domain.Like, error) {
	for _, like := range f.likes {
		if like.UserID == userID && like.ProductID == productID {
			copied := *like
			return &copied, nil
		}
	}
	return nil, fmt.Errorf("record not found")
}

func (f *fakeLikeRepo) Insert(like *domain.Like) error {
	for _, existing := range f.likes {
		if existing.UserID == like.UserID && existing.ProductID == like.ProductID {
			return fmt.Errorf("duplicate key value violates unique constraint")
		}
	}
	like.ID = f.nextID
	f.nextID++
	copied := *like
	f.likes[like.ID] = &copied
	return nil
}

func (f *fakeLikeRepo) Delete(id uint) error {
	delete(f.likes, id)
	return nil
}

func TestToggleLikeAddsThenRemoves(t *testing.T) {
	repo := newFakeLikeRepo()
	handler := NewToggleLikeHandler(repo)

	liked, err := handler.Handle(ToggleLikeCommand{UserID: 7, ProductID: 1})
	require.NoError(t, err)
	assert.True(t, liked)

	likes, _ := repo.FindByUser(7)
	require.Len(t, likes, 1)

	liked, err = handler.Handle(ToggleLikeCommand{UserID: 7, ProductID: 1})
	require.NoError(t, err)
	assert.False(t, liked)

	likes, _ = repo.FindByUser(7)
	assert.Empty(t, likes)
}

func TestToggleLikeIsItsOwnInverse(t *testing.T) {
	repo := newFakeLikeRepo()
	handler := NewToggleLikeHandler(repo)

	// Seed an existing like for another product
	_, err := handler.Handle(ToggleLikeCommand{UserID: 7, ProductID: 2})
	require.NoError(t, err)

	before, _ := repo.FindByUser(7)

	_, err = handler.Handle(ToggleLikeCommand{UserID: 7, ProductID: 1})
	require.NoError(t, err)
	_, err = handler.Handle(ToggleLikeCommand{UserID: 7, ProductID: 1})
	require.NoError(t, err)

	after, _ := repo.FindByUser(7)
	assert.ElementsMatch(t, before, after)
}

func TestToggleLikeOnRowInsertedElsewhereRemovesIt(t *testing.T) {
	repo := newFakeLikeRepo()
	handler := NewToggleLikeHandler(repo)

	// Row created by another session
	require.NoError(t, repo.Insert(&domain.Like{UserID: 7, ProductID: 1}))

	liked, err := handler.Handle(ToggleLikeCommand{UserID: 7, ProductID: 1})
	require.NoError(t, err)
	assert.False(t, liked)

	likes, _ := repo.FindByUser(7)
	assert.Empty(t, likes)
}

func TestToggleLikeRequiresUser(t *testing.T) {
	handler := NewToggleLikeHandler(newFakeLikeRepo())

	_, err := handler.Handle(ToggleLikeCommand{ProductID: 1})
	assert.Error(t, err)
}
