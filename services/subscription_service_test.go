package services

import (
	"fmt"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestFollowSelfConflicts(t *testing.T) {
	db := newTestDB(t)
	alice := createUser(t, db, "alice")

	svc := NewSubscriptionService(db)
	_, err := svc.Follow(alice.ID, alice.ID)
	assert.ErrorIs(t, err, ErrSelfFollow)
}

func TestFollowTwiceConflicts(t *testing.T) {
	db := newTestDB(t)
	alice := createUser(t, db, "alice")
	bob := createUser(t, db, "bob")

	svc := NewSubscriptionService(db)

	view, err := svc.Follow(alice.ID, bob.ID)
	require.NoError(t, err)
	assert.Equal(t, bob.ID, view.ID)
	assert.True(t, view.IsSubscribed)

	_, err = svc.Follow(alice.ID, bob.ID)
	assert.ErrorIs(t, err, ErrAlreadyExists)

	// The reverse direction is a distinct edge.
	_, err = svc.Follow(bob.ID, alice.ID)
	assert.NoError(t, err)
}

func TestUnfollowWithoutEdge(t *testing.T) {
	db := newTestDB(t)
	alice := createUser(t, db, "alice")
	bob := createUser(t, db, "bob")

	svc := NewSubscriptionService(db)

	err := svc.Unfollow(alice.ID, bob.ID)
	assert.ErrorIs(t, err, ErrNotFound)

	err = svc.Unfollow(alice.ID, 9999)
	assert.ErrorIs(t, err, ErrUserNotFound)
}

func TestSubscriptionListCapsRecipes(t *testing.T) {
	db := newTestDB(t)
	alice := createUser(t, db, "alice")
	bob := createUser(t, db, "bob")

	for i := 0; i < 5; i++ {
		createRecipe(t, db, bob.ID, fmt.Sprintf("recipe-%d", i))
	}

	svc := NewSubscriptionService(db)
	_, err := svc.Follow(alice.ID, bob.ID)
	require.NoError(t, err)

	capped, err := svc.List(alice.ID, 2)
	require.NoError(t, err)
	require.Len(t, capped, 1)
	assert.Len(t, capped[0].Recipes, 2)
	assert.EqualValues(t, 5, capped[0].RecipesCount) // count ignores the cap

	uncapped, err := svc.List(alice.ID, NoRecipeCap)
	require.NoError(t, err)
	require.Len(t, uncapped, 1)
	assert.Len(t, uncapped[0].Recipes, 5)
}

func TestSubscriptionListAfterUnfollow(t *testing.T) {
	db := newTestDB(t)
	alice := createUser(t, db, "alice")
	bob := createUser(t, db, "bob")

	svc := NewSubscriptionService(db)
	_, err := svc.Follow(alice.ID, bob.ID)
	require.NoError(t, err)
	require.NoError(t, svc.Unfollow(alice.ID, bob.ID))

	views, err := svc.List(alice.ID, NoRecipeCap)
	require.NoError(t, err)
	assert.Empty(t, views)
}
