package services

import (
	"net/http"
	"testing"

	"devcamper/app/apierr"
	"devcamper/app/dto"
	"devcamper/app/repo"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func reviewReq(title string) dto.ReviewRequest {
	return dto.ReviewRequest{Title: title, Text: "Solid camp", Rating: 8}
}

func TestReviewOwnership(t *testing.T) {
	t.Parallel()
	db := testDB(t)
	bootcamps := newBootcampService(db)
	reviews := NewReviewService(repo.NewReviewRepository(db), repo.NewBootcampRepository(db))

	publisher := newUser(t, db, "pub@example.com", "publisher")
	author := newUser(t, db, "author@example.com", "user")
	other := newUser(t, db, "other@example.com", "user")
	admin := newUser(t, db, "admin@example.com", "admin")

	b, err := bootcamps.Create(publisher, bootcampReq("Camp"))
	require.NoError(t, err)

	rv, err := reviews.Create(b.ID, author, reviewReq("Great"))
	require.NoError(t, err)

	_, err = reviews.Update(rv.ID, other, reviewReq("Tampered"))
	require.Error(t, err)
	assert.Equal(t, http.StatusForbidden, apiStatus(t, err))

	updated, err := reviews.Update(rv.ID, author, reviewReq("Even Better"))
	require.NoError(t, err)
	assert.Equal(t, "Even Better", updated.Title)

	err = reviews.Delete(rv.ID, other)
	require.Error(t, err)
	assert.Equal(t, http.StatusForbidden, apiStatus(t, err))

	require.NoError(t, reviews.Delete(rv.ID, admin))
}

func TestReview_OnePerUserPerBootcamp(t *testing.T) {
	t.Parallel()
	db := testDB(t)
	bootcamps := newBootcampService(db)
	reviews := NewReviewService(repo.NewReviewRepository(db), repo.NewBootcampRepository(db))

	publisher := newUser(t, db, "pub@example.com", "publisher")
	author := newUser(t, db, "author@example.com", "user")

	b, err := bootcamps.Create(publisher, bootcampReq("Camp"))
	require.NoError(t, err)

	_, err = reviews.Create(b.ID, author, reviewReq("First"))
	require.NoError(t, err)

	_, err = reviews.Create(b.ID, author, reviewReq("Second"))
	require.Error(t, err)
	assert.Equal(t, http.StatusBadRequest, apierr.Normalize(err).Status)
}

func TestReviewCreate_UnknownBootcamp(t *testing.T) {
	t.Parallel()
	db := testDB(t)
	reviews := NewReviewService(repo.NewReviewRepository(db), repo.NewBootcampRepository(db))
	author := newUser(t, db, "author@example.com", "user")

	_, err := reviews.Create("no-such-id", author, reviewReq("Orphan"))
	require.Error(t, err)
	assert.Equal(t, http.StatusNotFound, apierr.Normalize(err).Status)
}
