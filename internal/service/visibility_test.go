package service

import (
	"testing"
	"time"

	"github.com/blogicum-next/internal/models"
)

func TestIsPubliclyVisible(t *testing.T) {
	now := time.Date(2025, 6, 1, 12, 0, 0, 0, time.UTC)
	catID := uint(1)

	publishedCat := &models.Category{ID: catID, IsPublished: true}
	hiddenCat := &models.Category{ID: catID, IsPublished: false}

	cases := []struct {
		name string
		post *models.Post
		want bool
	}{
		{"nil post", nil, false},
		{"published no category", &models.Post{IsPublished: true, PubDate: now.Add(-time.Hour)}, true},
		{"unpublished", &models.Post{IsPublished: false, PubDate: now.Add(-time.Hour)}, false},
		{"future pub date", &models.Post{IsPublished: true, PubDate: now.Add(time.Hour)}, false},
		{"pub date equals now", &models.Post{IsPublished: true, PubDate: now}, true},
		{"published category", &models.Post{IsPublished: true, PubDate: now.Add(-time.Hour), CategoryID: &catID, Category: publishedCat}, true},
		{"hidden category", &models.Post{IsPublished: true, PubDate: now.Add(-time.Hour), CategoryID: &catID, Category: hiddenCat}, false},
		{"category not loaded", &models.Post{IsPublished: true, PubDate: now.Add(-time.Hour), CategoryID: &catID}, false},
	}

	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			if got := IsPubliclyVisible(tc.post, now); got != tc.want {
				t.Fatalf("IsPubliclyVisible want %v got %v", tc.want, got)
			}
		})
	}
}

func TestCanViewPostAuthorBypass(t *testing.T) {
	now := time.Date(2025, 6, 1, 12, 0, 0, 0, time.UTC)
	post := &models.Post{
		IsPublished: false,
		PubDate:     now.Add(time.Hour),
		AuthorID:    7,
	}

	if !CanViewPost(7, post, now) {
		t.Fatal("author should always see own post")
	}
	if CanViewPost(8, post, now) {
		t.Fatal("other user should not see hidden post")
	}
	if CanViewPost(0, post, now) {
		t.Fatal("anonymous should not see hidden post")
	}
}

func TestCanMutate(t *testing.T) {
	if CanMutate(0, 0) {
		t.Fatal("anonymous can never mutate")
	}
	if CanMutate(1, 2) {
		t.Fatal("non-owner can not mutate")
	}
	if !CanMutate(3, 3) {
		t.Fatal("owner should be able to mutate")
	}
}
