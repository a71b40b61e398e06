package server

import (
	"net/http"
	"testing"

	"toolverse/internal/models"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func postInput() map[string]any {
	return map[string]any{
		"title":    "Prompt patterns",
		"content":  "Long form content",
		"excerpt":  "Short excerpt",
		"author":   "Ada",
		"category": "Tutorial",
		"readTime": 4,
		"views":    1000,
		"featured": true,
	}
}

func TestGetBlogPosts(t *testing.T) {
	_, app := newTestServer(t, nil)

	resp := doJSON(t, app, http.MethodGet, "/api/blog", nil)
	require.Equal(t, http.StatusOK, resp.StatusCode)
	posts := decode[[]models.BlogPost](t, resp)
	require.Len(t, posts, 2)
	assert.Equal(t, "1", posts[0].ID)

	resp = doJSON(t, app, http.MethodGet, "/api/blog?category=Tutorial", nil)
	posts = decode[[]models.BlogPost](t, resp)
	require.Len(t, posts, 1)
	assert.Equal(t, "2", posts[0].ID)

	resp = doJSON(t, app, http.MethodGet, "/api/blog?featured=false&limit=1", nil)
	posts = decode[[]models.BlogPost](t, resp)
	require.Len(t, posts, 1)
	assert.Equal(t, "2", posts[0].ID)
}

func TestGetBlogPost(t *testing.T) {
	_, app := newTestServer(t, nil)

	resp := doJSON(t, app, http.MethodGet, "/api/blog/2", nil)
	require.Equal(t, http.StatusOK, resp.StatusCode)
	post := decode[models.BlogPost](t, resp)
	assert.Equal(t, "Getting Started with ChatGPT API", post.Title)

	resp = doJSON(t, app, http.MethodGet, "/api/blog/999", nil)
	assert.Equal(t, http.StatusNotFound, resp.StatusCode)
}

func TestCreateBlogPost_FlagOff(t *testing.T) {
	_, app := newTestServer(t, nil)

	resp := doJSON(t, app, http.MethodPost, "/api/blog", postInput())
	assert.Equal(t, http.StatusNotFound, resp.StatusCode)
}

func TestCreateBlogPost_FlagOn(t *testing.T) {
	_, app := newTestServer(t, newMiniredis(t), withFlags("blog_submissions=on"))

	// warm the list cache so the create must invalidate it
	doJSON(t, app, http.MethodGet, "/api/blog", nil)

	resp := doJSON(t, app, http.MethodPost, "/api/blog", postInput())
	require.Equal(t, http.StatusCreated, resp.StatusCode)
	post := decode[models.BlogPost](t, resp)
	assert.Zero(t, post.Views)
	assert.False(t, post.Featured)

	resp = doJSON(t, app, http.MethodGet, "/api/blog", nil)
	assert.Len(t, decode[[]models.BlogPost](t, resp), 3)

	resp = doJSON(t, app, http.MethodPost, "/api/blog", map[string]any{"title": "x"})
	assert.Equal(t, http.StatusBadRequest, resp.StatusCode)
}

func TestCreateBlogPost_BlankOptionalFieldsAreAbsent(t *testing.T) {
	_, app := newTestServer(t, nil, withFlags("blog_submissions=on"))

	in := postInput()
	in["imageUrl"] = ""
	in["authorRole"] = "  "

	resp := doJSON(t, app, http.MethodPost, "/api/blog", in)
	require.Equal(t, http.StatusCreated, resp.StatusCode)
	post := decode[models.BlogPost](t, resp)
	assert.Nil(t, post.ImageURL)
	assert.Nil(t, post.AuthorRole)
}
