package youtube

import (
	"context"
	"net/http"
	"net/http/httptest"
	"net/url"
	"testing"

	"github.com/stretchr/testify/require"
)

func TestClient_ListThreads_RequestShape(t *testing.T) {
	var gotPath string
	var got url.Values
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		gotPath = r.URL.Path
		got = r.URL.Query()
		w.Header().Set("Content-Type", "application/json")
		w.Write([]byte(`{"items": [{"id": "t1"}], "nextPageToken": "NEXT"}`))
	}))
	defer srv.Close()

	c := NewClient("secret", srv.URL)
	resp, err := c.ListThreads(context.Background(), "vid1234abcd", 20, "PAGE", "time")
	require.NoError(t, err)

	require.Equal(t, "/commentThreads", gotPath)
	require.Equal(t, "snippet,replies", got.Get("part"))
	require.Equal(t, "vid1234abcd", got.Get("videoId"))
	require.Equal(t, "20", got.Get("maxResults"))
	require.Equal(t, "time", got.Get("order"))
	require.Equal(t, "plainText", got.Get("textFormat"))
	require.Equal(t, "secret", got.Get("key"))
	require.Equal(t, "PAGE", got.Get("pageToken"))

	require.Len(t, resp.Items, 1)
	require.Equal(t, "t1", resp.Items[0].ID)
	require.Equal(t, "NEXT", resp.NextPageToken)
}

func TestClient_ListThreads_OmitsEmptyPageToken(t *testing.T) {
	var tokenPresent bool
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		_, tokenPresent = r.URL.Query()["pageToken"]
		w.Write([]byte(`{"items": []}`))
	}))
	defer srv.Close()

	c := NewClient("secret", srv.URL)
	_, err := c.ListThreads(context.Background(), "vid1234abcd", 20, "", "relevance")
	require.NoError(t, err)
	require.False(t, tokenPresent)
}

func TestClient_ListReplies_RequestShape(t *testing.T) {
	var gotPath string
	var got url.Values
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		gotPath = r.URL.Path
		got = r.URL.Query()
		w.Write([]byte(`{"items": [{"id": "r1", "snippet": {"parentId": "c1", "likeCount": 3}}]}`))
	}))
	defer srv.Close()

	c := NewClient("secret", srv.URL)
	resp, err := c.ListReplies(context.Background(), "c1", 15, "")
	require.NoError(t, err)

	require.Equal(t, "/comments", gotPath)
	require.Equal(t, "snippet", got.Get("part"))
	require.Equal(t, "c1", got.Get("parentId"))
	require.Equal(t, "15", got.Get("maxResults"))
	require.Equal(t, "plainText", got.Get("textFormat"))

	require.Len(t, resp.Items, 1)
	require.Equal(t, "c1", resp.Items[0].Snippet.ParentID)
	require.Equal(t, 3, resp.Items[0].Snippet.LikeCount)
}

func TestClient_NonOKStatusIsError(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		http.Error(w, `{"error": {"code": 403}}`, http.StatusForbidden)
	}))
	defer srv.Close()

	c := NewClient("secret", srv.URL)
	_, err := c.ListThreads(context.Background(), "vid1234abcd", 20, "", "relevance")
	require.Error(t, err)

	var statusErr *StatusError
	require.ErrorAs(t, err, &statusErr)
	require.Equal(t, http.StatusForbidden, statusErr.StatusCode)
	require.Equal(t, "commentThreads", statusErr.Endpoint)
}

func TestClient_MissingOptionalFieldsDefault(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		// No likeCount, no authorChannelId, no updatedAt.
		w.Write([]byte(`{"items": [{"id": "t1", "snippet": {"topLevelComment": {"id": "c1", "snippet": {"textDisplay": "hi"}}}}]}`))
	}))
	defer srv.Close()

	c := NewClient("secret", srv.URL)
	resp, err := c.ListThreads(context.Background(), "vid1234abcd", 20, "", "relevance")
	require.NoError(t, err)

	top := resp.Items[0].Snippet.TopLevelComment
	require.Equal(t, "hi", top.Snippet.TextDisplay)
	require.Equal(t, 0, top.Snippet.LikeCount)
	require.Equal(t, "", top.Snippet.AuthorChannelID.Value)
	require.Equal(t, "", top.Snippet.UpdatedAt)
}
