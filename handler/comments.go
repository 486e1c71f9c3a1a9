package handler

import (
	"log"
	"net/http"
	"strconv"
	"strings"
	"time"

	"comments-service/config"
	"comments-service/model"
	"comments-service/service"
	"comments-service/youtube"

	"github.com/gin-gonic/gin"
)

// Reply budget applied per thread when the caller does not set one.
const defaultMaxRepliesPerThread = 20

type CommentsHandler struct {
	cfg    *config.Config
	svc    *service.CommentService
	events *EventPublisher
}

// NewCommentsHandler wires the comment endpoints. events may be nil when no
// NATS connection is configured.
func NewCommentsHandler(cfg *config.Config, svc *service.CommentService, events *EventPublisher) *CommentsHandler {
	return &CommentsHandler{cfg: cfg, svc: svc, events: events}
}

// GetComments handles GET /api/comments.
func (h *CommentsHandler) GetComments(c *gin.Context) {
	videoID := strings.TrimSpace(c.Query("videoId"))
	rawURL := strings.TrimSpace(c.Query("url"))

	if videoID == "" && rawURL != "" {
		videoID, _ = youtube.ExtractVideoID(rawURL)
	}
	if videoID == "" {
		log.Printf("[WARN] GetComments called without videoId or parsable url")
		c.JSON(http.StatusBadRequest, gin.H{"error": "Missing 'videoId' or parsable 'url' query param."})
		return
	}

	if h.cfg.YouTubeAPIKey == "" {
		log.Printf("[ERROR] YOUTUBE_API_KEY is not configured")
		c.JSON(http.StatusInternalServerError, gin.H{
			"error": "YOUTUBE_API_KEY environment variable is required to fetch YouTube comments.",
		})
		return
	}

	var maxResults *int
	if raw := c.Query("maxResults"); raw != "" {
		n, err := strconv.Atoi(raw)
		if err != nil {
			c.JSON(http.StatusBadRequest, gin.H{"error": "maxResults must be an integer"})
			return
		}
		maxResults = &n
	}

	maxRepliesPerThread := defaultMaxRepliesPerThread
	if raw := c.Query("maxRepliesPerThread"); raw != "" {
		n, err := strconv.Atoi(raw)
		if err != nil {
			c.JSON(http.StatusBadRequest, gin.H{"error": "maxRepliesPerThread must be an integer"})
			return
		}
		maxRepliesPerThread = n
	}

	effectiveMax, effectiveOrder := youtube.NormalizeListParams(maxResults, c.Query("order"))

	page, err := h.svc.FetchCommentThreads(c.Request.Context(), service.ThreadOptions{
		VideoID:             videoID,
		MaxResults:          effectiveMax,
		PageToken:           strings.TrimSpace(c.Query("pageToken")),
		Order:               effectiveOrder,
		IncludeReplies:      isTruthy(c.Query("includeReplies")),
		MaxRepliesPerThread: maxRepliesPerThread,
	})
	if err != nil {
		log.Printf("[ERROR] FetchCommentThreads failed for videoId=%s: %v", videoID, err)
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Internal server error", "details": err.Error()})
		return
	}

	if h.events != nil {
		go h.events.PublishFetch(buildFetchEvent(page))
	}

	c.JSON(http.StatusOK, page)
}

// ResolveVideoID handles GET /api/resolve - the identifier extraction on its
// own, handy for frontends that want to validate a URL before fetching.
func (h *CommentsHandler) ResolveVideoID(c *gin.Context) {
	rawURL := strings.TrimSpace(c.Query("url"))
	if rawURL == "" {
		c.JSON(http.StatusBadRequest, gin.H{"error": "url is required"})
		return
	}

	videoID, ok := youtube.ExtractVideoID(rawURL)
	if !ok {
		c.JSON(http.StatusBadRequest, gin.H{"error": "could not extract a video id from url"})
		return
	}
	c.JSON(http.StatusOK, gin.H{"videoId": videoID})
}

func isTruthy(v string) bool {
	switch strings.ToLower(strings.TrimSpace(v)) {
	case "1", "true", "yes", "on":
		return true
	}
	return false
}

func buildFetchEvent(page *model.CommentPage) model.FetchEvent {
	replies := 0
	for _, t := range page.Threads {
		replies += len(t.Replies)
	}
	return model.FetchEvent{
		VideoID:     page.VideoID,
		ThreadCount: len(page.Threads),
		ReplyCount:  replies,
		Timestamp:   time.Now().UTC().Format(time.RFC3339),
		Source:      "comments-service",
		Version:     "1.0",
	}
}
