package service

import (
	"context"
	"log"

	"comments-service/metrics"
	"comments-service/model"
	"comments-service/youtube"
)

// ThreadOptions controls one comment page fetch. MaxResults and Order are
// expected to be normalized already (youtube.NormalizeListParams).
type ThreadOptions struct {
	VideoID             string
	MaxResults          int
	PageToken           string
	Order               string
	IncludeReplies      bool
	MaxRepliesPerThread int
}

type CommentService struct {
	client *youtube.Client
}

func NewCommentService(client *youtube.Client) *CommentService {
	return &CommentService{client: client}
}

// FetchCommentThreads fetches exactly one page of comment threads and
// normalizes it. Thread order is kept as YouTube returned it; paging across
// thread pages is the caller's job via the returned nextPageToken. Any
// upstream failure aborts the whole request - no partial pages.
func (s *CommentService) FetchCommentThreads(ctx context.Context, opts ThreadOptions) (*model.CommentPage, error) {
	log.Printf("[INFO] Fetching comment threads for videoId=%s, maxResults=%d, order=%s, includeReplies=%v",
		opts.VideoID, opts.MaxResults, opts.Order, opts.IncludeReplies)

	resp, err := s.client.ListThreads(ctx, opts.VideoID, opts.MaxResults, opts.PageToken, opts.Order)
	if err != nil {
		return nil, err
	}

	page := &model.CommentPage{
		VideoID:       opts.VideoID,
		NextPageToken: resp.NextPageToken,
		Threads:       make([]model.Thread, 0, len(resp.Items)),
	}

	totalReplies := 0
	for _, item := range resp.Items {
		top := normalizeComment(item.Snippet.TopLevelComment, false)

		// Replies embedded inline are truncated by YouTube to a handful.
		replies := make([]model.Comment, 0, len(item.Replies.Comments))
		for _, r := range item.Replies.Comments {
			replies = append(replies, normalizeComment(r, true))
		}

		if opts.IncludeReplies && item.Snippet.TotalReplyCount > len(replies) {
			replies, err = s.fetchRemainingReplies(ctx, top.ID, replies, opts.MaxRepliesPerThread)
			if err != nil {
				return nil, err
			}
		}

		totalReplies += len(replies)
		page.Threads = append(page.Threads, model.Thread{
			ThreadID:        item.ID,
			TopLevelComment: top,
			ReplyCount:      item.Snippet.TotalReplyCount,
			Replies:         replies,
		})
	}

	metrics.CommentThreadsServed.Add(float64(len(page.Threads)))
	metrics.CommentRepliesServed.Add(float64(totalReplies))

	log.Printf("[INFO] Fetched %d threads (%d replies) for videoId=%s",
		len(page.Threads), totalReplies, opts.VideoID)
	return page, nil
}

// fetchRemainingReplies pages through comments.list for one thread until the
// reply budget is used up, the continuation token runs out, or a batch comes
// back empty (guards against a token that keeps being re-issued with no
// items). Fetched replies are appended after the inline ones; YouTube may
// re-include inline reply ids in comments.list, and no deduplication is done.
func (s *CommentService) fetchRemainingReplies(ctx context.Context, parentID string, replies []model.Comment, maxReplies int) ([]model.Comment, error) {
	pageToken := ""
	for len(replies) < maxReplies {
		limit := maxReplies - len(replies)
		if limit > youtube.MaxResultsLimit {
			limit = youtube.MaxResultsLimit
		}

		resp, err := s.client.ListReplies(ctx, parentID, limit, pageToken)
		if err != nil {
			return nil, err
		}

		for _, r := range resp.Items {
			if len(replies) >= maxReplies {
				break
			}
			replies = append(replies, normalizeComment(r, true))
		}

		if resp.NextPageToken == "" || len(resp.Items) == 0 {
			break
		}
		pageToken = resp.NextPageToken
	}
	return replies, nil
}

// normalizeComment flattens a raw API comment into the response shape.
// Missing optional fields stay at their zero values rather than failing the
// request. A reply's parentId is passed through exactly as reported, even if
// it disagrees with the owning thread.
func normalizeComment(item model.CommentItem, isReply bool) model.Comment {
	c := model.Comment{
		ID:              item.ID,
		Text:            item.Snippet.TextDisplay,
		Author:          item.Snippet.AuthorDisplayName,
		AuthorChannelID: item.Snippet.AuthorChannelID.Value,
		PublishedAt:     item.Snippet.PublishedAt,
		UpdatedAt:       item.Snippet.UpdatedAt,
		LikeCount:       item.Snippet.LikeCount,
		IsReply:         isReply,
	}
	if isReply {
		c.ParentID = item.Snippet.ParentID
	}
	return c
}
