package model

// Comment is one normalized remark, either a top-level comment or a reply.
type Comment struct {
	ID              string `json:"id"`
	Text            string `json:"text"`
	Author          string `json:"author"`
	AuthorChannelID string `json:"authorChannelId,omitempty"`
	PublishedAt     string `json:"publishedAt"`
	UpdatedAt       string `json:"updatedAt"`
	LikeCount       int    `json:"likeCount"`
	IsReply         bool   `json:"isReply"`
	ParentID        string `json:"parentId,omitempty"`
}

// Thread is a top-level comment together with its replies. ReplyCount is the
// count reported by YouTube and may exceed len(Replies).
type Thread struct {
	ThreadID        string    `json:"threadId"`
	TopLevelComment Comment   `json:"topLevelComment"`
	ReplyCount      int       `json:"replyCount"`
	Replies         []Comment `json:"replies"`
}

// CommentPage is one page of threads for a video. NextPageToken is set when
// more thread pages exist upstream.
type CommentPage struct {
	VideoID       string   `json:"videoId"`
	NextPageToken string   `json:"nextPageToken,omitempty"`
	Threads       []Thread `json:"threads"`
}

// FetchEvent is the message published to NATS after a successful fetch.
type FetchEvent struct {
	VideoID     string `json:"videoId"`
	ThreadCount int    `json:"threadCount"`
	ReplyCount  int    `json:"replyCount"`
	Timestamp   string `json:"timestamp"`
	Source      string `json:"source"`
	Version     string `json:"version"`
}
