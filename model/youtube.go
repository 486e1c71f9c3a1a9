package model

// YouTube API response structures

type CommentThreadResponse struct {
	Items         []CommentThreadItem `json:"items"`
	NextPageToken string              `json:"nextPageToken,omitempty"`
}

type CommentThreadItem struct {
	ID      string `json:"id"`
	Snippet struct {
		TopLevelComment CommentItem `json:"topLevelComment"`
		TotalReplyCount int         `json:"totalReplyCount"`
	} `json:"snippet"`
	Replies struct {
		Comments []CommentItem `json:"comments"`
	} `json:"replies,omitempty"`
}

type CommentListResponse struct {
	Items         []CommentItem `json:"items"`
	NextPageToken string        `json:"nextPageToken,omitempty"`
}

type CommentItem struct {
	ID      string `json:"id"`
	Snippet struct {
		TextDisplay       string `json:"textDisplay"`
		AuthorDisplayName string `json:"authorDisplayName"`
		AuthorChannelID   struct {
			Value string `json:"value"`
		} `json:"authorChannelId"`
		PublishedAt string `json:"publishedAt"`
		UpdatedAt   string `json:"updatedAt"`
		LikeCount   int    `json:"likeCount"`
		ParentID    string `json:"parentId"`
	} `json:"snippet"`
}
