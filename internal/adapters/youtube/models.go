package youtube

// CommentThreadList is the commentThreads.list response.
// Items is a pointer so a missing array can be told apart from an empty one
type CommentThreadList struct {
	Items         *[]CommentThread `json:"items"`
	NextPageToken string           `json:"nextPageToken,omitempty"`
	PageInfo      struct {
		TotalResults   int `json:"totalResults"`
		ResultsPerPage int `json:"resultsPerPage"`
	} `json:"pageInfo"`
}

// CommentThread is a partial commentThread resource
type CommentThread struct {
	ID      string `json:"id"`
	Snippet struct {
		VideoID         string  `json:"videoId"`
		TopLevelComment Comment `json:"topLevelComment"`
		TotalReplyCount int     `json:"totalReplyCount"`
	} `json:"snippet"`
}

// Comment is a partial comment resource
type Comment struct {
	ID      string         `json:"id"`
	Snippet CommentSnippet `json:"snippet"`
}

// CommentSnippet holds the fields moderation reads
type CommentSnippet struct {
	TextDisplay           string `json:"textDisplay"`
	TextOriginal          string `json:"textOriginal"`
	AuthorDisplayName     string `json:"authorDisplayName"`
	AuthorProfileImageURL string `json:"authorProfileImageUrl"`
	AuthorChannelURL      string `json:"authorChannelUrl"`
	LikeCount             int64  `json:"likeCount"`
	PublishedAt           string `json:"publishedAt"`
	UpdatedAt             string `json:"updatedAt"`
}

// errorEnvelope is the platform's error body
type errorEnvelope struct {
	Error struct {
		Code    int    `json:"code"`
		Message string `json:"message"`
		Status  string `json:"status"`
		Errors  []struct {
			Message string `json:"message"`
			Domain  string `json:"domain"`
			Reason  string `json:"reason"`
		} `json:"errors"`
	} `json:"error"`
}
