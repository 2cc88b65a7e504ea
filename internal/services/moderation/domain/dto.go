package domain

// FetchInput asks for one classified page of a video's comments
type FetchInput struct {
	URL       string `json:"url"        validate:"required,notblank,max=2048" example:"https://www.youtube.com/watch?v=dQw4w9WgXcQ"`
	PageToken string `json:"page_token" validate:"omitempty,max=512" example:""`
}

// DeleteInput lists the comment ids to remove
type DeleteInput struct {
	CommentIDs []string `json:"comment_ids" validate:"required,min=1,dive,notblank,max=128" example:"UgzQ3m1vY8,UgwK2..."`
}
