package models

type ForumUser struct {
	UserID           ID        `json:"userId"`
	Name             string    `json:"name"`
	EmailAddress     string    `json:"emailAddress"`
	IsActive         Flag      `json:"isActive"`
	IsEmailVerified  Flag      `json:"isEmailVerified"`
	TotalCommunities Count     `json:"totalCommunities"`
	TotalPosts       Count     `json:"totalPosts"`
	CreatedAt        Timestamp `json:"createdAt"`
	VerifiedAt       Timestamp `json:"verifiedAt"`
}

// ForumPost is one entry of /forum-activity.
type ForumPost struct {
	ID            ID        `json:"id"`
	PostID        ID        `json:"postId"`
	PostTitle     string    `json:"postTitle"`
	PostImage     string    `json:"postImage"`
	LikesCount    Count     `json:"likesCount"`
	CommentsCount Count     `json:"commentsCount"`
	CommunityID   ID        `json:"communityId"`
	CommunityName string    `json:"communityName"`
	AuthorName    string    `json:"authorName"`
	CreatedAt     Timestamp `json:"createdAt"`
	UpdatedAt     Timestamp `json:"updatedAt"`
}
