package controllers

import (
	"context"

	"github.com/gin-gonic/gin"

	"commuta_admin/internal/api"
	"commuta_admin/internal/listview"
	"commuta_admin/internal/models"
	"commuta_admin/internal/query"
	"commuta_admin/internal/views"
)

const (
	tabForumUsers = "users"
	tabForumPosts = "posts"
)

var forumTabs = []views.Option{
	{Value: tabForumUsers, Label: "Users"},
	{Value: tabForumPosts, Label: "Posts"},
}

var forumUsers = resource[models.ForumUser]{
	spec:   listview.ForumUsers,
	key:    query.Key{"forum-users"},
	fetch:  func(c *api.Client) func(context.Context) ([]models.ForumUser, error) { return c.ForumUsers },
	export: "/forum/export.csv",
	mode:   views.ModeTable,
}

var forumPosts = resource[models.ForumPost]{
	spec:    listview.ForumPosts,
	key:     query.Key{"forum-activity"},
	fetch:   func(c *api.Client) func(context.Context) ([]models.ForumPost, error) { return c.ForumActivity },
	export:  "/forum/export.csv",
	mode:    views.ModeCards,
	selects: func(c *gin.Context, records []models.ForumPost) ([]views.Filter, []func(models.ForumPost) bool) {
		community := c.Query("community")
		field := func(p models.ForumPost) string { return p.CommunityName }
		return []views.Filter{choices("community", "Communities", community, records, field)},
			[]func(models.ForumPost) bool{listview.Equals(community, field)}
	},
}

func forumTab(c *gin.Context) string {
	if c.Query("tab") == tabForumPosts {
		return tabForumPosts
	}
	return tabForumUsers
}

// Forum renders GET /forum. Only the active tab is loaded; each tab pages
// on its own.
func (h *Handler) Forum(c *gin.Context) {
	tab := forumTab(c)
	data := views.Forum{Tab: tab, Tabs: views.Tabs(c.Request.URL, tab, forumTabs...)}
	extra := map[string]string{"tab": tab}

	var loading bool
	if tab == tabForumPosts {
		l, ok := readList(h, c, forumPosts)
		if !ok {
			return
		}
		l.Extra = extra
		data.Posts, loading = l, l.State == views.StateLoading
	} else {
		l, ok := readList(h, c, forumUsers)
		if !ok {
			return
		}
		l.Extra = extra
		data.Users, loading = l, l.State == views.StateLoading
	}

	h.render(c, "forum", views.Page{
		Title:   "Forum",
		Nav:     "forum",
		Refresh: refreshIf(loading),
		Data:    data,
	})
}

// ExportForum serves GET /forum/export.csv for the tab in the query.
func (h *Handler) ExportForum(c *gin.Context) {
	if forumTab(c) == tabForumPosts {
		exportList(h, c, forumPosts)
		return
	}
	exportList(h, c, forumUsers)
}
