package handlers

import (
	"fmt"
	"strconv"

	"peersupport/app"
	"peersupport/models"
)

func parseID(arg string) (int64, bool) {
	id, err := strconv.ParseInt(arg, 10, 64)
	if err != nil {
		fmt.Printf("Invalid id %q.\n", arg)
		return 0, false
	}
	return id, true
}

// findPost locates a post in the forum cache by id.
func findPost(a *app.App, postID int64) (models.ForumPost, bool) {
	for _, p := range a.Forums.Posts() {
		if p.ID == postID {
			return p, true
		}
	}
	fmt.Printf("Post %d is not in the current feed. Run 'posts' first.\n", postID)
	return models.ForumPost{}, false
}

// HandleForums lists every forum.
func HandleForums(a *app.App) {
	ctx, cancel := reqCtx()
	defer cancel()

	forums, err := a.Forum.Forums(ctx)
	if err != nil {
		fail(err)
		return
	}
	for _, f := range forums {
		marker := " "
		if selected := a.Forums.SelectedForum(); selected != nil && selected.ID == f.ID {
			marker = "*"
		}
		fmt.Printf("%s [%d] %s (%s) — %d posts\n", marker, f.ID, f.Name, f.Thematic, f.PostCount)
	}
}

// HandleSelect switches the current forum.
func HandleSelect(a *app.App, args []string) {
	if len(args) != 1 {
		fmt.Println("Usage: select <forum-id>")
		return
	}
	forumID, ok := parseID(args[0])
	if !ok {
		return
	}

	for _, f := range a.Forums.Forums() {
		if f.ID == forumID {
			selected := f
			a.Forum.Select(&selected)
			fmt.Printf("Selected forum %q.\n", f.Name)
			return
		}
	}
	fmt.Printf("No forum %d. Run 'forums' first.\n", forumID)
}

// HandlePosts lists the selected forum's posts.
func HandlePosts(a *app.App) {
	ctx, cancel := reqCtx()
	defer cancel()

	posts, err := a.Forum.Posts(ctx)
	if err != nil {
		fail(err)
		return
	}
	if len(posts) == 0 {
		fmt.Println("No posts yet. Be the first to share.")
		return
	}
	for _, p := range posts {
		author := p.AuthorName
		if p.IsAnonymous {
			author = "anonymous"
		}
		fmt.Printf("[%d] %s — by %s, %d likes, %d comments\n", p.ID, p.Title, author, p.LikeCount, p.ResponseCount)
	}
}

// HandleNewPost creates a post in the selected forum.
func HandleNewPost(a *app.App, args []string) {
	args, anon := popAnonFlag(args)
	title, content, ok := splitTitleContent(args)
	if !ok {
		fmt.Println("Usage: newpost [-anon] <title> :: <content>")
		return
	}

	ctx, cancel := reqCtx()
	defer cancel()

	created, err := a.Forum.CreatePost(ctx, title, content, anon)
	if err != nil {
		fail(err)
		return
	}
	fmt.Printf("Posted %q as post %d.\n", created.Title, created.ID)
}

// HandleEditPost edits one of the user's posts.
func HandleEditPost(a *app.App, args []string) {
	if len(args) < 2 {
		fmt.Println("Usage: editpost <post-id> <title> :: <content>")
		return
	}
	postID, ok := parseID(args[0])
	if !ok {
		return
	}
	title, content, ok := splitTitleContent(args[1:])
	if !ok {
		fmt.Println("Usage: editpost <post-id> <title> :: <content>")
		return
	}
	post, ok := findPost(a, postID)
	if !ok {
		return
	}

	ctx, cancel := reqCtx()
	defer cancel()

	if _, err := a.Forum.UpdatePost(ctx, post, title, content); err != nil {
		fail(err)
		return
	}
	fmt.Println("Post updated.")
}

// HandleDelPost deletes one of the user's posts.
func HandleDelPost(a *app.App, args []string) {
	if len(args) != 1 {
		fmt.Println("Usage: delpost <post-id>")
		return
	}
	postID, ok := parseID(args[0])
	if !ok {
		return
	}
	post, ok := findPost(a, postID)
	if !ok {
		return
	}

	ctx, cancel := reqCtx()
	defer cancel()

	if err := a.Forum.DeletePost(ctx, post); err != nil {
		fail(err)
		return
	}
	fmt.Println("Post deleted.")
}

// HandleLike likes a post from the feed.
func HandleLike(a *app.App, args []string) {
	if len(args) != 1 {
		fmt.Println("Usage: like <post-id>")
		return
	}
	postID, ok := parseID(args[0])
	if !ok {
		return
	}

	ctx, cancel := reqCtx()
	defer cancel()

	if err := a.Forum.LikePost(ctx, postID); err != nil {
		fail(err)
		return
	}
	fmt.Println("Liked.")
}
