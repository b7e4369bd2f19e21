package handlers

import (
	"fmt"
	"strings"

	"peersupport/app"
)

// requireOpenPost checks that a post detail view is open.
func requireOpenPost(a *app.App) bool {
	if a.CurrentPost == nil {
		fmt.Println("No post open. Run 'open <post-id>' first.")
		return false
	}
	return true
}

// HandleOpen opens a post's detail view and shows its comments.
func HandleOpen(a *app.App, args []string) {
	if len(args) != 1 {
		fmt.Println("Usage: open <post-id>")
		return
	}
	postID, ok := parseID(args[0])
	if !ok {
		return
	}

	if post, ok := findPost(a, postID); ok {
		author := post.AuthorName
		if post.IsAnonymous {
			author = "anonymous"
		}
		fmt.Printf("%s\nby %s — %d likes\n\n%s\n\n", post.Title, author, post.LikeCount, post.Content)
	}

	a.OpenPost(postID)
	HandleComments(a)
}

// HandleComments lists the open post's comments.
func HandleComments(a *app.App) {
	if !requireOpenPost(a) {
		return
	}

	ctx, cancel := reqCtx()
	defer cancel()

	responses, err := a.CurrentPost.Responses(ctx)
	if err != nil {
		fail(err)
		return
	}
	if len(responses) == 0 {
		fmt.Println("No comments yet.")
		return
	}
	for _, r := range responses {
		author := r.AuthorName
		if r.IsAnonymous {
			author = "anonymous"
		}
		fmt.Printf("[%d] %s: %s (%d likes)\n", r.ID, author, r.Content, r.LikeCount)
	}
}

// HandleComment submits a comment on the open post.
func HandleComment(a *app.App, args []string) {
	if !requireOpenPost(a) {
		return
	}
	args, anon := popAnonFlag(args)
	text := strings.Join(args, " ")

	ctx, cancel := reqCtx()
	defer cancel()

	if _, err := a.CurrentPost.CreateResponse(ctx, text, anon); err != nil {
		fail(err)
		return
	}
	fmt.Println("Comment posted.")
}

// HandleDelComment deletes one of the user's comments on the open post.
func HandleDelComment(a *app.App, args []string) {
	if !requireOpenPost(a) {
		return
	}
	if len(args) != 1 {
		fmt.Println("Usage: delcomment <comment-id>")
		return
	}
	commentID, ok := parseID(args[0])
	if !ok {
		return
	}

	ctx, cancel := reqCtx()
	defer cancel()

	responses, err := a.CurrentPost.Responses(ctx)
	if err != nil {
		fail(err)
		return
	}
	for _, r := range responses {
		if r.ID == commentID {
			if err := a.CurrentPost.DeleteResponse(ctx, r); err != nil {
				fail(err)
				return
			}
			fmt.Println("Comment deleted.")
			return
		}
	}
	fmt.Printf("No comment %d on this post.\n", commentID)
}

// HandleLikePost likes the open post.
func HandleLikePost(a *app.App) {
	if !requireOpenPost(a) {
		return
	}

	ctx, cancel := reqCtx()
	defer cancel()

	if err := a.CurrentPost.TogglePostLike(ctx); err != nil {
		fail(err)
		return
	}
	fmt.Println("Liked.")
}

// HandleLikeComment likes a comment on the open post.
func HandleLikeComment(a *app.App, args []string) {
	if !requireOpenPost(a) {
		return
	}
	if len(args) != 1 {
		fmt.Println("Usage: likecomment <comment-id>")
		return
	}
	commentID, ok := parseID(args[0])
	if !ok {
		return
	}

	ctx, cancel := reqCtx()
	defer cancel()

	if err := a.CurrentPost.ToggleResponseLike(ctx, commentID); err != nil {
		fail(err)
		return
	}
	fmt.Println("Liked.")
}

// HandleReport reports the open post.
func HandleReport(a *app.App, args []string) {
	if !requireOpenPost(a) {
		return
	}
	reason := strings.Join(args, " ")

	ctx, cancel := reqCtx()
	defer cancel()

	if err := a.CurrentPost.ReportPost(ctx, reason); err != nil {
		fail(err)
		return
	}
	fmt.Println("Thank you. The post has been reported to the moderators.")
}
