package handlers

import (
	"context"
	"errors"
	"fmt"
	"strings"
	"time"

	"peersupport/api"
	"peersupport/app"
	"peersupport/command"
)

// Dispatch is the central handler for all terminal commands. It checks the
// auth requirement from the command definition and then dispatches to the
// appropriate handler. Returns false when the loop should stop.
func Dispatch(a *app.App, line string) bool {
	fields := strings.Fields(line)
	if len(fields) == 0 {
		return true
	}
	name := strings.ToLower(fields[0])
	args := fields[1:]

	def := command.Lookup(name)
	if def == nil {
		fmt.Printf("Unknown command %q. Type 'help' for the command list.\n", name)
		return true
	}
	if def.RequiresAuth && !a.Session.IsAuthenticated() {
		fail(errors.New("please login to continue"))
		return true
	}

	switch name {
	case "login":
		HandleLogin(a, args)
	case "register":
		HandleRegister(a, args)
	case "logout":
		HandleLogout(a)
	case "whoami":
		HandleWhoami(a)
	case "emotions":
		HandleEmotions()
	case "forums":
		HandleForums(a)
	case "select":
		HandleSelect(a, args)
	case "posts":
		HandlePosts(a)
	case "newpost":
		HandleNewPost(a, args)
	case "editpost":
		HandleEditPost(a, args)
	case "delpost":
		HandleDelPost(a, args)
	case "like":
		HandleLike(a, args)
	case "open":
		HandleOpen(a, args)
	case "comments":
		HandleComments(a)
	case "comment":
		HandleComment(a, args)
	case "delcomment":
		HandleDelComment(a, args)
	case "likepost":
		HandleLikePost(a)
	case "likecomment":
		HandleLikeComment(a, args)
	case "report":
		HandleReport(a, args)
	case "volunteers":
		HandleVolunteers(a)
	case "directory":
		HandleDirectory(a)
	case "more":
		HandleMore(a)
	case "chat":
		HandleChat(a, args)
	case "say":
		HandleSay(a, args)
	case "endchat":
		HandleEndChat(a)
	case "journal":
		HandleJournal(a)
	case "write":
		HandleWrite(a, args)
	case "editjournal":
		HandleEditJournal(a, args)
	case "pin":
		HandlePin(a, args)
	case "deljournal":
		HandleDelJournal(a, args)
	case "help":
		HandleHelp()
	case "exit":
		return false
	}
	return true
}

// reqCtx bounds one user-triggered request. Requests are not cancelable
// once issued; the deadline only stops the client from waiting forever.
func reqCtx() (context.Context, context.CancelFunc) {
	return context.WithTimeout(context.Background(), 30*time.Second)
}

// fail surfaces any failure as a single short user-facing message.
// Validation, server, and transport errors all land here; there is no
// automatic retry anywhere.
func fail(err error) {
	var apiErr *api.Error
	if errors.As(err, &apiErr) {
		fmt.Printf("✗ %s\n", apiErr.Message)
		return
	}
	fmt.Printf("✗ %s\n", err.Error())
}

// splitTitleContent parses "title :: content" command arguments.
func splitTitleContent(args []string) (string, string, bool) {
	joined := strings.Join(args, " ")
	parts := strings.SplitN(joined, "::", 2)
	if len(parts) != 2 {
		return "", "", false
	}
	return strings.TrimSpace(parts[0]), strings.TrimSpace(parts[1]), true
}

// popAnonFlag strips a leading -anon flag from the arguments.
func popAnonFlag(args []string) ([]string, bool) {
	if len(args) > 0 && args[0] == "-anon" {
		return args[1:], true
	}
	return args, false
}
