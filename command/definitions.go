package command

// Definition describes one terminal command.
type Definition struct {
	Name        string
	Usage       string
	Description string
	// RequiresAuth marks commands that need a signed-in user. The
	// dispatcher refuses them before any handler runs.
	RequiresAuth bool
}

// AllCommands holds every command definition, in help order.
var AllCommands = []*Definition{
	{Name: "login", Usage: "login <email> <password>", Description: "Sign in"},
	{Name: "register", Usage: "register <email> <password> [emotion,...]", Description: "Create an account"},
	{Name: "logout", Usage: "logout", Description: "Sign out and clear local state", RequiresAuth: true},
	{Name: "whoami", Usage: "whoami", Description: "Show the current session"},
	{Name: "emotions", Usage: "emotions", Description: "List the emotion keywords"},

	{Name: "forums", Usage: "forums", Description: "List forums"},
	{Name: "select", Usage: "select <forum-id>", Description: "Select a forum"},
	{Name: "posts", Usage: "posts", Description: "List posts of the selected forum"},
	{Name: "newpost", Usage: "newpost [-anon] <title> :: <content>", Description: "Create a post", RequiresAuth: true},
	{Name: "editpost", Usage: "editpost <post-id> <title> :: <content>", Description: "Edit your post", RequiresAuth: true},
	{Name: "delpost", Usage: "delpost <post-id>", Description: "Delete your post", RequiresAuth: true},
	{Name: "like", Usage: "like <post-id>", Description: "Like a post in the feed", RequiresAuth: true},

	{Name: "open", Usage: "open <post-id>", Description: "Open a post's detail view"},
	{Name: "comments", Usage: "comments", Description: "List comments of the open post"},
	{Name: "comment", Usage: "comment [-anon] <text>", Description: "Comment on the open post", RequiresAuth: true},
	{Name: "delcomment", Usage: "delcomment <comment-id>", Description: "Delete your comment", RequiresAuth: true},
	{Name: "likepost", Usage: "likepost", Description: "Like the open post", RequiresAuth: true},
	{Name: "likecomment", Usage: "likecomment <comment-id>", Description: "Like a comment", RequiresAuth: true},
	{Name: "report", Usage: "report <reason>", Description: "Report the open post", RequiresAuth: true},

	{Name: "volunteers", Usage: "volunteers", Description: "Show volunteers matched to your emotions"},
	{Name: "directory", Usage: "directory", Description: "Browse the full volunteer directory"},
	{Name: "more", Usage: "more", Description: "Fetch the next volunteer page"},

	{Name: "chat", Usage: "chat <concern>", Description: "Start an AI support chat", RequiresAuth: true},
	{Name: "say", Usage: "say <message>", Description: "Send a chat message", RequiresAuth: true},
	{Name: "endchat", Usage: "endchat", Description: "End the chat session", RequiresAuth: true},

	{Name: "journal", Usage: "journal", Description: "List your journal entries", RequiresAuth: true},
	{Name: "write", Usage: "write <title> :: <content>", Description: "Write a journal entry", RequiresAuth: true},
	{Name: "editjournal", Usage: "editjournal <journal-id> <title> :: <content>", Description: "Edit a journal entry", RequiresAuth: true},
	{Name: "pin", Usage: "pin <journal-id>", Description: "Toggle a journal pin", RequiresAuth: true},
	{Name: "deljournal", Usage: "deljournal <journal-id>", Description: "Delete a journal entry", RequiresAuth: true},

	{Name: "help", Usage: "help", Description: "Show this help"},
	{Name: "exit", Usage: "exit", Description: "Quit"},
}

// Lookup returns the definition for a command name, nil when unknown.
func Lookup(name string) *Definition {
	for _, def := range AllCommands {
		if def.Name == name {
			return def
		}
	}
	return nil
}
