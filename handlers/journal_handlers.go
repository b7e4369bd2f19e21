package handlers

import (
	"fmt"
	"time"

	"peersupport/app"
	"peersupport/models"
)

// HandleJournal lists the user's journal entries, pinned first.
func HandleJournal(a *app.App) {
	entries, err := a.Journal.List()
	if err != nil {
		fail(err)
		return
	}
	if len(entries) == 0 {
		fmt.Println("Your journal is empty. Use 'write <title> :: <content>'.")
		return
	}
	for _, entry := range entries {
		marker := " "
		if entry.IsPinned {
			marker = "📌"
		}
		when := time.Unix(entry.CreatedAt, 0).Format("Jan 2 15:04")
		title := entry.Title
		if title == "" {
			title = "(untitled)"
		}
		fmt.Printf("%s %s — %s [%s]\n   %s\n", marker, title, when, entry.ID[:8], entry.Content)
	}
}

// HandleWrite creates a journal entry.
func HandleWrite(a *app.App, args []string) {
	title, content, ok := splitTitleContent(args)
	if !ok {
		fmt.Println("Usage: write <title> :: <content>")
		return
	}

	entry, err := a.Journal.Create(title, content, "", "")
	if err != nil {
		fail(err)
		return
	}
	fmt.Printf("Saved %q.\n", entryLabel(entry.Title))
}

func entryLabel(title string) string {
	if title == "" {
		return "(untitled)"
	}
	return title
}

// findJournalEntry resolves a full or shortened entry id.
func findJournalEntry(a *app.App, prefix string) (models.Journal, bool) {
	entries, err := a.Journal.List()
	if err != nil {
		fail(err)
		return models.Journal{}, false
	}
	for _, entry := range entries {
		if entry.ID == prefix || (len(prefix) >= 4 && len(entry.ID) >= len(prefix) && entry.ID[:len(prefix)] == prefix) {
			return entry, true
		}
	}
	fmt.Printf("No journal entry %q.\n", prefix)
	return models.Journal{}, false
}

// HandleEditJournal rewrites an entry's title and content, keeping its mood
// and color.
func HandleEditJournal(a *app.App, args []string) {
	if len(args) < 2 {
		fmt.Println("Usage: editjournal <journal-id> <title> :: <content>")
		return
	}
	entry, ok := findJournalEntry(a, args[0])
	if !ok {
		return
	}
	title, content, ok := splitTitleContent(args[1:])
	if !ok {
		fmt.Println("Usage: editjournal <journal-id> <title> :: <content>")
		return
	}

	if err := a.Journal.Update(entry.ID, title, content, entry.Humor, entry.Color); err != nil {
		fail(err)
		return
	}
	fmt.Printf("Updated %q.\n", entryLabel(title))
}

// HandlePin toggles an entry's pin.
func HandlePin(a *app.App, args []string) {
	if len(args) != 1 {
		fmt.Println("Usage: pin <journal-id>")
		return
	}
	entry, ok := findJournalEntry(a, args[0])
	if !ok {
		return
	}

	pinned, err := a.Journal.TogglePin(entry.ID)
	if err != nil {
		fail(err)
		return
	}
	if pinned {
		fmt.Println("Pinned.")
	} else {
		fmt.Println("Unpinned.")
	}
}

// HandleDelJournal deletes an entry.
func HandleDelJournal(a *app.App, args []string) {
	if len(args) != 1 {
		fmt.Println("Usage: deljournal <journal-id>")
		return
	}
	entry, ok := findJournalEntry(a, args[0])
	if !ok {
		return
	}

	if err := a.Journal.Delete(entry.ID); err != nil {
		fail(err)
		return
	}
	fmt.Println("Entry deleted.")
}
