package handlers

import (
	"fmt"
	"strings"

	"peersupport/app"
	"peersupport/models"
	"peersupport/volunteers"
)

func printVolunteers(list []models.Volunteer) {
	for _, v := range list {
		line := fmt.Sprintf("[%d] %s (%s)", v.ID, v.Email, v.Role)
		if len(v.EmotionsKw) > 0 {
			line += " — " + strings.Join(v.EmotionsKw, ", ")
		}
		if v.AvailabilityDate != nil {
			line += " — available " + *v.AvailabilityDate
		}
		fmt.Println(line)
	}
}

// HandleVolunteers starts (or restarts) the emotion-matched volunteer feed
// and shows its first page.
func HandleVolunteers(a *app.App) {
	var userID *int64
	if user := a.Session.User(); user != nil {
		id := user.ID
		userID = &id
	}
	a.EmotionFeed = volunteers.NewEmotionFeed(a.API, userID, a.PageSize)
	a.ActiveFeed = "volunteers"

	ctx, cancel := reqCtx()
	defer cancel()

	page, err := a.EmotionFeed.FetchNext(ctx)
	if err != nil {
		fail(err)
		return
	}
	if a.EmotionFeed.UsedFallback() {
		fmt.Println("Showing all available volunteers.")
	} else {
		fmt.Println("Volunteers matched to your emotions:")
	}
	if len(page) == 0 {
		fmt.Println("No volunteers found.")
		return
	}
	printVolunteers(page)
	if a.EmotionFeed.HasMore() {
		fmt.Println("Type 'more' for the next page.")
	}
}

// HandleDirectory starts (or restarts) the full volunteer directory feed.
func HandleDirectory(a *app.App) {
	a.Directory = volunteers.NewDirectoryFeed(a.API, a.PageSize)
	a.ActiveFeed = "directory"

	ctx, cancel := reqCtx()
	defer cancel()

	page, err := a.Directory.FetchNext(ctx)
	if err != nil {
		fail(err)
		return
	}
	if len(page) == 0 {
		fmt.Println("The volunteer directory is empty.")
		return
	}
	fmt.Printf("Volunteer directory (%d total):\n", a.Directory.Total())
	printVolunteers(page)
	if a.Directory.HasMore() {
		fmt.Println("Type 'more' for the next page.")
	}
}

// HandleMore fetches the next page of whichever feed paged last.
func HandleMore(a *app.App) {
	ctx, cancel := reqCtx()
	defer cancel()

	switch a.ActiveFeed {
	case "volunteers":
		page, err := a.EmotionFeed.FetchNext(ctx)
		if err != nil {
			fail(err)
			return
		}
		if len(page) == 0 {
			fmt.Println("That's everyone.")
			return
		}
		printVolunteers(page)
	case "directory":
		page, err := a.Directory.FetchNext(ctx)
		if err != nil {
			fail(err)
			return
		}
		if len(page) == 0 {
			fmt.Println("That's everyone.")
			return
		}
		printVolunteers(page)
	default:
		fmt.Println("Nothing to page. Run 'volunteers' or 'directory' first.")
	}
}
