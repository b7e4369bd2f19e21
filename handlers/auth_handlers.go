package handlers

import (
	"fmt"
	"strings"

	"peersupport/app"
	"peersupport/models"
)

// HandleLogin handles the login command.
func HandleLogin(a *app.App, args []string) {
	if len(args) != 2 {
		fmt.Println("Usage: login <email> <password>")
		return
	}

	ctx, cancel := reqCtx()
	defer cancel()

	if _, err := a.Auth.Login(ctx, args[0], args[1]); err != nil {
		fail(err)
		return
	}
	user := a.Session.User()
	fmt.Printf("Signed in as %s (user %d).\n", user.Email, user.ID)
}

// HandleRegister handles the register command. Emotion keywords are an
// optional comma-separated list from the emotions catalog.
func HandleRegister(a *app.App, args []string) {
	if len(args) < 2 {
		fmt.Println("Usage: register <email> <password> [emotion,emotion,...]")
		return
	}

	var emotions []string
	if len(args) > 2 {
		for _, kw := range strings.Split(args[2], ",") {
			kw = strings.TrimSpace(kw)
			if kw != "" {
				emotions = append(emotions, kw)
			}
		}
	}

	ctx, cancel := reqCtx()
	defer cancel()

	if _, err := a.Auth.Register(ctx, args[0], args[1], emotions); err != nil {
		fail(err)
		return
	}
	fmt.Printf("Welcome, %s! Your account is ready.\n", args[0])
}

// HandleLogout signs out and drops all per-session state.
func HandleLogout(a *app.App) {
	a.Auth.Logout()
	a.ResetView()
	fmt.Println("Signed out.")
}

// HandleWhoami shows the current session.
func HandleWhoami(a *app.App) {
	user := a.Session.User()
	if user == nil {
		fmt.Println("Not signed in.")
		return
	}
	fmt.Printf("%s (user %d)\n", user.Email, user.ID)
	if len(user.EmotionsKw) > 0 {
		fmt.Printf("Emotions: %s\n", strings.Join(user.EmotionsKw, ", "))
	}
}

// HandleEmotions lists the emotion keyword catalog.
func HandleEmotions() {
	fmt.Println(strings.Join(models.AvailableEmotions, ", "))
}
