package handlers

import (
	"fmt"
	"sort"
	"strings"

	"peersupport/app"
)

// HandleChat starts an AI support chat scoped to one concern.
func HandleChat(a *app.App, args []string) {
	if len(args) == 0 {
		fmt.Println("Usage: chat <concern>")
		if len(a.ChatCfg.Prompts) > 0 {
			concerns := make([]string, 0, len(a.ChatCfg.Prompts))
			for concern := range a.ChatCfg.Prompts {
				concerns = append(concerns, concern)
			}
			sort.Strings(concerns)
			fmt.Printf("Concerns: %s\n", strings.Join(concerns, ", "))
		}
		return
	}

	concern := strings.Join(args, " ")
	session := a.StartChat(concern)
	for _, m := range session.Messages() {
		fmt.Printf("assistant: %s\n", m.Text)
	}
	fmt.Println("Type 'say <message>' to talk, 'endchat' to finish.")
}

// HandleSay sends one chat message and prints the reply.
func HandleSay(a *app.App, args []string) {
	if a.Chat == nil {
		fmt.Println("No chat open. Run 'chat <concern>' first.")
		return
	}

	ctx, cancel := reqCtx()
	defer cancel()

	reply, err := a.Chat.Send(ctx, strings.Join(args, " "))
	if err != nil {
		fail(err)
		return
	}
	fmt.Printf("assistant: %s\n", reply.Text)
}

// HandleEndChat closes the chat session.
func HandleEndChat(a *app.App) {
	if a.Chat == nil {
		fmt.Println("No chat open.")
		return
	}
	a.Chat = nil
	fmt.Println("Chat ended. Remember, reaching out is a strength.")
}
