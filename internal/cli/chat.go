package cli

import (
	"context"
	"encoding/json"
	"fmt"
	"os"
	"strconv"

	"github.com/airweave-ai/airweave-go/internal/config"
	"github.com/airweave-ai/airweave-go/pkg/client/api"
)

// ChatListCmd lists chats.
func ChatListCmd(ctx context.Context, cfg *config.Config) {
	clientSet := NewClientSet(cfg)
	chats, err := clientSet.Chat.ListChats(ctx)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Failed to get chats: %v\n", err)
		return
	}

	if len(chats) == 0 {
		fmt.Println("No chats found")
		return
	}

	if err := printChats(chats); err != nil {
		fmt.Fprintf(os.Stderr, "Failed to print chats: %v\n", err)
		return
	}
}

// ChatSendCmd sends a message to a chat and prints the reply.
func ChatSendCmd(ctx context.Context, cfg *config.Config, chatID, message string) {
	if chatID == "" {
		fmt.Fprintln(os.Stderr, "A chat ID is required.")
		return
	}
	if message == "" {
		fmt.Fprintln(os.Stderr, "A message is required.")
		return
	}

	clientSet := NewClientSet(cfg)
	reply, err := clientSet.Chat.SendMessage(ctx, chatID, &api.SendMessageRequest{Content: message})
	if err != nil {
		fmt.Fprintf(os.Stderr, "Failed to send message: %v\n", err)
		return
	}

	if reply.Content != "" {
		fmt.Fprintln(os.Stdout, reply.Content)
		return
	}

	data, err := json.MarshalIndent(reply, "", "  ")
	if err != nil {
		fmt.Fprintf(os.Stderr, "Failed to print reply: %v\n", err)
		return
	}
	fmt.Fprintln(os.Stdout, string(data))
}

func printChats(chats []api.Chat) error {
	headers := []string{"#", "ID", "NAME", "CREATED"}
	rows := make([][]string, len(chats))
	for i, chat := range chats {
		rows[i] = []string{
			strconv.Itoa(i + 1),
			chat.ID,
			chat.Name,
			chat.CreatedAt.Format("2006-01-02 15:04"),
		}
	}

	return printOutput(chats, headers, rows)
}
