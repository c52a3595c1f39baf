package client

import (
	"context"
	"fmt"
	"net/url"

	"github.com/airweave-ai/airweave-go/pkg/client/api"
)

// Chat defines the chat operations
type Chat interface {
	ListChats(ctx context.Context) ([]api.Chat, error)
	GetChat(ctx context.Context, chatID string) (*api.Chat, error)
	CreateChat(ctx context.Context, request *api.CreateChatRequest) (*api.Chat, error)
	DeleteChat(ctx context.Context, chatID string) error
	SendMessage(ctx context.Context, chatID string, request *api.SendMessageRequest) (*api.ChatMessage, error)
}

// chatClient handles chat requests
type chatClient struct {
	client *BaseClient
}

// NewChatClient creates a new chat client
func NewChatClient(client *BaseClient) Chat {
	return &chatClient{client: client}
}

// ListChats lists all chats
func (c *chatClient) ListChats(ctx context.Context) ([]api.Chat, error) {
	resp, err := c.client.Get(ctx, "/chat")
	if err != nil {
		return nil, err
	}

	var chats []api.Chat
	if err := DecodeResponse(resp, &chats); err != nil {
		return nil, err
	}

	return chats, nil
}

// GetChat retrieves a chat with its messages
func (c *chatClient) GetChat(ctx context.Context, chatID string) (*api.Chat, error) {
	path := fmt.Sprintf("/chat/%s", url.PathEscape(chatID))
	resp, err := c.client.Get(ctx, path)
	if err != nil {
		return nil, err
	}

	var chat api.Chat
	if err := DecodeResponse(resp, &chat); err != nil {
		return nil, err
	}

	return &chat, nil
}

// CreateChat creates a new chat
func (c *chatClient) CreateChat(ctx context.Context, request *api.CreateChatRequest) (*api.Chat, error) {
	resp, err := c.client.Post(ctx, "/chat", request)
	if err != nil {
		return nil, err
	}

	var chat api.Chat
	if err := DecodeResponse(resp, &chat); err != nil {
		return nil, err
	}

	return &chat, nil
}

// DeleteChat deletes a chat
func (c *chatClient) DeleteChat(ctx context.Context, chatID string) error {
	path := fmt.Sprintf("/chat/%s", url.PathEscape(chatID))
	resp, err := c.client.Delete(ctx, path)
	if err != nil {
		return err
	}

	CloseResponse(resp)
	return nil
}

// SendMessage appends a message to a chat and returns the assistant's reply
func (c *chatClient) SendMessage(ctx context.Context, chatID string, request *api.SendMessageRequest) (*api.ChatMessage, error) {
	path := fmt.Sprintf("/chat/%s/message", url.PathEscape(chatID))
	resp, err := c.client.Post(ctx, path, request)
	if err != nil {
		return nil, err
	}

	var message api.ChatMessage
	if err := DecodeResponse(resp, &message); err != nil {
		return nil, err
	}

	return &message, nil
}
