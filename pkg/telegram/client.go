// FILE: pkg/telegram/client.go
package telegram

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"io"
	"mime/multipart"
	"net/http"
	"net/url"
	"strconv"
	"time"
)

// InlineKeyboardButton is one tappable control under a message. CallbackData
// carries the transition code the webhook receives back on tap.
type InlineKeyboardButton struct {
	Text         string `json:"text"`
	CallbackData string `json:"callback_data"`
}

// InlineKeyboardMarkup is the reply_markup payload for inline controls.
type InlineKeyboardMarkup struct {
	InlineKeyboard [][]InlineKeyboardButton `json:"inline_keyboard"`
}

type apiResponse struct {
	Ok          bool            `json:"ok"`
	Description string          `json:"description"`
	Result      json.RawMessage `json:"result"`
}

// Client is a minimal Bot API client covering the calls the adventure needs.
type Client struct {
	baseURL    string
	httpClient *http.Client
}

func NewClient(token string) *Client {
	return &Client{
		baseURL: "https://api.telegram.org/bot" + token,
		httpClient: &http.Client{
			Timeout: 30 * time.Second,
		},
	}
}

// SendMessage sends an HTML-formatted text message, optionally with an inline
// keyboard, and returns the id of the sent message.
func (c *Client) SendMessage(ctx context.Context, chatID int64, text string, markup *InlineKeyboardMarkup) (int, error) {
	params := url.Values{}
	params.Add("chat_id", strconv.FormatInt(chatID, 10))
	params.Add("text", text)
	params.Add("parse_mode", "HTML")

	if markup != nil {
		markupJSON, err := json.Marshal(markup)
		if err != nil {
			return 0, err
		}
		params.Add("reply_markup", string(markupJSON))
	}

	body, err := c.call(ctx, "sendMessage", params)
	if err != nil {
		return 0, err
	}

	var result struct {
		MessageID int `json:"message_id"`
	}
	if err := json.Unmarshal(body, &result); err != nil {
		return 0, err
	}
	return result.MessageID, nil
}

// SendPhoto uploads and sends an image to the chat.
func (c *Client) SendPhoto(ctx context.Context, chatID int64, name string, data []byte) error {
	return c.upload(ctx, "sendPhoto", "photo", chatID, name, data)
}

// SendAudio uploads and sends an audio file to the chat.
func (c *Client) SendAudio(ctx context.Context, chatID int64, name string, data []byte) error {
	return c.upload(ctx, "sendAudio", "audio", chatID, name, data)
}

// ClearButtons removes the inline keyboard from a previously sent message.
func (c *Client) ClearButtons(ctx context.Context, chatID int64, messageID int) error {
	params := url.Values{}
	params.Add("chat_id", strconv.FormatInt(chatID, 10))
	params.Add("message_id", strconv.Itoa(messageID))

	_, err := c.call(ctx, "editMessageReplyMarkup", params)
	return err
}

// AnswerCallback closes the client-side loading animation after a button tap.
func (c *Client) AnswerCallback(ctx context.Context, callbackQueryID string) error {
	params := url.Values{}
	params.Add("callback_query_id", callbackQueryID)

	_, err := c.call(ctx, "answerCallbackQuery", params)
	return err
}

func (c *Client) call(ctx context.Context, method string, params url.Values) (json.RawMessage, error) {
	req, err := http.NewRequestWithContext(ctx, http.MethodPost,
		c.baseURL+"/"+method, bytes.NewBufferString(params.Encode()))
	if err != nil {
		return nil, err
	}
	req.Header.Set("Content-Type", "application/x-www-form-urlencoded")

	resp, err := c.httpClient.Do(req)
	if err != nil {
		return nil, err
	}
	defer resp.Body.Close()

	return decodeResponse(resp.Body, method)
}

func (c *Client) upload(ctx context.Context, method, field string, chatID int64, name string, data []byte) error {
	var buf bytes.Buffer
	writer := multipart.NewWriter(&buf)

	if err := writer.WriteField("chat_id", strconv.FormatInt(chatID, 10)); err != nil {
		return err
	}
	part, err := writer.CreateFormFile(field, name)
	if err != nil {
		return err
	}
	if _, err := part.Write(data); err != nil {
		return err
	}
	if err := writer.Close(); err != nil {
		return err
	}

	req, err := http.NewRequestWithContext(ctx, http.MethodPost, c.baseURL+"/"+method, &buf)
	if err != nil {
		return err
	}
	req.Header.Set("Content-Type", writer.FormDataContentType())

	resp, err := c.httpClient.Do(req)
	if err != nil {
		return err
	}
	defer resp.Body.Close()

	_, err = decodeResponse(resp.Body, method)
	return err
}

func decodeResponse(r io.Reader, method string) (json.RawMessage, error) {
	body, err := io.ReadAll(r)
	if err != nil {
		return nil, err
	}

	var apiResp apiResponse
	if err := json.Unmarshal(body, &apiResp); err != nil {
		return nil, fmt.Errorf("telegram %s: malformed response: %w", method, err)
	}
	if !apiResp.Ok {
		return nil, fmt.Errorf("telegram %s: %s", method, apiResp.Description)
	}
	return apiResp.Result, nil
}
