package llm

import (
	"clementus360/gal-bestfriend/types"
	"context"
	"encoding/json"
	"errors"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type fakeProvider struct {
	text     string
	err      error
	messages []Message
}

func (f *fakeProvider) Complete(_ context.Context, messages []Message) (string, error) {
	f.messages = messages
	return f.text, f.err
}

func TestHandler_Reply(t *testing.T) {
	p := &fakeProvider{text: "  I'm listening.  "}
	h := NewHandler(p)

	text, err := h.Reply(context.Background(), "hey", types.ChatContext{
		UserName: "Sam",
		History:  []types.HistoryMessage{{Role: "ai", Content: "Hi Sam"}},
	})
	require.NoError(t, err)
	assert.Equal(t, "I'm listening.", text)

	require.Len(t, p.messages, 3)
	assert.Contains(t, p.messages[0].Content, "- Name: Sam")
	assert.Equal(t, "assistant", p.messages[1].Role)
	assert.Equal(t, "hey", p.messages[2].Content)
}

func TestHandler_ReplyError(t *testing.T) {
	h := NewHandler(&fakeProvider{err: errors.New("quota")})
	_, err := h.Reply(context.Background(), "hey", types.ChatContext{})
	assert.Error(t, err)
}

func TestProxyClient_Reply(t *testing.T) {
	var got types.ProxyRequest
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		assert.Equal(t, http.MethodPost, r.Method)
		require.NoError(t, json.NewDecoder(r.Body).Decode(&got))
		json.NewEncoder(w).Encode(types.ProxyResponse{Reply: "Tell me more."})
	}))
	defer srv.Close()

	reply, err := NewProxyClient(srv.URL+"/api/chat").Reply(context.Background(), "hi", types.ChatContext{ToneLevel: 2, UserName: "Sam"})
	require.NoError(t, err)
	assert.Equal(t, "Tell me more.", reply)
	assert.Equal(t, "hi", got.Message)
	assert.Equal(t, 2, got.Context.ToneLevel)
	assert.Equal(t, "Sam", got.Context.UserName)
}

func TestProxyClient_ServerError(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusInternalServerError)
		json.NewEncoder(w).Encode(types.ProxyResponse{Error: "AI service error"})
	}))
	defer srv.Close()

	_, err := NewProxyClient(srv.URL).Reply(context.Background(), "hi", types.ChatContext{})
	assert.ErrorContains(t, err, "AI service error")
}
