package main

import (
	"bytes"
	"clementus360/gal-bestfriend/session"
	"clementus360/gal-bestfriend/types"
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
)

func newTerminalSession() *session.Session {
	p := types.DefaultProfile()
	p.Name = "Sam"
	s := session.New("cli-test", "cli", p, session.Options{})
	s.Start()
	return s
}

func TestHandleInput_Chat(t *testing.T) {
	sess := newTerminalSession()
	var out bytes.Buffer
	ctx := context.Background()

	assert.False(t, handleInput(ctx, sess, "Should I text him back?", &out))
	assert.Contains(t, out.String(), "Gal: ")
	assert.Contains(t, out.String(), "/accept to keep it")

	out.Reset()
	assert.False(t, handleInput(ctx, sess, "/regen", &out))
	assert.Equal(t, 4, sess.Profile().ToneLevel)

	out.Reset()
	assert.False(t, handleInput(ctx, sess, "/accept", &out))
	assert.Empty(t, out.String())

	out.Reset()
	handleInput(ctx, sess, "/accept", &out)
	assert.Contains(t, out.String(), "Error:")
}

func TestHandleInput_Commands(t *testing.T) {
	sess := newTerminalSession()
	var out bytes.Buffer
	ctx := context.Background()

	handleInput(ctx, sess, "/tone 1", &out)
	assert.Equal(t, "Tone set to 1.\n", out.String())
	assert.Equal(t, 1, sess.Profile().ToneLevel)

	out.Reset()
	handleInput(ctx, sess, "/tone loud", &out)
	assert.Contains(t, out.String(), "Usage")

	out.Reset()
	handleInput(ctx, sess, "/help", &out)
	assert.Contains(t, out.String(), "/regen")

	assert.False(t, handleInput(ctx, sess, "", &out))
	assert.True(t, handleInput(ctx, sess, "exit", &out))
}
