package main

import (
	"clementus360/gal-bestfriend/session"
	"clementus360/gal-bestfriend/types"
	"context"
	"errors"
	"fmt"
	"io"
	"os"
	"path/filepath"
	"strconv"
	"strings"

	"github.com/chzyer/readline"
)

const terminalHelp = `Commands:
  /accept      keep the reply under review
  /regen       ask for a different reply
  /tone N      set the tone from 1 to 5
  /help        show this message
  exit         leave the chat`

func runTerminal(ctx context.Context, sess *session.Session, out io.Writer) {
	for _, turn := range sess.History() {
		printTurn(out, turn)
	}

	rl, err := readline.NewEx(&readline.Config{
		Prompt:          "You: ",
		HistoryFile:     filepath.Join(os.TempDir(), ".galbestfriend_history"),
		HistoryLimit:    100,
		InterruptPrompt: "^C",
		EOFPrompt:       "exit",
	})
	if err != nil {
		fmt.Fprintf(out, "Error initializing readline: %v\n", err)
		return
	}
	defer rl.Close()

	for {
		line, err := rl.Readline()
		if err != nil {
			if errors.Is(err, readline.ErrInterrupt) || errors.Is(err, io.EOF) {
				fmt.Fprintln(out, "\nTake care!")
				return
			}
			fmt.Fprintf(out, "Error reading input: %v\n", err)
			continue
		}

		if quit := handleInput(ctx, sess, strings.TrimSpace(line), out); quit {
			return
		}
	}
}

// handleInput runs one line of terminal input and reports whether to quit.
func handleInput(ctx context.Context, sess *session.Session, input string, out io.Writer) bool {
	switch {
	case input == "":
		return false

	case input == "exit" || input == "quit":
		fmt.Fprintln(out, "Take care!")
		return true

	case input == "/help":
		fmt.Fprintln(out, terminalHelp)

	case input == "/accept":
		if err := sess.Accept(); err != nil {
			fmt.Fprintf(out, "Error: %v\n", err)
		}

	case input == "/regen":
		reply, err := sess.Regenerate(ctx)
		if err != nil {
			fmt.Fprintf(out, "Error: %v\n", err)
			return false
		}
		printReply(out, sess, reply)

	case strings.HasPrefix(input, "/tone"):
		level, err := strconv.Atoi(strings.TrimSpace(strings.TrimPrefix(input, "/tone")))
		if err != nil {
			fmt.Fprintln(out, "Usage: /tone N")
			return false
		}
		p := sess.UpdateSettings(types.SettingsUpdate{ToneLevel: &level})
		fmt.Fprintf(out, "Tone set to %d.\n", p.ToneLevel)

	default:
		reply, err := sess.Send(ctx, input, false)
		if err != nil {
			fmt.Fprintf(out, "Error: %v\n", err)
			return false
		}
		printReply(out, sess, reply)
	}
	return false
}

func printTurn(out io.Writer, turn types.ConversationTurn) {
	if turn.Role == types.RoleUser {
		fmt.Fprintf(out, "[%s] You: %s\n", turn.Timestamp, turn.Content)
		return
	}
	fmt.Fprintf(out, "[%s] Gal: %s\n", turn.Timestamp, turn.Content)
}

func printReply(out io.Writer, sess *session.Session, reply session.Reply) {
	history := sess.History()
	printTurn(out, history[len(history)-1])

	if v := reply.Validation; v != nil {
		fmt.Fprintf(out, "  tone: %s | safety: %s | empathy: %s | actionable: %s\n",
			v.Tone.Status, v.Safety.Status, v.Empathy.Status, v.Actionable.Status)
	}
	if reply.Pending {
		fmt.Fprintln(out, "  /accept to keep it, /regen for another take")
	}
}
