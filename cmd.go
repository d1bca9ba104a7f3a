package main

import (
	"clementus360/gal-bestfriend/config"
	"clementus360/gal-bestfriend/handlers"
	"clementus360/gal-bestfriend/middleware"
	"clementus360/gal-bestfriend/routes"
	"clementus360/gal-bestfriend/types"
	"context"
	"errors"
	"fmt"
	"net/http"
	"os"
	"os/signal"
	"strings"
	"syscall"
	"time"

	"github.com/spf13/cobra"
)

func newRootCommand() *cobra.Command {
	root := &cobra.Command{
		Use:   "galbestfriend",
		Short: "Gal Bestfriend, a supportive chat companion",
		Long: strings.TrimSpace(`galbestfriend listens, reflects what you said back to you and
offers advice in the tone you pick.

Run the HTTP API with "serve" or talk to it directly with "chat".`),
		SilenceUsage:  true,
		SilenceErrors: true,
	}
	root.CompletionOptions.DisableDefaultCmd = true

	root.AddCommand(newServeCommand())
	root.AddCommand(newChatCommand())
	return root
}

func newServeCommand() *cobra.Command {
	var port string

	cmd := &cobra.Command{
		Use:     "serve",
		Short:   "Run the HTTP API",
		Example: "  galbestfriend serve --port 8080",
		RunE: func(cmd *cobra.Command, args []string) error {
			a, err := newApp()
			if err != nil {
				return err
			}
			defer a.Close()

			if port == "" {
				port = a.cfg.Port
			}

			ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
			defer stop()

			return serve(ctx, a, port)
		},
	}

	cmd.Flags().StringVarP(&port, "port", "p", "", "Port to listen on (default from PORT)")
	return cmd
}

func serve(ctx context.Context, a *app, port string) error {
	mux := http.NewServeMux()
	routes.RegisterAllRoutes(mux, handlers.NewServer(a.sessions, a.upstream))

	handler := middleware.Chain(
		middleware.CORSMiddleware(a.cfg.AllowedOrigin),
		middleware.LoggingMiddleware,
		middleware.AuthMiddleware(a.cfg.SupabaseJWTSecret),
	)(mux)

	srv := &http.Server{
		Addr:              ":" + port,
		Handler:           handler,
		ReadHeaderTimeout: 10 * time.Second,
	}

	go a.sessions.RunAutosave(ctx, a.cfg.AutosaveInterval, a.cfg.SessionIdleTimeout)

	errCh := make(chan error, 1)
	go func() {
		config.Logger.Info("Server is running on port ", port)
		errCh <- srv.ListenAndServe()
	}()

	select {
	case err := <-errCh:
		if errors.Is(err, http.ErrServerClosed) {
			return nil
		}
		return err
	case <-ctx.Done():
	}

	config.Logger.Info("Shutting down")
	shutdownCtx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()

	a.sessions.SaveAll(shutdownCtx)
	return srv.Shutdown(shutdownCtx)
}

func newChatCommand() *cobra.Command {
	var (
		name      string
		situation string
		tone      int
		style     string
		focus     string
		owner     string
	)

	cmd := &cobra.Command{
		Use:   "chat",
		Short: "Chat in the terminal",
		Example: strings.Join([]string{
			"  galbestfriend chat --name Sam --situation romantic",
			"  galbestfriend chat --tone 5 --style brief",
		}, "\n"),
		RunE: func(cmd *cobra.Command, args []string) error {
			sit, ok := types.ParseSituation(situation)
			if situation != "" && !ok {
				return fmt.Errorf("unknown situation %q (friendship, romantic, family, self)", situation)
			}

			a, err := newApp()
			if err != nil {
				return err
			}
			defer a.Close()

			profile := types.DefaultProfile()
			profile.Name = name
			profile.Situation = sit
			profile.ToneLevel = tone
			profile.ResponseStyle = types.ResponseStyle(style)
			profile.FocusArea = types.FocusArea(focus)
			profile.ColorTheme = ""

			ctx := cmd.Context()
			if ctx == nil {
				ctx = context.Background()
			}
			sess := a.sessions.Create(ctx, owner, profile)
			defer a.sessions.Persist(context.Background(), sess)

			runTerminal(ctx, sess, cmd.OutOrStdout())
			return nil
		},
	}

	cmd.Flags().StringVarP(&name, "name", "n", "", "What the companion should call you")
	cmd.Flags().StringVarP(&situation, "situation", "s", "", "friendship, romantic, family or self")
	cmd.Flags().IntVarP(&tone, "tone", "t", types.DefaultToneLevel, "Tone from 1 (gentle) to 5 (real talk)")
	cmd.Flags().StringVar(&style, "style", string(types.StyleConversational), "conversational, structured or brief")
	cmd.Flags().StringVar(&focus, "focus", string(types.FocusEmotional), "emotional, practical or perspective")
	cmd.Flags().StringVar(&owner, "owner", "cli", "Key the saved preferences are stored under")
	return cmd
}
