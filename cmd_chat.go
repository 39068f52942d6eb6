package main

import (
	"bufio"
	"errors"
	"fmt"
	"io"
	"strings"
	"time"

	"github.com/spf13/cobra"

	"educonnect/fixtures"
	"educonnect/models"
	"educonnect/services"
)

const chatHelp = `Commands:
  /open          open the chat window
  /min           minimize it
  /restore       restore it
  /close         close it (the conversation is kept)
  /ask <id>      send a quick action
  /history       show the conversation so far
  /quit          leave
Anything else is sent as a message.`

type chatSurface struct {
	name      string
	profile   fixtures.ChatProfile
	delay     time.Duration
	startOpen bool
}

func newChatCmd(a *app) *cobra.Command {
	var delay time.Duration
	cmd := &cobra.Command{
		Use:   "chat",
		Short: "Talk to the floating study-abroad chat widget",
		Long: `Starts the floating chat widget. The widget begins closed and is opened
through the same open-chat signal the "Chat with us" buttons use.

` + chatHelp,
		RunE: func(cmd *cobra.Command, args []string) error {
			cb, err := fixtures.LoadChatbot()
			if err != nil {
				return err
			}
			d := a.cfg.ChatDelay()
			if cmd.Flags().Changed("delay") {
				d = delay
			}
			return a.runChat(cmd, cb, chatSurface{name: "widget", profile: cb.Widget, delay: d})
		},
	}
	cmd.Flags().DurationVar(&delay, "delay", 0, "Override the reply delay (default from CHAT_DELAY_MS)")
	return cmd
}

func newAssistantCmd(a *app) *cobra.Command {
	var delay time.Duration
	cmd := &cobra.Command{
		Use:   "assistant",
		Short: "Talk to the full-page AI assistant",
		Long: `Starts the inline assistant page. It is always open and uses the
assistant greeting and quick actions.

` + chatHelp,
		RunE: func(cmd *cobra.Command, args []string) error {
			cb, err := fixtures.LoadChatbot()
			if err != nil {
				return err
			}
			d := a.cfg.AssistantDelay()
			if cmd.Flags().Changed("delay") {
				d = delay
			}
			return a.runChat(cmd, cb, chatSurface{name: "assistant", profile: cb.Assistant, delay: d, startOpen: true})
		},
	}
	cmd.Flags().DurationVar(&delay, "delay", 0, "Override the reply delay (default from ASSISTANT_DELAY_MS)")
	return cmd
}

func (a *app) runChat(cmd *cobra.Command, cb *fixtures.Chatbot, s chatSurface) error {
	ctx := cmd.Context()
	w := out(cmd)

	router := services.NewResponseRouter(cb.Categories, cb.Fallback)
	widget := services.NewChatWidget(router, a.logger, services.WidgetOptions{
		Name:         s.name,
		Delay:        s.delay,
		Greeting:     s.profile.Greeting,
		QuickActions: s.profile.QuickActions,
	})
	defer widget.Stop()

	replies := make(chan models.ChatMessage, 16)
	defer widget.OnMessage(func(m models.ChatMessage) {
		if m.Sender != models.SenderBot {
			return
		}
		select {
		case replies <- m:
		default:
			a.logger.Warn("[%s] Dropped reply %s: reader is behind", s.name, m.ID)
		}
	})()

	openChat := services.NewBus[services.OpenChatRequest]()
	defer widget.ListenForOpen(openChat)()

	if s.startOpen {
		widget.Open()
	} else {
		openChat.Publish(services.OpenChatRequest{Source: "cli"})
	}
	a.logger.Info("[%s] Chat started (delay %s)", s.name, s.delay)

	for _, m := range widget.Messages() {
		printChatMessage(w, m)
	}
	if widget.ShowQuickActions() {
		printQuickActions(w, widget.QuickActions())
	}

	scanner := bufio.NewScanner(cmd.InOrStdin())
	for {
		fmt.Fprint(w, "> ")
		if !scanner.Scan() {
			fmt.Fprintln(w)
			return scanner.Err()
		}
		line := strings.TrimSpace(scanner.Text())

		var sendErr error
		switch {
		case line == "":
			continue
		case line == "/quit" || line == "/exit":
			return nil
		case line == "/help":
			fmt.Fprintln(w, chatHelp)
			continue
		case line == "/open":
			openChat.Publish(services.OpenChatRequest{Source: "cli"})
			fmt.Fprintf(w, "[%s]\n", widget.State())
			continue
		case line == "/min":
			widget.Minimize()
			fmt.Fprintf(w, "[%s]\n", widget.State())
			continue
		case line == "/restore":
			widget.Restore()
			fmt.Fprintf(w, "[%s]\n", widget.State())
			continue
		case line == "/close":
			widget.Close()
			fmt.Fprintf(w, "[%s]\n", widget.State())
			continue
		case line == "/history":
			for _, m := range widget.Messages() {
				printChatMessage(w, m)
			}
			continue
		case strings.HasPrefix(line, "/ask"):
			sendErr = widget.SendQuickAction(strings.TrimSpace(strings.TrimPrefix(line, "/ask")))
		default:
			sendErr = widget.Send(line)
		}

		switch {
		case errors.Is(sendErr, services.ErrWidgetNotOpen):
			fmt.Fprintf(w, "The chat is %s. Use /open or /restore first.\n", widget.State())
			continue
		case errors.Is(sendErr, services.ErrUnknownQuickAction):
			printQuickActions(w, widget.QuickActions())
			continue
		case sendErr != nil:
			return sendErr
		}

		if m, ok := lastFrom(widget.Messages(), models.SenderUser); ok {
			printChatMessage(w, m)
		}
		if s.delay > 0 {
			fmt.Fprintln(w, "bot is typing...")
		}
		select {
		case m := <-replies:
			printChatMessage(w, m)
		case <-ctx.Done():
			return ctx.Err()
		}
	}
}

// lastFrom returns the newest message sent by sender.
func lastFrom(log []models.ChatMessage, sender models.Sender) (models.ChatMessage, bool) {
	for i := len(log) - 1; i >= 0; i-- {
		if log[i].Sender == sender {
			return log[i], true
		}
	}
	return models.ChatMessage{}, false
}

func printChatMessage(w io.Writer, m models.ChatMessage) {
	who := "you"
	if m.Sender == models.SenderBot {
		who = "bot"
	}
	fmt.Fprintf(w, "[%s] %s: %s\n", m.Timestamp.Format("15:04"), who, m.Content)
	for _, f := range m.FollowUps {
		fmt.Fprintf(w, "    → %s\n", f)
	}
}

func printQuickActions(w io.Writer, qas []models.QuickAction) {
	fmt.Fprintln(w, "Quick actions (/ask <id>):")
	for _, qa := range qas {
		fmt.Fprintf(w, "  %-14s %s\n", qa.ID, qa.Label)
	}
}
