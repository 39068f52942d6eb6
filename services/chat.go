package services

import (
	"errors"
	"strings"
	"sync"
	"time"

	"educonnect/models"
	"educonnect/utils"
)

var (
	// ErrEmptyMessage is returned when the submitted text is blank.
	ErrEmptyMessage = errors.New("chat: empty message")
	// ErrWidgetNotOpen is returned when sending while closed or minimized.
	ErrWidgetNotOpen = errors.New("chat: widget is not open")
	// ErrUnknownQuickAction is returned for a quick action id not on offer.
	ErrUnknownQuickAction = errors.New("chat: unknown quick action")
)

// WidgetState is the visibility of a chat widget.
type WidgetState int

const (
	WidgetClosed WidgetState = iota
	WidgetOpen
	WidgetMinimized
)

func (s WidgetState) String() string {
	switch s {
	case WidgetOpen:
		return "open"
	case WidgetMinimized:
		return "minimized"
	default:
		return "closed"
	}
}

// WidgetOptions configures a ChatWidget.
type WidgetOptions struct {
	// Name prefixes log lines, e.g. "widget" or "assistant".
	Name string
	// Delay is how long the bot "types" before its reply lands.
	Delay        time.Duration
	Greeting     string
	QuickActions []models.QuickAction
	// Clock and IDs default to the wall clock and a fresh generator.
	Clock func() time.Time
	IDs   *utils.IDGenerator
}

// ChatWidget is the chatbot window: a visibility state machine plus a
// session-long message log. Bot replies are computed when the user sends and
// appended after the configured delay. The log survives Close and Open.
// ChatWidget is safe for concurrent use.
type ChatWidget struct {
	router *ResponseRouter
	logger *utils.Logger
	name   string
	delay  time.Duration
	now    func() time.Time
	ids    *utils.IDGenerator
	quick  []models.QuickAction

	appended *Bus[models.ChatMessage]

	mu        sync.Mutex
	state     WidgetState
	messages  []models.ChatMessage
	pending   map[uint64]*time.Timer
	nextReply uint64
	stopped   bool
}

// NewChatWidget creates a closed widget whose log holds the greeting, if any.
func NewChatWidget(router *ResponseRouter, logger *utils.Logger, opts WidgetOptions) *ChatWidget {
	if opts.Name == "" {
		opts.Name = "chat"
	}
	if opts.Clock == nil {
		opts.Clock = time.Now
	}
	if opts.IDs == nil {
		opts.IDs = utils.NewIDGeneratorWithClock(opts.Clock)
	}

	w := &ChatWidget{
		router:   router,
		logger:   logger,
		name:     opts.Name,
		delay:    opts.Delay,
		now:      opts.Clock,
		ids:      opts.IDs,
		quick:    append([]models.QuickAction(nil), opts.QuickActions...),
		appended: NewBus[models.ChatMessage](),
		pending:  make(map[uint64]*time.Timer),
	}
	if opts.Greeting != "" {
		w.messages = append(w.messages, w.newMessage(models.SenderBot, opts.Greeting, nil))
	}
	return w
}

// State returns the current visibility.
func (w *ChatWidget) State() WidgetState {
	w.mu.Lock()
	defer w.mu.Unlock()
	return w.state
}

// Open shows the widget un-minimized, whatever its previous state.
func (w *ChatWidget) Open() {
	w.transition("open", func(WidgetState) (WidgetState, bool) { return WidgetOpen, true })
}

// Minimize collapses an open widget. It reports whether the state changed.
func (w *ChatWidget) Minimize() bool {
	return w.transition("minimize", func(s WidgetState) (WidgetState, bool) {
		return WidgetMinimized, s == WidgetOpen
	})
}

// Restore expands a minimized widget. It reports whether the state changed.
func (w *ChatWidget) Restore() bool {
	return w.transition("restore", func(s WidgetState) (WidgetState, bool) {
		return WidgetOpen, s == WidgetMinimized
	})
}

// ToggleMinimize flips between open and minimized; a closed widget stays closed.
func (w *ChatWidget) ToggleMinimize() bool {
	return w.transition("toggle", func(s WidgetState) (WidgetState, bool) {
		switch s {
		case WidgetOpen:
			return WidgetMinimized, true
		case WidgetMinimized:
			return WidgetOpen, true
		}
		return s, false
	})
}

// Close hides the widget. Pending replies still land in the log.
func (w *ChatWidget) Close() {
	w.transition("close", func(WidgetState) (WidgetState, bool) { return WidgetClosed, true })
}

func (w *ChatWidget) transition(op string, next func(WidgetState) (WidgetState, bool)) bool {
	w.mu.Lock()
	defer w.mu.Unlock()

	to, ok := next(w.state)
	if !ok {
		w.logger.Debug("[%s] %s ignored in state %s", w.name, op, w.state)
		return false
	}
	if to != w.state {
		w.logger.Debug("[%s] %s: %s → %s", w.name, op, w.state, to)
	}
	w.state = to
	return true
}

// ListenForOpen opens the widget whenever an OpenChatRequest is published on
// bus. The returned function detaches it.
func (w *ChatWidget) ListenForOpen(bus *Bus[OpenChatRequest]) func() {
	return bus.Subscribe(func(req OpenChatRequest) {
		w.logger.Debug("[%s] open requested by %q", w.name, req.Source)
		w.Open()
	})
}

// Send appends the user's message and schedules the bot reply. Blank text
// is rejected with ErrEmptyMessage; a widget that is not open rejects with
// ErrWidgetNotOpen.
func (w *ChatWidget) Send(text string) error {
	if strings.TrimSpace(text) == "" {
		return ErrEmptyMessage
	}

	w.mu.Lock()
	if w.state != WidgetOpen {
		state := w.state
		w.mu.Unlock()
		w.logger.Debug("[%s] send rejected in state %s", w.name, state)
		return ErrWidgetNotOpen
	}

	userMsg := w.newMessage(models.SenderUser, text, nil)
	w.messages = append(w.messages, userMsg)
	w.mu.Unlock()

	result := w.router.Route(text)
	w.appended.Publish(userMsg)

	w.mu.Lock()
	w.scheduleReply(result)
	w.mu.Unlock()
	return nil
}

// SendQuickAction sends the prompt of the quick action with the given id.
func (w *ChatWidget) SendQuickAction(id string) error {
	for _, qa := range w.quick {
		if qa.ID == id {
			return w.Send(qa.Prompt)
		}
	}
	return ErrUnknownQuickAction
}

// QuickActions returns the preset prompts.
func (w *ChatWidget) QuickActions() []models.QuickAction {
	return append([]models.QuickAction(nil), w.quick...)
}

// ShowQuickActions reports whether quick actions are on offer: only before
// the first exchange.
func (w *ChatWidget) ShowQuickActions() bool {
	w.mu.Lock()
	defer w.mu.Unlock()
	return len(w.quick) > 0 && len(w.messages) <= 1
}

// scheduleReply must be called with w.mu held.
func (w *ChatWidget) scheduleReply(result models.RouteResult) {
	if w.stopped {
		return
	}
	w.nextReply++
	id := w.nextReply
	w.pending[id] = time.AfterFunc(w.delay, func() { w.deliver(id, result) })
}

func (w *ChatWidget) deliver(id uint64, result models.RouteResult) {
	w.mu.Lock()
	if _, ok := w.pending[id]; !ok {
		w.mu.Unlock()
		return
	}
	delete(w.pending, id)

	botMsg := w.newMessage(models.SenderBot, result.Response, result.FollowUps)
	w.messages = append(w.messages, botMsg)
	state := w.state
	w.mu.Unlock()

	if result.CategoryID == "" {
		w.logger.Debug("[%s] reply (fallback) delivered while %s", w.name, state)
	} else {
		w.logger.Debug("[%s] reply (%s) delivered while %s", w.name, result.CategoryID, state)
	}
	w.appended.Publish(botMsg)
}

// IsTyping reports whether a bot reply is pending.
func (w *ChatWidget) IsTyping() bool {
	w.mu.Lock()
	defer w.mu.Unlock()
	return len(w.pending) > 0
}

// Messages returns a copy of the log in append order.
func (w *ChatWidget) Messages() []models.ChatMessage {
	w.mu.Lock()
	defer w.mu.Unlock()
	out := make([]models.ChatMessage, len(w.messages))
	copy(out, w.messages)
	return out
}

// OnMessage registers fn to be called after every append, user or bot.
func (w *ChatWidget) OnMessage(fn func(models.ChatMessage)) func() {
	return w.appended.Subscribe(fn)
}

// Stop cancels every pending reply. Later sends are still logged but no
// longer answered.
func (w *ChatWidget) Stop() {
	w.mu.Lock()
	defer w.mu.Unlock()

	for id, t := range w.pending {
		t.Stop()
		delete(w.pending, id)
	}
	if !w.stopped {
		w.logger.Debug("[%s] stopped", w.name)
	}
	w.stopped = true
}

func (w *ChatWidget) newMessage(sender models.Sender, content string, followUps []string) models.ChatMessage {
	return models.ChatMessage{
		ID:        w.ids.New(),
		Sender:    sender,
		Content:   content,
		Timestamp: w.now(),
		FollowUps: append([]string(nil), followUps...),
	}
}
