package conversation

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"strings"
	"sync"
	"time"

	"github.com/google/uuid"
	"github.com/maisondeculture/leguide/internal/domain"
	"github.com/maisondeculture/leguide/internal/store"
)

// DefaultTimeout bounds one responder call.
const DefaultTimeout = 30 * time.Second

// Responder produces the assistant reply for a user message.
type Responder interface {
	Respond(ctx context.Context, text string, bc domain.BusinessContext, history []domain.HistoryEntry) (string, error)
}

// Options configures a Controller. Responder is required.
type Options struct {
	Responder Responder
	// Store persists the conversation snapshot. Nil disables persistence.
	Store store.SessionStore
	// Speech provides voice input. Nil reports voice input as unsupported.
	Speech   SpeechInput
	Language string
	// Context overrides the default business context. Its Query is replaced by Language.
	Context *domain.BusinessContext
	Logger  *slog.Logger
	Timeout time.Duration

	Now   func() time.Time
	Sleep func(ctx context.Context, d time.Duration) error
	NewID func() string
}

// Controller owns the conversation state. All mutations go through Reduce
// under one mutex; at most one send is in flight.
type Controller struct {
	responder Responder
	store     store.SessionStore
	speech    SpeechInput
	logger    *slog.Logger
	timeout   time.Duration
	now       func() time.Time
	sleep     func(ctx context.Context, d time.Duration) error
	newID     func() string

	mu       sync.Mutex
	state    State
	language string
	bctx     domain.BusinessContext

	persistMu sync.Mutex
}

// New creates a Controller. Call Restore before the first Send.
func New(opts Options) (*Controller, error) {
	if opts.Responder == nil {
		return nil, errors.New("conversation: responder is required")
	}

	lang := domain.NormalizeLanguage(opts.Language)
	bc := domain.DefaultContext(lang)
	if opts.Context != nil {
		bc = opts.Context.WithoutHistory()
		bc.MessageType = ""
		bc.Query = lang
	}

	c := &Controller{
		responder: opts.Responder,
		store:     opts.Store,
		speech:    opts.Speech,
		logger:    opts.Logger,
		timeout:   opts.Timeout,
		now:       opts.Now,
		sleep:     opts.Sleep,
		newID:     opts.NewID,
		language:  lang,
		bctx:      bc,
	}
	if c.logger == nil {
		c.logger = slog.Default()
	}
	if c.timeout <= 0 {
		c.timeout = DefaultTimeout
	}
	if c.now == nil {
		c.now = time.Now
	}
	if c.sleep == nil {
		c.sleep = sleepContext
	}
	if c.newID == nil {
		c.newID = newMessageID
	}
	return c, nil
}

// State returns a snapshot of the current state.
func (c *Controller) State() State {
	c.mu.Lock()
	defer c.mu.Unlock()
	return c.state.clone()
}

// Language returns the current UI language.
func (c *Controller) Language() string {
	c.mu.Lock()
	defer c.mu.Unlock()
	return c.language
}

// Context returns the business context attached to new requests.
func (c *Controller) Context() domain.BusinessContext {
	c.mu.Lock()
	defer c.mu.Unlock()
	return c.bctx
}

// dispatch applies actions in order. Caller must hold c.mu.
func (c *Controller) dispatch(actions ...Action) {
	for _, a := range actions {
		c.state = Reduce(c.state, a)
	}
}

// Restore replays the stored snapshot, or shows the welcome message when
// there is nothing fresh to replay. Invalid and expired snapshots are removed.
func (c *Controller) Restore(ctx context.Context) {
	sess := c.loadSession(ctx)

	c.mu.Lock()
	if sess != nil && len(sess.Messages) > 0 {
		c.bctx = sess.Context.WithoutHistory()
		c.language = domain.NormalizeLanguage(c.bctx.Query)
		c.dispatch(SetMessages{Messages: sess.Messages})
	} else {
		c.dispatch(SetMessages{Messages: []domain.Message{c.welcomeLocked()}})
	}
	c.mu.Unlock()

	c.persist(ctx)
}

func (c *Controller) loadSession(ctx context.Context) *PersistedSession {
	if c.store == nil {
		return nil
	}
	data, err := c.store.Load(ctx, StorageKey)
	if errors.Is(err, store.ErrNotFound) {
		return nil
	}
	if err != nil {
		c.logger.Warn("Failed to load chat state", "error", err)
		return nil
	}

	sess, err := decodeSession(data, c.now())
	if err != nil {
		if errors.Is(err, errExpiredSession) {
			c.logger.Info("Stored chat state expired, clearing")
		} else {
			c.logger.Warn("Invalid stored chat state, clearing", "error", err)
		}
		if clearErr := c.store.Clear(ctx, StorageKey); clearErr != nil {
			c.logger.Warn("Failed to clear chat state", "error", clearErr)
		}
		return nil
	}
	return sess
}

func (c *Controller) welcomeLocked() domain.Message {
	return domain.Message{
		ID:        WelcomeMessageID,
		Content:   WelcomeText(c.language),
		Role:      domain.RoleAssistant,
		Timestamp: c.now(),
		Language:  c.language,
	}
}

// SetInput replaces the input buffer.
func (c *Controller) SetInput(text string) {
	c.mu.Lock()
	defer c.mu.Unlock()
	c.dispatch(SetInput{Text: text})
}

// DismissError clears the current error banner.
func (c *Controller) DismissError() {
	c.mu.Lock()
	defer c.mu.Unlock()
	c.dispatch(SetError{})
}

// SetScrollButton toggles the jump-to-latest affordance.
func (c *Controller) SetScrollButton(show bool) {
	c.mu.Lock()
	defer c.mu.Unlock()
	c.dispatch(SetScrollButton{Show: show})
}

// SetLanguage switches the UI and response language. A conversation that
// only holds the greeting gets the greeting in the new language.
func (c *Controller) SetLanguage(ctx context.Context, lang string) {
	c.mu.Lock()
	c.language = domain.NormalizeLanguage(lang)
	c.bctx.Query = c.language
	if len(c.state.Messages) == 1 && c.state.Messages[0].ID == WelcomeMessageID {
		c.dispatch(SetMessages{Messages: []domain.Message{c.welcomeLocked()}})
	}
	c.mu.Unlock()

	c.persist(ctx)
}

// Send sends the trimmed input buffer. An empty buffer is a no-op.
// A failed send is reported through State().Error and also returned.
func (c *Controller) Send(ctx context.Context) error {
	c.mu.Lock()
	text := strings.TrimSpace(c.state.Input)
	c.mu.Unlock()
	return c.send(ctx, text, domain.SourceUser)
}

// QuickAction sends the prompt of the quick action with the given id.
func (c *Controller) QuickAction(ctx context.Context, id string) error {
	qa, ok := LookupQuickAction(id)
	if !ok {
		return fmt.Errorf("%w: %s", ErrUnknownQuickAction, id)
	}
	c.SetInput(qa.Query)
	return c.send(ctx, qa.Query, domain.SourceQuickAction)
}

// Retry invokes the retry bound to the current error.
func (c *Controller) Retry(ctx context.Context) error {
	c.mu.Lock()
	var retry func(context.Context) error
	if c.state.Error != nil {
		retry = c.state.Error.Retry
	}
	count := c.state.RetryCount
	c.mu.Unlock()

	if retry == nil {
		if count >= MaxRetries {
			return ErrMaxRetries
		}
		return ErrNothingToRetry
	}
	return retry(ctx)
}

// Clear removes the stored snapshot and empties the conversation in one transition.
func (c *Controller) Clear(ctx context.Context) {
	if c.store != nil {
		c.persistMu.Lock()
		if err := c.store.Clear(ctx, StorageKey); err != nil {
			c.logger.Error("Error clearing chat history", "error", err)
		}
		c.persistMu.Unlock()
	}

	c.mu.Lock()
	defer c.mu.Unlock()
	c.dispatch(ClearMessages{})
}

// send runs the send protocol. source is SourceRetry for retries, which reuse
// the existing user message instead of appending a new one.
func (c *Controller) send(ctx context.Context, text string, source domain.Source) error {
	if text == "" {
		return nil
	}
	retrying := source == domain.SourceRetry
	quick := IsQuickAction(text)

	c.mu.Lock()
	if c.state.Loading {
		c.mu.Unlock()
		return ErrBusy
	}

	history := domain.History(c.state.Messages)
	lang := c.language
	if !retrying {
		c.dispatch(
			AddMessage{Message: domain.Message{
				ID:        c.newID(),
				Content:   text,
				Role:      domain.RoleUser,
				Timestamp: c.now(),
				Language:  lang,
				Metadata:  domain.UserMetadata{IsQuickAction: quick, Source: source},
			}},
			SetInput{},
		)
	}
	c.dispatch(SetLoading{Loading: true}, SetError{})

	retryCount := c.state.RetryCount
	bc := c.bctx
	bc.MessageType = domain.MessageTypeFreeform
	if quick {
		bc.MessageType = domain.MessageTypeQuickAction
	}
	bc.PreviousMessages = history
	c.mu.Unlock()

	if !retrying {
		c.persist(ctx)
	}

	reply, err := c.respond(ctx, text, bc, history)

	c.mu.Lock()
	if err == nil {
		respondingTo := bc.MessageType
		replyCtx := bc.WithoutHistory()
		c.dispatch(
			AddMessage{Message: domain.Message{
				ID:        c.newID(),
				Content:   reply,
				Role:      domain.RoleAssistant,
				Timestamp: c.now(),
				Language:  lang,
				Metadata:  domain.AssistantMetadata{RespondingTo: respondingTo, Context: &replyCtx},
			}},
			ResetRetry{},
			SetLoading{Loading: false},
		)
		c.mu.Unlock()
		c.persist(ctx)
		return nil
	}

	kind := classify(err)
	c.logger.Error("Error sending message",
		"type", string(kind),
		"error", err,
		"message_type", string(bc.MessageType),
		"language", lang,
		"retry_count", retryCount,
	)

	es := &ErrorState{
		Kind:        kind,
		Message:     userMessage(kind, lang),
		Timestamp:   c.now(),
		RetryCount:  retryCount,
		LastAttempt: text,
	}
	if retryCount < MaxRetries {
		es.Retry = c.retryFrom(retryCount)
	}
	c.dispatch(SetError{Error: es}, IncrementRetry{}, SetLoading{Loading: false})
	c.mu.Unlock()

	return fmt.Errorf("send message: %w", err)
}

// respond races the responder against the deadline. A late reply is dropped.
func (c *Controller) respond(ctx context.Context, text string, bc domain.BusinessContext, history []domain.HistoryEntry) (string, error) {
	type result struct {
		reply string
		err   error
	}

	callCtx, cancel := context.WithCancel(ctx)
	done := make(chan result, 1)
	go func() {
		reply, err := c.responder.Respond(callCtx, text, bc, history)
		done <- result{reply: reply, err: err}
	}()

	timer := time.NewTimer(c.timeout)
	defer timer.Stop()

	select {
	case r := <-done:
		cancel()
		return r.reply, r.err
	case <-timer.C:
		cancel()
		return "", ErrTimeout
	case <-ctx.Done():
		cancel()
		return "", ctx.Err()
	}
}

// retryFrom binds a retry for a failure raised at retry count n.
func (c *Controller) retryFrom(n int) func(ctx context.Context) error {
	return func(ctx context.Context) error {
		c.mu.Lock()
		if c.state.RetryCount >= MaxRetries {
			c.mu.Unlock()
			return ErrMaxRetries
		}
		last, ok := lastUserMessage(c.state.Messages)
		c.mu.Unlock()
		if !ok {
			return ErrNothingToRetry
		}

		if err := c.sleep(ctx, Backoff(n)); err != nil {
			return err
		}
		return c.send(ctx, last.Content, domain.SourceRetry)
	}
}

// Backoff is the delay before the retry of a failure raised at retry count n.
func Backoff(n int) time.Duration {
	const maxDelay = 8 * time.Second
	switch {
	case n <= 0:
		return time.Second
	case n >= 4:
		return maxDelay
	}
	d := time.Second << n
	if d > maxDelay {
		return maxDelay
	}
	return d
}

func lastUserMessage(msgs []domain.Message) (domain.Message, bool) {
	for i := len(msgs) - 1; i >= 0; i-- {
		if msgs[i].Role == domain.RoleUser {
			return msgs[i], true
		}
	}
	return domain.Message{}, false
}

// persist writes the current snapshot. Failures are logged and swallowed.
func (c *Controller) persist(ctx context.Context) {
	if c.store == nil {
		return
	}
	c.persistMu.Lock()
	defer c.persistMu.Unlock()

	c.mu.Lock()
	msgs := append([]domain.Message(nil), c.state.Messages...)
	bc := c.bctx
	c.mu.Unlock()

	if len(msgs) == 0 {
		return
	}
	data, err := encodeSession(msgs, bc, c.now())
	if err != nil {
		c.logger.Error("Error saving chat state", "error", err)
		return
	}
	if err := c.store.Save(ctx, StorageKey, data); err != nil {
		c.logger.Error("Error saving chat state", "error", err)
	}
}

// StartVoice begins one voice-input session. Failures are surfaced as error
// banners, never returned.
func (c *Controller) StartVoice() {
	c.mu.Lock()
	if c.speech == nil {
		c.dispatch(SetError{Error: c.voiceErrorLocked(speechUnsupportedText)})
		c.mu.Unlock()
		return
	}
	lang := RecognitionLanguage(c.language)
	c.dispatch(SetListening{Listening: true})
	c.mu.Unlock()

	err := c.speech.Start(lang, SpeechHandlers{
		OnResult: func(text string) {
			c.mu.Lock()
			defer c.mu.Unlock()
			c.dispatch(SetInput{Text: text})
		},
		OnError: func(err error) {
			c.logger.Warn("Voice input error", "error", err)
			c.mu.Lock()
			defer c.mu.Unlock()
			c.dispatch(SetListening{Listening: false}, SetError{Error: c.voiceErrorLocked(speechErrorText)})
		},
		OnEnd: func() {
			c.mu.Lock()
			defer c.mu.Unlock()
			c.dispatch(SetListening{Listening: false})
		},
	})
	if err != nil {
		c.logger.Warn("Could not start voice recognition", "error", err)
		c.mu.Lock()
		c.dispatch(SetListening{Listening: false}, SetError{Error: c.voiceErrorLocked(speechStartFailedText)})
		c.mu.Unlock()
	}
}

func (c *Controller) voiceErrorLocked(msg string) *ErrorState {
	return &ErrorState{Kind: ErrorUnknown, Message: msg, Timestamp: c.now()}
}

func newMessageID() string {
	id, err := uuid.NewV7()
	if err != nil {
		return uuid.NewString()
	}
	return id.String()
}

func sleepContext(ctx context.Context, d time.Duration) error {
	timer := time.NewTimer(d)
	defer timer.Stop()
	select {
	case <-ctx.Done():
		return ctx.Err()
	case <-timer.C:
		return nil
	}
}
