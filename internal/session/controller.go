package session

import (
	"context"
	"fmt"
	"slices"
	"sync"

	"github.com/google/uuid"

	"github.com/apomind/apomind-cli/internal/api"
	"github.com/apomind/apomind-cli/internal/logging"
	"github.com/apomind/apomind-cli/internal/store"
)

// Op names a controller operation for listeners.
type Op string

const (
	OpResolve            Op = "resolve"
	OpLogin              Op = "login"
	OpRegister           Op = "register"
	OpCompleteOnboarding Op = "complete_onboarding"
	OpUpdateProfile      Op = "update_profile"
	OpLogout             Op = "logout"
)

// Event is the structured result of a completed operation. Presentation
// (toasts and the like) lives with the listener, not here.
type Event struct {
	Op    Op
	State State
	Err   error
}

// Controller owns the in-memory session and keeps it in lockstep with the
// durable store. Construct with NewController, call Resolve once, then pass
// the instance to consumers.
type Controller struct {
	api   api.Client
	store store.Store
	log   logging.Logger

	mu        sync.Mutex
	state     State
	sess      *Session
	opToken   string // non-empty while a mutating operation is in flight
	listeners []func(Event)

	resolveOnce sync.Once
	resolved    chan struct{}
}

func NewController(apiClient api.Client, st store.Store, log logging.Logger) *Controller {
	if log == nil {
		log = logging.NewNopLogger()
	}
	return &Controller{
		api:      apiClient,
		store:    st,
		log:      log,
		state:    StateUnresolved,
		resolved: make(chan struct{}),
	}
}

// OnChange registers a listener invoked after every completed operation,
// success or failure, once the new state is durable.
func (c *Controller) OnChange(fn func(Event)) {
	c.mu.Lock()
	defer c.mu.Unlock()
	c.listeners = append(c.listeners, fn)
}

// Snapshot returns the current state and a copy of the session (nil when
// anonymous or unresolved).
func (c *Controller) Snapshot() (State, *Session) {
	c.mu.Lock()
	defer c.mu.Unlock()
	return c.state, c.sess.clone()
}

// WaitResolved blocks until Resolve has run or ctx is done. Guard decisions
// taken before this returns are not trustworthy.
func (c *Controller) WaitResolved(ctx context.Context) error {
	select {
	case <-c.resolved:
		return nil
	case <-ctx.Done():
		return ctx.Err()
	}
}

// Resolve consults the store exactly once and establishes the initial state.
// It never touches the network. A missing or unreadable record, including a
// record that fails to parse, yields StateAnonymous; no error escapes. Later
// calls return the current state without touching the store again.
func (c *Controller) Resolve(ctx context.Context) State {
	c.resolveOnce.Do(func() {
		var sess *Session

		record, err := c.store.Load(ctx)
		switch {
		case err != nil:
			c.log.Warn(ctx, "session store unreadable, starting anonymous", "err", err)
		case record == nil:
			// never logged in, or logged out
		default:
			sess, err = decodeSession(record)
			if err != nil {
				c.log.Warn(ctx, "corrupt session record, starting anonymous", "err", err)
				if cerr := c.store.Clear(ctx); cerr != nil {
					c.log.Warn(ctx, "clearing corrupt session record", "err", cerr)
				}
				sess = nil
			}
		}

		c.mu.Lock()
		c.sess = sess
		c.state = stateOf(sess)
		st := c.state
		ls := slices.Clone(c.listeners)
		c.mu.Unlock()

		close(c.resolved)
		c.log.Info(ctx, "session resolved", "state", st.String())
		emit(ls, Event{Op: OpResolve, State: st})
	})

	c.mu.Lock()
	defer c.mu.Unlock()
	return c.state
}

// Login exchanges credentials for a session. On any backend failure the
// state is left unchanged and the error reports why; no partial session is
// ever written.
func (c *Controller) Login(ctx context.Context, email string, password []byte) error {
	token, err := c.begin(requireAnonymous)
	if err != nil {
		return err
	}

	acct, err := c.api.Login(ctx, email, password)
	if err != nil {
		return c.fail(token, OpLogin, fmt.Errorf("login failed: %w", err))
	}

	return c.commit(ctx, token, OpLogin, sessionFromAccount(acct))
}

// Register creates a new account. The resulting session always starts with
// the onboarding survey pending, whatever the backend response says.
func (c *Controller) Register(ctx context.Context, username, email string, password []byte) error {
	token, err := c.begin(requireAnonymous)
	if err != nil {
		return err
	}

	acct, err := c.api.Register(ctx, username, email, password)
	if err != nil {
		return c.fail(token, OpRegister, fmt.Errorf("registration failed: %w", err))
	}

	sess := sessionFromAccount(acct)
	sess.CompletedSurvey = false
	return c.commit(ctx, token, OpRegister, sess)
}

// CompleteOnboarding marks the survey as done. The transition is one-way; on
// an already-complete session it is a no-op success.
func (c *Controller) CompleteOnboarding(ctx context.Context) error {
	token, err := c.begin(requireAuthenticated)
	if err != nil {
		return err
	}

	cur := c.current()
	if cur.CompletedSurvey {
		c.release(token)
		return nil
	}

	cur.CompletedSurvey = true
	return c.commit(ctx, token, OpCompleteOnboarding, cur)
}

// UpdateProfile merges the user-editable fields into the session. ID and
// email are not expressible in ProfileUpdate and so cannot change.
func (c *Controller) UpdateProfile(ctx context.Context, upd ProfileUpdate) error {
	token, err := c.begin(requireAuthenticated)
	if err != nil {
		return err
	}

	cur := c.current()
	if upd.Username != nil && *upd.Username != "" {
		cur.Username = *upd.Username
	}

	return c.commit(ctx, token, OpUpdateProfile, cur)
}

// Logout destroys the session: store first, then memory.
func (c *Controller) Logout(ctx context.Context) error {
	token, err := c.begin(requireAuthenticated)
	if err != nil {
		return err
	}

	return c.commit(ctx, token, OpLogout, nil)
}

func requireAnonymous(st State) error {
	switch st {
	case StateAnonymous:
		return nil
	case StateUnresolved:
		return ErrUnresolved
	default:
		return ErrAlreadyAuthenticated
	}
}

func requireAuthenticated(st State) error {
	switch st {
	case StateIncomplete, StateComplete:
		return nil
	case StateUnresolved:
		return ErrUnresolved
	default:
		return ErrNotAuthenticated
	}
}

// begin claims the single in-flight slot after validating the current state.
// The returned token identifies the operation until commit, fail, or release.
func (c *Controller) begin(validate func(State) error) (string, error) {
	c.mu.Lock()
	defer c.mu.Unlock()

	if c.opToken != "" {
		return "", ErrBusy
	}
	if err := validate(c.state); err != nil {
		return "", err
	}

	token := uuid.NewString()
	c.opToken = token
	return token, nil
}

// current returns a copy of the session for the operation holding the token.
func (c *Controller) current() *Session {
	c.mu.Lock()
	defer c.mu.Unlock()
	return c.sess.clone()
}

// commit makes next durable and only then publishes it. next == nil clears
// the session. A commit whose initiating context is already done is
// discarded: the late response must not mutate state the caller no longer
// cares about.
func (c *Controller) commit(ctx context.Context, token string, op Op, next *Session) error {
	if err := ctx.Err(); err != nil {
		c.log.Warn(ctx, "discarding late result", "op", string(op), "err", err)
		c.release(token)
		return err
	}

	if next == nil {
		if err := c.store.Clear(ctx); err != nil {
			return c.fail(token, op, fmt.Errorf("%w: clearing local session: %v", api.ErrUnavailable, err))
		}
	} else {
		record, err := encodeSession(next)
		if err != nil {
			return c.fail(token, op, fmt.Errorf("encoding session: %w", err))
		}
		if err := c.store.Save(ctx, record); err != nil {
			return c.fail(token, op, fmt.Errorf("%w: saving local session: %v", api.ErrUnavailable, err))
		}
	}

	c.mu.Lock()
	if c.opToken != token {
		// Not the active operation anymore; its result is void.
		c.mu.Unlock()
		return ErrBusy
	}
	c.sess = next
	c.state = stateOf(next)
	c.opToken = ""
	st := c.state
	ls := slices.Clone(c.listeners)
	c.mu.Unlock()

	c.log.Info(ctx, "session updated", "op", string(op), "state", st.String())
	emit(ls, Event{Op: op, State: st})
	return nil
}

// fail releases the slot, reports the failure to listeners, and returns err
// unchanged. The state machine stays where it was.
func (c *Controller) fail(token string, op Op, err error) error {
	c.mu.Lock()
	if c.opToken == token {
		c.opToken = ""
	}
	st := c.state
	ls := slices.Clone(c.listeners)
	c.mu.Unlock()

	emit(ls, Event{Op: op, State: st, Err: err})
	return err
}

func (c *Controller) release(token string) {
	c.mu.Lock()
	defer c.mu.Unlock()
	if c.opToken == token {
		c.opToken = ""
	}
}

func emit(listeners []func(Event), ev Event) {
	for _, fn := range listeners {
		fn(ev)
	}
}
