package services

import (
	"errors"
	"strings"
	"sync"
	"sync/atomic"
	"testing"
	"time"

	"github.com/Tareq669/bot-sub000/internal/content"
	"github.com/Tareq669/bot-sub000/internal/logging"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func init() {
	logging.BootstrapLogger()
}

type fakeMessenger struct {
	mu         sync.Mutex
	broadcasts []string
	edits      []string
	failSend   bool
}

func (f *fakeMessenger) Broadcast(chatID int64, text string) (int64, error) {
	f.mu.Lock()
	defer f.mu.Unlock()
	if f.failSend {
		return 0, errors.New("network down")
	}
	f.broadcasts = append(f.broadcasts, text)
	return int64(len(f.broadcasts)), nil
}

func (f *fakeMessenger) EditMessage(chatID, messageID int64, text string) error {
	f.mu.Lock()
	defer f.mu.Unlock()
	f.edits = append(f.edits, text)
	return nil
}

func (f *fakeMessenger) editCount() int {
	f.mu.Lock()
	defer f.mu.Unlock()
	return len(f.edits)
}

func (f *fakeMessenger) lastEdit() string {
	f.mu.Lock()
	defer f.mu.Unlock()
	if len(f.edits) == 0 {
		return ""
	}
	return f.edits[len(f.edits)-1]
}

type fakeSettings struct {
	enabled    bool
	timeoutSec int
}

func (f *fakeSettings) RoundSettings(chatID int64) (bool, int, error) {
	return f.enabled, f.timeoutSec, nil
}

type fakeWins struct {
	calls int64
}

func (f *fakeWins) HandleWin(chatID, userID int64, displayName string, q content.Question) (*WinSummary, error) {
	atomic.AddInt64(&f.calls, 1)
	return &WinSummary{}, nil
}

func testQuestion() content.Question {
	return content.Question{
		Type:    content.RoundTypeQuiz,
		Prompt:  "ما هي عاصمة مصر؟",
		Answers: []string{"القاهرة"},
		Reward:  10,
	}
}

func newTestManager(msgr *fakeMessenger, timeoutSec int) (*RoundManager, *fakeWins) {
	wins := &fakeWins{}
	m := NewRoundManager(msgr, &fakeSettings{enabled: true, timeoutSec: timeoutSec}, NewMatcher(), wins, 50*time.Millisecond)
	return m, wins
}

func TestStartRoundConflictWhileActive(t *testing.T) {
	m, _ := newTestManager(&fakeMessenger{}, 60)
	defer m.CancelAll()

	_, err := m.StartRound(1, testQuestion())
	require.NoError(t, err)

	_, err = m.StartRound(1, testQuestion())
	assert.ErrorIs(t, err, ErrRoundActive)

	// a different chat is unaffected
	_, err = m.StartRound(2, testQuestion())
	assert.NoError(t, err)
}

func TestStartRoundDisabledGroup(t *testing.T) {
	wins := &fakeWins{}
	m := NewRoundManager(&fakeMessenger{}, &fakeSettings{enabled: false, timeoutSec: 60}, NewMatcher(), wins, time.Second)

	_, err := m.StartRound(1, testQuestion())
	assert.ErrorIs(t, err, ErrGameDisabled)
	assert.False(t, m.HasActiveRound(1))
}

func TestStartRoundFailedBroadcastRollsBack(t *testing.T) {
	m, _ := newTestManager(&fakeMessenger{failSend: true}, 60)

	_, err := m.StartRound(1, testQuestion())
	require.Error(t, err)
	assert.False(t, m.HasActiveRound(1), "slot must be released when the prompt never went out")
}

func TestResolveExactlyOneWinner(t *testing.T) {
	m, wins := newTestManager(&fakeMessenger{}, 60)
	defer m.CancelAll()

	_, err := m.StartRound(1, testQuestion())
	require.NoError(t, err)

	const attempts = 50
	var wg sync.WaitGroup
	var winners int64
	for i := 0; i < attempts; i++ {
		wg.Add(1)
		go func(userID int64) {
			defer wg.Done()
			_, won, _ := m.Resolve(1, userID, "user", "القاهرة")
			if won {
				atomic.AddInt64(&winners, 1)
			}
		}(int64(i + 100))
	}
	wg.Wait()

	assert.Equal(t, int64(1), winners)
	assert.Equal(t, int64(1), atomic.LoadInt64(&wins.calls))
	assert.False(t, m.HasActiveRound(1))
}

type slowMessenger struct {
	fakeMessenger
	entered chan struct{}
	release chan struct{}
}

func (s *slowMessenger) Broadcast(chatID int64, text string) (int64, error) {
	s.entered <- struct{}{}
	<-s.release
	return s.fakeMessenger.Broadcast(chatID, text)
}

func TestResolveDuringBroadcastDoesNotWin(t *testing.T) {
	msgr := &slowMessenger{
		entered: make(chan struct{}, 1),
		release: make(chan struct{}),
	}
	wins := &fakeWins{}
	m := NewRoundManager(msgr, &fakeSettings{enabled: true, timeoutSec: 60}, NewMatcher(), wins, time.Second)
	defer m.CancelAll()

	started := make(chan error, 1)
	go func() {
		_, err := m.StartRound(1, testQuestion())
		started <- err
	}()
	<-msgr.entered

	// the prompt has not reached the chat yet, so a correct answer
	// arriving now must not win or pay out
	summary, won, err := m.Resolve(1, 7, "user", "القاهرة")
	assert.NoError(t, err)
	assert.False(t, won)
	assert.Nil(t, summary)
	assert.Equal(t, int64(0), atomic.LoadInt64(&wins.calls))

	close(msgr.release)
	require.NoError(t, <-started)

	_, won, err = m.Resolve(1, 7, "user", "القاهرة")
	assert.NoError(t, err)
	assert.True(t, won)
	assert.Equal(t, int64(1), atomic.LoadInt64(&wins.calls))
}

func TestCancelDuringBroadcastAbortsRound(t *testing.T) {
	msgr := &slowMessenger{
		entered: make(chan struct{}, 1),
		release: make(chan struct{}),
	}
	wins := &fakeWins{}
	m := NewRoundManager(msgr, &fakeSettings{enabled: true, timeoutSec: 60}, NewMatcher(), wins, time.Second)

	started := make(chan error, 1)
	go func() {
		_, err := m.StartRound(1, testQuestion())
		started <- err
	}()
	<-msgr.entered

	m.Cancel(1)
	close(msgr.release)

	assert.ErrorIs(t, <-started, ErrGameDisabled)
	assert.False(t, m.HasActiveRound(1))
	assert.Equal(t, int64(0), atomic.LoadInt64(&wins.calls))
}

func TestResolveWrongAnswerKeepsRound(t *testing.T) {
	m, wins := newTestManager(&fakeMessenger{}, 60)
	defer m.CancelAll()

	_, err := m.StartRound(1, testQuestion())
	require.NoError(t, err)

	_, won, err := m.Resolve(1, 7, "user", "الرياض")
	assert.NoError(t, err)
	assert.False(t, won)
	assert.True(t, m.HasActiveRound(1))
	assert.Equal(t, int64(0), atomic.LoadInt64(&wins.calls))
}

func TestResolveNoActiveRound(t *testing.T) {
	m, _ := newTestManager(&fakeMessenger{}, 60)

	_, won, err := m.Resolve(1, 7, "user", "القاهرة")
	assert.NoError(t, err)
	assert.False(t, won)
}

func TestRoundExpiryRevealsAnswer(t *testing.T) {
	msgr := &fakeMessenger{}
	m, wins := newTestManager(msgr, 1)

	_, err := m.StartRound(1, testQuestion())
	require.NoError(t, err)

	assert.Eventually(t, func() bool {
		return !m.HasActiveRound(1) && strings.Contains(msgr.lastEdit(), "القاهرة")
	}, 3*time.Second, 50*time.Millisecond)

	assert.Equal(t, int64(0), atomic.LoadInt64(&wins.calls))

	// slot is free again after expiry
	_, err = m.StartRound(1, testQuestion())
	assert.NoError(t, err)
	m.CancelAll()
}

func TestResolveAfterExpiryIsNoop(t *testing.T) {
	m, wins := newTestManager(&fakeMessenger{}, 1)

	_, err := m.StartRound(1, testQuestion())
	require.NoError(t, err)

	assert.Eventually(t, func() bool {
		return !m.HasActiveRound(1)
	}, 3*time.Second, 50*time.Millisecond)

	_, won, _ := m.Resolve(1, 7, "user", "القاهرة")
	assert.False(t, won)
	assert.Equal(t, int64(0), atomic.LoadInt64(&wins.calls))
}

func TestCountdownEdits(t *testing.T) {
	msgr := &fakeMessenger{}
	m, _ := newTestManager(msgr, 60)
	defer m.CancelAll()

	_, err := m.StartRound(1, testQuestion())
	require.NoError(t, err)

	assert.Eventually(t, func() bool {
		return msgr.editCount() >= 2
	}, 2*time.Second, 20*time.Millisecond)
}

func TestCancelReleasesSlot(t *testing.T) {
	m, wins := newTestManager(&fakeMessenger{}, 60)

	_, err := m.StartRound(1, testQuestion())
	require.NoError(t, err)

	m.Cancel(1)
	assert.False(t, m.HasActiveRound(1))

	_, won, _ := m.Resolve(1, 7, "user", "القاهرة")
	assert.False(t, won)
	assert.Equal(t, int64(0), atomic.LoadInt64(&wins.calls))
}

func TestCancelAll(t *testing.T) {
	m, _ := newTestManager(&fakeMessenger{}, 60)

	for chat := int64(1); chat <= 5; chat++ {
		_, err := m.StartRound(chat, testQuestion())
		require.NoError(t, err)
	}

	m.CancelAll()
	for chat := int64(1); chat <= 5; chat++ {
		assert.False(t, m.HasActiveRound(chat))
	}
}
