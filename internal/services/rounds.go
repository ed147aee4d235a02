package services

import (
	"context"
	"fmt"
	"strings"
	"sync"
	"sync/atomic"
	"time"

	"github.com/Tareq669/bot-sub000/internal/content"
	"github.com/Tareq669/bot-sub000/internal/logging"

	"github.com/google/uuid"
)

// Messenger is the chat transport consumed by the round manager.
type Messenger interface {
	Broadcast(chatID int64, text string) (int64, error)
	EditMessage(chatID, messageID int64, text string) error
}

// SettingsSource answers the enabled/timeout lookup for a chat.
type SettingsSource interface {
	RoundSettings(chatID int64) (enabled bool, timeoutSec int, err error)
}

// WinSink executes the payout path for the single winning resolve.
type WinSink interface {
	HandleWin(chatID, userID int64, displayName string, q content.Question) (*WinSummary, error)
}

// EventSink receives round lifecycle events (dashboard observers).
type EventSink interface {
	PublishRoundEvent(chatID int64, event string, data interface{})
}

const (
	roundPending int32 = iota + 1
	roundActive
	roundResolved
	roundExpired
	roundCancelled
)

// Round is one live challenge in one chat. Rounds are ephemeral and
// never persisted; a restart drops them.
type Round struct {
	ID        string           `json:"id"`
	ChatID    int64            `json:"chat_id"`
	Question  content.Question `json:"-"`
	StartedAt time.Time        `json:"started_at"`
	Deadline  time.Time        `json:"deadline"`
	MessageID int64            `json:"-"`

	status int32
	cancel context.CancelFunc
}

func (r *Round) Type() string { return r.Question.Type }

// RoundManager owns the process-wide table of active rounds, one per
// chat, and the timer goroutine of each.
type RoundManager struct {
	messenger Messenger
	settings  SettingsSource
	matcher   *Matcher
	wins      WinSink
	events    EventSink

	countdownEdit time.Duration

	mu     sync.Mutex
	rounds map[int64]*Round
}

func NewRoundManager(messenger Messenger, settings SettingsSource, matcher *Matcher, wins WinSink, countdownEdit time.Duration) *RoundManager {
	if countdownEdit <= 0 {
		countdownEdit = 10 * time.Second
	}
	return &RoundManager{
		messenger:     messenger,
		settings:      settings,
		matcher:       matcher,
		wins:          wins,
		countdownEdit: countdownEdit,
		rounds:        make(map[int64]*Round),
	}
}

// SetEventSink attaches an optional observer sink (the ws hub).
func (m *RoundManager) SetEventSink(events EventSink) {
	m.events = events
}

func (m *RoundManager) publish(chatID int64, event string, data interface{}) {
	if m.events != nil {
		m.events.PublishRoundEvent(chatID, event, data)
	}
}

// StartRound arms a new round in the chat. It fails with ErrRoundActive
// while another round holds the chat's slot and with ErrGameDisabled
// for disabled groups. The round holds the slot in a pending state
// until the prompt broadcast returns; a pending round cannot be won
// and a failed broadcast rolls the slot back to idle.
func (m *RoundManager) StartRound(chatID int64, q content.Question) (*Round, error) {
	enabled, timeoutSec, err := m.settings.RoundSettings(chatID)
	if err != nil {
		return nil, err
	}
	if !enabled {
		return nil, ErrGameDisabled
	}

	now := time.Now()
	ctx, cancel := context.WithCancel(context.Background())
	round := &Round{
		ID:        uuid.NewString(),
		ChatID:    chatID,
		Question:  q,
		StartedAt: now,
		Deadline:  now.Add(time.Duration(timeoutSec) * time.Second),
		status:    roundPending,
		cancel:    cancel,
	}

	m.mu.Lock()
	if _, busy := m.rounds[chatID]; busy {
		m.mu.Unlock()
		cancel()
		return nil, ErrRoundActive
	}
	m.rounds[chatID] = round
	m.mu.Unlock()

	msgID, err := m.messenger.Broadcast(chatID, promptText(q, timeoutSec))
	if err != nil {
		cancel()
		m.release(chatID, round)
		return nil, fmt.Errorf("broadcast failed: %w", err)
	}
	round.MessageID = msgID

	if !atomic.CompareAndSwapInt32(&round.status, roundPending, roundActive) {
		// cancelled while the prompt was in flight
		m.release(chatID, round)
		return nil, ErrGameDisabled
	}

	go m.run(ctx, round)

	logging.Log.Infof("round %s started in chat %d (type=%s reward=%d)", round.ID, chatID, q.Type, q.Reward)
	m.publish(chatID, "round_started", round)
	return round, nil
}

// run consumes the round's unified ticker: periodic countdown edits
// while the round is active, then a single expiry.
func (m *RoundManager) run(ctx context.Context, r *Round) {
	ticker := time.NewTicker(m.countdownEdit)
	defer ticker.Stop()
	expire := time.NewTimer(time.Until(r.Deadline))
	defer expire.Stop()

	for {
		select {
		case <-ctx.Done():
			return
		case <-ticker.C:
			if atomic.LoadInt32(&r.status) != roundActive {
				return
			}
			remaining := int(time.Until(r.Deadline).Seconds())
			if remaining <= 0 {
				continue
			}
			_ = m.messenger.EditMessage(r.ChatID, r.MessageID, promptText(r.Question, remaining))
		case <-expire.C:
			m.expire(r)
			return
		}
	}
}

// Resolve is called for every inbound group message. It reports whether
// this message won the round. Under near-simultaneous correct answers
// the status swap admits exactly one winner; all others are no-ops. A
// round whose prompt is still in flight is pending, not active, so it
// cannot be won yet.
func (m *RoundManager) Resolve(chatID, userID int64, displayName, text string) (*WinSummary, bool, error) {
	m.mu.Lock()
	round, ok := m.rounds[chatID]
	m.mu.Unlock()
	if !ok {
		return nil, false, nil
	}

	if !m.matcher.IsMatch(text, round.Question.Answers) {
		return nil, false, nil
	}

	if !atomic.CompareAndSwapInt32(&round.status, roundActive, roundResolved) {
		return nil, false, nil
	}

	round.cancel()
	m.release(chatID, round)

	summary, err := m.wins.HandleWin(chatID, userID, displayName, round.Question)
	if err != nil {
		logging.Log.WithError(err).Errorf("payout failed for round %s", round.ID)
		_, _ = m.messenger.Broadcast(chatID, "حدث خطأ أثناء تسجيل الفوز، حاول لاحقاً")
		return nil, true, err
	}

	_ = m.messenger.EditMessage(chatID, round.MessageID,
		resolvedText(round.Question, displayName, summary))
	logging.Log.Infof("round %s resolved by user %d in chat %d", round.ID, userID, chatID)
	m.publish(chatID, "round_resolved", map[string]interface{}{
		"round":  round,
		"winner": userID,
	})
	return summary, true, nil
}

func (m *RoundManager) expire(r *Round) {
	if !atomic.CompareAndSwapInt32(&r.status, roundActive, roundExpired) {
		return
	}
	m.release(r.ChatID, r)

	_ = m.messenger.EditMessage(r.ChatID, r.MessageID, expiredText(r.Question))
	logging.Log.Infof("round %s expired in chat %d", r.ID, r.ChatID)
	m.publish(r.ChatID, "round_expired", r)
}

// Cancel tears a round down regardless of state: admin disable and
// shutdown both go through here. The slot is released immediately.
func (m *RoundManager) Cancel(chatID int64) {
	m.mu.Lock()
	round, ok := m.rounds[chatID]
	m.mu.Unlock()
	if !ok {
		return
	}

	if atomic.CompareAndSwapInt32(&round.status, roundActive, roundCancelled) ||
		atomic.CompareAndSwapInt32(&round.status, roundPending, roundCancelled) {
		round.cancel()
		logging.Log.Infof("round %s cancelled in chat %d", round.ID, chatID)
	}
	m.release(chatID, round)
}

// CancelAll cancels every pending round; used on shutdown so no timer
// goroutine or payout leaks past the process.
func (m *RoundManager) CancelAll() {
	m.mu.Lock()
	chats := make([]int64, 0, len(m.rounds))
	for chatID := range m.rounds {
		chats = append(chats, chatID)
	}
	m.mu.Unlock()

	for _, chatID := range chats {
		m.Cancel(chatID)
	}
}

func (m *RoundManager) HasActiveRound(chatID int64) bool {
	m.mu.Lock()
	defer m.mu.Unlock()
	_, ok := m.rounds[chatID]
	return ok
}

func (m *RoundManager) ActiveRound(chatID int64) (*Round, bool) {
	m.mu.Lock()
	defer m.mu.Unlock()
	r, ok := m.rounds[chatID]
	return r, ok
}

// release frees the chat slot if it is still held by this round.
func (m *RoundManager) release(chatID int64, r *Round) {
	m.mu.Lock()
	defer m.mu.Unlock()
	if cur, ok := m.rounds[chatID]; ok && cur == r {
		delete(m.rounds, chatID)
	}
}

func promptText(q content.Question, remainingSec int) string {
	return fmt.Sprintf("🎯 <b>تحدي جديد!</b>\n\n%s\n\n💰 الجائزة: <b>%d نقطة</b>\n⏳ الوقت المتبقي: <b>%d ثانية</b>",
		q.Prompt, q.Reward, remainingSec)
}

func resolvedText(q content.Question, winner string, s *WinSummary) string {
	lines := []string{
		fmt.Sprintf("🎯 %s", q.Prompt),
		"",
		fmt.Sprintf("🏆 الفائز: <b>%s</b> (+%d نقطة)", winner, q.Reward),
		fmt.Sprintf("📈 مجموع النقاط: <b>%d</b> | سلسلة الفوز: <b>%d</b>", s.Record.Points, s.Record.Streak),
	}
	if s.TeamPoints > 0 {
		lines = append(lines, fmt.Sprintf("👥 نقاط للفريق: <b>+%d</b>", s.TeamPoints))
	}
	return strings.Join(lines, "\n")
}

func expiredText(q content.Question) string {
	answer := ""
	if len(q.Answers) > 0 {
		answer = q.Answers[0]
	}
	return fmt.Sprintf("🎯 %s\n\n⏰ انتهى الوقت ولم يجب أحد!\nالإجابة الصحيحة: <b>%s</b>", q.Prompt, answer)
}
