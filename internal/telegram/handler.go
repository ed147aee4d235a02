package telegram

import (
	"fmt"
	"strconv"
	"strings"

	"github.com/Tareq669/bot-sub000/internal/logging"
	"github.com/Tareq669/bot-sub000/internal/services"
)

// UpdateHandler routes group updates: commands drive the game services,
// everything else is offered to the round manager as an answer attempt.
type UpdateHandler struct {
	client      *Client
	game        *services.GameService
	rounds      *services.RoundManager
	groups      *services.GroupService
	scoring     *services.ScoreService
	teams       *services.TeamService
	tournaments *services.TournamentService
}

func NewUpdateHandler(
	client *Client,
	game *services.GameService,
	rounds *services.RoundManager,
	groups *services.GroupService,
	scoring *services.ScoreService,
	teams *services.TeamService,
	tournaments *services.TournamentService,
) *UpdateHandler {
	return &UpdateHandler{
		client:      client,
		game:        game,
		rounds:      rounds,
		groups:      groups,
		scoring:     scoring,
		teams:       teams,
		tournaments: tournaments,
	}
}

func (h *UpdateHandler) Handle(upd Update) {
	if upd.Message == nil || upd.Message.From == nil {
		return
	}
	msg := upd.Message
	if msg.Chat.Type != "group" && msg.Chat.Type != "supergroup" {
		return
	}

	// keep the group row fresh
	if _, err := h.groups.GetOrCreate(msg.Chat.ID, msg.Chat.Title); err != nil {
		logging.Log.WithError(err).Warnf("group upsert failed for chat %d", msg.Chat.ID)
	}

	text := strings.TrimSpace(msg.Text)
	if !strings.HasPrefix(text, "/") {
		h.handleAnswer(msg, text)
		return
	}

	cmd, args := splitCommand(text)
	switch cmd {
	case "challenge":
		h.cmdChallenge(msg, args)
	case "top":
		h.cmdTop(msg, args)
	case "mystats":
		h.cmdMyStats(msg)
	case "team":
		h.cmdTeam(msg, args)
	case "teams":
		h.cmdTeams(msg)
	case "tournament":
		h.cmdTournament(msg, args)
	case "settings":
		h.cmdSettings(msg, args)
	}
}

// splitCommand strips the leading slash and an optional @botname suffix.
func splitCommand(text string) (string, []string) {
	fields := strings.Fields(text)
	cmd := strings.TrimPrefix(fields[0], "/")
	if i := strings.Index(cmd, "@"); i >= 0 {
		cmd = cmd[:i]
	}
	return strings.ToLower(cmd), fields[1:]
}

func displayName(u *User) string {
	if u.Username != "" {
		return u.Username
	}
	return u.FirstName
}

func (h *UpdateHandler) reply(chatID int64, text string) {
	if _, err := h.client.SendMessage(chatID, text); err != nil {
		logging.Log.WithError(err).Warnf("reply failed in chat %d", chatID)
	}
}

func (h *UpdateHandler) requireAdmin(msg *Message) bool {
	ok, err := h.client.IsGroupAdmin(msg.Chat.ID, msg.From.ID)
	if err != nil {
		logging.Log.WithError(err).Warnf("admin check failed in chat %d", msg.Chat.ID)
		return false
	}
	if !ok {
		h.reply(msg.Chat.ID, "⛔️ هذا الأمر لمشرفي المجموعة فقط")
	}
	return ok
}

func (h *UpdateHandler) handleAnswer(msg *Message, text string) {
	_, won, err := h.rounds.Resolve(msg.Chat.ID, msg.From.ID, displayName(msg.From), text)
	if err != nil && won {
		logging.Log.WithError(err).Errorf("win payout failed in chat %d", msg.Chat.ID)
	}
}

func (h *UpdateHandler) cmdChallenge(msg *Message, args []string) {
	roundType := ""
	if len(args) > 0 {
		roundType = strings.ToLower(args[0])
	}

	_, err := h.game.StartTyped(msg.Chat.ID, roundType)
	switch err {
	case nil:
		// prompt already broadcast by the round manager
	case services.ErrRoundActive:
		h.reply(msg.Chat.ID, "⚠️ يوجد تحدٍ نشط بالفعل، جاوب عليه أولاً!")
	case services.ErrGameDisabled:
		h.reply(msg.Chat.ID, "⚠️ الألعاب معطلة في هذه المجموعة")
	case services.ErrUnknownType:
		h.reply(msg.Chat.ID, "⚠️ نوع غير معروف. الأنواع: quiz, riddle, daily")
	case services.ErrDailyAlreadyRan:
		h.reply(msg.Chat.ID, "⚠️ سؤال اليوم انطلق بالفعل، عد غداً!")
	default:
		h.reply(msg.Chat.ID, "حدث خطأ، حاول لاحقاً")
	}
}

func (h *UpdateHandler) cmdTop(msg *Message, args []string) {
	metric := services.MetricPoints
	title := "🏆 <b>المتصدرون</b>"
	if len(args) > 0 {
		switch strings.ToLower(args[0]) {
		case "weekly":
			metric = services.MetricWeekly
			title = "📅 <b>متصدرو الأسبوع</b>"
		case "wins":
			metric = services.MetricWins
			title = "🥇 <b>الأكثر فوزاً</b>"
		case "streak":
			metric = services.MetricStreak
			title = "🔥 <b>أطول سلسلة فوز</b>"
		}
	}

	records, err := h.scoring.Leaderboard(msg.Chat.ID, metric, 10)
	if err != nil || len(records) == 0 {
		h.reply(msg.Chat.ID, "لا يوجد متصدرون بعد، ابدأ تحدياً بـ /challenge")
		return
	}

	medals := map[int]string{0: "🥇", 1: "🥈", 2: "🥉"}
	lines := []string{title, ""}
	for i, r := range records {
		medal, ok := medals[i]
		if !ok {
			medal = fmt.Sprintf("%d.", i+1)
		}
		value := r.Points
		switch metric {
		case services.MetricWeekly:
			value = r.WeeklyPoints
		case services.MetricWins:
			value = r.Wins
		case services.MetricStreak:
			value = r.Streak
		}
		lines = append(lines, fmt.Sprintf("%s <b>%s</b> — %d", medal, r.DisplayName, value))
	}
	h.reply(msg.Chat.ID, strings.Join(lines, "\n"))
}

func (h *UpdateHandler) cmdMyStats(msg *Message) {
	rec, err := h.scoring.GetRecord(msg.Chat.ID, msg.From.ID)
	if err != nil {
		h.reply(msg.Chat.ID, "لم تفز بعد في هذه المجموعة 🙂")
		return
	}
	h.reply(msg.Chat.ID, fmt.Sprintf(
		"📊 <b>%s</b>\nالنقاط: <b>%d</b> | هذا الأسبوع: <b>%d</b>\nالانتصارات: <b>%d</b>\nالسلسلة: <b>%d</b> (أفضل: %d)",
		displayName(msg.From), rec.Points, rec.WeeklyPoints, rec.Wins, rec.Streak, rec.BestStreak))
}

func (h *UpdateHandler) cmdTeam(msg *Message, args []string) {
	if len(args) == 0 {
		h.reply(msg.Chat.ID, "الاستخدام: /team create|join|leave|info [الاسم]")
		return
	}

	chatID := msg.Chat.ID
	userID := msg.From.ID
	name := strings.Join(args[1:], " ")

	switch strings.ToLower(args[0]) {
	case "create":
		if name == "" {
			h.reply(chatID, "الاستخدام: /team create <اسم الفريق>")
			return
		}
		team, err := h.teams.CreateTeam(chatID, userID, name, displayName(msg.From))
		switch err {
		case nil:
			h.reply(chatID, fmt.Sprintf("✅ تم إنشاء فريق <b>%s</b> وأنت قائده!", team.Name))
		case services.ErrBadTeamName:
			h.reply(chatID, "⚠️ اختر اسماً يحتوي حروفاً أو أرقاماً")
		case services.ErrTeamNameTaken:
			h.reply(chatID, "⚠️ اسم الفريق مستخدم بالفعل")
		case services.ErrAlreadyOnTeam:
			h.reply(chatID, "⚠️ أنت في فريق بالفعل، غادر أولاً بـ /team leave")
		default:
			h.reply(chatID, "حدث خطأ، حاول لاحقاً")
		}

	case "join":
		team, err := h.teams.JoinTeam(chatID, userID, name, displayName(msg.From))
		switch err {
		case nil:
			h.reply(chatID, fmt.Sprintf("✅ انضممت إلى فريق <b>%s</b>", team.Name))
		case services.ErrAlreadyOnTeam:
			h.reply(chatID, "⚠️ أنت في فريق بالفعل")
		case services.ErrTeamNotFound:
			h.reply(chatID, "⚠️ لا يوجد فريق بهذا الاسم")
		default:
			h.reply(chatID, "حدث خطأ، حاول لاحقاً")
		}

	case "leave":
		_, err := h.teams.LeaveTeam(chatID, userID)
		switch err {
		case nil:
			h.reply(chatID, "👋 غادرت الفريق")
		case services.ErrNotTeamMember:
			h.reply(chatID, "⚠️ أنت لست في فريق")
		default:
			h.reply(chatID, "حدث خطأ، حاول لاحقاً")
		}

	case "info":
		team, err := h.teams.GetTeamOf(chatID, userID)
		if err != nil {
			h.reply(chatID, "⚠️ أنت لست في فريق")
			return
		}
		lines := []string{fmt.Sprintf("👥 <b>%s</b> — %d نقطة | %d فوز", team.Name, team.Points, team.Wins), ""}
		for _, m := range team.Members {
			role := ""
			if m.UserID == team.CaptainID {
				role = " 👑"
			}
			lines = append(lines, fmt.Sprintf("• %s%s", m.DisplayName, role))
		}
		h.reply(chatID, strings.Join(lines, "\n"))

	default:
		h.reply(chatID, "الاستخدام: /team create|join|leave|info [الاسم]")
	}
}

func (h *UpdateHandler) cmdTeams(msg *Message) {
	teams, err := h.teams.ListTeamsByPoints(msg.Chat.ID, 10)
	if err != nil || len(teams) == 0 {
		h.reply(msg.Chat.ID, "لا توجد فرق بعد، أنشئ واحداً بـ /team create")
		return
	}
	lines := []string{"👥 <b>الفرق</b>", ""}
	for i, t := range teams {
		lines = append(lines, fmt.Sprintf("%d. <b>%s</b> — %d نقطة (%d عضو)", i+1, t.Name, t.Points, len(t.Members)))
	}
	h.reply(msg.Chat.ID, strings.Join(lines, "\n"))
}

func (h *UpdateHandler) cmdTournament(msg *Message, args []string) {
	chatID := msg.Chat.ID

	if len(args) == 0 || strings.ToLower(args[0]) == "status" {
		status, err := h.tournaments.Status(chatID)
		if err != nil {
			h.reply(chatID, "حدث خطأ، حاول لاحقاً")
			return
		}
		state := "⏸ غير نشطة"
		if status.Tournament.Active {
			state = "▶️ جارية"
		}
		lines := []string{fmt.Sprintf("🏟 <b>البطولة — الموسم %d</b> (%s)", status.Tournament.Season, state), ""}
		for i, t := range status.Standings {
			lines = append(lines, fmt.Sprintf("%d. <b>%s</b> — %d نقطة", i+1, t.Name, t.Points))
		}
		h.reply(chatID, strings.Join(lines, "\n"))
		return
	}

	switch strings.ToLower(args[0]) {
	case "start":
		if !h.requireAdmin(msg) {
			return
		}
		t, err := h.tournaments.Start(chatID)
		switch err {
		case nil:
			h.reply(chatID, fmt.Sprintf("🏟 انطلقت بطولة الموسم <b>%d</b>! نقاط الفرق صفرت، بالتوفيق!", t.Season))
		case services.ErrTournamentOn:
			h.reply(chatID, "⚠️ توجد بطولة جارية بالفعل")
		default:
			h.reply(chatID, "حدث خطأ، حاول لاحقاً")
		}

	case "end":
		if !h.requireAdmin(msg) {
			return
		}
		final, err := h.tournaments.End(chatID)
		switch err {
		case nil:
			lines := []string{"🏁 <b>انتهت البطولة!</b>", ""}
			medals := []string{"🥇", "🥈", "🥉"}
			for i, t := range final.Standings {
				if i >= len(medals) {
					break
				}
				lines = append(lines, fmt.Sprintf("%s <b>%s</b> — %d نقطة", medals[i], t.Name, t.Points))
			}
			h.reply(chatID, strings.Join(lines, "\n"))
		case services.ErrTournamentOff:
			h.reply(chatID, "⚠️ لا توجد بطولة جارية")
		default:
			h.reply(chatID, "حدث خطأ، حاول لاحقاً")
		}

	case "rewards":
		if !h.requireAdmin(msg) {
			return
		}
		if len(args) != 4 {
			h.reply(chatID, "الاستخدام: /tournament rewards <الأول> <الثاني> <الثالث>")
			return
		}
		first, err1 := strconv.Atoi(args[1])
		second, err2 := strconv.Atoi(args[2])
		third, err3 := strconv.Atoi(args[3])
		if err1 != nil || err2 != nil || err3 != nil {
			h.reply(chatID, "⚠️ الجوائز يجب أن تكون أرقاماً")
			return
		}
		_, err := h.tournaments.SetRewards(chatID, first, second, third)
		switch err {
		case nil:
			h.reply(chatID, fmt.Sprintf("✅ الجوائز: %d / %d / %d", first, second, third))
		case services.ErrBadRewards:
			h.reply(chatID, "⚠️ يجب أن تكون الجوائز تنازلية وموجبة")
		default:
			h.reply(chatID, "حدث خطأ، حاول لاحقاً")
		}
	}
}

func (h *UpdateHandler) cmdSettings(msg *Message, args []string) {
	chatID := msg.Chat.ID

	if len(args) == 0 {
		group, err := h.groups.Get(chatID)
		if err != nil {
			h.reply(chatID, "حدث خطأ، حاول لاحقاً")
			return
		}
		onOff := func(b bool) string {
			if b {
				return "✅"
			}
			return "❌"
		}
		h.reply(chatID, fmt.Sprintf(
			"⚙️ <b>الإعدادات</b>\nالألعاب: %s\nالأسئلة التلقائية: %s\nالفاصل: %d دقيقة\nمهلة السؤال: %d ثانية",
			onOff(group.Enabled), onOff(group.AutoQuestions), group.IntervalMinutes, group.QuestionTimeoutSec))
		return
	}

	if !h.requireAdmin(msg) {
		return
	}

	var err error
	switch strings.ToLower(args[0]) {
	case "on":
		err = h.groups.SetEnabled(chatID, true)
	case "off":
		err = h.groups.SetEnabled(chatID, false)
		// an admin disable kills the live round immediately
		h.rounds.Cancel(chatID)
	case "auto":
		if len(args) < 2 {
			h.reply(chatID, "الاستخدام: /settings auto on|off")
			return
		}
		err = h.groups.SetAutoQuestions(chatID, strings.ToLower(args[1]) == "on")
	case "interval":
		if len(args) < 2 {
			h.reply(chatID, "الاستخدام: /settings interval <دقائق>")
			return
		}
		minutes, convErr := strconv.Atoi(args[1])
		if convErr != nil {
			h.reply(chatID, "⚠️ الفاصل يجب أن يكون رقماً")
			return
		}
		err = h.groups.SetInterval(chatID, minutes)
	case "timeout":
		if len(args) < 2 {
			h.reply(chatID, "الاستخدام: /settings timeout <ثواني>")
			return
		}
		seconds, convErr := strconv.Atoi(args[1])
		if convErr != nil {
			h.reply(chatID, "⚠️ المهلة يجب أن تكون رقماً")
			return
		}
		err = h.groups.SetTimeout(chatID, seconds)
	default:
		h.reply(chatID, "الاستخدام: /settings [on|off|auto|interval|timeout]")
		return
	}

	switch err {
	case nil:
		h.reply(chatID, "✅ تم تحديث الإعدادات")
	case services.ErrBadInterval, services.ErrBadTimeout:
		h.reply(chatID, "⚠️ "+err.Error())
	default:
		h.reply(chatID, "حدث خطأ، حاول لاحقاً")
	}
}
