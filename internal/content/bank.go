package content

import "math/rand"

const (
	RoundTypeQuiz   = "quiz"
	RoundTypeRiddle = "riddle"
	RoundTypeDaily  = "daily"
)

// Question is one prompt with its accepted answers and reward.
// Answers are kept as written; normalization happens at match time.
type Question struct {
	Type    string
	Prompt  string
	Answers []string
	Reward  int
}

var pools = map[string][]Question{
	RoundTypeQuiz: {
		{Type: RoundTypeQuiz, Prompt: "ما هي عاصمة مصر؟", Answers: []string{"القاهرة", "القاهره"}, Reward: 10},
		{Type: RoundTypeQuiz, Prompt: "كم عدد أيام الأسبوع؟", Answers: []string{"سبعة", "سبعه", "7"}, Reward: 10},
		{Type: RoundTypeQuiz, Prompt: "ما أكبر كوكب في المجموعة الشمسية؟", Answers: []string{"المشتري", "المشترى"}, Reward: 10},
		{Type: RoundTypeQuiz, Prompt: "ما هو أطول نهر في العالم؟", Answers: []string{"النيل", "نهر النيل"}, Reward: 10},
		{Type: RoundTypeQuiz, Prompt: "كم عدد قارات العالم؟", Answers: []string{"سبع", "سبعة", "7"}, Reward: 10},
		{Type: RoundTypeQuiz, Prompt: "ما عاصمة المملكة العربية السعودية؟", Answers: []string{"الرياض"}, Reward: 10},
		{Type: RoundTypeQuiz, Prompt: "ما أصغر دولة في العالم؟", Answers: []string{"الفاتيكان", "دولة الفاتيكان"}, Reward: 15},
	},
	RoundTypeRiddle: {
		{Type: RoundTypeRiddle, Prompt: "شيء له أسنان ولا يعض، ما هو؟", Answers: []string{"المشط", "مشط"}, Reward: 15},
		{Type: RoundTypeRiddle, Prompt: "شيء يكتب ولا يقرأ، ما هو؟", Answers: []string{"القلم", "قلم"}, Reward: 15},
		{Type: RoundTypeRiddle, Prompt: "شيء كلما أخذت منه كبر، ما هو؟", Answers: []string{"الحفرة", "الحفره", "حفرة"}, Reward: 20},
		{Type: RoundTypeRiddle, Prompt: "ما هو الشيء الذي يمشي بلا أرجل؟", Answers: []string{"الصوت", "صوت"}, Reward: 20},
	},
	RoundTypeDaily: {
		{Type: RoundTypeDaily, Prompt: "سؤال اليوم: كم عدد سور القرآن الكريم؟", Answers: []string{"114", "مئة وأربع عشرة", "مائة واربع عشرة"}, Reward: 25},
		{Type: RoundTypeDaily, Prompt: "سؤال اليوم: ما أول مسجد بني في الإسلام؟", Answers: []string{"قباء", "مسجد قباء"}, Reward: 25},
		{Type: RoundTypeDaily, Prompt: "سؤال اليوم: كم عدد أركان الإسلام؟", Answers: []string{"خمسة", "خمسه", "5"}, Reward: 25},
	},
}

func Types() []string {
	return []string{RoundTypeQuiz, RoundTypeRiddle, RoundTypeDaily}
}

func Known(roundType string) bool {
	_, ok := pools[roundType]
	return ok
}

// Random picks a prompt of the given type; ok is false for unknown types.
func Random(roundType string) (Question, bool) {
	pool, ok := pools[roundType]
	if !ok || len(pool) == 0 {
		return Question{}, false
	}
	return pool[rand.Intn(len(pool))], true
}

// RandomAuto picks a prompt for scheduler-started rounds (quiz or riddle).
func RandomAuto() Question {
	if rand.Intn(4) == 0 {
		q, _ := Random(RoundTypeRiddle)
		return q
	}
	q, _ := Random(RoundTypeQuiz)
	return q
}
