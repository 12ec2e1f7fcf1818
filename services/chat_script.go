package services

// 内在欲望检测的固定7问脚本
// Q1~Q4 为暖场问题，Q5~Q7 为核心问题

// ChatQuestion 脚本中的一个问题
type ChatQuestion struct {
	Key  string // Q1..Q7
	Text string
}

// QuestionComplete 终态标记
const QuestionComplete = "COMPLETE"

var chatScript = []ChatQuestion{
	{Key: "Q1", Text: "요즘 하루 중 가장 기다려지는 시간은 언제인가요?"},
	{Key: "Q2", Text: "최근에 시간 가는 줄 모르고 몰입했던 일이 있다면 들려주세요."},
	{Key: "Q3", Text: "어릴 때는 어떤 아이였나요? 무엇을 하며 놀 때 가장 즐거웠나요?"},
	{Key: "Q4", Text: "주변 사람들은 당신을 어떤 사람이라고 말하나요?"},
	{Key: "Q5", Text: "아무런 제약이 없다면 지금 당장 무엇을 하고 싶나요? 그 이유는 무엇인가요?"},
	{Key: "Q6", Text: "무언가를 간절히 원했지만 포기했던 경험이 있나요? 그때 무엇이 가장 아쉬웠나요?"},
	{Key: "Q7", Text: "10년 후의 당신이 지금의 당신에게 '정말 잘 살았다'고 말한다면, 그 삶에는 무엇이 있을까요?"},
}

// FirstQuestion 返回脚本的第一问
func FirstQuestion() ChatQuestion {
	return chatScript[0]
}

// LastQuestionKey 返回脚本最后一问的键
func LastQuestionKey() string {
	return chatScript[len(chatScript)-1].Key
}

// NextQuestion 返回当前问题的下一问
// 当前已是最后一问或键不合法时返回 false
func NextQuestion(current string) (ChatQuestion, bool) {
	for i, q := range chatScript {
		if q.Key == current {
			if i+1 < len(chatScript) {
				return chatScript[i+1], true
			}
			return ChatQuestion{}, false
		}
	}
	return ChatQuestion{}, false
}

// ScriptLength 脚本总问题数
func ScriptLength() int {
	return len(chatScript)
}
