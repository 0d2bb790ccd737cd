package service

import (
	"math/rand"
	"strings"
)

// Category 回复分类
type Category string

const (
	CategoryGreeting Category = "greeting"
	CategoryFarewell Category = "farewell"
	CategoryThanks   Category = "thanks"
	CategoryAbout    Category = "about"
	CategoryDefault  Category = "default"
)

// Categories 按匹配优先级排列的全部分类
var Categories = []Category{
	CategoryGreeting,
	CategoryFarewell,
	CategoryThanks,
	CategoryAbout,
	CategoryDefault,
}

// categoryRule 关键词规则
type categoryRule struct {
	category Category
	keywords []string
}

// rules 顺序即优先级，先匹配先返回
var rules = []categoryRule{
	{CategoryGreeting, []string{"hi", "hello", "hey", "greetings", "good morning", "good afternoon", "good evening"}},
	{CategoryFarewell, []string{"bye", "goodbye", "see you", "farewell", "take care"}},
	{CategoryThanks, []string{"thank", "thanks", "appreciate", "grateful"}},
	{CategoryAbout, []string{"about", "who are you", "what are you", "minecloud", "djs"}},
}

// replies 各分类的候选回复
var replies = map[Category][]string{
	CategoryGreeting: {
		"Hello! I'm MineCloud AI, your smart assistant. How can I help you today?",
		"Hi there! Welcome to MineCloud AI. What would you like to know?",
		"Greetings! I'm here to assist you. What's on your mind?",
		"Hey! MineCloud AI at your service. How may I assist you?",
	},
	CategoryFarewell: {
		"Goodbye! Have a wonderful day!",
		"See you later! Feel free to come back anytime.",
		"Take care! I'll be here whenever you need assistance.",
		"Farewell! It was great chatting with you.",
	},
	CategoryThanks: {
		"You're welcome! Happy to help!",
		"My pleasure! Is there anything else I can assist you with?",
		"Glad I could help! Feel free to ask more questions.",
		"You're very welcome! That's what I'm here for.",
	},
	CategoryAbout: {
		"I'm MineCloud AI, created by DJS (Debasis Jaga Sebasi). I'm designed to be your intelligent assistant!",
		"MineCloud AI is a smart assistant built by DJS. I'm here to help with various tasks and questions!",
		"I'm part of the MineCloud ecosystem, developed by DJS to provide intelligent assistance.",
	},
	CategoryDefault: {
		"That's an interesting question! I'm still learning and will be enhanced with advanced AI capabilities soon.",
		"I understand you're asking about that topic. My knowledge base is expanding every day!",
		"Great question! I'm being developed to handle more complex queries in the future.",
		"I appreciate your input! My AI capabilities are being enhanced to better assist you.",
		"That's a thoughtful inquiry! I'm designed to become more intelligent over time.",
	},
}

// RandomSource 随机数来源，返回 [0, n) 内的整数
type RandomSource interface {
	IntN(n int) int
}

// globalRandom 使用 math/rand/v2 的全局源，可并发调用
type globalRandom struct{}

func (globalRandom) IntN(n int) int { return rand.Intn(n) }

// Responder 关键词回复器
type Responder struct {
	random RandomSource
}

// NewResponder 创建回复器，random 为 nil 时使用全局随机源
func NewResponder(random RandomSource) *Responder {
	if random == nil {
		random = globalRandom{}
	}
	return &Responder{random: random}
}

// Normalize 转小写并去除首尾空白
func Normalize(message string) string {
	return strings.ToLower(strings.TrimSpace(message))
}

// Classify 按优先级匹配分类（子串匹配）
func (r *Responder) Classify(message string) Category {
	text := Normalize(message)
	for _, rule := range rules {
		for _, keyword := range rule.keywords {
			if strings.Contains(text, keyword) {
				return rule.category
			}
		}
	}
	return CategoryDefault
}

// ClassifyAndRespond 分类并随机挑选一条候选回复
func (r *Responder) ClassifyAndRespond(message string) (string, Category) {
	category := r.Classify(message)
	return r.pick(category), category
}

// Candidates 返回分类的候选回复副本
func (r *Responder) Candidates(category Category) []string {
	list := replies[category]
	out := make([]string, len(list))
	copy(out, list)
	return out
}

func (r *Responder) pick(category Category) string {
	list := replies[category]
	i := r.random.IntN(len(list))
	if i < 0 || i >= len(list) {
		i = ((i % len(list)) + len(list)) % len(list)
	}
	return list[i]
}
