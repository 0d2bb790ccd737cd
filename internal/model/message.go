package model

// ChatRequest 聊天请求
type ChatRequest struct {
	Message string `json:"message"`
}

// ChatResponse 聊天响应
type ChatResponse struct {
	Response  string `json:"response"`
	Timestamp string `json:"timestamp"` // HH:MM
}

// ErrorResponse 错误响应
type ErrorResponse struct {
	Error string `json:"error"`
}

// WebSocket 消息类型
const (
	SocketTypeChat  = "chat"
	SocketTypeReply = "reply"
	SocketTypeError = "error"
)

// SocketMessage WebSocket 消息
type SocketMessage struct {
	Type      string `json:"type"` // chat, reply, error
	Message   string `json:"message,omitempty"`
	Response  string `json:"response,omitempty"`
	Timestamp string `json:"timestamp,omitempty"`
	Error     string `json:"error,omitempty"`
}

// StatsResponse 分类统计
type StatsResponse struct {
	Total      int64            `json:"total"`
	Categories map[string]int64 `json:"categories"`
}
