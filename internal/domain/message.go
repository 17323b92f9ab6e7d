package domain

// MessageType - категория записи для клиента (цвет, фильтры).
type MessageType string

const (
	MsgInfo    MessageType = "INFO"
	MsgCombat  MessageType = "COMBAT"
	MsgDeath   MessageType = "DEATH"
	MsgWarning MessageType = "WARNING"
)

// Message - одна строка игрового лога.
type Message struct {
	Text  string      `json:"text"`
	Color uint32      `json:"color"`
	Type  MessageType `json:"type"`
}

// MessageLog хранит последние capacity сообщений, старые вытесняются.
// Seq считает все когда-либо добавленные сообщения, чтобы клиент мог
// запросить только новые.
type MessageLog struct {
	capacity int
	entries  []Message
	seq      int
}

func NewMessageLog(capacity int) *MessageLog {
	if capacity < 1 {
		capacity = 1
	}
	return &MessageLog{capacity: capacity, entries: make([]Message, 0, capacity)}
}

func (l *MessageLog) Add(text string, color uint32, typ MessageType) {
	if len(l.entries) == l.capacity {
		copy(l.entries, l.entries[1:])
		l.entries = l.entries[:len(l.entries)-1]
	}
	l.entries = append(l.entries, Message{Text: text, Color: color, Type: typ})
	l.seq++
}

// Entries возвращает копию хранимых сообщений, от старых к новым.
func (l *MessageLog) Entries() []Message {
	out := make([]Message, len(l.entries))
	copy(out, l.entries)
	return out
}

func (l *MessageLog) Len() int {
	return len(l.entries)
}

func (l *MessageLog) Seq() int {
	return l.seq
}

// Since возвращает сообщения, добавленные после отметки seq и ещё не вытесненные.
func (l *MessageLog) Since(seq int) []Message {
	fresh := l.seq - seq
	if fresh <= 0 {
		return nil
	}
	if fresh > len(l.entries) {
		fresh = len(l.entries)
	}
	out := make([]Message, fresh)
	copy(out, l.entries[len(l.entries)-fresh:])
	return out
}

// Last возвращает последнее сообщение.
func (l *MessageLog) Last() (Message, bool) {
	if len(l.entries) == 0 {
		return Message{}, false
	}
	return l.entries[len(l.entries)-1], true
}
