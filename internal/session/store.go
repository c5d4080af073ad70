package session

import "sync"

// Role identifies who produced a turn.
type Role string

const (
	RoleUser      Role = "user"
	RoleAssistant Role = "assistant"
)

// Turn is one utterance in the interview: the candidate's answer or the
// interviewer's question.
type Turn struct {
	Role    Role
	Content string
}

// Session is the full context of the single active interview.
type Session struct {
	CompanyName       string
	RoleName          string
	JobDescription    string
	InterviewDuration string
	ResumeText        string
	History           []Turn
}

// Store is a single-slot holder for the active session.
type Store interface {
	// Snapshot returns a copy of the session, history included. Before the
	// first Replace it returns the zero session.
	Snapshot() Session
	// Replace swaps in a new session wholesale, discarding the previous one.
	Replace(s Session)
	// AppendExchange appends one user turn followed by one assistant turn.
	AppendExchange(user, assistant string)
}

// MemoryStore keeps the session in process memory.
type MemoryStore struct {
	mu      sync.Mutex
	current Session
}

func NewMemoryStore() *MemoryStore { return &MemoryStore{} }

func (m *MemoryStore) Snapshot() Session {
	m.mu.Lock()
	defer m.mu.Unlock()
	s := m.current
	s.History = append([]Turn(nil), m.current.History...)
	return s
}

func (m *MemoryStore) Replace(s Session) {
	m.mu.Lock()
	m.current = s
	m.mu.Unlock()
}

func (m *MemoryStore) AppendExchange(user, assistant string) {
	m.mu.Lock()
	m.current.History = append(m.current.History,
		Turn{Role: RoleUser, Content: user},
		Turn{Role: RoleAssistant, Content: assistant},
	)
	m.mu.Unlock()
}
