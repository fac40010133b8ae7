package core

import "time"

const (
	AppName      = "PhotoCoach"
	AppUserAgent = "PhotoCoach-Agent/0.1"
	AppVersion   = "0.1.0"
)

const (
	RoleUser      = "user"
	RoleAssistant = "assistant"
)

type SkillLevel string

const (
	SkillBeginner     SkillLevel = "beginner"
	SkillIntermediate SkillLevel = "intermediate"
	SkillAdvanced     SkillLevel = "advanced"
)

// Valid reports whether s is one of the known skill levels.
func (s SkillLevel) Valid() bool {
	switch s {
	case SkillBeginner, SkillIntermediate, SkillAdvanced:
		return true
	}
	return false
}

// Turn is one message within a session's history. Insertion order defines
// recency for compaction and the recent-turns context window.
type Turn struct {
	Role      string    `json:"role"`
	Text      string    `json:"text"`
	Issues    []string  `json:"issues,omitempty"`
	CreatedAt time.Time `json:"created_at,omitempty"`
}

// Session is the durable per-user conversational state. One record per
// user ID, overwritten as a whole on every save.
type Session struct {
	UserID         string     `json:"user_id"`
	SkillLevel     SkillLevel `json:"skill_level"`
	History        []Turn     `json:"history"`
	CompactSummary string     `json:"compact_summary,omitempty"`
}

func NewSession(userID string) *Session {
	return &Session{
		UserID:     userID,
		SkillLevel: SkillBeginner,
	}
}

type Severity string

const (
	SeverityLow    Severity = "low"
	SeverityMedium Severity = "medium"
	SeverityHigh   Severity = "high"
)

// Issue is one problem the vision analyzer surfaced in a photo.
type Issue struct {
	Description string   `json:"description"`
	Severity    Severity `json:"severity"`
	Suggestion  string   `json:"suggestion,omitempty"`
}

// VisionResult is the structured outcome of analyzing a single image.
// It is ephemeral; only the issue labels are folded into session history.
type VisionResult struct {
	EXIF               map[string]string `json:"exif"`
	CompositionSummary string            `json:"composition_summary"`
	Issues             []Issue           `json:"issues"`
	Strengths          []string          `json:"strengths,omitempty"`
}

// IssueLabels returns the short labels of all detected issues, used to
// enrich retrieval queries and session turns.
func (v *VisionResult) IssueLabels() []string {
	if v == nil {
		return nil
	}
	labels := make([]string, 0, len(v.Issues))
	for _, is := range v.Issues {
		labels = append(labels, is.Description)
	}
	return labels
}

type Citation struct {
	Text   string `json:"text"`
	Source string `json:"source"`
}

// Tier identifies which knowledge source backed a citation.
type Tier string

const (
	TierCurated Tier = "curated"
	TierVector  Tier = "vector"
	TierNone    Tier = "none"
)

// CoachingResult is the final answer returned to the caller. Text already
// carries the appended citation block when citations were found.
type CoachingResult struct {
	Text      string     `json:"text"`
	Citations []Citation `json:"citations,omitempty"`
	Tier      Tier       `json:"tier"`
	Exercise  string     `json:"exercise,omitempty"`
}

// KnowledgeEntry is one curated principle with a verified attribution.
// The set is loaded at process start and immutable afterwards.
type KnowledgeEntry struct {
	Text      string
	Citation  string
	Category  string
	Topics    []string
	Embedding []float32
}

// VectorChunk is one document fragment in the secondary index, rebuilt
// offline by the ingest pipeline.
type VectorChunk struct {
	ID        int64
	Text      string
	Source    string
	Embedding []float32
	CreatedAt time.Time
}
